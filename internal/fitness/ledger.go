package fitness

// Ledger records which goal ids were marked done on each date key.
// Entries are created lazily on the first toggle for a date and are never
// explicitly deleted; ids referencing removed goals stay behind as inert
// data that the resolver filters out.
type Ledger map[string][]string

// CompletedOn returns the ids marked done for a date key. An absent key
// yields an empty set, not an error.
func (l Ledger) CompletedOn(key string) []string {
	return l[key]
}

// Toggle returns a new ledger with goalID flipped for the given date:
// added when absent, removed when present. The receiver is never mutated,
// so readers holding an older ledger keep a consistent view.
func (l Ledger) Toggle(key, goalID string) Ledger {
	next := make(Ledger, len(l)+1)
	for k, ids := range l {
		next[k] = ids
	}

	day := l[key]
	found := false
	updated := make([]string, 0, len(day)+1)
	for _, id := range day {
		if id == goalID {
			found = true
			continue
		}
		updated = append(updated, id)
	}
	if !found {
		updated = append(updated, goalID)
	}
	next[key] = updated
	return next
}
