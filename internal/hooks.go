package meowfit

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"

	"meowfit/internal/store"
)

// Hook is a function that is called after every state mutation.
type Hook func(Snapshot)

// PersistHook creates a hook that writes the snapshot's collections to
// the store. Persistence failures are logged but never block a mutation;
// the in-memory state stays authoritative for the session.
func PersistHook(st store.Store) Hook {
	return func(snap Snapshot) {
		ctx := context.Background()
		persist(ctx, st, store.KeyWorkouts, snap.Workouts)
		persist(ctx, st, store.KeyGoals, snap.Goals)
		persist(ctx, st, store.KeyCompletions, snap.Ledger)
		persist(ctx, st, store.KeyCategories, snap.Categories)
		persist(ctx, st, store.KeyProfile, snap.Profile)
	}
}

func persist(ctx context.Context, st store.Store, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("Failed to marshal collection", "key", key, "error", err)
		return
	}
	if err := st.Set(ctx, key, data); err != nil {
		log.Error("Failed to persist collection", "key", key, "error", err)
	}
}
