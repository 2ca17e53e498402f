package store

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"
)

// Collection keys. The values behind them are opaque JSON blobs; their
// shapes belong to the fitness package.
const (
	KeyWorkouts    = "workouts"
	KeyGoals       = "goals"
	KeyCompletions = "completions"
	KeyCategories  = "categories"
	KeyProfile     = "profile"
)

// Keys lists every collection, in the order maintenance tooling walks them.
var Keys = []string{KeyWorkouts, KeyGoals, KeyCompletions, KeyCategories, KeyProfile}

// ErrNotFound is returned when a collection was never written. Callers
// treat it as "default empty state", not as a failure.
var ErrNotFound = errors.New("store: key not found")

// Store is the opaque key-value persistence behind the tracker.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// FromEnv picks the store backend: Redis when MEOWFIT_REDIS_ADDR is set,
// otherwise a JSON file at MEOWFIT_DATA_FILE (default meowfit.json).
func FromEnv() (Store, error) {
	if addr := os.Getenv("MEOWFIT_REDIS_ADDR"); addr != "" {
		rs := NewRedisStore(addr, os.Getenv("MEOWFIT_REDIS_PASSWORD"))
		if err := rs.Ping(context.Background()); err != nil {
			return nil, err
		}
		log.Info("Using redis store", "addr", addr)
		return rs, nil
	}

	path := os.Getenv("MEOWFIT_DATA_FILE")
	if path == "" {
		path = "meowfit.json"
	}
	log.Info("Using file store", "path", path)
	return NewFileStore(path), nil
}
