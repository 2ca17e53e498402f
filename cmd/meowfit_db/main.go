package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"meowfit/internal/fitness"
	"meowfit/internal/store"
)

// Maintenance tool for the tracker's key-value store: dump everything as
// one JSON document, load such a document back, or seed the starter
// catalog into an empty store.
func main() {
	export := flag.Bool("export", false, "dump all collections as JSON to stdout")
	importPath := flag.String("import", "", "load a previously exported JSON document")
	seed := flag.Bool("seed", false, "write the starter catalog into an empty store")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		log.Debug("No .env file found, using process environment")
	}

	st, err := store.FromEnv()
	if err != nil {
		log.Fatal("Failed to open store", "error", err)
	}

	ctx := context.Background()
	switch {
	case *export:
		if err := exportStore(ctx, st); err != nil {
			log.Fatal("Export failed", "error", err)
		}
	case *importPath != "":
		if err := importStore(ctx, st, *importPath); err != nil {
			log.Fatal("Import failed", "error", err)
		}
		log.Info("Import complete", "file", *importPath)
	case *seed:
		if err := seedStore(ctx, st); err != nil {
			log.Fatal("Seed failed", "error", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func exportStore(ctx context.Context, st store.Store) error {
	doc := make(map[string]json.RawMessage, len(store.Keys))
	for _, key := range store.Keys {
		data, err := st.Get(ctx, key)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}
		doc[key] = data
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func importStore(ctx context.Context, st store.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for key, value := range doc {
		if err := st.Set(ctx, key, value); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		log.Info("Imported collection", "key", key, "bytes", len(value))
	}
	return nil
}

func seedStore(ctx context.Context, st store.Store) error {
	if _, err := st.Get(ctx, store.KeyWorkouts); err == nil {
		log.Info("Store already has a workout catalog, nothing to do")
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	now := time.Now().UnixMilli()
	starter := []fitness.Workout{
		{ID: "1", Name: "Elite Chest Press", BodyPart: fitness.BodyPartChest, Source: fitness.SourceEquipment, CaloriesBurned: 120, CreatedAt: now},
		{ID: "2", Name: "Explosive Jump Squats", BodyPart: fitness.BodyPartLegs, Source: fitness.SourceHome, CaloriesBurned: 150, IsFavorite: true, CreatedAt: now},
		{ID: "3", Name: "Calisthenics Back Flow", BodyPart: fitness.BodyPartBack, Source: fitness.SourceYouTube, CaloriesBurned: 100, CreatedAt: now},
	}

	save := func(key string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return st.Set(ctx, key, data)
	}

	if err := save(store.KeyWorkouts, starter); err != nil {
		return err
	}
	if err := save(store.KeyCategories, fitness.DefaultCategories()); err != nil {
		return err
	}
	if err := save(store.KeyProfile, fitness.DefaultProfile()); err != nil {
		return err
	}

	log.Info("Seeded starter catalog", "workouts", len(starter))
	return nil
}
