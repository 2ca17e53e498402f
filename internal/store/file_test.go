package store

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingKey(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "data.json"))

	_, err := s.Get(context.Background(), KeyGoals)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for fresh store, got %v", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")
	s := NewFileStore(path)

	goals := []byte(`[{"id":"g1","name":"Pushups","scheduleKind":"recurring","targetDays":[1,3,5]}]`)
	if err := s.Set(ctx, KeyGoals, goals); err != nil {
		t.Fatalf("Failed to set goals: %v", err)
	}

	// the document on disk is indented, so compare parsed content
	checkGoals := func(data []byte) {
		t.Helper()
		var parsed []map[string]any
		if err := json.Unmarshal(data, &parsed); err != nil {
			t.Fatalf("Failed to parse stored goals: %v", err)
		}
		if len(parsed) != 1 || parsed[0]["name"] != "Pushups" {
			t.Errorf("Round trip mismatch: %s", data)
		}
	}

	got, err := s.Get(ctx, KeyGoals)
	if err != nil {
		t.Fatalf("Failed to get goals: %v", err)
	}
	checkGoals(got)

	// a fresh store over the same file sees the data
	reopened := NewFileStore(path)
	got, err = reopened.Get(ctx, KeyGoals)
	if err != nil {
		t.Fatalf("Failed to get goals after reopen: %v", err)
	}
	checkGoals(got)
}

func TestFileStoreSetPreservesOtherKeys(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "data.json"))

	if err := s.Set(ctx, KeyGoals, []byte(`[]`)); err != nil {
		t.Fatalf("Failed to set goals: %v", err)
	}
	if err := s.Set(ctx, KeyCompletions, []byte(`{"2024-06-03":["g1"]}`)); err != nil {
		t.Fatalf("Failed to set completions: %v", err)
	}

	got, err := s.Get(ctx, KeyGoals)
	if err != nil {
		t.Fatalf("Goals disappeared after writing completions: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Expected empty goals list, got %s", got)
	}
}
