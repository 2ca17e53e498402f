package meowfit

import (
	"context"
	"path/filepath"
	"testing"

	"meowfit/internal/fitness"
	"meowfit/internal/store"
)

func recurringGoal(name string, days ...int) fitness.Goal {
	return fitness.Goal{Name: name, Kind: fitness.ScheduleRecurring, TargetDays: days}
}

// TestAddGoalAssignsID tests that a created goal gets a fresh id
func TestAddGoalAssignsID(t *testing.T) {
	state := NewAppState()

	created, err := state.AddGoal(recurringGoal("Pushups", 1, 3, 5))
	if err != nil {
		t.Fatalf("Failed to add goal: %v", err)
	}
	if created.ID == "" {
		t.Error("Expected a generated goal id")
	}

	goals := state.Snapshot().Goals
	if len(goals) != 1 {
		t.Fatalf("Expected 1 goal, got %d", len(goals))
	}
}

// TestAddGoalRejectsDeadGoal tests that a recurring goal without target
// days can never be created
func TestAddGoalRejectsDeadGoal(t *testing.T) {
	state := NewAppState()

	_, err := state.AddGoal(fitness.Goal{Name: "Dead", Kind: fitness.ScheduleRecurring})
	if err == nil {
		t.Error("Expected validation error for recurring goal without target days")
	}
	if len(state.Snapshot().Goals) != 0 {
		t.Error("Rejected goal must not be stored")
	}
}

// TestToggleCompletionCopyOnWrite tests that older snapshots keep their
// view of the ledger after a toggle
func TestToggleCompletionCopyOnWrite(t *testing.T) {
	state := NewAppState()
	goal, err := state.AddGoal(recurringGoal("Squats", 0, 1, 2, 3, 4, 5, 6))
	if err != nil {
		t.Fatalf("Failed to add goal: %v", err)
	}

	before := state.Snapshot()

	after, err := state.ToggleCompletion(goal.ID, "2024-06-03")
	if err != nil {
		t.Fatalf("Failed to toggle: %v", err)
	}

	if len(before.Ledger.CompletedOn("2024-06-03")) != 0 {
		t.Error("Old snapshot observed the new toggle")
	}
	if len(after.Ledger.CompletedOn("2024-06-03")) != 1 {
		t.Error("New snapshot is missing the toggle")
	}

	// toggling again removes the id
	again, err := state.ToggleCompletion(goal.ID, "2024-06-03")
	if err != nil {
		t.Fatalf("Failed to toggle back: %v", err)
	}
	if len(again.Ledger.CompletedOn("2024-06-03")) != 0 {
		t.Error("Second toggle should remove the completion")
	}
}

// TestToggleCompletionRejectsBadDate tests date-key validation on toggle
func TestToggleCompletionRejectsBadDate(t *testing.T) {
	state := NewAppState()
	if _, err := state.ToggleCompletion("g1", "03.06.2024"); err == nil {
		t.Error("Expected error for malformed date key")
	}
}

// TestDeleteGoalLeavesLedgerInert tests that deleting a goal keeps its
// ledger entries but they no longer resolve
func TestDeleteGoalLeavesLedgerInert(t *testing.T) {
	state := NewAppState()
	goal, _ := state.AddGoal(recurringGoal("Rows", 0, 1, 2, 3, 4, 5, 6))
	if _, err := state.ToggleCompletion(goal.ID, "2024-06-03"); err != nil {
		t.Fatalf("Failed to toggle: %v", err)
	}

	if !state.DeleteGoal(goal.ID) {
		t.Fatal("Failed to delete goal")
	}

	snap := state.Snapshot()
	if len(snap.Ledger.CompletedOn("2024-06-03")) != 1 {
		t.Error("Ledger entry should survive goal deletion")
	}

	date, _ := fitness.ParseDateKey("2024-06-03")
	res := fitness.ResolveDay(snap.Goals, snap.Ledger, date)
	if !res.IsRest {
		t.Error("Deleted goal should no longer resolve as applicable")
	}
}

// TestWorkoutLifecycle tests add, update, favorite and delete
func TestWorkoutLifecycle(t *testing.T) {
	state := NewAppState()

	w := state.AddWorkout(fitness.Workout{Name: "Bench", BodyPart: fitness.BodyPartChest, Source: fitness.SourceEquipment})
	if w.ID == "" || w.CreatedAt == 0 {
		t.Error("Expected id and creation timestamp to be assigned")
	}

	w.Name = "Incline Bench"
	if !state.UpdateWorkout(w) {
		t.Error("Failed to update workout")
	}
	if got := state.Snapshot().Workouts[0].Name; got != "Incline Bench" {
		t.Errorf("Expected updated name, got %q", got)
	}

	if !state.ToggleFavorite(w.ID) {
		t.Error("Failed to toggle favorite")
	}
	if !state.Snapshot().Workouts[0].IsFavorite {
		t.Error("Expected workout to be favorite")
	}

	if !state.DeleteWorkout(w.ID) {
		t.Error("Failed to delete workout")
	}
	if state.DeleteWorkout(w.ID) {
		t.Error("Second delete should report not found")
	}
}

// TestPersistHookRoundTrip tests that mutations flow through the persist
// hook and can be loaded into a fresh state
func TestPersistHookRoundTrip(t *testing.T) {
	st := store.NewFileStore(filepath.Join(t.TempDir(), "data.json"))

	state := NewAppState()
	state.AddHook(PersistHook(st))

	goal, err := state.AddGoal(recurringGoal("Pullups", 2, 4))
	if err != nil {
		t.Fatalf("Failed to add goal: %v", err)
	}
	if _, err := state.ToggleCompletion(goal.ID, "2024-06-04"); err != nil {
		t.Fatalf("Failed to toggle: %v", err)
	}

	reloaded := NewAppState()
	if err := reloaded.Load(context.Background(), st); err != nil {
		t.Fatalf("Failed to load persisted state: %v", err)
	}

	snap := reloaded.Snapshot()
	if len(snap.Goals) != 1 || snap.Goals[0].ID != goal.ID {
		t.Errorf("Persisted goals mismatch: %+v", snap.Goals)
	}
	if len(snap.Ledger.CompletedOn("2024-06-04")) != 1 {
		t.Error("Persisted ledger entry missing after reload")
	}
}
