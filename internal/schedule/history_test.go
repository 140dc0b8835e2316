package schedule_test

import (
	"testing"

	"schedule-interpreter/internal/command"
	"schedule-interpreter/internal/model"
	"schedule-interpreter/internal/schedule"
)

func TestHistory_UndoRedo(t *testing.T) {
	v0 := testDocument()
	h := schedule.NewHistory(v0)

	if _, ok := h.Undo(); ok {
		t.Error("Undo() on fresh history = true")
	}

	v1 := mustApply(t, v0, command.ShiftAll{DeltaDays: 1})
	h.Commit(v1)
	v2 := mustApply(t, v1, command.DistributeChain{})
	h.Commit(v2)

	if h.Len() != 3 || h.Position() != 2 {
		t.Fatalf("Len = %d, Position = %d", h.Len(), h.Position())
	}

	got, ok := h.Undo()
	if !ok || got.Version != v1.Version {
		t.Fatalf("Undo() = v%d, %v; want v%d", got.Version, ok, v1.Version)
	}
	if !h.CanRedo() {
		t.Error("CanRedo() = false after undo")
	}

	got, ok = h.Redo()
	if !ok || got.Version != v2.Version {
		t.Fatalf("Redo() = v%d, %v; want v%d", got.Version, ok, v2.Version)
	}
	if _, ok := h.Redo(); ok {
		t.Error("Redo() at head = true")
	}
}

func TestHistory_CommitTruncatesRedo(t *testing.T) {
	h := schedule.NewHistory(model.Document{Version: 0})
	h.Commit(model.Document{Version: 1})
	h.Commit(model.Document{Version: 2})
	h.Undo()
	h.Undo()

	h.Commit(model.Document{Version: 7})

	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
	if h.CanRedo() {
		t.Error("redo tail should be gone")
	}
	if h.Current().Version != 7 {
		t.Errorf("Current() = v%d, want v7", h.Current().Version)
	}
}

func TestHistory_ShiftAllIsOneEntry(t *testing.T) {
	h := schedule.NewHistory(testDocument())
	h.Commit(mustApply(t, h.Current(), command.ShiftAll{DeltaDays: 5}))

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	prev, _ := h.Undo()
	if !prev.Items[0].Start.Equal(testDocument().Items[0].Start) {
		t.Error("one undo should revert every item")
	}
}

func TestHistory_Reset(t *testing.T) {
	h := schedule.NewHistory(model.Document{Version: 0})
	h.Commit(model.Document{Version: 1})
	h.Reset(model.Document{Version: 9})
	if h.Len() != 1 || h.Position() != 0 || h.Current().Version != 9 {
		t.Errorf("Reset: Len = %d, Position = %d, Current = v%d", h.Len(), h.Position(), h.Current().Version)
	}
}
