package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"schedule-interpreter/internal/command"
	"schedule-interpreter/internal/grammar"
	"schedule-interpreter/internal/interpreter"
	"schedule-interpreter/internal/interpreter/usecase"
	"schedule-interpreter/internal/model"
	"schedule-interpreter/internal/schedule"
	"schedule-interpreter/pkg/datemath"
)

var clock = func() time.Time { return time.Date(2025, time.October, 1, 10, 0, 0, 0, time.UTC) }

func testItems() []model.Item {
	return []model.Item{
		{ID: "a", Label: "PZ01 Iskop", Start: datemath.Date(2025, time.October, 10), End: datemath.Date(2025, time.October, 15)},
		{ID: "b", Label: "Temelji", Start: datemath.Date(2025, time.October, 16), End: datemath.Date(2025, time.October, 20)},
	}
}

func newUseCase(t *testing.T, sink interpreter.PatchSink, seed *model.Document) interpreter.UseCase {
	t.Helper()
	dm, err := datemath.NewParser("Europe/Zagreb")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return usecase.New(&mockLogger{}, grammar.New(), dm, sink, usecase.Config{
		AliasPrefix:   "PR",
		QueueCapacity: 5,
		Seed:          seed,
		Clock:         clock,
	})
}

func loaded(t *testing.T, sink interpreter.PatchSink) (interpreter.UseCase, model.Scope) {
	t.Helper()
	uc := newUseCase(t, sink, nil)
	sc := model.Scope{SessionID: "s1"}
	if _, err := uc.LoadDocument(context.Background(), sc, interpreter.LoadDocumentInput{Items: testItems()}); err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	return uc, sc
}

func startOf(t *testing.T, doc model.Document, id string) string {
	t.Helper()
	it, ok := doc.Item(id)
	if !ok {
		t.Fatalf("item %s missing", id)
	}
	return datemath.FormatISO(it.Start)
}

func TestLoadDocument(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, nil, nil)
	sc := model.Scope{SessionID: "s1"}

	t.Run("unknown session", func(t *testing.T) {
		_, err := uc.GetDocument(ctx, sc)
		if !errors.Is(err, interpreter.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("assigns aliases", func(t *testing.T) {
		out, err := uc.LoadDocument(ctx, sc, interpreter.LoadDocumentInput{Items: testItems()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Aliases["a"] != "PR1" || out.Aliases["b"] != "PR2" {
			t.Errorf("Aliases = %v", out.Aliases)
		}
		if out.Document.Version != 1 || out.CanUndo {
			t.Errorf("fresh document: version %d, CanUndo %v", out.Document.Version, out.CanUndo)
		}

		got, err := uc.GetDocument(ctx, sc)
		if err != nil || len(got.Document.Items) != 2 {
			t.Errorf("GetDocument() = %v, %v", got.Document.Items, err)
		}
	})

	t.Run("reload keeps aliases", func(t *testing.T) {
		items := testItems()
		reordered := []model.Item{items[1], items[0], {ID: "c", Label: "Zidovi", Start: datemath.Date(2025, time.October, 21), End: datemath.Date(2025, time.October, 25)}}
		out, err := uc.LoadDocument(ctx, sc, interpreter.LoadDocumentInput{Items: reordered})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := map[string]string{"a": "PR1", "b": "PR2", "c": "PR3"}
		for id, a := range want {
			if out.Aliases[id] != a {
				t.Errorf("Aliases[%s] = %q, want %q", id, out.Aliases[id], a)
			}
		}

		res, err := uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "pomakni PR1 na 2025-11-03"})
		if err != nil {
			t.Fatalf("Interpret: %v", err)
		}
		if startOf(t, res.Document, "a") != "2025-11-03" {
			t.Errorf("PR1 must still point at item a")
		}
	})

	t.Run("rejects invalid items", func(t *testing.T) {
		bad := []model.Item{
			{ID: "x", Start: datemath.Date(2025, time.May, 5), End: datemath.Date(2025, time.May, 1)},
		}
		_, err := uc.LoadDocument(ctx, sc, interpreter.LoadDocumentInput{Items: bad})
		if !errors.Is(err, interpreter.ErrInvalidItem) {
			t.Errorf("expected ErrInvalidItem, got %v", err)
		}

		dup := append(testItems(), testItems()[0])
		_, err = uc.LoadDocument(ctx, sc, interpreter.LoadDocumentInput{Items: dup})
		if !errors.Is(err, interpreter.ErrInvalidItem) {
			t.Errorf("expected ErrInvalidItem for duplicate id, got %v", err)
		}
	})
}

func TestInterpret_ProposeAndConfirm(t *testing.T) {
	ctx := context.Background()
	sink := &mockSink{}
	uc, sc := loaded(t, sink)

	out, err := uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "pomakni PR1 za tri dana"})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if out.Status != interpreter.StatusProposed || out.Action == nil {
		t.Fatalf("Status = %s, Action = %v", out.Status, out.Action)
	}
	if !out.Preview || startOf(t, out.Document, "a") != "2025-10-13" {
		t.Errorf("preview should show the shifted item, got %s", startOf(t, out.Document, "a"))
	}

	current, _ := uc.GetDocument(ctx, sc)
	if startOf(t, current.Document, "a") != "2025-10-10" {
		t.Error("proposal must not change the current document")
	}

	list, _ := uc.ListPending(ctx, sc)
	if len(list.Actions) != 1 || list.Actions[0].ID != out.Action.ID {
		t.Fatalf("ListPending() = %v", list.Actions)
	}

	confirmed, err := uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "potvrdi"})
	if err != nil {
		t.Fatalf("Interpret(potvrdi): %v", err)
	}
	if confirmed.Status != interpreter.StatusApplied {
		t.Fatalf("Status = %s, want applied", confirmed.Status)
	}
	if startOf(t, confirmed.Document, "a") != "2025-10-13" {
		t.Errorf("confirmed document start = %s", startOf(t, confirmed.Document, "a"))
	}
	if len(sink.pushed) != 1 || len(sink.pushed[0]) != 1 || sink.pushed[0][0].ItemID != "a" {
		t.Errorf("sink received %v", sink.pushed)
	}

	list, _ = uc.ListPending(ctx, sc)
	if len(list.Actions) != 0 {
		t.Errorf("queue should be empty, got %d", len(list.Actions))
	}
}

func TestInterpret_EmbeddedCode(t *testing.T) {
	uc, sc := loaded(t, nil)
	out, err := uc.Interpret(context.Background(), sc, interpreter.InterpretInput{Text: "pomakni PZ01 za 1 dan"})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	shift, ok := out.Command.(command.Shift)
	if !ok || shift.TargetLine != "a" {
		t.Errorf("Command = %#v", out.Command)
	}
}

func TestInterpret_PreviewIsNotQueued(t *testing.T) {
	ctx := context.Background()
	uc, sc := loaded(t, nil)

	out, err := uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "prikaži normativ produženi na sve"})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if out.Status != interpreter.StatusPreviewed || !out.Preview || out.Action != nil {
		t.Fatalf("Status = %s, Preview = %v, Action = %v", out.Status, out.Preview, out.Action)
	}
	it, _ := out.Document.Item("a")
	if datemath.FormatISO(it.End) != "2025-10-22" {
		t.Errorf("preview end = %s, want 2025-10-22", datemath.FormatISO(it.End))
	}

	list, _ := uc.ListPending(ctx, sc)
	if len(list.Actions) != 0 {
		t.Errorf("preview must not be queued")
	}
}

func TestInterpret_NoMatchAndPassthrough(t *testing.T) {
	ctx := context.Background()
	uc, sc := loaded(t, nil)

	out, err := uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "molim vas skuhajte kavu"})
	if err != nil {
		t.Fatalf("no match must not be an error: %v", err)
	}
	if !out.Fallback || out.Status != interpreter.StatusNoMatch {
		t.Errorf("Status = %s, Fallback = %v", out.Status, out.Fallback)
	}

	out, err = uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "otvori ugovor"})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if out.Status != interpreter.StatusPassthrough || out.Command != (command.OpenDocument{Name: "ugovor"}) {
		t.Errorf("Status = %s, Command = %#v", out.Status, out.Command)
	}

	if _, err := uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "   "}); !errors.Is(err, interpreter.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	out, _ = uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "potvrdi"})
	if out.Status != interpreter.StatusNothingPending {
		t.Errorf("confirm with empty queue: Status = %s", out.Status)
	}
}

func TestCancelThenConfirm(t *testing.T) {
	ctx := context.Background()
	sink := &mockSink{}
	uc, sc := loaded(t, sink)

	out, _ := uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "pomakni sve za 2 dana"})
	id := out.Action.ID

	if _, err := uc.Cancel(ctx, sc, interpreter.ActionInput{ActionID: id}); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if _, err := uc.Confirm(ctx, sc, interpreter.ActionInput{ActionID: id}); !errors.Is(err, interpreter.ErrActionNotFound) {
		t.Errorf("expected ErrActionNotFound, got %v", err)
	}

	doc, _ := uc.GetDocument(ctx, sc)
	if doc.Document.Version != 1 || len(sink.pushed) != 0 {
		t.Errorf("document changed after cancel: version %d, pushes %d", doc.Document.Version, len(sink.pushed))
	}
}

func TestCancelByUtterance(t *testing.T) {
	ctx := context.Background()
	uc, sc := loaded(t, nil)

	uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "pomakni PR1 za 2 dana"})
	second, _ := uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "pomakni PR2 za 4 dana"})

	out, err := uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "odbaci"})
	if err != nil || out.Status != interpreter.StatusCancelled {
		t.Fatalf("Status = %s, err = %v", out.Status, err)
	}
	if out.Action.ID != second.Action.ID {
		t.Error("cancel should resolve to the newest action")
	}
	list, _ := uc.ListPending(ctx, sc)
	if len(list.Actions) != 1 {
		t.Errorf("pending = %d, want 1", len(list.Actions))
	}
}

func TestUndoRedo(t *testing.T) {
	ctx := context.Background()
	sink := &mockSink{}
	uc, sc := loaded(t, sink)

	if _, err := uc.Undo(ctx, sc); !errors.Is(err, interpreter.ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}

	out, _ := uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "rasporedi sve u lanac"})
	applied, err := uc.Confirm(ctx, sc, interpreter.ActionInput{ActionID: out.Action.ID})
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if applied.Document.Version != 2 {
		t.Fatalf("Version = %d, want 2", applied.Document.Version)
	}

	undone, err := uc.Undo(ctx, sc)
	if err != nil || undone.Document.Version != 1 || !undone.CanRedo {
		t.Fatalf("Undo() = v%d, CanRedo %v, err %v", undone.Document.Version, undone.CanRedo, err)
	}

	redone, err := uc.Redo(ctx, sc)
	if err != nil || redone.Document.Version != 2 {
		t.Fatalf("Redo() = v%d, err %v", redone.Document.Version, err)
	}
	if _, err := uc.Redo(ctx, sc); !errors.Is(err, interpreter.ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}

	voice, _ := uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "vrati"})
	if voice.Status != interpreter.StatusUndone || voice.Document.Version != 1 {
		t.Errorf("voice undo: Status = %s, v%d", voice.Status, voice.Document.Version)
	}
}

func TestSinkFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	sink := &mockSink{err: errors.New("calendar down")}
	uc, sc := loaded(t, sink)

	out, _ := uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "pomakni PR2 za 1 dan"})
	applied, err := uc.Confirm(ctx, sc, interpreter.ActionInput{ActionID: out.Action.ID})
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if startOf(t, applied.Document, "b") != "2025-10-17" {
		t.Errorf("document should be committed despite sink failure")
	}
	if len(sink.pushed) != 1 {
		t.Errorf("sink calls = %d, want 1", len(sink.pushed))
	}
}

func TestSeedDocument(t *testing.T) {
	seed := &model.Document{Items: testItems(), Version: 1}
	uc := newUseCase(t, nil, seed)
	sc := model.Scope{SessionID: "fresh"}

	out, err := uc.Interpret(context.Background(), sc, interpreter.InterpretInput{Text: "pomakni PR2 na 2025-11-01"})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if out.Status != interpreter.StatusProposed {
		t.Fatalf("Status = %s, want proposed (reason %q)", out.Status, out.Reason)
	}
	it, _ := out.Document.Item("b")
	if datemath.FormatISO(it.End) != "2025-11-05" {
		t.Errorf("preview end = %s, want 2025-11-05", datemath.FormatISO(it.End))
	}
}

func TestInterpret_FailedPreviewIsNotQueued(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, nil, nil)
	sc := model.Scope{SessionID: "empty"}

	out, err := uc.Interpret(ctx, sc, interpreter.InterpretInput{Text: "pomakni sve za 2 dana"})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if out.Status != interpreter.StatusFailed || out.Failure != schedule.FailureEmptyDocument {
		t.Errorf("Status = %s, Failure = %s", out.Status, out.Failure)
	}
	if out.Action != nil {
		t.Errorf("Action = %v, want nil", out.Action)
	}

	list, err := uc.ListPending(ctx, sc)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(list.Actions) != 0 {
		t.Errorf("pending = %d, want 0", len(list.Actions))
	}
}

func TestStats(t *testing.T) {
	uc, _ := loaded(t, &mockSink{})

	st := uc.Stats(context.Background())
	if st.Sessions != 1 || !st.SinkConfigured || st.Seeded {
		t.Errorf("Stats() = %+v", st)
	}
	if st.SessionCapacity <= 0 || st.SessionTTL <= 0 {
		t.Errorf("defaults not applied: %+v", st)
	}

	if st := newUseCase(t, nil, nil).Stats(context.Background()); st.Sessions != 0 || st.SinkConfigured {
		t.Errorf("fresh Stats() = %+v", st)
	}
}
