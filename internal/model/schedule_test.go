package model_test

import (
	"testing"

	"schedule-interpreter/internal/model"
	"schedule-interpreter/pkg/datemath"
)

func TestItemDuration(t *testing.T) {
	it := model.Item{Start: datemath.Date(2025, 10, 10), End: datemath.Date(2025, 10, 15)}
	if it.Duration() != 6 {
		t.Errorf("Duration() = %d, want 6", it.Duration())
	}
	if it.Span() != 5 {
		t.Errorf("Span() = %d, want 5", it.Span())
	}
}

func TestDocumentCloneIsIndependent(t *testing.T) {
	doc := model.Document{Items: []model.Item{{ID: "a", Label: "Zidanje"}}}
	c := doc.Clone()
	c.Items[0].Label = "Changed"

	if doc.Items[0].Label != "Zidanje" {
		t.Error("Clone must not share the Items backing array")
	}
}

func TestDiff(t *testing.T) {
	before := model.Document{Items: []model.Item{
		{ID: "a", Start: datemath.Date(2025, 1, 1), End: datemath.Date(2025, 1, 2)},
		{ID: "b", Start: datemath.Date(2025, 1, 3), End: datemath.Date(2025, 1, 4)},
	}}
	after := before.Clone()
	after.Items[1].Start = datemath.Date(2025, 1, 5)
	after.Items[1].End = datemath.Date(2025, 1, 6)

	patches := model.Diff(before, after)
	if len(patches) != 1 || patches[0].ItemID != "b" {
		t.Fatalf("Diff() = %+v, want one patch for b", patches)
	}
}
