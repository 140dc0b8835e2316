package alias_test

import (
	"fmt"
	"testing"

	"schedule-interpreter/internal/alias"
	"schedule-interpreter/internal/model"
)

func TestAssign_Idempotent(t *testing.T) {
	r := alias.New("")
	first := r.Assign("line-1")
	second := r.Assign("line-1")

	if first != "PR1" {
		t.Errorf("Assign() = %q, want PR1", first)
	}
	if first != second {
		t.Errorf("Assign() not idempotent: %q then %q", first, second)
	}
}

func TestAssign_Injective(t *testing.T) {
	r := alias.New("PR")
	seen := make(map[string]string)

	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("line-%d", i)
		a := r.Assign(id)
		if prev, dup := seen[a]; dup {
			t.Fatalf("alias %q assigned to both %q and %q", a, prev, id)
		}
		seen[a] = id

		got, ok := r.Resolve(a)
		if !ok || got != id {
			t.Fatalf("Resolve(Assign(%q)) = %q, %v", id, got, ok)
		}
	}
}

func TestResolve_NormalizesInput(t *testing.T) {
	r := alias.New("PR")
	for i := 0; i < 10; i++ {
		r.Assign(fmt.Sprintf("line-%d", i))
	}

	for _, spelling := range []string{"PR10", "pr10", "pr 10", " Pr 1 0 "} {
		got, ok := r.Resolve(spelling)
		if !ok || got != "line-9" {
			t.Errorf("Resolve(%q) = %q, %v; want line-9", spelling, got, ok)
		}
	}
}

func TestRegisterEmbeddedCodes(t *testing.T) {
	r := alias.New("PR")

	bound := r.RegisterEmbeddedCodes("item-a", "PZ02 Zidanje zidova, faza ab7")
	if len(bound) != 2 || bound[0] != "PZ02" || bound[1] != "AB7" {
		t.Fatalf("RegisterEmbeddedCodes() = %v", bound)
	}

	t.Run("first binding wins", func(t *testing.T) {
		r.RegisterEmbeddedCodes("item-b", "Nastavak PZ02")
		got, _ := r.Resolve("PZ02")
		if got != "item-a" {
			t.Errorf("PZ02 rebound to %q", got)
		}
	})

	t.Run("does not advance counter", func(t *testing.T) {
		if got := r.Assign("item-a"); got != "PR1" {
			t.Errorf("Assign() after embedded registration = %q, want PR1", got)
		}
	})

	t.Run("ignores longer tokens", func(t *testing.T) {
		if bound := r.RegisterEmbeddedCodes("item-c", "ABC12 X1234 q5"); len(bound) != 0 {
			t.Errorf("unexpected codes %v", bound)
		}
	})
}

func TestAssign_SkipsEmbeddedCollision(t *testing.T) {
	r := alias.New("PR")
	r.RegisterEmbeddedCodes("item-x", "Radovi PR1")

	got := r.Assign("item-y")
	if got != "PR2" {
		t.Errorf("Assign() = %q, want PR2 (PR1 is an embedded code)", got)
	}
	if id, _ := r.Resolve("PR1"); id != "item-x" {
		t.Errorf("PR1 should still point at item-x, got %q", id)
	}
}

func TestExplicitAliasBeatsLaterEmbeddedCode(t *testing.T) {
	r := alias.New("PR")
	r.Assign("item-a") // PR1

	if bound := r.RegisterEmbeddedCodes("item-b", "PR1 nastavak"); len(bound) != 0 {
		t.Errorf("embedded code must not shadow explicit alias, bound %v", bound)
	}
	if id, _ := r.Resolve("PR1"); id != "item-a" {
		t.Errorf("Resolve(PR1) = %q, want item-a", id)
	}
}

func TestAssignAll(t *testing.T) {
	r := alias.New("PR")
	items := []model.Item{
		{ID: "a", Label: "PZ01 Iskop"},
		{ID: "b", Label: "PZ02 Temelji"},
	}

	got := r.AssignAll(items)
	if got["a"] != "PR1" || got["b"] != "PR2" {
		t.Fatalf("AssignAll() = %v", got)
	}

	lookup := r.Lookup()
	if lookup["PZ02"] != "b" || lookup["PR1"] != "a" {
		t.Errorf("Lookup() = %v", lookup)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}
