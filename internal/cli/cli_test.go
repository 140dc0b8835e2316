package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"schedule-interpreter/internal/scheduleio"
)

const testSchedule = `items:
  - id: a
    label: PZ01 Iskop
    start: 2025-10-10
    end: 2025-10-15
  - id: b
    label: Temelji
    start: 2025-10-16
    end: 2025-10-20
`

func writeSchedule(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.yaml")
	if err := os.WriteFile(path, []byte(testSchedule), 0o600); err != nil {
		t.Fatalf("write schedule: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	parseSchedule, parseToday = "", ""
	applySchedule, applyOut, applyToday, applyDryRun = "", "", "", false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseCommand(t *testing.T) {
	path := writeSchedule(t)

	out, _, err := run(t, "parse", "--schedule", path, "pomakni", "PR2", "za", "tri", "dana")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.Contains(out, "kind: shift") || !strings.Contains(out, "PR2") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, _, err = run(t, "parse", "--schedule", path, "odgodi PZ01 za 1 dan")
	if err != nil || !strings.Contains(out, "kind: shift") {
		t.Errorf("embedded code: %v\n%s", err, out)
	}

	out, _, err = run(t, "parse", "kakvo je vrijeme")
	if err != nil || !strings.HasPrefix(out, "no match") {
		t.Errorf("no match: %v\n%s", err, out)
	}
}

func TestParseCommand_BadToday(t *testing.T) {
	if _, _, err := run(t, "parse", "--today", "sutra", "potvrdi"); err == nil {
		t.Error("expected error for invalid --today")
	}
}

func TestApplyCommand(t *testing.T) {
	path := writeSchedule(t)
	outPath := filepath.Join(t.TempDir(), "out.yaml")

	_, report, err := run(t, "apply", "--schedule", path, "--out", outPath,
		"pomakni PR1 za tri dana",
		"pomakni PR2 za jedan dan",
		"vrati",
		"nesto nepoznato",
	)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !strings.Contains(report, "no match") || !strings.Contains(report, "undone") {
		t.Errorf("unexpected report:\n%s", report)
	}

	doc, err := scheduleio.LoadFile(outPath)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	a, _ := doc.Item("a")
	b, _ := doc.Item("b")
	if a.Start.Day() != 13 || a.End.Day() != 18 {
		t.Errorf("a = %v..%v, want 13..18", a.Start, a.End)
	}
	if b.Start.Day() != 16 {
		t.Errorf("b should be back at 16 after undo, got %v", b.Start)
	}
}

func TestApplyCommand_Stdout(t *testing.T) {
	path := writeSchedule(t)

	out, _, err := run(t, "apply", "-s", path, "pomakni sve za 2 dana")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !strings.Contains(out, `start: "2025-10-12"`) || !strings.Contains(out, `start: "2025-10-18"`) {
		t.Errorf("unexpected schedule:\n%s", out)
	}
}

func TestApplyCommand_RequiresSchedule(t *testing.T) {
	if _, _, err := run(t, "apply", "potvrdi"); err == nil {
		t.Error("expected error without --schedule")
	}
}
