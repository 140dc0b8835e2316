package command

import "testing"

func TestMutatesSchedule(t *testing.T) {
	tests := []struct {
		cmd  Command
		want bool
	}{
		{cmd: Shift{Alias: "PR1", DeltaDays: 2}, want: true},
		{cmd: BatchOperations{}, want: true},
		{cmd: ShowStandardPlan{}, want: true},
		{cmd: OpenDocument{Name: "ugovor"}, want: false},
		{cmd: CancelPending{}, want: false},
		{cmd: Undo{}, want: false},
	}

	for _, tt := range tests {
		if got := MutatesSchedule(tt.cmd); got != tt.want {
			t.Errorf("MutatesSchedule(%s) = %v, want %v", tt.cmd.Kind(), got, tt.want)
		}
	}
}

func TestIsPreview(t *testing.T) {
	tests := []struct {
		cmd  Command
		want bool
	}{
		{cmd: ApplyNormativeProfile{ProfileID: "standardni", Mode: ModePreview}, want: true},
		{cmd: ApplyNormativeProfile{ProfileID: "standardni", Mode: ModeCommit}, want: false},
		{cmd: ShowStandardPlan{Mode: ModePreview}, want: true},
		{cmd: ShowStandardPlan{Mode: ModeCommit}, want: false},
		{cmd: Shift{}, want: false},
	}

	for _, tt := range tests {
		if got := IsPreview(tt.cmd); got != tt.want {
			t.Errorf("IsPreview(%#v) = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}

func TestScopeIncludes(t *testing.T) {
	if !ScopeAll().Includes("anything") {
		t.Error("ScopeAll must include every id")
	}
	s := Scope{Lines: []string{"a", "b"}}
	if !s.Includes("b") || s.Includes("c") {
		t.Errorf("unexpected Includes result for %+v", s)
	}
}
