package datemath_test

import (
	"testing"
	"time"

	"schedule-interpreter/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Zagreb")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := datemath.Date(2024, 5, 1)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "danas", want: startOfBase},
		{name: "Tomorrow", relative: "sutra", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Day after tomorrow", relative: "prekosutra", want: startOfBase.AddDate(0, 0, 2)},
		{name: "Yesterday", relative: "jucer", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", relative: "za 3 dana", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "za 2 tjedna", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "za 1 mjesec", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", relative: "za nekoliko dana", wantErr: true},
		{name: "Next Monday (from Wed)", relative: "sljedeci ponedjeljak", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "iduci srijeda", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Unknown phrase", relative: "neki dan", wantErr: true},
		{name: "Invalid Next Weekday", relative: "sljedeci funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToday_TimezoneBoundary(t *testing.T) {
	parser, err := datemath.NewParser("Europe/Zagreb")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 23:30 UTC on Dec 31 is already Jan 1 in Zagreb.
	base := time.Date(2024, 12, 31, 23, 30, 0, 0, time.UTC)

	if got, want := parser.Today(base), datemath.Date(2025, 1, 1); !got.Equal(want) {
		t.Errorf("Today() = %v, want %v", got, want)
	}
	if got := parser.DefaultYear(base); got != 2025 {
		t.Errorf("DefaultYear() = %d, want 2025", got)
	}
}

func TestRelative(t *testing.T) {
	today := datemath.Date(2025, time.October, 15) // Wednesday

	tests := []struct {
		phrase  string
		want    time.Time
		wantErr bool
	}{
		{"sutra", datemath.Date(2025, time.October, 16), false},
		{"za 2 tjedna", datemath.Date(2025, time.October, 29), false},
		{"iduci petak", datemath.Date(2025, time.October, 17), false},
		{"sljedeca srijeda", time.Time{}, true},
		{"na pocetku", time.Time{}, true},
		{"za 100000 dana", datemath.AddDays(today, 100000), false},
		{"za 100001 dana", time.Time{}, true},
		{"za 99999999999999999999 dana", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, err := datemath.Relative(tt.phrase, today)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Relative(%q) error = %v, wantErr %v", tt.phrase, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("Relative(%q) = %v, want %v", tt.phrase, got, tt.want)
			}
		})
	}
}
