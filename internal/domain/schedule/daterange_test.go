package schedule

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ViewMode
		wantErr bool
	}{
		{input: "", want: ViewModeDay},
		{input: "day", want: ViewModeDay},
		{input: "week", want: ViewModeWeek},
		{input: "month", want: ViewModeMonth},
		{input: "quarter", wantErr: true},
		{input: "Day", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseViewMode(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidViewMode) {
				t.Errorf("ParseViewMode(%q) error = %v, want ErrInvalidViewMode", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseViewMode(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseViewMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolveDay(t *testing.T) {
	ref := time.Date(2024, time.June, 12, 14, 30, 45, 0, time.UTC)

	rng, err := Resolve(ref, ViewModeDay)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	wantStart := date(2024, time.June, 12)
	wantEnd := time.Date(2024, time.June, 12, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !rng.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", rng.Start, wantStart)
	}
	if !rng.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", rng.End, wantEnd)
	}
}

func TestResolveWeek(t *testing.T) {
	// 2024-06-12 is a Wednesday; the week runs Sunday 06-09 .. Saturday 06-15
	ref := date(2024, time.June, 12)

	rng, err := Resolve(ref, ViewModeWeek)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	wantStart := date(2024, time.June, 9)
	wantEnd := time.Date(2024, time.June, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !rng.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", rng.Start, wantStart)
	}
	if !rng.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", rng.End, wantEnd)
	}
	if rng.Start.Weekday() != time.Sunday {
		t.Errorf("week start weekday = %v, want Sunday", rng.Start.Weekday())
	}
	if rng.End.Weekday() != time.Saturday {
		t.Errorf("week end weekday = %v, want Saturday", rng.End.Weekday())
	}
}

func TestResolveWeekStartsOnSunday(t *testing.T) {
	// Every day of one week must resolve to the same Sunday
	for d := 9; d <= 15; d++ {
		rng, err := Resolve(date(2024, time.June, d), ViewModeWeek)
		if err != nil {
			t.Fatalf("Resolve returned error: %v", err)
		}
		if !rng.Start.Equal(date(2024, time.June, 9)) {
			t.Errorf("week start for 2024-06-%02d = %v, want 2024-06-09", d, rng.Start)
		}
	}
}

func TestResolveMonth(t *testing.T) {
	tests := []struct {
		ref     time.Time
		lastDay int
	}{
		{ref: date(2024, time.June, 12), lastDay: 30},
		{ref: date(2024, time.February, 10), lastDay: 29}, // leap year
		{ref: date(2023, time.February, 10), lastDay: 28},
		{ref: date(2024, time.December, 31), lastDay: 31},
	}

	for _, tt := range tests {
		rng, err := Resolve(tt.ref, ViewModeMonth)
		if err != nil {
			t.Fatalf("Resolve returned error: %v", err)
		}
		if rng.Start.Day() != 1 {
			t.Errorf("month start day for %v = %d, want 1", tt.ref, rng.Start.Day())
		}
		if rng.End.Day() != tt.lastDay {
			t.Errorf("month end day for %v = %d, want %d", tt.ref, rng.End.Day(), tt.lastDay)
		}
		if rng.Start.Month() != tt.ref.Month() || rng.End.Month() != tt.ref.Month() {
			t.Errorf("month range for %v left the month: [%v, %v]", tt.ref, rng.Start, rng.End)
		}
	}
}

func TestResolveContainsReference(t *testing.T) {
	refs := []time.Time{
		time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 12, 23, 59, 59, 0, time.UTC),
		time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 6, 15, 0, 0, time.UTC),
	}
	modes := []ViewMode{ViewModeDay, ViewModeWeek, ViewModeMonth}

	for _, ref := range refs {
		for _, mode := range modes {
			rng, err := Resolve(ref, mode)
			if err != nil {
				t.Fatalf("Resolve(%v, %v) returned error: %v", ref, mode, err)
			}
			if !rng.Contains(ref) {
				t.Errorf("Resolve(%v, %v) = [%v, %v] does not contain the reference", ref, mode, rng.Start, rng.End)
			}
		}
	}
}

func TestResolveInvalidMode(t *testing.T) {
	_, err := Resolve(date(2024, time.June, 12), ViewMode("quarter"))
	if !errors.Is(err, ErrInvalidViewMode) {
		t.Errorf("Resolve with invalid mode error = %v, want ErrInvalidViewMode", err)
	}
}

func TestDateRangeUnixTruncates(t *testing.T) {
	rng, err := Resolve(date(2024, time.June, 12), ViewModeDay)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	// 23:59:59.999 truncates toward zero to the :59 second
	wantEnd := time.Date(2024, time.June, 12, 23, 59, 59, 0, time.UTC).Unix()
	if rng.EndUnix() != wantEnd {
		t.Errorf("EndUnix() = %d, want %d", rng.EndUnix(), wantEnd)
	}
	if rng.StartUnix() != date(2024, time.June, 12).Unix() {
		t.Errorf("StartUnix() = %d, want %d", rng.StartUnix(), date(2024, time.June, 12).Unix())
	}
}
