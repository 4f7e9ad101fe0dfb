package datetime

import (
	"testing"
	"time"
)

func TestRangeTimexRoundTrip(t *testing.T) {
	t.Parallel()

	timex := rangeTimex("2026-02-20T15", "2026-02-20T17", "PT2H")
	if timex != "(2026-02-20T15,2026-02-20T17,PT2H)" {
		t.Fatalf("rangeTimex = %q", timex)
	}

	begin, end, dur, ok := splitRangeTimex(timex)
	if !ok {
		t.Fatal("splitRangeTimex failed on its own output")
	}
	if begin != "2026-02-20T15" || end != "2026-02-20T17" || dur != "PT2H" {
		t.Errorf("split = %q %q %q", begin, end, dur)
	}
}

func TestSplitRangeTimexRejects(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"", "T15", "(a,b)", "(a,b,c,d)", "a,b,c"} {
		if _, _, _, ok := splitRangeTimex(bad); ok {
			t.Errorf("splitRangeTimex(%q) accepted", bad)
		}
	}
}

func TestHourTimex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour int
		want string
	}{
		{0, "T00"},
		{9, "T09"},
		{15, "T15"},
	}
	for _, tt := range tests {
		if got := hourTimex(tt.hour); got != tt.want {
			t.Errorf("hourTimex(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestDayHelpers(t *testing.T) {
	t.Parallel()

	instant := time.Date(2026, 2, 20, 10, 30, 45, 0, time.UTC)

	if got := dateOf(instant); !got.Equal(time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("dateOf = %v", got)
	}
	if got := onDay(instant, 23, 59, 59); !got.Equal(time.Date(2026, 2, 20, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("onDay = %v", got)
	}
	if got := pointTimex(instant); got != "2026-02-20T10:30:45" {
		t.Errorf("pointTimex = %q", got)
	}
	if got := FormatDateTime(instant); got != "2026-02-20 10:30:45" {
		t.Errorf("FormatDateTime = %q", got)
	}
}

func TestIntervalResolution(t *testing.T) {
	t.Parallel()

	v := IntervalValue(
		time.Date(2026, 2, 20, 15, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 20, 17, 0, 0, 0, time.UTC))
	got := intervalResolution(v)
	if got[KeyStartDateTime] != "2026-02-20 15:00:00" {
		t.Errorf("start = %q", got[KeyStartDateTime])
	}
	if got[KeyEndDateTime] != "2026-02-20 17:00:00" {
		t.Errorf("end = %q", got[KeyEndDateTime])
	}
}
