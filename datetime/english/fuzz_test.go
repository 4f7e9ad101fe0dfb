package english

import (
	"testing"
	"time"
)

var fuzzRef = time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)

func FuzzRecognize(f *testing.F) {
	// Seed corpus covering every span type and merge pass.
	seeds := []string{
		// Dates
		"monday",
		"next friday",
		"tomorrow",
		"the day after tomorrow",
		"march 5 2026",
		"5th of march",
		"2026-03-05",
		"3/5/2026",
		// Times
		"14:30",
		"09:05:22",
		"5pm",
		"eleven am",
		"ten o'clock",
		// Durations
		"20 minutes",
		"an hour",
		"twenty five days",
		// Periods
		"from 3pm to 5pm",
		"between 3 and 5pm",
		"from 3pm to 5pm on monday",
		"monday night 8pm to 10pm",
		"monday 9pm to monday 1am",
		"tomorrow at 3:30pm until 5pm",
		"tomorrow morning",
		"tomorrow early morning",
		"tonight",
		"in 20 minutes",
		"last 2 hours",
		"last hour",
		"rest of the day",
		// Sets
		"daily",
		"every other week",
		"every 3 days",
		"every day at 9am",
		"every monday at 9am",
		"mondays at 9am",
		// Noise and edge shapes
		"",
		"   ",
		"from to",
		"every",
		"5pm to",
		"let's meet from 3pm to 5pm on monday, ok?",
		"\x00\xff broken utf8 \xc3",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	c, err := NewComponents()
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, text string) {
		results := c.Recognize(text, fuzzRef)

		prevEnd := 0
		for i, pr := range results {
			if pr.Start < 0 || pr.End() > len(text) {
				t.Fatalf("[%d] span [%d,%d) out of bounds for %q", i, pr.Start, pr.End(), text)
			}
			if pr.Text != text[pr.Start:pr.End()] {
				t.Fatalf("[%d] Text %q != slice %q", i, pr.Text, text[pr.Start:pr.End()])
			}
			if pr.Start < prevEnd {
				t.Fatalf("[%d] span [%d,%d) overlaps previous end %d", i, pr.Start, pr.End(), prevEnd)
			}
			if pr.Value == nil {
				t.Fatalf("[%d] unresolved span %q returned", i, pr.Text)
			}
			prevEnd = pr.End()
		}
	})
}
