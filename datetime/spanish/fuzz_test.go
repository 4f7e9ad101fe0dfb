package spanish

import (
	"testing"
	"time"
)

var fuzzRef = time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)

func FuzzRecognize(f *testing.F) {
	// Seed corpus covering every span type and merge pass.
	seeds := []string{
		// Dates
		"el lunes",
		"próximo viernes",
		"mañana",
		"pasado mañana",
		"anteayer",
		"el 5 de marzo de 2026",
		"2026-03-05",
		"5/3/2026",
		// Times
		"14:30",
		"a las 5 de la tarde",
		"a las 9",
		// Durations
		"20 minutos",
		"una hora",
		"veinticinco días",
		// Periods
		"desde las 3 hasta las 5 de la tarde",
		"entre las 3 y las 5 de la tarde",
		"el lunes de 3 a 5 de la tarde",
		"mañana por la tarde",
		"esta noche",
		"anoche",
		"dentro de 20 minutos",
		"última hora",
		"resto del día",
		// Sets
		"diariamente",
		"cada otro día",
		"cada 3 días",
		"todos los días a las 9",
		"cada lunes a las 9",
		"los lunes a las 9",
		// Noise and edge shapes
		"",
		"   ",
		"desde hasta",
		"cada",
		"a las",
		"nos vemos el lunes de 3 a 5 de la tarde, ¿vale?",
		"\x00\xff utf8 roto \xc3",
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
