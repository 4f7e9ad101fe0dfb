package spanish

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubio41/Recognizers-Text/datetime"
)

// ref is the fixed reference time used across all tests:
// Friday, 2026-02-20 10:30 UTC.
var ref = time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)

func newComponents(t *testing.T) *datetime.Components {
	t.Helper()
	c, err := NewComponents()
	require.NoError(t, err)
	return c
}

func recognizeOne(t *testing.T, c *datetime.Components, text string) datetime.ParseResult {
	t.Helper()
	results := c.Recognize(text, ref)
	require.Len(t, results, 1, "text %q", text)
	require.NotNil(t, results[0].Value)
	return results[0]
}

func TestRecognizePoints(t *testing.T) {
	t.Parallel()
	c := newComponents(t)

	tests := []struct {
		name     string
		text     string
		wantType string
		wantTx   string
		wantRes  map[string]string
	}{
		{
			name:     "relative day",
			text:     "pasado mañana",
			wantType: datetime.TypeDate,
			wantTx:   "2026-02-22",
			wantRes:  map[string]string{"date": "2026-02-22"},
		},
		{
			name:     "month day with year",
			text:     "el 5 de marzo de 2026",
			wantType: datetime.TypeDate,
			wantTx:   "2026-03-05",
			wantRes:  map[string]string{"date": "2026-03-05"},
		},
		{
			name:     "bare weekday resolves forward",
			text:     "el lunes",
			wantType: datetime.TypeDate,
			wantTx:   "XXXX-WXX-1",
			wantRes:  map[string]string{"date": "2026-02-23"},
		},
		{
			name:     "date with day-part clock",
			text:     "mañana a las 5 de la tarde",
			wantType: datetime.TypeDateTime,
			wantTx:   "2026-02-21T17",
			wantRes:  map[string]string{"datetime": "2026-02-21 17:00:00"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pr := recognizeOne(t, c, tt.text)
			assert.Equal(t, tt.wantType, pr.Type)
			assert.Equal(t, tt.wantTx, pr.Timex)
			assert.Equal(t, tt.wantRes, pr.Value.FutureResolution)
		})
	}
}

func TestRecognizeTimePeriods(t *testing.T) {
	t.Parallel()
	c := newComponents(t)

	tests := []struct {
		name string
		text string
	}{
		{"desde hasta", "desde las 3 hasta las 5 de la tarde"},
		{"entre y", "entre las 3 y las 5 de la tarde"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pr := recognizeOne(t, c, tt.text)
			assert.Equal(t, datetime.TypeTimePeriod, pr.Type)
			assert.Equal(t, "(T15,T17,PT2H)", pr.Timex)
			assert.Equal(t, map[string]string{
				datetime.KeyStartDateTime: "2026-02-20 15:00:00",
				datetime.KeyEndDateTime:   "2026-02-20 17:00:00",
			}, pr.Value.FutureResolution)
		})
	}
}

func TestRecognizeDateTimePeriods(t *testing.T) {
	t.Parallel()
	c := newComponents(t)

	tests := []struct {
		name      string
		text      string
		wantTx    string
		wantStart string
		wantEnd   string
		wantMod   string
	}{
		{
			// "mañana" before the day-part preposition is the relative
			// day, not the morning.
			name:      "tomorrow afternoon",
			text:      "mañana por la tarde",
			wantTx:    "2026-02-21TEV",
			wantStart: "2026-02-21 16:00:00",
			wantEnd:   "2026-02-21 20:00:00",
		},
		{
			name:      "standalone tonight",
			text:      "esta noche",
			wantTx:    "2026-02-20TNI",
			wantStart: "2026-02-20 20:00:00",
			wantEnd:   "2026-02-20 23:59:59",
		},
		{
			name:      "last night",
			text:      "anoche",
			wantTx:    "2026-02-19TNI",
			wantStart: "2026-02-19 20:00:00",
			wantEnd:   "2026-02-19 23:59:59",
		},
		{
			name:      "weekday with clock range",
			text:      "el lunes de 3 a 5 de la tarde",
			wantTx:    "(XXXX-WXX-1T15,XXXX-WXX-1T17,PT2H)",
			wantStart: "2026-02-23 15:00:00",
			wantEnd:   "2026-02-23 17:00:00",
		},
		{
			name:      "future duration window",
			text:      "dentro de 20 minutos",
			wantTx:    "(2026-02-20T10:30:00,2026-02-20T10:50:00,PT20M)",
			wantStart: "2026-02-20 10:30:00",
			wantEnd:   "2026-02-20 10:50:00",
			wantMod:   datetime.ModAfter,
		},
		{
			name:      "relative unit backward",
			text:      "última hora",
			wantTx:    "(2026-02-20T09:30:00,2026-02-20T10:30:00,PT1H)",
			wantStart: "2026-02-20 09:30:00",
			wantEnd:   "2026-02-20 10:30:00",
		},
		{
			name:      "rest of the day",
			text:      "resto del día",
			wantTx:    "(2026-02-20T00:00:00,2026-02-20T23:59:59,PT86399S)",
			wantStart: "2026-02-20 00:00:00",
			wantEnd:   "2026-02-20 23:59:59",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pr := recognizeOne(t, c, tt.text)
			assert.Equal(t, datetime.TypeDateTimePeriod, pr.Type)
			assert.Equal(t, tt.wantTx, pr.Timex)
			assert.Equal(t, tt.wantStart, pr.Value.FutureResolution[datetime.KeyStartDateTime])
			assert.Equal(t, tt.wantEnd, pr.Value.FutureResolution[datetime.KeyEndDateTime])
			assert.Equal(t, tt.wantMod, pr.Value.Mod)
		})
	}
}

func TestRecognizeSets(t *testing.T) {
	t.Parallel()
	c := newComponents(t)

	tests := []struct {
		name   string
		text   string
		wantTx string
	}{
		{"periodic word", "diariamente", "P1D"},
		{"each unit", "cada semana", "P1W"},
		{"every other doubles the interval", "cada otro día", "P2D"},
		{"each duration", "cada 3 días", "P3D"},
		{"time under every day", "todos los días a las 9", "T09"},
		{"each weekday with time", "cada lunes a las 9", "XXXX-WXX-1T09"},
		{"plural weekday with time", "los lunes a las 9", "XXXX-WXX-1T09"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pr := recognizeOne(t, c, tt.text)
			assert.Equal(t, datetime.TypeSet, pr.Type)
			assert.Equal(t, tt.wantTx, pr.Timex)
			assert.Equal(t, map[string]string{datetime.KeySet: "Set: " + tt.wantTx},
				pr.Value.FutureResolution)
		})
	}
}

func TestRecognizeNothing(t *testing.T) {
	t.Parallel()
	c := newComponents(t)

	for _, text := range []string{"", "   ", "texto sin contenido temporal"} {
		assert.Empty(t, c.Recognize(text, ref), "text %q", text)
	}
}
