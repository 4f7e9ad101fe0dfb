package english

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
			name:     "bare weekday resolves forward",
			text:     "monday",
			wantType: datetime.TypeDate,
			wantTx:   "XXXX-WXX-1",
			wantRes:  map[string]string{"date": "2026-02-23"},
		},
		{
			name:     "relative day",
			text:     "the day after tomorrow",
			wantType: datetime.TypeDate,
			wantTx:   "2026-02-22",
			wantRes:  map[string]string{"date": "2026-02-22"},
		},
		{
			name:     "iso date",
			text:     "2026-03-05",
			wantType: datetime.TypeDate,
			wantTx:   "2026-03-05",
			wantRes:  map[string]string{"date": "2026-03-05"},
		},
		{
			name:     "clock time",
			text:     "14:30",
			wantType: datetime.TypeTime,
			wantTx:   "T14:30",
			wantRes:  map[string]string{"time": "14:30:00"},
		},
		{
			name:     "date and time joined by connector",
			text:     "tomorrow at 5pm",
			wantType: datetime.TypeDateTime,
			wantTx:   "2026-02-21T17",
			wantRes:  map[string]string{"datetime": "2026-02-21 17:00:00"},
		},
		{
			name:     "word duration",
			text:     "twenty minutes",
			wantType: datetime.TypeDuration,
			wantTx:   "PT20M",
			wantRes:  nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pr := recognizeOne(t, c, tt.text)
			assert.Equal(t, tt.wantType, pr.Type)
			assert.Equal(t, tt.wantTx, pr.Timex)
			if tt.wantRes != nil {
				assert.Equal(t, tt.wantRes, pr.Value.FutureResolution)
			}
		})
	}
}

func TestRecognizeTimePeriod(t *testing.T) {
	t.Parallel()
	c := newComponents(t)

	pr := recognizeOne(t, c, "from 3pm to 5pm")
	assert.Equal(t, datetime.TypeTimePeriod, pr.Type)
	assert.Equal(t, "(T15,T17,PT2H)", pr.Timex)
	assert.Equal(t, map[string]string{
		datetime.KeyStartDateTime: "2026-02-20 15:00:00",
		datetime.KeyEndDateTime:   "2026-02-20 17:00:00",
	}, pr.Value.FutureResolution)
}

func TestRecognizeDateTimePeriods(t *testing.T) {
	t.Parallel()
	c := newComponents(t)

	tests := []struct {
		name        string
		text        string
		wantTx      string
		wantStart   string
		wantEnd     string
		wantComment datetime.Comment
		wantMod     string
	}{
		{
			name:      "day part after date",
			text:      "tomorrow morning",
			wantTx:    "2026-02-21TMO",
			wantStart: "2026-02-21 08:00:00",
			wantEnd:   "2026-02-21 12:00:00",
		},
		{
			name:        "early shrinks the window front",
			text:        "tomorrow early morning",
			wantTx:      "2026-02-21TMO",
			wantStart:   "2026-02-21 08:00:00",
			wantEnd:     "2026-02-21 10:00:00",
			wantComment: datetime.CommentEarly,
		},
		{
			name:        "late shrinks the window back",
			text:        "tomorrow late night",
			wantTx:      "2026-02-21TNI",
			wantStart:   "2026-02-21 22:00:00",
			wantEnd:     "2026-02-21 23:59:59",
			wantComment: datetime.CommentLate,
		},
		{
			name:      "standalone tonight",
			text:      "tonight",
			wantTx:    "2026-02-20TNI",
			wantStart: "2026-02-20 20:00:00",
			wantEnd:   "2026-02-20 23:59:59",
		},
		{
			name:      "hour range with trailing date",
			text:      "from 3pm to 5pm on monday",
			wantTx:    "(XXXX-WXX-1T15,XXXX-WXX-1T17,PT2H)",
			wantStart: "2026-02-23 15:00:00",
			wantEnd:   "2026-02-23 17:00:00",
		},
		{
			name:        "hour range with no meridiem keeps ambiguity",
			text:        "from 5 to 7 on monday",
			wantTx:      "(XXXX-WXX-1T05,XXXX-WXX-1T07,PT2H)",
			wantStart:   "2026-02-23 05:00:00",
			wantEnd:     "2026-02-23 07:00:00",
			wantComment: datetime.CommentAmPm,
		},
		{
			name:      "clock range overrides the day part",
			text:      "monday night 8pm to 10pm",
			wantTx:    "(XXXX-WXX-1T20,XXXX-WXX-1T22,PT2H)",
			wantStart: "2026-02-23 20:00:00",
			wantEnd:   "2026-02-23 22:00:00",
		},
		{
			name:      "numeric date with clock range",
			text:      "2026-03-05 from 3pm to 5pm",
			wantTx:    "(2026-03-05T15,2026-03-05T17,PT2H)",
			wantStart: "2026-03-05 15:00:00",
			wantEnd:   "2026-03-05 17:00:00",
		},
		{
			name:      "two dated points",
			text:      "tomorrow 3pm to tomorrow 5pm",
			wantTx:    "(2026-02-21T15,2026-02-21T17,PT2H)",
			wantStart: "2026-02-21 15:00:00",
			wantEnd:   "2026-02-21 17:00:00",
		},
		{
			name:      "dateless end borrows the begin day",
			text:      "tomorrow at 3pm until 5pm",
			wantTx:    "(2026-02-21T15,2026-02-21T17,PT2H)",
			wantStart: "2026-02-21 15:00:00",
			wantEnd:   "2026-02-21 17:00:00",
		},
		{
			name:      "half-hour span rounds the duration to the nearest hour",
			text:      "tomorrow at 3:30pm until 5pm",
			wantTx:    "(2026-02-21T15:30,2026-02-21T17,PT2H)",
			wantStart: "2026-02-21 15:30:00",
			wantEnd:   "2026-02-21 17:00:00",
		},
		{
			name:      "future duration window",
			text:      "in 20 minutes",
			wantTx:    "(2026-02-20T10:30:00,2026-02-20T10:50:00,PT20M)",
			wantStart: "2026-02-20 10:30:00",
			wantEnd:   "2026-02-20 10:50:00",
			wantMod:   datetime.ModAfter,
		},
		{
			name:      "past duration window",
			text:      "last 2 hours",
			wantTx:    "(2026-02-20T08:30:00,2026-02-20T10:30:00,PT2H)",
			wantStart: "2026-02-20 08:30:00",
			wantEnd:   "2026-02-20 10:30:00",
			wantMod:   datetime.ModBefore,
		},
		{
			name:      "relative unit backward",
			text:      "last hour",
			wantTx:    "(2026-02-20T09:30:00,2026-02-20T10:30:00,PT1H)",
			wantStart: "2026-02-20 09:30:00",
			wantEnd:   "2026-02-20 10:30:00",
		},
		{
			name:      "relative unit forward",
			text:      "next minute",
			wantTx:    "(2026-02-20T10:30:00,2026-02-20T10:31:00,PT1M)",
			wantStart: "2026-02-20 10:30:00",
			wantEnd:   "2026-02-20 10:31:00",
		},
		{
			name:      "rest of the day spans the whole reference day",
			text:      "rest of the day",
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
			assert.Equal(t, tt.wantComment, pr.Value.Comment)
			assert.Equal(t, tt.wantMod, pr.Value.Mod)
		})
	}
}

func TestDateTimePeriodPastResolution(t *testing.T) {
	t.Parallel()
	c := newComponents(t)

	// The bare weekday carries a past candidate too: the previous monday.
	pr := recognizeOne(t, c, "from 3pm to 5pm on monday")
	assert.Equal(t, "2026-02-16 15:00:00", pr.Value.PastResolution[datetime.KeyStartDateTime])
	assert.Equal(t, "2026-02-16 17:00:00", pr.Value.PastResolution[datetime.KeyEndDateTime])
}

func TestDateTimePeriodInvertedRange(t *testing.T) {
	t.Parallel()
	c := newComponents(t)

	// An overnight weekday range puts the future candidates in the wrong
	// order; the begin falls back to the past monday, and the inverted
	// past end borrows the future one.
	pr := recognizeOne(t, c, "monday 9pm to monday 1am")
	assert.Equal(t, datetime.TypeDateTimePeriod, pr.Type)
	assert.Equal(t, "(XXXX-WXX-1T21,XXXX-WXX-1T01,PT148H)", pr.Timex)
	assert.Equal(t, map[string]string{
		datetime.KeyStartDateTime: "2026-02-16 21:00:00",
		datetime.KeyEndDateTime:   "2026-02-23 01:00:00",
	}, pr.Value.FutureResolution)
	assert.Equal(t, map[string]string{
		datetime.KeyStartDateTime: "2026-02-16 21:00:00",
		datetime.KeyEndDateTime:   "2026-02-23 01:00:00",
	}, pr.Value.PastResolution)
}

func TestDateTimePeriodSubEntities(t *testing.T) {
	t.Parallel()
	c := newComponents(t)

	pr := recognizeOne(t, c, "tomorrow 3pm to tomorrow 5pm")
	require.Len(t, pr.Value.SubEntities, 2)
	assert.Equal(t, "2026-02-21T15", pr.Value.SubEntities[0].Timex)
	assert.Equal(t, "2026-02-21T17", pr.Value.SubEntities[1].Timex)
}

func TestRecognizeSets(t *testing.T) {
	t.Parallel()
	c := newComponents(t)

	tests := []struct {
		name   string
		text   string
		wantTx string
	}{
		{"periodic word", "daily", "P1D"},
		{"each unit", "every week", "P1W"},
		{"every other doubles the interval", "every other week", "P2W"},
		{"each duration", "every 3 days", "P3D"},
		{"time under every day", "every day at 9am", "T09"},
		{"each weekday with time", "every monday at 9am", "XXXX-WXX-1T09"},
		{"plural weekday with time", "mondays at 9am", "XXXX-WXX-1T09"},
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

func TestRecognizeInsideSentence(t *testing.T) {
	t.Parallel()
	c := newComponents(t)

	text := "let's meet from 3pm to 5pm on monday, ok?"
	results := c.Recognize(text, ref)
	require.Len(t, results, 1)
	assert.Equal(t, "from 3pm to 5pm on monday", results[0].Text)
	assert.Equal(t, 11, results[0].Start)
	assert.Equal(t, datetime.TypeDateTimePeriod, results[0].Type)
}

func TestRecognizeNothing(t *testing.T) {
	t.Parallel()
	c := newComponents(t)

	for _, text := range []string{"", "   ", "no temporal content here"} {
		assert.Empty(t, c.Recognize(text, ref), "text %q", text)
	}
}

func TestRecognizeOverlapPriority(t *testing.T) {
	t.Parallel()
	c := newComponents(t)

	// The set span must claim the text; the inner date-time span under
	// "monday at 9am" never surfaces as its own entity.
	results := c.Recognize("every monday at 9am", ref)
	require.Len(t, results, 1)
	assert.Equal(t, datetime.TypeSet, results[0].Type)
	assert.Equal(t, "every monday at 9am", results[0].Text)
}
