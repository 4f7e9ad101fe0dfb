package datetime

import (
	"testing"
	"time"
)

// stubExtractor returns a fixed span list regardless of input.
type stubExtractor struct {
	ers []ExtractResult
}

func (s stubExtractor) Extract(string, time.Time) []ExtractResult {
	return s.ers
}

// stubParser resolves every span unless fail is set.
type stubParser struct {
	fail bool
}

func (s stubParser) Parse(er ExtractResult, _ time.Time) ParseResult {
	ret := ParseResult{ExtractResult: er}
	if s.fail {
		return ret
	}
	ret.Value = &Resolution{Success: true, Timex: "stub"}
	ret.Timex = "stub"
	return ret
}

func span(start, length int, typ string) ExtractResult {
	return ExtractResult{Start: start, Length: length, Type: typ}
}

// stubComponents fills every required slot with empty stubs; tests then
// override the slots they exercise.
func stubComponents() *Components {
	return &Components{
		DateExtractor:           stubExtractor{},
		TimeExtractor:           stubExtractor{},
		DateTimeExtractor:       stubExtractor{},
		DurationExtractor:       stubExtractor{},
		TimePeriodExtractor:     stubExtractor{},
		DateTimePeriodExtractor: stubExtractor{},
		SetExtractor:            stubExtractor{},
		DateParser:              stubParser{},
		TimeParser:              stubParser{},
		DateTimeParser:          stubParser{},
		DurationParser:          stubParser{},
		TimePeriodParser:        stubParser{},
		DateTimePeriodParser:    stubParser{},
		SetParser:               stubParser{},
	}
}

func TestRecognizePriorityClaiming(t *testing.T) {
	t.Parallel()

	// The set span [0,10) must suppress the overlapping time span [5,8)
	// but not the disjoint one at [12,15).
	c := stubComponents()
	c.SetExtractor = stubExtractor{ers: []ExtractResult{span(0, 10, TypeSet)}}
	c.TimeExtractor = stubExtractor{ers: []ExtractResult{
		span(5, 3, TypeTime),
		span(12, 3, TypeTime),
	}}

	got := c.Recognize("irrelevant", time.Now())
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2: %v", len(got), got)
	}
	if got[0].Type != TypeSet || got[0].Start != 0 {
		t.Errorf("[0] = %+v, want set at 0", got[0].ExtractResult)
	}
	if got[1].Type != TypeTime || got[1].Start != 12 {
		t.Errorf("[1] = %+v, want time at 12", got[1].ExtractResult)
	}
}

func TestRecognizeSkipsUnresolvedSpans(t *testing.T) {
	t.Parallel()

	// A span whose parser fails must not claim its region: the
	// lower-priority time span underneath survives.
	c := stubComponents()
	c.SetExtractor = stubExtractor{ers: []ExtractResult{span(0, 10, TypeSet)}}
	c.SetParser = stubParser{fail: true}
	c.TimeExtractor = stubExtractor{ers: []ExtractResult{span(2, 3, TypeTime)}}

	got := c.Recognize("irrelevant", time.Now())
	if len(got) != 1 || got[0].Type != TypeTime {
		t.Fatalf("got %v, want the single time span", got)
	}
}

func TestRecognizeSortsByStart(t *testing.T) {
	t.Parallel()

	c := stubComponents()
	c.TimeExtractor = stubExtractor{ers: []ExtractResult{span(20, 3, TypeTime)}}
	c.DateExtractor = stubExtractor{ers: []ExtractResult{span(0, 5, TypeDate)}}

	got := c.Recognize("irrelevant", time.Now())
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].Start != 0 || got[1].Start != 20 {
		t.Errorf("results out of order: %v, %v", got[0].Start, got[1].Start)
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	var r Registry
	if err := r.Register("", stubComponents()); err == nil {
		t.Error("Register accepted an empty culture code")
	}
	if err := r.Register("xx-xx", &Components{}); err == nil {
		t.Error("Register accepted incomplete components")
	}
	if err := r.Register("en-us", stubComponents()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register("es-es", stubComponents()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, ok := r.Lookup("en-us"); !ok {
		t.Error("Lookup missed a registered culture")
	}
	if _, ok := r.Lookup("fr-fr"); ok {
		t.Error("Lookup found an unregistered culture")
	}

	cultures := r.Cultures()
	if len(cultures) != 2 || cultures[0] != "en-us" || cultures[1] != "es-es" {
		t.Errorf("Cultures = %v", cultures)
	}
}

func TestComponentsValidateAllowsNilDatePeriod(t *testing.T) {
	t.Parallel()

	c := stubComponents()
	if err := c.validate(); err != nil {
		t.Fatalf("validate rejected nil date-period slots: %v", err)
	}

	c.SetParser = nil
	if err := c.validate(); err == nil {
		t.Error("validate accepted a missing set parser")
	}
}
