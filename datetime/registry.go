package datetime

import (
	"sort"
	"time"

	"github.com/pkg/errors"
)

// Components is one culture's full extractor and parser set. The
// DatePeriod pair is optional; cultures without date-period patterns
// leave both slots nil and the set chain skips them.
type Components struct {
	DateExtractor           Extractor
	TimeExtractor           Extractor
	DateTimeExtractor       Extractor
	DurationExtractor       Extractor
	DatePeriodExtractor     Extractor
	TimePeriodExtractor     Extractor
	DateTimePeriodExtractor Extractor
	SetExtractor            Extractor

	DateParser           Parser
	TimeParser           Parser
	DateTimeParser       Parser
	DurationParser       Parser
	DatePeriodParser     Parser
	TimePeriodParser     Parser
	DateTimePeriodParser Parser
	SetParser            Parser
}

func (c *Components) validate() error {
	switch {
	case c == nil:
		return errors.New("components are nil")
	case c.DateExtractor == nil || c.TimeExtractor == nil || c.DateTimeExtractor == nil:
		return errors.New("components: date, time and datetime pairs are required")
	case c.DurationExtractor == nil || c.TimePeriodExtractor == nil:
		return errors.New("components: duration and time period pairs are required")
	case c.DateTimePeriodExtractor == nil || c.SetExtractor == nil:
		return errors.New("components: datetime period and set pairs are required")
	case c.DateParser == nil || c.TimeParser == nil || c.DateTimeParser == nil:
		return errors.New("components: date, time and datetime parsers are required")
	case c.DurationParser == nil || c.TimePeriodParser == nil:
		return errors.New("components: duration and time period parsers are required")
	case c.DateTimePeriodParser == nil || c.SetParser == nil:
		return errors.New("components: datetime period and set parsers are required")
	}
	return nil
}

// pairs lists the extractor/parser pairs in recognition priority order:
// recurrences first, then the most compound span types, so an outer
// span claims its text before any inner fragment can.
func (c *Components) pairs() []struct {
	extractor Extractor
	parser    Parser
} {
	all := []struct {
		extractor Extractor
		parser    Parser
	}{
		{c.SetExtractor, c.SetParser},
		{c.DateTimePeriodExtractor, c.DateTimePeriodParser},
		{c.DatePeriodExtractor, c.DatePeriodParser},
		{c.TimePeriodExtractor, c.TimePeriodParser},
		{c.DateTimeExtractor, c.DateTimeParser},
		{c.DurationExtractor, c.DurationParser},
		{c.DateExtractor, c.DateParser},
		{c.TimeExtractor, c.TimeParser},
	}
	kept := all[:0]
	for _, p := range all {
		if p.extractor != nil && p.parser != nil {
			kept = append(kept, p)
		}
	}
	return kept
}

// Recognize runs the whole component set over text. Higher-priority
// span types claim their text first; lower-priority spans overlapping a
// claimed region are dropped. Results are sorted by start offset and
// only resolved spans are returned.
func (c *Components) Recognize(text string, reference time.Time) []ParseResult {
	var claimed []ExtractResult
	var results []ParseResult

	for _, pair := range c.pairs() {
		for _, er := range pair.extractor.Extract(text, reference) {
			overlapped := false
			for _, prev := range claimed {
				if er.Overlaps(prev) {
					overlapped = true
					break
				}
			}
			if overlapped {
				continue
			}
			pr := pair.parser.Parse(er, reference)
			if pr.Value == nil {
				continue
			}
			claimed = append(claimed, er)
			results = append(results, pr)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Start < results[j].Start
	})
	return results
}

// Registry maps culture codes to component sets. The zero value is
// ready to use. Registration happens at startup; lookups afterwards are
// read-only, so the registry carries no lock.
type Registry struct {
	cultures map[string]*Components
}

// Register binds a component set to a culture code ("en-us").
// Re-registering a culture replaces the previous set.
func (r *Registry) Register(culture string, components *Components) error {
	if culture == "" {
		return errors.New("registry: culture code is empty")
	}
	if err := components.validate(); err != nil {
		return errors.Wrapf(err, "registry: culture %s", culture)
	}
	if r.cultures == nil {
		r.cultures = make(map[string]*Components)
	}
	r.cultures[culture] = components
	return nil
}

// Lookup returns the component set for a culture code.
func (r *Registry) Lookup(culture string) (*Components, bool) {
	c, ok := r.cultures[culture]
	return c, ok
}

// Cultures lists the registered culture codes, sorted.
func (r *Registry) Cultures() []string {
	out := make([]string, 0, len(r.cultures))
	for c := range r.cultures {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
