package datetime

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// SetParserConfig wires the recurrence parser: the marker patterns plus
// the full leaf parser chain the each-marker can delegate to. The
// weekday regex groups referenced by name: "weekday"; the each-unit
// regex: "other", "unit".
type SetParserConfig struct {
	EachPrefixRegex *regexp.Regexp
	PeriodicRegex   *regexp.Regexp
	EachUnitRegex   *regexp.Regexp
	EachDayRegex    *regexp.Regexp
	SetEachRegex    *regexp.Regexp
	SetWeekDayRegex *regexp.Regexp

	// GetMatchedDailyTimex maps a periodic word ("daily") to its
	// recurrence timex ("P1D").
	GetMatchedDailyTimex func(text string) (string, bool)
	// GetMatchedUnitTimex maps a unit word ("week") to its recurrence
	// timex ("P1W").
	GetMatchedUnitTimex func(text string) (string, bool)

	DurationExtractor       Extractor
	TimeExtractor           Extractor
	DateExtractor           Extractor
	DateTimeExtractor       Extractor
	DatePeriodExtractor     Extractor
	TimePeriodExtractor     Extractor
	DateTimePeriodExtractor Extractor
	DurationParser          Parser
	TimeParser              Parser
	DateParser              Parser
	DateTimeParser          Parser
	DatePeriodParser        Parser
	TimePeriodParser        Parser
	DateTimePeriodParser    Parser
}

func (c *SetParserConfig) validate() error {
	switch {
	case c == nil:
		return errors.New("set parser config is nil")
	case c.EachPrefixRegex == nil || c.PeriodicRegex == nil || c.EachUnitRegex == nil:
		return errors.New("set parser config: each and periodic regexes are required")
	case c.EachDayRegex == nil || c.SetEachRegex == nil || c.SetWeekDayRegex == nil:
		return errors.New("set parser config: each-day, set-each and weekday regexes are required")
	case c.GetMatchedDailyTimex == nil || c.GetMatchedUnitTimex == nil:
		return errors.New("set parser config: timex callbacks are required")
	case c.DurationExtractor == nil || c.TimeExtractor == nil || c.DateExtractor == nil:
		return errors.New("set parser config: duration, time and date extractors are required")
	case c.DateTimeExtractor == nil || c.TimePeriodExtractor == nil || c.DateTimePeriodExtractor == nil:
		return errors.New("set parser config: datetime and period extractors are required")
	case c.DurationParser == nil || c.TimeParser == nil || c.DateParser == nil:
		return errors.New("set parser config: duration, time and date parsers are required")
	case c.DateTimeParser == nil || c.TimePeriodParser == nil || c.DateTimePeriodParser == nil:
		return errors.New("set parser config: datetime and period parsers are required")
	}
	return nil
}

// SetParser resolves recurring-expression spans to a "Set: <timex>"
// label. Like the extractor, the date-period slot may be nil.
type SetParser struct {
	config *SetParserConfig
}

// NewSetParser wires a set parser, failing fast on an incomplete
// configuration.
func NewSetParser(config *SetParserConfig) (*SetParser, error) {
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "set parser")
	}
	return &SetParser{config: config}, nil
}

// Parse resolves one recurrence span. Direct unit and periodic forms
// are tried first; anything else strips the each-marker and delegates
// the remainder to the leaf parsers, most compound first.
func (p *SetParser) Parse(er ExtractResult, reference time.Time) ParseResult {
	ret := ParseResult{ExtractResult: er}
	if er.Type != TypeSet {
		return ret
	}
	trimmed := strings.TrimSpace(strings.ToLower(er.Text))

	res := p.parseEachUnit(trimmed)
	if !res.Success {
		res = p.parseEachDuration(trimmed, reference)
	}
	if !res.Success {
		res = p.parseTimeEveryday(trimmed, reference)
	}
	if !res.Success {
		res = p.parseEach(p.config.DateTimePeriodExtractor, p.config.DateTimePeriodParser, trimmed, reference)
	}
	if !res.Success && p.config.DatePeriodExtractor != nil && p.config.DatePeriodParser != nil {
		res = p.parseEach(p.config.DatePeriodExtractor, p.config.DatePeriodParser, trimmed, reference)
	}
	if !res.Success {
		res = p.parseEach(p.config.TimePeriodExtractor, p.config.TimePeriodParser, trimmed, reference)
	}
	if !res.Success {
		res = p.parseEach(p.config.DateTimeExtractor, p.config.DateTimeParser, trimmed, reference)
	}
	if !res.Success {
		res = p.parseEach(p.config.DateExtractor, p.config.DateParser, trimmed, reference)
	}
	if !res.Success {
		res = p.parseEach(p.config.TimeExtractor, p.config.TimeParser, trimmed, reference)
	}
	if !res.Success {
		return ret
	}

	label := res.FutureValue.Label
	res.FutureResolution = map[string]string{KeySet: label}
	res.PastResolution = map[string]string{KeySet: label}
	ret.Value = &res
	ret.Timex = res.Timex
	return ret
}

// parseEachUnit handles direct forms: a periodic word ("daily") or an
// each-marked unit ("every week", "every other week").
func (p *SetParser) parseEachUnit(text string) Resolution {
	var ret Resolution

	if fullMatch(p.config.PeriodicRegex, text) {
		timex, ok := p.config.GetMatchedDailyTimex(text)
		if !ok {
			return ret
		}
		return p.setResolution(timex)
	}

	m := findFullSubmatch(p.config.EachUnitRegex, text)
	if m == nil {
		return ret
	}
	timex, ok := p.config.GetMatchedUnitTimex(strings.TrimSpace(m["unit"]))
	if !ok {
		return ret
	}
	// "every other" doubles the interval: P1W becomes P2W.
	if m["other"] != "" {
		timex = strings.Replace(timex, "1", "2", 1)
	}
	return p.setResolution(timex)
}

// parseEachDuration handles an each-prefix over an explicit duration,
// e.g. "every 3 days".
func (p *SetParser) parseEachDuration(text string, reference time.Time) Resolution {
	var ret Resolution

	ers := p.config.DurationExtractor.Extract(text, reference)
	if len(ers) != 1 {
		return ret
	}
	before := text[:ers[0].Start]
	if _, ok := suffixMatchStart(p.config.EachPrefixRegex, before); !ok {
		return ret
	}
	if strings.TrimSpace(text[ers[0].End():]) != "" {
		return ret
	}

	pr := p.config.DurationParser.Parse(ers[0], reference)
	if pr.Value == nil {
		return ret
	}
	return p.setResolution(pr.Timex)
}

// parseTimeEveryday handles a time governed by an each-day phrase on
// either side, e.g. "every day at 9am".
func (p *SetParser) parseTimeEveryday(text string, reference time.Time) Resolution {
	var ret Resolution

	ers := p.config.TimeExtractor.Extract(text, reference)
	if len(ers) != 1 {
		return ret
	}
	remainder := text[:ers[0].Start] + text[ers[0].End():]
	if !p.config.EachDayRegex.MatchString(remainder) {
		return ret
	}

	pr := p.config.TimeParser.Parse(ers[0], reference)
	if pr.Value == nil {
		return ret
	}
	return p.setResolution(pr.Timex)
}

// parseEach strips the each-marker and requires the remainder to be
// exactly one span of the delegate extractor.
func (p *SetParser) parseEach(extractor Extractor, parser Parser, text string, reference time.Time) Resolution {
	var ret Resolution

	var candidates []string
	if loc := p.config.SetEachRegex.FindStringIndex(text); loc != nil {
		candidates = append(candidates, strings.TrimSpace(text[:loc[0]]+text[loc[1]:]))
	}
	// Plural weekdays: "mondays" delegates as the singular weekday.
	if m := findSubmatch(p.config.SetWeekDayRegex, text); m != nil {
		loc := p.config.SetWeekDayRegex.FindStringIndex(text)
		candidates = append(candidates, strings.TrimSpace(text[:loc[0]]+m["weekday"]+text[loc[1]:]))
	}

	for _, trimmed := range candidates {
		ers := extractor.Extract(trimmed, reference)
		if len(ers) != 1 || ers[0].Length != len(trimmed) {
			continue
		}
		pr := parser.Parse(ers[0], reference)
		if pr.Value == nil {
			continue
		}
		return p.setResolution(pr.Timex)
	}
	return ret
}

// setResolution wraps a recurrence timex into the label value pair.
func (p *SetParser) setResolution(timex string) Resolution {
	label := "Set: " + timex
	return Resolution{
		Success:     true,
		Timex:       timex,
		FutureValue: LabelValue(label),
		PastValue:   LabelValue(label),
	}
}
