package datetime

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// TimePeriodConfig carries the locale patterns for pure time ranges.
// Simple-case regex groups referenced by name: "hour1", "desc1",
// "hour2", "desc2".
type TimePeriodConfig struct {
	SimpleCasesRegexes []*regexp.Regexp
	TillRegex          *regexp.Regexp
	TimeExtractor      Extractor
	TimeParser         Parser
	Numbers            map[string]int

	AmDesc func(text string) bool
	PmDesc func(text string) bool
	// GetFromTokenIndex reports the byte index of a trailing
	// range-opening token ("from") in the lowercased prefix text,
	// ignoring trailing whitespace.
	GetFromTokenIndex func(text string) (int, bool)
	// GetBetweenTokenIndex reports the start of a trailing "between".
	GetBetweenTokenIndex func(text string) (int, bool)
}

func (c *TimePeriodConfig) validate() error {
	switch {
	case c == nil:
		return errors.New("time period config is nil")
	case len(c.SimpleCasesRegexes) == 0 || c.TillRegex == nil:
		return errors.New("time period config: simple-cases and till regexes are required")
	case c.TimeExtractor == nil || c.TimeParser == nil:
		return errors.New("time period config: time extractor and parser are required")
	case c.AmDesc == nil || c.PmDesc == nil:
		return errors.New("time period config: meridiem callbacks are required")
	case c.GetFromTokenIndex == nil || c.GetBetweenTokenIndex == nil:
		return errors.New("time period config: range token callbacks are required")
	}
	return nil
}

// TimePeriodExtractor finds pure time-range spans ("from 3 to 5pm").
type TimePeriodExtractor struct {
	config *TimePeriodConfig
}

// NewTimePeriodExtractor wires a time period extractor, failing fast on
// an incomplete configuration.
func NewTimePeriodExtractor(config *TimePeriodConfig) (*TimePeriodExtractor, error) {
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "time period extractor")
	}
	return &TimePeriodExtractor{config: config}, nil
}

// Extract returns all time-range spans in text, sorted and merged.
func (e *TimePeriodExtractor) Extract(text string, reference time.Time) []ExtractResult {
	var tokens []Token
	for _, re := range e.config.SimpleCasesRegexes {
		for _, m := range re.FindAllStringIndex(text, -1) {
			tokens = append(tokens, Token{Start: m[0], End: m[1]})
		}
	}
	tokens = append(tokens, e.mergeTwoTimePoints(text, reference)...)
	return MergeTokens(tokens, text, TypeTimePeriod)
}

// mergeTwoTimePoints joins consecutive single-time spans separated by a
// till connector, absorbing a leading "from" or "between" token.
func (e *TimePeriodExtractor) mergeTwoTimePoints(text string, reference time.Time) []Token {
	var ret []Token
	points := e.config.TimeExtractor.Extract(text, reference)

	idx := 0
	for idx < len(points)-1 {
		middle := strings.TrimSpace(text[points[idx].End():points[idx+1].Start])
		if !fullMatch(e.config.TillRegex, strings.ToLower(middle)) {
			idx++
			continue
		}

		begin := points[idx].Start
		end := points[idx+1].End()
		// The prefix keeps its offsets: callbacks report byte indexes
		// into it, so only lowercase, never trim.
		before := strings.ToLower(text[:begin])
		if i, ok := e.config.GetFromTokenIndex(before); ok {
			begin = i
		} else if i, ok := e.config.GetBetweenTokenIndex(before); ok {
			begin = i
		}
		ret = append(ret, Token{Start: begin, End: end})
		idx += 2
	}
	return ret
}

// TimePeriodParser resolves time-range spans onto the reference day.
type TimePeriodParser struct {
	config *TimePeriodConfig
}

// NewTimePeriodParser wires a time period parser.
func NewTimePeriodParser(config *TimePeriodConfig) (*TimePeriodParser, error) {
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "time period parser")
	}
	return &TimePeriodParser{config: config}, nil
}

// Parse resolves one time-range span. Ranges with no meridiem and both
// hours no greater than 12 are tagged CommentAmPm.
func (p *TimePeriodParser) Parse(er ExtractResult, reference time.Time) ParseResult {
	ret := ParseResult{ExtractResult: er}
	if er.Type != TypeTimePeriod {
		return ret
	}
	trimmed := strings.TrimSpace(strings.ToLower(er.Text))

	res := p.parseSimpleCases(trimmed, reference)
	if !res.Success {
		res = p.mergeTwoTimePoints(trimmed, reference)
	}
	if !res.Success {
		return ret
	}

	res.FutureResolution = intervalResolution(res.FutureValue)
	res.PastResolution = intervalResolution(res.PastValue)
	ret.Value = &res
	ret.Timex = res.Timex
	return ret
}

func (p *TimePeriodParser) parseSimpleCases(text string, reference time.Time) Resolution {
	var ret Resolution
	for _, re := range p.config.SimpleCasesRegexes {
		m := findFullSubmatch(re, text)
		if m == nil {
			continue
		}

		beginHour, okB := p.hourValue(m["hour1"])
		endHour, okE := p.hourValue(m["hour2"])
		if !okB || !okE {
			continue
		}

		hasAm, hasPm := false, false
		for _, desc := range []string{m["desc1"], m["desc2"]} {
			if desc == "" {
				continue
			}
			if p.config.AmDesc(desc) {
				hasAm = true
			} else if p.config.PmDesc(desc) {
				hasPm = true
			}
		}
		if hasAm {
			if beginHour >= 12 {
				beginHour -= 12
			}
			if endHour >= 12 {
				endHour -= 12
			}
		} else if hasPm {
			if beginHour < 12 {
				beginHour += 12
			}
			if endHour < 12 {
				endHour += 12
			}
		}
		if !hasAm && !hasPm && beginHour <= 12 && endHour <= 12 {
			ret.Comment = CommentAmPm
		}
		if endHour < beginHour {
			continue
		}

		begin := onDay(reference, beginHour, 0, 0)
		end := onDay(reference, endHour, 0, 0)
		ret.Timex = rangeTimex(hourTimex(beginHour), hourTimex(endHour),
			"PT"+strconv.Itoa(endHour-beginHour)+"H")
		ret.FutureValue = IntervalValue(begin, end)
		ret.PastValue = IntervalValue(begin, end)
		ret.Success = true
		return ret
	}
	return ret
}

func (p *TimePeriodParser) mergeTwoTimePoints(text string, reference time.Time) Resolution {
	var ret Resolution
	points := p.config.TimeExtractor.Extract(text, reference)
	if len(points) != 2 {
		return ret
	}
	middle := strings.TrimSpace(text[points[0].End():points[1].Start])
	if !fullMatch(p.config.TillRegex, middle) {
		return ret
	}

	pr1 := p.config.TimeParser.Parse(points[0], reference)
	pr2 := p.config.TimeParser.Parse(points[1], reference)
	if pr1.Value == nil || pr2.Value == nil {
		return ret
	}

	begin := pr1.Value.FutureValue.Instant
	end := pr2.Value.FutureValue.Instant
	// Ranges like "10pm to 1am" wrap past midnight.
	if !end.After(begin) {
		end = end.AddDate(0, 0, 1)
	}
	if pr1.Value.Comment == CommentAmPm && pr2.Value.Comment == CommentAmPm {
		ret.Comment = CommentAmPm
	}

	hours := int(end.Sub(begin).Hours())
	ret.Timex = rangeTimex(pr1.Timex, pr2.Timex, "PT"+strconv.Itoa(hours)+"H")
	ret.FutureValue = IntervalValue(begin, end)
	ret.PastValue = IntervalValue(begin, end)
	ret.Success = true
	return ret
}

func (p *TimePeriodParser) hourValue(text string) (int, bool) {
	if v, ok := p.config.Numbers[text]; ok {
		return v, true
	}
	v, err := strconv.Atoi(text)
	if err != nil || v > 24 {
		return 0, false
	}
	return v, true
}
