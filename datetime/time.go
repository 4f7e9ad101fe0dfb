package datetime

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// TimeConfig carries the locale patterns for single-time recognition.
// Regex groups referenced by name: "hour", "min", "sec", "desc".
type TimeConfig struct {
	TimeRegexes []*regexp.Regexp
	// Numbers maps word-form hours to their integer value.
	Numbers map[string]int
	// AmDesc and PmDesc classify the "desc" group text as a meridiem.
	AmDesc func(text string) bool
	PmDesc func(text string) bool
}

func (c *TimeConfig) validate() error {
	switch {
	case c == nil:
		return errors.New("time config is nil")
	case len(c.TimeRegexes) == 0:
		return errors.New("time config: at least one time regex is required")
	case c.AmDesc == nil || c.PmDesc == nil:
		return errors.New("time config: meridiem callbacks are required")
	}
	return nil
}

// TimeExtractor finds single clock-time spans.
type TimeExtractor struct {
	config *TimeConfig
}

// NewTimeExtractor wires a time extractor, failing fast on an
// incomplete configuration.
func NewTimeExtractor(config *TimeConfig) (*TimeExtractor, error) {
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "time extractor")
	}
	return &TimeExtractor{config: config}, nil
}

// Extract returns all single-time spans in text, sorted and merged.
func (e *TimeExtractor) Extract(text string, _ time.Time) []ExtractResult {
	var tokens []Token
	for _, re := range e.config.TimeRegexes {
		for _, m := range re.FindAllStringIndex(text, -1) {
			tokens = append(tokens, Token{Start: m[0], End: m[1]})
		}
	}
	return MergeTokens(tokens, text, TypeTime)
}

// TimeParser resolves single clock-time spans onto the reference day.
type TimeParser struct {
	config *TimeConfig
}

// NewTimeParser wires a time parser over the same configuration as the
// matching extractor.
func NewTimeParser(config *TimeConfig) (*TimeParser, error) {
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "time parser")
	}
	return &TimeParser{config: config}, nil
}

// Parse resolves one extracted time span against the reference instant.
// A span with no meridiem and an hour no greater than 12 is tagged
// CommentAmPm for enclosing merges to disambiguate.
func (p *TimeParser) Parse(er ExtractResult, reference time.Time) ParseResult {
	ret := ParseResult{ExtractResult: er}
	if er.Type != TypeTime {
		return ret
	}
	trimmed := strings.TrimSpace(strings.ToLower(er.Text))

	for _, re := range p.config.TimeRegexes {
		m := findFullSubmatch(re, trimmed)
		if m == nil {
			continue
		}
		res, ok := p.resolve(m, reference)
		if !ok {
			continue
		}
		ret.Value = &res
		ret.Timex = res.Timex
		return ret
	}
	return ret
}

func (p *TimeParser) resolve(m map[string]string, reference time.Time) (Resolution, bool) {
	var ret Resolution

	hour, ok := p.hourValue(m["hour"])
	if !ok || hour > 24 {
		return ret, false
	}
	minute, sec := 0, 0
	hasMinute, hasSecond := false, false
	if m["min"] != "" {
		v, err := strconv.Atoi(m["min"])
		if err != nil || v > 59 {
			return ret, false
		}
		minute, hasMinute = v, true
	}
	if m["sec"] != "" {
		v, err := strconv.Atoi(m["sec"])
		if err != nil || v > 59 {
			return ret, false
		}
		sec, hasSecond = v, true
	}

	desc := m["desc"]
	switch {
	case desc != "" && p.config.AmDesc(desc):
		if hour >= 12 {
			hour -= 12
		}
	case desc != "" && p.config.PmDesc(desc):
		if hour < 12 {
			hour += 12
		}
	case hour <= 12:
		ret.Comment = CommentAmPm
	}

	timex := hourTimex(hour)
	if hasMinute {
		timex += ":" + twoDigits(minute)
	}
	if hasSecond {
		timex += ":" + twoDigits(sec)
	}

	instant := onDay(reference, hour, minute, sec)
	ret.Timex = timex
	ret.FutureValue = InstantValue(instant)
	ret.PastValue = InstantValue(instant)
	ret.FutureResolution = map[string]string{"time": FormatTime(instant)}
	ret.PastResolution = map[string]string{"time": FormatTime(instant)}
	ret.Success = true
	return ret, true
}

func (p *TimeParser) hourValue(text string) (int, bool) {
	if v, ok := p.config.Numbers[text]; ok {
		return v, true
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return v, true
}

func twoDigits(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
