package datetime

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// SetExtractorConfig wires the recurrence extractor: the leaf extractors
// whose spans an each-marker can govern, plus the marker patterns.
// The each-unit regex groups referenced by name: "other", "unit".
type SetExtractorConfig struct {
	LastRegex          *regexp.Regexp
	EachPrefixRegex    *regexp.Regexp
	PeriodicRegex      *regexp.Regexp
	EachUnitRegex      *regexp.Regexp
	EachDayRegex       *regexp.Regexp
	BeforeEachDayRegex *regexp.Regexp
	SetWeekDayRegex    *regexp.Regexp
	SetEachRegex       *regexp.Regexp

	DurationExtractor       Extractor
	TimeExtractor           Extractor
	DateExtractor           Extractor
	DateTimeExtractor       Extractor
	DatePeriodExtractor     Extractor
	TimePeriodExtractor     Extractor
	DateTimePeriodExtractor Extractor
}

func (c *SetExtractorConfig) validate() error {
	switch {
	case c == nil:
		return errors.New("set extractor config is nil")
	case c.EachPrefixRegex == nil || c.PeriodicRegex == nil || c.EachUnitRegex == nil:
		return errors.New("set extractor config: each and periodic regexes are required")
	case c.EachDayRegex == nil || c.BeforeEachDayRegex == nil:
		return errors.New("set extractor config: each-day regexes are required")
	case c.SetWeekDayRegex == nil || c.SetEachRegex == nil:
		return errors.New("set extractor config: weekday and each regexes are required")
	case c.DurationExtractor == nil || c.TimeExtractor == nil || c.DateExtractor == nil:
		return errors.New("set extractor config: duration, time and date extractors are required")
	case c.DateTimeExtractor == nil || c.TimePeriodExtractor == nil || c.DateTimePeriodExtractor == nil:
		return errors.New("set extractor config: datetime and period extractors are required")
	}
	return nil
}

// SetExtractor finds recurring-expression spans: a periodic word, an
// each-marked unit, or an each-marker governing any other temporal span.
// The date-period slot may be nil; its pass is skipped then.
type SetExtractor struct {
	config *SetExtractorConfig
}

// NewSetExtractor wires a set extractor, failing fast on an incomplete
// configuration.
func NewSetExtractor(config *SetExtractorConfig) (*SetExtractor, error) {
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "set extractor")
	}
	return &SetExtractor{config: config}, nil
}

// Extract runs every marker pass and merges the tokens.
func (e *SetExtractor) Extract(text string, reference time.Time) []ExtractResult {
	var tokens []Token
	tokens = append(tokens, e.matchEachUnit(text)...)
	tokens = append(tokens, e.matchPeriodic(text)...)
	tokens = append(tokens, e.matchEachDuration(text, reference)...)
	tokens = append(tokens, e.matchTimeEveryday(text, reference)...)
	tokens = append(tokens, e.matchEach(e.config.TimeExtractor, text, reference)...)
	tokens = append(tokens, e.matchEach(e.config.DateExtractor, text, reference)...)
	tokens = append(tokens, e.matchEach(e.config.DateTimeExtractor, text, reference)...)
	if e.config.DatePeriodExtractor != nil {
		tokens = append(tokens, e.matchEach(e.config.DatePeriodExtractor, text, reference)...)
	}
	tokens = append(tokens, e.matchEach(e.config.TimePeriodExtractor, text, reference)...)
	tokens = append(tokens, e.matchEach(e.config.DateTimePeriodExtractor, text, reference)...)
	return MergeTokens(tokens, text, TypeSet)
}

// matchEachUnit matches "every week" and "every other day" directly.
func (e *SetExtractor) matchEachUnit(text string) []Token {
	var ret []Token
	for _, m := range e.config.EachUnitRegex.FindAllStringIndex(text, -1) {
		ret = append(ret, Token{Start: m[0], End: m[1]})
	}
	return ret
}

// matchPeriodic matches single-word recurrences like "daily".
func (e *SetExtractor) matchPeriodic(text string) []Token {
	var ret []Token
	for _, m := range e.config.PeriodicRegex.FindAllStringIndex(text, -1) {
		ret = append(ret, Token{Start: m[0], End: m[1]})
	}
	return ret
}

// matchEachDuration matches an each-prefix immediately governing a
// duration span, e.g. "every 3 days".
func (e *SetExtractor) matchEachDuration(text string, reference time.Time) []Token {
	var ret []Token
	for _, er := range e.config.DurationExtractor.Extract(text, reference) {
		// A relative word inside the span ("every last week") is not a
		// recurrence.
		if e.config.LastRegex != nil && e.config.LastRegex.MatchString(strings.ToLower(er.Text)) {
			continue
		}
		before := text[:er.Start]
		if i, ok := suffixMatchStart(e.config.EachPrefixRegex, strings.ToLower(before)); ok {
			ret = append(ret, Token{Start: i, End: er.End()})
		}
	}
	return ret
}

// matchTimeEveryday finds a time governed by an each-day phrase: a
// trailing "every day" after the time, or for a time at the end of the
// text a preceding "every day at".
func (e *SetExtractor) matchTimeEveryday(text string, reference time.Time) []Token {
	var ret []Token
	for _, er := range e.config.TimeExtractor.Extract(text, reference) {
		after := strings.ToLower(text[er.End():])
		if strings.TrimSpace(after) == "" {
			before := strings.ToLower(text[:er.Start])
			if i, ok := suffixMatchStart(e.config.BeforeEachDayRegex, before); ok {
				ret = append(ret, Token{Start: i, End: er.End()})
			}
			continue
		}
		if end, ok := prefixMatchEnd(e.config.EachDayRegex, after); ok {
			ret = append(ret, Token{Start: er.Start, End: er.End() + end})
		}
	}
	return ret
}

// matchEach strips each marker occurrence out of the text, re-extracts
// on the remainder, and keeps spans that flow across the removed
// marker: "every monday at 9am" extracts as the date-time
// "monday at 9am" once "every " is gone.
func (e *SetExtractor) matchEach(extractor Extractor, text string, reference time.Time) []Token {
	var ret []Token
	for _, loc := range e.config.EachPrefixRegex.FindAllStringIndex(text, -1) {
		trimmed := text[:loc[0]] + text[loc[1]:]
		markerLen := loc[1] - loc[0]
		for _, er := range extractor.Extract(trimmed, reference) {
			if er.Start <= loc[0] && er.End() >= loc[0] {
				ret = append(ret, Token{Start: er.Start, End: er.End() + markerLen})
			}
		}
	}

	// Plural weekdays: substitute the singular and re-extract, so
	// "mondays at 9am" reads as the date-time "monday at 9am".
	for _, loc := range e.config.SetWeekDayRegex.FindAllStringIndex(text, -1) {
		m := findSubmatch(e.config.SetWeekDayRegex, text[loc[0]:loc[1]])
		if m == nil || m["weekday"] == "" {
			continue
		}
		trimmed := text[:loc[0]] + m["weekday"] + text[loc[1]:]
		delta := (loc[1] - loc[0]) - len(m["weekday"])
		for _, er := range extractor.Extract(trimmed, reference) {
			if er.Start <= loc[0] && er.End() >= loc[0]+len(m["weekday"]) {
				ret = append(ret, Token{Start: er.Start, End: er.End() + delta})
			}
		}
	}
	return ret
}
