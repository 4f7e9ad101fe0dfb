package datetime

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DateTimePeriodExtractorConfig wires the compound date-time-period
// extractor: the leaf extractors it composes plus the locale patterns
// that join their spans.
type DateTimePeriodExtractorConfig struct {
	SimpleCasesRegexes           []*regexp.Regexp
	PrepositionRegex             *regexp.Regexp
	TillRegex                    *regexp.Regexp
	SpecificTimeOfDayRegex       *regexp.Regexp
	PeriodTimeOfDayWithDateRegex *regexp.Regexp
	TimeUnitRegex                *regexp.Regexp
	PastPrefixRegex              *regexp.Regexp
	NextPrefixRegex              *regexp.Regexp
	RelativeTimeUnitRegex        *regexp.Regexp
	RestOfDateTimeRegex          *regexp.Regexp
	MiddlePauseRegex             *regexp.Regexp
	GeneralEndingRegex           *regexp.Regexp

	GetFromTokenIndex    func(text string) (int, bool)
	GetBetweenTokenIndex func(text string) (int, bool)
	// HasConnectorToken reports whether the trimmed gap text is a lone
	// connector word ("and").
	HasConnectorToken func(text string) bool

	SingleDateExtractor     Extractor
	SingleTimeExtractor     Extractor
	SingleDateTimeExtractor Extractor
	DurationExtractor       Extractor
	TimePeriodExtractor     Extractor
}

func (c *DateTimePeriodExtractorConfig) validate() error {
	switch {
	case c == nil:
		return errors.New("datetimeperiod extractor config is nil")
	case len(c.SimpleCasesRegexes) == 0:
		return errors.New("datetimeperiod extractor config: simple-cases regexes are required")
	case c.PrepositionRegex == nil || c.TillRegex == nil:
		return errors.New("datetimeperiod extractor config: preposition and till regexes are required")
	case c.SpecificTimeOfDayRegex == nil || c.PeriodTimeOfDayWithDateRegex == nil:
		return errors.New("datetimeperiod extractor config: time-of-day regexes are required")
	case c.TimeUnitRegex == nil || c.PastPrefixRegex == nil || c.NextPrefixRegex == nil:
		return errors.New("datetimeperiod extractor config: duration prefix regexes are required")
	case c.RelativeTimeUnitRegex == nil || c.RestOfDateTimeRegex == nil:
		return errors.New("datetimeperiod extractor config: relative unit regexes are required")
	case c.MiddlePauseRegex == nil || c.GeneralEndingRegex == nil:
		return errors.New("datetimeperiod extractor config: pause and ending regexes are required")
	case c.GetFromTokenIndex == nil || c.GetBetweenTokenIndex == nil || c.HasConnectorToken == nil:
		return errors.New("datetimeperiod extractor config: token callbacks are required")
	case c.SingleDateExtractor == nil || c.SingleTimeExtractor == nil || c.SingleDateTimeExtractor == nil:
		return errors.New("datetimeperiod extractor config: date, time and datetime extractors are required")
	case c.DurationExtractor == nil || c.TimePeriodExtractor == nil:
		return errors.New("datetimeperiod extractor config: duration and time period extractors are required")
	}
	return nil
}

// DateTimePeriodExtractor finds compound date+time range spans through
// five independent matching passes unioned by the token merge. Each
// pass over-generates; the merge is the single place overlapping
// candidates reconcile.
type DateTimePeriodExtractor struct {
	config *DateTimePeriodExtractorConfig
}

// NewDateTimePeriodExtractor wires the compound extractor, failing fast
// on an incomplete configuration.
func NewDateTimePeriodExtractor(config *DateTimePeriodExtractorConfig) (*DateTimePeriodExtractor, error) {
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "datetimeperiod extractor")
	}
	return &DateTimePeriodExtractor{config: config}, nil
}

// Extract runs all five passes and merges their tokens.
func (e *DateTimePeriodExtractor) Extract(text string, reference time.Time) []ExtractResult {
	var tokens []Token
	tokens = append(tokens, e.matchSimpleCases(text, reference)...)
	tokens = append(tokens, e.mergeTwoTimePoints(text, reference)...)
	tokens = append(tokens, e.matchDuration(text, reference)...)
	tokens = append(tokens, e.matchTimeOfDay(text, reference)...)
	tokens = append(tokens, e.matchRelativeUnit(text)...)
	return MergeTokens(tokens, text, TypeDateTimePeriod)
}

// matchSimpleCases applies the whole-pattern range regexes and extends
// each hit over an immediately preceding or following date.
func (e *DateTimePeriodExtractor) matchSimpleCases(text string, reference time.Time) []Token {
	var ret []Token
	for _, re := range e.config.SimpleCasesRegexes {
		for _, m := range re.FindAllStringIndex(text, -1) {
			hasBeforeDate := false
			if before := text[:m[0]]; before != "" {
				if ers := e.config.SingleDateExtractor.Extract(before, reference); len(ers) > 0 {
					er := ers[len(ers)-1]
					if e.cleanGap(before[er.End():]) {
						ret = append(ret, Token{Start: er.Start, End: m[1]})
						hasBeforeDate = true
					}
				}
			}
			if after := text[m[1]:]; after != "" && !hasBeforeDate {
				if ers := e.config.SingleDateExtractor.Extract(after, reference); len(ers) > 0 {
					er := ers[0]
					if e.cleanGap(after[:er.Start]) {
						ret = append(ret, Token{Start: m[0], End: m[1] + er.End()})
					}
				}
			}
		}
	}
	return ret
}

// cleanGap accepts an empty gap or a lone configured preposition.
func (e *DateTimePeriodExtractor) cleanGap(gap string) bool {
	trimmed := strings.TrimSpace(strings.ToLower(gap))
	return trimmed == "" || fullMatch(e.config.PrepositionRegex, trimmed)
}

// mergeTwoTimePoints interleaves single date-time and single time spans
// by start offset, then joins consecutive points across a till or
// between-and connector. Two bare times never join here: that is a
// TimePeriod, not a DateTimePeriod.
func (e *DateTimePeriodExtractor) mergeTwoTimePoints(text string, reference time.Time) []Token {
	var ret []Token
	dateTimes := e.config.SingleDateTimeExtractor.Extract(text, reference)
	times := e.config.SingleTimeExtractor.Extract(text, reference)

	// Interleave, dropping times swallowed by a date-time span.
	var points []ExtractResult
	j := 0
	for i := range dateTimes {
		for j < len(times) && times[j].End() <= dateTimes[i].Start {
			points = append(points, times[j])
			j++
		}
		points = append(points, dateTimes[i])
		for j < len(times) && times[j].Overlaps(dateTimes[i]) {
			j++
		}
	}
	for ; j < len(times); j++ {
		points = append(points, times[j])
	}

	idx := 0
	for idx < len(points)-1 {
		if points[idx].Type == TypeTime && points[idx+1].Type == TypeTime {
			idx++
			continue
		}

		middle := strings.TrimSpace(strings.ToLower(text[points[idx].End():points[idx+1].Start]))
		periodBegin := points[idx].Start
		periodEnd := points[idx+1].End()

		if fullMatch(e.config.TillRegex, middle) {
			before := strings.ToLower(text[:periodBegin])
			if i, ok := e.config.GetFromTokenIndex(before); ok {
				periodBegin = i
			} else if i, ok := e.config.GetBetweenTokenIndex(before); ok {
				periodBegin = i
			}
			ret = append(ret, Token{Start: periodBegin, End: periodEnd})
			idx += 2
			continue
		}
		if e.config.HasConnectorToken(middle) {
			before := strings.ToLower(text[:periodBegin])
			if i, ok := e.config.GetBetweenTokenIndex(before); ok {
				ret = append(ret, Token{Start: i, End: periodEnd})
				idx += 2
				continue
			}
		}
		idx++
	}

	ret = append(ret, e.mergeDateWithTimePeriod(text, reference)...)
	return ret
}

// mergeDateWithTimePeriod joins adjacent date and time-period spans
// separated by whitespace only, e.g. "2015-09-23 1pm to 4pm".
func (e *DateTimePeriodExtractor) mergeDateWithTimePeriod(text string, reference time.Time) []Token {
	var ret []Token
	points := e.config.SingleDateExtractor.Extract(text, reference)
	points = append(points, e.config.TimePeriodExtractor.Extract(text, reference)...)
	sortByStart(points)

	for idx := 0; idx < len(points)-1; idx++ {
		if points[idx].Type == points[idx+1].Type {
			continue
		}
		gap := text[points[idx].End():points[idx+1].Start]
		if gap != "" && strings.TrimSpace(gap) == "" {
			ret = append(ret, Token{Start: points[idx].Start, End: points[idx+1].End()})
			idx++
		}
	}
	return ret
}

// matchTimeOfDay finds fixed day-part phrases, glues them to adjacent
// dates, then absorbs neighboring time-period spans.
func (e *DateTimePeriodExtractor) matchTimeOfDay(text string, reference time.Time) []Token {
	var ret []Token
	for _, m := range e.config.SpecificTimeOfDayRegex.FindAllStringIndex(text, -1) {
		ret = append(ret, Token{Start: m[0], End: m[1]})
	}

	for _, er := range e.config.SingleDateExtractor.Extract(text, reference) {
		after := text[er.End():]
		if m := e.config.PeriodTimeOfDayWithDateRegex.FindStringIndex(after); m != nil {
			if strings.TrimSpace(after[:m[0]]) == "" {
				ret = append(ret, Token{Start: er.Start, End: er.End() + m[1]})
			} else if e.pauseThenEnding(after[:m[0]], after[m[1]:]) {
				ret = append(ret, Token{Start: er.Start, End: er.End() + m[1]})
			}
		}

		prefix := text[:er.Start]
		if m := e.config.PeriodTimeOfDayWithDateRegex.FindStringIndex(prefix); m != nil {
			if strings.TrimSpace(prefix[m[1]:]) == "" && prefix[m[1]:] != "" {
				ret = append(ret, Token{Start: m[0], End: er.End()})
			} else if e.pauseThenEnding(prefix[m[1]:], text[er.End():]) {
				ret = append(ret, Token{Start: m[0], End: er.End()})
			}
		}
	}

	// Absorb time periods touching an already-found span, on either side.
	for _, tok := range append([]Token(nil), ret...) {
		if tok.Start > 0 {
			before := text[:tok.Start]
			for _, tp := range e.config.TimePeriodExtractor.Extract(before, reference) {
				if strings.TrimSpace(before[tp.End():]) == "" {
					ret = append(ret, Token{Start: tp.Start, End: tok.End})
				}
			}
		}
		if tok.End <= len(text) {
			after := text[tok.End:]
			for _, tp := range e.config.TimePeriodExtractor.Extract(after, reference) {
				if strings.TrimSpace(after[:tp.Start]) == "" {
					ret = append(ret, Token{Start: tok.Start, End: tok.End + tp.End()})
				}
			}
		}
	}
	return ret
}

// pauseThenEnding accepts a connector gap that is exactly a pause token
// when the trailing text is a sentence ending.
func (e *DateTimePeriodExtractor) pauseThenEnding(gap, trailing string) bool {
	if !fullMatch(e.config.MiddlePauseRegex, gap) {
		return false
	}
	return e.config.GeneralEndingRegex.MatchString(strings.TrimLeft(trailing, " "))
}

// matchDuration finds clock-unit durations framed by a past or future
// prefix spanning the full gap on either side.
func (e *DateTimePeriodExtractor) matchDuration(text string, reference time.Time) []Token {
	var ret []Token
	for _, er := range e.config.DurationExtractor.Extract(text, reference) {
		if !e.config.TimeUnitRegex.MatchString(er.Text) {
			continue
		}

		before := strings.ToLower(text[:er.Start])
		after := strings.ToLower(text[er.End():])
		if strings.TrimSpace(before) == "" && strings.TrimSpace(after) == "" {
			continue
		}

		if i, ok := suffixMatchStart(e.config.PastPrefixRegex, before); ok {
			ret = append(ret, Token{Start: i, End: er.End()})
			continue
		}
		if i, ok := suffixMatchStart(e.config.NextPrefixRegex, before); ok {
			ret = append(ret, Token{Start: i, End: er.End()})
			continue
		}
		if end, ok := prefixMatchEnd(e.config.PastPrefixRegex, after); ok {
			ret = append(ret, Token{Start: er.Start, End: er.End() + end})
			continue
		}
		if end, ok := prefixMatchEnd(e.config.NextPrefixRegex, after); ok {
			ret = append(ret, Token{Start: er.Start, End: er.End() + end})
		}
	}
	return ret
}

// matchRelativeUnit matches relative-unit phrases, falling back to the
// residual rest-of regex when none hit.
func (e *DateTimePeriodExtractor) matchRelativeUnit(text string) []Token {
	var ret []Token
	matches := e.config.RelativeTimeUnitRegex.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		matches = e.config.RestOfDateTimeRegex.FindAllStringIndex(text, -1)
	}
	for _, m := range matches {
		ret = append(ret, Token{Start: m[0], End: m[1]})
	}
	return ret
}

// suffixMatchStart reports the start of a match of re that ends text,
// modulo trailing whitespace.
func suffixMatchStart(re *regexp.Regexp, text string) (int, bool) {
	var last []int
	for _, m := range re.FindAllStringIndex(text, -1) {
		last = m
	}
	if last == nil || strings.TrimSpace(text[last[1]:]) != "" {
		return 0, false
	}
	return last[0], true
}

// prefixMatchEnd reports the end of a match of re that begins text,
// modulo leading whitespace, and runs to its end.
func prefixMatchEnd(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringIndex(text)
	if m == nil || strings.TrimSpace(text[:m[0]]) != "" || strings.TrimSpace(text[m[1]:]) != "" {
		return 0, false
	}
	return m[1], true
}

// sortByStart orders extraction results by start offset ascending.
func sortByStart(ers []ExtractResult) {
	for i := 1; i < len(ers); i++ {
		for j := i; j > 0 && ers[j].Start < ers[j-1].Start; j-- {
			ers[j], ers[j-1] = ers[j-1], ers[j]
		}
	}
}
