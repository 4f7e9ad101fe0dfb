package datetime

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DateConfig carries the locale patterns for single-date recognition.
// Regex groups referenced by name: "month", "day", "year", "prefix",
// "weekday". All pattern fields are required except NumericDateRegexes.
type DateConfig struct {
	// RelativeDayRegex matches relative day words (today, tomorrow, ...).
	RelativeDayRegex *regexp.Regexp
	// WeekDayRegex matches a weekday name with an optional swift prefix.
	WeekDayRegex *regexp.Regexp
	// MonthDayRegexes match month-name dates with optional day and year.
	MonthDayRegexes []*regexp.Regexp
	// NumericDateRegexes match fully numeric dates (ISO, slash).
	NumericDateRegexes []*regexp.Regexp

	MonthOfYear map[string]time.Month
	DayOfWeek   map[string]time.Weekday

	// GetRelativeDayOffset maps a relative day phrase to its day offset.
	GetRelativeDayOffset func(text string) (int, bool)
	// GetSwiftPrefix maps a prefix word to a signed week offset.
	GetSwiftPrefix func(text string) int
}

func (c *DateConfig) validate() error {
	switch {
	case c == nil:
		return errors.New("date config is nil")
	case c.RelativeDayRegex == nil || c.WeekDayRegex == nil:
		return errors.New("date config: relative day and weekday regexes are required")
	case len(c.MonthDayRegexes) == 0:
		return errors.New("date config: at least one month-day regex is required")
	case c.GetRelativeDayOffset == nil || c.GetSwiftPrefix == nil:
		return errors.New("date config: relative day and swift callbacks are required")
	}
	return nil
}

// DateExtractor finds single-date spans.
type DateExtractor struct {
	config *DateConfig
}

// NewDateExtractor wires a date extractor, failing fast on an
// incomplete configuration.
func NewDateExtractor(config *DateConfig) (*DateExtractor, error) {
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "date extractor")
	}
	return &DateExtractor{config: config}, nil
}

// Extract returns all single-date spans in text, sorted and merged.
func (e *DateExtractor) Extract(text string, _ time.Time) []ExtractResult {
	var tokens []Token
	for _, re := range e.allRegexes() {
		for _, m := range re.FindAllStringIndex(text, -1) {
			tokens = append(tokens, Token{Start: m[0], End: m[1]})
		}
	}
	return MergeTokens(tokens, text, TypeDate)
}

func (e *DateExtractor) allRegexes() []*regexp.Regexp {
	res := []*regexp.Regexp{e.config.RelativeDayRegex, e.config.WeekDayRegex}
	res = append(res, e.config.MonthDayRegexes...)
	res = append(res, e.config.NumericDateRegexes...)
	return res
}

// DateParser resolves single-date spans. Underspecified dates (bare
// weekday, month-day without year) carry distinct future and past
// values; fully specified dates collapse to one instant.
type DateParser struct {
	config *DateConfig
}

// NewDateParser wires a date parser over the same configuration as the
// matching extractor.
func NewDateParser(config *DateConfig) (*DateParser, error) {
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "date parser")
	}
	return &DateParser{config: config}, nil
}

// Parse resolves one extracted date span against the reference instant.
func (p *DateParser) Parse(er ExtractResult, reference time.Time) ParseResult {
	ret := ParseResult{ExtractResult: er}
	if er.Type != TypeDate {
		return ret
	}

	trimmed := strings.TrimSpace(strings.ToLower(er.Text))
	res := p.parseRelativeDay(trimmed, reference)
	if !res.Success {
		res = p.parseWeekDay(trimmed, reference)
	}
	if !res.Success {
		res = p.parseMonthDay(trimmed, reference)
	}
	if !res.Success {
		res = p.parseNumeric(trimmed, reference)
	}
	if !res.Success {
		return ret
	}

	res.FutureResolution = map[string]string{"date": FormatDate(res.FutureValue.Instant)}
	res.PastResolution = map[string]string{"date": FormatDate(res.PastValue.Instant)}
	ret.Value = &res
	ret.Timex = res.Timex
	return ret
}

func (p *DateParser) parseRelativeDay(text string, reference time.Time) Resolution {
	var ret Resolution
	if !fullMatch(p.config.RelativeDayRegex, text) {
		return ret
	}
	offset, ok := p.config.GetRelativeDayOffset(text)
	if !ok {
		return ret
	}
	day := dateOf(reference).AddDate(0, 0, offset)
	ret.Timex = FormatDate(day)
	ret.FutureValue = InstantValue(day)
	ret.PastValue = InstantValue(day)
	ret.Success = true
	return ret
}

func (p *DateParser) parseWeekDay(text string, reference time.Time) Resolution {
	var ret Resolution
	m := findFullSubmatch(p.config.WeekDayRegex, text)
	if m == nil {
		return ret
	}
	weekday, ok := p.config.DayOfWeek[m["weekday"]]
	if !ok {
		return ret
	}

	today := dateOf(reference)
	ahead := (int(weekday) - int(reference.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	back := (int(reference.Weekday()) - int(weekday) + 7) % 7
	if back == 0 {
		back = 7
	}
	next := today.AddDate(0, 0, ahead)
	prev := today.AddDate(0, 0, -back)

	switch swift := p.config.GetSwiftPrefix(m["prefix"]); {
	case swift > 0:
		ret.Timex = FormatDate(next)
		ret.FutureValue = InstantValue(next)
		ret.PastValue = InstantValue(next)
	case swift < 0:
		ret.Timex = FormatDate(prev)
		ret.FutureValue = InstantValue(prev)
		ret.PastValue = InstantValue(prev)
	default:
		ret.Timex = "XXXX-WXX-" + strconv.Itoa(isoWeekday(weekday))
		ret.FutureValue = InstantValue(next)
		ret.PastValue = InstantValue(prev)
	}
	ret.Success = true
	return ret
}

func (p *DateParser) parseMonthDay(text string, reference time.Time) Resolution {
	var ret Resolution
	for _, re := range p.config.MonthDayRegexes {
		m := findFullSubmatch(re, text)
		if m == nil {
			continue
		}
		month, ok := p.config.MonthOfYear[m["month"]]
		if !ok {
			continue
		}
		day := 1
		if m["day"] != "" {
			d, err := strconv.Atoi(m["day"])
			if err != nil {
				continue
			}
			day = d
		}

		if m["year"] != "" {
			year, err := strconv.Atoi(m["year"])
			if err != nil {
				continue
			}
			date, ok := calendarDate(year, month, day, reference.Location())
			if !ok {
				continue
			}
			ret.Timex = FormatDate(date)
			ret.FutureValue = InstantValue(date)
			ret.PastValue = InstantValue(date)
			ret.Success = true
			return ret
		}

		// No year: dual resolution around the reference day.
		this, ok := calendarDate(reference.Year(), month, day, reference.Location())
		if !ok {
			continue
		}
		// The reference day or later counts as future; anything earlier
		// rolls the future occurrence forward a year, and vice versa.
		future, past := this, this
		if this.Before(dateOf(reference)) {
			future = this.AddDate(1, 0, 0)
		} else {
			past = this.AddDate(-1, 0, 0)
		}
		ret.Timex = this.Format("XXXX-01-02")
		ret.FutureValue = InstantValue(future)
		ret.PastValue = InstantValue(past)
		ret.Success = true
		return ret
	}
	return ret
}

func (p *DateParser) parseNumeric(text string, reference time.Time) Resolution {
	var ret Resolution
	for _, re := range p.config.NumericDateRegexes {
		m := findFullSubmatch(re, text)
		if m == nil {
			continue
		}
		year, errY := strconv.Atoi(m["year"])
		month, errM := strconv.Atoi(m["month"])
		day, errD := strconv.Atoi(m["day"])
		if errY != nil || errM != nil || errD != nil {
			continue
		}
		date, ok := calendarDate(year, time.Month(month), day, reference.Location())
		if !ok {
			continue
		}
		ret.Timex = FormatDate(date)
		ret.FutureValue = InstantValue(date)
		ret.PastValue = InstantValue(date)
		ret.Success = true
		return ret
	}
	return ret
}

// calendarDate builds a midnight instant, rejecting impossible calendar
// dates like Feb 30: time.Date normalizes overflow, so a mismatch means
// the input date does not exist.
func calendarDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}

// isoWeekday maps Go's Sunday-based weekday to ISO numbering (Mon=1).
func isoWeekday(wd time.Weekday) int {
	return (int(wd)+6)%7 + 1
}

// fullMatch reports whether re matches the entirety of text.
func fullMatch(re *regexp.Regexp, text string) bool {
	m := re.FindStringIndex(text)
	return m != nil && m[0] == 0 && m[1] == len(text)
}

// findFullSubmatch returns named submatches when re covers all of text,
// nil otherwise. Unmatched groups map to "".
func findFullSubmatch(re *regexp.Regexp, text string) map[string]string {
	m := re.FindStringSubmatchIndex(text)
	if m == nil || m[0] != 0 || m[1] != len(text) {
		return nil
	}
	return namedGroups(re, text, m)
}

// namedGroups materializes the named capture groups of one match.
func namedGroups(re *regexp.Regexp, text string, m []int) map[string]string {
	out := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name == "" || 2*i >= len(m) || m[2*i] < 0 {
			continue
		}
		out[name] = text[m[2*i]:m[2*i+1]]
	}
	return out
}
