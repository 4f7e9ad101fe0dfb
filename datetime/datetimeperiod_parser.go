package datetime

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DateTimePeriodParserConfig wires the compound date-time-period parser:
// the leaf parsers it delegates to plus the locale patterns and window
// callbacks. Simple-case regex groups referenced by name: "hour1",
// "desc1", "hour2", "desc2". The time-of-day regex groups: "timeOfDay",
// "early", "late". The relative unit regex group: "unit".
type DateTimePeriodParserConfig struct {
	PureNumberFromToRegex        *regexp.Regexp
	PureNumberBetweenAndRegex    *regexp.Regexp
	SpecificTimeOfDayRegex       *regexp.Regexp
	PeriodTimeOfDayWithDateRegex *regexp.Regexp
	PastRegex                    *regexp.Regexp
	FutureRegex                  *regexp.Regexp
	RelativeTimeUnitRegex        *regexp.Regexp
	RestOfDateTimeRegex          *regexp.Regexp

	UnitMap map[string]string
	Numbers map[string]int

	DateExtractor       Extractor
	TimeExtractor       Extractor
	DateTimeExtractor   Extractor
	TimePeriodExtractor Extractor
	DurationExtractor   Extractor
	DateParser          Parser
	TimeParser          Parser
	DateTimeParser      Parser
	TimePeriodParser    Parser
	DurationParser      Parser

	AmDesc func(text string) bool
	PmDesc func(text string) bool
	// GetMatchedTimeRange maps a day-part phrase ("morning") to its timex
	// suffix ("TMO") and hour window.
	GetMatchedTimeRange func(text string) (timex string, beginHour, endHour, endMin int, ok bool)
	// GetSwiftPrefix returns the day offset implied by a relative phrase
	// ("tonight" is 0, "last night" is -1).
	GetSwiftPrefix func(text string) int
}

func (c *DateTimePeriodParserConfig) validate() error {
	switch {
	case c == nil:
		return errors.New("datetimeperiod parser config is nil")
	case c.PureNumberFromToRegex == nil || c.PureNumberBetweenAndRegex == nil:
		return errors.New("datetimeperiod parser config: pure-number range regexes are required")
	case c.SpecificTimeOfDayRegex == nil || c.PeriodTimeOfDayWithDateRegex == nil:
		return errors.New("datetimeperiod parser config: time-of-day regexes are required")
	case c.PastRegex == nil || c.FutureRegex == nil:
		return errors.New("datetimeperiod parser config: past and future regexes are required")
	case c.RelativeTimeUnitRegex == nil || c.RestOfDateTimeRegex == nil:
		return errors.New("datetimeperiod parser config: relative unit regexes are required")
	case len(c.UnitMap) == 0:
		return errors.New("datetimeperiod parser config: unit map is required")
	case c.DateExtractor == nil || c.TimeExtractor == nil || c.DateTimeExtractor == nil:
		return errors.New("datetimeperiod parser config: date, time and datetime extractors are required")
	case c.TimePeriodExtractor == nil || c.DurationExtractor == nil:
		return errors.New("datetimeperiod parser config: time period and duration extractors are required")
	case c.DateParser == nil || c.TimeParser == nil || c.DateTimeParser == nil:
		return errors.New("datetimeperiod parser config: date, time and datetime parsers are required")
	case c.TimePeriodParser == nil || c.DurationParser == nil:
		return errors.New("datetimeperiod parser config: time period and duration parsers are required")
	case c.AmDesc == nil || c.PmDesc == nil:
		return errors.New("datetimeperiod parser config: meridiem callbacks are required")
	case c.GetMatchedTimeRange == nil || c.GetSwiftPrefix == nil:
		return errors.New("datetimeperiod parser config: time range and swift callbacks are required")
	}
	return nil
}

// DateTimePeriodParser resolves compound date+time range spans through
// an ordered chain of strategies. The first strategy to succeed wins;
// later ones never run.
type DateTimePeriodParser struct {
	config *DateTimePeriodParserConfig
}

// NewDateTimePeriodParser wires the compound parser, failing fast on an
// incomplete configuration.
func NewDateTimePeriodParser(config *DateTimePeriodParserConfig) (*DateTimePeriodParser, error) {
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "datetimeperiod parser")
	}
	return &DateTimePeriodParser{config: config}, nil
}

// Parse resolves one compound span. Strategy order matters: a span like
// "monday from 3pm to 5pm" parses as a date plus a time period before
// the two-time-point merge ever sees it.
func (p *DateTimePeriodParser) Parse(er ExtractResult, reference time.Time) ParseResult {
	ret := ParseResult{ExtractResult: er}
	if er.Type != TypeDateTimePeriod {
		return ret
	}
	trimmed := strings.TrimSpace(strings.ToLower(er.Text))

	res := p.mergeDateAndTimePeriod(trimmed, reference)
	if !res.Success {
		res = p.parseSimpleCases(trimmed, reference)
	}
	if !res.Success {
		res = p.mergeTwoTimePoints(trimmed, reference)
	}
	if !res.Success {
		res = p.parseSpecificTimeOfDay(trimmed, reference)
	}
	if !res.Success {
		res = p.parseDuration(trimmed, reference)
	}
	if !res.Success {
		res = p.parseRelativeUnit(trimmed, reference)
	}
	if !res.Success {
		return ret
	}

	if res.FutureResolution == nil {
		res.FutureResolution = intervalResolution(res.FutureValue)
	}
	if res.PastResolution == nil {
		res.PastResolution = intervalResolution(res.PastValue)
	}
	ret.Value = &res
	ret.Timex = res.Timex
	return ret
}

// mergeDateAndTimePeriod handles a date next to a full time period, e.g.
// "monday from 3pm to 5pm": the time-period parse supplies the clocks
// and the date parse supplies the day.
func (p *DateTimePeriodParser) mergeDateAndTimePeriod(text string, reference time.Time) Resolution {
	var ret Resolution

	tpErs := p.config.TimePeriodExtractor.Extract(text, reference)
	if len(tpErs) != 1 {
		return ret
	}
	tpPr := p.config.TimePeriodParser.Parse(tpErs[0], reference)
	if tpPr.Value == nil {
		return ret
	}
	beginTimex, endTimex, durTimex, ok := splitRangeTimex(tpPr.Timex)
	if !ok {
		return ret
	}

	remainder := strings.TrimSpace(text[:tpErs[0].Start] + " " + text[tpErs[0].End():])
	datePr, ok := p.parseWholeDate(remainder, reference)
	if !ok {
		return ret
	}

	beginClock := tpPr.Value.FutureValue.Begin
	endClock := tpPr.Value.FutureValue.End

	futureBegin := onDay(datePr.Value.FutureValue.Instant, beginClock.Hour(), beginClock.Minute(), beginClock.Second())
	futureEnd := onDay(datePr.Value.FutureValue.Instant, endClock.Hour(), endClock.Minute(), endClock.Second())
	pastBegin := onDay(datePr.Value.PastValue.Instant, beginClock.Hour(), beginClock.Minute(), beginClock.Second())
	pastEnd := onDay(datePr.Value.PastValue.Instant, endClock.Hour(), endClock.Minute(), endClock.Second())
	if !futureEnd.After(futureBegin) {
		futureEnd = futureEnd.AddDate(0, 0, 1)
		pastEnd = pastEnd.AddDate(0, 0, 1)
	}

	ret.Timex = rangeTimex(datePr.Timex+beginTimex, datePr.Timex+endTimex, durTimex)
	ret.Comment = tpPr.Value.Comment
	ret.FutureValue = IntervalValue(futureBegin, futureEnd)
	ret.PastValue = IntervalValue(pastBegin, pastEnd)
	ret.Success = true
	return ret
}

// parseSimpleCases handles a whole-pattern hour range plus a date in the
// rest of the span, e.g. "from 3 to 5pm on monday".
func (p *DateTimePeriodParser) parseSimpleCases(text string, reference time.Time) Resolution {
	var ret Resolution

	re := p.config.PureNumberFromToRegex
	loc := re.FindStringIndex(text)
	if loc == nil {
		re = p.config.PureNumberBetweenAndRegex
		loc = re.FindStringIndex(text)
	}
	if loc == nil || loc[0] != 0 {
		return ret
	}
	m := findSubmatch(re, text[loc[0]:loc[1]])
	if m == nil {
		return ret
	}

	beginHour, okB := p.hourValue(m["hour1"])
	endHour, okE := p.hourValue(m["hour2"])
	if !okB || !okE {
		return ret
	}

	// The hour range is only a date-time period when a date follows it.
	ers := p.config.DateExtractor.Extract(text[loc[1]:], reference)
	if len(ers) == 0 {
		return ret
	}
	datePr := p.config.DateParser.Parse(ers[0], reference)
	if datePr.Value == nil {
		return ret
	}
	futureDate := datePr.Value.FutureValue.Instant
	pastDate := datePr.Value.PastValue.Instant

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
		return Resolution{}
	}

	dateTimex := datePr.Timex
	ret.Timex = rangeTimex(dateTimex+hourTimex(beginHour), dateTimex+hourTimex(endHour),
		"PT"+strconv.Itoa(endHour-beginHour)+"H")
	ret.FutureValue = IntervalValue(
		onDay(futureDate, beginHour, 0, 0), onDay(futureDate, endHour, 0, 0))
	ret.PastValue = IntervalValue(
		onDay(pastDate, beginHour, 0, 0), onDay(pastDate, endHour, 0, 0))
	ret.Success = true
	return ret
}

// mergeTwoTimePoints joins two resolved points, at least one of which
// carries its own date; the dateless side borrows the other's day.
func (p *DateTimePeriodParser) mergeTwoTimePoints(text string, reference time.Time) Resolution {
	var ret Resolution

	dateTimeErs := p.config.DateTimeExtractor.Extract(text, reference)
	timeErs := p.config.TimeExtractor.Extract(text, reference)

	var pr1, pr2 ParseResult
	bothHasDate, beginHasDate, endHasDate := false, false, false
	switch {
	case len(dateTimeErs) == 2:
		pr1 = p.config.DateTimeParser.Parse(dateTimeErs[0], reference)
		pr2 = p.config.DateTimeParser.Parse(dateTimeErs[1], reference)
		bothHasDate = true
	case len(dateTimeErs) == 1 && len(timeErs) == 2:
		// One of the two times is inside the date-time span; the other
		// is the bare point.
		var bare ExtractResult
		found := false
		for _, t := range timeErs {
			if !t.Overlaps(dateTimeErs[0]) {
				bare, found = t, true
				break
			}
		}
		if !found {
			return ret
		}
		if bare.Start < dateTimeErs[0].Start {
			pr1 = p.config.TimeParser.Parse(bare, reference)
			pr2 = p.config.DateTimeParser.Parse(dateTimeErs[0], reference)
			endHasDate = true
		} else {
			pr1 = p.config.DateTimeParser.Parse(dateTimeErs[0], reference)
			pr2 = p.config.TimeParser.Parse(bare, reference)
			beginHasDate = true
		}
	case len(dateTimeErs) == 1 && len(timeErs) == 1:
		if timeErs[0].Overlaps(dateTimeErs[0]) {
			return ret
		}
		if timeErs[0].Start < dateTimeErs[0].Start {
			pr1 = p.config.TimeParser.Parse(timeErs[0], reference)
			pr2 = p.config.DateTimeParser.Parse(dateTimeErs[0], reference)
			endHasDate = true
		} else {
			pr1 = p.config.DateTimeParser.Parse(dateTimeErs[0], reference)
			pr2 = p.config.TimeParser.Parse(timeErs[0], reference)
			beginHasDate = true
		}
	default:
		return ret
	}
	if pr1.Value == nil || pr2.Value == nil {
		return ret
	}

	futureBegin := pr1.Value.FutureValue.Instant
	futureEnd := pr2.Value.FutureValue.Instant
	pastBegin := pr1.Value.PastValue.Instant
	pastEnd := pr2.Value.PastValue.Instant

	switch {
	case bothHasDate:
		// The dual resolutions can land the points on opposite sides of
		// the reference; pull the stray one back onto its partner's day.
		if futureBegin.After(futureEnd) {
			futureBegin = pastBegin
		}
		if pastEnd.Before(pastBegin) {
			pastEnd = futureEnd
		}
		ret.Timex = rangeTimex(pr1.Timex, pr2.Timex, hoursTimex(futureEnd.Sub(futureBegin)))
	case beginHasDate:
		futureEnd = onDay(futureBegin, futureEnd.Hour(), futureEnd.Minute(), futureEnd.Second())
		pastEnd = onDay(pastBegin, pastEnd.Hour(), pastEnd.Minute(), pastEnd.Second())
		dateStr := strings.Split(pr1.Timex, "T")[0]
		ret.Timex = rangeTimex(pr1.Timex, dateStr+pr2.Timex, hoursTimex(futureEnd.Sub(futureBegin)))
	case endHasDate:
		futureBegin = onDay(futureEnd, futureBegin.Hour(), futureBegin.Minute(), futureBegin.Second())
		pastBegin = onDay(pastEnd, pastBegin.Hour(), pastBegin.Minute(), pastBegin.Second())
		dateStr := strings.Split(pr2.Timex, "T")[0]
		ret.Timex = rangeTimex(dateStr+pr1.Timex, pr2.Timex, hoursTimex(futureEnd.Sub(futureBegin)))
	}
	if pr1.Value.Comment == CommentAmPm && pr2.Value.Comment == CommentAmPm {
		ret.Comment = CommentAmPm
	}

	ret.FutureValue = IntervalValue(futureBegin, futureEnd)
	ret.PastValue = IntervalValue(pastBegin, pastEnd)
	ret.SubEntities = []ParseResult{pr1, pr2}
	ret.Success = true
	return ret
}

// parseSpecificTimeOfDay handles day-part phrases, alone ("tonight") or
// attached to a date ("tomorrow morning", "early monday evening").
func (p *DateTimePeriodParser) parseSpecificTimeOfDay(text string, reference time.Time) Resolution {
	var ret Resolution

	timeText := text
	hasEarly, hasLate := false, false
	if m := findSubmatch(p.config.PeriodTimeOfDayWithDateRegex, text); m != nil {
		if m["timeOfDay"] != "" {
			timeText = m["timeOfDay"]
		}
		hasEarly = m["early"] != ""
		hasLate = m["late"] != ""
	}
	timeStr, beginHour, endHour, endMin, ok := p.config.GetMatchedTimeRange(timeText)
	if !ok {
		return ret
	}
	if hasEarly {
		endHour = beginHour + 2
		if endMin == 59 {
			endMin = 0
		}
		ret.Comment = CommentEarly
	} else if hasLate {
		beginHour += 2
		ret.Comment = CommentLate
	}

	// Standalone phrase: the relative prefix picks the day.
	if fullMatch(p.config.SpecificTimeOfDayRegex, text) {
		swift := p.config.GetSwiftPrefix(text)
		day := dateOf(reference).AddDate(0, 0, swift)

		ret.Timex = FormatDate(day) + timeStr
		value := IntervalValue(
			onDay(day, beginHour, 0, 0), onDay(day, endHour, endMin, endMin))
		ret.FutureValue = value
		ret.PastValue = value
		ret.Success = true
		return ret
	}

	loc := p.config.PeriodTimeOfDayWithDateRegex.FindStringIndex(text)
	if loc == nil {
		return Resolution{}
	}
	before := strings.TrimSpace(text[:loc[0]])
	after := strings.TrimSpace(text[loc[1]:])

	datePr, ok := p.parseWholeDate(before, reference)
	if !ok {
		datePr, ok = p.parseWholeDate(after, reference)
	}
	if !ok {
		return Resolution{}
	}
	futureDate := datePr.Value.FutureValue.Instant
	pastDate := datePr.Value.PastValue.Instant

	// A trailing clock range overrides the day-part window, as in
	// "monday night 8pm to 10pm".
	if tpErs := p.config.TimePeriodExtractor.Extract(text, reference); len(tpErs) == 1 {
		tpPr := p.config.TimePeriodParser.Parse(tpErs[0], reference)
		if tpPr.Value != nil {
			if beginTimex, endTimex, durTimex, ok := splitRangeTimex(tpPr.Timex); ok {
				beginClock := tpPr.Value.FutureValue.Begin
				endClock := tpPr.Value.FutureValue.End
				ret.Timex = rangeTimex(datePr.Timex+beginTimex, datePr.Timex+endTimex, durTimex)
				ret.FutureValue = IntervalValue(
					onDay(futureDate, beginClock.Hour(), beginClock.Minute(), beginClock.Second()),
					onDay(futureDate, endClock.Hour(), endClock.Minute(), endClock.Second()))
				ret.PastValue = IntervalValue(
					onDay(pastDate, beginClock.Hour(), beginClock.Minute(), beginClock.Second()),
					onDay(pastDate, endClock.Hour(), endClock.Minute(), endClock.Second()))
				ret.Success = true
				return ret
			}
		}
	}

	ret.Timex = datePr.Timex + timeStr
	ret.FutureValue = IntervalValue(
		onDay(futureDate, beginHour, 0, 0), onDay(futureDate, endHour, endMin, endMin))
	ret.PastValue = IntervalValue(
		onDay(pastDate, beginHour, 0, 0), onDay(pastDate, endHour, endMin, endMin))
	ret.Success = true
	return ret
}

// parseDuration handles a duration framed by a past or future marker,
// e.g. "in 20 minutes" or "last 2 hours": a window anchored on the
// reference instant.
func (p *DateTimePeriodParser) parseDuration(text string, reference time.Time) Resolution {
	var ret Resolution

	durErs := p.config.DurationExtractor.Extract(text, reference)
	if len(durErs) != 1 {
		return ret
	}
	durPr := p.config.DurationParser.Parse(durErs[0], reference)
	if durPr.Value == nil {
		return ret
	}
	seconds := durPr.Value.FutureValue.Seconds

	before := strings.TrimSpace(text[:durErs[0].Start])
	after := strings.TrimSpace(text[durErs[0].End():])

	var begin, end time.Time
	switch {
	case before != "" && fullMatch(p.config.PastRegex, before),
		after != "" && fullMatch(p.config.PastRegex, after):
		begin = reference.Add(-time.Duration(seconds) * time.Second)
		end = reference
		ret.Mod = ModBefore
	case before != "" && fullMatch(p.config.FutureRegex, before),
		after != "" && fullMatch(p.config.FutureRegex, after):
		begin = reference
		end = reference.Add(time.Duration(seconds) * time.Second)
		ret.Mod = ModAfter
	default:
		return ret
	}

	ret.Timex = rangeTimex(pointTimex(begin), pointTimex(end), durPr.Timex)
	value := IntervalValue(begin, end)
	ret.FutureValue = value
	ret.PastValue = value
	ret.Success = true
	return ret
}

// parseRelativeUnit handles bare unit phrases like "last hour" or
// "rest of the day": a one-unit window on the matching side of the
// reference, or the whole reference day for the day unit.
func (p *DateTimePeriodParser) parseRelativeUnit(text string, reference time.Time) Resolution {
	var ret Resolution

	m := findSubmatch(p.config.RelativeTimeUnitRegex, text)
	if m == nil {
		m = findSubmatch(p.config.RestOfDateTimeRegex, text)
	}
	if m == nil {
		return ret
	}
	code, ok := p.config.UnitMap[strings.TrimSpace(m["unit"])]
	if !ok {
		return ret
	}

	swift := 1
	if p.config.PastRegex.MatchString(text) {
		swift = -1
	}

	var begin, end time.Time
	var durTimex string
	switch code {
	case "D":
		begin = dateOf(reference)
		end = onDay(reference, 23, 59, 59)
		durTimex = "PT" + strconv.Itoa(int(end.Sub(begin).Seconds())) + "S"
	case "H":
		begin, end = unitWindow(reference, time.Hour, swift)
		durTimex = "PT1H"
	case "M":
		begin, end = unitWindow(reference, time.Minute, swift)
		durTimex = "PT1M"
	case "S":
		begin, end = unitWindow(reference, time.Second, swift)
		durTimex = "PT1S"
	default:
		return ret
	}

	ret.Timex = rangeTimex(pointTimex(begin), pointTimex(end), durTimex)
	value := IntervalValue(begin, end)
	ret.FutureValue = value
	ret.PastValue = value
	ret.Success = true
	return ret
}

// parseWholeDate resolves text that must be exactly one date span,
// modulo surrounding whitespace.
func (p *DateTimePeriodParser) parseWholeDate(text string, reference time.Time) (ParseResult, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ParseResult{}, false
	}
	ers := p.config.DateExtractor.Extract(trimmed, reference)
	if len(ers) != 1 || ers[0].Length != len(trimmed) {
		return ParseResult{}, false
	}
	pr := p.config.DateParser.Parse(ers[0], reference)
	if pr.Value == nil {
		return ParseResult{}, false
	}
	return pr, true
}

func (p *DateTimePeriodParser) hourValue(text string) (int, bool) {
	if v, ok := p.config.Numbers[text]; ok {
		return v, true
	}
	v, err := strconv.Atoi(text)
	if err != nil || v > 24 {
		return 0, false
	}
	return v, true
}

// unitWindow spans one unit forward or backward from the reference.
func unitWindow(reference time.Time, unit time.Duration, swift int) (time.Time, time.Time) {
	if swift > 0 {
		return reference, reference.Add(unit)
	}
	return reference.Add(-unit), reference
}

// hoursTimex renders a duration timex for a span length, rounded to the
// nearest whole hour.
func hoursTimex(d time.Duration) string {
	return "PT" + strconv.Itoa(int(math.Round(d.Hours()))) + "H"
}

// findSubmatch returns the named groups of the first match of re in
// text, or nil when there is none.
func findSubmatch(re *regexp.Regexp, text string) map[string]string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	groups := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" && m[i] != "" {
			groups[name] = m[i]
		}
	}
	return groups
}
