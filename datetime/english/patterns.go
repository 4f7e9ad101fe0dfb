// Compiled pattern tables for the en-us culture.
package english

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rubio41/Recognizers-Text/numword"
)

// Shared fragments. Alternations order longer forms first so the
// leftmost alternative claims the whole word.
const (
	hourNumFrag  = `2[0-3]|1[0-9]|0?[0-9]`
	hourWordFrag = `eleven|twelve|three|seven|eight|one|two|four|five|six|nine|ten`
	descFrag     = `[ap]\.?\s*m\.?`
	tillWordFrag = `to|till|until|thru|through`
	weekDayFrag  = `monday|tuesday|wednesday|thursday|friday|saturday|sunday|thurs|tues|mon|tue|wed|thu|fri|sat|sun`
	monthFrag    = `january|february|march|april|may|june|july|august|september|october|november|december|sept|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec`
	yearFrag     = `(?:19|20)[0-9]{2}`
	dayNumFrag   = `3[01]|[12][0-9]|0?[1-9]`
	hourAnyFrag  = hourNumFrag + `|` + hourWordFrag
	timeOfDay    = `morning|afternoon|evening|night`
	clockUnit    = `hours?|hrs?|minutes?|mins?|seconds?|secs?`
)

// Dates.
var (
	relativeDayRegex = regexp.MustCompile(
		`(?i)\b((the\s+)?day\s+(after\s+tomorrow|before\s+yesterday)|tomorrow|tmr|yesterday|today)\b`)
	weekDayRegex = regexp.MustCompile(
		`(?i)\b(?:(?P<prefix>next|last|this)\s+)?(?P<weekday>` + weekDayFrag + `)\b`)
	monthDayRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?P<month>` + monthFrag + `)\.?\s+(?P<day>` + dayNumFrag + `)(?:st|nd|rd|th)?(?:\s*,?\s+(?P<year>` + yearFrag + `))?\b`),
		regexp.MustCompile(`(?i)\b(?P<day>` + dayNumFrag + `)(?:st|nd|rd|th)?\s+(?:of\s+)?(?P<month>` + monthFrag + `)(?:\s*,?\s+(?P<year>` + yearFrag + `))?\b`),
	}
	numericDateRegexes = []*regexp.Regexp{
		regexp.MustCompile(`\b(?P<year>` + yearFrag + `)-(?P<month>1[0-2]|0?[1-9])-(?P<day>` + dayNumFrag + `)\b`),
		regexp.MustCompile(`\b(?P<month>1[0-2]|0?[1-9])/(?P<day>` + dayNumFrag + `)/(?P<year>` + yearFrag + `)\b`),
	}
)

var monthOfYear = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var dayOfWeek = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

// Times.
var timeRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?P<hour>2[0-3]|[01]?[0-9]):(?P<min>[0-5][0-9])(?::(?P<sec>[0-5][0-9]))?(?:\s*(?P<desc>` + descFrag + `))?`),
	regexp.MustCompile(`(?i)\b(?P<hour>` + hourAnyFrag + `)\s*(?P<desc>` + descFrag + `)`),
	regexp.MustCompile(`(?i)\b(?P<hour>` + hourAnyFrag + `)\s+o'?clock\b`),
}

// Durations.
var (
	durationUnitMap = map[string]string{
		"hour": "H", "hours": "H", "hr": "H", "hrs": "H",
		"minute": "M", "minutes": "M", "min": "M", "mins": "M",
		"second": "S", "seconds": "S", "sec": "S", "secs": "S",
		"day": "D", "days": "D",
		"week": "W", "weeks": "W",
		"month": "MON", "months": "MON",
		"year": "Y", "years": "Y",
	}
	durationRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?P<num>` + numberWordFrag(numword.English()) + `|[0-9]+)\s+(?P<unit>days?|weeks?|months?|years?|` + clockUnit + `)\b`),
	}
	timeUnitRegex = regexp.MustCompile(`(?i)\b(` + clockUnit + `)\b`)
)

// Time periods.
var (
	pureNumFromToStrict = regexp.MustCompile(
		`(?i)\bfrom\s+(?P<hour1>` + hourAnyFrag + `)(?:\s*(?P<desc1>` + descFrag + `))?\s*(?:` + tillWordFrag + `|[-–—])\s*(?P<hour2>` + hourAnyFrag + `)(?:\s*(?P<desc2>` + descFrag + `))?\b`)
	pureNumToDesc = regexp.MustCompile(
		`(?i)\b(?P<hour1>` + hourAnyFrag + `)(?:\s*(?P<desc1>` + descFrag + `))?\s*(?:` + tillWordFrag + `|[-–—])\s*(?P<hour2>` + hourAnyFrag + `)\s*(?P<desc2>` + descFrag + `)`)
	pureNumBetweenAnd = regexp.MustCompile(
		`(?i)\bbetween\s+(?P<hour1>` + hourAnyFrag + `)(?:\s*(?P<desc1>` + descFrag + `))?\s*and\s+(?P<hour2>` + hourAnyFrag + `)(?:\s*(?P<desc2>` + descFrag + `))?\b`)
	pureNumFromTo = regexp.MustCompile(
		`(?i)\b(?:from\s+)?(?P<hour1>` + hourAnyFrag + `)(?:\s*(?P<desc1>` + descFrag + `))?\s*(?:` + tillWordFrag + `|[-–—])\s*(?P<hour2>` + hourAnyFrag + `)(?:\s*(?P<desc2>` + descFrag + `))?`)
	tillRegex = regexp.MustCompile(`(?i)^(` + tillWordFrag + `|[-–—]+)$`)
)

// Date-time points and periods.
var (
	connectorRegex   = regexp.MustCompile(`(?i)^(at|on|in|around|,)$`)
	prepositionRegex = regexp.MustCompile(`(?i)^(,\s*)?(on|in|at|around|of)$`)

	specificTimeOfDayRegex = regexp.MustCompile(
		`(?i)\b(?:(?:(?P<early>early)\s+|(?P<late>late)\s+)?(?P<prefix>this|next|last)\s+(?P<timeOfDay>` + timeOfDay + `)|(?P<tonight>tonight))\b`)
	periodTimeOfDayWithDateRegex = regexp.MustCompile(
		`(?i)\b(?:(?P<early>early)\s+|(?P<late>late)\s+)?(?:in\s+the\s+)?(?P<timeOfDay>` + timeOfDay + `)\b`)

	pastPrefixRegex = regexp.MustCompile(`(?i)\b(past|last|previous)\b`)
	nextPrefixRegex = regexp.MustCompile(`(?i)\b(next|upcoming|coming|following|within|in)\b`)

	relativeTimeUnitRegex = regexp.MustCompile(
		`(?i)\b(?:the\s+)?(?:next|last|past|previous)\s+(?P<unit>hour|minute|min|second|sec)s?\b`)
	restOfDateTimeRegex = regexp.MustCompile(
		`(?i)\b(?:the\s+)?rest\s+of\s+(?:the\s+|this\s+)?(?P<unit>day)\b`)

	middlePauseRegex   = regexp.MustCompile(`^\s*,\s*$`)
	generalEndingRegex = regexp.MustCompile(`^\s*[.!?]*\s*$`)
)

// relativeUnitMap feeds the relative-unit branch; surface unit words
// map to canonical codes.
var relativeUnitMap = map[string]string{
	"hour": "H", "minute": "M", "min": "M", "second": "S", "sec": "S", "day": "D",
}

// Sets.
var (
	lastRegex       = regexp.MustCompile(`(?i)\b(last|past|previous)\b`)
	eachPrefixRegex = regexp.MustCompile(`(?i)\b(each|every)\b\s*`)
	periodicRegex   = regexp.MustCompile(`(?i)\b(?P<periodic>daily|weekly|biweekly|monthly|quarterly|yearly|annually|annual)\b`)
	eachUnitRegex   = regexp.MustCompile(`(?i)\b(?P<each>each|every)(?:\s+(?P<other>other))?\s+(?P<unit>day|week|month|year|hour|minute|second)s?\b`)
	eachDayRegex    = regexp.MustCompile(`(?i)^\s*(each|every)\s*day\b`)
	// The each-day marker can also precede the time: "every day at 9am".
	beforeEachDayRegex = regexp.MustCompile(`(?i)\b(each|every)\s*day(?:\s+at)?\b\s*`)
	setWeekDayRegex    = regexp.MustCompile(`(?i)\b(?P<prefix>on\s+)?(?P<weekday>monday|tuesday|wednesday|thursday|friday|saturday|sunday|morning|afternoon|evening|night)s\b`)
	setEachRegex       = regexp.MustCompile(`(?i)\b(?P<each>each|every)\b\s*`)
)

var dailyTimexMap = map[string]string{
	"daily":     "P1D",
	"weekly":    "P1W",
	"biweekly":  "P2W",
	"monthly":   "P1M",
	"quarterly": "P3M",
	"yearly":    "P1Y",
	"annually":  "P1Y",
	"annual":    "P1Y",
}

var unitTimexMap = map[string]string{
	"day":    "P1D",
	"week":   "P1W",
	"month":  "P1M",
	"year":   "P1Y",
	"hour":   "PT1H",
	"minute": "PT1M",
	"second": "PT1S",
}

// numberWordFrag renders a word table as a regex alternation, longest
// entries first so compounds win over their parts.
func numberWordFrag(table map[string]int) string {
	words := make([]string, 0, len(table))
	for w := range table {
		words = append(words, regexp.QuoteMeta(w))
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return strings.Join(words, "|")
}

// suffixTokenIndex reports the byte index of token when it ends text,
// ignoring trailing whitespace.
func suffixTokenIndex(text, token string) (int, bool) {
	trimmed := strings.TrimRight(text, " \t")
	if !strings.HasSuffix(trimmed, token) {
		return 0, false
	}
	start := len(trimmed) - len(token)
	if start > 0 && isWordByte(trimmed[start-1]) {
		return 0, false
	}
	return start, true
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
