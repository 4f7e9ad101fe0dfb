// Compiled pattern tables for the es-es culture.
package spanish

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
	hourWordFrag = `cuatro|cinco|siete|nueve|doce|once|diez|ocho|seis|tres|una|dos`
	descFrag     = `(?:de|por)\s+la\s+(?:madrugada|mañana|tarde|noche)|[ap]\.?\s*m\.?`
	weekDayFrag  = `lunes|martes|mi[ée]rcoles|jueves|viernes|s[áa]bado|domingo`
	monthFrag    = `enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|setiembre|octubre|noviembre|diciembre`
	yearFrag     = `(?:19|20)[0-9]{2}`
	dayNumFrag   = `3[01]|[12][0-9]|0?[1-9]`
	hourAnyFrag  = hourNumFrag + `|` + hourWordFrag
	timeOfDay    = `madrugada|mañana|mediod[ií]a|tarde|noche`
	clockUnit    = `horas?|hrs?|minutos?|mins?|segundos?|segs?`
)

// Dates.
var (
	relativeDayRegex = regexp.MustCompile(
		`(?i)\b(pasado\s+mañana|anteayer|antier|mañana|ayer|hoy)\b`)
	weekDayRegex = regexp.MustCompile(
		`(?i)\b(?:el\s+)?(?:(?P<prefix>pr[óo]ximo|pasado|este)\s+)?(?P<weekday>` + weekDayFrag + `)\b`)
	monthDayRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:el\s+)?(?P<day>` + dayNumFrag + `)\s+de\s+(?P<month>` + monthFrag + `)(?:\s+(?:de(?:l)?\s+)?(?P<year>` + yearFrag + `))?\b`),
	}
	numericDateRegexes = []*regexp.Regexp{
		regexp.MustCompile(`\b(?P<year>` + yearFrag + `)-(?P<month>1[0-2]|0?[1-9])-(?P<day>` + dayNumFrag + `)\b`),
		regexp.MustCompile(`\b(?P<day>` + dayNumFrag + `)/(?P<month>1[0-2]|0?[1-9])/(?P<year>` + yearFrag + `)\b`),
	}
)

var monthOfYear = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

var dayOfWeek = map[string]time.Weekday{
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miércoles": time.Wednesday,
	"miercoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sábado":    time.Saturday,
	"sabado":    time.Saturday,
	"domingo":   time.Sunday,
}

// Times. "a las cinco de la tarde" carries both the article form and
// the day-part meridiem.
var timeRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?P<hour>2[0-3]|[01]?[0-9]):(?P<min>[0-5][0-9])(?::(?P<sec>[0-5][0-9]))?(?:\s*(?P<desc>` + descFrag + `))?`),
	regexp.MustCompile(`(?i)\b(?:a\s+las?\s+)?(?P<hour>` + hourAnyFrag + `)\s*(?P<desc>` + descFrag + `)`),
	regexp.MustCompile(`(?i)\ba\s+las?\s+(?P<hour>` + hourAnyFrag + `)\b`),
}

// Durations.
var (
	durationUnitMap = map[string]string{
		"hora": "H", "horas": "H", "hr": "H", "hrs": "H",
		"minuto": "M", "minutos": "M", "min": "M", "mins": "M",
		"segundo": "S", "segundos": "S", "seg": "S", "segs": "S",
		"día": "D", "días": "D", "dia": "D", "dias": "D",
		"semana": "W", "semanas": "W",
		"mes": "MON", "meses": "MON",
		"año": "Y", "años": "Y", "ano": "Y", "anos": "Y",
	}
	durationRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?P<num>` + numberWordFrag(numword.Spanish()) + `|[0-9]+)\s+(?P<unit>d[ií]as?|semanas?|mes(?:es)?|años?|anos?|` + clockUnit + `)\b`),
	}
	timeUnitRegex = regexp.MustCompile(`(?i)\b(` + clockUnit + `)\b`)
)

// Time periods.
var (
	pureNumFromToStrict = regexp.MustCompile(
		`(?i)\b(?:desde|de)\s+(?:las?\s+)?(?P<hour1>` + hourAnyFrag + `)(?:\s*(?P<desc1>` + descFrag + `))?\s*(?:hasta|al?|[-–—])\s+(?:las?\s+)?(?P<hour2>` + hourAnyFrag + `)(?:\s*(?P<desc2>` + descFrag + `))?\b`)
	pureNumToDesc = regexp.MustCompile(
		`(?i)\b(?P<hour1>` + hourAnyFrag + `)(?:\s*(?P<desc1>` + descFrag + `))?\s*(?:hasta|al?|[-–—])\s*(?:las?\s+)?(?P<hour2>` + hourAnyFrag + `)\s*(?P<desc2>` + descFrag + `)`)
	pureNumBetweenAnd = regexp.MustCompile(
		`(?i)\bentre\s+(?:las?\s+)?(?P<hour1>` + hourAnyFrag + `)(?:\s*(?P<desc1>` + descFrag + `))?\s*y\s+(?:las?\s+)?(?P<hour2>` + hourAnyFrag + `)(?:\s*(?P<desc2>` + descFrag + `))?\b`)
	pureNumFromTo = regexp.MustCompile(
		`(?i)\b(?:(?:desde|de)\s+(?:las?\s+)?)?(?P<hour1>` + hourAnyFrag + `)(?:\s*(?P<desc1>` + descFrag + `))?\s*(?:hasta|al?|[-–—])\s*(?:las?\s+)?(?P<hour2>` + hourAnyFrag + `)(?:\s*(?P<desc2>` + descFrag + `))?`)
	tillRegex = regexp.MustCompile(`(?i)^(hasta|al?|[-–—]+)$`)
)

// Date-time points and periods.
var (
	connectorRegex   = regexp.MustCompile(`(?i)^(a|en|el|,)$`)
	prepositionRegex = regexp.MustCompile(`(?i)^(,\s*)?(en|el|del?|por|a)$`)

	specificTimeOfDayRegex = regexp.MustCompile(
		`(?i)\b(?:(?P<prefix>esta|este|pr[óo]xima|pasada)\s+(?P<timeOfDay>` + timeOfDay + `)|(?P<anoche>anoche))\b`)
	// The preposition is mandatory: a bare "mañana" is the relative day,
	// not the day part.
	periodTimeOfDayWithDateRegex = regexp.MustCompile(
		`(?i)\b(?:(?:por|de|en)\s+la|al)\s+(?P<timeOfDay>` + timeOfDay + `)\b`)

	pastPrefixRegex = regexp.MustCompile(`(?i)\b([úu]ltim[oa]s?|pasad[oa]s?)\b`)
	nextPrefixRegex = regexp.MustCompile(`(?i)\b(pr[óo]xim[oa]s?|siguientes?|dentro\s+de|en)\b`)

	relativeTimeUnitRegex = regexp.MustCompile(
		`(?i)\b(?:(?:el|la|los|las)\s+)?(?:[úu]ltim[oa]s?|pasad[oa]s?|pr[óo]xim[oa]s?|siguientes?)\s+(?P<unit>hora|minuto|min|segundo|seg)s?\b`)
	restOfDateTimeRegex = regexp.MustCompile(
		`(?i)\b(?:el\s+)?resto\s+del?\s+(?:este\s+)?(?P<unit>d[ií]a)\b`)

	middlePauseRegex   = regexp.MustCompile(`^\s*,\s*$`)
	generalEndingRegex = regexp.MustCompile(`^\s*[.!?]*\s*$`)
)

var relativeUnitMap = map[string]string{
	"hora": "H", "minuto": "M", "min": "M", "segundo": "S", "seg": "S",
	"día": "D", "dia": "D",
}

// Sets.
var (
	lastRegex       = regexp.MustCompile(`(?i)\b([úu]ltim[oa]s?|pasad[oa]s?)\b`)
	eachPrefixRegex = regexp.MustCompile(`(?i)\bcada\b\s*`)
	periodicRegex   = regexp.MustCompile(
		`(?i)\b(?P<periodic>diariamente|diario|semanalmente|quincenalmente|mensualmente|trimestralmente|anualmente)\b`)
	eachUnitRegex = regexp.MustCompile(
		`(?i)\bcada(?:\s+(?P<other>otr[oa]))?\s+(?P<unit>d[ií]a|semana|mes|año|hora|minuto|segundo)s?\b`)
	eachDayRegex = regexp.MustCompile(
		`(?i)^\s*(todos\s+los\s+d[ií]as|cada\s+d[ií]a)\b`)
	// The each-day marker can also precede the time: "todos los días a
	// las 9".
	beforeEachDayRegex = regexp.MustCompile(
		`(?i)\b(todos\s+los\s+d[ií]as|cada\s+d[ií]a)(?:\s+a\s+las?)?\b\s*`)
	setWeekDayRegex = regexp.MustCompile(
		`(?i)\b(?P<prefix>los\s+)(?P<weekday>lunes|martes|mi[ée]rcoles|jueves|viernes|s[áa]bado|domingo)s?\b`)
	setEachRegex = regexp.MustCompile(`(?i)\bcada\b\s*`)
)

var dailyTimexMap = map[string]string{
	"diario":          "P1D",
	"diariamente":     "P1D",
	"semanalmente":    "P1W",
	"quincenalmente":  "P2W",
	"mensualmente":    "P1M",
	"trimestralmente": "P3M",
	"anualmente":      "P1Y",
}

var unitTimexMap = map[string]string{
	"día": "P1D", "dia": "P1D",
	"semana":  "P1W",
	"mes":     "P1M",
	"año":     "P1Y",
	"hora":    "PT1H",
	"minuto":  "PT1M",
	"segundo": "PT1S",
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
