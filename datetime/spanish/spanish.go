// Package spanish supplies the es-es component set for the datetime
// recognizer: compiled pattern tables plus the behavioral callbacks the
// language-agnostic core delegates to.
package spanish

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/rubio41/Recognizers-Text/datetime"
	"github.com/rubio41/Recognizers-Text/numword"
)

// Culture is the code this package registers under.
const Culture = "es-es"

// NewComponents builds the full es-es extractor and parser set. The
// date-period slots stay nil, matching the en-us wiring.
func NewComponents() (*datetime.Components, error) {
	numbers := numword.Spanish()

	dateCfg := &datetime.DateConfig{
		RelativeDayRegex:     relativeDayRegex,
		WeekDayRegex:         weekDayRegex,
		MonthDayRegexes:      monthDayRegexes,
		NumericDateRegexes:   numericDateRegexes,
		MonthOfYear:          monthOfYear,
		DayOfWeek:            dayOfWeek,
		GetRelativeDayOffset: getRelativeDayOffset,
		GetSwiftPrefix:       getSwiftPrefix,
	}
	dateExt, err := datetime.NewDateExtractor(dateCfg)
	if err != nil {
		return nil, errors.Wrap(err, "spanish")
	}
	dateParser, err := datetime.NewDateParser(dateCfg)
	if err != nil {
		return nil, errors.Wrap(err, "spanish")
	}

	timeCfg := &datetime.TimeConfig{
		TimeRegexes: timeRegexes,
		Numbers:     numbers,
		AmDesc:      amDesc,
		PmDesc:      pmDesc,
	}
	timeExt, err := datetime.NewTimeExtractor(timeCfg)
	if err != nil {
		return nil, errors.Wrap(err, "spanish")
	}
	timeParser, err := datetime.NewTimeParser(timeCfg)
	if err != nil {
		return nil, errors.Wrap(err, "spanish")
	}

	dateTimeCfg := &datetime.DateTimeConfig{
		DateExtractor:  dateExt,
		TimeExtractor:  timeExt,
		DateParser:     dateParser,
		TimeParser:     timeParser,
		ConnectorRegex: connectorRegex,
	}
	dateTimeExt, err := datetime.NewDateTimeExtractor(dateTimeCfg)
	if err != nil {
		return nil, errors.Wrap(err, "spanish")
	}
	dateTimeParser, err := datetime.NewDateTimeParser(dateTimeCfg)
	if err != nil {
		return nil, errors.Wrap(err, "spanish")
	}

	durationCfg := &datetime.DurationConfig{
		DurationRegexes: durationRegexes,
		UnitMap:         durationUnitMap,
		Numbers:         numbers,
	}
	durationExt, err := datetime.NewDurationExtractor(durationCfg)
	if err != nil {
		return nil, errors.Wrap(err, "spanish")
	}
	durationParser, err := datetime.NewDurationParser(durationCfg)
	if err != nil {
		return nil, errors.Wrap(err, "spanish")
	}

	timePeriodCfg := &datetime.TimePeriodConfig{
		SimpleCasesRegexes:   []*regexp.Regexp{pureNumFromToStrict, pureNumToDesc, pureNumBetweenAnd},
		TillRegex:            tillRegex,
		TimeExtractor:        timeExt,
		TimeParser:           timeParser,
		Numbers:              numbers,
		AmDesc:               amDesc,
		PmDesc:               pmDesc,
		GetFromTokenIndex:    getFromTokenIndex,
		GetBetweenTokenIndex: getBetweenTokenIndex,
	}
	timePeriodExt, err := datetime.NewTimePeriodExtractor(timePeriodCfg)
	if err != nil {
		return nil, errors.Wrap(err, "spanish")
	}
	timePeriodParser, err := datetime.NewTimePeriodParser(timePeriodCfg)
	if err != nil {
		return nil, errors.Wrap(err, "spanish")
	}

	dtpExtractorCfg := &datetime.DateTimePeriodExtractorConfig{
		SimpleCasesRegexes:           []*regexp.Regexp{pureNumFromToStrict, pureNumToDesc, pureNumBetweenAnd},
		PrepositionRegex:             prepositionRegex,
		TillRegex:                    tillRegex,
		SpecificTimeOfDayRegex:       specificTimeOfDayRegex,
		PeriodTimeOfDayWithDateRegex: periodTimeOfDayWithDateRegex,
		TimeUnitRegex:                timeUnitRegex,
		PastPrefixRegex:              pastPrefixRegex,
		NextPrefixRegex:              nextPrefixRegex,
		RelativeTimeUnitRegex:        relativeTimeUnitRegex,
		RestOfDateTimeRegex:          restOfDateTimeRegex,
		MiddlePauseRegex:             middlePauseRegex,
		GeneralEndingRegex:           generalEndingRegex,
		GetFromTokenIndex:            getFromTokenIndex,
		GetBetweenTokenIndex:         getBetweenTokenIndex,
		HasConnectorToken:            hasConnectorToken,
		SingleDateExtractor:          dateExt,
		SingleTimeExtractor:          timeExt,
		SingleDateTimeExtractor:      dateTimeExt,
		DurationExtractor:            durationExt,
		TimePeriodExtractor:          timePeriodExt,
	}
	dtpExt, err := datetime.NewDateTimePeriodExtractor(dtpExtractorCfg)
	if err != nil {
		return nil, errors.Wrap(err, "spanish")
	}

	dtpParserCfg := &datetime.DateTimePeriodParserConfig{
		PureNumberFromToRegex:        pureNumFromTo,
		PureNumberBetweenAndRegex:    pureNumBetweenAnd,
		SpecificTimeOfDayRegex:       specificTimeOfDayRegex,
		PeriodTimeOfDayWithDateRegex: periodTimeOfDayWithDateRegex,
		PastRegex:                    pastPrefixRegex,
		FutureRegex:                  nextPrefixRegex,
		RelativeTimeUnitRegex:        relativeTimeUnitRegex,
		RestOfDateTimeRegex:          restOfDateTimeRegex,
		UnitMap:                      relativeUnitMap,
		Numbers:                      numbers,
		DateExtractor:                dateExt,
		TimeExtractor:                timeExt,
		DateTimeExtractor:            dateTimeExt,
		TimePeriodExtractor:          timePeriodExt,
		DurationExtractor:            durationExt,
		DateParser:                   dateParser,
		TimeParser:                   timeParser,
		DateTimeParser:               dateTimeParser,
		TimePeriodParser:             timePeriodParser,
		DurationParser:               durationParser,
		AmDesc:                       amDesc,
		PmDesc:                       pmDesc,
		GetMatchedTimeRange:          getMatchedTimeRange,
		GetSwiftPrefix:               getSwiftPrefix,
	}
	dtpParser, err := datetime.NewDateTimePeriodParser(dtpParserCfg)
	if err != nil {
		return nil, errors.Wrap(err, "spanish")
	}

	setExtractorCfg := &datetime.SetExtractorConfig{
		LastRegex:               lastRegex,
		EachPrefixRegex:         eachPrefixRegex,
		PeriodicRegex:           periodicRegex,
		EachUnitRegex:           eachUnitRegex,
		EachDayRegex:            eachDayRegex,
		BeforeEachDayRegex:      beforeEachDayRegex,
		SetWeekDayRegex:         setWeekDayRegex,
		SetEachRegex:            setEachRegex,
		DurationExtractor:       durationExt,
		TimeExtractor:           timeExt,
		DateExtractor:           dateExt,
		DateTimeExtractor:       dateTimeExt,
		TimePeriodExtractor:     timePeriodExt,
		DateTimePeriodExtractor: dtpExt,
	}
	setExt, err := datetime.NewSetExtractor(setExtractorCfg)
	if err != nil {
		return nil, errors.Wrap(err, "spanish")
	}

	setParserCfg := &datetime.SetParserConfig{
		EachPrefixRegex:         eachPrefixRegex,
		PeriodicRegex:           periodicRegex,
		EachUnitRegex:           eachUnitRegex,
		EachDayRegex:            eachDayRegex,
		SetEachRegex:            setEachRegex,
		SetWeekDayRegex:         setWeekDayRegex,
		GetMatchedDailyTimex:    getMatchedDailyTimex,
		GetMatchedUnitTimex:     getMatchedUnitTimex,
		DurationExtractor:       durationExt,
		TimeExtractor:           timeExt,
		DateExtractor:           dateExt,
		DateTimeExtractor:       dateTimeExt,
		TimePeriodExtractor:     timePeriodExt,
		DateTimePeriodExtractor: dtpExt,
		DurationParser:          durationParser,
		TimeParser:              timeParser,
		DateParser:              dateParser,
		DateTimeParser:          dateTimeParser,
		TimePeriodParser:        timePeriodParser,
		DateTimePeriodParser:    dtpParser,
	}
	setParser, err := datetime.NewSetParser(setParserCfg)
	if err != nil {
		return nil, errors.Wrap(err, "spanish")
	}

	return &datetime.Components{
		DateExtractor:           dateExt,
		TimeExtractor:           timeExt,
		DateTimeExtractor:       dateTimeExt,
		DurationExtractor:       durationExt,
		TimePeriodExtractor:     timePeriodExt,
		DateTimePeriodExtractor: dtpExt,
		SetExtractor:            setExt,
		DateParser:              dateParser,
		TimeParser:              timeParser,
		DateTimeParser:          dateTimeParser,
		DurationParser:          durationParser,
		TimePeriodParser:        timePeriodParser,
		DateTimePeriodParser:    dtpParser,
		SetParser:               setParser,
	}, nil
}

func getRelativeDayOffset(text string) (int, bool) {
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	switch {
	case strings.Contains(normalized, "pasado mañana"):
		return 2, true
	// "anteayer" contains "ayer", so it has to win first.
	case strings.Contains(normalized, "anteayer"), strings.Contains(normalized, "antier"):
		return -2, true
	case strings.Contains(normalized, "mañana"):
		return 1, true
	case strings.Contains(normalized, "ayer"):
		return -1, true
	case strings.Contains(normalized, "hoy"):
		return 0, true
	}
	return 0, false
}

func getSwiftPrefix(text string) int {
	normalized := strings.ToLower(text)
	switch {
	case strings.Contains(normalized, "próxim"), strings.Contains(normalized, "proxim"),
		strings.Contains(normalized, "siguiente"):
		return 1
	case strings.Contains(normalized, "anoche"),
		strings.Contains(normalized, "pasad"),
		strings.Contains(normalized, "últim"), strings.Contains(normalized, "ultim"):
		return -1
	}
	return 0
}

// amDesc recognizes both "a.m." and the day-part phrases that put a
// clock in the morning half.
func amDesc(text string) bool {
	normalized := strings.TrimSpace(strings.ToLower(text))
	if strings.Contains(normalized, "mañana") || strings.Contains(normalized, "madrugada") {
		return true
	}
	return strings.HasPrefix(normalized, "a.") || strings.HasPrefix(normalized, "am") ||
		normalized == "a" || strings.HasPrefix(normalized, "a m")
}

func pmDesc(text string) bool {
	normalized := strings.TrimSpace(strings.ToLower(text))
	if strings.Contains(normalized, "tarde") || strings.Contains(normalized, "noche") {
		return true
	}
	return strings.HasPrefix(normalized, "p")
}

func getFromTokenIndex(text string) (int, bool) {
	if i, ok := suffixTokenIndex(text, "desde"); ok {
		return i, true
	}
	return suffixTokenIndex(text, "de")
}

func getBetweenTokenIndex(text string) (int, bool) {
	return suffixTokenIndex(text, "entre")
}

func hasConnectorToken(text string) bool {
	return text == "y" || text == ","
}

// getMatchedTimeRange maps a day-part phrase to its timex suffix and
// hour window. Matching keys on the phrase suffix keeps "esta noche"
// and the bare "noche" on the same entry; "anoche" ends in "noche" too.
func getMatchedTimeRange(text string) (string, int, int, int, bool) {
	normalized := strings.TrimSpace(strings.ToLower(text))
	switch {
	case strings.HasSuffix(normalized, "madrugada"):
		return "TDA", 4, 8, 0, true
	case strings.HasSuffix(normalized, "mañana"):
		return "TMO", 8, 12, 0, true
	case strings.Contains(normalized, "mediod"):
		return "TAF", 12, 16, 0, true
	case strings.HasSuffix(normalized, "tarde"):
		return "TEV", 16, 20, 0, true
	case strings.HasSuffix(normalized, "noche"):
		return "TNI", 20, 23, 59, true
	}
	return "", 0, 0, 0, false
}

func getMatchedDailyTimex(text string) (string, bool) {
	timex, ok := dailyTimexMap[strings.TrimSpace(strings.ToLower(text))]
	return timex, ok
}

func getMatchedUnitTimex(text string) (string, bool) {
	timex, ok := unitTimexMap[strings.TrimSpace(strings.ToLower(text))]
	return timex, ok
}
