// Package english supplies the en-us component set for the datetime
// recognizer: compiled pattern tables plus the behavioral callbacks the
// language-agnostic core delegates to.
package english

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/rubio41/Recognizers-Text/datetime"
	"github.com/rubio41/Recognizers-Text/numword"
)

// Culture is the code this package registers under.
const Culture = "en-us"

// NewComponents builds the full en-us extractor and parser set. The
// date-period slots stay nil: English recurrences delegate straight to
// the other leaf parsers.
func NewComponents() (*datetime.Components, error) {
	numbers := numword.English()

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
		return nil, errors.Wrap(err, "english")
	}
	dateParser, err := datetime.NewDateParser(dateCfg)
	if err != nil {
		return nil, errors.Wrap(err, "english")
	}

	timeCfg := &datetime.TimeConfig{
		TimeRegexes: timeRegexes,
		Numbers:     numbers,
		AmDesc:      amDesc,
		PmDesc:      pmDesc,
	}
	timeExt, err := datetime.NewTimeExtractor(timeCfg)
	if err != nil {
		return nil, errors.Wrap(err, "english")
	}
	timeParser, err := datetime.NewTimeParser(timeCfg)
	if err != nil {
		return nil, errors.Wrap(err, "english")
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
		return nil, errors.Wrap(err, "english")
	}
	dateTimeParser, err := datetime.NewDateTimeParser(dateTimeCfg)
	if err != nil {
		return nil, errors.Wrap(err, "english")
	}

	durationCfg := &datetime.DurationConfig{
		DurationRegexes: durationRegexes,
		UnitMap:         durationUnitMap,
		Numbers:         numbers,
	}
	durationExt, err := datetime.NewDurationExtractor(durationCfg)
	if err != nil {
		return nil, errors.Wrap(err, "english")
	}
	durationParser, err := datetime.NewDurationParser(durationCfg)
	if err != nil {
		return nil, errors.Wrap(err, "english")
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
		return nil, errors.Wrap(err, "english")
	}
	timePeriodParser, err := datetime.NewTimePeriodParser(timePeriodCfg)
	if err != nil {
		return nil, errors.Wrap(err, "english")
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
		return nil, errors.Wrap(err, "english")
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
		return nil, errors.Wrap(err, "english")
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
		return nil, errors.Wrap(err, "english")
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
		return nil, errors.Wrap(err, "english")
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
	case strings.Contains(normalized, "after tomorrow"):
		return 2, true
	case strings.Contains(normalized, "before yesterday"):
		return -2, true
	case strings.Contains(normalized, "tomorrow"), strings.Contains(normalized, "tmr"):
		return 1, true
	case strings.Contains(normalized, "yesterday"):
		return -1, true
	case strings.Contains(normalized, "today"):
		return 0, true
	}
	return 0, false
}

func getSwiftPrefix(text string) int {
	normalized := strings.ToLower(text)
	switch {
	case strings.Contains(normalized, "next"):
		return 1
	case strings.Contains(normalized, "last"):
		return -1
	}
	return 0
}

func amDesc(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(strings.ToLower(text)), "a")
}

func pmDesc(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(strings.ToLower(text)), "p")
}

func getFromTokenIndex(text string) (int, bool) {
	return suffixTokenIndex(text, "from")
}

func getBetweenTokenIndex(text string) (int, bool) {
	return suffixTokenIndex(text, "between")
}

func hasConnectorToken(text string) bool {
	return text == "and" || text == ","
}

// getMatchedTimeRange maps a day-part phrase to its timex suffix and
// hour window. Night runs to 23:59 so late evening stays inside the
// calendar day.
func getMatchedTimeRange(text string) (string, int, int, int, bool) {
	normalized := strings.ToLower(text)
	switch {
	case strings.Contains(normalized, "morning"):
		return "TMO", 8, 12, 0, true
	case strings.Contains(normalized, "afternoon"):
		return "TAF", 12, 16, 0, true
	case strings.Contains(normalized, "evening"):
		return "TEV", 16, 20, 0, true
	case strings.Contains(normalized, "night"):
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
