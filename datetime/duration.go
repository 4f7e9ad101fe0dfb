package datetime

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Seconds per canonical unit code.
var unitSeconds = map[string]float64{
	"S":   1,
	"M":   60,
	"H":   3600,
	"D":   86400,
	"W":   7 * 86400,
	"MON": 30 * 86400,
	"Y":   365 * 86400,
}

// DurationConfig carries the locale patterns for duration recognition.
// Regex groups referenced by name: "num", "unit".
type DurationConfig struct {
	DurationRegexes []*regexp.Regexp
	// UnitMap maps a surface unit word to its canonical code
	// (S, M, H, D, W, MON, Y).
	UnitMap map[string]string
	// Numbers maps word-form cardinals (including articles like "an")
	// to their integer value.
	Numbers map[string]int
}

func (c *DurationConfig) validate() error {
	switch {
	case c == nil:
		return errors.New("duration config is nil")
	case len(c.DurationRegexes) == 0:
		return errors.New("duration config: at least one duration regex is required")
	case len(c.UnitMap) == 0:
		return errors.New("duration config: unit map is required")
	}
	return nil
}

// DurationExtractor finds cardinal+unit duration spans.
type DurationExtractor struct {
	config *DurationConfig
}

// NewDurationExtractor wires a duration extractor, failing fast on an
// incomplete configuration.
func NewDurationExtractor(config *DurationConfig) (*DurationExtractor, error) {
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "duration extractor")
	}
	return &DurationExtractor{config: config}, nil
}

// Extract returns all duration spans in text, sorted and merged.
func (e *DurationExtractor) Extract(text string, _ time.Time) []ExtractResult {
	var tokens []Token
	for _, re := range e.config.DurationRegexes {
		for _, m := range re.FindAllStringIndex(text, -1) {
			tokens = append(tokens, Token{Start: m[0], End: m[1]})
		}
	}
	return MergeTokens(tokens, text, TypeDuration)
}

// DurationParser resolves duration spans to a second count.
type DurationParser struct {
	config *DurationConfig
}

// NewDurationParser wires a duration parser.
func NewDurationParser(config *DurationConfig) (*DurationParser, error) {
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "duration parser")
	}
	return &DurationParser{config: config}, nil
}

// Parse resolves one duration span. The value carries the total second
// count; the timex uses PT for clock units and P for calendar units.
func (p *DurationParser) Parse(er ExtractResult, _ time.Time) ParseResult {
	ret := ParseResult{ExtractResult: er}
	if er.Type != TypeDuration {
		return ret
	}
	trimmed := strings.TrimSpace(strings.ToLower(er.Text))

	for _, re := range p.config.DurationRegexes {
		m := findFullSubmatch(re, trimmed)
		if m == nil {
			continue
		}
		num, ok := p.numberValue(m["num"])
		if !ok {
			continue
		}
		code, ok := p.config.UnitMap[strings.TrimSpace(m["unit"])]
		if !ok {
			continue
		}
		perUnit, ok := unitSeconds[code]
		if !ok {
			continue
		}

		seconds := float64(num) * perUnit
		res := Resolution{
			Success:     true,
			Timex:       durationTimex(num, code),
			FutureValue: SecondsValue(seconds),
			PastValue:   SecondsValue(seconds),
		}
		ret.Value = &res
		ret.Timex = res.Timex
		return ret
	}
	return ret
}

func (p *DurationParser) numberValue(text string) (int, bool) {
	if v, ok := p.config.Numbers[text]; ok {
		return v, true
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		// Malformed captured numerics are a branch failure, not a fault.
		return 0, false
	}
	return v, true
}

// durationTimex renders a canonical duration timex, e.g. PT20M or P3D.
func durationTimex(num int, code string) string {
	n := strconv.Itoa(num)
	switch code {
	case "H", "M", "S":
		return "PT" + n + code
	case "MON":
		return "P" + n + "M"
	default:
		return "P" + n + code
	}
}
