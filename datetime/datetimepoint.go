package datetime

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DateTimeConfig wires the single date-time point components: a date
// span and a time span joined by whitespace or a connector word.
type DateTimeConfig struct {
	DateExtractor Extractor
	TimeExtractor Extractor
	DateParser    Parser
	TimeParser    Parser
	// ConnectorRegex matches the full trimmed gap between the two spans.
	// The empty gap is always accepted.
	ConnectorRegex *regexp.Regexp
}

func (c *DateTimeConfig) validate() error {
	switch {
	case c == nil:
		return errors.New("datetime config is nil")
	case c.DateExtractor == nil || c.TimeExtractor == nil:
		return errors.New("datetime config: date and time extractors are required")
	case c.DateParser == nil || c.TimeParser == nil:
		return errors.New("datetime config: date and time parsers are required")
	case c.ConnectorRegex == nil:
		return errors.New("datetime config: connector regex is required")
	}
	return nil
}

// DateTimeExtractor finds date+time point spans ("tomorrow at 5pm").
type DateTimeExtractor struct {
	config *DateTimeConfig
}

// NewDateTimeExtractor wires a date-time point extractor, failing fast
// on an incomplete configuration.
func NewDateTimeExtractor(config *DateTimeConfig) (*DateTimeExtractor, error) {
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "datetime extractor")
	}
	return &DateTimeExtractor{config: config}, nil
}

// Extract merges adjacent date and time spans, in either order, into
// date-time point spans.
func (e *DateTimeExtractor) Extract(text string, reference time.Time) []ExtractResult {
	dates := e.config.DateExtractor.Extract(text, reference)
	times := e.config.TimeExtractor.Extract(text, reference)

	var tokens []Token
	for _, d := range dates {
		for _, t := range times {
			if d.Overlaps(t) {
				continue
			}
			if tok, ok := e.join(text, d, t); ok {
				tokens = append(tokens, tok)
			} else if tok, ok := e.join(text, t, d); ok {
				tokens = append(tokens, tok)
			}
		}
	}
	return MergeTokens(tokens, text, TypeDateTime)
}

// join accepts first followed by second when the gap between them is
// empty or a single connector.
func (e *DateTimeExtractor) join(text string, first, second ExtractResult) (Token, bool) {
	if first.End() > second.Start {
		return Token{}, false
	}
	gap := strings.TrimSpace(strings.ToLower(text[first.End():second.Start]))
	if gap != "" && !fullMatch(e.config.ConnectorRegex, gap) {
		return Token{}, false
	}
	return Token{Start: first.Start, End: second.End()}, true
}

// DateTimeParser resolves date+time point spans to dual past/future
// instants.
type DateTimeParser struct {
	config *DateTimeConfig
}

// NewDateTimeParser wires a date-time point parser.
func NewDateTimeParser(config *DateTimeConfig) (*DateTimeParser, error) {
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "datetime parser")
	}
	return &DateTimeParser{config: config}, nil
}

// Parse splits the span into its date and time parts, resolves each,
// and combines the clock onto the date's future and past candidates.
func (p *DateTimeParser) Parse(er ExtractResult, reference time.Time) ParseResult {
	ret := ParseResult{ExtractResult: er}
	if er.Type != TypeDateTime {
		return ret
	}

	dates := p.config.DateExtractor.Extract(er.Text, reference)
	times := p.config.TimeExtractor.Extract(er.Text, reference)
	if len(dates) != 1 || len(times) != 1 {
		return ret
	}

	datePr := p.config.DateParser.Parse(dates[0], reference)
	timePr := p.config.TimeParser.Parse(times[0], reference)
	if datePr.Value == nil || timePr.Value == nil {
		return ret
	}

	clock := timePr.Value.FutureValue.Instant
	future := onDay(datePr.Value.FutureValue.Instant, clock.Hour(), clock.Minute(), clock.Second())
	past := onDay(datePr.Value.PastValue.Instant, clock.Hour(), clock.Minute(), clock.Second())

	res := Resolution{
		Success:     true,
		Timex:       datePr.Timex + timePr.Timex,
		Comment:     timePr.Value.Comment,
		FutureValue: InstantValue(future),
		PastValue:   InstantValue(past),
		FutureResolution: map[string]string{
			"datetime": FormatDateTime(future),
		},
		PastResolution: map[string]string{
			"datetime": FormatDateTime(past),
		},
	}
	ret.Value = &res
	ret.Timex = res.Timex
	return ret
}
