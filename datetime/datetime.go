// Package datetime recognizes compound temporal expressions embedded in
// free-form text and resolves them against a reference instant.
//
// The package is split into a language-agnostic core (this package) and
// per-culture configuration packages (english, spanish) that supply the
// compiled pattern tables and small behavioral callbacks. Extraction
// returns byte-offset spans over the original text; parsing resolves a
// span to a dual past/future value pair plus a canonical timex string.
//
// Extractors and parsers hold only their configuration and are safe for
// concurrent use by multiple goroutines. Per-call state never escapes an
// invocation.
package datetime

import (
	"fmt"
	"time"
)

// Entity type tags carried by ExtractResult.Type and ParseResult.Type.
const (
	TypeDate           = "date"
	TypeTime           = "time"
	TypeDateTime       = "datetime"
	TypeDuration       = "duration"
	TypeDatePeriod     = "dateperiod"
	TypeTimePeriod     = "timeperiod"
	TypeDateTimePeriod = "datetimeperiod"
	TypeSet            = "set"
)

// Resolution map keys.
const (
	KeyStartDateTime = "startDateTime"
	KeyEndDateTime   = "endDateTime"
	KeySet           = "SET"
)

// Mod tags set by duration-window resolution.
const (
	ModBefore = "before"
	ModAfter  = "after"
)

// Comment is a closed tag signaling residual ambiguity or a day-part
// modifier on a resolution. Enclosing merge logic consumes it.
type Comment int

const (
	CommentNone Comment = iota
	CommentAmPm         // hour range had no meridiem and both hours <= 12
	CommentEarly        // day-part window shrunk to its first half
	CommentLate         // day-part window shrunk to its second half
)

// String returns the wire form of the comment tag.
func (c Comment) String() string {
	switch c {
	case CommentAmPm:
		return "ampm"
	case CommentEarly:
		return "early"
	case CommentLate:
		return "late"
	default:
		return ""
	}
}

// ExtractResult is a typed span over the input string. Text is always
// exactly the slice of the source covered by [Start, Start+Length).
// Results are immutable once returned by an extractor.
type ExtractResult struct {
	Start  int
	Length int
	Text   string
	Type   string
	Data   any
}

// End returns the exclusive end offset of the span.
func (er ExtractResult) End() int {
	return er.Start + er.Length
}

// Overlaps reports whether the two spans share at least one byte.
func (er ExtractResult) Overlaps(other ExtractResult) bool {
	return er.Start < other.End() && other.Start < er.End()
}

// ValueKind discriminates the payload carried by a Value.
type ValueKind int

const (
	ValueNone     ValueKind = iota
	ValueInstant            // a single point in time
	ValueInterval           // a [Begin, End] pair of instants
	ValueSeconds            // a duration in seconds
	ValueLabel              // an opaque label, e.g. "Set: P1D"
)

// Value is the resolved payload of a parse: a point, an interval, a
// second count, or a recurrence label, depending on Kind.
type Value struct {
	Kind    ValueKind
	Instant time.Time
	Begin   time.Time
	End     time.Time
	Seconds float64
	Label   string
}

// InstantValue wraps a single point in time.
func InstantValue(t time.Time) Value {
	return Value{Kind: ValueInstant, Instant: t}
}

// IntervalValue wraps a begin/end pair of instants.
func IntervalValue(begin, end time.Time) Value {
	return Value{Kind: ValueInterval, Begin: begin, End: end}
}

// SecondsValue wraps a duration expressed in seconds.
func SecondsValue(s float64) Value {
	return Value{Kind: ValueSeconds, Seconds: s}
}

// LabelValue wraps an opaque string label.
func LabelValue(s string) Value {
	return Value{Kind: ValueLabel, Label: s}
}

// String returns a debug representation of the value.
func (v Value) String() string {
	switch v.Kind {
	case ValueInstant:
		return v.Instant.Format("2006-01-02 15:04:05")
	case ValueInterval:
		return fmt.Sprintf("[%s, %s]",
			v.Begin.Format("2006-01-02 15:04:05"), v.End.Format("2006-01-02 15:04:05"))
	case ValueSeconds:
		return fmt.Sprintf("%gs", v.Seconds)
	case ValueLabel:
		return v.Label
	default:
		return "none"
	}
}

// Resolution is the outcome of one parse strategy. When Success is
// false all other fields are meaningless and callers must ignore them.
type Resolution struct {
	Success          bool
	Timex            string
	Comment          Comment
	Mod              string
	FutureValue      Value
	PastValue        Value
	FutureResolution map[string]string
	PastResolution   map[string]string
	SubEntities      []ParseResult
}

// ParseResult pairs an extracted span with its resolution. Value is nil
// when the span was extracted but could not be resolved; that is the
// only caller-visible failure and it is a value, not an error.
type ParseResult struct {
	ExtractResult
	Value *Resolution
	Timex string
}

// Extractor finds entity spans of one type in text. Implementations are
// total: malformed input yields an empty slice, never a panic. Returned
// spans are sorted by start offset and do not overlap.
type Extractor interface {
	Extract(text string, reference time.Time) []ExtractResult
}

// Parser resolves one extracted span against a reference instant.
// Implementations are total; unresolvable input yields a nil Value.
type Parser interface {
	Parse(er ExtractResult, reference time.Time) ParseResult
}
