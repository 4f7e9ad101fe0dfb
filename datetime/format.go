package datetime

import (
	"fmt"
	"strings"
	"time"
)

// FormatDate renders an instant's date part as yyyy-MM-dd.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTime renders an instant's clock part as HH:mm:ss.
func FormatTime(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatDateTime renders an instant as "yyyy-MM-dd HH:mm:ss", the form
// used by resolution map values.
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// pointTimex renders an instant as a full date-time timex point,
// e.g. "2024-03-15T10:00:00".
func pointTimex(t time.Time) string {
	return FormatDate(t) + "T" + FormatTime(t)
}

// rangeTimex assembles the parenthesized range form of the timex
// grammar: "(begin,end,duration)".
func rangeTimex(begin, end, duration string) string {
	return "(" + begin + "," + end + "," + duration + ")"
}

// hourTimex renders a bare hour as a time timex suffix, e.g. "T09".
func hourTimex(hour int) string {
	return fmt.Sprintf("T%02d", hour)
}

// splitRangeTimex splits a "(a,b,c)" range timex into its three parts.
// ok is false when the string is not in range form.
func splitRangeTimex(timex string) (begin, end, duration string, ok bool) {
	if !strings.HasPrefix(timex, "(") || !strings.HasSuffix(timex, ")") {
		return "", "", "", false
	}
	parts := strings.Split(timex[1:len(timex)-1], ",")
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

// dateOf truncates an instant to midnight of its calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// onDay combines a day-carrying instant with an explicit clock time.
func onDay(day time.Time, hour, minute, sec int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, sec, 0, day.Location())
}

// intervalResolution builds the start/end resolution map for an
// interval value.
func intervalResolution(v Value) map[string]string {
	return map[string]string{
		KeyStartDateTime: FormatDateTime(v.Begin),
		KeyEndDateTime:   FormatDateTime(v.End),
	}
}
