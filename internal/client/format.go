package client

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// localTimeLayout renders e.g. "Jun 14, 2025, 8:00pm".
const localTimeLayout = "Jan 02, 2006, 3:04pm"

// FormatLocalTime converts an RFC 3339 UTC timestamp into the wall-clock
// representation for an IANA timezone. Conversion failures never propagate:
// the original value comes back unchanged so rendering cannot crash on a
// bad zone name or timestamp.
func FormatLocalTime(value, timezone string) string {
	formatted, err := convertLocalTime(value, timezone)
	if err != nil {
		return value
	}
	return formatted
}

func convertLocalTime(value, timezone string) (string, error) {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", err
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", err
	}

	return ts.In(loc).Format(localTimeLayout), nil
}

// digits prints with US English thousands separators.
var digits = message.NewPrinter(language.AmericanEnglish)

// FormatGroupedInt renders an integer with locale digit grouping, e.g.
// 1234567 -> "1,234,567".
func FormatGroupedInt(n int64) string {
	return digits.Sprintf("%d", n)
}
