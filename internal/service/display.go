package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Timestamp layouts used for server-computed display strings.
const (
	dateTimeLayout = "Jan 02, 2006, 03:04 PM"
	dateLayout     = "Jan 02, 2006"
)

var isoDurationRegexp = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// FormatCompactCount renders large counts with K/M/B suffixes, one decimal.
func FormatCompactCount(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// FormatDuration converts an ISO 8601 video duration to a display string,
// H:MM:SS with hours or M:SS without. Unparseable input yields "0:00".
func FormatDuration(iso string) string {
	m := isoDurationRegexp.FindStringSubmatch(iso)
	if m == nil {
		return "0:00"
	}

	hours := atoiDefault(m[1])
	minutes := atoiDefault(m[2])
	seconds := atoiDefault(m[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func atoiDefault(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// timeGap computes the elapsed time between an upload and the one processed
// before it, as fractional hours plus display text. A zero previous time
// yields no gap.
func timeGap(current, previous time.Time) (float64, string) {
	if previous.IsZero() {
		return 0, ""
	}

	totalHours := previous.Sub(current).Hours()

	if totalHours < 24 {
		return totalHours, fmt.Sprintf("%d hours", int(totalHours))
	}

	days := int(totalHours) / 24
	remaining := int(totalHours) % 24
	if remaining > 0 {
		return totalHours, fmt.Sprintf("%d %s %d hours", days, pluralDays(days), remaining)
	}
	return totalHours, fmt.Sprintf("%d %s", days, pluralDays(days))
}

func pluralDays(days int) string {
	if days == 1 {
		return "day"
	}
	return "days"
}

// primaryCategory derives a readable category from the first topicDetails
// category URL, e.g. ".../wiki/Video_game_culture" -> "Video Game Culture".
func primaryCategory(topicCategories []string) string {
	if len(topicCategories) == 0 {
		return "General"
	}

	tail := topicCategories[0]
	if idx := strings.LastIndex(tail, "/"); idx >= 0 {
		tail = tail[idx+1:]
	}
	if tail == "" {
		return "General"
	}

	words := strings.Split(strings.ReplaceAll(tail, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
