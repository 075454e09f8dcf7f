// Package render turns directory API payloads into typed view models.
// Nothing here touches HTTP or templates, so every formatting rule can be
// tested on its own.
package render

import (
	"fmt"
	"regexp"
	"time"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Truncate strips tag-like substrings, then cuts the text to maxLength
// characters and appends "..." only when something was cut.
func Truncate(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	cleaned := []rune(tagPattern.ReplaceAllString(text, ""))
	if len(cleaned) > maxLength {
		return string(cleaned[:maxLength]) + "..."
	}
	return string(cleaned)
}

// FormatDuration renders seconds as "{h}h {m}m", or "{m}m" under an hour.
func FormatDuration(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatDate renders a unix timestamp as a date in loc.
func FormatDate(unix int64, loc *time.Location, layout string) string {
	return time.Unix(unix, 0).In(loc).Format(layout)
}
