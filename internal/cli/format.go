package cli

import (
	"strings"
	"time"

	"reflectr/internal/config"
)

// Display preferences, overridden by ApplyUIConfig from the [ui]
// config section.
var (
	dateLayout   = "2006-01-02"
	timeLayout   = "15:04"
	colorAllowed = true
)

// ApplyUIConfig applies the user's display preferences to the render
// helpers. Empty layouts keep the defaults.
func ApplyUIConfig(cfg config.UIConfig) {
	if cfg.DateFormat != "" {
		dateLayout = cfg.DateFormat
	}
	if cfg.TimeFormat != "" {
		timeLayout = cfg.TimeFormat
	}
	colorAllowed = cfg.ColorEnabled
}

// FormatDate formats a timestamp as a date.
func FormatDate(t time.Time) string {
	return t.Local().Format(dateLayout)
}

// FormatTime formats a timestamp as a clock time.
func FormatTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}

// FormatDateTime formats a timestamp as date and time.
func FormatDateTime(t time.Time) string {
	return t.Local().Format(dateLayout + " " + timeLayout)
}

// TruncateString truncates s to max runes, appending an ellipsis.
func TruncateString(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 3 || len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}

// YesNo renders a boolean as yes/no.
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
