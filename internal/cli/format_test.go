// Package cli provides the command-line interface for the journaling application.
package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"reflectr/internal/config"
	"reflectr/internal/models"
)

func TestFormatDateTime(t *testing.T) {
	// construct in the local zone so the rendered wall clock is fixed
	ts := time.Date(2026, 7, 15, 9, 45, 30, 0, time.Local)
	if got := FormatDate(ts); got != "2026-07-15" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatTime(ts); got != "09:45" {
		t.Errorf("FormatTime = %q", got)
	}
	if got := FormatDateTime(ts); got != "2026-07-15 09:45" {
		t.Errorf("FormatDateTime = %q", got)
	}
}

func TestApplyUIConfig(t *testing.T) {
	t.Cleanup(func() {
		ApplyUIConfig(config.UIConfig{ColorEnabled: true, DateFormat: "2006-01-02", TimeFormat: "15:04"})
	})

	ApplyUIConfig(config.UIConfig{ColorEnabled: false, DateFormat: "02/01/2006", TimeFormat: "3:04PM"})

	ts := time.Date(2026, 7, 15, 21, 45, 0, 0, time.Local)
	if got := FormatDate(ts); got != "15/07/2026" {
		t.Errorf("Configured date format ignored: %q", got)
	}
	if got := FormatTime(ts); got != "9:45PM" {
		t.Errorf("Configured time format ignored: %q", got)
	}
	if got := FormatDateTime(ts); got != "15/07/2026 9:45PM" {
		t.Errorf("Configured date-time format ignored: %q", got)
	}
	if colorAllowed {
		t.Error("color_enabled = false must disable colored output")
	}

	// empty layouts keep the previous values
	ApplyUIConfig(config.UIConfig{ColorEnabled: true})
	if got := FormatDate(ts); got != "15/07/2026" {
		t.Errorf("Empty layout must keep the previous value, got %q", got)
	}
	if !colorAllowed {
		t.Error("color_enabled = true must re-enable colored output")
	}
}

func TestYesNo(t *testing.T) {
	if YesNo(true) != "yes" || YesNo(false) != "no" {
		t.Error("YesNo must render yes/no")
	}
}

func TestParseYesNo(t *testing.T) {
	for _, s := range []string{"yes", "Yes", "y", "true", " YES "} {
		v, err := parseYesNo(s)
		if err != nil || v == nil || !*v {
			t.Errorf("parseYesNo(%q) should be true", s)
		}
	}
	for _, s := range []string{"no", "No", "n", "false"} {
		v, err := parseYesNo(s)
		if err != nil || v == nil || *v {
			t.Errorf("parseYesNo(%q) should be false", s)
		}
	}
	for _, s := range []string{"", "maybe", "1"} {
		if _, err := parseYesNo(s); err == nil {
			t.Errorf("parseYesNo(%q) should fail", s)
		}
	}
}

func TestEmotionTagCoversAllStates(t *testing.T) {
	output := &Output{colorEnabled: false}
	for _, s := range models.EmotionalStates {
		tag := output.EmotionTag(s)
		if tag == "" {
			t.Errorf("EmotionTag(%s) must not be empty", s)
		}
	}
}

func TestOutcomeBadgeCoversAllOutcomes(t *testing.T) {
	output := &Output{colorEnabled: false}
	want := map[models.Outcome]string{
		models.OutcomeWin:       "WIN",
		models.OutcomeLoss:      "LOSS",
		models.OutcomeBreakeven: "BE",
		models.OutcomePending:   "Pending",
	}
	for o, label := range want {
		if got := output.OutcomeBadge(o); got != label {
			t.Errorf("OutcomeBadge(%s) = %q, want %q", o, got, label)
		}
	}
}

// Property: TruncateString never exceeds the limit and is the identity
// for strings that already fit.
func TestProperty_TruncateStringBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("TruncateString respects the limit", prop.ForAll(
		func(s string, max int) bool {
			got := TruncateString(s, max)
			trimmed := strings.TrimSpace(s)
			if len([]rune(trimmed)) <= max {
				return got == trimmed
			}
			return len([]rune(got)) <= max
		},
		gen.AnyString(),
		gen.IntRange(4, 200),
	))

	properties.TestingRun(t)
}
