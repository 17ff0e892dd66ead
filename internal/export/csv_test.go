package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"reflectr/internal/models"
)

func TestWriteCSV(t *testing.T) {
	followed := true
	trades := []models.Trade{
		{
			ID:             "trade_000002",
			UserID:         "user_testtrader",
			Timestamp:      time.Date(2026, 6, 2, 14, 30, 0, 0, time.UTC),
			Symbol:         "TCS",
			EmotionalState: models.StateCharged,
			Impulsiveness:  8,
			IsComplete:     true,
			Outcome:        models.OutcomeLoss,
			FollowedPlan:   &followed,
			Reflection:     "chased the breakout, paid for it",
		},
		{
			ID:             "trade_000001",
			UserID:         "user_testtrader",
			Timestamp:      time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
			Symbol:         "INFY",
			EmotionalState: models.StateNeutral,
			Impulsiveness:  2,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, trades); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d records", len(records))
	}

	wantHeader := []string{"Date", "Symbol", "Emotion", "Impulse", "Outcome", "Reflection"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("Header column %d = %q, want %q", i, records[0][i], col)
		}
	}

	first := records[1]
	if first[0] != "2026-06-02T14:30:00Z" {
		t.Errorf("Date column = %q, want RFC3339 instant", first[0])
	}
	if first[1] != "TCS" || first[2] != "Charged" || first[3] != "8" || first[4] != "Loss" {
		t.Errorf("Unexpected first row: %v", first)
	}

	second := records[2]
	if second[4] != "Pending" {
		t.Errorf("Never-debriefed trade must export Pending, got %q", second[4])
	}
	if second[5] != "" {
		t.Errorf("Empty reflection must export empty, got %q", second[5])
	}
}

func TestWriteCSV_QuotesEmbeddedCommas(t *testing.T) {
	trades := []models.Trade{
		{
			ID:             "trade_000001",
			Timestamp:      time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
			Symbol:         "SBIN",
			EmotionalState: models.StateFragile,
			Reflection:     `sized too big, exited too late, "classic"`,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, trades); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if records[1][5] != `sized too big, exited too late, "classic"` {
		t.Errorf("Reflection mangled: %q", records[1][5])
	}
}

func TestWriteCSV_EmptyHistory(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "Date,") {
		t.Errorf("Empty history must still emit the header, got %q", buf.String())
	}
}
