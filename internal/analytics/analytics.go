// Package analytics derives dashboard metrics and behavioral pattern
// flags from a user's trade history. Every function is a pure fold over
// its input: nothing is cached and nothing depends on update ordering.
package analytics

import (
	"math"

	"reflectr/internal/models"
)

// SeriesWindow is the number of recent trades projected into the
// confidence series.
const SeriesWindow = 10

// HighImpulseThreshold is the strict lower bound for the high-impulse
// pattern flag.
const HighImpulseThreshold = 7

// ConfidencePoint is one entry of the recent-confidence series.
type ConfidencePoint struct {
	ShortID       string
	Confidence    int
	SignedOutcome int // +10 win, -10 loss, 0 otherwise
}

// DashboardStats aggregates the derived metrics shown on the dashboard.
type DashboardStats struct {
	TotalTrades      int
	Wins             int
	Losses           int
	WinRate          int
	HighImpulseCount int
	RushedLossCount  int
}

// WinRate returns the share of winning trades as a rounded percentage.
// An empty history yields 0.
func WinRate(trades []models.Trade) int {
	if len(trades) == 0 {
		return 0
	}
	wins := 0
	for _, t := range trades {
		if t.Outcome == models.OutcomeWin {
			wins++
		}
	}
	return int(math.Round(float64(wins) / float64(len(trades)) * 100))
}

// EmotionDistribution counts trades per emotional state. States with a
// zero count are omitted from the result.
func EmotionDistribution(trades []models.Trade) map[models.EmotionalState]int {
	dist := make(map[models.EmotionalState]int)
	for _, t := range trades {
		dist[t.EmotionalState]++
	}
	return dist
}

// RecentConfidenceSeries projects the first SeriesWindow trades of the
// (already most-recent-first) input into chart points. Input order is
// preserved.
func RecentConfidenceSeries(trades []models.Trade) []ConfidencePoint {
	n := len(trades)
	if n > SeriesWindow {
		n = SeriesWindow
	}

	points := make([]ConfidencePoint, 0, n)
	for i := 0; i < n; i++ {
		t := trades[i]
		signed := 0
		switch t.Outcome {
		case models.OutcomeWin:
			signed = 10
		case models.OutcomeLoss:
			signed = -10
		}
		points = append(points, ConfidencePoint{
			ShortID:       t.ShortID(),
			Confidence:    t.Confidence,
			SignedOutcome: signed,
		})
	}
	return points
}

// HighImpulseTrades returns the trades entered with impulsiveness
// strictly above HighImpulseThreshold.
func HighImpulseTrades(trades []models.Trade) []models.Trade {
	var out []models.Trade
	for _, t := range trades {
		if t.Impulsiveness > HighImpulseThreshold {
			out = append(out, t)
		}
	}
	return out
}

// RushedLosses returns losing trades that were entered in a Rushed state.
func RushedLosses(trades []models.Trade) []models.Trade {
	var out []models.Trade
	for _, t := range trades {
		if t.EmotionalState == models.StateRushed && t.Outcome == models.OutcomeLoss {
			out = append(out, t)
		}
	}
	return out
}

// Summarize computes the aggregate dashboard stats in one pass-friendly
// call. Recomputed from scratch on every invocation.
func Summarize(trades []models.Trade) DashboardStats {
	stats := DashboardStats{
		TotalTrades:      len(trades),
		WinRate:          WinRate(trades),
		HighImpulseCount: len(HighImpulseTrades(trades)),
		RushedLossCount:  len(RushedLosses(trades)),
	}
	for _, t := range trades {
		switch t.Outcome {
		case models.OutcomeWin:
			stats.Wins++
		case models.OutcomeLoss:
			stats.Losses++
		}
	}
	return stats
}
