// Package models provides domain models for the journaling application.
package models

import "fmt"

// EmotionalState represents the trader's state of mind at check-in time.
type EmotionalState string

const (
	StateNeutral EmotionalState = "Neutral"
	StateRushed  EmotionalState = "Rushed"
	StateFragile EmotionalState = "Fragile"
	StateCharged EmotionalState = "Charged"
)

// EmotionalStates lists every valid emotional state.
var EmotionalStates = []EmotionalState{StateNeutral, StateRushed, StateFragile, StateCharged}

// ParseEmotionalState converts a string into an EmotionalState.
// The enumeration is closed; unrecognized values are rejected.
func ParseEmotionalState(s string) (EmotionalState, error) {
	for _, es := range EmotionalStates {
		if string(es) == s {
			return es, nil
		}
	}
	return "", fmt.Errorf("unknown emotional state: %q", s)
}

// Outcome represents the result of a trade.
type Outcome string

const (
	OutcomePending   Outcome = "Pending"
	OutcomeWin       Outcome = "Win"
	OutcomeLoss      Outcome = "Loss"
	OutcomeBreakeven Outcome = "Breakeven"
)

// Outcomes lists every valid outcome.
var Outcomes = []Outcome{OutcomePending, OutcomeWin, OutcomeLoss, OutcomeBreakeven}

// ParseOutcome converts a string into an Outcome.
// The enumeration is closed; unrecognized values are rejected.
func ParseOutcome(s string) (Outcome, error) {
	for _, o := range Outcomes {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown outcome: %q", s)
}

// User represents the journal owner.
type User struct {
	ID    string
	Email string
	Name  string
	IsPro bool
}

// InsightResult is the three-field qualitative report produced per
// analysis request. It is ephemeral and never persisted.
type InsightResult struct {
	Summary    string `json:"summary"`
	RiskFactor string `json:"riskFactor"`
	Strength   string `json:"strength"`
}
