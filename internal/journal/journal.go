// Package journal implements the trade lifecycle: the pre-trade check-in
// that creates a draft entry and the post-trade debrief that completes it.
package journal

import (
	"strings"
	"time"

	"reflectr/internal/errors"
	"reflectr/internal/models"
)

// WarnThreshold is the default impulsiveness score above which the
// pre-trade risk warning fires. The configured journal.warn_threshold
// takes precedence.
const WarnThreshold = 6

// CheckInRequest carries the pre-trade check-in inputs.
type CheckInRequest struct {
	UserID         string
	Symbol         string
	EmotionalState models.EmotionalState
	Impulsiveness  int
	Confidence     int
	Fear           int
	Reason         string
	Plan           string
}

// DebriefRequest carries the post-trade debrief inputs.
type DebriefRequest struct {
	Outcome        models.Outcome
	FollowedPlan   *bool
	Reflection     string
	Tilt           bool
	Regret         bool
	Plan           string
	EmotionalShift string
}

// CheckIn validates the request and produces a new draft trade with a
// fresh unique id and the current timestamp. It has no side effects;
// persistence is the caller's responsibility.
func CheckIn(req CheckInRequest) (*models.Trade, error) {
	symbol := strings.TrimSpace(req.Symbol)
	if symbol == "" {
		return nil, errors.NewValidationError("symbol", req.Symbol, "must not be empty")
	}
	if req.UserID == "" {
		return nil, errors.NewValidationError("userId", req.UserID, "must not be empty")
	}
	if _, err := models.ParseEmotionalState(string(req.EmotionalState)); err != nil {
		return nil, errors.NewValidationError("emotionalState", req.EmotionalState, "must be one of Neutral, Rushed, Fragile, Charged")
	}
	if err := validateScore("impulsiveness", req.Impulsiveness); err != nil {
		return nil, err
	}
	if err := validateScore("confidence", req.Confidence); err != nil {
		return nil, err
	}
	if err := validateScore("fear", req.Fear); err != nil {
		return nil, err
	}

	return &models.Trade{
		ID:             NewTradeID(),
		UserID:         req.UserID,
		Timestamp:      time.Now().UTC(),
		Symbol:         strings.ToUpper(symbol),
		EmotionalState: req.EmotionalState,
		Impulsiveness:  req.Impulsiveness,
		Confidence:     req.Confidence,
		Fear:           req.Fear,
		Reason:         req.Reason,
		Plan:           req.Plan,
		IsComplete:     false,
	}, nil
}

// RiskWarning reports whether the check-in inputs should surface the
// high-risk warning: a Charged or Rushed state, or impulsiveness
// strictly above threshold. Advisory only; it never blocks trade
// creation.
func RiskWarning(state models.EmotionalState, impulsiveness, threshold int) bool {
	return state == models.StateCharged || state == models.StateRushed || impulsiveness > threshold
}

// Debrief applies the post-trade review to a trade and returns the
// completed copy. The input trade is not mutated, and nothing is
// persisted: validation failures surface before any write happens.
// Debriefing an already-complete trade re-edits the debrief-owned
// fields; IsComplete never reverts to false.
func Debrief(trade *models.Trade, req DebriefRequest) (*models.Trade, error) {
	if trade == nil {
		return nil, errors.NewValidationError("trade", nil, "must not be nil")
	}
	if _, err := models.ParseOutcome(string(req.Outcome)); err != nil {
		return nil, errors.NewValidationError("outcome", req.Outcome, "must be one of Win, Loss, Breakeven")
	}
	if req.Outcome == models.OutcomePending {
		return nil, errors.NewValidationError("outcome", req.Outcome, "a debrief requires a definite result")
	}
	if req.FollowedPlan == nil {
		return nil, errors.NewValidationError("followedPlan", nil, "must be answered yes or no")
	}

	updated := trade.Clone()
	updated.Outcome = req.Outcome
	fp := *req.FollowedPlan
	updated.FollowedPlan = &fp
	updated.Reflection = req.Reflection
	updated.Tilt = req.Tilt
	updated.Regret = req.Regret
	updated.EmotionalShift = req.EmotionalShift
	// The plan may be rewritten during debrief; last write wins.
	updated.Plan = req.Plan
	updated.IsComplete = true
	return updated, nil
}

func validateScore(field string, v int) error {
	if v < 0 || v > 10 {
		return errors.NewValidationError(field, v, "must be between 0 and 10")
	}
	return nil
}
