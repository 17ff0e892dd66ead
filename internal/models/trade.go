package models

import "time"

// Trade is a single journal entry. It is created as a draft by the
// pre-trade check-in and completed by the post-trade debrief.
type Trade struct {
	ID     string
	UserID string

	// Pre-trade fields, set at check-in.
	Timestamp      time.Time
	Symbol         string
	EmotionalState EmotionalState
	Impulsiveness  int // 0-10
	Confidence     int // 0-10
	Fear           int // 0-10
	Reason         string
	Plan           string

	// Post-trade fields, absent until the debrief.
	IsComplete     bool
	Outcome        Outcome
	FollowedPlan   *bool
	Tilt           bool
	Regret         bool
	Reflection     string
	EmotionalShift string
}

// ShortID returns a compact label for charts and tables.
func (t *Trade) ShortID() string {
	if len(t.ID) <= 6 {
		return t.ID
	}
	return t.ID[len(t.ID)-6:]
}

// OutcomeOrPending returns the trade's outcome, defaulting to Pending
// for drafts that have never been debriefed.
func (t *Trade) OutcomeOrPending() Outcome {
	if t.Outcome == "" {
		return OutcomePending
	}
	return t.Outcome
}

// Clone returns a deep copy of the trade.
func (t *Trade) Clone() *Trade {
	c := *t
	if t.FollowedPlan != nil {
		fp := *t.FollowedPlan
		c.FollowedPlan = &fp
	}
	return &c
}
