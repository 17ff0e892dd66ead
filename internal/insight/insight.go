package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"reflectr/internal/models"
)

const (
	// MinTrades is the default history size below which the remote
	// provider is never invoked.
	MinTrades = 3
	// Window is the default number of most-recent trades sent per
	// analysis.
	Window = 10
)

// tradeProjection is the reduced field set shared with the provider.
// Symbols, confidence scores and raw identifiers are deliberately left out.
type tradeProjection struct {
	State        models.EmotionalState `json:"state"`
	Impulse      int                   `json:"impulse"`
	Fear         int                   `json:"fear"`
	Outcome      models.Outcome        `json:"outcome"`
	FollowedPlan *bool                 `json:"followedPlan"`
	Tilt         bool                  `json:"tilt"`
	Reflection   string                `json:"reflection"`
}

// Analyzer runs psychology analysis over a trade history.
type Analyzer struct {
	client    LLMClient
	minTrades int
	window    int
}

// NewAnalyzer creates an Analyzer backed by the given provider client,
// using the default history limits.
func NewAnalyzer(client LLMClient) *Analyzer {
	return NewAnalyzerWithLimits(client, MinTrades, Window)
}

// NewAnalyzerWithLimits creates an Analyzer with configured history
// limits: minTrades is the size below which the provider is never
// invoked, window the number of most-recent trades sent per analysis.
func NewAnalyzerWithLimits(client LLMClient, minTrades, window int) *Analyzer {
	return &Analyzer{client: client, minTrades: minTrades, window: window}
}

// InsufficientDataResult is returned when the history is too short for a
// meaningful analysis.
func InsufficientDataResult(minTrades int) models.InsightResult {
	return models.InsightResult{
		Summary:    fmt.Sprintf("Log at least %d trades to unlock AI-powered pattern recognition.", minTrades),
		RiskFactor: "Insufficient Data",
		Strength:   "Insufficient Data",
	}
}

// FallbackResult is returned when the provider fails or answers with an
// unusable shape. It is always safe to show to the user.
func FallbackResult() models.InsightResult {
	return models.InsightResult{
		Summary:    "Unable to generate insights at this moment. Please try again later.",
		RiskFactor: "N/A",
		Strength:   "N/A",
	}
}

// AnalyzePsychology produces a three-field qualitative report from the
// trade history. The input is expected most-recent-first, as returned by
// the store. The method always returns a well-formed result: provider
// failures and malformed responses map to FallbackResult, never an error.
func (a *Analyzer) AnalyzePsychology(ctx context.Context, trades []models.Trade) models.InsightResult {
	if len(trades) < a.minTrades {
		return InsufficientDataResult(a.minTrades)
	}

	window := trades
	if len(window) > a.window {
		window = window[:a.window]
	}

	projections := make([]tradeProjection, 0, len(window))
	for _, t := range window {
		projections = append(projections, tradeProjection{
			State:        t.EmotionalState,
			Impulse:      t.Impulsiveness,
			Fear:         t.Fear,
			Outcome:      t.OutcomeOrPending(),
			FollowedPlan: t.FollowedPlan,
			Tilt:         t.Tilt,
			Reflection:   t.Reflection,
		})
	}

	payload, err := json.Marshal(projections)
	if err != nil {
		return FallbackResult()
	}

	text, err := a.client.Complete(ctx, buildPrompt(string(payload)))
	if err != nil {
		return FallbackResult()
	}

	result, err := parseResult(text)
	if err != nil {
		return FallbackResult()
	}
	return result
}

func buildPrompt(payload string) string {
	return fmt.Sprintf(`You are an expert trading psychology coach. Analyze these recent trades for a day trader:
%s

Provide a structured JSON response with 3 fields:
1. "summary": A 1-2 sentence direct observation about their mindset and performance connection.
2. "riskFactor": The single biggest psychological leak (e.g., "Overtrading in Charged state").
3. "strength": What they are doing well (e.g., "High discipline when Neutral").

Keep it concise, professional, and actionable.
Return ONLY valid JSON.`, payload)
}

// parseResult decodes the provider response into the three required
// string fields. Anything else is a parse failure.
func parseResult(text string) (models.InsightResult, error) {
	var result models.InsightResult
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &result); err != nil {
		return models.InsightResult{}, err
	}
	if result.Summary == "" || result.RiskFactor == "" || result.Strength == "" {
		return models.InsightResult{}, fmt.Errorf("incomplete insight response")
	}
	return result, nil
}

// stripCodeFences removes a surrounding markdown code block, which some
// models emit despite being asked for raw JSON.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
