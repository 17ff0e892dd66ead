package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"reflectr/internal/account"
	apperrors "reflectr/internal/errors"
	"reflectr/internal/journal"
	"reflectr/internal/logging"
	"reflectr/internal/models"
)

func newDebriefCmd(app *App) *cobra.Command {
	var (
		outcome        string
		followedPlan   string
		reflection     string
		tilt           bool
		regret         bool
		plan           string
		emotionalShift string
	)

	cmd := &cobra.Command{
		Use:   "debrief <trade-id>",
		Short: "Complete a trade with a post-trade debrief",
		Long: `Attach a post-trade debrief to a trade. Requires a definite outcome
(Win, Loss or Breakeven) and a yes/no answer on whether the plan was
followed. The trade id may be the full id or its short suffix.

Debriefing an already-complete trade re-edits the review fields; a
completed trade never reverts to open.`,
		Example: `  reflectr debrief a1b2c3 --outcome Win --followed-plan yes
  reflectr debrief trade_01H... --outcome Loss --followed-plan no --tilt --reflection "chased the entry"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				output.Error("Store unavailable")
				return apperrors.ErrStoreUnavailable
			}

			user, err := account.CurrentUser(cmd.Context(), app.Store)
			if err != nil {
				output.Warning("Not logged in. Run 'reflectr login <email>' first.")
				return err
			}

			trade, err := findTrade(cmd, app, user.ID, args[0])
			if err != nil {
				output.Error("%v", err)
				return err
			}

			parsedOutcome, err := models.ParseOutcome(outcome)
			if err != nil {
				output.Error("Invalid outcome %q. Valid outcomes: Win, Loss, Breakeven", outcome)
				return err
			}

			fp, err := parseYesNo(followedPlan)
			if err != nil {
				output.Error("--followed-plan must be yes or no")
				return err
			}

			// The plan is re-editable during debrief; keep the check-in
			// plan when the flag is not given.
			if !cmd.Flags().Changed("plan") {
				plan = trade.Plan
			}

			updated, err := journal.Debrief(trade, journal.DebriefRequest{
				Outcome:        parsedOutcome,
				FollowedPlan:   fp,
				Reflection:     reflection,
				Tilt:           tilt,
				Regret:         regret,
				Plan:           plan,
				EmotionalShift: emotionalShift,
			})
			if err != nil {
				output.Error("Debrief failed: %v", err)
				return err
			}

			if err := app.Store.SaveTrade(cmd.Context(), updated); err != nil {
				output.Error("Failed to save trade: %v", err)
				return err
			}

			logging.LogDebrief(app.Logger, updated.ID, string(updated.Outcome), *updated.FollowedPlan, updated.Tilt)

			if output.IsJSON() {
				return output.JSON(updated)
			}

			output.Success("Debriefed %s [%s]", updated.Symbol, updated.ShortID())
			output.Printf("  Outcome:       %s\n", output.OutcomeBadge(updated.Outcome))
			output.Printf("  Followed Plan: %s\n", YesNo(*updated.FollowedPlan))
			if updated.Tilt {
				output.Printf("  Tilt:          yes\n")
			}
			if updated.Regret {
				output.Printf("  Regret:        yes\n")
			}
			if updated.Reflection != "" {
				output.Printf("  Reflection:    %s\n", updated.Reflection)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outcome, "outcome", "o", "", "trade outcome (Win, Loss, Breakeven)")
	cmd.Flags().StringVar(&followedPlan, "followed-plan", "", "did you follow your plan (yes/no)")
	cmd.Flags().StringVarP(&reflection, "reflection", "r", "", "what you learned from this trade")
	cmd.Flags().BoolVar(&tilt, "tilt", false, "you traded on tilt")
	cmd.Flags().BoolVar(&regret, "regret", false, "you regret taking the trade")
	cmd.Flags().StringVarP(&plan, "plan", "p", "", "revised plan text")
	cmd.Flags().StringVar(&emotionalShift, "shift", "", "how your emotional state shifted during the trade")
	cmd.MarkFlagRequired("outcome")
	cmd.MarkFlagRequired("followed-plan")

	return cmd
}

// findTrade resolves a full or short trade id to the user's trade.
func findTrade(cmd *cobra.Command, app *App, userID, id string) (*models.Trade, error) {
	trades, err := app.Store.GetTrades(cmd.Context(), userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load trades")
	}
	for i := range trades {
		if trades[i].ID == id || strings.HasSuffix(trades[i].ID, id) {
			return trades[i].Clone(), nil
		}
	}
	return nil, apperrors.Wrapf(apperrors.ErrTradeNotFound, "trade %q", id)
}

func parseYesNo(s string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true":
		v := true
		return &v, nil
	case "no", "n", "false":
		v := false
		return &v, nil
	default:
		return nil, apperrors.NewValidationError("followedPlan", s, "must be yes or no")
	}
}
