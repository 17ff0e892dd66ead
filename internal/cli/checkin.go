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

// addJournalCommands adds the trade lifecycle commands.
func addJournalCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newCheckinCmd(app))
	rootCmd.AddCommand(newDebriefCmd(app))
	rootCmd.AddCommand(newTimelineCmd(app))
	rootCmd.AddCommand(newDeleteCmd(app))
}

func newCheckinCmd(app *App) *cobra.Command {
	var (
		state         string
		impulsiveness int
		confidence    int
		fear          int
		reason        string
		plan          string
	)

	cmd := &cobra.Command{
		Use:   "checkin <symbol>",
		Short: "Log a pre-trade check-in",
		Long: `Log a pre-trade check-in before entering a position. Captures your
emotional state and self-rated scores, creating a draft trade that
stays open until you debrief it.

A risk warning is shown when the state is Charged or Rushed, or when
impulsiveness exceeds the warning threshold. The warning never blocks
the check-in.`,
		Example: `  reflectr checkin RELIANCE --state Neutral --impulse 3 --confidence 7 --fear 2
  reflectr checkin TSLA --state Charged --impulse 8 --reason "breakout retest"`,
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

			parsed, err := models.ParseEmotionalState(state)
			if err != nil {
				output.Error("Invalid emotional state %q. Valid states: %s", state, strings.Join(stateNames(), ", "))
				return err
			}

			trade, err := journal.CheckIn(journal.CheckInRequest{
				UserID:         user.ID,
				Symbol:         args[0],
				EmotionalState: parsed,
				Impulsiveness:  impulsiveness,
				Confidence:     confidence,
				Fear:           fear,
				Reason:         reason,
				Plan:           plan,
			})
			if err != nil {
				output.Error("Check-in failed: %v", err)
				return err
			}

			if err := app.Store.SaveTrade(cmd.Context(), trade); err != nil {
				output.Error("Failed to save trade: %v", err)
				return err
			}

			warned := journal.RiskWarning(trade.EmotionalState, trade.Impulsiveness, app.Config.Journal.WarnThreshold)
			logging.LogCheckIn(app.Logger, trade.ID, trade.Symbol, string(trade.EmotionalState), trade.Impulsiveness, warned)

			if output.IsJSON() {
				return output.JSON(trade)
			}

			output.Success("Checked in %s [%s]", trade.Symbol, trade.ShortID())
			output.Printf("  State:         %s\n", output.EmotionTag(trade.EmotionalState))
			output.Printf("  Impulsiveness: %d/10\n", trade.Impulsiveness)
			output.Printf("  Confidence:    %d/10\n", trade.Confidence)
			output.Printf("  Fear:          %d/10\n", trade.Fear)
			if warned {
				output.Warning("High-risk state detected. Consider stepping away before entering.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&state, "state", "s", string(models.StateNeutral), "emotional state (Neutral, Rushed, Fragile, Charged)")
	cmd.Flags().IntVarP(&impulsiveness, "impulse", "i", 0, "impulsiveness score 0-10")
	cmd.Flags().IntVarP(&confidence, "confidence", "c", 5, "confidence score 0-10")
	cmd.Flags().IntVarP(&fear, "fear", "f", 0, "fear score 0-10")
	cmd.Flags().StringVarP(&reason, "reason", "r", "", "why you are taking this trade")
	cmd.Flags().StringVarP(&plan, "plan", "p", "", "entry and exit plan")

	return cmd
}

func stateNames() []string {
	names := make([]string, 0, len(models.EmotionalStates))
	for _, s := range models.EmotionalStates {
		names = append(names, string(s))
	}
	return names
}
