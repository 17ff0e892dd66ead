package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"reflectr/internal/account"
	apperrors "reflectr/internal/errors"
	"reflectr/internal/logging"
	"reflectr/internal/models"
)

func newTimelineCmd(app *App) *cobra.Command {
	var (
		limit    int
		openOnly bool
	)

	cmd := &cobra.Command{
		Use:     "timeline",
		Aliases: []string{"list", "ls"},
		Short:   "Show the trade timeline, newest first",
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

			trades, err := app.Store.GetTrades(cmd.Context(), user.ID)
			if err != nil {
				output.Error("Failed to load trades: %v", err)
				return err
			}

			if openOnly {
				trades = filterOpen(trades)
			}
			if limit > 0 && len(trades) > limit {
				trades = trades[:limit]
			}

			if output.IsJSON() {
				return output.JSON(trades)
			}

			if len(trades) == 0 {
				output.Info("No trades yet. Run 'reflectr checkin <symbol>' to log your first one.")
				return nil
			}

			table := NewTable(output, "ID", "Date", "Symbol", "State", "Impulse", "Outcome", "Plan?")
			for _, t := range trades {
				followed := "-"
				if t.FollowedPlan != nil {
					followed = YesNo(*t.FollowedPlan)
				}
				table.AddRow(
					t.ShortID(),
					FormatDateTime(t.Timestamp),
					t.Symbol,
					output.EmotionTag(t.EmotionalState),
					strconv.Itoa(t.Impulsiveness),
					output.OutcomeBadge(t.OutcomeOrPending()),
					followed,
				)
			}
			table.Render()
			output.Dim("%d trade(s)", len(trades))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "show at most N trades (0 = all)")
	cmd.Flags().BoolVar(&openOnly, "open", false, "show only trades awaiting a debrief")

	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trade-id>",
		Short: "Delete a trade from the journal",
		Args:  cobra.ExactArgs(1),
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

			if err := app.Store.DeleteTrade(cmd.Context(), trade.ID); err != nil {
				output.Error("Failed to delete trade: %v", err)
				return err
			}

			tradeLogger := logging.WithTrade(app.Logger, trade.ID)
			tradeLogger.Info().Str("symbol", trade.Symbol).Msg("Trade deleted")

			if output.IsJSON() {
				return output.JSON(map[string]string{"deleted": trade.ID})
			}
			output.Success("Deleted %s [%s]", trade.Symbol, trade.ShortID())
			return nil
		},
	}
}

func filterOpen(trades []models.Trade) []models.Trade {
	open := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if !t.IsComplete {
			open = append(open, t)
		}
	}
	return open
}
