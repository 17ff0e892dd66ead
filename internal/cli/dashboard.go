package cli

import (
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reflectr/internal/account"
	"reflectr/internal/analytics"
	apperrors "reflectr/internal/errors"
	"reflectr/internal/models"
)

// addDashboardCommands adds the analytics dashboard command.
func addDashboardCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newDashboardCmd(app))
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"stats"},
		Short:   "Show journal analytics and behavioral patterns",
		Long: `Show derived metrics over your trade history: win rate, emotional
state distribution, the recent confidence series and behavioral
pattern flags. Everything is recomputed from the journal on each run.`,
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

			stats := analytics.Summarize(trades)
			dist := analytics.EmotionDistribution(trades)
			series := analytics.RecentConfidenceSeries(trades)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"stats":                stats,
					"emotion_distribution": dist,
					"confidence_series":    series,
				})
			}

			output.Bold("Dashboard for %s", user.Name)
			output.Println()
			output.Printf("  Total Trades: %d\n", stats.TotalTrades)
			output.Printf("  Wins:         %d\n", stats.Wins)
			output.Printf("  Losses:       %d\n", stats.Losses)
			output.Printf("  Win Rate:     %d%%\n", stats.WinRate)
			output.Println()

			if len(dist) > 0 {
				output.Bold("Emotional State Distribution")
				printDistribution(output, dist, stats.TotalTrades)
				output.Println()
			}

			if len(series) > 0 {
				output.Bold("Recent Confidence (newest first)")
				table := NewTable(output, "Trade", "Confidence", "Outcome")
				for _, p := range series {
					table.AddRow(p.ShortID, strconv.Itoa(p.Confidence), signedLabel(p.SignedOutcome))
				}
				table.Render()
				output.Println()
			}

			printPatterns(output, stats)
			return nil
		},
	}
}

func printDistribution(output *Output, dist map[models.EmotionalState]int, total int) {
	// Stable display order regardless of map iteration.
	states := make([]models.EmotionalState, 0, len(dist))
	for s := range dist {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool {
		if dist[states[i]] != dist[states[j]] {
			return dist[states[i]] > dist[states[j]]
		}
		return states[i] < states[j]
	})

	for _, s := range states {
		count := dist[s]
		bar := strings.Repeat("█", count*20/max(total, 1))
		output.Printf("  %-20s %3d  %s\n", output.EmotionTag(s), count, bar)
	}
}

func printPatterns(output *Output, stats analytics.DashboardStats) {
	output.Bold("Behavioral Patterns")
	if stats.HighImpulseCount == 0 && stats.RushedLossCount == 0 {
		output.Success("No risky patterns detected. Keep trading your plan.")
		return
	}
	if stats.HighImpulseCount > 0 {
		output.Warning("%d trade(s) entered with very high impulsiveness", stats.HighImpulseCount)
	}
	if stats.RushedLossCount > 0 {
		output.Warning("%d loss(es) while in a Rushed state", stats.RushedLossCount)
	}
}

func signedLabel(v int) string {
	switch {
	case v > 0:
		return "+10"
	case v < 0:
		return "-10"
	default:
		return "0"
	}
}
