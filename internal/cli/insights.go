package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"reflectr/internal/account"
	"reflectr/internal/billing"
	apperrors "reflectr/internal/errors"
	"reflectr/internal/insight"
	"reflectr/internal/logging"
)

// addInsightCommands adds the AI insight and plan upgrade commands.
func addInsightCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newInsightsCmd(app))
	rootCmd.AddCommand(newUpgradeCmd(app))
}

func newInsightsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Generate an AI psychology report (Pro)",
		Long: `Analyze your recent trades with an AI model and produce a
psychology report: a summary of your trading mindset, your primary
risk factor and your greatest strength.

Requires a Pro plan and at least three logged trades. Only the most
recent trades are analyzed, and symbols are never sent to the model.`,
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

			if !user.IsPro {
				output.Warning("Insights require a Pro plan. Run 'reflectr upgrade' to unlock them.")
				return apperrors.ErrNotPro
			}

			if app.Analyzer == nil {
				output.Error("No OpenAI API key configured. Add one to %s", "credentials.toml")
				return apperrors.ErrConfigInvalid
			}

			trades, err := app.Store.GetTrades(cmd.Context(), user.ID)
			if err != nil {
				output.Error("Failed to load trades: %v", err)
				return err
			}

			if !output.IsJSON() {
				output.Info("Analyzing your last %d trade(s)...", min(len(trades), app.Config.Insights.Window))
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(app.Config.Insights.TimeoutSeconds)*time.Second)
			defer cancel()

			start := time.Now()
			result := app.Analyzer.AnalyzePsychology(ctx, trades)
			fallback := result == insight.FallbackResult() || result == insight.InsufficientDataResult(app.Config.Insights.MinTrades)
			logging.LogInsight(logging.WithUser(app.Logger, user.ID), len(trades), time.Since(start), fallback)

			if output.IsJSON() {
				return output.JSON(result)
			}

			output.Println()
			output.Bold("Mindset Summary")
			output.Printf("  %s\n\n", result.Summary)
			output.Bold("Primary Risk Factor")
			output.Printf("  %s\n\n", output.ColoredString(ColorRed, result.RiskFactor))
			output.Bold("Greatest Strength")
			output.Printf("  %s\n", output.ColoredString(ColorGreen, result.Strength))
			return nil
		},
	}
}

func newUpgradeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade to the Pro plan",
		Long: `Upgrade the current account to the Pro plan. Opens a checkout
session and applies the upgrade when payment succeeds. Upgrading an
account that is already Pro is a no-op.`,
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

			if user.IsPro {
				output.Info("Already on the Pro plan.")
				return nil
			}

			checkoutURL, err := billing.StartCheckout(user)
			if err != nil {
				output.Error("Failed to start checkout: %v", err)
				return err
			}
			output.Info("Checkout: %s", checkoutURL)

			upgraded, err := billing.CompleteCheckout(cmd.Context(), app.Store, app.Logger, user, checkoutURL)
			if err != nil {
				output.Error("Upgrade failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(upgraded)
			}
			output.Success("Welcome to Pro, %s. AI insights are now unlocked.", upgraded.Name)
			return nil
		},
	}
}
