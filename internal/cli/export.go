package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"reflectr/internal/account"
	apperrors "reflectr/internal/errors"
	"reflectr/internal/export"
)

// addExportCommands adds the journal export command.
func addExportCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newExportCmd(app))
}

func newExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal to CSV",
		Long: `Export all trades to a CSV file with one row per trade. Columns:
Date, Symbol, Emotion, Impulse, Outcome, Reflection. Trades awaiting
a debrief export with a Pending outcome.`,
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

			if len(trades) == 0 {
				output.Info("No trades to export.")
				return nil
			}

			if outPath == "-" {
				return export.WriteCSV(cmd.OutOrStdout(), trades)
			}

			if outPath == "" {
				name := fmt.Sprintf("reflectr_journal_%s.csv", time.Now().UTC().Format("20060102"))
				outPath = filepath.Join(app.Config.Journal.ExportPath, name)
			}
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				output.Error("Failed to create export directory: %v", err)
				return err
			}

			if err := export.WriteCSVFile(outPath, trades); err != nil {
				output.Error("Export failed: %v", err)
				return err
			}

			app.Logger.Info().Str("path", outPath).Int("trades", len(trades)).Msg("Journal exported")

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{"path": outPath, "trades": len(trades)})
			}
			output.Success("Exported %d trade(s) to %s", len(trades), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file path (- for stdout)")

	return cmd
}
