// Package cli provides the command-line interface for the journaling application.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"reflectr/internal/config"
	"reflectr/internal/insight"
	"reflectr/internal/logging"
	"reflectr/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Store    store.DataStore
	Analyzer *insight.Analyzer
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	ApplyUIConfig(cfg.UI)

	dataStore, err := store.NewSQLiteStore(cfg.Journal.DBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, some features may be unavailable")
	} else {
		app.Store = dataStore
		logger.Debug().Str("db", cfg.Journal.DBPath).Msg("SQLite store initialized")
	}

	if cfg.HasInsights() {
		client := insight.NewOpenAIClient(cfg.Credentials.OpenAI.APIKey, cfg.Insights.Model)
		app.Analyzer = insight.NewAnalyzerWithLimits(client, cfg.Insights.MinTrades, cfg.Insights.Window)
		logger.Debug().Str("model", cfg.Insights.Model).Msg("Insight analyzer initialized")
	}

	rootCmd := &cobra.Command{
		Use:   "reflectr",
		Short: "Reflectr - trading psychology journal",
		Long: `Reflectr is a trading psychology journal for day traders.

Log a pre-trade check-in before you enter, attach a post-trade debrief
after you exit, and let the dashboard surface the behavioral patterns
hiding in your history. Pro users get AI-powered insight reports.

Trade your mind first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/reflectr)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addAccountCommands(rootCmd, app)
	addJournalCommands(rootCmd, app)
	addDashboardCommands(rootCmd, app)
	addInsightCommands(rootCmd, app)
	addExportCommands(rootCmd, app)
	addCoreCommands(rootCmd, app)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Reflectr v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Bold("Journal Configuration")
			output.Printf("  Database:        %s\n", app.Config.Journal.DBPath)
			output.Printf("  Export Path:     %s\n", app.Config.Journal.ExportPath)
			output.Printf("  Warn Threshold:  %d\n", app.Config.Journal.WarnThreshold)
			output.Println()
			output.Bold("Insight Configuration")
			output.Printf("  Model:           %s\n", app.Config.Insights.Model)
			output.Printf("  Window:          %d trades\n", app.Config.Insights.Window)
			output.Printf("  Min Trades:      %d\n", app.Config.Insights.MinTrades)
			output.Printf("  Timeout:         %ds\n", app.Config.Insights.TimeoutSeconds)
			output.Printf("  API Key Set:     %v\n", app.Config.HasInsights())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}
