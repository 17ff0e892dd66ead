package cli

import (
	"github.com/spf13/cobra"

	"reflectr/internal/account"
	apperrors "reflectr/internal/errors"
)

// addAccountCommands adds login, logout and whoami commands.
func addAccountCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newLoginCmd(app))
	rootCmd.AddCommand(newLogoutCmd(app))
	rootCmd.AddCommand(newWhoamiCmd(app))
}

func newLoginCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in with an email address",
		Long: `Log in with an email address. The account is created locally on first
login. Logging in again with the same email resolves to the same
identity, so your trade history is kept. Logging out clears the
account itself, so a Pro plan does not survive logout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				output.Error("Store unavailable")
				return apperrors.ErrStoreUnavailable
			}

			user, err := account.Login(cmd.Context(), app.Store, args[0], name)
			if err != nil {
				output.Error("Login failed: %v", err)
				return err
			}

			app.Logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("User logged in")

			if output.IsJSON() {
				return output.JSON(user)
			}
			output.Success("Logged in as %s <%s>", user.Name, user.Email)
			if user.IsPro {
				output.Info("Pro plan active")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name (defaults to the email local part)")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the current account",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				output.Error("Store unavailable")
				return apperrors.ErrStoreUnavailable
			}

			if err := account.Logout(cmd.Context(), app.Store); err != nil {
				output.Error("Logout failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]bool{"logged_out": true})
			}
			output.Success("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				output.Error("Store unavailable")
				return apperrors.ErrStoreUnavailable
			}

			user, err := account.CurrentUser(cmd.Context(), app.Store)
			if err != nil {
				if apperrors.Is(err, apperrors.ErrNotLoggedIn) {
					output.Warning("Not logged in. Run 'reflectr login <email>' first.")
					return nil
				}
				return err
			}

			if output.IsJSON() {
				return output.JSON(user)
			}

			plan := "Free"
			if user.IsPro {
				plan = "Pro"
			}
			output.Printf("%s <%s>\n", user.Name, user.Email)
			output.Printf("User ID: %s\n", user.ID)
			output.Printf("Plan:    %s\n", plan)
			return nil
		},
	}
}
