package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coderefine/coderefine/internal/api"
	"github.com/coderefine/coderefine/internal/config"
	"github.com/coderefine/coderefine/internal/logger"
	"github.com/coderefine/coderefine/internal/session"
)

var (
	authEmail    string
	authPassword string
	authUsername string
	clearLogs    bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	Long: `Signs in to the refinement service and stores the user and token in
~/.coderefine/storage.json, where the editor picks them up.

The password is read from stdin when --password is not given:
  echo "$PASSWORD" | coderefine login --email ada@example.com`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	Args:  cobra.NoArgs,
	RunE:  runSignup,
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Send a password reset email",
	Args:  cobra.NoArgs,
	RunE:  runResetPassword,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "Account password (read from stdin if omitted)")
	_ = loginCmd.MarkFlagRequired("email")

	signupCmd.Flags().StringVar(&authUsername, "username", "", "User name")
	signupCmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	signupCmd.Flags().StringVar(&authPassword, "password", "", "Account password (read from stdin if omitted)")
	_ = signupCmd.MarkFlagRequired("username")
	_ = signupCmd.MarkFlagRequired("email")

	resetPasswordCmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	_ = resetPasswordCmd.MarkFlagRequired("email")

	logoutCmd.Flags().BoolVar(&clearLogs, "clear-logs", false, "Also remove the debug log files")

	rootCmd.AddCommand(loginCmd, signupCmd, resetPasswordCmd, logoutCmd, whoamiCmd)
}

// newClient builds an API client from the config, carrying the stored token
// when there is one.
func newClient(cfg *config.Config, token string) *api.Client {
	return api.NewClient(cfg.GetAPIBaseURL(), cfg.GetRequestTimeout()).WithToken(token)
}

func passwordFrom(cmd *cobra.Command) (string, error) {
	if authPassword != "" {
		return authPassword, nil
	}
	return readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password")
}

func runLogin(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	storage, err := session.DefaultStorage()
	if err != nil {
		return err
	}
	password, err := passwordFrom(cmd)
	if err != nil {
		return err
	}

	sess, err := newClient(cfg, "").SignIn(cmd.Context(), authEmail, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if err := session.Save(storage, sess); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", userLabel(sess.User))
	return nil
}

func runSignup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	password, err := passwordFrom(cmd)
	if err != nil {
		return err
	}

	if err := newClient(cfg, "").SignUp(cmd.Context(), authUsername, authEmail, password); err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Account created! Sign in with 'coderefine login'.")
	return nil
}

func runResetPassword(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := newClient(cfg, "").ResetPassword(cmd.Context(), authEmail); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Password reset email sent!")
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	storage, err := session.DefaultStorage()
	if err != nil {
		return err
	}
	if err := session.Clear(storage); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Logged out successfully")

	if clearLogs {
		n, err := logger.ClearLogs()
		if err != nil {
			return fmt.Errorf("error clearing logs: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d log file(s).\n", n)
	}
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	storage, err := session.DefaultStorage()
	if err != nil {
		return err
	}
	sess, err := session.Require(storage)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), userLabel(sess.User))
	return nil
}

// userLabel renders a user as "name <email>", or just the email when the
// service sent no name.
func userLabel(u api.User) string {
	if u.Username == "" {
		return u.Email
	}
	return fmt.Sprintf("%s <%s>", u.Username, u.Email)
}

// requireSession loads the stored session for commands that call
// authenticated endpoints
func requireSession() (api.Session, error) {
	storage, err := session.DefaultStorage()
	if err != nil {
		return api.Session{}, err
	}
	return session.Require(storage)
}
