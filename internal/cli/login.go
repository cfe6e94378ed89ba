package cli

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vocab-forge/vocabforge/internal/permission"
	"github.com/vocab-forge/vocabforge/internal/remote"
)

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Authenticate against the remote store",
	Long: `Authenticate against the remote store and persist the session locally.

The password is read from the VOCABFORGE_PASSWORD environment variable
or prompted for interactively. Credentials are sent to the remote API
and never stored; only the sanitized user record is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE:  runLogout,
}

func runLogin(cmd *cobra.Command, args []string) error {
	username := args[0]

	password := os.Getenv("VOCABFORGE_PASSWORD")
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return trackCLIError("login", fmt.Errorf("read password: %w", err))
		}
		password = string(raw)
	}

	e, err := openEnv()
	if err != nil {
		return trackCLIError("login", err)
	}
	defer e.close()

	user, err := e.remote.Login(cmd.Context(), username, password)
	if err != nil {
		if errors.Is(err, remote.ErrInvalidCredentials) {
			return trackCLIError("login", fmt.Errorf("invalid credentials"))
		}
		return trackCLIError("login", fmt.Errorf("login: %w", err))
	}

	if err := permission.ValidatePermissions(user.Permissions); err != nil {
		return trackCLIError("login", fmt.Errorf("server returned malformed permissions: %w", err))
	}

	if err := e.database.SaveSession(user); err != nil {
		return trackCLIError("login", fmt.Errorf("save session: %w", err))
	}

	telemetryClient.TrackLogin(string(user.Role), false)
	fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return trackCLIError("logout", err)
	}
	defer e.close()

	if err := e.database.ClearSession(); err != nil {
		return trackCLIError("logout", fmt.Errorf("clear session: %w", err))
	}
	fmt.Println("Logged out.")
	return nil
}
