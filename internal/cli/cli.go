// Package cli provides the command-line interface for VocabForge.
package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/vocab-forge/vocabforge/internal/telemetry"
	"github.com/vocab-forge/vocabforge/pkg/version"
)

var telemetryClient telemetry.Client

var commandStartTime time.Time

var rootCmd = &cobra.Command{
	Use:   "vocabforge",
	Short: "Multi-language vocabulary catalog with AI enrichment",
	Long: `Multi-language vocabulary catalog with AI enrichment.

VocabForge keeps a shared vocabulary catalog synchronized between a
local cache and a remote store, and enriches each term with
translations, readings, example sentences, images and audio through a
generation provider. The catalog stays fully usable when the remote
store is unreachable.

Telemetry:
  Telemetry is enabled by default, always anonymous, and will never
  track terms, app names, credentials, or IP addresses.

  Opt-out with:
  	VOCABFORGE_TELEMETRY_TRACKING_ENABLED=false`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commandStartTime = time.Now()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cmd.Name() != "vocabforge" {
			durationMs := time.Since(commandStartTime).Milliseconds()
			hasFlags := cmd.Flags().NFlag() > 0
			telemetryClient.TrackCLICommandExecuted(cmd.Name(), hasFlags, durationMs)
		}

		if cmd.Flags().Changed("help") {
			telemetryClient.TrackCLIHelpViewed(cmd.Name(), os.Args[1:])
		}
	},
}

func init() {
	rootCmd.AddCommand(appsCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, tc telemetry.Client) error {
	if tc == nil {
		tc = telemetry.New(nil)
	}
	telemetryClient = tc

	sessionStart := time.Now()
	telemetryClient.TrackAppStarted("cli")
	defer func() {
		telemetryClient.TrackAppExited("cli", time.Since(sessionStart).Milliseconds())
	}()

	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}

// trackCLIError wraps an error with telemetry tracking.
// Call this before returning errors from CLI commands.
func trackCLIError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	telemetryClient.TrackCLIError(cmdName, classifyError(err))
	return err
}

// classifyError determines the error type for telemetry.
func classifyError(err error) string {
	errStr := err.Error()
	switch {
	case containsAny(errStr, "config", "configuration"):
		return "config_error"
	case containsAny(errStr, "database", "db"):
		return "database_error"
	case containsAny(errStr, "unavailable", "network", "timeout", "connection"):
		return "network_error"
	case containsAny(errStr, "permission", "access denied", "credentials"):
		return "permission_error"
	case containsAny(errStr, "not found", "does not exist"):
		return "not_found_error"
	case containsAny(errStr, "invalid", "parse", "format"):
		return "validation_error"
	default:
		return "unknown_error"
	}
}

// containsAny checks if s contains any of the substrings (case-insensitive).
func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
