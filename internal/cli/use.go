package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vocab-forge/vocabforge/internal/models"
)

var useCmd = &cobra.Command{
	Use:   "use <app> <lang>",
	Short: "Select the active dataset context",
	Long: `Select the (app, target language) context that list, import and
process operate on. The context is persisted and restored across
sessions.

Example:
  vocabforge use LingoDeer es`,
	Args: cobra.ExactArgs(2),
	RunE: runUse,
}

func runUse(cmd *cobra.Command, args []string) error {
	appName, langCode := args[0], args[1]

	if !models.IsSupportedLanguage(langCode) {
		return trackCLIError("use", fmt.Errorf("invalid language code %q", langCode))
	}

	e, err := openEnv()
	if err != nil {
		return trackCLIError("use", err)
	}
	defer e.close()

	// Canonicalize against the known app list when possible, so the
	// context matches the catalog's casing.
	apps, err := e.store.Apps(cmd.Context())
	if err == nil {
		found := false
		for _, app := range apps {
			if strings.EqualFold(app.Name, appName) {
				appName = app.Name
				found = true
				break
			}
		}
		if !found {
			fmt.Printf("Note: app %q is not registered yet.\n", appName)
		}
	}

	if err := e.database.SaveContext(appName, langCode); err != nil {
		return trackCLIError("use", fmt.Errorf("save context: %w", err))
	}

	fmt.Printf("Active context: %s / %s (%s)\n", appName, langCode, models.LanguageName(langCode))
	return nil
}
