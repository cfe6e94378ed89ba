package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vocab-forge/vocabforge/internal/models"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show processing progress for the active context",
	RunE:  runStatus,
}

var (
	statusApp  string
	statusLang string
)

func init() {
	statusCmd.Flags().StringVar(&statusApp, "app", "", "App name (overrides the active context)")
	statusCmd.Flags().StringVar(&statusLang, "lang", "", "Target language code (overrides the active context)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return trackCLIError("status", err)
	}
	defer e.close()

	dctx, err := e.resolveContext(statusApp, statusLang)
	if err != nil {
		return trackCLIError("status", err)
	}

	// Refresh the cache first so counts reflect the remote tier when
	// it is reachable; offline the cached counts stand on their own.
	if _, err := e.store.List(cmd.Context(), dctx.AppName, dctx.LangCode); err != nil {
		return trackCLIError("status", err)
	}

	counts, err := e.store.Counts(dctx.AppName, dctx.LangCode)
	if err != nil {
		return trackCLIError("status", err)
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	fmt.Printf("%s / %s (%s)\n\n", dctx.AppName, dctx.LangCode, models.LanguageName(dctx.LangCode))
	if total == 0 {
		fmt.Println("No items. Run 'vocabforge import' to add some.")
		return nil
	}

	rows := []struct {
		label  string
		status models.ItemStatus
		style  lipgloss.Style
	}{
		{"Pending", models.StatusPending, pendingStyle},
		{"Loading", models.StatusLoading, loadingStyle},
		{"Completed", models.StatusCompleted, completedStyle},
		{"Error", models.StatusError, failedStyle},
	}
	for _, row := range rows {
		fmt.Printf("  %-10s %s\n", row.label, row.style.Render(fmt.Sprintf("%d", counts[row.status])))
	}
	fmt.Printf("  %-10s %d\n", "Total", total)

	if counts[models.StatusPending] > 0 {
		fmt.Println("\nRun 'vocabforge process' to generate pending items.")
	}
	if counts[models.StatusError] > 0 {
		fmt.Println("Errored items stay parked until 'vocabforge reset --failed'.")
	}
	return nil
}
