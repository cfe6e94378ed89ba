package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocab-forge/vocabforge/internal/models"
	"github.com/vocab-forge/vocabforge/internal/permission"
	"github.com/vocab-forge/vocabforge/internal/scheduler"
)

var resetCmd = &cobra.Command{
	Use:   "reset <id>...",
	Short: "Reset items back to pending",
	Long: `Put items back into the processing queue. Errored items stay out of
the queue until reset; completed items can also be reset to force a
fresh generation pass.`,
	Args: cobra.ArbitraryArgs,
	RunE: runReset,
}

var resetFailed bool

func init() {
	resetCmd.Flags().BoolVar(&resetFailed, "failed", false, "Reset every errored item in the active context instead of named ids")
}

func runReset(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return trackCLIError("reset", err)
	}
	defer e.close()

	user, err := e.session()
	if err != nil {
		return trackCLIError("reset", err)
	}

	ids := args
	if !resetFailed && len(ids) == 0 {
		return trackCLIError("reset", fmt.Errorf("pass item ids or --failed"))
	}
	if resetFailed {
		dctx, err := e.activeContext()
		if err != nil {
			return trackCLIError("reset", err)
		}
		items, err := e.store.List(cmd.Context(), dctx.AppName, dctx.LangCode)
		if err != nil {
			return trackCLIError("reset", err)
		}
		ids = ids[:0]
		for _, item := range items {
			if item.Status == models.StatusError {
				ids = append(ids, item.ID)
			}
		}
		if len(ids) == 0 {
			fmt.Println("No errored items in the active context.")
			return nil
		}
	}

	for _, id := range ids {
		item, err := e.store.Get(id)
		if err != nil {
			return trackCLIError("reset", fmt.Errorf("item %s: %w", id, err))
		}
		if !permission.CanEditCommon(user, item.AppName) {
			return trackCLIError("reset", fmt.Errorf("permission denied: no common scope for app %q", item.AppName))
		}
	}

	sched := scheduler.New(e.store, nil)
	if err := sched.Reset(cmd.Context(), ids); err != nil {
		return trackCLIError("reset", err)
	}

	fmt.Printf("Reset %d item(s) to pending. Run 'vocabforge process' to regenerate.\n", len(ids))
	return nil
}
