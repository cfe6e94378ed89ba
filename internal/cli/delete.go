package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete vocabulary items",
	Long: `Remove items from the catalog. Deletion is destructive across every
user's view of the dataset, so it is restricted to admins.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

var deleteYes bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return trackCLIError("delete", err)
	}
	defer e.close()

	user, err := e.session()
	if err != nil {
		return trackCLIError("delete", err)
	}
	if !user.IsAdmin() {
		return trackCLIError("delete", fmt.Errorf("permission denied: only admins can delete items"))
	}

	if !deleteYes {
		fmt.Printf("Delete %d item(s)? [y/N] ", len(args))
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := e.store.Delete(cmd.Context(), args); err != nil {
		return trackCLIError("delete", err)
	}

	telemetryClient.TrackItemsDeleted(len(args), !e.remote.Configured())
	fmt.Printf("Deleted %d item(s)\n", len(args))
	return nil
}
