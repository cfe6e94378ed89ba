package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List the registered dataset apps",
	Long: `List the apps whose vocabulary datasets live in the catalog.

Served from the remote store when reachable, from the local cache
otherwise.`,
	RunE: runApps,
}

var appsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Register a new dataset app",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppsCreate,
}

func init() {
	appsCmd.AddCommand(appsCreateCmd)
}

func runApps(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return trackCLIError("apps", err)
	}
	defer e.close()

	apps, err := e.store.Apps(cmd.Context())
	if err != nil {
		return trackCLIError("apps", fmt.Errorf("list apps: %w", err))
	}

	if len(apps) == 0 {
		fmt.Println("No apps registered.")
		fmt.Println("\nUse 'vocabforge apps create <name>' to register one.")
		return nil
	}

	active, _ := e.database.LoadContext()
	for _, app := range apps {
		marker := "  "
		if active != nil && active.AppName == app.Name {
			marker = "* "
		}
		fmt.Printf("%s%s\n", marker, app.Name)
	}
	return nil
}

func runAppsCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	e, err := openEnv()
	if err != nil {
		return trackCLIError("apps", err)
	}
	defer e.close()

	user, err := e.session()
	if err != nil {
		return trackCLIError("apps", err)
	}
	if !user.IsAdmin() {
		return trackCLIError("apps", fmt.Errorf("permission denied: only administrators can create apps"))
	}

	app, err := e.store.CreateApp(cmd.Context(), name)
	if err != nil {
		return trackCLIError("apps", err)
	}
	fmt.Printf("Created app %q\n", app.Name)
	return nil
}
