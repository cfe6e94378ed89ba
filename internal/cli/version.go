package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocab-forge/vocabforge/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show detailed version information",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Println(version.Full())

	switch {
	case version.IsDevBuild():
		fmt.Println("\nThis is a development build.")
	case version.IsPrerelease():
		fmt.Printf("\nThis is a pre-release build (%s).\n", version.SemverPrerelease())
	}
}
