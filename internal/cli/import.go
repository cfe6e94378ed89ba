package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vocab-forge/vocabforge/internal/models"
	"github.com/vocab-forge/vocabforge/internal/remote"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Batch-import terms into the active context",
	Long: `Import terms from a plain text file, one term per line, into the
active (app, language) context. Every imported term starts in the
pending queue; run 'vocabforge process' to enrich them.

Blank lines and lines starting with # are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var (
	importApp  string
	importLang string
)

func init() {
	importCmd.Flags().StringVar(&importApp, "app", "", "Target app (default: active context)")
	importCmd.Flags().StringVar(&importLang, "lang", "", "Target language code (default: active context)")
}

func runImport(cmd *cobra.Command, args []string) error {
	terms, err := readTerms(args[0])
	if err != nil {
		return trackCLIError("import", err)
	}
	if len(terms) == 0 {
		return trackCLIError("import", fmt.Errorf("no terms found in %s", args[0]))
	}

	e, err := openEnv()
	if err != nil {
		return trackCLIError("import", err)
	}
	defer e.close()

	if _, err := e.session(); err != nil {
		return trackCLIError("import", err)
	}

	dataset, err := e.resolveContext(importApp, importLang)
	if err != nil {
		return trackCLIError("import", err)
	}
	if !models.IsSupportedLanguage(dataset.LangCode) {
		return trackCLIError("import", fmt.Errorf("invalid language code %q", dataset.LangCode))
	}

	// Register the app on demand when importing into a new context.
	if _, err := e.store.CreateApp(cmd.Context(), dataset.AppName); err != nil && !isDuplicateApp(err) {
		return trackCLIError("import", err)
	}

	items := make([]models.VocabItem, len(terms))
	for i, term := range terms {
		items[i] = models.VocabItem{
			AppName:       dataset.AppName,
			TargetLang:    dataset.LangCode,
			Term:          term,
			OriginalIndex: i,
			Status:        models.StatusPending,
		}
	}

	created, err := e.store.Create(cmd.Context(), items)
	if err != nil {
		return trackCLIError("import", fmt.Errorf("import: %w", err))
	}

	if err := e.database.SaveContext(dataset.AppName, dataset.LangCode); err != nil {
		return trackCLIError("import", fmt.Errorf("save context: %w", err))
	}

	offline := !e.remote.Configured()
	telemetryClient.TrackImportCompleted(len(created), offline)

	fmt.Printf("Imported %d terms into %s / %s\n", len(created), dataset.AppName, dataset.LangCode)
	fmt.Println("Run 'vocabforge process' to enrich them.")
	return nil
}

// readTerms parses a newline-separated term file, skipping blanks and
// comments.
func readTerms(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open terms file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var terms []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read terms file: %w", err)
	}
	return terms, nil
}

// isDuplicateApp reports whether the error is the expected duplicate
// name rejection, which an import treats as "already registered".
func isDuplicateApp(err error) bool {
	if strings.Contains(err.Error(), "already exists") {
		return true
	}
	var apiErr *remote.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 400
}
