package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vocab-forge/vocabforge/internal/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items in the active context",
	Long: `List the vocabulary items of the active (app, language) context in
stable catalog order.

Filters:
  --filter missing-image         items without a generated image
  --filter missing-audio         items without generated audio
  --filter missing-translations  items with no translations yet
  --search <text>                substring match on term or English translation`,
	RunE: runList,
}

var (
	listApp    string
	listLang   string
	listFilter string
	listSearch string
)

func init() {
	listCmd.Flags().StringVar(&listApp, "app", "", "App (default: active context)")
	listCmd.Flags().StringVar(&listLang, "lang", "", "Language code (default: active context)")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Completeness filter: missing-image, missing-audio, missing-translations")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Substring search on term or English translation")
}

// Color styles for status glyphs.
var (
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	loadingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	failedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
)

func runList(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return trackCLIError("list", err)
	}
	defer e.close()

	dataset, err := e.resolveContext(listApp, listLang)
	if err != nil {
		return trackCLIError("list", err)
	}

	items, err := e.store.List(cmd.Context(), dataset.AppName, dataset.LangCode)
	if err != nil {
		return trackCLIError("list", fmt.Errorf("list items: %w", err))
	}

	items = applyFilters(items, listFilter, listSearch)

	if len(items) == 0 {
		fmt.Printf("No items in %s / %s.\n", dataset.AppName, dataset.LangCode)
		return nil
	}

	fmt.Printf("%s / %s (%d items)\n", dataset.AppName, dataset.LangCode, len(items))
	fmt.Println("──────────────────────────────────────────────────")
	for _, item := range items {
		fmt.Printf("  %s %4d  %-20s %s\n",
			statusGlyph(item.Status), item.IntID, item.Term, itemSummary(item))
	}
	return nil
}

// applyFilters narrows the item list by completeness and search text.
func applyFilters(items []models.VocabItem, filter, search string) []models.VocabItem {
	out := items[:0:0]
	searchLower := strings.ToLower(search)
	for _, item := range items {
		switch filter {
		case "missing-image":
			if item.ImageURL != "" {
				continue
			}
		case "missing-audio":
			if item.AudioURL != "" {
				continue
			}
		case "missing-translations":
			if len(item.Translations) > 0 {
				continue
			}
		}
		if searchLower != "" {
			term := strings.ToLower(item.Term)
			english := strings.ToLower(item.Translations["en"])
			if !strings.Contains(term, searchLower) && !strings.Contains(english, searchLower) {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

// statusGlyph renders a colored one-character status indicator.
func statusGlyph(status models.ItemStatus) string {
	switch status {
	case models.StatusPending:
		return pendingStyle.Render("·")
	case models.StatusLoading:
		return loadingStyle.Render("…")
	case models.StatusCompleted:
		return completedStyle.Render("✓")
	case models.StatusError:
		return failedStyle.Render("✗")
	default:
		return "?"
	}
}

// itemSummary shows what the item already has.
func itemSummary(item models.VocabItem) string {
	var parts []string
	if en := item.Translations["en"]; en != "" {
		parts = append(parts, en)
	}
	if item.ImageURL != "" {
		parts = append(parts, "[img]")
	}
	if item.AudioURL != "" {
		parts = append(parts, "[audio]")
	}
	return strings.Join(parts, " ")
}
