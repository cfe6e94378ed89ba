package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vocab-forge/vocabforge/internal/models"
	"github.com/vocab-forge/vocabforge/internal/permission"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit fields of a vocabulary item",
	Long: `Apply manual corrections to an item. Shared linguistic fields (term,
script, phonetic, part of speech, example sentence) require the common
scope for the item's app; translations require the per-language scope.

Saving an edit marks the item completed: a human-reviewed item no longer
needs machine generation.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editTerm          string
	editScript        string
	editPhonetic      string
	editVariant       string
	editPartOfSpeech  string
	editExample       string
	editExampleScript string
	editTranslations  []string
	editExampleTrans  []string
)

func init() {
	editCmd.Flags().StringVar(&editTerm, "term", "", "Replace the term itself")
	editCmd.Flags().StringVar(&editScript, "script", "", "Replace the script form")
	editCmd.Flags().StringVar(&editPhonetic, "phonetic", "", "Replace the phonetic transcription")
	editCmd.Flags().StringVar(&editVariant, "variant", "", "Replace the script variant form")
	editCmd.Flags().StringVar(&editPartOfSpeech, "pos", "", "Replace the part of speech")
	editCmd.Flags().StringVar(&editExample, "example", "", "Replace the example sentence")
	editCmd.Flags().StringVar(&editExampleScript, "example-script", "", "Replace the example sentence script form")
	editCmd.Flags().StringArrayVar(&editTranslations, "translation", nil, "Set a term translation as lang=text (repeatable)")
	editCmd.Flags().StringArrayVar(&editExampleTrans, "example-translation", nil, "Set an example translation as lang=text (repeatable)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id := args[0]

	e, err := openEnv()
	if err != nil {
		return trackCLIError("edit", err)
	}
	defer e.close()

	user, err := e.session()
	if err != nil {
		return trackCLIError("edit", err)
	}

	item, err := e.store.Get(id)
	if err != nil {
		return trackCLIError("edit", err)
	}

	commonEdits := editTerm != "" || editScript != "" || editPhonetic != "" ||
		editVariant != "" || editPartOfSpeech != "" || editExample != "" || editExampleScript != ""

	translations, err := parseLangPairs(editTranslations)
	if err != nil {
		return trackCLIError("edit", err)
	}
	exampleTranslations, err := parseLangPairs(editExampleTrans)
	if err != nil {
		return trackCLIError("edit", err)
	}

	if !commonEdits && len(translations) == 0 && len(exampleTranslations) == 0 {
		return trackCLIError("edit", fmt.Errorf("nothing to edit: pass at least one field flag"))
	}

	if commonEdits && !permission.CanEditCommon(user, item.AppName) {
		return trackCLIError("edit", fmt.Errorf("permission denied: no common scope for app %q", item.AppName))
	}
	for lang := range translations {
		if !permission.CanEditLanguage(user, item.AppName, lang) {
			return trackCLIError("edit", fmt.Errorf("permission denied: no %q scope for app %q", lang, item.AppName))
		}
	}
	for lang := range exampleTranslations {
		if !permission.CanEditLanguage(user, item.AppName, lang) {
			return trackCLIError("edit", fmt.Errorf("permission denied: no %q scope for app %q", lang, item.AppName))
		}
	}

	updated, err := e.store.Update(cmd.Context(), id, func(it *models.VocabItem) {
		if editTerm != "" {
			it.Term = editTerm
		}
		if editScript != "" {
			it.Script = editScript
		}
		if editPhonetic != "" {
			it.Phonetic = editPhonetic
		}
		if editVariant != "" {
			it.Variant = editVariant
		}
		if editPartOfSpeech != "" {
			it.PartOfSpeech = editPartOfSpeech
		}
		if editExample != "" {
			it.ExampleSentence = editExample
		}
		if editExampleScript != "" {
			it.ExampleScript = editExampleScript
		}
		if it.Translations == nil {
			it.Translations = models.TranslationMap{}
		}
		for lang, text := range translations {
			it.Translations[lang] = text
		}
		if it.ExampleTranslations == nil {
			it.ExampleTranslations = models.TranslationMap{}
		}
		for lang, text := range exampleTranslations {
			it.ExampleTranslations[lang] = text
		}
		it.Status = models.StatusCompleted
	})
	if err != nil {
		return trackCLIError("edit", err)
	}

	if commonEdits {
		telemetryClient.TrackItemEdited(string(models.ScopeCommon))
	}
	for lang := range translations {
		telemetryClient.TrackItemEdited(lang)
	}
	for lang := range exampleTranslations {
		telemetryClient.TrackItemEdited(lang)
	}

	fmt.Printf("Updated %q (%s)\n", updated.Term, updated.Status)
	return nil
}

// parseLangPairs splits repeatable lang=text flag values, validating
// the language code against the supported set.
func parseLangPairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		lang, text, ok := strings.Cut(pair, "=")
		if !ok || lang == "" {
			return nil, fmt.Errorf("invalid translation %q: expected lang=text", pair)
		}
		if !models.IsSupportedLanguage(lang) {
			return nil, fmt.Errorf("unsupported language code %q", lang)
		}
		out[lang] = text
	}
	return out, nil
}
