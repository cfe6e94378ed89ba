package catalog

import (
	"github.com/google/uuid"

	"github.com/vocab-forge/vocabforge/internal/models"
)

// Normalize fills required-but-absent fields with safe defaults so
// partially-shaped records from any tier cannot corrupt invariants:
// a missing id gets a fresh one, a missing status becomes pending,
// nil translation maps become empty maps.
func Normalize(item *models.VocabItem) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Status == "" {
		item.Status = models.StatusPending
	}
	if item.Translations == nil {
		item.Translations = models.TranslationMap{}
	}
	if item.ExampleTranslations == nil {
		item.ExampleTranslations = models.TranslationMap{}
	}
	if item.TargetLang == "" {
		item.TargetLang = "en"
	}
}

// NormalizeAll normalizes a slice in place and returns it.
func NormalizeAll(items []models.VocabItem) []models.VocabItem {
	for i := range items {
		Normalize(&items[i])
	}
	return items
}
