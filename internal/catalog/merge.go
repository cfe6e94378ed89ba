package catalog

import (
	"sort"

	"github.com/vocab-forge/vocabforge/internal/models"
)

// mergeByID combines the local cache with a remote result set. The
// remote is the source of truth: on id collision the remote record
// replaces the local one. Local-only records (e.g. created while
// offline) are preserved via union. The result is in stable catalog
// order (ascending intId, id as tie-break for unassigned zeros).
func mergeByID(local, remote []models.VocabItem) []models.VocabItem {
	seen := make(map[string]bool, len(remote))
	merged := make([]models.VocabItem, 0, len(remote)+len(local))

	for _, item := range remote {
		seen[item.ID] = true
		merged = append(merged, item)
	}
	for _, item := range local {
		if !seen[item.ID] {
			merged = append(merged, item)
		}
	}

	sortCatalog(merged)
	return merged
}

// sortCatalog orders items by intId ascending; items without an
// assigned intId sort after, by id for determinism.
func sortCatalog(items []models.VocabItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.IntID != b.IntID {
			if a.IntID == 0 {
				return false
			}
			if b.IntID == 0 {
				return true
			}
			return a.IntID < b.IntID
		}
		return a.ID < b.ID
	})
}

// filterContext returns the subset of items belonging to one dataset
// context, preserving order.
func filterContext(items []models.VocabItem, appName, targetLang string) []models.VocabItem {
	filtered := make([]models.VocabItem, 0, len(items))
	for _, item := range items {
		if item.InContext(appName, targetLang) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
