package db

import (
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/vocab-forge/vocabforge/internal/models"
)

// vocabColumns are the fields an upsert is allowed to touch.
// Identity (id, int_id) and context (app_name, target_lang) are immutable;
// the merge layer replaces whole records instead when the remote diverges.
var vocabColumns = []string{
	"term", "original_index", "status",
	"script", "phonetic", "variant", "part_of_speech",
	"translations",
	"example_sentence", "example_sentence_tokens", "example_script",
	"example_translation", "example_translations",
	"image_url", "image_prompt", "audio_url",
	"updated_at",
}

// ListVocab returns all cached items for one dataset context, in stable
// catalog order (ascending int_id).
func (db *DB) ListVocab(appName, targetLang string) ([]models.VocabItem, error) {
	var items []models.VocabItem
	err := db.Where("app_name = ? AND target_lang = ?", appName, targetLang).
		Order("int_id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list vocab: %w", err)
	}
	return items, nil
}

// ListAllVocab returns every cached item across all contexts, in stable
// catalog order.
func (db *DB) ListAllVocab() ([]models.VocabItem, error) {
	var items []models.VocabItem
	if err := db.Order("int_id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list all vocab: %w", err)
	}
	return items, nil
}

// GetVocab retrieves a single item by id.
func (db *DB) GetVocab(id string) (*models.VocabItem, error) {
	var item models.VocabItem
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertVocab creates or updates a cached item by id.
func (db *DB) UpsertVocab(item *models.VocabItem) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(vocabColumns),
	}).Create(item).Error
}

// InsertVocab inserts new items, failing on id collision.
func (db *DB) InsertVocab(items []models.VocabItem) error {
	if len(items) == 0 {
		return nil
	}
	return db.Create(&items).Error
}

// ReplaceAllVocab atomically replaces the whole cached catalog with the
// given set. Used after a merge so the cache mirrors the merged view.
func (db *DB) ReplaceAllVocab(items []models.VocabItem) error {
	return db.Transaction(func(tx *DB) error {
		if err := tx.Where("1 = 1").Delete(&models.VocabItem{}).Error; err != nil {
			return fmt.Errorf("clear vocab: %w", err)
		}
		if len(items) == 0 {
			return nil
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("insert merged vocab: %w", err)
		}
		return nil
	})
}

// DeleteVocab removes items by id. Absent ids are ignored, so the
// operation is idempotent. Removal is permanent; there is no tombstone.
func (db *DB) DeleteVocab(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return db.Where("id IN ?", ids).Delete(&models.VocabItem{}).Error
}

// MaxIntID returns the highest int_id known to the cache, or 0 for an
// empty catalog.
func (db *DB) MaxIntID() (int, error) {
	var max int
	err := db.Model(&models.VocabItem{}).
		Select("COALESCE(MAX(int_id), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("max int_id: %w", err)
	}
	return max, nil
}

// CountVocabByStatus returns item counts per status for one context.
func (db *DB) CountVocabByStatus(appName, targetLang string) (map[models.ItemStatus]int64, error) {
	type row struct {
		Status models.ItemStatus
		N      int64
	}
	var rows []row
	err := db.Model(&models.VocabItem{}).
		Select("status, COUNT(*) AS n").
		Where("app_name = ? AND target_lang = ?", appName, targetLang).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count vocab: %w", err)
	}
	counts := make(map[models.ItemStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.N
	}
	return counts, nil
}
