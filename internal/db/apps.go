package db

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vocab-forge/vocabforge/internal/models"
)

// defaultApps seed the cache on first run, mirroring the remote store's
// own seed data so an offline first session still has contexts to use.
var defaultApps = []models.AppDefinition{
	{ID: "lingodeer", Name: "LingoDeer"},
	{ID: "chineseskill", Name: "ChineseSkill"},
}

// seedApps inserts the default app definitions into an empty cache.
func (db *DB) seedApps() error {
	var count int64
	if err := db.Model(&models.AppDefinition{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&defaultApps).Error
}

// ListApps returns all cached app definitions ordered by name.
func (db *DB) ListApps() ([]models.AppDefinition, error) {
	var apps []models.AppDefinition
	if err := db.Order("name ASC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list apps: %w", err)
	}
	return apps, nil
}

// FindAppByName looks up an app definition case-insensitively.
// Returns nil when no app matches.
func (db *DB) FindAppByName(name string) (*models.AppDefinition, error) {
	var app models.AppDefinition
	err := db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&app).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

// CreateApp inserts a new app definition, enforcing case-insensitive
// name uniqueness.
func (db *DB) CreateApp(name string) (*models.AppDefinition, error) {
	existing, err := db.FindAppByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("app name already exists: %s", name)
	}
	app := models.AppDefinition{ID: uuid.New().String(), Name: name}
	if err := db.Create(&app).Error; err != nil {
		return nil, fmt.Errorf("create app: %w", err)
	}
	return &app, nil
}

// ReplaceApps replaces the cached app list with the remote's
// authoritative set.
func (db *DB) ReplaceApps(apps []models.AppDefinition) error {
	return db.Transaction(func(tx *DB) error {
		if err := tx.Where("1 = 1").Delete(&models.AppDefinition{}).Error; err != nil {
			return fmt.Errorf("clear apps: %w", err)
		}
		if len(apps) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&apps).Error
	})
}
