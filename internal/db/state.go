package db

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vocab-forge/vocabforge/internal/models"
)

// GetState retrieves a state value by key. Missing keys return "".
func (db *DB) GetState(key string) (string, error) {
	var entry models.StateEntry
	err := db.First(&entry, "key = ?", key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return entry.Value, nil
}

// SetState sets a state value.
func (db *DB) SetState(key, value string) error {
	entry := models.StateEntry{Key: key, Value: value}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// DeleteState removes a state entry.
func (db *DB) DeleteState(key string) error {
	return db.Delete(&models.StateEntry{}, "key = ?", key).Error
}

// SaveSession persists the authenticated user for later restoration.
// Credentials are never stored, only the sanitized user record.
func (db *DB) SaveSession(user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return db.SetState(models.StateKeySession, string(data))
}

// LoadSession restores the persisted session user, or nil if none.
func (db *DB) LoadSession() (*models.User, error) {
	raw, err := db.GetState(models.StateKeySession)
	if err != nil || raw == "" {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &user, nil
}

// ClearSession removes the persisted session.
func (db *DB) ClearSession() error {
	return db.DeleteState(models.StateKeySession)
}

// SaveContext persists the active dataset context.
func (db *DB) SaveContext(appName, langCode string) error {
	data, err := json.Marshal(models.Context{AppName: appName, LangCode: langCode})
	if err != nil {
		return fmt.Errorf("marshal context: %w", err)
	}
	return db.SetState(models.StateKeyLastContext, string(data))
}

// LoadContext restores the last active dataset context, or nil if none
// was saved yet.
func (db *DB) LoadContext() (*models.Context, error) {
	raw, err := db.GetState(models.StateKeyLastContext)
	if err != nil || raw == "" {
		return nil, err
	}
	var ctx models.Context
	if err := json.Unmarshal([]byte(raw), &ctx); err != nil {
		return nil, fmt.Errorf("unmarshal context: %w", err)
	}
	return &ctx, nil
}

// GetOrCreateTrackingID returns the persistent anonymous tracking ID,
// creating one if it doesn't exist. On any error, it falls back to a
// per-session ID.
func (db *DB) GetOrCreateTrackingID() string {
	id, err := db.GetState(models.StateKeyTrackingID)
	if err == nil && id != "" {
		return id
	}

	id = uuid.New().String()
	if err := db.SetState(models.StateKeyTrackingID, id); err != nil {
		// Even if save fails, return the generated ID for this session
		return id
	}
	return id
}
