// Package models defines the core data structures for VocabForge.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ItemStatus tracks an item's position in the enrichment pipeline.
type ItemStatus string

const (
	StatusPending   ItemStatus = "pending"
	StatusLoading   ItemStatus = "loading"
	StatusCompleted ItemStatus = "completed"
	StatusError     ItemStatus = "error"
)

// IsTerminal reports whether the automatic pipeline is done with this status.
// Terminal items are only re-entered into the queue by an explicit reset.
func (s ItemStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusError
}

// ValidStatuses returns all recognized item statuses.
func ValidStatuses() []ItemStatus {
	return []ItemStatus{StatusPending, StatusLoading, StatusCompleted, StatusError}
}

// TranslationMap maps a language code to a translated string.
// It is stored as a JSON-encoded text column, matching the wire format
// of the remote persistence API.
type TranslationMap map[string]string

// Value implements driver.Valuer for GORM.
func (m TranslationMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal translations: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for GORM.
func (m *TranslationMap) Scan(value interface{}) error {
	if value == nil {
		*m = TranslationMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported translations column type %T", value)
	}
	if len(data) == 0 {
		*m = TranslationMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// SentenceToken is one segment of an example sentence with its reading
// and per-language translations.
type SentenceToken struct {
	Word         string         `json:"word"`
	Script       string         `json:"script"`
	Variant      string         `json:"variant,omitempty"` // Traditional Chinese or alternate script
	Translation  string         `json:"translation"`       // Primary (English) translation
	Translations TranslationMap `json:"translations,omitempty"`
}

// TokenList is an ordered sequence of sentence tokens, stored as a
// JSON-encoded text column.
type TokenList []SentenceToken

// Value implements driver.Valuer for GORM.
func (l TokenList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal tokens: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for GORM.
func (l *TokenList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported tokens column type %T", value)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// VocabItem is the unit of work: one term in one (appName, targetLang)
// dataset context, enriched by the generation pipeline.
type VocabItem struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	IntID int    `gorm:"column:int_id;index" json:"intId"` // Human-facing sequence number, never reused

	// Dataset context, immutable after creation.
	AppName    string `gorm:"size:255;index:idx_context" json:"appName"`
	TargetLang string `gorm:"size:16;index:idx_context" json:"targetLang"`

	Term          string     `gorm:"size:500" json:"term"`
	OriginalIndex int        `json:"originalIndex"`
	Status        ItemStatus `gorm:"size:20;index;default:pending" json:"status"`

	// Generated content
	Script       string `gorm:"size:500" json:"script,omitempty"`
	Phonetic     string `gorm:"size:500" json:"phonetic,omitempty"`
	Variant      string `gorm:"size:500" json:"variant,omitempty"` // Traditional Chinese / alternate script
	PartOfSpeech string `gorm:"size:100" json:"partOfSpeech,omitempty"`

	Translations TranslationMap `gorm:"type:text" json:"translations"`

	ExampleSentence       string         `gorm:"type:text" json:"exampleSentence,omitempty"`
	ExampleSentenceTokens TokenList      `gorm:"type:text" json:"exampleSentenceTokens,omitempty"`
	ExampleScript         string         `gorm:"type:text" json:"exampleScript,omitempty"`
	ExampleTranslation    string         `gorm:"type:text" json:"exampleTranslation,omitempty"`
	ExampleTranslations   TranslationMap `gorm:"type:text" json:"exampleTranslations"`

	// Generated media, stored as data URI blob references.
	ImageURL    string `gorm:"type:text" json:"imageUrl,omitempty"`
	ImagePrompt string `gorm:"type:text" json:"imagePrompt,omitempty"`
	AudioURL    string `gorm:"type:text" json:"audioUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (VocabItem) TableName() string {
	return "vocab_items"
}

// InContext reports whether the item belongs to the given dataset context.
func (v *VocabItem) InContext(appName, targetLang string) bool {
	return v.AppName == appName && v.TargetLang == targetLang
}

// GenerationResult is the structured linguistic data returned by the
// generation capability for a single term.
type GenerationResult struct {
	Script       string         `json:"script"`
	Phonetic     string         `json:"phonetic"`
	Variant      string         `json:"variant"`
	PartOfSpeech string         `json:"partOfSpeech"`
	Translations TranslationMap `json:"translations"`

	ExampleSentence       string         `json:"exampleSentence"`
	ExampleSentenceTokens TokenList      `json:"exampleSentenceStructure"`
	ExampleScript         string         `json:"exampleScript"`
	ExampleTranslations   TranslationMap `json:"exampleTranslations"`
}

// ApplyTo merges the generated fields into an item. The item's identity,
// context and status are untouched; callers decide the status transition.
func (r *GenerationResult) ApplyTo(item *VocabItem) {
	item.Script = r.Script
	item.Phonetic = r.Phonetic
	item.Variant = r.Variant
	item.PartOfSpeech = r.PartOfSpeech
	if len(r.Translations) > 0 {
		item.Translations = r.Translations
	}
	item.ExampleSentence = r.ExampleSentence
	item.ExampleSentenceTokens = r.ExampleSentenceTokens
	item.ExampleScript = r.ExampleScript
	if len(r.ExampleTranslations) > 0 {
		item.ExampleTranslations = r.ExampleTranslations
	}
}
