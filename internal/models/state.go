package models

import "time"

// StateEntry is one row of the local key-value state store: serialized
// session, active context, tracking id, keyed by stable names.
type StateEntry struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (StateEntry) TableName() string {
	return "app_state"
}

// Well-known state keys.
const (
	StateKeySession     = "session"      // JSON-encoded User of the active session
	StateKeyLastContext = "last_context" // JSON-encoded {appName, langCode}
	StateKeyTrackingID  = "tracking_id"  // Anonymous telemetry id
)

// Context identifies the (appName, targetLang) partition of the catalog
// that list and processing operations are scoped to.
type Context struct {
	AppName  string `json:"appName"`
	LangCode string `json:"langCode"`
}
