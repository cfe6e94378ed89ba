package models

// AppDefinition names a product whose vocabulary datasets live in the
// catalog. Names are unique case-insensitively; definitions are created
// on demand when a new dataset context is introduced.
type AppDefinition struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"size:255;uniqueIndex" json:"name"`
}

// TableName specifies the table name for GORM.
func (AppDefinition) TableName() string {
	return "app_definitions"
}
