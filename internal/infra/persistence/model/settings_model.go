package model

import "time"

// SettingsSingletonID is the fixed primary key of the one settings row.
const SettingsSingletonID = 1

// StoreSettingsModel is the GORM-specific struct for the 'store_settings'
// table. Exactly one row exists per deployment; admin saves replace the
// whole document, so it is stored as a single JSONB payload.
type StoreSettingsModel struct {
	ID        int    `gorm:"primary_key"`
	Data      []byte `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreSettingsModel) TableName() string {
	return "store_settings"
}
