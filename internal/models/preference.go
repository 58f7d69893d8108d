package models

import (
	"time"

	"gorm.io/datatypes"
)

// Persisted preference keys.
const (
	PrefUserSettings = "user_settings"
	PrefFavorites    = "favorites"
	PrefChatHistory  = "chat_history"
)

// Preference is one whole-value row of the key/value store.
type Preference struct {
	ID        uint           `gorm:"primaryKey"`
	Key       string         `gorm:"size:100;uniqueIndex;not null"`
	Value     datatypes.JSON `gorm:"type:text"`
	UpdatedAt time.Time
}
