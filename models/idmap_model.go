package models

import (
	"gorm.io/gorm"
)

// IDMapping pins a legacy (non-snowflake) record identifier to a durable
// UUID. Rows imported from older spreadsheets carry free-form IDs; the
// mapping table replaces the old hash-to-UUID coercion so collisions
// cannot occur.
type IDMapping struct {
	gorm.Model
	LocalID   string `json:"local_id" gorm:"unique;not null"`
	DurableID string `json:"durable_id" gorm:"unique;not null"`
}
