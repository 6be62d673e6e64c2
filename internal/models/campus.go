package models

import (
	"time"

	"gorm.io/gorm"
)

// Campus is a stored campus directory entry. Position keeps the selector
// order stable.
type Campus struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Label    string `gorm:"type:varchar(255);uniqueIndex" json:"label"`
	Address  string `gorm:"type:text" json:"address"`
	Position int    `gorm:"index" json:"position"`
}
