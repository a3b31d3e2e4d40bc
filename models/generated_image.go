package models

import (
	"time"
)

// GeneratedImage links a prompt, the provider model that rendered it and the
// stored file to its owning user. Rows are never updated once created.
type GeneratedImage struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index"`
	Prompt    string `gorm:"type:text;not null"`
	ImageURL  string `gorm:"not null"`
	Model     string `gorm:"not null"`
	Size      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	User      User `gorm:"foreignkey:UserID"`
}
