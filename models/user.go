package models

import (
	"time"
)

type User struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"unique;not null"`
	Nickname     string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	LoginAttempts   []LoginAttempt   `gorm:"foreignkey:UserID"`
	GeneratedImages []GeneratedImage `gorm:"foreignkey:UserID"`
}
