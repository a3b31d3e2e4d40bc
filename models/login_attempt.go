package models

import (
	"time"
)

// LoginAttempt is an append-only audit record of a failed login.
type LoginAttempt struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"not null;index"`
	FailedAt  time.Time `gorm:"not null"`
	IPAddress string
	UserAgent string
	Location  string
	CreatedAt time.Time
	User      User `gorm:"foreignkey:UserID"`
}
