package models

import (
	"time"
)

// LoginEvent is an append-only audit record of a successful login.
// PasswordHash is copied from the user at login time, never re-derived.
type LoginEvent struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(50);not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(200);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
