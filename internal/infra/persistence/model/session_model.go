package model

import (
	"time"
)

// SessionModel mirrors the 'sessions' table. The primary key is the opaque
// identifier carried by the session cookie.
type SessionModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	UserID    int64  `gorm:"not null;index"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
