// Package model contains the GORM persistence models mirroring the
// database tables.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The address is embedded as flat
// columns since it has no identity of its own.
type UserModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(100);not null;index"`
	Email         string `gorm:"type:varchar(255);unique;not null"`
	Login         string `gorm:"type:varchar(100);unique;not null"`
	Password      string `gorm:"type:varchar(255);not null"`
	Type          string `gorm:"type:varchar(20)"`
	AddressStreet string `gorm:"type:varchar(255)"`
	AddressNumber string `gorm:"type:varchar(20)"`
	AddressCity   string `gorm:"type:varchar(100)"`
	AddressZip    string `gorm:"type:varchar(20)"`
	CreatedAt     time.Time
	LastUpdated   time.Time `gorm:"autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
