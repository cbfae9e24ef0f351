package model

import (
	"time"
)

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
type DeviceTokenModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Token     string  `gorm:"type:text;not null;uniqueIndex"`
	OwnerID   *string `gorm:"type:text;index"`
	Platform  string  `gorm:"type:varchar(16);not null;default:'web'"`
	UserAgent *string `gorm:"type:text"`
	IsActive  bool    `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
