package model

import (
	"time"

	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// Data and TargetTokens are JSON columns.
type NotificationModel struct {
	ID           int64                       `gorm:"primaryKey;autoIncrement"`
	Title        string                      `gorm:"type:varchar(100);not null"`
	Body         string                      `gorm:"type:varchar(1000);not null"`
	Icon         *string                     `gorm:"type:text"`
	Image        *string                     `gorm:"type:text"`
	ClickAction  *string                     `gorm:"type:text"`
	Data         datatypes.JSONMap           `gorm:"column:data"`
	TargetTokens datatypes.JSONSlice[string] `gorm:"column:target_tokens;not null"`
	SentCount    int                         `gorm:"not null;default:0"`
	SuccessCount int                         `gorm:"not null;default:0"`
	FailureCount int                         `gorm:"not null;default:0"`
	Status       string                      `gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt    time.Time
	SentAt       *time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// DeliveryLogModel is the GORM-specific struct for the 'delivery_logs' table.
// It records the outcome for one token of a multi-target dispatch.
type DeliveryLogModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	NotificationID int64   `gorm:"not null;index"`
	Token          string  `gorm:"type:text;not null"`
	Status         string  `gorm:"type:varchar(16);not null"`
	ErrorMessage   *string `gorm:"type:text"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "delivery_logs"
}
