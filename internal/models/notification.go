package models

import (
	"time"
)

type NotificationType string

const (
	NotificationTypeUpdate  NotificationType = "update"
	NotificationTypeComment NotificationType = "comment"
	NotificationTypeMention NotificationType = "mention"
	NotificationTypeSystem  NotificationType = "system"
)

type Notification struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	UserID     uint             `gorm:"not null;index" json:"user_id"` // receiver
	User       User             `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ActorID    *uint            `gorm:"index" json:"actor_id"` // who triggered it, if anyone
	Actor      User             `gorm:"foreignKey:ActorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"actor"`
	RecordUID  string           `gorm:"size:36;index" json:"record_uid"`
	RecordType string           `gorm:"size:20" json:"record_type"`
	Type       NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Message    string           `gorm:"type:text" json:"message"`
	IsRead     bool             `gorm:"default:false;index" json:"is_read"`
	CreatedAt  time.Time        `json:"created_at"`
}
