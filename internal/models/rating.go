package models

import (
	"time"
)

// Rating is a 1-5 star rating of a record. One row per (user, record); a
// second rating by the same user replaces the first.
type Rating struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index;uniqueIndex:idx_user_record" json:"user_id"`
	RecordUID  string    `gorm:"size:36;not null;index;uniqueIndex:idx_user_record" json:"record_uid"`
	RecordType string    `gorm:"size:20;not null" json:"record_type"`
	Score      int       `gorm:"not null" json:"score"` // 1-5
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
