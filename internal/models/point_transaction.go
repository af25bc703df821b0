package models

import (
	"time"
)

// PointTransaction is an append-only ledger entry. Rows are never updated or
// deleted; the running sum per user mirrors User.Points.
type PointTransaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Points    int       `gorm:"not null" json:"points"`            // signed delta
	Reason    string    `gorm:"size:100;not null" json:"reason"`   // e.g. "Add Comment"
	CreatedAt time.Time `json:"created_at"`
}
