package models

import (
	"time"
)

// Entity types comments and ratings can be attached to.
const (
	EntityCompany   = "company"
	EntityHospital  = "hospital"
	EntityContact   = "contact"
	EntityPhysician = "physician"
	EntityUser      = "user"
)

// ValidEntityType reports whether t names a record collection.
func ValidEntityType(t string) bool {
	switch t {
	case EntityCompany, EntityHospital, EntityContact, EntityPhysician, EntityUser:
		return true
	}
	return false
}

type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Uid        string    `gorm:"uniqueIndex;size:36;not null" json:"uid"`
	RecordUID  string    `gorm:"size:36;not null;index:idx_comment_record" json:"record_uid"`
	RecordType string    `gorm:"size:20;not null;index:idx_comment_record" json:"record_type"`
	UserID     uint      `gorm:"not null;index" json:"user_id"` // author
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ParentID   *uint     `gorm:"index" json:"parent_id"` // nil for root comments
	Content    string    `gorm:"type:text;not null" json:"content"`
	Upvotes    IDList    `gorm:"type:jsonb" json:"upvotes"`
	Downvotes  IDList    `gorm:"type:jsonb" json:"downvotes"`
	Score      int       `gorm:"default:0" json:"score"` // always len(Upvotes)-len(Downvotes)
	ModifiedBy uint      `json:"modified_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
