package models

import (
	"time"
)

// Contact is a non-user business contact.
type Contact struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Uid        string    `gorm:"uniqueIndex;size:36;not null" json:"uid"`
	FirstName  string    `gorm:"size:100;not null" json:"first_name"`
	LastName   string    `gorm:"size:100;not null" json:"last_name"`
	Email      string    `gorm:"size:255" json:"email"`
	Phone      string    `gorm:"size:50" json:"phone"`
	Title      string    `gorm:"size:100" json:"title"`
	Company    string    `gorm:"size:200" json:"company"`
	CreatedBy  uint      `gorm:"index" json:"created_by"`
	ModifiedBy uint      `json:"modified_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
