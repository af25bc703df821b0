package models

import (
	"time"
)

type Company struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Uid         string    `gorm:"uniqueIndex;size:36;not null" json:"uid"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Industry    string    `gorm:"size:100" json:"industry"`
	Website     string    `gorm:"size:255" json:"website"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedBy   uint      `gorm:"index" json:"created_by"`
	ModifiedBy  uint      `json:"modified_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
