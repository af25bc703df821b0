package models

import (
	"time"
)

type Hospital struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Uid         string    `gorm:"uniqueIndex;size:36;not null" json:"uid"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Type        string    `gorm:"size:100" json:"type"` // e.g. teaching, community
	Beds        int       `json:"beds"`
	Address     string    `gorm:"size:255" json:"address"`
	Website     string    `gorm:"size:255" json:"website"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedBy   uint      `gorm:"index" json:"created_by"`
	ModifiedBy  uint      `json:"modified_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
