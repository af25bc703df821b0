package models

import (
	"time"
)

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Uid       string     `gorm:"uniqueIndex;size:36;not null" json:"uid"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Name      string     `gorm:"size:100" json:"name"`
	Password  string     `gorm:"not null" json:"-"` // bcrypt hash
	Role      string     `gorm:"size:20;default:'corporate';not null" json:"role"`
	Points    int        `gorm:"default:0" json:"points"` // mutated only via point transactions
	Following StringList `gorm:"type:jsonb" json:"following"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// DisplayName prefers the profile name and falls back to the email address.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
