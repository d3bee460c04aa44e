package models

import (
	"time"
)

// Role IDs used by middleware.RequireRole
const (
	RoleMember = 1
	RoleAdmin  = 3
)

type User struct {
	UserID         int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	FirstName      string     `gorm:"column:first_name" json:"first_name"`
	LastName       string     `gorm:"column:last_name" json:"last_name"`
	Username       string     `gorm:"column:username;unique" json:"username"`
	Email          string     `gorm:"column:email;unique" json:"email"`
	Password       string     `gorm:"column:password" json:"-"`
	RoleID         int        `gorm:"column:role_id;default:1" json:"role_id"`
	ProfilePicture *string    `gorm:"column:profile_picture" json:"profile_picture,omitempty"`
	CreateAt       *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt       *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt       *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

// FullName joins first and last name for display and receipts.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
