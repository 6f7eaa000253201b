// Package models contains data models for the API service.
package models

import "time"

// User represents an authenticated principal. The role is fixed at
// registration time; tokens only ever carry the snapshot taken at login.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;not null"`
	Role         int       `json:"role" gorm:"column:role;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "user"
}
