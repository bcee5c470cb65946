// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultAvatar is served when a user has not set an avatar.
const DefaultAvatar = "/api/placeholder/150/150"

// User represents a registered account. Email and password hash are never
// serialized; public profile reads go through Profile instead.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;not null" json:"-"`
	Password  string         `gorm:"not null" json:"-"`
	Handle    string         `gorm:"uniqueIndex;size:30;not null" json:"handle"`
	Bio       string         `json:"bio"`
	Avatar    string         `json:"avatar"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// Profile is the public view of a user row with per-user aggregates
// computed at query time.
type Profile struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Handle          string    `json:"handle"`
	Bio             string    `json:"bio"`
	Avatar          string    `json:"avatar"`
	CreatedAt       time.Time `json:"created_at"`
	PostsCount      int64     `gorm:"->" json:"posts_count"`
	LikesGivenCount int64     `gorm:"->" json:"likes_given_count"`
}

// TableName maps Profile onto the users table.
func (Profile) TableName() string { return "users" }
