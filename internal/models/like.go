package models

import "time"

// Like represents a user's like on a post. The composite primary key makes
// the toggle race-safe: concurrent inserts for the same pair collapse to one
// row via ON CONFLICT DO NOTHING.
type Like struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
