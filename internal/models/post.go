// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a feed entry. Content may be empty when Media is set.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Content string `gorm:"type:text" json:"content"`
	Media   string `json:"media"`

	// TagRows is the persisted, position-ordered tag list. The external
	// contract exposes it flattened as Tags.
	TagRows []PostTag `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Tags    []string  `gorm:"-" json:"tags"`

	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// IsLiked indicates whether the requesting user liked this post (computed)
	IsLiked bool `gorm:"->" json:"is_liked"`

	// Comments is attached only on single-post reads.
	Comments []*Comment `gorm:"-" json:"comments,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// PostTag is one tag of a post. Position preserves the order the author
// supplied; (post_id, position) forms the primary key.
type PostTag struct {
	PostID   uint   `gorm:"primaryKey;autoIncrement:false" json:"-"`
	Position int    `gorm:"primaryKey;autoIncrement:false" json:"-"`
	Tag      string `gorm:"size:64;not null;index" json:"tag"`
}

// FlattenTags populates Tags from TagRows. TagRows are expected to be
// loaded in position order.
func (p *Post) FlattenTags() {
	p.Tags = make([]string, 0, len(p.TagRows))
	for _, row := range p.TagRows {
		p.Tags = append(p.Tags, row.Tag)
	}
}

// TagCount is one entry of the trending tags ranking.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}
