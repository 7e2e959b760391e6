package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post ordering modes for listing
const (
	OrderLatest   = "latest"
	OrderPopular  = "popular"
	OrderOfficial = "official"
)

// Post represents a blog/community post
type Post struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string    `gorm:"not null" json:"title"`
	Excerpt     string    `gorm:"not null" json:"excerpt"`
	Content     string    `gorm:"not null" json:"content"`
	PublishedAt time.Time `gorm:"index" json:"published_at"`

	ViewCount    int64 `gorm:"not null;default:0" json:"view_count"`
	LikeCount    int64 `gorm:"not null;default:0" json:"like_count"`
	CommentCount int64 `gorm:"not null;default:0" json:"comment_count"`
	IsOfficial   bool  `gorm:"not null;default:false;index" json:"is_official"`

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`

	// Relationships
	User    *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tags    []Tag   `gorm:"many2many:post_tags" json:"tags"`
	Related []*Post `gorm:"many2many:related_posts;joinForeignKey:PostID;joinReferences:RelatedPostID" json:"related,omitempty"`
}

// PostTag is the join row between posts and tags. It snapshots the tag name
// so listings survive tag renames without an extra join.
type PostTag struct {
	PostID    string    `gorm:"type:uuid;primarykey" json:"post_id"`
	TagID     string    `gorm:"type:uuid;primarykey" json:"tag_id"`
	TagName   string    `gorm:"not null" json:"tag_name"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate hook to generate UUID and stamp the publish time
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.PublishedAt.IsZero() {
		p.PublishedAt = time.Now()
	}
	return nil
}

// IsValidPostOrder reports whether o is a known listing order
func IsValidPostOrder(o string) bool {
	switch o {
	case OrderLatest, OrderPopular, OrderOfficial:
		return true
	}
	return false
}

// TableName specifies the table name for Post model
func (Post) TableName() string {
	return "posts"
}

// TableName specifies the table name for PostTag model
func (PostTag) TableName() string {
	return "post_tags"
}
