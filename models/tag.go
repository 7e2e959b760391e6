package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag represents a normalized content tag. Name is always lowercase with only
// letters, digits and hyphens; normalization happens in the input schemas
// before a tag ever reaches persistence.
type Tag struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name       string `gorm:"uniqueIndex;not null" json:"name"`
	IsOfficial bool   `gorm:"not null;default:false" json:"is_official"`

	// PostCount is not persisted; computed at query time
	PostCount int64 `gorm:"-" json:"post_count"`
}

// BeforeCreate hook to generate UUID
func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Tag model
func (Tag) TableName() string {
	return "tags"
}
