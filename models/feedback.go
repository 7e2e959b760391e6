package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback categories
const (
	FeedbackUI            = "UI"
	FeedbackFeatures      = "FEATURES"
	FeedbackPerformance   = "PERFORMANCE"
	FeedbackDocumentation = "DOCUMENTATION"
	FeedbackGeneral       = "GENERAL"
)

// Feedback represents a product feedback submission
type Feedback struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Category     string   `gorm:"not null" json:"category"` // UI, FEATURES, PERFORMANCE, DOCUMENTATION, GENERAL
	Satisfaction int      `gorm:"not null" json:"satisfaction"`
	Usability    int      `gorm:"not null" json:"usability"`
	Features     []string `gorm:"serializer:json" json:"features"`
	Improvements string   `json:"improvements"`
	Recommend    bool     `json:"recommend"`
	Status       string   `gorm:"not null;default:NEW;index" json:"status"`

	// Response fields
	Response      *string    `json:"response,omitempty"`
	RespondedByID *string    `gorm:"type:uuid" json:"responded_by_id,omitempty"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`

	// Relationships
	RespondedBy *User `gorm:"foreignKey:RespondedByID" json:"responded_by,omitempty"`
}

// BeforeCreate hook to generate UUID
func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

// IsValidFeedbackCategory reports whether c is a known feedback category
func IsValidFeedbackCategory(c string) bool {
	switch c {
	case FeedbackUI, FeedbackFeatures, FeedbackPerformance, FeedbackDocumentation, FeedbackGeneral:
		return true
	}
	return false
}

// TableName specifies the table name for Feedback model
func (Feedback) TableName() string {
	return "feedbacks"
}
