package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inquiry types for contact queries
const (
	InquiryPartnership = "PARTNERSHIP"
	InquirySales       = "SALES"
	InquiryMedia       = "MEDIA"
	InquiryGeneral     = "GENERAL"
)

// ContactQuery represents a message submitted via the public contact form
type ContactQuery struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string `gorm:"not null" json:"name"`
	Organization string `json:"organization"`
	Email        string `gorm:"not null;index" json:"email"`
	Phone        string `json:"phone"`
	InquiryType  string `gorm:"not null" json:"inquiry_type"` // PARTNERSHIP, SALES, MEDIA, GENERAL
	Message      string `gorm:"not null" json:"message"`
	Status       string `gorm:"not null;default:NEW;index" json:"status"`

	// Response fields
	Response      *string    `json:"response,omitempty"`
	RespondedByID *string    `gorm:"type:uuid" json:"responded_by_id,omitempty"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`

	// Relationships
	RespondedBy *User `gorm:"foreignKey:RespondedByID" json:"responded_by,omitempty"`
}

// BeforeCreate hook to generate UUID
func (q *ContactQuery) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	return nil
}

// IsValidInquiryType reports whether t is a known inquiry type
func IsValidInquiryType(t string) bool {
	switch t {
	case InquiryPartnership, InquirySales, InquiryMedia, InquiryGeneral:
		return true
	}
	return false
}

// TableName specifies the table name for ContactQuery model
func (ContactQuery) TableName() string {
	return "contact_queries"
}
