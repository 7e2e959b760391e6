package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Support request categories
const (
	SupportAccount  = "ACCOUNT"
	SupportDevices  = "DEVICES"
	SupportPlatform = "PLATFORM"
	SupportOther    = "OTHER"
)

// Support request priorities
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// SupportRequest represents a support request submitted by a user
type SupportRequest struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Category    string `gorm:"not null" json:"category"` // ACCOUNT, DEVICES, PLATFORM, OTHER
	Subject     string `gorm:"not null" json:"subject"`
	Description string `gorm:"not null" json:"description"`
	Priority    string `gorm:"not null;default:MEDIUM" json:"priority"` // LOW, MEDIUM, HIGH
	Status      string `gorm:"not null;default:NEW;index" json:"status"`

	// Response fields
	Response      *string    `json:"response,omitempty"`
	RespondedByID *string    `gorm:"type:uuid" json:"responded_by_id,omitempty"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`

	// Relationships
	RespondedBy *User `gorm:"foreignKey:RespondedByID" json:"responded_by,omitempty"`
}

// BeforeCreate hook to generate UUID
func (r *SupportRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// IsValidSupportCategory reports whether c is a known support category
func IsValidSupportCategory(c string) bool {
	switch c {
	case SupportAccount, SupportDevices, SupportPlatform, SupportOther:
		return true
	}
	return false
}

// IsValidPriority reports whether p is a known priority
func IsValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TableName specifies the table name for SupportRequest model
func (SupportRequest) TableName() string {
	return "support_requests"
}
