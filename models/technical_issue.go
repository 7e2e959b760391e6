package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Technical issue types
const (
	IssueDevice       = "DEVICE"
	IssuePlatform     = "PLATFORM"
	IssueConnectivity = "CONNECTIVITY"
	IssueSecurity     = "SECURITY"
	IssueOther        = "OTHER"
)

// Technical issue severities
const (
	SeverityLow      = "LOW"
	SeverityMedium   = "MEDIUM"
	SeverityHigh     = "HIGH"
	SeverityCritical = "CRITICAL"
)

// TechnicalIssue represents a technical issue report submitted through the
// multi-step issue wizard, optionally carrying uploaded attachments
type TechnicalIssue struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	DeviceID         *string  `json:"device_id,omitempty"`
	IssueType        string   `gorm:"not null" json:"issue_type"` // DEVICE, PLATFORM, CONNECTIVITY, SECURITY, OTHER
	Severity         string   `gorm:"not null" json:"severity"`   // LOW, MEDIUM, HIGH, CRITICAL
	Title            string   `gorm:"not null" json:"title"`
	Description      string   `gorm:"not null" json:"description"`
	StepsToReproduce string   `json:"steps_to_reproduce"`
	ExpectedBehavior string   `json:"expected_behavior"`
	Attachments      []string `gorm:"serializer:json" json:"attachments"` // ordered storage keys
	Status           string   `gorm:"not null;default:NEW;index" json:"status"`

	// Response fields
	Response      *string    `json:"response,omitempty"`
	RespondedByID *string    `gorm:"type:uuid" json:"responded_by_id,omitempty"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`

	// Relationships
	RespondedBy *User `gorm:"foreignKey:RespondedByID" json:"responded_by,omitempty"`
}

// BeforeCreate hook to generate UUID
func (i *TechnicalIssue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

// IsValidIssueType reports whether t is a known issue type
func IsValidIssueType(t string) bool {
	switch t {
	case IssueDevice, IssuePlatform, IssueConnectivity, IssueSecurity, IssueOther:
		return true
	}
	return false
}

// IsValidSeverity reports whether s is a known severity
func IsValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// TableName specifies the table name for TechnicalIssue model
func (TechnicalIssue) TableName() string {
	return "technical_issues"
}
