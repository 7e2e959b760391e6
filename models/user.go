package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `gorm:"not null" json:"name"`
	Image    string `json:"image"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:MEMBER" json:"role"` // MEMBER, ADMIN, TENANT_ADMIN

	Profile Profile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	Social  Social  `gorm:"embedded;embeddedPrefix:social_" json:"social"`
}

// Profile holds the optional public profile fields of a user.
// All fields are independently nullable and partial-updatable.
type Profile struct {
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`
	Website  *string `json:"website,omitempty"`
}

// Social holds the optional social links of a user.
type Social struct {
	Twitter  *string `json:"twitter,omitempty"`
	Github   *string `json:"github,omitempty"`
	Linkedin *string `json:"linkedin,omitempty"`
}

// BeforeCreate hook to generate UUID
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// IsAdmin checks if the user can perform admin-only operations
func (u *User) IsAdmin() bool {
	return IsAdminRole(u.Role)
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
