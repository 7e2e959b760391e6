package schemas

import "strings"

// ContactQueryInput is the payload of the public contact form
type ContactQueryInput struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Organization string `json:"organization" validate:"max=200"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"max=30"`
	InquiryType  string `json:"inquiry_type" validate:"required,oneof=PARTNERSHIP SALES MEDIA GENERAL"`
	Message      string `json:"message" validate:"required,min=10,max=5000"`
	CaptchaToken string `json:"captcha_token"`
}

// Normalize trims the free-text identity fields
func (in *ContactQueryInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Organization = strings.TrimSpace(in.Organization)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)
}

// FeedbackInput is the payload of the feedback form
type FeedbackInput struct {
	Category     string   `json:"category" validate:"required,oneof=UI FEATURES PERFORMANCE DOCUMENTATION GENERAL"`
	Satisfaction int      `json:"satisfaction" validate:"gte=1,lte=5"`
	Usability    int      `json:"usability" validate:"gte=1,lte=5"`
	Features     []string `json:"features" validate:"dive,min=1,max=100"`
	Improvements string   `json:"improvements" validate:"max=5000"`
	Recommend    bool     `json:"recommend"`
}

// Normalize trims the free-text fields
func (in *FeedbackInput) Normalize() {
	in.Improvements = strings.TrimSpace(in.Improvements)
	for i, f := range in.Features {
		in.Features[i] = strings.TrimSpace(f)
	}
}

// SupportRequestInput is the payload of the support request form
type SupportRequestInput struct {
	Category    string `json:"category" validate:"required,oneof=ACCOUNT DEVICES PLATFORM OTHER"`
	Subject     string `json:"subject" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required,min=10,max=5000"`
	Priority    string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// Normalize trims the free-text fields and defaults the priority
func (in *SupportRequestInput) Normalize() {
	in.Subject = strings.TrimSpace(in.Subject)
	in.Description = strings.TrimSpace(in.Description)
	if in.Priority == "" {
		in.Priority = "MEDIUM"
	}
}

// TechnicalIssueInput is the payload assembled by the issue-report wizard
type TechnicalIssueInput struct {
	DeviceID         *string  `json:"device_id" validate:"omitempty,max=100"`
	IssueType        string   `json:"issue_type" validate:"required,oneof=DEVICE PLATFORM CONNECTIVITY SECURITY OTHER"`
	Severity         string   `json:"severity" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	Title            string   `json:"title" validate:"required,min=3,max=200"`
	Description      string   `json:"description" validate:"required,min=10,max=10000"`
	StepsToReproduce string   `json:"steps_to_reproduce" validate:"max=10000"`
	ExpectedBehavior string   `json:"expected_behavior" validate:"max=10000"`
	Attachments      []string `json:"attachments" validate:"max=10,dive,min=1"`
}

// Normalize trims the free-text fields
func (in *TechnicalIssueInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.StepsToReproduce = strings.TrimSpace(in.StepsToReproduce)
	in.ExpectedBehavior = strings.TrimSpace(in.ExpectedBehavior)
}

// QueryUpdateInput is the admin mutation payload shared by all query entities.
// Both fields are optional; absent fields are left untouched.
type QueryUpdateInput struct {
	Status   *string `json:"status" validate:"omitempty,oneof=NEW IN_PROGRESS RESOLVED CANCELLED"`
	Response *string `json:"response" validate:"omitempty,min=1,max=10000"`
}
