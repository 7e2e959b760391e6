package schemas

import "strings"

// RegisterInput is the payload for credentials registration
type RegisterInput struct {
	Username     string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6,max=72"`
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Image        string `json:"image" validate:"omitempty,url"`
	CaptchaToken string `json:"captcha_token"`
}

// Normalize trims whitespace and lowercases the identity fields
func (in *RegisterInput) Normalize() {
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	in.Image = strings.TrimSpace(in.Image)
}

// LoginInput is the payload for credentials login
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Normalize trims and lowercases the email
func (in *LoginInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}
