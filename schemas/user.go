package schemas

import "strings"

// UserUpdateInput is the partial-update payload for the account itself.
// Nil fields are left untouched; username/email changes are not supported
// through this payload.
type UserUpdateInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Image *string `json:"image" validate:"omitempty,url"`
}

// Normalize trims present fields
func (in *UserUpdateInput) Normalize() {
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		in.Name = &n
	}
	if in.Image != nil {
		i := strings.TrimSpace(*in.Image)
		in.Image = &i
	}
}

// ProfileUpdateInput is the partial-update payload for the profile sub-object
type ProfileUpdateInput struct {
	Bio      *string `json:"bio" validate:"omitempty,max=500"`
	Location *string `json:"location" validate:"omitempty,max=100"`
	Website  *string `json:"website" validate:"omitempty,url"`
}

// SocialUpdateInput is the partial-update payload for the social sub-object
type SocialUpdateInput struct {
	Twitter  *string `json:"twitter" validate:"omitempty,max=100"`
	Github   *string `json:"github" validate:"omitempty,max=100"`
	Linkedin *string `json:"linkedin" validate:"omitempty,max=100"`
}
