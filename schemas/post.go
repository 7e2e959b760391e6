package schemas

import "strings"

// PostCreateInput is the payload for creating a post
type PostCreateInput struct {
	Title      string   `json:"title" validate:"required,min=3,max=200"`
	Excerpt    string   `json:"excerpt" validate:"required,min=3,max=500"`
	Content    string   `json:"content" validate:"required,min=10"`
	Tags       []string `json:"tags" validate:"max=10,dive,min=1,max=50"`
	IsOfficial bool     `json:"is_official"`
	RelatedIDs []string `json:"related_ids" validate:"max=10,dive,uuid"`
}

// Normalize trims the text fields and canonicalizes tag names
func (in *PostCreateInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Excerpt = strings.TrimSpace(in.Excerpt)
	for i, t := range in.Tags {
		in.Tags[i] = NormalizeTagName(t)
	}
}

// Validate runs normalization-aware constraint checks
func (in *PostCreateInput) Validate() error {
	if err := Check(in); err != nil {
		return err
	}
	for _, t := range in.Tags {
		if !IsValidTagName(t) {
			return ValidationErrors{"tags": "tag names may only contain lowercase letters, digits and hyphens"}
		}
	}
	return nil
}

// PostUpdateInput is the partial-update payload for a post. Nil fields are
// left untouched by the mutation.
type PostUpdateInput struct {
	Title      *string   `json:"title" validate:"omitempty,min=3,max=200"`
	Excerpt    *string   `json:"excerpt" validate:"omitempty,min=3,max=500"`
	Content    *string   `json:"content" validate:"omitempty,min=10"`
	Tags       *[]string `json:"tags" validate:"omitempty,max=10,dive,min=1,max=50"`
	IsOfficial *bool     `json:"is_official"`
	RelatedIDs *[]string `json:"related_ids" validate:"omitempty,max=10,dive,uuid"`
}

// Normalize trims present text fields and canonicalizes tag names
func (in *PostUpdateInput) Normalize() {
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		in.Title = &t
	}
	if in.Excerpt != nil {
		e := strings.TrimSpace(*in.Excerpt)
		in.Excerpt = &e
	}
	if in.Tags != nil {
		for i, t := range *in.Tags {
			(*in.Tags)[i] = NormalizeTagName(t)
		}
	}
}

// Validate runs normalization-aware constraint checks
func (in *PostUpdateInput) Validate() error {
	if err := Check(in); err != nil {
		return err
	}
	if in.Tags != nil {
		for _, t := range *in.Tags {
			if !IsValidTagName(t) {
				return ValidationErrors{"tags": "tag names may only contain lowercase letters, digits and hyphens"}
			}
		}
	}
	return nil
}
