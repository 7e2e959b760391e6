package schemas

import (
	"regexp"
	"strings"
)

// tagNamePattern is what every persisted tag name must match
var tagNamePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// NormalizeTagName canonicalizes a raw tag name: strips leading '#',
// lowercases, and joins interior whitespace and underscores with hyphens.
// The function is idempotent: NormalizeTagName(NormalizeTagName(s)) ==
// NormalizeTagName(s).
func NormalizeTagName(raw string) string {
	name := strings.TrimSpace(raw)
	name = strings.TrimLeft(name, "#")
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.Join(strings.Fields(name), "-")
	// Collapse runs of hyphens left by mixed separators
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}
	return strings.Trim(name, "-")
}

// IsValidTagName reports whether an already-normalized name is acceptable
func IsValidTagName(name string) bool {
	return name != "" && tagNamePattern.MatchString(name)
}

// TagCreateInput is the payload for creating a tag
type TagCreateInput struct {
	Name       string `json:"name" validate:"required,min=1,max=50"`
	IsOfficial bool   `json:"is_official"`
}

// Normalize canonicalizes the tag name
func (in *TagCreateInput) Normalize() {
	in.Name = NormalizeTagName(in.Name)
}

// Validate runs normalization-aware constraint checks
func (in *TagCreateInput) Validate() error {
	if err := Check(in); err != nil {
		return err
	}
	if !IsValidTagName(in.Name) {
		return ValidationErrors{"name": "name may only contain lowercase letters, digits and hyphens"}
	}
	return nil
}

// TagUpdateInput is the partial-update payload for a tag
type TagUpdateInput struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=50"`
	IsOfficial *bool   `json:"is_official"`
}

// Normalize canonicalizes the tag name when present
func (in *TagUpdateInput) Normalize() {
	if in.Name != nil {
		normalized := NormalizeTagName(*in.Name)
		in.Name = &normalized
	}
}

// Validate runs normalization-aware constraint checks
func (in *TagUpdateInput) Validate() error {
	if err := Check(in); err != nil {
		return err
	}
	if in.Name != nil && !IsValidTagName(*in.Name) {
		return ValidationErrors{"name": "name may only contain lowercase letters, digits and hyphens"}
	}
	return nil
}
