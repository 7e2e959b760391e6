package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTagName(t *testing.T) {
	cases := map[string]string{
		"#Fleet_Management":  "fleet-management",
		"  Device Health  ":  "device-health",
		"firmware":           "firmware",
		"A__B  C":            "a-b-c",
		"#tag":               "tag",
		"###tag":             "tag",
		"###":                "",
		"-leading-trailing-": "leading-trailing",
	}

	for raw, want := range cases {
		assert.Equal(t, want, NormalizeTagName(raw), "raw %q", raw)
	}
}

func TestNormalizeTagNameIsIdempotent(t *testing.T) {
	inputs := []string{"#Fleet_Management", "already-normalized", "  Mixed Case_Name  ", "###", "a--b"}
	for _, raw := range inputs {
		once := NormalizeTagName(raw)
		assert.Equal(t, once, NormalizeTagName(once), "raw %q", raw)
	}
}

func TestRegisterInputValidation(t *testing.T) {
	valid := func() RegisterInput {
		return RegisterInput{
			Username: "alice",
			Email:    "alice@test.com",
			Password: "password123",
			Name:     "Alice",
		}
	}

	t.Run("Valid input passes", func(t *testing.T) {
		in := valid()
		assert.NoError(t, Check(&in))
	})

	t.Run("Short username reports the json field name", func(t *testing.T) {
		in := valid()
		in.Username = "ab"

		err := Check(&in)
		assert.Error(t, err)

		var fieldErrs ValidationErrors
		assert.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, "username")
		assert.Contains(t, fieldErrs["username"], "at least 3")
	})

	t.Run("Non-alphanumeric username is rejected", func(t *testing.T) {
		in := valid()
		in.Username = "bad name!"

		err := Check(&in)
		assert.Error(t, err)
	})

	t.Run("Malformed email is rejected", func(t *testing.T) {
		in := valid()
		in.Email = "not-an-email"

		var fieldErrs ValidationErrors
		assert.ErrorAs(t, Check(&in), &fieldErrs)
		assert.Contains(t, fieldErrs, "email")
	})

	t.Run("Normalize lowercases and trims", func(t *testing.T) {
		in := valid()
		in.Email = "  Alice@Test.COM "
		in.Username = " Alice "
		in.Normalize()

		assert.Equal(t, "alice@test.com", in.Email)
		assert.Equal(t, "alice", in.Username)
	})
}

func TestFeedbackInputValidation(t *testing.T) {
	valid := func() FeedbackInput {
		return FeedbackInput{
			Category:     "FEATURES",
			Satisfaction: 4,
			Usability:    3,
			Recommend:    true,
		}
	}

	t.Run("Scores outside 1..5 fail", func(t *testing.T) {
		in := valid()
		in.Satisfaction = 0
		assert.Error(t, Check(&in))

		in = valid()
		in.Usability = 6
		assert.Error(t, Check(&in))
	})

	t.Run("Unknown category fails", func(t *testing.T) {
		in := valid()
		in.Category = "SPEED"
		assert.Error(t, Check(&in))
	})
}

func TestSupportRequestInputDefaults(t *testing.T) {
	in := SupportRequestInput{
		Category:    "DEVICES",
		Subject:     "Gateway will not pair",
		Description: "Pairing times out after sixty seconds.",
	}
	in.Normalize()

	assert.Equal(t, "MEDIUM", in.Priority)
	assert.NoError(t, Check(&in))
}

func TestQueryUpdateInputValidation(t *testing.T) {
	t.Run("Empty update is allowed", func(t *testing.T) {
		in := QueryUpdateInput{}
		assert.NoError(t, Check(&in))
	})

	t.Run("Unknown status fails", func(t *testing.T) {
		status := "DONE"
		in := QueryUpdateInput{Status: &status}
		assert.Error(t, Check(&in))
	})

	t.Run("Known status passes", func(t *testing.T) {
		status := "RESOLVED"
		in := QueryUpdateInput{Status: &status}
		assert.NoError(t, Check(&in))
	})
}

func TestTagCreateInputValidate(t *testing.T) {
	t.Run("Normalizes then accepts", func(t *testing.T) {
		in := TagCreateInput{Name: "#Device_Health"}
		in.Normalize()
		assert.NoError(t, in.Validate())
		assert.Equal(t, "device-health", in.Name)
	})

	t.Run("Rejects names that normalize to invalid", func(t *testing.T) {
		in := TagCreateInput{Name: "###"}
		in.Normalize()
		assert.Error(t, in.Validate())
	})
}
