package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueDraft(t *testing.T) {
	t.Run("MergeFormData accumulates without mutating the original", func(t *testing.T) {
		base := NewIssueDraft().MergeFormData(1, map[string]interface{}{"issue_type": "DEVICE"})
		next := base.MergeFormData(2, map[string]interface{}{"title": "Sensor offline"})

		assert.Equal(t, 1, base.CurrentStep)
		assert.NotContains(t, base.Fields, "title")

		assert.Equal(t, 2, next.CurrentStep)
		assert.Equal(t, "DEVICE", next.Fields["issue_type"])
		assert.Equal(t, "Sensor offline", next.Fields["title"])
	})

	t.Run("Later values win", func(t *testing.T) {
		draft := NewIssueDraft().
			MergeFormData(1, map[string]interface{}{"severity": "LOW"}).
			MergeFormData(1, map[string]interface{}{"severity": "HIGH"})

		assert.Equal(t, "HIGH", draft.Fields["severity"])
	})

	t.Run("FormData projects files as attachments", func(t *testing.T) {
		draft := NewIssueDraft().
			MergeFormData(2, map[string]interface{}{"title": "x"}).
			WithFiles([]string{"others/a.bin"})

		data := draft.FormData()
		assert.Equal(t, "x", data["title"])
		assert.Equal(t, []string{"others/a.bin"}, data["attachments"])
	})

	t.Run("Reset returns the zero draft", func(t *testing.T) {
		draft := NewIssueDraft().
			MergeFormData(3, map[string]interface{}{"title": "x"}).
			WithFiles([]string{"others/a.bin"}).
			WithSubmitting(true).
			Reset()

		assert.Equal(t, 0, draft.CurrentStep)
		assert.Empty(t, draft.Fields)
		assert.Empty(t, draft.Files)
		assert.False(t, draft.IsSubmitting)
	})
}

func TestDraftStore(t *testing.T) {
	t.Run("Drafts are isolated per session", func(t *testing.T) {
		store := NewDraftStore()
		store.Put("session-a", NewIssueDraft().WithStep(2))

		assert.Equal(t, 2, store.Get("session-a").CurrentStep)
		assert.Equal(t, 0, store.Get("session-b").CurrentStep)
	})

	t.Run("Delete forgets the draft", func(t *testing.T) {
		store := NewDraftStore()
		store.Put("session-a", NewIssueDraft().WithStep(3))
		store.Delete("session-a")

		assert.Equal(t, 0, store.Get("session-a").CurrentStep)
	})
}
