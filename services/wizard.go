package services

import "sync"

// IssueDraft is the transient state of the multi-step issue-report wizard.
// It is a value type: every operation returns a new draft and never mutates
// the receiver, so callers can treat drafts as immutable snapshots. Drafts
// live only in memory and disappear on submit, reset or process restart.
type IssueDraft struct {
	CurrentStep  int                    `json:"current_step"`
	IsSubmitting bool                   `json:"is_submitting"`
	Fields       map[string]interface{} `json:"fields"`
	Files        []string               `json:"files"`
}

// NewIssueDraft returns an empty draft at step 0
func NewIssueDraft() IssueDraft {
	return IssueDraft{Fields: map[string]interface{}{}}
}

func (d IssueDraft) cloneFields() map[string]interface{} {
	out := make(map[string]interface{}, len(d.Fields))
	for k, v := range d.Fields {
		out[k] = v
	}
	return out
}

// MergeFormData merges partial form data into the draft and moves it to the
// given step. Existing fields not present in partial are kept.
func (d IssueDraft) MergeFormData(step int, partial map[string]interface{}) IssueDraft {
	fields := d.cloneFields()
	for k, v := range partial {
		fields[k] = v
	}
	d.Fields = fields
	d.CurrentStep = step
	return d
}

// WithStep moves the draft to the given step. There is no linear-progression
// guard: callers may jump to any step.
func (d IssueDraft) WithStep(step int) IssueDraft {
	d.CurrentStep = step
	return d
}

// WithFiles replaces the ordered attachment key list
func (d IssueDraft) WithFiles(files []string) IssueDraft {
	d.Files = append([]string(nil), files...)
	return d
}

// WithSubmitting sets the submission-in-flight flag
func (d IssueDraft) WithSubmitting(v bool) IssueDraft {
	d.IsSubmitting = v
	return d
}

// Reset restores the initial defaults (wizard restart or post-submit cleanup)
func (d IssueDraft) Reset() IssueDraft {
	return NewIssueDraft()
}

// FormData projects the fields relevant to the final submission payload,
// dropping UI-only state (current step, submitting flag). Uploaded attachment
// keys are included under "attachments".
func (d IssueDraft) FormData() map[string]interface{} {
	out := d.cloneFields()
	if len(d.Files) > 0 {
		out["attachments"] = append([]string(nil), d.Files...)
	}
	return out
}

// DraftStore keeps issue drafts keyed by session token. State is scoped to
// one session and never persisted.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]IssueDraft
}

// NewDraftStore creates an empty draft store
func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]IssueDraft)}
}

// Get returns the draft for a session, or a fresh draft if none exists
func (s *DraftStore) Get(sessionToken string) IssueDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.drafts[sessionToken]; ok {
		return d
	}
	return NewIssueDraft()
}

// Put stores the draft for a session
func (s *DraftStore) Put(sessionToken string, d IssueDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[sessionToken] = d
}

// Delete drops the draft for a session
func (s *DraftStore) Delete(sessionToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionToken)
}

// IssueDrafts is the global draft store used by the issue wizard handlers
var IssueDrafts = NewDraftStore()
