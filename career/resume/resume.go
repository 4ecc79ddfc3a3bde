package resume

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
)

const DefaultTitle = "Untitled Resume"

// Resume is a user's resume. Data holds the document exactly as the client sent it.
type Resume struct {
	ID        kernel.ResumeID `db:"id" json:"id"`
	UserID    kernel.UserID   `db:"user_id" json:"user_id"`
	Title     string          `db:"title" json:"title"`
	Data      json.RawMessage `db:"data" json:"data"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// New creates a resume owned by userID. An empty title falls back to DefaultTitle.
func New(userID kernel.UserID, title string, data json.RawMessage) *Resume {
	if title == "" {
		title = DefaultTitle
	}
	now := time.Now()
	return &Resume{
		ID:        kernel.GenerateResumeID(),
		UserID:    userID,
		Title:     title,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ============================================================================
// Domain Methods
// ============================================================================

// ApplyUpdate sets the non-empty fields of req and reports whether anything changed.
func (r *Resume) ApplyUpdate(req UpdateResumeRequest) bool {
	changed := false
	if req.Title != "" {
		r.Title = req.Title
		changed = true
	}
	if !IsEmptyData(req.Data) {
		r.Data = req.Data
		changed = true
	}
	if changed {
		r.UpdatedAt = time.Now()
	}
	return changed
}

// Document decodes Data into its typed form.
func (r *Resume) Document() (Document, error) {
	return ParseDocument(r.Data)
}

// IsEmptyData reports whether raw is absent or an empty JSON value
// (null, {}, [], "", false or 0).
func IsEmptyData(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true
	}

	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	}
	return false
}
