package resume

import (
	"encoding/json"
	"time"

	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
)

type CreateResumeRequest struct {
	Title string          `json:"title"`
	Data  json.RawMessage `json:"data"`
}

// UpdateResumeRequest carries the fields to replace. Empty fields are left untouched.
type UpdateResumeRequest struct {
	Title string          `json:"title"`
	Data  json.RawMessage `json:"data"`
}

type ResumeResponse struct {
	ID        kernel.ResumeID `json:"id"`
	Title     string          `json:"title"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ToResumeResponse(r *Resume) *ResumeResponse {
	return &ResumeResponse{
		ID:        r.ID,
		Title:     r.Title,
		Data:      r.Data,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func ToResumeResponses(resumes []*Resume) []*ResumeResponse {
	out := make([]*ResumeResponse, 0, len(resumes))
	for _, r := range resumes {
		out = append(out, ToResumeResponse(r))
	}
	return out
}
