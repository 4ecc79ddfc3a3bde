package jobdescription

import (
	"time"

	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
)

type CreateJobDescriptionRequest struct {
	Title string `json:"title"`
	Text  string `json:"text" validate:"required"`
}

type JobDescriptionResponse struct {
	ID        kernel.JobDescriptionID `json:"id"`
	Title     string                  `json:"title"`
	Text      string                  `json:"text"`
	Keywords  []string                `json:"keywords"`
	CreatedAt time.Time               `json:"created_at"`
}

func ToJobDescriptionResponse(j *JobDescription) *JobDescriptionResponse {
	keywords := j.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return &JobDescriptionResponse{
		ID:        j.ID,
		Title:     j.Title,
		Text:      j.Text,
		Keywords:  keywords,
		CreatedAt: j.CreatedAt,
	}
}

func ToJobDescriptionResponses(jds []*JobDescription) []*JobDescriptionResponse {
	out := make([]*JobDescriptionResponse, 0, len(jds))
	for _, j := range jds {
		out = append(out, ToJobDescriptionResponse(j))
	}
	return out
}
