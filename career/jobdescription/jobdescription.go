package jobdescription

import (
	"time"

	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
)

const DefaultTitle = "Untitled Job Description"

// JobDescription is a job posting saved by a user. Keywords are extracted once,
// when the description is created.
type JobDescription struct {
	ID        kernel.JobDescriptionID `db:"id" json:"id"`
	UserID    kernel.UserID           `db:"user_id" json:"user_id"`
	Title     string                  `db:"title" json:"title"`
	Text      string                  `db:"text" json:"text"`
	Keywords  []string                `db:"keywords" json:"keywords"`
	CreatedAt time.Time               `db:"created_at" json:"created_at"`
}

// New creates a job description owned by userID. An empty title falls back to DefaultTitle.
func New(userID kernel.UserID, title, text string, keywords []string) *JobDescription {
	if title == "" {
		title = DefaultTitle
	}
	return &JobDescription{
		ID:        kernel.GenerateJobDescriptionID(),
		UserID:    userID,
		Title:     title,
		Text:      text,
		Keywords:  keywords,
		CreatedAt: time.Now(),
	}
}

func (j *JobDescription) HasKeywords() bool {
	return len(j.Keywords) > 0
}
