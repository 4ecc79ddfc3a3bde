package jobdescription

import (
	"context"

	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
)

// Repository scopes every lookup by owner.
type Repository interface {
	Create(ctx context.Context, j *JobDescription) error
	GetByID(ctx context.Context, id kernel.JobDescriptionID, userID kernel.UserID) (*JobDescription, error)

	// ListByUser returns the user's job descriptions, newest first
	ListByUser(ctx context.Context, userID kernel.UserID) ([]*JobDescription, error)

	Delete(ctx context.Context, id kernel.JobDescriptionID, userID kernel.UserID) error
}

// KeywordExtractor pulls the key skills and technologies out of a job description.
type KeywordExtractor interface {
	ExtractKeywords(ctx context.Context, text string) ([]string, error)
}
