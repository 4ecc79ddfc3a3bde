package resume

import (
	"context"

	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
)

// Repository scopes every lookup by owner; a resume owned by someone else is
// reported as not found.
type Repository interface {
	Create(ctx context.Context, r *Resume) error

	// Update persists title, data and updated_at of a resume owned by r.UserID
	Update(ctx context.Context, r *Resume) error

	GetByID(ctx context.Context, id kernel.ResumeID, userID kernel.UserID) (*Resume, error)

	// ListByUser returns the user's resumes, most recently updated first
	ListByUser(ctx context.Context, userID kernel.UserID) ([]*Resume, error)

	Delete(ctx context.Context, id kernel.ResumeID, userID kernel.UserID) error
}
