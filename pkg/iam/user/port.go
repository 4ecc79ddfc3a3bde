package user

import (
	"context"

	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
)

type Repository interface {
	// Create inserts the user and fills in its ID and CreatedAt
	Create(ctx context.Context, u *User) error

	// Update persists email, password hash, name and google id
	Update(ctx context.Context, u *User) error

	GetByID(ctx context.Context, id kernel.UserID) (*User, error)
	GetByEmail(ctx context.Context, email kernel.Email) (*User, error)
}
