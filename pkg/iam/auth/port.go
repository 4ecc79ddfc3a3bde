package auth

import (
	"context"
	"time"

	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
)

type TokenService interface {
	GenerateAccessToken(userID kernel.UserID) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

type PasswordService interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hash, password string) bool
}

// StateManager stores OAuth state values together with their PKCE verifier.
type StateManager interface {
	StoreState(ctx context.Context, state, verifier string, ttl time.Duration) error
	// ConsumeState returns the verifier for state and forgets it. Unknown or
	// expired states return ErrInvalidOAuthState.
	ConsumeState(ctx context.Context, state string) (string, error)
}

type TokenClaims struct {
	UserID    kernel.UserID
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
