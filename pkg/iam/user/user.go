package user

import (
	"time"

	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
)

type User struct {
	ID           kernel.UserID    `db:"id" json:"id"`
	Email        kernel.Email     `db:"email" json:"email"`
	PasswordHash *string          `db:"password_hash" json:"-"`
	Name         string           `db:"name" json:"name"`
	GoogleID     *kernel.GoogleID `db:"google_id" json:"-"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
}

// PublicUser is the part of a user exposed by the API.
type PublicUser struct {
	ID    kernel.UserID `json:"id"`
	Email kernel.Email  `json:"email"`
	Name  string        `json:"name"`
}

// NewPasswordUser creates a user that signs in with email and password.
func NewPasswordUser(email kernel.Email, passwordHash, name string) *User {
	return &User{
		Email:        email,
		PasswordHash: &passwordHash,
		Name:         name,
		CreatedAt:    time.Now(),
	}
}

// NewGoogleUser creates a user bound to a Google account, without a password.
func NewGoogleUser(googleID kernel.GoogleID, email kernel.Email, name string) *User {
	return &User{
		Email:     email,
		Name:      name,
		GoogleID:  &googleID,
		CreatedAt: time.Now(),
	}
}

// ============================================================================
// Domain Methods
// ============================================================================

func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

func (u *User) HasGoogleIdentity() bool {
	return u.GoogleID != nil && !u.GoogleID.IsEmpty()
}

// CanAuthenticate holds when the user has at least one way to sign in.
func (u *User) CanAuthenticate() bool {
	return u.HasPassword() || u.HasGoogleIdentity()
}

// LinkGoogle binds the Google account to this user. The display name is only
// filled in when the user has none.
func (u *User) LinkGoogle(googleID kernel.GoogleID, name string) {
	u.GoogleID = &googleID
	if u.Name == "" {
		u.Name = name
	}
}

func (u *User) ToPublic() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
