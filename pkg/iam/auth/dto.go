package auth

import (
	"github.com/1dhruvsingh/ResumeAI/pkg/iam/user"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
)

type RegisterRequest struct {
	Email    kernel.Email `json:"email" validate:"required"`
	Password string       `json:"password" validate:"required"`
	Name     string       `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    kernel.Email `json:"email" validate:"required"`
	Password string       `json:"password" validate:"required"`
}

// GoogleLoginRequest is the identity asserted by the client after a Google sign-in.
type GoogleLoginRequest struct {
	GoogleID kernel.GoogleID `json:"googleId" validate:"required"`
	Email    kernel.Email    `json:"email" validate:"required"`
	Name     string          `json:"name"`
}

type AuthResponse struct {
	Token string          `json:"token"`
	User  user.PublicUser `json:"user"`
}
