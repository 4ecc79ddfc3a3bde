package auth

import (
	"context"

	"github.com/1dhruvsingh/ResumeAI/pkg/errx"
	"github.com/1dhruvsingh/ResumeAI/pkg/iam/user"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
	"github.com/1dhruvsingh/ResumeAI/pkg/logx"
	"github.com/1dhruvsingh/ResumeAI/pkg/validatex"
)

type AuthService struct {
	users     user.Repository
	passwords PasswordService
	tokens    TokenService
}

// NewAuthService creates a new authentication service
func NewAuthService(users user.Repository, passwords PasswordService, tokens TokenService) *AuthService {
	return &AuthService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
	}
}

// Register creates a password account and signs it in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if fields := validatex.Fields(req); fields != nil {
		return nil, ErrMissingFields().WithDetail("fields", fields)
	}

	existing, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, user.ErrEmailAlreadyExists().WithDetail("email", req.Email)
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	u := user.NewPasswordUser(req.Email, hash, req.Name)
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	logx.Infof("User %d registered", u.ID)
	return s.issue(u)
}

// Login verifies email and password.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if validatex.Fields(req) != nil {
		return nil, ErrMissingCredentials()
	}

	u, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.CanAuthenticate() {
		return nil, ErrInvalidCredentials()
	}
	if !u.HasPassword() {
		logx.Infof("User %d has no password; sign in with Google instead", u.ID)
		return nil, ErrInvalidCredentials()
	}
	if !s.passwords.VerifyPassword(*u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials()
	}

	return s.issue(u)
}

// FederatedLogin signs in a Google identity. An account with the same email is
// linked to the Google id; otherwise a new account is created.
func (s *AuthService) FederatedLogin(ctx context.Context, req GoogleLoginRequest) (*AuthResponse, error) {
	if fields := validatex.Fields(req); fields != nil {
		return nil, ErrMissingGoogleIdentity().WithDetail("fields", fields)
	}

	u, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if u == nil {
		u = user.NewGoogleUser(req.GoogleID, req.Email, req.Name)
		if err := s.users.Create(ctx, u); err != nil {
			return nil, err
		}
		logx.Infof("User %d created from Google sign-in", u.ID)
	} else {
		u.LinkGoogle(req.GoogleID, req.Name)
		if err := s.users.Update(ctx, u); err != nil {
			return nil, err
		}
	}

	return s.issue(u)
}

// Authenticate resolves a bearer token to the user it was issued for.
func (s *AuthService) Authenticate(token string) (kernel.UserID, error) {
	if token == "" {
		return 0, ErrMissingToken()
	}
	claims, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// Me returns the public profile of the user.
func (s *AuthService) Me(ctx context.Context, userID kernel.UserID) (*user.PublicUser, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := u.ToPublic()
	return &profile, nil
}

func (s *AuthService) issue(u *user.User) (*AuthResponse, error) {
	token, err := s.tokens.GenerateAccessToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u.ToPublic()}, nil
}

// findByEmail returns nil, nil when no user has the email.
func (s *AuthService) findByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}
