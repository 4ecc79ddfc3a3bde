package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
	"github.com/1dhruvsingh/ResumeAI/pkg/logx"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// GoogleOAuthService runs the authorization code flow with PKCE against Google.
type GoogleOAuthService struct {
	oauth       *oauth2.Config
	states      StateManager
	stateTTL    time.Duration
	userInfoURL string
}

type googleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// NewGoogleOAuthService creates a new Google OAuth service
func NewGoogleOAuthService(cfg OAuthConfig, states StateManager) *GoogleOAuthService {
	return &GoogleOAuthService{
		oauth: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes:       cfg.Google.Scopes,
			Endpoint:     google.Endpoint,
		},
		states:      states,
		stateTTL:    cfg.StateTTL,
		userInfoURL: googleUserInfoURL,
	}
}

// AuthCodeURL returns the Google consent URL for a fresh, single-use state.
func (s *GoogleOAuthService) AuthCodeURL(ctx context.Context) (string, error) {
	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()

	if err := s.states.StoreState(ctx, state, verifier, s.stateTTL); err != nil {
		return "", ErrRegistry.NewWithCause(CodeOAuthExchangeFailed, err).
			WithDetail("step", "store_state")
	}

	return s.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOnline,
		oauth2.S256ChallengeOption(verifier),
	), nil
}

// Exchange redeems an authorization code and returns the Google identity behind it.
func (s *GoogleOAuthService) Exchange(ctx context.Context, code, state string) (*GoogleLoginRequest, error) {
	if code == "" || state == "" {
		return nil, ErrInvalidOAuthState().WithDetail("reason", "missing code or state")
	}

	verifier, err := s.states.ConsumeState(ctx, state)
	if err != nil {
		return nil, err
	}

	token, err := s.oauth.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, ErrRegistry.NewWithCause(CodeOAuthExchangeFailed, err).
			WithDetail("step", "exchange")
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		return nil, ErrRegistry.NewWithCause(CodeOAuthExchangeFailed, err).
			WithDetail("step", "userinfo")
	}
	if !info.EmailVerified {
		logx.Warnf("Google account %s signed in with an unverified email", info.Sub)
	}

	return &GoogleLoginRequest{
		GoogleID: kernel.GoogleID(info.Sub),
		Email:    kernel.Email(info.Email),
		Name:     info.Name,
	}, nil
}

func (s *GoogleOAuthService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.oauth.Client(ctx, token).Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	return &info, nil
}
