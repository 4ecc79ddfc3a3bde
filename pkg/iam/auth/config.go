package auth

import "time"

type Config struct {
	JWT   JWTConfig
	OAuth OAuthConfig
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	Issuer         string
}

type OAuthConfig struct {
	Google GoogleOAuthConfig
	// StateTTL bounds how long an authorization URL stays redeemable.
	StateTTL time.Duration
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

func DefaultConfig() Config {
	return Config{
		JWT: JWTConfig{
			AccessTokenTTL: 24 * time.Hour,
			Issuer:         "resumeai",
		},
		OAuth: OAuthConfig{
			Google: GoogleOAuthConfig{
				Scopes: []string{"openid", "email", "profile"},
			},
			StateTTL: 10 * time.Minute,
		},
	}
}
