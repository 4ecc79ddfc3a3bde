package auth

import (
	"net/http"

	"github.com/1dhruvsingh/ResumeAI/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeMissingFields         = ErrRegistry.Register("MISSING_FIELDS", errx.TypeValidation, http.StatusBadRequest, "Missing required fields")
	CodeMissingCredentials    = ErrRegistry.Register("MISSING_CREDENTIALS", errx.TypeValidation, http.StatusBadRequest, "Missing email or password")
	CodeMissingGoogleIdentity = ErrRegistry.Register("MISSING_GOOGLE_IDENTITY", errx.TypeValidation, http.StatusBadRequest, "Missing required Google authentication data")
	CodeInvalidCredentials    = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid email or password")
	CodeMissingToken          = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Missing authorization header")
	CodeInvalidToken          = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeTokenGeneration       = ErrRegistry.Register("TOKEN_GENERATION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate token")
	CodeInvalidOAuthState     = ErrRegistry.Register("INVALID_OAUTH_STATE", errx.TypeValidation, http.StatusBadRequest, "Invalid or expired OAuth state")
	CodeOAuthExchangeFailed   = ErrRegistry.Register("OAUTH_EXCHANGE_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to complete Google sign-in")
	CodeOAuthDisabled         = ErrRegistry.Register("OAUTH_DISABLED", errx.TypeBusiness, http.StatusServiceUnavailable, "Google sign-in is not configured")
)

func ErrMissingFields() *errx.Error {
	return ErrRegistry.New(CodeMissingFields)
}

func ErrMissingCredentials() *errx.Error {
	return ErrRegistry.New(CodeMissingCredentials)
}

func ErrMissingGoogleIdentity() *errx.Error {
	return ErrRegistry.New(CodeMissingGoogleIdentity)
}

func ErrInvalidCredentials() *errx.Error {
	return ErrRegistry.New(CodeInvalidCredentials)
}

func ErrMissingToken() *errx.Error {
	return ErrRegistry.New(CodeMissingToken)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrInvalidOAuthState() *errx.Error {
	return ErrRegistry.New(CodeInvalidOAuthState)
}

func ErrOAuthDisabled() *errx.Error {
	return ErrRegistry.New(CodeOAuthDisabled)
}
