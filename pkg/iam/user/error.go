package user

import (
	"net/http"

	"github.com/1dhruvsingh/ResumeAI/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("USER")

var (
	CodeUserNotFound       = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "User not found")
	CodeEmailAlreadyExists = ErrRegistry.Register("EMAIL_EXISTS", errx.TypeConflict, http.StatusConflict, "Email already registered")
	CodeUserStoreFailed    = ErrRegistry.Register("STORE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "User storage failed")
)

func ErrUserNotFound() *errx.Error {
	return ErrRegistry.New(CodeUserNotFound)
}

func ErrEmailAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeEmailAlreadyExists)
}

func ErrUserStoreFailed(err error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeUserStoreFailed, err)
}
