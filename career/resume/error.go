package resume

import (
	"net/http"

	"github.com/1dhruvsingh/ResumeAI/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RESUME")

var (
	CodeResumeNotFound     = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Resume not found")
	CodeResumeDataRequired = ErrRegistry.Register("DATA_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Resume data is required")
	CodeInvalidResumeData  = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid resume data")
	CodeResumeStoreFailed  = ErrRegistry.Register("STORE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Resume storage failed")
)

func ErrResumeNotFound() *errx.Error {
	return ErrRegistry.New(CodeResumeNotFound)
}

func ErrResumeDataRequired() *errx.Error {
	return ErrRegistry.New(CodeResumeDataRequired)
}

func ErrInvalidResumeData() *errx.Error {
	return ErrRegistry.New(CodeInvalidResumeData)
}

func ErrResumeStoreFailed(err error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeResumeStoreFailed, err)
}
