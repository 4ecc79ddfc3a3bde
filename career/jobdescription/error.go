package jobdescription

import (
	"net/http"

	"github.com/1dhruvsingh/ResumeAI/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("JOB_DESCRIPTION")

var (
	CodeJobDescriptionNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job description not found")
	CodeTextRequired           = ErrRegistry.Register("TEXT_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Job description text is required")
	CodeStoreFailed            = ErrRegistry.Register("STORE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Job description storage failed")
)

func ErrJobDescriptionNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobDescriptionNotFound)
}

func ErrTextRequired() *errx.Error {
	return ErrRegistry.New(CodeTextRequired)
}

func ErrStoreFailed(err error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStoreFailed, err)
}
