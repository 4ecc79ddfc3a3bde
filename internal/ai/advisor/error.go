package advisor

import (
	"net/http"

	"github.com/1dhruvsingh/ResumeAI/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("AI")

var (
	CodeProviderFailed = ErrRegistry.Register("PROVIDER_FAILED", errx.TypeExternal, http.StatusBadGateway, "AI provider request failed")
	CodePromptFailed   = ErrRegistry.Register("PROMPT_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to build AI prompt")
)

func ErrProviderFailed(err error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeProviderFailed, err)
}

func ErrPromptFailed(err error) *errx.Error {
	return ErrRegistry.NewWithCause(CodePromptFailed, err)
}
