package assistant

import (
	"net/http"

	"github.com/1dhruvsingh/ResumeAI/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("ASSISTANT")

var (
	CodeChatFieldsRequired = ErrRegistry.Register("CHAT_FIELDS_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Message and resume ID are required")
)

func ErrChatFieldsRequired() *errx.Error {
	return ErrRegistry.New(CodeChatFieldsRequired)
}
