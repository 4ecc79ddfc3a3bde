package careertest

import (
	"github.com/1dhruvsingh/ResumeAI/pkg/iam/auth"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
)

// Tokens maps fixed bearer tokens to user ids.
type Tokens map[string]kernel.UserID

func (t Tokens) Authenticate(token string) (kernel.UserID, error) {
	userID, ok := t[token]
	if !ok {
		return 0, auth.ErrInvalidToken()
	}
	return userID, nil
}
