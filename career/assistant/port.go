package assistant

import (
	"context"

	"github.com/1dhruvsingh/ResumeAI/career/resume"
	"github.com/1dhruvsingh/ResumeAI/internal/ai/advisor"
)

// ResumeAdvisor produces AI feedback on a resume.
type ResumeAdvisor interface {
	AnalyzeResume(ctx context.Context, doc resume.Document, jobText string) (*advisor.Report, error)
	Chat(ctx context.Context, message string, doc resume.Document, history []advisor.ChatMessage) (string, error)
}
