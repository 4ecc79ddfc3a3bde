package assistant

import "github.com/1dhruvsingh/ResumeAI/internal/ai/advisor"

// AnalyzeRequest optionally names a job description to analyze against.
type AnalyzeRequest struct {
	JobDescriptionID string `json:"job_description_id"`
}

type ChatRequest struct {
	Message             string                `json:"message" validate:"required"`
	ResumeID            string                `json:"resume_id" validate:"required"`
	ConversationHistory []advisor.ChatMessage `json:"conversation_history"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
