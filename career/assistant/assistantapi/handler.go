package assistantapi

import (
	"github.com/1dhruvsingh/ResumeAI/career/assistant"
	"github.com/1dhruvsingh/ResumeAI/career/assistant/assistantsrv"
	"github.com/1dhruvsingh/ResumeAI/pkg/iam/auth"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	service *assistantsrv.Service
}

// NewHandlers creates a new assistant handlers instance
func NewHandlers(service *assistantsrv.Service) *Handlers {
	return &Handlers{service: service}
}

func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api")

	api.Post("/resumes/:id/analyze", authMiddleware, handlers.Analyze)
	api.Post("/chat", authMiddleware, handlers.Chat)
}

// Analyze runs an AI review of a resume
// POST /api/resumes/:id/analyze
func (h *Handlers) Analyze(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	// The body is optional.
	var req assistant.AnalyzeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	report, err := h.service.AnalyzeResume(c.Context(), userID, kernel.NewResumeID(c.Params("id")), req)
	if err != nil {
		return err
	}

	return c.JSON(report)
}

// Chat answers a question about a resume
// POST /api/chat
func (h *Handlers) Chat(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req assistant.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.service.Chat(c.Context(), userID, req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
