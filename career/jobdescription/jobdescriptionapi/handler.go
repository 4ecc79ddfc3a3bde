package jobdescriptionapi

import (
	"github.com/1dhruvsingh/ResumeAI/career/jobdescription"
	"github.com/1dhruvsingh/ResumeAI/career/jobdescription/jobdescriptionsrv"
	"github.com/1dhruvsingh/ResumeAI/pkg/iam/auth"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	service *jobdescriptionsrv.Service
}

// NewHandlers creates a new job description handlers instance
func NewHandlers(service *jobdescriptionsrv.Service) *Handlers {
	return &Handlers{service: service}
}

func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/job-descriptions")

	api.Get("/", authMiddleware, handlers.List)
	api.Post("/", authMiddleware, handlers.Create)
	api.Get("/:id", authMiddleware, handlers.Get)
	api.Delete("/:id", authMiddleware, handlers.Delete)
}

// List returns the caller's job descriptions
// GET /api/job-descriptions
func (h *Handlers) List(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jds, err := h.service.ListJobDescriptions(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(jds)
}

// Create stores a job description with its extracted keywords
// POST /api/job-descriptions
func (h *Handlers) Create(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req jobdescription.CreateJobDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	created, err := h.service.CreateJobDescription(c.Context(), userID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Get returns one job description
// GET /api/job-descriptions/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jd, err := h.service.GetJobDescription(c.Context(), userID, kernel.NewJobDescriptionID(c.Params("id")))
	if err != nil {
		return err
	}

	return c.JSON(jd)
}

// Delete removes a job description
// DELETE /api/job-descriptions/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	if err := h.service.DeleteJobDescription(c.Context(), userID, kernel.NewJobDescriptionID(c.Params("id"))); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Job description deleted successfully"})
}
