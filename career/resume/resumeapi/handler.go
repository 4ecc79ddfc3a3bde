package resumeapi

import (
	"github.com/1dhruvsingh/ResumeAI/career/resume"
	"github.com/1dhruvsingh/ResumeAI/career/resume/resumesrv"
	"github.com/1dhruvsingh/ResumeAI/pkg/iam/auth"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

type ResumeHandlers struct {
	service *resumesrv.Service
}

// NewResumeHandlers creates a new resume handlers instance
func NewResumeHandlers(service *resumesrv.Service) *ResumeHandlers {
	return &ResumeHandlers{service: service}
}

func (h *ResumeHandlers) RegisterRoutes(app *fiber.App, authMiddleware fiber.Handler) {
	resumes := app.Group("/api/resumes")

	resumes.Get("/", authMiddleware, h.ListResumes)
	resumes.Post("/", authMiddleware, h.CreateResume)
	resumes.Get("/:id", authMiddleware, h.GetResume)
	resumes.Put("/:id", authMiddleware, h.UpdateResume)
	resumes.Delete("/:id", authMiddleware, h.DeleteResume)
}

// ListResumes lists the caller's resumes
// GET /api/resumes
func (h *ResumeHandlers) ListResumes(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	resumes, err := h.service.ListResumes(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(resumes)
}

// CreateResume stores a new resume
// POST /api/resumes
func (h *ResumeHandlers) CreateResume(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req resume.CreateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	created, err := h.service.CreateResume(c.Context(), userID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetResume returns one resume
// GET /api/resumes/:id
func (h *ResumeHandlers) GetResume(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	r, err := h.service.GetResume(c.Context(), userID, kernel.NewResumeID(c.Params("id")))
	if err != nil {
		return err
	}

	return c.JSON(r)
}

// UpdateResume replaces the title and/or data of a resume
// PUT /api/resumes/:id
func (h *ResumeHandlers) UpdateResume(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req resume.UpdateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	updated, err := h.service.UpdateResume(c.Context(), userID, kernel.NewResumeID(c.Params("id")), req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// DeleteResume removes a resume
// DELETE /api/resumes/:id
func (h *ResumeHandlers) DeleteResume(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	if err := h.service.DeleteResume(c.Context(), userID, kernel.NewResumeID(c.Params("id"))); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Resume deleted successfully"})
}
