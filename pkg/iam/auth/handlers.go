package auth

import (
	"github.com/gofiber/fiber/v2"
)

type AuthHandlers struct {
	service *AuthService
	google  *GoogleOAuthService
}

// NewAuthHandlers builds the auth endpoints. google may be nil, which disables
// the server-side OAuth routes.
func NewAuthHandlers(service *AuthService, google *GoogleOAuthService) *AuthHandlers {
	return &AuthHandlers{
		service: service,
		google:  google,
	}
}

func (h *AuthHandlers) RegisterRoutes(app *fiber.App, authMiddleware fiber.Handler) {
	api := app.Group("/api")

	// Public
	api.Post("/auth/register", h.Register)
	api.Post("/auth/login", h.Login)
	api.Post("/auth/google", h.GoogleLogin)
	api.Get("/auth/google/url", h.GoogleAuthURL)
	api.Get("/auth/google/callback", h.GoogleCallback)

	// Protected
	api.Get("/user", authMiddleware, h.Me)
}

// Register creates a password account
// POST /api/auth/register
func (h *AuthHandlers) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.service.Register(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login signs in with email and password
// POST /api/auth/login
func (h *AuthHandlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GoogleLogin signs in an identity already verified by the client
// POST /api/auth/google
func (h *AuthHandlers) GoogleLogin(c *fiber.Ctx) error {
	var req GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.service.FederatedLogin(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GoogleAuthURL starts the authorization code flow
// GET /api/auth/google/url
func (h *AuthHandlers) GoogleAuthURL(c *fiber.Ctx) error {
	if h.google == nil {
		return ErrOAuthDisabled()
	}

	url, err := h.google.AuthCodeURL(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"url": url})
}

// GoogleCallback completes the authorization code flow
// GET /api/auth/google/callback?code=...&state=...
func (h *AuthHandlers) GoogleCallback(c *fiber.Ctx) error {
	if h.google == nil {
		return ErrOAuthDisabled()
	}
	if providerErr := c.Query("error"); providerErr != "" {
		return ErrInvalidOAuthState().WithDetail("provider_error", providerErr)
	}

	identity, err := h.google.Exchange(c.Context(), c.Query("code"), c.Query("state"))
	if err != nil {
		return err
	}

	resp, err := h.service.FederatedLogin(c.Context(), *identity)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Me returns the caller's profile
// GET /api/user
func (h *AuthHandlers) Me(c *fiber.Ctx) error {
	userID, ok := GetUserID(c)
	if !ok {
		return ErrMissingToken()
	}

	profile, err := h.service.Me(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}
