// Package fiberx holds Fiber glue shared by every API package.
package fiberx

import (
	"errors"

	"github.com/1dhruvsingh/ResumeAI/pkg/errx"
	"github.com/1dhruvsingh/ResumeAI/pkg/logx"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler converts handler errors to JSON responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	// Fiber errors (unknown route, bad body, ...)
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"error": fe.Message,
			"code":  fe.Code,
		})
	}

	var e *errx.Error
	if errors.As(err, &e) {
		if e.HTTPStatus >= fiber.StatusInternalServerError {
			logx.Errorf("%s %s: %v", c.Method(), c.Path(), e)
		}
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    errx.TypeInternal,
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}

// NewApp returns a Fiber app configured with ErrorHandler.
func NewApp(appName string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
	})
}
