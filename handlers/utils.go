package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"pocket-notes/services"
	"pocket-notes/validator"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// validationFailed reports rejected input along with the field details and
// the notices the screen raised for it.
func validationFailed(c *fiber.Ctx, err error, notices any) error {
	body := fiber.Map{
		"error":   "Validation failed",
		"notices": notices,
	}

	var details validator.ValidationErrors
	if errors.As(err, &details) {
		body["details"] = details
	}

	return c.Status(fiber.StatusBadRequest).JSON(body)
}

func isValidation(err error) bool {
	return errors.Is(err, services.ErrValidation)
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// activate loads a screen on first use. A load failure is not an HTTP error:
// the screen falls back to defaults and the notice travels with the response.
func activate(c *fiber.Ctx, screen loader) {
	_ = screen.Load(c.UserContext())
}

type loader interface {
	Load(ctx context.Context) error
}

// paramID returns the :id route parameter with percent-escapes decoded.
func paramID(c *fiber.Ctx) string {
	raw := c.Params("id")
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}
