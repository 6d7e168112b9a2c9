package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/talent-matcher/internal/services"
)

// respondError maps service errors to HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		status, message = fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, services.ErrForbidden):
		status, message = fiber.StatusForbidden, err.Error()
	case errors.Is(err, services.ErrNotFound):
		status, message = fiber.StatusNotFound, notFoundMessage(err)
	case errors.Is(err, services.ErrInvalidInput):
		status, message = fiber.StatusBadRequest, err.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

// notFoundMessage keeps the "<kind> <id>" prefix and drops the wrapped
// sentinel text.
func notFoundMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i > 0 {
		return msg[:i] + " not found"
	}
	return "not found"
}

// ErrorHandler renders errors that escape the handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
