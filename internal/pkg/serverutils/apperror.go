package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError carries an HTTP status alongside a client-safe message.
// Services return these for expected failures; anything else is treated
// as an internal error and the message is not leaked.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func NotFound(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, message)
}

func BadRequest(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *AppError {
	return NewAppError(fiber.StatusUnauthorized, message)
}

func Conflict(message string) *AppError {
	return NewAppError(fiber.StatusConflict, message)
}

// ErrorHandlerMiddleware converts errors bubbled out of handlers into
// the standard JSON error envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Code).JSON(fiber.Map{
				"success": false,
				"message": appErr.Message,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"success": false,
				"message": fiberErr.Message,
			})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}
}
