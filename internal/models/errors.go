package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// APIResponse is the standard envelope for every API result.
type APIResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Code       string      `json:"code,omitempty"`
	StatusCode int         `json:"statusCode"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// StatusForError maps an error to the HTTP status code for its kind.
// Unknown errors are treated as internal failures.
func StatusForError(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case "VALIDATION_ERROR":
		return fiber.StatusBadRequest
	case "NOT_FOUND":
		return fiber.StatusNotFound
	case "CONFLICT":
		return fiber.StatusConflict
	case "FORBIDDEN":
		return fiber.StatusForbidden
	case "UNAUTHORIZED":
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond writes a success envelope with the given status and payload.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(APIResponse{
		Success:    true,
		Data:       data,
		StatusCode: status,
	})
}

// RespondMessage writes a success envelope carrying only a message.
func RespondMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(APIResponse{
		Success:    true,
		Message:    message,
		StatusCode: status,
	})
}

// RespondWithError writes a standardized error envelope. The status code is
// derived from the error's kind; internal details are never leaked to callers.
func RespondWithError(c *fiber.Ctx, err error) error {
	status := StatusForError(err)

	resp := APIResponse{
		Success:    false,
		StatusCode: status,
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		resp.Message = appErr.Message
		resp.Code = appErr.Code
	} else {
		resp.Message = "Internal server error"
		resp.Code = "INTERNAL_ERROR"
	}

	return c.Status(status).JSON(resp)
}
