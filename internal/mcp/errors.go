package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/corkboard/internal/domain/activity"
	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/domain/mirror"
)

// errInvalidInput rejects tool arguments that fail validation in the tool layer.
var errInvalidInput = errors.New("invalid input")

// APIError represents an MCP tool error.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes. Unknown errors map to nil.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, mirror.ErrDesync):
		return &APIError{Code: "DESYNC", Message: err.Error(), RecoveryHint: "Call open_board to reload"}
	case errors.Is(err, board.ErrNotFound):
		return &APIError{Code: "NOT_FOUND", Message: err.Error(), RecoveryHint: "Check the id with list_boards"}
	case errors.Is(err, errInvalidInput), errors.Is(err, activity.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, board.ErrPrecondition):
		return &APIError{Code: "PRECONDITION_FAILED", Message: err.Error()}
	case errors.Is(err, board.ErrConflict):
		return &APIError{Code: "CONFLICT", Message: err.Error()}
	case errors.Is(err, board.ErrTransport):
		return &APIError{Code: "TRANSPORT_ERROR", Message: err.Error(), RecoveryHint: "Retry; the board copy is unchanged"}
	default:
		return nil
	}
}

func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
