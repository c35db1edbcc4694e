package models

import (
	"errors"
	"fmt"
)

// ErrConfirmationTimeout is returned when the deposit confirmation deadline
// elapses without a matching deposit. Funds have already left the source
// ledger at that point; recovery is a manual operation on the exchange side.
var ErrConfirmationTimeout = errors.New("deposit confirmation timeout")

// ValidationError marks a malformed request. Fatal to the request, never
// retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// GatewayError reports a failed ledger or exchange call. The pipeline aborts
// at the stage that produced it, surfacing the provider-supplied reason.
type GatewayError struct {
	Stage  string
	Reason string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Reason)
}

// NewGatewayError builds a GatewayError for the given pipeline stage.
func NewGatewayError(stage, format string, args ...any) *GatewayError {
	return &GatewayError{Stage: stage, Reason: fmt.Sprintf(format, args...)}
}
