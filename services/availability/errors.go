package availability

import (
	"errors"
	"fmt"
)

// Error codes for the availability engine.
const (
	CodeConfiguration     = "configurationError"
	CodeInvalidSelection  = "invalidSelection"
	CodeStaleAvailability = "staleAvailability"
)

type AvailabilityError struct {
	Code    string
	Message string
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewConfigurationError flags malformed business hours. Raised at
// calculator construction, not recoverable by the engine.
func NewConfigurationError(msg string) error {
	return &AvailabilityError{Code: CodeConfiguration, Message: msg}
}

// NewInvalidSelectionError flags a selection that is not among the
// currently valid options. Callers should re-render and re-prompt.
func NewInvalidSelectionError(msg string) error {
	return &AvailabilityError{Code: CodeInvalidSelection, Message: msg}
}

// NewStaleAvailabilityError flags a selection that was valid when offered
// but lost its slot to a concurrent booking. Callers must refresh.
func NewStaleAvailabilityError(msg string) error {
	return &AvailabilityError{Code: CodeStaleAvailability, Message: msg}
}

func hasCode(err error, code string) bool {
	var ae *AvailabilityError
	return errors.As(err, &ae) && ae.Code == code
}

func IsConfigurationError(err error) bool { return hasCode(err, CodeConfiguration) }
func IsInvalidSelection(err error) bool   { return hasCode(err, CodeInvalidSelection) }
func IsStaleAvailability(err error) bool  { return hasCode(err, CodeStaleAvailability) }
