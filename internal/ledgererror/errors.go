// Package ledgererror defines the typed errors surfaced by the ledger, its
// stores and the report generator.
package ledgererror

import (
	"errors"
	"fmt"
)

// MsgInvalidAmount is the user-facing text shown when an amount is rejected.
const MsgInvalidAmount = "Please enter a valid positive amount."

var (
	// ErrUnsupportedFormat is returned for an unknown report format.
	ErrUnsupportedFormat = errors.New("unsupported report format")

	// ErrUnknownBackend is returned for an unknown ledger storage backend.
	ErrUnknownBackend = errors.New("unknown ledger backend")
)

// ValidationError represents user input that was rejected before any state
// change happened.
type ValidationError struct {
	Field   string
	Value   string
	Reason  string
	Message string // shown to the user as-is
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// UserMessage returns the text meant for the person at the keyboard.
func (e *ValidationError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error()
}

// InvalidAmount builds the ValidationError for a rejected amount.
func InvalidAmount(value, reason string) *ValidationError {
	return &ValidationError{
		Field:   "amount",
		Value:   value,
		Reason:  reason,
		Message: MsgInvalidAmount,
	}
}

// StorageError represents a failure reading or writing the persisted ledger.
type StorageError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("ledger %s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
