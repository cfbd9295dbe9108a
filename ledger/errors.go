package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFoundOrUnauthorized is returned on update when the record does not
	// exist or is owned by someone else. The two causes are merged on purpose
	// so a caller cannot probe for the existence of another user's records.
	ErrNotFoundOrUnauthorized = errors.New("record not found or unauthorized")

	// ErrStorageUnavailable wraps store-level failures so callers can tell
	// them apart from validation and authorization failures.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError reports rejected input with a human-readable reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid record: " + e.Reason
}

func invalidf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
