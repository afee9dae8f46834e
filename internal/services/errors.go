package services

import "fmt"

// ValidationError rejects a call before any store access: an intent triple
// outside the scope, a malformed date, an inverted range. Zero side effects.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// AuthorizationError rejects a call before the query is built: a resident
// writing for another user, or requesting someone else's view.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return "authorization: " + e.Reason
}

// StoreError wraps a query or commit failure verbatim. The whole call must
// be retried; the atomic batch guarantees no partial state was left behind.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
