package services

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrMealNotFound = errors.New("meal not found")
)

// ValidationError rejects a request before anything is persisted.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error { return &ValidationError{Msg: msg} }

// LookupError means the AI generator did not produce a usable food
// lookup. The reason is safe to show to the user.
type LookupError struct {
	Reason string
	Err    error
}

func (e *LookupError) Error() string { return "food lookup failed: " + e.Reason }
func (e *LookupError) Unwrap() error { return e.Err }

// SuggestionError means the AI generator did not produce a usable
// suggestion list.
type SuggestionError struct {
	Reason string
	Err    error
}

func (e *SuggestionError) Error() string { return "meal suggestions failed: " + e.Reason }
func (e *SuggestionError) Unwrap() error { return e.Err }
