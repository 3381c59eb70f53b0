package booking

import "errors"

// Page-entry error categories.  Decode and Resolve return *Error values that
// match exactly one of these with errors.Is.
var (
	ErrMissingParams   = errors.New("missing booking data")
	ErrInvalidCinemaID = errors.New("invalid cinema id")
	ErrMovieNotFound   = errors.New("movie not found")
	ErrCinemaNotFound  = errors.New("cinema not found")
)

// ErrNoPaymentMethod is the user-input error raised when a payment is
// confirmed without a method.  It never reaches the error page.
var ErrNoPaymentMethod = errors.New("please select a payment method")

// Error carries a user facing message for one of the page-entry categories.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}
