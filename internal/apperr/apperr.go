package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure into one of the four client-visible error classes.
type Kind int

const (
	Internal Kind = iota
	BadRequest
	NotFound
	Unprocessable
)

// HTTPStatus maps the kind to its response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case BadRequest:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Message is the fixed text sent to clients. It never carries the cause.
func (k Kind) Message() string {
	switch k {
	case BadRequest:
		return "bad request"
	case NotFound:
		return "resource not found"
	case Unprocessable:
		return "unprocessable"
	default:
		return "internal server error"
	}
}

func (k Kind) String() string {
	switch k {
	case BadRequest:
		return "bad_request"
	case NotFound:
		return "not_found"
	case Unprocessable:
		return "unprocessable"
	default:
		return "internal"
	}
}

// Error is a classified failure. Op names the operation that failed, Err is the cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.Message()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind without an underlying cause.
func New(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

// Wrap classifies err. It returns nil for a nil err.
func Wrap(err error, kind Kind, op string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the outermost *Error in the chain, or Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
