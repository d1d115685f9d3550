package usecase

import (
	"errors"

	"labor-intel/internal/repository"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrDataAccess   = errors.New("data access failed")
	ErrUnavailable  = errors.New("service unavailable")
	ErrRateLimited  = errors.New("rate limited")
)

// Error tags a cause with one of the sentinel kinds above. Its message is the
// cause's message so handlers can show it to callers for client errors.
type Error struct {
	Kind  error
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.Error()
	}
	return e.Cause.Error()
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func invalid(cause error) error {
	return &Error{Kind: ErrInvalidInput, Cause: cause}
}

func invalidf(msg string) error {
	return &Error{Kind: ErrInvalidInput, Cause: errors.New(msg)}
}

func notFound(what string) error {
	return &Error{Kind: ErrNotFound, Cause: errors.New(what + " not found")}
}

func dataAccess(cause error) error {
	return &Error{Kind: ErrDataAccess, Cause: cause}
}

// fromRepo maps a repository error on a lookup by id.
func fromRepo(err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(what)
	}
	return dataAccess(err)
}
