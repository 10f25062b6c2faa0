package service

import (
	"errors"
	"fmt"
	"net/http"

	"tripsplit/internal/splitter"
	"tripsplit/internal/storage"
)

// validationError marks request-shape problems caught at the HTTP boundary
// (blank names, missing fields). Distinct from the splitter's own errors.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func invalidf(format string, args ...any) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

// httpStatusFromError maps domain errors to HTTP status codes.
func httpStatusFromError(err error) int {
	var validation *validationError
	var invalidAmount *splitter.InvalidAmountError

	switch {
	case errors.As(err, &validation), errors.As(err, &invalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, splitter.ErrEmptyParticipants),
		errors.Is(err, splitter.ErrInsufficientParticipants):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
