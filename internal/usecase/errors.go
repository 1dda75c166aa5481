package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrConflict              = errors.New("snapshot changed concurrently")
	ErrAcquisitionExhausted  = errors.New("all cricket data sources exhausted")
	ErrSynthesisDeclined     = errors.New("synthesis declined")
)

// DeclinedError carries the user-facing reason synthesis produced nothing.
type DeclinedError struct {
	Explanation string
}

func (e *DeclinedError) Error() string {
	return ErrSynthesisDeclined.Error() + ": " + e.Explanation
}

func (e *DeclinedError) Unwrap() error {
	return ErrSynthesisDeclined
}
