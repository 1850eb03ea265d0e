package errs

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every DomainError.
var ErrDomain = errors.New("domain rule violated")

// DomainError is returned when an operation would break a business invariant.
// It is a recoverable, user-facing validation failure. Reason is the stable
// sentinel describing the rule (e.g. "maximum units per item exceeded"), Cause
// carries the details.
//
// errors.Is matches ErrDomain, Reason and anything in the Cause chain:
//
//	if errors.Is(err, order.ErrMaxUnitsPerItemExceeded) {
//	    // reject the request
//	}
type DomainError struct {
	Reason error
	Cause  error
}

func NewDomainError(reason error) *DomainError {
	return &DomainError{Reason: reason}
}

func NewDomainErrorWithCause(reason error, cause error) *DomainError {
	return &DomainError{Reason: reason, Cause: cause}
}

func (e *DomainError) Error() string {
	reason := ErrDomain.Error()
	if e.Reason != nil {
		reason = e.Reason.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", reason, e.Cause)
	}
	return reason
}

func (e *DomainError) Unwrap() []error {
	out := []error{ErrDomain}
	if e.Reason != nil {
		out = append(out, e.Reason)
	}
	if e.Cause != nil {
		out = append(out, e.Cause)
	}
	return out
}
