package order

import (
	"fmt"

	"sales/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Orders handled by this
// package are always drafts; the zero value Unknown marks an uninitialized status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is an order still being composed by its customer.
	Draft
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Draft:   "Draft",
	}
}

// Validate rejects Unknown and out-of-range values, typically read from storage.
func (s Status) Validate() error {
	if s != Draft {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Unrecognized values print as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
