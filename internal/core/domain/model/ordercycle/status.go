package ordercycle

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order cycle's trading window.
//
// State transitions:
//
//	Upcoming ──> Open ──> Closed
//
// Closed is final; a new trading round is a new order cycle.
type Status string

const (
	// Upcoming means the cycle is published but its window has not opened yet.
	Upcoming Status = "upcoming"

	// Open means the cycle is accepting orders.
	Open Status = "open"

	// Closed means the trading window has ended.
	Closed Status = "closed"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Upcoming: {},
		Open:     {},
		Closed:   {},
	}
}

// Validate checks that the Status holds one of the defined values.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order cycle status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
