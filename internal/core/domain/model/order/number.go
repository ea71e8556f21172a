package order

import (
	"errors"
	"math/rand/v2"
	"regexp"

	"marketplace/internal/pkg/errs"
)

// numberPattern is the externally visible order number format. Numbers are
// generated at creation, globally unique and immutable.
var numberPattern = regexp.MustCompile(`^R\d{5,10}$`)

// Number is the business identifier of an order, e.g. "R123456789".
// It is the key used for external lookup and never changes after assignment.
type Number string

// GenerateNumber produces a fresh order number: the literal prefix "R"
// followed by nine digits. Uniqueness is enforced by the store's unique
// index; collisions are retried by the caller on insert.
func GenerateNumber() Number {
	digits := []byte("0123456789")
	b := make([]byte, 0, 10)
	b = append(b, 'R')
	for range 9 {
		b = append(b, digits[rand.IntN(len(digits))])
	}
	return Number(b)
}

// ParseNumber validates an externally supplied order number.
func ParseNumber(s string) (Number, error) {
	n := Number(s)
	if err := n.Validate(); err != nil {
		return "", err
	}
	return n, nil
}

// Validate checks the number against the R + 5-10 digits format.
func (n Number) Validate() error {
	if n == "" {
		return errs.NewValueIsRequiredError("number")
	}
	if !numberPattern.MatchString(string(n)) {
		return errs.NewValueIsInvalidErrorWithCause("number",
			errors.New("order number must match R followed by 5 to 10 digits"))
	}
	return nil
}

// String implements fmt.Stringer.
func (n Number) String() string {
	return string(n)
}
