package order

import (
	"strings"

	"marketplace/internal/pkg/errs"
)

// Address is the customer-facing billing or shipping address attached to an
// order. It is a value object; the policy engine treats it as opaque but the
// projection and free-text search read its fields.
type Address struct {
	firstName string
	lastName  string
	address1  string
	address2  string
	city      string
	zipcode   string
	phone     string
}

// NewAddress creates an address. Only the street line is mandatory; orders
// sourced from external channels routinely omit the rest.
func NewAddress(firstName, lastName, address1, address2, city, zipcode, phone string) (Address, error) {
	if address1 == "" {
		return Address{}, errs.NewValueIsRequiredError("address1")
	}
	return Address{
		firstName: firstName,
		lastName:  lastName,
		address1:  address1,
		address2:  address2,
		city:      city,
		zipcode:   zipcode,
		phone:     phone,
	}, nil
}

func (a Address) FirstName() string { return a.firstName }
func (a Address) LastName() string  { return a.lastName }
func (a Address) Address1() string  { return a.address1 }
func (a Address) Address2() string  { return a.address2 }
func (a Address) City() string      { return a.city }
func (a Address) Zipcode() string   { return a.zipcode }
func (a Address) Phone() string     { return a.phone }

// FullName joins the customer's first and last names, skipping blanks.
func (a Address) FullName() string {
	parts := make([]string, 0, 2)
	if a.firstName != "" {
		parts = append(parts, a.firstName)
	}
	if a.lastName != "" {
		parts = append(parts, a.lastName)
	}
	return strings.Join(parts, " ")
}

// IsZero reports whether the address carries no data at all.
func (a Address) IsZero() bool {
	return a == Address{}
}
