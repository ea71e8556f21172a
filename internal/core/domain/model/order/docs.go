// Package order provides domain entities and business logic for customer
// orders in the marketplace. It implements the Order aggregate root with its
// lifecycle states and the value objects the order API exposes.
//
// The package includes:
//   - Order: the aggregate root tying a business number, a distributor and an
//     optional order cycle to the customer-facing order data
//   - Number: the immutable external business identifier ("R" + digits)
//   - State: the order lifecycle (cart through checkout to complete/shipped)
//   - LineItem, Payment, Adjustment, Address, ShippingMethod: value objects
//
// Key business rules:
//   - Orders must have a valid identifier, number and distributor
//   - completed_at is set when checkout finishes and marks the order as
//     visible to enterprise owners; administrative corrections may clear it
//   - An order's suppliers are derived from its line items, never stored
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
