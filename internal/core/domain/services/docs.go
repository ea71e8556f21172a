// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the marketplace. It implements logic that
// doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderVisibilityPolicy: decides which orders an actor may view or list,
//     combining the admin, distributor-owner and coordinator-owner rules
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
