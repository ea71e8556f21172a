// Package queries contains read-side operations of the CQRS architecture.
// Query handlers load the order graph, apply the visibility policy for the
// requesting actor and shape the authorized rows into pages.
package queries

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// Sort keys accepted by the listing. "id" is always available as the
// tie-break and never needs to be requested explicitly.
const (
	SortByCompletedAt = "completed_at"
	SortByCreatedAt   = "created_at"
	SortByNumber      = "number"
	SortByState       = "state"
	SortByEmail       = "email"
	SortByTotal       = "total"
	SortByID          = "id"
)

// DefaultSort is applied when the caller supplies no sort spec: most recent
// completion first.
const DefaultSort = "completed_at desc"

const maxPerPage = 500

func sortKeys() map[string]struct{} {
	return map[string]struct{}{
		SortByCompletedAt: {},
		SortByCreatedAt:   {},
		SortByNumber:      {},
		SortByState:       {},
		SortByEmail:       {},
		SortByTotal:       {},
		SortByID:          {},
	}
}

// ListOrdersQuery requests a page of the orders visible to an actor.
// Filters compose with — never widen — the actor's visibility: the policy
// decides the candidate set, the filters narrow it, and only then is the
// result counted and paginated.
//
// Example:
//
//	query, err := NewListOrdersQuery(actorID, false, true, "", "created_at desc", 1, 15)
//	if err != nil {
//	    return fmt.Errorf("invalid listing parameters: %w", err)
//	}
//
//	resp, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID       kernel.UUID
	isAdmin       bool
	completedOnly bool
	search        string
	sortKey       string
	sortAscending bool
	page          int
	perPage       int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query.
//
// The sort spec is "<key> <asc|desc>" (e.g. "created_at desc"); an empty
// spec falls back to DefaultSort. Page and perPage are 1-based; non-positive
// values are invalid input, never silently clamped.
func NewListOrdersQuery(
	actorID kernel.UUID,
	isAdmin bool,
	completedOnly bool,
	search string,
	sort string,
	page int,
	perPage int,
) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		isAdmin:       isAdmin,
		completedOnly: completedOnly,
		search:        strings.TrimSpace(search),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setActorID(actorID),
		query.setSort(sort),
		query.setPage(page),
		query.setPerPage(perPage),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ActorID returns the identity of the requesting actor.
func (q ListOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// IsAdmin reports whether the requesting actor holds the admin role.
func (q ListOrdersQuery) IsAdmin() bool {
	return q.isAdmin
}

// CompletedOnly reports whether only completed orders were requested.
func (q ListOrdersQuery) CompletedOnly() bool {
	return q.completedOnly
}

// Search returns the free-text filter, empty when none was given.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// SortKey returns the parsed sort key.
func (q ListOrdersQuery) SortKey() string {
	return q.sortKey
}

// SortAscending reports the parsed sort direction.
func (q ListOrdersQuery) SortAscending() bool {
	return q.sortAscending
}

// Page returns the 1-based page index.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PerPage returns the page size.
func (q ListOrdersQuery) PerPage() int {
	return q.perPage
}

func (q *ListOrdersQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

func (q *ListOrdersQuery) setSort(sort string) error {
	sort = strings.TrimSpace(sort)
	if sort == "" {
		sort = DefaultSort
	}

	parts := strings.Fields(sort)
	if len(parts) > 2 {
		return errs.NewValueIsInvalidErrorWithCause("sort",
			fmt.Errorf("%q is not of the form \"<key> <asc|desc>\"", sort))
	}

	key := parts[0]
	if _, ok := sortKeys()[key]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("sort",
			fmt.Errorf("%q is not a sortable column", key))
	}

	direction := "asc"
	if len(parts) == 2 {
		direction = parts[1]
	}
	switch direction {
	case "asc":
		q.sortAscending = true
	case "desc":
		q.sortAscending = false
	default:
		return errs.NewValueIsInvalidErrorWithCause("sort",
			fmt.Errorf("%q is not a sort direction", direction))
	}

	q.sortKey = key
	return nil
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, math.MaxInt)
	}

	q.page = page
	return nil
}

func (q *ListOrdersQuery) setPerPage(perPage int) error {
	if perPage < 1 || perPage > maxPerPage {
		return errs.NewValueIsOutOfRangeError("perPage", perPage, 1, maxPerPage)
	}

	q.perPage = perPage
	return nil
}
