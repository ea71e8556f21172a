package queries

import (
	"context"
	"sort"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// PaginationMeta describes the shape of a listing result. Counts cover the
// full authorized+filtered set, not just the returned page.
type PaginationMeta struct {
	Results int
	Pages   int
	Page    int
	PerPage int
}

// ListOrdersQueryResponse is one authorized, filtered, sorted page of orders.
type ListOrdersQueryResponse struct {
	Orders     []*order.Order
	Pagination PaginationMeta
}

// ListOrdersQueryHandler produces the order listing for an actor.
//
// The visibility policy runs before anything is counted: filters, sort and
// pagination only ever see authorized rows, so no unauthorized order can
// leak through page contents or pagination metadata.
type ListOrdersQueryHandler struct {
	orderRepo      ports.OrderRepository
	enterpriseRepo ports.EnterpriseRepository
	policy         services.OrderVisibilityPolicy
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(
	orderRepo ports.OrderRepository,
	enterpriseRepo ports.EnterpriseRepository,
) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		orderRepo:      orderRepo,
		enterpriseRepo: enterpriseRepo,
		policy:         services.NewOrderVisibilityPolicy(),
	}
}

// Handle executes the listing query.
//
// Actors without listing standing (neither admin nor owner of a distributor
// or coordinator enterprise) get an unauthorized error rather than an empty
// page; that covers supplier-only owners too. Requesting a page past the end
// of the result set is not an error; it yields an empty page with accurate
// counts.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	requester, err := h.buildActor(ctx, query)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	if !h.policy.HasListingStanding(requester) {
		return ListOrdersQueryResponse{}, errs.NewUnauthorizedError(
			"actor owns no selling enterprise and holds no admin role")
	}

	all, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	matching := filterOrders(h.policy.VisibleOrders(requester, all), query)
	sortOrders(matching, query.SortKey(), query.SortAscending())

	results := len(matching)
	pages := (results + query.PerPage() - 1) / query.PerPage()

	start := (query.Page() - 1) * query.PerPage()
	if start > results {
		start = results
	}
	end := start + query.PerPage()
	if end > results {
		end = results
	}

	return ListOrdersQueryResponse{
		Orders: matching[start:end],
		Pagination: PaginationMeta{
			Results: results,
			Pages:   pages,
			Page:    query.Page(),
			PerPage: query.PerPage(),
		},
	}, nil
}

func (h ListOrdersQueryHandler) buildActor(
	ctx context.Context,
	query ListOrdersQuery,
) (*actor.Actor, error) {
	owned, err := h.enterpriseRepo.GetAllByOwner(ctx, query.ActorID())
	if err != nil {
		return nil, err
	}

	return actor.NewActor(query.ActorID(), query.IsAdmin(), owned)
}

func filterOrders(orders []*order.Order, query ListOrdersQuery) []*order.Order {
	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if query.CompletedOnly() && !o.IsComplete() {
			continue
		}
		if query.Search() != "" && !matchesSearch(o, query.Search()) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// matchesSearch does a case-insensitive substring match over the fields a
// shopkeeper would naturally search by: order number, customer email, name
// and phone.
func matchesSearch(o *order.Order, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{o.Number().String(), o.Email(), o.FullName(), o.Phone()} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// sortOrders sorts in place by the requested key and direction, with the
// order identity as tie-break so that equal keys still yield a total order
// and pages never duplicate or skip rows.
func sortOrders(orders []*order.Order, key string, ascending bool) {
	sort.Slice(orders, func(i, j int) bool {
		c := compareOrders(orders[i], orders[j], key)
		if c == 0 {
			c = strings.Compare(orders[i].ID().String(), orders[j].ID().String())
		}
		if ascending {
			return c < 0
		}
		return c > 0
	})
}

func compareOrders(a, b *order.Order, key string) int {
	switch key {
	case SortByCompletedAt:
		return compareTimes(a.CompletedAt(), b.CompletedAt())
	case SortByCreatedAt:
		return a.CreatedAt().Compare(b.CreatedAt())
	case SortByNumber:
		return strings.Compare(a.Number().String(), b.Number().String())
	case SortByState:
		return strings.Compare(a.State().String(), b.State().String())
	case SortByEmail:
		return strings.Compare(a.Email(), b.Email())
	case SortByTotal:
		return a.Details().Total.Cmp(b.Details().Total)
	default:
		return strings.Compare(a.ID().String(), b.ID().String())
	}
}

// compareTimes orders nil timestamps (never completed) before any set one.
func compareTimes(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}
