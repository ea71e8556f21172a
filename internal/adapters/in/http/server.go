package http

import (
	"errors"
	"net/http"
	"strconv"

	"marketplace/internal/adapters/in/http/middleware"
	"marketplace/internal/adapters/in/http/presenter"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error bodies kept compatible with the storefront the API grew out of.
const (
	msgNotFound      = "The resource you were looking for could not be found."
	msgNotAuthorized = "You are not authorized to perform that action."
)

const (
	defaultPage    = 1
	defaultPerPage = 15
)

// Server handles the order visibility HTTP API. It translates request
// parameters into queries, runs them for the authenticated actor and shapes
// the authorized result through the presenter.
type Server struct {
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		listOrdersHandler: listOrdersHandler,
		getOrderHandler:   getOrderHandler,
	}
}

// RegisterRoutes mounts the API on the given echo instance. Order routes sit
// behind the actor authentication middleware; health does not.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	orders := e.Group("/orders", auth)
	orders.GET("", s.ListOrders)
	orders.GET("/:number", s.GetOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ListOrders handles GET /orders - the authorized, filtered, paginated order
// listing for the authenticated actor.
//
// Recognized parameters: page, per_page, q[completed_at_not_null],
// q[s] (sort spec) and q[search] (free text).
func (s *Server) ListOrders(ctx echo.Context) error {
	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody(msgNotAuthorized))
	}

	page, err := intParam(ctx, "page", defaultPage)
	if err != nil {
		return writeError(ctx, err)
	}

	perPage, err := intParam(ctx, "per_page", defaultPerPage)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(
		identity.ActorID,
		identity.IsAdmin,
		ctx.QueryParam("q[completed_at_not_null]") == "true",
		ctx.QueryParam("q[search]"),
		ctx.QueryParam("q[s]"),
		page,
		perPage,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, presenter.ToOrderListView(response))
}

// GetOrder handles GET /orders/:number - a single order by business number.
func (s *Server) GetOrder(ctx echo.Context) error {
	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody(msgNotAuthorized))
	}

	query, err := queries.NewGetOrderQuery(identity.ActorID, identity.IsAdmin, ctx.Param("number"))
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, presenter.ToOrderDetail(found))
}

func intParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

// writeError maps application errors onto the API's status codes and error
// bodies. Denied and unauthenticated actors get the same body on different
// statuses; lookup misses get the storefront's not-found body.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorBody(msgNotFound))
	case errors.Is(err, errs.ErrUnauthorized):
		return ctx.JSON(http.StatusUnauthorized, errorBody(msgNotAuthorized))
	case errors.Is(err, errs.ErrAccessForbidden):
		return ctx.JSON(http.StatusForbidden, errorBody(msgNotAuthorized))
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, errorBody(err.Error()))
	default:
		return ctx.JSON(http.StatusInternalServerError, errorBody("Internal server error"))
	}
}

func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}
