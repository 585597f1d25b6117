package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/pkg/errs"
)

// Server exposes the dashboard's use cases over HTTP. It translates routes
// and bodies into commands and queries and maps the error taxonomy onto
// status codes; no business rules live here.
type Server struct {
	loginHandler      commands.LoginCommandHandler
	logoutHandler     commands.LogoutCommandHandler
	transitionHandler commands.TransitionOrderCommandHandler
	refreshHandler    commands.RefreshViewsCommandHandler
	listHandler       queries.GetOrderListQueryHandler
}

// NewServer creates the HTTP server over the given handlers.
func NewServer(
	loginHandler commands.LoginCommandHandler,
	logoutHandler commands.LogoutCommandHandler,
	transitionHandler commands.TransitionOrderCommandHandler,
	refreshHandler commands.RefreshViewsCommandHandler,
	listHandler queries.GetOrderListQueryHandler,
) *Server {
	return &Server{
		loginHandler:      loginHandler,
		logoutHandler:     logoutHandler,
		transitionHandler: transitionHandler,
		refreshHandler:    refreshHandler,
		listHandler:       listHandler,
	}
}

// RegisterRoutes attaches all dashboard routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/login", s.Login)
	api.POST("/logout", s.Logout)
	api.GET("/orders/:bucket", s.ListOrders)
	api.POST("/orders/:id/:transition", s.TransitionOrder)
	api.POST("/views/refresh", s.RefreshViews)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /api/v1/login - establishes a session.
func (s *Server) Login(ctx echo.Context) error {
	var body loginRequestDTO
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(body.Email, body.Password)
	if err != nil {
		return writeTaxonomyError(ctx, err)
	}

	cred, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeTaxonomyError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserDTO(cred.User()))
}

// Logout handles POST /api/v1/logout - ends the session.
func (s *Server) Logout(ctx echo.Context) error {
	cmd := commands.NewLogoutCommand()
	if err := s.logoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeTaxonomyError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/orders/:bucket - one page of a bucket view.
// Pagination comes from the limit and skip query parameters; allow_stale=true
// lets a cached snapshot stand in when the backend is unreachable.
func (s *Server) ListOrders(ctx echo.Context) error {
	bucket, err := order.ParseBucket(ctx.Param("bucket"))
	if err != nil {
		return writeTaxonomyError(ctx, err)
	}

	page, err := pageFromQuery(ctx)
	if err != nil {
		return writeTaxonomyError(ctx, err)
	}

	var query queries.GetOrderListQuery
	if ctx.QueryParam("allow_stale") == "true" {
		query, err = queries.NewGetOrderListQueryWithStaleFallback(bucket, page)
	} else {
		query, err = queries.NewGetOrderListQuery(bucket, page)
	}
	if err != nil {
		return writeTaxonomyError(ctx, err)
	}

	view, err := s.listHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeTaxonomyError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toListResponseDTO(view))
}

// TransitionOrder handles POST /api/v1/orders/:id/:transition - a lifecycle
// transition. The optional body carries the decline reason or delay message.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return writeTaxonomyError(ctx, err)
	}

	transition, err := order.ParseTransition(ctx.Param("transition"))
	if err != nil {
		return writeTaxonomyError(ctx, err)
	}

	var body transitionRequestDTO
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, transition, body.Reason, body.Message)
	if err != nil {
		return writeTaxonomyError(ctx, err)
	}

	updated, err := s.transitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeTaxonomyError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, transitionResponseDTO{Order: toOrderDTO(updated)})
}

// RefreshViews handles POST /api/v1/views/refresh - refetches every cached
// page on demand.
func (s *Server) RefreshViews(ctx echo.Context) error {
	cmd := commands.NewRefreshViewsCommand()
	if err := s.refreshHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeTaxonomyError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pageFromQuery(ctx echo.Context) (kernel.Page, error) {
	limit := kernel.DefaultPageLimit
	skip := 0

	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return kernel.Page{}, errs.NewValueIsInvalidErrorWithCause("limit", err)
		}
		limit = parsed
	}
	if raw := ctx.QueryParam("skip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return kernel.Page{}, errs.NewValueIsInvalidErrorWithCause("skip", err)
		}
		skip = parsed
	}

	return kernel.NewPage(limit, skip)
}

// writeTaxonomyError maps a classified error onto its HTTP status code.
func writeTaxonomyError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidTransition):
		return writeError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrUnauthenticated), errors.Is(err, errs.ErrAuthRejected):
		return writeError(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrTransportFailure):
		return writeError(ctx, http.StatusBadGateway, err.Error())
	default:
		return writeError(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, errorDTO{Code: code, Message: message})
}
