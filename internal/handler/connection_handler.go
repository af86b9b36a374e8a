package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"wanderer/internal/errors"
	"wanderer/internal/model"
	"wanderer/internal/service"
)

// ConnectionHandler handles connection endpoints.
type ConnectionHandler struct {
	connectionService service.ConnectionService
}

// NewConnectionHandler creates a new connection handler.
func NewConnectionHandler(connectionService service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connectionService: connectionService}
}

// CreateConnectionRequest represents a connection request payload.
type CreateConnectionRequest struct {
	ToUserID    string `json:"to_user_id" validate:"required,uuid"`
	Message     string `json:"message"`
	TripDetails string `json:"trip_details"`
	Budget      string `json:"budget"`
}

// UpdateConnectionRequest is the legacy PATCH payload kept for client
// compatibility; accepted/declined/cancelled map to the dedicated transitions.
type UpdateConnectionRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined cancelled"`
}

// Create godoc
// @Summary Send a connection request to a guide
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateConnectionRequest true "Connection data"
// @Success 201 {object} model.Connection
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /connections [post]
func (h *ConnectionHandler) Create(c echo.Context) error {
	fromUserID, err := actingUserID(c)
	if err != nil {
		return err
	}

	var req CreateConnectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	toUserID, err := uuid.Parse(req.ToUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid to_user_id",
			Code:  "INVALID_UUID",
		})
	}

	var budget decimal.NullDecimal
	if req.Budget != "" {
		parsed, err := decimal.NewFromString(req.Budget)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid budget",
				Code:  "INVALID_BUDGET",
			})
		}
		budget = decimal.NewNullDecimal(parsed)
	}

	conn, err := h.connectionService.Create(c.Request().Context(), fromUserID, toUserID, req.Message, req.TripDetails, budget)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, conn)
}

// ListForUser godoc
// @Summary List a user's connections with participant details
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} model.ConnectionView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/{id}/connections [get]
func (h *ConnectionHandler) ListForUser(c echo.Context) error {
	actorID, err := actingUserID(c)
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user ID",
			Code:  "INVALID_UUID",
		})
	}

	// A user may only list their own connections.
	if userID != actorID {
		httpErr := errors.MapErrorToHTTP(errors.ErrNotPermitted)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	views, err := h.connectionService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, views)
}

// Accept godoc
// @Summary Accept a pending connection (guide only)
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Connection ID"
// @Success 200 {object} model.Connection
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /connections/{id}/accept [post]
func (h *ConnectionHandler) Accept(c echo.Context) error {
	return h.transition(c, model.ConnectionStatusAccepted)
}

// Decline godoc
// @Summary Decline a pending connection (guide only)
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Connection ID"
// @Success 200 {object} model.Connection
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /connections/{id}/decline [post]
func (h *ConnectionHandler) Decline(c echo.Context) error {
	return h.transition(c, model.ConnectionStatusDeclined)
}

// Cancel godoc
// @Summary Cancel a pending connection (requesting tourist only)
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Connection ID"
// @Success 200 {object} model.Connection
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /connections/{id}/cancel [post]
func (h *ConnectionHandler) Cancel(c echo.Context) error {
	return h.transition(c, model.ConnectionStatusCancelled)
}

// Update godoc
// @Summary Update connection status (legacy PATCH)
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Connection ID"
// @Param request body UpdateConnectionRequest true "Target status"
// @Success 200 {object} model.Connection
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /connections/{id} [patch]
func (h *ConnectionHandler) Update(c echo.Context) error {
	var req UpdateConnectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return h.transition(c, model.ConnectionStatus(req.Status))
}

func (h *ConnectionHandler) transition(c echo.Context, target model.ConnectionStatus) error {
	actorID, err := actingUserID(c)
	if err != nil {
		return err
	}

	connID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid connection ID",
			Code:  "INVALID_UUID",
		})
	}

	var conn *model.Connection
	switch target {
	case model.ConnectionStatusAccepted:
		conn, err = h.connectionService.Accept(c.Request().Context(), connID, actorID)
	case model.ConnectionStatusDeclined:
		conn, err = h.connectionService.Decline(c.Request().Context(), connID, actorID)
	case model.ConnectionStatusCancelled:
		conn, err = h.connectionService.Cancel(c.Request().Context(), connID, actorID)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid status",
			Code:  "INVALID_STATUS",
		})
	}
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, conn)
}
