package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wanderer/internal/errors"
	"wanderer/internal/service"
)

// ItineraryHandler handles itinerary endpoints.
type ItineraryHandler struct {
	itineraryService service.ItineraryService
}

// NewItineraryHandler creates a new itinerary handler.
func NewItineraryHandler(itineraryService service.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{itineraryService: itineraryService}
}

// CreateItineraryRequest represents an itinerary creation payload.
type CreateItineraryRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// AddItineraryPlaceRequest represents an add-place payload.
type AddItineraryPlaceRequest struct {
	PlaceID string `json:"place_id" validate:"required,uuid"`
	Order   int    `json:"order" validate:"gte=0"`
	Notes   string `json:"notes"`
}

// Create godoc
// @Summary Create an itinerary
// @Tags itineraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateItineraryRequest true "Itinerary data"
// @Success 201 {object} model.Itinerary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /itineraries [post]
func (h *ItineraryHandler) Create(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	var req CreateItineraryRequest
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

	itinerary, err := h.itineraryService.Create(c.Request().Context(), userID, req.Title, req.Description, req.StartDate, req.EndDate)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, itinerary)
}

// List godoc
// @Summary List the authenticated user's itineraries
// @Tags itineraries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Itinerary
// @Failure 401 {object} errors.ErrorResponse
// @Router /itineraries [get]
func (h *ItineraryHandler) List(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	itineraries, err := h.itineraryService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, itineraries)
}

// AddPlace godoc
// @Summary Add a place to an itinerary
// @Tags itineraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Param request body AddItineraryPlaceRequest true "Place reference"
// @Success 201 {object} model.ItineraryPlace
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /itineraries/{id}/places [post]
func (h *ItineraryHandler) AddPlace(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	itineraryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid itinerary ID",
			Code:  "INVALID_UUID",
		})
	}

	var req AddItineraryPlaceRequest
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

	placeID, err := uuid.Parse(req.PlaceID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid place_id",
			Code:  "INVALID_UUID",
		})
	}

	entry, err := h.itineraryService.AddPlace(c.Request().Context(), itineraryID, userID, placeID, req.Order, req.Notes)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, entry)
}

// ListPlaces godoc
// @Summary List the places in an itinerary
// @Tags itineraries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {array} model.ItineraryPlace
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /itineraries/{id}/places [get]
func (h *ItineraryHandler) ListPlaces(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	itineraryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid itinerary ID",
			Code:  "INVALID_UUID",
		})
	}

	entries, err := h.itineraryService.ListPlaces(c.Request().Context(), itineraryID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, entries)
}
