package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wanderer/internal/errors"
	"wanderer/internal/model"
	"wanderer/internal/service"
)

// PlaceHandler handles place and saved-place endpoints.
type PlaceHandler struct {
	placeService service.PlaceService
}

// NewPlaceHandler creates a new place handler.
func NewPlaceHandler(placeService service.PlaceService) *PlaceHandler {
	return &PlaceHandler{placeService: placeService}
}

// CreatePlaceRequest represents a place creation payload.
type CreatePlaceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
	Location    string  `json:"location"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	ImageURL    string  `json:"image_url"`
}

// SavePlaceRequest represents a save-place payload.
type SavePlaceRequest struct {
	PlaceID string `json:"place_id" validate:"required,uuid"`
	Notes   string `json:"notes"`
}

// List godoc
// @Summary List places, optionally filtered by category
// @Tags places
// @Produce json
// @Param category query string false "Place category"
// @Success 200 {array} model.Place
// @Failure 500 {object} errors.ErrorResponse
// @Router /places [get]
func (h *PlaceHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		places []model.Place
		err    error
	)
	if category := c.QueryParam("category"); category != "" {
		places, err = h.placeService.ListPlacesByCategory(ctx, model.PlaceCategory(category))
	} else {
		places, err = h.placeService.ListPlaces(ctx)
	}
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, places)
}

// Get godoc
// @Summary Get a place by ID
// @Tags places
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} model.Place
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /places/{id} [get]
func (h *PlaceHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid place ID",
			Code:  "INVALID_UUID",
		})
	}

	place, err := h.placeService.GetPlace(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, place)
}

// Create godoc
// @Summary Create a place
// @Tags places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePlaceRequest true "Place data"
// @Success 201 {object} model.Place
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /places [post]
func (h *PlaceHandler) Create(c echo.Context) error {
	var req CreatePlaceRequest
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

	place, err := h.placeService.CreatePlace(c.Request().Context(), &model.Place{
		Name:        req.Name,
		Description: req.Description,
		Category:    model.PlaceCategory(req.Category),
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, place)
}

// Save godoc
// @Summary Save a place to the authenticated user's list
// @Tags places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SavePlaceRequest true "Place reference"
// @Success 201 {object} model.SavedPlace
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /saved-places [post]
func (h *PlaceHandler) Save(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	var req SavePlaceRequest
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

	saved, err := h.placeService.SavePlace(c.Request().Context(), userID, placeID, req.Notes)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, saved)
}

// ListSaved godoc
// @Summary List the authenticated user's saved places
// @Tags places
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.SavedPlace
// @Failure 401 {object} errors.ErrorResponse
// @Router /saved-places [get]
func (h *PlaceHandler) ListSaved(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	saved, err := h.placeService.ListSavedPlaces(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, saved)
}
