package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wanderer/internal/errors"
	"wanderer/internal/service"
)

// GuideHandler handles guide discovery endpoints.
type GuideHandler struct {
	guideService service.GuideService
}

// NewGuideHandler creates a new guide handler.
func NewGuideHandler(guideService service.GuideService) *GuideHandler {
	return &GuideHandler{guideService: guideService}
}

// List godoc
// @Summary List all guides
// @Tags guides
// @Produce json
// @Success 200 {array} model.Snapshot
// @Failure 500 {object} errors.ErrorResponse
// @Router /guides [get]
func (h *GuideHandler) List(c echo.Context) error {
	guides, err := h.guideService.ListGuides(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, guides)
}

// Get godoc
// @Summary Get a guide by ID
// @Tags guides
// @Produce json
// @Param id path string true "Guide user ID"
// @Success 200 {object} model.Snapshot
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /guides/{id} [get]
func (h *GuideHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid guide ID",
			Code:  "INVALID_UUID",
		})
	}

	guide, err := h.guideService.GetGuide(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, guide)
}

// Nearby godoc
// @Summary List guides closest to a location
// @Tags guides
// @Produce json
// @Security BearerAuth
// @Param latitude query number true "Origin latitude"
// @Param longitude query number true "Origin longitude"
// @Param limit query int false "Maximum results"
// @Success 200 {array} service.RankedGuide
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /nearby/guides [get]
func (h *GuideHandler) Nearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid latitude",
			Code:  "INVALID_COORDINATES",
		})
	}
	lon, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid longitude",
			Code:  "INVALID_COORDINATES",
		})
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid limit",
				Code:  "INVALID_LIMIT",
			})
		}
	}

	guides, err := h.guideService.Nearby(c.Request().Context(), lat, lon, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, guides)
}
