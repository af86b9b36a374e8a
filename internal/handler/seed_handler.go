package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wanderer/internal/errors"
	"wanderer/internal/seed"
)

// SeedHandler exposes demo-data seeding over HTTP.
type SeedHandler struct {
	seeder *seed.Seeder
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seeder *seed.Seeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// Seed godoc
// @Summary Load the demo guide roster and attraction catalog
// @Tags seed
// @Produce json
// @Success 200 {object} seed.Result
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	result, err := h.seeder.Run(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "seeding failed",
			Code:  "SEED_FAILED",
		})
	}

	return c.JSON(http.StatusOK, result)
}
