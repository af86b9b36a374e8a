package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"wanderer/internal/config"
	"wanderer/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	guideHandler *handler.GuideHandler,
	connectionHandler *handler.ConnectionHandler,
	placeHandler *handler.PlaceHandler,
	itineraryHandler *handler.ItineraryHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.POST("/seed", seedHandler.Seed)

	// Catalog routes are public so the app can browse before login
	api.GET("/places", placeHandler.List)
	api.GET("/places/:id", placeHandler.Get)
	api.GET("/guides", guideHandler.List)
	api.GET("/guides/:id", guideHandler.Get)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// User routes
	secured.GET("/me", userHandler.Me)
	secured.GET("/users/:id", userHandler.GetUser)
	secured.POST("/user/location", userHandler.UpdateLocation)
	secured.PUT("/user/profile", userHandler.UpdateProfile)

	// Guide discovery
	secured.GET("/nearby/guides", guideHandler.Nearby)

	// Connection routes
	secured.POST("/connections", connectionHandler.Create)
	secured.GET("/users/:id/connections", connectionHandler.ListForUser)
	secured.POST("/connections/:id/accept", connectionHandler.Accept)
	secured.POST("/connections/:id/decline", connectionHandler.Decline)
	secured.POST("/connections/:id/cancel", connectionHandler.Cancel)
	secured.PATCH("/connections/:id", connectionHandler.Update)

	// Place routes
	secured.POST("/places", placeHandler.Create)
	secured.POST("/saved-places", placeHandler.Save)
	secured.GET("/saved-places", placeHandler.ListSaved)

	// Itinerary routes
	secured.POST("/itineraries", itineraryHandler.Create)
	secured.GET("/itineraries", itineraryHandler.List)
	secured.POST("/itineraries/:id/places", itineraryHandler.AddPlace)
	secured.GET("/itineraries/:id/places", itineraryHandler.ListPlaces)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
