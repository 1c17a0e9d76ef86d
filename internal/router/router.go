// Package router sets up HTTP routes for the API and the rendered pages.
package router

import (
	_ "travlr/swagger" // Import generated swagger docs

	"travlr/internal/handler"
	"travlr/internal/middleware"
	"travlr/internal/ratelimit"
	"travlr/pkg/auth"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler   *handler.AuthHandler
	TripHandler   *handler.TripHandler
	UserHandler   *handler.UserHandler
	SystemHandler *handler.SystemHandler
	WebHandler    *handler.WebHandler

	JWTManager    *auth.JWTManager
	RateLimits    ratelimit.CounterStore
	SessionSecret string
	SPAOrigin     string
	TemplateGlob  string
	StaticDir     string
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.SPAOrigin))

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// JSON API
	api := r.Group("/api")
	api.Use(middleware.APIRateLimit(cfg.RateLimits))
	api.Use(middleware.SanitizeQuery(), middleware.SanitizeParams(), middleware.SanitizeBody())
	{
		// Auth routes (public, stricter limit on credential endpoints)
		api.POST("/register", middleware.LoginRateLimit(cfg.RateLimits), cfg.AuthHandler.Register)
		api.POST("/login", middleware.LoginRateLimit(cfg.RateLimits), cfg.AuthHandler.Login)

		// Trip routes (public reads)
		api.GET("/trips", cfg.TripHandler.ListTrips)
		api.GET("/trips/:tripId", cfg.TripHandler.GetTrip)

		// Trip routes (manager or admin writes)
		managed := api.Group("/trips")
		managed.Use(middleware.Auth(cfg.JWTManager), middleware.RequireManager())
		{
			managed.POST("", cfg.TripHandler.CreateTrip)
			managed.PUT("/:tripId", cfg.TripHandler.UpdateTrip)
			managed.POST("/:tripId/image-upload", cfg.TripHandler.ImageUpload)
		}

		// Trip deletion (admin only)
		api.DELETE("/trips/:tripId",
			middleware.Auth(cfg.JWTManager), middleware.RequireAdmin(),
			cfg.TripHandler.DeleteTrip)

		// Profile (any authenticated user)
		api.GET("/profile", middleware.Auth(cfg.JWTManager), cfg.UserHandler.GetProfile)

		// User administration (admin only)
		api.GET("/users",
			middleware.Auth(cfg.JWTManager), middleware.RequireAdmin(),
			cfg.UserHandler.ListUsers)

		// System health (admin only)
		api.GET("/system/health",
			middleware.Auth(cfg.JWTManager), middleware.RequireAdmin(),
			cfg.SystemHandler.Health)
	}

	// Server-rendered pages with cookie sessions
	if cfg.WebHandler != nil {
		if cfg.TemplateGlob != "" {
			r.LoadHTMLGlob(cfg.TemplateGlob)
		}
		if cfg.StaticDir != "" {
			r.Static("/static", cfg.StaticDir)
		}

		web := r.Group("/")
		web.Use(sessions.Sessions("travlr_session", cookie.NewStore([]byte(cfg.SessionSecret))))
		{
			web.GET("/", cfg.WebHandler.Index)
			web.GET("/login", cfg.WebHandler.LoginForm)
			web.POST("/login", middleware.LoginRateLimit(cfg.RateLimits), cfg.WebHandler.Login)
			web.GET("/logout", cfg.WebHandler.Logout)
			web.GET("/travel", cfg.WebHandler.Travel)

			authed := web.Group("/")
			authed.Use(middleware.SessionAuth())
			{
				authed.GET("/travellers", cfg.WebHandler.Travellers)
				authed.POST("/travellers", cfg.WebHandler.AddTraveller)
			}
		}
	}

	return r
}
