// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finanzas-personales/backend/internal/integration/entrypoint/controller"
	"github.com/finanzas-personales/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	goalController       *controller.GoalController
	paymentController    *controller.PaymentController
	creditCardController *controller.CreditCardController
	timelessController   *controller.TimelessController
	wishlistController   *controller.WishlistController
	dashboardController  *controller.DashboardController
	snapshotController   *controller.SnapshotController
	unlockRateLimiter    *middleware.RateLimiter
	lockMiddleware       *middleware.LockMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	goalController *controller.GoalController,
	paymentController *controller.PaymentController,
	creditCardController *controller.CreditCardController,
	timelessController *controller.TimelessController,
	wishlistController *controller.WishlistController,
	dashboardController *controller.DashboardController,
	snapshotController *controller.SnapshotController,
	unlockRateLimiter *middleware.RateLimiter,
	lockMiddleware *middleware.LockMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		goalController:       goalController,
		paymentController:    paymentController,
		creditCardController: creditCardController,
		timelessController:   timelessController,
		wishlistController:   wishlistController,
		dashboardController:  dashboardController,
		snapshotController:   snapshotController,
		unlockRateLimiter:    unlockRateLimiter,
		lockMiddleware:       lockMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Auth routes stay outside
// the lock middleware so the app can be unlocked; everything else requires a
// session token once a PIN is configured.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.GET("/status", r.authController.Status)
		auth.POST("/pin", r.authController.SetupPIN)
		auth.POST("/unlock", r.unlockRateLimiter.Middleware(), r.authController.Unlock)
		auth.PUT("/pin", r.lockMiddleware.RequireUnlocked(), r.authController.ChangePIN)
	}

	api := v1.Group("")
	api.Use(r.lockMiddleware.RequireUnlocked())
	{
		goals := api.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.PATCH("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
			goals.POST("/:id/contributions", r.goalController.Contribute)
			goals.PUT("/:id/projection", r.goalController.SetProjection)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", r.paymentController.List)
			payments.POST("", r.paymentController.Create)
			payments.PATCH("/:id", r.paymentController.Update)
			payments.DELETE("/:id", r.paymentController.Delete)
			payments.POST("/contributions", r.paymentController.Contribute)
		}

		cards := api.Group("/credit-cards")
		{
			cards.GET("", r.creditCardController.List)
			cards.POST("", r.creditCardController.Create)
			cards.PATCH("/:id", r.creditCardController.Update)
			cards.PUT("/:id/balance", r.creditCardController.UpdateBalance)
			cards.DELETE("/:id", r.creditCardController.Delete)
			cards.POST("/run-cycle", r.creditCardController.RunCycle)
		}

		timeless := api.Group("/timeless-payments")
		{
			timeless.GET("", r.timelessController.List)
			timeless.POST("", r.timelessController.Create)
			timeless.PATCH("/:id", r.timelessController.Update)
			timeless.DELETE("/:id", r.timelessController.Delete)
			timeless.POST("/:id/contributions", r.timelessController.Contribute)
		}

		wishlist := api.Group("/wishlist")
		{
			wishlist.GET("", r.wishlistController.List)
			wishlist.POST("", r.wishlistController.Create)
			wishlist.PATCH("/:id", r.wishlistController.Update)
			wishlist.DELETE("/:id", r.wishlistController.Delete)
			wishlist.POST("/:id/promote", r.wishlistController.Promote)
		}

		api.GET("/dashboard/summary", r.dashboardController.GetSummary)

		api.GET("/snapshot", r.snapshotController.Export)
		api.POST("/snapshot", r.snapshotController.Import)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
