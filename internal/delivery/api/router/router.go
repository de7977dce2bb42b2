// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pantry/config"
	"pantry/internal/delivery/api/middleware"
	"pantry/internal/delivery/api/router/handler"
	"pantry/internal/domain/entity"
	"pantry/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	OfferHandler       *handler.OfferHandler
	TransactionHandler *handler.TransactionHandler
	AdminHandler       *handler.AdminHandler
	HealthHandler      *handler.HealthHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Metrics            *metrics.Metrics `optional:"true"`
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	offerHandler       *handler.OfferHandler
	transactionHandler *handler.TransactionHandler
	adminHandler       *handler.AdminHandler
	healthHandler      *handler.HealthHandler
	authMiddleware     *middleware.AuthMiddleware
	metrics            *metrics.Metrics
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		offerHandler:       params.OfferHandler,
		transactionHandler: params.TransactionHandler,
		adminHandler:       params.AdminHandler,
		healthHandler:      params.HealthHandler,
		authMiddleware:     params.AuthMiddleware,
		metrics:            params.Metrics,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/status", r.healthHandler.Status)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/me", r.authHandler.Me)

	offersGroup := apiV1.Group("/offers")
	{
		offersGroup.GET("", r.offerHandler.ListOffers)
		offersGroup.GET("/:id", r.offerHandler.GetOffer)
		offersGroup.POST("", r.offerHandler.CreateOffer, r.authMiddleware.RequireRole(entity.RoleDonor, entity.RolePartner))
		// Ownership is checked by the use case, admins pass it as well.
		offersGroup.PUT("/:id", r.offerHandler.UpdateOffer)
		offersGroup.DELETE("/:id", r.offerHandler.DeleteOffer)
	}

	beneficiaryOnly := r.authMiddleware.RequireRole(entity.RoleBeneficiary)
	transactionsGroup := apiV1.Group("/transactions")
	{
		transactionsGroup.POST("/reserve", r.transactionHandler.Reserve, beneficiaryOnly)
		transactionsGroup.POST("/collect-qr", r.transactionHandler.CollectByQR, beneficiaryOnly)
		transactionsGroup.GET("/mine", r.transactionHandler.ListMine)
		transactionsGroup.GET("/history/:userId", r.transactionHandler.History)
		transactionsGroup.GET("/:id", r.transactionHandler.GetTransaction)
		transactionsGroup.GET("/:id/qr", r.transactionHandler.PickupQR)
		transactionsGroup.PUT("/:id/collect", r.transactionHandler.Collect)
		transactionsGroup.PUT("/:id/cancel", r.transactionHandler.Cancel)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/users/:id", r.adminHandler.GetUser)
		adminGroup.PUT("/users/:id", r.adminHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)

		adminGroup.GET("/offers", r.adminHandler.ListOffers)
		adminGroup.DELETE("/offers/:id", r.adminHandler.DeleteOffer)

		adminGroup.GET("/transactions", r.adminHandler.ListTransactions)
		adminGroup.PUT("/transactions/:id/force-cancel", r.transactionHandler.ForceCancel)
	}
}
