// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"coverd/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PolicyHandler *handler.PolicyHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	policyHandler *handler.PolicyHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		policyHandler: params.PolicyHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	policyGroup := e.Group("/api/policies")
	{
		policyGroup.POST("", r.policyHandler.Sell)
		policyGroup.GET("/:reference", r.policyHandler.Get)
		policyGroup.POST("/:reference/cancellation", r.policyHandler.Cancel)
		policyGroup.POST("/:reference/renewals", r.policyHandler.Renew)
		policyGroup.GET("/:reference/cancellation-quote", r.policyHandler.QuoteCancellationRefund)
		policyGroup.GET("/:reference/renewal-eligibility", r.policyHandler.CheckRenewable)
	}
}
