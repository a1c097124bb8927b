// Package http exposes the marketplace operations over a JSON REST API.
// It coordinates between HTTP handlers and application use cases; all
// business rules live in the command and query handlers.
package http

import (
	"deliverymarket/internal/core/application/usecases/commands"
	"deliverymarket/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server holds the command and query handlers behind the REST routes.
type Server struct {
	// Command handlers
	createFoodOrderHandler       commands.CreateFoodOrderCommandHandler
	cancelFoodOrderHandler       commands.CancelFoodOrderCommandHandler
	claimFoodOrderHandler        commands.ClaimFoodOrderCommandHandler
	updateFoodOrderStatusHandler commands.UpdateFoodOrderStatusCommandHandler
	reviewFoodOrderHandler       commands.ReviewFoodOrderCommandHandler
	createParcelHandler          commands.CreateParcelCommandHandler
	cancelParcelHandler          commands.CancelParcelCommandHandler
	claimParcelHandler           commands.ClaimParcelCommandHandler
	updateParcelStatusHandler    commands.UpdateParcelStatusCommandHandler
	reviewParcelHandler          commands.ReviewParcelCommandHandler

	// Query handlers
	getFoodOrderHandler        queries.GetFoodOrderQueryHandler
	getAvailableOrdersHandler  queries.GetAvailableOrdersQueryHandler
	getParcelHandler           queries.GetParcelQueryHandler
	getAvailableParcelsHandler queries.GetAvailableParcelsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createFoodOrderHandler commands.CreateFoodOrderCommandHandler,
	cancelFoodOrderHandler commands.CancelFoodOrderCommandHandler,
	claimFoodOrderHandler commands.ClaimFoodOrderCommandHandler,
	updateFoodOrderStatusHandler commands.UpdateFoodOrderStatusCommandHandler,
	reviewFoodOrderHandler commands.ReviewFoodOrderCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	cancelParcelHandler commands.CancelParcelCommandHandler,
	claimParcelHandler commands.ClaimParcelCommandHandler,
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler,
	reviewParcelHandler commands.ReviewParcelCommandHandler,
	getFoodOrderHandler queries.GetFoodOrderQueryHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	getAvailableParcelsHandler queries.GetAvailableParcelsQueryHandler,
) *Server {
	return &Server{
		createFoodOrderHandler:       createFoodOrderHandler,
		cancelFoodOrderHandler:       cancelFoodOrderHandler,
		claimFoodOrderHandler:        claimFoodOrderHandler,
		updateFoodOrderStatusHandler: updateFoodOrderStatusHandler,
		reviewFoodOrderHandler:       reviewFoodOrderHandler,
		createParcelHandler:          createParcelHandler,
		cancelParcelHandler:          cancelParcelHandler,
		claimParcelHandler:           claimParcelHandler,
		updateParcelStatusHandler:    updateParcelStatusHandler,
		reviewParcelHandler:          reviewParcelHandler,
		getFoodOrderHandler:          getFoodOrderHandler,
		getAvailableOrdersHandler:    getAvailableOrdersHandler,
		getParcelHandler:             getParcelHandler,
		getAvailableParcelsHandler:   getAvailableParcelsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance. The
// "available" listings are registered before the ":orderID" routes so echo
// does not treat the literal segment as an identifier.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateFoodOrder)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.GET("/orders/:orderID", s.GetFoodOrder)
	api.POST("/orders/:orderID/cancel", s.CancelFoodOrder)
	api.POST("/orders/:orderID/claim", s.ClaimFoodOrder)
	api.PATCH("/orders/:orderID/status", s.UpdateFoodOrderStatus)
	api.POST("/orders/:orderID/reviews", s.ReviewFoodOrder)

	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels/available", s.GetAvailableParcels)
	api.GET("/parcels/:parcelID", s.GetParcel)
	api.POST("/parcels/:parcelID/cancel", s.CancelParcel)
	api.POST("/parcels/:parcelID/claim", s.ClaimParcel)
	api.PATCH("/parcels/:parcelID/status", s.UpdateParcelStatus)
	api.POST("/parcels/:parcelID/reviews", s.ReviewParcel)
}
