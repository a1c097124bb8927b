package http

import (
	"net/http"
	"time"

	"deliverymarket/internal/core/application/usecases/commands"
	"deliverymarket/internal/core/application/usecases/queries"
	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/order"
	"deliverymarket/internal/core/domain/model/review"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// NewOrderItem is one requested line in an order creation request.
type NewOrderItem struct {
	MenuItemID          string `json:"menu_item_id"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// NewFoodOrder is the request body for POST /orders.
type NewFoodOrder struct {
	RestaurantID        string         `json:"restaurant_id"`
	DeliveryAddress     string         `json:"delivery_address"`
	DeliveryLat         *float64       `json:"delivery_lat,omitempty"`
	DeliveryLng         *float64       `json:"delivery_lng,omitempty"`
	Items               []NewOrderItem `json:"items"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
}

// StatusUpdate is the request body for PATCH status routes.
type StatusUpdate struct {
	Status string `json:"status"`
}

// NewReview is the request body for POST review routes.
type NewReview struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// FoodOrderItem is one order line in an order response.
type FoodOrderItem struct {
	MenuItemID          string          `json:"menu_item_id"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	LineTotal           decimal.Decimal `json:"line_total"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

// FoodOrder is the response body for order operations.
type FoodOrder struct {
	ID                  string          `json:"id"`
	CustomerID          string          `json:"customer_id"`
	RestaurantID        string          `json:"restaurant_id"`
	DriverID            *string         `json:"driver_id,omitempty"`
	Status              string          `json:"status"`
	DeliveryAddress     string          `json:"delivery_address"`
	Items               []FoodOrderItem `json:"items"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	DeliveryFee         decimal.Decimal `json:"delivery_fee"`
	Tax                 decimal.Decimal `json:"tax"`
	Total               decimal.Decimal `json:"total"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	ConfirmedAt         *time.Time      `json:"confirmed_at,omitempty"`
	DeliveredAt         *time.Time      `json:"delivered_at,omitempty"`
}

// Review is the response body for review operations.
type Review struct {
	ID         string    `json:"id"`
	ReviewerID string    `json:"reviewer_id"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	JobID      string    `json:"job_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateFoodOrder handles POST /api/v1/orders.
func (s *Server) CreateFoodOrder(ctx echo.Context) error {
	customerID, err := principal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body NewFoodOrder
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id: "+err.Error())
	}

	var location *kernel.GeoPoint
	if body.DeliveryLat != nil && body.DeliveryLng != nil {
		point, err := kernel.NewGeoPoint(*body.DeliveryLat, *body.DeliveryLng)
		if err != nil {
			return respondError(ctx, err)
		}
		location = &point
	}

	items := make([]commands.OrderItemRequest, 0, len(body.Items))
	for _, item := range body.Items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return respondBadRequest(ctx, "invalid menu item id: "+err.Error())
		}
		items = append(items, commands.OrderItemRequest{
			MenuItemID:          menuItemID,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	cmd, err := commands.NewCreateFoodOrderCommand(
		kernel.NewUUID(), customerID, restaurantID,
		body.DeliveryAddress, location, items, body.SpecialInstructions,
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid order data: "+err.Error())
	}

	created, err := s.createFoodOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, foodOrderFromAggregate(created))
}

// GetFoodOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetFoodOrder(ctx echo.Context) error {
	requestedBy, err := principal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetFoodOrderQuery(orderID, requestedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getFoodOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableOrders handles GET /api/v1/orders/available.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	if _, err := principal(ctx); err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getAvailableOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelFoodOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelFoodOrder(ctx echo.Context) error {
	requestedBy, err := principal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelFoodOrderCommand(orderID, requestedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelFoodOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, foodOrderFromAggregate(cancelled))
}

// ClaimFoodOrder handles POST /api/v1/orders/:orderID/claim.
func (s *Server) ClaimFoodOrder(ctx echo.Context) error {
	driverID, err := driverPrincipal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewClaimFoodOrderCommand(orderID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	claimed, err := s.claimFoodOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, foodOrderFromAggregate(claimed))
}

// UpdateFoodOrderStatus handles PATCH /api/v1/orders/:orderID/status.
func (s *Server) UpdateFoodOrderStatus(ctx echo.Context) error {
	driverID, err := driverPrincipal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var body StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateFoodOrderStatusCommand(orderID, driverID, body.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateFoodOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, foodOrderFromAggregate(updated))
}

// ReviewFoodOrder handles POST /api/v1/orders/:orderID/reviews.
func (s *Server) ReviewFoodOrder(ctx echo.Context) error {
	reviewerID, err := principal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var body NewReview
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewReviewFoodOrderCommand(orderID, reviewerID, body.Rating, body.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.reviewFoodOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, reviewFromAggregate(created))
}

func reviewFromAggregate(entity *review.Review) Review {
	return Review{
		ID:         entity.ID().String(),
		ReviewerID: entity.ReviewerID().String(),
		TargetType: entity.TargetType().String(),
		TargetID:   entity.TargetID().String(),
		JobID:      entity.JobID().String(),
		Rating:     entity.Rating(),
		Comment:    entity.Comment(),
		CreatedAt:  entity.CreatedAt(),
	}
}

func foodOrderFromAggregate(aggregate *order.Order) FoodOrder {
	items := make([]FoodOrderItem, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = FoodOrderItem{
			MenuItemID:          item.MenuItemID().String(),
			Quantity:            item.Quantity(),
			UnitPrice:           item.UnitPrice(),
			LineTotal:           item.LineTotal(),
			SpecialInstructions: item.SpecialInstructions(),
		}
	}

	var driverID *string
	if aggregate.Driver() != nil {
		id := aggregate.Driver().String()
		driverID = &id
	}

	totals := aggregate.Totals()
	return FoodOrder{
		ID:                  aggregate.ID().String(),
		CustomerID:          aggregate.CustomerID().String(),
		RestaurantID:        aggregate.RestaurantID().String(),
		DriverID:            driverID,
		Status:              aggregate.Status().String(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		Items:               items,
		Subtotal:            totals.Subtotal,
		DeliveryFee:         totals.DeliveryFee,
		Tax:                 totals.Tax,
		Total:               totals.Total,
		SpecialInstructions: aggregate.SpecialInstructions(),
		CreatedAt:           aggregate.CreatedAt(),
		ConfirmedAt:         aggregate.ConfirmedAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
	}
}
