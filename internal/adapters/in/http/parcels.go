package http

import (
	"net/http"
	"time"

	"deliverymarket/internal/core/application/usecases/commands"
	"deliverymarket/internal/core/application/usecases/queries"
	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// NewWaypoint is an address with optional coordinates in a parcel request.
type NewWaypoint struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// NewParcel is the request body for POST /parcels.
type NewParcel struct {
	RecipientName  string      `json:"recipient_name"`
	RecipientPhone string      `json:"recipient_phone"`
	Pickup         NewWaypoint `json:"pickup"`
	Dropoff        NewWaypoint `json:"dropoff"`
	Description    string      `json:"description,omitempty"`
	Size           string      `json:"size"`
	WeightKg       *float64    `json:"weight_kg,omitempty"`
}

// Parcel is the response body for parcel operations.
type Parcel struct {
	ID                  string          `json:"id"`
	SenderID            string          `json:"sender_id"`
	DriverID            *string         `json:"driver_id,omitempty"`
	Status              string          `json:"status"`
	RecipientName       string          `json:"recipient_name"`
	RecipientPhone      string          `json:"recipient_phone"`
	PickupAddress       string          `json:"pickup_address"`
	DeliveryAddress     string          `json:"delivery_address"`
	Description         string          `json:"description,omitempty"`
	Size                string          `json:"size"`
	WeightKg            *float64        `json:"weight_kg,omitempty"`
	DeliveryFee         decimal.Decimal `json:"delivery_fee"`
	EstimatedDistanceKm float64         `json:"estimated_distance_km"`
	CreatedAt           time.Time       `json:"created_at"`
	PickedUpAt          *time.Time      `json:"picked_up_at,omitempty"`
	DeliveredAt         *time.Time      `json:"delivered_at,omitempty"`
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	senderID, err := principal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body NewParcel
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	pickup, err := waypointFromRequest(body.Pickup)
	if err != nil {
		return respondError(ctx, err)
	}
	dropoff, err := waypointFromRequest(body.Dropoff)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), senderID,
		parcel.Recipient{Name: body.RecipientName, Phone: body.RecipientPhone},
		pickup, dropoff,
		body.Description, body.Size, body.WeightKg,
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid parcel data: "+err.Error())
	}

	created, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, parcelFromAggregate(created))
}

// GetParcel handles GET /api/v1/parcels/:parcelID.
func (s *Server) GetParcel(ctx echo.Context) error {
	requestedBy, err := principal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	parcelID, err := pathUUID(ctx, "parcelID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetParcelQuery(parcelID, requestedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableParcels handles GET /api/v1/parcels/available.
func (s *Server) GetAvailableParcels(ctx echo.Context) error {
	if _, err := principal(ctx); err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getAvailableParcelsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableParcelsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelParcel handles POST /api/v1/parcels/:parcelID/cancel.
func (s *Server) CancelParcel(ctx echo.Context) error {
	requestedBy, err := principal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	parcelID, err := pathUUID(ctx, "parcelID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelParcelCommand(parcelID, requestedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelFromAggregate(cancelled))
}

// ClaimParcel handles POST /api/v1/parcels/:parcelID/claim.
func (s *Server) ClaimParcel(ctx echo.Context) error {
	driverID, err := driverPrincipal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	parcelID, err := pathUUID(ctx, "parcelID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewClaimParcelCommand(parcelID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	claimed, err := s.claimParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelFromAggregate(claimed))
}

// UpdateParcelStatus handles PATCH /api/v1/parcels/:parcelID/status.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	driverID, err := driverPrincipal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	parcelID, err := pathUUID(ctx, "parcelID")
	if err != nil {
		return respondError(ctx, err)
	}

	var body StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(parcelID, driverID, body.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateParcelStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelFromAggregate(updated))
}

// ReviewParcel handles POST /api/v1/parcels/:parcelID/reviews.
func (s *Server) ReviewParcel(ctx echo.Context) error {
	reviewerID, err := principal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	parcelID, err := pathUUID(ctx, "parcelID")
	if err != nil {
		return respondError(ctx, err)
	}

	var body NewReview
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewReviewParcelCommand(parcelID, reviewerID, body.Rating, body.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.reviewParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, reviewFromAggregate(created))
}

func waypointFromRequest(body NewWaypoint) (parcel.Waypoint, error) {
	waypoint := parcel.Waypoint{Address: body.Address}
	if body.Lat != nil && body.Lng != nil {
		point, err := kernel.NewGeoPoint(*body.Lat, *body.Lng)
		if err != nil {
			return parcel.Waypoint{}, err
		}
		waypoint.Location = &point
	}
	return waypoint, nil
}

func parcelFromAggregate(aggregate *parcel.Parcel) Parcel {
	var driverID *string
	if aggregate.Driver() != nil {
		id := aggregate.Driver().String()
		driverID = &id
	}

	recipient := aggregate.Recipient()
	return Parcel{
		ID:                  aggregate.ID().String(),
		SenderID:            aggregate.SenderID().String(),
		DriverID:            driverID,
		Status:              aggregate.Status().String(),
		RecipientName:       recipient.Name,
		RecipientPhone:      recipient.Phone,
		PickupAddress:       aggregate.Pickup().Address,
		DeliveryAddress:     aggregate.Delivery().Address,
		Description:         aggregate.Description(),
		Size:                aggregate.Size().String(),
		WeightKg:            aggregate.WeightKg(),
		DeliveryFee:         aggregate.DeliveryFee(),
		EstimatedDistanceKm: aggregate.EstimatedDistanceKm(),
		CreatedAt:           aggregate.CreatedAt(),
		PickedUpAt:          aggregate.PickedUpAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
	}
}
