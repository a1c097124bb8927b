package commands_test

import (
	"testing"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/order"
	"deliverymarket/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// storedOrder rehydrates an order fixture the way the repository would.
func storedOrder(
	t *testing.T,
	customerID, restaurantID kernel.UUID,
	driverID *kernel.UUID,
	status order.Status,
) *order.Order {
	t.Helper()

	items := []order.Item{
		order.RestoreItem(kernel.NewUUID(), 2, money("10.00"), money("20.00"), ""),
	}
	totals := order.Totals{
		Subtotal:    money("20.00"),
		DeliveryFee: money("3.99"),
		Tax:         money("1.60"),
		Total:       money("25.59"),
	}

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, restaurantID, driverID, status,
		"221B Baker Street", nil, items, totals, "",
		time.Now().UTC(), nil, nil,
	)
	require.NoError(t, err)
	return aggregate
}

// storedParcel rehydrates a parcel fixture the way the repository would.
func storedParcel(
	t *testing.T,
	senderID kernel.UUID,
	driverID *kernel.UUID,
	status parcel.Status,
) *parcel.Parcel {
	t.Helper()

	aggregate, err := parcel.RestoreParcel(
		kernel.NewUUID(), senderID, driverID, status,
		parcel.Recipient{Name: "Ada", Phone: "+15550100"},
		parcel.Waypoint{Address: "1 Pickup Lane"},
		parcel.Waypoint{Address: "2 Dropoff Road"},
		"documents", parcel.SizeSmall, nil,
		money("15.00"), 5.0,
		time.Now().UTC(), nil, nil,
	)
	require.NoError(t, err)
	return aggregate
}
