// Package services contains stateless domain services: the pricing
// calculator stamping financial fields at job creation, and the distance
// estimation defaults shared by parcel pricing.
package services

import (
	"deliverymarket/internal/core/domain/model/order"
	"deliverymarket/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
)

// DefaultDistanceKm is used for parcel pricing whenever either endpoint has
// no coordinates. The exact value matters for pricing parity and must not
// change without a fee-schedule migration.
const DefaultDistanceKm = 5.0

// Pricing policy constants. All monetary math is fixed-point decimal;
// binary floating point would drift on repeated rounding.
var (
	taxRate         = decimal.RequireFromString("0.08")
	parcelBaseFee   = decimal.RequireFromString("5.00")
	parcelPerKmRate = decimal.RequireFromString("2.00")
)

// PriceFoodOrder computes the financial fields for a food order from its
// fixed item lines and the restaurant's delivery fee:
//
//	subtotal = Σ line totals
//	tax      = round(subtotal × 0.08, 2)
//	total    = subtotal + restaurantFee + tax
//
// Item-level failures (unavailable or foreign menu items, bad quantities)
// are rejected before items exist, so pricing itself cannot fail.
func PriceFoodOrder(items []order.Item, restaurantFee decimal.Decimal) order.Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	tax := subtotal.Mul(taxRate).Round(2)

	return order.Totals{
		Subtotal:    subtotal,
		DeliveryFee: restaurantFee,
		Tax:         tax,
		Total:       subtotal.Add(restaurantFee).Add(tax),
	}
}

// PriceParcel computes the delivery fee for a parcel:
//
//	fee = (5.00 + distanceKm × 2.00) × sizeMultiplier
//
// with multipliers small 1.0, medium 1.5, large 2.0. Negative distances are
// clamped to zero; the result is rounded to 2 fractional digits.
func PriceParcel(distanceKm float64, size parcel.Size) decimal.Decimal {
	if distanceKm < 0 {
		distanceKm = 0
	}

	distance := decimal.NewFromFloat(distanceKm)
	return parcelBaseFee.
		Add(distance.Mul(parcelPerKmRate)).
		Mul(size.FeeMultiplier()).
		Round(2)
}
