package parcel

import (
	"deliverymarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Size classifies a parcel for pricing. The size multiplier scales the
// distance-based fee.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

var sizeMultipliers = map[Size]decimal.Decimal{
	SizeSmall:  decimal.NewFromInt(1),
	SizeMedium: decimal.RequireFromString("1.5"),
	SizeLarge:  decimal.NewFromInt(2),
}

// ParseSize converts a wire token into a Size, rejecting unknown values.
func ParseSize(s string) (Size, error) {
	size := Size(s)
	if err := size.Validate(); err != nil {
		return "", err
	}
	return size, nil
}

// Validate checks that the size is one of small, medium, large.
func (s Size) Validate() error {
	if _, ok := sizeMultipliers[s]; !ok {
		return errs.NewValueIsInvalidError("parcel size " + string(s))
	}
	return nil
}

// String returns the wire token for the size.
func (s Size) String() string {
	return string(s)
}

// FeeMultiplier returns the pricing multiplier for the size:
// small 1.0, medium 1.5, large 2.0.
func (s Size) FeeMultiplier() decimal.Decimal {
	return sizeMultipliers[s]
}
