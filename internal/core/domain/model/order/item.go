package order

import (
	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one line of a food order: a menu item reference, a quantity, the
// unit price snapshotted at order creation, and the derived line total.
// Items are fixed when the order is created and never mutated afterwards,
// which is what keeps the stamped financial fields immutable.
type Item struct {
	menuItemID          kernel.UUID
	quantity            int
	unitPrice           decimal.Decimal
	lineTotal           decimal.Decimal
	specialInstructions string

	isConstructed bool
}

// NewItem creates an order line. Quantity must be at least 1 and the unit
// price non-negative; the line total is computed here as unitPrice × quantity.
func NewItem(menuItemID kernel.UUID, quantity int, unitPrice decimal.Decimal, specialInstructions string) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewInvalidItemError(menuItemID.String(), "quantity must be at least 1")
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewInvalidItemError(menuItemID.String(), "unit price must not be negative")
	}

	return Item{
		menuItemID:          menuItemID,
		quantity:            quantity,
		unitPrice:           unitPrice,
		lineTotal:           unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		specialInstructions: specialInstructions,
		isConstructed:       true,
	}, nil
}

// RestoreItem rehydrates an item from persistence, trusting the stored line
// total rather than recomputing it.
func RestoreItem(menuItemID kernel.UUID, quantity int, unitPrice, lineTotal decimal.Decimal, specialInstructions string) Item {
	return Item{
		menuItemID:          menuItemID,
		quantity:            quantity,
		unitPrice:           unitPrice,
		lineTotal:           lineTotal,
		specialInstructions: specialInstructions,
		isConstructed:       true,
	}
}

// Validate ensures the item was created via NewItem or RestoreItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return errs.NewValueIsRequiredError("Item must be created via NewItem")
	}
	return nil
}

// MenuItemID returns the referenced menu item identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot taken at order creation.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// LineTotal returns unit price × quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.lineTotal
}

// SpecialInstructions returns the optional per-line note for the kitchen.
func (i Item) SpecialInstructions() string {
	return i.specialInstructions
}
