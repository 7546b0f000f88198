package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// LineItem is one dish of an order. The dish identifier is not checked against
// the menu.
type LineItem struct {
	dishID   string
	quantity int
}

// NewLineItem creates a line item with a positive quantity.
func NewLineItem(dishID string, quantity int) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return LineItem{dishID: dishID, quantity: quantity}, nil
}

// DishID returns the referenced dish identifier.
func (l LineItem) DishID() string {
	return l.dishID
}

// Quantity returns how many of the dish were ordered.
func (l LineItem) Quantity() int {
	return l.quantity
}
