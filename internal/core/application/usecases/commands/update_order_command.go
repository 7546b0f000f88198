package commands

import (
	"errors"

	"restaurant/internal/core/application/validation"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand carries the route id and the raw payload.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	payload validation.Payload

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand requires a non-empty route id.
func NewUpdateOrderCommand(orderID string, payload validation.Payload) (UpdateOrderCommand, error) {
	if orderID == "" {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("orderId")
	}
	if payload == nil {
		payload = validation.Payload{}
	}

	return UpdateOrderCommand{
		orderID: orderID,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the route id.
func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

// Payload returns the unvalidated request payload.
func (c UpdateOrderCommand) Payload() validation.Payload {
	return c.payload
}
