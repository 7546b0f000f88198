package commands

import (
	"errors"

	"restaurant/internal/core/application/validation"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand is a validated request to place an order. An omitted
// status starts the order as pending.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	attributes OrderAttributes
	status     order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand runs the order field pipeline, then resolves the
// initial status.
func NewCreateOrderCommand(payload validation.Payload) (CreateOrderCommand, error) {
	attributes, err := parseOrderAttributes(payload)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	initial := order.Pending
	status, err := resolveStatus(payload, &initial)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		attributes: attributes,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Attributes returns the validated order fields.
func (c CreateOrderCommand) Attributes() OrderAttributes {
	return c.attributes
}

// Status returns the initial status.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}
