package commands

import (
	"errors"

	"restaurant/internal/core/application/validation"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateDishCommandIsNotConstructed = errors.New(
		"CreateDishCommand must be created via NewCreateDishCommand constructor",
	)
)

// CreateDishCommand is a validated request to add a dish to the menu.
//
// Example:
//
//	cmd, err := NewCreateDishCommand(validation.FromBody(body))
//	if err != nil {
//	    return err // first failing field check
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	attributes DishAttributes

	guard guard.ConstructorGuard
}

// NewCreateDishCommand runs the dish field pipeline over payload.
func NewCreateDishCommand(payload validation.Payload) (CreateDishCommand, error) {
	attributes, err := parseDishAttributes(payload)
	if err != nil {
		return CreateDishCommand{}, err
	}

	return CreateDishCommand{
		attributes: attributes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// Attributes returns the validated dish fields.
func (c CreateDishCommand) Attributes() DishAttributes {
	return c.attributes
}
