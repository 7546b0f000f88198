package commands

import (
	"errors"

	"restaurant/internal/core/application/validation"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrUpdateDishCommandIsNotConstructed = errors.New(
		"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
	)
)

// UpdateDishCommand carries the route id and the raw payload. Field validation
// runs in the handler, after the dish is found and the ids agree.
type UpdateDishCommand struct { //nolint:recvcheck //using for validation
	dishID  string
	payload validation.Payload

	guard guard.ConstructorGuard
}

// NewUpdateDishCommand requires a non-empty route id.
func NewUpdateDishCommand(dishID string, payload validation.Payload) (UpdateDishCommand, error) {
	if dishID == "" {
		return UpdateDishCommand{}, errs.NewValueIsRequiredError("dishId")
	}
	if payload == nil {
		payload = validation.Payload{}
	}

	return UpdateDishCommand{
		dishID:  dishID,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

// DishID returns the route id.
func (c UpdateDishCommand) DishID() string {
	return c.dishID
}

// Payload returns the unvalidated request payload.
func (c UpdateDishCommand) Payload() validation.Payload {
	return c.payload
}
