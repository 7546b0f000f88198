package commands

import (
	"context"

	"restaurant/internal/core/application/validation"
	"restaurant/internal/core/domain/model/dish"
)

// UpdateDishCommandHandler overwrites every mutable field of an existing dish.
type UpdateDishCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateDishCommandHandler creates a handler for dish updates.
func NewUpdateDishCommandHandler(uowFactory UoWFactory) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{uowFactory: uowFactory}
}

// Handle runs lookup, id consistency and field validation in that order and
// returns the updated dish.
func (h *UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DishRepository()
	found, err := repo.Get(ctx, cmd.DishID())
	if err != nil {
		return nil, err
	}

	if err = validation.MatchRouteID(cmd.Payload(), cmd.DishID(), "Dish"); err != nil {
		return nil, err
	}

	attrs, err := parseDishAttributes(cmd.Payload())
	if err != nil {
		return nil, err
	}

	if err = found.Update(attrs.Name, attrs.Description, attrs.Price, attrs.ImageURL); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, found); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return found, nil
}
