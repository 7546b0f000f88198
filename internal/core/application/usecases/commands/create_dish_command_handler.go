package commands

import (
	"context"

	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/kernel"
)

// CreateDishCommandHandler assigns a fresh id and appends the new dish.
type CreateDishCommandHandler struct {
	uowFactory UoWFactory
	ids        kernel.IDGenerator
}

// NewCreateDishCommandHandler creates a handler for dish creation.
func NewCreateDishCommandHandler(uowFactory UoWFactory, ids kernel.IDGenerator) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle stores the dish and returns it.
func (h *CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (*dish.Dish, error) {
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

	attrs := cmd.Attributes()
	created, err := dish.NewDish(h.ids.NextID(), attrs.Name, attrs.Description, attrs.Price, attrs.ImageURL)
	if err != nil {
		return nil, err
	}

	if err = uow.DishRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
