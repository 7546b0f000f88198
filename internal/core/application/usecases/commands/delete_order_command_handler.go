package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes an order if its status allows it.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle either removes a pending order and returns nil, or returns the
// forbidden-operation error and leaves the order in place.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	found, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = found.ValidateDelete(); err != nil {
		return err
	}

	if err = repo.Remove(ctx, found.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
