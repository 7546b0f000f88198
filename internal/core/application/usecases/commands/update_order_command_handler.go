package commands

import (
	"context"

	"restaurant/internal/core/application/validation"
	"restaurant/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler overwrites an existing order and moves its status
// under the configured transition policy.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     order.TransitionPolicy
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory, policy order.TransitionPolicy) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle runs lookup, id consistency, field validation and the status
// lifecycle check in that order and returns the updated order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	repo := uow.OrderRepository()
	found, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = validation.MatchRouteID(cmd.Payload(), cmd.OrderID(), "Order"); err != nil {
		return nil, err
	}

	attrs, err := parseOrderAttributes(cmd.Payload())
	if err != nil {
		return nil, err
	}

	status, err := resolveStatus(cmd.Payload(), nil)
	if err != nil {
		return nil, err
	}

	if err = found.Update(attrs.DeliverTo, attrs.MobileNumber, status, attrs.Items, h.policy); err != nil {
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
