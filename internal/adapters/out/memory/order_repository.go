package memory

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over the store's order
// collection. Writes require a unit of work.
type OrderRepository struct {
	store *Store
	uow   *UnitOfWork
}

// Get returns a copy of the stored order.
func (r *OrderRepository) Get(_ context.Context, id string) (*order.Order, error) {
	o, ok := r.store.orders.find(id)
	if !ok {
		return nil, errs.NewObjectNotFoundErrorWithCause("order", id, fmt.Errorf("Order does not exist: %s", id))
	}
	return &o, nil
}

// List returns copies of every order in store order.
func (r *OrderRepository) List(_ context.Context) ([]*order.Order, error) {
	records := r.store.orders.all()
	orders := make([]*order.Order, len(records))
	for i := range records {
		orders[i] = &records[i]
	}
	return orders, nil
}

// Add stages appending aggregate.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if r.store.HasID(aggregate.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%s is already stored", aggregate.ID()))
	}

	record := *aggregate
	return r.uow.stage(func() error {
		if !r.store.orders.append(record) {
			return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%s is already stored", record.ID()))
		}
		return nil
	})
}

// Update stages replacing the stored order with the same id.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.store.orders.has(aggregate.ID()) {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	record := *aggregate
	return r.uow.stage(func() error {
		if !r.store.orders.replace(record) {
			return errs.NewObjectNotFoundError("order", record.ID())
		}
		return nil
	})
}

// Remove stages deleting the order with id.
func (r *OrderRepository) Remove(_ context.Context, id string) error {
	if !r.store.orders.has(id) {
		return errs.NewObjectNotFoundError("order", id)
	}

	return r.uow.stage(func() error {
		if !r.store.orders.remove(id) {
			return errs.NewObjectNotFoundError("order", id)
		}
		return nil
	})
}
