package memory

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/pkg/errs"
)

// DishRepository implements ports.DishRepository over the store's dish
// collection. Writes require a unit of work.
type DishRepository struct {
	store *Store
	uow   *UnitOfWork
}

// Get returns a copy of the stored dish.
func (r *DishRepository) Get(_ context.Context, id string) (*dish.Dish, error) {
	d, ok := r.store.dishes.find(id)
	if !ok {
		return nil, errs.NewObjectNotFoundErrorWithCause("dish", id, fmt.Errorf("Dish does not exist: %s", id))
	}
	return &d, nil
}

// List returns copies of every dish in store order.
func (r *DishRepository) List(_ context.Context) ([]*dish.Dish, error) {
	records := r.store.dishes.all()
	dishes := make([]*dish.Dish, len(records))
	for i := range records {
		dishes[i] = &records[i]
	}
	return dishes, nil
}

// Add stages appending aggregate.
func (r *DishRepository) Add(_ context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if r.store.HasID(aggregate.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%s is already stored", aggregate.ID()))
	}

	record := *aggregate
	return r.uow.stage(func() error {
		if !r.store.dishes.append(record) {
			return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%s is already stored", record.ID()))
		}
		return nil
	})
}

// Update stages replacing the stored dish with the same id.
func (r *DishRepository) Update(_ context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.store.dishes.has(aggregate.ID()) {
		return errs.NewObjectNotFoundError("dish", aggregate.ID())
	}

	record := *aggregate
	return r.uow.stage(func() error {
		if !r.store.dishes.replace(record) {
			return errs.NewObjectNotFoundError("dish", record.ID())
		}
		return nil
	})
}
