package memory

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/ports"
)

var (
	ErrUnitOfWorkIsNotActive     = errors.New("unit of work is not active")
	ErrUnitOfWorkIsAlreadyActive = errors.New("unit of work is already active")
)

// UnitOfWorkFactory creates units of work bound to one store.
type UnitOfWorkFactory struct {
	store *Store
}

// Create returns a fresh, inactive unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	uow := &UnitOfWork{store: f.store}
	uow.dishRepo = &DishRepository{store: f.store, uow: uow}
	uow.orderRepo = &OrderRepository{store: f.store, uow: uow}
	return uow
}

// UnitOfWork stages repository writes and applies them on Commit while holding
// the store's writer slot. Staged writes are not visible to reads, including
// reads through this unit of work.
type UnitOfWork struct {
	store     *Store
	active    bool
	pending   []func() error
	dishRepo  *DishRepository
	orderRepo *OrderRepository
}

// Begin waits for the writer slot or for ctx to be done.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return ErrUnitOfWorkIsAlreadyActive
	}

	select {
	case u.store.writer <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("begin unit of work: %w", ctx.Err())
	}

	u.active = true
	u.pending = nil
	return nil
}

// Commit applies staged writes in order and releases the writer slot.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrUnitOfWorkIsNotActive
	}
	defer u.release()

	for _, apply := range u.pending {
		if err := apply(); err != nil {
			return err
		}
	}
	return nil
}

// Rollback discards staged writes and releases the writer slot.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}
	u.release()
	return nil
}

// DishRepository returns the dish repository bound to this unit of work.
func (u *UnitOfWork) DishRepository() ports.DishRepository {
	return u.dishRepo
}

// OrderRepository returns the order repository bound to this unit of work.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return u.orderRepo
}

func (u *UnitOfWork) stage(apply func() error) error {
	if u == nil || !u.active {
		return ErrUnitOfWorkIsNotActive
	}
	u.pending = append(u.pending, apply)
	return nil
}

func (u *UnitOfWork) release() {
	u.active = false
	u.pending = nil
	<-u.store.writer
}
