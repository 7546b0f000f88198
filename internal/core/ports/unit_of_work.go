package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the boundary of one write operation. Between Begin and
// Commit or Rollback no other unit of work can run; repository changes become
// visible on Commit and are discarded by Rollback.
type UnitOfWork interface {
	// Begin starts the unit of work and waits for exclusive write access.
	Begin(ctx context.Context) error

	// Commit applies staged changes and releases write access.
	Commit(ctx context.Context) error

	// Rollback discards staged changes and releases write access.
	// Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error

	// DishRepository returns the dish repository bound to this unit of work.
	DishRepository() DishRepository

	// OrderRepository returns the order repository bound to this unit of work.
	OrderRepository() OrderRepository
}
