package commands_test

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Get(ctx context.Context, id string) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dish.Dish)
	return d, args.Error(1)
}
func (m *MockDishRepository) List(ctx context.Context) ([]*dish.Dish, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).([]*dish.Dish)
	return d, args.Error(1)
}
func (m *MockDishRepository) Add(ctx context.Context, d *dish.Dish) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDishRepository) Update(ctx context.Context, d *dish.Dish) error {
	return m.Called(ctx, d).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) DishRepository() ports.DishRepository {
	return m.Called().Get(0).(ports.DishRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	return m.Called().Get(0).(ports.UnitOfWork)
}

// sequenceIDs issues id-1, id-2, ...
type sequenceIDs struct{ n int }

func (s *sequenceIDs) NextID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}
