package commands_test

import (
	"errors"
	"testing"

	"restaurant/internal/adapters/out/memory"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/validation"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderPayload() validation.Payload {
	return validation.Payload{
		"deliverTo":    "308 Negra Arroyo Lane, Albuquerque, NM",
		"mobileNumber": "(505) 143-3369",
		"status":       "pending",
		"dishes": []any{
			map[string]any{"dishId": "x", "quantity": 2.0},
		},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(orderPayload())

		require.NoError(t, err)
		assert.Equal(t, order.Pending, cmd.Status())
		require.Len(t, cmd.Attributes().Items, 1)
		assert.Equal(t, "x", cmd.Attributes().Items[0].DishID())
		assert.Equal(t, 2, cmd.Attributes().Items[0].Quantity())
	})

	t.Run("omitted status defaults to pending", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(without(orderPayload(), "status"))

		require.NoError(t, err)
		assert.Equal(t, order.Pending, cmd.Status())
	})

	t.Run("supplied valid status is kept", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(with(orderPayload(), "status", "delivered"))

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, cmd.Status())
	})

	t.Run("status outside the closed set is rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(with(orderPayload(), "status", "cancelled"))

		assert.Equal(t, errs.KindValidationFailed, errs.KindOf(err))
		assert.Contains(t, err.Error(), "pending, preparing, out-for-delivery, delivered")
	})

	t.Run("each missing field is a validation failure", func(t *testing.T) {
		for _, field := range []string{"deliverTo", "mobileNumber", "dishes"} {
			t.Run(field, func(t *testing.T) {
				_, err := commands.NewCreateOrderCommand(without(orderPayload(), field))

				assert.Equal(t, errs.KindValidationFailed, errs.KindOf(err))
				assert.Contains(t, err.Error(), field)
			})
		}
	})

	t.Run("empty dishes", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(with(orderPayload(), "dishes", []any{}))

		assert.Equal(t, errs.KindValidationFailed, errs.KindOf(err))
		assert.Contains(t, err.Error(), "Order must include at least one dish")
	})

	t.Run("dishes is not a list", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(with(orderPayload(), "dishes", "x"))
		assert.Equal(t, errs.CategoryInvalidType, errs.CategoryOf(err))
	})

	t.Run("zero quantity names the entry", func(t *testing.T) {
		p := with(orderPayload(), "dishes", []any{
			map[string]any{"dishId": "x", "quantity": 1.0},
			map[string]any{"dishId": "y", "quantity": 0.0},
		})

		_, err := commands.NewCreateOrderCommand(p)

		assert.Equal(t, errs.KindValidationFailed, errs.KindOf(err))
		assert.Contains(t, err.Error(), "Dish 1 must have a quantity that is an integer greater than 0")
	})

	t.Run("field checks run before the status check", func(t *testing.T) {
		p := without(with(orderPayload(), "status", "cancelled"), "deliverTo")

		_, err := commands.NewCreateOrderCommand(p)

		assert.Contains(t, err.Error(), "deliverTo")
	})
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(orderPayload())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, &sequenceIDs{})
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID())
	assert.Equal(t, order.Pending, created.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(orderPayload())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, &sequenceIDs{})
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func seededOrderStore(t *testing.T, status string) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Load(t.Context(), memory.Seed{Orders: []memory.SeedOrder{{
		ID:           "o1",
		DeliverTo:    "1600 Pennsylvania Avenue NW",
		MobileNumber: "(202) 456-1111",
		Status:       status,
		Dishes:       []memory.SeedLineItem{{DishID: "d1", Quantity: 1}},
	}}}))
	return store
}

func TestUpdateOrderCommandHandler_Handle(t *testing.T) {
	update := func(t *testing.T, store *memory.Store, policy order.TransitionPolicy, id string, p validation.Payload) (*order.Order, error) {
		t.Helper()
		h := commands.NewUpdateOrderCommandHandler(store.UnitOfWorkFactory(), policy)
		cmd, err := commands.NewUpdateOrderCommand(id, p)
		require.NoError(t, err)
		return h.Handle(t.Context(), cmd)
	}

	t.Run("unknown order is not found", func(t *testing.T) {
		_, err := update(t, seededOrderStore(t, "pending"), order.AnyTransition, "missing", orderPayload())
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("id mismatch", func(t *testing.T) {
		_, err := update(t, seededOrderStore(t, "pending"), order.AnyTransition, "o1", with(orderPayload(), "id", "o2"))

		assert.Equal(t, errs.KindValidationFailed, errs.KindOf(err))
		assert.Contains(t, err.Error(), "Order id does not match route id. Order: o2, Route: o1.")
	})

	t.Run("status outside the closed set is rejected", func(t *testing.T) {
		store := seededOrderStore(t, "pending")

		_, err := update(t, store, order.AnyTransition, "o1", with(orderPayload(), "status", "cancelled"))

		assert.Equal(t, errs.KindValidationFailed, errs.KindOf(err))
		stored, getErr := store.Orders().Get(t.Context(), "o1")
		require.NoError(t, getErr)
		assert.Equal(t, order.Pending, stored.Status())
		assert.Equal(t, "1600 Pennsylvania Avenue NW", stored.DeliverTo())
	})

	t.Run("missing status is rejected", func(t *testing.T) {
		_, err := update(t, seededOrderStore(t, "pending"), order.AnyTransition, "o1", without(orderPayload(), "status"))

		assert.Equal(t, errs.KindValidationFailed, errs.KindOf(err))
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("delivered is reflected by a later read", func(t *testing.T) {
		store := seededOrderStore(t, "pending")

		updated, err := update(t, store, order.AnyTransition, "o1", with(orderPayload(), "status", "delivered"))

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, updated.Status())
		stored, err := store.Orders().Get(t.Context(), "o1")
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, stored.Status())
		assert.Equal(t, "308 Negra Arroyo Lane, Albuquerque, NM", stored.DeliverTo())
	})

	t.Run("any policy lets a delivered order go back to pending", func(t *testing.T) {
		_, err := update(t, seededOrderStore(t, "delivered"), order.AnyTransition, "o1", orderPayload())
		require.NoError(t, err)
	})

	t.Run("forward policy refuses moving back", func(t *testing.T) {
		_, err := update(t, seededOrderStore(t, "delivered"), order.ForwardOnly, "o1", orderPayload())
		assert.Equal(t, errs.KindValidationFailed, errs.KindOf(err))
	})

	t.Run("same payload twice yields the same state", func(t *testing.T) {
		store := seededOrderStore(t, "pending")
		p := with(orderPayload(), "status", "preparing")

		first, err := update(t, store, order.AnyTransition, "o1", p)
		require.NoError(t, err)
		second, err := update(t, store, order.AnyTransition, "o1", p)
		require.NoError(t, err)

		assert.Equal(t, first.Status(), second.Status())
		assert.Equal(t, first.Items(), second.Items())
		assert.Equal(t, first.MobileNumber(), second.MobileNumber())
	})
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	remove := func(t *testing.T, store *memory.Store, id string) error {
		t.Helper()
		h := commands.NewDeleteOrderCommandHandler(store.UnitOfWorkFactory())
		cmd, err := commands.NewDeleteOrderCommand(id)
		require.NoError(t, err)
		return h.Handle(t.Context(), cmd)
	}

	t.Run("pending order is removed", func(t *testing.T) {
		store := seededOrderStore(t, "pending")

		require.NoError(t, remove(t, store, "o1"))

		orders, err := store.Orders().List(t.Context())
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("preparing order stays and the delete is forbidden", func(t *testing.T) {
		store := seededOrderStore(t, "preparing")

		err := remove(t, store, "o1")

		assert.Equal(t, errs.KindOperationForbidden, errs.KindOf(err))
		assert.Contains(t, err.Error(), "An order cannot be deleted unless it is pending")
		orders, listErr := store.Orders().List(t.Context())
		require.NoError(t, listErr)
		assert.Len(t, orders, 1)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		err := remove(t, seededOrderStore(t, "pending"), "missing")
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("forbidden delete never reaches the repository", func(t *testing.T) {
		ctx := t.Context()
		preparing, err := order.NewLineItem("d1", 1)
		require.NoError(t, err)
		o, err := order.NewOrder("o1", "x", "y", order.Preparing, []order.LineItem{preparing})
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, "o1").Return(o, nil).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteOrderCommandHandler(factory)
		cmd, err := commands.NewDeleteOrderCommand("o1")
		require.NoError(t, err)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrOperationIsForbidden)
		repo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.AssertExpectations(t)
	})
}
