package commands_test

import (
	"context"
	"testing"

	"webshop/internal/core/application/usecases/commands"
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should place order priced from the catalog", func(t *testing.T) {
		ctx := context.Background()
		p := newTestProduct(t, 10)

		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(productRepo)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		productRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()

		var placed *order.Order
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				placed = args.Get(1).(*order.Order)
			}).Return(nil).Once()

		handler := commands.NewCreateOrderCommandHandler(factory, fixedClock)

		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			mustAddress(t), []commands.OrderItemInput{
				{ProductID: p.ID(), Quantity: mustQuantity(t, 2)},
			})
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, placed)
		assert.Equal(t, order.StatusPending, placed.Status())
		assert.Equal(t, fixedNow, placed.OrderDate())
		assert.Equal(t, "39.98 USD", placed.TotalAmount().String())
		require.Len(t, placed.Items(), 1)
		assert.Equal(t, p.Name(), placed.Items()[0].ProductName())
		orderRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("should fail when a requested product is unknown", func(t *testing.T) {
		ctx := context.Background()
		productID := kernel.NewUUID()

		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(productRepo)
		uow.On("Rollback", ctx).Return(nil).Once()

		productRepo.On("Get", ctx, productID).Return(nil, assert.AnError).Once()

		handler := commands.NewCreateOrderCommandHandler(factory, fixedClock)

		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			mustAddress(t), []commands.OrderItemInput{
				{ProductID: productID, Quantity: mustQuantity(t, 1)},
			})
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, assert.AnError)
		orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should fail validation without items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			mustAddress(t), nil)

		require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
	})

	t.Run("should reject command created without constructor", func(t *testing.T) {
		handler := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory), fixedClock)

		err := handler.Handle(context.Background(), commands.CreateOrderCommand{})

		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
