package http_test

import (
	"context"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockCreateDraftOrderHandler struct{ mock.Mock }

func (m *MockCreateDraftOrderHandler) Handle(ctx context.Context, cmd commands.CreateDraftOrderCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Error(1)
}

type MockAddOrderItemHandler struct{ mock.Mock }

func (m *MockAddOrderItemHandler) Handle(ctx context.Context, cmd commands.AddOrderItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUpdateOrderItemHandler struct{ mock.Mock }

func (m *MockUpdateOrderItemHandler) Handle(ctx context.Context, cmd commands.UpdateOrderItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRemoveOrderItemHandler struct{ mock.Mock }

func (m *MockRemoveOrderItemHandler) Handle(ctx context.Context, cmd commands.RemoveOrderItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	response, _ := args.Get(0).(queries.GetOrderQueryResponse)
	return response, args.Error(1)
}
