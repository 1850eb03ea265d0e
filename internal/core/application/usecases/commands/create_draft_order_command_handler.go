package commands

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// CreateDraftOrderCommandHandler creates empty draft orders.
type CreateDraftOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateDraftOrderCommandHandler creates a handler for draft creation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateDraftOrderCommandHandler(uowFactory OrderUoWFactory) CreateDraftOrderCommandHandler {
	return CreateDraftOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates and stores a draft order, returning its generated identifier.
func (h CreateDraftOrderCommandHandler) Handle(ctx context.Context, cmd CreateDraftOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	draft := order.NewDraftOrder(cmd.CustomerID())
	if err := uow.OrderRepository().Add(ctx, draft); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return draft.ID(), nil
}
