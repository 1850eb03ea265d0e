package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
)

// UpdateOrderItemCommandHandler replaces a line of a stored draft order.
type UpdateOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderItemCommandHandler(uowFactory OrderUoWFactory) UpdateOrderItemCommandHandler {
	return UpdateOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns a *errs.DomainError with reason order.ErrItemNotFound when the
// order does not hold the product; it never inserts a new line.
func (h UpdateOrderItemCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	line, err := order.NewOrderLine(cmd.ProductID(), cmd.ProductName(), cmd.Quantity(), cmd.UnitPrice())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateItem(line); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
