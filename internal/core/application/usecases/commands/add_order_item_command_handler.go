package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
)

// AddOrderItemCommandHandler adds a line to a stored draft order.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrMaxUnitsPerItemExceeded):
//	    // too many units of one product
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such order
//	case err != nil:
//	    // infrastructure failure
//	}
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order items.
func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the line, merges it into the order and persists the result.
// Nothing is written when the order rejects the line.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	if err = aggregate.AddItem(line); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
