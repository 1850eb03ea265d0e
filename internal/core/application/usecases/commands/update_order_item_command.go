package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrUpdateOrderItemCommandIsNotConstructed = errors.New(
	"UpdateOrderItemCommand must be created via NewUpdateOrderItemCommand constructor",
)

// UpdateOrderItemCommand replaces the line of a product already in a draft order.
// Quantity, name and unit price all come from the command.
type UpdateOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemCommand validates identifiers and the product name.
func NewUpdateOrderItemCommand(
	orderID kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
) (UpdateOrderItemCommand, error) {
	command := UpdateOrderItemCommand{
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setProductID(productID),
		command.setProductName(productName),
	); err != nil {
		return UpdateOrderItemCommand{}, err
	}

	return command, nil
}

func (c UpdateOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemCommandIsNotConstructed)
}

func (c UpdateOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c UpdateOrderItemCommand) ProductName() string {
	return c.productName
}

func (c UpdateOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c UpdateOrderItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c *UpdateOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateOrderItemCommand) setProductName(productName string) error {
	if productName == "" {
		return ErrProductNameIsRequired
	}

	c.productName = productName
	return nil
}
