package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
)

// AddOrderItemCommand represents a request to add units of a product to a draft order.
// Quantity bounds are not checked here: they are business rules of the order
// aggregate and surface from the handler as *errs.DomainError.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("12.50")
//	cmd, err := NewAddOrderItemCommand(orderID, productID, "Espresso beans 1kg", 2, price)
//	if err != nil {
//	    return fmt.Errorf("invalid item: %w", err)
//	}
//	err = NewAddOrderItemCommandHandler(uowFactory).Handle(ctx, cmd)
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand validates identifiers and the product name.
func NewAddOrderItemCommand(
	orderID kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
) (AddOrderItemCommand, error) {
	command := AddOrderItemCommand{
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setProductID(productID),
		command.setProductName(productName),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AddOrderItemCommand) ProductName() string {
	return c.productName
}

func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c AddOrderItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddOrderItemCommand) setProductName(productName string) error {
	if productName == "" {
		return ErrProductNameIsRequired
	}

	c.productName = productName
	return nil
}
