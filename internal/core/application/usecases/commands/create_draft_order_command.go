package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrCreateDraftOrderCommandIsNotConstructed = errors.New(
	"CreateDraftOrderCommand must be created via NewCreateDraftOrderCommand constructor",
)

// CreateDraftOrderCommand represents a request to start a new draft order for a customer.
//
// Example:
//
//	cmd, err := NewCreateDraftOrderCommand(customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateDraftOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateDraftOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDraftOrderCommand validates customerID and builds the command.
func NewCreateDraftOrderCommand(customerID kernel.UUID) (CreateDraftOrderCommand, error) {
	command := CreateDraftOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCustomerID(customerID); err != nil {
		return CreateDraftOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDraftOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDraftOrderCommandIsNotConstructed)
}

// CustomerID returns the owner of the new order.
func (c CreateDraftOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *CreateDraftOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
