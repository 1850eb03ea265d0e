package order

import (
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

// NewDraftOrder starts an empty draft order for customerID with a freshly
// generated identifier, no lines and a zero total.
func NewDraftOrder(customerID kernel.UUID) *Order {
	return &Order{
		id:         kernel.NewUUID(),
		customerID: customerID,
		lines:      []*OrderLine{},
		totalValue: kernel.ZeroMoney(),
		status:     Draft,
		guard:      guard.NewConstructorGuard(),
	}
}
