// Package orderrepo persists order aggregates with GORM.
// An order is stored as one row in orders plus one row per line in order_lines.
package orderrepo

import (
	"errors"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the orders table. TotalValue is denormalized for the read
// side; the domain recomputes it from the lines on load.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Status     int             `gorm:"not null;index:idx_orders_status_updated_at,priority:1"`
	TotalValue decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	Version    int             `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time      `gorm:"index:idx_orders_status_updated_at,priority:2"`
	Lines      []OrderLineDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one row of order_lines. Position keeps the insertion
// order of the aggregate.
type OrderLineDTO struct {
	OrderID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position    int             `gorm:"not null"`
	ProductName string          `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(19,4);not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	lines := make([]OrderLineDTO, 0, aggregate.LineCount())
	for i, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:     orderID,
			ProductID:   line.ProductID().Bytes(),
			Position:    i,
			ProductName: line.ProductName(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:         orderID,
		CustomerID: aggregate.CustomerID().Bytes(),
		Status:     int(aggregate.Status()),
		TotalValue: aggregate.TotalValue().Amount(),
		Version:    aggregate.Version(),
		Lines:      lines,
	}
}

// toDomain rebuilds the aggregate through RestoreOrder, so rows violating an
// order invariant are reported instead of loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	customerID, customerErr := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err := errors.Join(idErr, customerErr); err != nil {
		return nil, err
	}

	lines := make([]*order.OrderLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, err := lineToDomain(lineDTO)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, customerID, order.Status(dto.Status), lines, dto.Version)
}

func lineToDomain(dto OrderLineDTO) (*order.OrderLine, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.NewOrderLine(productID, dto.ProductName, dto.Quantity, unitPrice)
}
