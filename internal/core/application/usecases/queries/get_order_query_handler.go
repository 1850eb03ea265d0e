package queries

import (
	"context"
	"database/sql"
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order view with raw SQL.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order view, or errs.ObjectNotFoundError for unknown ids.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		response   GetOrderQueryResponse
		customerID uuid.UUID
		status     int
		totalValue decimal.Decimal
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			customer_id,
			status,
			total_value
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(&customerID, &status, &totalValue)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.ID = query.OrderID()
	response.Status = order.Status(status).String()
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.TotalValue, err = kernel.NewMoney(totalValue); err != nil {
		return GetOrderQueryResponse{}, err
	}

	lines, err := h.lines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Lines = lines

	return response, nil
}

func (h GetOrderQueryHandler) lines(ctx context.Context, orderID kernel.UUID) ([]GetOrderQueryLine, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]GetOrderQueryLine, 0)
	for rows.Next() {
		var (
			line      GetOrderQueryLine
			productID uuid.UUID
			unitPrice decimal.Decimal
		)

		if err = rows.Scan(&productID, &line.ProductName, &line.Quantity, &unitPrice); err != nil {
			return nil, err
		}

		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if line.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}
		line.Total = line.UnitPrice.MultiplyByInt(line.Quantity)

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
