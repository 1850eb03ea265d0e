package order

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var (
	// ErrQuantityBelowMinimum is the reason for lines built with fewer than MinUnitsPerItem units.
	ErrQuantityBelowMinimum = errors.New("quantity below minimum")

	// ErrProductIsRequired is the reason for lines built without a product identifier.
	ErrProductIsRequired = errors.New("product is required")

	// ErrOrderLineIsNotConstructed is returned for nil or zero-value lines.
	ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine constructor")
)

// OrderLine is an immutable value describing one product within an order.
//
// A line validates only its lower quantity bound. The upper bound depends on the
// quantity already present for the same product, so Order enforces it.
//
//	price, _ := kernel.MoneyFromInt(100)
//	line, err := order.NewOrderLine(productID, "Espresso beans 1kg", 2, price)
//	if err != nil {
//	    return err // *errs.DomainError
//	}
//	fmt.Println(line.Total()) // 200.00
type OrderLine struct {
	// productID identifies the product; lines are keyed by it inside an order
	productID kernel.UUID

	// productName is for display only and takes no part in any rule
	productName string

	// quantity is the number of units, at least MinUnitsPerItem
	quantity int

	// unitPrice is the price of a single unit
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewOrderLine builds a line. It fails with a DomainError when productID is the zero
// UUID or quantity is below MinUnitsPerItem. Both failures are reported together.
func NewOrderLine(productID kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (*OrderLine, error) {
	line := &OrderLine{
		productName: productName,
		unitPrice:   unitPrice,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// ProductID returns the referenced product.
func (l *OrderLine) ProductID() kernel.UUID {
	return l.productID
}

// ProductName returns the display name captured when the line was built.
func (l *OrderLine) ProductName() string {
	return l.productName
}

// Quantity returns the number of units.
func (l *OrderLine) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price of one unit.
func (l *OrderLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total returns quantity × unit price.
func (l *OrderLine) Total() kernel.Money {
	return l.unitPrice.MultiplyByInt(l.quantity)
}

// Validate reports ErrOrderLineIsNotConstructed for nil or zero-value lines.
func (l *OrderLine) Validate() error {
	if l == nil {
		return ErrOrderLineIsNotConstructed
	}
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// withQuantity returns a copy of the line holding quantity units.
func (l *OrderLine) withQuantity(quantity int) *OrderLine {
	merged := *l
	merged.quantity = quantity
	return &merged
}

func (l *OrderLine) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewDomainErrorWithCause(ErrProductIsRequired, err)
	}

	l.productID = productID
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity < MinUnitsPerItem {
		return errs.NewDomainErrorWithCause(
			ErrQuantityBelowMinimum,
			errs.NewValueIsOutOfRangeError("quantity", quantity, MinUnitsPerItem, MaxUnitsPerItem),
		)
	}

	l.quantity = quantity
	return nil
}
