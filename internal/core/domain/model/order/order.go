package order

import (
	"errors"
	"fmt"
	"slices"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

const (
	// MinUnitsPerItem is the smallest quantity an order line may hold.
	MinUnitsPerItem = 1
	// MaxUnitsPerItem is the largest quantity of one product an order may hold.
	MaxUnitsPerItem = 15
)

var (
	// ErrMaxUnitsPerItemExceeded is the reason for adds and updates that would push a
	// product line above MaxUnitsPerItem.
	ErrMaxUnitsPerItemExceeded = errors.New("maximum units per item exceeded")

	// ErrItemNotFound is the reason for updates and removals of products the order does not hold.
	ErrItemNotFound = errors.New("item not found in order")

	// ErrDuplicateItem is the reason for restoring an order with two lines for one product.
	ErrDuplicateItem = errors.New("duplicate item in order")

	// ErrOrderIsNotConstructed is returned for nil or zero-value orders.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewDraftOrder or RestoreOrder")
)

// Order is the sales order aggregate root. It owns its lines and keeps the total
// value consistent with them.
//
// Order follows these invariants:
//   - At most one line per product, in insertion order
//   - No line holds more than MaxUnitsPerItem units
//   - totalValue equals the sum of all line totals
//   - A failed mutation leaves the order exactly as it was
//
// Order is not safe for concurrent use. Callers serialize access, typically by
// loading one instance per unit of work.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the owner of the order
	customerID kernel.UUID

	// lines are unique by product and kept in insertion order
	lines []*OrderLine

	// totalValue is derived from lines and recomputed after every mutation
	totalValue kernel.Money

	// status is always Draft for orders handled here
	status Status

	// version is the persisted revision, used by repositories for optimistic locking
	version int

	guard guard.ConstructorGuard
}

// RestoreOrder rebuilds an Order from persisted state.
//
// Unlike NewDraftOrder, it accepts an existing identifier, status, line set and
// version. The stored total is not trusted: it is recomputed from lines.
//
// Parameters:
//   - id: the order identifier (must be a valid UUID)
//   - customerID: the owner (must be a valid UUID)
//   - status: the stored status (must be Draft)
//   - lines: the stored lines in insertion order
//   - version: the stored revision (must not be negative)
//
// Returns:
//   - *Order: the restored aggregate
//   - error: every violation found, joined with errors.Join. Lines breaking an order
//     invariant yield a *errs.DomainError.
//
// Example:
//
//	o, err := order.RestoreOrder(id, customerID, order.Draft, lines, 3)
//	if err != nil {
//	    // storage holds an order the domain would never have produced
//	}
func RestoreOrder(id kernel.UUID, customerID kernel.UUID, status Status, lines []*OrderLine, version int) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setVersion(version),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.recalculateTotalValue()
	return o, nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owner of the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the persisted revision. New orders start at 0.
func (o *Order) Version() int {
	return o.version
}

// TotalValue returns the sum of quantity × unit price over all lines.
func (o *Order) TotalValue() kernel.Money {
	return o.totalValue
}

// Lines returns the order lines in insertion order. The slice is a copy; lines
// themselves are immutable.
func (o *Order) Lines() []*OrderLine {
	return slices.Clone(o.lines)
}

// LineCount returns the number of distinct products in the order.
func (o *Order) LineCount() int {
	return len(o.lines)
}

// Line returns the line for productID, if the order holds one.
func (o *Order) Line(productID kernel.UUID) (*OrderLine, bool) {
	idx := o.indexOf(productID)
	if idx < 0 {
		return nil, false
	}
	return o.lines[idx], true
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Validate reports ErrOrderIsNotConstructed for nil or zero-value orders.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// AddItem adds line to the order.
//
// When the order already holds the product, the quantities are merged: the existing
// line keeps its name and unit price and its quantity grows by line.Quantity().
// Otherwise line is appended.
//
// Returns:
//   - nil when the order was changed and the total recomputed
//   - *errs.DomainError with reason ErrMaxUnitsPerItemExceeded when the resulting
//     quantity would exceed MaxUnitsPerItem; the order is left untouched
//   - ErrOrderLineIsNotConstructed when line is nil or a zero value
//
// Example:
//
//	line, _ := order.NewOrderLine(productID, "Espresso beans 1kg", 10, price)
//	if err := o.AddItem(line); err != nil {
//	    // errors.Is(err, order.ErrMaxUnitsPerItemExceeded)
//	}
func (o *Order) AddItem(line *OrderLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	idx := o.indexOf(line.ProductID())
	if idx < 0 {
		if err := checkMaxUnits(line.Quantity()); err != nil {
			return err
		}
		o.lines = append(o.lines, line)
		o.recalculateTotalValue()
		return nil
	}

	existing := o.lines[idx]
	merged := existing.Quantity() + line.Quantity()
	if err := checkMaxUnits(merged); err != nil {
		return err
	}

	o.lines[idx] = existing.withQuantity(merged)
	o.recalculateTotalValue()
	return nil
}

// UpdateItem replaces the line for line.ProductID() with line, keeping its position.
// Quantity, unit price and name all come from line.
//
// Returns:
//   - nil when the line was replaced and the total recomputed
//   - *errs.DomainError with reason ErrItemNotFound when the order does not hold the product
//   - *errs.DomainError with reason ErrMaxUnitsPerItemExceeded when line holds more
//     than MaxUnitsPerItem units
//   - ErrOrderLineIsNotConstructed when line is nil or a zero value
//
// The order is left untouched on any error.
func (o *Order) UpdateItem(line *OrderLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	idx := o.indexOf(line.ProductID())
	if idx < 0 {
		return itemNotFound(line.ProductID())
	}

	if err := checkMaxUnits(line.Quantity()); err != nil {
		return err
	}

	o.lines[idx] = line
	o.recalculateTotalValue()
	return nil
}

// RemoveItem removes the line for line.ProductID(). Only the product identifier
// of line is used.
//
// Returns *errs.DomainError with reason ErrItemNotFound when the order does not
// hold the product.
func (o *Order) RemoveItem(line *OrderLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	idx := o.indexOf(line.ProductID())
	if idx < 0 {
		return itemNotFound(line.ProductID())
	}

	o.lines = slices.Delete(o.lines, idx, idx+1)
	o.recalculateTotalValue()
	return nil
}

func (o *Order) indexOf(productID kernel.UUID) int {
	return slices.IndexFunc(o.lines, func(l *OrderLine) bool {
		return l.ProductID().IsEqual(productID)
	})
}

func (o *Order) recalculateTotalValue() {
	total := kernel.ZeroMoney()
	for _, l := range o.lines {
		total = total.Add(l.Total())
	}
	o.totalValue = total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 0 {
		return errs.NewVersionIsInvalidErrorWithCause("order", fmt.Errorf("%d is negative", version))
	}
	o.version = version
	return nil
}

func (o *Order) setLines(lines []*OrderLine) error {
	restored := make([]*OrderLine, 0, len(lines))
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
		if err := checkMaxUnits(l.Quantity()); err != nil {
			return err
		}
		if slices.ContainsFunc(restored, func(r *OrderLine) bool { return r.ProductID().IsEqual(l.ProductID()) }) {
			return errs.NewDomainErrorWithCause(
				ErrDuplicateItem,
				errs.NewValueIsInvalidErrorWithCause("productId", fmt.Errorf("%s occurs more than once", l.ProductID())),
			)
		}
		restored = append(restored, l)
	}
	o.lines = restored
	return nil
}

func checkMaxUnits(quantity int) error {
	if quantity > MaxUnitsPerItem {
		return errs.NewDomainErrorWithCause(
			ErrMaxUnitsPerItemExceeded,
			errs.NewValueIsOutOfRangeError("quantity", quantity, MinUnitsPerItem, MaxUnitsPerItem),
		)
	}
	return nil
}

func itemNotFound(productID kernel.UUID) error {
	return errs.NewDomainErrorWithCause(
		ErrItemNotFound,
		errs.NewObjectNotFoundError("productId", productID.String()),
	)
}
