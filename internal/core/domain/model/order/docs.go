// Package order provides the sales order aggregate.
//
// The package includes:
//   - Order: the aggregate root owning the order lines and the total value
//   - OrderLine: one product line with quantity and unit price
//   - NewDraftOrder: the factory for new draft orders
//   - Status: the order state (only Draft is in use)
//
// Key business rules:
//   - A line needs at least MinUnitsPerItem units when it is constructed
//   - An order holds at most one line per product
//   - A product line never exceeds MaxUnitsPerItem units in an order
//   - The total value always equals the sum of quantity × unit price over all lines
//   - Every rejected operation leaves the order unchanged
//
// Rule violations are reported as *errs.DomainError. The package performs no I/O.
package order
