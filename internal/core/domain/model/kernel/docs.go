// Package kernel provides the primitives shared by the sales domain model.
//
// The package includes:
//   - UUID: an opaque identifier for orders, customers and products
//   - Money: a non-negative decimal amount used for unit prices and totals
//
// Both are immutable values and safe for concurrent use.
package kernel
