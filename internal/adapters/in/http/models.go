package http

import "github.com/google/uuid"

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewOrder struct {
	CustomerID uuid.UUID `json:"customerId"`
}

type OrderCreated struct {
	ID uuid.UUID `json:"id"`
}

type NewOrderItem struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unitPrice"`
}

type OrderItemUpdate struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

// Order is the JSON view of an order. Amounts are decimal strings with two places.
type Order struct {
	ID         uuid.UUID   `json:"id"`
	CustomerID uuid.UUID   `json:"customerId"`
	Status     string      `json:"status"`
	TotalValue string      `json:"totalValue"`
	Lines      []OrderLine `json:"lines"`
}

type OrderLine struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unitPrice"`
	Total       string    `json:"total"`
}
