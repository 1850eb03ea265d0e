package http

import (
	"context"
	"net/http"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type (
	CreateDraftOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDraftOrderCommand) (kernel.UUID, error)
	}
	AddOrderItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddOrderItemCommand) error
	}
	UpdateOrderItemHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderItemCommand) error
	}
	RemoveOrderItemHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveOrderItemCommand) error
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
)

// Server translates HTTP requests into commands and queries.
type Server struct {
	createDraftOrderHandler CreateDraftOrderHandler
	addOrderItemHandler     AddOrderItemHandler
	updateOrderItemHandler  UpdateOrderItemHandler
	removeOrderItemHandler  RemoveOrderItemHandler

	getOrderHandler GetOrderHandler
}

func NewServer(
	createDraftOrderHandler CreateDraftOrderHandler,
	addOrderItemHandler AddOrderItemHandler,
	updateOrderItemHandler UpdateOrderItemHandler,
	removeOrderItemHandler RemoveOrderItemHandler,
	getOrderHandler GetOrderHandler,
) *Server {
	return &Server{
		createDraftOrderHandler: createDraftOrderHandler,
		addOrderItemHandler:     addOrderItemHandler,
		updateOrderItemHandler:  updateOrderItemHandler,
		removeOrderItemHandler:  removeOrderItemHandler,
		getOrderHandler:         getOrderHandler,
	}
}

// CreateDraftOrder handles POST /api/v1/orders.
func (s *Server) CreateDraftOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(body.CustomerID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateDraftOrderCommand(customerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := s.createDraftOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.Bytes()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(response))
}

// AddOrderItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body NewOrderItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromBytes(body.ProductID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}
	unitPrice, err := kernel.MoneyFromString(body.UnitPrice)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, productID, body.ProductName, body.Quantity, unitPrice)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderItem handles PUT /api/v1/orders/{orderId}/items/{productId}.
func (s *Server) UpdateOrderItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body OrderItemUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	unitPrice, err := kernel.MoneyFromString(body.UnitPrice)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderItemCommand(orderID, productID, body.ProductName, body.Quantity, unitPrice)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/{orderId}/items/{productId}.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, productID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(id[:])
}

func toOrder(response queries.GetOrderQueryResponse) Order {
	lines := make([]OrderLine, len(response.Lines))
	for i, line := range response.Lines {
		lines[i] = OrderLine{
			ProductID:   line.ProductID.Bytes(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.String(),
			Total:       line.Total.String(),
		}
	}

	return Order{
		ID:         response.ID.Bytes(),
		CustomerID: response.CustomerID.Bytes(),
		Status:     response.Status,
		TotalValue: response.TotalValue.String(),
		Lines:      lines,
	}
}
