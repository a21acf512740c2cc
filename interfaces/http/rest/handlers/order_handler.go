package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"commerce-backend/application/commands"
	"commerce-backend/application/commands/bus"
	"commerce-backend/application/queries"
	querybus "commerce-backend/application/queries/bus"
	"commerce-backend/pkg/common"
	apperrors "commerce-backend/pkg/errors"
	"commerce-backend/pkg/utils"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *OrderHandler {
	return &OrderHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// OrderItemRequest is one line item of a create order request
type OrderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	CustomerID string             `json:"customerId" validate:"required"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,max=100,dive"`
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, apperrors.NewValidationError(err.Error()))
		return
	}

	items := make([]commands.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	result, err := h.commandBus.Send(r.Context(), commands.CreateOrderCommand{
		CustomerID: req.CustomerID,
		Items:      items,
	})
	if err != nil {
		if !apperrors.IsValidation(err) {
			h.logger.Error("Failed to create order", zap.String("customerId", req.CustomerID), zap.Error(err))
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, result)
}

// GetOrder handles GET /orders/{orderID}. The response is the composite
// view: order, customer, and line items with their products resolved.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	result, err := h.queryBus.Ask(r.Context(), queries.GetOrderQuery{OrderID: orderID})
	if err != nil {
		if !apperrors.IsNotFound(err) && !apperrors.IsValidation(err) {
			h.logger.Error("Failed to get order", zap.String("orderId", orderID), zap.Error(err))
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page := common.ExtractPageParams(r)

	result, err := h.queryBus.Ask(r.Context(), queries.ListOrdersQuery{
		Limit:     page.Limit,
		NextToken: page.NextToken,
	})
	if err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
