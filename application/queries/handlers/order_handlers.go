package handlers

import (
	"context"

	"go.uber.org/zap"

	"commerce-backend/application/ports"
	"commerce-backend/application/queries"
)

// ListOrdersHandler serves the paginated full order listing
type ListOrdersHandler struct {
	orders ports.OrderRepository
	logger *zap.Logger
}

// NewListOrdersHandler creates a new ListOrdersHandler
func NewListOrdersHandler(orders ports.OrderRepository, logger *zap.Logger) *ListOrdersHandler {
	return &ListOrdersHandler{orders: orders, logger: logger}
}

// Handle executes the order listing
func (h *ListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) (*queries.OrderPage, error) {
	orders, nextToken, err := h.orders.List(ctx, query.Limit, query.NextToken)
	if err != nil {
		return nil, err
	}

	return &queries.OrderPage{Items: orders, NextToken: nextToken}, nil
}
