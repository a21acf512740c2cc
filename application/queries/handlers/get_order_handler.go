package handlers

import (
	"context"

	"go.uber.org/zap"

	"commerce-backend/application/pipeline"
	"commerce-backend/application/queries"
	"commerce-backend/domain/model"
)

// GetOrderHandler serves the composite order view through the fetch-and-merge
// pipeline
type GetOrderHandler struct {
	pipeline *pipeline.Pipeline
	logger   *zap.Logger
}

// NewGetOrderHandler creates a new GetOrderHandler
func NewGetOrderHandler(p *pipeline.Pipeline, logger *zap.Logger) *GetOrderHandler {
	return &GetOrderHandler{
		pipeline: p,
		logger:   logger,
	}
}

// Handle executes the getOrder pipeline
func (h *GetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (*model.CompositeOrderView, error) {
	view, err := h.pipeline.Execute(ctx, query.OrderID)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Order view served",
		zap.String("orderId", query.OrderID),
		zap.Int("itemCount", len(view.OrderItems)),
	)
	return view, nil
}
