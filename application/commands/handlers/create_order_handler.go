package handlers

import (
	"context"

	"go.uber.org/zap"

	"commerce-backend/application/commands"
	"commerce-backend/application/ports"
	"commerce-backend/domain/events"
	"commerce-backend/domain/model"
)

// CreateOrderResult is the outcome of a successful order placement
type CreateOrderResult struct {
	Order *model.Order      `json:"order"`
	Items []model.OrderItem `json:"items"`
}

// CreateOrderHandler writes an order together with its line items
type CreateOrderHandler struct {
	orders     ports.OrderRepository
	orderItems ports.OrderItemRepository
	publisher  ports.EventPublisher
	logger     *zap.Logger
}

// NewCreateOrderHandler creates a new CreateOrderHandler
func NewCreateOrderHandler(
	orders ports.OrderRepository,
	orderItems ports.OrderItemRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *CreateOrderHandler {
	return &CreateOrderHandler{
		orders:     orders,
		orderItems: orderItems,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle builds every record in memory first, then writes the order followed
// by its items. Any invalid line aborts before the first write. There is no
// cross-table transaction, so a mid-sequence failure can leave a partial
// order; the read side tolerates that as a referential gap.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*CreateOrderResult, error) {
	order, err := model.NewOrder(cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(cmd.Items))
	var total float64
	for _, input := range cmd.Items {
		item, err := model.NewOrderItem(order.OrderID, input.ProductID, input.Quantity, input.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
		total += float64(input.Quantity) * input.UnitPrice
	}
	order.TotalAmount = total

	if err := h.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	for i := range items {
		if err := h.orderItems.Create(ctx, &items[i]); err != nil {
			h.logger.Error("Order item write failed after order write",
				zap.String("orderId", order.OrderID),
				zap.String("productId", items[i].ProductID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if err := h.publisher.Publish(ctx, events.OrderCreated{
		OrderID:    order.OrderID,
		CustomerID: order.CustomerID,
		ItemCount:  len(items),
		OrderDate:  order.OrderDate,
	}); err != nil {
		h.logger.Warn("OrderCreated publish failed", zap.String("orderId", order.OrderID), zap.Error(err))
	}

	h.logger.Info("Order created",
		zap.String("orderId", order.OrderID),
		zap.String("customerId", order.CustomerID),
		zap.Int("itemCount", len(items)),
	)
	return &CreateOrderResult{Order: order, Items: items}, nil
}
