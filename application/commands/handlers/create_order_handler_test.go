package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"commerce-backend/application/commands"
	"commerce-backend/domain/events"
	"commerce-backend/domain/model"
)

type recordingOrderRepo struct {
	created []model.Order
	err     error
}

func (r *recordingOrderRepo) Create(ctx context.Context, order *model.Order) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, *order)
	return nil
}

func (r *recordingOrderRepo) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	return nil, nil
}

func (r *recordingOrderRepo) ListByCustomer(ctx context.Context, customerID string, limit int32, nextToken string) ([]model.Order, string, error) {
	return nil, "", nil
}

func (r *recordingOrderRepo) List(ctx context.Context, limit int32, nextToken string) ([]model.Order, string, error) {
	return nil, "", nil
}

func (r *recordingOrderRepo) ScanAll(ctx context.Context) ([]model.Order, error) { return nil, nil }

type recordingOrderItemRepo struct {
	created []model.OrderItem
	err     error
}

func (r *recordingOrderItemRepo) Create(ctx context.Context, item *model.OrderItem) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, *item)
	return nil
}

func (r *recordingOrderItemRepo) ListByOrder(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	return nil, nil
}

func (r *recordingOrderItemRepo) ScanAll(ctx context.Context) ([]model.OrderItem, error) {
	return nil, nil
}

type recordingPublisher struct {
	published []events.Event
}

func (r *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	r.published = append(r.published, event)
	return nil
}

func TestCreateOrderWritesOrderThenItems(t *testing.T) {
	orders := &recordingOrderRepo{}
	items := &recordingOrderItemRepo{}
	publisher := &recordingPublisher{}
	handler := NewCreateOrderHandler(orders, items, publisher, zap.NewNop())

	result, err := handler.Handle(context.Background(), commands.CreateOrderCommand{
		CustomerID: "cust-1",
		Items: []commands.OrderItemInput{
			{ProductID: "prod-a", Quantity: 2, UnitPrice: 10.00},
			{ProductID: "prod-b", Quantity: 1, UnitPrice: 5.50},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, orders.created, 1)
	require.Len(t, items.created, 2)

	order := orders.created[0]
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.InDelta(t, 25.50, order.TotalAmount, 1e-9)
	for _, item := range items.created {
		assert.Equal(t, order.OrderID, item.OrderID, "items carry the generated order key")
	}

	require.Len(t, publisher.published, 1)
	created, ok := publisher.published[0].(events.OrderCreated)
	require.True(t, ok)
	assert.Equal(t, order.OrderID, created.OrderID)
	assert.Equal(t, 2, created.ItemCount)
}

func TestCreateOrderInvalidQuantityCausesNoWrites(t *testing.T) {
	orders := &recordingOrderRepo{}
	items := &recordingOrderItemRepo{}
	handler := NewCreateOrderHandler(orders, items, &recordingPublisher{}, zap.NewNop())

	_, err := handler.Handle(context.Background(), commands.CreateOrderCommand{
		CustomerID: "cust-1",
		Items: []commands.OrderItemInput{
			{ProductID: "prod-a", Quantity: 2, UnitPrice: 10.00},
			{ProductID: "prod-b", Quantity: -1, UnitPrice: 5.50},
		},
	})

	require.Error(t, err)
	assert.Empty(t, orders.created)
	assert.Empty(t, items.created)
}

func TestCreateOrderStopsOnOrderWriteFailure(t *testing.T) {
	orders := &recordingOrderRepo{err: errors.New("write throttled")}
	items := &recordingOrderItemRepo{}
	handler := NewCreateOrderHandler(orders, items, &recordingPublisher{}, zap.NewNop())

	_, err := handler.Handle(context.Background(), commands.CreateOrderCommand{
		CustomerID: "cust-1",
		Items:      []commands.OrderItemInput{{ProductID: "prod-a", Quantity: 1, UnitPrice: 1}},
	})

	require.Error(t, err)
	assert.Empty(t, items.created, "no item writes after the order write fails")
}
