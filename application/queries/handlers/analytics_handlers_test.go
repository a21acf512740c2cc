package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"commerce-backend/application/queries"
	"commerce-backend/domain/model"
)

type stubOrderRepo struct {
	orders []model.Order
}

func (s *stubOrderRepo) Create(ctx context.Context, order *model.Order) error { return nil }

func (s *stubOrderRepo) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) ListByCustomer(ctx context.Context, customerID string, limit int32, nextToken string) ([]model.Order, string, error) {
	return nil, "", nil
}

func (s *stubOrderRepo) List(ctx context.Context, limit int32, nextToken string) ([]model.Order, string, error) {
	return nil, "", nil
}

func (s *stubOrderRepo) ScanAll(ctx context.Context) ([]model.Order, error) {
	return s.orders, nil
}

type stubCustomerRepo struct {
	count   int
	byID    map[string]*model.Customer
	byEmail map[string]*model.Customer
}

func (s *stubCustomerRepo) Create(ctx context.Context, customer *model.Customer) error { return nil }

func (s *stubCustomerRepo) GetByID(ctx context.Context, customerID string) (*model.Customer, error) {
	return s.byID[customerID], nil
}

func (s *stubCustomerRepo) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return s.byEmail[email], nil
}

func (s *stubCustomerRepo) CountAll(ctx context.Context) (int, error) { return s.count, nil }

type stubOrderItemRepo struct {
	items []model.OrderItem
}

func (s *stubOrderItemRepo) Create(ctx context.Context, item *model.OrderItem) error { return nil }

func (s *stubOrderItemRepo) ListByOrder(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	return nil, nil
}

func (s *stubOrderItemRepo) ScanAll(ctx context.Context) ([]model.OrderItem, error) {
	return s.items, nil
}

type stubProductRepo struct {
	products map[string]model.Product
}

func (s *stubProductRepo) Create(ctx context.Context, product *model.Product) error { return nil }

func (s *stubProductRepo) GetByID(ctx context.Context, productID string) (*model.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) ListByCategory(ctx context.Context, category string, limit int32, nextToken string) ([]model.Product, string, error) {
	return nil, "", nil
}

func (s *stubProductRepo) BatchGetByIDs(ctx context.Context, productIDs []string) ([]model.Product, error) {
	var found []model.Product
	for _, id := range productIDs {
		if product, ok := s.products[id]; ok {
			found = append(found, product)
		}
	}
	return found, nil
}

func TestSalesSummaryAggregates(t *testing.T) {
	repo := &stubOrderRepo{orders: []model.Order{
		{OrderID: "o1", TotalAmount: 10},
		{OrderID: "o2", TotalAmount: 20},
		{OrderID: "o3", TotalAmount: 30},
	}}
	handler := NewGetSalesSummaryHandler(repo, zap.NewNop())

	summary, err := handler.Handle(context.Background(), queries.GetSalesSummaryQuery{})

	require.NoError(t, err)
	assert.Equal(t, 3, summary.OrderCount)
	assert.InDelta(t, 60, summary.TotalRevenue, 1e-9)
	assert.InDelta(t, 20, summary.AverageOrderValue, 1e-9)
}

func TestSalesSummaryEmptyTableIsAllZeros(t *testing.T) {
	handler := NewGetSalesSummaryHandler(&stubOrderRepo{}, zap.NewNop())

	summary, err := handler.Handle(context.Background(), queries.GetSalesSummaryQuery{})

	require.NoError(t, err)
	assert.Zero(t, summary.OrderCount)
	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.AverageOrderValue, "no divide-by-zero on an empty table")
}

func TestCustomerStatsMirrorsTotal(t *testing.T) {
	handler := NewGetCustomerStatsHandler(&stubCustomerRepo{count: 7}, zap.NewNop())

	stats, err := handler.Handle(context.Background(), queries.GetCustomerStatsQuery{})

	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalCustomers)
	assert.Equal(t, 7, stats.ActiveCustomers)
}

func TestProductRankingOrdersByQuantity(t *testing.T) {
	items := &stubOrderItemRepo{items: []model.OrderItem{
		{ProductID: "prod-a", Quantity: 2},
		{ProductID: "prod-b", Quantity: 5},
		{ProductID: "prod-a", Quantity: 4},
		{ProductID: "prod-c", Quantity: 1},
	}}
	products := &stubProductRepo{products: map[string]model.Product{
		"prod-a": {ProductID: "prod-a", Name: "Alpha"},
		"prod-b": {ProductID: "prod-b", Name: "Beta"},
		"prod-c": {ProductID: "prod-c", Name: "Gamma"},
	}}
	handler := NewGetProductRankingHandler(items, products, zap.NewNop())

	ranking, err := handler.Handle(context.Background(), queries.GetProductRankingQuery{Limit: 2})

	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, "prod-a", ranking[0].ProductID)
	assert.Equal(t, 6, ranking[0].TotalQuantity)
	assert.Equal(t, "Alpha", ranking[0].ProductName)
	assert.Equal(t, "prod-b", ranking[1].ProductID)
	assert.Equal(t, 5, ranking[1].TotalQuantity)
}

func TestProductRankingMissingProductGetsPlaceholderName(t *testing.T) {
	items := &stubOrderItemRepo{items: []model.OrderItem{
		{ProductID: "prod-deleted", Quantity: 9},
	}}
	handler := NewGetProductRankingHandler(items, &stubProductRepo{}, zap.NewNop())

	ranking, err := handler.Handle(context.Background(), queries.GetProductRankingQuery{Limit: 5})

	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, "Unknown Product", ranking[0].ProductName)
	assert.Equal(t, 9, ranking[0].TotalQuantity)
}

func TestProductRankingEmptyTable(t *testing.T) {
	handler := NewGetProductRankingHandler(&stubOrderItemRepo{}, &stubProductRepo{}, zap.NewNop())

	ranking, err := handler.Handle(context.Background(), queries.GetProductRankingQuery{Limit: 5})

	require.NoError(t, err)
	assert.Empty(t, ranking)
}
