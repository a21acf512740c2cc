package handlers

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"commerce-backend/application/ports"
	"commerce-backend/application/queries"
)

// GetSalesSummaryHandler aggregates revenue across the whole order table
type GetSalesSummaryHandler struct {
	orders ports.OrderRepository
	logger *zap.Logger
}

// NewGetSalesSummaryHandler creates a new GetSalesSummaryHandler
func NewGetSalesSummaryHandler(orders ports.OrderRepository, logger *zap.Logger) *GetSalesSummaryHandler {
	return &GetSalesSummaryHandler{orders: orders, logger: logger}
}

// Handle scans all orders and computes totals. An empty table yields all
// zeros rather than an error.
func (h *GetSalesSummaryHandler) Handle(ctx context.Context, query queries.GetSalesSummaryQuery) (*queries.SalesSummary, error) {
	orders, err := h.orders.ScanAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &queries.SalesSummary{OrderCount: len(orders)}
	for _, order := range orders {
		summary.TotalRevenue += order.TotalAmount
	}
	if summary.OrderCount > 0 {
		summary.AverageOrderValue = summary.TotalRevenue / float64(summary.OrderCount)
	}

	return summary, nil
}

// GetCustomerStatsHandler serves customer headcounts
type GetCustomerStatsHandler struct {
	customers ports.CustomerRepository
	logger    *zap.Logger
}

// NewGetCustomerStatsHandler creates a new GetCustomerStatsHandler
func NewGetCustomerStatsHandler(customers ports.CustomerRepository, logger *zap.Logger) *GetCustomerStatsHandler {
	return &GetCustomerStatsHandler{customers: customers, logger: logger}
}

// Handle counts customers. ActiveCustomers mirrors the total until an
// activity window exists; see queries.CustomerStats.
func (h *GetCustomerStatsHandler) Handle(ctx context.Context, query queries.GetCustomerStatsQuery) (*queries.CustomerStats, error) {
	total, err := h.customers.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return &queries.CustomerStats{
		TotalCustomers:  total,
		ActiveCustomers: total,
	}, nil
}

// GetProductRankingHandler ranks products by total units sold
type GetProductRankingHandler struct {
	orderItems ports.OrderItemRepository
	products   ports.ProductRepository
	logger     *zap.Logger
}

// NewGetProductRankingHandler creates a new GetProductRankingHandler
func NewGetProductRankingHandler(orderItems ports.OrderItemRepository, products ports.ProductRepository, logger *zap.Logger) *GetProductRankingHandler {
	return &GetProductRankingHandler{
		orderItems: orderItems,
		products:   products,
		logger:     logger,
	}
}

// Handle scans all order items, sums quantities per product, and resolves
// names for the top entries. Products deleted since their sale still rank;
// they surface with a placeholder name.
func (h *GetProductRankingHandler) Handle(ctx context.Context, query queries.GetProductRankingQuery) ([]queries.ProductRanking, error) {
	items, err := h.orderItems.ScanAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	for _, item := range items {
		totals[item.ProductID] += item.Quantity
	}

	ranking := make([]queries.ProductRanking, 0, len(totals))
	for productID, quantity := range totals {
		ranking = append(ranking, queries.ProductRanking{
			ProductID:     productID,
			TotalQuantity: quantity,
		})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].TotalQuantity != ranking[j].TotalQuantity {
			return ranking[i].TotalQuantity > ranking[j].TotalQuantity
		}
		return ranking[i].ProductID < ranking[j].ProductID
	})
	if len(ranking) > query.Limit {
		ranking = ranking[:query.Limit]
	}

	if len(ranking) == 0 {
		return ranking, nil
	}

	ids := make([]string, len(ranking))
	for i, entry := range ranking {
		ids[i] = entry.ProductID
	}
	resolved, err := h.products.BatchGetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(resolved))
	for _, product := range resolved {
		names[product.ProductID] = product.Name
	}
	for i := range ranking {
		name, ok := names[ranking[i].ProductID]
		if !ok {
			name = "Unknown Product"
		}
		ranking[i].ProductName = name
	}

	return ranking, nil
}
