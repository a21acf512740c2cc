package queries

import "errors"

// GetSalesSummaryQuery asks for the aggregate sales figures
type GetSalesSummaryQuery struct{}

// Validate validates the GetSalesSummaryQuery
func (q GetSalesSummaryQuery) Validate() error { return nil }

// SalesSummary aggregates revenue across all orders
type SalesSummary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	OrderCount        int     `json:"orderCount"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// GetCustomerStatsQuery asks for customer counts
type GetCustomerStatsQuery struct{}

// Validate validates the GetCustomerStatsQuery
func (q GetCustomerStatsQuery) Validate() error { return nil }

// CustomerStats holds customer counts. ActiveCustomers is a deliberate
// stand-in equal to TotalCustomers: a real activity window would need a
// cross-table read path this endpoint does not have.
type CustomerStats struct {
	TotalCustomers  int `json:"totalCustomers"`
	ActiveCustomers int `json:"activeCustomers"`
}

// GetProductRankingQuery asks for the top products by units sold
type GetProductRankingQuery struct {
	Limit int
}

// Validate validates the GetProductRankingQuery
func (q GetProductRankingQuery) Validate() error {
	if q.Limit <= 0 {
		return errors.New("limit must be positive")
	}
	return nil
}

// ProductRanking is one entry of the product sales ranking
type ProductRanking struct {
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	TotalQuantity int    `json:"totalQuantity"`
}
