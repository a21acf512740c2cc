package queries

import (
	"errors"

	"commerce-backend/domain/model"
)

// GetOrderQuery asks for the composite view of one order
type GetOrderQuery struct {
	OrderID string
}

// Validate validates the GetOrderQuery
func (q GetOrderQuery) Validate() error {
	if q.OrderID == "" {
		return errors.New("order ID is required")
	}
	return nil
}

// ListOrdersQuery asks for a page of all orders
type ListOrdersQuery struct {
	Limit     int32
	NextToken string
}

// Validate validates the ListOrdersQuery
func (q ListOrdersQuery) Validate() error {
	if q.Limit <= 0 {
		return errors.New("limit must be positive")
	}
	return nil
}

// ListCustomerOrdersQuery asks for a page of one customer's orders,
// newest first
type ListCustomerOrdersQuery struct {
	CustomerID string
	Limit      int32
	NextToken  string
}

// Validate validates the ListCustomerOrdersQuery
func (q ListCustomerOrdersQuery) Validate() error {
	if q.CustomerID == "" {
		return errors.New("customer ID is required")
	}
	if q.Limit <= 0 {
		return errors.New("limit must be positive")
	}
	return nil
}

// OrderPage is one page of orders with the cursor for the next page
type OrderPage struct {
	Items     []model.Order `json:"items"`
	NextToken string        `json:"nextToken,omitempty"`
}
