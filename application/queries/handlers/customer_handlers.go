package handlers

import (
	"context"

	"go.uber.org/zap"

	"commerce-backend/application/ports"
	"commerce-backend/application/queries"
	"commerce-backend/domain/model"
	apperrors "commerce-backend/pkg/errors"
)

// GetCustomerHandler serves single-customer lookups
type GetCustomerHandler struct {
	customers ports.CustomerRepository
	logger    *zap.Logger
}

// NewGetCustomerHandler creates a new GetCustomerHandler
func NewGetCustomerHandler(customers ports.CustomerRepository, logger *zap.Logger) *GetCustomerHandler {
	return &GetCustomerHandler{customers: customers, logger: logger}
}

// Handle executes the customer lookup. The customer is the addressed
// resource here, so a miss is NotFound.
func (h *GetCustomerHandler) Handle(ctx context.Context, query queries.GetCustomerQuery) (*model.Customer, error) {
	customer, err := h.customers.GetByID(ctx, query.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.NewNotFoundError("customer")
	}
	return customer, nil
}

// SearchCustomerByEmailHandler serves email lookups via the email index
type SearchCustomerByEmailHandler struct {
	customers ports.CustomerRepository
	logger    *zap.Logger
}

// NewSearchCustomerByEmailHandler creates a new SearchCustomerByEmailHandler
func NewSearchCustomerByEmailHandler(customers ports.CustomerRepository, logger *zap.Logger) *SearchCustomerByEmailHandler {
	return &SearchCustomerByEmailHandler{customers: customers, logger: logger}
}

// Handle executes the email search. No match returns a nil customer, not an
// error; search is a filter, not an addressed lookup.
func (h *SearchCustomerByEmailHandler) Handle(ctx context.Context, query queries.SearchCustomerByEmailQuery) (*model.Customer, error) {
	return h.customers.FindByEmail(ctx, query.Email)
}

// ListCustomerOrdersHandler serves one customer's order history
type ListCustomerOrdersHandler struct {
	orders ports.OrderRepository
	logger *zap.Logger
}

// NewListCustomerOrdersHandler creates a new ListCustomerOrdersHandler
func NewListCustomerOrdersHandler(orders ports.OrderRepository, logger *zap.Logger) *ListCustomerOrdersHandler {
	return &ListCustomerOrdersHandler{orders: orders, logger: logger}
}

// Handle executes the customer order listing, newest first
func (h *ListCustomerOrdersHandler) Handle(ctx context.Context, query queries.ListCustomerOrdersQuery) (*queries.OrderPage, error) {
	orders, nextToken, err := h.orders.ListByCustomer(ctx, query.CustomerID, query.Limit, query.NextToken)
	if err != nil {
		return nil, err
	}

	return &queries.OrderPage{Items: orders, NextToken: nextToken}, nil
}
