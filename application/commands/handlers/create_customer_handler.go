package handlers

import (
	"context"

	"go.uber.org/zap"

	"commerce-backend/application/commands"
	"commerce-backend/application/ports"
	"commerce-backend/domain/model"
)

// CreateCustomerHandler writes new customer records
type CreateCustomerHandler struct {
	customers ports.CustomerRepository
	logger    *zap.Logger
}

// NewCreateCustomerHandler creates a new CreateCustomerHandler
func NewCreateCustomerHandler(customers ports.CustomerRepository, logger *zap.Logger) *CreateCustomerHandler {
	return &CreateCustomerHandler{customers: customers, logger: logger}
}

// Handle creates the customer and returns the stored record
func (h *CreateCustomerHandler) Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (*model.Customer, error) {
	customer, err := model.NewCustomer(cmd.Name, cmd.Email)
	if err != nil {
		return nil, err
	}

	if err := h.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	h.logger.Info("Customer created", zap.String("customerId", customer.CustomerID))
	return customer, nil
}
