package commands

import (
	"fmt"
	"strings"

	"commerce-backend/domain/model"
	apperrors "commerce-backend/pkg/errors"
)

// CreateCustomerCommand registers a new customer
type CreateCustomerCommand struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate validates the CreateCustomerCommand
func (c CreateCustomerCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return apperrors.NewValidationError("name is required")
	}
	if !model.IsValidEmail(c.Email) {
		return apperrors.NewValidationError("invalid email format")
	}
	return nil
}

// CreateProductCommand registers a new product
type CreateProductCommand struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Validate validates the CreateProductCommand
func (c CreateProductCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return apperrors.NewValidationError("name is required")
	}
	if strings.TrimSpace(c.Category) == "" {
		return apperrors.NewValidationError("category is required")
	}
	if c.Price <= 0 {
		return apperrors.NewValidationError("price must be greater than zero")
	}
	return nil
}

// OrderItemInput is one line of a new order
type OrderItemInput struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// CreateOrderCommand places a new order with its line items
type CreateOrderCommand struct {
	CustomerID string           `json:"customerId"`
	Items      []OrderItemInput `json:"items"`
}

// Validate checks every line item up front so a rejected order causes no
// writes at all.
func (c CreateOrderCommand) Validate() error {
	if strings.TrimSpace(c.CustomerID) == "" {
		return apperrors.NewValidationError("customerId is required")
	}
	if len(c.Items) == 0 {
		return apperrors.NewValidationError("order must contain at least one item")
	}
	for i, item := range c.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return apperrors.NewValidationError(fmt.Sprintf("items[%d]: productId is required", i))
		}
		if item.Quantity <= 0 {
			return apperrors.NewValidationError(fmt.Sprintf("invalid quantity for product %s: must be a positive integer", item.ProductID))
		}
		if item.UnitPrice < 0 {
			return apperrors.NewValidationError(fmt.Sprintf("items[%d]: unitPrice must not be negative", i))
		}
	}
	return nil
}
