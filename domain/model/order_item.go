package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "commerce-backend/pkg/errors"
)

// OrderItem represents a single line of an order
type OrderItem struct {
	OrderItemID string  `json:"orderItemId"`
	OrderID     string  `json:"orderId"`
	ProductID   string  `json:"productId"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// NewOrderItem creates an order item with a fresh identifier.
// Quantity must be a positive integer; violating input is rejected
// before any write is attempted.
func NewOrderItem(orderID, productID string, quantity int, unitPrice float64) (*OrderItem, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, apperrors.NewValidationError("orderId is required")
	}
	if strings.TrimSpace(productID) == "" {
		return nil, apperrors.NewValidationError("productId is required")
	}
	if quantity <= 0 {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("invalid quantity for product %s: must be a positive integer", productID))
	}
	if unitPrice < 0 {
		return nil, apperrors.NewValidationError("unitPrice must not be negative")
	}

	return &OrderItem{
		OrderItemID: uuid.New().String(),
		OrderID:     orderID,
		ProductID:   productID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}, nil
}
