package model

import (
	"strings"

	"github.com/google/uuid"

	apperrors "commerce-backend/pkg/errors"
	"commerce-backend/pkg/utils"
)

// Order statuses
const (
	OrderStatusPending = "Pending"
)

// Order represents an order record
type Order struct {
	OrderID     string  `json:"orderId"`
	CustomerID  string  `json:"customerId"`
	OrderDate   string  `json:"orderDate"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// NewOrder creates an order in Pending status with a fresh identifier.
// TotalAmount starts at zero; the caller sets it once line totals are known.
func NewOrder(customerID string) (*Order, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, apperrors.NewValidationError("customerId is required")
	}

	now := utils.NowRFC3339()
	return &Order{
		OrderID:     uuid.New().String(),
		CustomerID:  customerID,
		OrderDate:   now,
		TotalAmount: 0,
		Status:      OrderStatusPending,
		CreatedAt:   now,
	}, nil
}
