package model

import (
	"strings"

	"github.com/google/uuid"

	apperrors "commerce-backend/pkg/errors"
	"commerce-backend/pkg/utils"
)

// Product represents a product record
type Product struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// NewProduct creates a product with a fresh identifier. The category is
// normalized to lowercase so the category index has one spelling per category.
func NewProduct(name, category string, price float64, description string) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if strings.TrimSpace(category) == "" {
		return nil, apperrors.NewValidationError("category is required")
	}
	if price <= 0 {
		return nil, apperrors.NewValidationError("price must be a positive number")
	}

	return &Product{
		ProductID:   uuid.New().String(),
		Name:        name,
		Category:    NormalizeCategory(category),
		Price:       price,
		Description: description,
		CreatedAt:   utils.NowRFC3339(),
	}, nil
}

// NormalizeCategory lowercases a category name for storage and lookup
func NormalizeCategory(category string) string {
	return strings.ToLower(category)
}
