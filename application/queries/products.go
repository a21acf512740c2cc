package queries

import (
	"errors"

	"commerce-backend/domain/model"
)

// GetProductQuery asks for one product by ID
type GetProductQuery struct {
	ProductID string
}

// Validate validates the GetProductQuery
func (q GetProductQuery) Validate() error {
	if q.ProductID == "" {
		return errors.New("product ID is required")
	}
	return nil
}

// ListProductsByCategoryQuery asks for a page of products in a category.
// The category is matched case-insensitively (stored lowercase).
type ListProductsByCategoryQuery struct {
	Category  string
	Limit     int32
	NextToken string
}

// Validate validates the ListProductsByCategoryQuery
func (q ListProductsByCategoryQuery) Validate() error {
	if q.Category == "" {
		return errors.New("category is required")
	}
	if q.Limit <= 0 {
		return errors.New("limit must be positive")
	}
	return nil
}

// ProductPage is one page of products with the cursor for the next page
type ProductPage struct {
	Items     []model.Product `json:"items"`
	NextToken string          `json:"nextToken,omitempty"`
}
