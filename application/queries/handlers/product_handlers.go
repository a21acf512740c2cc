package handlers

import (
	"context"

	"go.uber.org/zap"

	"commerce-backend/application/ports"
	"commerce-backend/application/queries"
	"commerce-backend/domain/model"
	apperrors "commerce-backend/pkg/errors"
)

// GetProductHandler serves single-product lookups
type GetProductHandler struct {
	products ports.ProductRepository
	logger   *zap.Logger
}

// NewGetProductHandler creates a new GetProductHandler
func NewGetProductHandler(products ports.ProductRepository, logger *zap.Logger) *GetProductHandler {
	return &GetProductHandler{products: products, logger: logger}
}

// Handle executes the product lookup
func (h *GetProductHandler) Handle(ctx context.Context, query queries.GetProductQuery) (*model.Product, error) {
	product, err := h.products.GetByID(ctx, query.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NewNotFoundError("product")
	}
	return product, nil
}

// ListProductsByCategoryHandler serves category listings via the category
// index
type ListProductsByCategoryHandler struct {
	products ports.ProductRepository
	logger   *zap.Logger
}

// NewListProductsByCategoryHandler creates a new ListProductsByCategoryHandler
func NewListProductsByCategoryHandler(products ports.ProductRepository, logger *zap.Logger) *ListProductsByCategoryHandler {
	return &ListProductsByCategoryHandler{products: products, logger: logger}
}

// Handle executes the category listing
func (h *ListProductsByCategoryHandler) Handle(ctx context.Context, query queries.ListProductsByCategoryQuery) (*queries.ProductPage, error) {
	products, nextToken, err := h.products.ListByCategory(ctx, query.Category, query.Limit, query.NextToken)
	if err != nil {
		return nil, err
	}

	return &queries.ProductPage{Items: products, NextToken: nextToken}, nil
}
