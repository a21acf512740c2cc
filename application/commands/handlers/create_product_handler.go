package handlers

import (
	"context"

	"go.uber.org/zap"

	"commerce-backend/application/commands"
	"commerce-backend/application/ports"
	"commerce-backend/domain/model"
)

// CreateProductHandler writes new product records
type CreateProductHandler struct {
	products ports.ProductRepository
	logger   *zap.Logger
}

// NewCreateProductHandler creates a new CreateProductHandler
func NewCreateProductHandler(products ports.ProductRepository, logger *zap.Logger) *CreateProductHandler {
	return &CreateProductHandler{products: products, logger: logger}
}

// Handle creates the product and returns the stored record
func (h *CreateProductHandler) Handle(ctx context.Context, cmd commands.CreateProductCommand) (*model.Product, error) {
	product, err := model.NewProduct(cmd.Name, cmd.Category, cmd.Price, cmd.Description)
	if err != nil {
		return nil, err
	}

	if err := h.products.Create(ctx, product); err != nil {
		return nil, err
	}

	h.logger.Info("Product created",
		zap.String("productId", product.ProductID),
		zap.String("category", product.Category),
	)
	return product, nil
}
