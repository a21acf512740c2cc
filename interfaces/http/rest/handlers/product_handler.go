package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"commerce-backend/application/commands"
	"commerce-backend/application/commands/bus"
	"commerce-backend/application/queries"
	querybus "commerce-backend/application/queries/bus"
	"commerce-backend/pkg/common"
	apperrors "commerce-backend/pkg/errors"
	"commerce-backend/pkg/utils"
)

// maxBodyBytes caps request bodies across all write endpoints.
const maxBodyBytes = 1 << 20

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *ProductHandler {
	return &ProductHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Category    string  `json:"category" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.commandBus.Send(r.Context(), commands.CreateProductCommand{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error("Failed to create product", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, result)
}

// GetProduct handles GET /products/{productID}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	result, err := h.queryBus.Ask(r.Context(), queries.GetProductQuery{ProductID: productID})
	if err != nil {
		if !apperrors.IsNotFound(err) {
			h.logger.Error("Failed to get product", zap.String("productId", productID), zap.Error(err))
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ListProductsByCategory handles GET /products?category=...
func (h *ProductHandler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	page := common.ExtractPageParams(r)

	result, err := h.queryBus.Ask(r.Context(), queries.ListProductsByCategoryQuery{
		Category:  category,
		Limit:     page.Limit,
		NextToken: page.NextToken,
	})
	if err != nil {
		if !apperrors.IsValidation(err) {
			h.logger.Error("Failed to list products", zap.String("category", category), zap.Error(err))
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
