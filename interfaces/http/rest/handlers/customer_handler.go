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

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.commandBus.Send(r.Context(), commands.CreateCustomerCommand{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.logger.Error("Failed to create customer", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, result)
}

// GetCustomer handles GET /customers/{customerID}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")

	result, err := h.queryBus.Ask(r.Context(), queries.GetCustomerQuery{CustomerID: customerID})
	if err != nil {
		if !apperrors.IsNotFound(err) {
			h.logger.Error("Failed to get customer", zap.String("customerId", customerID), zap.Error(err))
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// SearchCustomerByEmail handles GET /customers/search?email=...
// No match returns 200 with a null body, not 404.
func (h *CustomerHandler) SearchCustomerByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	result, err := h.queryBus.Ask(r.Context(), queries.SearchCustomerByEmailQuery{Email: email})
	if err != nil {
		if !apperrors.IsValidation(err) {
			h.logger.Error("Failed to search customer by email", zap.Error(err))
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ListCustomerOrders handles GET /customers/{customerID}/orders
func (h *CustomerHandler) ListCustomerOrders(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")
	page := common.ExtractPageParams(r)

	result, err := h.queryBus.Ask(r.Context(), queries.ListCustomerOrdersQuery{
		CustomerID: customerID,
		Limit:      page.Limit,
		NextToken:  page.NextToken,
	})
	if err != nil {
		h.logger.Error("Failed to list customer orders", zap.String("customerId", customerID), zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
