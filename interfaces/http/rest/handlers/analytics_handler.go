package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"commerce-backend/application/queries"
	querybus "commerce-backend/application/queries/bus"
	"commerce-backend/pkg/common"
)

// defaultRankingLimit bounds the product ranking when no limit is passed.
const defaultRankingLimit = 10

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// GetSalesSummary handles GET /analytics/sales-summary
func (h *AnalyticsHandler) GetSalesSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetSalesSummaryQuery{})
	if err != nil {
		h.logger.Error("Failed to compute sales summary", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetCustomerStats handles GET /analytics/customer-stats
func (h *AnalyticsHandler) GetCustomerStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetCustomerStatsQuery{})
	if err != nil {
		h.logger.Error("Failed to compute customer stats", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetProductRanking handles GET /analytics/product-ranking?limit=...
func (h *AnalyticsHandler) GetProductRanking(w http.ResponseWriter, r *http.Request) {
	limit := defaultRankingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil && l > 0 {
			limit = l
		}
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetProductRankingQuery{Limit: limit})
	if err != nil {
		h.logger.Error("Failed to compute product ranking", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
