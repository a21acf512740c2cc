package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"commerce-backend/application/commands/bus"
	"commerce-backend/application/queries"
	querybus "commerce-backend/application/queries/bus"
	"commerce-backend/domain/model"
	"commerce-backend/pkg/common"
	apperrors "commerce-backend/pkg/errors"
)

func newOrderTestServer(t *testing.T, queryHandler querybus.QueryHandlerFunc) *chi.Mux {
	t.Helper()

	qb := querybus.NewQueryBus()
	require.NoError(t, qb.Register(queries.GetOrderQuery{}, queryHandler))

	handler := NewOrderHandler(bus.NewCommandBus(), qb, zap.NewNop())
	router := chi.NewRouter()
	router.Get("/orders/{orderID}", handler.GetOrder)
	return router
}

func TestGetOrderEndpointReturnsView(t *testing.T) {
	router := newOrderTestServer(t, func(ctx context.Context, query querybus.Query) (interface{}, error) {
		return &model.CompositeOrderView{
			Order: model.Order{OrderID: "order-1", CustomerID: "cust-1"},
		}, nil
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/order-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, rec.Body.String(), `"orderId":"order-1"`)
}

func TestGetOrderEndpointMapsNotFound(t *testing.T) {
	router := newOrderTestServer(t, func(ctx context.Context, query querybus.Query) (interface{}, error) {
		return nil, apperrors.NewNotFoundError("order")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/order-gone", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(apperrors.ErrorTypeNotFound), resp.Error.Code)
}

func TestGetOrderEndpointMapsTimeout(t *testing.T) {
	router := newOrderTestServer(t, func(ctx context.Context, query querybus.Query) (interface{}, error) {
		return nil, apperrors.NewTimeoutError("getOrder")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/order-1", nil))

	assert.Equal(t, http.StatusRequestTimeout, rec.Code)
}

func TestCreateOrderEndpointRejectsBadBody(t *testing.T) {
	handler := NewOrderHandler(bus.NewCommandBus(), querybus.NewQueryBus(), zap.NewNop())
	router := chi.NewRouter()
	router.Post("/orders", handler.CreateOrder)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{not json"))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
