package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "commerce-backend/pkg/errors"
)

func TestNewCustomer(t *testing.T) {
	customer, err := NewCustomer("Ada Lovelace", "ada@example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, customer.CustomerID)
	assert.Equal(t, "Ada Lovelace", customer.Name)
	assert.Equal(t, "ada@example.com", customer.Email)
	assert.NotEmpty(t, customer.CreatedAt)
}

func TestNewCustomerRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		cname string
		email string
	}{
		{"empty name", "", "ada@example.com"},
		{"blank name", "   ", "ada@example.com"},
		{"empty email", "Ada", ""},
		{"missing at sign", "Ada", "ada.example.com"},
		{"missing tld", "Ada", "ada@example"},
		{"whitespace in email", "Ada", "ada @example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomer(tt.cname, tt.email)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.co"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.com"))
	assert.False(t, IsValidEmail("no-at-sign"))
	assert.False(t, IsValidEmail("a@b@example.com"))
}

func TestNewProductNormalizesCategory(t *testing.T) {
	product, err := NewProduct("Widget", "ELECTRONICS", 19.99, "a widget")

	require.NoError(t, err)
	assert.Equal(t, "electronics", product.Category)
	assert.NotEmpty(t, product.ProductID)
}

func TestNewProductRejectsNonPositivePrice(t *testing.T) {
	for _, price := range []float64{0, -1, -19.99} {
		_, err := NewProduct("Widget", "widgets", price, "")
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	}
}

func TestNewOrderDefaults(t *testing.T) {
	order, err := NewOrder("cust-1")

	require.NoError(t, err)
	assert.NotEmpty(t, order.OrderID)
	assert.Equal(t, "cust-1", order.CustomerID)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Zero(t, order.TotalAmount)
	assert.Equal(t, order.CreatedAt, order.OrderDate)
}

func TestNewOrderRequiresCustomer(t *testing.T) {
	_, err := NewOrder("  ")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestNewOrderItemQuantityMustBePositive(t *testing.T) {
	for _, quantity := range []int{0, -1, -10} {
		_, err := NewOrderItem("order-1", "prod-a", quantity, 9.99)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "prod-a")
	}
}

func TestNewOrderItemValid(t *testing.T) {
	item, err := NewOrderItem("order-1", "prod-a", 3, 9.99)

	require.NoError(t, err)
	assert.NotEmpty(t, item.OrderItemID)
	assert.Equal(t, "order-1", item.OrderID)
	assert.Equal(t, 3, item.Quantity)
}
