package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "commerce-backend/pkg/errors"
)

func TestCreateCustomerCommandValidate(t *testing.T) {
	assert.NoError(t, CreateCustomerCommand{Name: "Ada", Email: "ada@example.com"}.Validate())

	for name, cmd := range map[string]CreateCustomerCommand{
		"missing name":  {Email: "ada@example.com"},
		"missing email": {Name: "Ada"},
		"bad email":     {Name: "Ada", Email: "not-an-email"},
	} {
		t.Run(name, func(t *testing.T) {
			err := cmd.Validate()
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestCreateProductCommandValidate(t *testing.T) {
	assert.NoError(t, CreateProductCommand{Name: "Widget", Category: "widgets", Price: 9.99}.Validate())

	for name, cmd := range map[string]CreateProductCommand{
		"missing name":     {Category: "widgets", Price: 9.99},
		"missing category": {Name: "Widget", Price: 9.99},
		"zero price":       {Name: "Widget", Category: "widgets", Price: 0},
		"negative price":   {Name: "Widget", Category: "widgets", Price: -1},
	} {
		t.Run(name, func(t *testing.T) {
			err := cmd.Validate()
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestCreateOrderCommandValidate(t *testing.T) {
	valid := CreateOrderCommand{
		CustomerID: "cust-1",
		Items: []OrderItemInput{
			{ProductID: "prod-a", Quantity: 1, UnitPrice: 9.99},
			{ProductID: "prod-b", Quantity: 3, UnitPrice: 1.50},
		},
	}
	assert.NoError(t, valid.Validate())
}

func TestCreateOrderCommandRejectsAnyBadLine(t *testing.T) {
	cmd := CreateOrderCommand{
		CustomerID: "cust-1",
		Items: []OrderItemInput{
			{ProductID: "prod-a", Quantity: 2, UnitPrice: 9.99},
			{ProductID: "prod-b", Quantity: 0, UnitPrice: 1.50},
		},
	}

	err := cmd.Validate()

	require.Error(t, err, "one invalid line rejects the whole order")
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "prod-b")
}

func TestCreateOrderCommandRequiresItems(t *testing.T) {
	err := CreateOrderCommand{CustomerID: "cust-1"}.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
