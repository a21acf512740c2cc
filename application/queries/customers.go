package queries

import (
	"errors"

	"commerce-backend/domain/model"
	apperrors "commerce-backend/pkg/errors"
)

// GetCustomerQuery asks for one customer by ID
type GetCustomerQuery struct {
	CustomerID string
}

// Validate validates the GetCustomerQuery
func (q GetCustomerQuery) Validate() error {
	if q.CustomerID == "" {
		return errors.New("customer ID is required")
	}
	return nil
}

// SearchCustomerByEmailQuery looks a customer up by email address.
// Email is indexed but not unique; the first match is returned.
type SearchCustomerByEmailQuery struct {
	Email string
}

// Validate validates the SearchCustomerByEmailQuery
func (q SearchCustomerByEmailQuery) Validate() error {
	if !model.IsValidEmail(q.Email) {
		return apperrors.NewValidationError("invalid email format")
	}
	return nil
}
