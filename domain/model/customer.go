package model

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	apperrors "commerce-backend/pkg/errors"
	"commerce-backend/pkg/utils"
)

// emailRegex is a simplified RFC 5322 shape: local@domain.tld
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Customer represents a customer record. Fields are immutable after creation.
type Customer struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	CreatedAt  string `json:"createdAt"`
}

// NewCustomer creates a customer with a fresh identifier.
// Email addresses are validated for shape but not uniqueness.
func NewCustomer(name, email string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if !IsValidEmail(email) {
		return nil, apperrors.NewValidationError("invalid email format")
	}

	return &Customer{
		CustomerID: uuid.New().String(),
		Name:       name,
		Email:      email,
		CreatedAt:  utils.NowRFC3339(),
	}, nil
}

// IsValidEmail reports whether the value matches the local@domain.tld shape
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
