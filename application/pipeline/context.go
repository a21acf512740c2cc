package pipeline

import "commerce-backend/domain/model"

// orderContext is the per-invocation accumulator threaded through the
// stages. Each stage writes only the fields it owns and reads only fields
// written by earlier stages; there is no secondary result channel. A fresh
// context is created per Execute call and discarded afterwards, so
// concurrent invocations share nothing.
type orderContext struct {
	// seeded by the before handler
	orderID string

	// written by GetOrder
	order *model.Order

	// written by GetCustomer; nil when the referenced customer is gone
	customer *model.Customer

	// written by GetOrderItems; empty when the order has no items
	items []model.OrderItem

	// written by BatchGetProducts; holds only products that still exist
	products []model.Product
}
