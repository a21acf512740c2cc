package model

// CompositeOrderItem is an order item enriched with its product.
// Product is nil only when the referenced product no longer exists.
type CompositeOrderItem struct {
	OrderItem
	Product *Product `json:"product"`
}

// CompositeOrderView is the denormalized getOrder result: the order merged
// with its customer and product-enriched items. It is assembled at request
// time and never persisted. Customer is nil only when the referenced
// customer no longer exists; that is a referential gap, not corruption.
type CompositeOrderView struct {
	Order
	Customer   *Customer            `json:"customer"`
	OrderItems []CompositeOrderItem `json:"orderItems"`
}
