package events

// Event is a domain event published to the event bus
type Event interface {
	DetailType() string
}

// OrderCreated is emitted after an order and its items are written
type OrderCreated struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
	ItemCount  int    `json:"itemCount"`
	OrderDate  string `json:"orderDate"`
}

// DetailType implements Event
func (OrderCreated) DetailType() string { return "OrderCreated" }

// ReferentialGapDetected is a data-quality signal: a foreign key on a
// returned order pointed at an entity that no longer exists. The order is
// still served; this event only surfaces the gap.
type ReferentialGapDetected struct {
	OrderID           string   `json:"orderId"`
	MissingCustomerID string   `json:"missingCustomerId,omitempty"`
	MissingProductIDs []string `json:"missingProductIds,omitempty"`
}

// DetailType implements Event
func (ReferentialGapDetected) DetailType() string { return "ReferentialGapDetected" }
