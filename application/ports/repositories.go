package ports

import (
	"context"

	"commerce-backend/domain/events"
	"commerce-backend/domain/model"
)

// Lookup-by-key reads return (nil, nil) when the key has no record, matching
// the store's GetItem semantics. Callers decide whether a miss is an error:
// the addressed resource missing is NotFound, enrichment data missing is a
// referential gap represented as nil.

// CustomerRepository provides access to customer records
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, customerID string) (*model.Customer, error)
	// FindByEmail returns the first customer whose email matches; email is
	// indexed but not unique.
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	// CountAll scans the full table; intended for low-cardinality stats only.
	CountAll(ctx context.Context) (int, error)
}

// ProductRepository provides access to product records
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, productID string) (*model.Product, error)
	ListByCategory(ctx context.Context, category string, limit int32, nextToken string) ([]model.Product, string, error)
	// BatchGetByIDs returns the records that exist; missing keys are silently
	// omitted and result order is unspecified.
	BatchGetByIDs(ctx context.Context, productIDs []string) ([]model.Product, error)
}

// OrderRepository provides access to order records
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, orderID string) (*model.Order, error)
	// ListByCustomer returns the customer's orders newest-first.
	ListByCustomer(ctx context.Context, customerID string, limit int32, nextToken string) ([]model.Order, string, error)
	List(ctx context.Context, limit int32, nextToken string) ([]model.Order, string, error)
	// ScanAll reads the full table; intended for low-cardinality stats only.
	ScanAll(ctx context.Context) ([]model.Order, error)
}

// OrderItemRepository provides access to order item records
type OrderItemRepository interface {
	Create(ctx context.Context, item *model.OrderItem) error
	// ListByOrder returns every item of the order, unpaginated; order sizes
	// are assumed small. Item order is store-defined.
	ListByOrder(ctx context.Context, orderID string) ([]model.OrderItem, error)
	// ScanAll reads the full table; intended for low-cardinality stats only.
	ScanAll(ctx context.Context) ([]model.OrderItem, error)
}

// EventPublisher publishes domain events. Implementations are best-effort:
// a publish failure must never fail the request that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}
