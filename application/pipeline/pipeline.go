// Package pipeline implements the getOrder fetch-and-merge pipeline: a
// fixed sequence of read stages (order, customer, order items, products)
// sharing one request-scoped context, composed into a single denormalized
// order view.
package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"commerce-backend/application/ports"
	"commerce-backend/domain/events"
	"commerce-backend/domain/model"
	apperrors "commerce-backend/pkg/errors"
	"commerce-backend/pkg/observability"
)

// Pipeline orchestrates the getOrder stages. Stages run strictly in
// sequence; the first hard failure stops the run and no later stage is
// invoked. GetCustomer and GetOrderItems are data-independent and could run
// concurrently, but the sequential order is the documented behavior here.
type Pipeline struct {
	orders     ports.OrderRepository
	customers  ports.CustomerRepository
	orderItems ports.OrderItemRepository
	products   ports.ProductRepository
	publisher  ports.EventPublisher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewPipeline creates a getOrder pipeline. publisher and metrics may be nil.
func NewPipeline(
	orders ports.OrderRepository,
	customers ports.CustomerRepository,
	orderItems ports.OrderItemRepository,
	products ports.ProductRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Pipeline {
	return &Pipeline{
		orders:     orders,
		customers:  customers,
		orderItems: orderItems,
		products:   products,
		publisher:  publisher,
		metrics:    metrics,
		logger:     logger,
	}
}

// stage is one unit of the pipeline: exactly one data-source operation and
// one context update.
type stage struct {
	name string
	run  func(ctx context.Context, oc *orderContext) error
}

func (p *Pipeline) stages() []stage {
	return []stage{
		{name: "GetOrder", run: p.getOrder},
		{name: "GetCustomer", run: p.getCustomer},
		{name: "GetOrderItems", run: p.getOrderItems},
		{name: "BatchGetProducts", run: p.batchGetProducts},
	}
}

// Execute runs before -> stages -> after and returns the composite view.
// Callers get either the full view (with customer/product fields possibly
// nil) or an error; never both.
func (p *Pipeline) Execute(ctx context.Context, orderID string) (*model.CompositeOrderView, error) {
	oc, err := p.before(orderID)
	if err != nil {
		return nil, err
	}

	for _, s := range p.stages() {
		start := time.Now()
		err := s.run(ctx, oc)
		p.metrics.RecordDuration(ctx, "PipelineStageDuration", time.Since(start),
			map[string]string{"Stage": s.name})

		if err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, apperrors.NewTimeoutError("getOrder").WithCause(err)
			}
			p.logger.Error("Pipeline stage failed",
				zap.String("stage", s.name),
				zap.String("orderId", oc.orderID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	return p.after(ctx, oc), nil
}

// before seeds the context from the caller's arguments. A missing orderId
// never reaches stage 1.
func (p *Pipeline) before(orderID string) (*orderContext, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, apperrors.NewValidationError("orderId is required")
	}
	return &orderContext{orderID: orderID}, nil
}

// after merges the accumulated context into the composite view and reports
// any referential gaps as a data-quality signal. Gaps never fail the call.
func (p *Pipeline) after(ctx context.Context, oc *orderContext) *model.CompositeOrderView {
	view, missingProductIDs := mergeOrderView(oc)

	if view.Customer == nil || len(missingProductIDs) > 0 {
		p.reportReferentialGap(ctx, oc, missingProductIDs)
	}

	p.logger.Debug("Order view assembled",
		zap.String("orderId", oc.orderID),
		zap.Int("itemCount", len(view.OrderItems)),
		zap.Bool("customerPresent", view.Customer != nil),
	)

	return view
}

func (p *Pipeline) reportReferentialGap(ctx context.Context, oc *orderContext, missingProductIDs []string) {
	gap := events.ReferentialGapDetected{
		OrderID:           oc.order.OrderID,
		MissingProductIDs: missingProductIDs,
	}
	if oc.customer == nil {
		gap.MissingCustomerID = oc.order.CustomerID
	}

	p.metrics.Increment(ctx, "ReferentialGapDetected", nil)
	p.logger.Warn("Referential gap in order view",
		zap.String("orderId", gap.OrderID),
		zap.String("missingCustomerId", gap.MissingCustomerID),
		zap.Strings("missingProductIds", gap.MissingProductIDs),
	)

	if p.publisher != nil {
		if err := p.publisher.Publish(ctx, gap); err != nil {
			p.logger.Warn("Failed to publish referential gap event", zap.Error(err))
		}
	}
}
