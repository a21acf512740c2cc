package pipeline

import (
	"context"

	"go.uber.org/zap"

	"commerce-backend/domain/model"
	apperrors "commerce-backend/pkg/errors"
)

// getOrder (stage 1) fetches the addressed order. The order is the primary
// resource: its absence is a hard NotFound stop, unlike the enrichment
// stages below.
func (p *Pipeline) getOrder(ctx context.Context, oc *orderContext) error {
	order, err := p.orders.GetByID(ctx, oc.orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperrors.NewNotFoundError("order")
	}

	oc.order = order
	return nil
}

// getCustomer (stage 2) fetches the order's customer. A missing customer is
// a referential gap, not a failure: the view carries customer=nil and the
// order is still served.
func (p *Pipeline) getCustomer(ctx context.Context, oc *orderContext) error {
	customer, err := p.customers.GetByID(ctx, oc.order.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		p.logger.Warn("Order references missing customer",
			zap.String("orderId", oc.order.OrderID),
			zap.String("customerId", oc.order.CustomerID),
		)
	}

	oc.customer = customer
	return nil
}

// getOrderItems (stage 3) fetches all items of the order via the order-items
// index. An empty result is a valid order with no items.
func (p *Pipeline) getOrderItems(ctx context.Context, oc *orderContext) error {
	items, err := p.orderItems.ListByOrder(ctx, oc.order.OrderID)
	if err != nil {
		return err
	}

	oc.items = items
	return nil
}

// batchGetProducts (stage 4) fetches the distinct products referenced by the
// items in one batch call. With no items there is nothing to fetch and no
// call is made. The store silently drops keys with no record; the merge step
// renders those as product=nil.
func (p *Pipeline) batchGetProducts(ctx context.Context, oc *orderContext) error {
	seen := make(map[string]bool, len(oc.items))
	productIDs := make([]string, 0, len(oc.items))
	for _, item := range oc.items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
	}

	if len(productIDs) == 0 {
		oc.products = []model.Product{}
		return nil
	}

	products, err := p.products.BatchGetByIDs(ctx, productIDs)
	if err != nil {
		return err
	}

	oc.products = products
	return nil
}
