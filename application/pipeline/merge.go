package pipeline

import "commerce-backend/domain/model"

// mergeOrderView composes the final view: order fields, the customer (or
// nil), and the items each enriched with their product (or nil when the
// product no longer exists). Item order follows the GetOrderItems result,
// which is store-defined. The returned missingProductIDs lists referenced
// products that were not found, for data-quality reporting.
func mergeOrderView(oc *orderContext) (*model.CompositeOrderView, []string) {
	productsByID := make(map[string]model.Product, len(oc.products))
	for _, product := range oc.products {
		productsByID[product.ProductID] = product
	}

	enriched := make([]model.CompositeOrderItem, 0, len(oc.items))
	var missingProductIDs []string
	reported := make(map[string]bool)

	for _, item := range oc.items {
		composite := model.CompositeOrderItem{OrderItem: item}
		if product, ok := productsByID[item.ProductID]; ok {
			p := product
			composite.Product = &p
		} else if !reported[item.ProductID] {
			reported[item.ProductID] = true
			missingProductIDs = append(missingProductIDs, item.ProductID)
		}
		enriched = append(enriched, composite)
	}

	return &model.CompositeOrderView{
		Order:      *oc.order,
		Customer:   oc.customer,
		OrderItems: enriched,
	}, missingProductIDs
}
