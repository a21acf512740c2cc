package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"commerce-backend/application/ports"
	"commerce-backend/domain/model"
	apperrors "commerce-backend/pkg/errors"
)

// OrderItemRepository implements ports.OrderItemRepository on DynamoDB.
// Table: PK orderItemId; GSI order-items-gsi on orderId and
// product-sales-gsi on productId (all attributes projected).
type OrderItemRepository struct {
	client          DynamoDBAPI
	tableName       string
	orderItemsIndex string
	logger          *zap.Logger
}

// NewOrderItemRepository creates a new OrderItemRepository
func NewOrderItemRepository(client DynamoDBAPI, tableName, orderItemsIndex string, logger *zap.Logger) ports.OrderItemRepository {
	return &OrderItemRepository{
		client:          client,
		tableName:       tableName,
		orderItemsIndex: orderItemsIndex,
		logger:          logger,
	}
}

// orderItemRecord represents the DynamoDB item structure for an order item
type orderItemRecord struct {
	OrderItemID string  `dynamodbav:"orderItemId"`
	OrderID     string  `dynamodbav:"orderId"`
	ProductID   string  `dynamodbav:"productId"`
	Quantity    int     `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unitPrice"`
}

func (i orderItemRecord) toModel() model.OrderItem {
	return model.OrderItem{
		OrderItemID: i.OrderItemID,
		OrderID:     i.OrderID,
		ProductID:   i.ProductID,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
	}
}

// Create persists an order item
func (r *OrderItemRepository) Create(ctx context.Context, orderItem *model.OrderItem) error {
	item := orderItemRecord{
		OrderItemID: orderItem.OrderItemID,
		OrderID:     orderItem.OrderID,
		ProductID:   orderItem.ProductID,
		Quantity:    orderItem.Quantity,
		UnitPrice:   orderItem.UnitPrice,
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal order item").WithCause(err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save order item",
			zap.String("orderItemId", orderItem.OrderItemID),
			zap.String("orderId", orderItem.OrderID),
			zap.Error(err),
		)
		return apperrors.NewDatabaseError("PutItem OrderItems", err)
	}

	return nil
}

// ListByOrder queries the order-items index for every item of one order.
// No limit is applied; order sizes are assumed small enough for one page,
// and the rest is followed via the evaluated key if the store pages anyway.
func (r *OrderItemRepository) ListByOrder(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	keyCond := expression.Key("orderId").Equal(expression.Value(orderID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build order items query").WithCause(err)
	}

	var items []model.OrderItem
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(r.orderItemsIndex),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		}

		out, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, apperrors.NewDatabaseError("Query OrderItems order-items-gsi", err)
		}

		items = append(items, r.unmarshalItems(out.Items)...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	if items == nil {
		items = []model.OrderItem{}
	}
	return items, nil
}

// ScanAll reads every order item, following pagination to the end
func (r *OrderItemRepository) ScanAll(ctx context.Context) ([]model.OrderItem, error) {
	var items []model.OrderItem
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		}

		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, apperrors.NewDatabaseError("Scan OrderItems", err)
		}

		items = append(items, r.unmarshalItems(out.Items)...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return items, nil
}

func (r *OrderItemRepository) unmarshalItems(raws []map[string]types.AttributeValue) []model.OrderItem {
	items := make([]model.OrderItem, 0, len(raws))
	for _, raw := range raws {
		var item orderItemRecord
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal order item record", zap.Error(err))
			continue
		}
		items = append(items, item.toModel())
	}
	return items
}
