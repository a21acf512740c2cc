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

// OrderRepository implements ports.OrderRepository on DynamoDB.
// Table: PK orderId; GSI customer-order-gsi on customerId + orderDate
// (all attributes projected).
type OrderRepository struct {
	client             DynamoDBAPI
	tableName          string
	customerOrderIndex string
	logger             *zap.Logger
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(client DynamoDBAPI, tableName, customerOrderIndex string, logger *zap.Logger) ports.OrderRepository {
	return &OrderRepository{
		client:             client,
		tableName:          tableName,
		customerOrderIndex: customerOrderIndex,
		logger:             logger,
	}
}

// orderRecord represents the DynamoDB item structure for an order
type orderRecord struct {
	OrderID     string  `dynamodbav:"orderId"`
	CustomerID  string  `dynamodbav:"customerId"`
	OrderDate   string  `dynamodbav:"orderDate"`
	TotalAmount float64 `dynamodbav:"totalAmount"`
	Status      string  `dynamodbav:"status"`
	CreatedAt   string  `dynamodbav:"createdAt"`
}

func (i orderRecord) toModel() model.Order {
	return model.Order{
		OrderID:     i.OrderID,
		CustomerID:  i.CustomerID,
		OrderDate:   i.OrderDate,
		TotalAmount: i.TotalAmount,
		Status:      i.Status,
		CreatedAt:   i.CreatedAt,
	}
}

// Create persists an order
func (r *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	item := orderRecord{
		OrderID:     order.OrderID,
		CustomerID:  order.CustomerID,
		OrderDate:   order.OrderDate,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal order").WithCause(err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save order",
			zap.String("orderId", order.OrderID),
			zap.Error(err),
		)
		return apperrors.NewDatabaseError("PutItem Orders", err)
	}

	r.logger.Debug("Order saved",
		zap.String("orderId", order.OrderID),
		zap.String("customerId", order.CustomerID),
	)
	return nil
}

// GetByID retrieves an order; returns (nil, nil) when the key has no record
func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"orderId": &types.AttributeValueMemberS{Value: orderID},
		},
	}

	out, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, apperrors.NewDatabaseError("GetItem Orders", err)
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var item orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal order").WithCause(err)
	}

	order := item.toModel()
	return &order, nil
}

// ListByCustomer queries the customer-order index newest-first
// (orderDate is the index sort key, scanned backwards).
func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID string, limit int32, nextToken string) ([]model.Order, string, error) {
	startKey, err := decodePageToken(nextToken)
	if err != nil {
		return nil, "", apperrors.NewValidationError("invalid page token").WithCause(err)
	}

	keyCond := expression.Key("customerId").Equal(expression.Value(customerID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, "", apperrors.NewInternalError("failed to build customer order query").WithCause(err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.customerOrderIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(limit),
		ExclusiveStartKey:         startKey,
		ScanIndexForward:          aws.Bool(false),
	}

	out, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, "", apperrors.NewDatabaseError("Query Orders customer-order-gsi", err)
	}

	orders := r.unmarshalOrders(out.Items)
	token, err := encodePageToken(out.LastEvaluatedKey)
	if err != nil {
		return nil, "", apperrors.NewInternalError("failed to encode page token").WithCause(err)
	}

	return orders, token, nil
}

// List scans the table one page at a time
func (r *OrderRepository) List(ctx context.Context, limit int32, nextToken string) ([]model.Order, string, error) {
	startKey, err := decodePageToken(nextToken)
	if err != nil {
		return nil, "", apperrors.NewValidationError("invalid page token").WithCause(err)
	}

	input := &dynamodb.ScanInput{
		TableName:         aws.String(r.tableName),
		Limit:             aws.Int32(limit),
		ExclusiveStartKey: startKey,
	}

	out, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, "", apperrors.NewDatabaseError("Scan Orders", err)
	}

	orders := r.unmarshalOrders(out.Items)
	token, err := encodePageToken(out.LastEvaluatedKey)
	if err != nil {
		return nil, "", apperrors.NewInternalError("failed to encode page token").WithCause(err)
	}

	return orders, token, nil
}

// ScanAll reads every order, following pagination to the end
func (r *OrderRepository) ScanAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		}

		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, apperrors.NewDatabaseError("Scan Orders", err)
		}

		orders = append(orders, r.unmarshalOrders(out.Items)...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return orders, nil
}

func (r *OrderRepository) unmarshalOrders(raws []map[string]types.AttributeValue) []model.Order {
	orders := make([]model.Order, 0, len(raws))
	for _, raw := range raws {
		var item orderRecord
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal order item", zap.Error(err))
			continue
		}
		orders = append(orders, item.toModel())
	}
	return orders
}
