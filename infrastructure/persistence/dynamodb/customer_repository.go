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

// CustomerRepository implements ports.CustomerRepository on DynamoDB.
// Table: PK customerId; GSI email-gsi on email (all attributes projected).
type CustomerRepository struct {
	client     DynamoDBAPI
	tableName  string
	emailIndex string
	logger     *zap.Logger
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(client DynamoDBAPI, tableName, emailIndex string, logger *zap.Logger) ports.CustomerRepository {
	return &CustomerRepository{
		client:     client,
		tableName:  tableName,
		emailIndex: emailIndex,
		logger:     logger,
	}
}

// customerItem represents the DynamoDB item structure for a customer
type customerItem struct {
	CustomerID string `dynamodbav:"customerId"`
	Name       string `dynamodbav:"name"`
	Email      string `dynamodbav:"email"`
	CreatedAt  string `dynamodbav:"createdAt"`
}

func (i customerItem) toModel() model.Customer {
	return model.Customer{
		CustomerID: i.CustomerID,
		Name:       i.Name,
		Email:      i.Email,
		CreatedAt:  i.CreatedAt,
	}
}

// Create persists a customer
func (r *CustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	item := customerItem{
		CustomerID: customer.CustomerID,
		Name:       customer.Name,
		Email:      customer.Email,
		CreatedAt:  customer.CreatedAt,
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal customer").WithCause(err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save customer",
			zap.String("customerId", customer.CustomerID),
			zap.Error(err),
		)
		return apperrors.NewDatabaseError("PutItem Customers", err)
	}

	r.logger.Debug("Customer saved", zap.String("customerId", customer.CustomerID))
	return nil
}

// GetByID retrieves a customer; returns (nil, nil) when the key has no record
func (r *CustomerRepository) GetByID(ctx context.Context, customerID string) (*model.Customer, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customerId": &types.AttributeValueMemberS{Value: customerID},
		},
	}

	out, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, apperrors.NewDatabaseError("GetItem Customers", err)
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var item customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal customer").WithCause(err)
	}

	customer := item.toModel()
	return &customer, nil
}

// FindByEmail queries the email index and returns the first match, or
// (nil, nil) when no customer has the address
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	keyCond := expression.Key("email").Equal(expression.Value(email))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build email query").WithCause(err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.emailIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(1),
	}

	out, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, apperrors.NewDatabaseError("Query Customers email-gsi", err)
	}

	if len(out.Items) == 0 {
		return nil, nil
	}

	var item customerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &item); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal customer").WithCause(err)
	}

	customer := item.toModel()
	return &customer, nil
}

// CountAll scans the full table and returns the customer count
func (r *CustomerRepository) CountAll(ctx context.Context) (int, error) {
	total := 0
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		}

		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return 0, apperrors.NewDatabaseError("Scan Customers", err)
		}

		total += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return total, nil
}
