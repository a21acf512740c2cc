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

// ProductRepository implements ports.ProductRepository on DynamoDB.
// Table: PK productId; GSI category-gsi on category (all attributes projected).
type ProductRepository struct {
	client        DynamoDBAPI
	tableName     string
	categoryIndex string
	logger        *zap.Logger
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(client DynamoDBAPI, tableName, categoryIndex string, logger *zap.Logger) ports.ProductRepository {
	return &ProductRepository{
		client:        client,
		tableName:     tableName,
		categoryIndex: categoryIndex,
		logger:        logger,
	}
}

// productItem represents the DynamoDB item structure for a product
type productItem struct {
	ProductID   string  `dynamodbav:"productId"`
	Name        string  `dynamodbav:"name"`
	Category    string  `dynamodbav:"category"`
	Price       float64 `dynamodbav:"price"`
	Description string  `dynamodbav:"description,omitempty"`
	CreatedAt   string  `dynamodbav:"createdAt"`
}

func (i productItem) toModel() model.Product {
	return model.Product{
		ProductID:   i.ProductID,
		Name:        i.Name,
		Category:    i.Category,
		Price:       i.Price,
		Description: i.Description,
		CreatedAt:   i.CreatedAt,
	}
}

// Create persists a product
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	item := productItem{
		ProductID:   product.ProductID,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		Description: product.Description,
		CreatedAt:   product.CreatedAt,
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal product").WithCause(err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save product",
			zap.String("productId", product.ProductID),
			zap.Error(err),
		)
		return apperrors.NewDatabaseError("PutItem Products", err)
	}

	r.logger.Debug("Product saved", zap.String("productId", product.ProductID))
	return nil
}

// GetByID retrieves a product; returns (nil, nil) when the key has no record
func (r *ProductRepository) GetByID(ctx context.Context, productID string) (*model.Product, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"productId": &types.AttributeValueMemberS{Value: productID},
		},
	}

	out, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, apperrors.NewDatabaseError("GetItem Products", err)
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var item productItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal product").WithCause(err)
	}

	product := item.toModel()
	return &product, nil
}

// ListByCategory queries the category index. The category is normalized to
// lowercase before the query so callers may pass any casing.
func (r *ProductRepository) ListByCategory(ctx context.Context, category string, limit int32, nextToken string) ([]model.Product, string, error) {
	startKey, err := decodePageToken(nextToken)
	if err != nil {
		return nil, "", apperrors.NewValidationError("invalid page token").WithCause(err)
	}

	keyCond := expression.Key("category").Equal(expression.Value(model.NormalizeCategory(category)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, "", apperrors.NewInternalError("failed to build category query").WithCause(err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.categoryIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(limit),
		ExclusiveStartKey:         startKey,
	}

	out, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, "", apperrors.NewDatabaseError("Query Products category-gsi", err)
	}

	products := make([]model.Product, 0, len(out.Items))
	for _, raw := range out.Items {
		var item productItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal product item", zap.Error(err))
			continue
		}
		products = append(products, item.toModel())
	}

	token, err := encodePageToken(out.LastEvaluatedKey)
	if err != nil {
		return nil, "", apperrors.NewInternalError("failed to encode page token").WithCause(err)
	}

	return products, token, nil
}

// BatchGetByIDs fetches products in one BatchGetItem call. Missing keys are
// silently omitted from the result and unprocessed keys are not retried.
func (r *ProductRepository) BatchGetByIDs(ctx context.Context, productIDs []string) ([]model.Product, error) {
	if len(productIDs) == 0 {
		return []model.Product{}, nil
	}

	keys := make([]map[string]types.AttributeValue, 0, len(productIDs))
	for _, id := range productIDs {
		keys = append(keys, map[string]types.AttributeValue{
			"productId": &types.AttributeValueMemberS{Value: id},
		})
	}

	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys},
		},
	}

	out, err := r.client.BatchGetItem(ctx, input)
	if err != nil {
		return nil, apperrors.NewDatabaseError("BatchGetItem Products", err)
	}

	if unprocessed, ok := out.UnprocessedKeys[r.tableName]; ok && len(unprocessed.Keys) > 0 {
		r.logger.Warn("BatchGetItem left keys unprocessed",
			zap.Int("unprocessedCount", len(unprocessed.Keys)),
		)
	}

	raws := out.Responses[r.tableName]
	products := make([]model.Product, 0, len(raws))
	for _, raw := range raws {
		var item productItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal product item", zap.Error(err))
			continue
		}
		products = append(products, item.toModel())
	}

	return products, nil
}
