package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func productAttrs(id, name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"productId": &types.AttributeValueMemberS{Value: id},
		"name":      &types.AttributeValueMemberS{Value: name},
		"category":  &types.AttributeValueMemberS{Value: "widgets"},
		"price":     &types.AttributeValueMemberN{Value: "19.99"},
		"createdAt": &types.AttributeValueMemberS{Value: "2026-01-01T00:00:00Z"},
	}
}

func TestBatchGetByIDsSilentlyOmitsMissing(t *testing.T) {
	fake := &fakeDynamoDB{
		batchGetOut: &dynamodb.BatchGetItemOutput{
			Responses: map[string][]map[string]types.AttributeValue{
				"Products": {productAttrs("prod-a", "Widget A")},
			},
		},
	}
	repo := NewProductRepository(fake, "Products", "category-gsi", zap.NewNop())

	products, err := repo.BatchGetByIDs(context.Background(), []string{"prod-a", "prod-gone"})

	require.NoError(t, err, "a partially resolvable batch is not an error")
	require.Len(t, products, 1)
	assert.Equal(t, "prod-a", products[0].ProductID)

	require.Len(t, fake.batchGetCalls, 1)
	assert.Len(t, fake.batchGetCalls[0].RequestItems["Products"].Keys, 2)
}

func TestBatchGetByIDsEmptyInputSkipsCall(t *testing.T) {
	fake := &fakeDynamoDB{}
	repo := NewProductRepository(fake, "Products", "category-gsi", zap.NewNop())

	products, err := repo.BatchGetByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Empty(t, fake.batchGetCalls, "no keys means no store call")
}

func TestListByCategoryNormalizesCasing(t *testing.T) {
	fake := &fakeDynamoDB{
		queryOut: &dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{productAttrs("prod-a", "Widget A")},
		},
	}
	repo := NewProductRepository(fake, "Products", "category-gsi", zap.NewNop())

	products, token, err := repo.ListByCategory(context.Background(), "WiDgEtS", 20, "")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Empty(t, token)

	require.Len(t, fake.queryCalls, 1)
	var queried []string
	for _, v := range fake.queryCalls[0].ExpressionAttributeValues {
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			queried = append(queried, s.Value)
		}
	}
	assert.Contains(t, queried, "widgets", "category is lowercased before the query")
}

func TestListByCategoryRejectsBadToken(t *testing.T) {
	fake := &fakeDynamoDB{}
	repo := NewProductRepository(fake, "Products", "category-gsi", zap.NewNop())

	_, _, err := repo.ListByCategory(context.Background(), "widgets", 20, "%%%")

	require.Error(t, err)
	assert.Empty(t, fake.queryCalls)
}
