package dynamodb

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// encodePageToken turns a LastEvaluatedKey into an opaque cursor token.
// Returns "" when there are no further pages.
func encodePageToken(key map[string]types.AttributeValue) (string, error) {
	if len(key) == 0 {
		return "", nil
	}

	var plain map[string]interface{}
	if err := attributevalue.UnmarshalMap(key, &plain); err != nil {
		return "", fmt.Errorf("failed to decode page key: %w", err)
	}

	raw, err := json.Marshal(plain)
	if err != nil {
		return "", fmt.Errorf("failed to marshal page key: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// decodePageToken turns a cursor token back into an ExclusiveStartKey.
// An empty token means the first page.
func decodePageToken(token string) (map[string]types.AttributeValue, error) {
	if token == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid page token: %w", err)
	}

	var plain map[string]interface{}
	if err := json.Unmarshal(raw, &plain); err != nil {
		return nil, fmt.Errorf("invalid page token: %w", err)
	}

	key, err := attributevalue.MarshalMap(plain)
	if err != nil {
		return nil, fmt.Errorf("invalid page token: %w", err)
	}

	return key, nil
}
