package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeDynamoDB records calls and replays canned responses. It satisfies
// DynamoDBAPI the same way *dynamodb.Client does.
type fakeDynamoDB struct {
	getItemCalls  []*dynamodb.GetItemInput
	queryCalls    []*dynamodb.QueryInput
	batchGetCalls []*dynamodb.BatchGetItemInput
	scanCalls     []*dynamodb.ScanInput
	putItemCalls  []*dynamodb.PutItemInput

	getItemOut  *dynamodb.GetItemOutput
	queryOut    *dynamodb.QueryOutput
	queryOuts   []*dynamodb.QueryOutput
	batchGetOut *dynamodb.BatchGetItemOutput
	scanOuts    []*dynamodb.ScanOutput
	err         error
}

func (f *fakeDynamoDB) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getItemCalls = append(f.getItemCalls, params)
	if f.err != nil {
		return nil, f.err
	}
	if f.getItemOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getItemOut, nil
}

func (f *fakeDynamoDB) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryCalls = append(f.queryCalls, params)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.queryOuts) > 0 {
		out := f.queryOuts[0]
		f.queryOuts = f.queryOuts[1:]
		return out, nil
	}
	if f.queryOut == nil {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.queryOut, nil
}

func (f *fakeDynamoDB) BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	f.batchGetCalls = append(f.batchGetCalls, params)
	if f.err != nil {
		return nil, f.err
	}
	if f.batchGetOut == nil {
		return &dynamodb.BatchGetItemOutput{}, nil
	}
	return f.batchGetOut, nil
}

func (f *fakeDynamoDB) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanCalls = append(f.scanCalls, params)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.scanOuts) == 0 {
		return &dynamodb.ScanOutput{}, nil
	}
	out := f.scanOuts[0]
	f.scanOuts = f.scanOuts[1:]
	return out, nil
}

func (f *fakeDynamoDB) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putItemCalls = append(f.putItemCalls, params)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}
