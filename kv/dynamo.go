package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoItem is the single-table record shape: the key as partition key and
// the JSON document as a string attribute.
type dynamoItem struct {
	Key   string `dynamodbav:"kvKey"`
	Value string `dynamodbav:"kvValue"`
}

// DynamoStore implements Store on a single DynamoDB table.
type DynamoStore struct {
	Client *dynamodb.Client
	Table  string
}

// InitializeDynamoDBClient initializes the DynamoDB client from the ambient
// AWS configuration.
func InitializeDynamoDBClient(ctx context.Context, region string) *dynamodb.Client {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// NewDynamoStore creates a Store backed by the given table.
func NewDynamoStore(client *dynamodb.Client, table string) *DynamoStore {
	return &DynamoStore{Client: client, Table: table}
}

func (ds *DynamoStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &ds.Table,
		Key: map[string]types.AttributeValue{
			"kvKey": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from table '%s': %w", ds.Table, err)
	}
	if output.Item == nil {
		return nil, ErrNotFound
	}

	var item dynamoItem
	if err := attributevalue.UnmarshalMap(output.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return json.RawMessage(item.Value), nil
}

func (ds *DynamoStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	marshaledItem, err := attributevalue.MarshalMap(dynamoItem{Key: key, Value: string(raw)})
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &ds.Table,
		Item:      marshaledItem,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", ds.Table, err)
	}
	return nil
}

// GetByPrefix scans the table for keys starting with prefix, following
// pagination until the scan is exhausted.
func (ds *DynamoStore) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	filter := "begins_with(kvKey, :prefix)"
	values := map[string]types.AttributeValue{
		":prefix": &types.AttributeValueMemberS{Value: prefix},
	}

	var results []json.RawMessage
	var startKey map[string]types.AttributeValue
	for {
		output, err := ds.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 &ds.Table,
			FilterExpression:          &filter,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan table '%s': %w", ds.Table, err)
		}

		for _, raw := range output.Items {
			var item dynamoItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				return nil, fmt.Errorf("failed to unmarshal item: %w", err)
			}
			results = append(results, json.RawMessage(item.Value))
		}

		if output.LastEvaluatedKey == nil {
			break
		}
		startKey = output.LastEvaluatedKey
	}
	return results, nil
}
