/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/suparena/tablebind/gologger"
	"github.com/suparena/tablebind/storagemodels"
	"github.com/suparena/tablebind/tableservice"
)

// Physical attribute names for the two-part primary key.
const (
	partitionKeyAttr = "PK"
	rowKeyAttr       = "RK"
)

// Service implements tableservice.TableService on top of AWS DynamoDB.
// Each bound table is expected to use a string partition key named "PK"
// and a string sort key named "RK".
type Service struct {
	client *sdk.Client
	logger zerolog.Logger
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewService constructs a Service over an existing DynamoDB client.
func NewService(client *sdk.Client) *Service {
	return &Service{
		client: client,
		logger: gologger.NewLogger(),
	}
}

// AppendEntity stores the entity with PutItem, replacing any entity that
// shares its key.
func (s *Service) AppendEntity(ctx context.Context, tableName string, entity *storagemodels.Entity) error {
	item, err := entityToItem(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}

	s.logger.Debug().
		Str("table", tableName).
		Str("partitionKey", entity.PartitionKey).
		Str("rowKey", entity.RowKey).
		Msg("entity appended")
	return nil
}

// GetEntity performs a point read. It returns (nil, nil) when no entity
// has the given key.
func (s *Service) GetEntity(ctx context.Context, tableName, partitionKey, rowKey string) (*storagemodels.Entity, error) {
	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &tableName,
		Key: map[string]types.AttributeValue{
			partitionKeyAttr: &types.AttributeValueMemberS{Value: partitionKey},
			rowKeyAttr:       &types.AttributeValueMemberS{Value: rowKey},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}
	return itemToEntity(out.Item)
}

// BindTableHandle returns a scan handle over the named table.
func (s *Service) BindTableHandle(_ context.Context, tableName string) (tableservice.TableHandle, error) {
	if tableName == "" {
		return nil, fmt.Errorf("table name must not be empty")
	}
	return &tableHandle{service: s, tableName: tableName}, nil
}

type tableHandle struct {
	service   *Service
	tableName string
}

// Scan compiles the filter into a native expression and pages through
// Scan results until the limit is reached. DynamoDB applies Limit before
// the filter, so paging continues until enough matches accumulate.
func (h *tableHandle) Scan(ctx context.Context, params *storagemodels.ScanParams) ([]*storagemodels.Entity, error) {
	rendered, names, values, err := buildFilterExpression(params.FilterExpression, partitionKeyAttr, rowKeyAttr)
	if err != nil {
		return nil, fmt.Errorf("scan filter: %w", err)
	}

	input := &sdk.ScanInput{
		TableName: &h.tableName,
	}
	if rendered != "" {
		input.FilterExpression = &rendered
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}
	if params.Limit > 0 {
		input.Limit = aws.Int32(params.Limit)
	}

	var entities []*storagemodels.Entity
	var startKey map[string]types.AttributeValue
	for {
		input.ExclusiveStartKey = startKey
		out, err := h.service.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}

		for _, item := range out.Items {
			e, err := itemToEntity(item)
			if err != nil {
				return nil, err
			}
			entities = append(entities, e)
			if params.Limit > 0 && int32(len(entities)) >= params.Limit {
				return entities, nil
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	h.service.logger.Debug().
		Str("table", h.tableName).
		Str("filter", params.FilterExpression).
		Int("count", len(entities)).
		Msg("scan completed")
	return entities, nil
}
