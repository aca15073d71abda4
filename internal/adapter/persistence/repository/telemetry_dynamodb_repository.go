package repository

import (
	"context"

	"cloud_checkout/internal/domain/entities"
	"cloud_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const DefaultTelemetryTableName = "telemetry_events"

type telemetryItem struct {
	ID        string `dynamodbav:"id"`
	Category  string `dynamodbav:"category"`
	Event     string `dynamodbav:"event"`
	CreatedAt string `dynamodbav:"created_at"`
}

// TelemetryDynamoRepository appends telemetry events. PK: id (string).
type TelemetryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITelemetryRepository = (*TelemetryDynamoRepository)(nil)

func NewTelemetryDynamoRepository(ddb DynamoAPI, tableName string) *TelemetryDynamoRepository {
	return &TelemetryDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultTelemetryTableName),
	}
}

func (r *TelemetryDynamoRepository) Create(ctx context.Context, e entities.TelemetryEvent) error {
	av, err := attributevalue.MarshalMap(telemetryItem{
		ID:        e.ID,
		Category:  e.Category,
		Event:     e.Event,
		CreatedAt: formatTime(e.CreatedAt),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}
