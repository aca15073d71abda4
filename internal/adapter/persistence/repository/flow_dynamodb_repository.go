package repository

import (
	"context"

	"cloud_checkout/internal/domain/entities"
	"cloud_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultFlowsTableName = "payment_flows"

type flowItem struct {
	ID        string `dynamodbav:"id"`
	State     string `dynamodbav:"state"`
	Progress  int    `dynamodbav:"progress"`
	Attempt   int    `dynamodbav:"attempt"`
	Failure   string `dynamodbav:"failure,omitempty"`
	ProductID string `dynamodbav:"product_id,omitempty"`
	StartedAt string `dynamodbav:"started_at"`
	UpdatedAt string `dynamodbav:"updated_at"`

	CurrentProductID   string `dynamodbav:"current_product_id,omitempty"`
	IsProratedPayment  bool   `dynamodbav:"is_prorated_payment"`
	IsUpgradeFromTrial bool   `dynamodbav:"is_upgrade_from_trial"`
}

// FlowDynamoRepository keeps the latest snapshot of each checkout flow.
//
// Table requirements:
//   - PK: id (string)
//
// Save overwrites the previous snapshot of the same flow.
type FlowDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IFlowRepository = (*FlowDynamoRepository)(nil)

func NewFlowDynamoRepository(ddb DynamoAPI, tableName string) *FlowDynamoRepository {
	return &FlowDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultFlowsTableName),
	}
}

func (r *FlowDynamoRepository) Save(ctx context.Context, s entities.FlowSnapshot) error {
	av, err := attributevalue.MarshalMap(toFlowItem(s))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *FlowDynamoRepository) GetByID(ctx context.Context, id string) (entities.FlowSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FlowSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.FlowSnapshot{}, nil
	}

	var it flowItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FlowSnapshot{}, err
	}
	return fromFlowItem(it), nil
}

func toFlowItem(s entities.FlowSnapshot) flowItem {
	return flowItem{
		ID:        s.ID,
		State:     string(s.State),
		Progress:  s.Progress,
		Attempt:   s.Attempt,
		Failure:   s.Failure,
		ProductID: s.ProductID,
		StartedAt: formatTime(s.StartedAt),
		UpdatedAt: formatTime(s.UpdatedAt),

		CurrentProductID:   s.CurrentProductID,
		IsProratedPayment:  s.IsProratedPayment,
		IsUpgradeFromTrial: s.IsUpgradeFromTrial,
	}
}

func fromFlowItem(it flowItem) entities.FlowSnapshot {
	return entities.FlowSnapshot{
		ID:        it.ID,
		State:     entities.FlowState(it.State),
		Progress:  it.Progress,
		Attempt:   it.Attempt,
		Failure:   it.Failure,
		ProductID: it.ProductID,
		StartedAt: parseTime(it.StartedAt),
		UpdatedAt: parseTime(it.UpdatedAt),

		CurrentProductID:   it.CurrentProductID,
		IsProratedPayment:  it.IsProratedPayment,
		IsUpgradeFromTrial: it.IsUpgradeFromTrial,
	}
}
