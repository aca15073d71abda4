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

const (
	DefaultSubscriptionsTableName = "subscriptions"
	subscriptionsProductIDIndex   = "product_id-index"
)

type subscriptionItem struct {
	ID              string `dynamodbav:"id"`
	ProductID       string `dynamodbav:"product_id"`
	Status          string `dynamodbav:"status"`
	StartedAt       string `dynamodbav:"started_at"`
	NextBillingDate string `dynamodbav:"next_billing_date"`
}

// SubscriptionDynamoRepository persists plan subscriptions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: product_id-index (PK: product_id)
type SubscriptionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb DynamoAPI, tableName string) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	av, err := attributevalue.MarshalMap(toSubscriptionItem(s))
	if err != nil {
		return entities.Subscription{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	return s, nil
}

func (r *SubscriptionDynamoRepository) ListByProductID(ctx context.Context, productID string) ([]entities.Subscription, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(subscriptionsProductIDIndex),
		KeyConditionExpression: aws.String("product_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Subscription, 0, len(out.Items))
	for _, raw := range out.Items {
		var it subscriptionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSubscriptionItem(it))
	}
	return items, nil
}

func toSubscriptionItem(s entities.Subscription) subscriptionItem {
	return subscriptionItem{
		ID:              s.ID,
		ProductID:       s.ProductID,
		Status:          string(s.Status),
		StartedAt:       formatTime(s.StartedAt),
		NextBillingDate: formatTime(s.NextBillingDate),
	}
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	return entities.Subscription{
		ID:              it.ID,
		ProductID:       it.ProductID,
		Status:          entities.SubscriptionStatus(it.Status),
		StartedAt:       parseTime(it.StartedAt),
		NextBillingDate: parseTime(it.NextBillingDate),
	}
}
