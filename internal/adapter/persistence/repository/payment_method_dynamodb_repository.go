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
	DefaultPaymentMethodsTableName = "payment_methods"
	paymentMethodsEmailIndex       = "customer_email-index"
)

type paymentMethodItem struct {
	ID                 string                 `dynamodbav:"id"`
	CustomerEmail      string                 `dynamodbav:"customer_email"`
	Brand              string                 `dynamodbav:"brand"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentMethodDynamoRepository persists registered cards in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_email-index (PK: customer_email)
type PaymentMethodDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentMethodRepository = (*PaymentMethodDynamoRepository)(nil)

func NewPaymentMethodDynamoRepository(ddb DynamoAPI, tableName string) *PaymentMethodDynamoRepository {
	return &PaymentMethodDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultPaymentMethodsTableName),
	}
}

func (r *PaymentMethodDynamoRepository) Create(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error) {
	av, err := attributevalue.MarshalMap(toPaymentMethodItem(p))
	if err != nil {
		return entities.PaymentMethod{}, err
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
		return entities.PaymentMethod{}, err
	}
	return p, nil
}

func (r *PaymentMethodDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentMethod, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentMethod{}, nil
	}

	var it paymentMethodItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentMethod{}, err
	}
	return fromPaymentMethodItem(it), nil
}

func (r *PaymentMethodDynamoRepository) ListByCustomerEmail(ctx context.Context, email string) ([]entities.PaymentMethod, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentMethodsEmailIndex),
		KeyConditionExpression: aws.String("customer_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentMethod, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentMethodItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentMethodItem(it))
	}
	return items, nil
}

func toPaymentMethodItem(p entities.PaymentMethod) paymentMethodItem {
	return paymentMethodItem{
		ID:                 p.ID,
		CustomerEmail:      p.CustomerEmail,
		Brand:              p.Brand,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentMethodItem(it paymentMethodItem) entities.PaymentMethod {
	return entities.PaymentMethod{
		ID:                 it.ID,
		CustomerEmail:      it.CustomerEmail,
		Brand:              it.Brand,
		Date:               parseTime(it.Date),
		Status:             entities.PaymentMethodStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
