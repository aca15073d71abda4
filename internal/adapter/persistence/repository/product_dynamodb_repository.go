package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"cloud_checkout/internal/domain/entities"
	"cloud_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultProductsTableName = "products"
	productsSKUIndex         = "sku-index"
)

type productItem struct {
	ID        string `dynamodbav:"id"`
	SKU       string `dynamodbav:"sku"`
	Name      string `dynamodbav:"name"`
	Price     string `dynamodbav:"price"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists the product catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: sku-index (PK: sku)
type ProductDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI, tableName string) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) GetBySKU(ctx context.Context, sku string) (entities.Product, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(productsSKUIndex),
		KeyConditionExpression: aws.String("sku = :sku"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sku": &types.AttributeValueMemberS{Value: sku},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Items) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) UpdatePriceByID(ctx context.Context, id string, newPrice float64) (entities.Product, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #price = :price, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":price":      &types.AttributeValueMemberS{Value: floatToString(newPrice)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#price":      "price",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Price:     floatToString(p.Price),
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

func fromProductItem(it productItem) entities.Product {
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Product{
		ID:        it.ID,
		SKU:       it.SKU,
		Name:      it.Name,
		Price:     price,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
