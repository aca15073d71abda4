package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table set keyed by the "id" attribute. It
// understands just the expressions the repositories build.
type fakeDynamo struct {
	tables map[string]map[string]map[string]types.AttributeValue
	err    error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) table(name *string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[aws.ToString(name)]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[aws.ToString(name)] = t
	}
	return t
}

func keyOf(item map[string]types.AttributeValue) string {
	if s, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	t := f.table(in.TableName)
	id := keyOf(in.Item)
	if _, exists := t[id]; exists && strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	t[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.table(in.TableName)[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	attr, placeholder, ok := strings.Cut(aws.ToString(in.KeyConditionExpression), " = ")
	if !ok {
		return nil, errors.New("unsupported key condition")
	}
	want := in.ExpressionAttributeValues[placeholder].(*types.AttributeValueMemberS).Value

	var out []map[string]types.AttributeValue
	for _, item := range f.table(in.TableName) {
		if s, ok := item[attr].(*types.AttributeValueMemberS); ok && s.Value == want {
			out = append(out, item)
		}
	}
	if in.Limit != nil && len(out) > int(*in.Limit) {
		out = out[:*in.Limit]
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	t := f.table(in.TableName)
	item, ok := t[keyOf(in.Key)]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	expr := strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET ")
	for _, assign := range strings.Split(expr, ",") {
		name, value, _ := strings.Cut(strings.TrimSpace(assign), " = ")
		item[in.ExpressionAttributeNames[name]] = in.ExpressionAttributeValues[value]
	}
	return &dynamodb.UpdateItemOutput{Attributes: item}, nil
}
