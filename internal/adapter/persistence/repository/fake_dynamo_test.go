package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI keyed by the "id" attribute. Scan and
// Query return pages of pageSize items so paginators are exercised.
type fakeDynamo struct {
	mu       sync.Mutex
	tables   map[string]map[string]map[string]types.AttributeValue
	pageSize int
	calls    map[string]int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		tables:   map[string]map[string]map[string]types.AttributeValue{},
		pageSize: 2,
		calls:    map[string]int{},
	}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
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
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["PutItem"]++
	t := f.table(aws.ToString(in.TableName))
	id := keyOf(in.Item)
	if _, exists := t[id]; exists && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	t[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["GetItem"]++
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(in.TableName))[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["UpdateItem"]++
	t := f.table(aws.ToString(in.TableName))
	current, ok := t[keyOf(in.Key)]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	next := make(map[string]types.AttributeValue, len(current))
	for k, v := range current {
		next[k] = v
	}
	for placeholder, attr := range in.ExpressionAttributeNames {
		if attr == "id" {
			continue
		}
		if v, ok := in.ExpressionAttributeValues[":"+placeholder[1:]]; ok {
			next[attr] = v
		}
	}
	t[keyOf(in.Key)] = next
	return &dynamodb.UpdateItemOutput{Attributes: next}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Scan"]++
	items, last := f.page(aws.ToString(in.TableName), in.ExclusiveStartKey, nil)
	return &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Query"]++
	attr := in.ExpressionAttributeNames["#k"]
	want := in.ExpressionAttributeValues[":v"].(*types.AttributeValueMemberS).Value
	match := func(item map[string]types.AttributeValue) bool {
		s, ok := item[attr].(*types.AttributeValueMemberS)
		return ok && s.Value == want
	}
	items, last := f.page(aws.ToString(in.TableName), in.ExclusiveStartKey, match)
	return &dynamodb.QueryOutput{Items: items, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) page(
	table string,
	start map[string]types.AttributeValue,
	match func(map[string]types.AttributeValue) bool,
) ([]map[string]types.AttributeValue, map[string]types.AttributeValue) {
	t := f.table(table)
	ids := make([]string, 0, len(t))
	for id, item := range t {
		if match == nil || match(item) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	from := 0
	if start != nil {
		after := keyOf(start)
		for from < len(ids) && ids[from] <= after {
			from++
		}
	}
	to := from + f.pageSize
	if to >= len(ids) {
		to = len(ids)
	}
	out := make([]map[string]types.AttributeValue, 0, to-from)
	for _, id := range ids[from:to] {
		out = append(out, t[id])
	}
	if to < len(ids) {
		return out, map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: ids[to-1]}}
	}
	return out, nil
}
