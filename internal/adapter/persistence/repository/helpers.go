package repository

import (
	"context"
	"errors"
	"time"

	"comanda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DynamoAPI is the part of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// maxTransactItems is the DynamoDB limit for a single TransactWriteItems call.
const maxTransactItems = 100

var ErrTooManyWrites = errors.New("too many writes for a single transaction")

// Tables holds the physical table names of every collection.
type Tables struct {
	Restaurants    string
	Tables         string
	PaymentConfigs string
	Categories     string
	MenuItems      string
	Orders         string
	Batches        string
	OrderItems     string
	Guests         string
	Reviews        string
}

func DefaultTables() Tables {
	return Tables{
		Restaurants:    "restaurants",
		Tables:         "tables",
		PaymentConfigs: "payment_configs",
		Categories:     "categories",
		MenuItems:      "menu_items",
		Orders:         "orders",
		Batches:        "order_batches",
		OrderItems:     "order_items",
		Guests:         "order_guests",
		Reviews:        "reviews",
	}
}

// withDefaults fills every empty name from DefaultTables.
func (t Tables) withDefaults() Tables {
	d := DefaultTables()
	return Tables{
		Restaurants:    orDefault(t.Restaurants, d.Restaurants),
		Tables:         orDefault(t.Tables, d.Tables),
		PaymentConfigs: orDefault(t.PaymentConfigs, d.PaymentConfigs),
		Categories:     orDefault(t.Categories, d.Categories),
		MenuItems:      orDefault(t.MenuItems, d.MenuItems),
		Orders:         orDefault(t.Orders, d.Orders),
		Batches:        orDefault(t.Batches, d.Batches),
		OrderItems:     orDefault(t.OrderItems, d.OrderItems),
		Guests:         orDefault(t.Guests, d.Guests),
		Reviews:        orDefault(t.Reviews, d.Reviews),
	}
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// isConditionalFailure reports whether err is a failed condition, either on a
// single write or inside a cancelled transaction.
func isConditionalFailure(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return true
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}

func isConflict(err error) bool {
	return errors.Is(err, interfaces.ErrConflict)
}

// queryAll follows LastEvaluatedKey until the query is exhausted and
// unmarshals every item into T.
func queryAll[T any](ctx context.Context, ddb DynamoAPI, in *dynamodb.QueryInput) ([]T, error) {
	var out []T
	for {
		page, err := ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it T
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, it)
		}
		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}
}

// getItem reads one item by id. ok is false when it does not exist.
func getItem[T any](ctx context.Context, ddb DynamoAPI, table, id string) (it T, ok bool, err error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return it, false, err
	}
	if len(out.Item) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
