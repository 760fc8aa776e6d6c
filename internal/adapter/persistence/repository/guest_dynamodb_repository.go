package repository

import (
	"context"
	"fmt"
	"sort"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const guestsTableIDIndex = "table_id-index"

type guestItem struct {
	ID               string  `dynamodbav:"id"`
	TableID          string  `dynamodbav:"table_id"`
	Name             string  `dynamodbav:"name"`
	IsHost           bool    `dynamodbav:"is_host"`
	IndividualAmount *string `dynamodbav:"individual_amount,omitempty"`
	Paid             bool    `dynamodbav:"paid"`
	PaymentMethod    string  `dynamodbav:"payment_method,omitempty"`
	CreatedAt        string  `dynamodbav:"created_at"`
}

// GuestDynamoRepository persists the diners of a table session.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: table_id-index (PK: table_id)
type GuestDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IGuestRepository = (*GuestDynamoRepository)(nil)

func NewGuestDynamoRepository(ddb DynamoAPI, tables Tables) *GuestDynamoRepository {
	return &GuestDynamoRepository{ddb: ddb, tableName: tables.withDefaults().Guests}
}

// CreateMany stores every guest or none.
func (r *GuestDynamoRepository) CreateMany(ctx context.Context, guests []entities.Guest) ([]entities.Guest, error) {
	if len(guests) == 0 {
		return guests, nil
	}
	if len(guests) > maxTransactItems {
		return nil, fmt.Errorf("create %d guests: %w", len(guests), ErrTooManyWrites)
	}
	items := make([]types.TransactWriteItem, 0, len(guests))
	for _, g := range guests {
		av, err := attributevalue.MarshalMap(toGuestItem(g))
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}})
	}
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *GuestDynamoRepository) GetByID(ctx context.Context, id string) (entities.Guest, error) {
	it, ok, err := getItem[guestItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Guest{}, err
	}
	return fromGuestItem(it), nil
}

// ListByTableID returns the guests in seat order, host first.
func (r *GuestDynamoRepository) ListByTableID(ctx context.Context, tableID string) ([]entities.Guest, error) {
	raw, err := queryAll[guestItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(guestsTableIDIndex),
		KeyConditionExpression: aws.String("table_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tableID},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Guest, 0, len(raw))
	for _, it := range raw {
		out = append(out, fromGuestItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsHost != out[j].IsHost {
			return out[i].IsHost
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// SetIndividualAmounts writes the confirmed split for every guest at once.
func (r *GuestDynamoRepository) SetIndividualAmounts(ctx context.Context, amounts map[string]decimal.Decimal) error {
	if len(amounts) == 0 {
		return nil
	}
	if len(amounts) > maxTransactItems {
		return fmt.Errorf("set %d amounts: %w", len(amounts), ErrTooManyWrites)
	}
	items := make([]types.TransactWriteItem, 0, len(amounts))
	for id, amount := range amounts {
		items = append(items, types.TransactWriteItem{Update: &types.Update{
			TableName:           aws.String(r.tableName),
			Key:                 idKey(id),
			UpdateExpression:    aws.String("SET #amount = :amount"),
			ConditionExpression: aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id":     "id",
				"#amount": "individual_amount",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":amount": &types.AttributeValueMemberS{Value: amount.StringFixed(2)},
			},
		}})
	}
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if isConditionalFailure(err) {
			return fmt.Errorf("set individual amounts: %w", interfaces.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *GuestDynamoRepository) UpdatePayment(ctx context.Context, id string, paid bool, method entities.PaymentMethod) (entities.Guest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		UpdateExpression:    aws.String("SET #paid = :paid, #method = :method"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#paid":   "paid",
			"#method": "payment_method",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":   &types.AttributeValueMemberBOOL{Value: paid},
			":method": &types.AttributeValueMemberS{Value: string(method)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalFailure(err) {
			return entities.Guest{}, nil
		}
		return entities.Guest{}, err
	}
	var it guestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Guest{}, err
	}
	return fromGuestItem(it), nil
}

func (r *GuestDynamoRepository) DeleteByTableID(ctx context.Context, tableID string) error {
	guests, err := r.ListByTableID(ctx, tableID)
	if err != nil {
		return err
	}
	for _, g := range guests {
		if _, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key:       idKey(g.ID),
		}); err != nil {
			return err
		}
	}
	return nil
}

func toGuestItem(g entities.Guest) guestItem {
	it := guestItem{
		ID:            g.ID,
		TableID:       g.TableID,
		Name:          g.Name,
		IsHost:        g.IsHost,
		Paid:          g.Paid,
		PaymentMethod: string(g.PaymentMethod),
		CreatedAt:     formatTime(g.CreatedAt),
	}
	if g.IndividualAmount != nil {
		s := g.IndividualAmount.StringFixed(2)
		it.IndividualAmount = &s
	}
	return it
}

func fromGuestItem(it guestItem) entities.Guest {
	g := entities.Guest{
		ID:            it.ID,
		TableID:       it.TableID,
		Name:          it.Name,
		IsHost:        it.IsHost,
		Paid:          it.Paid,
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		CreatedAt:     parseTime(it.CreatedAt),
	}
	if it.IndividualAmount != nil {
		d := parseDecimal(*it.IndividualAmount)
		g.IndividualAmount = &d
	}
	return g
}
