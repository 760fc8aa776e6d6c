package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"comanda/internal/domain/entities"
	"comanda/internal/domain/notes"
	"comanda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const orderItemsTableIDIndex = "table_id-index"

// orderLineItem is the stored cart line. Extras and removed ingredients share
// the free-text notes attribute.
type orderLineItem struct {
	ID          string  `dynamodbav:"id"`
	TableID     string  `dynamodbav:"table_id"`
	ItemID      string  `dynamodbav:"item_id"`
	GuestID     string  `dynamodbav:"guest_id"`
	Quantity    int     `dynamodbav:"quantity"`
	Notes       *string `dynamodbav:"notes,omitempty"`
	IsConfirmed bool    `dynamodbav:"is_confirmed"`
	BatchID     string  `dynamodbav:"batch_id,omitempty"`
	OrderID     string  `dynamodbav:"order_id,omitempty"`
	Rating      *int    `dynamodbav:"rating,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// OrderItemDynamoRepository persists cart lines in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: table_id-index (PK: table_id)
type OrderItemDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderItemRepository = (*OrderItemDynamoRepository)(nil)

func NewOrderItemDynamoRepository(ddb DynamoAPI, tables Tables) *OrderItemDynamoRepository {
	return &OrderItemDynamoRepository{ddb: ddb, tableName: tables.withDefaults().OrderItems}
}

func (r *OrderItemDynamoRepository) Create(ctx context.Context, item entities.OrderItem) (entities.OrderItem, error) {
	av, err := attributevalue.MarshalMap(toOrderLineItem(item))
	if err != nil {
		return entities.OrderItem{}, err
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
		return entities.OrderItem{}, err
	}
	return item, nil
}

func (r *OrderItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrderItem, error) {
	it, ok, err := getItem[orderLineItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.OrderItem{}, err
	}
	return fromOrderLineItem(it), nil
}

// ListByTableID returns every line of the table, oldest first.
func (r *OrderItemDynamoRepository) ListByTableID(ctx context.Context, tableID string) ([]entities.OrderItem, error) {
	raw, err := queryAll[orderLineItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(orderItemsTableIDIndex),
		KeyConditionExpression: aws.String("table_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tableID},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.OrderItem, 0, len(raw))
	for _, it := range raw {
		out = append(out, fromOrderLineItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Update rewrites quantity, owner and ingredients of an unconfirmed line.
func (r *OrderItemDynamoRepository) Update(ctx context.Context, item entities.OrderItem) (entities.OrderItem, error) {
	encoded := notes.Encode(item.Extras, item.RemovedIngredients)
	return r.update(ctx, item.ID, false, func() (string, map[string]types.AttributeValue, map[string]string) {
		names := map[string]string{
			"#quantity": "quantity",
			"#guest_id": "guest_id",
			"#notes":    "notes",
		}
		vals := map[string]types.AttributeValue{
			":quantity": &types.AttributeValueMemberN{Value: strconv.Itoa(item.Quantity)},
			":guest_id": &types.AttributeValueMemberS{Value: item.GuestID},
		}
		if encoded == nil {
			return "SET #quantity = :quantity, #guest_id = :guest_id REMOVE #notes", vals, names
		}
		vals[":notes"] = &types.AttributeValueMemberS{Value: *encoded}
		return "SET #quantity = :quantity, #guest_id = :guest_id, #notes = :notes", vals, names
	})
}

// Delete removes an unconfirmed line.
func (r *OrderItemDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #confirmed = :false"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#confirmed": "is_confirmed",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil && isConditionalFailure(err) {
		return fmt.Errorf("delete line %s: %w", id, interfaces.ErrConflict)
	}
	return err
}

// SetRating is the only write accepted on a confirmed line.
func (r *OrderItemDynamoRepository) SetRating(ctx context.Context, id string, rating int) (entities.OrderItem, error) {
	return r.update(ctx, id, true, func() (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #rating = :rating",
			map[string]types.AttributeValue{
				":rating": &types.AttributeValueMemberN{Value: strconv.Itoa(rating)},
			},
			map[string]string{"#rating": "rating"}
	})
}

// DeleteUnconfirmedByTableID drops the table's pending lines. Lines confirmed
// in the meantime are left alone.
func (r *OrderItemDynamoRepository) DeleteUnconfirmedByTableID(ctx context.Context, tableID string) error {
	lines, err := r.ListByTableID(ctx, tableID)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if l.IsConfirmed {
			continue
		}
		if err := r.Delete(ctx, l.ID); err != nil {
			if isConflict(err) {
				zap.L().Info("[order_item][repository] line confirmed before delete", zap.String("line_id", l.ID))
				continue
			}
			return err
		}
	}
	return nil
}

func (r *OrderItemDynamoRepository) update(
	ctx context.Context,
	id string,
	confirmed bool,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.OrderItem, error) {
	updateExpr, values, names := build()
	values[":confirmed"] = &types.AttributeValueMemberBOOL{Value: confirmed}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #confirmed = :confirmed"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#confirmed": "is_confirmed"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalFailure(err) {
			return entities.OrderItem{}, fmt.Errorf("update line %s: %w", id, interfaces.ErrConflict)
		}
		return entities.OrderItem{}, err
	}
	var it orderLineItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.OrderItem{}, err
	}
	return fromOrderLineItem(it), nil
}

func toOrderLineItem(i entities.OrderItem) orderLineItem {
	return orderLineItem{
		ID:          i.ID,
		TableID:     i.TableID,
		ItemID:      i.ItemID,
		GuestID:     i.GuestID,
		Quantity:    i.Quantity,
		Notes:       notes.Encode(i.Extras, i.RemovedIngredients),
		IsConfirmed: i.IsConfirmed,
		BatchID:     i.BatchID,
		OrderID:     i.OrderID,
		Rating:      i.Rating,
		CreatedAt:   formatTime(i.CreatedAt),
	}
}

func fromOrderLineItem(it orderLineItem) entities.OrderItem {
	decoded := notes.Decode(it.Notes)
	return entities.OrderItem{
		ID:                 it.ID,
		TableID:            it.TableID,
		ItemID:             it.ItemID,
		GuestID:            it.GuestID,
		Quantity:           it.Quantity,
		Extras:             decoded.Extras,
		RemovedIngredients: decoded.Removed,
		IsConfirmed:        it.IsConfirmed,
		BatchID:            it.BatchID,
		OrderID:            it.OrderID,
		Rating:             it.Rating,
		CreatedAt:          parseTime(it.CreatedAt),
	}
}
