package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"comanda/internal/domain/batch"
	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	ordersTableIDIndex  = "table_id-index"
	batchesOrderIDIndex = "order_id-index"
)

type orderItem struct {
	ID           string `dynamodbav:"id"`
	TableID      string `dynamodbav:"table_id"`
	RestaurantID string `dynamodbav:"restaurant_id"`
	Status       string `dynamodbav:"status"`
	TotalAmount  string `dynamodbav:"total_amount"`
	GuestCount   int    `dynamodbav:"guest_count"`
	Version      int64  `dynamodbav:"version"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type batchItem struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"order_id"`
	BatchNumber int    `dynamodbav:"batch_number"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists orders and their kitchen batches.
//
// Table requirements:
//   - orders: PK id, GSI table_id-index (PK table_id, SK created_at)
//   - order_batches: PK id, GSI order_id-index (PK order_id)
//   - tables: the open_order_id attribute guards one open order per table
type OrderDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tables Tables) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tables: tables.withDefaults()}
}

// Create stores the order and claims the table in one transaction. It fails
// with ErrConflict while another order of the table is open.
func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Orders),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Update: &types.Update{
				TableName:           aws.String(r.tables.Tables),
				Key:                 idKey(o.TableID),
				UpdateExpression:    aws.String("SET #open = :oid"),
				ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#open) OR #open = :empty)"),
				ExpressionAttributeNames: map[string]string{
					"#id":   "id",
					"#open": "open_order_id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":oid":   &types.AttributeValueMemberS{Value: o.ID},
					":empty": &types.AttributeValueMemberS{Value: ""},
				},
			}},
		},
	})
	if err != nil {
		if isConditionalFailure(err) {
			return entities.Order{}, fmt.Errorf("create order for table %s: %w", o.TableID, interfaces.ErrConflict)
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	it, ok, err := getItem[orderItem](ctx, r.ddb, r.tables.Orders, id)
	if err != nil || !ok {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// GetLatestByTableID returns the most recent order of the table, open or not.
func (r *OrderDynamoRepository) GetLatestByTableID(ctx context.Context, tableID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Orders),
		IndexName:              aws.String(ordersTableIDIndex),
		KeyConditionExpression: aws.String("table_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tableID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	// The index is eventually consistent; re-read the order itself.
	return r.GetByID(ctx, it.ID)
}

// UpdateStatus writes the new status guarded by expectedVersion. Closing the
// order (PAGADO) also releases the table.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, expectedVersion int64) (entities.Order, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if current.ID == "" {
		return entities.Order{}, nil
	}

	now := time.Now().UTC()
	items := []types.TransactWriteItem{
		{Update: &types.Update{
			TableName:           aws.String(r.tables.Orders),
			Key:                 idKey(id),
			UpdateExpression:    aws.String("SET #status = :status, #version = :next, #updated_at = :updated_at"),
			ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#version":    "version",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status":     &types.AttributeValueMemberS{Value: string(status)},
				":next":       numberValue(expectedVersion + 1),
				":expected":   numberValue(expectedVersion),
				":updated_at": &types.AttributeValueMemberS{Value: formatTime(now)},
			},
		}},
	}
	if status == entities.OrderStatusPagado {
		items = append(items, releaseTable(r.tables.Tables, current.TableID, id))
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if isConditionalFailure(err) {
			return entities.Order{}, fmt.Errorf("update order %s: %w", id, interfaces.ErrConflict)
		}
		return entities.Order{}, err
	}

	current.Status = status
	current.Version = expectedVersion + 1
	current.UpdatedAt = now
	return current, nil
}

// SendBatch applies a send plan atomically: the batch is created, every line
// is confirmed (only if still unconfirmed and at the planned quantity) and the
// order total is written under the plan's expected version.
func (r *OrderDynamoRepository) SendBatch(ctx context.Context, plan batch.SendPlan) error {
	if len(plan.Lines)+2 > maxTransactItems {
		return fmt.Errorf("send %d lines: %w", len(plan.Lines), ErrTooManyWrites)
	}
	batchAV, err := attributevalue.MarshalMap(toBatchItem(plan.Batch))
	if err != nil {
		return err
	}

	items := make([]types.TransactWriteItem, 0, len(plan.Lines)+2)
	items = append(items, types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.tables.Batches),
		Item:                     batchAV,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}})
	for _, l := range plan.Lines {
		items = append(items, types.TransactWriteItem{Update: &types.Update{
			TableName:           aws.String(r.tables.OrderItems),
			Key:                 idKey(l.ID),
			UpdateExpression:    aws.String("SET #confirmed = :true, #batch_id = :batch_id, #order_id = :order_id"),
			ConditionExpression: aws.String("attribute_exists(#id) AND #confirmed = :false AND #quantity = :qty"),
			ExpressionAttributeNames: map[string]string{
				"#id":        "id",
				"#confirmed": "is_confirmed",
				"#quantity":  "quantity",
				"#batch_id":  "batch_id",
				"#order_id":  "order_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":true":     &types.AttributeValueMemberBOOL{Value: true},
				":false":    &types.AttributeValueMemberBOOL{Value: false},
				":qty":      numberValue(int64(l.Quantity)),
				":batch_id": &types.AttributeValueMemberS{Value: plan.Batch.ID},
				":order_id": &types.AttributeValueMemberS{Value: plan.Order.ID},
			},
		}})
	}
	items = append(items, types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(r.tables.Orders),
		Key:                 idKey(plan.Order.ID),
		UpdateExpression:    aws.String("SET #total = :total, #version = :next, #updated_at = :updated_at"),
		ConditionExpression: aws.String("#version = :expected AND #status = :open"),
		ExpressionAttributeNames: map[string]string{
			"#total":      "total_amount",
			"#version":    "version",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":total":      &types.AttributeValueMemberS{Value: plan.Order.TotalAmount.String()},
			":next":       numberValue(plan.Order.Version),
			":expected":   numberValue(plan.ExpectedVersion),
			":open":       &types.AttributeValueMemberS{Value: string(entities.OrderStatusAbierto)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(plan.Order.UpdatedAt)},
		},
	}})

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if isConditionalFailure(err) {
			return fmt.Errorf("send batch %d of order %s: %w", plan.Batch.BatchNumber, plan.Order.ID, interfaces.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *OrderDynamoRepository) GetBatch(ctx context.Context, id string) (entities.OrderBatch, error) {
	it, ok, err := getItem[batchItem](ctx, r.ddb, r.tables.Batches, id)
	if err != nil || !ok {
		return entities.OrderBatch{}, err
	}
	return fromBatchItem(it), nil
}

// ListBatches returns the batches of the order sorted by batch number.
func (r *OrderDynamoRepository) ListBatches(ctx context.Context, orderID string) ([]entities.OrderBatch, error) {
	raw, err := queryAll[batchItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Batches),
		IndexName:              aws.String(batchesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.OrderBatch, 0, len(raw))
	for _, it := range raw {
		out = append(out, fromBatchItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BatchNumber < out[j].BatchNumber })
	return out, nil
}

// UpdateBatchStatus moves a batch from one status to another. It fails with
// ErrConflict when the stored status is no longer from.
func (r *OrderDynamoRepository) UpdateBatchStatus(ctx context.Context, id string, from, to entities.BatchStatus) (entities.OrderBatch, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Batches),
		Key:                 idKey(id),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalFailure(err) {
			return entities.OrderBatch{}, fmt.Errorf("advance batch %s: %w", id, interfaces.ErrConflict)
		}
		return entities.OrderBatch{}, err
	}
	var it batchItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.OrderBatch{}, err
	}
	return fromBatchItem(it), nil
}

func releaseTable(table, tableID, orderID string) types.TransactWriteItem {
	return types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(table),
		Key:                 idKey(tableID),
		UpdateExpression:    aws.String("REMOVE #open"),
		ConditionExpression: aws.String("attribute_not_exists(#open) OR #open = :oid"),
		ExpressionAttributeNames: map[string]string{
			"#open": "open_order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	}}
}

func numberValue(v int64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:           o.ID,
		TableID:      o.TableID,
		RestaurantID: o.RestaurantID,
		Status:       string(o.Status),
		TotalAmount:  o.TotalAmount.String(),
		GuestCount:   o.GuestCount,
		Version:      o.Version,
		CreatedAt:    formatTime(o.CreatedAt),
		UpdatedAt:    formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:           it.ID,
		TableID:      it.TableID,
		RestaurantID: it.RestaurantID,
		Status:       entities.OrderStatus(it.Status),
		TotalAmount:  parseDecimal(it.TotalAmount),
		GuestCount:   it.GuestCount,
		Version:      it.Version,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}

func toBatchItem(b entities.OrderBatch) batchItem {
	return batchItem{
		ID:          b.ID,
		OrderID:     b.OrderID,
		BatchNumber: b.BatchNumber,
		Status:      string(b.Status),
		CreatedAt:   formatTime(b.CreatedAt),
		UpdatedAt:   formatTime(b.UpdatedAt),
	}
}

func fromBatchItem(it batchItem) entities.OrderBatch {
	return entities.OrderBatch{
		ID:          it.ID,
		OrderID:     it.OrderID,
		BatchNumber: it.BatchNumber,
		Status:      entities.BatchStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
