package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"comanda/internal/domain/batch"
	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo records writes and serves canned reads.
type fakeDynamo struct {
	items       map[string]map[string]types.AttributeValue
	pages       []*dynamodb.QueryOutput
	queries     []*dynamodb.QueryInput
	transacts   []*dynamodb.TransactWriteItemsInput
	updates     []*dynamodb.UpdateItemInput
	transactErr error
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, _ *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	return &dynamodb.UpdateItemOutput{Attributes: f.items[in.Key["id"].(*types.AttributeValueMemberS).Value]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, _ *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	cp := *in
	f.queries = append(f.queries, &cp)
	if len(f.pages) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in)
	return &dynamodb.TransactWriteItemsOutput{}, f.transactErr
}

func conditionalCancel() error {
	return &types.TransactionCanceledException{
		Message: aws.String("Transaction cancelled"),
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed")},
		},
	}
}

func marshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func TestOrderRepository_SendBatch(t *testing.T) {
	now := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	plan := batch.SendPlan{
		Batch: entities.OrderBatch{ID: "b2", OrderID: "o1", BatchNumber: 2, Status: entities.BatchStatusPreparando, CreatedAt: now, UpdatedAt: now},
		Lines: []entities.OrderItem{
			{ID: "l1", ItemID: "A", Quantity: 1},
			{ID: "l2", ItemID: "B", Quantity: 2},
		},
		Order:           entities.Order{ID: "o1", TotalAmount: decimal.RequireFromString("42.50"), Version: 4, UpdatedAt: now},
		ExpectedVersion: 3,
	}

	t.Run("one transaction", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewOrderDynamoRepository(fake, Tables{})

		require.NoError(t, repo.SendBatch(context.Background(), plan))
		require.Len(t, fake.transacts, 1)

		items := fake.transacts[0].TransactItems
		require.Len(t, items, 4)
		assert.Equal(t, "order_batches", *items[0].Put.TableName)
		assert.Equal(t, "order_items", *items[1].Update.TableName)
		assert.Equal(t, "order_items", *items[2].Update.TableName)
		lineUpdate := items[2].Update
		assert.Contains(t, *lineUpdate.ConditionExpression, "#quantity = :qty")
		assert.Equal(t, "quantity", lineUpdate.ExpressionAttributeNames["#quantity"])
		assert.Equal(t, "2", lineUpdate.ExpressionAttributeValues[":qty"].(*types.AttributeValueMemberN).Value)

		orderUpdate := items[3].Update
		assert.Equal(t, "orders", *orderUpdate.TableName)
		assert.Equal(t, "3", orderUpdate.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value)
		assert.Equal(t, "4", orderUpdate.ExpressionAttributeValues[":next"].(*types.AttributeValueMemberN).Value)
		assert.Equal(t, "42.5", orderUpdate.ExpressionAttributeValues[":total"].(*types.AttributeValueMemberS).Value)
	})

	t.Run("lost race maps to conflict", func(t *testing.T) {
		fake := &fakeDynamo{transactErr: conditionalCancel()}
		repo := NewOrderDynamoRepository(fake, Tables{})

		err := repo.SendBatch(context.Background(), plan)
		assert.True(t, errors.Is(err, interfaces.ErrConflict), "got %v", err)
	})

	t.Run("custom table names", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewOrderDynamoRepository(fake, Tables{Batches: "dev_batches"})

		require.NoError(t, repo.SendBatch(context.Background(), plan))
		assert.Equal(t, "dev_batches", *fake.transacts[0].TransactItems[0].Put.TableName)
		assert.Equal(t, "orders", *fake.transacts[0].TransactItems[3].Update.TableName)
	})
}

func TestOrderRepository_Create(t *testing.T) {
	fake := &fakeDynamo{transactErr: conditionalCancel()}
	repo := NewOrderDynamoRepository(fake, Tables{})

	_, err := repo.Create(context.Background(), entities.Order{ID: "o2", TableID: "t1", Status: entities.OrderStatusAbierto})
	assert.True(t, errors.Is(err, interfaces.ErrConflict))

	items := fake.transacts[0].TransactItems
	require.Len(t, items, 2)
	assert.Equal(t, "tables", *items[1].Update.TableName)
	assert.Equal(t, "o2", items[1].Update.ExpressionAttributeValues[":oid"].(*types.AttributeValueMemberS).Value)
}

func TestOrderRepository_UpdateStatusReleasesTable(t *testing.T) {
	fake := &fakeDynamo{items: map[string]map[string]types.AttributeValue{
		"o1": marshal(t, orderItem{ID: "o1", TableID: "t1", Status: "ABIERTO", TotalAmount: "25", Version: 5}),
	}}
	repo := NewOrderDynamoRepository(fake, Tables{})

	got, err := repo.UpdateStatus(context.Background(), "o1", entities.OrderStatusPagado, 5)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPagado, got.Status)
	assert.Equal(t, int64(6), got.Version)
	assert.True(t, decimal.NewFromInt(25).Equal(got.TotalAmount))

	items := fake.transacts[0].TransactItems
	require.Len(t, items, 2)
	assert.Equal(t, "REMOVE #open", *items[1].Update.UpdateExpression)
}

func TestOrderItemRepository_NotesRoundTrip(t *testing.T) {
	line := entities.OrderItem{
		ID: "l1", TableID: "t1", ItemID: "A", GuestID: "g1", Quantity: 2,
		Extras:             []string{"queso", "huevo"},
		RemovedIngredients: []string{"cebolla"},
	}
	it := toOrderLineItem(line)
	require.NotNil(t, it.Notes)
	assert.Equal(t, "EXTRAS: queso,huevo | SIN: cebolla", *it.Notes)

	back := fromOrderLineItem(it)
	assert.Equal(t, line.Extras, back.Extras)
	assert.Equal(t, line.RemovedIngredients, back.RemovedIngredients)

	plain := toOrderLineItem(entities.OrderItem{ID: "l2", Quantity: 1})
	assert.Nil(t, plain.Notes)
	assert.Empty(t, fromOrderLineItem(plain).Extras)
}

func TestOrderItemRepository_UpdateDropsEmptyNotes(t *testing.T) {
	fake := &fakeDynamo{items: map[string]map[string]types.AttributeValue{
		"l1": marshal(t, orderLineItem{ID: "l1", TableID: "t1", ItemID: "A", Quantity: 3}),
	}}
	repo := NewOrderItemDynamoRepository(fake, Tables{})

	got, err := repo.Update(context.Background(), entities.OrderItem{ID: "l1", GuestID: "g1", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)

	require.Len(t, fake.updates, 1)
	assert.Contains(t, *fake.updates[0].UpdateExpression, "REMOVE #notes")
	_, hasNotes := fake.updates[0].ExpressionAttributeValues[":notes"]
	assert.False(t, hasNotes)
	assert.Equal(t, false, fake.updates[0].ExpressionAttributeValues[":confirmed"].(*types.AttributeValueMemberBOOL).Value)
}

func TestGuestRepository_ListByTableIDPagesAndOrders(t *testing.T) {
	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	fake := &fakeDynamo{pages: []*dynamodb.QueryOutput{
		{
			Items: []map[string]types.AttributeValue{
				marshal(t, guestItem{ID: "g3", TableID: "t1", Name: "Comensal 3", CreatedAt: formatTime(base.Add(2 * time.Millisecond))}),
			},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "g3"}},
		},
		{
			Items: []map[string]types.AttributeValue{
				marshal(t, guestItem{ID: "g2", TableID: "t1", Name: "Comensal 2", CreatedAt: formatTime(base.Add(time.Millisecond))}),
				marshal(t, guestItem{ID: "g1", TableID: "t1", Name: "Ana", IsHost: true, CreatedAt: formatTime(base)}),
			},
		},
	}}
	repo := NewGuestDynamoRepository(fake, Tables{})

	got, err := repo.ListByTableID(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"g1", "g2", "g3"}, []string{got[0].ID, got[1].ID, got[2].ID})

	require.Len(t, fake.queries, 2)
	assert.NotNil(t, fake.queries[1].ExclusiveStartKey)
}

func TestGuestItem_IndividualAmount(t *testing.T) {
	amount := decimal.RequireFromString("12.5")
	it := toGuestItem(entities.Guest{ID: "g1", IndividualAmount: &amount})
	require.NotNil(t, it.IndividualAmount)
	assert.Equal(t, "12.50", *it.IndividualAmount)

	back := fromGuestItem(it)
	require.NotNil(t, back.IndividualAmount)
	assert.True(t, amount.Equal(*back.IndividualAmount))

	assert.Nil(t, fromGuestItem(guestItem{ID: "g2"}).IndividualAmount)
}

func TestMenuItem_Customization(t *testing.T) {
	m := fromMenuItemItem(menuItemItem{ID: "A", Price: "10.50", IngredientsToAdd: []string{"queso"}})
	assert.True(t, decimal.RequireFromString("10.5").Equal(m.Price))
	require.NotNil(t, m.Customization)
	assert.Equal(t, []string{"queso"}, m.Customization.IngredientsToAdd)
	assert.Equal(t, []string{}, m.DietaryTags)

	plain := fromMenuItemItem(menuItemItem{ID: "B", Price: "5"})
	assert.Nil(t, plain.Customization)
}
