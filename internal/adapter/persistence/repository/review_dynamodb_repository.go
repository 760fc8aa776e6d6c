package repository

import (
	"context"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const reviewsOrderIDIndex = "order_id-index"

type reviewItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	TableID   string `dynamodbav:"table_id"`
	GuestID   string `dynamodbav:"guest_id"`
	Rating    int    `dynamodbav:"rating"`
	Comment   string `dynamodbav:"comment,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ReviewDynamoRepository persists post-payment feedback.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
type ReviewDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb DynamoAPI, tables Tables) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{ddb: ddb, tableName: tables.withDefaults().Reviews}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	av, err := attributevalue.MarshalMap(reviewItem{
		ID:        rv.ID,
		OrderID:   rv.OrderID,
		TableID:   rv.TableID,
		GuestID:   rv.GuestID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: formatTime(rv.CreatedAt),
	})
	if err != nil {
		return entities.Review{}, err
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
		return entities.Review{}, err
	}
	return rv, nil
}

func (r *ReviewDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Review, error) {
	raw, err := queryAll[reviewItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reviewsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Review, 0, len(raw))
	for _, it := range raw {
		out = append(out, entities.Review{
			ID:        it.ID,
			OrderID:   it.OrderID,
			TableID:   it.TableID,
			GuestID:   it.GuestID,
			Rating:    it.Rating,
			Comment:   it.Comment,
			CreatedAt: parseTime(it.CreatedAt),
		})
	}
	return out, nil
}
