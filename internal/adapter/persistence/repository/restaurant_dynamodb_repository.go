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

const (
	restaurantsAccessCodeIndex = "access_code-index"
	tablesRestaurantIDIndex    = "restaurant_id-index"
)

type restaurantItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	AccessCode string `dynamodbav:"access_code"`
}

type tableItem struct {
	ID           string `dynamodbav:"id"`
	RestaurantID string `dynamodbav:"restaurant_id"`
	Number       string `dynamodbav:"number"`
}

type paymentConfigItem struct {
	RestaurantID           string `dynamodbav:"restaurant_id"`
	MercadoPagoAccessToken string `dynamodbav:"mercadopago_access_token,omitempty"`
	TransferAlias          string `dynamodbav:"transfer_alias,omitempty"`
	TransferCBU            string `dynamodbav:"transfer_cbu,omitempty"`
	TransferHolder         string `dynamodbav:"transfer_holder,omitempty"`
	AcceptsCash            bool   `dynamodbav:"accepts_cash"`
}

// RestaurantDynamoRepository reads restaurants, their tables and payment
// settings. This data is maintained outside the service.
//
// Table requirements:
//   - restaurants: PK id, GSI access_code-index (PK access_code)
//   - tables: PK id, GSI restaurant_id-index (PK restaurant_id)
//   - payment_configs: PK restaurant_id
type RestaurantDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IRestaurantRepository = (*RestaurantDynamoRepository)(nil)

func NewRestaurantDynamoRepository(ddb DynamoAPI, tables Tables) *RestaurantDynamoRepository {
	return &RestaurantDynamoRepository{ddb: ddb, tables: tables.withDefaults()}
}

func (r *RestaurantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Restaurant, error) {
	it, ok, err := getItem[restaurantItem](ctx, r.ddb, r.tables.Restaurants, id)
	if err != nil || !ok {
		return entities.Restaurant{}, err
	}
	return entities.Restaurant(it), nil
}

func (r *RestaurantDynamoRepository) GetByAccessCode(ctx context.Context, accessCode string) (entities.Restaurant, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Restaurants),
		IndexName:              aws.String(restaurantsAccessCodeIndex),
		KeyConditionExpression: aws.String("access_code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: accessCode},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Restaurant{}, err
	}
	if len(out.Items) == 0 {
		return entities.Restaurant{}, nil
	}
	var it restaurantItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Restaurant{}, err
	}
	return entities.Restaurant(it), nil
}

// GetTable resolves a table by its printed number inside a restaurant.
func (r *RestaurantDynamoRepository) GetTable(ctx context.Context, restaurantID, number string) (entities.Table, error) {
	raw, err := queryAll[tableItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Tables),
		IndexName:              aws.String(tablesRestaurantIDIndex),
		KeyConditionExpression: aws.String("restaurant_id = :rid"),
		FilterExpression:       aws.String("#number = :number"),
		ExpressionAttributeNames: map[string]string{
			"#number": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":    &types.AttributeValueMemberS{Value: restaurantID},
			":number": &types.AttributeValueMemberS{Value: number},
		},
	})
	if err != nil {
		return entities.Table{}, err
	}
	if len(raw) == 0 {
		return entities.Table{}, nil
	}
	return entities.Table(raw[0]), nil
}

func (r *RestaurantDynamoRepository) GetTableByID(ctx context.Context, id string) (entities.Table, error) {
	it, ok, err := getItem[tableItem](ctx, r.ddb, r.tables.Tables, id)
	if err != nil || !ok {
		return entities.Table{}, err
	}
	return entities.Table(it), nil
}

// GetPaymentConfig returns a zero config when the restaurant has none.
func (r *RestaurantDynamoRepository) GetPaymentConfig(ctx context.Context, restaurantID string) (entities.PaymentConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.PaymentConfigs),
		Key: map[string]types.AttributeValue{
			"restaurant_id": &types.AttributeValueMemberS{Value: restaurantID},
		},
	})
	if err != nil {
		return entities.PaymentConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentConfig{}, nil
	}
	var it paymentConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentConfig{}, err
	}
	return entities.PaymentConfig(it), nil
}
