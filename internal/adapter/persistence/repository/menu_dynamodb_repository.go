package repository

import (
	"context"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const menuRestaurantIDIndex = "restaurant_id-index"

type categoryItem struct {
	ID           string `dynamodbav:"id"`
	RestaurantID string `dynamodbav:"restaurant_id"`
	Name         string `dynamodbav:"name"`
	Position     int    `dynamodbav:"position"`
}

type menuItemItem struct {
	ID                  string   `dynamodbav:"id"`
	RestaurantID        string   `dynamodbav:"restaurant_id"`
	Name                string   `dynamodbav:"name"`
	Price               string   `dynamodbav:"price"`
	CategoryID          string   `dynamodbav:"category_id"`
	SubcategoryID       string   `dynamodbav:"subcategory_id,omitempty"`
	DietaryTags         []string `dynamodbav:"dietary_tags,omitempty"`
	IngredientsToAdd    []string `dynamodbav:"ingredients_to_add,omitempty"`
	IngredientsToRemove []string `dynamodbav:"ingredients_to_remove,omitempty"`
}

// MenuDynamoRepository reads the categories and items of a restaurant.
//
// Both collections are keyed by id with a restaurant_id-index GSI.
type MenuDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IMenuRepository = (*MenuDynamoRepository)(nil)

func NewMenuDynamoRepository(ddb DynamoAPI, tables Tables) *MenuDynamoRepository {
	return &MenuDynamoRepository{ddb: ddb, tables: tables.withDefaults()}
}

func (r *MenuDynamoRepository) ListCategories(ctx context.Context, restaurantID string) ([]entities.Category, error) {
	raw, err := queryAll[categoryItem](ctx, r.ddb, byRestaurant(r.tables.Categories, restaurantID))
	if err != nil {
		return nil, err
	}
	out := make([]entities.Category, 0, len(raw))
	for _, it := range raw {
		out = append(out, entities.Category(it))
	}
	return out, nil
}

func (r *MenuDynamoRepository) ListItems(ctx context.Context, restaurantID string) ([]entities.MenuItem, error) {
	raw, err := queryAll[menuItemItem](ctx, r.ddb, byRestaurant(r.tables.MenuItems, restaurantID))
	if err != nil {
		return nil, err
	}
	out := make([]entities.MenuItem, 0, len(raw))
	for _, it := range raw {
		out = append(out, fromMenuItemItem(it))
	}
	return out, nil
}

func byRestaurant(table, restaurantID string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(menuRestaurantIDIndex),
		KeyConditionExpression: aws.String("restaurant_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: restaurantID},
		},
	}
}

func fromMenuItemItem(it menuItemItem) entities.MenuItem {
	m := entities.MenuItem{
		ID:            it.ID,
		RestaurantID:  it.RestaurantID,
		Name:          it.Name,
		Price:         parseDecimal(it.Price),
		CategoryID:    it.CategoryID,
		SubcategoryID: it.SubcategoryID,
		DietaryTags:   it.DietaryTags,
	}
	if m.DietaryTags == nil {
		m.DietaryTags = []string{}
	}
	if len(it.IngredientsToAdd) > 0 || len(it.IngredientsToRemove) > 0 {
		m.Customization = &entities.Customization{
			IngredientsToAdd:    it.IngredientsToAdd,
			IngredientsToRemove: it.IngredientsToRemove,
		}
	}
	return m
}
