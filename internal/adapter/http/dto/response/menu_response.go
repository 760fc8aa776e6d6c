package response

import (
	"comanda/internal/domain/entities"
	"comanda/internal/usecase"
)

type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

type MenuItemResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Price               string   `json:"price"`
	CategoryID          string   `json:"category_id"`
	SubcategoryID       string   `json:"subcategory_id,omitempty"`
	DietaryTags         []string `json:"dietary_tags"`
	IngredientsToAdd    []string `json:"ingredients_to_add,omitempty"`
	IngredientsToRemove []string `json:"ingredients_to_remove,omitempty"`
}

type MenuResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Items      []MenuItemResponse `json:"items"`
}

func FromMenuItem(m entities.MenuItem) MenuItemResponse {
	res := MenuItemResponse{
		ID:            m.ID,
		Name:          m.Name,
		Price:         money(m.Price),
		CategoryID:    m.CategoryID,
		SubcategoryID: m.SubcategoryID,
		DietaryTags:   m.DietaryTags,
	}
	if res.DietaryTags == nil {
		res.DietaryTags = []string{}
	}
	if m.Customization != nil {
		res.IngredientsToAdd = m.Customization.IngredientsToAdd
		res.IngredientsToRemove = m.Customization.IngredientsToRemove
	}
	return res
}

func FromMenu(v usecase.MenuView) MenuResponse {
	res := MenuResponse{
		Categories: make([]CategoryResponse, 0, len(v.Categories)),
		Items:      make([]MenuItemResponse, 0, len(v.Items)),
	}
	for _, c := range v.Categories {
		res.Categories = append(res.Categories, CategoryResponse{ID: c.ID, Name: c.Name, Position: c.Position})
	}
	for _, it := range v.Items {
		res.Items = append(res.Items, FromMenuItem(it))
	}
	return res
}
