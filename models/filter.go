package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups filters, e.g. "Cuisine" or "Meal type".
type Category struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// TableName returns the name of the collection/table holding categories.
func (c Category) TableName() string {
	return "categories"
}

// Filter is a single value of a [Category], e.g. "Italian".
type Filter struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	CategoryID primitive.ObjectID `bson:"category_id" json:"category_id"`
	Value      string             `bson:"value" json:"value"`
}

// TableName returns the name of the collection/table holding filters.
func (f Filter) TableName() string {
	return "filters"
}

// RecipeFilter associates a recipe with a filter.
//
// CategoryID duplicates the filter's category so that the store can enforce
// "one filter per category per recipe" with a unique index.
type RecipeFilter struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	RecipeID   primitive.ObjectID `bson:"recipe_id" json:"recipe_id"`
	FilterID   primitive.ObjectID `bson:"filter_id" json:"filter_id"`
	CategoryID primitive.ObjectID `bson:"category_id" json:"category_id"`
}

// TableName returns the name of the collection/table holding associations.
func (r RecipeFilter) TableName() string {
	return "recipe_filters"
}

// CategorizedFilters maps a category name to the values of its filters.
type CategorizedFilters map[string][]string

// AttachFilterRequest is the body of an attach call. Exactly one of FilterID
// and Value is expected; FilterID wins when both are set.
type AttachFilterRequest struct {
	FilterID string `json:"filter_id,omitempty"`
	Value    string `json:"value,omitempty"`
}
