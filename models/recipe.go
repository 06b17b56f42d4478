// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Recipe is a user-authored recipe with its ordered ingredients and steps.
//
// CreatorID and ID are fixed at creation; every other field may be replaced
// by the owning creator.
type Recipe struct {
	// ID is the document identifier generated client-side on creation.
	ID primitive.ObjectID `bson:"_id" json:"id"`

	// CreatorID references the [User] who published the recipe.
	CreatorID primitive.ObjectID `bson:"creator_id" json:"creator_id"`

	// ImageURL is the optional cover image.
	ImageURL string `bson:"image_url,omitempty" json:"image_url,omitempty"`

	// Name is the recipe title. Searches match against it.
	Name string `bson:"name" json:"name"`

	// Description is an optional free-form text.
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	// Ingredients are kept in the order the creator entered them.
	Ingredients []Ingredient `bson:"ingredients" json:"ingredients"`

	// Steps are kept in cooking order.
	Steps []Step `bson:"steps" json:"steps"`
}

// Ingredient is a value embedded in a [Recipe].
type Ingredient struct {
	Name    string `bson:"name" json:"name"`
	Amount  int    `bson:"amount" json:"amount"`
	Measure string `bson:"measure" json:"measure"`
}

// Step is a value embedded in a [Recipe]. Duration is expressed in minutes.
type Step struct {
	Description string `bson:"description" json:"description"`
	Duration    int    `bson:"duration" json:"duration"`
}

// TableName returns the name of the collection/table holding recipes.
func (r Recipe) TableName() string {
	return "recipes"
}

// RecipeQuery narrows a recipe listing. Empty fields do not filter.
type RecipeQuery struct {
	Name      string
	CreatorID string
}
