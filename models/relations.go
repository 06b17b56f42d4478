package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FavoriteRecord marks that a user favorited a recipe.
// At most one record exists per (UserID, RecipeID) pair.
type FavoriteRecord struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	UserID   primitive.ObjectID `bson:"user_id" json:"user_id"`
	RecipeID primitive.ObjectID `bson:"recipe_id" json:"recipe_id"`
}

// TableName returns the name of the collection/table holding favorites.
func (f FavoriteRecord) TableName() string {
	return "favorites"
}

// FollowerRecord marks that FollowerID follows CreatorID.
// At most one record exists per (FollowerID, CreatorID) pair.
type FollowerRecord struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	FollowerID primitive.ObjectID `bson:"follower_id" json:"follower_id"`
	CreatorID  primitive.ObjectID `bson:"creator_id" json:"creator_id"`
}

// TableName returns the name of the collection/table holding follows.
func (f FollowerRecord) TableName() string {
	return "follows"
}
