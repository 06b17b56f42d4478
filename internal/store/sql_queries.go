package store

import (
	"encoding/json"
	"fmt"

	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Table names match the Mongo collection names.
var (
	usersTable         = usersCollection
	recipesTable       = recipesCollection
	favoritesTable     = favoritesCollection
	followsTable       = followsCollection
	categoriesTable    = categoriesCollection
	filtersTable       = filtersCollection
	recipeFiltersTable = recipeFiltersCollection
)

var (
	userColumns     = []string{"id", "login", "nickname", "image_url", "password", "salt"}
	creatorColumns  = []string{"id", "nickname", "image_url"}
	recipeColumns   = []string{"id", "creator_id", "image_url", "name", "description", "ingredients", "steps"}
	favoriteColumns = []string{"id", "user_id", "recipe_id"}
	followColumns   = []string{"id", "follower_id", "creator_id"}
	categoryColumns = []string{"id", "name"}
	filterColumns   = []string{"id", "category_id", "value"}
)

// objectIDColumn scans a hex TEXT column into an object id.
type objectIDColumn struct {
	id *primitive.ObjectID
}

func (c objectIDColumn) Scan(src any) error {
	var hex string
	switch v := src.(type) {
	case string:
		hex = v
	case []byte:
		hex = string(v)
	default:
		return fmt.Errorf("%w: unexpected id type %T", ErrDecodingColumn, src)
	}

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingColumn, err)
	}

	*c.id = id
	return nil
}

// jsonColumn scans a JSON TEXT column into dst.
type jsonColumn[T any] struct {
	dst *T
}

func (c jsonColumn[T]) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	case nil:
		return nil
	default:
		return fmt.Errorf("%w: unexpected json type %T", ErrDecodingColumn, src)
	}

	if err := json.Unmarshal(raw, c.dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingColumn, err)
	}

	return nil
}

func toJSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return string(raw), nil
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(objectIDColumn{&u.ID}, &u.Login, &u.Nickname, &u.ImageURL, &u.Password, &u.Salt)
	return u, err
}

func scanCreator(row rowScanner) (models.Creator, error) {
	var c models.Creator
	err := row.Scan(objectIDColumn{&c.ID}, &c.Nickname, &c.ImageURL)
	return c, err
}

func scanRecipe(row rowScanner) (models.Recipe, error) {
	var r models.Recipe
	err := row.Scan(
		objectIDColumn{&r.ID},
		objectIDColumn{&r.CreatorID},
		&r.ImageURL,
		&r.Name,
		&r.Description,
		jsonColumn[[]models.Ingredient]{&r.Ingredients},
		jsonColumn[[]models.Step]{&r.Steps},
	)
	if err == nil {
		normalizeRecipe(&r)
	}
	return r, err
}

func scanFavorite(row rowScanner) (models.FavoriteRecord, error) {
	var f models.FavoriteRecord
	err := row.Scan(objectIDColumn{&f.ID}, objectIDColumn{&f.UserID}, objectIDColumn{&f.RecipeID})
	return f, err
}

func scanFollow(row rowScanner) (models.FollowerRecord, error) {
	var f models.FollowerRecord
	err := row.Scan(objectIDColumn{&f.ID}, objectIDColumn{&f.FollowerID}, objectIDColumn{&f.CreatorID})
	return f, err
}

func scanCategory(row rowScanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(objectIDColumn{&c.ID}, &c.Name)
	return c, err
}

func scanFilter(row rowScanner) (models.Filter, error) {
	var f models.Filter
	err := row.Scan(objectIDColumn{&f.ID}, objectIDColumn{&f.CategoryID}, &f.Value)
	return f, err
}

// prefixed qualifies columns with a table alias.
func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
