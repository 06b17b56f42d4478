package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names inside the configured database, owned by the models.
var (
	usersCollection         = models.User{}.TableName()
	recipesCollection       = models.Recipe{}.TableName()
	favoritesCollection     = models.FavoriteRecord{}.TableName()
	followsCollection       = models.FollowerRecord{}.TableName()
	categoriesCollection    = models.Category{}.TableName()
	filtersCollection       = models.Filter{}.TableName()
	recipeFiltersCollection = models.RecipeFilter{}.TableName()
)

const mongoConnectTimeout = 10 * time.Second

// MongoDB is the shared, long-lived handle used by every Mongo repository.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to cfg.URI, pings the primary and returns a handle
// to cfg.Database.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during mongo connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Database).Msg("connected to mongo successfully")

	return &MongoDB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   log,
	}, nil
}

// Database returns the handle repositories are built from.
func (m *MongoDB) Database() *mongo.Database {
	return m.database
}

// Close disconnects the underlying client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique indexes backing the add-if-absent
// operations. It is idempotent.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	return ensureMongoIndexes(ctx, m.database)
}

func ensureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(keys bson.D) mongo.IndexModel {
		return mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
	}

	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			unique(bson.D{{Key: "login", Value: 1}}),
		},
		recipesCollection: {
			{Keys: bson.D{{Key: "creator_id", Value: 1}}},
		},
		favoritesCollection: {
			unique(bson.D{{Key: "user_id", Value: 1}, {Key: "recipe_id", Value: 1}}),
		},
		followsCollection: {
			unique(bson.D{{Key: "follower_id", Value: 1}, {Key: "creator_id", Value: 1}}),
			{Keys: bson.D{{Key: "creator_id", Value: 1}}},
		},
		categoriesCollection: {
			unique(bson.D{{Key: "name", Value: 1}}),
		},
		filtersCollection: {
			unique(bson.D{{Key: "category_id", Value: 1}, {Key: "value", Value: 1}}),
		},
		recipeFiltersCollection: {
			unique(bson.D{{Key: "recipe_id", Value: 1}, {Key: "filter_id", Value: 1}}),
			unique(bson.D{{Key: "recipe_id", Value: 1}, {Key: "category_id", Value: 1}}),
		},
	}

	for name, idx := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("%w on %s: %w", ErrCreatingIndexes, name, err)
		}
	}

	return nil
}

// objectID parses a hex id. ok is false for anything that is not a
// 24-character hex string.
func objectID(hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// findAll runs filter against coll and decodes every document into T.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	results := make([]T, 0)
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}

// findOne decodes the first match into T, or returns nil when nothing matches.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOneOptions) (*T, error) {
	var result T
	err := coll.FindOne(ctx, filter, opts...).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// exists reports whether at least one document matches filter.
func exists(ctx context.Context, coll *mongo.Collection, filter any) (bool, error) {
	count, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// insertIfAbsent inserts doc and folds a duplicate-key error into false.
func insertIfAbsent(ctx context.Context, coll *mongo.Collection, doc any) (bool, error) {
	_, err := coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// deleteOne reports whether a document matching filter was deleted.
func deleteOne(ctx context.Context, coll *mongo.Collection, filter any) (bool, error) {
	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}

	return res.DeletedCount > 0, nil
}
