package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
)

// Storages groups every repository of the data-access layer into a single
// value handed to the service layer. All repositories share one database
// connection, selected by [config.Storage.Driver].
type Storages struct {
	Users     UserRepository
	Recipes   RecipeRepository
	Favorites FavoritesRepository
	Followers FollowersRepository
	Filters   FiltersRepository

	closers []func(context.Context) error
}

// NewStorages connects to the configured backend and prepares its schema:
//  1. "mongo" creates the unique indexes,
//  2. "postgres" and "sqlite" run the embedded migrations.
//
// When cfg.Redis.Address is set, categorized filters are served through a
// redis cache.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		storages *Storages
		err      error
	)

	switch cfg.Driver {
	case config.DriverMongo:
		storages, err = newMongoStorages(ctx, cfg.Mongo, logger)
	case config.DriverPostgres:
		storages, err = newSQLStorages(ctx, cfg.DB, logger, NewConnectPostgres)
	case config.DriverSQLite:
		storages, err = newSQLStorages(ctx, cfg.DB, logger, NewConnectSQLite)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Redis.Address != "" {
		client, err := NewConnectRedis(ctx, cfg.Redis, logger)
		if err != nil {
			_ = storages.Close(ctx)
			return nil, err
		}
		storages.Filters = NewCachedFiltersRepository(storages.Filters, client, cfg.Redis.TTL, logger)
		storages.closers = append(storages.closers, func(context.Context) error { return client.Close() })
	}

	return storages, nil
}

func newMongoStorages(ctx context.Context, cfg config.Mongo, logger *logger.Logger) (*Storages, error) {
	conn, err := NewConnectMongo(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err = conn.EnsureIndexes(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, err
	}

	db := conn.Database()
	return &Storages{
		Users:     NewUserRepository(db, logger),
		Recipes:   NewRecipeRepository(db, logger),
		Favorites: NewFavoritesRepository(db, logger),
		Followers: NewFollowersRepository(db, logger),
		Filters:   NewFiltersRepository(db, logger),
		closers:   []func(context.Context) error{conn.Close},
	}, nil
}

type sqlConnector func(context.Context, config.DB, *logger.Logger) (*DB, error)

func newSQLStorages(ctx context.Context, cfg config.DB, logger *logger.Logger, connect sqlConnector) (*Storages, error) {
	db, err := connect(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Users:     NewSQLUserRepository(db, logger),
		Recipes:   NewSQLRecipeRepository(db, logger),
		Favorites: NewSQLFavoritesRepository(db, logger),
		Followers: NewSQLFollowersRepository(db, logger),
		Filters:   NewSQLFiltersRepository(db, logger),
		closers:   []func(context.Context) error{func(context.Context) error { return db.Close() }},
	}, nil
}

// Close releases every connection held by the storages.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
