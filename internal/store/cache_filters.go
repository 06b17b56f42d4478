package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"github.com/redis/go-redis/v9"
)

const (
	categorizedFiltersKey = "recipes:filters:categorized"
	redisConnectTimeout   = 5 * time.Second
)

// NewConnectRedis creates a redis client for cfg and checks it with a PING.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	log.Info().Str("func", "NewConnectRedis").Str("address", cfg.Address).Msg("connected to redis successfully")

	return client, nil
}

// cachedFiltersRepository serves GetCategorizedFilters from redis and
// forwards everything else. Categories and filters only change through
// InsertCategory and InsertFilter, which drop the cached map.
type cachedFiltersRepository struct {
	FiltersRepository

	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewCachedFiltersRepository wraps next with a read-through cache of the
// categorized filter map.
func NewCachedFiltersRepository(next FiltersRepository, client *redis.Client, ttl time.Duration, logger *logger.Logger) FiltersRepository {
	logger.Debug().Dur("ttl", ttl).Msg("creating cached filters repository")
	return &cachedFiltersRepository{
		FiltersRepository: next,
		client:            client,
		ttl:               ttl,
		logger:            logger,
	}
}

// GetCategorizedFilters falls back to the wrapped repository when redis is
// unavailable.
func (r *cachedFiltersRepository) GetCategorizedFilters(ctx context.Context) (models.CategorizedFilters, error) {
	log := logger.FromContext(ctx)

	raw, err := r.client.Get(ctx, categorizedFiltersKey).Bytes()
	switch {
	case err == nil:
		var cached models.CategorizedFilters
		if err = json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		log.Warn().Err(err).Str("func", "*cachedFiltersRepository.GetCategorizedFilters").Msg("dropping undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("func", "*cachedFiltersRepository.GetCategorizedFilters").Msg("cache read failed")
	}

	filters, err := r.FiltersRepository.GetCategorizedFilters(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(filters)
	if err != nil {
		return filters, nil
	}
	if err = r.client.Set(ctx, categorizedFiltersKey, payload, r.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("func", "*cachedFiltersRepository.GetCategorizedFilters").Msg("cache write failed")
	}

	return filters, nil
}

func (r *cachedFiltersRepository) InsertCategory(ctx context.Context, category models.Category) (bool, error) {
	inserted, err := r.FiltersRepository.InsertCategory(ctx, category)
	if inserted {
		r.invalidate(ctx)
	}
	return inserted, err
}

func (r *cachedFiltersRepository) InsertFilter(ctx context.Context, filter models.Filter) (bool, error) {
	inserted, err := r.FiltersRepository.InsertFilter(ctx, filter)
	if inserted {
		r.invalidate(ctx)
	}
	return inserted, err
}

func (r *cachedFiltersRepository) invalidate(ctx context.Context) {
	if err := r.client.Del(ctx, categorizedFiltersKey).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*cachedFiltersRepository.invalidate").Msg("cache invalidation failed")
	}
}
