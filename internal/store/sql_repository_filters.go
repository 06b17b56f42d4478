package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// sqlFiltersRepository is the SQL implementation of [FiltersRepository].
type sqlFiltersRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLFiltersRepository constructs a [FiltersRepository] backed by db.
func NewSQLFiltersRepository(db *DB, logger *logger.Logger) FiltersRepository {
	logger.Debug().Msg("creating sql filters repository")
	return &sqlFiltersRepository{db: db, logger: logger}
}

func (r *sqlFiltersRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	query := r.db.builder.Select(categoryColumns...).From(categoriesTable).OrderBy("id")

	categories, err := selectAll(ctx, r.db, query, scanCategory)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlFiltersRepository.GetCategories").Msg("error selecting categories")
		return nil, err
	}

	return categories, nil
}

func (r *sqlFiltersRepository) selectFilters() sq.SelectBuilder {
	return r.db.builder.Select(filterColumns...).From(filtersTable).OrderBy("id")
}

func (r *sqlFiltersRepository) GetFiltersByCategory(ctx context.Context, categoryID string) ([]models.Filter, error) {
	cid, ok := objectID(categoryID)
	if !ok {
		return []models.Filter{}, nil
	}

	filters, err := selectAll(ctx, r.db, r.selectFilters().Where(sq.Eq{"category_id": cid.Hex()}), scanFilter)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sqlFiltersRepository.GetFiltersByCategory").
			Str("category_id", categoryID).
			Msg("error selecting filters")
		return nil, err
	}

	return filters, nil
}

func (r *sqlFiltersRepository) GetCategorizedFilters(ctx context.Context) (models.CategorizedFilters, error) {
	categories, err := r.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	filters, err := selectAll(ctx, r.db, r.selectFilters(), scanFilter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlFiltersRepository.GetCategorizedFilters").Msg("error selecting filters")
		return nil, err
	}

	return groupFilters(categories, filters), nil
}

func (r *sqlFiltersRepository) GetFiltersByRecipe(ctx context.Context, recipeID string) ([]models.Filter, error) {
	rid, ok := objectID(recipeID)
	if !ok {
		return []models.Filter{}, nil
	}

	query := r.db.builder.Select(prefixed("f", filterColumns)...).
		From(recipeFiltersTable + " rf").
		Join(filtersTable + " f ON f.id = rf.filter_id").
		Where(sq.Eq{"rf.recipe_id": rid.Hex()}).
		OrderBy("rf.id")

	filters, err := selectAll(ctx, r.db, query, scanFilter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlFiltersRepository.GetFiltersByRecipe").Str("recipe_id", recipeID).Msg("error selecting filters")
		return nil, err
	}

	return filters, nil
}

func (r *sqlFiltersRepository) AttachFilter(ctx context.Context, recipeID, filterID string) (bool, error) {
	log := logger.FromContext(ctx)

	rid, ok := objectID(recipeID)
	if !ok {
		return false, ErrRecipeNotFound
	}

	found, err := r.db.exists(ctx, recipesTable, sq.Eq{"id": rid.Hex()})
	if err != nil {
		log.Err(err).Str("func", "*sqlFiltersRepository.AttachFilter").Msg("error checking recipe")
		return false, err
	}
	if !found {
		return false, ErrRecipeNotFound
	}

	fid, ok := objectID(filterID)
	if !ok {
		return false, ErrFilterNotFound
	}

	filter, err := selectOne(ctx, r.db, r.selectFilters().Where(sq.Eq{"id": fid.Hex()}), scanFilter)
	if err != nil {
		log.Err(err).Str("func", "*sqlFiltersRepository.AttachFilter").Msg("error selecting filter")
		return false, err
	}
	if filter == nil {
		return false, ErrFilterNotFound
	}

	return r.attach(ctx, rid, *filter)
}

func (r *sqlFiltersRepository) attach(ctx context.Context, recipeID primitive.ObjectID, filter models.Filter) (bool, error) {
	log := logger.FromContext(ctx)

	attached, err := r.db.exists(ctx, recipeFiltersTable, sq.Eq{"recipe_id": recipeID.Hex(), "filter_id": filter.ID.Hex()})
	if err != nil {
		log.Err(err).Str("func", "*sqlFiltersRepository.attach").Msg("error checking association")
		return false, err
	}
	if attached {
		return false, nil
	}

	taken, err := r.db.exists(ctx, recipeFiltersTable, sq.Eq{"recipe_id": recipeID.Hex(), "category_id": filter.CategoryID.Hex()})
	if err != nil {
		log.Err(err).Str("func", "*sqlFiltersRepository.attach").Msg("error checking category")
		return false, err
	}
	if taken {
		return false, nil
	}

	insert := r.db.builder.Insert(recipeFiltersTable).
		Columns("id", "recipe_id", "filter_id", "category_id").
		Values(primitive.NewObjectID().Hex(), recipeID.Hex(), filter.ID.Hex(), filter.CategoryID.Hex())

	inserted, err := r.db.insertIfAbsent(ctx, insert)
	if err != nil {
		log.Err(err).Str("func", "*sqlFiltersRepository.attach").Msg("error inserting association")
		return false, err
	}

	return inserted, nil
}

func (r *sqlFiltersRepository) AttachFilterByValue(ctx context.Context, recipeID, value string) (bool, error) {
	filter, err := r.filterByValue(ctx, value)
	if err != nil {
		return false, err
	}

	return r.AttachFilter(ctx, recipeID, filter.ID.Hex())
}

func (r *sqlFiltersRepository) DetachFilter(ctx context.Context, recipeID, filterID string) (bool, error) {
	rid, fid, ok := objectIDPair(recipeID, filterID)
	if !ok {
		return false, nil
	}

	query := r.db.builder.Delete(recipeFiltersTable).Where(sq.Eq{"recipe_id": rid.Hex(), "filter_id": fid.Hex()})

	affected, err := r.db.execAffected(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlFiltersRepository.DetachFilter").Msg("error deleting association")
		return false, err
	}

	return affected > 0, nil
}

func (r *sqlFiltersRepository) DetachFilterByValue(ctx context.Context, recipeID, value string) (bool, error) {
	filter, err := r.filterByValue(ctx, value)
	if err != nil {
		return false, err
	}

	return r.DetachFilter(ctx, recipeID, filter.ID.Hex())
}

// filterByValue resolves a filter by its value, ignoring case. The lowest id
// wins when several categories share the value.
func (r *sqlFiltersRepository) filterByValue(ctx context.Context, value string) (*models.Filter, error) {
	query := r.selectFilters().Where(r.db.equalFold("value", value))

	filter, err := selectOne(ctx, r.db, query, scanFilter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlFiltersRepository.filterByValue").Str("value", value).Msg("error selecting filter")
		return nil, err
	}
	if filter == nil {
		return nil, ErrFilterNotFound
	}

	return filter, nil
}

// ClearRecipeFilters returns false only when no association exists at all.
func (r *sqlFiltersRepository) ClearRecipeFilters(ctx context.Context, recipeID string) (bool, error) {
	log := logger.FromContext(ctx)

	rid, ok := objectID(recipeID)
	if !ok {
		return false, nil
	}

	populated, err := r.db.exists(ctx, recipeFiltersTable, nil)
	if err != nil {
		log.Err(err).Str("func", "*sqlFiltersRepository.ClearRecipeFilters").Msg("error counting associations")
		return false, err
	}
	if !populated {
		return false, nil
	}

	if _, err = r.db.execAffected(ctx, r.db.builder.Delete(recipeFiltersTable).Where(sq.Eq{"recipe_id": rid.Hex()})); err != nil {
		log.Err(err).Str("func", "*sqlFiltersRepository.ClearRecipeFilters").Str("recipe_id", recipeID).Msg("error deleting associations")
		return false, err
	}

	return true, nil
}

func (r *sqlFiltersRepository) InsertCategory(ctx context.Context, category models.Category) (bool, error) {
	log := logger.FromContext(ctx)

	found, err := r.db.exists(ctx, categoriesTable, sq.Eq{"name": category.Name})
	if err != nil {
		log.Err(err).Str("func", "*sqlFiltersRepository.InsertCategory").Msg("error checking category")
		return false, err
	}
	if found {
		return false, nil
	}

	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}

	insert := r.db.builder.Insert(categoriesTable).Columns(categoryColumns...).Values(category.ID.Hex(), category.Name)

	inserted, err := r.db.insertIfAbsent(ctx, insert)
	if err != nil {
		log.Err(err).Str("func", "*sqlFiltersRepository.InsertCategory").Msg("error inserting category")
		return false, err
	}

	return inserted, nil
}

func (r *sqlFiltersRepository) InsertFilter(ctx context.Context, filter models.Filter) (bool, error) {
	log := logger.FromContext(ctx)

	found, err := r.db.exists(ctx, filtersTable, sq.Eq{"category_id": filter.CategoryID.Hex(), "value": filter.Value})
	if err != nil {
		log.Err(err).Str("func", "*sqlFiltersRepository.InsertFilter").Msg("error checking filter")
		return false, err
	}
	if found {
		return false, nil
	}

	if filter.ID.IsZero() {
		filter.ID = primitive.NewObjectID()
	}

	insert := r.db.builder.Insert(filtersTable).
		Columns(filterColumns...).
		Values(filter.ID.Hex(), filter.CategoryID.Hex(), filter.Value)

	inserted, err := r.db.insertIfAbsent(ctx, insert)
	if err != nil {
		log.Err(err).Str("func", "*sqlFiltersRepository.InsertFilter").Msg("error inserting filter")
		return false, err
	}

	return inserted, nil
}
