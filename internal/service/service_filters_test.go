package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/mock"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/store"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTestFiltersSvc(t *testing.T) (FiltersService, *mock.MockFiltersRepository, *mock.MockRecipeRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	filters := mock.NewMockFiltersRepository(ctrl)
	recipes := mock.NewMockRecipeRepository(ctrl)

	return NewFiltersService(filters, recipes, logger.Nop()), filters, recipes
}

func TestFiltersService_AttachFilter(t *testing.T) {
	owner := primitive.NewObjectID()
	recipe := primitive.NewObjectID().Hex()
	filter := primitive.NewObjectID().Hex()

	tests := []struct {
		name    string
		request models.AttachFilterRequest
		expect  func(filters *mock.MockFiltersRepository)
		want    bool
		wantErr error
	}{
		{
			name:    "by id",
			request: models.AttachFilterRequest{FilterID: filter},
			expect: func(filters *mock.MockFiltersRepository) {
				filters.EXPECT().AttachFilter(gomock.Any(), recipe, filter).Return(true, nil)
			},
			want: true,
		},
		{
			name:    "id wins over value",
			request: models.AttachFilterRequest{FilterID: filter, Value: "Italian"},
			expect: func(filters *mock.MockFiltersRepository) {
				filters.EXPECT().AttachFilter(gomock.Any(), recipe, filter).Return(false, nil)
			},
		},
		{
			name:    "by value",
			request: models.AttachFilterRequest{Value: "italian"},
			expect: func(filters *mock.MockFiltersRepository) {
				filters.EXPECT().AttachFilterByValue(gomock.Any(), recipe, "italian").Return(true, nil)
			},
			want: true,
		},
		{
			name:    "unknown value",
			request: models.AttachFilterRequest{Value: "Martian"},
			expect: func(filters *mock.MockFiltersRepository) {
				filters.EXPECT().AttachFilterByValue(gomock.Any(), recipe, "Martian").Return(false, store.ErrFilterNotFound)
			},
			wantErr: store.ErrFilterNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, filters, recipes := newTestFiltersSvc(t)
			recipes.EXPECT().IsRecipeOwner(gomock.Any(), recipe, owner.Hex()).Return(true, nil)
			tt.expect(filters)

			got, err := svc.AttachFilter(context.Background(), owner, recipe, tt.request)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFiltersService_AttachFilter_EmptyRequest(t *testing.T) {
	svc, _, _ := newTestFiltersSvc(t)

	_, err := svc.AttachFilter(context.Background(), primitive.NewObjectID(), "recipe", models.AttachFilterRequest{})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestFiltersService_OwnerChecks(t *testing.T) {
	someone := primitive.NewObjectID()
	recipe := primitive.NewObjectID().Hex()

	calls := map[string]func(FiltersService) error{
		"detach": func(svc FiltersService) error {
			_, err := svc.DetachFilter(context.Background(), someone, recipe, primitive.NewObjectID().Hex())
			return err
		},
		"detach by value": func(svc FiltersService) error {
			_, err := svc.DetachFilterByValue(context.Background(), someone, recipe, "Italian")
			return err
		},
		"clear": func(svc FiltersService) error {
			_, err := svc.ClearRecipeFilters(context.Background(), someone, recipe)
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			svc, _, recipes := newTestFiltersSvc(t)
			recipes.EXPECT().IsRecipeOwner(gomock.Any(), recipe, someone.Hex()).Return(false, nil)
			recipes.EXPECT().GetRecipeByID(gomock.Any(), recipe).Return(&models.Recipe{}, nil)

			require.ErrorIs(t, call(svc), ErrNotRecipeOwner)
		})
	}
}

func TestFiltersService_SeedDefaults(t *testing.T) {
	svc, filters, _ := newTestFiltersSvc(t)
	cuisine := models.Category{ID: primitive.NewObjectID(), Name: "Cuisine"}

	filters.EXPECT().GetCategories(gomock.Any()).Return([]models.Category{cuisine}, nil)

	var categories []string
	filters.EXPECT().InsertCategory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Category) (bool, error) {
			categories = append(categories, c.Name)
			return true, nil
		},
	).Times(2)

	values := map[string]primitive.ObjectID{}
	filters.EXPECT().InsertFilter(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.Filter) (bool, error) {
			values[f.Value] = f.CategoryID
			return f.Value != "Italian", nil
		},
	).Times(15)

	require.NoError(t, svc.SeedDefaults(context.Background()))
	assert.Equal(t, []string{"Meal type", "Diet"}, categories)
	assert.Equal(t, cuisine.ID, values["Italian"], "existing category is reused")
	assert.Contains(t, values, "Keto")
}

func TestFiltersService_SeedDefaults_CategoryInsertedConcurrently(t *testing.T) {
	svc, filters, _ := newTestFiltersSvc(t)
	cuisine := models.Category{ID: primitive.NewObjectID(), Name: "Cuisine"}
	mealType := models.Category{ID: primitive.NewObjectID(), Name: "Meal type"}
	diet := models.Category{ID: primitive.NewObjectID(), Name: "Diet"}

	gomock.InOrder(
		filters.EXPECT().GetCategories(gomock.Any()).Return(nil, nil),
		filters.EXPECT().InsertCategory(gomock.Any(), gomock.Any()).Return(false, nil),
		filters.EXPECT().GetCategories(gomock.Any()).Return([]models.Category{cuisine}, nil),
	)
	filters.EXPECT().InsertCategory(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	filters.EXPECT().GetCategories(gomock.Any()).Return([]models.Category{cuisine, mealType, diet}, nil).Times(2)

	byCategory := map[primitive.ObjectID]int{}
	filters.EXPECT().InsertFilter(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.Filter) (bool, error) {
			byCategory[f.CategoryID]++
			return true, nil
		},
	).Times(15)

	require.NoError(t, svc.SeedDefaults(context.Background()))
	assert.Equal(t, map[primitive.ObjectID]int{cuisine.ID: 6, mealType.ID: 5, diet.ID: 4}, byCategory,
		"filters land under the stored categories")
}

func TestFiltersService_SeedDefaults_RefusedCategoryMissing(t *testing.T) {
	svc, filters, _ := newTestFiltersSvc(t)

	filters.EXPECT().GetCategories(gomock.Any()).Return(nil, nil).Times(2)
	filters.EXPECT().InsertCategory(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.SeedDefaults(context.Background())
	require.ErrorIs(t, err, ErrCategoryNotSeeded)
}

func TestFiltersService_SeedDefaults_StoreError(t *testing.T) {
	svc, filters, _ := newTestFiltersSvc(t)
	storeErr := errors.New("boom")
	filters.EXPECT().GetCategories(gomock.Any()).Return(nil, storeErr)

	require.ErrorIs(t, svc.SeedDefaults(context.Background()), storeErr)
}
