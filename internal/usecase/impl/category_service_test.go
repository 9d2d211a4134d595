package impl

import (
	"context"
	"strconv"
	"testing"

	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/querykey"
	"organic/internal/domain/repository"
	mockRepo "organic/internal/mocks/repository"
	"organic/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryService(t *testing.T) (usecase.CategoryUsecase, *mockRepo.MockCategoryRepository, *mockRepo.MockProductRepository) {
	t.Helper()

	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		ProductRepo:  productRepo,
		Cache:        passthroughCache(t),
		Registry:     querykey.NewRegistry(),
		Config:       testConfig(),
		Logger:       testLogger(),
	})

	return svc, categoryRepo, productRepo
}

func TestCategoryService_GetCategoryTree(t *testing.T) {
	svc, categoryRepo, _ := newCategoryService(t)
	ctx := context.Background()

	seedsID := uuid.New()
	toolsID := uuid.New()
	categories := []*entity.Category{
		{ID: seedsID, Name: "Seeds", Slug: "seeds"},
		{ID: toolsID, Name: "Tools", Slug: "tools"},
		{ID: uuid.New(), Name: "Herb Seeds", Slug: "herb-seeds", ParentCategoryID: &seedsID},
		{ID: uuid.New(), Name: "Vegetable Seeds", Slug: "vegetable-seeds", ParentCategoryID: &seedsID},
	}
	categoryRepo.EXPECT().
		FindAllCategories(ctx).
		Return(categories, nil)

	tree, err := svc.GetCategoryTree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	assert.Equal(t, "Seeds", tree[0].Category.Name)
	assert.Len(t, tree[0].Subcategories, 2)
	assert.Equal(t, "Tools", tree[1].Category.Name)
	assert.Empty(t, tree[1].Subcategories)
}

func TestCategoryService_CreateCategory_TopLevel(t *testing.T) {
	svc, categoryRepo, _ := newCategoryService(t)
	ctx := context.Background()

	categoryRepo.EXPECT().
		CreateCategory(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)

	category, err := svc.CreateCategory(ctx, usecase.CategoryInput{Name: "Seeds", Slug: "seeds"})
	require.NoError(t, err)
	assert.Equal(t, "seeds", category.Slug)
}

func TestCategoryService_CreateCategory_UnderTopLevelParent(t *testing.T) {
	svc, categoryRepo, _ := newCategoryService(t)
	ctx := context.Background()
	parentID := uuid.New()

	categoryRepo.EXPECT().
		FindCategoryByID(ctx, parentID).
		Return(&entity.Category{ID: parentID, Name: "Seeds"}, nil)
	categoryRepo.EXPECT().
		CreateCategory(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)

	_, err := svc.CreateCategory(ctx, usecase.CategoryInput{
		Name:             "Herb Seeds",
		Slug:             "herb-seeds",
		ParentCategoryID: &parentID,
	})
	require.NoError(t, err)
}

func TestCategoryService_CreateCategory_RejectsThirdLevel(t *testing.T) {
	svc, categoryRepo, _ := newCategoryService(t)
	ctx := context.Background()
	grandparentID := uuid.New()
	parentID := uuid.New()

	categoryRepo.EXPECT().
		FindCategoryByID(ctx, parentID).
		Return(&entity.Category{ID: parentID, ParentCategoryID: &grandparentID}, nil)

	_, err := svc.CreateCategory(ctx, usecase.CategoryInput{
		Name:             "Basil Seeds",
		Slug:             "basil-seeds",
		ParentCategoryID: &parentID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryDepth)
}

func TestCategoryService_UpdateCategory_SelfParent(t *testing.T) {
	svc, _, _ := newCategoryService(t)
	id := uuid.New()

	_, err := svc.UpdateCategory(context.Background(), id, usecase.CategoryInput{
		Name:             "Seeds",
		ParentCategoryID: &id,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCategoryService_DeleteCategory_BlockedByProducts(t *testing.T) {
	svc, _, productRepo := newCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().
		CountProductsByCategory(ctx, id).
		Return(int64(3), nil)

	err := svc.DeleteCategory(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestCategoryService_DeleteCategory_BlockedBySubcategories(t *testing.T) {
	svc, categoryRepo, productRepo := newCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().
		CountProductsByCategory(ctx, id).
		Return(int64(0), nil)
	categoryRepo.EXPECT().
		FindSubcategories(ctx, id).
		Return([]*entity.Category{{ID: uuid.New(), ParentCategoryID: &id}}, nil)

	err := svc.DeleteCategory(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestCategoryService_DeleteCategory_Empty(t *testing.T) {
	svc, categoryRepo, productRepo := newCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().
		CountProductsByCategory(ctx, id).
		Return(int64(0), nil)
	categoryRepo.EXPECT().
		FindSubcategories(ctx, id).
		Return([]*entity.Category{}, nil)
	categoryRepo.EXPECT().
		DeleteCategory(ctx, id).
		Return(nil)

	err := svc.DeleteCategory(ctx, id)
	require.NoError(t, err)
}

func TestCategoryService_GetCategoryBySlug(t *testing.T) {
	svc, categoryRepo, _ := newCategoryService(t)
	ctx := context.Background()

	category := &entity.Category{ID: uuid.New(), Slug: "seeds"}
	categoryRepo.EXPECT().
		FindCategoryBySlug(ctx, "seeds").
		Return(category, nil)

	got, err := svc.GetCategoryBySlug(ctx, "seeds")
	require.NoError(t, err)
	assert.Equal(t, category, got)
}

func TestCategoryService_ListCategories_PagesCacheIndependently(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	svc := NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		ProductRepo:  mockRepo.NewMockProductRepository(t),
		Cache:        newMemoryCache(),
		Registry:     querykey.NewRegistry(),
		Config:       testConfig(),
		Logger:       testLogger(),
	})
	ctx := context.Background()

	categoryRepo.EXPECT().
		ListCategories(ctx, mock.AnythingOfType("repository.ListQuery")).
		RunAndReturn(func(_ context.Context, query repository.ListQuery) (repository.PageResult[*entity.Category], error) {
			items := []*entity.Category{{Name: "Page " + strconv.Itoa(query.Page)}}

			return repository.NewPageResult(items, 25, query), nil
		}).
		Twice()

	pageOne, err := svc.ListCategories(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, pageOne.CurrentPage)
	assert.Equal(t, "Page 1", pageOne.Items[0].Name)

	pageTwo, err := svc.ListCategories(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, pageTwo.CurrentPage)
	assert.Equal(t, "Page 2", pageTwo.Items[0].Name)

	// A repeat of page one comes from the cache, not a third repository call.
	pageOneAgain, err := svc.ListCategories(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "Page 1", pageOneAgain.Items[0].Name)
}
