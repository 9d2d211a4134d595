package impl

import (
	"context"
	"log/slog"

	"organic/config"
	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/querykey"
	"organic/internal/domain/repository"
	"organic/internal/domain/service"
	"organic/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	cache        service.QueryCache
	registry     *querykey.Registry
	config       *config.Config
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Cache        service.QueryCache
	Registry     *querykey.Registry
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCategoryService creates a new category service instance
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		cache:        params.Cache,
		registry:     params.Registry,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// GetCategoryTree returns the top-level categories with their subcategories.
func (s *categoryService) GetCategoryTree(ctx context.Context) ([]*entity.CategoryTree, error) {
	return fetchCached(ctx, s.cache, s.logger, querykey.CategoriesTree(), func(ctx context.Context) ([]*entity.CategoryTree, error) {
		categories, err := s.categoryRepo.FindAllCategories(ctx)
		if err != nil {
			return nil, err
		}

		return buildCategoryTree(categories), nil
	})
}

// ListCategories returns one page of categories for the admin console.
func (s *categoryService) ListCategories(ctx context.Context, page, perPage int) (repository.PageResult[*entity.Category], error) {
	query := repository.ListQuery{
		Page:    clampPage(page),
		PerPage: clampPerPage(perPage, s.config),
		Sorts:   []repository.Sort{{Field: "name"}},
	}

	key := querykey.CategoriesList(query.Page, query.PerPage, query.Fingerprint())

	return fetchCached(ctx, s.cache, s.logger, key, func(ctx context.Context) (repository.PageResult[*entity.Category], error) {
		return s.categoryRepo.ListCategories(ctx, query)
	})
}

// GetCategoryBySlug retrieves a single category.
func (s *categoryService) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return fetchCached(ctx, s.cache, s.logger, querykey.CategoryDetails(slug), func(ctx context.Context) (*entity.Category, error) {
		return s.categoryRepo.FindCategoryBySlug(ctx, slug)
	})
}

// CreateCategory creates a category. Nesting beyond one level is rejected.
func (s *categoryService) CreateCategory(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	if err := s.checkDepth(ctx, input.ParentCategoryID); err != nil {
		return nil, err
	}

	category := categoryFromInput(input)
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceCategories)

	return category, nil
}

// UpdateCategory updates a category.
func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input usecase.CategoryInput) (*entity.Category, error) {
	if input.ParentCategoryID != nil && *input.ParentCategoryID == id {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("a category cannot be its own parent")
	}
	if err := s.checkDepth(ctx, input.ParentCategoryID); err != nil {
		return nil, err
	}

	category := categoryFromInput(input)
	category.ID = id
	if err := s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceCategories)

	return s.categoryRepo.FindCategoryByID(ctx, id)
}

// DeleteCategory removes an empty category.
func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	productCount, err := s.productRepo.CountProductsByCategory(ctx, id)
	if err != nil {
		return err
	}
	if productCount > 0 {
		return domainerrors.ErrConflict.WrapMessage("category still has products")
	}

	subcategories, err := s.categoryRepo.FindSubcategories(ctx, id)
	if err != nil {
		return err
	}
	if len(subcategories) > 0 {
		return domainerrors.ErrConflict.WrapMessage("category still has subcategories")
	}

	if err := s.categoryRepo.DeleteCategory(ctx, id); err != nil {
		return err
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceCategories)

	return nil
}

// checkDepth enforces the two-level category tree: a parent must itself be
// a top-level category.
func (s *categoryService) checkDepth(ctx context.Context, parentID *uuid.UUID) error {
	if parentID == nil {
		return nil
	}

	parent, err := s.categoryRepo.FindCategoryByID(ctx, *parentID)
	if err != nil {
		return err
	}
	if parent.ParentCategoryID != nil {
		return domainerrors.ErrCategoryDepth
	}

	return nil
}

func buildCategoryTree(categories []*entity.Category) []*entity.CategoryTree {
	childrenByParent := make(map[uuid.UUID][]*entity.Category)
	var roots []*entity.Category
	for _, category := range categories {
		if category.ParentCategoryID == nil {
			roots = append(roots, category)

			continue
		}
		childrenByParent[*category.ParentCategoryID] = append(childrenByParent[*category.ParentCategoryID], category)
	}

	tree := make([]*entity.CategoryTree, 0, len(roots))
	for _, root := range roots {
		tree = append(tree, &entity.CategoryTree{
			Category:      *root,
			Subcategories: childrenByParent[root.ID],
		})
	}

	return tree
}

func categoryFromInput(input usecase.CategoryInput) *entity.Category {
	return &entity.Category{
		Name:             input.Name,
		Slug:             input.Slug,
		Description:      input.Description,
		ParentCategoryID: input.ParentCategoryID,
		ImageURL:         input.ImageURL,
		MetaTitle:        input.MetaTitle,
		MetaDescription:  input.MetaDescription,
	}
}
