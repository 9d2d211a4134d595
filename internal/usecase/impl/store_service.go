package impl

import (
	"context"
	"log/slog"

	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/querykey"
	"organic/internal/domain/repository"
	"organic/internal/domain/service"
	"organic/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type storeService struct {
	storeRepo repository.StoreRepository
	rateRepo  repository.ShippingRateRepository
	cache     service.QueryCache
	registry  *querykey.Registry
	logger    *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	RateRepo  repository.ShippingRateRepository
	Cache     service.QueryCache
	Registry  *querykey.Registry
	Logger    *slog.Logger
}

// NewStoreService creates a new store service instance
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo: params.StoreRepo,
		rateRepo:  params.RateRepo,
		cache:     params.Cache,
		registry:  params.Registry,
		logger:    params.Logger,
	}
}

// GetStore returns the singleton store settings.
func (s *storeService) GetStore(ctx context.Context) (*entity.Store, error) {
	return fetchCached(ctx, s.cache, s.logger, querykey.StoreDetails(), func(ctx context.Context) (*entity.Store, error) {
		return s.storeRepo.FindStore(ctx)
	})
}

// SaveStore creates or replaces the store settings.
func (s *storeService) SaveStore(ctx context.Context, input usecase.StoreInput) (*entity.Store, error) {
	if input.TaxRate.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("tax rate cannot be negative")
	}

	store := &entity.Store{
		Name:            input.Name,
		Logo:            input.Logo,
		Tagline:         input.Tagline,
		Link:            input.Link,
		Description:     input.Description,
		Pages:           input.Pages,
		SocialLinks:     input.SocialLinks,
		FeaturedImages:  input.FeaturedImages,
		ContactEmail:    input.ContactEmail,
		ContactPhone:    input.ContactPhone,
		DefaultCurrency: input.DefaultCurrency,
		TaxRate:         input.TaxRate,
		ShippingPolicy:  input.ShippingPolicy,
		ReturnPolicy:    input.ReturnPolicy,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
	}
	if store.DefaultCurrency == "" {
		store.DefaultCurrency = "USD"
	}

	if err := s.storeRepo.SaveStore(ctx, store); err != nil {
		return nil, err
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceStore)

	return store, nil
}

// ListShippingRates returns all shipping rate bands ordered by weight.
func (s *storeService) ListShippingRates(ctx context.Context) ([]*entity.ShippingRate, error) {
	return fetchCached(ctx, s.cache, s.logger, querykey.ShippingRatesAll(), func(ctx context.Context) ([]*entity.ShippingRate, error) {
		return s.rateRepo.FindAllShippingRates(ctx)
	})
}

// CreateShippingRate adds a rate band.
func (s *storeService) CreateShippingRate(ctx context.Context, input usecase.ShippingRateInput) (*entity.ShippingRate, error) {
	if err := validateShippingRateInput(input); err != nil {
		return nil, err
	}

	rate := &entity.ShippingRate{
		Location:       input.Location,
		WeightRangeMin: input.WeightRangeMin,
		WeightRangeMax: input.WeightRangeMax,
		Price:          input.Price,
	}

	if err := s.rateRepo.CreateShippingRate(ctx, rate); err != nil {
		return nil, err
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceShippingRates)

	return rate, nil
}

// UpdateShippingRate updates a rate band.
func (s *storeService) UpdateShippingRate(ctx context.Context, id uuid.UUID, input usecase.ShippingRateInput) (*entity.ShippingRate, error) {
	if err := validateShippingRateInput(input); err != nil {
		return nil, err
	}

	rate := &entity.ShippingRate{
		ID:             id,
		Location:       input.Location,
		WeightRangeMin: input.WeightRangeMin,
		WeightRangeMax: input.WeightRangeMax,
		Price:          input.Price,
	}

	if err := s.rateRepo.UpdateShippingRate(ctx, rate); err != nil {
		return nil, err
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceShippingRates)

	return rate, nil
}

// DeleteShippingRate removes a rate band.
func (s *storeService) DeleteShippingRate(ctx context.Context, id uuid.UUID) error {
	if err := s.rateRepo.DeleteShippingRate(ctx, id); err != nil {
		return err
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceShippingRates)

	return nil
}

func validateShippingRateInput(input usecase.ShippingRateInput) error {
	switch {
	case input.WeightRangeMin.IsNegative():
		return domainerrors.ErrValidationFailed.WrapMessage("weight range minimum must not be negative")
	case input.WeightRangeMax.LessThan(input.WeightRangeMin):
		return domainerrors.ErrValidationFailed.WrapMessage("weight range maximum must be at least the minimum")
	case input.Price.IsNegative():
		return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	return nil
}
