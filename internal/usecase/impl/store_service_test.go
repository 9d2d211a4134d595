package impl

import (
	"context"
	"testing"

	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/querykey"
	mockRepo "organic/internal/mocks/repository"
	"organic/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoreService(t *testing.T) (usecase.StoreUsecase, *mockRepo.MockStoreRepository, *mockRepo.MockShippingRateRepository) {
	t.Helper()

	storeRepo := mockRepo.NewMockStoreRepository(t)
	rateRepo := mockRepo.NewMockShippingRateRepository(t)
	svc := NewStoreService(StoreServiceParams{
		StoreRepo: storeRepo,
		RateRepo:  rateRepo,
		Cache:     passthroughCache(t),
		Registry:  querykey.NewRegistry(),
		Logger:    testLogger(),
	})

	return svc, storeRepo, rateRepo
}

func TestStoreService_GetStore(t *testing.T) {
	svc, storeRepo, _ := newStoreService(t)
	ctx := context.Background()

	store := &entity.Store{ID: uuid.New(), Name: "Organic"}
	storeRepo.EXPECT().
		FindStore(ctx).
		Return(store, nil)

	got, err := svc.GetStore(ctx)
	require.NoError(t, err)
	assert.Equal(t, store, got)
}

func TestStoreService_GetStore_NotConfigured(t *testing.T) {
	svc, storeRepo, _ := newStoreService(t)
	ctx := context.Background()

	storeRepo.EXPECT().
		FindStore(ctx).
		Return(nil, domainerrors.ErrStoreNotConfigured)

	_, err := svc.GetStore(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotConfigured)
}

func TestStoreService_SaveStore_DefaultsCurrency(t *testing.T) {
	svc, storeRepo, _ := newStoreService(t)
	ctx := context.Background()

	var saved *entity.Store
	storeRepo.EXPECT().
		SaveStore(ctx, mock.AnythingOfType("*entity.Store")).
		Run(func(_ context.Context, store *entity.Store) {
			saved = store
		}).
		Return(nil)

	_, err := svc.SaveStore(ctx, usecase.StoreInput{Name: "Organic"})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "USD", saved.DefaultCurrency)
}

func TestStoreService_SaveStore_NegativeTaxRate(t *testing.T) {
	svc, _, _ := newStoreService(t)

	_, err := svc.SaveStore(context.Background(), usecase.StoreInput{
		Name:    "Organic",
		TaxRate: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStoreService_CreateShippingRate(t *testing.T) {
	svc, _, rateRepo := newStoreService(t)
	ctx := context.Background()

	rateRepo.EXPECT().
		CreateShippingRate(ctx, mock.AnythingOfType("*entity.ShippingRate")).
		Return(nil)

	rate, err := svc.CreateShippingRate(ctx, usecase.ShippingRateInput{
		Location:       "US",
		WeightRangeMin: decimal.Zero,
		WeightRangeMax: decimal.NewFromInt(5),
		Price:          decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "US", rate.Location)
}

func TestStoreService_CreateShippingRate_InvertedWeightRange(t *testing.T) {
	svc, _, _ := newStoreService(t)

	_, err := svc.CreateShippingRate(context.Background(), usecase.ShippingRateInput{
		Location:       "US",
		WeightRangeMin: decimal.NewFromInt(10),
		WeightRangeMax: decimal.NewFromInt(5),
		Price:          decimal.NewFromInt(4),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStoreService_ListShippingRates(t *testing.T) {
	svc, _, rateRepo := newStoreService(t)
	ctx := context.Background()

	rates := []*entity.ShippingRate{{ID: uuid.New(), Location: "US"}}
	rateRepo.EXPECT().
		FindAllShippingRates(ctx).
		Return(rates, nil)

	got, err := svc.ListShippingRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, rates, got)
}

func TestStoreService_DeleteShippingRate(t *testing.T) {
	svc, _, rateRepo := newStoreService(t)
	ctx := context.Background()
	id := uuid.New()

	rateRepo.EXPECT().
		DeleteShippingRate(ctx, id).
		Return(nil)

	err := svc.DeleteShippingRate(ctx, id)
	require.NoError(t, err)
}
