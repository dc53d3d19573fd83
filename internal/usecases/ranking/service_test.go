package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/filtering"
	"go.uber.org/mock/gomock"
)

func TestService_GetTopRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockRestaurantRepo := mocks.NewMockRestaurantRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockRevenueSnapshotRepository(ctrl)

	service := NewService(mockOrderRepo, mockRestaurantRepo, mockSnapshotRepo, 0)
	service.now = func() time.Time {
		return time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)
	}

	orders := []domain.Order{
		order(1, 2, "500", "2025-01-10T10:00:00Z"),
		order(2, 3, "300", "2025-01-10T11:00:00Z"),
		order(3, 4, "100", "2025-01-11T12:00:00Z"),
		order(4, 5, "50", "2025-01-12T13:00:00Z"),
		order(5, 6, "10", "2025-01-12T13:00:00Z"),
	}
	restaurants := []domain.Restaurant{
		{ID: 3, Name: "Cantina", Location: "Curitiba", Cuisine: "Italiana"},
		{ID: 4, Name: "Sushi Bar", Location: "São Paulo", Cuisine: "Japonesa"},
		{ID: 5, Name: "Taqueria", Location: "Recife", Cuisine: "Mexicana"},
		{ID: 6, Name: "Bistrô", Location: "Recife", Cuisine: "Francesa"},
	}

	expectFetch := func() {
		mockOrderRepo.EXPECT().Fetch(gomock.Any(), nil).Return(orders, nil)
		mockRestaurantRepo.EXPECT().All(gomock.Any()).Return(restaurants, nil)
	}

	tests := []struct {
		name     string
		params   TopRevenueParams
		setup    func()
		validate func(t *testing.T, entries []domain.RevenueRankEntry, err error)
	}{
		{
			name:   "Restaurante inexistente é descartado sem reposição",
			params: TopRevenueParams{},
			setup:  expectFetch,
			validate: func(t *testing.T, entries []domain.RevenueRankEntry, err error) {
				require.NoError(t, err)
				require.Len(t, entries, 2)
				assert.Equal(t, int64(3), entries[0].RestaurantID)
				assert.Equal(t, "Cantina", entries[0].Name)
				assert.Equal(t, int64(4), entries[1].RestaurantID)
			},
		},
		{
			name:   "k informado",
			params: TopRevenueParams{K: "5"},
			setup:  expectFetch,
			validate: func(t *testing.T, entries []domain.RevenueRankEntry, err error) {
				require.NoError(t, err)
				assert.Len(t, entries, 4)
			},
		},
		{
			name:   "Período e horas",
			params: TopRevenueParams{StartDate: "2025-01-11", MinHour: "13"},
			setup:  expectFetch,
			validate: func(t *testing.T, entries []domain.RevenueRankEntry, err error) {
				require.NoError(t, err)
				require.Len(t, entries, 2)
				assert.Equal(t, int64(5), entries[0].RestaurantID)
				assert.Equal(t, int64(6), entries[1].RestaurantID)
			},
		},
		{
			name:   "k zero",
			params: TopRevenueParams{K: "0"},
			setup:  func() {},
			validate: func(t *testing.T, entries []domain.RevenueRankEntry, err error) {
				assert.ErrorIs(t, err, ErrInvalidK)
				validationErr, ok := filtering.AsValidation(err)
				require.True(t, ok)
				assert.Equal(t, "k", validationErr.Field)
			},
		},
		{
			name:   "k acima do limite",
			params: TopRevenueParams{K: "101"},
			setup:  func() {},
			validate: func(t *testing.T, entries []domain.RevenueRankEntry, err error) {
				assert.ErrorIs(t, err, ErrInvalidK)
			},
		},
		{
			name:   "k não numérico",
			params: TopRevenueParams{K: "três"},
			setup:  func() {},
			validate: func(t *testing.T, entries []domain.RevenueRankEntry, err error) {
				assert.ErrorIs(t, err, filtering.ErrInvalidParameter)
			},
		},
		{
			name:   "Data inválida",
			params: TopRevenueParams{EndDate: "ontem"},
			setup:  func() {},
			validate: func(t *testing.T, entries []domain.RevenueRankEntry, err error) {
				assert.ErrorIs(t, err, filtering.ErrInvalidDate)
			},
		},
		{
			name:   "Erro ao buscar restaurantes",
			params: TopRevenueParams{},
			setup: func() {
				mockOrderRepo.EXPECT().Fetch(gomock.Any(), nil).Return(orders, nil)
				mockRestaurantRepo.EXPECT().All(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, entries []domain.RevenueRankEntry, err error) {
				require.Error(t, err)
				assert.False(t, filtering.IsValidation(err))
				assert.Nil(t, entries)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			entries, err := service.GetTopRevenue(context.Background(), tt.params)
			tt.validate(t, entries, err)
		})
	}
}

func TestService_GetRevenueSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockRevenueSnapshotRepository(ctrl)
	service := NewService(nil, nil, mockSnapshotRepo, DefaultK)

	t.Run("Snapshot inexistente", func(t *testing.T) {
		mockSnapshotRepo.EXPECT().Latest(gomock.Any()).Return(nil, nil)

		snapshot, err := service.GetRevenueSnapshot(context.Background())
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
		assert.Nil(t, snapshot)
	})

	t.Run("Snapshot salvo", func(t *testing.T) {
		expected := &domain.RevenueRankingSnapshot{ID: "rk_01-2025_abc", Month: "01-2025"}
		mockSnapshotRepo.EXPECT().Latest(gomock.Any()).Return(expected, nil)

		snapshot, err := service.GetRevenueSnapshot(context.Background())
		require.NoError(t, err)
		assert.Equal(t, expected, snapshot)
	})

	t.Run("Erro no Redis", func(t *testing.T) {
		mockSnapshotRepo.EXPECT().Latest(gomock.Any()).Return(nil, errors.New("redis down"))

		_, err := service.GetRevenueSnapshot(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSnapshotNotFound)
	})

	t.Run("Snapshot desabilitado", func(t *testing.T) {
		withoutStore := NewService(nil, nil, nil, DefaultK)

		snapshot, err := withoutStore.GetRevenueSnapshot(context.Background())
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
		assert.Nil(t, snapshot)
	})
}
