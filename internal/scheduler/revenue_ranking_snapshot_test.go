package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/ranking"
	"go.uber.org/mock/gomock"
)

func order(id, restaurantID int64, amount string, at time.Time) domain.Order {
	return domain.Order{
		ID:           id,
		RestaurantID: restaurantID,
		Amount:       decimal.RequireFromString(amount),
		Time:         at,
	}
}

func rankingItem(restaurantID int64, position int) domain.RevenueRankingItem {
	return domain.RevenueRankingItem{
		RevenueRankEntry: domain.RevenueRankEntry{RestaurantID: restaurantID},
		Position:         position,
	}
}

type snapshotFixture struct {
	service        *RevenueRankingSnapshotService
	orderRepo      *mocks.MockOrderRepository
	restaurantRepo *mocks.MockRestaurantRepository
	snapshotRepo   *mocks.MockRevenueSnapshotRepository
}

func newSnapshotFixture(t *testing.T) snapshotFixture {
	ctrl := gomock.NewController(t)

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	restaurantRepo := mocks.NewMockRestaurantRepository(ctrl)
	snapshotRepo := mocks.NewMockRevenueSnapshotRepository(ctrl)

	service := &RevenueRankingSnapshotService{
		ranker:       ranking.NewService(orderRepo, restaurantRepo, snapshotRepo, ranking.DefaultK),
		snapshotRepo: snapshotRepo,
		config:       RevenueSnapshotConfig{CronSchedule: "0 6 * * *", SyncEnabled: true, TopK: 10},
		now: func() time.Time {
			return time.Date(2024, 1, 16, 6, 0, 0, 0, time.UTC)
		},
	}

	return snapshotFixture{
		service:        service,
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
		snapshotRepo:   snapshotRepo,
	}
}

func TestRevenueRankingSnapshotService_processSnapshotWithDate(t *testing.T) {
	// Data de referência: 16 de janeiro, o snapshot cobre de 1 a 15 de janeiro
	processingDate := time.Date(2024, 1, 16, 6, 0, 0, 0, time.UTC)
	month := "01-2024"

	orders := []domain.Order{
		order(1, 3, "9000", time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)), // Mês anterior
		order(2, 1, "1000", time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)),
		order(3, 2, "800", time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)),
		order(4, 3, "1000.004", time.Date(2024, 1, 10, 19, 0, 0, 0, time.UTC)),
		order(5, 1, "1500", time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)),
		order(6, 2, "5000", time.Date(2024, 1, 16, 1, 0, 0, 0, time.UTC)),  // Hoje, fica de fora
		order(7, 99, "7000", time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)), // Restaurante inexistente
	}
	restaurants := []domain.Restaurant{
		{ID: 1, Name: "Cantina", Location: "Curitiba", Cuisine: "Italiana"},
		{ID: 2, Name: "Sushi Bar", Location: "São Paulo", Cuisine: "Japonesa"},
		{ID: 3, Name: "Taqueria", Location: "Recife", Cuisine: "Mexicana"},
	}

	tests := []struct {
		name     string
		setup    func(f snapshotFixture)
		validate func(t *testing.T, snapshot *domain.RevenueRankingSnapshot, err error)
	}{
		{
			name: "Primeiro snapshot do mês - sem variação de posição",
			setup: func(f snapshotFixture) {
				f.orderRepo.EXPECT().Fetch(gomock.Any(), nil).Return(orders, nil)
				f.restaurantRepo.EXPECT().All(gomock.Any()).Return(restaurants, nil)
				f.snapshotRepo.EXPECT().Get(gomock.Any(), month).Return(nil, nil)
				f.snapshotRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, snapshot *domain.RevenueRankingSnapshot, err error) {
				require.NoError(t, err)
				assert.Equal(t, month, snapshot.Month)
				assert.Contains(t, snapshot.ID, "rk_01-2024_")
				require.Len(t, snapshot.Ranking, 3)

				assert.Equal(t, int64(1), snapshot.Ranking[0].RestaurantID)
				assert.Equal(t, "2500", snapshot.Ranking[0].TotalRevenue.String())
				assert.Equal(t, 1, snapshot.Ranking[0].Position)

				assert.Equal(t, int64(3), snapshot.Ranking[1].RestaurantID)
				assert.Equal(t, "1000", snapshot.Ranking[1].TotalRevenue.String())
				assert.Equal(t, 2, snapshot.Ranking[1].Position)

				assert.Equal(t, int64(2), snapshot.Ranking[2].RestaurantID)
				assert.Equal(t, 3, snapshot.Ranking[2].Position)

				for _, item := range snapshot.Ranking {
					assert.Equal(t, 0, item.PositionChange)
					assert.Equal(t, 0, item.PreviousPosition)
				}
			},
		},
		{
			name: "Snapshot anterior - compara posições",
			setup: func(f snapshotFixture) {
				f.orderRepo.EXPECT().Fetch(gomock.Any(), nil).Return(orders, nil)
				f.restaurantRepo.EXPECT().All(gomock.Any()).Return(restaurants, nil)
				f.snapshotRepo.EXPECT().Get(gomock.Any(), month).Return(&domain.RevenueRankingSnapshot{
					Month:   month,
					Ranking: []domain.RevenueRankingItem{rankingItem(3, 1), rankingItem(1, 2)},
				}, nil)
				f.snapshotRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, snapshot *domain.RevenueRankingSnapshot, err error) {
				require.NoError(t, err)
				require.Len(t, snapshot.Ranking, 3)

				// Cantina subiu de 2 para 1
				assert.Equal(t, 1, snapshot.Ranking[0].PositionChange)
				assert.Equal(t, 2, snapshot.Ranking[0].PreviousPosition)

				// Taqueria desceu de 1 para 2
				assert.Equal(t, -1, snapshot.Ranking[1].PositionChange)
				assert.Equal(t, 1, snapshot.Ranking[1].PreviousPosition)

				// Sushi Bar entrou no ranking
				assert.Equal(t, 0, snapshot.Ranking[2].PositionChange)
				assert.Equal(t, 0, snapshot.Ranking[2].PreviousPosition)
			},
		},
		{
			name: "Erro ao buscar snapshot anterior não impede o salvamento",
			setup: func(f snapshotFixture) {
				f.orderRepo.EXPECT().Fetch(gomock.Any(), nil).Return(orders, nil)
				f.restaurantRepo.EXPECT().All(gomock.Any()).Return(restaurants, nil)
				f.snapshotRepo.EXPECT().Get(gomock.Any(), month).Return(nil, errors.New("redis timeout"))
				f.snapshotRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, snapshot *domain.RevenueRankingSnapshot, err error) {
				require.NoError(t, err)
				assert.Len(t, snapshot.Ranking, 3)
			},
		},
		{
			name: "Erro na fonte de dados não salva snapshot",
			setup: func(f snapshotFixture) {
				f.orderRepo.EXPECT().Fetch(gomock.Any(), nil).Return(nil, errors.New("connection refused"))
				f.restaurantRepo.EXPECT().All(gomock.Any()).Return(restaurants, nil)
				f.snapshotRepo.EXPECT().Get(gomock.Any(), month).Return(nil, nil)
			},
			validate: func(t *testing.T, snapshot *domain.RevenueRankingSnapshot, err error) {
				require.Error(t, err)
				assert.Nil(t, snapshot)
			},
		},
		{
			name: "Erro ao salvar",
			setup: func(f snapshotFixture) {
				f.orderRepo.EXPECT().Fetch(gomock.Any(), nil).Return(orders, nil)
				f.restaurantRepo.EXPECT().All(gomock.Any()).Return(restaurants, nil)
				f.snapshotRepo.EXPECT().Get(gomock.Any(), month).Return(nil, nil)
				f.snapshotRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			validate: func(t *testing.T, snapshot *domain.RevenueRankingSnapshot, err error) {
				require.Error(t, err)
				assert.Nil(t, snapshot)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSnapshotFixture(t)
			tt.setup(f)

			snapshot, err := f.service.processSnapshotWithDate(context.Background(), processingDate)
			tt.validate(t, snapshot, err)
		})
	}
}

func TestRevenueRankingSnapshotService_processSnapshotWithDate_FirstDayOfMonth(t *testing.T) {
	f := newSnapshotFixture(t)

	// No dia 1 o snapshot ainda pertence ao mês anterior
	f.orderRepo.EXPECT().Fetch(gomock.Any(), nil).Return([]domain.Order{
		order(1, 1, "10", time.Date(2024, 2, 29, 22, 0, 0, 0, time.UTC)),
		order(2, 1, "10", time.Date(2024, 3, 1, 0, 30, 0, 0, time.UTC)),
	}, nil)
	f.restaurantRepo.EXPECT().All(gomock.Any()).Return([]domain.Restaurant{{ID: 1, Name: "Cantina"}}, nil)
	f.snapshotRepo.EXPECT().Get(gomock.Any(), "02-2024").Return(nil, nil)
	f.snapshotRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	snapshot, err := f.service.processSnapshotWithDate(context.Background(), time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "02-2024", snapshot.Month)
	require.Len(t, snapshot.Ranking, 1)
	assert.Equal(t, "10", snapshot.Ranking[0].TotalRevenue.String())
}

func TestRevenueRankingSnapshotService_updatePositions(t *testing.T) {
	service := &RevenueRankingSnapshotService{}

	items := []*domain.RevenueRankingItem{
		{RevenueRankEntry: domain.RevenueRankEntry{RestaurantID: 1, TotalRevenue: decimal.NewFromInt(100)}},
		{RevenueRankEntry: domain.RevenueRankEntry{RestaurantID: 2, TotalRevenue: decimal.NewFromInt(300)}},
		{RevenueRankEntry: domain.RevenueRankEntry{RestaurantID: 3, TotalRevenue: decimal.NewFromInt(200)}},
	}
	before := map[int64]domain.RevenueRankingItem{
		1: rankingItem(1, 1),
		2: rankingItem(2, 3),
	}

	service.updatePositions(items, before)

	assert.Equal(t, int64(2), items[0].RestaurantID)
	assert.Equal(t, 1, items[0].Position)
	assert.Equal(t, 2, items[0].PositionChange)
	assert.Equal(t, 3, items[0].PreviousPosition)

	assert.Equal(t, int64(3), items[1].RestaurantID)
	assert.Equal(t, 2, items[1].Position)
	assert.Equal(t, 0, items[1].PreviousPosition)

	assert.Equal(t, int64(1), items[2].RestaurantID)
	assert.Equal(t, 3, items[2].Position)
	assert.Equal(t, -2, items[2].PositionChange)
}

func TestRevenueRankingSnapshotService_UpdateRevenueSnapshot(t *testing.T) {
	t.Run("Ignora execução concorrente", func(t *testing.T) {
		f := newSnapshotFixture(t)
		f.service.syncRunning = true

		err := f.service.UpdateRevenueSnapshot(context.Background())
		assert.NoError(t, err)
		assert.False(t, f.service.TriggerManualSync())
	})

	t.Run("Registra o erro no status", func(t *testing.T) {
		f := newSnapshotFixture(t)
		f.orderRepo.EXPECT().Fetch(gomock.Any(), nil).Return(nil, errors.New("connection refused"))
		f.restaurantRepo.EXPECT().All(gomock.Any()).Return(nil, nil)
		f.snapshotRepo.EXPECT().Get(gomock.Any(), "01-2024").Return(nil, nil)

		err := f.service.UpdateRevenueSnapshot(context.Background())
		require.Error(t, err)

		status := f.service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.Contains(t, status["last_sync_error"], "connection refused")
		assert.Equal(t, time.Date(2024, 1, 16, 6, 0, 0, 0, time.UTC), status["last_sync_started_at"])
	})
}

func TestRevenueRankingSnapshotService_StartDisabled(t *testing.T) {
	f := newSnapshotFixture(t)
	f.service.config.SyncEnabled = false

	assert.NoError(t, f.service.Start(context.Background()))
}
