package ranking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/filtering"
	"github.com/vfg2006/restaurant-analytics-api/pkg/metrics"
)

// TopRevenueParams são os parâmetros de consulta de GET /v1/restaurants/top
type TopRevenueParams struct {
	StartDate     string
	EndDate       string
	K             string
	MinAmount     string
	MaxAmount     string
	MinHour       string
	MaxHour       string
	RestaurantIDs string
}

type topRevenueLimits struct {
	K int `json:"k" validate:"gte=1,lte=100"`
}

type RankingService interface {
	GetTopRevenue(ctx context.Context, params TopRevenueParams) ([]domain.RevenueRankEntry, error)
	RankPeriod(ctx context.Context, filter domain.OrderFilter, k int) ([]domain.RevenueRankEntry, error)
	GetRevenueSnapshot(ctx context.Context) (*domain.RevenueRankingSnapshot, error)
}

type Service struct {
	orderRepository      repository.OrderRepository
	restaurantRepository repository.RestaurantRepository
	snapshotRepository   repository.RevenueSnapshotRepository
	defaultK             int
	now                  func() time.Time
}

func NewService(
	orderRepository repository.OrderRepository,
	restaurantRepository repository.RestaurantRepository,
	snapshotRepository repository.RevenueSnapshotRepository,
	defaultK int,
) *Service {
	if defaultK < 1 || defaultK > MaxK {
		defaultK = DefaultK
	}

	return &Service{
		orderRepository:      orderRepository,
		restaurantRepository: restaurantRepository,
		snapshotRepository:   snapshotRepository,
		defaultK:             defaultK,
		now:                  time.Now,
	}
}

func (s *Service) GetTopRevenue(ctx context.Context, params TopRevenueParams) ([]domain.RevenueRankEntry, error) {
	k, err := filtering.ParseInt("k", params.K, s.defaultK)
	if err != nil {
		return nil, err
	}

	if err := filtering.ValidateStruct(topRevenueLimits{K: k}, ErrInvalidK); err != nil {
		return nil, err
	}

	filter, err := filtering.ParseFilterParams(filtering.FilterParams{
		RestaurantIDs: params.RestaurantIDs,
		StartDate:     params.StartDate,
		EndDate:       params.EndDate,
		MinAmount:     params.MinAmount,
		MaxAmount:     params.MaxAmount,
		MinHour:       params.MinHour,
		MaxHour:       params.MaxHour,
	})
	if err != nil {
		return nil, err
	}

	return s.RankPeriod(ctx, filter.WithDefaultPeriod(s.now()), k)
}

// RankPeriod busca pedidos e restaurantes em paralelo e calcula o ranking de receita
func (s *Service) RankPeriod(ctx context.Context, filter domain.OrderFilter, k int) ([]domain.RevenueRankEntry, error) {
	var (
		wg          sync.WaitGroup
		orders      []domain.Order
		restaurants []domain.Restaurant
		ordersErr   error
		restErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		orders, ordersErr = s.orderRepository.Fetch(ctx, nil)
	}()

	go func() {
		defer wg.Done()
		restaurants, restErr = s.restaurantRepository.All(ctx)
	}()

	wg.Wait()

	if ordersErr != nil {
		logrus.WithError(ordersErr).Error("Erro ao buscar pedidos para o ranking de receita")
		return nil, fmt.Errorf("erro ao buscar pedidos: %w", ordersErr)
	}

	if restErr != nil {
		logrus.WithError(restErr).Error("Erro ao buscar restaurantes para o ranking de receita")
		return nil, fmt.Errorf("erro ao buscar restaurantes: %w", restErr)
	}

	start := time.Now()
	entries, matched, dropped := topByRevenue(orders, domain.NewRestaurantIndex(restaurants), filter, k)
	metrics.ObserveAggregation(metrics.OperationTopRevenue, len(orders), matched, time.Since(start))
	metrics.AddDanglingReferences(dropped)

	if dropped > 0 {
		logrus.WithField("dropped", dropped).Debug("Restaurantes inexistentes descartados do ranking")
	}

	return entries, nil
}

// GetRevenueSnapshot retorna o último ranking mensal salvo pelo agendador
func (s *Service) GetRevenueSnapshot(ctx context.Context) (*domain.RevenueRankingSnapshot, error) {
	if s.snapshotRepository == nil {
		return nil, ErrSnapshotNotFound
	}

	snapshot, err := s.snapshotRepository.Latest(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar snapshot do ranking de receita")
		return nil, fmt.Errorf("erro ao buscar snapshot: %w", err)
	}

	if snapshot == nil {
		return nil, ErrSnapshotNotFound
	}

	return snapshot, nil
}
