package trending

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/filtering"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-analytics-api/pkg/metrics"
)

// TrendsParams são os parâmetros de consulta de GET /v1/orders/trends
type TrendsParams struct {
	RestaurantID string
	StartDate    string
	EndDate      string
	MinAmount    string
	MaxAmount    string
	MinHour      string
	MaxHour      string
}

type TrendsService interface {
	GetTrends(ctx context.Context, params TrendsParams) ([]domain.DailyTrend, error)
}

type Service struct {
	orderRepository repository.OrderRepository
	now             func() time.Time
}

func NewService(orderRepository repository.OrderRepository) *Service {
	return &Service{
		orderRepository: orderRepository,
		now:             time.Now,
	}
}

func (s *Service) GetTrends(ctx context.Context, params TrendsParams) ([]domain.DailyTrend, error) {
	if params.RestaurantID == "" {
		return nil, filtering.NewValidationError(filtering.ErrRestaurantIDRequired, apiErrors.ErrMissingRequiredData, "restaurant_id", "")
	}

	filter, err := filtering.ParseFilterParams(filtering.FilterParams{
		RestaurantID: params.RestaurantID,
		StartDate:    params.StartDate,
		EndDate:      params.EndDate,
		MinAmount:    params.MinAmount,
		MaxAmount:    params.MaxAmount,
		MinHour:      params.MinHour,
		MaxHour:      params.MaxHour,
	})
	if err != nil {
		return nil, err
	}
	filter = filter.WithDefaultPeriod(s.now())

	orders, err := s.orderRepository.Fetch(ctx, filter.RestaurantID)
	if err != nil {
		logrus.WithError(err).WithField("restaurant_id", *filter.RestaurantID).Error("Erro ao buscar pedidos do restaurante")
		return nil, fmt.Errorf("erro ao buscar pedidos: %w", err)
	}

	start := time.Now()
	trends, err := ComputeTrends(orders, filter)
	if err != nil {
		return nil, err
	}

	matched := 0
	for _, trend := range trends {
		matched += trend.OrdersCount
	}
	metrics.ObserveAggregation(metrics.OperationTrends, len(orders), matched, time.Since(start))

	logrus.WithFields(logrus.Fields{
		"restaurant_id": *filter.RestaurantID,
		"orders":        len(orders),
		"matched":       matched,
		"days":          len(trends),
	}).Debug("Tendências calculadas")

	return trends, nil
}
