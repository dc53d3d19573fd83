// Package trending agrega os pedidos de um restaurante em tendências diárias
package trending

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/filtering"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
)

// dayBucket acumula os pedidos de um dia. hourOrder guarda as horas na ordem em que
// apareceram pela primeira vez, usada no desempate do horário de pico.
type dayBucket struct {
	count     int
	revenue   decimal.Decimal
	hourCount [24]int
	hourOrder []int
}

func (b *dayBucket) add(order domain.Order) {
	hour := order.Hour()
	if b.hourCount[hour] == 0 {
		b.hourOrder = append(b.hourOrder, hour)
	}

	b.hourCount[hour]++
	b.count++
	b.revenue = b.revenue.Add(order.Amount)
}

// peakHour retorna a hora com mais pedidos; em caso de empate vence a que apareceu primeiro
func (b *dayBucket) peakHour() int {
	peak, peakCount := 0, 0
	for _, hour := range b.hourOrder {
		if b.hourCount[hour] > peakCount {
			peak, peakCount = hour, b.hourCount[hour]
		}
	}
	return peak
}

// ComputeTrends filtra os pedidos e emite um DailyTrend por dia UTC, em ordem crescente de data.
// O filtro precisa identificar o restaurante.
func ComputeTrends(orders []domain.Order, filter domain.OrderFilter) ([]domain.DailyTrend, error) {
	if filter.RestaurantID == nil {
		return nil, filtering.NewValidationError(filtering.ErrRestaurantIDRequired, apiErrors.ErrMissingRequiredData, "restaurant_id", "")
	}

	buckets := make(map[string]*dayBucket)
	for _, order := range orders {
		if !filtering.Matches(order, filter) {
			continue
		}

		day := order.Day()
		bucket, exists := buckets[day]
		if !exists {
			bucket = &dayBucket{}
			buckets[day] = bucket
		}
		bucket.add(order)
	}

	trends := make([]domain.DailyTrend, 0, len(buckets))
	for day, bucket := range buckets {
		trends = append(trends, domain.DailyTrend{
			Date:          day,
			OrdersCount:   bucket.count,
			Revenue:       bucket.revenue,
			AvgOrderValue: bucket.revenue.Div(decimal.NewFromInt(int64(bucket.count))),
			PeakHour:      bucket.peakHour(),
		})
	}

	// YYYY-MM-DD em ordem lexicográfica é a ordem cronológica
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Date < trends[j].Date
	})

	return trends, nil
}
