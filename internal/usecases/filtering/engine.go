// Package filtering avalia os filtros de pedidos usados pelas agregações
package filtering

import (
	"slices"

	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

// Matches informa se o pedido atende todas as restrições presentes no filtro.
// Restrições ausentes nunca rejeitam um pedido.
func Matches(order domain.Order, filter domain.OrderFilter) bool {
	if filter.RestaurantID != nil && order.RestaurantID != *filter.RestaurantID {
		return false
	}

	if len(filter.RestaurantIDs) > 0 && !slices.Contains(filter.RestaurantIDs, order.RestaurantID) {
		return false
	}

	// Limites de data são inclusivos e comparados no nível do timestamp
	if filter.StartDate != nil && order.Time.Before(*filter.StartDate) {
		return false
	}

	if filter.EndDate != nil && order.Time.After(*filter.EndDate) {
		return false
	}

	if filter.MinAmount != nil && order.Amount.LessThan(*filter.MinAmount) {
		return false
	}

	if filter.MaxAmount != nil && order.Amount.GreaterThan(*filter.MaxAmount) {
		return false
	}

	hour := order.Hour()
	if filter.MinHour != nil && hour < *filter.MinHour {
		return false
	}

	if filter.MaxHour != nil && hour > *filter.MaxHour {
		return false
	}

	return true
}

// Apply retorna os pedidos que atendem o filtro, preservando a ordem original
func Apply(orders []domain.Order, filter domain.OrderFilter) []domain.Order {
	matched := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if Matches(order, filter) {
			matched = append(matched, order)
		}
	}
	return matched
}
