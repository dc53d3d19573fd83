// Package ranking ordena os restaurantes pela receita dos pedidos
package ranking

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/filtering"
)

const (
	DefaultK = 3
	MaxK     = 100
)

type revenueGroup struct {
	restaurantID int64
	total        decimal.Decimal
}

// TopByRevenue retorna no máximo k restaurantes em ordem decrescente de receita.
// Restaurantes ausentes do índice são descartados depois do corte em k, sem reposição.
func TopByRevenue(orders []domain.Order, restaurants domain.RestaurantIndex, filter domain.OrderFilter, k int) []domain.RevenueRankEntry {
	entries, _, _ := topByRevenue(orders, restaurants, filter, k)
	return entries
}

// topByRevenue também informa quantos pedidos passaram no filtro e quantas posições
// foram descartadas por restaurante inexistente
func topByRevenue(orders []domain.Order, restaurants domain.RestaurantIndex, filter domain.OrderFilter, k int) ([]domain.RevenueRankEntry, int, int) {
	// O ranking considera todos os restaurantes
	filter.RestaurantID = nil

	groups := make([]*revenueGroup, 0)
	byRestaurant := make(map[int64]*revenueGroup)
	matched := 0
	for _, order := range orders {
		if !filtering.Matches(order, filter) {
			continue
		}
		matched++

		group, exists := byRestaurant[order.RestaurantID]
		if !exists {
			group = &revenueGroup{restaurantID: order.RestaurantID}
			byRestaurant[order.RestaurantID] = group
			groups = append(groups, group)
		}
		group.total = group.total.Add(order.Amount)
	}

	// Estável: empates mantêm a ordem em que os restaurantes apareceram
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].total.GreaterThan(groups[j].total)
	})

	if k < 0 {
		k = 0
	}
	if len(groups) > k {
		groups = groups[:k]
	}

	entries := make([]domain.RevenueRankEntry, 0, len(groups))
	dropped := 0
	for _, group := range groups {
		restaurant, found := restaurants.Lookup(group.restaurantID)
		if !found {
			dropped++
			continue
		}

		entries = append(entries, domain.RevenueRankEntry{
			RestaurantID: restaurant.ID,
			Name:         restaurant.Name,
			Location:     restaurant.Location,
			Cuisine:      restaurant.Cuisine,
			TotalRevenue: group.total,
		})
	}

	return entries, matched, dropped
}
