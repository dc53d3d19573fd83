package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueRankEntry é uma posição do ranking de restaurantes por receita
type RevenueRankEntry struct {
	RestaurantID int64           `json:"restaurant_id"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Cuisine      string          `json:"cuisine"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type TopRevenueResponse struct {
	Restaurants []RevenueRankEntry `json:"restaurants"`
}

// RevenueRankingSnapshot é o ranking mensal calculado pelo agendador
type RevenueRankingSnapshot struct {
	ID         string               `json:"id"`
	Month      string               `json:"month"` // Formato mm-yyyy (ex: 01-2025)
	Ranking    []RevenueRankingItem `json:"ranking"`
	LastUpdate time.Time            `json:"last_update"`
}

type RevenueRankingItem struct {
	RevenueRankEntry
	Position         int `json:"position"`
	PositionChange   int `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int `json:"previous_position"`
}
