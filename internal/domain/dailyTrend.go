package domain

import "github.com/shopspring/decimal"

// DailyTrend é o resumo diário dos pedidos de um restaurante
type DailyTrend struct {
	Date          string          `json:"date"` // Formato YYYY-MM-DD (UTC)
	OrdersCount   int             `json:"orders_count"`
	Revenue       decimal.Decimal `json:"revenue"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
	PeakHour      int             `json:"peak_hour"`
}
