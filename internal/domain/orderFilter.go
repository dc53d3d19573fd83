package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderFilter reúne as restrições opcionais aplicadas aos pedidos antes da agregação.
// Campos nil não restringem nada.
type OrderFilter struct {
	RestaurantID  *int64
	RestaurantIDs []int64
	StartDate     *time.Time
	EndDate       *time.Time
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	MinHour       *int
	MaxHour       *int
}

// WithDefaultPeriod preenche o período padrão (epoch até now) quando não informado
func (f OrderFilter) WithDefaultPeriod(now time.Time) OrderFilter {
	if f.StartDate == nil {
		epoch := time.Unix(0, 0).UTC()
		f.StartDate = &epoch
	}

	if f.EndDate == nil {
		end := now.UTC()
		f.EndDate = &end
	}

	return f
}
