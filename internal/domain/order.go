// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order é um pedido importado da fonte de dados. Nunca é alterado pela aplicação.
// RestaurantID é uma referência lógica e pode apontar para um restaurante inexistente.
type Order struct {
	ID           int64           `json:"id"`
	RestaurantID int64           `json:"restaurant_id"`
	Amount       decimal.Decimal `json:"order_amount"`
	Time         time.Time       `json:"order_time"`
}

// Day retorna o dia do pedido em UTC no formato YYYY-MM-DD
func (o Order) Day() string {
	return o.Time.UTC().Format(time.DateOnly)
}

// Hour retorna a hora do pedido (0-23) em UTC
func (o Order) Hour() int {
	return o.Time.UTC().Hour()
}
