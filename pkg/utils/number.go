package utils

import "github.com/shopspring/decimal"

// RoundMoney arredonda um valor monetário para duas casas decimais
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}
