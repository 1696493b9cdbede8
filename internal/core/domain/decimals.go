package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// CountDecimals возвращает количество цифр после запятой в кратчайшей
// десятичной записи числа. Для целых чисел - 0.
func CountDecimals(amount float64) int {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	if math.Floor(amount) == amount {
		return 0
	}

	exp := decimal.NewFromFloat(amount).Exponent()
	if exp >= 0 {
		return 0
	}
	return int(-exp)
}
