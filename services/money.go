package services

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// discountedPrice returns price * (1 - pct/100).
func discountedPrice(price, pct float64) float64 {
	if pct == 0 {
		return price
	}
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(pct).Div(hundred))
	return decimal.NewFromFloat(price).Mul(factor).InexactFloat64()
}

func lineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

func toAmount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
