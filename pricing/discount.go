package pricing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountPercent returns (list - sale) / list * 100.
// A non-positive list price yields 0.
func DiscountPercent(item PricedItem) float64 {
	return discountPercent(item.ListPrice, item.SalePrice)
}

func discountPercent(list, sale float64) float64 {
	if list <= 0 {
		return 0
	}

	l := decimal.NewFromFloat(list)
	pct, _ := l.Sub(decimal.NewFromFloat(sale)).
		Div(l).
		Mul(hundred).
		Float64()
	return pct
}
