package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const currencySymbol = "₫"

// FormatPrice renders an amount in whole dong with dot thousand separators,
// e.g. 12990000 -> "12.990.000 ₫".
func FormatPrice(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(0)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	return sign + groupThousands(d.StringFixed(0)) + " " + currencySymbol
}

// DiscountLabel returns "-NN%" for a discounted item and "" otherwise.
func DiscountLabel(item PricedItem) string {
	pct := decimal.NewFromFloat(DiscountPercent(item)).Round(0)
	if !pct.IsPositive() {
		return ""
	}
	return fmt.Sprintf("-%s%%", pct.String())
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
