package pricing

import (
	"cmp"
	"slices"
	"strings"
)

// SortKey selects the ordering applied by Sort.
type SortKey string

const (
	SortNewest       SortKey = "newest"
	SortPriceAsc     SortKey = "price-asc"
	SortPriceDesc    SortKey = "price-desc"
	SortBestSelling  SortKey = "best-selling"
	SortDiscountDesc SortKey = "discount-desc"
)

// SortKeys lists every supported key, default first.
var SortKeys = []SortKey{
	SortNewest,
	SortPriceAsc,
	SortPriceDesc,
	SortBestSelling,
	SortDiscountDesc,
}

// ParseSortKey normalises a raw query value ("Price_Asc", " newest ") into a
// SortKey. Anything unrecognised becomes SortNewest.
func ParseSortKey(raw string) SortKey {
	key := SortKey(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-"))
	if slices.Contains(SortKeys, key) {
		return key
	}
	return SortNewest
}

// Sort returns a new slice ordered by key. The input is left untouched and
// ties keep their input order.
func Sort(items []PricedItem, key SortKey) []PricedItem {
	if key == SortDiscountDesc {
		return sortByDiscount(items)
	}

	out := slices.Clone(items)
	slices.SortStableFunc(out, comparator(key))
	return out
}

func comparator(key SortKey) func(a, b PricedItem) int {
	switch key {
	case SortPriceAsc:
		return func(a, b PricedItem) int { return cmp.Compare(a.SalePrice, b.SalePrice) }
	case SortPriceDesc:
		return func(a, b PricedItem) int { return cmp.Compare(b.SalePrice, a.SalePrice) }
	case SortBestSelling:
		return func(a, b PricedItem) int { return cmp.Compare(b.Sold, a.Sold) }
	default:
		return func(a, b PricedItem) int { return b.CreatedAt.Compare(a.CreatedAt) }
	}
}

// sortByDiscount computes every percentage once instead of per comparison.
func sortByDiscount(items []PricedItem) []PricedItem {
	type ranked struct {
		item     PricedItem
		discount float64
	}

	rows := make([]ranked, len(items))
	for i, item := range items {
		rows[i] = ranked{item: item, discount: DiscountPercent(item)}
	}
	slices.SortStableFunc(rows, func(a, b ranked) int {
		return cmp.Compare(b.discount, a.discount)
	})

	if items == nil {
		return nil
	}
	out := make([]PricedItem, len(rows))
	for i, row := range rows {
		out[i] = row.item
	}
	return out
}
