package pricing

import "time"

// PricedItem is the slice of a catalog product the storefront rules operate on.
type PricedItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	SalePrice float64   `json:"sale_price"`
	ListPrice float64   `json:"list_price"`
	Sold      int       `json:"sold"`
	CreatedAt time.Time `json:"created_at"`
}
