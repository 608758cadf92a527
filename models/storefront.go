// ════════════════════════════════════════════════════════════
// STOREFRONT RESPONSE MODELS
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

import (
	"time"

	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/pricing"
)

// StorefrontItem is a product card in a listing.
type StorefrontItem struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Image           string    `json:"image"`
	SalePrice       float64   `json:"sale_price"`
	ListPrice       float64   `json:"list_price"`
	PriceLabel      string    `json:"price_label"`
	DiscountPercent float64   `json:"discount_percent"`
	DiscountLabel   string    `json:"discount_label,omitempty"` // Hidden if no discount
	Sold            int       `json:"sold"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewStorefrontItem(item pricing.PricedItem, image string) StorefrontItem {
	return StorefrontItem{
		ID:              item.ID,
		Name:            item.Name,
		Slug:            item.Slug,
		Image:           image,
		SalePrice:       item.SalePrice,
		ListPrice:       item.ListPrice,
		PriceLabel:      pricing.FormatPrice(item.SalePrice),
		DiscountPercent: pricing.DiscountPercent(item),
		DiscountLabel:   pricing.DiscountLabel(item),
		Sold:            item.Sold,
		CreatedAt:       item.CreatedAt,
	}
}

// StorefrontProductDetail is the product page payload.
type StorefrontProductDetail struct {
	StorefrontItem
	CategoryID int64    `json:"category_id"`
	BrandID    int64    `json:"brand_id"`
	CPU        string   `json:"cpu,omitempty"`
	RAM        string   `json:"ram,omitempty"`
	Storage    string   `json:"storage,omitempty"`
	ScreenSize string   `json:"screen_size,omitempty"`
	GPU        string   `json:"gpu,omitempty"`
	Images     []string `json:"images"`
}

func NewStorefrontProductDetail(p Product) StorefrontProductDetail {
	images := []string(p.Images)
	if images == nil {
		images = []string{}
	}
	return StorefrontProductDetail{
		StorefrontItem: NewStorefrontItem(p.PricedItem(), p.PrimaryImage()),
		CategoryID:     p.CategoryID,
		BrandID:        p.BrandID,
		CPU:            p.CPU,
		RAM:            p.RAM,
		Storage:        p.Storage,
		ScreenSize:     p.ScreenSize,
		GPU:            p.GPU,
		Images:         images,
	}
}

// SortOption is one entry of the sort dropdown.
type SortOption struct {
	Value   pricing.SortKey `json:"value"`
	Default bool            `json:"default,omitempty"`
}

// ProductFilters lists the values a shopper can narrow the catalog by, with
// how many listed products carry each.
type ProductFilters struct {
	Categories []FilterOption                   `json:"categories"`
	Brands     []FilterOption                   `json:"brands"`
	Facets     map[filters.Facet][]FilterOption `json:"facets"`
	PriceRange filters.PriceRange               `json:"price_range"`
}

// FilterOption represents a single filter option
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}
