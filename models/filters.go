// models/filters.go
package models

import "github.com/phnam24/frontend-v1-sub001/filters"

// Filter dimensions accepted by the toggle endpoint besides the hardware facets.
const (
	FilterCategory = "category"
	FilterBrand    = "brand"
	FilterPrice    = "price"
)

// ToggleFilterRequest adds or removes one value of a filter dimension.
type ToggleFilterRequest struct {
	Facet string `json:"facet" binding:"required" example:"ram"`
	Value string `json:"value" binding:"required" example:"16GB"`
}

// PriceRangeRequest sets the price range. A missing max means no upper limit.
type PriceRangeRequest struct {
	Min *float64 `json:"min" binding:"required" example:"5000000"`
	Max *float64 `json:"max,omitempty" example:"20000000"`
}

type SortRequest struct {
	SortBy string `json:"sort_by" binding:"required" example:"price-asc"`
}

// FilterStateResponse is returned by every filter session endpoint.
type FilterStateResponse struct {
	SessionID   string           `json:"session_id"`
	Criteria    filters.Criteria `json:"criteria"`
	ActiveCount int              `json:"active_count"`
}

type WishlistResponse struct {
	SessionID  string  `json:"session_id"`
	ProductIDs []int64 `json:"product_ids"`
	Count      int     `json:"count"`
}

type WishlistToggleResponse struct {
	WishlistResponse
	ProductID int64 `json:"product_id"`
	Saved     bool  `json:"saved"`
}
