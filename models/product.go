package models

import (
	"time"

	"github.com/phnam24/frontend-v1-sub001/pricing"
	"github.com/phnam24/frontend-v1-sub001/slug"
	"gorm.io/datatypes"
)

const (
	ProductStatusActive = "Active"
	ProductStatusDraft  = "Draft"
)

// ═══════════════════════════════════════════════════════════
// Catalog Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID         int64                       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string                      `json:"name" gorm:"not null;index"`
	CategoryID int64                       `json:"category_id" gorm:"not null;index:idx_products_category"`
	BrandID    int64                       `json:"brand_id" gorm:"not null;index:idx_products_brand"`
	ListPrice  float64                     `json:"list_price" gorm:"type:numeric(14,2);not null;check:list_price >= 0"`
	SalePrice  float64                     `json:"sale_price" gorm:"type:numeric(14,2);not null;check:sale_price >= 0"`
	Sold       int                         `json:"sold" gorm:"default:0;index:idx_products_sold,sort:desc"`
	CPU        string                      `json:"cpu" gorm:"type:varchar(120);index"`
	RAM        string                      `json:"ram" gorm:"type:varchar(60);index"`
	Storage    string                      `json:"storage" gorm:"type:varchar(60);index"`
	ScreenSize string                      `json:"screen_size" gorm:"type:varchar(60);index"`
	GPU        string                      `json:"gpu" gorm:"type:varchar(120);index"`
	Images     datatypes.JSONSlice[string] `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Status     string                      `json:"status" gorm:"not null;default:'Active';check:status IN ('Active', 'Draft');index"`
	CreatedAt  time.Time                   `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// PricedItem projects the product onto the fields the sort and discount rules use.
func (p Product) PricedItem() pricing.PricedItem {
	return pricing.PricedItem{
		ID:        p.ID,
		Name:      p.Name,
		Slug:      slug.Make(p.Name, p.ID),
		SalePrice: p.SalePrice,
		ListPrice: p.ListPrice,
		Sold:      p.Sold,
		CreatedAt: p.CreatedAt,
	}
}

// PrimaryImage is the first image, or "" when the product has none.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
