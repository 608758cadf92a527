package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	catalog_cache "github.com/phnam24/frontend-v1-sub001/cache"
	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/models"
	"gorm.io/gorm"
)

// facetColumns maps each hardware facet onto its products column.
var facetColumns = map[filters.Facet]string{
	filters.FacetCPU:        "cpu",
	filters.FacetRAM:        "ram",
	filters.FacetStorage:    "storage",
	filters.FacetScreenSize: "screen_size",
	filters.FacetGPU:        "gpu",
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) List(ctx context.Context, c filters.Criteria) ([]models.Product, error) {
	whereClause, args := buildCatalogWhere(c)

	products := make([]models.Product, 0)
	if err := r.db.WithContext(ctx).
		Where(whereClause, args...).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, models.ProductStatusActive).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &p, nil
}

// buildCatalogWhere turns a filter selection into a WHERE clause. Sets are
// OR'ed within a dimension and AND'ed across dimensions. An inverted price
// range is passed through as-is.
func buildCatalogWhere(c filters.Criteria) (string, []interface{}) {
	conditions := []string{"status = ?"}
	args := []interface{}{models.ProductStatusActive}

	if len(c.CategoryIDs) > 0 {
		conditions = append(conditions, "category_id IN ?")
		args = append(args, c.CategoryIDs)
	}
	if len(c.BrandIDs) > 0 {
		conditions = append(conditions, "brand_id IN ?")
		args = append(args, c.BrandIDs)
	}

	if c.Price.Min > 0 {
		conditions = append(conditions, "sale_price >= ?")
		args = append(args, c.Price.Min)
	}
	if c.Price.Max != filters.PriceUnbounded {
		conditions = append(conditions, "sale_price <= ?")
		args = append(args, c.Price.Max)
	}

	for _, f := range filters.Facets {
		values := c.Values(f)
		if len(values) == 0 {
			continue
		}
		conditions = append(conditions, facetColumns[f]+" IN ?")
		args = append(args, values)
	}

	return strings.Join(conditions, " AND "), args
}

// ─────────────────────────────────────────────────────────────
// Cached listing
// ─────────────────────────────────────────────────────────────

// CachedProductRepository serves List from a TTL cache keyed by the filter selection.
type CachedProductRepository struct {
	ProductRepository
	cache *catalog_cache.Cache
}

func NewCachedProductRepository(inner ProductRepository, cache *catalog_cache.Cache) *CachedProductRepository {
	return &CachedProductRepository{ProductRepository: inner, cache: cache}
}

func (r *CachedProductRepository) List(ctx context.Context, c filters.Criteria) ([]models.Product, error) {
	key, err := catalog_cache.Key(c)
	if err != nil {
		return r.ProductRepository.List(ctx, c)
	}
	if products, ok := r.cache.Get(key); ok {
		return products, nil
	}

	products, err := r.ProductRepository.List(ctx, c)
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, products)
	return products, nil
}
