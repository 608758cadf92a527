package repository

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	catalog_cache "github.com/phnam24/frontend-v1-sub001/cache"
	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/models"
	"github.com/phnam24/frontend-v1-sub001/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalogWhere_Empty(t *testing.T) {
	where, args := buildCatalogWhere(filters.NewCriteria())

	assert.Equal(t, "status = ?", where)
	assert.Equal(t, []interface{}{models.ProductStatusActive}, args)
}

func TestBuildCatalogWhere_AllDimensions(t *testing.T) {
	c := filters.NewCriteria()
	c.CategoryIDs = []int64{1, 2}
	c.BrandIDs = []int64{9}
	c.Price = filters.PriceRange{Min: 5_000_000, Max: 20_000_000}
	c.RAM = []string{"16GB", "32GB"}
	c.GPU = []string{"RTX 4060"}

	where, args := buildCatalogWhere(c)

	assert.Equal(t,
		"status = ? AND category_id IN ? AND brand_id IN ? AND sale_price >= ? AND sale_price <= ? AND ram IN ? AND gpu IN ?",
		where)
	assert.Equal(t, []interface{}{
		models.ProductStatusActive,
		[]int64{1, 2},
		[]int64{9},
		5_000_000.0,
		20_000_000.0,
		[]string{"16GB", "32GB"},
		[]string{"RTX 4060"},
	}, args)
}

func TestBuildCatalogWhere_OpenEndedPrice(t *testing.T) {
	c := filters.NewCriteria()
	c.Price.Min = 1_000

	where, args := buildCatalogWhere(c)

	assert.Equal(t, "status = ? AND sale_price >= ?", where)
	assert.Len(t, args, 2)
}

type countingRepo struct {
	calls    int
	products []models.Product
	err      error
}

func (r *countingRepo) List(context.Context, filters.Criteria) ([]models.Product, error) {
	r.calls++
	return r.products, r.err
}

func (r *countingRepo) GetByID(_ context.Context, id int64) (*models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func TestCachedProductRepository(t *testing.T) {
	inner := &countingRepo{products: []models.Product{{ID: 1, Name: "XPS"}}}
	repo := NewCachedProductRepository(inner, catalog_cache.New(time.Minute))
	ctx := context.Background()

	a := filters.NewCriteria()
	a.SortBy = pricing.SortPriceAsc
	b := filters.NewCriteria()
	b.SortBy = pricing.SortBestSelling

	_, err := repo.List(ctx, a)
	require.NoError(t, err)
	got, err := repo.List(ctx, b)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls, "sort order shares the cached selection")
	assert.Len(t, got, 1)

	b.BrandIDs = []int64{4}
	_, err = repo.List(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)

	p, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "XPS", p.Name)
}

func TestCachedProductRepository_ErrorsNotCached(t *testing.T) {
	inner := &countingRepo{err: errors.New("db down")}
	repo := NewCachedProductRepository(inner, catalog_cache.New(time.Minute))

	_, err := repo.List(context.Background(), filters.NewCriteria())
	assert.Error(t, err)
	_, err = repo.List(context.Background(), filters.NewCriteria())
	assert.Error(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedProductRepository_UnencodableSelectionBypassesCache(t *testing.T) {
	inner := &countingRepo{products: []models.Product{{ID: 1, Name: "XPS"}}}
	cache := catalog_cache.New(time.Minute)
	repo := NewCachedProductRepository(inner, cache)
	ctx := context.Background()

	nan := filters.NewCriteria()
	nan.CategoryIDs = []int64{1}
	nan.Price.Min = math.NaN()

	for range 2 {
		got, err := repo.List(ctx, nan)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}

	assert.Equal(t, 2, inner.calls)
	assert.Zero(t, cache.Len())
}
