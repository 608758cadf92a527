package catalog_cache

import (
	"math"
	"testing"
	"time"

	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/models"
	"github.com/phnam24/frontend-v1-sub001/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSetExpire(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(time.Minute)
	c.now = func() time.Time { return now }

	_, ok := c.Get("k")
	assert.False(t, ok)

	c.Set("k", []models.Product{{ID: 1}})
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Len(t, got, 1)

	now = now.Add(time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)

	c.Set("other", nil)
	assert.Equal(t, 1, c.Len(), "expired entries are evicted on write")
}

func TestCache_Invalidate(t *testing.T) {
	c := New(0)
	c.Set("a", nil)
	c.Set("b", nil)

	c.Invalidate()

	assert.Zero(t, c.Len())
}

func TestKey_IgnoresSortAndOrder(t *testing.T) {
	a := filters.NewCriteria()
	a.BrandIDs = []int64{2, 1}
	a.SortBy = pricing.SortPriceAsc

	b := filters.NewCriteria()
	b.BrandIDs = []int64{1, 2}
	b.SortBy = pricing.SortDiscountDesc

	keyA, err := Key(a)
	require.NoError(t, err)
	keyB, err := Key(b)
	require.NoError(t, err)
	assert.Equal(t, keyA, keyB)

	b.RAM = []string{"8GB"}
	keyB, err = Key(b)
	require.NoError(t, err)
	assert.NotEqual(t, keyA, keyB)
}

func TestKey_NonFinitePrice(t *testing.T) {
	a := filters.NewCriteria()
	a.CategoryIDs = []int64{1}
	a.Price.Min = math.NaN()

	b := filters.NewCriteria()
	b.CategoryIDs = []int64{2}
	b.Price.Max = math.Inf(1)

	_, err := Key(a)
	assert.Error(t, err)
	_, err = Key(b)
	assert.Error(t, err)
}
