package product_controller

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/models"
	"github.com/phnam24/frontend-v1-sub001/pricing"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// queryList accepts both ?ram=8GB&ram=16GB and ?ram=8GB,16GB.
func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func parseIDs(key string, vals []string) ([]int64, error) {
	ids := make([]int64, 0, len(vals))
	for _, v := range vals {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid %s id %q", key, v)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parsePrice(c *gin.Context, key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return v, nil
}

// criteriaFromQuery builds the filter selection from listing query params.
func criteriaFromQuery(c *gin.Context) (filters.Criteria, error) {
	criteria := filters.NewCriteria()

	var err error
	if criteria.CategoryIDs, err = parseIDs("category", queryList(c, "category")); err != nil {
		return criteria, err
	}
	if criteria.BrandIDs, err = parseIDs("brand", queryList(c, "brand")); err != nil {
		return criteria, err
	}

	if criteria.Price.Min, err = parsePrice(c, "minPrice", 0); err != nil {
		return criteria, err
	}
	if criteria.Price.Max, err = parsePrice(c, "maxPrice", filters.PriceUnbounded); err != nil {
		return criteria, err
	}

	criteria.CPU = queryList(c, string(filters.FacetCPU))
	criteria.RAM = queryList(c, string(filters.FacetRAM))
	criteria.Storage = queryList(c, string(filters.FacetStorage))
	criteria.ScreenSize = queryList(c, string(filters.FacetScreenSize))
	criteria.GPU = queryList(c, string(filters.FacetGPU))
	criteria.SortBy = pricing.ParseSortKey(c.Query("sortBy"))

	return criteria.Normalize(), nil
}

// paginate cuts one page out of an already sorted listing.
func paginate[T any](items []T, page, limit int) []T {
	if page < 1 || limit < 1 || page-1 >= (len(items)+limit-1)/limit {
		return []T{}
	}
	start := (page - 1) * limit
	end := min(start+limit, len(items))
	return items[start:end]
}

// ─────────────────────────────────────────────────────────────
// Listing (THIN RESPONSE)
// ─────────────────────────────────────────────────────────────

func sortedStorefrontItems(products []models.Product, key pricing.SortKey) []models.StorefrontItem {
	images := make(map[int64]string, len(products))
	priced := make([]pricing.PricedItem, 0, len(products))
	for _, p := range products {
		images[p.ID] = p.PrimaryImage()
		priced = append(priced, p.PricedItem())
	}

	sorted := pricing.Sort(priced, key)
	items := make([]models.StorefrontItem, 0, len(sorted))
	for _, item := range sorted {
		items = append(items, models.NewStorefrontItem(item, images[item.ID]))
	}
	return items
}
