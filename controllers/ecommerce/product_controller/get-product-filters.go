package product_controller

import (
	"cmp"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/phnam24/frontend-v1-sub001/config"
	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/models"
	"go.uber.org/zap"
)

// GetProductFilters godoc
// @Summary Get available product filters
// @Description Categories, brands, hardware facets and the price range of listed products, with counts
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ProductFilters}
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/filters [get]
func (h *Handler) GetProductFilters(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := h.products.List(ctx, filters.NewCriteria())
	if err != nil {
		h.log.Error("listing products for filters failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filters"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters fetched successfully", buildProductFilters(products)))
}

func buildProductFilters(products []models.Product) models.ProductFilters {
	categories := map[string]int{}
	brands := map[string]int{}
	facets := make(map[filters.Facet]map[string]int, len(filters.Facets))
	for _, f := range filters.Facets {
		facets[f] = map[string]int{}
	}

	out := models.ProductFilters{
		Facets:     make(map[filters.Facet][]models.FilterOption, len(filters.Facets)),
		PriceRange: filters.PriceRange{},
	}

	for i, p := range products {
		categories[strconv.FormatInt(p.CategoryID, 10)]++
		brands[strconv.FormatInt(p.BrandID, 10)]++

		for f, v := range map[filters.Facet]string{
			filters.FacetCPU:        p.CPU,
			filters.FacetRAM:        p.RAM,
			filters.FacetStorage:    p.Storage,
			filters.FacetScreenSize: p.ScreenSize,
			filters.FacetGPU:        p.GPU,
		} {
			if v != "" {
				facets[f][v]++
			}
		}

		if i == 0 || p.SalePrice < out.PriceRange.Min {
			out.PriceRange.Min = p.SalePrice
		}
		if i == 0 || p.SalePrice > out.PriceRange.Max {
			out.PriceRange.Max = p.SalePrice
		}
	}

	out.Categories = filterOptions(categories)
	out.Brands = filterOptions(brands)
	for f, counts := range facets {
		out.Facets[f] = filterOptions(counts)
	}
	return out
}

// filterOptions sorts by count descending, then by value.
func filterOptions(counts map[string]int) []models.FilterOption {
	options := make([]models.FilterOption, 0, len(counts))
	for value, n := range counts {
		options = append(options, models.FilterOption{Label: value, Value: value, Count: n})
	}
	slices.SortFunc(options, func(a, b models.FilterOption) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return options
}
