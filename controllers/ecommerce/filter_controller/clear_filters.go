package filter_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/models"
)

// ClearFilter godoc
// @Summary Clear one filter dimension
// @Tags store-filters
// @Produce json
// @Param X-Session-ID header string false "Shopper session id; issued when absent"
// @Param facet path string true "category, brand, price, cpu, ram, storage, screen or gpu"
// @Success 200 {object} models.ApiResponse{data=models.FilterStateResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/{facet} [delete]
func (h *Handler) ClearFilter(c *gin.Context) {
	var change func(*filters.State) error

	switch name := strings.ToLower(c.Param("facet")); name {
	case models.FilterCategory:
		change = (*filters.State).ClearCategories
	case models.FilterBrand:
		change = (*filters.State).ClearBrands
	case models.FilterPrice:
		change = (*filters.State).ClearPriceRange
	default:
		facet, err := filters.ParseFacet(name)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		change = func(s *filters.State) error { return s.ClearFacet(facet) }
	}

	h.withState(c, "Filter cleared successfully", change)
}

// ResetFilters godoc
// @Summary Reset every filter
// @Description Returns to the empty selection; the chosen sort is kept.
// @Tags store-filters
// @Produce json
// @Param X-Session-ID header string false "Shopper session id; issued when absent"
// @Success 200 {object} models.ApiResponse{data=models.FilterStateResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters [delete]
func (h *Handler) ResetFilters(c *gin.Context) {
	h.withState(c, "Filters reset successfully", (*filters.State).Reset)
}
