package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/models"
	"github.com/phnam24/frontend-v1-sub001/pricing"
)

// SetPriceRange godoc
// @Summary Set the price range
// @Description Stored as given; an inverted range simply matches nothing. Omit max for no upper limit.
// @Tags store-filters
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id; issued when absent"
// @Param body body models.PriceRangeRequest true "Price range"
// @Success 200 {object} models.ApiResponse{data=models.FilterStateResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/price [put]
func (h *Handler) SetPriceRange(c *gin.Context) {
	var req models.PriceRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	maxPrice := filters.PriceUnbounded
	if req.Max != nil {
		maxPrice = *req.Max
	}

	h.withState(c, "Price range updated successfully", func(s *filters.State) error {
		return s.SetPriceRange(*req.Min, maxPrice)
	})
}

// SetSort godoc
// @Summary Set the sort order
// @Description Unknown keys fall back to newest.
// @Tags store-filters
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id; issued when absent"
// @Param body body models.SortRequest true "Sort key"
// @Success 200 {object} models.ApiResponse{data=models.FilterStateResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/sort [put]
func (h *Handler) SetSort(c *gin.Context) {
	var req models.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	key := pricing.ParseSortKey(req.SortBy)
	h.withState(c, "Sort updated successfully", func(s *filters.State) error {
		return s.SetSort(key)
	})
}
