package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phnam24/frontend-v1-sub001/models"
	"github.com/phnam24/frontend-v1-sub001/pricing"
)

// GetSortOptions godoc
// @Summary List sort options
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.SortOption}
// @Router /store/sort-options [get]
func (h *Handler) GetSortOptions(c *gin.Context) {
	options := make([]models.SortOption, 0, len(pricing.SortKeys))
	for _, key := range pricing.SortKeys {
		options = append(options, models.SortOption{Value: key, Default: key == pricing.SortNewest})
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sort options fetched successfully", options))
}
