package filter_controller

import "github.com/gin-gonic/gin"

// GetFilters godoc
// @Summary Get the session's filter selection
// @Tags store-filters
// @Produce json
// @Param X-Session-ID header string false "Shopper session id; issued when absent"
// @Success 200 {object} models.ApiResponse{data=models.FilterStateResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters [get]
func (h *Handler) GetFilters(c *gin.Context) {
	h.withState(c, "Filters fetched successfully", nil)
}
