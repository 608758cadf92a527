package filter_controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/models"
)

// ToggleFilter godoc
// @Summary Toggle one filter value
// @Description Adds the value when absent and removes it when present. facet is category, brand, cpu, ram, storage, screen or gpu.
// @Tags store-filters
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id; issued when absent"
// @Param body body models.ToggleFilterRequest true "Filter value"
// @Success 200 {object} models.ApiResponse{data=models.FilterStateResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/toggle [post]
func (h *Handler) ToggleFilter(c *gin.Context) {
	var req models.ToggleFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	change, err := toggleChange(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	h.withState(c, "Filter updated successfully", change)
}

func toggleChange(req models.ToggleFilterRequest) (func(*filters.State) error, error) {
	name := strings.ToLower(strings.TrimSpace(req.Facet))
	value := strings.TrimSpace(req.Value)

	if name == models.FilterCategory || name == models.FilterBrand {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil || id <= 0 {
			return nil, errInvalidID
		}
		if name == models.FilterCategory {
			return func(s *filters.State) error { return s.ToggleCategory(id) }, nil
		}
		return func(s *filters.State) error { return s.ToggleBrand(id) }, nil
	}

	facet, err := filters.ParseFacet(name)
	if err != nil {
		return nil, err
	}
	return func(s *filters.State) error { return s.ToggleFacet(facet, value) }, nil
}
