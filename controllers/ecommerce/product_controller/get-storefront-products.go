package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phnam24/frontend-v1-sub001/config"
	"github.com/phnam24/frontend-v1-sub001/models"
	"go.uber.org/zap"
)

// GetStorefrontProducts godoc
// @Summary Get products for storefront
// @Description Filtered, sorted and paginated product cards
// @Tags store
// @Produce json
// @Param sortBy query string false "newest | price-asc | price-desc | best-selling | discount-desc" default(newest)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param category query string false "Category ids, comma separated"
// @Param brand query string false "Brand ids, comma separated"
// @Param minPrice query number false "Minimum sale price"
// @Param maxPrice query number false "Maximum sale price"
// @Param cpu query string false "CPU values, comma separated"
// @Param ram query string false "RAM values, comma separated"
// @Param storage query string false "Storage values, comma separated"
// @Param screen query string false "Screen sizes, comma separated"
// @Param gpu query string false "GPU values, comma separated"
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontItem}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products [get]
func (h *Handler) GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)

	criteria, err := criteriaFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := h.products.List(ctx, criteria)
	if err != nil {
		h.log.Error("listing products failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	items := sortedStorefrontItems(products, criteria.SortBy)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		paginate(items, page, limit),
		models.NewPagination(page, limit, len(items)),
	))
}
