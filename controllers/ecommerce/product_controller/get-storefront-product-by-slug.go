package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phnam24/frontend-v1-sub001/config"
	"github.com/phnam24/frontend-v1-sub001/models"
	"github.com/phnam24/frontend-v1-sub001/repository"
	"github.com/phnam24/frontend-v1-sub001/slug"
	"go.uber.org/zap"
)

// GetStorefrontProductBySlug godoc
// @Summary Get single product details for storefront
// @Description Resolve a product page URL segment such as laptop-dell-xps-13-123
// @Tags store
// @Produce json
// @Param slug path string true "Product slug ending in the product id"
// @Success 200 {object} models.ApiResponse{data=models.StorefrontProductDetail}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{slug} [get]
func (h *Handler) GetStorefrontProductBySlug(c *gin.Context) {
	productID, err := slug.Decode(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product URL"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := h.products.GetByID(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		h.log.Error("fetching product failed", zap.Int64("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", models.NewStorefrontProductDetail(*product)))
}
