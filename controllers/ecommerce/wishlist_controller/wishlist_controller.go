package wishlist_controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/phnam24/frontend-v1-sub001/config"
	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/middleware"
	"github.com/phnam24/frontend-v1-sub001/models"
	"github.com/phnam24/frontend-v1-sub001/repository"
	"go.uber.org/zap"
)

// Handler serves the per-session wishlist.
type Handler struct {
	sessions *filters.Sessions
	products repository.ProductRepository
	log      *zap.Logger
}

func New(sessions *filters.Sessions, products repository.ProductRepository, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{sessions: sessions, products: products, log: log}
}

func wishlistResponse(sessionID string, w *filters.Wishlist) models.WishlistResponse {
	ids := w.IDs()
	if ids == nil {
		ids = []int64{}
	}
	return models.WishlistResponse{SessionID: sessionID, ProductIDs: ids, Count: len(ids)}
}

// GetWishlist godoc
// @Summary Get the session's wishlist
// @Tags store-wishlist
// @Produce json
// @Param X-Session-ID header string false "Shopper session id; issued when absent"
// @Success 200 {object} models.ApiResponse{data=models.WishlistResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /store/wishlist [get]
func (h *Handler) GetWishlist(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	wishlist, err := h.sessions.Wishlist(ctx, sessionID)
	if err != nil {
		h.log.Error("loading wishlist failed", zap.String("session", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", wishlistResponse(sessionID, wishlist)))
}

// ToggleWishlistItem godoc
// @Summary Save or unsave a product
// @Description Saving checks that the product is listed; unsaving always succeeds.
// @Tags store-wishlist
// @Produce json
// @Param X-Session-ID header string false "Shopper session id; issued when absent"
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.WishlistToggleResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/wishlist/{id}/toggle [post]
func (h *Handler) ToggleWishlistItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	sessionID, _ := middleware.GetSessionIDFromContext(c)
	defer h.sessions.Lock(sessionID)()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	wishlist, err := h.sessions.Wishlist(ctx, sessionID)
	if err != nil {
		h.log.Error("loading wishlist failed", zap.String("session", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load wishlist"))
		return
	}

	if !wishlist.Has(productID) {
		_, err := h.products.GetByID(ctx, productID)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		if err != nil {
			h.log.Error("checking product failed", zap.Int64("product_id", productID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
			return
		}
	}

	saved, err := wishlist.Toggle(productID)
	if err != nil {
		h.log.Error("saving wishlist failed", zap.String("session", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	message := "Product removed from wishlist"
	if saved {
		message = "Product added to wishlist"
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, models.WishlistToggleResponse{
		WishlistResponse: wishlistResponse(sessionID, wishlist),
		ProductID:        productID,
		Saved:            saved,
	}))
}

// ClearWishlist godoc
// @Summary Empty the wishlist
// @Tags store-wishlist
// @Produce json
// @Param X-Session-ID header string false "Shopper session id; issued when absent"
// @Success 200 {object} models.ApiResponse{data=models.WishlistResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /store/wishlist [delete]
func (h *Handler) ClearWishlist(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)
	defer h.sessions.Lock(sessionID)()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	wishlist, err := h.sessions.Wishlist(ctx, sessionID)
	if err == nil {
		err = wishlist.Clear()
	}
	if err != nil {
		h.log.Error("clearing wishlist failed", zap.String("session", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist cleared successfully", wishlistResponse(sessionID, wishlist)))
}

// RemoveWishlistItem godoc
// @Summary Unsave a product
// @Description Removing a product that is not saved is a no-op.
// @Tags store-wishlist
// @Produce json
// @Param X-Session-ID header string false "Shopper session id; issued when absent"
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.WishlistResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/wishlist/{id} [delete]
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	sessionID, _ := middleware.GetSessionIDFromContext(c)
	defer h.sessions.Lock(sessionID)()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	wishlist, err := h.sessions.Wishlist(ctx, sessionID)
	if err == nil {
		err = wishlist.Remove(productID)
	}
	if err != nil {
		h.log.Error("removing wishlist item failed", zap.String("session", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product removed from wishlist", wishlistResponse(sessionID, wishlist)))
}
