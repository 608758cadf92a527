package loyalty_controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/phnam24/frontend-v1-sub001/config"
	"github.com/phnam24/frontend-v1-sub001/models"
	"github.com/phnam24/frontend-v1-sub001/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var errVoucherList = errors.New("list vouchers")

// GetVouchers godoc
// @Summary List vouchers for the current user
// @Description Active vouchers, each marked usable or not for the user's rank
// @Tags user-loyalty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.VoucherView}
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/vouchers [get]
func (h *Handler) GetVouchers(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Standing and voucher list are independent reads.
	var (
		standing *models.LoyaltyStanding
		vouchers []models.Voucher
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		standing, err = h.standings.GetStanding(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		if vouchers, err = h.vouchers.ListActive(gctx); err != nil {
			return errors.Join(errVoucherList, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, errVoucherList) {
			h.log.Error("listing vouchers failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch vouchers"))
			return
		}
		h.standingError(c, userID, err)
		return
	}

	views := models.EligibleVouchers(standing.Rank, vouchers, h.now())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Vouchers fetched successfully", views))
}

// GetVoucherEligibility godoc
// @Summary Check one voucher for the current user
// @Tags user-loyalty
// @Produce json
// @Security BearerAuth
// @Param code path string true "Voucher code"
// @Success 200 {object} models.ApiResponse{data=models.VoucherEligibilityResponse}
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/vouchers/{code}/eligibility [get]
func (h *Handler) GetVoucherEligibility(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Voucher code is required"))
		return
	}

	standing, ok := h.standing(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	voucher, err := h.vouchers.GetByCode(ctx, code)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Voucher not found"))
		return
	}
	if err != nil {
		h.log.Error("fetching voucher failed", zap.String("code", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch voucher"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Voucher eligibility fetched successfully", models.VoucherEligibilityResponse{
		Rank:    standing.Rank,
		Voucher: models.NewVoucherView(*voucher, standing.Rank, h.now()),
	}))
}
