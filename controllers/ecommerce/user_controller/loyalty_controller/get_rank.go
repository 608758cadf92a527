package loyalty_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phnam24/frontend-v1-sub001/models"
)

// GetRank godoc
// @Summary Get the current user's rank progress
// @Description Progress towards the next tier from the stored rank and lifetime spend
// @Tags user-loyalty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=loyalty.RankProgress}
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/rank [get]
func (h *Handler) GetRank(c *gin.Context) {
	standing, ok := h.standing(c)
	if !ok {
		return
	}

	progress := h.ladder.Progress(standing.Rank, standing.TotalSpent)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Rank fetched successfully", progress))
}

// GetRankLadder godoc
// @Summary List the rank tiers
// @Description Every tier with the lifetime spend it starts at
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]loyalty.TierStep}
// @Router /store/ranks [get]
func (h *Handler) GetRankLadder(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Ranks fetched successfully", h.ladder.Steps()))
}
