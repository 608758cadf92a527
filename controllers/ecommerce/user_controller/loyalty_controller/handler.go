package loyalty_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phnam24/frontend-v1-sub001/config"
	"github.com/phnam24/frontend-v1-sub001/loyalty"
	"github.com/phnam24/frontend-v1-sub001/middleware"
	"github.com/phnam24/frontend-v1-sub001/models"
	"github.com/phnam24/frontend-v1-sub001/repository"
	"go.uber.org/zap"
)

// Handler serves rank progress and voucher eligibility.
type Handler struct {
	standings repository.LoyaltyRepository
	vouchers  repository.VoucherRepository
	ladder    *loyalty.Ladder
	log       *zap.Logger
	now       func() time.Time
}

func New(standings repository.LoyaltyRepository, vouchers repository.VoucherRepository, ladder *loyalty.Ladder, log *zap.Logger) *Handler {
	if ladder == nil {
		ladder = loyalty.DefaultLadder()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{standings: standings, vouchers: vouchers, ladder: ladder, log: log, now: time.Now}
}

// currentUser reads the authenticated user id. On failure the response is
// already written.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return uuid.Nil, false
	}
	return userID, true
}

func (h *Handler) standingError(c *gin.Context, userID uuid.UUID, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}
	h.log.Error("loading loyalty standing failed", zap.Stringer("user_id", userID), zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch rank"))
}

// standing loads the caller's stored rank. On failure the response is
// already written and ok is false.
func (h *Handler) standing(c *gin.Context) (standing *models.LoyaltyStanding, ok bool) {
	userID, ok := currentUser(c)
	if !ok {
		return nil, false
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	standing, err := h.standings.GetStanding(ctx, userID)
	if err != nil {
		h.standingError(c, userID, err)
		return nil, false
	}
	return standing, true
}
