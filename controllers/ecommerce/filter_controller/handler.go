package filter_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phnam24/frontend-v1-sub001/config"
	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/middleware"
	"github.com/phnam24/frontend-v1-sub001/models"
	"go.uber.org/zap"
)

var errInvalidID = errors.New("value must be a positive id")

// Handler serves the per-session filter selection.
type Handler struct {
	sessions *filters.Sessions
	log      *zap.Logger
}

func New(sessions *filters.Sessions, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{sessions: sessions, log: log}
}

// withState loads the session's filter state, applies change and answers
// with the resulting selection. A nil change only reads.
func (h *Handler) withState(c *gin.Context, message string, change func(*filters.State) error) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing session"))
		return
	}

	defer h.sessions.Lock(sessionID)()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	state, err := h.sessions.Filters(ctx, sessionID)
	if err != nil {
		h.log.Error("loading filter state failed", zap.String("session", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load filters"))
		return
	}

	if change != nil {
		if err := change(state); err != nil {
			h.log.Error("saving filter state failed", zap.String("session", sessionID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save filters"))
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, models.FilterStateResponse{
		SessionID:   sessionID,
		Criteria:    state.Snapshot(),
		ActiveCount: state.ActiveCount(),
	}))
}
