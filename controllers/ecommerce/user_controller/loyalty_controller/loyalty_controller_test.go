package loyalty_controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phnam24/frontend-v1-sub001/loyalty"
	"github.com/phnam24/frontend-v1-sub001/middleware"
	"github.com/phnam24/frontend-v1-sub001/models"
	"github.com/phnam24/frontend-v1-sub001/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStandings map[uuid.UUID]models.LoyaltyStanding

func (f fakeStandings) GetStanding(_ context.Context, id uuid.UUID) (*models.LoyaltyStanding, error) {
	s, ok := f[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

type fakeVouchers struct {
	vouchers []models.Voucher
	err      error
}

func (f fakeVouchers) ListActive(context.Context) ([]models.Voucher, error) {
	return f.vouchers, f.err
}

func (f fakeVouchers) GetByCode(_ context.Context, code string) (*models.Voucher, error) {
	for _, v := range f.vouchers {
		if strings.EqualFold(v.Code, code) {
			return &v, nil
		}
	}
	return nil, repository.ErrNotFound
}

var (
	bronzeUser = uuid.MustParse("0190a0e0-0000-7000-8000-000000000001")
	goldUser   = uuid.MustParse("0190a0e0-0000-7000-8000-000000000002")
	topUser    = uuid.MustParse("0190a0e0-0000-7000-8000-000000000003")
)

func setup(vouchers fakeVouchers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(fakeStandings{
		bronzeUser: {UserID: bronzeUser, Rank: loyalty.Bronze, TotalSpent: 5_000_000},
		goldUser:   {UserID: goldUser, Rank: loyalty.Gold, TotalSpent: 40_000_000},
		topUser:    {UserID: topUser, Rank: loyalty.Diamond, TotalSpent: 80_000_000},
	}, vouchers, nil, nil)
	h.now = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }

	r := gin.New()
	r.GET("/store/ranks", h.GetRankLadder)
	user := r.Group("/user", func(c *gin.Context) {
		if id := c.GetHeader("X-Test-User"); id != "" {
			c.Set(middleware.ContextUserID, id)
		}
		c.Next()
	})
	user.GET("/rank", h.GetRank)
	user.GET("/vouchers", h.GetVouchers)
	user.GET("/vouchers/:code/eligibility", h.GetVoucherEligibility)
	return r
}

func get(r http.Handler, target string, user uuid.UUID) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if user != uuid.Nil {
		req.Header.Set("X-Test-User", user.String())
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var env struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}

func TestGetRank(t *testing.T) {
	r := setup(fakeVouchers{})

	w := get(r, "/user/rank", bronzeUser)
	require.Equal(t, http.StatusOK, w.Code)
	progress := decode[loyalty.RankProgress](t, w)
	assert.Equal(t, loyalty.Bronze, progress.Current)
	require.NotNil(t, progress.Next)
	assert.Equal(t, loyalty.Silver, *progress.Next)
	assert.Equal(t, 5_000_000.0, progress.AmountToNext)
	assert.InDelta(t, 50.0, progress.ProgressPercent, 1e-9)

	progress = decode[loyalty.RankProgress](t, get(r, "/user/rank", topUser))
	assert.Nil(t, progress.Next)
	assert.Equal(t, 100.0, progress.ProgressPercent)
	assert.Equal(t, 0.0, progress.AmountToNext)
}

func TestGetRank_Errors(t *testing.T) {
	r := setup(fakeVouchers{})

	assert.Equal(t, http.StatusUnauthorized, get(r, "/user/rank", uuid.Nil).Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/user/rank", uuid.New()).Code)
}

func TestGetRankLadder(t *testing.T) {
	w := get(setup(fakeVouchers{}), "/store/ranks", uuid.Nil)
	require.Equal(t, http.StatusOK, w.Code)

	steps := decode[[]loyalty.TierStep](t, w)
	require.Len(t, steps, 4)
	assert.Equal(t, loyalty.TierStep{Tier: loyalty.Gold, Threshold: 30_000_000}, steps[2])
}

func TestGetVouchers(t *testing.T) {
	r := setup(fakeVouchers{vouchers: []models.Voucher{
		{Code: "WELCOME", MinRank: loyalty.Bronze, Active: true},
		{Code: "GOLD15", MinRank: loyalty.Gold, Active: true},
		{Code: "VIP30", MinRank: loyalty.Diamond, Active: true},
	}})

	views := decode[[]models.VoucherView](t, get(r, "/user/vouchers", goldUser))
	require.Len(t, views, 3)
	assert.True(t, views[0].Usable)
	assert.True(t, views[1].Usable)
	assert.False(t, views[2].Usable)
	assert.Equal(t, "Requires DIAMOND rank or higher", views[2].Reason)
}

func TestGetVouchers_Errors(t *testing.T) {
	r := setup(fakeVouchers{err: errors.New("db down")})
	assert.Equal(t, http.StatusInternalServerError, get(r, "/user/vouchers", goldUser).Code)

	r = setup(fakeVouchers{})
	assert.Equal(t, http.StatusNotFound, get(r, "/user/vouchers", uuid.New()).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/user/vouchers", uuid.Nil).Code)
}

func TestGetVoucherEligibility(t *testing.T) {
	expired := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r := setup(fakeVouchers{vouchers: []models.Voucher{
		{Code: "GOLD15", MinRank: loyalty.Gold, Active: true},
		{Code: "NEWYEAR", MinRank: loyalty.Bronze, Active: true, ExpiresAt: &expired},
	}})

	tests := []struct {
		name   string
		code   string
		user   uuid.UUID
		status int
		usable bool
	}{
		{"eligible", "gold15", goldUser, http.StatusOK, true},
		{"rank too low", "GOLD15", bronzeUser, http.StatusOK, false},
		{"expired", "NEWYEAR", topUser, http.StatusOK, false},
		{"unknown code", "NOPE", goldUser, http.StatusNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/user/vouchers/"+tt.code+"/eligibility", tt.user)
			require.Equal(t, tt.status, w.Code)
			if tt.status != http.StatusOK {
				return
			}
			body := decode[models.VoucherEligibilityResponse](t, w)
			assert.Equal(t, tt.usable, body.Voucher.Usable)
		})
	}
}
