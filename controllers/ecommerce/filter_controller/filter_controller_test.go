package filter_controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/middleware"
	"github.com/phnam24/frontend-v1-sub001/models"
	"github.com/phnam24/frontend-v1-sub001/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct{ persistence.BlobStore }

func (brokenStore) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("store offline")
}

func setup(store persistence.BlobStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(filters.NewSessions(store, nil), nil)

	r := gin.New()
	g := r.Group("/store/filters", middleware.SessionID())
	g.GET("", h.GetFilters)
	g.PUT("/price", h.SetPriceRange)
	g.PUT("/sort", h.SetSort)
	g.POST("/toggle", h.ToggleFilter)
	g.DELETE("/:facet", h.ClearFilter)
	g.DELETE("", h.ResetFilters)
	return r
}

func call(r http.Handler, method, target, sessionID, body string) (*httptest.ResponseRecorder, models.FilterStateResponse) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env struct {
		Data models.FilterStateResponse `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env.Data
}

func TestGetFilters_IssuesSession(t *testing.T) {
	r := setup(persistence.NewMemoryStore())

	w, state := call(r, http.MethodGet, "/store/filters", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	sid := w.Header().Get(middleware.SessionHeader)
	_, err := uuid.Parse(sid)
	require.NoError(t, err)
	assert.Equal(t, sid, state.SessionID)
	assert.Equal(t, 0, state.ActiveCount)
	assert.Equal(t, filters.NewCriteria(), state.Criteria)

	w, _ = call(r, http.MethodGet, "/store/filters", "not-a-uuid", "")
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(middleware.SessionHeader))
}

func TestFilters_ActiveCountScenario(t *testing.T) {
	r := setup(persistence.NewMemoryStore())
	sid := uuid.NewString()

	call(r, http.MethodPost, "/store/filters/toggle", sid, `{"facet":"category","value":"1"}`)
	call(r, http.MethodPost, "/store/filters/toggle", sid, `{"facet":"category","value":"2"}`)
	w, state := call(r, http.MethodPut, "/store/filters/price", sid, `{"min":5000000,"max":20000000}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 3, state.ActiveCount)
	assert.Equal(t, []int64{1, 2}, state.Criteria.CategoryIDs)
	assert.Equal(t, filters.PriceRange{Min: 5_000_000, Max: 20_000_000}, state.Criteria.Price)

	// a fresh request for the same session sees the persisted selection
	_, state = call(r, http.MethodGet, "/store/filters", sid, "")
	assert.Equal(t, 3, state.ActiveCount)
}

func TestToggleFilter_TwiceRestores(t *testing.T) {
	r := setup(persistence.NewMemoryStore())
	sid := uuid.NewString()

	_, before := call(r, http.MethodGet, "/store/filters", sid, "")
	_, mid := call(r, http.MethodPost, "/store/filters/toggle", sid, `{"facet":"RAM","value":" 16GB "}`)
	assert.Equal(t, []string{"16GB"}, mid.Criteria.RAM)

	_, after := call(r, http.MethodPost, "/store/filters/toggle", sid, `{"facet":"ram","value":"16GB"}`)
	assert.Equal(t, before.Criteria, after.Criteria)
}

func TestToggleFilter_BadRequests(t *testing.T) {
	r := setup(persistence.NewMemoryStore())

	for _, body := range []string{
		`{"facet":"colour","value":"red"}`,
		`{"facet":"brand","value":"acme"}`,
		`{"facet":"category","value":"-3"}`,
		`{"facet":"cpu"}`,
		`not json`,
	} {
		w, _ := call(r, http.MethodPost, "/store/filters/toggle", uuid.NewString(), body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestSetPriceRange(t *testing.T) {
	r := setup(persistence.NewMemoryStore())
	sid := uuid.NewString()

	_, state := call(r, http.MethodPut, "/store/filters/price", sid, `{"min":1000000}`)
	assert.Equal(t, filters.PriceRange{Min: 1_000_000, Max: filters.PriceUnbounded}, state.Criteria.Price)

	// inverted ranges are stored as given
	_, state = call(r, http.MethodPut, "/store/filters/price", sid, `{"min":9,"max":1}`)
	assert.Equal(t, filters.PriceRange{Min: 9, Max: 1}, state.Criteria.Price)

	w, _ := call(r, http.MethodPut, "/store/filters/price", sid, `{"max":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearAndReset(t *testing.T) {
	r := setup(persistence.NewMemoryStore())
	sid := uuid.NewString()

	call(r, http.MethodPost, "/store/filters/toggle", sid, `{"facet":"brand","value":"4"}`)
	call(r, http.MethodPost, "/store/filters/toggle", sid, `{"facet":"gpu","value":"RTX 4060"}`)
	call(r, http.MethodPut, "/store/filters/price", sid, `{"min":1,"max":2}`)
	_, state := call(r, http.MethodPut, "/store/filters/sort", sid, `{"sort_by":"price_desc"}`)
	require.Equal(t, 3, state.ActiveCount)
	assert.Equal(t, "price-desc", string(state.Criteria.SortBy))

	_, state = call(r, http.MethodDelete, "/store/filters/price", sid, "")
	assert.Equal(t, 2, state.ActiveCount)

	_, state = call(r, http.MethodDelete, "/store/filters/gpu", sid, "")
	assert.Equal(t, 1, state.ActiveCount)

	w, _ := call(r, http.MethodDelete, "/store/filters/colour", sid, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, state = call(r, http.MethodDelete, "/store/filters", sid, "")
	assert.Equal(t, 0, state.ActiveCount)
	assert.Equal(t, "price-desc", string(state.Criteria.SortBy))
}

func TestFilters_StoreFailure(t *testing.T) {
	r := setup(brokenStore{})
	w, _ := call(r, http.MethodGet, "/store/filters", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestToggleFilter_ConcurrentRequestsOnOneSession(t *testing.T) {
	r := setup(persistence.NewMemoryStore())
	sid := uuid.NewString()

	const n = 25
	var wg sync.WaitGroup
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"facet":"category","value":"%d"}`, id)
			w, _ := call(r, http.MethodPost, "/store/filters/toggle", sid, body)
			assert.Equal(t, http.StatusOK, w.Code)
		}(i)
	}
	wg.Wait()

	_, state := call(r, http.MethodGet, "/store/filters", sid, "")
	assert.Len(t, state.Criteria.CategoryIDs, n)
	assert.Equal(t, n, state.ActiveCount)
}
