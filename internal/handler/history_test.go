package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahrukh0396/GFlights/internal/models"
)

func TestHistoryListHandler(t *testing.T) {
	svc, st := newTestService(&stubProvider{})
	h := NewHistoryHandler(svc)

	at := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, st.AppendRecentSearch(context.Background(), models.RecentSearch{
		ID:            "1",
		Origin:        "CGK",
		Destination:   "DPS",
		DepartureDate: "2026-09-15",
		Passengers:    2,
		SearchedAt:    at,
	}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/searches/recent", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.RecentSearchesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Searches, 1)
	assert.Equal(t, "CGK", resp.Searches[0].Origin)
}

func TestHistoryListHandlerEmpty(t *testing.T) {
	svc, _ := newTestService(&stubProvider{})
	h := NewHistoryHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/searches/recent", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count": 0, "searches": []}`, rec.Body.String())
}

func TestHistoryClearHandler(t *testing.T) {
	svc, st := newTestService(&stubProvider{})
	h := NewHistoryHandler(svc)

	require.NoError(t, st.AppendRecentSearch(context.Background(), models.RecentSearch{ID: "1", Origin: "CGK", Destination: "DPS"}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/searches/recent", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Clear(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, st.RecentSearches(context.Background()))
}

func TestRoutesPopularHandler(t *testing.T) {
	svc, _ := newTestService(&stubProvider{})
	h := NewRoutesHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/routes/popular", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Popular(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.PopularRoutesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.Count)
	require.NotEmpty(t, resp.Routes)
	assert.Equal(t, "CGK", resp.Routes[0].Origin)
	assert.Equal(t, "DPS", resp.Routes[0].Destination)
	assert.Equal(t, "$85", resp.Routes[0].PriceDisplay)
}
