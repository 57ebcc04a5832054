package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biorxiv-calendar/biorxiv"
	"biorxiv-calendar/cmd/api/handlers"
	"biorxiv-calendar/cmd/api/services"
	"biorxiv-calendar/models"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"messages": []map[string]any{{"status": "ok", "count": 1, "total": 1}},
			"collection": []models.Paper{
				{DOI: "10.1101/a", Title: "Zebrafish neurons", Date: "2026-09-01"},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(upstream.Close)

	svc := services.NewCalendarService(biorxiv.NewWithBase(upstream.URL, "biorxiv", 0, 0))

	r := gin.New()
	r.GET("/api/v1/calendar", handlers.GetCalendarHandler(svc))
	r.GET("/api/v1/papers", handlers.ListDayPapersHandler(svc))
	return r
}

func TestGetCalendarReturns42Days(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar?year=2026&month=8", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Days        []json.RawMessage `json:"days"`
		TotalPapers int               `json:"total_papers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Days, 42)
	assert.Equal(t, 1, body.TotalPapers)
}

func TestGetCalendarRejectsInvalidMonth(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar?year=2026&month=12", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListDayPapersRejectsBadDate(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/papers?year=2026&month=8&date=09-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListDayPapers(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/papers?year=2026&month=8&date=2026-09-01", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Date       string `json:"date"`
		PaperCount int    `json:"paper_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2026-09-01", body.Date)
	assert.Equal(t, 1, body.PaperCount)
}
