package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biorxiv-calendar/biorxiv"
	"biorxiv-calendar/models"
)

func newMonthServer(t *testing.T, papers []models.Paper) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"messages":   []map[string]any{{"status": "ok", "count": len(papers), "total": len(papers)}},
			"collection": papers,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestGetMonthBuildsCalendar(t *testing.T) {
	srv := newMonthServer(t, []models.Paper{
		{DOI: "10.1101/a", Title: "Zebrafish neurons", Date: "2026-09-01", Category: "neuroscience"},
		{DOI: "10.1101/b", Title: "Organoid screens", Date: "2026-09-01", Category: "genetics"},
		{DOI: "10.1101/c", Title: "Protein folding", Date: "2026-09-02", Category: "biophysics"},
	})
	defer srv.Close()

	svc := NewCalendarService(biorxiv.NewWithBase(srv.URL, "biorxiv", 0, 0))
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }

	out := svc.GetMonth(context.Background(), MonthInput{Year: 2026, Month: 8})

	require.Len(t, out.Days, 42)
	assert.Equal(t, 2026, out.Year)
	assert.Equal(t, 8, out.Month)
	assert.Equal(t, "2026-09-01", out.StartDate)
	assert.Equal(t, "2026-09-30", out.EndDate)
	assert.Equal(t, 3, out.TotalPapers)
	assert.Equal(t, 3, out.FilteredPapers)

	var sep1 int
	for i, d := range out.Days {
		if d.Date == "2026-09-01" {
			sep1 = i
		}
	}
	assert.True(t, out.Days[sep1].IsCurrentMonth)
	assert.True(t, out.Days[sep1].IsToday)
	assert.Equal(t, 2, out.Days[sep1].PaperCount)
	assert.Equal(t, "low", out.Days[sep1].Tier)
}

func TestGetMonthAppliesSearchFilter(t *testing.T) {
	srv := newMonthServer(t, []models.Paper{
		{DOI: "10.1101/a", Title: "Zebrafish neurons", Date: "2026-09-01"},
		{DOI: "10.1101/b", Title: "Organoid screens", Date: "2026-09-01"},
	})
	defer srv.Close()

	svc := NewCalendarService(biorxiv.NewWithBase(srv.URL, "biorxiv", 0, 0))
	out := svc.GetMonth(context.Background(), MonthInput{Year: 2026, Month: 8, Query: "zebrafish"})

	assert.Equal(t, 2, out.TotalPapers)
	assert.Equal(t, 1, out.FilteredPapers)
	for _, d := range out.Days {
		if d.Date == "2026-09-01" {
			assert.Equal(t, 1, d.PaperCount)
			assert.Equal(t, "10.1101/a", d.Papers[0].DOI)
		}
	}
}

func TestGetDay(t *testing.T) {
	srv := newMonthServer(t, []models.Paper{
		{DOI: "10.1101/a", Title: "Zebrafish neurons", Date: "2026-09-01"},
		{DOI: "10.1101/b", Title: "Organoid screens", Date: "2026-09-02"},
	})
	defer srv.Close()

	svc := NewCalendarService(biorxiv.NewWithBase(srv.URL, "biorxiv", 0, 0))
	out := svc.GetDay(context.Background(), MonthInput{Year: 2026, Month: 8}, "2026-09-02")

	assert.Equal(t, "2026-09-02", out.Date)
	assert.Equal(t, 1, out.PaperCount)
	require.Len(t, out.Papers, 1)
	assert.Equal(t, "10.1101/b", out.Papers[0].DOI)
}
