package handlers

import (
	"net/http"
	"strconv"
	"time"

	_ "biorxiv-calendar/cmd/api/dto"

	"github.com/gin-gonic/gin"

	"biorxiv-calendar/cmd/api/services"
)

// monthInputFromQuery reads year/month/q query params; missing year/month
// default to the current month. month is zero-based (0 = January).
func monthInputFromQuery(c *gin.Context) (services.MonthInput, bool) {
	now := time.Now().UTC()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return services.MonthInput{}, false
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month())-1)))
	if err != nil || month < 0 || month > 11 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month (expected 0-11)"})
		return services.MonthInput{}, false
	}

	return services.MonthInput{
		Year:  year,
		Month: month,
		Query: c.Query("q"),
	}, true
}

// GetCalendarHandler godoc
// @Summary      Monthly calendar grid
// @Description  42-cell grid of one month with per-day paper buckets and heatmap tiers
// @Tags         calendar
// @Param        year   query  int     false  "Year (defaults to current)"
// @Param        month  query  int     false  "Zero-based month, 0-11 (defaults to current)"
// @Param        q      query  string  false  "Search query (title/abstract/authors/category substring)"
// @Produce      json
// @Success      200  {object}  dto.CalendarDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /calendar [get]
func GetCalendarHandler(svc *services.CalendarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, ok := monthInputFromQuery(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, svc.GetMonth(c.Request.Context(), in))
	}
}

// ListDayPapersHandler godoc
// @Summary      Papers of one day
// @Description  Detail list for a single day, filtered by the active search query
// @Tags         calendar
// @Param        year   query  int     false  "Year (defaults to current)"
// @Param        month  query  int     false  "Zero-based month, 0-11 (defaults to current)"
// @Param        date   query  string  true   "Day to inspect (YYYY-MM-DD)"
// @Param        q      query  string  false  "Search query"
// @Produce      json
// @Success      200  {object}  dto.DayPapersDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /papers [get]
func ListDayPapersHandler(svc *services.CalendarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if _, err := time.Parse("2006-01-02", date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date (expected YYYY-MM-DD)"})
			return
		}
		in, ok := monthInputFromQuery(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, svc.GetDay(c.Request.Context(), in, date))
	}
}
