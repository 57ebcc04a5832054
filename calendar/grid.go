package calendar

import (
	"time"

	"biorxiv-calendar/models"
)

// GridSize is the fixed number of cells in a monthly grid: 6 rows of 7
// weekday columns, Sunday-first.
const GridSize = 42

// Tier classifies a day by how many papers were deposited on it, for
// heatmap rendering.
type Tier string

const (
	TierHigh   Tier = "high"   // n > 10
	TierMedium Tier = "medium" // 5 < n <= 10
	TierLow    Tier = "low"    // 0 < n <= 5
	TierNone   Tier = "none"   // n = 0
)

// TierFor returns the heatmap tier for a cell holding n papers.
func TierFor(n int) Tier {
	switch {
	case n > 10:
		return TierHigh
	case n > 5:
		return TierMedium
	case n > 0:
		return TierLow
	default:
		return TierNone
	}
}

// DayCell is one cell of the monthly grid. Cells are derived values,
// recomputed in full whenever the month or the active filter changes.
type DayCell struct {
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
	Papers         []models.Paper
}

// Tier returns the heatmap tier for this cell.
func (c DayCell) Tier() Tier {
	return TierFor(len(c.Papers))
}

// BuildGrid derives the 42-cell grid for (year, month) with the given papers
// bucketed per day. month is zero-based. today determines the IsToday flag
// and is passed in so callers control the clock.
//
// Leading cells before the first of the month and trailing cells after its
// last day belong to the adjacent months; they are never marked today and
// always carry an empty paper list. A paper lands in the cell whose date
// equals its record date (compared as YYYY-MM-DD strings), so papers dated
// outside the month appear in no cell at all.
func BuildGrid(year, month int, papers []models.Paper, today time.Time) []DayCell {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := int(first.Weekday()) // 0 = Sunday

	byDate := make(map[string][]models.Paper, daysInMonth)
	for _, p := range papers {
		byDate[p.Date] = append(byDate[p.Date], p)
	}

	cells := make([]DayCell, 0, GridSize)

	// previous-month fill
	for i := offset; i > 0; i-- {
		cells = append(cells, DayCell{
			Date:   first.AddDate(0, 0, -i),
			Papers: []models.Paper{},
		})
	}

	// displayed month
	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
		isToday := d.Year() == today.Year() &&
			d.Month() == today.Month() &&
			d.Day() == today.Day()

		dayPapers := byDate[d.Format("2006-01-02")]
		if dayPapers == nil {
			dayPapers = []models.Paper{}
		}

		cells = append(cells, DayCell{
			Date:           d,
			IsCurrentMonth: true,
			IsToday:        isToday,
			Papers:         dayPapers,
		})
	}

	// next-month fill up to exactly 42 cells
	last := len(cells)
	for i := 1; i <= GridSize-last; i++ {
		cells = append(cells, DayCell{
			Date:   time.Date(year, time.Month(month+2), i, 0, 0, 0, 0, time.UTC),
			Papers: []models.Paper{},
		})
	}

	return cells
}
