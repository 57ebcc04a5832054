package dto

// CalendarDayDTO is one cell of the 42-cell monthly grid.
type CalendarDayDTO struct {
	Date           string     `json:"date"` // YYYY-MM-DD
	IsCurrentMonth bool       `json:"is_current_month"`
	IsToday        bool       `json:"is_today"`
	PaperCount     int        `json:"paper_count"`
	Tier           string     `json:"tier"` // high | medium | low | none
	Papers         []PaperDTO `json:"papers"`
}

// CalendarDTO is the full monthly view: exactly 42 day cells plus the fetch
// and filter counts the front-end displays next to the grid.
type CalendarDTO struct {
	Year           int              `json:"year"`
	Month          int              `json:"month"` // zero-based (0 = January)
	StartDate      string           `json:"start_date"`
	EndDate        string           `json:"end_date"`
	Query          string           `json:"query,omitempty"`
	TotalPapers    int              `json:"total_papers"`
	FilteredPapers int              `json:"filtered_papers"`
	Days           []CalendarDayDTO `json:"days"`
}

// DayPapersDTO is the detail list for a single selected day.
type DayPapersDTO struct {
	Date       string     `json:"date"`
	PaperCount int        `json:"paper_count"`
	Papers     []PaperDTO `json:"papers"`
}
