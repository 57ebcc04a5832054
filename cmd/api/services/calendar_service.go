package services

import (
	"context"
	"time"

	"biorxiv-calendar/biorxiv"
	"biorxiv-calendar/calendar"
	"biorxiv-calendar/cmd/api/dto"
	"biorxiv-calendar/models"
	"biorxiv-calendar/search"
)

// CalendarService encapsulates the month view: fetch a full month from the
// bioRxiv API, apply the text filter, derive the 42-cell grid and map it to
// DTOs. Each call fetches fresh — nothing is kept between requests, so a
// slow month fetch can never leak into a later navigation.
type CalendarService struct {
	fetcher *biorxiv.Client
	now     func() time.Time
}

func NewCalendarService(fetcher *biorxiv.Client) *CalendarService {
	return &CalendarService{fetcher: fetcher, now: time.Now}
}

// MonthInput identifies a displayed month plus the active search query.
// Month is zero-based (0 = January).
type MonthInput struct {
	Year  int
	Month int
	Query string
}

// GetMonth builds the calendar DTO for one month. The fetcher degrades to
// partial results on its own, so this never fails.
func (s *CalendarService) GetMonth(ctx context.Context, in MonthInput) dto.CalendarDTO {
	all := s.fetcher.FetchPapersByMonth(ctx, in.Year, in.Month)
	filtered := search.Filter(all, in.Query)
	grid := calendar.BuildGrid(in.Year, in.Month, filtered, s.now().UTC())

	days := make([]dto.CalendarDayDTO, 0, len(grid))
	for _, cell := range grid {
		days = append(days, dto.CalendarDayDTO{
			Date:           cell.Date.Format("2006-01-02"),
			IsCurrentMonth: cell.IsCurrentMonth,
			IsToday:        cell.IsToday,
			PaperCount:     len(cell.Papers),
			Tier:           string(cell.Tier()),
			Papers:         mapPapers(cell.Papers),
		})
	}

	startDate, endDate := biorxiv.MonthRange(in.Year, in.Month)
	return dto.CalendarDTO{
		Year:           in.Year,
		Month:          in.Month,
		StartDate:      startDate,
		EndDate:        endDate,
		Query:          in.Query,
		TotalPapers:    len(all),
		FilteredPapers: len(filtered),
		Days:           days,
	}
}

// GetDay returns the filtered detail list for one day (YYYY-MM-DD) of the
// month identified by in.
func (s *CalendarService) GetDay(ctx context.Context, in MonthInput, date string) dto.DayPapersDTO {
	all := s.fetcher.FetchPapersByMonth(ctx, in.Year, in.Month)
	filtered := search.Filter(all, in.Query)

	dayPapers := make([]models.Paper, 0)
	for _, p := range filtered {
		if p.Date == date {
			dayPapers = append(dayPapers, p)
		}
	}

	return dto.DayPapersDTO{
		Date:       date,
		PaperCount: len(dayPapers),
		Papers:     mapPapers(dayPapers),
	}
}

func mapPapers(papers []models.Paper) []dto.PaperDTO {
	out := make([]dto.PaperDTO, 0, len(papers))
	for _, p := range papers {
		out = append(out, dto.FromPaper(p))
	}
	return out
}
