package services

import (
	"context"
	"errors"

	"biorxiv-calendar/cmd/api/dto"
	"biorxiv-calendar/internal/logger"
	"biorxiv-calendar/summaries"
	"biorxiv-calendar/summarizer"
)

// ErrSummaryInFlight is returned when a summary for the same DOI is already
// being generated; the caller should poll instead of re-requesting.
var ErrSummaryInFlight = errors.New("summary request already in flight")

// SummaryService drives the per-DOI summary state machine: a DOI moves
// NotRequested → Loading → Ready|Failed, a Ready summary is served from the
// transient store without a second provider call, and a Failed one may be
// retried by re-triggering the same action.
type SummaryService struct {
	store       *summaries.Store
	summarizeFn func(ctx context.Context, abstract string) (string, error)
	explainFn   func(ctx context.Context, text string) (string, error)
}

func NewSummaryService(store *summaries.Store) *SummaryService {
	return &SummaryService{
		store:       store,
		summarizeFn: summarizer.SummarizeAbstract,
		explainFn:   summarizer.ExplainJargon,
	}
}

// Summarize runs the one-shot summarization for doi. An already-populated
// DOI returns its cached state; an in-flight one returns ErrSummaryInFlight.
// Provider failures are recorded as a Failed state, not returned as errors.
func (s *SummaryService) Summarize(ctx context.Context, doi, abstract string) (dto.SummaryDTO, error) {
	if e := s.store.Get(doi); e.Status == summaries.StatusReady {
		return readyDTO(doi, e.Text), nil
	}

	if !s.store.Begin(doi) {
		// Lost the race: either another request is in flight or it just
		// finished. Ready is served, Loading is reported for polling.
		e := s.store.Get(doi)
		if e.Status == summaries.StatusReady {
			return readyDTO(doi, e.Text), nil
		}
		return dto.SummaryDTO{DOI: doi, Status: string(e.Status)}, ErrSummaryInFlight
	}

	text, err := s.summarizeFn(ctx, abstract)
	if err != nil {
		logger.ErrorWithFields("summarization failed", logger.Fields{
			"doi":   doi,
			"error": err.Error(),
		})
		s.store.SetFailed(doi, "summarization failed")
		return dto.SummaryDTO{
			DOI:    doi,
			Status: string(summaries.StatusFailed),
			Error:  "summarization failed",
		}, nil
	}

	s.store.SetReady(doi, text)
	return readyDTO(doi, text), nil
}

// Get reports the current summary state for doi without triggering a call.
func (s *SummaryService) Get(doi string) dto.SummaryDTO {
	e := s.store.Get(doi)
	switch e.Status {
	case summaries.StatusReady:
		return readyDTO(doi, e.Text)
	case summaries.StatusFailed:
		return dto.SummaryDTO{DOI: doi, Status: string(e.Status), Error: e.Reason}
	default:
		return dto.SummaryDTO{DOI: doi, Status: string(e.Status)}
	}
}

// Clear drops the transient state for doi, e.g. when the detail view for
// its day closes.
func (s *SummaryService) Clear(doi string) {
	s.store.Clear(doi)
}

// ExplainJargon returns plain-language explanations for the most complex
// terms in text.
func (s *SummaryService) ExplainJargon(ctx context.Context, text string) (dto.JargonDTO, error) {
	explanation, err := s.explainFn(ctx, text)
	if err != nil {
		return dto.JargonDTO{}, err
	}
	return dto.JargonDTO{Explanation: explanation}, nil
}

func readyDTO(doi, text string) dto.SummaryDTO {
	return dto.SummaryDTO{
		DOI:     doi,
		Status:  string(summaries.StatusReady),
		Text:    text,
		Bullets: summarizer.ParseBullets(text),
	}
}
