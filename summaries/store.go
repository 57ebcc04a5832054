package summaries

import "sync"

// Status is the tagged state of one paper's summary request.
type Status string

const (
	StatusNotRequested Status = "not_requested"
	StatusLoading      Status = "loading"
	StatusReady        Status = "ready"
	StatusFailed       Status = "failed"
)

// Entry holds the transient per-DOI summary state. Text is set only when
// Ready, Reason only when Failed.
type Entry struct {
	Status Status
	Text   string
	Reason string
}

// Store is an in-memory mapping from DOI to summary state. State lives only
// for the duration of a detail session: it is cleared explicitly when the
// detail view closes and discarded entirely on restart.
type Store struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewStore() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// Get returns the current state for doi; an unknown DOI is NotRequested.
func (s *Store) Get(doi string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[doi]
	if !ok {
		return Entry{Status: StatusNotRequested}
	}
	return e
}

// Begin transitions doi to Loading and returns true. It refuses (returns
// false) when a request is already in flight or a summary is already
// populated; a Failed entry may be retried.
func (s *Store) Begin(doi string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.entries[doi].Status {
	case StatusLoading, StatusReady:
		return false
	}
	s.entries[doi] = Entry{Status: StatusLoading}
	return true
}

// SetReady records a completed summary for doi.
func (s *Store) SetReady(doi, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[doi] = Entry{Status: StatusReady, Text: text}
}

// SetFailed records a failed summary for doi. The failure is retryable via
// a later Begin.
func (s *Store) SetFailed(doi, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[doi] = Entry{Status: StatusFailed, Reason: reason}
}

// Clear drops the state for doi, returning it to NotRequested.
func (s *Store) Clear(doi string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, doi)
}
