package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"dispatch-board/internal/domain"
	repoInterface "dispatch-board/internal/repository/interface"
	"dispatch-board/internal/service/filtering"
	"dispatch-board/internal/service/processing"
)

// State of the load lifecycle: loading -> success | error. A refresh
// re-enters loading and repeats the fetch-process sequence.
type State string

const (
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// ErrLoadFailed is the single user-facing load error. The underlying cause
// is logged, never surfaced.
var ErrLoadFailed = errors.New("data load failed")

// Config - session tuning knobs.
type Config struct {
	FetchTimeout time.Duration
}

// Store holds the in-memory session state behind a mutex. Racing refreshes
// are not deduplicated: whichever completes last writes the state.
type Store struct {
	source repoInterface.RecordSource
	audits repoInterface.LoadAuditRepository // nil disables auditing
	config Config

	mu                sync.RWMutex
	state             State
	loadErr           string
	dispatch          []domain.DispatchEntry
	realloc           []domain.ReallocationEntry
	reallocByChassis  map[string]domain.ReallocationEntry
	dispatchByChassis map[string]domain.DispatchEntry
	snowy             []domain.DispatchEntry
	dispatchable      []domain.DispatchEntry
	stats             domain.DispatchStats
	filter            string
	search            string
	loadedAt          time.Time
}

// View - a consistent snapshot for the presentation layer. Entries is the
// category-filtered table; the search term narrows the match counts only,
// not the rows.
type View struct {
	State         State                      `json:"state"`
	Error         string                     `json:"error,omitempty"`
	Entries       []domain.DispatchEntry     `json:"entries"`
	Reallocations []domain.ReallocationEntry `json:"reallocations"`
	Stats         domain.DispatchStats       `json:"stats"`
	Filter        string                     `json:"filter"`
	Search        string                     `json:"search"`
	SearchCounts  filtering.SearchResult     `json:"search_counts"`
	LoadedAt      time.Time                  `json:"loaded_at"`
}

func New(source repoInterface.RecordSource, audits repoInterface.LoadAuditRepository, cfg Config) *Store {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 15 * time.Second
	}
	return &Store{
		source: source,
		audits: audits,
		config: cfg,
		state:  StateLoading,
		filter: domain.FilterAll,
	}
}

// Refresh fetches the three raw collections concurrently and applies them
// only if all three succeed. Any failure discards all results and moves the
// session to the error state; retry is manual.
func (s *Store) Refresh(ctx context.Context, cause string) error {
	s.mu.Lock()
	s.state = StateLoading
	s.loadErr = ""
	s.mu.Unlock()

	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, s.config.FetchTimeout)
	defer cancel()

	var rawRealloc, rawDispatch, rawSchedule []domain.RawRecord
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rawRealloc, err = s.source.FetchReallocationData(gctx)
		return err
	})
	g.Go(func() (err error) {
		rawDispatch, err = s.source.FetchDispatchData(gctx)
		return err
	})
	g.Go(func() (err error) {
		rawSchedule, err = s.source.FetchScheduleData(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("cause", cause).Msg("data load failed")
		s.mu.Lock()
		s.state = StateError
		s.loadErr = ErrLoadFailed.Error()
		s.mu.Unlock()
		s.recordAudit(cause, err, 0, 0, 0, time.Since(start))
		return ErrLoadFailed
	}

	reallocByChassis := processing.ReallocationByChassis(rawRealloc)
	realloc := processing.ProcessReallocationData(rawRealloc, rawSchedule)
	dispatch := processing.ProcessDispatchData(rawDispatch, reallocByChassis)
	snowy, dispatchable := processing.Classify(dispatch)
	stats := processing.GetDispatchStats(dispatch)

	s.mu.Lock()
	s.state = StateSuccess
	s.dispatch = dispatch
	s.realloc = realloc
	s.reallocByChassis = reallocByChassis
	s.dispatchByChassis = processing.DispatchByChassis(dispatch)
	s.snowy = snowy
	s.dispatchable = dispatchable
	s.stats = stats
	s.loadedAt = time.Now()
	s.mu.Unlock()

	log.Info().
		Str("cause", cause).
		Int("dispatch", len(dispatch)).
		Int("reallocation", len(realloc)).
		Dur("took", time.Since(start)).
		Msg("data loaded")

	s.recordAudit(cause, nil, len(dispatch), len(realloc), len(rawSchedule), time.Since(start))
	return nil
}

// SetFilter activates a filter key. Selecting a filter always clears the
// free-text search term.
func (s *Store) SetFilter(key string) {
	if !domain.KnownFilter(key) {
		key = domain.FilterAll
	}
	s.mu.Lock()
	s.filter = key
	s.search = ""
	s.mu.Unlock()
}

// SetSearch stores the free-text search term.
func (s *Store) SetSearch(term string) {
	s.mu.Lock()
	s.search = term
	s.mu.Unlock()
}

// Snapshot computes the current view. Dispatch match counts run against the
// filtered list; reallocation counts always run against the full list.
func (s *Store) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := filtering.SelectFilter(s.filter, s.dispatch, s.snowy, s.dispatchable)
	counts := filtering.SearchCounts(s.search, filtered, s.realloc, s.reallocByChassis, s.dispatchByChassis)

	return View{
		State:         s.state,
		Error:         s.loadErr,
		Entries:       filtered,
		Reallocations: s.realloc,
		Stats:         s.stats,
		Filter:        s.filter,
		Search:        s.search,
		SearchCounts:  counts,
		LoadedAt:      s.loadedAt,
	}
}

func (s *Store) recordAudit(cause string, loadErr error, dispatch, realloc, schedule int, took time.Duration) {
	if s.audits == nil {
		return
	}
	audit := &domain.LoadAudit{
		Cause:             cause,
		Status:            "ok",
		DispatchCount:     dispatch,
		ReallocationCount: realloc,
		ScheduleCount:     schedule,
		DurationMS:        int(took.Milliseconds()),
	}
	if loadErr != nil {
		audit.Status = "error"
		audit.Error = loadErr.Error()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.audits.CreateLoadAudit(ctx, audit); err != nil {
		log.Warn().Err(err).Msg("failed to record load audit")
	}
}
