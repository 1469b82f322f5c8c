package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch-board/internal/domain"
)

type stubSource struct {
	realloc     []domain.RawRecord
	dispatch    []domain.RawRecord
	schedule    []domain.RawRecord
	reallocErr  error
	dispatchErr error
	scheduleErr error
}

func (s *stubSource) FetchReallocationData(ctx context.Context) ([]domain.RawRecord, error) {
	return s.realloc, s.reallocErr
}

func (s *stubSource) FetchDispatchData(ctx context.Context) ([]domain.RawRecord, error) {
	return s.dispatch, s.dispatchErr
}

func (s *stubSource) FetchScheduleData(ctx context.Context) ([]domain.RawRecord, error) {
	return s.schedule, s.scheduleErr
}

type stubAudits struct {
	created []*domain.LoadAudit
}

func (a *stubAudits) CreateLoadAudit(ctx context.Context, audit *domain.LoadAudit) error {
	a.created = append(a.created, audit)
	return nil
}

func (a *stubAudits) GetLoadAudits(ctx context.Context, limit int) ([]*domain.LoadAudit, error) {
	return a.created, nil
}

func (a *stubAudits) GetLoadStats(ctx context.Context) (*domain.LoadStats, error) {
	return &domain.LoadStats{TotalLoads: len(a.created)}, nil
}

func testSource() *stubSource {
	return &stubSource{
		realloc: []domain.RawRecord{
			{"chassisNumber": "C1", "customer": "Acme Corp", "reallocatedTo": "Snowy Stock"},
		},
		dispatch: []domain.RawRecord{
			{"chassisNumber": "C1", "customer": "Acme Corp", "Statuscheck": "OK", "scheduledDealer": "Acme"},
			{"chassisNumber": "C2", "customer": "Beta Ltd", "Statuscheck": "OK", "scheduledDealer": "Beta"},
		},
		schedule: []domain.RawRecord{
			{"chassisNumber": "C1", "productionSite": "Plant 7"},
		},
	}
}

func TestRefresh_Success(t *testing.T) {
	s := New(testSource(), nil, Config{})

	require.NoError(t, s.Refresh(context.Background(), domain.LoadCauseInitial))

	v := s.Snapshot()
	assert.Equal(t, StateSuccess, v.State)
	assert.Len(t, v.Entries, 2)
	assert.Equal(t, "Snowy Stock", v.Entries[0].ReallocatedTo)
	assert.Equal(t, 2, v.Stats.Total)
	assert.Equal(t, 1, v.Stats.SnowyStock)   // C1 via reallocation
	assert.Equal(t, 1, v.Stats.Dispatchable) // C2
	assert.False(t, v.LoadedAt.IsZero())
}

func TestRefresh_SingleFailureDiscardsAll(t *testing.T) {
	src := testSource()
	s := New(src, nil, Config{})
	require.NoError(t, s.Refresh(context.Background(), domain.LoadCauseInitial))

	src.dispatchErr = errors.New("connection reset")
	err := s.Refresh(context.Background(), domain.LoadCauseRefresh)

	require.ErrorIs(t, err, ErrLoadFailed)
	v := s.Snapshot()
	assert.Equal(t, StateError, v.State)
	assert.Equal(t, "data load failed", v.Error)
	// The failed fetch results are not applied; the previous data stays.
	assert.Len(t, v.Entries, 2)
}

func TestRefresh_ManualRetryRecovers(t *testing.T) {
	src := testSource()
	src.scheduleErr = errors.New("timeout")
	s := New(src, nil, Config{})

	require.Error(t, s.Refresh(context.Background(), domain.LoadCauseInitial))
	assert.Equal(t, StateError, s.Snapshot().State)

	src.scheduleErr = nil
	require.NoError(t, s.Refresh(context.Background(), domain.LoadCauseRefresh))
	assert.Equal(t, StateSuccess, s.Snapshot().State)
}

func TestSetFilter_ClearsSearch(t *testing.T) {
	s := New(testSource(), nil, Config{})
	require.NoError(t, s.Refresh(context.Background(), domain.LoadCauseInitial))

	s.SetSearch("acme")
	assert.Equal(t, "acme", s.Snapshot().Search)

	s.SetFilter(domain.FilterSnowyStock)

	v := s.Snapshot()
	assert.Equal(t, domain.FilterSnowyStock, v.Filter)
	assert.Empty(t, v.Search)
}

func TestSetFilter_UnknownKeyFallsBackToAll(t *testing.T) {
	s := New(testSource(), nil, Config{})
	s.SetFilter("bogus")
	assert.Equal(t, domain.FilterAll, s.Snapshot().Filter)
}

func TestSnapshot_FilteredEntries(t *testing.T) {
	s := New(testSource(), nil, Config{})
	require.NoError(t, s.Refresh(context.Background(), domain.LoadCauseInitial))

	s.SetFilter(domain.FilterCanBeDispatched)
	v := s.Snapshot()
	require.Len(t, v.Entries, 1)
	assert.Equal(t, "C2", v.Entries[0].ChassisNumber)
}

func TestSnapshot_SearchCountAsymmetry(t *testing.T) {
	// Dispatch counts run against the filtered list; reallocation counts
	// always run against the full list.
	s := New(testSource(), nil, Config{})
	require.NoError(t, s.Refresh(context.Background(), domain.LoadCauseInitial))

	s.SetFilter(domain.FilterCanBeDispatched) // only C2 remains
	s.SetSearch("acme")

	v := s.Snapshot()
	assert.Equal(t, 0, v.SearchCounts.DispatchMatches)
	assert.Equal(t, 1, v.SearchCounts.ReallocationMatches)
}

func TestSnapshot_EmptySearchCountsEqualLengths(t *testing.T) {
	s := New(testSource(), nil, Config{})
	require.NoError(t, s.Refresh(context.Background(), domain.LoadCauseInitial))

	v := s.Snapshot()
	assert.Equal(t, len(v.Entries), v.SearchCounts.DispatchMatches)
	assert.Equal(t, len(v.Reallocations), v.SearchCounts.ReallocationMatches)
}

func TestRefresh_RecordsAudit(t *testing.T) {
	audits := &stubAudits{}
	src := testSource()
	s := New(src, audits, Config{})

	require.NoError(t, s.Refresh(context.Background(), domain.LoadCauseInitial))

	src.reallocErr = errors.New("boom")
	_ = s.Refresh(context.Background(), domain.LoadCauseRefresh)

	require.Len(t, audits.created, 2)
	assert.Equal(t, "ok", audits.created[0].Status)
	assert.Equal(t, 2, audits.created[0].DispatchCount)
	assert.Equal(t, "error", audits.created[1].Status)
	assert.Equal(t, domain.LoadCauseRefresh, audits.created[1].Cause)
}
