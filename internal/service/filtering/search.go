package filtering

import (
	"strings"

	"dispatch-board/internal/domain"
)

// SearchResult holds the two independent match counts shown in the status
// line. The counts are not an intersection: each list is counted on its own.
type SearchResult struct {
	DispatchMatches     int `json:"dispatch_matches"`
	ReallocationMatches int `json:"reallocation_matches"`
}

// SearchCounts counts case-insensitive substring matches of term in the
// dispatch and reallocation lists. An entry also matches through its
// chassis-linked counterpart in the other list. An empty term yields the
// unmodified list lengths.
func SearchCounts(
	term string,
	dispatch []domain.DispatchEntry,
	realloc []domain.ReallocationEntry,
	reallocByChassis map[string]domain.ReallocationEntry,
	dispatchByChassis map[string]domain.DispatchEntry,
) SearchResult {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return SearchResult{
			DispatchMatches:     len(dispatch),
			ReallocationMatches: len(realloc),
		}
	}

	var res SearchResult
	for _, e := range dispatch {
		if matchDispatch(e, term) {
			res.DispatchMatches++
			continue
		}
		if re, ok := reallocByChassis[e.ChassisNumber]; ok && matchReallocation(re, term) {
			res.DispatchMatches++
		}
	}
	for _, re := range realloc {
		if matchReallocation(re, term) {
			res.ReallocationMatches++
			continue
		}
		if e, ok := dispatchByChassis[re.ChassisNumber]; ok && matchDispatch(e, term) {
			res.ReallocationMatches++
		}
	}
	return res
}

// The searchable field sets are fixed; term must already be lowercased.

func matchDispatch(e domain.DispatchEntry, term string) bool {
	return containsFold(term,
		e.ChassisNumber,
		e.Customer,
		e.Model,
		e.PONumber,
		e.Source,
		e.ScheduledDealer,
		e.StatusCheck,
		e.DealerCheck,
		e.ReallocatedTo,
	)
}

func matchReallocation(re domain.ReallocationEntry, term string) bool {
	return containsFold(term,
		re.ChassisNumber,
		re.Customer,
		re.Model,
		re.OriginalDealer,
		re.ReallocatedTo,
		re.ProductionSite,
		re.IssueType,
		re.IssueDetail,
	)
}

func containsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
