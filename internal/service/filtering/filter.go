package filtering

import (
	"strings"

	"dispatch-board/internal/domain"
)

// SelectFilter returns the subset of the dispatch list to display for the
// given filter key. The snowyStock and canBeDispatched keys short-circuit to
// the precomputed classification lists; everything else goes through
// FilterDispatchData.
func SelectFilter(key string, entries, snowy, dispatchable []domain.DispatchEntry) []domain.DispatchEntry {
	switch key {
	case domain.FilterSnowyStock:
		return snowy
	case domain.FilterCanBeDispatched:
		return dispatchable
	default:
		return FilterDispatchData(entries, key)
	}
}

// FilterDispatchData evaluates the domain-specific filter keys. Unknown keys
// and FilterAll return the list unchanged.
func FilterDispatchData(entries []domain.DispatchEntry, key string) []domain.DispatchEntry {
	var keep func(domain.DispatchEntry) bool
	switch key {
	case domain.FilterReallocated:
		keep = func(e domain.DispatchEntry) bool {
			return strings.TrimSpace(e.ReallocatedTo) != ""
		}
	case domain.FilterStatusIssue:
		keep = func(e domain.DispatchEntry) bool {
			return !strings.EqualFold(strings.TrimSpace(e.StatusCheck), "ok")
		}
	case domain.FilterDealerIssue:
		keep = func(e domain.DispatchEntry) bool {
			return !strings.EqualFold(strings.TrimSpace(e.DealerCheck), "ok")
		}
	default:
		return entries
	}

	filtered := make([]domain.DispatchEntry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
