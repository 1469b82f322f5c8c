package processing

import (
	"strings"

	"dispatch-board/internal/domain"
)

// Holding status that excludes a unit from dispatch.
const snowyStockName = "snowy stock"

const statusOK = "ok"

// IsSnowyStock reports whether the entry is held as snowy stock: its latest
// reallocation target is "Snowy Stock", or it was scheduled straight into
// snowy stock and never reallocated anywhere.
func IsSnowyStock(e domain.DispatchEntry) bool {
	if equalsFoldTrim(e.ReallocatedTo, snowyStockName) {
		return true
	}
	return strings.TrimSpace(e.ReallocatedTo) == "" && equalsFoldTrim(e.ScheduledDealer, snowyStockName)
}

// CanBeDispatched reports whether the entry is dispatchable: status check OK
// and not held as snowy stock. A unit is never both snowy and dispatchable.
func CanBeDispatched(e domain.DispatchEntry) bool {
	return equalsFoldTrim(e.StatusCheck, statusOK) && !IsSnowyStock(e)
}

// Classify splits the dispatch list into its snowy-stock and dispatchable
// subsets. The two are disjoint; entries matching neither are omitted.
func Classify(entries []domain.DispatchEntry) (snowy, dispatchable []domain.DispatchEntry) {
	for _, e := range entries {
		switch {
		case IsSnowyStock(e):
			snowy = append(snowy, e)
		case CanBeDispatched(e):
			dispatchable = append(dispatchable, e)
		}
	}
	return snowy, dispatchable
}

// GetDispatchStats aggregates counts over the processed dispatch list.
// Invalid stock means the unit fails either the status or the dealer check.
func GetDispatchStats(entries []domain.DispatchEntry) domain.DispatchStats {
	stats := domain.DispatchStats{Total: len(entries)}
	for _, e := range entries {
		ok := equalsFoldTrim(e.StatusCheck, statusOK)
		if ok {
			stats.StatusOK++
		}
		if !ok || !equalsFoldTrim(e.DealerCheck, statusOK) {
			stats.InvalidStock++
		}
		switch {
		case IsSnowyStock(e):
			stats.SnowyStock++
		case CanBeDispatched(e):
			stats.Dispatchable++
		}
	}
	return stats
}

func equalsFoldTrim(s, target string) bool {
	return strings.EqualFold(strings.TrimSpace(s), target)
}
