package domain

// RawRecord - untyped record as fetched from the upstream store.
// The store's schema is an external contract; shapes vary between exporters.
type RawRecord map[string]any

// DispatchEntry - canonical dispatch record, produced once by the processing
// layer and immutable afterwards. ChassisNumber is the join key to
// ReallocationEntry.
type DispatchEntry struct {
	ChassisNumber   string `json:"chassis_number"`
	Customer        string `json:"customer"`
	Model           string `json:"model"`
	PONumber        string `json:"po_number"`
	Source          string `json:"source"`
	ScheduledDealer string `json:"scheduled_dealer"`
	StatusCheck     string `json:"status_check"`
	DealerCheck     string `json:"dealer_check"`
	ReallocatedTo   string `json:"reallocated_to,omitempty"`
}

// DispatchStats - aggregate counts over the processed dispatch list.
// Recomputed on every load and filter change, never persisted.
type DispatchStats struct {
	Total        int `json:"total"`
	StatusOK     int `json:"status_ok"`
	InvalidStock int `json:"invalid_stock"`
	SnowyStock   int `json:"snowy_stock"`
	Dispatchable int `json:"dispatchable"`
}

// Filter keys understood by the filter layer. Keys outside this set fall
// back to the full list.
const (
	FilterAll             = "all"
	FilterSnowyStock      = "snowyStock"
	FilterCanBeDispatched = "canBeDispatched"
	FilterReallocated     = "reallocated"
	FilterStatusIssue     = "statusIssue"
	FilterDealerIssue     = "dealerIssue"
)

// FilterKeys lists the keys in display order for the dashboard.
func FilterKeys() []string {
	return []string{
		FilterAll,
		FilterSnowyStock,
		FilterCanBeDispatched,
		FilterReallocated,
		FilterStatusIssue,
		FilterDealerIssue,
	}
}

// KnownFilter reports whether key is one of the supported filter keys.
func KnownFilter(key string) bool {
	for _, k := range FilterKeys() {
		if k == key {
			return true
		}
	}
	return false
}
