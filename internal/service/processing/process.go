package processing

import (
	"dispatch-board/internal/domain"
)

// ReallocationByChassis normalizes raw reallocation records and keeps the
// latest entry per chassis. Records are scanned in source order, so a later
// record for the same chassis wins.
func ReallocationByChassis(raw []domain.RawRecord) map[string]domain.ReallocationEntry {
	byChassis := make(map[string]domain.ReallocationEntry, len(raw))
	for _, r := range raw {
		entry := normalizeReallocation(r)
		if entry.ChassisNumber == "" {
			continue
		}
		byChassis[entry.ChassisNumber] = entry
	}
	return byChassis
}

// ProcessReallocationData normalizes raw reallocation records and annotates
// each with its production site from the schedule collection. Missing fields
// degrade to empty strings; nothing here is fatal.
func ProcessReallocationData(raw, schedule []domain.RawRecord) []domain.ReallocationEntry {
	siteByChassis := make(map[string]string, len(schedule))
	for _, r := range schedule {
		cn := chassisNumber(r)
		if cn == "" {
			continue
		}
		siteByChassis[cn] = stringField(r, "productionSite", "ProductionSite", "production_site", "site")
	}

	entries := make([]domain.ReallocationEntry, 0, len(raw))
	for _, r := range raw {
		entry := normalizeReallocation(r)
		if entry.ProductionSite == "" {
			entry.ProductionSite = siteByChassis[entry.ChassisNumber]
		}
		entries = append(entries, entry)
	}
	return entries
}

// ProcessDispatchData normalizes raw dispatch records and annotates each with
// the latest reallocation target for its chassis.
func ProcessDispatchData(raw []domain.RawRecord, reallocByChassis map[string]domain.ReallocationEntry) []domain.DispatchEntry {
	entries := make([]domain.DispatchEntry, 0, len(raw))
	for _, r := range raw {
		entry := domain.DispatchEntry{
			ChassisNumber:   chassisNumber(r),
			Customer:        customer(r),
			Model:           model(r),
			PONumber:        stringField(r, "matchedPONumber", "poNumber", "PONumber", "po_number"),
			Source:          stringField(r, "source", "Source", "sourceSystem"),
			ScheduledDealer: stringField(r, "scheduledDealer", "ScheduledDealer", "scheduled_dealer"),
			StatusCheck:     stringField(r, "Statuscheck", "statusCheck", "statuscheck", "status"),
			DealerCheck:     stringField(r, "DealerCheck", "dealerCheck", "dealercheck"),
		}
		if re, ok := reallocByChassis[entry.ChassisNumber]; ok {
			entry.ReallocatedTo = re.ReallocatedTo
		}
		entries = append(entries, entry)
	}
	return entries
}

// DispatchByChassis indexes processed dispatch entries by chassis number for
// the search layer's cross-list matching.
func DispatchByChassis(entries []domain.DispatchEntry) map[string]domain.DispatchEntry {
	byChassis := make(map[string]domain.DispatchEntry, len(entries))
	for _, e := range entries {
		if e.ChassisNumber == "" {
			continue
		}
		byChassis[e.ChassisNumber] = e
	}
	return byChassis
}

func normalizeReallocation(r domain.RawRecord) domain.ReallocationEntry {
	entry := domain.ReallocationEntry{
		ChassisNumber:  chassisNumber(r),
		Customer:       customer(r),
		Model:          model(r),
		OriginalDealer: stringField(r, "originalDealer", "OriginalDealer", "original_dealer"),
		ReallocatedTo:  stringField(r, "reallocatedTo", "ReallocatedTo", "reallocated_to"),
		ProductionSite: stringField(r, "productionSite", "ProductionSite", "production_site"),
	}

	// Issue descriptors arrive either flattened or as a nested document.
	entry.IssueType = stringField(r, "issueType", "IssueType", "issue_type")
	entry.IssueDetail = stringField(r, "issueDetail", "IssueDetail", "issue_detail")
	if issue, ok := r["issue"].(map[string]any); ok {
		nested := domain.RawRecord(issue)
		if entry.IssueType == "" {
			entry.IssueType = stringField(nested, "type", "Type")
		}
		if entry.IssueDetail == "" {
			entry.IssueDetail = stringField(nested, "detail", "Detail", "description")
		}
	}
	return entry
}
