package processing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch-board/internal/domain"
)

func TestProcessDispatchData(t *testing.T) {
	raw := []domain.RawRecord{
		{
			"chassisNumber":   "C1",
			"customer":        "Acme Corp",
			"model":           "X200",
			"matchedPONumber": "PO-1",
			"source":          "legacy",
			"scheduledDealer": "Acme",
			"Statuscheck":     "OK",
			"DealerCheck":     "OK",
		},
	}
	realloc := map[string]domain.ReallocationEntry{
		"C1": {ChassisNumber: "C1", ReallocatedTo: "North Depot"},
	}

	entries := ProcessDispatchData(raw, realloc)

	require.Len(t, entries, 1)
	assert.Equal(t, domain.DispatchEntry{
		ChassisNumber:   "C1",
		Customer:        "Acme Corp",
		Model:           "X200",
		PONumber:        "PO-1",
		Source:          "legacy",
		ScheduledDealer: "Acme",
		StatusCheck:     "OK",
		DealerCheck:     "OK",
		ReallocatedTo:   "North Depot",
	}, entries[0])
}

func TestProcessDispatchData_FallbackShapes(t *testing.T) {
	// Older exporters use different casing for the same fields.
	raw := []domain.RawRecord{
		{
			"chassis":     "C2",
			"Customer":    "Beta Ltd",
			"status":      "ok",
			"dealerCheck": "OK",
		},
	}

	entries := ProcessDispatchData(raw, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, "C2", entries[0].ChassisNumber)
	assert.Equal(t, "Beta Ltd", entries[0].Customer)
	assert.Equal(t, "ok", entries[0].StatusCheck)
	assert.Equal(t, "OK", entries[0].DealerCheck)
}

func TestProcessDispatchData_MissingFieldsDefaultEmpty(t *testing.T) {
	entries := ProcessDispatchData([]domain.RawRecord{{}}, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, domain.DispatchEntry{}, entries[0])
}

func TestReallocationByChassis_LatestWins(t *testing.T) {
	raw := []domain.RawRecord{
		{"chassisNumber": "C1", "reallocatedTo": "First Dealer"},
		{"chassisNumber": "C1", "reallocatedTo": "Second Dealer"},
		{"chassisNumber": "C2", "reallocatedTo": "Other"},
	}

	byChassis := ReallocationByChassis(raw)

	require.Len(t, byChassis, 2)
	assert.Equal(t, "Second Dealer", byChassis["C1"].ReallocatedTo)
}

func TestReallocationByChassis_SkipsEmptyChassis(t *testing.T) {
	byChassis := ReallocationByChassis([]domain.RawRecord{
		{"reallocatedTo": "Nowhere"},
	})
	assert.Empty(t, byChassis)
}

func TestProcessReallocationData_ScheduleJoin(t *testing.T) {
	raw := []domain.RawRecord{
		{"chassisNumber": "C1", "originalDealer": "Acme", "reallocatedTo": "North Depot"},
	}
	schedule := []domain.RawRecord{
		{"chassisNumber": "C1", "productionSite": "Plant 7"},
	}

	entries := ProcessReallocationData(raw, schedule)

	require.Len(t, entries, 1)
	assert.Equal(t, "Plant 7", entries[0].ProductionSite)
	assert.Equal(t, "Acme", entries[0].OriginalDealer)
}

func TestProcessReallocationData_NestedIssue(t *testing.T) {
	raw := []domain.RawRecord{
		{
			"chassisNumber": "C1",
			"issue": map[string]any{
				"type":   "transport damage",
				"detail": "rear panel",
			},
		},
	}

	entries := ProcessReallocationData(raw, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, "transport damage", entries[0].IssueType)
	assert.Equal(t, "rear panel", entries[0].IssueDetail)
}

func TestStringField_NonStringValues(t *testing.T) {
	r := domain.RawRecord{"matchedPONumber": 12345}
	assert.Equal(t, "12345", stringField(r, "matchedPONumber"))
}

func TestDispatchByChassis(t *testing.T) {
	entries := []domain.DispatchEntry{
		{ChassisNumber: "C1"},
		{ChassisNumber: ""},
	}
	byChassis := DispatchByChassis(entries)
	assert.Len(t, byChassis, 1)
}
