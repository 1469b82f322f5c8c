package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch-board/internal/domain"
	"dispatch-board/internal/service/session"
	"dispatch-board/internal/web/templates"
)

var filterLabels = map[string]string{
	domain.FilterAll:             "All",
	domain.FilterSnowyStock:      "Snowy stock",
	domain.FilterCanBeDispatched: "Can be dispatched",
	domain.FilterReallocated:     "Reallocated",
	domain.FilterStatusIssue:     "Status issues",
	domain.FilterDealerIssue:     "Dealer issues",
}

// Dashboard renders the main page. Picking a filter link clears the search
// term; the q parameter narrows the match counts only.
func (h *Handler) Dashboard(c echo.Context) error {
	if key := c.QueryParam("filter"); key != "" {
		h.session.SetFilter(key)
	}
	if term := c.QueryParam("q"); term != "" {
		h.session.SetSearch(term)
	}

	v := h.session.Snapshot()

	html, err := templates.Dashboard(dashboardBindings(v))
	if err != nil {
		return c.String(http.StatusInternalServerError, "Failed to render dashboard")
	}

	return c.HTML(http.StatusOK, html)
}

func dashboardBindings(v session.View) map[string]interface{} {
	filters := make([]map[string]interface{}, 0, len(domain.FilterKeys()))
	for _, key := range domain.FilterKeys() {
		filters = append(filters, map[string]interface{}{
			"key":    key,
			"label":  filterLabels[key],
			"active": key == v.Filter,
		})
	}

	entries := make([]map[string]interface{}, 0, len(v.Entries))
	for _, e := range v.Entries {
		entries = append(entries, map[string]interface{}{
			"chassis_number":   e.ChassisNumber,
			"customer":         e.Customer,
			"model":            e.Model,
			"po_number":        e.PONumber,
			"source":           e.Source,
			"scheduled_dealer": e.ScheduledDealer,
			"status_check":     e.StatusCheck,
			"dealer_check":     e.DealerCheck,
			"reallocated_to":   e.ReallocatedTo,
		})
	}

	return map[string]interface{}{
		"state": string(v.State),
		"error": v.Error,
		"stats": map[string]interface{}{
			"total":         v.Stats.Total,
			"status_ok":     v.Stats.StatusOK,
			"invalid_stock": v.Stats.InvalidStock,
			"snowy_stock":   v.Stats.SnowyStock,
			"dispatchable":  v.Stats.Dispatchable,
		},
		"filters":              filters,
		"filter":               v.Filter,
		"search":               v.Search,
		"dispatch_matches":     v.SearchCounts.DispatchMatches,
		"reallocation_matches": v.SearchCounts.ReallocationMatches,
		"entries":              entries,
		"loaded_at":            v.LoadedAt.Format("2006-01-02 15:04:05"),
	}
}
