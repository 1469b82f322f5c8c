package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"dispatch-board/internal/domain"
	repoInterface "dispatch-board/internal/repository/interface"
	"dispatch-board/internal/service/session"
)

// BoardAPI - JSON API over the session state.
type BoardAPI struct {
	session *session.Store
	audits  repoInterface.LoadAuditRepository
}

type FilterRequest struct {
	Filter string `json:"filter"`
}

type SearchRequest struct {
	Term string `json:"term"`
}

func NewBoardAPI(sess *session.Store, audits repoInterface.LoadAuditRepository) *BoardAPI {
	return &BoardAPI{
		session: sess,
		audits:  audits,
	}
}

// Board returns the full dashboard view: filtered entries, reallocations,
// stats, active filter, search term and match counts.
func (api *BoardAPI) Board(c echo.Context) error {
	return c.JSON(http.StatusOK, api.session.Snapshot())
}

// Stats returns the aggregate counts only.
func (api *BoardAPI) Stats(c echo.Context) error {
	v := api.session.Snapshot()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"state": v.State,
		"stats": v.Stats,
	})
}

// SetFilter activates a filter key and clears the search term.
func (api *BoardAPI) SetFilter(c echo.Context) error {
	var req FilterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	if !domain.KnownFilter(req.Filter) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown filter key")
	}

	api.session.SetFilter(req.Filter)

	return c.JSON(http.StatusOK, api.session.Snapshot())
}

// SetSearch stores the search term and returns the updated match counts.
func (api *BoardAPI) SetSearch(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}

	api.session.SetSearch(req.Term)

	v := api.session.Snapshot()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"search":        v.Search,
		"search_counts": v.SearchCounts,
	})
}

// Refresh re-runs the fetch-process sequence. Any failure surfaces the
// single generic load error.
func (api *BoardAPI) Refresh(c echo.Context) error {
	err := api.session.Refresh(c.Request().Context(), domain.LoadCauseRefresh)
	if err != nil {
		if errors.Is(err, session.ErrLoadFailed) {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, api.session.Snapshot())
}

// Loads lists the recent load audit trail. 404 when auditing is disabled.
func (api *BoardAPI) Loads(c echo.Context) error {
	if api.audits == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Load auditing is not configured")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	audits, err := api.audits.GetLoadAudits(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	stats, err := api.audits.GetLoadStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  audits,
		"total": len(audits),
		"stats": stats,
	})
}
