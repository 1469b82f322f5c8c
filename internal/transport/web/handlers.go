package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch-board/internal/domain"
	"dispatch-board/internal/service/session"
)

// Handler - server-rendered web interface over the session state.
type Handler struct {
	session *session.Store
}

func NewHandler(sess *session.Store) *Handler {
	return &Handler{session: sess}
}

// RefreshAction re-runs the load and redirects back to the dashboard. Load
// failures land on the dashboard's error state, not on an error page.
func (h *Handler) RefreshAction(c echo.Context) error {
	_ = h.session.Refresh(c.Request().Context(), domain.LoadCauseRefresh)
	return c.Redirect(http.StatusSeeOther, "/")
}
