package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskflow/internal/insight"
	"taskflow/internal/store"
)

type DashboardHandler struct {
	store    *store.Store
	users    UserDirectory
	insights *insight.Aggregator
	now      func() time.Time
}

func NewDashboardHandler(st *store.Store, users UserDirectory, insights *insight.Aggregator, now func() time.Time) *DashboardHandler {
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{store: st, users: users, insights: insights, now: now}
}

// GetDashboard reports statistics, progress, deadlines and recent activity
// attributed to the current user.
//
// @Summary      Dashboard overview
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  insight.Dashboard
// @Failure      401  {object}  map[string]string
// @Router       /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	actor := insight.DefaultActor
	if user, err := h.users.CurrentUser(c.Request.Context(), userID); err == nil {
		actor = user.DisplayName()
	}

	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, h.insights.Dashboard(snap.Projects, snap.Tasks, actor, h.now()))
}
