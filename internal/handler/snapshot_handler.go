package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/store"
)

type SnapshotHandler struct {
	store *store.Store
}

func NewSnapshotHandler(st *store.Store) *SnapshotHandler {
	return &SnapshotHandler{store: st}
}

// Export godoc
// @Summary      Export all projects and tasks
// @Tags         Snapshot
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  store.Snapshot
// @Router       /snapshot [get]
func (h *SnapshotHandler) Export(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// Import replaces all projects and tasks. Nothing is applied when any
// record is invalid.
//
// @Summary      Replace all projects and tasks
// @Tags         Snapshot
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      store.Snapshot  true  "Request body"
// @Success      200  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /snapshot [put]
func (h *SnapshotHandler) Import(c *gin.Context) {
	var snap store.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := h.store.Restore(snap); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": len(snap.Projects), "tasks": len(snap.Tasks)})
}
