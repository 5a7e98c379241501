package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/notify"
)

type NotificationHandler struct {
	toasts *notify.Queue
}

func NewNotificationHandler(toasts *notify.Queue) *NotificationHandler {
	return &NotificationHandler{toasts: toasts}
}

// ListNotifications drains pending toasts. With ?peek=true they stay queued.
//
// @Summary      Pending notifications
// @Tags         Notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  notify.Toast
// @Router       /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	if c.Query("peek") == "true" {
		c.JSON(http.StatusOK, h.toasts.Pending())
		return
	}
	c.JSON(http.StatusOK, h.toasts.Drain())
}
