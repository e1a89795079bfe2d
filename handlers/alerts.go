package handlers

import (
	"net/http"

	"rentride/services/notification"
	"rentride/utils"

	"github.com/gin-gonic/gin"
)

// AlertHandler serves a renter's notification feed.
type AlertHandler struct {
	Alerts notification.AlertService
}

func NewAlertHandler(alerts notification.AlertService) *AlertHandler {
	return &AlertHandler{Alerts: alerts}
}

// FeedHandler returns the renter's alerts, newest first.
func (h *AlertHandler) FeedHandler(c *gin.Context) {
	alerts, err := h.Alerts.Feed(c.Request.Context(), renterID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load alerts", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
