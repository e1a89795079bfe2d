package handlers

import (
	"errors"
	"net/http"

	"rentride/models"
	"rentride/services/booking"
	"rentride/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HoldHandler serves the hold-a-car endpoint the booking form fires while
// the renter is still filling in details.
type HoldHandler struct {
	Holds  booking.HoldService
	Logger *zap.Logger
}

func NewHoldHandler(holds booking.HoldService, logger *zap.Logger) *HoldHandler {
	return &HoldHandler{Holds: holds, Logger: logger}
}

// HoldCarHandler places a temporary reservation for the given window.
// POST /api/cars/hold-date/:carId
func (h *HoldHandler) HoldCarHandler(c *gin.Context) {
	carID := c.Param("carId")

	var window models.BookingWindow
	if err := c.ShouldBindJSON(&window); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hold request", err.Error())
		return
	}
	if !window.Complete() {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Incomplete booking window",
			"startDate, endDate, startTime and endTime are all required")
		return
	}
	if dur, ok := booking.ComputeDurationHours(window); !booking.IsMinimumWindowSatisfied(dur, ok) {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Booking window too short",
			"rentals run for at least 12 hours")
		return
	}

	hold, err := h.Holds.HoldCar(c.Request.Context(), carID, renterID(c), window)
	if err != nil {
		if errors.Is(err, booking.ErrCarAlreadyHeld) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Car is already held"})
			return
		}
		h.Logger.Error("hold failed", zap.String("carId", carID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to hold car", "Please try again later.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "expiresAt": hold.ExpiresAt})
}

// ReleaseCarHandler drops a hold early, e.g. when the renter abandons the flow.
// DELETE /api/cars/hold-date/:carId
func (h *HoldHandler) ReleaseCarHandler(c *gin.Context) {
	carID := c.Param("carId")

	hold, err := h.Holds.GetHold(c.Request.Context(), carID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read hold", err.Error())
		return
	}
	if hold == nil {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	if hold.RenterID != renterID(c) {
		utils.JSONError(c, http.StatusForbidden, "Hold belongs to another renter", "")
		return
	}

	if err := h.Holds.ReleaseCar(c.Request.Context(), carID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to release hold", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
