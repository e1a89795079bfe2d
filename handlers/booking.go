package handlers

import (
	"errors"
	"net/http"

	bookingRepo "rentride/database/repository/booking"
	"rentride/services/booking"
	"rentride/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the quote and confirmation flow.
type BookingHandler struct {
	Service  booking.BookingService
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, repo bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Bookings: repo, Logger: logger}
}

// renterID pulls the authenticated subject set by the auth middleware.
func renterID(c *gin.Context) string {
	id, _ := c.Get("renterID")
	s, _ := id.(string)
	return s
}

// QuoteHandler prices a booking window without committing anything.
func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	var req booking.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid quote request", err.Error())
		return
	}

	breakdown, err := h.Service.Quote(c.Request.Context(), req)
	if err != nil {
		var winErr *booking.WindowError
		switch {
		case errors.As(err, &winErr):
			utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid booking window", winErr.Message)
		case errors.Is(err, booking.ErrCarUnavailable):
			utils.JSONError(c, http.StatusConflict, "Car is not available", "")
		default:
			h.Logger.Error("quote failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to build quote", "Please try again later.")
		}
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// ConfirmHandler finalizes a booking: deposit charge, persistence, hold release.
func (h *BookingHandler) ConfirmHandler(c *gin.Context) {
	var req booking.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid confirmation request", err.Error())
		return
	}

	record, err := h.Service.Confirm(c.Request.Context(), renterID(c), req)
	if err != nil {
		var winErr *booking.WindowError
		switch {
		case errors.As(err, &winErr):
			utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid booking window", winErr.Message)
		case errors.Is(err, booking.ErrCarAlreadyHeld):
			utils.JSONError(c, http.StatusConflict, "Car is held by another renter", "")
		case errors.Is(err, booking.ErrWindowConflict):
			utils.JSONError(c, http.StatusConflict, "Window overlaps an existing booking", "")
		case errors.Is(err, booking.ErrCarUnavailable):
			utils.JSONError(c, http.StatusConflict, "Car is not available", "")
		default:
			h.Logger.Error("confirmation failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to confirm booking", "Please try again later.")
		}
		return
	}
	c.JSON(http.StatusOK, record)
}

// MyBookingsHandler lists the renter's bookings, newest first.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.ListByRenter(renterID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
