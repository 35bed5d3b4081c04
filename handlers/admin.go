package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"partyplan/services/analytics"
	"partyplan/services/booking"
	"partyplan/services/export"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Bookings  booking.BookingService
	Analytics *analytics.Service
	Logger    *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bookings booking.BookingService, stats *analytics.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Analytics: stats, Logger: logger}
}

// ListAllBookings returns every booking with customer details.
func (h *AdminHandler) ListAllBookings(c *gin.Context) {
	rows, err := h.Bookings.ListAll()
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": rows})
}

// UpdateBookingStatus applies an admin transition to a booking.
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	err := h.Bookings.SetStatus(c.Param("id"), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking status"})
		case errors.Is(err, booking.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		default:
			h.Logger.Error("failed to update booking status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ExportBookings streams the bookings export as an xlsx attachment.
func (h *AdminHandler) ExportBookings(c *gin.Context) {
	rows, err := h.Bookings.ListAll()
	if err != nil {
		h.Logger.Error("failed to list bookings for export", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	buf, err := export.BuildBookingsWorkbook(rows)
	if err != nil {
		h.Logger.Error("failed to build bookings workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}

	filename := fmt.Sprintf("bookings-export-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// GetAnalytics returns the dashboard aggregates.
func (h *AdminHandler) GetAnalytics(c *gin.Context) {
	stats, err := h.Analytics.Fetch()
	if err != nil {
		h.Logger.Error("failed to compute analytics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
