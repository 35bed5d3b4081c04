package handlers

import (
	"errors"
	"net/http"

	paymentsRepo "partyplan/database/repository/payments"
	"partyplan/middleware"
	"partyplan/models"
	"partyplan/services/booking"
	"partyplan/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation, listing, cancellation, and the
// checkout entry points.
type BookingHandler struct {
	Bookings booking.BookingService
	Checkout payment.CheckoutService
	Payments paymentsRepo.PaymentRepository
	Logger   *zap.Logger
}

func NewBookingHandler(bookings booking.BookingService, checkout payment.CheckoutService, payments paymentsRepo.PaymentRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Checkout: checkout, Payments: payments, Logger: logger}
}

type checkoutInput struct {
	BookingID  string `json:"booking_id" binding:"required"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

type bookingWithPaymentInput struct {
	models.BookingInput
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

// CreateBooking creates a pending booking for the caller.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "package_id and event_date are required"})
		return
	}

	b, err := h.Bookings.Create(identity, input)
	if err != nil {
		if errors.Is(err, booking.ErrPackageUnavailable) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Package not found or inactive"})
			return
		}
		h.Logger.Error("booking creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// ListMyBookings returns the caller's bookings for the dashboard.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	list, err := h.Bookings.ListByUser(identity.UserID)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// GetBooking returns one of the caller's bookings, with its payment once
// reconciliation has recorded one.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	b, err := h.Bookings.GetForUser(c.Param("id"), identity.UserID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Booking not found or unauthorized"})
			return
		}
		h.Logger.Error("failed to fetch booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}

	resp := gin.H{"booking": b}
	if h.Payments != nil {
		switch p, err := h.Payments.GetByBookingID(b.ID); {
		case err == nil:
			resp["payment"] = p
		case !errors.Is(err, paymentsRepo.ErrNotFound):
			h.Logger.Warn("failed to fetch payment for booking", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, resp)
}

// CancelBooking lets the owner abandon a pending booking.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	b, err := h.Bookings.CancelOwn(c.Param("id"), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Booking not found or unauthorized"})
		case errors.Is(err, booking.ErrNotCancellable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending bookings can be cancelled"})
		default:
			h.Logger.Error("failed to cancel booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// CreateCheckoutSession creates a hosted payment session for an existing
// booking and returns the redirect URL.
func (h *BookingHandler) CreateCheckoutSession(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.Email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated or email not available"})
		return
	}

	var input checkoutInput
	input.BookingID = c.Param("id")
	if input.BookingID == "" {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "booking_id is required"})
			return
		}
	} else {
		// Redirect overrides are optional on the path-parameter form.
		_ = c.ShouldBindJSON(&input)
	}

	result, err := h.Checkout.CreateSession(identity, input.BookingID, input.SuccessURL, input.CancelURL)
	if err != nil {
		if errors.Is(err, payment.ErrBookingNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Booking not found or unauthorized"})
			return
		}
		// Provider errors pass through verbatim; the caller may simply retry.
		h.Logger.Error("checkout session creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": result.URL, "session_id": result.SessionID})
}

// CreateBookingWithPayment creates the booking and its checkout session in
// one call. The response carries the booking ID alongside the redirect URL.
func (h *BookingHandler) CreateBookingWithPayment(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.Email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated or email not available"})
		return
	}

	var input bookingWithPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "package_id and event_date are required"})
		return
	}

	b, err := h.Bookings.Create(identity, input.BookingInput)
	if err != nil {
		if errors.Is(err, booking.ErrPackageUnavailable) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Package not found or inactive"})
			return
		}
		h.Logger.Error("booking creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	result, err := h.Checkout.CreateSession(identity, b.ID, input.SuccessURL, input.CancelURL)
	if err != nil {
		// The pending booking stays behind; the client can retry checkout.
		h.Logger.Error("checkout session creation failed", zap.Error(err), zap.String("booking_id", b.ID))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "booking_id": b.ID})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"url":        result.URL,
		"session_id": result.SessionID,
		"booking_id": b.ID,
	})
}
