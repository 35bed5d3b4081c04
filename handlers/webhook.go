package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"partyplan/config"
	"partyplan/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// WebhookHandler receives asynchronous payment events from Stripe.
type WebhookHandler struct {
	Reconciler *payment.Reconciler
	Logger     *zap.Logger
}

func NewWebhookHandler(rec *payment.Reconciler, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Reconciler: rec, Logger: logger}
}

// StripeWebhook verifies the event signature and reconciles completed
// checkout sessions. A 500 tells Stripe to redeliver; everything else is
// acknowledged with 200 so delivery stops.
func (h *WebhookHandler) StripeWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "failed to read body")
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	if sig == "" {
		h.Logger.Warn("webhook without signature header")
		c.String(http.StatusBadRequest, "No signature")
		return
	}

	event, err := webhook.ConstructEvent(body, sig, config.AppConfig.StripeWebhookSecret)
	if err != nil {
		h.Logger.Warn("webhook signature verification failed", zap.Error(err))
		c.String(http.StatusBadRequest, "Webhook signature verification failed")
		return
	}

	if event.Type != "checkout.session.completed" {
		// Other event types are acknowledged and skipped.
		c.String(http.StatusOK, "ignored")
		return
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		h.Logger.Warn("failed to parse checkout session", zap.Error(err))
		c.String(http.StatusBadRequest, "malformed event payload")
		return
	}

	bookingID := sess.Metadata["booking_id"]
	if bookingID == "" {
		h.Logger.Warn("checkout session without booking_id metadata", zap.String("session_id", sess.ID))
		c.String(http.StatusBadRequest, "No booking_id found")
		return
	}

	completed := payment.CompletedSession{
		BookingID:        bookingID,
		UserID:           sess.Metadata["user_id"],
		AmountTotalCents: sess.AmountTotal,
	}
	if sess.PaymentIntent != nil {
		completed.TransactionID = sess.PaymentIntent.ID
	}
	if sess.CustomerDetails != nil {
		completed.CustomerEmail = sess.CustomerDetails.Email
	}

	if err := h.Reconciler.HandleCompletedSession(completed); err != nil {
		h.Logger.Error("reconciliation failed", zap.Error(err), zap.String("booking_id", bookingID))
		c.String(http.StatusInternalServerError, "Database update failed")
		return
	}

	c.String(http.StatusOK, "Webhook processed successfully")
}
