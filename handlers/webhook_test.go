package handlers

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"partyplan/config"
	bookingsRepo "partyplan/database/repository/bookings"
	paymentsRepo "partyplan/database/repository/payments"
	"partyplan/models"
	"partyplan/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

const testWebhookSecret = "whsec_test_secret"

type stubBookingRepo struct {
	bookingsRepo.BookingRepository
	statusByID map[string]string
	updateErr  error
}

func (s *stubBookingRepo) UpdateStatus(id, status string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if s.statusByID == nil {
		s.statusByID = map[string]string{}
	}
	s.statusByID[id] = status
	return nil
}

type stubPaymentRepo struct {
	paymentsRepo.PaymentRepository
	inserted  []*models.Payment
	duplicate bool
	byBooking *models.Payment
}

func (s *stubPaymentRepo) Insert(p *models.Payment) (bool, error) {
	if s.duplicate {
		return false, nil
	}
	s.inserted = append(s.inserted, p)
	return true, nil
}

func (s *stubPaymentRepo) GetByBookingID(bookingID string) (*models.Payment, error) {
	if s.byBooking == nil || s.byBooking.BookingID != bookingID {
		return nil, paymentsRepo.ErrNotFound
	}
	return s.byBooking, nil
}

func webhookRouter(bookings *stubBookingRepo, payments *stubPaymentRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWebhookHandler(&payment.Reconciler{
		Bookings: bookings,
		Payments: payments,
		Logger:   zap.NewNop(),
	}, zap.NewNop())

	r := gin.New()
	r.POST("/api/webhooks/stripe", h.StripeWebhook)
	return r
}

func signedRequest(t *testing.T, payload []byte) *http.Request {
	t.Helper()
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, testWebhookSecret)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature",
		fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig)))
	return req
}

func completedSessionEvent(bookingID string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"api_version": "2023-10-16",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test_123",
				"amount_total": 89700,
				"payment_intent": "pi_123",
				"customer_details": {"email": "jane@example.com"},
				"metadata": {"booking_id": %q, "user_id": "user-1"}
			}
		}
	}`, bookingID))
}

func TestStripeWebhookConfirmsBooking(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret
	bookings := &stubBookingRepo{}
	payments := &stubPaymentRepo{}
	router := webhookRouter(bookings, payments)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, completedSessionEvent("b-1")))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BookingStatusConfirmed, bookings.statusByID["b-1"])

	require.Len(t, payments.inserted, 1)
	p := payments.inserted[0]
	assert.Equal(t, "b-1", p.BookingID)
	assert.Equal(t, 897.0, p.Amount)
	assert.Equal(t, "pi_123", p.TransactionID)
}

func TestStripeWebhookRejectsBadSignature(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret
	bookings := &stubBookingRepo{}
	router := webhookRouter(bookings, &stubPaymentRepo{})

	payload := completedSessionEvent("b-1")
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", fmt.Sprintf("t=%d,v1=deadbeef", time.Now().Unix()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, bookings.statusByID)
}

func TestStripeWebhookRequiresSignatureHeader(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret
	router := webhookRouter(&stubBookingRepo{}, &stubPaymentRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe",
		bytes.NewReader(completedSessionEvent("b-1")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No signature")
}

func TestStripeWebhookIgnoresOtherEventTypes(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret
	bookings := &stubBookingRepo{}
	router := webhookRouter(bookings, &stubPaymentRepo{})

	payload := []byte(`{"id": "evt_2", "api_version": "2023-10-16", "type": "invoice.paid", "data": {"object": {}}}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, payload))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, bookings.statusByID)
}

func TestStripeWebhookRequiresBookingMetadata(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret
	router := webhookRouter(&stubBookingRepo{}, &stubPaymentRepo{})

	payload := []byte(`{
		"id": "evt_3",
		"api_version": "2023-10-16",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_test_456", "amount_total": 100, "metadata": {}}}
	}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, payload))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No booking_id found")
}

func TestStripeWebhookDuplicateDeliveryIsAcknowledged(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret
	bookings := &stubBookingRepo{}
	router := webhookRouter(bookings, &stubPaymentRepo{duplicate: true})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, completedSessionEvent("b-1")))

	// Redelivery re-confirms the booking but must not error, so Stripe
	// stops retrying.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BookingStatusConfirmed, bookings.statusByID["b-1"])
}

func TestStripeWebhookSignalsRetryOnDatabaseFailure(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret
	bookings := &stubBookingRepo{updateErr: errors.New("connection reset")}
	router := webhookRouter(bookings, &stubPaymentRepo{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, completedSessionEvent("b-1")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
