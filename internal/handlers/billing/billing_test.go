package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nightfable/nightfable/internal/dto"
	"github.com/nightfable/nightfable/internal/service/billingservice"
	"github.com/nightfable/nightfable/pkg/auth"
	"github.com/nightfable/nightfable/pkg/utils"
)

func NewMock(t *testing.T) (*BillingHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestCheckoutHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Session created",
			body: `{"items":[{"priceId":"price_10","quantity":2}]}`,
			prepareMock: func() {
				service.EXPECT().
					CreateCheckout(gomock.Any(), "user-1",
						[]billingservice.CheckoutItem{{PriceID: "price_10", Quantity: 2}},
						"https://nightfable.app").
					Return("https://checkout.stripe.com/c/pay_123", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Empty cart",
			body: `{"items":[]}`,
			prepareMock: func() {
				service.EXPECT().
					CreateCheckout(gomock.Any(), "user-1", []billingservice.CheckoutItem{}, "https://nightfable.app").
					Return("", billingservice.ErrNoItems)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: billingservice.ErrNoItems.Error(),
		},
		{
			name: "Unknown price id",
			body: `{"items":[{"priceId":"price_999","quantity":1}]}`,
			prepareMock: func() {
				service.EXPECT().
					CreateCheckout(gomock.Any(), "user-1", gomock.Any(), "https://nightfable.app").
					Return("", billingservice.ErrUnknownPrice)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: billingservice.ErrUnknownPrice.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request format",
		},
		{
			name: "Provider failure",
			body: `{"items":[{"priceId":"price_10","quantity":1}]}`,
			prepareMock: func() {
				service.EXPECT().
					CreateCheckout(gomock.Any(), "user-1", gomock.Any(), "https://nightfable.app").
					Return("", errors.New("stripe is down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to create checkout session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/billing/checkout", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Origin", "https://nightfable.app")
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, "user-1"))
			rr := httptest.NewRecorder()

			handler.Checkout(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp dto.CheckoutResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "https://checkout.stripe.com/c/pay_123", resp.URL)
			}
		})
	}
}

func TestWebhookHandler(t *testing.T) {
	handler, service := NewMock(t)
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	t.Run("Event accepted", func(t *testing.T) {
		service.EXPECT().HandleWebhook(gomock.Any(), payload, "t=123,v1=abc").Return(nil)

		req := httptest.NewRequest("POST", "/api/webhook/stripe", bytes.NewReader(payload))
		req.Header.Set("Stripe-Signature", "t=123,v1=abc")
		rr := httptest.NewRecorder()

		handler.Webhook(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid signature", func(t *testing.T) {
		service.EXPECT().HandleWebhook(gomock.Any(), payload, "bad").
			Return(billingservice.ErrInvalidSignature)

		req := httptest.NewRequest("POST", "/api/webhook/stripe", bytes.NewReader(payload))
		req.Header.Set("Stripe-Signature", "bad")
		rr := httptest.NewRecorder()

		handler.Webhook(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp utils.Response
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Equal(t, "INVALID_SIGNATURE", resp.Code)
	})

	t.Run("Processing failure triggers redelivery", func(t *testing.T) {
		service.EXPECT().HandleWebhook(gomock.Any(), payload, "t=123,v1=abc").
			Return(errors.New("database error"))

		req := httptest.NewRequest("POST", "/api/webhook/stripe", bytes.NewReader(payload))
		req.Header.Set("Stripe-Signature", "t=123,v1=abc")
		rr := httptest.NewRecorder()

		handler.Webhook(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
