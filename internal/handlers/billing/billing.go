package billing

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/nightfable/nightfable/internal/dto"
	"github.com/nightfable/nightfable/internal/service/billingservice"
	"github.com/nightfable/nightfable/pkg/auth"
	"github.com/nightfable/nightfable/pkg/utils"
)

const maxWebhookBody = 1 << 16

type Service interface {
	CreateCheckout(ctx context.Context, userID string, items []billingservice.CheckoutItem, origin string) (string, error)
	HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error
}

type BillingHandler struct {
	billingService Service
}

func New(billingService Service) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
	}
}

// Checkout godoc
//
//	@Summary		Start a credit top-up
//	@Description	Create a hosted payment session for the requested credit packs
//	@Tags			Billing
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.CheckoutRequestDTO	true	"Credit packs to buy"
//	@Success		200		{object}	dto.CheckoutResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request format"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/billing/checkout [post]
func (h *BillingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request format")
		return
	}

	items := make([]billingservice.CheckoutItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = billingservice.CheckoutItem{PriceID: it.PriceID, Quantity: it.Quantity}
	}

	url, err := h.billingService.CreateCheckout(r.Context(), userID, items, r.Header.Get("Origin"))
	if err != nil {
		switch {
		case errors.Is(err, billingservice.ErrNoItems):
			utils.RespondWithError(w, http.StatusBadRequest, "NO_ITEMS", err.Error())
		case errors.Is(err, billingservice.ErrUnknownPrice):
			utils.RespondWithError(w, http.StatusBadRequest, "UNKNOWN_PRICE", err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "INTERNAL", "Failed to create checkout session")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CheckoutResponseDTO{URL: url})
}

// Webhook godoc
//
//	@Summary		Payment provider webhook
//	@Description	Receive payment events and credit the paying account exactly once
//	@Tags			Billing
//	@Accept			json
//	@Success		200	"Event accepted"
//	@Failure		400	{object}	utils.Response	"Invalid payload or signature"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/webhook/stripe [post]
func (h *BillingHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "BAD_REQUEST", "Failed to read payload")
		return
	}

	err = h.billingService.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, billingservice.ErrInvalidSignature) {
			utils.RespondWithError(w, http.StatusBadRequest, "INVALID_SIGNATURE", err.Error())
			return
		}
		// Non-2xx makes the provider redeliver; processing is idempotent
		// so a retry after a transient failure is safe.
		utils.RespondWithError(w, http.StatusInternalServerError, "INTERNAL", "Failed to process event")
		return
	}

	w.WriteHeader(http.StatusOK)
}
