package billingservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"github.com/nightfable/nightfable/internal/domain"
	"github.com/nightfable/nightfable/internal/pg"
)

var (
	ErrNoItems          = errors.New("no items in cart")
	ErrUnknownPrice     = errors.New("unknown price id")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

type CheckoutItem struct {
	PriceID  string
	Quantity int64
}

// CheckoutClient creates hosted checkout sessions; implemented by the Stripe
// SDK adapter and mocked in tests.
type CheckoutClient interface {
	NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// EventVerifier authenticates a webhook payload before it is trusted.
type EventVerifier interface {
	ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error)
}

type UserRepo interface {
	AddCredits(ctx context.Context, userID string, amount int64) (int64, error)
}

type EventRepo interface {
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
}

type TxLogRepo interface {
	Append(ctx context.Context, t *domain.Transaction) error
}

type Service struct {
	checkout     CheckoutClient
	verifier     EventVerifier
	userRepo     UserRepo
	eventRepo    EventRepo
	txLogRepo    TxLogRepo
	txManager    pg.TXManager
	priceCredits map[string]int64
}

func New(checkout CheckoutClient, verifier EventVerifier, userRepo UserRepo, eventRepo EventRepo,
	txLogRepo TxLogRepo, txManager pg.TXManager, priceCredits map[string]int64) *Service {
	return &Service{
		checkout:     checkout,
		verifier:     verifier,
		userRepo:     userRepo,
		eventRepo:    eventRepo,
		txLogRepo:    txLogRepo,
		txManager:    txManager,
		priceCredits: priceCredits,
	}
}

// CreateCheckout builds a hosted checkout session for the cart and returns
// its URL. The user id rides along as the client reference so the webhook
// can credit the right account; the credit total travels in metadata.
func (s *Service) CreateCheckout(ctx context.Context, userID string, items []CheckoutItem, origin string) (string, error) {
	if len(items) == 0 {
		return "", ErrNoItems
	}

	var totalCredits int64
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		credits, ok := s.priceCredits[item.PriceID]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownPrice, item.PriceID)
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		totalCredits += credits * quantity
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(item.PriceID),
			Quantity: stripe.Int64(quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(userID),
		LineItems:         lineItems,
		SuccessURL:        stripe.String(origin + "/credits?status=success"),
		CancelURL:         stripe.String(origin + "/credits?status=cancelled"),
	}
	params.AddMetadata("credits", strconv.FormatInt(totalCredits, 10))

	sess, err := s.checkout.NewSession(params)
	if err != nil {
		zap.L().Error("failed to create checkout session", zap.Error(err))
		return "", err
	}
	return sess.URL, nil
}

// HandleWebhook verifies and applies one delivered event. Top-ups are keyed
// by event id, so a redelivered event never credits twice.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := s.verifier.ConstructEvent(payload, sigHeader)
	if err != nil {
		zap.L().Warn("webhook signature verification failed", zap.Error(err))
		return errors.Join(ErrInvalidSignature, err)
	}

	if event.Type != "checkout.session.completed" {
		return nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("decode checkout session: %w", err)
	}

	userID := sess.ClientReferenceID
	if userID == "" {
		zap.L().Warn("checkout session without client reference", zap.String("event_id", event.ID))
		return nil
	}
	credits, err := strconv.ParseInt(sess.Metadata["credits"], 10, 64)
	if err != nil || credits <= 0 {
		zap.L().Warn("checkout session without valid credits metadata", zap.String("event_id", event.ID))
		return nil
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		fresh, err := s.eventRepo.MarkProcessed(ctx, event.ID)
		if err != nil {
			return err
		}
		if !fresh {
			zap.L().Info("webhook event already processed", zap.String("event_id", event.ID))
			return nil
		}
		if _, err := s.userRepo.AddCredits(ctx, userID, credits); err != nil {
			return err
		}
		return s.txLogRepo.Append(ctx, &domain.Transaction{
			UserID: userID,
			Type:   domain.TxnPurchase,
			Amount: credits,
			Title:  "Credit top-up",
		})
	})
}
