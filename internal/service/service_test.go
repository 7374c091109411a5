package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nightfable/nightfable/internal/config"
	"github.com/nightfable/nightfable/internal/pg"
	"github.com/nightfable/nightfable/internal/repo"
	"github.com/nightfable/nightfable/internal/service/billingservice"
	"github.com/nightfable/nightfable/internal/service/storyservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockPool.Close()

	txManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockPool, txManager)

	cfg := &config.Config{
		JWTSecret:       "secret",
		StartingCredits: 5,
		StoryCost:       5,
		StoryPrice:      5,
		StripePrice10:   "price_10",
		StripePrice25:   "price_25",
		StripePrice50:   "price_50",
	}
	collaborators := Collaborators{
		TextGen:  storyservice.NewMockTextGenerator(ctrl),
		Narrator: storyservice.NewMockNarrator(ctrl),
		Covers:   storyservice.NewMockCoverMaker(ctrl),
		Blobs:    storyservice.NewMockBlobStore(ctrl),
		Checkout: billingservice.NewMockCheckoutClient(ctrl),
		Verifier: billingservice.NewMockEventVerifier(ctrl),
	}

	services := New(repos, txManager, cfg, collaborators)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.StoryService)
	assert.NotNil(t, services.BalanceService)
	assert.NotNil(t, services.MarketService)
	assert.NotNil(t, services.BillingService)
}
