package service

import (
	"github.com/nightfable/nightfable/internal/config"
	"github.com/nightfable/nightfable/internal/pg"
	"github.com/nightfable/nightfable/internal/repo"
	"github.com/nightfable/nightfable/internal/service/authservice"
	"github.com/nightfable/nightfable/internal/service/balanceservice"
	"github.com/nightfable/nightfable/internal/service/billingservice"
	"github.com/nightfable/nightfable/internal/service/marketservice"
	"github.com/nightfable/nightfable/internal/service/storyservice"
	pkgauth "github.com/nightfable/nightfable/pkg/auth"
)

type Services struct {
	AuthService    *authservice.Service
	StoryService   *storyservice.Service
	BalanceService *balanceservice.Service
	MarketService  *marketservice.Service
	BillingService *billingservice.Service
}

// Collaborators are the external pipeline and payment clients wired in by
// the application.
type Collaborators struct {
	TextGen  storyservice.TextGenerator
	Narrator storyservice.Narrator
	Covers   storyservice.CoverMaker
	Blobs    storyservice.BlobStore
	Checkout billingservice.CheckoutClient
	Verifier billingservice.EventVerifier
}

func New(repos *repo.Repositories, txManager pg.TXManager, cfg *config.Config, c Collaborators) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	authService := authservice.New(repos.UserRepo, repos.TxLogRepo, txManager,
		&pkgauth.HashService{}, jwtService, cfg.StartingCredits)
	storyService := storyservice.New(repos.UserRepo, repos.StoryRepo, repos.TxLogRepo, txManager,
		c.TextGen, c.Narrator, c.Covers, c.Blobs, cfg.StoryCost)
	balanceService := balanceservice.New(repos.UserRepo, repos.TxLogRepo)
	marketService := marketservice.New(repos.UserRepo, repos.StoryRepo, repos.ReceiptRepo,
		repos.TxLogRepo, txManager, cfg.StoryPrice)
	billingService := billingservice.New(c.Checkout, c.Verifier, repos.UserRepo, repos.EventRepo,
		repos.TxLogRepo, txManager, map[string]int64{
			cfg.StripePrice10: 10,
			cfg.StripePrice25: 25,
			cfg.StripePrice50: 50,
		})

	return &Services{
		AuthService:    authService,
		StoryService:   storyService,
		BalanceService: balanceService,
		MarketService:  marketService,
		BillingService: billingService,
	}
}
