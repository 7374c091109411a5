package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/nightfable/nightfable/docs"
	authhandlers "github.com/nightfable/nightfable/internal/handlers/auth"
	balancehandlers "github.com/nightfable/nightfable/internal/handlers/balance"
	billinghandlers "github.com/nightfable/nightfable/internal/handlers/billing"
	markethandlers "github.com/nightfable/nightfable/internal/handlers/market"
	storyhandlers "github.com/nightfable/nightfable/internal/handlers/stories"
	"github.com/nightfable/nightfable/internal/service"
	"github.com/nightfable/nightfable/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type StoryHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Publish(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type MarketHandler interface {
	ListStore(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	GetPurchases(w http.ResponseWriter, r *http.Request)
	GetSales(w http.ResponseWriter, r *http.Request)
}

type BillingHandler interface {
	Checkout(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	StoryHandler   StoryHandler
	BalanceHandler BalanceHandler
	MarketHandler  MarketHandler
	BillingHandler BillingHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		StoryHandler:   storyhandlers.New(s.StoryService),
		BalanceHandler: balancehandlers.New(s.BalanceService),
		MarketHandler:  markethandlers.New(s.MarketService),
		BillingHandler: billinghandlers.New(s.BillingService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Post("/api/webhook/stripe", h.BillingHandler.Webhook)
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Route("/stories", func(r chi.Router) {
				r.Post("/", h.StoryHandler.Generate)
				r.Get("/", h.StoryHandler.List)
				r.Get("/{id}", h.StoryHandler.Get)
				r.Post("/{id}/publish", h.StoryHandler.Publish)
			})
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
			})
			r.Get("/transactions", h.BalanceHandler.GetTransactions)
			r.Get("/purchases", h.MarketHandler.GetPurchases)
			r.Get("/sales", h.MarketHandler.GetSales)
			r.Post("/billing/checkout", h.BillingHandler.Checkout)
		})
	})
	r.Route("/api/store", func(r chi.Router) {
		r.Get("/", h.MarketHandler.ListStore)
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Post("/{id}/purchase", h.MarketHandler.Purchase)
		})
	})

	return r
}
