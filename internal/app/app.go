package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nightfable/nightfable/internal/blob"
	"github.com/nightfable/nightfable/internal/config"
	"github.com/nightfable/nightfable/internal/cover"
	"github.com/nightfable/nightfable/internal/fulfill"
	"github.com/nightfable/nightfable/internal/handlers"
	"github.com/nightfable/nightfable/internal/narration"
	"github.com/nightfable/nightfable/internal/pg"
	"github.com/nightfable/nightfable/internal/repo"
	"github.com/nightfable/nightfable/internal/service"
	"github.com/nightfable/nightfable/internal/service/billingservice"
	"github.com/nightfable/nightfable/internal/textgen"
	"github.com/nightfable/nightfable/pkg/auth"
	"github.com/nightfable/nightfable/pkg/clients"
	"github.com/nightfable/nightfable/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	engine *fulfill.Engine

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	blobs, err := blob.NewStore(cfg.BlobEndpoint, cfg.BlobAccessKey, cfg.BlobSecretKey,
		cfg.BlobBucket, cfg.BlobUseSSL, cfg.DownloadEndpoint)
	if err != nil {
		zap.L().Error("blob store init failed: ", zap.Error(err))
		return fmt.Errorf("can't init blob store: %w", err)
	}

	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, txManager, cfg, service.Collaborators{
		TextGen:  textgen.New(cfg.GeminiAddress, cfg.GeminiAPIKey),
		Narrator: narration.New(cfg.TTSAddress, cfg.TTSAPIKey),
		Covers:   cover.New(clients.NewHTTPClient()),
		Blobs:    blobs,
		Checkout: billingservice.NewStripeCheckout(cfg.StripeSecretKey),
		Verifier: billingservice.NewStripeVerifier(cfg.StripeWebhookSecret),
	})
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret))

	a.engine = fulfill.New(a.srv.StoryService, a.repo.StoryRepo, cfg.FulfillWorkers)
	a.srv.StoryService.SetEnqueuer(a.engine)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startFulfillEngine(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startFulfillEngine(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.engine.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
