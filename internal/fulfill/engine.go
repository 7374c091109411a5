package fulfill

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nightfable/nightfable/internal/domain"
)

// Fulfiller runs the generation pipeline for one reserved story. It must be
// idempotent on story id.
type Fulfiller interface {
	Fulfill(ctx context.Context, storyID, ownerID string) error
}

type StoryRepo interface {
	FindStalled(ctx context.Context, cutoff time.Time, limit int) ([]domain.Story, error)
}

// Engine drives story fulfillment: freshly reserved stories are enqueued
// directly, and a sweeper re-enqueues stories left generating by a crashed
// or interrupted process.
type Engine struct {
	fulfiller  Fulfiller
	storyRepo  StoryRepo
	workerPool WorkerPoolI

	inflight      sync.Map
	sweepInterval time.Duration
	stallAfter    time.Duration
	limit         int

	mu      sync.Mutex
	rootCtx context.Context
}

func New(fulfiller Fulfiller, storyRepo StoryRepo, workers int) *Engine {
	if workers <= 0 {
		workers = 10
	}
	return &Engine{
		fulfiller:     fulfiller,
		storyRepo:     storyRepo,
		workerPool:    NewWorkerPool(workers),
		sweepInterval: time.Minute,
		stallAfter:    10 * time.Minute,
		limit:         100,
	}
}

func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	e.rootCtx = ctx
	e.mu.Unlock()

	zap.L().Info("fulfillment engine started")
	e.run(ctx)
}

func (e *Engine) run(ctx context.Context) {
	ticker := time.NewTicker(e.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping fulfillment engine")
			return
		case <-ticker.C:
			e.sweep(ctx)
		}
	}
}

// sweep re-enqueues stories stuck in the generating state past the stall
// threshold.
func (e *Engine) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-e.stallAfter)
	stories, err := e.storyRepo.FindStalled(ctx, cutoff, e.limit)
	if err != nil {
		zap.L().Error("failed to fetch stalled stories", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, story := range stories {
		story := story
		g.Go(func() error {
			e.enqueue(ctx, story.ID, story.OwnerID)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error sweeping stalled stories", zap.Error(err))
	}
}

// Enqueue schedules fulfillment of a just-reserved story.
func (e *Engine) Enqueue(storyID, ownerID string) {
	e.mu.Lock()
	ctx := e.rootCtx
	e.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}
	e.enqueue(ctx, storyID, ownerID)
}

func (e *Engine) enqueue(ctx context.Context, storyID, ownerID string) {
	if _, loaded := e.inflight.LoadOrStore(storyID, struct{}{}); loaded {
		return
	}

	err := e.workerPool.AddTask(ctx, func() error {
		defer e.inflight.Delete(storyID)
		return e.fulfiller.Fulfill(ctx, storyID, ownerID)
	})
	if err != nil {
		e.inflight.Delete(storyID)
		zap.L().Error("failed to enqueue fulfillment",
			zap.String("story_id", storyID), zap.Error(err))
	}
}
