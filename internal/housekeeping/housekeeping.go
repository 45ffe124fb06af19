// Package housekeeping runs the periodic background work of the engine:
// refunding claim intents abandoned after a crash and refreshing the coupon
// inventory gauges.
package housekeeping

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/rewardhub/internal/config"
	"github.com/GlebRadaev/rewardhub/internal/domain"
)

const staleReason = "stale"

type Claims interface {
	StaleIntents(ctx context.Context, olderThan time.Duration, limit uint32) ([]domain.ClaimIntent, error)
	CompensateIntent(ctx context.Context, intent domain.ClaimIntent, reason string) error
}

type Inventory interface {
	Inventory(ctx context.Context) (map[domain.RewardType]int, error)
}

type Sweeper struct {
	claims     Claims
	inventory  Inventory
	workerPool WorkerPoolI
	interval   time.Duration
	staleAfter time.Duration
	batch      uint32
	inFlight   sync.Map
}

func New(cfg config.Housekeeping, claims Claims, inventory Inventory) *Sweeper {
	return &Sweeper{
		claims:     claims,
		inventory:  inventory,
		workerPool: NewWorkerPool(cfg.Workers),
		interval:   cfg.Interval,
		staleAfter: cfg.StaleAfter,
		batch:      cfg.Batch,
	}
}

// Start sweeps on every tick until ctx is done, then drains the worker pool.
func (s *Sweeper) Start(ctx context.Context) {
	zap.L().Info("housekeeping started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping housekeeping")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

func (s *Sweeper) Sweep(ctx context.Context) {
	if err := s.compensateStale(ctx); err != nil {
		zap.L().Error("can't compensate stale claim intents", zap.Error(err))
	}
	if _, err := s.inventory.Inventory(ctx); err != nil {
		zap.L().Error("can't refresh coupon inventory", zap.Error(err))
	}
}

// compensateStale refunds one batch of abandoned intents and waits for the
// batch to finish. An intent already queued by an earlier tick is skipped.
func (s *Sweeper) compensateStale(ctx context.Context) error {
	intents, err := s.claims.StaleIntents(ctx, s.staleAfter, s.batch)
	if err != nil {
		return err
	}

	var g errgroup.Group
	var wg sync.WaitGroup
	for _, intent := range intents {
		intent := intent
		if _, loaded := s.inFlight.LoadOrStore(intent.ID, struct{}{}); loaded {
			continue
		}

		wg.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				defer s.inFlight.Delete(intent.ID)
				return s.claims.CompensateIntent(ctx, intent, staleReason)
			})
			if err != nil {
				wg.Done()
				s.inFlight.Delete(intent.ID)
				return err
			}
			return nil
		})
	}

	err = g.Wait()
	wg.Wait()
	return err
}
