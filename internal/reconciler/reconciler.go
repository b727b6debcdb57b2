// Package reconciler keeps the mutable project projection in step with the
// contract's getProjectDetails view.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"openfund/internal/ethereum"
	"openfund/internal/metrics"
	"openfund/internal/repository"

	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Config struct {
	Interval time.Duration
	Backoff  time.Duration
	// Workers bounds how many projects are fetched from the node at once.
	Workers int
}

type Reconciler struct {
	logs    *zap.SugaredLogger
	store   ProjectStore
	chain   ChainReader
	metrics *metrics.Metrics
	cfg     Config
	pool    *ants.Pool

	// held for a whole pass so passes never overlap
	mu sync.Mutex
}

func New(logger *zap.SugaredLogger, store ProjectStore, chain ChainReader, m *metrics.Metrics, cfg Config) (*Reconciler, error) {
	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	return &Reconciler{
		logs:    logger,
		store:   store,
		chain:   chain,
		metrics: m,
		cfg:     cfg,
		pool:    pool,
	}, nil
}

// Run reconciles on a fixed interval until ctx is cancelled.
func (r *Reconciler) Run(ctx context.Context) {
	r.logs.Infow("project reconciler started", "interval", r.cfg.Interval, "workers", r.cfg.Workers)

	for {
		wait := r.cfg.Interval
		if err := r.ReconcileOnce(ctx); err != nil {
			r.metrics.ReconcileErrors.WithLabelValues("pass").Inc()
			r.logs.Errorw("reconciliation pass failed", "error", err, "backoff", r.cfg.Backoff)
			wait = r.cfg.Backoff
		}

		select {
		case <-ctx.Done():
			r.logs.Infow("project reconciler stopped")
			return
		case <-time.After(wait):
		}
	}
}

func (r *Reconciler) Close() {
	r.pool.Release()
}

// ReconcileOnce runs one pass over the active projects. A failing project is
// logged and skipped; only a failure to list projects is returned.
func (r *Reconciler) ReconcileOnce(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	r.metrics.ReconcileRuns.Inc()
	defer func() {
		r.metrics.ReconcileDuration.Observe(time.Since(start).Seconds())
	}()

	projects, err := r.store.GetActiveProjects(ctx)
	if err != nil {
		return fmt.Errorf("list active projects: %w", err)
	}

	var wg sync.WaitGroup
	for _, project := range projects {
		projectID := project.ID
		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()
			if err := r.reconcileProject(ctx, projectID); err != nil {
				r.logs.Errorw("failed to reconcile project", "project_id", projectID, "error", err)
			}
		})
		if err != nil {
			wg.Done()
			r.metrics.ReconcileErrors.WithLabelValues("submit").Inc()
			r.logs.Errorw("failed to submit project to worker pool", "project_id", projectID, "error", err)
		}
	}
	wg.Wait()

	return nil
}

func (r *Reconciler) reconcileProject(ctx context.Context, projectID int64) error {
	details, err := r.chain.ProjectDetails(ctx, projectID)
	if err != nil {
		r.metrics.ReconcileErrors.WithLabelValues("fetch").Inc()
		return fmt.Errorf("fetch project details: %w", err)
	}

	state, err := ToChainState(details)
	if err != nil {
		if errors.Is(err, ErrUnknownStatus) {
			r.metrics.ReconcileErrors.WithLabelValues("unknown_status").Inc()
			r.logs.Errorw("ALERT: contract reported a status outside the known enum",
				"project_id", projectID,
				"status", details.Status,
				"error", err)
		}
		return err
	}

	applied, err := r.store.ApplyChainState(ctx, projectID, state)
	if err != nil {
		r.metrics.ReconcileErrors.WithLabelValues("store").Inc()
		return fmt.Errorf("apply chain state: %w", err)
	}
	if !applied {
		r.logs.Warnw("chain state not applied, stored status is further along",
			"project_id", projectID,
			"status", state.FundingStatus)
		return nil
	}

	r.metrics.ProjectsReconciled.WithLabelValues(string(state.FundingStatus)).Inc()
	r.logs.Debugw("project reconciled",
		"project_id", projectID,
		"status", state.FundingStatus,
		"fund_raised", state.FundRaised.String())

	return nil
}

// ToChainState maps the contract view onto the stored projection. Monetary
// fields are scaled from six-decimal fixed point.
func ToChainState(details ethereum.ProjectDetails) (repository.ChainState, error) {
	status, err := MapStatus(details.Status)
	if err != nil {
		return repository.ChainState{}, err
	}

	var voters int64
	if details.VotersForRefundCount != nil {
		voters = details.VotersForRefundCount.Int64()
	}

	return repository.ChainState{
		TokenSold:          intDecimal(details.TokensSold),
		FundRaised:         ethereum.ToDecimal(details.FundsRaised),
		FundingStatus:      status,
		VoteForRefund:      ethereum.ToDecimal(details.VoteForRefund),
		VoteForRefundCount: voters,
		FundClaimed:        details.FundsClaimed,
	}, nil
}

func intDecimal(v *big.Int) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, 0)
}
