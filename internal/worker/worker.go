// Package worker runs batch optimization passes: it reads pending postings
// from storage, optimizes each one, records the audit row, and pushes the
// result to the content system on a best-effort basis.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/posting-optimizer/internal/engine"
	"github.com/jonathan/posting-optimizer/internal/store"
	"github.com/jonathan/posting-optimizer/internal/types"
)

// PostingStore is the storage surface the worker consumes.
type PostingStore interface {
	ListPendingPostings(ctx context.Context, limit int) ([]*store.StoredPosting, error)
	SaveOptimization(ctx context.Context, postingID uuid.UUID, result *types.OptimizationResult) (uuid.UUID, error)
}

// ContentPusher propagates results to the external content system.
type ContentPusher interface {
	PushOptimization(ctx context.Context, remoteID int64, result *types.OptimizationResult) error
}

// Worker orchestrates one batch pass over pending postings.
type Worker struct {
	store       PostingStore
	engine      *engine.Engine
	content     ContentPusher // nil disables pushing
	concurrency int
	batchSize   int
	log         *slog.Logger
}

// Summary reports what a batch pass did.
type Summary struct {
	Processed  int `json:"processed"`
	Pushed     int `json:"pushed"`
	PushErrors int `json:"push_errors"`
}

// New creates a worker. content may be nil to skip content-system updates.
func New(s PostingStore, e *engine.Engine, content ContentPusher, batchSize, concurrency int) *Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Worker{
		store:       s,
		engine:      e,
		content:     content,
		concurrency: concurrency,
		batchSize:   batchSize,
		log:         slog.Default(),
	}
}

// Run executes one batch pass. Postings are optimized independently with
// bounded concurrency; a failed push to the content system is logged and
// counted but never fails the posting, since persisting the optimization is
// the primary operation.
func (w *Worker) Run(ctx context.Context) (*Summary, error) {
	pending, err := w.store.ListPendingPostings(ctx, w.batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending postings: %w", err)
	}

	var processed, pushed, pushErrors atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)
	for _, p := range pending {
		g.Go(func() error {
			result := w.engine.Optimize(p.ToPosting())

			if _, err := w.store.SaveOptimization(gctx, p.ID, &result); err != nil {
				return fmt.Errorf("failed to save optimization for posting %s: %w", p.ID, err)
			}
			processed.Add(1)

			if w.content == nil || p.RemoteID == 0 {
				return nil
			}
			if err := w.content.PushOptimization(gctx, p.RemoteID, &result); err != nil {
				pushErrors.Add(1)
				w.log.Warn("failed to push optimization to content system",
					"posting_id", p.ID, "remote_id", p.RemoteID, "error", err)
				return nil
			}
			pushed.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Summary{
		Processed:  int(processed.Load()),
		Pushed:     int(pushed.Load()),
		PushErrors: int(pushErrors.Load()),
	}, nil
}
