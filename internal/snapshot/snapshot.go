// Package snapshot keeps the most recently extracted dataset for concurrent readers
package snapshot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/myusername/records-dashboard/internal/metrics"
	"github.com/myusername/records-dashboard/pkg/models"
)

// Loader produces a fresh dataset, typically by fetching and extracting a page
type Loader func(ctx context.Context) (*models.Dataset, error)

// Option configures a Store
type Option func(*Store)

// WithLoadTimeout bounds every load, independent of the callers waiting on it
func WithLoadTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.timeout = d
	}
}

// Store holds an immutable dataset snapshot. Refreshes are collapsed so at
// most one load runs at a time; readers never block on a load.
type Store struct {
	load    Loader
	metrics *metrics.Manager
	timeout time.Duration
	group   singleflight.Group

	mu       sync.RWMutex
	data     *models.Dataset
	loadedAt time.Time
}

// New creates an empty store; m may be nil
func New(load Loader, m *metrics.Manager, opts ...Option) *Store {
	s := &Store{load: load, metrics: m}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the latest snapshot and when it was loaded. Before the
// first successful load it returns an empty dataset and the zero time.
func (s *Store) Current() (*models.Dataset, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return models.Empty(), time.Time{}
	}
	return s.data, s.loadedAt
}

// Get returns the current snapshot, loading it first if nothing was loaded yet
func (s *Store) Get(ctx context.Context) (*models.Dataset, error) {
	s.mu.RLock()
	data := s.data
	s.mu.RUnlock()
	if data != nil {
		return data, nil
	}
	return s.Refresh(ctx)
}

// Refresh loads a new snapshot. Concurrent callers share one load, and a
// caller giving up does not cancel it for the others. On failure the
// previous snapshot stays in place.
func (s *Store) Refresh(ctx context.Context) (*models.Dataset, error) {
	ch := s.group.DoChan("load", func() (any, error) {
		// Detach from the caller that started the load
		loadCtx := context.WithoutCancel(ctx)
		if s.timeout > 0 {
			var cancel context.CancelFunc
			loadCtx, cancel = context.WithTimeout(loadCtx, s.timeout)
			defer cancel()
		}

		start := time.Now()
		data, err := s.load(loadCtx)
		took := time.Since(start)
		if err != nil {
			s.metrics.ObserveExtraction(took, 0, err)
			return nil, err
		}
		if data == nil {
			data = models.Empty()
		}
		s.metrics.ObserveExtraction(took, data.Len(), nil)

		// Publish the new snapshot
		s.mu.Lock()
		s.data = data
		s.loadedAt = time.Now()
		s.mu.Unlock()

		slog.InfoContext(loadCtx, "snapshot refreshed", "records", data.Len(), "took", took)
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			slog.ErrorContext(ctx, "snapshot refresh failed", "error", res.Err, "shared", res.Shared)
			return nil, res.Err
		}
		return res.Val.(*models.Dataset), nil
	}
}
