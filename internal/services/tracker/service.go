// Package tracker keeps the live case snapshot shown on the tracker page.
//
// The snapshot is display data only; the survival estimate never reads it.
package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	apperrors "github.com/louisbranch/covidtracker/internal/platform/errors"
	"github.com/louisbranch/covidtracker/internal/services/tracker/covidtracking"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Fetcher reads both daily feeds.
type Fetcher interface {
	USDaily(ctx context.Context) ([]covidtracking.DailyRecord, error)
	StatesDaily(ctx context.Context) ([]covidtracking.DailyRecord, error)
}

// Service holds the most recent snapshot. A failed load is retried on the
// next Snapshot call; concurrent callers share one retry.
type Service struct {
	fetcher Fetcher
	now     func() time.Time
	loads   singleflight.Group

	mu       sync.RWMutex
	snapshot *Snapshot
	loadedAt time.Time
}

// NewService creates a tracker service backed by fetcher.
func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher, now: time.Now}
}

// Load fetches both feeds and replaces the snapshot.
func (s *Service) Load(ctx context.Context) error {
	if s == nil || s.fetcher == nil {
		return apperrors.New(apperrors.CodeTrackerUnavailable, "tracker feed is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

// Snapshot returns the loaded snapshot, loading it first when no load has
// succeeded yet. The returned slices are shared and must not be modified.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	if s == nil || s.fetcher == nil {
		return Snapshot{}, apperrors.New(apperrors.CodeTrackerUnavailable, "tracker feed is not configured")
	}
	s.mu.RLock()
	if s.snapshot != nil {
		snapshot := *s.snapshot
		s.mu.RUnlock()
		return snapshot, nil
	}
	s.mu.RUnlock()

	// The shared fetch outlives any single caller; each caller still stops
	// waiting when its own context ends.
	shared := context.WithoutCancel(ctx)
	result := s.loads.DoChan("snapshot", func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.snapshot == nil {
			if err := s.loadLocked(shared); err != nil {
				return nil, err
			}
		}
		return *s.snapshot, nil
	})
	select {
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case res := <-result:
		if res.Err != nil {
			return Snapshot{}, res.Err
		}
		return res.Val.(Snapshot), nil
	}
}

// LoadedAt reports when the current snapshot was fetched.
func (s *Service) LoadedAt() (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt, s.snapshot != nil
}

// loadLocked fetches both feeds concurrently; the first failure cancels the
// other request.
func (s *Service) loadLocked(ctx context.Context) error {
	var us, states []covidtracking.DailyRecord
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		records, err := s.fetcher.USDaily(groupCtx)
		if err != nil {
			return unavailable("fetch us daily feed", err)
		}
		us = records
		return nil
	})
	group.Go(func() error {
		records, err := s.fetcher.StatesDaily(groupCtx)
		if err != nil {
			return unavailable("fetch states daily feed", err)
		}
		states = records
		return nil
	})
	if err := group.Wait(); err != nil {
		return err
	}
	snapshot := BuildSnapshot(us, states)
	s.snapshot = &snapshot
	s.loadedAt = s.now()
	return nil
}

func unavailable(message string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return apperrors.Wrap(apperrors.CodeTrackerUnavailable, message, err)
}
