package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"

	apperrors "github.com/louisbranch/covidtracker/internal/platform/errors"
	"github.com/louisbranch/covidtracker/internal/services/tracker/covidtracking"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeFetcher struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeFetcher) USDaily(context.Context) ([]covidtracking.DailyRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []covidtracking.DailyRecord{{Date: day(7), PositiveIncrease: covidtracking.Int64(5)}}, nil
}

func (f *fakeFetcher) StatesDaily(context.Context) ([]covidtracking.DailyRecord, error) {
	return []covidtracking.DailyRecord{{Date: day(7), State: "NY", Positive: covidtracking.Int64(9)}}, nil
}

func (f *fakeFetcher) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestSnapshotRetriesAfterFailedLoad(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	service := NewService(fetcher)

	if err := service.Load(context.Background()); apperrors.CodeOf(err) != apperrors.CodeTrackerUnavailable {
		t.Fatalf("load error = %v, want tracker unavailable", err)
	}
	if _, ok := service.LoadedAt(); ok {
		t.Fatal("expected no snapshot after failed load")
	}

	fetcher.setErr(nil)
	snapshot, err := service.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snapshot.Totals.Positive != 9 {
		t.Fatalf("positive total = %d, want %d", snapshot.Totals.Positive, 9)
	}
	if _, ok := service.LoadedAt(); !ok {
		t.Fatal("expected loaded snapshot")
	}
}

func TestSnapshotLoadsOnce(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{}
	service := NewService(fetcher)

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := service.Snapshot(context.Background()); err != nil {
				t.Errorf("snapshot: %v", err)
			}
		}()
	}
	wg.Wait()
	if got := fetcher.callCount(); got != 1 {
		t.Fatalf("fetch calls = %d, want %d", got, 1)
	}
}

func TestSnapshotWithoutFetcherIsUnavailable(t *testing.T) {
	t.Parallel()

	_, err := NewService(nil).Snapshot(context.Background())
	if apperrors.CodeOf(err) != apperrors.CodeTrackerUnavailable {
		t.Fatalf("error = %v, want tracker unavailable", err)
	}
}

// blockingFetcher fails the states feed and holds the national feed until
// its context ends.
type blockingFetcher struct{}

func (blockingFetcher) USDaily(ctx context.Context) ([]covidtracking.DailyRecord, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingFetcher) StatesDaily(context.Context) ([]covidtracking.DailyRecord, error) {
	return nil, errors.New("upstream 502")
}

func TestLoadCancelsSiblingFetchOnFailure(t *testing.T) {
	t.Parallel()

	err := NewService(blockingFetcher{}).Load(context.Background())
	if apperrors.CodeOf(err) != apperrors.CodeTrackerUnavailable {
		t.Fatalf("load error = %v, want tracker unavailable", err)
	}
}

// gatedFetcher fails both feeds once release is closed.
type gatedFetcher struct {
	release chan struct{}

	mu    sync.Mutex
	calls int
}

func (f *gatedFetcher) USDaily(context.Context) ([]covidtracking.DailyRecord, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	<-f.release
	return nil, errors.New("upstream timeout")
}

func (f *gatedFetcher) StatesDaily(context.Context) ([]covidtracking.DailyRecord, error) {
	<-f.release
	return nil, errors.New("upstream timeout")
}

func (f *gatedFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestSnapshotSharesOneFetchDuringOutage(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		fetcher := &gatedFetcher{release: make(chan struct{})}
		service := NewService(fetcher)

		errs := make(chan error, 10)
		for n := 0; n < 10; n++ {
			go func() {
				_, err := service.Snapshot(context.Background())
				errs <- err
			}()
		}
		synctest.Wait()
		if got := fetcher.callCount(); got != 1 {
			t.Fatalf("fetch calls while waiting = %d, want %d", got, 1)
		}

		close(fetcher.release)
		for n := 0; n < 10; n++ {
			if err := <-errs; apperrors.CodeOf(err) != apperrors.CodeTrackerUnavailable {
				t.Fatalf("snapshot error = %v, want tracker unavailable", err)
			}
		}
		if got := fetcher.callCount(); got != 1 {
			t.Fatalf("fetch calls = %d, want %d", got, 1)
		}
	})
}

func TestSnapshotReturnsWhenCallerGivesUp(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		fetcher := &gatedFetcher{release: make(chan struct{})}
		service := NewService(fetcher)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			_, err := service.Snapshot(ctx)
			done <- err
		}()
		synctest.Wait()
		cancel()
		if err := <-done; !errors.Is(err, context.Canceled) {
			t.Fatalf("snapshot error = %v, want context canceled", err)
		}

		close(fetcher.release)
		synctest.Wait()
		if got := fetcher.callCount(); got != 1 {
			t.Fatalf("fetch calls = %d, want %d", got, 1)
		}
	})
}
