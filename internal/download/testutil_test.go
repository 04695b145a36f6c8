package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vmunix/ondemand/internal/catalog"
	"github.com/vmunix/ondemand/internal/resolve"
	"github.com/vmunix/ondemand/pkg/fetch"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeEpisodes map[int64][]catalog.Episode

func (f fakeEpisodes) ListEpisodes(titleID int64) ([]catalog.Episode, error) {
	return f[titleID], nil
}

func episodesOf(titleID int64, n int) []catalog.Episode {
	eps := make([]catalog.Episode, n)
	for i := range eps {
		id := titleID*100 + int64(i+1)
		eps[i] = catalog.Episode{ID: id, Title: fmt.Sprintf("Episode %d", i+1), TitleID: titleID}
	}
	return eps
}

// fakeResolver writes "<video id>.mp4" for each task. Ids in fail return a
// transport error and ids in panics panic.
type fakeResolver struct {
	fail   map[int64]error
	panics map[int64]bool
	delay  time.Duration

	mu      sync.Mutex
	started []int64

	running atomic.Int32
	peak    atomic.Int32
}

func (f *fakeResolver) Resolve(ctx context.Context, task resolve.Task) (*resolve.Result, error) {
	f.mu.Lock()
	f.started = append(f.started, task.VideoID)
	f.mu.Unlock()

	n := f.running.Add(1)
	defer f.running.Add(-1)
	for {
		peak := f.peak.Load()
		if n <= peak || f.peak.CompareAndSwap(peak, n) {
			break
		}
	}

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.panics[task.VideoID] {
		panic("resolver exploded")
	}
	if err := f.fail[task.VideoID]; err != nil {
		return nil, err
	}

	path := filepath.Join(task.OutputDir, fmt.Sprintf("%d.mp4", task.VideoID))
	if err := os.WriteFile(path, []byte("video"), 0644); err != nil {
		return nil, err
	}
	return &resolve.Result{VideoPath: path}, nil
}

func (f *fakeResolver) startedIDs() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.started...)
}

var errTransport = fmt.Errorf("player page: %w", fetch.ErrExhausted)
