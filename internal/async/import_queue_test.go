package async

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipetrak/pipetrak/internal/importer"
)

type stubRunner struct {
	runs  atomic.Int64
	block chan struct{} // when non-nil, jobs wait here
	err   error
}

func (s *stubRunner) RunImportJob(_ context.Context, _ Job) (*importer.ImportResult, error) {
	if s.block != nil {
		<-s.block
	}
	s.runs.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return &importer.ImportResult{Success: true, ComponentsCreated: 3}, nil
}

func TestImportQueue_RunsJob(t *testing.T) {
	runner := &stubRunner{}
	q := NewImportQueue(runner, slog.New(slog.DiscardHandler), WithWorkers(1))
	defer q.Shutdown(context.Background())

	h, err := q.Submit(context.Background(), Job{JobID: uuid.New()})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := h.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.ComponentsCreated)
	assert.Equal(t, int64(1), runner.runs.Load())
}

func TestImportQueue_PropagatesJobError(t *testing.T) {
	runner := &stubRunner{err: errors.New("write failed")}
	q := NewImportQueue(runner, slog.New(slog.DiscardHandler), WithWorkers(1))
	defer q.Shutdown(context.Background())

	h, err := q.Submit(context.Background(), Job{JobID: uuid.New()})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = h.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write failed")
}

func TestImportQueue_FailsFastWhenFull(t *testing.T) {
	runner := &stubRunner{block: make(chan struct{})}
	q := NewImportQueue(runner, slog.New(slog.DiscardHandler), WithWorkers(1), WithQueueSize(1))

	// first job occupies the worker, second fills the buffer
	_, err := q.Submit(context.Background(), Job{JobID: uuid.New()})
	require.NoError(t, err)
	// give the worker a moment to pick up the first job
	time.Sleep(50 * time.Millisecond)
	_, err = q.Submit(context.Background(), Job{JobID: uuid.New()})
	require.NoError(t, err)

	_, err = q.Submit(context.Background(), Job{JobID: uuid.New()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "full")

	close(runner.block)
	q.Shutdown(context.Background())
}

func TestImportQueue_SubmitAfterShutdown(t *testing.T) {
	q := NewImportQueue(&stubRunner{}, slog.New(slog.DiscardHandler))
	q.Shutdown(context.Background())

	_, err := q.Submit(context.Background(), Job{JobID: uuid.New()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shut down")
}

func TestImportQueue_SubmitRacingShutdownNeverPanics(t *testing.T) {
	// A send on q.ch racing the close in Shutdown would panic and take the
	// process down; the lock in Submit must cover the send.
	for i := 0; i < 200; i++ {
		q := NewImportQueue(&stubRunner{}, slog.New(slog.DiscardHandler), WithWorkers(2), WithQueueSize(4))

		var wg sync.WaitGroup
		start := make(chan struct{})
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				for j := 0; j < 20; j++ {
					_, err := q.Submit(context.Background(), Job{JobID: uuid.New()})
					if err != nil {
						// only the documented refusals, never a panic
						ok := strings.Contains(err.Error(), "shut down") ||
							strings.Contains(err.Error(), "full")
						assert.True(t, ok, "unexpected submit error: %v", err)
					}
				}
			}()
		}
		close(start)
		q.Shutdown(context.Background())
		wg.Wait()
	}
}

func TestImportQueue_SubmitWithCancelledContext(t *testing.T) {
	q := NewImportQueue(&stubRunner{}, slog.New(slog.DiscardHandler))
	defer q.Shutdown(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := q.Submit(ctx, Job{JobID: uuid.New()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestImportQueue_ShutdownIsIdempotent(t *testing.T) {
	q := NewImportQueue(&stubRunner{}, slog.New(slog.DiscardHandler))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background()) // must not panic on double close
}

func TestHandle_WaitHonorsContext(t *testing.T) {
	runner := &stubRunner{block: make(chan struct{})}
	q := NewImportQueue(runner, slog.New(slog.DiscardHandler), WithWorkers(1))

	h, err := q.Submit(context.Background(), Job{JobID: uuid.New()})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = h.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(runner.block)
	q.Shutdown(context.Background())
}
