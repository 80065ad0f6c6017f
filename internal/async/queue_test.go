package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanfolio/cv-scanner/gen/ent"
	processor "github.com/scanfolio/cv-scanner/internal/pipeline"
)

// unavailableFiles fails every lookup, so a worker picking up a job
// returns immediately without touching the rest of the pipeline.
type unavailableFiles struct{}

func (unavailableFiles) GetByID(context.Context, uuid.UUID) (*ent.ScanFile, error) {
	return nil, errors.New("file not found")
}

func (unavailableFiles) GetByProfileAndHash(context.Context, uuid.UUID, []byte) (*ent.ScanFile, error) {
	return nil, errors.New("file not found")
}

func (unavailableFiles) Create(context.Context, uuid.UUID, string, string, string, int, []byte, time.Time) (*ent.ScanFile, error) {
	return nil, errors.New("not implemented")
}

func (unavailableFiles) UpsertByHash(context.Context, uuid.UUID, string, string, string, int, []byte, time.Time) (*ent.ScanFile, bool, error) {
	return nil, false, errors.New("not implemented")
}

func newTestQueue(t *testing.T, opts ...Option) *ProcessorQueue {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	proc := processor.NewProcessor(logger,
		processor.NewOCRStage(unavailableFiles{}, nil, nil, logger), nil)
	return NewProcessorQueue(proc, logger, opts...)
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestEnqueueAfterShutdownReturnsError(t *testing.T) {
	q := newTestQueue(t)
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), Job{FileID: uuid.New()})
	require.ErrorIs(t, err, ErrQueueClosed)
}

func TestShutdownIsIdempotent(t *testing.T) {
	q := newTestQueue(t)
	q.Shutdown(context.Background())

	assert.NotPanics(t, func() {
		q.Shutdown(context.Background())
	})
}

func TestEnqueueRacingShutdownDoesNotPanic(t *testing.T) {
	q := newTestQueue(t, WithWorkers(2), WithQueueSize(4))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			for {
				if err := q.Enqueue(ctx, Job{FileID: uuid.New()}); err != nil {
					assert.True(t,
						errors.Is(err, ErrQueueClosed) || errors.Is(err, context.DeadlineExceeded),
						"unexpected enqueue error: %v", err)
					return
				}
			}
		}()
	}

	time.Sleep(10 * time.Millisecond)
	q.Shutdown(context.Background())
	wg.Wait()
}
