package async

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pipetrak/pipetrak/internal/importer"
)

// Job is one queued write-stage invocation. Rows are already mapped and
// validated; only the bulk write remains.
type Job struct {
	JobID       uuid.UUID
	ProjectID   uuid.UUID
	Rows        []importer.ComponentRow
	SubmittedAt time.Time
	TraceID     string
}

// Handle is returned from Submit. A caller that ignores it gets
// fire-and-forget semantics: failures are then only observable through the
// import job's stored status and server logs. The idempotency guard makes a
// later retry of the same input safe.
type Handle struct {
	JobID uuid.UUID

	done   chan struct{}
	result *importer.ImportResult
	err    error
}

func newHandle(jobID uuid.UUID) *Handle {
	return &Handle{JobID: jobID, done: make(chan struct{})}
}

func (h *Handle) complete(result *importer.ImportResult, err error) {
	h.result = result
	h.err = err
	close(h.done)
}

// Done reports completion without blocking.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the job finishes or ctx is cancelled.
func (h *Handle) Wait(ctx context.Context) (*importer.ImportResult, error) {
	select {
	case <-h.done:
		return h.result, h.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Runner executes a queued job's write stage.
type Runner interface {
	RunImportJob(ctx context.Context, job Job) (*importer.ImportResult, error)
}

// Queue accepts write-stage jobs for background execution.
type Queue interface {
	Submit(ctx context.Context, job Job) (*Handle, error)
	Shutdown(ctx context.Context)
}
