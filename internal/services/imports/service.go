package imports

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/internal/async"
	"github.com/pipetrak/pipetrak/internal/common"
	"github.com/pipetrak/pipetrak/internal/entity"
	"github.com/pipetrak/pipetrak/internal/importer"
	"github.com/pipetrak/pipetrak/internal/ingest"
	"github.com/pipetrak/pipetrak/internal/repository"
)

// Service orchestrates the import pipeline: parse, map, validate, discover,
// then hand the valid rows to the bulk writer, synchronously or via the
// queue. Mapping and validation problems come back as data; only the write
// stage (and malformed requests) produce errors.
type Service struct {
	projects   repository.ProjectRepository
	jobs       repository.ImportJobRepository
	metadata   importer.MetadataStore
	writer     *importer.BulkWriter
	queue      async.Queue
	maxPayload int
	logger     *slog.Logger
}

// NewService creates a new import service. The queue is attached separately
// because it needs the service as its runner.
func NewService(projects repository.ProjectRepository, jobs repository.ImportJobRepository, metadata importer.MetadataStore, writer *importer.BulkWriter, maxPayload int, logger *slog.Logger) *Service {
	if maxPayload <= 0 {
		maxPayload = ingest.MaxPayloadBytes
	}
	return &Service{
		projects:   projects,
		jobs:       jobs,
		metadata:   metadata,
		writer:     writer,
		maxPayload: maxPayload,
		logger:     logger,
	}
}

// AttachQueue wires the background queue used by Submit.
func (s *Service) AttachQueue(q async.Queue) { s.queue = q }

// Request is a file- or envelope-shaped import payload.
type Request struct {
	ProjectID string
	Filename  string
	Payload   []byte
}

// Preview is the human-approval payload: mapping, validation and discovery
// output, with nothing persisted.
type Preview struct {
	Mapping   importer.MappingResult  `json:"mapping"`
	Summary   *importer.Summary       `json:"validation,omitempty"`
	Discovery *importer.DiscoveryPlan `json:"discovery,omitempty"`
	// Blocked is set when the import cannot proceed regardless of row
	// contents (missing required columns, nothing importable).
	Blocked     bool                         `json:"blocked"`
	BlockReason constants.ValidationCategory `json:"blockReason,omitempty"`
}

// prepared is the internal product of the shared parse+map+validate path.
type prepared struct {
	projectID uuid.UUID
	preview   *Preview
	rows      []importer.ComponentRow
}

// PreviewImport runs the read-only pipeline stages for display and approval.
func (s *Service) PreviewImport(ctx context.Context, req Request) (*Preview, error) {
	p, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	return p.preview, nil
}

// ExecuteImport runs the full pipeline synchronously under a new import job.
func (s *Service) ExecuteImport(ctx context.Context, req Request) (*importer.ImportResult, *entity.ImportJob, error) {
	p, err := s.prepare(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	job, err := s.createJob(ctx, p, req.Filename)
	if err != nil {
		return nil, nil, err
	}

	result, runErr := s.RunImportJob(ctx, async.Job{
		JobID:       job.ID,
		ProjectID:   p.projectID,
		Rows:        p.rows,
		SubmittedAt: time.Now(),
	})
	job, _ = s.jobs.GetByID(ctx, job.ID)
	if runErr != nil {
		return result, job, common.InternalErrorf("import: %v", runErr)
	}
	return result, job, nil
}

// SubmitImport validates synchronously, then queues the write stage and
// returns immediately. The caller may ignore the handle; failures are then
// only visible in the job's stored status and the server logs.
func (s *Service) SubmitImport(ctx context.Context, req Request) (*entity.ImportJob, *async.Handle, error) {
	if s.queue == nil {
		return nil, nil, status.Error(codes.FailedPrecondition, "import queue not configured")
	}
	p, err := s.prepare(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	job, err := s.createJob(ctx, p, req.Filename)
	if err != nil {
		return nil, nil, err
	}

	handle, err := s.queue.Submit(ctx, async.Job{
		JobID:       job.ID,
		ProjectID:   p.projectID,
		Rows:        p.rows,
		SubmittedAt: time.Now(),
	})
	if err != nil {
		_ = s.jobs.MarkFailed(ctx, job.ID, err.Error())
		return nil, nil, status.Errorf(codes.ResourceExhausted, "submit import: %v", err)
	}
	s.logger.Info("import submitted", "job_id", job.ID, "project_id", p.projectID, "rows", len(p.rows))
	return job, handle, nil
}

// GetJob returns a stored import job.
func (s *Service) GetJob(ctx context.Context, jobID string) (*entity.ImportJob, error) {
	id, err := uuid.Parse(strings.TrimSpace(jobID))
	if err != nil {
		return nil, common.InvalidArgumentError("job_id must be a UUID")
	}
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("import job not found")
	}
	return job, nil
}

// RunImportJob executes the write stage for a prepared job. It is the queue's
// runner and is also used for synchronous execution.
func (s *Service) RunImportJob(ctx context.Context, job async.Job) (*importer.ImportResult, error) {
	if err := s.jobs.MarkStarted(ctx, job.JobID, constants.ImportWriting); err != nil {
		return nil, err
	}

	result, err := s.writer.Write(ctx, job.ProjectID, job.Rows)
	if err != nil {
		// counts in result reflect what did commit; a retry resumes from there
		_ = s.jobs.MarkFailed(ctx, job.JobID, err.Error())
		return result, err
	}

	payload, merr := json.Marshal(result)
	if merr != nil {
		payload = nil
	}
	if err := s.jobs.MarkCompleted(ctx, job.JobID, payload); err != nil {
		return result, err
	}
	return result, nil
}

// prepare runs the shared synchronous stages and enforces the blocking
// rules: oversized payloads, missing required columns and error rows all
// stop an import before anything is written.
func (s *Service) prepare(ctx context.Context, req Request) (*prepared, error) {
	projectID, err := uuid.Parse(strings.TrimSpace(req.ProjectID))
	if err != nil {
		s.logger.Error("invalid project_id format for import", "project_id", req.ProjectID, "error", err)
		return nil, common.InvalidArgumentError("project_id must be a UUID")
	}
	if exists, _ := s.projects.Exists(ctx, projectID); !exists {
		s.logger.Error("project not found for import", "project_id", projectID)
		return nil, common.InvalidArgumentError("project not found")
	}
	if len(req.Payload) == 0 {
		return nil, common.InvalidArgumentError("payload is required")
	}
	if len(req.Payload) > s.maxPayload {
		s.logger.Error("import payload too large", "project_id", projectID, "bytes", len(req.Payload), "limit", s.maxPayload)
		return nil, common.InvalidArgumentErrorf("payload exceeds size limit (%d bytes, limit %d)", len(req.Payload), s.maxPayload)
	}

	doc, err := s.parse(req.Filename, req.Payload)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("parse payload: %v", err)
	}

	mapping := importer.MapColumns(doc.Headers)
	if !mapping.HasAllRequiredFields {
		// hard gate: do not proceed to row validation
		return &prepared{
			projectID: projectID,
			preview: &Preview{
				Mapping:     mapping,
				Blocked:     true,
				BlockReason: constants.CategoryMissingRequiredColumns,
			},
		}, nil
	}

	mapped := importer.ApplyMapping(doc.Rows, mapping)
	summary := importer.ValidateRows(mapped)
	rows := summary.ValidRows()

	discovery, err := importer.DiscoverMetadata(ctx, s.metadata, projectID, rows)
	if err != nil {
		return nil, common.InternalErrorf("metadata discovery: %v", err)
	}

	preview := &Preview{
		Mapping:   mapping,
		Summary:   &summary,
		Discovery: discovery,
	}
	switch {
	case !summary.CanImport:
		preview.Blocked = true
	case summary.ValidCount == 0:
		// an import where every row was skipped has nothing to write;
		// treated as a blocked import rather than a vacuous success
		preview.Blocked = true
	}
	return &prepared{projectID: projectID, preview: preview, rows: rows}, nil
}

func (s *Service) parse(filename string, payload []byte) (*ingest.Document, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".json") {
		return ingest.ParseEnvelope(payload)
	}
	return ingest.Parse(filename, payload)
}

// createJob records the invocation, refusing blocked imports.
func (s *Service) createJob(ctx context.Context, p *prepared, filename string) (*entity.ImportJob, error) {
	if p.preview.Blocked {
		if p.preview.BlockReason == constants.CategoryMissingRequiredColumns {
			return nil, common.InvalidArgumentErrorf("missing required columns: %v", p.preview.Mapping.MissingRequired)
		}
		if p.preview.Summary != nil && p.preview.Summary.ErrorCount > 0 {
			return nil, common.InvalidArgumentErrorf("%d rows have errors; fix the source file and retry", p.preview.Summary.ErrorCount)
		}
		return nil, common.InvalidArgumentError("no importable rows")
	}
	if filename == "" {
		filename = "import"
	}
	job, err := s.jobs.Create(ctx, p.projectID, filename)
	if err != nil {
		return nil, common.InternalErrorf("create import job: %v", err)
	}
	sum := p.preview.Summary
	if err := s.jobs.SetCounts(ctx, job.ID, sum.TotalRows, sum.ValidCount, sum.SkippedCount, sum.ErrorCount); err != nil {
		return nil, common.InternalErrorf("update import job: %v", err)
	}
	return job, nil
}
