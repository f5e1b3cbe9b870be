package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/gen/ent"
	"github.com/pipetrak/pipetrak/internal/entity"
)

// ImportJobRepository tracks import invocations.
type ImportJobRepository interface {
	Create(ctx context.Context, projectID uuid.UUID, filename string) (*entity.ImportJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ImportJob, error)
	MarkStarted(ctx context.Context, id uuid.UUID, status constants.ImportJobStatus) error
	SetCounts(ctx context.Context, id uuid.UUID, total, valid, skipped, errored int) error
	MarkCompleted(ctx context.Context, id uuid.UUID, result json.RawMessage) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
}

type importJobRepository struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewImportJobRepository(entc *ent.Client, logger *slog.Logger) ImportJobRepository {
	return &importJobRepository{ent: entc, logger: logger}
}

func (r *importJobRepository) Create(ctx context.Context, projectID uuid.UUID, filename string) (*entity.ImportJob, error) {
	row, err := r.ent.ImportJob.Create().
		SetProjectID(projectID).
		SetFilename(filename).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create import job", "project_id", projectID, "filename", filename, "error", err)
		return nil, err
	}
	return toImportJob(row), nil
}

func (r *importJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ImportJob, error) {
	row, err := r.ent.ImportJob.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toImportJob(row), nil
}

func (r *importJobRepository) MarkStarted(ctx context.Context, id uuid.UUID, status constants.ImportJobStatus) error {
	err := r.ent.ImportJob.UpdateOneID(id).
		SetStatus(string(status)).
		SetStartedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark import job started", "job_id", id, "error", err)
	}
	return err
}

func (r *importJobRepository) SetCounts(ctx context.Context, id uuid.UUID, total, valid, skipped, errored int) error {
	err := r.ent.ImportJob.UpdateOneID(id).
		SetTotalRows(total).
		SetValidRows(valid).
		SetSkippedRows(skipped).
		SetErrorRows(errored).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update import job counts", "job_id", id, "error", err)
	}
	return err
}

func (r *importJobRepository) MarkCompleted(ctx context.Context, id uuid.UUID, result json.RawMessage) error {
	err := r.ent.ImportJob.UpdateOneID(id).
		SetStatus(string(constants.ImportCompleted)).
		SetResult(result).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark import job completed", "job_id", id, "error", err)
	}
	return err
}

func (r *importJobRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	err := r.ent.ImportJob.UpdateOneID(id).
		SetStatus(string(constants.ImportFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark import job failed", "job_id", id, "error", err)
	}
	return err
}

func toImportJob(row *ent.ImportJob) *entity.ImportJob {
	return &entity.ImportJob{
		ID:           row.ID,
		ProjectID:    row.ProjectID,
		Filename:     row.Filename,
		Status:       constants.ImportJobStatus(row.Status),
		TotalRows:    row.TotalRows,
		ValidRows:    row.ValidRows,
		SkippedRows:  row.SkippedRows,
		ErrorRows:    row.ErrorRows,
		Result:       row.Result,
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
		StartedAt:    row.StartedAt,
		FinishedAt:   row.FinishedAt,
	}
}
