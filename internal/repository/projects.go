package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pipetrak/pipetrak/gen/ent"
	entproject "github.com/pipetrak/pipetrak/gen/ent/project"
)

type ProjectRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	GetOrCreateByName(ctx context.Context, name string) (*ent.Project, error)
}

type projectRepository struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewProjectRepository(entc *ent.Client, logger *slog.Logger) ProjectRepository {
	return &projectRepository{ent: entc, logger: logger}
}

func (r *projectRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.ent.Project.Query().Where(entproject.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check project existence", "project_id", id, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *projectRepository) GetOrCreateByName(ctx context.Context, name string) (*ent.Project, error) {
	row, err := r.ent.Project.Query().Where(entproject.Name(name)).First(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up project", "name", name, "error", err)
		return nil, err
	}
	row, err = r.ent.Project.Create().SetName(name).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create project", "name", name, "error", err)
		return nil, err
	}
	return row, nil
}
