package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pipetrak/pipetrak/gen/ent"
	entwelder "github.com/pipetrak/pipetrak/gen/ent/welder"
	"github.com/pipetrak/pipetrak/internal/entity"
	"github.com/pipetrak/pipetrak/internal/importer"
)

// WelderRepository implements importer.WelderStore over Ent.
type WelderRepository struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewWelderRepository(entc *ent.Client, logger *slog.Logger) *WelderRepository {
	return &WelderRepository{ent: entc, logger: logger}
}

var _ importer.WelderStore = (*WelderRepository)(nil)

// ListActive returns the project's assignable welders.
func (r *WelderRepository) ListActive(ctx context.Context, projectID uuid.UUID) ([]entity.Welder, error) {
	rows, err := r.ent.Welder.Query().
		Where(entwelder.ProjectID(projectID), entwelder.Active(true)).
		Order(entwelder.ByStencil()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list welders", "project_id", projectID, "error", err)
		return nil, err
	}
	out := make([]entity.Welder, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.Welder{
			ID:      row.ID,
			Name:    row.Name,
			Stencil: row.Stencil,
			Active:  row.Active,
		})
	}
	return out, nil
}

// EnsureStencils adds welders for stencils not yet on the roster, named
// after the stencil until someone records a real name. Returns the number
// created.
func (r *WelderRepository) EnsureStencils(ctx context.Context, projectID uuid.UUID, stencils []string) (int, error) {
	existing, err := r.ent.Welder.Query().
		Where(entwelder.ProjectID(projectID), entwelder.StencilIn(stencils...)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to look up welder roster", "project_id", projectID, "error", err)
		return 0, err
	}
	known := make(map[string]struct{}, len(existing))
	for _, row := range existing {
		known[row.Stencil] = struct{}{}
	}

	created := 0
	for _, stencil := range stencils {
		if _, ok := known[stencil]; ok {
			continue
		}
		if _, err := r.GetOrCreate(ctx, projectID, stencil, stencil); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// GetOrCreate returns the welder with the given stencil, creating it when
// absent.
func (r *WelderRepository) GetOrCreate(ctx context.Context, projectID uuid.UUID, name, stencil string) (*entity.Welder, error) {
	row, err := r.ent.Welder.Query().
		Where(entwelder.ProjectID(projectID), entwelder.Stencil(stencil)).
		Only(ctx)
	if err == nil {
		return &entity.Welder{ID: row.ID, Name: row.Name, Stencil: row.Stencil, Active: row.Active}, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up welder", "project_id", projectID, "stencil", stencil, "error", err)
		return nil, err
	}
	row, err = r.ent.Welder.Create().
		SetProjectID(projectID).
		SetName(name).
		SetStencil(stencil).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create welder", "project_id", projectID, "stencil", stencil, "error", err)
		return nil, err
	}
	return &entity.Welder{ID: row.ID, Name: row.Name, Stencil: row.Stencil, Active: row.Active}, nil
}
