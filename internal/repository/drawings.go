package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pipetrak/pipetrak/gen/ent"
	entdrawing "github.com/pipetrak/pipetrak/gen/ent/drawing"
	"github.com/pipetrak/pipetrak/internal/entity"
	"github.com/pipetrak/pipetrak/internal/importer"
)

// DrawingRepository implements importer.DrawingStore over Ent.
type DrawingRepository struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDrawingRepository(entc *ent.Client, logger *slog.Logger) *DrawingRepository {
	return &DrawingRepository{ent: entc, logger: logger}
}

var _ importer.DrawingStore = (*DrawingRepository)(nil)

// LookupByNorm returns norm_number -> id for drawings that already exist.
func (r *DrawingRepository) LookupByNorm(ctx context.Context, projectID uuid.UUID, norms []string) (map[string]uuid.UUID, error) {
	if len(norms) == 0 {
		return map[string]uuid.UUID{}, nil
	}
	rows, err := r.ent.Drawing.Query().
		Where(entdrawing.ProjectID(projectID), entdrawing.NormNumberIn(norms...)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to look up drawings", "project_id", projectID, "error", err)
		return nil, err
	}
	out := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		out[row.NormNumber] = row.ID
	}
	return out, nil
}

// CreateBatch bulk-inserts drawings and returns norm_number -> id for the
// created rows. The (project_id, norm_number) unique index backstops races.
func (r *DrawingRepository) CreateBatch(ctx context.Context, drawings []entity.Drawing) (map[string]uuid.UUID, error) {
	if len(drawings) == 0 {
		return map[string]uuid.UUID{}, nil
	}
	builders := make([]*ent.DrawingCreate, 0, len(drawings))
	for _, d := range drawings {
		b := r.ent.Drawing.Create().
			SetProjectID(d.ProjectID).
			SetNumber(d.Number).
			SetNormNumber(d.NormNumber).
			SetNillableAreaID(d.AreaID).
			SetNillableSystemID(d.SystemID)
		if d.Title != nil {
			b = b.SetTitle(*d.Title)
		}
		if d.Revision != nil {
			b = b.SetRevision(*d.Revision)
		}
		builders = append(builders, b)
	}
	rows, err := r.ent.Drawing.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create drawings", "count", len(drawings), "error", err)
		return nil, err
	}
	out := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		out[row.NormNumber] = row.ID
	}
	return out, nil
}
