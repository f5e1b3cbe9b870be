package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pipetrak/pipetrak/gen/ent"
	entfieldweld "github.com/pipetrak/pipetrak/gen/ent/fieldweld"
	"github.com/pipetrak/pipetrak/internal/entity"
	"github.com/pipetrak/pipetrak/internal/importer"
)

// FieldWeldRepository implements importer.WeldStore over Ent.
type FieldWeldRepository struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFieldWeldRepository(entc *ent.Client, logger *slog.Logger) *FieldWeldRepository {
	return &FieldWeldRepository{ent: entc, logger: logger}
}

var _ importer.WeldStore = (*FieldWeldRepository)(nil)

// ExistingWelds returns "drawingID|weldNumber" keys already present on the
// given drawings, in a single query.
func (r *FieldWeldRepository) ExistingWelds(ctx context.Context, drawingIDs []uuid.UUID) (map[string]struct{}, error) {
	if len(drawingIDs) == 0 {
		return map[string]struct{}{}, nil
	}
	rows, err := r.ent.FieldWeld.Query().
		Where(entfieldweld.DrawingIDIn(drawingIDs...)).
		Select(entfieldweld.FieldDrawingID, entfieldweld.FieldWeldNumber).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to look up field welds", "drawings", len(drawingIDs), "error", err)
		return nil, err
	}
	out := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		out[row.DrawingID.String()+"|"+row.WeldNumber] = struct{}{}
	}
	return out, nil
}

// CreateBatch bulk-inserts field welds. The (drawing_id, weld_number) unique
// index catches concurrent imports racing on the same weld.
func (r *FieldWeldRepository) CreateBatch(ctx context.Context, welds []entity.FieldWeld) ([]entity.FieldWeld, error) {
	if len(welds) == 0 {
		return nil, nil
	}
	builders := make([]*ent.FieldWeldCreate, 0, len(welds))
	for _, w := range welds {
		milestones, err := json.Marshal(w.Milestones)
		if err != nil {
			return nil, fmt.Errorf("marshal milestones for weld %s: %w", w.WeldNumber, err)
		}
		b := r.ent.FieldWeld.Create().
			SetProjectID(w.ProjectID).
			SetDrawingID(w.DrawingID).
			SetWeldNumber(w.WeldNumber).
			SetCurrentMilestones(milestones)
		if w.WeldType != nil {
			b = b.SetWeldType(*w.WeldType)
		}
		if w.Material != nil {
			b = b.SetMaterial(*w.Material)
		}
		builders = append(builders, b)
	}
	rows, err := r.ent.FieldWeld.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create field welds", "count", len(welds), "error", err)
		return nil, err
	}

	created := make([]entity.FieldWeld, 0, len(rows))
	for _, row := range rows {
		created = append(created, toFieldWeld(row))
	}
	return created, nil
}

// AssignWelders sets welder_id on the given welds. Assignments are few per
// import, so per-row updates are acceptable here.
func (r *FieldWeldRepository) AssignWelders(ctx context.Context, assignments map[uuid.UUID]uuid.UUID) error {
	for weldID, welderID := range assignments {
		if err := r.ent.FieldWeld.UpdateOneID(weldID).SetWelderID(welderID).Exec(ctx); err != nil {
			r.logger.Error("failed to assign welder", "weld_id", weldID, "welder_id", welderID, "error", err)
			return err
		}
	}
	return nil
}

func toFieldWeld(row *ent.FieldWeld) entity.FieldWeld {
	w := entity.FieldWeld{
		ID:         row.ID,
		ProjectID:  row.ProjectID,
		DrawingID:  row.DrawingID,
		WeldNumber: row.WeldNumber,
		WeldType:   row.WeldType,
		Material:   row.Material,
		WelderID:   row.WelderID,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if len(row.CurrentMilestones) > 0 {
		_ = json.Unmarshal(row.CurrentMilestones, &w.Milestones)
	}
	return w
}
