package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/gen/ent"
	entcomponent "github.com/pipetrak/pipetrak/gen/ent/component"
	"github.com/pipetrak/pipetrak/internal/entity"
	"github.com/pipetrak/pipetrak/internal/importer"
)

// ComponentRepository implements importer.ComponentStore over Ent.
type ComponentRepository struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewComponentRepository(entc *ent.Client, logger *slog.Logger) *ComponentRepository {
	return &ComponentRepository{ent: entc, logger: logger}
}

var _ importer.ComponentStore = (*ComponentRepository)(nil)

// ExistingKeys returns the subset of identity keys already present for the
// type, in a single query.
func (r *ComponentRepository) ExistingKeys(ctx context.Context, projectID uuid.UUID, ct constants.ComponentType, keys []string) (map[string]struct{}, error) {
	if len(keys) == 0 {
		return map[string]struct{}{}, nil
	}
	rows, err := r.ent.Component.Query().
		Where(
			entcomponent.ProjectID(projectID),
			entcomponent.Type(string(ct)),
			entcomponent.IdentityKeyIn(keys...),
		).
		Select(entcomponent.FieldIdentityKey).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to look up component keys", "project_id", projectID, "type", ct, "error", err)
		return nil, err
	}
	out := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		out[row.IdentityKey] = struct{}{}
	}
	return out, nil
}

// CreateBatch bulk-inserts components. Callers pass only keys they
// established as absent; the (project_id, type, identity_key) unique index
// catches concurrent imports racing on the same key.
func (r *ComponentRepository) CreateBatch(ctx context.Context, comps []entity.Component) ([]entity.Component, error) {
	if len(comps) == 0 {
		return nil, nil
	}
	builders := make([]*ent.ComponentCreate, 0, len(comps))
	for _, c := range comps {
		milestones, err := json.Marshal(c.Milestones)
		if err != nil {
			return nil, fmt.Errorf("marshal milestones for %s: %w", c.IdentityKey, err)
		}
		b := r.ent.Component.Create().
			SetProjectID(c.ProjectID).
			SetType(string(c.Type)).
			SetIdentityKey(c.IdentityKey).
			SetNillableDrawingID(c.DrawingID).
			SetNillableAreaID(c.AreaID).
			SetNillableSystemID(c.SystemID).
			SetNillableTestPackageID(c.TestPackageID).
			SetCommodityCode(c.CommodityCode).
			SetSpec(c.Spec).
			SetDescription(c.Description).
			SetSize(c.Size).
			SetQuantity(c.Quantity).
			SetSeq(c.Seq).
			SetCurrentMilestones(milestones)
		if c.Comments != nil {
			b = b.SetComments(*c.Comments)
		}
		if len(c.Attributes) > 0 {
			b = b.SetAttributes(c.Attributes)
		}
		builders = append(builders, b)
	}
	rows, err := r.ent.Component.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create components", "count", len(comps), "error", err)
		return nil, err
	}

	created := make([]entity.Component, 0, len(rows))
	for _, row := range rows {
		created = append(created, toComponent(row))
	}
	return created, nil
}

// CountByType returns component counts per type for a project.
func (r *ComponentRepository) CountByType(ctx context.Context, projectID uuid.UUID) (map[string]int, error) {
	var buckets []struct {
		Type  string `json:"type"`
		Count int    `json:"count"`
	}
	err := r.ent.Component.Query().
		Where(entcomponent.ProjectID(projectID)).
		GroupBy(entcomponent.FieldType).
		Aggregate(ent.Count()).
		Scan(ctx, &buckets)
	if err != nil {
		r.logger.Error("failed to count components", "project_id", projectID, "error", err)
		return nil, err
	}
	out := make(map[string]int, len(buckets))
	for _, b := range buckets {
		out[b.Type] = b.Count
	}
	return out, nil
}

func toComponent(row *ent.Component) entity.Component {
	c := entity.Component{
		ID:            row.ID,
		ProjectID:     row.ProjectID,
		Type:          constants.ComponentType(row.Type),
		IdentityKey:   row.IdentityKey,
		DrawingID:     row.DrawingID,
		AreaID:        row.AreaID,
		SystemID:      row.SystemID,
		TestPackageID: row.TestPackageID,
		CommodityCode: row.CommodityCode,
		Spec:          row.Spec,
		Description:   row.Description,
		Size:          row.Size,
		Quantity:      row.Quantity,
		Seq:           row.Seq,
		Comments:      row.Comments,
		Attributes:    row.Attributes,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if len(row.CurrentMilestones) > 0 {
		// stored state was produced by this pipeline; a decode failure is a bug
		_ = json.Unmarshal(row.CurrentMilestones, &c.Milestones)
	}
	return c
}
