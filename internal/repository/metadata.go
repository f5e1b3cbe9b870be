package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pipetrak/pipetrak/gen/ent"
	entarea "github.com/pipetrak/pipetrak/gen/ent/area"
	entsystem "github.com/pipetrak/pipetrak/gen/ent/system"
	enttestpackage "github.com/pipetrak/pipetrak/gen/ent/testpackage"
	"github.com/pipetrak/pipetrak/internal/importer"
)

// MetadataRepository implements importer.MetadataStore over Ent, dispatching
// on the reference type tag.
type MetadataRepository struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewMetadataRepository(entc *ent.Client, logger *slog.Logger) *MetadataRepository {
	return &MetadataRepository{ent: entc, logger: logger}
}

var _ importer.MetadataStore = (*MetadataRepository)(nil)

// LookupByName returns name -> id for the given names that already exist,
// with a single query per call.
func (r *MetadataRepository) LookupByName(ctx context.Context, projectID uuid.UUID, rt importer.ReferenceType, names []string) (map[string]uuid.UUID, error) {
	if len(names) == 0 {
		return map[string]uuid.UUID{}, nil
	}

	out := make(map[string]uuid.UUID, len(names))
	switch rt {
	case importer.RefArea:
		rows, err := r.ent.Area.Query().
			Where(entarea.ProjectID(projectID), entarea.NameIn(names...)).
			All(ctx)
		if err != nil {
			return nil, r.lookupErr(rt, projectID, err)
		}
		for _, row := range rows {
			out[row.Name] = row.ID
		}
	case importer.RefSystem:
		rows, err := r.ent.System.Query().
			Where(entsystem.ProjectID(projectID), entsystem.NameIn(names...)).
			All(ctx)
		if err != nil {
			return nil, r.lookupErr(rt, projectID, err)
		}
		for _, row := range rows {
			out[row.Name] = row.ID
		}
	case importer.RefTestPackage:
		rows, err := r.ent.TestPackage.Query().
			Where(enttestpackage.ProjectID(projectID), enttestpackage.NameIn(names...)).
			All(ctx)
		if err != nil {
			return nil, r.lookupErr(rt, projectID, err)
		}
		for _, row := range rows {
			out[row.Name] = row.ID
		}
	default:
		return nil, fmt.Errorf("unknown reference type %q", rt)
	}
	return out, nil
}

// CreateMissing bulk-inserts the named references. Callers pass only names
// they established as absent; the unique (project_id, name) index catches
// concurrent imports racing on the same name.
func (r *MetadataRepository) CreateMissing(ctx context.Context, projectID uuid.UUID, rt importer.ReferenceType, names []string) (map[string]uuid.UUID, error) {
	if len(names) == 0 {
		return map[string]uuid.UUID{}, nil
	}

	out := make(map[string]uuid.UUID, len(names))
	switch rt {
	case importer.RefArea:
		builders := make([]*ent.AreaCreate, 0, len(names))
		for _, name := range names {
			builders = append(builders, r.ent.Area.Create().SetProjectID(projectID).SetName(name))
		}
		rows, err := r.ent.Area.CreateBulk(builders...).Save(ctx)
		if err != nil {
			return nil, r.createErr(rt, projectID, err)
		}
		for _, row := range rows {
			out[row.Name] = row.ID
		}
	case importer.RefSystem:
		builders := make([]*ent.SystemCreate, 0, len(names))
		for _, name := range names {
			builders = append(builders, r.ent.System.Create().SetProjectID(projectID).SetName(name))
		}
		rows, err := r.ent.System.CreateBulk(builders...).Save(ctx)
		if err != nil {
			return nil, r.createErr(rt, projectID, err)
		}
		for _, row := range rows {
			out[row.Name] = row.ID
		}
	case importer.RefTestPackage:
		builders := make([]*ent.TestPackageCreate, 0, len(names))
		for _, name := range names {
			builders = append(builders, r.ent.TestPackage.Create().SetProjectID(projectID).SetName(name))
		}
		rows, err := r.ent.TestPackage.CreateBulk(builders...).Save(ctx)
		if err != nil {
			return nil, r.createErr(rt, projectID, err)
		}
		for _, row := range rows {
			out[row.Name] = row.ID
		}
	default:
		return nil, fmt.Errorf("unknown reference type %q", rt)
	}
	return out, nil
}

func (r *MetadataRepository) lookupErr(rt importer.ReferenceType, projectID uuid.UUID, err error) error {
	r.logger.Error("failed to look up references", "type", rt, "project_id", projectID, "error", err)
	return err
}

func (r *MetadataRepository) createErr(rt importer.ReferenceType, projectID uuid.UUID, err error) error {
	r.logger.Error("failed to create references", "type", rt, "project_id", projectID, "error", err)
	return err
}
