package importer

import (
	"context"

	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/internal/entity"
)

// ReferenceType tags the three reference entity kinds discovered implicitly
// from row data.
type ReferenceType string

const (
	RefArea        ReferenceType = "area"
	RefSystem      ReferenceType = "system"
	RefTestPackage ReferenceType = "test_package"
)

// ReferenceTypes in write order.
var ReferenceTypes = []ReferenceType{RefArea, RefSystem, RefTestPackage}

// The store interfaces below are the pipeline's only view of persistence:
// batch lookups keyed by natural key, and bulk insert-or-skip creates backed
// by a uniqueness constraint. The repository package implements them over Ent.

// MetadataStore reads and writes the reference entities.
type MetadataStore interface {
	// LookupByName returns name -> id for the given names that already exist.
	LookupByName(ctx context.Context, projectID uuid.UUID, rt ReferenceType, names []string) (map[string]uuid.UUID, error)
	// CreateMissing inserts the named references that do not exist yet and
	// returns name -> id for the ones it created.
	CreateMissing(ctx context.Context, projectID uuid.UUID, rt ReferenceType, names []string) (map[string]uuid.UUID, error)
}

// DrawingStore reads and writes drawings keyed by normalized number.
type DrawingStore interface {
	LookupByNorm(ctx context.Context, projectID uuid.UUID, norms []string) (map[string]uuid.UUID, error)
	// CreateBatch inserts drawings that do not exist yet and returns
	// norm_number -> id for the ones it created.
	CreateBatch(ctx context.Context, drawings []entity.Drawing) (map[string]uuid.UUID, error)
}

// ComponentStore reads and writes components keyed by (type, identity_key).
type ComponentStore interface {
	// ExistingKeys returns the subset of the given identity keys already
	// present for the type.
	ExistingKeys(ctx context.Context, projectID uuid.UUID, ct constants.ComponentType, keys []string) (map[string]struct{}, error)
	// CreateBatch bulk-inserts components and returns the created rows.
	CreateBatch(ctx context.Context, comps []entity.Component) ([]entity.Component, error)
}

// WeldStore reads and writes field welds keyed by (drawing, weld_number).
type WeldStore interface {
	// ExistingWelds returns "drawingID|weldNumber" keys already present on
	// the given drawings.
	ExistingWelds(ctx context.Context, drawingIDs []uuid.UUID) (map[string]struct{}, error)
	CreateBatch(ctx context.Context, welds []entity.FieldWeld) ([]entity.FieldWeld, error)
	AssignWelders(ctx context.Context, assignments map[uuid.UUID]uuid.UUID) error
}

// WelderStore lists and maintains the assignable welders of a project.
type WelderStore interface {
	ListActive(ctx context.Context, projectID uuid.UUID) ([]entity.Welder, error)
	// EnsureStencils adds welders for stencils not yet on the roster,
	// named after the stencil, and returns how many it created.
	EnsureStencils(ctx context.Context, projectID uuid.UUID, stencils []string) (int, error)
}
