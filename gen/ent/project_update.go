// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/area"
	"github.com/pipetrak/pipetrak/gen/ent/component"
	"github.com/pipetrak/pipetrak/gen/ent/drawing"
	"github.com/pipetrak/pipetrak/gen/ent/fieldweld"
	"github.com/pipetrak/pipetrak/gen/ent/importjob"
	"github.com/pipetrak/pipetrak/gen/ent/predicate"
	"github.com/pipetrak/pipetrak/gen/ent/project"
	"github.com/pipetrak/pipetrak/gen/ent/system"
	"github.com/pipetrak/pipetrak/gen/ent/testpackage"
	"github.com/pipetrak/pipetrak/gen/ent/welder"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdate) SetName(v string) *ProjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetJobNumber sets the "job_number" field.
func (_u *ProjectUpdate) SetJobNumber(v string) *ProjectUpdate {
	_u.mutation.SetJobNumber(v)
	return _u
}

// SetNillableJobNumber sets the "job_number" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableJobNumber(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetJobNumber(*v)
	}
	return _u
}

// ClearJobNumber clears the value of the "job_number" field.
func (_u *ProjectUpdate) ClearJobNumber() *ProjectUpdate {
	_u.mutation.ClearJobNumber()
	return _u
}

// SetClient sets the "client" field.
func (_u *ProjectUpdate) SetClient(v string) *ProjectUpdate {
	_u.mutation.SetClient(v)
	return _u
}

// SetNillableClient sets the "client" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableClient(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetClient(*v)
	}
	return _u
}

// ClearClient clears the value of the "client" field.
func (_u *ProjectUpdate) ClearClient() *ProjectUpdate {
	_u.mutation.ClearClient()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProjectUpdate) SetCreatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableCreatedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAreaIDs adds the "areas" edge to the Area entity by IDs.
func (_u *ProjectUpdate) AddAreaIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.AddAreaIDs(ids...)
	return _u
}

// AddAreas adds the "areas" edges to the Area entity.
func (_u *ProjectUpdate) AddAreas(v ...*Area) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAreaIDs(ids...)
}

// AddSystemIDs adds the "systems" edge to the System entity by IDs.
func (_u *ProjectUpdate) AddSystemIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.AddSystemIDs(ids...)
	return _u
}

// AddSystems adds the "systems" edges to the System entity.
func (_u *ProjectUpdate) AddSystems(v ...*System) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSystemIDs(ids...)
}

// AddTestPackageIDs adds the "test_packages" edge to the TestPackage entity by IDs.
func (_u *ProjectUpdate) AddTestPackageIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.AddTestPackageIDs(ids...)
	return _u
}

// AddTestPackages adds the "test_packages" edges to the TestPackage entity.
func (_u *ProjectUpdate) AddTestPackages(v ...*TestPackage) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTestPackageIDs(ids...)
}

// AddDrawingIDs adds the "drawings" edge to the Drawing entity by IDs.
func (_u *ProjectUpdate) AddDrawingIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.AddDrawingIDs(ids...)
	return _u
}

// AddDrawings adds the "drawings" edges to the Drawing entity.
func (_u *ProjectUpdate) AddDrawings(v ...*Drawing) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDrawingIDs(ids...)
}

// AddComponentIDs adds the "components" edge to the Component entity by IDs.
func (_u *ProjectUpdate) AddComponentIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.AddComponentIDs(ids...)
	return _u
}

// AddComponents adds the "components" edges to the Component entity.
func (_u *ProjectUpdate) AddComponents(v ...*Component) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddComponentIDs(ids...)
}

// AddFieldWeldIDs adds the "field_welds" edge to the FieldWeld entity by IDs.
func (_u *ProjectUpdate) AddFieldWeldIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.AddFieldWeldIDs(ids...)
	return _u
}

// AddFieldWelds adds the "field_welds" edges to the FieldWeld entity.
func (_u *ProjectUpdate) AddFieldWelds(v ...*FieldWeld) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldWeldIDs(ids...)
}

// AddWelderIDs adds the "welders" edge to the Welder entity by IDs.
func (_u *ProjectUpdate) AddWelderIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.AddWelderIDs(ids...)
	return _u
}

// AddWelders adds the "welders" edges to the Welder entity.
func (_u *ProjectUpdate) AddWelders(v ...*Welder) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWelderIDs(ids...)
}

// AddImportJobIDs adds the "import_jobs" edge to the ImportJob entity by IDs.
func (_u *ProjectUpdate) AddImportJobIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.AddImportJobIDs(ids...)
	return _u
}

// AddImportJobs adds the "import_jobs" edges to the ImportJob entity.
func (_u *ProjectUpdate) AddImportJobs(v ...*ImportJob) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImportJobIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearAreas clears all "areas" edges to the Area entity.
func (_u *ProjectUpdate) ClearAreas() *ProjectUpdate {
	_u.mutation.ClearAreas()
	return _u
}

// RemoveAreaIDs removes the "areas" edge to Area entities by IDs.
func (_u *ProjectUpdate) RemoveAreaIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.RemoveAreaIDs(ids...)
	return _u
}

// RemoveAreas removes "areas" edges to Area entities.
func (_u *ProjectUpdate) RemoveAreas(v ...*Area) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAreaIDs(ids...)
}

// ClearSystems clears all "systems" edges to the System entity.
func (_u *ProjectUpdate) ClearSystems() *ProjectUpdate {
	_u.mutation.ClearSystems()
	return _u
}

// RemoveSystemIDs removes the "systems" edge to System entities by IDs.
func (_u *ProjectUpdate) RemoveSystemIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.RemoveSystemIDs(ids...)
	return _u
}

// RemoveSystems removes "systems" edges to System entities.
func (_u *ProjectUpdate) RemoveSystems(v ...*System) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSystemIDs(ids...)
}

// ClearTestPackages clears all "test_packages" edges to the TestPackage entity.
func (_u *ProjectUpdate) ClearTestPackages() *ProjectUpdate {
	_u.mutation.ClearTestPackages()
	return _u
}

// RemoveTestPackageIDs removes the "test_packages" edge to TestPackage entities by IDs.
func (_u *ProjectUpdate) RemoveTestPackageIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.RemoveTestPackageIDs(ids...)
	return _u
}

// RemoveTestPackages removes "test_packages" edges to TestPackage entities.
func (_u *ProjectUpdate) RemoveTestPackages(v ...*TestPackage) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTestPackageIDs(ids...)
}

// ClearDrawings clears all "drawings" edges to the Drawing entity.
func (_u *ProjectUpdate) ClearDrawings() *ProjectUpdate {
	_u.mutation.ClearDrawings()
	return _u
}

// RemoveDrawingIDs removes the "drawings" edge to Drawing entities by IDs.
func (_u *ProjectUpdate) RemoveDrawingIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.RemoveDrawingIDs(ids...)
	return _u
}

// RemoveDrawings removes "drawings" edges to Drawing entities.
func (_u *ProjectUpdate) RemoveDrawings(v ...*Drawing) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDrawingIDs(ids...)
}

// ClearComponents clears all "components" edges to the Component entity.
func (_u *ProjectUpdate) ClearComponents() *ProjectUpdate {
	_u.mutation.ClearComponents()
	return _u
}

// RemoveComponentIDs removes the "components" edge to Component entities by IDs.
func (_u *ProjectUpdate) RemoveComponentIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.RemoveComponentIDs(ids...)
	return _u
}

// RemoveComponents removes "components" edges to Component entities.
func (_u *ProjectUpdate) RemoveComponents(v ...*Component) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveComponentIDs(ids...)
}

// ClearFieldWelds clears all "field_welds" edges to the FieldWeld entity.
func (_u *ProjectUpdate) ClearFieldWelds() *ProjectUpdate {
	_u.mutation.ClearFieldWelds()
	return _u
}

// RemoveFieldWeldIDs removes the "field_welds" edge to FieldWeld entities by IDs.
func (_u *ProjectUpdate) RemoveFieldWeldIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.RemoveFieldWeldIDs(ids...)
	return _u
}

// RemoveFieldWelds removes "field_welds" edges to FieldWeld entities.
func (_u *ProjectUpdate) RemoveFieldWelds(v ...*FieldWeld) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldWeldIDs(ids...)
}

// ClearWelders clears all "welders" edges to the Welder entity.
func (_u *ProjectUpdate) ClearWelders() *ProjectUpdate {
	_u.mutation.ClearWelders()
	return _u
}

// RemoveWelderIDs removes the "welders" edge to Welder entities by IDs.
func (_u *ProjectUpdate) RemoveWelderIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.RemoveWelderIDs(ids...)
	return _u
}

// RemoveWelders removes "welders" edges to Welder entities.
func (_u *ProjectUpdate) RemoveWelders(v ...*Welder) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWelderIDs(ids...)
}

// ClearImportJobs clears all "import_jobs" edges to the ImportJob entity.
func (_u *ProjectUpdate) ClearImportJobs() *ProjectUpdate {
	_u.mutation.ClearImportJobs()
	return _u
}

// RemoveImportJobIDs removes the "import_jobs" edge to ImportJob entities by IDs.
func (_u *ProjectUpdate) RemoveImportJobIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.RemoveImportJobIDs(ids...)
	return _u
}

// RemoveImportJobs removes "import_jobs" edges to ImportJob entities.
func (_u *ProjectUpdate) RemoveImportJobs(v ...*ImportJob) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImportJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := project.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Project.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobNumber(); ok {
		_spec.SetField(project.FieldJobNumber, field.TypeString, value)
	}
	if _u.mutation.JobNumberCleared() {
		_spec.ClearField(project.FieldJobNumber, field.TypeString)
	}
	if value, ok := _u.mutation.GetClient(); ok {
		_spec.SetField(project.FieldClient, field.TypeString, value)
	}
	if _u.mutation.ClientCleared() {
		_spec.ClearField(project.FieldClient, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(project.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AreasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AreasTable,
			Columns: []string{project.AreasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAreasIDs(); len(nodes) > 0 && !_u.mutation.AreasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AreasTable,
			Columns: []string{project.AreasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AreasIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AreasTable,
			Columns: []string{project.AreasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SystemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SystemsTable,
			Columns: []string{project.SystemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSystemsIDs(); len(nodes) > 0 && !_u.mutation.SystemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SystemsTable,
			Columns: []string{project.SystemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SystemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SystemsTable,
			Columns: []string{project.SystemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TestPackagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TestPackagesTable,
			Columns: []string{project.TestPackagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testpackage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTestPackagesIDs(); len(nodes) > 0 && !_u.mutation.TestPackagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TestPackagesTable,
			Columns: []string{project.TestPackagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testpackage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestPackagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TestPackagesTable,
			Columns: []string{project.TestPackagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testpackage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DrawingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DrawingsTable,
			Columns: []string{project.DrawingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDrawingsIDs(); len(nodes) > 0 && !_u.mutation.DrawingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DrawingsTable,
			Columns: []string{project.DrawingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DrawingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DrawingsTable,
			Columns: []string{project.DrawingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ComponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ComponentsTable,
			Columns: []string{project.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedComponentsIDs(); len(nodes) > 0 && !_u.mutation.ComponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ComponentsTable,
			Columns: []string{project.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ComponentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ComponentsTable,
			Columns: []string{project.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldWeldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.FieldWeldsTable,
			Columns: []string{project.FieldWeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldWeldsIDs(); len(nodes) > 0 && !_u.mutation.FieldWeldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.FieldWeldsTable,
			Columns: []string{project.FieldWeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldWeldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.FieldWeldsTable,
			Columns: []string{project.FieldWeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WeldersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.WeldersTable,
			Columns: []string{project.WeldersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(welder.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWeldersIDs(); len(nodes) > 0 && !_u.mutation.WeldersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.WeldersTable,
			Columns: []string{project.WeldersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(welder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WeldersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.WeldersTable,
			Columns: []string{project.WeldersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(welder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImportJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ImportJobsTable,
			Columns: []string{project.ImportJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImportJobsIDs(); len(nodes) > 0 && !_u.mutation.ImportJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ImportJobsTable,
			Columns: []string{project.ImportJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImportJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ImportJobsTable,
			Columns: []string{project.ImportJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetName sets the "name" field.
func (_u *ProjectUpdateOne) SetName(v string) *ProjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetJobNumber sets the "job_number" field.
func (_u *ProjectUpdateOne) SetJobNumber(v string) *ProjectUpdateOne {
	_u.mutation.SetJobNumber(v)
	return _u
}

// SetNillableJobNumber sets the "job_number" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableJobNumber(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetJobNumber(*v)
	}
	return _u
}

// ClearJobNumber clears the value of the "job_number" field.
func (_u *ProjectUpdateOne) ClearJobNumber() *ProjectUpdateOne {
	_u.mutation.ClearJobNumber()
	return _u
}

// SetClient sets the "client" field.
func (_u *ProjectUpdateOne) SetClient(v string) *ProjectUpdateOne {
	_u.mutation.SetClient(v)
	return _u
}

// SetNillableClient sets the "client" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableClient(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetClient(*v)
	}
	return _u
}

// ClearClient clears the value of the "client" field.
func (_u *ProjectUpdateOne) ClearClient() *ProjectUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProjectUpdateOne) SetCreatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableCreatedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAreaIDs adds the "areas" edge to the Area entity by IDs.
func (_u *ProjectUpdateOne) AddAreaIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.AddAreaIDs(ids...)
	return _u
}

// AddAreas adds the "areas" edges to the Area entity.
func (_u *ProjectUpdateOne) AddAreas(v ...*Area) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAreaIDs(ids...)
}

// AddSystemIDs adds the "systems" edge to the System entity by IDs.
func (_u *ProjectUpdateOne) AddSystemIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.AddSystemIDs(ids...)
	return _u
}

// AddSystems adds the "systems" edges to the System entity.
func (_u *ProjectUpdateOne) AddSystems(v ...*System) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSystemIDs(ids...)
}

// AddTestPackageIDs adds the "test_packages" edge to the TestPackage entity by IDs.
func (_u *ProjectUpdateOne) AddTestPackageIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.AddTestPackageIDs(ids...)
	return _u
}

// AddTestPackages adds the "test_packages" edges to the TestPackage entity.
func (_u *ProjectUpdateOne) AddTestPackages(v ...*TestPackage) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTestPackageIDs(ids...)
}

// AddDrawingIDs adds the "drawings" edge to the Drawing entity by IDs.
func (_u *ProjectUpdateOne) AddDrawingIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.AddDrawingIDs(ids...)
	return _u
}

// AddDrawings adds the "drawings" edges to the Drawing entity.
func (_u *ProjectUpdateOne) AddDrawings(v ...*Drawing) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDrawingIDs(ids...)
}

// AddComponentIDs adds the "components" edge to the Component entity by IDs.
func (_u *ProjectUpdateOne) AddComponentIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.AddComponentIDs(ids...)
	return _u
}

// AddComponents adds the "components" edges to the Component entity.
func (_u *ProjectUpdateOne) AddComponents(v ...*Component) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddComponentIDs(ids...)
}

// AddFieldWeldIDs adds the "field_welds" edge to the FieldWeld entity by IDs.
func (_u *ProjectUpdateOne) AddFieldWeldIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.AddFieldWeldIDs(ids...)
	return _u
}

// AddFieldWelds adds the "field_welds" edges to the FieldWeld entity.
func (_u *ProjectUpdateOne) AddFieldWelds(v ...*FieldWeld) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldWeldIDs(ids...)
}

// AddWelderIDs adds the "welders" edge to the Welder entity by IDs.
func (_u *ProjectUpdateOne) AddWelderIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.AddWelderIDs(ids...)
	return _u
}

// AddWelders adds the "welders" edges to the Welder entity.
func (_u *ProjectUpdateOne) AddWelders(v ...*Welder) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWelderIDs(ids...)
}

// AddImportJobIDs adds the "import_jobs" edge to the ImportJob entity by IDs.
func (_u *ProjectUpdateOne) AddImportJobIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.AddImportJobIDs(ids...)
	return _u
}

// AddImportJobs adds the "import_jobs" edges to the ImportJob entity.
func (_u *ProjectUpdateOne) AddImportJobs(v ...*ImportJob) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImportJobIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearAreas clears all "areas" edges to the Area entity.
func (_u *ProjectUpdateOne) ClearAreas() *ProjectUpdateOne {
	_u.mutation.ClearAreas()
	return _u
}

// RemoveAreaIDs removes the "areas" edge to Area entities by IDs.
func (_u *ProjectUpdateOne) RemoveAreaIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.RemoveAreaIDs(ids...)
	return _u
}

// RemoveAreas removes "areas" edges to Area entities.
func (_u *ProjectUpdateOne) RemoveAreas(v ...*Area) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAreaIDs(ids...)
}

// ClearSystems clears all "systems" edges to the System entity.
func (_u *ProjectUpdateOne) ClearSystems() *ProjectUpdateOne {
	_u.mutation.ClearSystems()
	return _u
}

// RemoveSystemIDs removes the "systems" edge to System entities by IDs.
func (_u *ProjectUpdateOne) RemoveSystemIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.RemoveSystemIDs(ids...)
	return _u
}

// RemoveSystems removes "systems" edges to System entities.
func (_u *ProjectUpdateOne) RemoveSystems(v ...*System) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSystemIDs(ids...)
}

// ClearTestPackages clears all "test_packages" edges to the TestPackage entity.
func (_u *ProjectUpdateOne) ClearTestPackages() *ProjectUpdateOne {
	_u.mutation.ClearTestPackages()
	return _u
}

// RemoveTestPackageIDs removes the "test_packages" edge to TestPackage entities by IDs.
func (_u *ProjectUpdateOne) RemoveTestPackageIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.RemoveTestPackageIDs(ids...)
	return _u
}

// RemoveTestPackages removes "test_packages" edges to TestPackage entities.
func (_u *ProjectUpdateOne) RemoveTestPackages(v ...*TestPackage) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTestPackageIDs(ids...)
}

// ClearDrawings clears all "drawings" edges to the Drawing entity.
func (_u *ProjectUpdateOne) ClearDrawings() *ProjectUpdateOne {
	_u.mutation.ClearDrawings()
	return _u
}

// RemoveDrawingIDs removes the "drawings" edge to Drawing entities by IDs.
func (_u *ProjectUpdateOne) RemoveDrawingIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.RemoveDrawingIDs(ids...)
	return _u
}

// RemoveDrawings removes "drawings" edges to Drawing entities.
func (_u *ProjectUpdateOne) RemoveDrawings(v ...*Drawing) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDrawingIDs(ids...)
}

// ClearComponents clears all "components" edges to the Component entity.
func (_u *ProjectUpdateOne) ClearComponents() *ProjectUpdateOne {
	_u.mutation.ClearComponents()
	return _u
}

// RemoveComponentIDs removes the "components" edge to Component entities by IDs.
func (_u *ProjectUpdateOne) RemoveComponentIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.RemoveComponentIDs(ids...)
	return _u
}

// RemoveComponents removes "components" edges to Component entities.
func (_u *ProjectUpdateOne) RemoveComponents(v ...*Component) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveComponentIDs(ids...)
}

// ClearFieldWelds clears all "field_welds" edges to the FieldWeld entity.
func (_u *ProjectUpdateOne) ClearFieldWelds() *ProjectUpdateOne {
	_u.mutation.ClearFieldWelds()
	return _u
}

// RemoveFieldWeldIDs removes the "field_welds" edge to FieldWeld entities by IDs.
func (_u *ProjectUpdateOne) RemoveFieldWeldIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.RemoveFieldWeldIDs(ids...)
	return _u
}

// RemoveFieldWelds removes "field_welds" edges to FieldWeld entities.
func (_u *ProjectUpdateOne) RemoveFieldWelds(v ...*FieldWeld) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldWeldIDs(ids...)
}

// ClearWelders clears all "welders" edges to the Welder entity.
func (_u *ProjectUpdateOne) ClearWelders() *ProjectUpdateOne {
	_u.mutation.ClearWelders()
	return _u
}

// RemoveWelderIDs removes the "welders" edge to Welder entities by IDs.
func (_u *ProjectUpdateOne) RemoveWelderIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.RemoveWelderIDs(ids...)
	return _u
}

// RemoveWelders removes "welders" edges to Welder entities.
func (_u *ProjectUpdateOne) RemoveWelders(v ...*Welder) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWelderIDs(ids...)
}

// ClearImportJobs clears all "import_jobs" edges to the ImportJob entity.
func (_u *ProjectUpdateOne) ClearImportJobs() *ProjectUpdateOne {
	_u.mutation.ClearImportJobs()
	return _u
}

// RemoveImportJobIDs removes the "import_jobs" edge to ImportJob entities by IDs.
func (_u *ProjectUpdateOne) RemoveImportJobIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.RemoveImportJobIDs(ids...)
	return _u
}

// RemoveImportJobs removes "import_jobs" edges to ImportJob entities.
func (_u *ProjectUpdateOne) RemoveImportJobs(v ...*ImportJob) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImportJobIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := project.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Project.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobNumber(); ok {
		_spec.SetField(project.FieldJobNumber, field.TypeString, value)
	}
	if _u.mutation.JobNumberCleared() {
		_spec.ClearField(project.FieldJobNumber, field.TypeString)
	}
	if value, ok := _u.mutation.GetClient(); ok {
		_spec.SetField(project.FieldClient, field.TypeString, value)
	}
	if _u.mutation.ClientCleared() {
		_spec.ClearField(project.FieldClient, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(project.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AreasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AreasTable,
			Columns: []string{project.AreasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAreasIDs(); len(nodes) > 0 && !_u.mutation.AreasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AreasTable,
			Columns: []string{project.AreasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AreasIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AreasTable,
			Columns: []string{project.AreasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SystemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SystemsTable,
			Columns: []string{project.SystemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSystemsIDs(); len(nodes) > 0 && !_u.mutation.SystemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SystemsTable,
			Columns: []string{project.SystemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SystemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SystemsTable,
			Columns: []string{project.SystemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TestPackagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TestPackagesTable,
			Columns: []string{project.TestPackagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testpackage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTestPackagesIDs(); len(nodes) > 0 && !_u.mutation.TestPackagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TestPackagesTable,
			Columns: []string{project.TestPackagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testpackage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestPackagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TestPackagesTable,
			Columns: []string{project.TestPackagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testpackage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DrawingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DrawingsTable,
			Columns: []string{project.DrawingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDrawingsIDs(); len(nodes) > 0 && !_u.mutation.DrawingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DrawingsTable,
			Columns: []string{project.DrawingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DrawingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DrawingsTable,
			Columns: []string{project.DrawingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ComponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ComponentsTable,
			Columns: []string{project.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedComponentsIDs(); len(nodes) > 0 && !_u.mutation.ComponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ComponentsTable,
			Columns: []string{project.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ComponentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ComponentsTable,
			Columns: []string{project.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldWeldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.FieldWeldsTable,
			Columns: []string{project.FieldWeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldWeldsIDs(); len(nodes) > 0 && !_u.mutation.FieldWeldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.FieldWeldsTable,
			Columns: []string{project.FieldWeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldWeldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.FieldWeldsTable,
			Columns: []string{project.FieldWeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WeldersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.WeldersTable,
			Columns: []string{project.WeldersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(welder.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWeldersIDs(); len(nodes) > 0 && !_u.mutation.WeldersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.WeldersTable,
			Columns: []string{project.WeldersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(welder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WeldersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.WeldersTable,
			Columns: []string{project.WeldersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(welder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImportJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ImportJobsTable,
			Columns: []string{project.ImportJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImportJobsIDs(); len(nodes) > 0 && !_u.mutation.ImportJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ImportJobsTable,
			Columns: []string{project.ImportJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImportJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ImportJobsTable,
			Columns: []string{project.ImportJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
