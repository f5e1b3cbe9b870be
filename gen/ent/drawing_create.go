// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/area"
	"github.com/pipetrak/pipetrak/gen/ent/component"
	"github.com/pipetrak/pipetrak/gen/ent/drawing"
	"github.com/pipetrak/pipetrak/gen/ent/fieldweld"
	"github.com/pipetrak/pipetrak/gen/ent/project"
	"github.com/pipetrak/pipetrak/gen/ent/system"
)

// DrawingCreate is the builder for creating a Drawing entity.
type DrawingCreate struct {
	config
	mutation *DrawingMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *DrawingCreate) SetProjectID(v uuid.UUID) *DrawingCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetAreaID sets the "area_id" field.
func (_c *DrawingCreate) SetAreaID(v uuid.UUID) *DrawingCreate {
	_c.mutation.SetAreaID(v)
	return _c
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableAreaID(v *uuid.UUID) *DrawingCreate {
	if v != nil {
		_c.SetAreaID(*v)
	}
	return _c
}

// SetSystemID sets the "system_id" field.
func (_c *DrawingCreate) SetSystemID(v uuid.UUID) *DrawingCreate {
	_c.mutation.SetSystemID(v)
	return _c
}

// SetNillableSystemID sets the "system_id" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableSystemID(v *uuid.UUID) *DrawingCreate {
	if v != nil {
		_c.SetSystemID(*v)
	}
	return _c
}

// SetNumber sets the "number" field.
func (_c *DrawingCreate) SetNumber(v string) *DrawingCreate {
	_c.mutation.SetNumber(v)
	return _c
}

// SetNormNumber sets the "norm_number" field.
func (_c *DrawingCreate) SetNormNumber(v string) *DrawingCreate {
	_c.mutation.SetNormNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *DrawingCreate) SetTitle(v string) *DrawingCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableTitle(v *string) *DrawingCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetRevision sets the "revision" field.
func (_c *DrawingCreate) SetRevision(v string) *DrawingCreate {
	_c.mutation.SetRevision(v)
	return _c
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableRevision(v *string) *DrawingCreate {
	if v != nil {
		_c.SetRevision(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DrawingCreate) SetCreatedAt(v time.Time) *DrawingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableCreatedAt(v *time.Time) *DrawingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DrawingCreate) SetUpdatedAt(v time.Time) *DrawingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableUpdatedAt(v *time.Time) *DrawingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DrawingCreate) SetID(v uuid.UUID) *DrawingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableID(v *uuid.UUID) *DrawingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *DrawingCreate) SetProject(v *Project) *DrawingCreate {
	return _c.SetProjectID(v.ID)
}

// SetArea sets the "area" edge to the Area entity.
func (_c *DrawingCreate) SetArea(v *Area) *DrawingCreate {
	return _c.SetAreaID(v.ID)
}

// SetSystem sets the "system" edge to the System entity.
func (_c *DrawingCreate) SetSystem(v *System) *DrawingCreate {
	return _c.SetSystemID(v.ID)
}

// AddComponentIDs adds the "components" edge to the Component entity by IDs.
func (_c *DrawingCreate) AddComponentIDs(ids ...uuid.UUID) *DrawingCreate {
	_c.mutation.AddComponentIDs(ids...)
	return _c
}

// AddComponents adds the "components" edges to the Component entity.
func (_c *DrawingCreate) AddComponents(v ...*Component) *DrawingCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddComponentIDs(ids...)
}

// AddFieldWeldIDs adds the "field_welds" edge to the FieldWeld entity by IDs.
func (_c *DrawingCreate) AddFieldWeldIDs(ids ...uuid.UUID) *DrawingCreate {
	_c.mutation.AddFieldWeldIDs(ids...)
	return _c
}

// AddFieldWelds adds the "field_welds" edges to the FieldWeld entity.
func (_c *DrawingCreate) AddFieldWelds(v ...*FieldWeld) *DrawingCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFieldWeldIDs(ids...)
}

// Mutation returns the DrawingMutation object of the builder.
func (_c *DrawingCreate) Mutation() *DrawingMutation {
	return _c.mutation
}

// Save creates the Drawing in the database.
func (_c *DrawingCreate) Save(ctx context.Context) (*Drawing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DrawingCreate) SaveX(ctx context.Context) *Drawing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrawingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrawingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DrawingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := drawing.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := drawing.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := drawing.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DrawingCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Drawing.project_id"`)}
	}
	if _, ok := _c.mutation.Number(); !ok {
		return &ValidationError{Name: "number", err: errors.New(`ent: missing required field "Drawing.number"`)}
	}
	if v, ok := _c.mutation.Number(); ok {
		if err := drawing.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Drawing.number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NormNumber(); !ok {
		return &ValidationError{Name: "norm_number", err: errors.New(`ent: missing required field "Drawing.norm_number"`)}
	}
	if v, ok := _c.mutation.NormNumber(); ok {
		if err := drawing.NormNumberValidator(v); err != nil {
			return &ValidationError{Name: "norm_number", err: fmt.Errorf(`ent: validator failed for field "Drawing.norm_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Drawing.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Drawing.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Drawing.project"`)}
	}
	return nil
}

func (_c *DrawingCreate) sqlSave(ctx context.Context) (*Drawing, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DrawingCreate) createSpec() (*Drawing, *sqlgraph.CreateSpec) {
	var (
		_node = &Drawing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(drawing.Table, sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Number(); ok {
		_spec.SetField(drawing.FieldNumber, field.TypeString, value)
		_node.Number = value
	}
	if value, ok := _c.mutation.NormNumber(); ok {
		_spec.SetField(drawing.FieldNormNumber, field.TypeString, value)
		_node.NormNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(drawing.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.Revision(); ok {
		_spec.SetField(drawing.FieldRevision, field.TypeString, value)
		_node.Revision = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(drawing.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(drawing.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.ProjectTable,
			Columns: []string{drawing.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AreaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.AreaTable,
			Columns: []string{drawing.AreaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AreaID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SystemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.SystemTable,
			Columns: []string{drawing.SystemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SystemID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ComponentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.ComponentsTable,
			Columns: []string{drawing.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FieldWeldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.FieldWeldsTable,
			Columns: []string{drawing.FieldWeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DrawingCreateBulk is the builder for creating many Drawing entities in bulk.
type DrawingCreateBulk struct {
	config
	err      error
	builders []*DrawingCreate
}

// Save creates the Drawing entities in the database.
func (_c *DrawingCreateBulk) Save(ctx context.Context) ([]*Drawing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Drawing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DrawingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DrawingCreateBulk) SaveX(ctx context.Context) []*Drawing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrawingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrawingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
