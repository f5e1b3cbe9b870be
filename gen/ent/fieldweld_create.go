// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/drawing"
	"github.com/pipetrak/pipetrak/gen/ent/fieldweld"
	"github.com/pipetrak/pipetrak/gen/ent/project"
	"github.com/pipetrak/pipetrak/gen/ent/welder"
)

// FieldWeldCreate is the builder for creating a FieldWeld entity.
type FieldWeldCreate struct {
	config
	mutation *FieldWeldMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *FieldWeldCreate) SetProjectID(v uuid.UUID) *FieldWeldCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetDrawingID sets the "drawing_id" field.
func (_c *FieldWeldCreate) SetDrawingID(v uuid.UUID) *FieldWeldCreate {
	_c.mutation.SetDrawingID(v)
	return _c
}

// SetWelderID sets the "welder_id" field.
func (_c *FieldWeldCreate) SetWelderID(v uuid.UUID) *FieldWeldCreate {
	_c.mutation.SetWelderID(v)
	return _c
}

// SetNillableWelderID sets the "welder_id" field if the given value is not nil.
func (_c *FieldWeldCreate) SetNillableWelderID(v *uuid.UUID) *FieldWeldCreate {
	if v != nil {
		_c.SetWelderID(*v)
	}
	return _c
}

// SetWeldNumber sets the "weld_number" field.
func (_c *FieldWeldCreate) SetWeldNumber(v string) *FieldWeldCreate {
	_c.mutation.SetWeldNumber(v)
	return _c
}

// SetWeldType sets the "weld_type" field.
func (_c *FieldWeldCreate) SetWeldType(v string) *FieldWeldCreate {
	_c.mutation.SetWeldType(v)
	return _c
}

// SetNillableWeldType sets the "weld_type" field if the given value is not nil.
func (_c *FieldWeldCreate) SetNillableWeldType(v *string) *FieldWeldCreate {
	if v != nil {
		_c.SetWeldType(*v)
	}
	return _c
}

// SetMaterial sets the "material" field.
func (_c *FieldWeldCreate) SetMaterial(v string) *FieldWeldCreate {
	_c.mutation.SetMaterial(v)
	return _c
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (_c *FieldWeldCreate) SetNillableMaterial(v *string) *FieldWeldCreate {
	if v != nil {
		_c.SetMaterial(*v)
	}
	return _c
}

// SetCurrentMilestones sets the "current_milestones" field.
func (_c *FieldWeldCreate) SetCurrentMilestones(v json.RawMessage) *FieldWeldCreate {
	_c.mutation.SetCurrentMilestones(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FieldWeldCreate) SetCreatedAt(v time.Time) *FieldWeldCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FieldWeldCreate) SetNillableCreatedAt(v *time.Time) *FieldWeldCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FieldWeldCreate) SetUpdatedAt(v time.Time) *FieldWeldCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FieldWeldCreate) SetNillableUpdatedAt(v *time.Time) *FieldWeldCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FieldWeldCreate) SetID(v uuid.UUID) *FieldWeldCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FieldWeldCreate) SetNillableID(v *uuid.UUID) *FieldWeldCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *FieldWeldCreate) SetProject(v *Project) *FieldWeldCreate {
	return _c.SetProjectID(v.ID)
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_c *FieldWeldCreate) SetDrawing(v *Drawing) *FieldWeldCreate {
	return _c.SetDrawingID(v.ID)
}

// SetWelder sets the "welder" edge to the Welder entity.
func (_c *FieldWeldCreate) SetWelder(v *Welder) *FieldWeldCreate {
	return _c.SetWelderID(v.ID)
}

// Mutation returns the FieldWeldMutation object of the builder.
func (_c *FieldWeldCreate) Mutation() *FieldWeldMutation {
	return _c.mutation
}

// Save creates the FieldWeld in the database.
func (_c *FieldWeldCreate) Save(ctx context.Context) (*FieldWeld, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FieldWeldCreate) SaveX(ctx context.Context) *FieldWeld {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldWeldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldWeldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FieldWeldCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fieldweld.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := fieldweld.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fieldweld.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FieldWeldCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "FieldWeld.project_id"`)}
	}
	if _, ok := _c.mutation.DrawingID(); !ok {
		return &ValidationError{Name: "drawing_id", err: errors.New(`ent: missing required field "FieldWeld.drawing_id"`)}
	}
	if _, ok := _c.mutation.WeldNumber(); !ok {
		return &ValidationError{Name: "weld_number", err: errors.New(`ent: missing required field "FieldWeld.weld_number"`)}
	}
	if v, ok := _c.mutation.WeldNumber(); ok {
		if err := fieldweld.WeldNumberValidator(v); err != nil {
			return &ValidationError{Name: "weld_number", err: fmt.Errorf(`ent: validator failed for field "FieldWeld.weld_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FieldWeld.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FieldWeld.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "FieldWeld.project"`)}
	}
	if len(_c.mutation.DrawingIDs()) == 0 {
		return &ValidationError{Name: "drawing", err: errors.New(`ent: missing required edge "FieldWeld.drawing"`)}
	}
	return nil
}

func (_c *FieldWeldCreate) sqlSave(ctx context.Context) (*FieldWeld, error) {
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

func (_c *FieldWeldCreate) createSpec() (*FieldWeld, *sqlgraph.CreateSpec) {
	var (
		_node = &FieldWeld{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fieldweld.Table, sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.WeldNumber(); ok {
		_spec.SetField(fieldweld.FieldWeldNumber, field.TypeString, value)
		_node.WeldNumber = value
	}
	if value, ok := _c.mutation.WeldType(); ok {
		_spec.SetField(fieldweld.FieldWeldType, field.TypeString, value)
		_node.WeldType = &value
	}
	if value, ok := _c.mutation.Material(); ok {
		_spec.SetField(fieldweld.FieldMaterial, field.TypeString, value)
		_node.Material = &value
	}
	if value, ok := _c.mutation.CurrentMilestones(); ok {
		_spec.SetField(fieldweld.FieldCurrentMilestones, field.TypeJSON, value)
		_node.CurrentMilestones = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fieldweld.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldweld.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldweld.ProjectTable,
			Columns: []string{fieldweld.ProjectColumn},
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
	if nodes := _c.mutation.DrawingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldweld.DrawingTable,
			Columns: []string{fieldweld.DrawingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DrawingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WelderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldweld.WelderTable,
			Columns: []string{fieldweld.WelderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(welder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WelderID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FieldWeldCreateBulk is the builder for creating many FieldWeld entities in bulk.
type FieldWeldCreateBulk struct {
	config
	err      error
	builders []*FieldWeldCreate
}

// Save creates the FieldWeld entities in the database.
func (_c *FieldWeldCreateBulk) Save(ctx context.Context) ([]*FieldWeld, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FieldWeld, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FieldWeldMutation)
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
func (_c *FieldWeldCreateBulk) SaveX(ctx context.Context) []*FieldWeld {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldWeldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldWeldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
