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
	"github.com/pipetrak/pipetrak/gen/ent/area"
	"github.com/pipetrak/pipetrak/gen/ent/component"
	"github.com/pipetrak/pipetrak/gen/ent/drawing"
	"github.com/pipetrak/pipetrak/gen/ent/project"
	"github.com/pipetrak/pipetrak/gen/ent/system"
	"github.com/pipetrak/pipetrak/gen/ent/testpackage"
)

// ComponentCreate is the builder for creating a Component entity.
type ComponentCreate struct {
	config
	mutation *ComponentMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *ComponentCreate) SetProjectID(v uuid.UUID) *ComponentCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetDrawingID sets the "drawing_id" field.
func (_c *ComponentCreate) SetDrawingID(v uuid.UUID) *ComponentCreate {
	_c.mutation.SetDrawingID(v)
	return _c
}

// SetNillableDrawingID sets the "drawing_id" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableDrawingID(v *uuid.UUID) *ComponentCreate {
	if v != nil {
		_c.SetDrawingID(*v)
	}
	return _c
}

// SetAreaID sets the "area_id" field.
func (_c *ComponentCreate) SetAreaID(v uuid.UUID) *ComponentCreate {
	_c.mutation.SetAreaID(v)
	return _c
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableAreaID(v *uuid.UUID) *ComponentCreate {
	if v != nil {
		_c.SetAreaID(*v)
	}
	return _c
}

// SetSystemID sets the "system_id" field.
func (_c *ComponentCreate) SetSystemID(v uuid.UUID) *ComponentCreate {
	_c.mutation.SetSystemID(v)
	return _c
}

// SetNillableSystemID sets the "system_id" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableSystemID(v *uuid.UUID) *ComponentCreate {
	if v != nil {
		_c.SetSystemID(*v)
	}
	return _c
}

// SetTestPackageID sets the "test_package_id" field.
func (_c *ComponentCreate) SetTestPackageID(v uuid.UUID) *ComponentCreate {
	_c.mutation.SetTestPackageID(v)
	return _c
}

// SetNillableTestPackageID sets the "test_package_id" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableTestPackageID(v *uuid.UUID) *ComponentCreate {
	if v != nil {
		_c.SetTestPackageID(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *ComponentCreate) SetType(v string) *ComponentCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetIdentityKey sets the "identity_key" field.
func (_c *ComponentCreate) SetIdentityKey(v string) *ComponentCreate {
	_c.mutation.SetIdentityKey(v)
	return _c
}

// SetCommodityCode sets the "commodity_code" field.
func (_c *ComponentCreate) SetCommodityCode(v string) *ComponentCreate {
	_c.mutation.SetCommodityCode(v)
	return _c
}

// SetNillableCommodityCode sets the "commodity_code" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableCommodityCode(v *string) *ComponentCreate {
	if v != nil {
		_c.SetCommodityCode(*v)
	}
	return _c
}

// SetSpec sets the "spec" field.
func (_c *ComponentCreate) SetSpec(v string) *ComponentCreate {
	_c.mutation.SetSpec(v)
	return _c
}

// SetNillableSpec sets the "spec" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableSpec(v *string) *ComponentCreate {
	if v != nil {
		_c.SetSpec(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ComponentCreate) SetDescription(v string) *ComponentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableDescription(v *string) *ComponentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSize sets the "size" field.
func (_c *ComponentCreate) SetSize(v string) *ComponentCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableSize(v *string) *ComponentCreate {
	if v != nil {
		_c.SetSize(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *ComponentCreate) SetQuantity(v int) *ComponentCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableQuantity(v *int) *ComponentCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetSeq sets the "seq" field.
func (_c *ComponentCreate) SetSeq(v int) *ComponentCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableSeq(v *int) *ComponentCreate {
	if v != nil {
		_c.SetSeq(*v)
	}
	return _c
}

// SetComments sets the "comments" field.
func (_c *ComponentCreate) SetComments(v string) *ComponentCreate {
	_c.mutation.SetComments(v)
	return _c
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableComments(v *string) *ComponentCreate {
	if v != nil {
		_c.SetComments(*v)
	}
	return _c
}

// SetAttributes sets the "attributes" field.
func (_c *ComponentCreate) SetAttributes(v map[string]string) *ComponentCreate {
	_c.mutation.SetAttributes(v)
	return _c
}

// SetCurrentMilestones sets the "current_milestones" field.
func (_c *ComponentCreate) SetCurrentMilestones(v json.RawMessage) *ComponentCreate {
	_c.mutation.SetCurrentMilestones(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ComponentCreate) SetCreatedAt(v time.Time) *ComponentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableCreatedAt(v *time.Time) *ComponentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ComponentCreate) SetUpdatedAt(v time.Time) *ComponentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableUpdatedAt(v *time.Time) *ComponentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ComponentCreate) SetID(v uuid.UUID) *ComponentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ComponentCreate) SetNillableID(v *uuid.UUID) *ComponentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ComponentCreate) SetProject(v *Project) *ComponentCreate {
	return _c.SetProjectID(v.ID)
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_c *ComponentCreate) SetDrawing(v *Drawing) *ComponentCreate {
	return _c.SetDrawingID(v.ID)
}

// SetArea sets the "area" edge to the Area entity.
func (_c *ComponentCreate) SetArea(v *Area) *ComponentCreate {
	return _c.SetAreaID(v.ID)
}

// SetSystem sets the "system" edge to the System entity.
func (_c *ComponentCreate) SetSystem(v *System) *ComponentCreate {
	return _c.SetSystemID(v.ID)
}

// SetTestPackage sets the "test_package" edge to the TestPackage entity.
func (_c *ComponentCreate) SetTestPackage(v *TestPackage) *ComponentCreate {
	return _c.SetTestPackageID(v.ID)
}

// Mutation returns the ComponentMutation object of the builder.
func (_c *ComponentCreate) Mutation() *ComponentMutation {
	return _c.mutation
}

// Save creates the Component in the database.
func (_c *ComponentCreate) Save(ctx context.Context) (*Component, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ComponentCreate) SaveX(ctx context.Context) *Component {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComponentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComponentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ComponentCreate) defaults() {
	if _, ok := _c.mutation.Quantity(); !ok {
		v := component.DefaultQuantity
		_c.mutation.SetQuantity(v)
	}
	if _, ok := _c.mutation.Seq(); !ok {
		v := component.DefaultSeq
		_c.mutation.SetSeq(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := component.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := component.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := component.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ComponentCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Component.project_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Component.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := component.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Component.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IdentityKey(); !ok {
		return &ValidationError{Name: "identity_key", err: errors.New(`ent: missing required field "Component.identity_key"`)}
	}
	if v, ok := _c.mutation.IdentityKey(); ok {
		if err := component.IdentityKeyValidator(v); err != nil {
			return &ValidationError{Name: "identity_key", err: fmt.Errorf(`ent: validator failed for field "Component.identity_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "Component.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := component.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "Component.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "Component.seq"`)}
	}
	if v, ok := _c.mutation.Seq(); ok {
		if err := component.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "Component.seq": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Component.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Component.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Component.project"`)}
	}
	return nil
}

func (_c *ComponentCreate) sqlSave(ctx context.Context) (*Component, error) {
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

func (_c *ComponentCreate) createSpec() (*Component, *sqlgraph.CreateSpec) {
	var (
		_node = &Component{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(component.Table, sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(component.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.IdentityKey(); ok {
		_spec.SetField(component.FieldIdentityKey, field.TypeString, value)
		_node.IdentityKey = value
	}
	if value, ok := _c.mutation.CommodityCode(); ok {
		_spec.SetField(component.FieldCommodityCode, field.TypeString, value)
		_node.CommodityCode = value
	}
	if value, ok := _c.mutation.Spec(); ok {
		_spec.SetField(component.FieldSpec, field.TypeString, value)
		_node.Spec = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(component.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(component.FieldSize, field.TypeString, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(component.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(component.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Comments(); ok {
		_spec.SetField(component.FieldComments, field.TypeString, value)
		_node.Comments = &value
	}
	if value, ok := _c.mutation.Attributes(); ok {
		_spec.SetField(component.FieldAttributes, field.TypeJSON, value)
		_node.Attributes = value
	}
	if value, ok := _c.mutation.CurrentMilestones(); ok {
		_spec.SetField(component.FieldCurrentMilestones, field.TypeJSON, value)
		_node.CurrentMilestones = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(component.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(component.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   component.ProjectTable,
			Columns: []string{component.ProjectColumn},
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
			Table:   component.DrawingTable,
			Columns: []string{component.DrawingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DrawingID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AreaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   component.AreaTable,
			Columns: []string{component.AreaColumn},
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
			Table:   component.SystemTable,
			Columns: []string{component.SystemColumn},
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
	if nodes := _c.mutation.TestPackageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   component.TestPackageTable,
			Columns: []string{component.TestPackageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testpackage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TestPackageID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ComponentCreateBulk is the builder for creating many Component entities in bulk.
type ComponentCreateBulk struct {
	config
	err      error
	builders []*ComponentCreate
}

// Save creates the Component entities in the database.
func (_c *ComponentCreateBulk) Save(ctx context.Context) ([]*Component, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Component, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ComponentMutation)
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
func (_c *ComponentCreateBulk) SaveX(ctx context.Context) []*Component {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComponentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComponentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
