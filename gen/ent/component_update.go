// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/area"
	"github.com/pipetrak/pipetrak/gen/ent/component"
	"github.com/pipetrak/pipetrak/gen/ent/drawing"
	"github.com/pipetrak/pipetrak/gen/ent/predicate"
	"github.com/pipetrak/pipetrak/gen/ent/project"
	"github.com/pipetrak/pipetrak/gen/ent/system"
	"github.com/pipetrak/pipetrak/gen/ent/testpackage"
)

// ComponentUpdate is the builder for updating Component entities.
type ComponentUpdate struct {
	config
	hooks    []Hook
	mutation *ComponentMutation
}

// Where appends a list predicates to the ComponentUpdate builder.
func (_u *ComponentUpdate) Where(ps ...predicate.Component) *ComponentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ComponentUpdate) SetProjectID(v uuid.UUID) *ComponentUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableProjectID(v *uuid.UUID) *ComponentUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetDrawingID sets the "drawing_id" field.
func (_u *ComponentUpdate) SetDrawingID(v uuid.UUID) *ComponentUpdate {
	_u.mutation.SetDrawingID(v)
	return _u
}

// SetNillableDrawingID sets the "drawing_id" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableDrawingID(v *uuid.UUID) *ComponentUpdate {
	if v != nil {
		_u.SetDrawingID(*v)
	}
	return _u
}

// ClearDrawingID clears the value of the "drawing_id" field.
func (_u *ComponentUpdate) ClearDrawingID() *ComponentUpdate {
	_u.mutation.ClearDrawingID()
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *ComponentUpdate) SetAreaID(v uuid.UUID) *ComponentUpdate {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableAreaID(v *uuid.UUID) *ComponentUpdate {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// ClearAreaID clears the value of the "area_id" field.
func (_u *ComponentUpdate) ClearAreaID() *ComponentUpdate {
	_u.mutation.ClearAreaID()
	return _u
}

// SetSystemID sets the "system_id" field.
func (_u *ComponentUpdate) SetSystemID(v uuid.UUID) *ComponentUpdate {
	_u.mutation.SetSystemID(v)
	return _u
}

// SetNillableSystemID sets the "system_id" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableSystemID(v *uuid.UUID) *ComponentUpdate {
	if v != nil {
		_u.SetSystemID(*v)
	}
	return _u
}

// ClearSystemID clears the value of the "system_id" field.
func (_u *ComponentUpdate) ClearSystemID() *ComponentUpdate {
	_u.mutation.ClearSystemID()
	return _u
}

// SetTestPackageID sets the "test_package_id" field.
func (_u *ComponentUpdate) SetTestPackageID(v uuid.UUID) *ComponentUpdate {
	_u.mutation.SetTestPackageID(v)
	return _u
}

// SetNillableTestPackageID sets the "test_package_id" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableTestPackageID(v *uuid.UUID) *ComponentUpdate {
	if v != nil {
		_u.SetTestPackageID(*v)
	}
	return _u
}

// ClearTestPackageID clears the value of the "test_package_id" field.
func (_u *ComponentUpdate) ClearTestPackageID() *ComponentUpdate {
	_u.mutation.ClearTestPackageID()
	return _u
}

// SetType sets the "type" field.
func (_u *ComponentUpdate) SetType(v string) *ComponentUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableType(v *string) *ComponentUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetIdentityKey sets the "identity_key" field.
func (_u *ComponentUpdate) SetIdentityKey(v string) *ComponentUpdate {
	_u.mutation.SetIdentityKey(v)
	return _u
}

// SetNillableIdentityKey sets the "identity_key" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableIdentityKey(v *string) *ComponentUpdate {
	if v != nil {
		_u.SetIdentityKey(*v)
	}
	return _u
}

// SetCommodityCode sets the "commodity_code" field.
func (_u *ComponentUpdate) SetCommodityCode(v string) *ComponentUpdate {
	_u.mutation.SetCommodityCode(v)
	return _u
}

// SetNillableCommodityCode sets the "commodity_code" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableCommodityCode(v *string) *ComponentUpdate {
	if v != nil {
		_u.SetCommodityCode(*v)
	}
	return _u
}

// ClearCommodityCode clears the value of the "commodity_code" field.
func (_u *ComponentUpdate) ClearCommodityCode() *ComponentUpdate {
	_u.mutation.ClearCommodityCode()
	return _u
}

// SetSpec sets the "spec" field.
func (_u *ComponentUpdate) SetSpec(v string) *ComponentUpdate {
	_u.mutation.SetSpec(v)
	return _u
}

// SetNillableSpec sets the "spec" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableSpec(v *string) *ComponentUpdate {
	if v != nil {
		_u.SetSpec(*v)
	}
	return _u
}

// ClearSpec clears the value of the "spec" field.
func (_u *ComponentUpdate) ClearSpec() *ComponentUpdate {
	_u.mutation.ClearSpec()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ComponentUpdate) SetDescription(v string) *ComponentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableDescription(v *string) *ComponentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ComponentUpdate) ClearDescription() *ComponentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSize sets the "size" field.
func (_u *ComponentUpdate) SetSize(v string) *ComponentUpdate {
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableSize(v *string) *ComponentUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// ClearSize clears the value of the "size" field.
func (_u *ComponentUpdate) ClearSize() *ComponentUpdate {
	_u.mutation.ClearSize()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *ComponentUpdate) SetQuantity(v int) *ComponentUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableQuantity(v *int) *ComponentUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *ComponentUpdate) AddQuantity(v int) *ComponentUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetSeq sets the "seq" field.
func (_u *ComponentUpdate) SetSeq(v int) *ComponentUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableSeq(v *int) *ComponentUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *ComponentUpdate) AddSeq(v int) *ComponentUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetComments sets the "comments" field.
func (_u *ComponentUpdate) SetComments(v string) *ComponentUpdate {
	_u.mutation.SetComments(v)
	return _u
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableComments(v *string) *ComponentUpdate {
	if v != nil {
		_u.SetComments(*v)
	}
	return _u
}

// ClearComments clears the value of the "comments" field.
func (_u *ComponentUpdate) ClearComments() *ComponentUpdate {
	_u.mutation.ClearComments()
	return _u
}

// SetAttributes sets the "attributes" field.
func (_u *ComponentUpdate) SetAttributes(v map[string]string) *ComponentUpdate {
	_u.mutation.SetAttributes(v)
	return _u
}

// ClearAttributes clears the value of the "attributes" field.
func (_u *ComponentUpdate) ClearAttributes() *ComponentUpdate {
	_u.mutation.ClearAttributes()
	return _u
}

// SetCurrentMilestones sets the "current_milestones" field.
func (_u *ComponentUpdate) SetCurrentMilestones(v json.RawMessage) *ComponentUpdate {
	_u.mutation.SetCurrentMilestones(v)
	return _u
}

// AppendCurrentMilestones appends value to the "current_milestones" field.
func (_u *ComponentUpdate) AppendCurrentMilestones(v json.RawMessage) *ComponentUpdate {
	_u.mutation.AppendCurrentMilestones(v)
	return _u
}

// ClearCurrentMilestones clears the value of the "current_milestones" field.
func (_u *ComponentUpdate) ClearCurrentMilestones() *ComponentUpdate {
	_u.mutation.ClearCurrentMilestones()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ComponentUpdate) SetCreatedAt(v time.Time) *ComponentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ComponentUpdate) SetNillableCreatedAt(v *time.Time) *ComponentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ComponentUpdate) SetUpdatedAt(v time.Time) *ComponentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ComponentUpdate) SetProject(v *Project) *ComponentUpdate {
	return _u.SetProjectID(v.ID)
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_u *ComponentUpdate) SetDrawing(v *Drawing) *ComponentUpdate {
	return _u.SetDrawingID(v.ID)
}

// SetArea sets the "area" edge to the Area entity.
func (_u *ComponentUpdate) SetArea(v *Area) *ComponentUpdate {
	return _u.SetAreaID(v.ID)
}

// SetSystem sets the "system" edge to the System entity.
func (_u *ComponentUpdate) SetSystem(v *System) *ComponentUpdate {
	return _u.SetSystemID(v.ID)
}

// SetTestPackage sets the "test_package" edge to the TestPackage entity.
func (_u *ComponentUpdate) SetTestPackage(v *TestPackage) *ComponentUpdate {
	return _u.SetTestPackageID(v.ID)
}

// Mutation returns the ComponentMutation object of the builder.
func (_u *ComponentUpdate) Mutation() *ComponentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ComponentUpdate) ClearProject() *ComponentUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (_u *ComponentUpdate) ClearDrawing() *ComponentUpdate {
	_u.mutation.ClearDrawing()
	return _u
}

// ClearArea clears the "area" edge to the Area entity.
func (_u *ComponentUpdate) ClearArea() *ComponentUpdate {
	_u.mutation.ClearArea()
	return _u
}

// ClearSystem clears the "system" edge to the System entity.
func (_u *ComponentUpdate) ClearSystem() *ComponentUpdate {
	_u.mutation.ClearSystem()
	return _u
}

// ClearTestPackage clears the "test_package" edge to the TestPackage entity.
func (_u *ComponentUpdate) ClearTestPackage() *ComponentUpdate {
	_u.mutation.ClearTestPackage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ComponentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComponentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ComponentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComponentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ComponentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := component.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComponentUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := component.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Component.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IdentityKey(); ok {
		if err := component.IdentityKeyValidator(v); err != nil {
			return &ValidationError{Name: "identity_key", err: fmt.Errorf(`ent: validator failed for field "Component.identity_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := component.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "Component.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Seq(); ok {
		if err := component.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "Component.seq": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Component.project"`)
	}
	return nil
}

func (_u *ComponentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(component.Table, component.Columns, sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(component.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdentityKey(); ok {
		_spec.SetField(component.FieldIdentityKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommodityCode(); ok {
		_spec.SetField(component.FieldCommodityCode, field.TypeString, value)
	}
	if _u.mutation.CommodityCodeCleared() {
		_spec.ClearField(component.FieldCommodityCode, field.TypeString)
	}
	if value, ok := _u.mutation.Spec(); ok {
		_spec.SetField(component.FieldSpec, field.TypeString, value)
	}
	if _u.mutation.SpecCleared() {
		_spec.ClearField(component.FieldSpec, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(component.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(component.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(component.FieldSize, field.TypeString, value)
	}
	if _u.mutation.SizeCleared() {
		_spec.ClearField(component.FieldSize, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(component.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(component.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(component.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(component.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Comments(); ok {
		_spec.SetField(component.FieldComments, field.TypeString, value)
	}
	if _u.mutation.CommentsCleared() {
		_spec.ClearField(component.FieldComments, field.TypeString)
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(component.FieldAttributes, field.TypeJSON, value)
	}
	if _u.mutation.AttributesCleared() {
		_spec.ClearField(component.FieldAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentMilestones(); ok {
		_spec.SetField(component.FieldCurrentMilestones, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCurrentMilestones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, component.FieldCurrentMilestones, value)
		})
	}
	if _u.mutation.CurrentMilestonesCleared() {
		_spec.ClearField(component.FieldCurrentMilestones, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(component.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(component.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DrawingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DrawingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AreaCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AreaIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SystemCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SystemIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TestPackageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestPackageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{component.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ComponentUpdateOne is the builder for updating a single Component entity.
type ComponentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ComponentMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ComponentUpdateOne) SetProjectID(v uuid.UUID) *ComponentUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableProjectID(v *uuid.UUID) *ComponentUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetDrawingID sets the "drawing_id" field.
func (_u *ComponentUpdateOne) SetDrawingID(v uuid.UUID) *ComponentUpdateOne {
	_u.mutation.SetDrawingID(v)
	return _u
}

// SetNillableDrawingID sets the "drawing_id" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableDrawingID(v *uuid.UUID) *ComponentUpdateOne {
	if v != nil {
		_u.SetDrawingID(*v)
	}
	return _u
}

// ClearDrawingID clears the value of the "drawing_id" field.
func (_u *ComponentUpdateOne) ClearDrawingID() *ComponentUpdateOne {
	_u.mutation.ClearDrawingID()
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *ComponentUpdateOne) SetAreaID(v uuid.UUID) *ComponentUpdateOne {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableAreaID(v *uuid.UUID) *ComponentUpdateOne {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// ClearAreaID clears the value of the "area_id" field.
func (_u *ComponentUpdateOne) ClearAreaID() *ComponentUpdateOne {
	_u.mutation.ClearAreaID()
	return _u
}

// SetSystemID sets the "system_id" field.
func (_u *ComponentUpdateOne) SetSystemID(v uuid.UUID) *ComponentUpdateOne {
	_u.mutation.SetSystemID(v)
	return _u
}

// SetNillableSystemID sets the "system_id" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableSystemID(v *uuid.UUID) *ComponentUpdateOne {
	if v != nil {
		_u.SetSystemID(*v)
	}
	return _u
}

// ClearSystemID clears the value of the "system_id" field.
func (_u *ComponentUpdateOne) ClearSystemID() *ComponentUpdateOne {
	_u.mutation.ClearSystemID()
	return _u
}

// SetTestPackageID sets the "test_package_id" field.
func (_u *ComponentUpdateOne) SetTestPackageID(v uuid.UUID) *ComponentUpdateOne {
	_u.mutation.SetTestPackageID(v)
	return _u
}

// SetNillableTestPackageID sets the "test_package_id" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableTestPackageID(v *uuid.UUID) *ComponentUpdateOne {
	if v != nil {
		_u.SetTestPackageID(*v)
	}
	return _u
}

// ClearTestPackageID clears the value of the "test_package_id" field.
func (_u *ComponentUpdateOne) ClearTestPackageID() *ComponentUpdateOne {
	_u.mutation.ClearTestPackageID()
	return _u
}

// SetType sets the "type" field.
func (_u *ComponentUpdateOne) SetType(v string) *ComponentUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableType(v *string) *ComponentUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetIdentityKey sets the "identity_key" field.
func (_u *ComponentUpdateOne) SetIdentityKey(v string) *ComponentUpdateOne {
	_u.mutation.SetIdentityKey(v)
	return _u
}

// SetNillableIdentityKey sets the "identity_key" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableIdentityKey(v *string) *ComponentUpdateOne {
	if v != nil {
		_u.SetIdentityKey(*v)
	}
	return _u
}

// SetCommodityCode sets the "commodity_code" field.
func (_u *ComponentUpdateOne) SetCommodityCode(v string) *ComponentUpdateOne {
	_u.mutation.SetCommodityCode(v)
	return _u
}

// SetNillableCommodityCode sets the "commodity_code" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableCommodityCode(v *string) *ComponentUpdateOne {
	if v != nil {
		_u.SetCommodityCode(*v)
	}
	return _u
}

// ClearCommodityCode clears the value of the "commodity_code" field.
func (_u *ComponentUpdateOne) ClearCommodityCode() *ComponentUpdateOne {
	_u.mutation.ClearCommodityCode()
	return _u
}

// SetSpec sets the "spec" field.
func (_u *ComponentUpdateOne) SetSpec(v string) *ComponentUpdateOne {
	_u.mutation.SetSpec(v)
	return _u
}

// SetNillableSpec sets the "spec" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableSpec(v *string) *ComponentUpdateOne {
	if v != nil {
		_u.SetSpec(*v)
	}
	return _u
}

// ClearSpec clears the value of the "spec" field.
func (_u *ComponentUpdateOne) ClearSpec() *ComponentUpdateOne {
	_u.mutation.ClearSpec()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ComponentUpdateOne) SetDescription(v string) *ComponentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableDescription(v *string) *ComponentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ComponentUpdateOne) ClearDescription() *ComponentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSize sets the "size" field.
func (_u *ComponentUpdateOne) SetSize(v string) *ComponentUpdateOne {
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableSize(v *string) *ComponentUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// ClearSize clears the value of the "size" field.
func (_u *ComponentUpdateOne) ClearSize() *ComponentUpdateOne {
	_u.mutation.ClearSize()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *ComponentUpdateOne) SetQuantity(v int) *ComponentUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableQuantity(v *int) *ComponentUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *ComponentUpdateOne) AddQuantity(v int) *ComponentUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetSeq sets the "seq" field.
func (_u *ComponentUpdateOne) SetSeq(v int) *ComponentUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableSeq(v *int) *ComponentUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *ComponentUpdateOne) AddSeq(v int) *ComponentUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetComments sets the "comments" field.
func (_u *ComponentUpdateOne) SetComments(v string) *ComponentUpdateOne {
	_u.mutation.SetComments(v)
	return _u
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableComments(v *string) *ComponentUpdateOne {
	if v != nil {
		_u.SetComments(*v)
	}
	return _u
}

// ClearComments clears the value of the "comments" field.
func (_u *ComponentUpdateOne) ClearComments() *ComponentUpdateOne {
	_u.mutation.ClearComments()
	return _u
}

// SetAttributes sets the "attributes" field.
func (_u *ComponentUpdateOne) SetAttributes(v map[string]string) *ComponentUpdateOne {
	_u.mutation.SetAttributes(v)
	return _u
}

// ClearAttributes clears the value of the "attributes" field.
func (_u *ComponentUpdateOne) ClearAttributes() *ComponentUpdateOne {
	_u.mutation.ClearAttributes()
	return _u
}

// SetCurrentMilestones sets the "current_milestones" field.
func (_u *ComponentUpdateOne) SetCurrentMilestones(v json.RawMessage) *ComponentUpdateOne {
	_u.mutation.SetCurrentMilestones(v)
	return _u
}

// AppendCurrentMilestones appends value to the "current_milestones" field.
func (_u *ComponentUpdateOne) AppendCurrentMilestones(v json.RawMessage) *ComponentUpdateOne {
	_u.mutation.AppendCurrentMilestones(v)
	return _u
}

// ClearCurrentMilestones clears the value of the "current_milestones" field.
func (_u *ComponentUpdateOne) ClearCurrentMilestones() *ComponentUpdateOne {
	_u.mutation.ClearCurrentMilestones()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ComponentUpdateOne) SetCreatedAt(v time.Time) *ComponentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ComponentUpdateOne) SetNillableCreatedAt(v *time.Time) *ComponentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ComponentUpdateOne) SetUpdatedAt(v time.Time) *ComponentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ComponentUpdateOne) SetProject(v *Project) *ComponentUpdateOne {
	return _u.SetProjectID(v.ID)
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_u *ComponentUpdateOne) SetDrawing(v *Drawing) *ComponentUpdateOne {
	return _u.SetDrawingID(v.ID)
}

// SetArea sets the "area" edge to the Area entity.
func (_u *ComponentUpdateOne) SetArea(v *Area) *ComponentUpdateOne {
	return _u.SetAreaID(v.ID)
}

// SetSystem sets the "system" edge to the System entity.
func (_u *ComponentUpdateOne) SetSystem(v *System) *ComponentUpdateOne {
	return _u.SetSystemID(v.ID)
}

// SetTestPackage sets the "test_package" edge to the TestPackage entity.
func (_u *ComponentUpdateOne) SetTestPackage(v *TestPackage) *ComponentUpdateOne {
	return _u.SetTestPackageID(v.ID)
}

// Mutation returns the ComponentMutation object of the builder.
func (_u *ComponentUpdateOne) Mutation() *ComponentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ComponentUpdateOne) ClearProject() *ComponentUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (_u *ComponentUpdateOne) ClearDrawing() *ComponentUpdateOne {
	_u.mutation.ClearDrawing()
	return _u
}

// ClearArea clears the "area" edge to the Area entity.
func (_u *ComponentUpdateOne) ClearArea() *ComponentUpdateOne {
	_u.mutation.ClearArea()
	return _u
}

// ClearSystem clears the "system" edge to the System entity.
func (_u *ComponentUpdateOne) ClearSystem() *ComponentUpdateOne {
	_u.mutation.ClearSystem()
	return _u
}

// ClearTestPackage clears the "test_package" edge to the TestPackage entity.
func (_u *ComponentUpdateOne) ClearTestPackage() *ComponentUpdateOne {
	_u.mutation.ClearTestPackage()
	return _u
}

// Where appends a list predicates to the ComponentUpdate builder.
func (_u *ComponentUpdateOne) Where(ps ...predicate.Component) *ComponentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ComponentUpdateOne) Select(field string, fields ...string) *ComponentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Component entity.
func (_u *ComponentUpdateOne) Save(ctx context.Context) (*Component, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComponentUpdateOne) SaveX(ctx context.Context) *Component {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ComponentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComponentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ComponentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := component.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComponentUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := component.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Component.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IdentityKey(); ok {
		if err := component.IdentityKeyValidator(v); err != nil {
			return &ValidationError{Name: "identity_key", err: fmt.Errorf(`ent: validator failed for field "Component.identity_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := component.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "Component.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Seq(); ok {
		if err := component.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "Component.seq": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Component.project"`)
	}
	return nil
}

func (_u *ComponentUpdateOne) sqlSave(ctx context.Context) (_node *Component, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(component.Table, component.Columns, sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Component.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, component.FieldID)
		for _, f := range fields {
			if !component.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != component.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(component.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdentityKey(); ok {
		_spec.SetField(component.FieldIdentityKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommodityCode(); ok {
		_spec.SetField(component.FieldCommodityCode, field.TypeString, value)
	}
	if _u.mutation.CommodityCodeCleared() {
		_spec.ClearField(component.FieldCommodityCode, field.TypeString)
	}
	if value, ok := _u.mutation.Spec(); ok {
		_spec.SetField(component.FieldSpec, field.TypeString, value)
	}
	if _u.mutation.SpecCleared() {
		_spec.ClearField(component.FieldSpec, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(component.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(component.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(component.FieldSize, field.TypeString, value)
	}
	if _u.mutation.SizeCleared() {
		_spec.ClearField(component.FieldSize, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(component.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(component.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(component.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(component.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Comments(); ok {
		_spec.SetField(component.FieldComments, field.TypeString, value)
	}
	if _u.mutation.CommentsCleared() {
		_spec.ClearField(component.FieldComments, field.TypeString)
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(component.FieldAttributes, field.TypeJSON, value)
	}
	if _u.mutation.AttributesCleared() {
		_spec.ClearField(component.FieldAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentMilestones(); ok {
		_spec.SetField(component.FieldCurrentMilestones, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCurrentMilestones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, component.FieldCurrentMilestones, value)
		})
	}
	if _u.mutation.CurrentMilestonesCleared() {
		_spec.ClearField(component.FieldCurrentMilestones, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(component.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(component.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DrawingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DrawingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AreaCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AreaIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SystemCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SystemIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TestPackageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestPackageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Component{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{component.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
