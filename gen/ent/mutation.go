// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
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

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArea        = "Area"
	TypeComponent   = "Component"
	TypeDrawing     = "Drawing"
	TypeFieldWeld   = "FieldWeld"
	TypeImportJob   = "ImportJob"
	TypeProject     = "Project"
	TypeSystem      = "System"
	TypeTestPackage = "TestPackage"
	TypeWelder      = "Welder"
)

// AreaMutation represents an operation that mutates the Area nodes in the graph.
type AreaMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	description       *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	project           *uuid.UUID
	clearedproject    bool
	drawings          map[uuid.UUID]struct{}
	removeddrawings   map[uuid.UUID]struct{}
	cleareddrawings   bool
	components        map[uuid.UUID]struct{}
	removedcomponents map[uuid.UUID]struct{}
	clearedcomponents bool
	done              bool
	oldValue          func(context.Context) (*Area, error)
	predicates        []predicate.Area
}

var _ ent.Mutation = (*AreaMutation)(nil)

// areaOption allows management of the mutation configuration using functional options.
type areaOption func(*AreaMutation)

// newAreaMutation creates new mutation for the Area entity.
func newAreaMutation(c config, op Op, opts ...areaOption) *AreaMutation {
	m := &AreaMutation{
		config:        c,
		op:            op,
		typ:           TypeArea,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAreaID sets the ID field of the mutation.
func withAreaID(id uuid.UUID) areaOption {
	return func(m *AreaMutation) {
		var (
			err   error
			once  sync.Once
			value *Area
		)
		m.oldValue = func(ctx context.Context) (*Area, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Area.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArea sets the old Area of the mutation.
func withArea(node *Area) areaOption {
	return func(m *AreaMutation) {
		m.oldValue = func(context.Context) (*Area, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AreaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AreaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Area entities.
func (m *AreaMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AreaMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AreaMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Area.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *AreaMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *AreaMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Area entity.
// If the Area object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AreaMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *AreaMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *AreaMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AreaMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Area entity.
// If the Area object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AreaMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AreaMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *AreaMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AreaMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Area entity.
// If the Area object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AreaMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AreaMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[area.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AreaMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[area.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AreaMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, area.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *AreaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AreaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Area entity.
// If the Area object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AreaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AreaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *AreaMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[area.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *AreaMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *AreaMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *AreaMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddDrawingIDs adds the "drawings" edge to the Drawing entity by ids.
func (m *AreaMutation) AddDrawingIDs(ids ...uuid.UUID) {
	if m.drawings == nil {
		m.drawings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.drawings[ids[i]] = struct{}{}
	}
}

// ClearDrawings clears the "drawings" edge to the Drawing entity.
func (m *AreaMutation) ClearDrawings() {
	m.cleareddrawings = true
}

// DrawingsCleared reports if the "drawings" edge to the Drawing entity was cleared.
func (m *AreaMutation) DrawingsCleared() bool {
	return m.cleareddrawings
}

// RemoveDrawingIDs removes the "drawings" edge to the Drawing entity by IDs.
func (m *AreaMutation) RemoveDrawingIDs(ids ...uuid.UUID) {
	if m.removeddrawings == nil {
		m.removeddrawings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.drawings, ids[i])
		m.removeddrawings[ids[i]] = struct{}{}
	}
}

// RemovedDrawings returns the removed IDs of the "drawings" edge to the Drawing entity.
func (m *AreaMutation) RemovedDrawingsIDs() (ids []uuid.UUID) {
	for id := range m.removeddrawings {
		ids = append(ids, id)
	}
	return
}

// DrawingsIDs returns the "drawings" edge IDs in the mutation.
func (m *AreaMutation) DrawingsIDs() (ids []uuid.UUID) {
	for id := range m.drawings {
		ids = append(ids, id)
	}
	return
}

// ResetDrawings resets all changes to the "drawings" edge.
func (m *AreaMutation) ResetDrawings() {
	m.drawings = nil
	m.cleareddrawings = false
	m.removeddrawings = nil
}

// AddComponentIDs adds the "components" edge to the Component entity by ids.
func (m *AreaMutation) AddComponentIDs(ids ...uuid.UUID) {
	if m.components == nil {
		m.components = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.components[ids[i]] = struct{}{}
	}
}

// ClearComponents clears the "components" edge to the Component entity.
func (m *AreaMutation) ClearComponents() {
	m.clearedcomponents = true
}

// ComponentsCleared reports if the "components" edge to the Component entity was cleared.
func (m *AreaMutation) ComponentsCleared() bool {
	return m.clearedcomponents
}

// RemoveComponentIDs removes the "components" edge to the Component entity by IDs.
func (m *AreaMutation) RemoveComponentIDs(ids ...uuid.UUID) {
	if m.removedcomponents == nil {
		m.removedcomponents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.components, ids[i])
		m.removedcomponents[ids[i]] = struct{}{}
	}
}

// RemovedComponents returns the removed IDs of the "components" edge to the Component entity.
func (m *AreaMutation) RemovedComponentsIDs() (ids []uuid.UUID) {
	for id := range m.removedcomponents {
		ids = append(ids, id)
	}
	return
}

// ComponentsIDs returns the "components" edge IDs in the mutation.
func (m *AreaMutation) ComponentsIDs() (ids []uuid.UUID) {
	for id := range m.components {
		ids = append(ids, id)
	}
	return
}

// ResetComponents resets all changes to the "components" edge.
func (m *AreaMutation) ResetComponents() {
	m.components = nil
	m.clearedcomponents = false
	m.removedcomponents = nil
}

// Where appends a list predicates to the AreaMutation builder.
func (m *AreaMutation) Where(ps ...predicate.Area) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AreaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AreaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Area, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AreaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AreaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Area).
func (m *AreaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AreaMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.project != nil {
		fields = append(fields, area.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, area.FieldName)
	}
	if m.description != nil {
		fields = append(fields, area.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, area.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AreaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case area.FieldProjectID:
		return m.ProjectID()
	case area.FieldName:
		return m.Name()
	case area.FieldDescription:
		return m.Description()
	case area.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AreaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case area.FieldProjectID:
		return m.OldProjectID(ctx)
	case area.FieldName:
		return m.OldName(ctx)
	case area.FieldDescription:
		return m.OldDescription(ctx)
	case area.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Area field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AreaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case area.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case area.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case area.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case area.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Area field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AreaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AreaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AreaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Area numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AreaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(area.FieldDescription) {
		fields = append(fields, area.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AreaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AreaMutation) ClearField(name string) error {
	switch name {
	case area.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Area nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AreaMutation) ResetField(name string) error {
	switch name {
	case area.FieldProjectID:
		m.ResetProjectID()
		return nil
	case area.FieldName:
		m.ResetName()
		return nil
	case area.FieldDescription:
		m.ResetDescription()
		return nil
	case area.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Area field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AreaMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, area.EdgeProject)
	}
	if m.drawings != nil {
		edges = append(edges, area.EdgeDrawings)
	}
	if m.components != nil {
		edges = append(edges, area.EdgeComponents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AreaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case area.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case area.EdgeDrawings:
		ids := make([]ent.Value, 0, len(m.drawings))
		for id := range m.drawings {
			ids = append(ids, id)
		}
		return ids
	case area.EdgeComponents:
		ids := make([]ent.Value, 0, len(m.components))
		for id := range m.components {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AreaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddrawings != nil {
		edges = append(edges, area.EdgeDrawings)
	}
	if m.removedcomponents != nil {
		edges = append(edges, area.EdgeComponents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AreaMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case area.EdgeDrawings:
		ids := make([]ent.Value, 0, len(m.removeddrawings))
		for id := range m.removeddrawings {
			ids = append(ids, id)
		}
		return ids
	case area.EdgeComponents:
		ids := make([]ent.Value, 0, len(m.removedcomponents))
		for id := range m.removedcomponents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AreaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, area.EdgeProject)
	}
	if m.cleareddrawings {
		edges = append(edges, area.EdgeDrawings)
	}
	if m.clearedcomponents {
		edges = append(edges, area.EdgeComponents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AreaMutation) EdgeCleared(name string) bool {
	switch name {
	case area.EdgeProject:
		return m.clearedproject
	case area.EdgeDrawings:
		return m.cleareddrawings
	case area.EdgeComponents:
		return m.clearedcomponents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AreaMutation) ClearEdge(name string) error {
	switch name {
	case area.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Area unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AreaMutation) ResetEdge(name string) error {
	switch name {
	case area.EdgeProject:
		m.ResetProject()
		return nil
	case area.EdgeDrawings:
		m.ResetDrawings()
		return nil
	case area.EdgeComponents:
		m.ResetComponents()
		return nil
	}
	return fmt.Errorf("unknown Area edge %s", name)
}

// ComponentMutation represents an operation that mutates the Component nodes in the graph.
type ComponentMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	_type                    *string
	identity_key             *string
	commodity_code           *string
	spec                     *string
	description              *string
	size                     *string
	quantity                 *int
	addquantity              *int
	seq                      *int
	addseq                   *int
	comments                 *string
	attributes               *map[string]string
	current_milestones       *json.RawMessage
	appendcurrent_milestones json.RawMessage
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	project                  *uuid.UUID
	clearedproject           bool
	drawing                  *uuid.UUID
	cleareddrawing           bool
	area                     *uuid.UUID
	clearedarea              bool
	system                   *uuid.UUID
	clearedsystem            bool
	test_package             *uuid.UUID
	clearedtest_package      bool
	done                     bool
	oldValue                 func(context.Context) (*Component, error)
	predicates               []predicate.Component
}

var _ ent.Mutation = (*ComponentMutation)(nil)

// componentOption allows management of the mutation configuration using functional options.
type componentOption func(*ComponentMutation)

// newComponentMutation creates new mutation for the Component entity.
func newComponentMutation(c config, op Op, opts ...componentOption) *ComponentMutation {
	m := &ComponentMutation{
		config:        c,
		op:            op,
		typ:           TypeComponent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withComponentID sets the ID field of the mutation.
func withComponentID(id uuid.UUID) componentOption {
	return func(m *ComponentMutation) {
		var (
			err   error
			once  sync.Once
			value *Component
		)
		m.oldValue = func(ctx context.Context) (*Component, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Component.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComponent sets the old Component of the mutation.
func withComponent(node *Component) componentOption {
	return func(m *ComponentMutation) {
		m.oldValue = func(context.Context) (*Component, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ComponentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ComponentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Component entities.
func (m *ComponentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ComponentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ComponentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Component.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ComponentMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ComponentMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ComponentMutation) ResetProjectID() {
	m.project = nil
}

// SetDrawingID sets the "drawing_id" field.
func (m *ComponentMutation) SetDrawingID(u uuid.UUID) {
	m.drawing = &u
}

// DrawingID returns the value of the "drawing_id" field in the mutation.
func (m *ComponentMutation) DrawingID() (r uuid.UUID, exists bool) {
	v := m.drawing
	if v == nil {
		return
	}
	return *v, true
}

// OldDrawingID returns the old "drawing_id" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldDrawingID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrawingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrawingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrawingID: %w", err)
	}
	return oldValue.DrawingID, nil
}

// ClearDrawingID clears the value of the "drawing_id" field.
func (m *ComponentMutation) ClearDrawingID() {
	m.drawing = nil
	m.clearedFields[component.FieldDrawingID] = struct{}{}
}

// DrawingIDCleared returns if the "drawing_id" field was cleared in this mutation.
func (m *ComponentMutation) DrawingIDCleared() bool {
	_, ok := m.clearedFields[component.FieldDrawingID]
	return ok
}

// ResetDrawingID resets all changes to the "drawing_id" field.
func (m *ComponentMutation) ResetDrawingID() {
	m.drawing = nil
	delete(m.clearedFields, component.FieldDrawingID)
}

// SetAreaID sets the "area_id" field.
func (m *ComponentMutation) SetAreaID(u uuid.UUID) {
	m.area = &u
}

// AreaID returns the value of the "area_id" field in the mutation.
func (m *ComponentMutation) AreaID() (r uuid.UUID, exists bool) {
	v := m.area
	if v == nil {
		return
	}
	return *v, true
}

// OldAreaID returns the old "area_id" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldAreaID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAreaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAreaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAreaID: %w", err)
	}
	return oldValue.AreaID, nil
}

// ClearAreaID clears the value of the "area_id" field.
func (m *ComponentMutation) ClearAreaID() {
	m.area = nil
	m.clearedFields[component.FieldAreaID] = struct{}{}
}

// AreaIDCleared returns if the "area_id" field was cleared in this mutation.
func (m *ComponentMutation) AreaIDCleared() bool {
	_, ok := m.clearedFields[component.FieldAreaID]
	return ok
}

// ResetAreaID resets all changes to the "area_id" field.
func (m *ComponentMutation) ResetAreaID() {
	m.area = nil
	delete(m.clearedFields, component.FieldAreaID)
}

// SetSystemID sets the "system_id" field.
func (m *ComponentMutation) SetSystemID(u uuid.UUID) {
	m.system = &u
}

// SystemID returns the value of the "system_id" field in the mutation.
func (m *ComponentMutation) SystemID() (r uuid.UUID, exists bool) {
	v := m.system
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemID returns the old "system_id" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldSystemID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemID: %w", err)
	}
	return oldValue.SystemID, nil
}

// ClearSystemID clears the value of the "system_id" field.
func (m *ComponentMutation) ClearSystemID() {
	m.system = nil
	m.clearedFields[component.FieldSystemID] = struct{}{}
}

// SystemIDCleared returns if the "system_id" field was cleared in this mutation.
func (m *ComponentMutation) SystemIDCleared() bool {
	_, ok := m.clearedFields[component.FieldSystemID]
	return ok
}

// ResetSystemID resets all changes to the "system_id" field.
func (m *ComponentMutation) ResetSystemID() {
	m.system = nil
	delete(m.clearedFields, component.FieldSystemID)
}

// SetTestPackageID sets the "test_package_id" field.
func (m *ComponentMutation) SetTestPackageID(u uuid.UUID) {
	m.test_package = &u
}

// TestPackageID returns the value of the "test_package_id" field in the mutation.
func (m *ComponentMutation) TestPackageID() (r uuid.UUID, exists bool) {
	v := m.test_package
	if v == nil {
		return
	}
	return *v, true
}

// OldTestPackageID returns the old "test_package_id" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldTestPackageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestPackageID: %w", err)
	}
	return oldValue.TestPackageID, nil
}

// ClearTestPackageID clears the value of the "test_package_id" field.
func (m *ComponentMutation) ClearTestPackageID() {
	m.test_package = nil
	m.clearedFields[component.FieldTestPackageID] = struct{}{}
}

// TestPackageIDCleared returns if the "test_package_id" field was cleared in this mutation.
func (m *ComponentMutation) TestPackageIDCleared() bool {
	_, ok := m.clearedFields[component.FieldTestPackageID]
	return ok
}

// ResetTestPackageID resets all changes to the "test_package_id" field.
func (m *ComponentMutation) ResetTestPackageID() {
	m.test_package = nil
	delete(m.clearedFields, component.FieldTestPackageID)
}

// SetType sets the "type" field.
func (m *ComponentMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *ComponentMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ComponentMutation) ResetType() {
	m._type = nil
}

// SetIdentityKey sets the "identity_key" field.
func (m *ComponentMutation) SetIdentityKey(s string) {
	m.identity_key = &s
}

// IdentityKey returns the value of the "identity_key" field in the mutation.
func (m *ComponentMutation) IdentityKey() (r string, exists bool) {
	v := m.identity_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentityKey returns the old "identity_key" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldIdentityKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentityKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentityKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentityKey: %w", err)
	}
	return oldValue.IdentityKey, nil
}

// ResetIdentityKey resets all changes to the "identity_key" field.
func (m *ComponentMutation) ResetIdentityKey() {
	m.identity_key = nil
}

// SetCommodityCode sets the "commodity_code" field.
func (m *ComponentMutation) SetCommodityCode(s string) {
	m.commodity_code = &s
}

// CommodityCode returns the value of the "commodity_code" field in the mutation.
func (m *ComponentMutation) CommodityCode() (r string, exists bool) {
	v := m.commodity_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCommodityCode returns the old "commodity_code" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldCommodityCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommodityCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommodityCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommodityCode: %w", err)
	}
	return oldValue.CommodityCode, nil
}

// ClearCommodityCode clears the value of the "commodity_code" field.
func (m *ComponentMutation) ClearCommodityCode() {
	m.commodity_code = nil
	m.clearedFields[component.FieldCommodityCode] = struct{}{}
}

// CommodityCodeCleared returns if the "commodity_code" field was cleared in this mutation.
func (m *ComponentMutation) CommodityCodeCleared() bool {
	_, ok := m.clearedFields[component.FieldCommodityCode]
	return ok
}

// ResetCommodityCode resets all changes to the "commodity_code" field.
func (m *ComponentMutation) ResetCommodityCode() {
	m.commodity_code = nil
	delete(m.clearedFields, component.FieldCommodityCode)
}

// SetSpec sets the "spec" field.
func (m *ComponentMutation) SetSpec(s string) {
	m.spec = &s
}

// Spec returns the value of the "spec" field in the mutation.
func (m *ComponentMutation) Spec() (r string, exists bool) {
	v := m.spec
	if v == nil {
		return
	}
	return *v, true
}

// OldSpec returns the old "spec" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldSpec(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpec: %w", err)
	}
	return oldValue.Spec, nil
}

// ClearSpec clears the value of the "spec" field.
func (m *ComponentMutation) ClearSpec() {
	m.spec = nil
	m.clearedFields[component.FieldSpec] = struct{}{}
}

// SpecCleared returns if the "spec" field was cleared in this mutation.
func (m *ComponentMutation) SpecCleared() bool {
	_, ok := m.clearedFields[component.FieldSpec]
	return ok
}

// ResetSpec resets all changes to the "spec" field.
func (m *ComponentMutation) ResetSpec() {
	m.spec = nil
	delete(m.clearedFields, component.FieldSpec)
}

// SetDescription sets the "description" field.
func (m *ComponentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ComponentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ComponentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[component.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ComponentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[component.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ComponentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, component.FieldDescription)
}

// SetSize sets the "size" field.
func (m *ComponentMutation) SetSize(s string) {
	m.size = &s
}

// Size returns the value of the "size" field in the mutation.
func (m *ComponentMutation) Size() (r string, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldSize(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// ClearSize clears the value of the "size" field.
func (m *ComponentMutation) ClearSize() {
	m.size = nil
	m.clearedFields[component.FieldSize] = struct{}{}
}

// SizeCleared returns if the "size" field was cleared in this mutation.
func (m *ComponentMutation) SizeCleared() bool {
	_, ok := m.clearedFields[component.FieldSize]
	return ok
}

// ResetSize resets all changes to the "size" field.
func (m *ComponentMutation) ResetSize() {
	m.size = nil
	delete(m.clearedFields, component.FieldSize)
}

// SetQuantity sets the "quantity" field.
func (m *ComponentMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *ComponentMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *ComponentMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *ComponentMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *ComponentMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetSeq sets the "seq" field.
func (m *ComponentMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *ComponentMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *ComponentMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *ComponentMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *ComponentMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetComments sets the "comments" field.
func (m *ComponentMutation) SetComments(s string) {
	m.comments = &s
}

// Comments returns the value of the "comments" field in the mutation.
func (m *ComponentMutation) Comments() (r string, exists bool) {
	v := m.comments
	if v == nil {
		return
	}
	return *v, true
}

// OldComments returns the old "comments" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldComments(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComments: %w", err)
	}
	return oldValue.Comments, nil
}

// ClearComments clears the value of the "comments" field.
func (m *ComponentMutation) ClearComments() {
	m.comments = nil
	m.clearedFields[component.FieldComments] = struct{}{}
}

// CommentsCleared returns if the "comments" field was cleared in this mutation.
func (m *ComponentMutation) CommentsCleared() bool {
	_, ok := m.clearedFields[component.FieldComments]
	return ok
}

// ResetComments resets all changes to the "comments" field.
func (m *ComponentMutation) ResetComments() {
	m.comments = nil
	delete(m.clearedFields, component.FieldComments)
}

// SetAttributes sets the "attributes" field.
func (m *ComponentMutation) SetAttributes(value map[string]string) {
	m.attributes = &value
}

// Attributes returns the value of the "attributes" field in the mutation.
func (m *ComponentMutation) Attributes() (r map[string]string, exists bool) {
	v := m.attributes
	if v == nil {
		return
	}
	return *v, true
}

// OldAttributes returns the old "attributes" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldAttributes(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttributes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttributes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttributes: %w", err)
	}
	return oldValue.Attributes, nil
}

// ClearAttributes clears the value of the "attributes" field.
func (m *ComponentMutation) ClearAttributes() {
	m.attributes = nil
	m.clearedFields[component.FieldAttributes] = struct{}{}
}

// AttributesCleared returns if the "attributes" field was cleared in this mutation.
func (m *ComponentMutation) AttributesCleared() bool {
	_, ok := m.clearedFields[component.FieldAttributes]
	return ok
}

// ResetAttributes resets all changes to the "attributes" field.
func (m *ComponentMutation) ResetAttributes() {
	m.attributes = nil
	delete(m.clearedFields, component.FieldAttributes)
}

// SetCurrentMilestones sets the "current_milestones" field.
func (m *ComponentMutation) SetCurrentMilestones(jm json.RawMessage) {
	m.current_milestones = &jm
	m.appendcurrent_milestones = nil
}

// CurrentMilestones returns the value of the "current_milestones" field in the mutation.
func (m *ComponentMutation) CurrentMilestones() (r json.RawMessage, exists bool) {
	v := m.current_milestones
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentMilestones returns the old "current_milestones" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldCurrentMilestones(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentMilestones is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentMilestones requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentMilestones: %w", err)
	}
	return oldValue.CurrentMilestones, nil
}

// AppendCurrentMilestones adds jm to the "current_milestones" field.
func (m *ComponentMutation) AppendCurrentMilestones(jm json.RawMessage) {
	m.appendcurrent_milestones = append(m.appendcurrent_milestones, jm...)
}

// AppendedCurrentMilestones returns the list of values that were appended to the "current_milestones" field in this mutation.
func (m *ComponentMutation) AppendedCurrentMilestones() (json.RawMessage, bool) {
	if len(m.appendcurrent_milestones) == 0 {
		return nil, false
	}
	return m.appendcurrent_milestones, true
}

// ClearCurrentMilestones clears the value of the "current_milestones" field.
func (m *ComponentMutation) ClearCurrentMilestones() {
	m.current_milestones = nil
	m.appendcurrent_milestones = nil
	m.clearedFields[component.FieldCurrentMilestones] = struct{}{}
}

// CurrentMilestonesCleared returns if the "current_milestones" field was cleared in this mutation.
func (m *ComponentMutation) CurrentMilestonesCleared() bool {
	_, ok := m.clearedFields[component.FieldCurrentMilestones]
	return ok
}

// ResetCurrentMilestones resets all changes to the "current_milestones" field.
func (m *ComponentMutation) ResetCurrentMilestones() {
	m.current_milestones = nil
	m.appendcurrent_milestones = nil
	delete(m.clearedFields, component.FieldCurrentMilestones)
}

// SetCreatedAt sets the "created_at" field.
func (m *ComponentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ComponentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ComponentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ComponentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ComponentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Component entity.
// If the Component object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComponentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ComponentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ComponentMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[component.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ComponentMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ComponentMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ComponentMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (m *ComponentMutation) ClearDrawing() {
	m.cleareddrawing = true
	m.clearedFields[component.FieldDrawingID] = struct{}{}
}

// DrawingCleared reports if the "drawing" edge to the Drawing entity was cleared.
func (m *ComponentMutation) DrawingCleared() bool {
	return m.DrawingIDCleared() || m.cleareddrawing
}

// DrawingIDs returns the "drawing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DrawingID instead. It exists only for internal usage by the builders.
func (m *ComponentMutation) DrawingIDs() (ids []uuid.UUID) {
	if id := m.drawing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDrawing resets all changes to the "drawing" edge.
func (m *ComponentMutation) ResetDrawing() {
	m.drawing = nil
	m.cleareddrawing = false
}

// ClearArea clears the "area" edge to the Area entity.
func (m *ComponentMutation) ClearArea() {
	m.clearedarea = true
	m.clearedFields[component.FieldAreaID] = struct{}{}
}

// AreaCleared reports if the "area" edge to the Area entity was cleared.
func (m *ComponentMutation) AreaCleared() bool {
	return m.AreaIDCleared() || m.clearedarea
}

// AreaIDs returns the "area" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AreaID instead. It exists only for internal usage by the builders.
func (m *ComponentMutation) AreaIDs() (ids []uuid.UUID) {
	if id := m.area; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArea resets all changes to the "area" edge.
func (m *ComponentMutation) ResetArea() {
	m.area = nil
	m.clearedarea = false
}

// ClearSystem clears the "system" edge to the System entity.
func (m *ComponentMutation) ClearSystem() {
	m.clearedsystem = true
	m.clearedFields[component.FieldSystemID] = struct{}{}
}

// SystemCleared reports if the "system" edge to the System entity was cleared.
func (m *ComponentMutation) SystemCleared() bool {
	return m.SystemIDCleared() || m.clearedsystem
}

// SystemIDs returns the "system" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SystemID instead. It exists only for internal usage by the builders.
func (m *ComponentMutation) SystemIDs() (ids []uuid.UUID) {
	if id := m.system; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSystem resets all changes to the "system" edge.
func (m *ComponentMutation) ResetSystem() {
	m.system = nil
	m.clearedsystem = false
}

// ClearTestPackage clears the "test_package" edge to the TestPackage entity.
func (m *ComponentMutation) ClearTestPackage() {
	m.clearedtest_package = true
	m.clearedFields[component.FieldTestPackageID] = struct{}{}
}

// TestPackageCleared reports if the "test_package" edge to the TestPackage entity was cleared.
func (m *ComponentMutation) TestPackageCleared() bool {
	return m.TestPackageIDCleared() || m.clearedtest_package
}

// TestPackageIDs returns the "test_package" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TestPackageID instead. It exists only for internal usage by the builders.
func (m *ComponentMutation) TestPackageIDs() (ids []uuid.UUID) {
	if id := m.test_package; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTestPackage resets all changes to the "test_package" edge.
func (m *ComponentMutation) ResetTestPackage() {
	m.test_package = nil
	m.clearedtest_package = false
}

// Where appends a list predicates to the ComponentMutation builder.
func (m *ComponentMutation) Where(ps ...predicate.Component) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ComponentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ComponentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Component, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ComponentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ComponentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Component).
func (m *ComponentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ComponentMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.project != nil {
		fields = append(fields, component.FieldProjectID)
	}
	if m.drawing != nil {
		fields = append(fields, component.FieldDrawingID)
	}
	if m.area != nil {
		fields = append(fields, component.FieldAreaID)
	}
	if m.system != nil {
		fields = append(fields, component.FieldSystemID)
	}
	if m.test_package != nil {
		fields = append(fields, component.FieldTestPackageID)
	}
	if m._type != nil {
		fields = append(fields, component.FieldType)
	}
	if m.identity_key != nil {
		fields = append(fields, component.FieldIdentityKey)
	}
	if m.commodity_code != nil {
		fields = append(fields, component.FieldCommodityCode)
	}
	if m.spec != nil {
		fields = append(fields, component.FieldSpec)
	}
	if m.description != nil {
		fields = append(fields, component.FieldDescription)
	}
	if m.size != nil {
		fields = append(fields, component.FieldSize)
	}
	if m.quantity != nil {
		fields = append(fields, component.FieldQuantity)
	}
	if m.seq != nil {
		fields = append(fields, component.FieldSeq)
	}
	if m.comments != nil {
		fields = append(fields, component.FieldComments)
	}
	if m.attributes != nil {
		fields = append(fields, component.FieldAttributes)
	}
	if m.current_milestones != nil {
		fields = append(fields, component.FieldCurrentMilestones)
	}
	if m.created_at != nil {
		fields = append(fields, component.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, component.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ComponentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case component.FieldProjectID:
		return m.ProjectID()
	case component.FieldDrawingID:
		return m.DrawingID()
	case component.FieldAreaID:
		return m.AreaID()
	case component.FieldSystemID:
		return m.SystemID()
	case component.FieldTestPackageID:
		return m.TestPackageID()
	case component.FieldType:
		return m.GetType()
	case component.FieldIdentityKey:
		return m.IdentityKey()
	case component.FieldCommodityCode:
		return m.CommodityCode()
	case component.FieldSpec:
		return m.Spec()
	case component.FieldDescription:
		return m.Description()
	case component.FieldSize:
		return m.Size()
	case component.FieldQuantity:
		return m.Quantity()
	case component.FieldSeq:
		return m.Seq()
	case component.FieldComments:
		return m.Comments()
	case component.FieldAttributes:
		return m.Attributes()
	case component.FieldCurrentMilestones:
		return m.CurrentMilestones()
	case component.FieldCreatedAt:
		return m.CreatedAt()
	case component.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ComponentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case component.FieldProjectID:
		return m.OldProjectID(ctx)
	case component.FieldDrawingID:
		return m.OldDrawingID(ctx)
	case component.FieldAreaID:
		return m.OldAreaID(ctx)
	case component.FieldSystemID:
		return m.OldSystemID(ctx)
	case component.FieldTestPackageID:
		return m.OldTestPackageID(ctx)
	case component.FieldType:
		return m.OldType(ctx)
	case component.FieldIdentityKey:
		return m.OldIdentityKey(ctx)
	case component.FieldCommodityCode:
		return m.OldCommodityCode(ctx)
	case component.FieldSpec:
		return m.OldSpec(ctx)
	case component.FieldDescription:
		return m.OldDescription(ctx)
	case component.FieldSize:
		return m.OldSize(ctx)
	case component.FieldQuantity:
		return m.OldQuantity(ctx)
	case component.FieldSeq:
		return m.OldSeq(ctx)
	case component.FieldComments:
		return m.OldComments(ctx)
	case component.FieldAttributes:
		return m.OldAttributes(ctx)
	case component.FieldCurrentMilestones:
		return m.OldCurrentMilestones(ctx)
	case component.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case component.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Component field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComponentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case component.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case component.FieldDrawingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrawingID(v)
		return nil
	case component.FieldAreaID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAreaID(v)
		return nil
	case component.FieldSystemID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemID(v)
		return nil
	case component.FieldTestPackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestPackageID(v)
		return nil
	case component.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case component.FieldIdentityKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentityKey(v)
		return nil
	case component.FieldCommodityCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommodityCode(v)
		return nil
	case component.FieldSpec:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpec(v)
		return nil
	case component.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case component.FieldSize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case component.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case component.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case component.FieldComments:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComments(v)
		return nil
	case component.FieldAttributes:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttributes(v)
		return nil
	case component.FieldCurrentMilestones:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentMilestones(v)
		return nil
	case component.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case component.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Component field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ComponentMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, component.FieldQuantity)
	}
	if m.addseq != nil {
		fields = append(fields, component.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ComponentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case component.FieldQuantity:
		return m.AddedQuantity()
	case component.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComponentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case component.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case component.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Component numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ComponentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(component.FieldDrawingID) {
		fields = append(fields, component.FieldDrawingID)
	}
	if m.FieldCleared(component.FieldAreaID) {
		fields = append(fields, component.FieldAreaID)
	}
	if m.FieldCleared(component.FieldSystemID) {
		fields = append(fields, component.FieldSystemID)
	}
	if m.FieldCleared(component.FieldTestPackageID) {
		fields = append(fields, component.FieldTestPackageID)
	}
	if m.FieldCleared(component.FieldCommodityCode) {
		fields = append(fields, component.FieldCommodityCode)
	}
	if m.FieldCleared(component.FieldSpec) {
		fields = append(fields, component.FieldSpec)
	}
	if m.FieldCleared(component.FieldDescription) {
		fields = append(fields, component.FieldDescription)
	}
	if m.FieldCleared(component.FieldSize) {
		fields = append(fields, component.FieldSize)
	}
	if m.FieldCleared(component.FieldComments) {
		fields = append(fields, component.FieldComments)
	}
	if m.FieldCleared(component.FieldAttributes) {
		fields = append(fields, component.FieldAttributes)
	}
	if m.FieldCleared(component.FieldCurrentMilestones) {
		fields = append(fields, component.FieldCurrentMilestones)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ComponentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ComponentMutation) ClearField(name string) error {
	switch name {
	case component.FieldDrawingID:
		m.ClearDrawingID()
		return nil
	case component.FieldAreaID:
		m.ClearAreaID()
		return nil
	case component.FieldSystemID:
		m.ClearSystemID()
		return nil
	case component.FieldTestPackageID:
		m.ClearTestPackageID()
		return nil
	case component.FieldCommodityCode:
		m.ClearCommodityCode()
		return nil
	case component.FieldSpec:
		m.ClearSpec()
		return nil
	case component.FieldDescription:
		m.ClearDescription()
		return nil
	case component.FieldSize:
		m.ClearSize()
		return nil
	case component.FieldComments:
		m.ClearComments()
		return nil
	case component.FieldAttributes:
		m.ClearAttributes()
		return nil
	case component.FieldCurrentMilestones:
		m.ClearCurrentMilestones()
		return nil
	}
	return fmt.Errorf("unknown Component nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ComponentMutation) ResetField(name string) error {
	switch name {
	case component.FieldProjectID:
		m.ResetProjectID()
		return nil
	case component.FieldDrawingID:
		m.ResetDrawingID()
		return nil
	case component.FieldAreaID:
		m.ResetAreaID()
		return nil
	case component.FieldSystemID:
		m.ResetSystemID()
		return nil
	case component.FieldTestPackageID:
		m.ResetTestPackageID()
		return nil
	case component.FieldType:
		m.ResetType()
		return nil
	case component.FieldIdentityKey:
		m.ResetIdentityKey()
		return nil
	case component.FieldCommodityCode:
		m.ResetCommodityCode()
		return nil
	case component.FieldSpec:
		m.ResetSpec()
		return nil
	case component.FieldDescription:
		m.ResetDescription()
		return nil
	case component.FieldSize:
		m.ResetSize()
		return nil
	case component.FieldQuantity:
		m.ResetQuantity()
		return nil
	case component.FieldSeq:
		m.ResetSeq()
		return nil
	case component.FieldComments:
		m.ResetComments()
		return nil
	case component.FieldAttributes:
		m.ResetAttributes()
		return nil
	case component.FieldCurrentMilestones:
		m.ResetCurrentMilestones()
		return nil
	case component.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case component.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Component field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ComponentMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.project != nil {
		edges = append(edges, component.EdgeProject)
	}
	if m.drawing != nil {
		edges = append(edges, component.EdgeDrawing)
	}
	if m.area != nil {
		edges = append(edges, component.EdgeArea)
	}
	if m.system != nil {
		edges = append(edges, component.EdgeSystem)
	}
	if m.test_package != nil {
		edges = append(edges, component.EdgeTestPackage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ComponentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case component.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case component.EdgeDrawing:
		if id := m.drawing; id != nil {
			return []ent.Value{*id}
		}
	case component.EdgeArea:
		if id := m.area; id != nil {
			return []ent.Value{*id}
		}
	case component.EdgeSystem:
		if id := m.system; id != nil {
			return []ent.Value{*id}
		}
	case component.EdgeTestPackage:
		if id := m.test_package; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ComponentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ComponentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ComponentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedproject {
		edges = append(edges, component.EdgeProject)
	}
	if m.cleareddrawing {
		edges = append(edges, component.EdgeDrawing)
	}
	if m.clearedarea {
		edges = append(edges, component.EdgeArea)
	}
	if m.clearedsystem {
		edges = append(edges, component.EdgeSystem)
	}
	if m.clearedtest_package {
		edges = append(edges, component.EdgeTestPackage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ComponentMutation) EdgeCleared(name string) bool {
	switch name {
	case component.EdgeProject:
		return m.clearedproject
	case component.EdgeDrawing:
		return m.cleareddrawing
	case component.EdgeArea:
		return m.clearedarea
	case component.EdgeSystem:
		return m.clearedsystem
	case component.EdgeTestPackage:
		return m.clearedtest_package
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ComponentMutation) ClearEdge(name string) error {
	switch name {
	case component.EdgeProject:
		m.ClearProject()
		return nil
	case component.EdgeDrawing:
		m.ClearDrawing()
		return nil
	case component.EdgeArea:
		m.ClearArea()
		return nil
	case component.EdgeSystem:
		m.ClearSystem()
		return nil
	case component.EdgeTestPackage:
		m.ClearTestPackage()
		return nil
	}
	return fmt.Errorf("unknown Component unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ComponentMutation) ResetEdge(name string) error {
	switch name {
	case component.EdgeProject:
		m.ResetProject()
		return nil
	case component.EdgeDrawing:
		m.ResetDrawing()
		return nil
	case component.EdgeArea:
		m.ResetArea()
		return nil
	case component.EdgeSystem:
		m.ResetSystem()
		return nil
	case component.EdgeTestPackage:
		m.ResetTestPackage()
		return nil
	}
	return fmt.Errorf("unknown Component edge %s", name)
}

// DrawingMutation represents an operation that mutates the Drawing nodes in the graph.
type DrawingMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	number             *string
	norm_number        *string
	title              *string
	revision           *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	project            *uuid.UUID
	clearedproject     bool
	area               *uuid.UUID
	clearedarea        bool
	system             *uuid.UUID
	clearedsystem      bool
	components         map[uuid.UUID]struct{}
	removedcomponents  map[uuid.UUID]struct{}
	clearedcomponents  bool
	field_welds        map[uuid.UUID]struct{}
	removedfield_welds map[uuid.UUID]struct{}
	clearedfield_welds bool
	done               bool
	oldValue           func(context.Context) (*Drawing, error)
	predicates         []predicate.Drawing
}

var _ ent.Mutation = (*DrawingMutation)(nil)

// drawingOption allows management of the mutation configuration using functional options.
type drawingOption func(*DrawingMutation)

// newDrawingMutation creates new mutation for the Drawing entity.
func newDrawingMutation(c config, op Op, opts ...drawingOption) *DrawingMutation {
	m := &DrawingMutation{
		config:        c,
		op:            op,
		typ:           TypeDrawing,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDrawingID sets the ID field of the mutation.
func withDrawingID(id uuid.UUID) drawingOption {
	return func(m *DrawingMutation) {
		var (
			err   error
			once  sync.Once
			value *Drawing
		)
		m.oldValue = func(ctx context.Context) (*Drawing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Drawing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDrawing sets the old Drawing of the mutation.
func withDrawing(node *Drawing) drawingOption {
	return func(m *DrawingMutation) {
		m.oldValue = func(context.Context) (*Drawing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DrawingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DrawingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Drawing entities.
func (m *DrawingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DrawingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DrawingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Drawing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *DrawingMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *DrawingMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *DrawingMutation) ResetProjectID() {
	m.project = nil
}

// SetAreaID sets the "area_id" field.
func (m *DrawingMutation) SetAreaID(u uuid.UUID) {
	m.area = &u
}

// AreaID returns the value of the "area_id" field in the mutation.
func (m *DrawingMutation) AreaID() (r uuid.UUID, exists bool) {
	v := m.area
	if v == nil {
		return
	}
	return *v, true
}

// OldAreaID returns the old "area_id" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldAreaID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAreaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAreaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAreaID: %w", err)
	}
	return oldValue.AreaID, nil
}

// ClearAreaID clears the value of the "area_id" field.
func (m *DrawingMutation) ClearAreaID() {
	m.area = nil
	m.clearedFields[drawing.FieldAreaID] = struct{}{}
}

// AreaIDCleared returns if the "area_id" field was cleared in this mutation.
func (m *DrawingMutation) AreaIDCleared() bool {
	_, ok := m.clearedFields[drawing.FieldAreaID]
	return ok
}

// ResetAreaID resets all changes to the "area_id" field.
func (m *DrawingMutation) ResetAreaID() {
	m.area = nil
	delete(m.clearedFields, drawing.FieldAreaID)
}

// SetSystemID sets the "system_id" field.
func (m *DrawingMutation) SetSystemID(u uuid.UUID) {
	m.system = &u
}

// SystemID returns the value of the "system_id" field in the mutation.
func (m *DrawingMutation) SystemID() (r uuid.UUID, exists bool) {
	v := m.system
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemID returns the old "system_id" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldSystemID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemID: %w", err)
	}
	return oldValue.SystemID, nil
}

// ClearSystemID clears the value of the "system_id" field.
func (m *DrawingMutation) ClearSystemID() {
	m.system = nil
	m.clearedFields[drawing.FieldSystemID] = struct{}{}
}

// SystemIDCleared returns if the "system_id" field was cleared in this mutation.
func (m *DrawingMutation) SystemIDCleared() bool {
	_, ok := m.clearedFields[drawing.FieldSystemID]
	return ok
}

// ResetSystemID resets all changes to the "system_id" field.
func (m *DrawingMutation) ResetSystemID() {
	m.system = nil
	delete(m.clearedFields, drawing.FieldSystemID)
}

// SetNumber sets the "number" field.
func (m *DrawingMutation) SetNumber(s string) {
	m.number = &s
}

// Number returns the value of the "number" field in the mutation.
func (m *DrawingMutation) Number() (r string, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// ResetNumber resets all changes to the "number" field.
func (m *DrawingMutation) ResetNumber() {
	m.number = nil
}

// SetNormNumber sets the "norm_number" field.
func (m *DrawingMutation) SetNormNumber(s string) {
	m.norm_number = &s
}

// NormNumber returns the value of the "norm_number" field in the mutation.
func (m *DrawingMutation) NormNumber() (r string, exists bool) {
	v := m.norm_number
	if v == nil {
		return
	}
	return *v, true
}

// OldNormNumber returns the old "norm_number" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldNormNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormNumber: %w", err)
	}
	return oldValue.NormNumber, nil
}

// ResetNormNumber resets all changes to the "norm_number" field.
func (m *DrawingMutation) ResetNormNumber() {
	m.norm_number = nil
}

// SetTitle sets the "title" field.
func (m *DrawingMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DrawingMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *DrawingMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[drawing.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *DrawingMutation) TitleCleared() bool {
	_, ok := m.clearedFields[drawing.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *DrawingMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, drawing.FieldTitle)
}

// SetRevision sets the "revision" field.
func (m *DrawingMutation) SetRevision(s string) {
	m.revision = &s
}

// Revision returns the value of the "revision" field in the mutation.
func (m *DrawingMutation) Revision() (r string, exists bool) {
	v := m.revision
	if v == nil {
		return
	}
	return *v, true
}

// OldRevision returns the old "revision" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldRevision(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevision: %w", err)
	}
	return oldValue.Revision, nil
}

// ClearRevision clears the value of the "revision" field.
func (m *DrawingMutation) ClearRevision() {
	m.revision = nil
	m.clearedFields[drawing.FieldRevision] = struct{}{}
}

// RevisionCleared returns if the "revision" field was cleared in this mutation.
func (m *DrawingMutation) RevisionCleared() bool {
	_, ok := m.clearedFields[drawing.FieldRevision]
	return ok
}

// ResetRevision resets all changes to the "revision" field.
func (m *DrawingMutation) ResetRevision() {
	m.revision = nil
	delete(m.clearedFields, drawing.FieldRevision)
}

// SetCreatedAt sets the "created_at" field.
func (m *DrawingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DrawingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DrawingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DrawingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DrawingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DrawingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *DrawingMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[drawing.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *DrawingMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *DrawingMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *DrawingMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearArea clears the "area" edge to the Area entity.
func (m *DrawingMutation) ClearArea() {
	m.clearedarea = true
	m.clearedFields[drawing.FieldAreaID] = struct{}{}
}

// AreaCleared reports if the "area" edge to the Area entity was cleared.
func (m *DrawingMutation) AreaCleared() bool {
	return m.AreaIDCleared() || m.clearedarea
}

// AreaIDs returns the "area" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AreaID instead. It exists only for internal usage by the builders.
func (m *DrawingMutation) AreaIDs() (ids []uuid.UUID) {
	if id := m.area; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArea resets all changes to the "area" edge.
func (m *DrawingMutation) ResetArea() {
	m.area = nil
	m.clearedarea = false
}

// ClearSystem clears the "system" edge to the System entity.
func (m *DrawingMutation) ClearSystem() {
	m.clearedsystem = true
	m.clearedFields[drawing.FieldSystemID] = struct{}{}
}

// SystemCleared reports if the "system" edge to the System entity was cleared.
func (m *DrawingMutation) SystemCleared() bool {
	return m.SystemIDCleared() || m.clearedsystem
}

// SystemIDs returns the "system" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SystemID instead. It exists only for internal usage by the builders.
func (m *DrawingMutation) SystemIDs() (ids []uuid.UUID) {
	if id := m.system; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSystem resets all changes to the "system" edge.
func (m *DrawingMutation) ResetSystem() {
	m.system = nil
	m.clearedsystem = false
}

// AddComponentIDs adds the "components" edge to the Component entity by ids.
func (m *DrawingMutation) AddComponentIDs(ids ...uuid.UUID) {
	if m.components == nil {
		m.components = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.components[ids[i]] = struct{}{}
	}
}

// ClearComponents clears the "components" edge to the Component entity.
func (m *DrawingMutation) ClearComponents() {
	m.clearedcomponents = true
}

// ComponentsCleared reports if the "components" edge to the Component entity was cleared.
func (m *DrawingMutation) ComponentsCleared() bool {
	return m.clearedcomponents
}

// RemoveComponentIDs removes the "components" edge to the Component entity by IDs.
func (m *DrawingMutation) RemoveComponentIDs(ids ...uuid.UUID) {
	if m.removedcomponents == nil {
		m.removedcomponents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.components, ids[i])
		m.removedcomponents[ids[i]] = struct{}{}
	}
}

// RemovedComponents returns the removed IDs of the "components" edge to the Component entity.
func (m *DrawingMutation) RemovedComponentsIDs() (ids []uuid.UUID) {
	for id := range m.removedcomponents {
		ids = append(ids, id)
	}
	return
}

// ComponentsIDs returns the "components" edge IDs in the mutation.
func (m *DrawingMutation) ComponentsIDs() (ids []uuid.UUID) {
	for id := range m.components {
		ids = append(ids, id)
	}
	return
}

// ResetComponents resets all changes to the "components" edge.
func (m *DrawingMutation) ResetComponents() {
	m.components = nil
	m.clearedcomponents = false
	m.removedcomponents = nil
}

// AddFieldWeldIDs adds the "field_welds" edge to the FieldWeld entity by ids.
func (m *DrawingMutation) AddFieldWeldIDs(ids ...uuid.UUID) {
	if m.field_welds == nil {
		m.field_welds = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.field_welds[ids[i]] = struct{}{}
	}
}

// ClearFieldWelds clears the "field_welds" edge to the FieldWeld entity.
func (m *DrawingMutation) ClearFieldWelds() {
	m.clearedfield_welds = true
}

// FieldWeldsCleared reports if the "field_welds" edge to the FieldWeld entity was cleared.
func (m *DrawingMutation) FieldWeldsCleared() bool {
	return m.clearedfield_welds
}

// RemoveFieldWeldIDs removes the "field_welds" edge to the FieldWeld entity by IDs.
func (m *DrawingMutation) RemoveFieldWeldIDs(ids ...uuid.UUID) {
	if m.removedfield_welds == nil {
		m.removedfield_welds = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.field_welds, ids[i])
		m.removedfield_welds[ids[i]] = struct{}{}
	}
}

// RemovedFieldWelds returns the removed IDs of the "field_welds" edge to the FieldWeld entity.
func (m *DrawingMutation) RemovedFieldWeldsIDs() (ids []uuid.UUID) {
	for id := range m.removedfield_welds {
		ids = append(ids, id)
	}
	return
}

// FieldWeldsIDs returns the "field_welds" edge IDs in the mutation.
func (m *DrawingMutation) FieldWeldsIDs() (ids []uuid.UUID) {
	for id := range m.field_welds {
		ids = append(ids, id)
	}
	return
}

// ResetFieldWelds resets all changes to the "field_welds" edge.
func (m *DrawingMutation) ResetFieldWelds() {
	m.field_welds = nil
	m.clearedfield_welds = false
	m.removedfield_welds = nil
}

// Where appends a list predicates to the DrawingMutation builder.
func (m *DrawingMutation) Where(ps ...predicate.Drawing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DrawingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DrawingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Drawing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DrawingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DrawingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Drawing).
func (m *DrawingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DrawingMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.project != nil {
		fields = append(fields, drawing.FieldProjectID)
	}
	if m.area != nil {
		fields = append(fields, drawing.FieldAreaID)
	}
	if m.system != nil {
		fields = append(fields, drawing.FieldSystemID)
	}
	if m.number != nil {
		fields = append(fields, drawing.FieldNumber)
	}
	if m.norm_number != nil {
		fields = append(fields, drawing.FieldNormNumber)
	}
	if m.title != nil {
		fields = append(fields, drawing.FieldTitle)
	}
	if m.revision != nil {
		fields = append(fields, drawing.FieldRevision)
	}
	if m.created_at != nil {
		fields = append(fields, drawing.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, drawing.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DrawingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case drawing.FieldProjectID:
		return m.ProjectID()
	case drawing.FieldAreaID:
		return m.AreaID()
	case drawing.FieldSystemID:
		return m.SystemID()
	case drawing.FieldNumber:
		return m.Number()
	case drawing.FieldNormNumber:
		return m.NormNumber()
	case drawing.FieldTitle:
		return m.Title()
	case drawing.FieldRevision:
		return m.Revision()
	case drawing.FieldCreatedAt:
		return m.CreatedAt()
	case drawing.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DrawingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case drawing.FieldProjectID:
		return m.OldProjectID(ctx)
	case drawing.FieldAreaID:
		return m.OldAreaID(ctx)
	case drawing.FieldSystemID:
		return m.OldSystemID(ctx)
	case drawing.FieldNumber:
		return m.OldNumber(ctx)
	case drawing.FieldNormNumber:
		return m.OldNormNumber(ctx)
	case drawing.FieldTitle:
		return m.OldTitle(ctx)
	case drawing.FieldRevision:
		return m.OldRevision(ctx)
	case drawing.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case drawing.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Drawing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DrawingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case drawing.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case drawing.FieldAreaID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAreaID(v)
		return nil
	case drawing.FieldSystemID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemID(v)
		return nil
	case drawing.FieldNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case drawing.FieldNormNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormNumber(v)
		return nil
	case drawing.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case drawing.FieldRevision:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevision(v)
		return nil
	case drawing.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case drawing.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Drawing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DrawingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DrawingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DrawingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Drawing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DrawingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(drawing.FieldAreaID) {
		fields = append(fields, drawing.FieldAreaID)
	}
	if m.FieldCleared(drawing.FieldSystemID) {
		fields = append(fields, drawing.FieldSystemID)
	}
	if m.FieldCleared(drawing.FieldTitle) {
		fields = append(fields, drawing.FieldTitle)
	}
	if m.FieldCleared(drawing.FieldRevision) {
		fields = append(fields, drawing.FieldRevision)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DrawingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DrawingMutation) ClearField(name string) error {
	switch name {
	case drawing.FieldAreaID:
		m.ClearAreaID()
		return nil
	case drawing.FieldSystemID:
		m.ClearSystemID()
		return nil
	case drawing.FieldTitle:
		m.ClearTitle()
		return nil
	case drawing.FieldRevision:
		m.ClearRevision()
		return nil
	}
	return fmt.Errorf("unknown Drawing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DrawingMutation) ResetField(name string) error {
	switch name {
	case drawing.FieldProjectID:
		m.ResetProjectID()
		return nil
	case drawing.FieldAreaID:
		m.ResetAreaID()
		return nil
	case drawing.FieldSystemID:
		m.ResetSystemID()
		return nil
	case drawing.FieldNumber:
		m.ResetNumber()
		return nil
	case drawing.FieldNormNumber:
		m.ResetNormNumber()
		return nil
	case drawing.FieldTitle:
		m.ResetTitle()
		return nil
	case drawing.FieldRevision:
		m.ResetRevision()
		return nil
	case drawing.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case drawing.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Drawing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DrawingMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.project != nil {
		edges = append(edges, drawing.EdgeProject)
	}
	if m.area != nil {
		edges = append(edges, drawing.EdgeArea)
	}
	if m.system != nil {
		edges = append(edges, drawing.EdgeSystem)
	}
	if m.components != nil {
		edges = append(edges, drawing.EdgeComponents)
	}
	if m.field_welds != nil {
		edges = append(edges, drawing.EdgeFieldWelds)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DrawingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case drawing.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case drawing.EdgeArea:
		if id := m.area; id != nil {
			return []ent.Value{*id}
		}
	case drawing.EdgeSystem:
		if id := m.system; id != nil {
			return []ent.Value{*id}
		}
	case drawing.EdgeComponents:
		ids := make([]ent.Value, 0, len(m.components))
		for id := range m.components {
			ids = append(ids, id)
		}
		return ids
	case drawing.EdgeFieldWelds:
		ids := make([]ent.Value, 0, len(m.field_welds))
		for id := range m.field_welds {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DrawingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedcomponents != nil {
		edges = append(edges, drawing.EdgeComponents)
	}
	if m.removedfield_welds != nil {
		edges = append(edges, drawing.EdgeFieldWelds)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DrawingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case drawing.EdgeComponents:
		ids := make([]ent.Value, 0, len(m.removedcomponents))
		for id := range m.removedcomponents {
			ids = append(ids, id)
		}
		return ids
	case drawing.EdgeFieldWelds:
		ids := make([]ent.Value, 0, len(m.removedfield_welds))
		for id := range m.removedfield_welds {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DrawingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedproject {
		edges = append(edges, drawing.EdgeProject)
	}
	if m.clearedarea {
		edges = append(edges, drawing.EdgeArea)
	}
	if m.clearedsystem {
		edges = append(edges, drawing.EdgeSystem)
	}
	if m.clearedcomponents {
		edges = append(edges, drawing.EdgeComponents)
	}
	if m.clearedfield_welds {
		edges = append(edges, drawing.EdgeFieldWelds)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DrawingMutation) EdgeCleared(name string) bool {
	switch name {
	case drawing.EdgeProject:
		return m.clearedproject
	case drawing.EdgeArea:
		return m.clearedarea
	case drawing.EdgeSystem:
		return m.clearedsystem
	case drawing.EdgeComponents:
		return m.clearedcomponents
	case drawing.EdgeFieldWelds:
		return m.clearedfield_welds
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DrawingMutation) ClearEdge(name string) error {
	switch name {
	case drawing.EdgeProject:
		m.ClearProject()
		return nil
	case drawing.EdgeArea:
		m.ClearArea()
		return nil
	case drawing.EdgeSystem:
		m.ClearSystem()
		return nil
	}
	return fmt.Errorf("unknown Drawing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DrawingMutation) ResetEdge(name string) error {
	switch name {
	case drawing.EdgeProject:
		m.ResetProject()
		return nil
	case drawing.EdgeArea:
		m.ResetArea()
		return nil
	case drawing.EdgeSystem:
		m.ResetSystem()
		return nil
	case drawing.EdgeComponents:
		m.ResetComponents()
		return nil
	case drawing.EdgeFieldWelds:
		m.ResetFieldWelds()
		return nil
	}
	return fmt.Errorf("unknown Drawing edge %s", name)
}

// FieldWeldMutation represents an operation that mutates the FieldWeld nodes in the graph.
type FieldWeldMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	weld_number              *string
	weld_type                *string
	material                 *string
	current_milestones       *json.RawMessage
	appendcurrent_milestones json.RawMessage
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	project                  *uuid.UUID
	clearedproject           bool
	drawing                  *uuid.UUID
	cleareddrawing           bool
	welder                   *uuid.UUID
	clearedwelder            bool
	done                     bool
	oldValue                 func(context.Context) (*FieldWeld, error)
	predicates               []predicate.FieldWeld
}

var _ ent.Mutation = (*FieldWeldMutation)(nil)

// fieldweldOption allows management of the mutation configuration using functional options.
type fieldweldOption func(*FieldWeldMutation)

// newFieldWeldMutation creates new mutation for the FieldWeld entity.
func newFieldWeldMutation(c config, op Op, opts ...fieldweldOption) *FieldWeldMutation {
	m := &FieldWeldMutation{
		config:        c,
		op:            op,
		typ:           TypeFieldWeld,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFieldWeldID sets the ID field of the mutation.
func withFieldWeldID(id uuid.UUID) fieldweldOption {
	return func(m *FieldWeldMutation) {
		var (
			err   error
			once  sync.Once
			value *FieldWeld
		)
		m.oldValue = func(ctx context.Context) (*FieldWeld, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FieldWeld.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFieldWeld sets the old FieldWeld of the mutation.
func withFieldWeld(node *FieldWeld) fieldweldOption {
	return func(m *FieldWeldMutation) {
		m.oldValue = func(context.Context) (*FieldWeld, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FieldWeldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FieldWeldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FieldWeld entities.
func (m *FieldWeldMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FieldWeldMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FieldWeldMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FieldWeld.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *FieldWeldMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *FieldWeldMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the FieldWeld entity.
// If the FieldWeld object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldWeldMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *FieldWeldMutation) ResetProjectID() {
	m.project = nil
}

// SetDrawingID sets the "drawing_id" field.
func (m *FieldWeldMutation) SetDrawingID(u uuid.UUID) {
	m.drawing = &u
}

// DrawingID returns the value of the "drawing_id" field in the mutation.
func (m *FieldWeldMutation) DrawingID() (r uuid.UUID, exists bool) {
	v := m.drawing
	if v == nil {
		return
	}
	return *v, true
}

// OldDrawingID returns the old "drawing_id" field's value of the FieldWeld entity.
// If the FieldWeld object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldWeldMutation) OldDrawingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrawingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrawingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrawingID: %w", err)
	}
	return oldValue.DrawingID, nil
}

// ResetDrawingID resets all changes to the "drawing_id" field.
func (m *FieldWeldMutation) ResetDrawingID() {
	m.drawing = nil
}

// SetWelderID sets the "welder_id" field.
func (m *FieldWeldMutation) SetWelderID(u uuid.UUID) {
	m.welder = &u
}

// WelderID returns the value of the "welder_id" field in the mutation.
func (m *FieldWeldMutation) WelderID() (r uuid.UUID, exists bool) {
	v := m.welder
	if v == nil {
		return
	}
	return *v, true
}

// OldWelderID returns the old "welder_id" field's value of the FieldWeld entity.
// If the FieldWeld object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldWeldMutation) OldWelderID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWelderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWelderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWelderID: %w", err)
	}
	return oldValue.WelderID, nil
}

// ClearWelderID clears the value of the "welder_id" field.
func (m *FieldWeldMutation) ClearWelderID() {
	m.welder = nil
	m.clearedFields[fieldweld.FieldWelderID] = struct{}{}
}

// WelderIDCleared returns if the "welder_id" field was cleared in this mutation.
func (m *FieldWeldMutation) WelderIDCleared() bool {
	_, ok := m.clearedFields[fieldweld.FieldWelderID]
	return ok
}

// ResetWelderID resets all changes to the "welder_id" field.
func (m *FieldWeldMutation) ResetWelderID() {
	m.welder = nil
	delete(m.clearedFields, fieldweld.FieldWelderID)
}

// SetWeldNumber sets the "weld_number" field.
func (m *FieldWeldMutation) SetWeldNumber(s string) {
	m.weld_number = &s
}

// WeldNumber returns the value of the "weld_number" field in the mutation.
func (m *FieldWeldMutation) WeldNumber() (r string, exists bool) {
	v := m.weld_number
	if v == nil {
		return
	}
	return *v, true
}

// OldWeldNumber returns the old "weld_number" field's value of the FieldWeld entity.
// If the FieldWeld object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldWeldMutation) OldWeldNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeldNumber: %w", err)
	}
	return oldValue.WeldNumber, nil
}

// ResetWeldNumber resets all changes to the "weld_number" field.
func (m *FieldWeldMutation) ResetWeldNumber() {
	m.weld_number = nil
}

// SetWeldType sets the "weld_type" field.
func (m *FieldWeldMutation) SetWeldType(s string) {
	m.weld_type = &s
}

// WeldType returns the value of the "weld_type" field in the mutation.
func (m *FieldWeldMutation) WeldType() (r string, exists bool) {
	v := m.weld_type
	if v == nil {
		return
	}
	return *v, true
}

// OldWeldType returns the old "weld_type" field's value of the FieldWeld entity.
// If the FieldWeld object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldWeldMutation) OldWeldType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeldType: %w", err)
	}
	return oldValue.WeldType, nil
}

// ClearWeldType clears the value of the "weld_type" field.
func (m *FieldWeldMutation) ClearWeldType() {
	m.weld_type = nil
	m.clearedFields[fieldweld.FieldWeldType] = struct{}{}
}

// WeldTypeCleared returns if the "weld_type" field was cleared in this mutation.
func (m *FieldWeldMutation) WeldTypeCleared() bool {
	_, ok := m.clearedFields[fieldweld.FieldWeldType]
	return ok
}

// ResetWeldType resets all changes to the "weld_type" field.
func (m *FieldWeldMutation) ResetWeldType() {
	m.weld_type = nil
	delete(m.clearedFields, fieldweld.FieldWeldType)
}

// SetMaterial sets the "material" field.
func (m *FieldWeldMutation) SetMaterial(s string) {
	m.material = &s
}

// Material returns the value of the "material" field in the mutation.
func (m *FieldWeldMutation) Material() (r string, exists bool) {
	v := m.material
	if v == nil {
		return
	}
	return *v, true
}

// OldMaterial returns the old "material" field's value of the FieldWeld entity.
// If the FieldWeld object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldWeldMutation) OldMaterial(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaterial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaterial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaterial: %w", err)
	}
	return oldValue.Material, nil
}

// ClearMaterial clears the value of the "material" field.
func (m *FieldWeldMutation) ClearMaterial() {
	m.material = nil
	m.clearedFields[fieldweld.FieldMaterial] = struct{}{}
}

// MaterialCleared returns if the "material" field was cleared in this mutation.
func (m *FieldWeldMutation) MaterialCleared() bool {
	_, ok := m.clearedFields[fieldweld.FieldMaterial]
	return ok
}

// ResetMaterial resets all changes to the "material" field.
func (m *FieldWeldMutation) ResetMaterial() {
	m.material = nil
	delete(m.clearedFields, fieldweld.FieldMaterial)
}

// SetCurrentMilestones sets the "current_milestones" field.
func (m *FieldWeldMutation) SetCurrentMilestones(jm json.RawMessage) {
	m.current_milestones = &jm
	m.appendcurrent_milestones = nil
}

// CurrentMilestones returns the value of the "current_milestones" field in the mutation.
func (m *FieldWeldMutation) CurrentMilestones() (r json.RawMessage, exists bool) {
	v := m.current_milestones
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentMilestones returns the old "current_milestones" field's value of the FieldWeld entity.
// If the FieldWeld object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldWeldMutation) OldCurrentMilestones(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentMilestones is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentMilestones requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentMilestones: %w", err)
	}
	return oldValue.CurrentMilestones, nil
}

// AppendCurrentMilestones adds jm to the "current_milestones" field.
func (m *FieldWeldMutation) AppendCurrentMilestones(jm json.RawMessage) {
	m.appendcurrent_milestones = append(m.appendcurrent_milestones, jm...)
}

// AppendedCurrentMilestones returns the list of values that were appended to the "current_milestones" field in this mutation.
func (m *FieldWeldMutation) AppendedCurrentMilestones() (json.RawMessage, bool) {
	if len(m.appendcurrent_milestones) == 0 {
		return nil, false
	}
	return m.appendcurrent_milestones, true
}

// ClearCurrentMilestones clears the value of the "current_milestones" field.
func (m *FieldWeldMutation) ClearCurrentMilestones() {
	m.current_milestones = nil
	m.appendcurrent_milestones = nil
	m.clearedFields[fieldweld.FieldCurrentMilestones] = struct{}{}
}

// CurrentMilestonesCleared returns if the "current_milestones" field was cleared in this mutation.
func (m *FieldWeldMutation) CurrentMilestonesCleared() bool {
	_, ok := m.clearedFields[fieldweld.FieldCurrentMilestones]
	return ok
}

// ResetCurrentMilestones resets all changes to the "current_milestones" field.
func (m *FieldWeldMutation) ResetCurrentMilestones() {
	m.current_milestones = nil
	m.appendcurrent_milestones = nil
	delete(m.clearedFields, fieldweld.FieldCurrentMilestones)
}

// SetCreatedAt sets the "created_at" field.
func (m *FieldWeldMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FieldWeldMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FieldWeld entity.
// If the FieldWeld object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldWeldMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FieldWeldMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FieldWeldMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FieldWeldMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FieldWeld entity.
// If the FieldWeld object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldWeldMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FieldWeldMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *FieldWeldMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[fieldweld.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *FieldWeldMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *FieldWeldMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *FieldWeldMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (m *FieldWeldMutation) ClearDrawing() {
	m.cleareddrawing = true
	m.clearedFields[fieldweld.FieldDrawingID] = struct{}{}
}

// DrawingCleared reports if the "drawing" edge to the Drawing entity was cleared.
func (m *FieldWeldMutation) DrawingCleared() bool {
	return m.cleareddrawing
}

// DrawingIDs returns the "drawing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DrawingID instead. It exists only for internal usage by the builders.
func (m *FieldWeldMutation) DrawingIDs() (ids []uuid.UUID) {
	if id := m.drawing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDrawing resets all changes to the "drawing" edge.
func (m *FieldWeldMutation) ResetDrawing() {
	m.drawing = nil
	m.cleareddrawing = false
}

// ClearWelder clears the "welder" edge to the Welder entity.
func (m *FieldWeldMutation) ClearWelder() {
	m.clearedwelder = true
	m.clearedFields[fieldweld.FieldWelderID] = struct{}{}
}

// WelderCleared reports if the "welder" edge to the Welder entity was cleared.
func (m *FieldWeldMutation) WelderCleared() bool {
	return m.WelderIDCleared() || m.clearedwelder
}

// WelderIDs returns the "welder" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WelderID instead. It exists only for internal usage by the builders.
func (m *FieldWeldMutation) WelderIDs() (ids []uuid.UUID) {
	if id := m.welder; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWelder resets all changes to the "welder" edge.
func (m *FieldWeldMutation) ResetWelder() {
	m.welder = nil
	m.clearedwelder = false
}

// Where appends a list predicates to the FieldWeldMutation builder.
func (m *FieldWeldMutation) Where(ps ...predicate.FieldWeld) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FieldWeldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FieldWeldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FieldWeld, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FieldWeldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FieldWeldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FieldWeld).
func (m *FieldWeldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FieldWeldMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.project != nil {
		fields = append(fields, fieldweld.FieldProjectID)
	}
	if m.drawing != nil {
		fields = append(fields, fieldweld.FieldDrawingID)
	}
	if m.welder != nil {
		fields = append(fields, fieldweld.FieldWelderID)
	}
	if m.weld_number != nil {
		fields = append(fields, fieldweld.FieldWeldNumber)
	}
	if m.weld_type != nil {
		fields = append(fields, fieldweld.FieldWeldType)
	}
	if m.material != nil {
		fields = append(fields, fieldweld.FieldMaterial)
	}
	if m.current_milestones != nil {
		fields = append(fields, fieldweld.FieldCurrentMilestones)
	}
	if m.created_at != nil {
		fields = append(fields, fieldweld.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, fieldweld.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FieldWeldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fieldweld.FieldProjectID:
		return m.ProjectID()
	case fieldweld.FieldDrawingID:
		return m.DrawingID()
	case fieldweld.FieldWelderID:
		return m.WelderID()
	case fieldweld.FieldWeldNumber:
		return m.WeldNumber()
	case fieldweld.FieldWeldType:
		return m.WeldType()
	case fieldweld.FieldMaterial:
		return m.Material()
	case fieldweld.FieldCurrentMilestones:
		return m.CurrentMilestones()
	case fieldweld.FieldCreatedAt:
		return m.CreatedAt()
	case fieldweld.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FieldWeldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fieldweld.FieldProjectID:
		return m.OldProjectID(ctx)
	case fieldweld.FieldDrawingID:
		return m.OldDrawingID(ctx)
	case fieldweld.FieldWelderID:
		return m.OldWelderID(ctx)
	case fieldweld.FieldWeldNumber:
		return m.OldWeldNumber(ctx)
	case fieldweld.FieldWeldType:
		return m.OldWeldType(ctx)
	case fieldweld.FieldMaterial:
		return m.OldMaterial(ctx)
	case fieldweld.FieldCurrentMilestones:
		return m.OldCurrentMilestones(ctx)
	case fieldweld.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fieldweld.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FieldWeld field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldWeldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fieldweld.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case fieldweld.FieldDrawingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrawingID(v)
		return nil
	case fieldweld.FieldWelderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWelderID(v)
		return nil
	case fieldweld.FieldWeldNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeldNumber(v)
		return nil
	case fieldweld.FieldWeldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeldType(v)
		return nil
	case fieldweld.FieldMaterial:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaterial(v)
		return nil
	case fieldweld.FieldCurrentMilestones:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentMilestones(v)
		return nil
	case fieldweld.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fieldweld.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FieldWeld field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FieldWeldMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FieldWeldMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldWeldMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FieldWeld numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FieldWeldMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fieldweld.FieldWelderID) {
		fields = append(fields, fieldweld.FieldWelderID)
	}
	if m.FieldCleared(fieldweld.FieldWeldType) {
		fields = append(fields, fieldweld.FieldWeldType)
	}
	if m.FieldCleared(fieldweld.FieldMaterial) {
		fields = append(fields, fieldweld.FieldMaterial)
	}
	if m.FieldCleared(fieldweld.FieldCurrentMilestones) {
		fields = append(fields, fieldweld.FieldCurrentMilestones)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FieldWeldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FieldWeldMutation) ClearField(name string) error {
	switch name {
	case fieldweld.FieldWelderID:
		m.ClearWelderID()
		return nil
	case fieldweld.FieldWeldType:
		m.ClearWeldType()
		return nil
	case fieldweld.FieldMaterial:
		m.ClearMaterial()
		return nil
	case fieldweld.FieldCurrentMilestones:
		m.ClearCurrentMilestones()
		return nil
	}
	return fmt.Errorf("unknown FieldWeld nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FieldWeldMutation) ResetField(name string) error {
	switch name {
	case fieldweld.FieldProjectID:
		m.ResetProjectID()
		return nil
	case fieldweld.FieldDrawingID:
		m.ResetDrawingID()
		return nil
	case fieldweld.FieldWelderID:
		m.ResetWelderID()
		return nil
	case fieldweld.FieldWeldNumber:
		m.ResetWeldNumber()
		return nil
	case fieldweld.FieldWeldType:
		m.ResetWeldType()
		return nil
	case fieldweld.FieldMaterial:
		m.ResetMaterial()
		return nil
	case fieldweld.FieldCurrentMilestones:
		m.ResetCurrentMilestones()
		return nil
	case fieldweld.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fieldweld.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FieldWeld field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FieldWeldMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, fieldweld.EdgeProject)
	}
	if m.drawing != nil {
		edges = append(edges, fieldweld.EdgeDrawing)
	}
	if m.welder != nil {
		edges = append(edges, fieldweld.EdgeWelder)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FieldWeldMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fieldweld.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case fieldweld.EdgeDrawing:
		if id := m.drawing; id != nil {
			return []ent.Value{*id}
		}
	case fieldweld.EdgeWelder:
		if id := m.welder; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FieldWeldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FieldWeldMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FieldWeldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, fieldweld.EdgeProject)
	}
	if m.cleareddrawing {
		edges = append(edges, fieldweld.EdgeDrawing)
	}
	if m.clearedwelder {
		edges = append(edges, fieldweld.EdgeWelder)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FieldWeldMutation) EdgeCleared(name string) bool {
	switch name {
	case fieldweld.EdgeProject:
		return m.clearedproject
	case fieldweld.EdgeDrawing:
		return m.cleareddrawing
	case fieldweld.EdgeWelder:
		return m.clearedwelder
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FieldWeldMutation) ClearEdge(name string) error {
	switch name {
	case fieldweld.EdgeProject:
		m.ClearProject()
		return nil
	case fieldweld.EdgeDrawing:
		m.ClearDrawing()
		return nil
	case fieldweld.EdgeWelder:
		m.ClearWelder()
		return nil
	}
	return fmt.Errorf("unknown FieldWeld unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FieldWeldMutation) ResetEdge(name string) error {
	switch name {
	case fieldweld.EdgeProject:
		m.ResetProject()
		return nil
	case fieldweld.EdgeDrawing:
		m.ResetDrawing()
		return nil
	case fieldweld.EdgeWelder:
		m.ResetWelder()
		return nil
	}
	return fmt.Errorf("unknown FieldWeld edge %s", name)
}

// ImportJobMutation represents an operation that mutates the ImportJob nodes in the graph.
type ImportJobMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	filename        *string
	status          *string
	total_rows      *int
	addtotal_rows   *int
	valid_rows      *int
	addvalid_rows   *int
	skipped_rows    *int
	addskipped_rows *int
	error_rows      *int
	adderror_rows   *int
	result          *json.RawMessage
	appendresult    json.RawMessage
	error_message   *string
	created_at      *time.Time
	started_at      *time.Time
	finished_at     *time.Time
	clearedFields   map[string]struct{}
	project         *uuid.UUID
	clearedproject  bool
	done            bool
	oldValue        func(context.Context) (*ImportJob, error)
	predicates      []predicate.ImportJob
}

var _ ent.Mutation = (*ImportJobMutation)(nil)

// importjobOption allows management of the mutation configuration using functional options.
type importjobOption func(*ImportJobMutation)

// newImportJobMutation creates new mutation for the ImportJob entity.
func newImportJobMutation(c config, op Op, opts ...importjobOption) *ImportJobMutation {
	m := &ImportJobMutation{
		config:        c,
		op:            op,
		typ:           TypeImportJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImportJobID sets the ID field of the mutation.
func withImportJobID(id uuid.UUID) importjobOption {
	return func(m *ImportJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ImportJob
		)
		m.oldValue = func(ctx context.Context) (*ImportJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImportJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImportJob sets the old ImportJob of the mutation.
func withImportJob(node *ImportJob) importjobOption {
	return func(m *ImportJobMutation) {
		m.oldValue = func(context.Context) (*ImportJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImportJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImportJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImportJob entities.
func (m *ImportJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImportJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImportJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImportJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ImportJobMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ImportJobMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ImportJobMutation) ResetProjectID() {
	m.project = nil
}

// SetFilename sets the "filename" field.
func (m *ImportJobMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ImportJobMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ImportJobMutation) ResetFilename() {
	m.filename = nil
}

// SetStatus sets the "status" field.
func (m *ImportJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ImportJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ImportJobMutation) ResetStatus() {
	m.status = nil
}

// SetTotalRows sets the "total_rows" field.
func (m *ImportJobMutation) SetTotalRows(i int) {
	m.total_rows = &i
	m.addtotal_rows = nil
}

// TotalRows returns the value of the "total_rows" field in the mutation.
func (m *ImportJobMutation) TotalRows() (r int, exists bool) {
	v := m.total_rows
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRows returns the old "total_rows" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldTotalRows(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRows: %w", err)
	}
	return oldValue.TotalRows, nil
}

// AddTotalRows adds i to the "total_rows" field.
func (m *ImportJobMutation) AddTotalRows(i int) {
	if m.addtotal_rows != nil {
		*m.addtotal_rows += i
	} else {
		m.addtotal_rows = &i
	}
}

// AddedTotalRows returns the value that was added to the "total_rows" field in this mutation.
func (m *ImportJobMutation) AddedTotalRows() (r int, exists bool) {
	v := m.addtotal_rows
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRows resets all changes to the "total_rows" field.
func (m *ImportJobMutation) ResetTotalRows() {
	m.total_rows = nil
	m.addtotal_rows = nil
}

// SetValidRows sets the "valid_rows" field.
func (m *ImportJobMutation) SetValidRows(i int) {
	m.valid_rows = &i
	m.addvalid_rows = nil
}

// ValidRows returns the value of the "valid_rows" field in the mutation.
func (m *ImportJobMutation) ValidRows() (r int, exists bool) {
	v := m.valid_rows
	if v == nil {
		return
	}
	return *v, true
}

// OldValidRows returns the old "valid_rows" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldValidRows(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidRows: %w", err)
	}
	return oldValue.ValidRows, nil
}

// AddValidRows adds i to the "valid_rows" field.
func (m *ImportJobMutation) AddValidRows(i int) {
	if m.addvalid_rows != nil {
		*m.addvalid_rows += i
	} else {
		m.addvalid_rows = &i
	}
}

// AddedValidRows returns the value that was added to the "valid_rows" field in this mutation.
func (m *ImportJobMutation) AddedValidRows() (r int, exists bool) {
	v := m.addvalid_rows
	if v == nil {
		return
	}
	return *v, true
}

// ResetValidRows resets all changes to the "valid_rows" field.
func (m *ImportJobMutation) ResetValidRows() {
	m.valid_rows = nil
	m.addvalid_rows = nil
}

// SetSkippedRows sets the "skipped_rows" field.
func (m *ImportJobMutation) SetSkippedRows(i int) {
	m.skipped_rows = &i
	m.addskipped_rows = nil
}

// SkippedRows returns the value of the "skipped_rows" field in the mutation.
func (m *ImportJobMutation) SkippedRows() (r int, exists bool) {
	v := m.skipped_rows
	if v == nil {
		return
	}
	return *v, true
}

// OldSkippedRows returns the old "skipped_rows" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldSkippedRows(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkippedRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkippedRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkippedRows: %w", err)
	}
	return oldValue.SkippedRows, nil
}

// AddSkippedRows adds i to the "skipped_rows" field.
func (m *ImportJobMutation) AddSkippedRows(i int) {
	if m.addskipped_rows != nil {
		*m.addskipped_rows += i
	} else {
		m.addskipped_rows = &i
	}
}

// AddedSkippedRows returns the value that was added to the "skipped_rows" field in this mutation.
func (m *ImportJobMutation) AddedSkippedRows() (r int, exists bool) {
	v := m.addskipped_rows
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkippedRows resets all changes to the "skipped_rows" field.
func (m *ImportJobMutation) ResetSkippedRows() {
	m.skipped_rows = nil
	m.addskipped_rows = nil
}

// SetErrorRows sets the "error_rows" field.
func (m *ImportJobMutation) SetErrorRows(i int) {
	m.error_rows = &i
	m.adderror_rows = nil
}

// ErrorRows returns the value of the "error_rows" field in the mutation.
func (m *ImportJobMutation) ErrorRows() (r int, exists bool) {
	v := m.error_rows
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorRows returns the old "error_rows" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldErrorRows(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorRows: %w", err)
	}
	return oldValue.ErrorRows, nil
}

// AddErrorRows adds i to the "error_rows" field.
func (m *ImportJobMutation) AddErrorRows(i int) {
	if m.adderror_rows != nil {
		*m.adderror_rows += i
	} else {
		m.adderror_rows = &i
	}
}

// AddedErrorRows returns the value that was added to the "error_rows" field in this mutation.
func (m *ImportJobMutation) AddedErrorRows() (r int, exists bool) {
	v := m.adderror_rows
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorRows resets all changes to the "error_rows" field.
func (m *ImportJobMutation) ResetErrorRows() {
	m.error_rows = nil
	m.adderror_rows = nil
}

// SetResult sets the "result" field.
func (m *ImportJobMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *ImportJobMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *ImportJobMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *ImportJobMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *ImportJobMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[importjob.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ImportJobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[importjob.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ImportJobMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, importjob.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *ImportJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ImportJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ImportJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[importjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ImportJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[importjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ImportJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, importjob.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ImportJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ImportJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ImportJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ImportJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ImportJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ImportJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[importjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ImportJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[importjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ImportJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, importjob.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *ImportJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ImportJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ImportJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[importjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ImportJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[importjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ImportJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, importjob.FieldFinishedAt)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ImportJobMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[importjob.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ImportJobMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ImportJobMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ImportJobMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the ImportJobMutation builder.
func (m *ImportJobMutation) Where(ps ...predicate.ImportJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImportJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImportJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImportJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImportJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImportJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImportJob).
func (m *ImportJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImportJobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.project != nil {
		fields = append(fields, importjob.FieldProjectID)
	}
	if m.filename != nil {
		fields = append(fields, importjob.FieldFilename)
	}
	if m.status != nil {
		fields = append(fields, importjob.FieldStatus)
	}
	if m.total_rows != nil {
		fields = append(fields, importjob.FieldTotalRows)
	}
	if m.valid_rows != nil {
		fields = append(fields, importjob.FieldValidRows)
	}
	if m.skipped_rows != nil {
		fields = append(fields, importjob.FieldSkippedRows)
	}
	if m.error_rows != nil {
		fields = append(fields, importjob.FieldErrorRows)
	}
	if m.result != nil {
		fields = append(fields, importjob.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, importjob.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, importjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, importjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, importjob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImportJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case importjob.FieldProjectID:
		return m.ProjectID()
	case importjob.FieldFilename:
		return m.Filename()
	case importjob.FieldStatus:
		return m.Status()
	case importjob.FieldTotalRows:
		return m.TotalRows()
	case importjob.FieldValidRows:
		return m.ValidRows()
	case importjob.FieldSkippedRows:
		return m.SkippedRows()
	case importjob.FieldErrorRows:
		return m.ErrorRows()
	case importjob.FieldResult:
		return m.Result()
	case importjob.FieldErrorMessage:
		return m.ErrorMessage()
	case importjob.FieldCreatedAt:
		return m.CreatedAt()
	case importjob.FieldStartedAt:
		return m.StartedAt()
	case importjob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImportJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case importjob.FieldProjectID:
		return m.OldProjectID(ctx)
	case importjob.FieldFilename:
		return m.OldFilename(ctx)
	case importjob.FieldStatus:
		return m.OldStatus(ctx)
	case importjob.FieldTotalRows:
		return m.OldTotalRows(ctx)
	case importjob.FieldValidRows:
		return m.OldValidRows(ctx)
	case importjob.FieldSkippedRows:
		return m.OldSkippedRows(ctx)
	case importjob.FieldErrorRows:
		return m.OldErrorRows(ctx)
	case importjob.FieldResult:
		return m.OldResult(ctx)
	case importjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case importjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case importjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case importjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ImportJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case importjob.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case importjob.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case importjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case importjob.FieldTotalRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRows(v)
		return nil
	case importjob.FieldValidRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidRows(v)
		return nil
	case importjob.FieldSkippedRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkippedRows(v)
		return nil
	case importjob.FieldErrorRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorRows(v)
		return nil
	case importjob.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case importjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case importjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case importjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case importjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ImportJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImportJobMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_rows != nil {
		fields = append(fields, importjob.FieldTotalRows)
	}
	if m.addvalid_rows != nil {
		fields = append(fields, importjob.FieldValidRows)
	}
	if m.addskipped_rows != nil {
		fields = append(fields, importjob.FieldSkippedRows)
	}
	if m.adderror_rows != nil {
		fields = append(fields, importjob.FieldErrorRows)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImportJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case importjob.FieldTotalRows:
		return m.AddedTotalRows()
	case importjob.FieldValidRows:
		return m.AddedValidRows()
	case importjob.FieldSkippedRows:
		return m.AddedSkippedRows()
	case importjob.FieldErrorRows:
		return m.AddedErrorRows()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case importjob.FieldTotalRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRows(v)
		return nil
	case importjob.FieldValidRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValidRows(v)
		return nil
	case importjob.FieldSkippedRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkippedRows(v)
		return nil
	case importjob.FieldErrorRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorRows(v)
		return nil
	}
	return fmt.Errorf("unknown ImportJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImportJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(importjob.FieldResult) {
		fields = append(fields, importjob.FieldResult)
	}
	if m.FieldCleared(importjob.FieldErrorMessage) {
		fields = append(fields, importjob.FieldErrorMessage)
	}
	if m.FieldCleared(importjob.FieldStartedAt) {
		fields = append(fields, importjob.FieldStartedAt)
	}
	if m.FieldCleared(importjob.FieldFinishedAt) {
		fields = append(fields, importjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImportJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImportJobMutation) ClearField(name string) error {
	switch name {
	case importjob.FieldResult:
		m.ClearResult()
		return nil
	case importjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case importjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case importjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ImportJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImportJobMutation) ResetField(name string) error {
	switch name {
	case importjob.FieldProjectID:
		m.ResetProjectID()
		return nil
	case importjob.FieldFilename:
		m.ResetFilename()
		return nil
	case importjob.FieldStatus:
		m.ResetStatus()
		return nil
	case importjob.FieldTotalRows:
		m.ResetTotalRows()
		return nil
	case importjob.FieldValidRows:
		m.ResetValidRows()
		return nil
	case importjob.FieldSkippedRows:
		m.ResetSkippedRows()
		return nil
	case importjob.FieldErrorRows:
		m.ResetErrorRows()
		return nil
	case importjob.FieldResult:
		m.ResetResult()
		return nil
	case importjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case importjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case importjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case importjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ImportJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImportJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, importjob.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImportJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case importjob.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImportJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImportJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImportJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, importjob.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImportJobMutation) EdgeCleared(name string) bool {
	switch name {
	case importjob.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImportJobMutation) ClearEdge(name string) error {
	switch name {
	case importjob.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ImportJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImportJobMutation) ResetEdge(name string) error {
	switch name {
	case importjob.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown ImportJob edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	name                 *string
	job_number           *string
	client               *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	areas                map[uuid.UUID]struct{}
	removedareas         map[uuid.UUID]struct{}
	clearedareas         bool
	systems              map[uuid.UUID]struct{}
	removedsystems       map[uuid.UUID]struct{}
	clearedsystems       bool
	test_packages        map[uuid.UUID]struct{}
	removedtest_packages map[uuid.UUID]struct{}
	clearedtest_packages bool
	drawings             map[uuid.UUID]struct{}
	removeddrawings      map[uuid.UUID]struct{}
	cleareddrawings      bool
	components           map[uuid.UUID]struct{}
	removedcomponents    map[uuid.UUID]struct{}
	clearedcomponents    bool
	field_welds          map[uuid.UUID]struct{}
	removedfield_welds   map[uuid.UUID]struct{}
	clearedfield_welds   bool
	welders              map[uuid.UUID]struct{}
	removedwelders       map[uuid.UUID]struct{}
	clearedwelders       bool
	import_jobs          map[uuid.UUID]struct{}
	removedimport_jobs   map[uuid.UUID]struct{}
	clearedimport_jobs   bool
	done                 bool
	oldValue             func(context.Context) (*Project, error)
	predicates           []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id uuid.UUID) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetJobNumber sets the "job_number" field.
func (m *ProjectMutation) SetJobNumber(s string) {
	m.job_number = &s
}

// JobNumber returns the value of the "job_number" field in the mutation.
func (m *ProjectMutation) JobNumber() (r string, exists bool) {
	v := m.job_number
	if v == nil {
		return
	}
	return *v, true
}

// OldJobNumber returns the old "job_number" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldJobNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobNumber: %w", err)
	}
	return oldValue.JobNumber, nil
}

// ClearJobNumber clears the value of the "job_number" field.
func (m *ProjectMutation) ClearJobNumber() {
	m.job_number = nil
	m.clearedFields[project.FieldJobNumber] = struct{}{}
}

// JobNumberCleared returns if the "job_number" field was cleared in this mutation.
func (m *ProjectMutation) JobNumberCleared() bool {
	_, ok := m.clearedFields[project.FieldJobNumber]
	return ok
}

// ResetJobNumber resets all changes to the "job_number" field.
func (m *ProjectMutation) ResetJobNumber() {
	m.job_number = nil
	delete(m.clearedFields, project.FieldJobNumber)
}

// SetClient sets the "client" field.
func (m *ProjectMutation) SetClient(s string) {
	m.client = &s
}

// GetClient returns the value of the "client" field in the mutation.
func (m *ProjectMutation) GetClient() (r string, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClient returns the old "client" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldClient(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClient: %w", err)
	}
	return oldValue.Client, nil
}

// ClearClient clears the value of the "client" field.
func (m *ProjectMutation) ClearClient() {
	m.client = nil
	m.clearedFields[project.FieldClient] = struct{}{}
}

// ClientCleared returns if the "client" field was cleared in this mutation.
func (m *ProjectMutation) ClientCleared() bool {
	_, ok := m.clearedFields[project.FieldClient]
	return ok
}

// ResetClient resets all changes to the "client" field.
func (m *ProjectMutation) ResetClient() {
	m.client = nil
	delete(m.clearedFields, project.FieldClient)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAreaIDs adds the "areas" edge to the Area entity by ids.
func (m *ProjectMutation) AddAreaIDs(ids ...uuid.UUID) {
	if m.areas == nil {
		m.areas = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.areas[ids[i]] = struct{}{}
	}
}

// ClearAreas clears the "areas" edge to the Area entity.
func (m *ProjectMutation) ClearAreas() {
	m.clearedareas = true
}

// AreasCleared reports if the "areas" edge to the Area entity was cleared.
func (m *ProjectMutation) AreasCleared() bool {
	return m.clearedareas
}

// RemoveAreaIDs removes the "areas" edge to the Area entity by IDs.
func (m *ProjectMutation) RemoveAreaIDs(ids ...uuid.UUID) {
	if m.removedareas == nil {
		m.removedareas = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.areas, ids[i])
		m.removedareas[ids[i]] = struct{}{}
	}
}

// RemovedAreas returns the removed IDs of the "areas" edge to the Area entity.
func (m *ProjectMutation) RemovedAreasIDs() (ids []uuid.UUID) {
	for id := range m.removedareas {
		ids = append(ids, id)
	}
	return
}

// AreasIDs returns the "areas" edge IDs in the mutation.
func (m *ProjectMutation) AreasIDs() (ids []uuid.UUID) {
	for id := range m.areas {
		ids = append(ids, id)
	}
	return
}

// ResetAreas resets all changes to the "areas" edge.
func (m *ProjectMutation) ResetAreas() {
	m.areas = nil
	m.clearedareas = false
	m.removedareas = nil
}

// AddSystemIDs adds the "systems" edge to the System entity by ids.
func (m *ProjectMutation) AddSystemIDs(ids ...uuid.UUID) {
	if m.systems == nil {
		m.systems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.systems[ids[i]] = struct{}{}
	}
}

// ClearSystems clears the "systems" edge to the System entity.
func (m *ProjectMutation) ClearSystems() {
	m.clearedsystems = true
}

// SystemsCleared reports if the "systems" edge to the System entity was cleared.
func (m *ProjectMutation) SystemsCleared() bool {
	return m.clearedsystems
}

// RemoveSystemIDs removes the "systems" edge to the System entity by IDs.
func (m *ProjectMutation) RemoveSystemIDs(ids ...uuid.UUID) {
	if m.removedsystems == nil {
		m.removedsystems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.systems, ids[i])
		m.removedsystems[ids[i]] = struct{}{}
	}
}

// RemovedSystems returns the removed IDs of the "systems" edge to the System entity.
func (m *ProjectMutation) RemovedSystemsIDs() (ids []uuid.UUID) {
	for id := range m.removedsystems {
		ids = append(ids, id)
	}
	return
}

// SystemsIDs returns the "systems" edge IDs in the mutation.
func (m *ProjectMutation) SystemsIDs() (ids []uuid.UUID) {
	for id := range m.systems {
		ids = append(ids, id)
	}
	return
}

// ResetSystems resets all changes to the "systems" edge.
func (m *ProjectMutation) ResetSystems() {
	m.systems = nil
	m.clearedsystems = false
	m.removedsystems = nil
}

// AddTestPackageIDs adds the "test_packages" edge to the TestPackage entity by ids.
func (m *ProjectMutation) AddTestPackageIDs(ids ...uuid.UUID) {
	if m.test_packages == nil {
		m.test_packages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.test_packages[ids[i]] = struct{}{}
	}
}

// ClearTestPackages clears the "test_packages" edge to the TestPackage entity.
func (m *ProjectMutation) ClearTestPackages() {
	m.clearedtest_packages = true
}

// TestPackagesCleared reports if the "test_packages" edge to the TestPackage entity was cleared.
func (m *ProjectMutation) TestPackagesCleared() bool {
	return m.clearedtest_packages
}

// RemoveTestPackageIDs removes the "test_packages" edge to the TestPackage entity by IDs.
func (m *ProjectMutation) RemoveTestPackageIDs(ids ...uuid.UUID) {
	if m.removedtest_packages == nil {
		m.removedtest_packages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.test_packages, ids[i])
		m.removedtest_packages[ids[i]] = struct{}{}
	}
}

// RemovedTestPackages returns the removed IDs of the "test_packages" edge to the TestPackage entity.
func (m *ProjectMutation) RemovedTestPackagesIDs() (ids []uuid.UUID) {
	for id := range m.removedtest_packages {
		ids = append(ids, id)
	}
	return
}

// TestPackagesIDs returns the "test_packages" edge IDs in the mutation.
func (m *ProjectMutation) TestPackagesIDs() (ids []uuid.UUID) {
	for id := range m.test_packages {
		ids = append(ids, id)
	}
	return
}

// ResetTestPackages resets all changes to the "test_packages" edge.
func (m *ProjectMutation) ResetTestPackages() {
	m.test_packages = nil
	m.clearedtest_packages = false
	m.removedtest_packages = nil
}

// AddDrawingIDs adds the "drawings" edge to the Drawing entity by ids.
func (m *ProjectMutation) AddDrawingIDs(ids ...uuid.UUID) {
	if m.drawings == nil {
		m.drawings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.drawings[ids[i]] = struct{}{}
	}
}

// ClearDrawings clears the "drawings" edge to the Drawing entity.
func (m *ProjectMutation) ClearDrawings() {
	m.cleareddrawings = true
}

// DrawingsCleared reports if the "drawings" edge to the Drawing entity was cleared.
func (m *ProjectMutation) DrawingsCleared() bool {
	return m.cleareddrawings
}

// RemoveDrawingIDs removes the "drawings" edge to the Drawing entity by IDs.
func (m *ProjectMutation) RemoveDrawingIDs(ids ...uuid.UUID) {
	if m.removeddrawings == nil {
		m.removeddrawings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.drawings, ids[i])
		m.removeddrawings[ids[i]] = struct{}{}
	}
}

// RemovedDrawings returns the removed IDs of the "drawings" edge to the Drawing entity.
func (m *ProjectMutation) RemovedDrawingsIDs() (ids []uuid.UUID) {
	for id := range m.removeddrawings {
		ids = append(ids, id)
	}
	return
}

// DrawingsIDs returns the "drawings" edge IDs in the mutation.
func (m *ProjectMutation) DrawingsIDs() (ids []uuid.UUID) {
	for id := range m.drawings {
		ids = append(ids, id)
	}
	return
}

// ResetDrawings resets all changes to the "drawings" edge.
func (m *ProjectMutation) ResetDrawings() {
	m.drawings = nil
	m.cleareddrawings = false
	m.removeddrawings = nil
}

// AddComponentIDs adds the "components" edge to the Component entity by ids.
func (m *ProjectMutation) AddComponentIDs(ids ...uuid.UUID) {
	if m.components == nil {
		m.components = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.components[ids[i]] = struct{}{}
	}
}

// ClearComponents clears the "components" edge to the Component entity.
func (m *ProjectMutation) ClearComponents() {
	m.clearedcomponents = true
}

// ComponentsCleared reports if the "components" edge to the Component entity was cleared.
func (m *ProjectMutation) ComponentsCleared() bool {
	return m.clearedcomponents
}

// RemoveComponentIDs removes the "components" edge to the Component entity by IDs.
func (m *ProjectMutation) RemoveComponentIDs(ids ...uuid.UUID) {
	if m.removedcomponents == nil {
		m.removedcomponents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.components, ids[i])
		m.removedcomponents[ids[i]] = struct{}{}
	}
}

// RemovedComponents returns the removed IDs of the "components" edge to the Component entity.
func (m *ProjectMutation) RemovedComponentsIDs() (ids []uuid.UUID) {
	for id := range m.removedcomponents {
		ids = append(ids, id)
	}
	return
}

// ComponentsIDs returns the "components" edge IDs in the mutation.
func (m *ProjectMutation) ComponentsIDs() (ids []uuid.UUID) {
	for id := range m.components {
		ids = append(ids, id)
	}
	return
}

// ResetComponents resets all changes to the "components" edge.
func (m *ProjectMutation) ResetComponents() {
	m.components = nil
	m.clearedcomponents = false
	m.removedcomponents = nil
}

// AddFieldWeldIDs adds the "field_welds" edge to the FieldWeld entity by ids.
func (m *ProjectMutation) AddFieldWeldIDs(ids ...uuid.UUID) {
	if m.field_welds == nil {
		m.field_welds = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.field_welds[ids[i]] = struct{}{}
	}
}

// ClearFieldWelds clears the "field_welds" edge to the FieldWeld entity.
func (m *ProjectMutation) ClearFieldWelds() {
	m.clearedfield_welds = true
}

// FieldWeldsCleared reports if the "field_welds" edge to the FieldWeld entity was cleared.
func (m *ProjectMutation) FieldWeldsCleared() bool {
	return m.clearedfield_welds
}

// RemoveFieldWeldIDs removes the "field_welds" edge to the FieldWeld entity by IDs.
func (m *ProjectMutation) RemoveFieldWeldIDs(ids ...uuid.UUID) {
	if m.removedfield_welds == nil {
		m.removedfield_welds = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.field_welds, ids[i])
		m.removedfield_welds[ids[i]] = struct{}{}
	}
}

// RemovedFieldWelds returns the removed IDs of the "field_welds" edge to the FieldWeld entity.
func (m *ProjectMutation) RemovedFieldWeldsIDs() (ids []uuid.UUID) {
	for id := range m.removedfield_welds {
		ids = append(ids, id)
	}
	return
}

// FieldWeldsIDs returns the "field_welds" edge IDs in the mutation.
func (m *ProjectMutation) FieldWeldsIDs() (ids []uuid.UUID) {
	for id := range m.field_welds {
		ids = append(ids, id)
	}
	return
}

// ResetFieldWelds resets all changes to the "field_welds" edge.
func (m *ProjectMutation) ResetFieldWelds() {
	m.field_welds = nil
	m.clearedfield_welds = false
	m.removedfield_welds = nil
}

// AddWelderIDs adds the "welders" edge to the Welder entity by ids.
func (m *ProjectMutation) AddWelderIDs(ids ...uuid.UUID) {
	if m.welders == nil {
		m.welders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.welders[ids[i]] = struct{}{}
	}
}

// ClearWelders clears the "welders" edge to the Welder entity.
func (m *ProjectMutation) ClearWelders() {
	m.clearedwelders = true
}

// WeldersCleared reports if the "welders" edge to the Welder entity was cleared.
func (m *ProjectMutation) WeldersCleared() bool {
	return m.clearedwelders
}

// RemoveWelderIDs removes the "welders" edge to the Welder entity by IDs.
func (m *ProjectMutation) RemoveWelderIDs(ids ...uuid.UUID) {
	if m.removedwelders == nil {
		m.removedwelders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.welders, ids[i])
		m.removedwelders[ids[i]] = struct{}{}
	}
}

// RemovedWelders returns the removed IDs of the "welders" edge to the Welder entity.
func (m *ProjectMutation) RemovedWeldersIDs() (ids []uuid.UUID) {
	for id := range m.removedwelders {
		ids = append(ids, id)
	}
	return
}

// WeldersIDs returns the "welders" edge IDs in the mutation.
func (m *ProjectMutation) WeldersIDs() (ids []uuid.UUID) {
	for id := range m.welders {
		ids = append(ids, id)
	}
	return
}

// ResetWelders resets all changes to the "welders" edge.
func (m *ProjectMutation) ResetWelders() {
	m.welders = nil
	m.clearedwelders = false
	m.removedwelders = nil
}

// AddImportJobIDs adds the "import_jobs" edge to the ImportJob entity by ids.
func (m *ProjectMutation) AddImportJobIDs(ids ...uuid.UUID) {
	if m.import_jobs == nil {
		m.import_jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.import_jobs[ids[i]] = struct{}{}
	}
}

// ClearImportJobs clears the "import_jobs" edge to the ImportJob entity.
func (m *ProjectMutation) ClearImportJobs() {
	m.clearedimport_jobs = true
}

// ImportJobsCleared reports if the "import_jobs" edge to the ImportJob entity was cleared.
func (m *ProjectMutation) ImportJobsCleared() bool {
	return m.clearedimport_jobs
}

// RemoveImportJobIDs removes the "import_jobs" edge to the ImportJob entity by IDs.
func (m *ProjectMutation) RemoveImportJobIDs(ids ...uuid.UUID) {
	if m.removedimport_jobs == nil {
		m.removedimport_jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.import_jobs, ids[i])
		m.removedimport_jobs[ids[i]] = struct{}{}
	}
}

// RemovedImportJobs returns the removed IDs of the "import_jobs" edge to the ImportJob entity.
func (m *ProjectMutation) RemovedImportJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedimport_jobs {
		ids = append(ids, id)
	}
	return
}

// ImportJobsIDs returns the "import_jobs" edge IDs in the mutation.
func (m *ProjectMutation) ImportJobsIDs() (ids []uuid.UUID) {
	for id := range m.import_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetImportJobs resets all changes to the "import_jobs" edge.
func (m *ProjectMutation) ResetImportJobs() {
	m.import_jobs = nil
	m.clearedimport_jobs = false
	m.removedimport_jobs = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.job_number != nil {
		fields = append(fields, project.FieldJobNumber)
	}
	if m.client != nil {
		fields = append(fields, project.FieldClient)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldJobNumber:
		return m.JobNumber()
	case project.FieldClient:
		return m.GetClient()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldJobNumber:
		return m.OldJobNumber(ctx)
	case project.FieldClient:
		return m.OldClient(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldJobNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobNumber(v)
		return nil
	case project.FieldClient:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClient(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldJobNumber) {
		fields = append(fields, project.FieldJobNumber)
	}
	if m.FieldCleared(project.FieldClient) {
		fields = append(fields, project.FieldClient)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldJobNumber:
		m.ClearJobNumber()
		return nil
	case project.FieldClient:
		m.ClearClient()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldJobNumber:
		m.ResetJobNumber()
		return nil
	case project.FieldClient:
		m.ResetClient()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 8)
	if m.areas != nil {
		edges = append(edges, project.EdgeAreas)
	}
	if m.systems != nil {
		edges = append(edges, project.EdgeSystems)
	}
	if m.test_packages != nil {
		edges = append(edges, project.EdgeTestPackages)
	}
	if m.drawings != nil {
		edges = append(edges, project.EdgeDrawings)
	}
	if m.components != nil {
		edges = append(edges, project.EdgeComponents)
	}
	if m.field_welds != nil {
		edges = append(edges, project.EdgeFieldWelds)
	}
	if m.welders != nil {
		edges = append(edges, project.EdgeWelders)
	}
	if m.import_jobs != nil {
		edges = append(edges, project.EdgeImportJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeAreas:
		ids := make([]ent.Value, 0, len(m.areas))
		for id := range m.areas {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSystems:
		ids := make([]ent.Value, 0, len(m.systems))
		for id := range m.systems {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeTestPackages:
		ids := make([]ent.Value, 0, len(m.test_packages))
		for id := range m.test_packages {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeDrawings:
		ids := make([]ent.Value, 0, len(m.drawings))
		for id := range m.drawings {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeComponents:
		ids := make([]ent.Value, 0, len(m.components))
		for id := range m.components {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeFieldWelds:
		ids := make([]ent.Value, 0, len(m.field_welds))
		for id := range m.field_welds {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeWelders:
		ids := make([]ent.Value, 0, len(m.welders))
		for id := range m.welders {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeImportJobs:
		ids := make([]ent.Value, 0, len(m.import_jobs))
		for id := range m.import_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 8)
	if m.removedareas != nil {
		edges = append(edges, project.EdgeAreas)
	}
	if m.removedsystems != nil {
		edges = append(edges, project.EdgeSystems)
	}
	if m.removedtest_packages != nil {
		edges = append(edges, project.EdgeTestPackages)
	}
	if m.removeddrawings != nil {
		edges = append(edges, project.EdgeDrawings)
	}
	if m.removedcomponents != nil {
		edges = append(edges, project.EdgeComponents)
	}
	if m.removedfield_welds != nil {
		edges = append(edges, project.EdgeFieldWelds)
	}
	if m.removedwelders != nil {
		edges = append(edges, project.EdgeWelders)
	}
	if m.removedimport_jobs != nil {
		edges = append(edges, project.EdgeImportJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeAreas:
		ids := make([]ent.Value, 0, len(m.removedareas))
		for id := range m.removedareas {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSystems:
		ids := make([]ent.Value, 0, len(m.removedsystems))
		for id := range m.removedsystems {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeTestPackages:
		ids := make([]ent.Value, 0, len(m.removedtest_packages))
		for id := range m.removedtest_packages {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeDrawings:
		ids := make([]ent.Value, 0, len(m.removeddrawings))
		for id := range m.removeddrawings {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeComponents:
		ids := make([]ent.Value, 0, len(m.removedcomponents))
		for id := range m.removedcomponents {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeFieldWelds:
		ids := make([]ent.Value, 0, len(m.removedfield_welds))
		for id := range m.removedfield_welds {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeWelders:
		ids := make([]ent.Value, 0, len(m.removedwelders))
		for id := range m.removedwelders {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeImportJobs:
		ids := make([]ent.Value, 0, len(m.removedimport_jobs))
		for id := range m.removedimport_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 8)
	if m.clearedareas {
		edges = append(edges, project.EdgeAreas)
	}
	if m.clearedsystems {
		edges = append(edges, project.EdgeSystems)
	}
	if m.clearedtest_packages {
		edges = append(edges, project.EdgeTestPackages)
	}
	if m.cleareddrawings {
		edges = append(edges, project.EdgeDrawings)
	}
	if m.clearedcomponents {
		edges = append(edges, project.EdgeComponents)
	}
	if m.clearedfield_welds {
		edges = append(edges, project.EdgeFieldWelds)
	}
	if m.clearedwelders {
		edges = append(edges, project.EdgeWelders)
	}
	if m.clearedimport_jobs {
		edges = append(edges, project.EdgeImportJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeAreas:
		return m.clearedareas
	case project.EdgeSystems:
		return m.clearedsystems
	case project.EdgeTestPackages:
		return m.clearedtest_packages
	case project.EdgeDrawings:
		return m.cleareddrawings
	case project.EdgeComponents:
		return m.clearedcomponents
	case project.EdgeFieldWelds:
		return m.clearedfield_welds
	case project.EdgeWelders:
		return m.clearedwelders
	case project.EdgeImportJobs:
		return m.clearedimport_jobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeAreas:
		m.ResetAreas()
		return nil
	case project.EdgeSystems:
		m.ResetSystems()
		return nil
	case project.EdgeTestPackages:
		m.ResetTestPackages()
		return nil
	case project.EdgeDrawings:
		m.ResetDrawings()
		return nil
	case project.EdgeComponents:
		m.ResetComponents()
		return nil
	case project.EdgeFieldWelds:
		m.ResetFieldWelds()
		return nil
	case project.EdgeWelders:
		m.ResetWelders()
		return nil
	case project.EdgeImportJobs:
		m.ResetImportJobs()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// SystemMutation represents an operation that mutates the System nodes in the graph.
type SystemMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	description       *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	project           *uuid.UUID
	clearedproject    bool
	drawings          map[uuid.UUID]struct{}
	removeddrawings   map[uuid.UUID]struct{}
	cleareddrawings   bool
	components        map[uuid.UUID]struct{}
	removedcomponents map[uuid.UUID]struct{}
	clearedcomponents bool
	done              bool
	oldValue          func(context.Context) (*System, error)
	predicates        []predicate.System
}

var _ ent.Mutation = (*SystemMutation)(nil)

// systemOption allows management of the mutation configuration using functional options.
type systemOption func(*SystemMutation)

// newSystemMutation creates new mutation for the System entity.
func newSystemMutation(c config, op Op, opts ...systemOption) *SystemMutation {
	m := &SystemMutation{
		config:        c,
		op:            op,
		typ:           TypeSystem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSystemID sets the ID field of the mutation.
func withSystemID(id uuid.UUID) systemOption {
	return func(m *SystemMutation) {
		var (
			err   error
			once  sync.Once
			value *System
		)
		m.oldValue = func(ctx context.Context) (*System, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().System.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSystem sets the old System of the mutation.
func withSystem(node *System) systemOption {
	return func(m *SystemMutation) {
		m.oldValue = func(context.Context) (*System, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SystemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SystemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of System entities.
func (m *SystemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SystemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SystemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().System.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *SystemMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SystemMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the System entity.
// If the System object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SystemMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *SystemMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SystemMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the System entity.
// If the System object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SystemMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *SystemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SystemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the System entity.
// If the System object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SystemMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[system.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SystemMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[system.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SystemMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, system.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *SystemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SystemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the System entity.
// If the System object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SystemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SystemMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[system.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SystemMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SystemMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SystemMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddDrawingIDs adds the "drawings" edge to the Drawing entity by ids.
func (m *SystemMutation) AddDrawingIDs(ids ...uuid.UUID) {
	if m.drawings == nil {
		m.drawings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.drawings[ids[i]] = struct{}{}
	}
}

// ClearDrawings clears the "drawings" edge to the Drawing entity.
func (m *SystemMutation) ClearDrawings() {
	m.cleareddrawings = true
}

// DrawingsCleared reports if the "drawings" edge to the Drawing entity was cleared.
func (m *SystemMutation) DrawingsCleared() bool {
	return m.cleareddrawings
}

// RemoveDrawingIDs removes the "drawings" edge to the Drawing entity by IDs.
func (m *SystemMutation) RemoveDrawingIDs(ids ...uuid.UUID) {
	if m.removeddrawings == nil {
		m.removeddrawings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.drawings, ids[i])
		m.removeddrawings[ids[i]] = struct{}{}
	}
}

// RemovedDrawings returns the removed IDs of the "drawings" edge to the Drawing entity.
func (m *SystemMutation) RemovedDrawingsIDs() (ids []uuid.UUID) {
	for id := range m.removeddrawings {
		ids = append(ids, id)
	}
	return
}

// DrawingsIDs returns the "drawings" edge IDs in the mutation.
func (m *SystemMutation) DrawingsIDs() (ids []uuid.UUID) {
	for id := range m.drawings {
		ids = append(ids, id)
	}
	return
}

// ResetDrawings resets all changes to the "drawings" edge.
func (m *SystemMutation) ResetDrawings() {
	m.drawings = nil
	m.cleareddrawings = false
	m.removeddrawings = nil
}

// AddComponentIDs adds the "components" edge to the Component entity by ids.
func (m *SystemMutation) AddComponentIDs(ids ...uuid.UUID) {
	if m.components == nil {
		m.components = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.components[ids[i]] = struct{}{}
	}
}

// ClearComponents clears the "components" edge to the Component entity.
func (m *SystemMutation) ClearComponents() {
	m.clearedcomponents = true
}

// ComponentsCleared reports if the "components" edge to the Component entity was cleared.
func (m *SystemMutation) ComponentsCleared() bool {
	return m.clearedcomponents
}

// RemoveComponentIDs removes the "components" edge to the Component entity by IDs.
func (m *SystemMutation) RemoveComponentIDs(ids ...uuid.UUID) {
	if m.removedcomponents == nil {
		m.removedcomponents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.components, ids[i])
		m.removedcomponents[ids[i]] = struct{}{}
	}
}

// RemovedComponents returns the removed IDs of the "components" edge to the Component entity.
func (m *SystemMutation) RemovedComponentsIDs() (ids []uuid.UUID) {
	for id := range m.removedcomponents {
		ids = append(ids, id)
	}
	return
}

// ComponentsIDs returns the "components" edge IDs in the mutation.
func (m *SystemMutation) ComponentsIDs() (ids []uuid.UUID) {
	for id := range m.components {
		ids = append(ids, id)
	}
	return
}

// ResetComponents resets all changes to the "components" edge.
func (m *SystemMutation) ResetComponents() {
	m.components = nil
	m.clearedcomponents = false
	m.removedcomponents = nil
}

// Where appends a list predicates to the SystemMutation builder.
func (m *SystemMutation) Where(ps ...predicate.System) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SystemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SystemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.System, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SystemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SystemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (System).
func (m *SystemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SystemMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.project != nil {
		fields = append(fields, system.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, system.FieldName)
	}
	if m.description != nil {
		fields = append(fields, system.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, system.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SystemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case system.FieldProjectID:
		return m.ProjectID()
	case system.FieldName:
		return m.Name()
	case system.FieldDescription:
		return m.Description()
	case system.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SystemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case system.FieldProjectID:
		return m.OldProjectID(ctx)
	case system.FieldName:
		return m.OldName(ctx)
	case system.FieldDescription:
		return m.OldDescription(ctx)
	case system.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown System field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case system.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case system.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case system.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case system.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown System field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SystemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SystemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown System numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SystemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(system.FieldDescription) {
		fields = append(fields, system.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SystemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SystemMutation) ClearField(name string) error {
	switch name {
	case system.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown System nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SystemMutation) ResetField(name string) error {
	switch name {
	case system.FieldProjectID:
		m.ResetProjectID()
		return nil
	case system.FieldName:
		m.ResetName()
		return nil
	case system.FieldDescription:
		m.ResetDescription()
		return nil
	case system.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown System field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SystemMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, system.EdgeProject)
	}
	if m.drawings != nil {
		edges = append(edges, system.EdgeDrawings)
	}
	if m.components != nil {
		edges = append(edges, system.EdgeComponents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SystemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case system.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case system.EdgeDrawings:
		ids := make([]ent.Value, 0, len(m.drawings))
		for id := range m.drawings {
			ids = append(ids, id)
		}
		return ids
	case system.EdgeComponents:
		ids := make([]ent.Value, 0, len(m.components))
		for id := range m.components {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SystemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddrawings != nil {
		edges = append(edges, system.EdgeDrawings)
	}
	if m.removedcomponents != nil {
		edges = append(edges, system.EdgeComponents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SystemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case system.EdgeDrawings:
		ids := make([]ent.Value, 0, len(m.removeddrawings))
		for id := range m.removeddrawings {
			ids = append(ids, id)
		}
		return ids
	case system.EdgeComponents:
		ids := make([]ent.Value, 0, len(m.removedcomponents))
		for id := range m.removedcomponents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SystemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, system.EdgeProject)
	}
	if m.cleareddrawings {
		edges = append(edges, system.EdgeDrawings)
	}
	if m.clearedcomponents {
		edges = append(edges, system.EdgeComponents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SystemMutation) EdgeCleared(name string) bool {
	switch name {
	case system.EdgeProject:
		return m.clearedproject
	case system.EdgeDrawings:
		return m.cleareddrawings
	case system.EdgeComponents:
		return m.clearedcomponents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SystemMutation) ClearEdge(name string) error {
	switch name {
	case system.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown System unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SystemMutation) ResetEdge(name string) error {
	switch name {
	case system.EdgeProject:
		m.ResetProject()
		return nil
	case system.EdgeDrawings:
		m.ResetDrawings()
		return nil
	case system.EdgeComponents:
		m.ResetComponents()
		return nil
	}
	return fmt.Errorf("unknown System edge %s", name)
}

// TestPackageMutation represents an operation that mutates the TestPackage nodes in the graph.
type TestPackageMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	description       *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	project           *uuid.UUID
	clearedproject    bool
	components        map[uuid.UUID]struct{}
	removedcomponents map[uuid.UUID]struct{}
	clearedcomponents bool
	done              bool
	oldValue          func(context.Context) (*TestPackage, error)
	predicates        []predicate.TestPackage
}

var _ ent.Mutation = (*TestPackageMutation)(nil)

// testpackageOption allows management of the mutation configuration using functional options.
type testpackageOption func(*TestPackageMutation)

// newTestPackageMutation creates new mutation for the TestPackage entity.
func newTestPackageMutation(c config, op Op, opts ...testpackageOption) *TestPackageMutation {
	m := &TestPackageMutation{
		config:        c,
		op:            op,
		typ:           TypeTestPackage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestPackageID sets the ID field of the mutation.
func withTestPackageID(id uuid.UUID) testpackageOption {
	return func(m *TestPackageMutation) {
		var (
			err   error
			once  sync.Once
			value *TestPackage
		)
		m.oldValue = func(ctx context.Context) (*TestPackage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestPackage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestPackage sets the old TestPackage of the mutation.
func withTestPackage(node *TestPackage) testpackageOption {
	return func(m *TestPackageMutation) {
		m.oldValue = func(context.Context) (*TestPackage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestPackageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestPackageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TestPackage entities.
func (m *TestPackageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestPackageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestPackageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestPackage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *TestPackageMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TestPackageMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the TestPackage entity.
// If the TestPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestPackageMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TestPackageMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *TestPackageMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TestPackageMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the TestPackage entity.
// If the TestPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestPackageMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TestPackageMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TestPackageMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TestPackageMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TestPackage entity.
// If the TestPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestPackageMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TestPackageMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[testpackage.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TestPackageMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[testpackage.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TestPackageMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, testpackage.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *TestPackageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestPackageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TestPackage entity.
// If the TestPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestPackageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestPackageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *TestPackageMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[testpackage.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *TestPackageMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *TestPackageMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *TestPackageMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddComponentIDs adds the "components" edge to the Component entity by ids.
func (m *TestPackageMutation) AddComponentIDs(ids ...uuid.UUID) {
	if m.components == nil {
		m.components = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.components[ids[i]] = struct{}{}
	}
}

// ClearComponents clears the "components" edge to the Component entity.
func (m *TestPackageMutation) ClearComponents() {
	m.clearedcomponents = true
}

// ComponentsCleared reports if the "components" edge to the Component entity was cleared.
func (m *TestPackageMutation) ComponentsCleared() bool {
	return m.clearedcomponents
}

// RemoveComponentIDs removes the "components" edge to the Component entity by IDs.
func (m *TestPackageMutation) RemoveComponentIDs(ids ...uuid.UUID) {
	if m.removedcomponents == nil {
		m.removedcomponents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.components, ids[i])
		m.removedcomponents[ids[i]] = struct{}{}
	}
}

// RemovedComponents returns the removed IDs of the "components" edge to the Component entity.
func (m *TestPackageMutation) RemovedComponentsIDs() (ids []uuid.UUID) {
	for id := range m.removedcomponents {
		ids = append(ids, id)
	}
	return
}

// ComponentsIDs returns the "components" edge IDs in the mutation.
func (m *TestPackageMutation) ComponentsIDs() (ids []uuid.UUID) {
	for id := range m.components {
		ids = append(ids, id)
	}
	return
}

// ResetComponents resets all changes to the "components" edge.
func (m *TestPackageMutation) ResetComponents() {
	m.components = nil
	m.clearedcomponents = false
	m.removedcomponents = nil
}

// Where appends a list predicates to the TestPackageMutation builder.
func (m *TestPackageMutation) Where(ps ...predicate.TestPackage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestPackageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestPackageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestPackage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestPackageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestPackageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestPackage).
func (m *TestPackageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestPackageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.project != nil {
		fields = append(fields, testpackage.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, testpackage.FieldName)
	}
	if m.description != nil {
		fields = append(fields, testpackage.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, testpackage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestPackageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testpackage.FieldProjectID:
		return m.ProjectID()
	case testpackage.FieldName:
		return m.Name()
	case testpackage.FieldDescription:
		return m.Description()
	case testpackage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestPackageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testpackage.FieldProjectID:
		return m.OldProjectID(ctx)
	case testpackage.FieldName:
		return m.OldName(ctx)
	case testpackage.FieldDescription:
		return m.OldDescription(ctx)
	case testpackage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TestPackage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestPackageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testpackage.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case testpackage.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case testpackage.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case testpackage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TestPackage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestPackageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestPackageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestPackageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TestPackage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestPackageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(testpackage.FieldDescription) {
		fields = append(fields, testpackage.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestPackageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestPackageMutation) ClearField(name string) error {
	switch name {
	case testpackage.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown TestPackage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestPackageMutation) ResetField(name string) error {
	switch name {
	case testpackage.FieldProjectID:
		m.ResetProjectID()
		return nil
	case testpackage.FieldName:
		m.ResetName()
		return nil
	case testpackage.FieldDescription:
		m.ResetDescription()
		return nil
	case testpackage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TestPackage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestPackageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, testpackage.EdgeProject)
	}
	if m.components != nil {
		edges = append(edges, testpackage.EdgeComponents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestPackageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case testpackage.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case testpackage.EdgeComponents:
		ids := make([]ent.Value, 0, len(m.components))
		for id := range m.components {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestPackageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcomponents != nil {
		edges = append(edges, testpackage.EdgeComponents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestPackageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case testpackage.EdgeComponents:
		ids := make([]ent.Value, 0, len(m.removedcomponents))
		for id := range m.removedcomponents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestPackageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, testpackage.EdgeProject)
	}
	if m.clearedcomponents {
		edges = append(edges, testpackage.EdgeComponents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestPackageMutation) EdgeCleared(name string) bool {
	switch name {
	case testpackage.EdgeProject:
		return m.clearedproject
	case testpackage.EdgeComponents:
		return m.clearedcomponents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestPackageMutation) ClearEdge(name string) error {
	switch name {
	case testpackage.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown TestPackage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestPackageMutation) ResetEdge(name string) error {
	switch name {
	case testpackage.EdgeProject:
		m.ResetProject()
		return nil
	case testpackage.EdgeComponents:
		m.ResetComponents()
		return nil
	}
	return fmt.Errorf("unknown TestPackage edge %s", name)
}

// WelderMutation represents an operation that mutates the Welder nodes in the graph.
type WelderMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	stencil        *string
	active         *bool
	created_at     *time.Time
	clearedFields  map[string]struct{}
	project        *uuid.UUID
	clearedproject bool
	welds          map[uuid.UUID]struct{}
	removedwelds   map[uuid.UUID]struct{}
	clearedwelds   bool
	done           bool
	oldValue       func(context.Context) (*Welder, error)
	predicates     []predicate.Welder
}

var _ ent.Mutation = (*WelderMutation)(nil)

// welderOption allows management of the mutation configuration using functional options.
type welderOption func(*WelderMutation)

// newWelderMutation creates new mutation for the Welder entity.
func newWelderMutation(c config, op Op, opts ...welderOption) *WelderMutation {
	m := &WelderMutation{
		config:        c,
		op:            op,
		typ:           TypeWelder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWelderID sets the ID field of the mutation.
func withWelderID(id uuid.UUID) welderOption {
	return func(m *WelderMutation) {
		var (
			err   error
			once  sync.Once
			value *Welder
		)
		m.oldValue = func(ctx context.Context) (*Welder, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Welder.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWelder sets the old Welder of the mutation.
func withWelder(node *Welder) welderOption {
	return func(m *WelderMutation) {
		m.oldValue = func(context.Context) (*Welder, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WelderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WelderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Welder entities.
func (m *WelderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WelderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WelderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Welder.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *WelderMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *WelderMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Welder entity.
// If the Welder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WelderMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *WelderMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *WelderMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WelderMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Welder entity.
// If the Welder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WelderMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WelderMutation) ResetName() {
	m.name = nil
}

// SetStencil sets the "stencil" field.
func (m *WelderMutation) SetStencil(s string) {
	m.stencil = &s
}

// Stencil returns the value of the "stencil" field in the mutation.
func (m *WelderMutation) Stencil() (r string, exists bool) {
	v := m.stencil
	if v == nil {
		return
	}
	return *v, true
}

// OldStencil returns the old "stencil" field's value of the Welder entity.
// If the Welder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WelderMutation) OldStencil(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStencil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStencil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStencil: %w", err)
	}
	return oldValue.Stencil, nil
}

// ResetStencil resets all changes to the "stencil" field.
func (m *WelderMutation) ResetStencil() {
	m.stencil = nil
}

// SetActive sets the "active" field.
func (m *WelderMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *WelderMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Welder entity.
// If the Welder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WelderMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *WelderMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WelderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WelderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Welder entity.
// If the Welder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WelderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WelderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *WelderMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[welder.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *WelderMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *WelderMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *WelderMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddWeldIDs adds the "welds" edge to the FieldWeld entity by ids.
func (m *WelderMutation) AddWeldIDs(ids ...uuid.UUID) {
	if m.welds == nil {
		m.welds = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.welds[ids[i]] = struct{}{}
	}
}

// ClearWelds clears the "welds" edge to the FieldWeld entity.
func (m *WelderMutation) ClearWelds() {
	m.clearedwelds = true
}

// WeldsCleared reports if the "welds" edge to the FieldWeld entity was cleared.
func (m *WelderMutation) WeldsCleared() bool {
	return m.clearedwelds
}

// RemoveWeldIDs removes the "welds" edge to the FieldWeld entity by IDs.
func (m *WelderMutation) RemoveWeldIDs(ids ...uuid.UUID) {
	if m.removedwelds == nil {
		m.removedwelds = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.welds, ids[i])
		m.removedwelds[ids[i]] = struct{}{}
	}
}

// RemovedWelds returns the removed IDs of the "welds" edge to the FieldWeld entity.
func (m *WelderMutation) RemovedWeldsIDs() (ids []uuid.UUID) {
	for id := range m.removedwelds {
		ids = append(ids, id)
	}
	return
}

// WeldsIDs returns the "welds" edge IDs in the mutation.
func (m *WelderMutation) WeldsIDs() (ids []uuid.UUID) {
	for id := range m.welds {
		ids = append(ids, id)
	}
	return
}

// ResetWelds resets all changes to the "welds" edge.
func (m *WelderMutation) ResetWelds() {
	m.welds = nil
	m.clearedwelds = false
	m.removedwelds = nil
}

// Where appends a list predicates to the WelderMutation builder.
func (m *WelderMutation) Where(ps ...predicate.Welder) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WelderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WelderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Welder, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WelderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WelderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Welder).
func (m *WelderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WelderMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.project != nil {
		fields = append(fields, welder.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, welder.FieldName)
	}
	if m.stencil != nil {
		fields = append(fields, welder.FieldStencil)
	}
	if m.active != nil {
		fields = append(fields, welder.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, welder.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WelderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case welder.FieldProjectID:
		return m.ProjectID()
	case welder.FieldName:
		return m.Name()
	case welder.FieldStencil:
		return m.Stencil()
	case welder.FieldActive:
		return m.Active()
	case welder.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WelderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case welder.FieldProjectID:
		return m.OldProjectID(ctx)
	case welder.FieldName:
		return m.OldName(ctx)
	case welder.FieldStencil:
		return m.OldStencil(ctx)
	case welder.FieldActive:
		return m.OldActive(ctx)
	case welder.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Welder field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WelderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case welder.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case welder.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case welder.FieldStencil:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStencil(v)
		return nil
	case welder.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case welder.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Welder field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WelderMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WelderMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WelderMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Welder numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WelderMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WelderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WelderMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Welder nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WelderMutation) ResetField(name string) error {
	switch name {
	case welder.FieldProjectID:
		m.ResetProjectID()
		return nil
	case welder.FieldName:
		m.ResetName()
		return nil
	case welder.FieldStencil:
		m.ResetStencil()
		return nil
	case welder.FieldActive:
		m.ResetActive()
		return nil
	case welder.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Welder field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WelderMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, welder.EdgeProject)
	}
	if m.welds != nil {
		edges = append(edges, welder.EdgeWelds)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WelderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case welder.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case welder.EdgeWelds:
		ids := make([]ent.Value, 0, len(m.welds))
		for id := range m.welds {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WelderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedwelds != nil {
		edges = append(edges, welder.EdgeWelds)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WelderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case welder.EdgeWelds:
		ids := make([]ent.Value, 0, len(m.removedwelds))
		for id := range m.removedwelds {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WelderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, welder.EdgeProject)
	}
	if m.clearedwelds {
		edges = append(edges, welder.EdgeWelds)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WelderMutation) EdgeCleared(name string) bool {
	switch name {
	case welder.EdgeProject:
		return m.clearedproject
	case welder.EdgeWelds:
		return m.clearedwelds
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WelderMutation) ClearEdge(name string) error {
	switch name {
	case welder.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Welder unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WelderMutation) ResetEdge(name string) error {
	switch name {
	case welder.EdgeProject:
		m.ResetProject()
		return nil
	case welder.EdgeWelds:
		m.ResetWelds()
		return nil
	}
	return fmt.Errorf("unknown Welder edge %s", name)
}
