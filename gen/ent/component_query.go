// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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

// ComponentQuery is the builder for querying Component entities.
type ComponentQuery struct {
	config
	ctx             *QueryContext
	order           []component.OrderOption
	inters          []Interceptor
	predicates      []predicate.Component
	withProject     *ProjectQuery
	withDrawing     *DrawingQuery
	withArea        *AreaQuery
	withSystem      *SystemQuery
	withTestPackage *TestPackageQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ComponentQuery builder.
func (_q *ComponentQuery) Where(ps ...predicate.Component) *ComponentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ComponentQuery) Limit(limit int) *ComponentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ComponentQuery) Offset(offset int) *ComponentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ComponentQuery) Unique(unique bool) *ComponentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ComponentQuery) Order(o ...component.OrderOption) *ComponentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryProject chains the current query on the "project" edge.
func (_q *ComponentQuery) QueryProject() *ProjectQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(component.Table, component.FieldID, selector),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, component.ProjectTable, component.ProjectColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDrawing chains the current query on the "drawing" edge.
func (_q *ComponentQuery) QueryDrawing() *DrawingQuery {
	query := (&DrawingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(component.Table, component.FieldID, selector),
			sqlgraph.To(drawing.Table, drawing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, component.DrawingTable, component.DrawingColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryArea chains the current query on the "area" edge.
func (_q *ComponentQuery) QueryArea() *AreaQuery {
	query := (&AreaClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(component.Table, component.FieldID, selector),
			sqlgraph.To(area.Table, area.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, component.AreaTable, component.AreaColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySystem chains the current query on the "system" edge.
func (_q *ComponentQuery) QuerySystem() *SystemQuery {
	query := (&SystemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(component.Table, component.FieldID, selector),
			sqlgraph.To(system.Table, system.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, component.SystemTable, component.SystemColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTestPackage chains the current query on the "test_package" edge.
func (_q *ComponentQuery) QueryTestPackage() *TestPackageQuery {
	query := (&TestPackageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(component.Table, component.FieldID, selector),
			sqlgraph.To(testpackage.Table, testpackage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, component.TestPackageTable, component.TestPackageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Component entity from the query.
// Returns a *NotFoundError when no Component was found.
func (_q *ComponentQuery) First(ctx context.Context) (*Component, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{component.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ComponentQuery) FirstX(ctx context.Context) *Component {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Component ID from the query.
// Returns a *NotFoundError when no Component ID was found.
func (_q *ComponentQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{component.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ComponentQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Component entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Component entity is found.
// Returns a *NotFoundError when no Component entities are found.
func (_q *ComponentQuery) Only(ctx context.Context) (*Component, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{component.Label}
	default:
		return nil, &NotSingularError{component.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ComponentQuery) OnlyX(ctx context.Context) *Component {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Component ID in the query.
// Returns a *NotSingularError when more than one Component ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ComponentQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{component.Label}
	default:
		err = &NotSingularError{component.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ComponentQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Components.
func (_q *ComponentQuery) All(ctx context.Context) ([]*Component, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Component, *ComponentQuery]()
	return withInterceptors[[]*Component](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ComponentQuery) AllX(ctx context.Context) []*Component {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Component IDs.
func (_q *ComponentQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(component.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ComponentQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ComponentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ComponentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ComponentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ComponentQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ComponentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ComponentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ComponentQuery) Clone() *ComponentQuery {
	if _q == nil {
		return nil
	}
	return &ComponentQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]component.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.Component{}, _q.predicates...),
		withProject:     _q.withProject.Clone(),
		withDrawing:     _q.withDrawing.Clone(),
		withArea:        _q.withArea.Clone(),
		withSystem:      _q.withSystem.Clone(),
		withTestPackage: _q.withTestPackage.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithProject tells the query-builder to eager-load the nodes that are connected to
// the "project" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ComponentQuery) WithProject(opts ...func(*ProjectQuery)) *ComponentQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProject = query
	return _q
}

// WithDrawing tells the query-builder to eager-load the nodes that are connected to
// the "drawing" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ComponentQuery) WithDrawing(opts ...func(*DrawingQuery)) *ComponentQuery {
	query := (&DrawingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDrawing = query
	return _q
}

// WithArea tells the query-builder to eager-load the nodes that are connected to
// the "area" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ComponentQuery) WithArea(opts ...func(*AreaQuery)) *ComponentQuery {
	query := (&AreaClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withArea = query
	return _q
}

// WithSystem tells the query-builder to eager-load the nodes that are connected to
// the "system" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ComponentQuery) WithSystem(opts ...func(*SystemQuery)) *ComponentQuery {
	query := (&SystemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSystem = query
	return _q
}

// WithTestPackage tells the query-builder to eager-load the nodes that are connected to
// the "test_package" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ComponentQuery) WithTestPackage(opts ...func(*TestPackageQuery)) *ComponentQuery {
	query := (&TestPackageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTestPackage = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ProjectID uuid.UUID `json:"project_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Component.Query().
//		GroupBy(component.FieldProjectID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ComponentQuery) GroupBy(field string, fields ...string) *ComponentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ComponentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = component.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ProjectID uuid.UUID `json:"project_id,omitempty"`
//	}
//
//	client.Component.Query().
//		Select(component.FieldProjectID).
//		Scan(ctx, &v)
func (_q *ComponentQuery) Select(fields ...string) *ComponentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ComponentSelect{ComponentQuery: _q}
	sbuild.label = component.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ComponentSelect configured with the given aggregations.
func (_q *ComponentQuery) Aggregate(fns ...AggregateFunc) *ComponentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ComponentQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !component.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ComponentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Component, error) {
	var (
		nodes       = []*Component{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withProject != nil,
			_q.withDrawing != nil,
			_q.withArea != nil,
			_q.withSystem != nil,
			_q.withTestPackage != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Component).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Component{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withProject; query != nil {
		if err := _q.loadProject(ctx, query, nodes, nil,
			func(n *Component, e *Project) { n.Edges.Project = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDrawing; query != nil {
		if err := _q.loadDrawing(ctx, query, nodes, nil,
			func(n *Component, e *Drawing) { n.Edges.Drawing = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withArea; query != nil {
		if err := _q.loadArea(ctx, query, nodes, nil,
			func(n *Component, e *Area) { n.Edges.Area = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSystem; query != nil {
		if err := _q.loadSystem(ctx, query, nodes, nil,
			func(n *Component, e *System) { n.Edges.System = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTestPackage; query != nil {
		if err := _q.loadTestPackage(ctx, query, nodes, nil,
			func(n *Component, e *TestPackage) { n.Edges.TestPackage = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ComponentQuery) loadProject(ctx context.Context, query *ProjectQuery, nodes []*Component, init func(*Component), assign func(*Component, *Project)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Component)
	for i := range nodes {
		fk := nodes[i].ProjectID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(project.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "project_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ComponentQuery) loadDrawing(ctx context.Context, query *DrawingQuery, nodes []*Component, init func(*Component), assign func(*Component, *Drawing)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Component)
	for i := range nodes {
		if nodes[i].DrawingID == nil {
			continue
		}
		fk := *nodes[i].DrawingID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(drawing.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "drawing_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ComponentQuery) loadArea(ctx context.Context, query *AreaQuery, nodes []*Component, init func(*Component), assign func(*Component, *Area)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Component)
	for i := range nodes {
		if nodes[i].AreaID == nil {
			continue
		}
		fk := *nodes[i].AreaID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(area.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "area_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ComponentQuery) loadSystem(ctx context.Context, query *SystemQuery, nodes []*Component, init func(*Component), assign func(*Component, *System)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Component)
	for i := range nodes {
		if nodes[i].SystemID == nil {
			continue
		}
		fk := *nodes[i].SystemID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(system.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "system_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ComponentQuery) loadTestPackage(ctx context.Context, query *TestPackageQuery, nodes []*Component, init func(*Component), assign func(*Component, *TestPackage)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Component)
	for i := range nodes {
		if nodes[i].TestPackageID == nil {
			continue
		}
		fk := *nodes[i].TestPackageID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(testpackage.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "test_package_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ComponentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ComponentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(component.Table, component.Columns, sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, component.FieldID)
		for i := range fields {
			if fields[i] != component.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withProject != nil {
			_spec.Node.AddColumnOnce(component.FieldProjectID)
		}
		if _q.withDrawing != nil {
			_spec.Node.AddColumnOnce(component.FieldDrawingID)
		}
		if _q.withArea != nil {
			_spec.Node.AddColumnOnce(component.FieldAreaID)
		}
		if _q.withSystem != nil {
			_spec.Node.AddColumnOnce(component.FieldSystemID)
		}
		if _q.withTestPackage != nil {
			_spec.Node.AddColumnOnce(component.FieldTestPackageID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ComponentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(component.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = component.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ComponentGroupBy is the group-by builder for Component entities.
type ComponentGroupBy struct {
	selector
	build *ComponentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ComponentGroupBy) Aggregate(fns ...AggregateFunc) *ComponentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ComponentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ComponentQuery, *ComponentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ComponentGroupBy) sqlScan(ctx context.Context, root *ComponentQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ComponentSelect is the builder for selecting fields of Component entities.
type ComponentSelect struct {
	*ComponentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ComponentSelect) Aggregate(fns ...AggregateFunc) *ComponentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ComponentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ComponentQuery, *ComponentSelect](ctx, _s.ComponentQuery, _s, _s.inters, v)
}

func (_s *ComponentSelect) sqlScan(ctx context.Context, root *ComponentQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
