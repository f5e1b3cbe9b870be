// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/project"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// JobNumber holds the value of the "job_number" field.
	JobNumber *string `json:"job_number,omitempty"`
	// Client holds the value of the "client" field.
	Client *string `json:"client,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges        ProjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// Areas holds the value of the areas edge.
	Areas []*Area `json:"areas,omitempty"`
	// Systems holds the value of the systems edge.
	Systems []*System `json:"systems,omitempty"`
	// TestPackages holds the value of the test_packages edge.
	TestPackages []*TestPackage `json:"test_packages,omitempty"`
	// Drawings holds the value of the drawings edge.
	Drawings []*Drawing `json:"drawings,omitempty"`
	// Components holds the value of the components edge.
	Components []*Component `json:"components,omitempty"`
	// FieldWelds holds the value of the field_welds edge.
	FieldWelds []*FieldWeld `json:"field_welds,omitempty"`
	// Welders holds the value of the welders edge.
	Welders []*Welder `json:"welders,omitempty"`
	// ImportJobs holds the value of the import_jobs edge.
	ImportJobs []*ImportJob `json:"import_jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// AreasOrErr returns the Areas value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) AreasOrErr() ([]*Area, error) {
	if e.loadedTypes[0] {
		return e.Areas, nil
	}
	return nil, &NotLoadedError{edge: "areas"}
}

// SystemsOrErr returns the Systems value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) SystemsOrErr() ([]*System, error) {
	if e.loadedTypes[1] {
		return e.Systems, nil
	}
	return nil, &NotLoadedError{edge: "systems"}
}

// TestPackagesOrErr returns the TestPackages value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) TestPackagesOrErr() ([]*TestPackage, error) {
	if e.loadedTypes[2] {
		return e.TestPackages, nil
	}
	return nil, &NotLoadedError{edge: "test_packages"}
}

// DrawingsOrErr returns the Drawings value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) DrawingsOrErr() ([]*Drawing, error) {
	if e.loadedTypes[3] {
		return e.Drawings, nil
	}
	return nil, &NotLoadedError{edge: "drawings"}
}

// ComponentsOrErr returns the Components value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) ComponentsOrErr() ([]*Component, error) {
	if e.loadedTypes[4] {
		return e.Components, nil
	}
	return nil, &NotLoadedError{edge: "components"}
}

// FieldWeldsOrErr returns the FieldWelds value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) FieldWeldsOrErr() ([]*FieldWeld, error) {
	if e.loadedTypes[5] {
		return e.FieldWelds, nil
	}
	return nil, &NotLoadedError{edge: "field_welds"}
}

// WeldersOrErr returns the Welders value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) WeldersOrErr() ([]*Welder, error) {
	if e.loadedTypes[6] {
		return e.Welders, nil
	}
	return nil, &NotLoadedError{edge: "welders"}
}

// ImportJobsOrErr returns the ImportJobs value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) ImportJobsOrErr() ([]*ImportJob, error) {
	if e.loadedTypes[7] {
		return e.ImportJobs, nil
	}
	return nil, &NotLoadedError{edge: "import_jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldName, project.FieldJobNumber, project.FieldClient:
			values[i] = new(sql.NullString)
		case project.FieldCreatedAt, project.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case project.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case project.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case project.FieldJobNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_number", values[i])
			} else if value.Valid {
				_m.JobNumber = new(string)
				*_m.JobNumber = value.String
			}
		case project.FieldClient:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client", values[i])
			} else if value.Valid {
				_m.Client = new(string)
				*_m.Client = value.String
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case project.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAreas queries the "areas" edge of the Project entity.
func (_m *Project) QueryAreas() *AreaQuery {
	return NewProjectClient(_m.config).QueryAreas(_m)
}

// QuerySystems queries the "systems" edge of the Project entity.
func (_m *Project) QuerySystems() *SystemQuery {
	return NewProjectClient(_m.config).QuerySystems(_m)
}

// QueryTestPackages queries the "test_packages" edge of the Project entity.
func (_m *Project) QueryTestPackages() *TestPackageQuery {
	return NewProjectClient(_m.config).QueryTestPackages(_m)
}

// QueryDrawings queries the "drawings" edge of the Project entity.
func (_m *Project) QueryDrawings() *DrawingQuery {
	return NewProjectClient(_m.config).QueryDrawings(_m)
}

// QueryComponents queries the "components" edge of the Project entity.
func (_m *Project) QueryComponents() *ComponentQuery {
	return NewProjectClient(_m.config).QueryComponents(_m)
}

// QueryFieldWelds queries the "field_welds" edge of the Project entity.
func (_m *Project) QueryFieldWelds() *FieldWeldQuery {
	return NewProjectClient(_m.config).QueryFieldWelds(_m)
}

// QueryWelders queries the "welders" edge of the Project entity.
func (_m *Project) QueryWelders() *WelderQuery {
	return NewProjectClient(_m.config).QueryWelders(_m)
}

// QueryImportJobs queries the "import_jobs" edge of the Project entity.
func (_m *Project) QueryImportJobs() *ImportJobQuery {
	return NewProjectClient(_m.config).QueryImportJobs(_m)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.JobNumber; v != nil {
		builder.WriteString("job_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Client; v != nil {
		builder.WriteString("client=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
