// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Area is the predicate function for area builders.
type Area func(*sql.Selector)

// Component is the predicate function for component builders.
type Component func(*sql.Selector)

// Drawing is the predicate function for drawing builders.
type Drawing func(*sql.Selector)

// FieldWeld is the predicate function for fieldweld builders.
type FieldWeld func(*sql.Selector)

// ImportJob is the predicate function for importjob builders.
type ImportJob func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// System is the predicate function for system builders.
type System func(*sql.Selector)

// TestPackage is the predicate function for testpackage builders.
type TestPackage func(*sql.Selector)

// Welder is the predicate function for welder builders.
type Welder func(*sql.Selector)
