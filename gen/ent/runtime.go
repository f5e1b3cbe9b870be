// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/db/ent/schema"
	"github.com/pipetrak/pipetrak/gen/ent/area"
	"github.com/pipetrak/pipetrak/gen/ent/component"
	"github.com/pipetrak/pipetrak/gen/ent/drawing"
	"github.com/pipetrak/pipetrak/gen/ent/fieldweld"
	"github.com/pipetrak/pipetrak/gen/ent/importjob"
	"github.com/pipetrak/pipetrak/gen/ent/project"
	"github.com/pipetrak/pipetrak/gen/ent/system"
	"github.com/pipetrak/pipetrak/gen/ent/testpackage"
	"github.com/pipetrak/pipetrak/gen/ent/welder"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	areaFields := schema.Area{}.Fields()
	_ = areaFields
	// areaDescName is the schema descriptor for name field.
	areaDescName := areaFields[2].Descriptor()
	// area.NameValidator is a validator for the "name" field. It is called by the builders before save.
	area.NameValidator = areaDescName.Validators[0].(func(string) error)
	// areaDescCreatedAt is the schema descriptor for created_at field.
	areaDescCreatedAt := areaFields[4].Descriptor()
	// area.DefaultCreatedAt holds the default value on creation for the created_at field.
	area.DefaultCreatedAt = areaDescCreatedAt.Default.(func() time.Time)
	// areaDescID is the schema descriptor for id field.
	areaDescID := areaFields[0].Descriptor()
	// area.DefaultID holds the default value on creation for the id field.
	area.DefaultID = areaDescID.Default.(func() uuid.UUID)
	componentFields := schema.Component{}.Fields()
	_ = componentFields
	// componentDescType is the schema descriptor for type field.
	componentDescType := componentFields[6].Descriptor()
	// component.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	component.TypeValidator = func() func(string) error {
		validators := componentDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// componentDescIdentityKey is the schema descriptor for identity_key field.
	componentDescIdentityKey := componentFields[7].Descriptor()
	// component.IdentityKeyValidator is a validator for the "identity_key" field. It is called by the builders before save.
	component.IdentityKeyValidator = componentDescIdentityKey.Validators[0].(func(string) error)
	// componentDescQuantity is the schema descriptor for quantity field.
	componentDescQuantity := componentFields[12].Descriptor()
	// component.DefaultQuantity holds the default value on creation for the quantity field.
	component.DefaultQuantity = componentDescQuantity.Default.(int)
	// component.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	component.QuantityValidator = componentDescQuantity.Validators[0].(func(int) error)
	// componentDescSeq is the schema descriptor for seq field.
	componentDescSeq := componentFields[13].Descriptor()
	// component.DefaultSeq holds the default value on creation for the seq field.
	component.DefaultSeq = componentDescSeq.Default.(int)
	// component.SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	component.SeqValidator = componentDescSeq.Validators[0].(func(int) error)
	// componentDescCreatedAt is the schema descriptor for created_at field.
	componentDescCreatedAt := componentFields[17].Descriptor()
	// component.DefaultCreatedAt holds the default value on creation for the created_at field.
	component.DefaultCreatedAt = componentDescCreatedAt.Default.(func() time.Time)
	// componentDescUpdatedAt is the schema descriptor for updated_at field.
	componentDescUpdatedAt := componentFields[18].Descriptor()
	// component.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	component.DefaultUpdatedAt = componentDescUpdatedAt.Default.(func() time.Time)
	// component.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	component.UpdateDefaultUpdatedAt = componentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// componentDescID is the schema descriptor for id field.
	componentDescID := componentFields[0].Descriptor()
	// component.DefaultID holds the default value on creation for the id field.
	component.DefaultID = componentDescID.Default.(func() uuid.UUID)
	drawingFields := schema.Drawing{}.Fields()
	_ = drawingFields
	// drawingDescNumber is the schema descriptor for number field.
	drawingDescNumber := drawingFields[4].Descriptor()
	// drawing.NumberValidator is a validator for the "number" field. It is called by the builders before save.
	drawing.NumberValidator = drawingDescNumber.Validators[0].(func(string) error)
	// drawingDescNormNumber is the schema descriptor for norm_number field.
	drawingDescNormNumber := drawingFields[5].Descriptor()
	// drawing.NormNumberValidator is a validator for the "norm_number" field. It is called by the builders before save.
	drawing.NormNumberValidator = drawingDescNormNumber.Validators[0].(func(string) error)
	// drawingDescCreatedAt is the schema descriptor for created_at field.
	drawingDescCreatedAt := drawingFields[8].Descriptor()
	// drawing.DefaultCreatedAt holds the default value on creation for the created_at field.
	drawing.DefaultCreatedAt = drawingDescCreatedAt.Default.(func() time.Time)
	// drawingDescUpdatedAt is the schema descriptor for updated_at field.
	drawingDescUpdatedAt := drawingFields[9].Descriptor()
	// drawing.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	drawing.DefaultUpdatedAt = drawingDescUpdatedAt.Default.(func() time.Time)
	// drawing.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	drawing.UpdateDefaultUpdatedAt = drawingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// drawingDescID is the schema descriptor for id field.
	drawingDescID := drawingFields[0].Descriptor()
	// drawing.DefaultID holds the default value on creation for the id field.
	drawing.DefaultID = drawingDescID.Default.(func() uuid.UUID)
	fieldweldFields := schema.FieldWeld{}.Fields()
	_ = fieldweldFields
	// fieldweldDescWeldNumber is the schema descriptor for weld_number field.
	fieldweldDescWeldNumber := fieldweldFields[4].Descriptor()
	// fieldweld.WeldNumberValidator is a validator for the "weld_number" field. It is called by the builders before save.
	fieldweld.WeldNumberValidator = fieldweldDescWeldNumber.Validators[0].(func(string) error)
	// fieldweldDescCreatedAt is the schema descriptor for created_at field.
	fieldweldDescCreatedAt := fieldweldFields[8].Descriptor()
	// fieldweld.DefaultCreatedAt holds the default value on creation for the created_at field.
	fieldweld.DefaultCreatedAt = fieldweldDescCreatedAt.Default.(func() time.Time)
	// fieldweldDescUpdatedAt is the schema descriptor for updated_at field.
	fieldweldDescUpdatedAt := fieldweldFields[9].Descriptor()
	// fieldweld.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fieldweld.DefaultUpdatedAt = fieldweldDescUpdatedAt.Default.(func() time.Time)
	// fieldweld.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fieldweld.UpdateDefaultUpdatedAt = fieldweldDescUpdatedAt.UpdateDefault.(func() time.Time)
	// fieldweldDescID is the schema descriptor for id field.
	fieldweldDescID := fieldweldFields[0].Descriptor()
	// fieldweld.DefaultID holds the default value on creation for the id field.
	fieldweld.DefaultID = fieldweldDescID.Default.(func() uuid.UUID)
	importjobFields := schema.ImportJob{}.Fields()
	_ = importjobFields
	// importjobDescFilename is the schema descriptor for filename field.
	importjobDescFilename := importjobFields[2].Descriptor()
	// importjob.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	importjob.FilenameValidator = importjobDescFilename.Validators[0].(func(string) error)
	// importjobDescStatus is the schema descriptor for status field.
	importjobDescStatus := importjobFields[3].Descriptor()
	// importjob.DefaultStatus holds the default value on creation for the status field.
	importjob.DefaultStatus = importjobDescStatus.Default.(string)
	// importjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	importjob.StatusValidator = importjobDescStatus.Validators[0].(func(string) error)
	// importjobDescTotalRows is the schema descriptor for total_rows field.
	importjobDescTotalRows := importjobFields[4].Descriptor()
	// importjob.DefaultTotalRows holds the default value on creation for the total_rows field.
	importjob.DefaultTotalRows = importjobDescTotalRows.Default.(int)
	// importjob.TotalRowsValidator is a validator for the "total_rows" field. It is called by the builders before save.
	importjob.TotalRowsValidator = importjobDescTotalRows.Validators[0].(func(int) error)
	// importjobDescValidRows is the schema descriptor for valid_rows field.
	importjobDescValidRows := importjobFields[5].Descriptor()
	// importjob.DefaultValidRows holds the default value on creation for the valid_rows field.
	importjob.DefaultValidRows = importjobDescValidRows.Default.(int)
	// importjob.ValidRowsValidator is a validator for the "valid_rows" field. It is called by the builders before save.
	importjob.ValidRowsValidator = importjobDescValidRows.Validators[0].(func(int) error)
	// importjobDescSkippedRows is the schema descriptor for skipped_rows field.
	importjobDescSkippedRows := importjobFields[6].Descriptor()
	// importjob.DefaultSkippedRows holds the default value on creation for the skipped_rows field.
	importjob.DefaultSkippedRows = importjobDescSkippedRows.Default.(int)
	// importjob.SkippedRowsValidator is a validator for the "skipped_rows" field. It is called by the builders before save.
	importjob.SkippedRowsValidator = importjobDescSkippedRows.Validators[0].(func(int) error)
	// importjobDescErrorRows is the schema descriptor for error_rows field.
	importjobDescErrorRows := importjobFields[7].Descriptor()
	// importjob.DefaultErrorRows holds the default value on creation for the error_rows field.
	importjob.DefaultErrorRows = importjobDescErrorRows.Default.(int)
	// importjob.ErrorRowsValidator is a validator for the "error_rows" field. It is called by the builders before save.
	importjob.ErrorRowsValidator = importjobDescErrorRows.Validators[0].(func(int) error)
	// importjobDescCreatedAt is the schema descriptor for created_at field.
	importjobDescCreatedAt := importjobFields[10].Descriptor()
	// importjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	importjob.DefaultCreatedAt = importjobDescCreatedAt.Default.(func() time.Time)
	// importjobDescID is the schema descriptor for id field.
	importjobDescID := importjobFields[0].Descriptor()
	// importjob.DefaultID holds the default value on creation for the id field.
	importjob.DefaultID = importjobDescID.Default.(func() uuid.UUID)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[5].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() uuid.UUID)
	systemFields := schema.System{}.Fields()
	_ = systemFields
	// systemDescName is the schema descriptor for name field.
	systemDescName := systemFields[2].Descriptor()
	// system.NameValidator is a validator for the "name" field. It is called by the builders before save.
	system.NameValidator = systemDescName.Validators[0].(func(string) error)
	// systemDescCreatedAt is the schema descriptor for created_at field.
	systemDescCreatedAt := systemFields[4].Descriptor()
	// system.DefaultCreatedAt holds the default value on creation for the created_at field.
	system.DefaultCreatedAt = systemDescCreatedAt.Default.(func() time.Time)
	// systemDescID is the schema descriptor for id field.
	systemDescID := systemFields[0].Descriptor()
	// system.DefaultID holds the default value on creation for the id field.
	system.DefaultID = systemDescID.Default.(func() uuid.UUID)
	testpackageFields := schema.TestPackage{}.Fields()
	_ = testpackageFields
	// testpackageDescName is the schema descriptor for name field.
	testpackageDescName := testpackageFields[2].Descriptor()
	// testpackage.NameValidator is a validator for the "name" field. It is called by the builders before save.
	testpackage.NameValidator = testpackageDescName.Validators[0].(func(string) error)
	// testpackageDescCreatedAt is the schema descriptor for created_at field.
	testpackageDescCreatedAt := testpackageFields[4].Descriptor()
	// testpackage.DefaultCreatedAt holds the default value on creation for the created_at field.
	testpackage.DefaultCreatedAt = testpackageDescCreatedAt.Default.(func() time.Time)
	// testpackageDescID is the schema descriptor for id field.
	testpackageDescID := testpackageFields[0].Descriptor()
	// testpackage.DefaultID holds the default value on creation for the id field.
	testpackage.DefaultID = testpackageDescID.Default.(func() uuid.UUID)
	welderFields := schema.Welder{}.Fields()
	_ = welderFields
	// welderDescName is the schema descriptor for name field.
	welderDescName := welderFields[2].Descriptor()
	// welder.NameValidator is a validator for the "name" field. It is called by the builders before save.
	welder.NameValidator = welderDescName.Validators[0].(func(string) error)
	// welderDescStencil is the schema descriptor for stencil field.
	welderDescStencil := welderFields[3].Descriptor()
	// welder.StencilValidator is a validator for the "stencil" field. It is called by the builders before save.
	welder.StencilValidator = welderDescStencil.Validators[0].(func(string) error)
	// welderDescActive is the schema descriptor for active field.
	welderDescActive := welderFields[4].Descriptor()
	// welder.DefaultActive holds the default value on creation for the active field.
	welder.DefaultActive = welderDescActive.Default.(bool)
	// welderDescCreatedAt is the schema descriptor for created_at field.
	welderDescCreatedAt := welderFields[5].Descriptor()
	// welder.DefaultCreatedAt holds the default value on creation for the created_at field.
	welder.DefaultCreatedAt = welderDescCreatedAt.Default.(func() time.Time)
	// welderDescID is the schema descriptor for id field.
	welderDescID := welderFields[0].Descriptor()
	// welder.DefaultID holds the default value on creation for the id field.
	welder.DefaultID = welderDescID.Default.(func() uuid.UUID)
}
