// Code generated by ent, DO NOT EDIT.

package component

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldProjectID, v))
}

// DrawingID applies equality check predicate on the "drawing_id" field. It's identical to DrawingIDEQ.
func DrawingID(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldDrawingID, v))
}

// AreaID applies equality check predicate on the "area_id" field. It's identical to AreaIDEQ.
func AreaID(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldAreaID, v))
}

// SystemID applies equality check predicate on the "system_id" field. It's identical to SystemIDEQ.
func SystemID(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldSystemID, v))
}

// TestPackageID applies equality check predicate on the "test_package_id" field. It's identical to TestPackageIDEQ.
func TestPackageID(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldTestPackageID, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldType, v))
}

// IdentityKey applies equality check predicate on the "identity_key" field. It's identical to IdentityKeyEQ.
func IdentityKey(v string) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldIdentityKey, v))
}

// CommodityCode applies equality check predicate on the "commodity_code" field. It's identical to CommodityCodeEQ.
func CommodityCode(v string) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldCommodityCode, v))
}

// Spec applies equality check predicate on the "spec" field. It's identical to SpecEQ.
func Spec(v string) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldSpec, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldDescription, v))
}

// Size applies equality check predicate on the "size" field. It's identical to SizeEQ.
func Size(v string) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldSize, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldQuantity, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldSeq, v))
}

// Comments applies equality check predicate on the "comments" field. It's identical to CommentsEQ.
func Comments(v string) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldComments, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldProjectID, vs...))
}

// DrawingIDEQ applies the EQ predicate on the "drawing_id" field.
func DrawingIDEQ(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldDrawingID, v))
}

// DrawingIDNEQ applies the NEQ predicate on the "drawing_id" field.
func DrawingIDNEQ(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldDrawingID, v))
}

// DrawingIDIn applies the In predicate on the "drawing_id" field.
func DrawingIDIn(vs ...uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldDrawingID, vs...))
}

// DrawingIDNotIn applies the NotIn predicate on the "drawing_id" field.
func DrawingIDNotIn(vs ...uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldDrawingID, vs...))
}

// DrawingIDIsNil applies the IsNil predicate on the "drawing_id" field.
func DrawingIDIsNil() predicate.Component {
	return predicate.Component(sql.FieldIsNull(FieldDrawingID))
}

// DrawingIDNotNil applies the NotNil predicate on the "drawing_id" field.
func DrawingIDNotNil() predicate.Component {
	return predicate.Component(sql.FieldNotNull(FieldDrawingID))
}

// AreaIDEQ applies the EQ predicate on the "area_id" field.
func AreaIDEQ(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldAreaID, v))
}

// AreaIDNEQ applies the NEQ predicate on the "area_id" field.
func AreaIDNEQ(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldAreaID, v))
}

// AreaIDIn applies the In predicate on the "area_id" field.
func AreaIDIn(vs ...uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldAreaID, vs...))
}

// AreaIDNotIn applies the NotIn predicate on the "area_id" field.
func AreaIDNotIn(vs ...uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldAreaID, vs...))
}

// AreaIDIsNil applies the IsNil predicate on the "area_id" field.
func AreaIDIsNil() predicate.Component {
	return predicate.Component(sql.FieldIsNull(FieldAreaID))
}

// AreaIDNotNil applies the NotNil predicate on the "area_id" field.
func AreaIDNotNil() predicate.Component {
	return predicate.Component(sql.FieldNotNull(FieldAreaID))
}

// SystemIDEQ applies the EQ predicate on the "system_id" field.
func SystemIDEQ(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldSystemID, v))
}

// SystemIDNEQ applies the NEQ predicate on the "system_id" field.
func SystemIDNEQ(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldSystemID, v))
}

// SystemIDIn applies the In predicate on the "system_id" field.
func SystemIDIn(vs ...uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldSystemID, vs...))
}

// SystemIDNotIn applies the NotIn predicate on the "system_id" field.
func SystemIDNotIn(vs ...uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldSystemID, vs...))
}

// SystemIDIsNil applies the IsNil predicate on the "system_id" field.
func SystemIDIsNil() predicate.Component {
	return predicate.Component(sql.FieldIsNull(FieldSystemID))
}

// SystemIDNotNil applies the NotNil predicate on the "system_id" field.
func SystemIDNotNil() predicate.Component {
	return predicate.Component(sql.FieldNotNull(FieldSystemID))
}

// TestPackageIDEQ applies the EQ predicate on the "test_package_id" field.
func TestPackageIDEQ(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldTestPackageID, v))
}

// TestPackageIDNEQ applies the NEQ predicate on the "test_package_id" field.
func TestPackageIDNEQ(v uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldTestPackageID, v))
}

// TestPackageIDIn applies the In predicate on the "test_package_id" field.
func TestPackageIDIn(vs ...uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldTestPackageID, vs...))
}

// TestPackageIDNotIn applies the NotIn predicate on the "test_package_id" field.
func TestPackageIDNotIn(vs ...uuid.UUID) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldTestPackageID, vs...))
}

// TestPackageIDIsNil applies the IsNil predicate on the "test_package_id" field.
func TestPackageIDIsNil() predicate.Component {
	return predicate.Component(sql.FieldIsNull(FieldTestPackageID))
}

// TestPackageIDNotNil applies the NotNil predicate on the "test_package_id" field.
func TestPackageIDNotNil() predicate.Component {
	return predicate.Component(sql.FieldNotNull(FieldTestPackageID))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Component {
	return predicate.Component(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Component {
	return predicate.Component(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Component {
	return predicate.Component(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Component {
	return predicate.Component(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Component {
	return predicate.Component(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Component {
	return predicate.Component(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Component {
	return predicate.Component(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Component {
	return predicate.Component(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Component {
	return predicate.Component(sql.FieldContainsFold(FieldType, v))
}

// IdentityKeyEQ applies the EQ predicate on the "identity_key" field.
func IdentityKeyEQ(v string) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldIdentityKey, v))
}

// IdentityKeyNEQ applies the NEQ predicate on the "identity_key" field.
func IdentityKeyNEQ(v string) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldIdentityKey, v))
}

// IdentityKeyIn applies the In predicate on the "identity_key" field.
func IdentityKeyIn(vs ...string) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldIdentityKey, vs...))
}

// IdentityKeyNotIn applies the NotIn predicate on the "identity_key" field.
func IdentityKeyNotIn(vs ...string) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldIdentityKey, vs...))
}

// IdentityKeyGT applies the GT predicate on the "identity_key" field.
func IdentityKeyGT(v string) predicate.Component {
	return predicate.Component(sql.FieldGT(FieldIdentityKey, v))
}

// IdentityKeyGTE applies the GTE predicate on the "identity_key" field.
func IdentityKeyGTE(v string) predicate.Component {
	return predicate.Component(sql.FieldGTE(FieldIdentityKey, v))
}

// IdentityKeyLT applies the LT predicate on the "identity_key" field.
func IdentityKeyLT(v string) predicate.Component {
	return predicate.Component(sql.FieldLT(FieldIdentityKey, v))
}

// IdentityKeyLTE applies the LTE predicate on the "identity_key" field.
func IdentityKeyLTE(v string) predicate.Component {
	return predicate.Component(sql.FieldLTE(FieldIdentityKey, v))
}

// IdentityKeyContains applies the Contains predicate on the "identity_key" field.
func IdentityKeyContains(v string) predicate.Component {
	return predicate.Component(sql.FieldContains(FieldIdentityKey, v))
}

// IdentityKeyHasPrefix applies the HasPrefix predicate on the "identity_key" field.
func IdentityKeyHasPrefix(v string) predicate.Component {
	return predicate.Component(sql.FieldHasPrefix(FieldIdentityKey, v))
}

// IdentityKeyHasSuffix applies the HasSuffix predicate on the "identity_key" field.
func IdentityKeyHasSuffix(v string) predicate.Component {
	return predicate.Component(sql.FieldHasSuffix(FieldIdentityKey, v))
}

// IdentityKeyEqualFold applies the EqualFold predicate on the "identity_key" field.
func IdentityKeyEqualFold(v string) predicate.Component {
	return predicate.Component(sql.FieldEqualFold(FieldIdentityKey, v))
}

// IdentityKeyContainsFold applies the ContainsFold predicate on the "identity_key" field.
func IdentityKeyContainsFold(v string) predicate.Component {
	return predicate.Component(sql.FieldContainsFold(FieldIdentityKey, v))
}

// CommodityCodeEQ applies the EQ predicate on the "commodity_code" field.
func CommodityCodeEQ(v string) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldCommodityCode, v))
}

// CommodityCodeNEQ applies the NEQ predicate on the "commodity_code" field.
func CommodityCodeNEQ(v string) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldCommodityCode, v))
}

// CommodityCodeIn applies the In predicate on the "commodity_code" field.
func CommodityCodeIn(vs ...string) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldCommodityCode, vs...))
}

// CommodityCodeNotIn applies the NotIn predicate on the "commodity_code" field.
func CommodityCodeNotIn(vs ...string) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldCommodityCode, vs...))
}

// CommodityCodeGT applies the GT predicate on the "commodity_code" field.
func CommodityCodeGT(v string) predicate.Component {
	return predicate.Component(sql.FieldGT(FieldCommodityCode, v))
}

// CommodityCodeGTE applies the GTE predicate on the "commodity_code" field.
func CommodityCodeGTE(v string) predicate.Component {
	return predicate.Component(sql.FieldGTE(FieldCommodityCode, v))
}

// CommodityCodeLT applies the LT predicate on the "commodity_code" field.
func CommodityCodeLT(v string) predicate.Component {
	return predicate.Component(sql.FieldLT(FieldCommodityCode, v))
}

// CommodityCodeLTE applies the LTE predicate on the "commodity_code" field.
func CommodityCodeLTE(v string) predicate.Component {
	return predicate.Component(sql.FieldLTE(FieldCommodityCode, v))
}

// CommodityCodeContains applies the Contains predicate on the "commodity_code" field.
func CommodityCodeContains(v string) predicate.Component {
	return predicate.Component(sql.FieldContains(FieldCommodityCode, v))
}

// CommodityCodeHasPrefix applies the HasPrefix predicate on the "commodity_code" field.
func CommodityCodeHasPrefix(v string) predicate.Component {
	return predicate.Component(sql.FieldHasPrefix(FieldCommodityCode, v))
}

// CommodityCodeHasSuffix applies the HasSuffix predicate on the "commodity_code" field.
func CommodityCodeHasSuffix(v string) predicate.Component {
	return predicate.Component(sql.FieldHasSuffix(FieldCommodityCode, v))
}

// CommodityCodeIsNil applies the IsNil predicate on the "commodity_code" field.
func CommodityCodeIsNil() predicate.Component {
	return predicate.Component(sql.FieldIsNull(FieldCommodityCode))
}

// CommodityCodeNotNil applies the NotNil predicate on the "commodity_code" field.
func CommodityCodeNotNil() predicate.Component {
	return predicate.Component(sql.FieldNotNull(FieldCommodityCode))
}

// CommodityCodeEqualFold applies the EqualFold predicate on the "commodity_code" field.
func CommodityCodeEqualFold(v string) predicate.Component {
	return predicate.Component(sql.FieldEqualFold(FieldCommodityCode, v))
}

// CommodityCodeContainsFold applies the ContainsFold predicate on the "commodity_code" field.
func CommodityCodeContainsFold(v string) predicate.Component {
	return predicate.Component(sql.FieldContainsFold(FieldCommodityCode, v))
}

// SpecEQ applies the EQ predicate on the "spec" field.
func SpecEQ(v string) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldSpec, v))
}

// SpecNEQ applies the NEQ predicate on the "spec" field.
func SpecNEQ(v string) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldSpec, v))
}

// SpecIn applies the In predicate on the "spec" field.
func SpecIn(vs ...string) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldSpec, vs...))
}

// SpecNotIn applies the NotIn predicate on the "spec" field.
func SpecNotIn(vs ...string) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldSpec, vs...))
}

// SpecGT applies the GT predicate on the "spec" field.
func SpecGT(v string) predicate.Component {
	return predicate.Component(sql.FieldGT(FieldSpec, v))
}

// SpecGTE applies the GTE predicate on the "spec" field.
func SpecGTE(v string) predicate.Component {
	return predicate.Component(sql.FieldGTE(FieldSpec, v))
}

// SpecLT applies the LT predicate on the "spec" field.
func SpecLT(v string) predicate.Component {
	return predicate.Component(sql.FieldLT(FieldSpec, v))
}

// SpecLTE applies the LTE predicate on the "spec" field.
func SpecLTE(v string) predicate.Component {
	return predicate.Component(sql.FieldLTE(FieldSpec, v))
}

// SpecContains applies the Contains predicate on the "spec" field.
func SpecContains(v string) predicate.Component {
	return predicate.Component(sql.FieldContains(FieldSpec, v))
}

// SpecHasPrefix applies the HasPrefix predicate on the "spec" field.
func SpecHasPrefix(v string) predicate.Component {
	return predicate.Component(sql.FieldHasPrefix(FieldSpec, v))
}

// SpecHasSuffix applies the HasSuffix predicate on the "spec" field.
func SpecHasSuffix(v string) predicate.Component {
	return predicate.Component(sql.FieldHasSuffix(FieldSpec, v))
}

// SpecIsNil applies the IsNil predicate on the "spec" field.
func SpecIsNil() predicate.Component {
	return predicate.Component(sql.FieldIsNull(FieldSpec))
}

// SpecNotNil applies the NotNil predicate on the "spec" field.
func SpecNotNil() predicate.Component {
	return predicate.Component(sql.FieldNotNull(FieldSpec))
}

// SpecEqualFold applies the EqualFold predicate on the "spec" field.
func SpecEqualFold(v string) predicate.Component {
	return predicate.Component(sql.FieldEqualFold(FieldSpec, v))
}

// SpecContainsFold applies the ContainsFold predicate on the "spec" field.
func SpecContainsFold(v string) predicate.Component {
	return predicate.Component(sql.FieldContainsFold(FieldSpec, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Component {
	return predicate.Component(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Component {
	return predicate.Component(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Component {
	return predicate.Component(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Component {
	return predicate.Component(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Component {
	return predicate.Component(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Component {
	return predicate.Component(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Component {
	return predicate.Component(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Component {
	return predicate.Component(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Component {
	return predicate.Component(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Component {
	return predicate.Component(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Component {
	return predicate.Component(sql.FieldContainsFold(FieldDescription, v))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v string) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v string) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...string) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...string) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldSize, vs...))
}

// SizeGT applies the GT predicate on the "size" field.
func SizeGT(v string) predicate.Component {
	return predicate.Component(sql.FieldGT(FieldSize, v))
}

// SizeGTE applies the GTE predicate on the "size" field.
func SizeGTE(v string) predicate.Component {
	return predicate.Component(sql.FieldGTE(FieldSize, v))
}

// SizeLT applies the LT predicate on the "size" field.
func SizeLT(v string) predicate.Component {
	return predicate.Component(sql.FieldLT(FieldSize, v))
}

// SizeLTE applies the LTE predicate on the "size" field.
func SizeLTE(v string) predicate.Component {
	return predicate.Component(sql.FieldLTE(FieldSize, v))
}

// SizeContains applies the Contains predicate on the "size" field.
func SizeContains(v string) predicate.Component {
	return predicate.Component(sql.FieldContains(FieldSize, v))
}

// SizeHasPrefix applies the HasPrefix predicate on the "size" field.
func SizeHasPrefix(v string) predicate.Component {
	return predicate.Component(sql.FieldHasPrefix(FieldSize, v))
}

// SizeHasSuffix applies the HasSuffix predicate on the "size" field.
func SizeHasSuffix(v string) predicate.Component {
	return predicate.Component(sql.FieldHasSuffix(FieldSize, v))
}

// SizeIsNil applies the IsNil predicate on the "size" field.
func SizeIsNil() predicate.Component {
	return predicate.Component(sql.FieldIsNull(FieldSize))
}

// SizeNotNil applies the NotNil predicate on the "size" field.
func SizeNotNil() predicate.Component {
	return predicate.Component(sql.FieldNotNull(FieldSize))
}

// SizeEqualFold applies the EqualFold predicate on the "size" field.
func SizeEqualFold(v string) predicate.Component {
	return predicate.Component(sql.FieldEqualFold(FieldSize, v))
}

// SizeContainsFold applies the ContainsFold predicate on the "size" field.
func SizeContainsFold(v string) predicate.Component {
	return predicate.Component(sql.FieldContainsFold(FieldSize, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.Component {
	return predicate.Component(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.Component {
	return predicate.Component(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.Component {
	return predicate.Component(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.Component {
	return predicate.Component(sql.FieldLTE(FieldQuantity, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.Component {
	return predicate.Component(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.Component {
	return predicate.Component(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.Component {
	return predicate.Component(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.Component {
	return predicate.Component(sql.FieldLTE(FieldSeq, v))
}

// CommentsEQ applies the EQ predicate on the "comments" field.
func CommentsEQ(v string) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldComments, v))
}

// CommentsNEQ applies the NEQ predicate on the "comments" field.
func CommentsNEQ(v string) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldComments, v))
}

// CommentsIn applies the In predicate on the "comments" field.
func CommentsIn(vs ...string) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldComments, vs...))
}

// CommentsNotIn applies the NotIn predicate on the "comments" field.
func CommentsNotIn(vs ...string) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldComments, vs...))
}

// CommentsGT applies the GT predicate on the "comments" field.
func CommentsGT(v string) predicate.Component {
	return predicate.Component(sql.FieldGT(FieldComments, v))
}

// CommentsGTE applies the GTE predicate on the "comments" field.
func CommentsGTE(v string) predicate.Component {
	return predicate.Component(sql.FieldGTE(FieldComments, v))
}

// CommentsLT applies the LT predicate on the "comments" field.
func CommentsLT(v string) predicate.Component {
	return predicate.Component(sql.FieldLT(FieldComments, v))
}

// CommentsLTE applies the LTE predicate on the "comments" field.
func CommentsLTE(v string) predicate.Component {
	return predicate.Component(sql.FieldLTE(FieldComments, v))
}

// CommentsContains applies the Contains predicate on the "comments" field.
func CommentsContains(v string) predicate.Component {
	return predicate.Component(sql.FieldContains(FieldComments, v))
}

// CommentsHasPrefix applies the HasPrefix predicate on the "comments" field.
func CommentsHasPrefix(v string) predicate.Component {
	return predicate.Component(sql.FieldHasPrefix(FieldComments, v))
}

// CommentsHasSuffix applies the HasSuffix predicate on the "comments" field.
func CommentsHasSuffix(v string) predicate.Component {
	return predicate.Component(sql.FieldHasSuffix(FieldComments, v))
}

// CommentsIsNil applies the IsNil predicate on the "comments" field.
func CommentsIsNil() predicate.Component {
	return predicate.Component(sql.FieldIsNull(FieldComments))
}

// CommentsNotNil applies the NotNil predicate on the "comments" field.
func CommentsNotNil() predicate.Component {
	return predicate.Component(sql.FieldNotNull(FieldComments))
}

// CommentsEqualFold applies the EqualFold predicate on the "comments" field.
func CommentsEqualFold(v string) predicate.Component {
	return predicate.Component(sql.FieldEqualFold(FieldComments, v))
}

// CommentsContainsFold applies the ContainsFold predicate on the "comments" field.
func CommentsContainsFold(v string) predicate.Component {
	return predicate.Component(sql.FieldContainsFold(FieldComments, v))
}

// AttributesIsNil applies the IsNil predicate on the "attributes" field.
func AttributesIsNil() predicate.Component {
	return predicate.Component(sql.FieldIsNull(FieldAttributes))
}

// AttributesNotNil applies the NotNil predicate on the "attributes" field.
func AttributesNotNil() predicate.Component {
	return predicate.Component(sql.FieldNotNull(FieldAttributes))
}

// CurrentMilestonesIsNil applies the IsNil predicate on the "current_milestones" field.
func CurrentMilestonesIsNil() predicate.Component {
	return predicate.Component(sql.FieldIsNull(FieldCurrentMilestones))
}

// CurrentMilestonesNotNil applies the NotNil predicate on the "current_milestones" field.
func CurrentMilestonesNotNil() predicate.Component {
	return predicate.Component(sql.FieldNotNull(FieldCurrentMilestones))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Component {
	return predicate.Component(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Component {
	return predicate.Component(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Component {
	return predicate.Component(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Component {
	return predicate.Component(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Component {
	return predicate.Component(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Component {
	return predicate.Component(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Component {
	return predicate.Component(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Component {
	return predicate.Component(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Component {
	return predicate.Component(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Component {
	return predicate.Component(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Component {
	return predicate.Component(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Component {
	return predicate.Component(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Component {
	return predicate.Component(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Component {
	return predicate.Component(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDrawing applies the HasEdge predicate on the "drawing" edge.
func HasDrawing() predicate.Component {
	return predicate.Component(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DrawingTable, DrawingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDrawingWith applies the HasEdge predicate on the "drawing" edge with a given conditions (other predicates).
func HasDrawingWith(preds ...predicate.Drawing) predicate.Component {
	return predicate.Component(func(s *sql.Selector) {
		step := newDrawingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArea applies the HasEdge predicate on the "area" edge.
func HasArea() predicate.Component {
	return predicate.Component(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AreaTable, AreaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAreaWith applies the HasEdge predicate on the "area" edge with a given conditions (other predicates).
func HasAreaWith(preds ...predicate.Area) predicate.Component {
	return predicate.Component(func(s *sql.Selector) {
		step := newAreaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSystem applies the HasEdge predicate on the "system" edge.
func HasSystem() predicate.Component {
	return predicate.Component(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SystemTable, SystemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSystemWith applies the HasEdge predicate on the "system" edge with a given conditions (other predicates).
func HasSystemWith(preds ...predicate.System) predicate.Component {
	return predicate.Component(func(s *sql.Selector) {
		step := newSystemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTestPackage applies the HasEdge predicate on the "test_package" edge.
func HasTestPackage() predicate.Component {
	return predicate.Component(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TestPackageTable, TestPackageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTestPackageWith applies the HasEdge predicate on the "test_package" edge with a given conditions (other predicates).
func HasTestPackageWith(preds ...predicate.TestPackage) predicate.Component {
	return predicate.Component(func(s *sql.Selector) {
		step := newTestPackageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Component) predicate.Component {
	return predicate.Component(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Component) predicate.Component {
	return predicate.Component(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Component) predicate.Component {
	return predicate.Component(sql.NotPredicates(p))
}
