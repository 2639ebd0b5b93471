// Code generated by ent, DO NOT EDIT.

package wardrobeitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldOwnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldCategory, v))
}

// Subcategory applies equality check predicate on the "subcategory" field. It's identical to SubcategoryEQ.
func Subcategory(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldSubcategory, v))
}

// ColorName applies equality check predicate on the "color_name" field. It's identical to ColorNameEQ.
func ColorName(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldColorName, v))
}

// ColorHex applies equality check predicate on the "color_hex" field. It's identical to ColorHexEQ.
func ColorHex(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldColorHex, v))
}

// Pattern applies equality check predicate on the "pattern" field. It's identical to PatternEQ.
func Pattern(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldPattern, v))
}

// MaterialFamily applies equality check predicate on the "material_family" field. It's identical to MaterialFamilyEQ.
func MaterialFamily(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldMaterialFamily, v))
}

// Fit applies equality check predicate on the "fit" field. It's identical to FitEQ.
func Fit(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldFit, v))
}

// Length applies equality check predicate on the "length" field. It's identical to LengthEQ.
func Length(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldLength, v))
}

// Rise applies equality check predicate on the "rise" field. It's identical to RiseEQ.
func Rise(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldRise, v))
}

// Sleeve applies equality check predicate on the "sleeve" field. It's identical to SleeveEQ.
func Sleeve(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldSleeve, v))
}

// Neckline applies equality check predicate on the "neckline" field. It's identical to NecklineEQ.
func Neckline(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldNeckline, v))
}

// DominantFinish applies equality check predicate on the "dominant_finish" field. It's identical to DominantFinishEQ.
func DominantFinish(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldDominantFinish, v))
}

// BrandText applies equality check predicate on the "brand_text" field. It's identical to BrandTextEQ.
func BrandText(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldBrandText, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldNotes, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldConfidence, v))
}

// ImageRef applies equality check predicate on the "image_ref" field. It's identical to ImageRefEQ.
func ImageRef(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldImageRef, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldSourceID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldOwnerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldCategory, v))
}

// SubcategoryEQ applies the EQ predicate on the "subcategory" field.
func SubcategoryEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldSubcategory, v))
}

// SubcategoryNEQ applies the NEQ predicate on the "subcategory" field.
func SubcategoryNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldSubcategory, v))
}

// SubcategoryIn applies the In predicate on the "subcategory" field.
func SubcategoryIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldSubcategory, vs...))
}

// SubcategoryNotIn applies the NotIn predicate on the "subcategory" field.
func SubcategoryNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldSubcategory, vs...))
}

// SubcategoryGT applies the GT predicate on the "subcategory" field.
func SubcategoryGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldSubcategory, v))
}

// SubcategoryGTE applies the GTE predicate on the "subcategory" field.
func SubcategoryGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldSubcategory, v))
}

// SubcategoryLT applies the LT predicate on the "subcategory" field.
func SubcategoryLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldSubcategory, v))
}

// SubcategoryLTE applies the LTE predicate on the "subcategory" field.
func SubcategoryLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldSubcategory, v))
}

// SubcategoryContains applies the Contains predicate on the "subcategory" field.
func SubcategoryContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldSubcategory, v))
}

// SubcategoryHasPrefix applies the HasPrefix predicate on the "subcategory" field.
func SubcategoryHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldSubcategory, v))
}

// SubcategoryHasSuffix applies the HasSuffix predicate on the "subcategory" field.
func SubcategoryHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldSubcategory, v))
}

// SubcategoryEqualFold applies the EqualFold predicate on the "subcategory" field.
func SubcategoryEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldSubcategory, v))
}

// SubcategoryContainsFold applies the ContainsFold predicate on the "subcategory" field.
func SubcategoryContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldSubcategory, v))
}

// ColorNameEQ applies the EQ predicate on the "color_name" field.
func ColorNameEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldColorName, v))
}

// ColorNameNEQ applies the NEQ predicate on the "color_name" field.
func ColorNameNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldColorName, v))
}

// ColorNameIn applies the In predicate on the "color_name" field.
func ColorNameIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldColorName, vs...))
}

// ColorNameNotIn applies the NotIn predicate on the "color_name" field.
func ColorNameNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldColorName, vs...))
}

// ColorNameGT applies the GT predicate on the "color_name" field.
func ColorNameGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldColorName, v))
}

// ColorNameGTE applies the GTE predicate on the "color_name" field.
func ColorNameGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldColorName, v))
}

// ColorNameLT applies the LT predicate on the "color_name" field.
func ColorNameLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldColorName, v))
}

// ColorNameLTE applies the LTE predicate on the "color_name" field.
func ColorNameLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldColorName, v))
}

// ColorNameContains applies the Contains predicate on the "color_name" field.
func ColorNameContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldColorName, v))
}

// ColorNameHasPrefix applies the HasPrefix predicate on the "color_name" field.
func ColorNameHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldColorName, v))
}

// ColorNameHasSuffix applies the HasSuffix predicate on the "color_name" field.
func ColorNameHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldColorName, v))
}

// ColorNameEqualFold applies the EqualFold predicate on the "color_name" field.
func ColorNameEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldColorName, v))
}

// ColorNameContainsFold applies the ContainsFold predicate on the "color_name" field.
func ColorNameContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldColorName, v))
}

// ColorHexEQ applies the EQ predicate on the "color_hex" field.
func ColorHexEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldColorHex, v))
}

// ColorHexNEQ applies the NEQ predicate on the "color_hex" field.
func ColorHexNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldColorHex, v))
}

// ColorHexIn applies the In predicate on the "color_hex" field.
func ColorHexIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldColorHex, vs...))
}

// ColorHexNotIn applies the NotIn predicate on the "color_hex" field.
func ColorHexNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldColorHex, vs...))
}

// ColorHexGT applies the GT predicate on the "color_hex" field.
func ColorHexGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldColorHex, v))
}

// ColorHexGTE applies the GTE predicate on the "color_hex" field.
func ColorHexGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldColorHex, v))
}

// ColorHexLT applies the LT predicate on the "color_hex" field.
func ColorHexLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldColorHex, v))
}

// ColorHexLTE applies the LTE predicate on the "color_hex" field.
func ColorHexLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldColorHex, v))
}

// ColorHexContains applies the Contains predicate on the "color_hex" field.
func ColorHexContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldColorHex, v))
}

// ColorHexHasPrefix applies the HasPrefix predicate on the "color_hex" field.
func ColorHexHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldColorHex, v))
}

// ColorHexHasSuffix applies the HasSuffix predicate on the "color_hex" field.
func ColorHexHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldColorHex, v))
}

// ColorHexEqualFold applies the EqualFold predicate on the "color_hex" field.
func ColorHexEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldColorHex, v))
}

// ColorHexContainsFold applies the ContainsFold predicate on the "color_hex" field.
func ColorHexContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldColorHex, v))
}

// SecondaryColorsIsNil applies the IsNil predicate on the "secondary_colors" field.
func SecondaryColorsIsNil() predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIsNull(FieldSecondaryColors))
}

// SecondaryColorsNotNil applies the NotNil predicate on the "secondary_colors" field.
func SecondaryColorsNotNil() predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotNull(FieldSecondaryColors))
}

// PatternEQ applies the EQ predicate on the "pattern" field.
func PatternEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldPattern, v))
}

// PatternNEQ applies the NEQ predicate on the "pattern" field.
func PatternNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldPattern, v))
}

// PatternIn applies the In predicate on the "pattern" field.
func PatternIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldPattern, vs...))
}

// PatternNotIn applies the NotIn predicate on the "pattern" field.
func PatternNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldPattern, vs...))
}

// PatternGT applies the GT predicate on the "pattern" field.
func PatternGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldPattern, v))
}

// PatternGTE applies the GTE predicate on the "pattern" field.
func PatternGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldPattern, v))
}

// PatternLT applies the LT predicate on the "pattern" field.
func PatternLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldPattern, v))
}

// PatternLTE applies the LTE predicate on the "pattern" field.
func PatternLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldPattern, v))
}

// PatternContains applies the Contains predicate on the "pattern" field.
func PatternContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldPattern, v))
}

// PatternHasPrefix applies the HasPrefix predicate on the "pattern" field.
func PatternHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldPattern, v))
}

// PatternHasSuffix applies the HasSuffix predicate on the "pattern" field.
func PatternHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldPattern, v))
}

// PatternEqualFold applies the EqualFold predicate on the "pattern" field.
func PatternEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldPattern, v))
}

// PatternContainsFold applies the ContainsFold predicate on the "pattern" field.
func PatternContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldPattern, v))
}

// MaterialFamilyEQ applies the EQ predicate on the "material_family" field.
func MaterialFamilyEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldMaterialFamily, v))
}

// MaterialFamilyNEQ applies the NEQ predicate on the "material_family" field.
func MaterialFamilyNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldMaterialFamily, v))
}

// MaterialFamilyIn applies the In predicate on the "material_family" field.
func MaterialFamilyIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldMaterialFamily, vs...))
}

// MaterialFamilyNotIn applies the NotIn predicate on the "material_family" field.
func MaterialFamilyNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldMaterialFamily, vs...))
}

// MaterialFamilyGT applies the GT predicate on the "material_family" field.
func MaterialFamilyGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldMaterialFamily, v))
}

// MaterialFamilyGTE applies the GTE predicate on the "material_family" field.
func MaterialFamilyGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldMaterialFamily, v))
}

// MaterialFamilyLT applies the LT predicate on the "material_family" field.
func MaterialFamilyLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldMaterialFamily, v))
}

// MaterialFamilyLTE applies the LTE predicate on the "material_family" field.
func MaterialFamilyLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldMaterialFamily, v))
}

// MaterialFamilyContains applies the Contains predicate on the "material_family" field.
func MaterialFamilyContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldMaterialFamily, v))
}

// MaterialFamilyHasPrefix applies the HasPrefix predicate on the "material_family" field.
func MaterialFamilyHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldMaterialFamily, v))
}

// MaterialFamilyHasSuffix applies the HasSuffix predicate on the "material_family" field.
func MaterialFamilyHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldMaterialFamily, v))
}

// MaterialFamilyEqualFold applies the EqualFold predicate on the "material_family" field.
func MaterialFamilyEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldMaterialFamily, v))
}

// MaterialFamilyContainsFold applies the ContainsFold predicate on the "material_family" field.
func MaterialFamilyContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldMaterialFamily, v))
}

// FitEQ applies the EQ predicate on the "fit" field.
func FitEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldFit, v))
}

// FitNEQ applies the NEQ predicate on the "fit" field.
func FitNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldFit, v))
}

// FitIn applies the In predicate on the "fit" field.
func FitIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldFit, vs...))
}

// FitNotIn applies the NotIn predicate on the "fit" field.
func FitNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldFit, vs...))
}

// FitGT applies the GT predicate on the "fit" field.
func FitGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldFit, v))
}

// FitGTE applies the GTE predicate on the "fit" field.
func FitGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldFit, v))
}

// FitLT applies the LT predicate on the "fit" field.
func FitLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldFit, v))
}

// FitLTE applies the LTE predicate on the "fit" field.
func FitLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldFit, v))
}

// FitContains applies the Contains predicate on the "fit" field.
func FitContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldFit, v))
}

// FitHasPrefix applies the HasPrefix predicate on the "fit" field.
func FitHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldFit, v))
}

// FitHasSuffix applies the HasSuffix predicate on the "fit" field.
func FitHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldFit, v))
}

// FitEqualFold applies the EqualFold predicate on the "fit" field.
func FitEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldFit, v))
}

// FitContainsFold applies the ContainsFold predicate on the "fit" field.
func FitContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldFit, v))
}

// LengthEQ applies the EQ predicate on the "length" field.
func LengthEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldLength, v))
}

// LengthNEQ applies the NEQ predicate on the "length" field.
func LengthNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldLength, v))
}

// LengthIn applies the In predicate on the "length" field.
func LengthIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldLength, vs...))
}

// LengthNotIn applies the NotIn predicate on the "length" field.
func LengthNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldLength, vs...))
}

// LengthGT applies the GT predicate on the "length" field.
func LengthGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldLength, v))
}

// LengthGTE applies the GTE predicate on the "length" field.
func LengthGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldLength, v))
}

// LengthLT applies the LT predicate on the "length" field.
func LengthLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldLength, v))
}

// LengthLTE applies the LTE predicate on the "length" field.
func LengthLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldLength, v))
}

// LengthContains applies the Contains predicate on the "length" field.
func LengthContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldLength, v))
}

// LengthHasPrefix applies the HasPrefix predicate on the "length" field.
func LengthHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldLength, v))
}

// LengthHasSuffix applies the HasSuffix predicate on the "length" field.
func LengthHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldLength, v))
}

// LengthEqualFold applies the EqualFold predicate on the "length" field.
func LengthEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldLength, v))
}

// LengthContainsFold applies the ContainsFold predicate on the "length" field.
func LengthContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldLength, v))
}

// RiseEQ applies the EQ predicate on the "rise" field.
func RiseEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldRise, v))
}

// RiseNEQ applies the NEQ predicate on the "rise" field.
func RiseNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldRise, v))
}

// RiseIn applies the In predicate on the "rise" field.
func RiseIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldRise, vs...))
}

// RiseNotIn applies the NotIn predicate on the "rise" field.
func RiseNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldRise, vs...))
}

// RiseGT applies the GT predicate on the "rise" field.
func RiseGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldRise, v))
}

// RiseGTE applies the GTE predicate on the "rise" field.
func RiseGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldRise, v))
}

// RiseLT applies the LT predicate on the "rise" field.
func RiseLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldRise, v))
}

// RiseLTE applies the LTE predicate on the "rise" field.
func RiseLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldRise, v))
}

// RiseContains applies the Contains predicate on the "rise" field.
func RiseContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldRise, v))
}

// RiseHasPrefix applies the HasPrefix predicate on the "rise" field.
func RiseHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldRise, v))
}

// RiseHasSuffix applies the HasSuffix predicate on the "rise" field.
func RiseHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldRise, v))
}

// RiseEqualFold applies the EqualFold predicate on the "rise" field.
func RiseEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldRise, v))
}

// RiseContainsFold applies the ContainsFold predicate on the "rise" field.
func RiseContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldRise, v))
}

// SleeveEQ applies the EQ predicate on the "sleeve" field.
func SleeveEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldSleeve, v))
}

// SleeveNEQ applies the NEQ predicate on the "sleeve" field.
func SleeveNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldSleeve, v))
}

// SleeveIn applies the In predicate on the "sleeve" field.
func SleeveIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldSleeve, vs...))
}

// SleeveNotIn applies the NotIn predicate on the "sleeve" field.
func SleeveNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldSleeve, vs...))
}

// SleeveGT applies the GT predicate on the "sleeve" field.
func SleeveGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldSleeve, v))
}

// SleeveGTE applies the GTE predicate on the "sleeve" field.
func SleeveGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldSleeve, v))
}

// SleeveLT applies the LT predicate on the "sleeve" field.
func SleeveLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldSleeve, v))
}

// SleeveLTE applies the LTE predicate on the "sleeve" field.
func SleeveLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldSleeve, v))
}

// SleeveContains applies the Contains predicate on the "sleeve" field.
func SleeveContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldSleeve, v))
}

// SleeveHasPrefix applies the HasPrefix predicate on the "sleeve" field.
func SleeveHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldSleeve, v))
}

// SleeveHasSuffix applies the HasSuffix predicate on the "sleeve" field.
func SleeveHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldSleeve, v))
}

// SleeveEqualFold applies the EqualFold predicate on the "sleeve" field.
func SleeveEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldSleeve, v))
}

// SleeveContainsFold applies the ContainsFold predicate on the "sleeve" field.
func SleeveContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldSleeve, v))
}

// NecklineEQ applies the EQ predicate on the "neckline" field.
func NecklineEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldNeckline, v))
}

// NecklineNEQ applies the NEQ predicate on the "neckline" field.
func NecklineNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldNeckline, v))
}

// NecklineIn applies the In predicate on the "neckline" field.
func NecklineIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldNeckline, vs...))
}

// NecklineNotIn applies the NotIn predicate on the "neckline" field.
func NecklineNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldNeckline, vs...))
}

// NecklineGT applies the GT predicate on the "neckline" field.
func NecklineGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldNeckline, v))
}

// NecklineGTE applies the GTE predicate on the "neckline" field.
func NecklineGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldNeckline, v))
}

// NecklineLT applies the LT predicate on the "neckline" field.
func NecklineLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldNeckline, v))
}

// NecklineLTE applies the LTE predicate on the "neckline" field.
func NecklineLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldNeckline, v))
}

// NecklineContains applies the Contains predicate on the "neckline" field.
func NecklineContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldNeckline, v))
}

// NecklineHasPrefix applies the HasPrefix predicate on the "neckline" field.
func NecklineHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldNeckline, v))
}

// NecklineHasSuffix applies the HasSuffix predicate on the "neckline" field.
func NecklineHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldNeckline, v))
}

// NecklineEqualFold applies the EqualFold predicate on the "neckline" field.
func NecklineEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldNeckline, v))
}

// NecklineContainsFold applies the ContainsFold predicate on the "neckline" field.
func NecklineContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldNeckline, v))
}

// DominantFinishEQ applies the EQ predicate on the "dominant_finish" field.
func DominantFinishEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldDominantFinish, v))
}

// DominantFinishNEQ applies the NEQ predicate on the "dominant_finish" field.
func DominantFinishNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldDominantFinish, v))
}

// DominantFinishIn applies the In predicate on the "dominant_finish" field.
func DominantFinishIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldDominantFinish, vs...))
}

// DominantFinishNotIn applies the NotIn predicate on the "dominant_finish" field.
func DominantFinishNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldDominantFinish, vs...))
}

// DominantFinishGT applies the GT predicate on the "dominant_finish" field.
func DominantFinishGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldDominantFinish, v))
}

// DominantFinishGTE applies the GTE predicate on the "dominant_finish" field.
func DominantFinishGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldDominantFinish, v))
}

// DominantFinishLT applies the LT predicate on the "dominant_finish" field.
func DominantFinishLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldDominantFinish, v))
}

// DominantFinishLTE applies the LTE predicate on the "dominant_finish" field.
func DominantFinishLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldDominantFinish, v))
}

// DominantFinishContains applies the Contains predicate on the "dominant_finish" field.
func DominantFinishContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldDominantFinish, v))
}

// DominantFinishHasPrefix applies the HasPrefix predicate on the "dominant_finish" field.
func DominantFinishHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldDominantFinish, v))
}

// DominantFinishHasSuffix applies the HasSuffix predicate on the "dominant_finish" field.
func DominantFinishHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldDominantFinish, v))
}

// DominantFinishEqualFold applies the EqualFold predicate on the "dominant_finish" field.
func DominantFinishEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldDominantFinish, v))
}

// DominantFinishContainsFold applies the ContainsFold predicate on the "dominant_finish" field.
func DominantFinishContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldDominantFinish, v))
}

// BrandTextEQ applies the EQ predicate on the "brand_text" field.
func BrandTextEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldBrandText, v))
}

// BrandTextNEQ applies the NEQ predicate on the "brand_text" field.
func BrandTextNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldBrandText, v))
}

// BrandTextIn applies the In predicate on the "brand_text" field.
func BrandTextIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldBrandText, vs...))
}

// BrandTextNotIn applies the NotIn predicate on the "brand_text" field.
func BrandTextNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldBrandText, vs...))
}

// BrandTextGT applies the GT predicate on the "brand_text" field.
func BrandTextGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldBrandText, v))
}

// BrandTextGTE applies the GTE predicate on the "brand_text" field.
func BrandTextGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldBrandText, v))
}

// BrandTextLT applies the LT predicate on the "brand_text" field.
func BrandTextLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldBrandText, v))
}

// BrandTextLTE applies the LTE predicate on the "brand_text" field.
func BrandTextLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldBrandText, v))
}

// BrandTextContains applies the Contains predicate on the "brand_text" field.
func BrandTextContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldBrandText, v))
}

// BrandTextHasPrefix applies the HasPrefix predicate on the "brand_text" field.
func BrandTextHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldBrandText, v))
}

// BrandTextHasSuffix applies the HasSuffix predicate on the "brand_text" field.
func BrandTextHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldBrandText, v))
}

// BrandTextEqualFold applies the EqualFold predicate on the "brand_text" field.
func BrandTextEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldBrandText, v))
}

// BrandTextContainsFold applies the ContainsFold predicate on the "brand_text" field.
func BrandTextContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldBrandText, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldNotes, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldConfidence, v))
}

// ImageRefEQ applies the EQ predicate on the "image_ref" field.
func ImageRefEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldImageRef, v))
}

// ImageRefNEQ applies the NEQ predicate on the "image_ref" field.
func ImageRefNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldImageRef, v))
}

// ImageRefIn applies the In predicate on the "image_ref" field.
func ImageRefIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldImageRef, vs...))
}

// ImageRefNotIn applies the NotIn predicate on the "image_ref" field.
func ImageRefNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldImageRef, vs...))
}

// ImageRefGT applies the GT predicate on the "image_ref" field.
func ImageRefGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldImageRef, v))
}

// ImageRefGTE applies the GTE predicate on the "image_ref" field.
func ImageRefGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldImageRef, v))
}

// ImageRefLT applies the LT predicate on the "image_ref" field.
func ImageRefLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldImageRef, v))
}

// ImageRefLTE applies the LTE predicate on the "image_ref" field.
func ImageRefLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldImageRef, v))
}

// ImageRefContains applies the Contains predicate on the "image_ref" field.
func ImageRefContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldImageRef, v))
}

// ImageRefHasPrefix applies the HasPrefix predicate on the "image_ref" field.
func ImageRefHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldImageRef, v))
}

// ImageRefHasSuffix applies the HasSuffix predicate on the "image_ref" field.
func ImageRefHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldImageRef, v))
}

// ImageRefEqualFold applies the EqualFold predicate on the "image_ref" field.
func ImageRefEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldImageRef, v))
}

// ImageRefContainsFold applies the ContainsFold predicate on the "image_ref" field.
func ImageRefContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldImageRef, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldContainsFold(FieldSourceID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WardrobeItem) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WardrobeItem) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WardrobeItem) predicate.WardrobeItem {
	return predicate.WardrobeItem(sql.NotPredicates(p))
}
