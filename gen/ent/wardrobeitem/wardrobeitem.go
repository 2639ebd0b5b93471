// Code generated by ent, DO NOT EDIT.

package wardrobeitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the wardrobeitem type in the database.
	Label = "wardrobe_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldColorName holds the string denoting the color_name field in the database.
	FieldColorName = "color_name"
	// FieldColorHex holds the string denoting the color_hex field in the database.
	FieldColorHex = "color_hex"
	// FieldSecondaryColors holds the string denoting the secondary_colors field in the database.
	FieldSecondaryColors = "secondary_colors"
	// FieldPattern holds the string denoting the pattern field in the database.
	FieldPattern = "pattern"
	// FieldMaterialFamily holds the string denoting the material_family field in the database.
	FieldMaterialFamily = "material_family"
	// FieldFit holds the string denoting the fit field in the database.
	FieldFit = "fit"
	// FieldLength holds the string denoting the length field in the database.
	FieldLength = "length"
	// FieldRise holds the string denoting the rise field in the database.
	FieldRise = "rise"
	// FieldSleeve holds the string denoting the sleeve field in the database.
	FieldSleeve = "sleeve"
	// FieldNeckline holds the string denoting the neckline field in the database.
	FieldNeckline = "neckline"
	// FieldDominantFinish holds the string denoting the dominant_finish field in the database.
	FieldDominantFinish = "dominant_finish"
	// FieldBrandText holds the string denoting the brand_text field in the database.
	FieldBrandText = "brand_text"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldLegacy holds the string denoting the legacy field in the database.
	FieldLegacy = "legacy"
	// FieldImageRef holds the string denoting the image_ref field in the database.
	FieldImageRef = "image_ref"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the wardrobeitem in the database.
	Table = "wardrobe_items"
)

// Columns holds all SQL columns for wardrobeitem fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldName,
	FieldCategory,
	FieldSubcategory,
	FieldColorName,
	FieldColorHex,
	FieldSecondaryColors,
	FieldPattern,
	FieldMaterialFamily,
	FieldFit,
	FieldLength,
	FieldRise,
	FieldSleeve,
	FieldNeckline,
	FieldDominantFinish,
	FieldBrandText,
	FieldNotes,
	FieldConfidence,
	FieldLegacy,
	FieldImageRef,
	FieldSourceID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	OwnerIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// SubcategoryValidator is a validator for the "subcategory" field. It is called by the builders before save.
	SubcategoryValidator func(string) error
	// ColorNameValidator is a validator for the "color_name" field. It is called by the builders before save.
	ColorNameValidator func(string) error
	// ColorHexValidator is a validator for the "color_hex" field. It is called by the builders before save.
	ColorHexValidator func(string) error
	// PatternValidator is a validator for the "pattern" field. It is called by the builders before save.
	PatternValidator func(string) error
	// MaterialFamilyValidator is a validator for the "material_family" field. It is called by the builders before save.
	MaterialFamilyValidator func(string) error
	// DefaultFit holds the default value on creation for the "fit" field.
	DefaultFit string
	// FitValidator is a validator for the "fit" field. It is called by the builders before save.
	FitValidator func(string) error
	// DefaultLength holds the default value on creation for the "length" field.
	DefaultLength string
	// LengthValidator is a validator for the "length" field. It is called by the builders before save.
	LengthValidator func(string) error
	// DefaultRise holds the default value on creation for the "rise" field.
	DefaultRise string
	// RiseValidator is a validator for the "rise" field. It is called by the builders before save.
	RiseValidator func(string) error
	// DefaultSleeve holds the default value on creation for the "sleeve" field.
	DefaultSleeve string
	// SleeveValidator is a validator for the "sleeve" field. It is called by the builders before save.
	SleeveValidator func(string) error
	// DefaultNeckline holds the default value on creation for the "neckline" field.
	DefaultNeckline string
	// NecklineValidator is a validator for the "neckline" field. It is called by the builders before save.
	NecklineValidator func(string) error
	// DefaultDominantFinish holds the default value on creation for the "dominant_finish" field.
	DefaultDominantFinish string
	// DominantFinishValidator is a validator for the "dominant_finish" field. It is called by the builders before save.
	DominantFinishValidator func(string) error
	// DefaultBrandText holds the default value on creation for the "brand_text" field.
	DefaultBrandText string
	// DefaultNotes holds the default value on creation for the "notes" field.
	DefaultNotes string
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// ImageRefValidator is a validator for the "image_ref" field. It is called by the builders before save.
	ImageRefValidator func(string) error
	// DefaultSourceID holds the default value on creation for the "source_id" field.
	DefaultSourceID string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the WardrobeItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// BySubcategory orders the results by the subcategory field.
func BySubcategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubcategory, opts...).ToFunc()
}

// ByColorName orders the results by the color_name field.
func ByColorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColorName, opts...).ToFunc()
}

// ByColorHex orders the results by the color_hex field.
func ByColorHex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColorHex, opts...).ToFunc()
}

// ByPattern orders the results by the pattern field.
func ByPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPattern, opts...).ToFunc()
}

// ByMaterialFamily orders the results by the material_family field.
func ByMaterialFamily(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaterialFamily, opts...).ToFunc()
}

// ByFit orders the results by the fit field.
func ByFit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFit, opts...).ToFunc()
}

// ByLength orders the results by the length field.
func ByLength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLength, opts...).ToFunc()
}

// ByRise orders the results by the rise field.
func ByRise(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRise, opts...).ToFunc()
}

// BySleeve orders the results by the sleeve field.
func BySleeve(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSleeve, opts...).ToFunc()
}

// ByNeckline orders the results by the neckline field.
func ByNeckline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeckline, opts...).ToFunc()
}

// ByDominantFinish orders the results by the dominant_finish field.
func ByDominantFinish(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDominantFinish, opts...).ToFunc()
}

// ByBrandText orders the results by the brand_text field.
func ByBrandText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandText, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByImageRef orders the results by the image_ref field.
func ByImageRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageRef, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
