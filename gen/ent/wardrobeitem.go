// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/wardrobeitem"
	"github.com/gestir-app/wardrobe-tracker/internal/entity"
	"github.com/google/uuid"
)

// WardrobeItem is the model entity for the WardrobeItem schema.
type WardrobeItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Subcategory holds the value of the "subcategory" field.
	Subcategory string `json:"subcategory,omitempty"`
	// ColorName holds the value of the "color_name" field.
	ColorName string `json:"color_name,omitempty"`
	// ColorHex holds the value of the "color_hex" field.
	ColorHex string `json:"color_hex,omitempty"`
	// SecondaryColors holds the value of the "secondary_colors" field.
	SecondaryColors []string `json:"secondary_colors,omitempty"`
	// Pattern holds the value of the "pattern" field.
	Pattern string `json:"pattern,omitempty"`
	// MaterialFamily holds the value of the "material_family" field.
	MaterialFamily string `json:"material_family,omitempty"`
	// Fit holds the value of the "fit" field.
	Fit string `json:"fit,omitempty"`
	// Length holds the value of the "length" field.
	Length string `json:"length,omitempty"`
	// Rise holds the value of the "rise" field.
	Rise string `json:"rise,omitempty"`
	// Sleeve holds the value of the "sleeve" field.
	Sleeve string `json:"sleeve,omitempty"`
	// Neckline holds the value of the "neckline" field.
	Neckline string `json:"neckline,omitempty"`
	// DominantFinish holds the value of the "dominant_finish" field.
	DominantFinish string `json:"dominant_finish,omitempty"`
	// BrandText holds the value of the "brand_text" field.
	BrandText string `json:"brand_text,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Legacy holds the value of the "legacy" field.
	Legacy entity.LegacyView `json:"legacy,omitempty"`
	// ImageRef holds the value of the "image_ref" field.
	ImageRef string `json:"image_ref,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID string `json:"source_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WardrobeItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wardrobeitem.FieldSecondaryColors, wardrobeitem.FieldLegacy:
			values[i] = new([]byte)
		case wardrobeitem.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case wardrobeitem.FieldOwnerID, wardrobeitem.FieldName, wardrobeitem.FieldCategory, wardrobeitem.FieldSubcategory, wardrobeitem.FieldColorName, wardrobeitem.FieldColorHex, wardrobeitem.FieldPattern, wardrobeitem.FieldMaterialFamily, wardrobeitem.FieldFit, wardrobeitem.FieldLength, wardrobeitem.FieldRise, wardrobeitem.FieldSleeve, wardrobeitem.FieldNeckline, wardrobeitem.FieldDominantFinish, wardrobeitem.FieldBrandText, wardrobeitem.FieldNotes, wardrobeitem.FieldImageRef, wardrobeitem.FieldSourceID:
			values[i] = new(sql.NullString)
		case wardrobeitem.FieldCreatedAt, wardrobeitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case wardrobeitem.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WardrobeItem fields.
func (_m *WardrobeItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wardrobeitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case wardrobeitem.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case wardrobeitem.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case wardrobeitem.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case wardrobeitem.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = value.String
			}
		case wardrobeitem.FieldColorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color_name", values[i])
			} else if value.Valid {
				_m.ColorName = value.String
			}
		case wardrobeitem.FieldColorHex:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color_hex", values[i])
			} else if value.Valid {
				_m.ColorHex = value.String
			}
		case wardrobeitem.FieldSecondaryColors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field secondary_colors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SecondaryColors); err != nil {
					return fmt.Errorf("unmarshal field secondary_colors: %w", err)
				}
			}
		case wardrobeitem.FieldPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern", values[i])
			} else if value.Valid {
				_m.Pattern = value.String
			}
		case wardrobeitem.FieldMaterialFamily:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field material_family", values[i])
			} else if value.Valid {
				_m.MaterialFamily = value.String
			}
		case wardrobeitem.FieldFit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fit", values[i])
			} else if value.Valid {
				_m.Fit = value.String
			}
		case wardrobeitem.FieldLength:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field length", values[i])
			} else if value.Valid {
				_m.Length = value.String
			}
		case wardrobeitem.FieldRise:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rise", values[i])
			} else if value.Valid {
				_m.Rise = value.String
			}
		case wardrobeitem.FieldSleeve:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sleeve", values[i])
			} else if value.Valid {
				_m.Sleeve = value.String
			}
		case wardrobeitem.FieldNeckline:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field neckline", values[i])
			} else if value.Valid {
				_m.Neckline = value.String
			}
		case wardrobeitem.FieldDominantFinish:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dominant_finish", values[i])
			} else if value.Valid {
				_m.DominantFinish = value.String
			}
		case wardrobeitem.FieldBrandText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand_text", values[i])
			} else if value.Valid {
				_m.BrandText = value.String
			}
		case wardrobeitem.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case wardrobeitem.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case wardrobeitem.FieldLegacy:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field legacy", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Legacy); err != nil {
					return fmt.Errorf("unmarshal field legacy: %w", err)
				}
			}
		case wardrobeitem.FieldImageRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_ref", values[i])
			} else if value.Valid {
				_m.ImageRef = value.String
			}
		case wardrobeitem.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case wardrobeitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case wardrobeitem.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WardrobeItem.
// This includes values selected through modifiers, order, etc.
func (_m *WardrobeItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WardrobeItem.
// Note that you need to call WardrobeItem.Unwrap() before calling this method if this WardrobeItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WardrobeItem) Update() *WardrobeItemUpdateOne {
	return NewWardrobeItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WardrobeItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WardrobeItem) Unwrap() *WardrobeItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WardrobeItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WardrobeItem) String() string {
	var builder strings.Builder
	builder.WriteString("WardrobeItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("subcategory=")
	builder.WriteString(_m.Subcategory)
	builder.WriteString(", ")
	builder.WriteString("color_name=")
	builder.WriteString(_m.ColorName)
	builder.WriteString(", ")
	builder.WriteString("color_hex=")
	builder.WriteString(_m.ColorHex)
	builder.WriteString(", ")
	builder.WriteString("secondary_colors=")
	builder.WriteString(fmt.Sprintf("%v", _m.SecondaryColors))
	builder.WriteString(", ")
	builder.WriteString("pattern=")
	builder.WriteString(_m.Pattern)
	builder.WriteString(", ")
	builder.WriteString("material_family=")
	builder.WriteString(_m.MaterialFamily)
	builder.WriteString(", ")
	builder.WriteString("fit=")
	builder.WriteString(_m.Fit)
	builder.WriteString(", ")
	builder.WriteString("length=")
	builder.WriteString(_m.Length)
	builder.WriteString(", ")
	builder.WriteString("rise=")
	builder.WriteString(_m.Rise)
	builder.WriteString(", ")
	builder.WriteString("sleeve=")
	builder.WriteString(_m.Sleeve)
	builder.WriteString(", ")
	builder.WriteString("neckline=")
	builder.WriteString(_m.Neckline)
	builder.WriteString(", ")
	builder.WriteString("dominant_finish=")
	builder.WriteString(_m.DominantFinish)
	builder.WriteString(", ")
	builder.WriteString("brand_text=")
	builder.WriteString(_m.BrandText)
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("legacy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Legacy))
	builder.WriteString(", ")
	builder.WriteString("image_ref=")
	builder.WriteString(_m.ImageRef)
	builder.WriteString(", ")
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WardrobeItems is a parsable slice of WardrobeItem.
type WardrobeItems []*WardrobeItem
