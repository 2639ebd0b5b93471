// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/predicate"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/wardrobeitem"
	"github.com/gestir-app/wardrobe-tracker/internal/entity"
)

// WardrobeItemUpdate is the builder for updating WardrobeItem entities.
type WardrobeItemUpdate struct {
	config
	hooks    []Hook
	mutation *WardrobeItemMutation
}

// Where appends a list predicates to the WardrobeItemUpdate builder.
func (_u *WardrobeItemUpdate) Where(ps ...predicate.WardrobeItem) *WardrobeItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WardrobeItemUpdate) SetName(v string) *WardrobeItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableName(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *WardrobeItemUpdate) SetCategory(v string) *WardrobeItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableCategory(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *WardrobeItemUpdate) SetSubcategory(v string) *WardrobeItemUpdate {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableSubcategory(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// SetColorName sets the "color_name" field.
func (_u *WardrobeItemUpdate) SetColorName(v string) *WardrobeItemUpdate {
	_u.mutation.SetColorName(v)
	return _u
}

// SetNillableColorName sets the "color_name" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableColorName(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetColorName(*v)
	}
	return _u
}

// SetColorHex sets the "color_hex" field.
func (_u *WardrobeItemUpdate) SetColorHex(v string) *WardrobeItemUpdate {
	_u.mutation.SetColorHex(v)
	return _u
}

// SetNillableColorHex sets the "color_hex" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableColorHex(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetColorHex(*v)
	}
	return _u
}

// SetSecondaryColors sets the "secondary_colors" field.
func (_u *WardrobeItemUpdate) SetSecondaryColors(v []string) *WardrobeItemUpdate {
	_u.mutation.SetSecondaryColors(v)
	return _u
}

// AppendSecondaryColors appends value to the "secondary_colors" field.
func (_u *WardrobeItemUpdate) AppendSecondaryColors(v []string) *WardrobeItemUpdate {
	_u.mutation.AppendSecondaryColors(v)
	return _u
}

// ClearSecondaryColors clears the value of the "secondary_colors" field.
func (_u *WardrobeItemUpdate) ClearSecondaryColors() *WardrobeItemUpdate {
	_u.mutation.ClearSecondaryColors()
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *WardrobeItemUpdate) SetPattern(v string) *WardrobeItemUpdate {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillablePattern(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetMaterialFamily sets the "material_family" field.
func (_u *WardrobeItemUpdate) SetMaterialFamily(v string) *WardrobeItemUpdate {
	_u.mutation.SetMaterialFamily(v)
	return _u
}

// SetNillableMaterialFamily sets the "material_family" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableMaterialFamily(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetMaterialFamily(*v)
	}
	return _u
}

// SetFit sets the "fit" field.
func (_u *WardrobeItemUpdate) SetFit(v string) *WardrobeItemUpdate {
	_u.mutation.SetFit(v)
	return _u
}

// SetNillableFit sets the "fit" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableFit(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetFit(*v)
	}
	return _u
}

// SetLength sets the "length" field.
func (_u *WardrobeItemUpdate) SetLength(v string) *WardrobeItemUpdate {
	_u.mutation.SetLength(v)
	return _u
}

// SetNillableLength sets the "length" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableLength(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetLength(*v)
	}
	return _u
}

// SetRise sets the "rise" field.
func (_u *WardrobeItemUpdate) SetRise(v string) *WardrobeItemUpdate {
	_u.mutation.SetRise(v)
	return _u
}

// SetNillableRise sets the "rise" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableRise(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetRise(*v)
	}
	return _u
}

// SetSleeve sets the "sleeve" field.
func (_u *WardrobeItemUpdate) SetSleeve(v string) *WardrobeItemUpdate {
	_u.mutation.SetSleeve(v)
	return _u
}

// SetNillableSleeve sets the "sleeve" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableSleeve(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetSleeve(*v)
	}
	return _u
}

// SetNeckline sets the "neckline" field.
func (_u *WardrobeItemUpdate) SetNeckline(v string) *WardrobeItemUpdate {
	_u.mutation.SetNeckline(v)
	return _u
}

// SetNillableNeckline sets the "neckline" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableNeckline(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetNeckline(*v)
	}
	return _u
}

// SetDominantFinish sets the "dominant_finish" field.
func (_u *WardrobeItemUpdate) SetDominantFinish(v string) *WardrobeItemUpdate {
	_u.mutation.SetDominantFinish(v)
	return _u
}

// SetNillableDominantFinish sets the "dominant_finish" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableDominantFinish(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetDominantFinish(*v)
	}
	return _u
}

// SetBrandText sets the "brand_text" field.
func (_u *WardrobeItemUpdate) SetBrandText(v string) *WardrobeItemUpdate {
	_u.mutation.SetBrandText(v)
	return _u
}

// SetNillableBrandText sets the "brand_text" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableBrandText(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetBrandText(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *WardrobeItemUpdate) SetNotes(v string) *WardrobeItemUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableNotes(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *WardrobeItemUpdate) SetConfidence(v float64) *WardrobeItemUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableConfidence(v *float64) *WardrobeItemUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *WardrobeItemUpdate) AddConfidence(v float64) *WardrobeItemUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLegacy sets the "legacy" field.
func (_u *WardrobeItemUpdate) SetLegacy(v entity.LegacyView) *WardrobeItemUpdate {
	_u.mutation.SetLegacy(v)
	return _u
}

// SetNillableLegacy sets the "legacy" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableLegacy(v *entity.LegacyView) *WardrobeItemUpdate {
	if v != nil {
		_u.SetLegacy(*v)
	}
	return _u
}

// SetImageRef sets the "image_ref" field.
func (_u *WardrobeItemUpdate) SetImageRef(v string) *WardrobeItemUpdate {
	_u.mutation.SetImageRef(v)
	return _u
}

// SetNillableImageRef sets the "image_ref" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableImageRef(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetImageRef(*v)
	}
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *WardrobeItemUpdate) SetSourceID(v string) *WardrobeItemUpdate {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *WardrobeItemUpdate) SetNillableSourceID(v *string) *WardrobeItemUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WardrobeItemUpdate) SetUpdatedAt(v time.Time) *WardrobeItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WardrobeItemMutation object of the builder.
func (_u *WardrobeItemUpdate) Mutation() *WardrobeItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WardrobeItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WardrobeItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WardrobeItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WardrobeItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WardrobeItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := wardrobeitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WardrobeItemUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := wardrobeitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := wardrobeitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subcategory(); ok {
		if err := wardrobeitem.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.subcategory": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ColorName(); ok {
		if err := wardrobeitem.ColorNameValidator(v); err != nil {
			return &ValidationError{Name: "color_name", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.color_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ColorHex(); ok {
		if err := wardrobeitem.ColorHexValidator(v); err != nil {
			return &ValidationError{Name: "color_hex", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.color_hex": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pattern(); ok {
		if err := wardrobeitem.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.pattern": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaterialFamily(); ok {
		if err := wardrobeitem.MaterialFamilyValidator(v); err != nil {
			return &ValidationError{Name: "material_family", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.material_family": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fit(); ok {
		if err := wardrobeitem.FitValidator(v); err != nil {
			return &ValidationError{Name: "fit", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.fit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Length(); ok {
		if err := wardrobeitem.LengthValidator(v); err != nil {
			return &ValidationError{Name: "length", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.length": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rise(); ok {
		if err := wardrobeitem.RiseValidator(v); err != nil {
			return &ValidationError{Name: "rise", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.rise": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sleeve(); ok {
		if err := wardrobeitem.SleeveValidator(v); err != nil {
			return &ValidationError{Name: "sleeve", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.sleeve": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Neckline(); ok {
		if err := wardrobeitem.NecklineValidator(v); err != nil {
			return &ValidationError{Name: "neckline", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.neckline": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DominantFinish(); ok {
		if err := wardrobeitem.DominantFinishValidator(v); err != nil {
			return &ValidationError{Name: "dominant_finish", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.dominant_finish": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := wardrobeitem.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageRef(); ok {
		if err := wardrobeitem.ImageRefValidator(v); err != nil {
			return &ValidationError{Name: "image_ref", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.image_ref": %w`, err)}
		}
	}
	return nil
}

func (_u *WardrobeItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wardrobeitem.Table, wardrobeitem.Columns, sqlgraph.NewFieldSpec(wardrobeitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(wardrobeitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(wardrobeitem.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(wardrobeitem.FieldSubcategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ColorName(); ok {
		_spec.SetField(wardrobeitem.FieldColorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ColorHex(); ok {
		_spec.SetField(wardrobeitem.FieldColorHex, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecondaryColors(); ok {
		_spec.SetField(wardrobeitem.FieldSecondaryColors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSecondaryColors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, wardrobeitem.FieldSecondaryColors, value)
		})
	}
	if _u.mutation.SecondaryColorsCleared() {
		_spec.ClearField(wardrobeitem.FieldSecondaryColors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(wardrobeitem.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaterialFamily(); ok {
		_spec.SetField(wardrobeitem.FieldMaterialFamily, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fit(); ok {
		_spec.SetField(wardrobeitem.FieldFit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Length(); ok {
		_spec.SetField(wardrobeitem.FieldLength, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rise(); ok {
		_spec.SetField(wardrobeitem.FieldRise, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sleeve(); ok {
		_spec.SetField(wardrobeitem.FieldSleeve, field.TypeString, value)
	}
	if value, ok := _u.mutation.Neckline(); ok {
		_spec.SetField(wardrobeitem.FieldNeckline, field.TypeString, value)
	}
	if value, ok := _u.mutation.DominantFinish(); ok {
		_spec.SetField(wardrobeitem.FieldDominantFinish, field.TypeString, value)
	}
	if value, ok := _u.mutation.BrandText(); ok {
		_spec.SetField(wardrobeitem.FieldBrandText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(wardrobeitem.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(wardrobeitem.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(wardrobeitem.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Legacy(); ok {
		_spec.SetField(wardrobeitem.FieldLegacy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ImageRef(); ok {
		_spec.SetField(wardrobeitem.FieldImageRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(wardrobeitem.FieldSourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(wardrobeitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wardrobeitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WardrobeItemUpdateOne is the builder for updating a single WardrobeItem entity.
type WardrobeItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WardrobeItemMutation
}

// SetName sets the "name" field.
func (_u *WardrobeItemUpdateOne) SetName(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableName(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *WardrobeItemUpdateOne) SetCategory(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableCategory(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *WardrobeItemUpdateOne) SetSubcategory(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableSubcategory(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// SetColorName sets the "color_name" field.
func (_u *WardrobeItemUpdateOne) SetColorName(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetColorName(v)
	return _u
}

// SetNillableColorName sets the "color_name" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableColorName(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetColorName(*v)
	}
	return _u
}

// SetColorHex sets the "color_hex" field.
func (_u *WardrobeItemUpdateOne) SetColorHex(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetColorHex(v)
	return _u
}

// SetNillableColorHex sets the "color_hex" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableColorHex(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetColorHex(*v)
	}
	return _u
}

// SetSecondaryColors sets the "secondary_colors" field.
func (_u *WardrobeItemUpdateOne) SetSecondaryColors(v []string) *WardrobeItemUpdateOne {
	_u.mutation.SetSecondaryColors(v)
	return _u
}

// AppendSecondaryColors appends value to the "secondary_colors" field.
func (_u *WardrobeItemUpdateOne) AppendSecondaryColors(v []string) *WardrobeItemUpdateOne {
	_u.mutation.AppendSecondaryColors(v)
	return _u
}

// ClearSecondaryColors clears the value of the "secondary_colors" field.
func (_u *WardrobeItemUpdateOne) ClearSecondaryColors() *WardrobeItemUpdateOne {
	_u.mutation.ClearSecondaryColors()
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *WardrobeItemUpdateOne) SetPattern(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillablePattern(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetMaterialFamily sets the "material_family" field.
func (_u *WardrobeItemUpdateOne) SetMaterialFamily(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetMaterialFamily(v)
	return _u
}

// SetNillableMaterialFamily sets the "material_family" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableMaterialFamily(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetMaterialFamily(*v)
	}
	return _u
}

// SetFit sets the "fit" field.
func (_u *WardrobeItemUpdateOne) SetFit(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetFit(v)
	return _u
}

// SetNillableFit sets the "fit" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableFit(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetFit(*v)
	}
	return _u
}

// SetLength sets the "length" field.
func (_u *WardrobeItemUpdateOne) SetLength(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetLength(v)
	return _u
}

// SetNillableLength sets the "length" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableLength(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetLength(*v)
	}
	return _u
}

// SetRise sets the "rise" field.
func (_u *WardrobeItemUpdateOne) SetRise(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetRise(v)
	return _u
}

// SetNillableRise sets the "rise" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableRise(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetRise(*v)
	}
	return _u
}

// SetSleeve sets the "sleeve" field.
func (_u *WardrobeItemUpdateOne) SetSleeve(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetSleeve(v)
	return _u
}

// SetNillableSleeve sets the "sleeve" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableSleeve(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetSleeve(*v)
	}
	return _u
}

// SetNeckline sets the "neckline" field.
func (_u *WardrobeItemUpdateOne) SetNeckline(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetNeckline(v)
	return _u
}

// SetNillableNeckline sets the "neckline" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableNeckline(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetNeckline(*v)
	}
	return _u
}

// SetDominantFinish sets the "dominant_finish" field.
func (_u *WardrobeItemUpdateOne) SetDominantFinish(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetDominantFinish(v)
	return _u
}

// SetNillableDominantFinish sets the "dominant_finish" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableDominantFinish(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetDominantFinish(*v)
	}
	return _u
}

// SetBrandText sets the "brand_text" field.
func (_u *WardrobeItemUpdateOne) SetBrandText(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetBrandText(v)
	return _u
}

// SetNillableBrandText sets the "brand_text" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableBrandText(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetBrandText(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *WardrobeItemUpdateOne) SetNotes(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableNotes(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *WardrobeItemUpdateOne) SetConfidence(v float64) *WardrobeItemUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableConfidence(v *float64) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *WardrobeItemUpdateOne) AddConfidence(v float64) *WardrobeItemUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLegacy sets the "legacy" field.
func (_u *WardrobeItemUpdateOne) SetLegacy(v entity.LegacyView) *WardrobeItemUpdateOne {
	_u.mutation.SetLegacy(v)
	return _u
}

// SetNillableLegacy sets the "legacy" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableLegacy(v *entity.LegacyView) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetLegacy(*v)
	}
	return _u
}

// SetImageRef sets the "image_ref" field.
func (_u *WardrobeItemUpdateOne) SetImageRef(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetImageRef(v)
	return _u
}

// SetNillableImageRef sets the "image_ref" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableImageRef(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetImageRef(*v)
	}
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *WardrobeItemUpdateOne) SetSourceID(v string) *WardrobeItemUpdateOne {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *WardrobeItemUpdateOne) SetNillableSourceID(v *string) *WardrobeItemUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WardrobeItemUpdateOne) SetUpdatedAt(v time.Time) *WardrobeItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WardrobeItemMutation object of the builder.
func (_u *WardrobeItemUpdateOne) Mutation() *WardrobeItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the WardrobeItemUpdate builder.
func (_u *WardrobeItemUpdateOne) Where(ps ...predicate.WardrobeItem) *WardrobeItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WardrobeItemUpdateOne) Select(field string, fields ...string) *WardrobeItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WardrobeItem entity.
func (_u *WardrobeItemUpdateOne) Save(ctx context.Context) (*WardrobeItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WardrobeItemUpdateOne) SaveX(ctx context.Context) *WardrobeItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WardrobeItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WardrobeItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WardrobeItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := wardrobeitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WardrobeItemUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := wardrobeitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := wardrobeitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subcategory(); ok {
		if err := wardrobeitem.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.subcategory": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ColorName(); ok {
		if err := wardrobeitem.ColorNameValidator(v); err != nil {
			return &ValidationError{Name: "color_name", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.color_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ColorHex(); ok {
		if err := wardrobeitem.ColorHexValidator(v); err != nil {
			return &ValidationError{Name: "color_hex", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.color_hex": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pattern(); ok {
		if err := wardrobeitem.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.pattern": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaterialFamily(); ok {
		if err := wardrobeitem.MaterialFamilyValidator(v); err != nil {
			return &ValidationError{Name: "material_family", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.material_family": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fit(); ok {
		if err := wardrobeitem.FitValidator(v); err != nil {
			return &ValidationError{Name: "fit", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.fit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Length(); ok {
		if err := wardrobeitem.LengthValidator(v); err != nil {
			return &ValidationError{Name: "length", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.length": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rise(); ok {
		if err := wardrobeitem.RiseValidator(v); err != nil {
			return &ValidationError{Name: "rise", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.rise": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sleeve(); ok {
		if err := wardrobeitem.SleeveValidator(v); err != nil {
			return &ValidationError{Name: "sleeve", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.sleeve": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Neckline(); ok {
		if err := wardrobeitem.NecklineValidator(v); err != nil {
			return &ValidationError{Name: "neckline", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.neckline": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DominantFinish(); ok {
		if err := wardrobeitem.DominantFinishValidator(v); err != nil {
			return &ValidationError{Name: "dominant_finish", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.dominant_finish": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := wardrobeitem.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageRef(); ok {
		if err := wardrobeitem.ImageRefValidator(v); err != nil {
			return &ValidationError{Name: "image_ref", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.image_ref": %w`, err)}
		}
	}
	return nil
}

func (_u *WardrobeItemUpdateOne) sqlSave(ctx context.Context) (_node *WardrobeItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wardrobeitem.Table, wardrobeitem.Columns, sqlgraph.NewFieldSpec(wardrobeitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WardrobeItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wardrobeitem.FieldID)
		for _, f := range fields {
			if !wardrobeitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wardrobeitem.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(wardrobeitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(wardrobeitem.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(wardrobeitem.FieldSubcategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ColorName(); ok {
		_spec.SetField(wardrobeitem.FieldColorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ColorHex(); ok {
		_spec.SetField(wardrobeitem.FieldColorHex, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecondaryColors(); ok {
		_spec.SetField(wardrobeitem.FieldSecondaryColors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSecondaryColors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, wardrobeitem.FieldSecondaryColors, value)
		})
	}
	if _u.mutation.SecondaryColorsCleared() {
		_spec.ClearField(wardrobeitem.FieldSecondaryColors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(wardrobeitem.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaterialFamily(); ok {
		_spec.SetField(wardrobeitem.FieldMaterialFamily, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fit(); ok {
		_spec.SetField(wardrobeitem.FieldFit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Length(); ok {
		_spec.SetField(wardrobeitem.FieldLength, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rise(); ok {
		_spec.SetField(wardrobeitem.FieldRise, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sleeve(); ok {
		_spec.SetField(wardrobeitem.FieldSleeve, field.TypeString, value)
	}
	if value, ok := _u.mutation.Neckline(); ok {
		_spec.SetField(wardrobeitem.FieldNeckline, field.TypeString, value)
	}
	if value, ok := _u.mutation.DominantFinish(); ok {
		_spec.SetField(wardrobeitem.FieldDominantFinish, field.TypeString, value)
	}
	if value, ok := _u.mutation.BrandText(); ok {
		_spec.SetField(wardrobeitem.FieldBrandText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(wardrobeitem.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(wardrobeitem.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(wardrobeitem.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Legacy(); ok {
		_spec.SetField(wardrobeitem.FieldLegacy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ImageRef(); ok {
		_spec.SetField(wardrobeitem.FieldImageRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(wardrobeitem.FieldSourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(wardrobeitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WardrobeItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wardrobeitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
