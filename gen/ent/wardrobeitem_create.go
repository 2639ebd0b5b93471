// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/wardrobeitem"
	"github.com/gestir-app/wardrobe-tracker/internal/entity"
	"github.com/google/uuid"
)

// WardrobeItemCreate is the builder for creating a WardrobeItem entity.
type WardrobeItemCreate struct {
	config
	mutation *WardrobeItemMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *WardrobeItemCreate) SetOwnerID(v string) *WardrobeItemCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *WardrobeItemCreate) SetName(v string) *WardrobeItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *WardrobeItemCreate) SetCategory(v string) *WardrobeItemCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *WardrobeItemCreate) SetSubcategory(v string) *WardrobeItemCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetColorName sets the "color_name" field.
func (_c *WardrobeItemCreate) SetColorName(v string) *WardrobeItemCreate {
	_c.mutation.SetColorName(v)
	return _c
}

// SetColorHex sets the "color_hex" field.
func (_c *WardrobeItemCreate) SetColorHex(v string) *WardrobeItemCreate {
	_c.mutation.SetColorHex(v)
	return _c
}

// SetSecondaryColors sets the "secondary_colors" field.
func (_c *WardrobeItemCreate) SetSecondaryColors(v []string) *WardrobeItemCreate {
	_c.mutation.SetSecondaryColors(v)
	return _c
}

// SetPattern sets the "pattern" field.
func (_c *WardrobeItemCreate) SetPattern(v string) *WardrobeItemCreate {
	_c.mutation.SetPattern(v)
	return _c
}

// SetMaterialFamily sets the "material_family" field.
func (_c *WardrobeItemCreate) SetMaterialFamily(v string) *WardrobeItemCreate {
	_c.mutation.SetMaterialFamily(v)
	return _c
}

// SetFit sets the "fit" field.
func (_c *WardrobeItemCreate) SetFit(v string) *WardrobeItemCreate {
	_c.mutation.SetFit(v)
	return _c
}

// SetNillableFit sets the "fit" field if the given value is not nil.
func (_c *WardrobeItemCreate) SetNillableFit(v *string) *WardrobeItemCreate {
	if v != nil {
		_c.SetFit(*v)
	}
	return _c
}

// SetLength sets the "length" field.
func (_c *WardrobeItemCreate) SetLength(v string) *WardrobeItemCreate {
	_c.mutation.SetLength(v)
	return _c
}

// SetNillableLength sets the "length" field if the given value is not nil.
func (_c *WardrobeItemCreate) SetNillableLength(v *string) *WardrobeItemCreate {
	if v != nil {
		_c.SetLength(*v)
	}
	return _c
}

// SetRise sets the "rise" field.
func (_c *WardrobeItemCreate) SetRise(v string) *WardrobeItemCreate {
	_c.mutation.SetRise(v)
	return _c
}

// SetNillableRise sets the "rise" field if the given value is not nil.
func (_c *WardrobeItemCreate) SetNillableRise(v *string) *WardrobeItemCreate {
	if v != nil {
		_c.SetRise(*v)
	}
	return _c
}

// SetSleeve sets the "sleeve" field.
func (_c *WardrobeItemCreate) SetSleeve(v string) *WardrobeItemCreate {
	_c.mutation.SetSleeve(v)
	return _c
}

// SetNillableSleeve sets the "sleeve" field if the given value is not nil.
func (_c *WardrobeItemCreate) SetNillableSleeve(v *string) *WardrobeItemCreate {
	if v != nil {
		_c.SetSleeve(*v)
	}
	return _c
}

// SetNeckline sets the "neckline" field.
func (_c *WardrobeItemCreate) SetNeckline(v string) *WardrobeItemCreate {
	_c.mutation.SetNeckline(v)
	return _c
}

// SetNillableNeckline sets the "neckline" field if the given value is not nil.
func (_c *WardrobeItemCreate) SetNillableNeckline(v *string) *WardrobeItemCreate {
	if v != nil {
		_c.SetNeckline(*v)
	}
	return _c
}

// SetDominantFinish sets the "dominant_finish" field.
func (_c *WardrobeItemCreate) SetDominantFinish(v string) *WardrobeItemCreate {
	_c.mutation.SetDominantFinish(v)
	return _c
}

// SetNillableDominantFinish sets the "dominant_finish" field if the given value is not nil.
func (_c *WardrobeItemCreate) SetNillableDominantFinish(v *string) *WardrobeItemCreate {
	if v != nil {
		_c.SetDominantFinish(*v)
	}
	return _c
}

// SetBrandText sets the "brand_text" field.
func (_c *WardrobeItemCreate) SetBrandText(v string) *WardrobeItemCreate {
	_c.mutation.SetBrandText(v)
	return _c
}

// SetNillableBrandText sets the "brand_text" field if the given value is not nil.
func (_c *WardrobeItemCreate) SetNillableBrandText(v *string) *WardrobeItemCreate {
	if v != nil {
		_c.SetBrandText(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *WardrobeItemCreate) SetNotes(v string) *WardrobeItemCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *WardrobeItemCreate) SetNillableNotes(v *string) *WardrobeItemCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *WardrobeItemCreate) SetConfidence(v float64) *WardrobeItemCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetLegacy sets the "legacy" field.
func (_c *WardrobeItemCreate) SetLegacy(v entity.LegacyView) *WardrobeItemCreate {
	_c.mutation.SetLegacy(v)
	return _c
}

// SetImageRef sets the "image_ref" field.
func (_c *WardrobeItemCreate) SetImageRef(v string) *WardrobeItemCreate {
	_c.mutation.SetImageRef(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *WardrobeItemCreate) SetSourceID(v string) *WardrobeItemCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_c *WardrobeItemCreate) SetNillableSourceID(v *string) *WardrobeItemCreate {
	if v != nil {
		_c.SetSourceID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WardrobeItemCreate) SetCreatedAt(v time.Time) *WardrobeItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WardrobeItemCreate) SetNillableCreatedAt(v *time.Time) *WardrobeItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WardrobeItemCreate) SetUpdatedAt(v time.Time) *WardrobeItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WardrobeItemCreate) SetNillableUpdatedAt(v *time.Time) *WardrobeItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WardrobeItemCreate) SetID(v uuid.UUID) *WardrobeItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WardrobeItemCreate) SetNillableID(v *uuid.UUID) *WardrobeItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WardrobeItemMutation object of the builder.
func (_c *WardrobeItemCreate) Mutation() *WardrobeItemMutation {
	return _c.mutation
}

// Save creates the WardrobeItem in the database.
func (_c *WardrobeItemCreate) Save(ctx context.Context) (*WardrobeItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WardrobeItemCreate) SaveX(ctx context.Context) *WardrobeItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WardrobeItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WardrobeItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WardrobeItemCreate) defaults() {
	if _, ok := _c.mutation.Fit(); !ok {
		v := wardrobeitem.DefaultFit
		_c.mutation.SetFit(v)
	}
	if _, ok := _c.mutation.Length(); !ok {
		v := wardrobeitem.DefaultLength
		_c.mutation.SetLength(v)
	}
	if _, ok := _c.mutation.Rise(); !ok {
		v := wardrobeitem.DefaultRise
		_c.mutation.SetRise(v)
	}
	if _, ok := _c.mutation.Sleeve(); !ok {
		v := wardrobeitem.DefaultSleeve
		_c.mutation.SetSleeve(v)
	}
	if _, ok := _c.mutation.Neckline(); !ok {
		v := wardrobeitem.DefaultNeckline
		_c.mutation.SetNeckline(v)
	}
	if _, ok := _c.mutation.DominantFinish(); !ok {
		v := wardrobeitem.DefaultDominantFinish
		_c.mutation.SetDominantFinish(v)
	}
	if _, ok := _c.mutation.BrandText(); !ok {
		v := wardrobeitem.DefaultBrandText
		_c.mutation.SetBrandText(v)
	}
	if _, ok := _c.mutation.Notes(); !ok {
		v := wardrobeitem.DefaultNotes
		_c.mutation.SetNotes(v)
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		v := wardrobeitem.DefaultSourceID
		_c.mutation.SetSourceID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := wardrobeitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := wardrobeitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := wardrobeitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WardrobeItemCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "WardrobeItem.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := wardrobeitem.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "WardrobeItem.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := wardrobeitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "WardrobeItem.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := wardrobeitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subcategory(); !ok {
		return &ValidationError{Name: "subcategory", err: errors.New(`ent: missing required field "WardrobeItem.subcategory"`)}
	}
	if v, ok := _c.mutation.Subcategory(); ok {
		if err := wardrobeitem.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.subcategory": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ColorName(); !ok {
		return &ValidationError{Name: "color_name", err: errors.New(`ent: missing required field "WardrobeItem.color_name"`)}
	}
	if v, ok := _c.mutation.ColorName(); ok {
		if err := wardrobeitem.ColorNameValidator(v); err != nil {
			return &ValidationError{Name: "color_name", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.color_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ColorHex(); !ok {
		return &ValidationError{Name: "color_hex", err: errors.New(`ent: missing required field "WardrobeItem.color_hex"`)}
	}
	if v, ok := _c.mutation.ColorHex(); ok {
		if err := wardrobeitem.ColorHexValidator(v); err != nil {
			return &ValidationError{Name: "color_hex", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.color_hex": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pattern(); !ok {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required field "WardrobeItem.pattern"`)}
	}
	if v, ok := _c.mutation.Pattern(); ok {
		if err := wardrobeitem.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.pattern": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaterialFamily(); !ok {
		return &ValidationError{Name: "material_family", err: errors.New(`ent: missing required field "WardrobeItem.material_family"`)}
	}
	if v, ok := _c.mutation.MaterialFamily(); ok {
		if err := wardrobeitem.MaterialFamilyValidator(v); err != nil {
			return &ValidationError{Name: "material_family", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.material_family": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fit(); !ok {
		return &ValidationError{Name: "fit", err: errors.New(`ent: missing required field "WardrobeItem.fit"`)}
	}
	if v, ok := _c.mutation.Fit(); ok {
		if err := wardrobeitem.FitValidator(v); err != nil {
			return &ValidationError{Name: "fit", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.fit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Length(); !ok {
		return &ValidationError{Name: "length", err: errors.New(`ent: missing required field "WardrobeItem.length"`)}
	}
	if v, ok := _c.mutation.Length(); ok {
		if err := wardrobeitem.LengthValidator(v); err != nil {
			return &ValidationError{Name: "length", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.length": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rise(); !ok {
		return &ValidationError{Name: "rise", err: errors.New(`ent: missing required field "WardrobeItem.rise"`)}
	}
	if v, ok := _c.mutation.Rise(); ok {
		if err := wardrobeitem.RiseValidator(v); err != nil {
			return &ValidationError{Name: "rise", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.rise": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sleeve(); !ok {
		return &ValidationError{Name: "sleeve", err: errors.New(`ent: missing required field "WardrobeItem.sleeve"`)}
	}
	if v, ok := _c.mutation.Sleeve(); ok {
		if err := wardrobeitem.SleeveValidator(v); err != nil {
			return &ValidationError{Name: "sleeve", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.sleeve": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Neckline(); !ok {
		return &ValidationError{Name: "neckline", err: errors.New(`ent: missing required field "WardrobeItem.neckline"`)}
	}
	if v, ok := _c.mutation.Neckline(); ok {
		if err := wardrobeitem.NecklineValidator(v); err != nil {
			return &ValidationError{Name: "neckline", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.neckline": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DominantFinish(); !ok {
		return &ValidationError{Name: "dominant_finish", err: errors.New(`ent: missing required field "WardrobeItem.dominant_finish"`)}
	}
	if v, ok := _c.mutation.DominantFinish(); ok {
		if err := wardrobeitem.DominantFinishValidator(v); err != nil {
			return &ValidationError{Name: "dominant_finish", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.dominant_finish": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BrandText(); !ok {
		return &ValidationError{Name: "brand_text", err: errors.New(`ent: missing required field "WardrobeItem.brand_text"`)}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "WardrobeItem.notes"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "WardrobeItem.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := wardrobeitem.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Legacy(); !ok {
		return &ValidationError{Name: "legacy", err: errors.New(`ent: missing required field "WardrobeItem.legacy"`)}
	}
	if _, ok := _c.mutation.ImageRef(); !ok {
		return &ValidationError{Name: "image_ref", err: errors.New(`ent: missing required field "WardrobeItem.image_ref"`)}
	}
	if v, ok := _c.mutation.ImageRef(); ok {
		if err := wardrobeitem.ImageRefValidator(v); err != nil {
			return &ValidationError{Name: "image_ref", err: fmt.Errorf(`ent: validator failed for field "WardrobeItem.image_ref": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "WardrobeItem.source_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WardrobeItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WardrobeItem.updated_at"`)}
	}
	return nil
}

func (_c *WardrobeItemCreate) sqlSave(ctx context.Context) (*WardrobeItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WardrobeItemCreate) createSpec() (*WardrobeItem, *sqlgraph.CreateSpec) {
	var (
		_node = &WardrobeItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(wardrobeitem.Table, sqlgraph.NewFieldSpec(wardrobeitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(wardrobeitem.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(wardrobeitem.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(wardrobeitem.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(wardrobeitem.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.ColorName(); ok {
		_spec.SetField(wardrobeitem.FieldColorName, field.TypeString, value)
		_node.ColorName = value
	}
	if value, ok := _c.mutation.ColorHex(); ok {
		_spec.SetField(wardrobeitem.FieldColorHex, field.TypeString, value)
		_node.ColorHex = value
	}
	if value, ok := _c.mutation.SecondaryColors(); ok {
		_spec.SetField(wardrobeitem.FieldSecondaryColors, field.TypeJSON, value)
		_node.SecondaryColors = value
	}
	if value, ok := _c.mutation.Pattern(); ok {
		_spec.SetField(wardrobeitem.FieldPattern, field.TypeString, value)
		_node.Pattern = value
	}
	if value, ok := _c.mutation.MaterialFamily(); ok {
		_spec.SetField(wardrobeitem.FieldMaterialFamily, field.TypeString, value)
		_node.MaterialFamily = value
	}
	if value, ok := _c.mutation.Fit(); ok {
		_spec.SetField(wardrobeitem.FieldFit, field.TypeString, value)
		_node.Fit = value
	}
	if value, ok := _c.mutation.Length(); ok {
		_spec.SetField(wardrobeitem.FieldLength, field.TypeString, value)
		_node.Length = value
	}
	if value, ok := _c.mutation.Rise(); ok {
		_spec.SetField(wardrobeitem.FieldRise, field.TypeString, value)
		_node.Rise = value
	}
	if value, ok := _c.mutation.Sleeve(); ok {
		_spec.SetField(wardrobeitem.FieldSleeve, field.TypeString, value)
		_node.Sleeve = value
	}
	if value, ok := _c.mutation.Neckline(); ok {
		_spec.SetField(wardrobeitem.FieldNeckline, field.TypeString, value)
		_node.Neckline = value
	}
	if value, ok := _c.mutation.DominantFinish(); ok {
		_spec.SetField(wardrobeitem.FieldDominantFinish, field.TypeString, value)
		_node.DominantFinish = value
	}
	if value, ok := _c.mutation.BrandText(); ok {
		_spec.SetField(wardrobeitem.FieldBrandText, field.TypeString, value)
		_node.BrandText = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(wardrobeitem.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(wardrobeitem.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Legacy(); ok {
		_spec.SetField(wardrobeitem.FieldLegacy, field.TypeJSON, value)
		_node.Legacy = value
	}
	if value, ok := _c.mutation.ImageRef(); ok {
		_spec.SetField(wardrobeitem.FieldImageRef, field.TypeString, value)
		_node.ImageRef = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(wardrobeitem.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(wardrobeitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(wardrobeitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WardrobeItemCreateBulk is the builder for creating many WardrobeItem entities in bulk.
type WardrobeItemCreateBulk struct {
	config
	err      error
	builders []*WardrobeItemCreate
}

// Save creates the WardrobeItem entities in the database.
func (_c *WardrobeItemCreateBulk) Save(ctx context.Context) ([]*WardrobeItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WardrobeItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WardrobeItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WardrobeItemCreateBulk) SaveX(ctx context.Context) []*WardrobeItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WardrobeItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WardrobeItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
