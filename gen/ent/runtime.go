// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/gestir-app/wardrobe-tracker/db/ent/schema"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/ingestrun"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/wardrobeitem"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	ingestrunFields := schema.IngestRun{}.Fields()
	_ = ingestrunFields
	// ingestrunDescOwnerID is the schema descriptor for owner_id field.
	ingestrunDescOwnerID := ingestrunFields[1].Descriptor()
	// ingestrun.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	ingestrun.OwnerIDValidator = ingestrunDescOwnerID.Validators[0].(func(string) error)
	// ingestrunDescImageRef is the schema descriptor for image_ref field.
	ingestrunDescImageRef := ingestrunFields[2].Descriptor()
	// ingestrun.ImageRefValidator is a validator for the "image_ref" field. It is called by the builders before save.
	ingestrun.ImageRefValidator = ingestrunDescImageRef.Validators[0].(func(string) error)
	// ingestrunDescStatus is the schema descriptor for status field.
	ingestrunDescStatus := ingestrunFields[3].Descriptor()
	// ingestrun.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	ingestrun.StatusValidator = ingestrunDescStatus.Validators[0].(func(string) error)
	// ingestrunDescItemCount is the schema descriptor for item_count field.
	ingestrunDescItemCount := ingestrunFields[4].Descriptor()
	// ingestrun.DefaultItemCount holds the default value on creation for the item_count field.
	ingestrun.DefaultItemCount = ingestrunDescItemCount.Default.(int)
	// ingestrunDescModelName is the schema descriptor for model_name field.
	ingestrunDescModelName := ingestrunFields[6].Descriptor()
	// ingestrun.DefaultModelName holds the default value on creation for the model_name field.
	ingestrun.DefaultModelName = ingestrunDescModelName.Default.(string)
	// ingestrunDescStartedAt is the schema descriptor for started_at field.
	ingestrunDescStartedAt := ingestrunFields[7].Descriptor()
	// ingestrun.DefaultStartedAt holds the default value on creation for the started_at field.
	ingestrun.DefaultStartedAt = ingestrunDescStartedAt.Default.(func() time.Time)
	// ingestrunDescID is the schema descriptor for id field.
	ingestrunDescID := ingestrunFields[0].Descriptor()
	// ingestrun.DefaultID holds the default value on creation for the id field.
	ingestrun.DefaultID = ingestrunDescID.Default.(func() uuid.UUID)
	wardrobeitemFields := schema.WardrobeItem{}.Fields()
	_ = wardrobeitemFields
	// wardrobeitemDescOwnerID is the schema descriptor for owner_id field.
	wardrobeitemDescOwnerID := wardrobeitemFields[1].Descriptor()
	// wardrobeitem.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	wardrobeitem.OwnerIDValidator = wardrobeitemDescOwnerID.Validators[0].(func(string) error)
	// wardrobeitemDescName is the schema descriptor for name field.
	wardrobeitemDescName := wardrobeitemFields[2].Descriptor()
	// wardrobeitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	wardrobeitem.NameValidator = wardrobeitemDescName.Validators[0].(func(string) error)
	// wardrobeitemDescCategory is the schema descriptor for category field.
	wardrobeitemDescCategory := wardrobeitemFields[3].Descriptor()
	// wardrobeitem.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	wardrobeitem.CategoryValidator = func() func(string) error {
		validators := wardrobeitemDescCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(category string) error {
			for _, fn := range fns {
				if err := fn(category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// wardrobeitemDescSubcategory is the schema descriptor for subcategory field.
	wardrobeitemDescSubcategory := wardrobeitemFields[4].Descriptor()
	// wardrobeitem.SubcategoryValidator is a validator for the "subcategory" field. It is called by the builders before save.
	wardrobeitem.SubcategoryValidator = wardrobeitemDescSubcategory.Validators[0].(func(string) error)
	// wardrobeitemDescColorName is the schema descriptor for color_name field.
	wardrobeitemDescColorName := wardrobeitemFields[5].Descriptor()
	// wardrobeitem.ColorNameValidator is a validator for the "color_name" field. It is called by the builders before save.
	wardrobeitem.ColorNameValidator = wardrobeitemDescColorName.Validators[0].(func(string) error)
	// wardrobeitemDescColorHex is the schema descriptor for color_hex field.
	wardrobeitemDescColorHex := wardrobeitemFields[6].Descriptor()
	// wardrobeitem.ColorHexValidator is a validator for the "color_hex" field. It is called by the builders before save.
	wardrobeitem.ColorHexValidator = wardrobeitemDescColorHex.Validators[0].(func(string) error)
	// wardrobeitemDescPattern is the schema descriptor for pattern field.
	wardrobeitemDescPattern := wardrobeitemFields[8].Descriptor()
	// wardrobeitem.PatternValidator is a validator for the "pattern" field. It is called by the builders before save.
	wardrobeitem.PatternValidator = func() func(string) error {
		validators := wardrobeitemDescPattern.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(pattern string) error {
			for _, fn := range fns {
				if err := fn(pattern); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// wardrobeitemDescMaterialFamily is the schema descriptor for material_family field.
	wardrobeitemDescMaterialFamily := wardrobeitemFields[9].Descriptor()
	// wardrobeitem.MaterialFamilyValidator is a validator for the "material_family" field. It is called by the builders before save.
	wardrobeitem.MaterialFamilyValidator = func() func(string) error {
		validators := wardrobeitemDescMaterialFamily.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(material_family string) error {
			for _, fn := range fns {
				if err := fn(material_family); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// wardrobeitemDescFit is the schema descriptor for fit field.
	wardrobeitemDescFit := wardrobeitemFields[10].Descriptor()
	// wardrobeitem.DefaultFit holds the default value on creation for the fit field.
	wardrobeitem.DefaultFit = wardrobeitemDescFit.Default.(string)
	// wardrobeitem.FitValidator is a validator for the "fit" field. It is called by the builders before save.
	wardrobeitem.FitValidator = wardrobeitemDescFit.Validators[0].(func(string) error)
	// wardrobeitemDescLength is the schema descriptor for length field.
	wardrobeitemDescLength := wardrobeitemFields[11].Descriptor()
	// wardrobeitem.DefaultLength holds the default value on creation for the length field.
	wardrobeitem.DefaultLength = wardrobeitemDescLength.Default.(string)
	// wardrobeitem.LengthValidator is a validator for the "length" field. It is called by the builders before save.
	wardrobeitem.LengthValidator = wardrobeitemDescLength.Validators[0].(func(string) error)
	// wardrobeitemDescRise is the schema descriptor for rise field.
	wardrobeitemDescRise := wardrobeitemFields[12].Descriptor()
	// wardrobeitem.DefaultRise holds the default value on creation for the rise field.
	wardrobeitem.DefaultRise = wardrobeitemDescRise.Default.(string)
	// wardrobeitem.RiseValidator is a validator for the "rise" field. It is called by the builders before save.
	wardrobeitem.RiseValidator = wardrobeitemDescRise.Validators[0].(func(string) error)
	// wardrobeitemDescSleeve is the schema descriptor for sleeve field.
	wardrobeitemDescSleeve := wardrobeitemFields[13].Descriptor()
	// wardrobeitem.DefaultSleeve holds the default value on creation for the sleeve field.
	wardrobeitem.DefaultSleeve = wardrobeitemDescSleeve.Default.(string)
	// wardrobeitem.SleeveValidator is a validator for the "sleeve" field. It is called by the builders before save.
	wardrobeitem.SleeveValidator = wardrobeitemDescSleeve.Validators[0].(func(string) error)
	// wardrobeitemDescNeckline is the schema descriptor for neckline field.
	wardrobeitemDescNeckline := wardrobeitemFields[14].Descriptor()
	// wardrobeitem.DefaultNeckline holds the default value on creation for the neckline field.
	wardrobeitem.DefaultNeckline = wardrobeitemDescNeckline.Default.(string)
	// wardrobeitem.NecklineValidator is a validator for the "neckline" field. It is called by the builders before save.
	wardrobeitem.NecklineValidator = wardrobeitemDescNeckline.Validators[0].(func(string) error)
	// wardrobeitemDescDominantFinish is the schema descriptor for dominant_finish field.
	wardrobeitemDescDominantFinish := wardrobeitemFields[15].Descriptor()
	// wardrobeitem.DefaultDominantFinish holds the default value on creation for the dominant_finish field.
	wardrobeitem.DefaultDominantFinish = wardrobeitemDescDominantFinish.Default.(string)
	// wardrobeitem.DominantFinishValidator is a validator for the "dominant_finish" field. It is called by the builders before save.
	wardrobeitem.DominantFinishValidator = wardrobeitemDescDominantFinish.Validators[0].(func(string) error)
	// wardrobeitemDescBrandText is the schema descriptor for brand_text field.
	wardrobeitemDescBrandText := wardrobeitemFields[16].Descriptor()
	// wardrobeitem.DefaultBrandText holds the default value on creation for the brand_text field.
	wardrobeitem.DefaultBrandText = wardrobeitemDescBrandText.Default.(string)
	// wardrobeitemDescNotes is the schema descriptor for notes field.
	wardrobeitemDescNotes := wardrobeitemFields[17].Descriptor()
	// wardrobeitem.DefaultNotes holds the default value on creation for the notes field.
	wardrobeitem.DefaultNotes = wardrobeitemDescNotes.Default.(string)
	// wardrobeitemDescConfidence is the schema descriptor for confidence field.
	wardrobeitemDescConfidence := wardrobeitemFields[18].Descriptor()
	// wardrobeitem.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	wardrobeitem.ConfidenceValidator = func() func(float64) error {
		validators := wardrobeitemDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// wardrobeitemDescImageRef is the schema descriptor for image_ref field.
	wardrobeitemDescImageRef := wardrobeitemFields[20].Descriptor()
	// wardrobeitem.ImageRefValidator is a validator for the "image_ref" field. It is called by the builders before save.
	wardrobeitem.ImageRefValidator = wardrobeitemDescImageRef.Validators[0].(func(string) error)
	// wardrobeitemDescSourceID is the schema descriptor for source_id field.
	wardrobeitemDescSourceID := wardrobeitemFields[21].Descriptor()
	// wardrobeitem.DefaultSourceID holds the default value on creation for the source_id field.
	wardrobeitem.DefaultSourceID = wardrobeitemDescSourceID.Default.(string)
	// wardrobeitemDescCreatedAt is the schema descriptor for created_at field.
	wardrobeitemDescCreatedAt := wardrobeitemFields[22].Descriptor()
	// wardrobeitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	wardrobeitem.DefaultCreatedAt = wardrobeitemDescCreatedAt.Default.(func() time.Time)
	// wardrobeitemDescUpdatedAt is the schema descriptor for updated_at field.
	wardrobeitemDescUpdatedAt := wardrobeitemFields[23].Descriptor()
	// wardrobeitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	wardrobeitem.DefaultUpdatedAt = wardrobeitemDescUpdatedAt.Default.(func() time.Time)
	// wardrobeitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	wardrobeitem.UpdateDefaultUpdatedAt = wardrobeitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// wardrobeitemDescID is the schema descriptor for id field.
	wardrobeitemDescID := wardrobeitemFields[0].Descriptor()
	// wardrobeitem.DefaultID holds the default value on creation for the id field.
	wardrobeitem.DefaultID = wardrobeitemDescID.Default.(func() uuid.UUID)
}
