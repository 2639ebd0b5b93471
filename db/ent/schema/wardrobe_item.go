package schema

import (
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/gestir-app/wardrobe-tracker/constants"
	"github.com/gestir-app/wardrobe-tracker/db/ent/schema/utils"
	"github.com/gestir-app/wardrobe-tracker/internal/entity"
)

var reHexColor = regexp.MustCompile(`^#([0-9A-Fa-f]{6})$`)

type WardrobeItem struct{ ent.Schema }

func (WardrobeItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "wardrobe_items"},
	}
}

func (WardrobeItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("owner_id").NotEmpty().Immutable(),
		field.String("name").NotEmpty(),
		field.String("category").NotEmpty().
			Validate(utils.EnumValidator(constants.CategoryStrings()...)),
		field.String("subcategory").NotEmpty(),
		field.String("color_name").NotEmpty(),
		field.String("color_hex").
			Match(reHexColor),
		field.JSON("secondary_colors", []string{}).
			Optional(),
		field.String("pattern").NotEmpty().
			Validate(utils.EnumValidator(constants.Patterns...)),
		field.String("material_family").NotEmpty().
			Validate(utils.EnumValidator(constants.MaterialFamilies...)),
		field.String("fit").Default("").
			Validate(utils.OptionalEnumValidator(constants.Fits...)),
		field.String("length").Default("").
			Validate(utils.OptionalEnumValidator(constants.Lengths...)),
		field.String("rise").Default("").
			Validate(utils.OptionalEnumValidator(constants.Rises...)),
		field.String("sleeve").Default("").
			Validate(utils.OptionalEnumValidator(constants.Sleeves...)),
		field.String("neckline").Default("").
			Validate(utils.OptionalEnumValidator(constants.Necklines...)),
		field.String("dominant_finish").Default("").
			Validate(utils.OptionalEnumValidator(constants.Finishes...)),
		field.String("brand_text").Default(""),
		field.String("notes").Default(""),
		field.Float("confidence").
			Min(0).Max(1),
		field.JSON("legacy", entity.LegacyView{}),
		field.String("image_ref").NotEmpty(),
		field.String("source_id").Default(""),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (WardrobeItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
		index.Fields("owner_id", "category"),
	}
}
