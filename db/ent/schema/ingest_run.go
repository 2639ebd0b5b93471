package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/gestir-app/wardrobe-tracker/constants"
	"github.com/gestir-app/wardrobe-tracker/db/ent/schema/utils"
)

type IngestRun struct{ ent.Schema }

func (IngestRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ingest_run"},
	}
}

func (IngestRun) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("owner_id").NotEmpty().Immutable(),
		field.String("image_ref").NotEmpty(),
		field.String("status").
			Validate(utils.EnumValidator(
				string(constants.RunStatusRunning),
				string(constants.RunStatusDone),
				string(constants.RunStatusFailed),
			)),
		field.Int("item_count").Default(0),
		field.String("error_message").Optional().Nillable(),
		field.String("model_name").Default(""),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (IngestRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "status", "started_at"),
	}
}
