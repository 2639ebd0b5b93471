// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// IngestRunColumns holds the columns for the "ingest_run" table.
	IngestRunColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "image_ref", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "item_count", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Default: ""},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// IngestRunTable holds the schema information for the "ingest_run" table.
	IngestRunTable = &schema.Table{
		Name:       "ingest_run",
		Columns:    IngestRunColumns,
		PrimaryKey: []*schema.Column{IngestRunColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ingestrun_owner_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{IngestRunColumns[1], IngestRunColumns[3], IngestRunColumns[7]},
			},
		},
	}
	// WardrobeItemsColumns holds the columns for the "wardrobe_items" table.
	WardrobeItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "subcategory", Type: field.TypeString},
		{Name: "color_name", Type: field.TypeString},
		{Name: "color_hex", Type: field.TypeString},
		{Name: "secondary_colors", Type: field.TypeJSON, Nullable: true},
		{Name: "pattern", Type: field.TypeString},
		{Name: "material_family", Type: field.TypeString},
		{Name: "fit", Type: field.TypeString, Default: ""},
		{Name: "length", Type: field.TypeString, Default: ""},
		{Name: "rise", Type: field.TypeString, Default: ""},
		{Name: "sleeve", Type: field.TypeString, Default: ""},
		{Name: "neckline", Type: field.TypeString, Default: ""},
		{Name: "dominant_finish", Type: field.TypeString, Default: ""},
		{Name: "brand_text", Type: field.TypeString, Default: ""},
		{Name: "notes", Type: field.TypeString, Default: ""},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "legacy", Type: field.TypeJSON},
		{Name: "image_ref", Type: field.TypeString},
		{Name: "source_id", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WardrobeItemsTable holds the schema information for the "wardrobe_items" table.
	WardrobeItemsTable = &schema.Table{
		Name:       "wardrobe_items",
		Columns:    WardrobeItemsColumns,
		PrimaryKey: []*schema.Column{WardrobeItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "wardrobeitem_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WardrobeItemsColumns[1], WardrobeItemsColumns[22]},
			},
			{
				Name:    "wardrobeitem_owner_id_category",
				Unique:  false,
				Columns: []*schema.Column{WardrobeItemsColumns[1], WardrobeItemsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		IngestRunTable,
		WardrobeItemsTable,
	}
)

func init() {
	IngestRunTable.Annotation = &entsql.Annotation{
		Table: "ingest_run",
	}
	WardrobeItemsTable.Annotation = &entsql.Annotation{
		Table: "wardrobe_items",
	}
}
