// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// IngestRun is the predicate function for ingestrun builders.
type IngestRun func(*sql.Selector)

// WardrobeItem is the predicate function for wardrobeitem builders.
type WardrobeItem func(*sql.Selector)
