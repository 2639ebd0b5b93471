// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/predicate"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/wardrobeitem"
)

// WardrobeItemDelete is the builder for deleting a WardrobeItem entity.
type WardrobeItemDelete struct {
	config
	hooks    []Hook
	mutation *WardrobeItemMutation
}

// Where appends a list predicates to the WardrobeItemDelete builder.
func (_d *WardrobeItemDelete) Where(ps ...predicate.WardrobeItem) *WardrobeItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WardrobeItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WardrobeItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WardrobeItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(wardrobeitem.Table, sqlgraph.NewFieldSpec(wardrobeitem.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// WardrobeItemDeleteOne is the builder for deleting a single WardrobeItem entity.
type WardrobeItemDeleteOne struct {
	_d *WardrobeItemDelete
}

// Where appends a list predicates to the WardrobeItemDelete builder.
func (_d *WardrobeItemDeleteOne) Where(ps ...predicate.WardrobeItem) *WardrobeItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WardrobeItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{wardrobeitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WardrobeItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
