// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/ingestrun"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/predicate"
)

// IngestRunUpdate is the builder for updating IngestRun entities.
type IngestRunUpdate struct {
	config
	hooks    []Hook
	mutation *IngestRunMutation
}

// Where appends a list predicates to the IngestRunUpdate builder.
func (_u *IngestRunUpdate) Where(ps ...predicate.IngestRun) *IngestRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetImageRef sets the "image_ref" field.
func (_u *IngestRunUpdate) SetImageRef(v string) *IngestRunUpdate {
	_u.mutation.SetImageRef(v)
	return _u
}

// SetNillableImageRef sets the "image_ref" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableImageRef(v *string) *IngestRunUpdate {
	if v != nil {
		_u.SetImageRef(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestRunUpdate) SetStatus(v string) *IngestRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableStatus(v *string) *IngestRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *IngestRunUpdate) SetItemCount(v int) *IngestRunUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableItemCount(v *int) *IngestRunUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *IngestRunUpdate) AddItemCount(v int) *IngestRunUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IngestRunUpdate) SetErrorMessage(v string) *IngestRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableErrorMessage(v *string) *IngestRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *IngestRunUpdate) ClearErrorMessage() *IngestRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *IngestRunUpdate) SetModelName(v string) *IngestRunUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableModelName(v *string) *IngestRunUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IngestRunUpdate) SetStartedAt(v time.Time) *IngestRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableStartedAt(v *time.Time) *IngestRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestRunUpdate) SetFinishedAt(v time.Time) *IngestRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableFinishedAt(v *time.Time) *IngestRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestRunUpdate) ClearFinishedAt() *IngestRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the IngestRunMutation object of the builder.
func (_u *IngestRunUpdate) Mutation() *IngestRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestRunUpdate) check() error {
	if v, ok := _u.mutation.ImageRef(); ok {
		if err := ingestrun.ImageRefValidator(v); err != nil {
			return &ValidationError{Name: "image_ref", err: fmt.Errorf(`ent: validator failed for field "IngestRun.image_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestrun.Table, ingestrun.Columns, sqlgraph.NewFieldSpec(ingestrun.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ImageRef(); ok {
		_spec.SetField(ingestrun.FieldImageRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(ingestrun.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(ingestrun.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(ingestrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(ingestrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(ingestrun.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ingestrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestrun.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestRunUpdateOne is the builder for updating a single IngestRun entity.
type IngestRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestRunMutation
}

// SetImageRef sets the "image_ref" field.
func (_u *IngestRunUpdateOne) SetImageRef(v string) *IngestRunUpdateOne {
	_u.mutation.SetImageRef(v)
	return _u
}

// SetNillableImageRef sets the "image_ref" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableImageRef(v *string) *IngestRunUpdateOne {
	if v != nil {
		_u.SetImageRef(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestRunUpdateOne) SetStatus(v string) *IngestRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableStatus(v *string) *IngestRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *IngestRunUpdateOne) SetItemCount(v int) *IngestRunUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableItemCount(v *int) *IngestRunUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *IngestRunUpdateOne) AddItemCount(v int) *IngestRunUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IngestRunUpdateOne) SetErrorMessage(v string) *IngestRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableErrorMessage(v *string) *IngestRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *IngestRunUpdateOne) ClearErrorMessage() *IngestRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *IngestRunUpdateOne) SetModelName(v string) *IngestRunUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableModelName(v *string) *IngestRunUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IngestRunUpdateOne) SetStartedAt(v time.Time) *IngestRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableStartedAt(v *time.Time) *IngestRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestRunUpdateOne) SetFinishedAt(v time.Time) *IngestRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableFinishedAt(v *time.Time) *IngestRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestRunUpdateOne) ClearFinishedAt() *IngestRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the IngestRunMutation object of the builder.
func (_u *IngestRunUpdateOne) Mutation() *IngestRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the IngestRunUpdate builder.
func (_u *IngestRunUpdateOne) Where(ps ...predicate.IngestRun) *IngestRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestRunUpdateOne) Select(field string, fields ...string) *IngestRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestRun entity.
func (_u *IngestRunUpdateOne) Save(ctx context.Context) (*IngestRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestRunUpdateOne) SaveX(ctx context.Context) *IngestRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestRunUpdateOne) check() error {
	if v, ok := _u.mutation.ImageRef(); ok {
		if err := ingestrun.ImageRefValidator(v); err != nil {
			return &ValidationError{Name: "image_ref", err: fmt.Errorf(`ent: validator failed for field "IngestRun.image_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestRunUpdateOne) sqlSave(ctx context.Context) (_node *IngestRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestrun.Table, ingestrun.Columns, sqlgraph.NewFieldSpec(ingestrun.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestrun.FieldID)
		for _, f := range fields {
			if !ingestrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestrun.FieldID {
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
	if value, ok := _u.mutation.ImageRef(); ok {
		_spec.SetField(ingestrun.FieldImageRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(ingestrun.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(ingestrun.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(ingestrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(ingestrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(ingestrun.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ingestrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestrun.FieldFinishedAt, field.TypeTime)
	}
	_node = &IngestRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
