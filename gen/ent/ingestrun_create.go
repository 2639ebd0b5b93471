// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/ingestrun"
	"github.com/google/uuid"
)

// IngestRunCreate is the builder for creating a IngestRun entity.
type IngestRunCreate struct {
	config
	mutation *IngestRunMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *IngestRunCreate) SetOwnerID(v string) *IngestRunCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetImageRef sets the "image_ref" field.
func (_c *IngestRunCreate) SetImageRef(v string) *IngestRunCreate {
	_c.mutation.SetImageRef(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *IngestRunCreate) SetStatus(v string) *IngestRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetItemCount sets the "item_count" field.
func (_c *IngestRunCreate) SetItemCount(v int) *IngestRunCreate {
	_c.mutation.SetItemCount(v)
	return _c
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableItemCount(v *int) *IngestRunCreate {
	if v != nil {
		_c.SetItemCount(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *IngestRunCreate) SetErrorMessage(v string) *IngestRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableErrorMessage(v *string) *IngestRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *IngestRunCreate) SetModelName(v string) *IngestRunCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableModelName(v *string) *IngestRunCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *IngestRunCreate) SetStartedAt(v time.Time) *IngestRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableStartedAt(v *time.Time) *IngestRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *IngestRunCreate) SetFinishedAt(v time.Time) *IngestRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableFinishedAt(v *time.Time) *IngestRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IngestRunCreate) SetID(v uuid.UUID) *IngestRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableID(v *uuid.UUID) *IngestRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the IngestRunMutation object of the builder.
func (_c *IngestRunCreate) Mutation() *IngestRunMutation {
	return _c.mutation
}

// Save creates the IngestRun in the database.
func (_c *IngestRunCreate) Save(ctx context.Context) (*IngestRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestRunCreate) SaveX(ctx context.Context) *IngestRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestRunCreate) defaults() {
	if _, ok := _c.mutation.ItemCount(); !ok {
		v := ingestrun.DefaultItemCount
		_c.mutation.SetItemCount(v)
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		v := ingestrun.DefaultModelName
		_c.mutation.SetModelName(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := ingestrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ingestrun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestRunCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "IngestRun.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := ingestrun.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "IngestRun.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImageRef(); !ok {
		return &ValidationError{Name: "image_ref", err: errors.New(`ent: missing required field "IngestRun.image_ref"`)}
	}
	if v, ok := _c.mutation.ImageRef(); ok {
		if err := ingestrun.ImageRefValidator(v); err != nil {
			return &ValidationError{Name: "image_ref", err: fmt.Errorf(`ent: validator failed for field "IngestRun.image_ref": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IngestRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ingestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		return &ValidationError{Name: "item_count", err: errors.New(`ent: missing required field "IngestRun.item_count"`)}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "IngestRun.model_name"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "IngestRun.started_at"`)}
	}
	return nil
}

func (_c *IngestRunCreate) sqlSave(ctx context.Context) (*IngestRun, error) {
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

func (_c *IngestRunCreate) createSpec() (*IngestRun, *sqlgraph.CreateSpec) {
	var (
		_node = &IngestRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingestrun.Table, sqlgraph.NewFieldSpec(ingestrun.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(ingestrun.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.ImageRef(); ok {
		_spec.SetField(ingestrun.FieldImageRef, field.TypeString, value)
		_node.ImageRef = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ingestrun.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ItemCount(); ok {
		_spec.SetField(ingestrun.FieldItemCount, field.TypeInt, value)
		_node.ItemCount = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(ingestrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(ingestrun.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(ingestrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(ingestrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// IngestRunCreateBulk is the builder for creating many IngestRun entities in bulk.
type IngestRunCreateBulk struct {
	config
	err      error
	builders []*IngestRunCreate
}

// Save creates the IngestRun entities in the database.
func (_c *IngestRunCreateBulk) Save(ctx context.Context) ([]*IngestRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngestRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestRunMutation)
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
func (_c *IngestRunCreateBulk) SaveX(ctx context.Context) []*IngestRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
