// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/ingestrun"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/predicate"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/wardrobeitem"
	"github.com/gestir-app/wardrobe-tracker/internal/entity"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeIngestRun    = "IngestRun"
	TypeWardrobeItem = "WardrobeItem"
)

// IngestRunMutation represents an operation that mutates the IngestRun nodes in the graph.
type IngestRunMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	owner_id      *string
	image_ref     *string
	status        *string
	item_count    *int
	additem_count *int
	error_message *string
	model_name    *string
	started_at    *time.Time
	finished_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IngestRun, error)
	predicates    []predicate.IngestRun
}

var _ ent.Mutation = (*IngestRunMutation)(nil)

// ingestrunOption allows management of the mutation configuration using functional options.
type ingestrunOption func(*IngestRunMutation)

// newIngestRunMutation creates new mutation for the IngestRun entity.
func newIngestRunMutation(c config, op Op, opts ...ingestrunOption) *IngestRunMutation {
	m := &IngestRunMutation{
		config:        c,
		op:            op,
		typ:           TypeIngestRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngestRunID sets the ID field of the mutation.
func withIngestRunID(id uuid.UUID) ingestrunOption {
	return func(m *IngestRunMutation) {
		var (
			err   error
			once  sync.Once
			value *IngestRun
		)
		m.oldValue = func(ctx context.Context) (*IngestRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IngestRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngestRun sets the old IngestRun of the mutation.
func withIngestRun(node *IngestRun) ingestrunOption {
	return func(m *IngestRunMutation) {
		m.oldValue = func(context.Context) (*IngestRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngestRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngestRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IngestRun entities.
func (m *IngestRunMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngestRunMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngestRunMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IngestRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *IngestRunMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *IngestRunMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *IngestRunMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetImageRef sets the "image_ref" field.
func (m *IngestRunMutation) SetImageRef(s string) {
	m.image_ref = &s
}

// ImageRef returns the value of the "image_ref" field in the mutation.
func (m *IngestRunMutation) ImageRef() (r string, exists bool) {
	v := m.image_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldImageRef returns the old "image_ref" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldImageRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageRef: %w", err)
	}
	return oldValue.ImageRef, nil
}

// ResetImageRef resets all changes to the "image_ref" field.
func (m *IngestRunMutation) ResetImageRef() {
	m.image_ref = nil
}

// SetStatus sets the "status" field.
func (m *IngestRunMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *IngestRunMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IngestRunMutation) ResetStatus() {
	m.status = nil
}

// SetItemCount sets the "item_count" field.
func (m *IngestRunMutation) SetItemCount(i int) {
	m.item_count = &i
	m.additem_count = nil
}

// ItemCount returns the value of the "item_count" field in the mutation.
func (m *IngestRunMutation) ItemCount() (r int, exists bool) {
	v := m.item_count
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCount returns the old "item_count" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldItemCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCount: %w", err)
	}
	return oldValue.ItemCount, nil
}

// AddItemCount adds i to the "item_count" field.
func (m *IngestRunMutation) AddItemCount(i int) {
	if m.additem_count != nil {
		*m.additem_count += i
	} else {
		m.additem_count = &i
	}
}

// AddedItemCount returns the value that was added to the "item_count" field in this mutation.
func (m *IngestRunMutation) AddedItemCount() (r int, exists bool) {
	v := m.additem_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemCount resets all changes to the "item_count" field.
func (m *IngestRunMutation) ResetItemCount() {
	m.item_count = nil
	m.additem_count = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *IngestRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *IngestRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *IngestRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[ingestrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *IngestRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[ingestrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *IngestRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, ingestrun.FieldErrorMessage)
}

// SetModelName sets the "model_name" field.
func (m *IngestRunMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *IngestRunMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *IngestRunMutation) ResetModelName() {
	m.model_name = nil
}

// SetStartedAt sets the "started_at" field.
func (m *IngestRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *IngestRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *IngestRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *IngestRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *IngestRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *IngestRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[ingestrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *IngestRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[ingestrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *IngestRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, ingestrun.FieldFinishedAt)
}

// Where appends a list predicates to the IngestRunMutation builder.
func (m *IngestRunMutation) Where(ps ...predicate.IngestRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngestRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngestRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IngestRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngestRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngestRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IngestRun).
func (m *IngestRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngestRunMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.owner_id != nil {
		fields = append(fields, ingestrun.FieldOwnerID)
	}
	if m.image_ref != nil {
		fields = append(fields, ingestrun.FieldImageRef)
	}
	if m.status != nil {
		fields = append(fields, ingestrun.FieldStatus)
	}
	if m.item_count != nil {
		fields = append(fields, ingestrun.FieldItemCount)
	}
	if m.error_message != nil {
		fields = append(fields, ingestrun.FieldErrorMessage)
	}
	if m.model_name != nil {
		fields = append(fields, ingestrun.FieldModelName)
	}
	if m.started_at != nil {
		fields = append(fields, ingestrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, ingestrun.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngestRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingestrun.FieldOwnerID:
		return m.OwnerID()
	case ingestrun.FieldImageRef:
		return m.ImageRef()
	case ingestrun.FieldStatus:
		return m.Status()
	case ingestrun.FieldItemCount:
		return m.ItemCount()
	case ingestrun.FieldErrorMessage:
		return m.ErrorMessage()
	case ingestrun.FieldModelName:
		return m.ModelName()
	case ingestrun.FieldStartedAt:
		return m.StartedAt()
	case ingestrun.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngestRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingestrun.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case ingestrun.FieldImageRef:
		return m.OldImageRef(ctx)
	case ingestrun.FieldStatus:
		return m.OldStatus(ctx)
	case ingestrun.FieldItemCount:
		return m.OldItemCount(ctx)
	case ingestrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case ingestrun.FieldModelName:
		return m.OldModelName(ctx)
	case ingestrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case ingestrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IngestRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingestrun.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case ingestrun.FieldImageRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageRef(v)
		return nil
	case ingestrun.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ingestrun.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCount(v)
		return nil
	case ingestrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case ingestrun.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case ingestrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case ingestrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IngestRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngestRunMutation) AddedFields() []string {
	var fields []string
	if m.additem_count != nil {
		fields = append(fields, ingestrun.FieldItemCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngestRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ingestrun.FieldItemCount:
		return m.AddedItemCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ingestrun.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemCount(v)
		return nil
	}
	return fmt.Errorf("unknown IngestRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngestRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ingestrun.FieldErrorMessage) {
		fields = append(fields, ingestrun.FieldErrorMessage)
	}
	if m.FieldCleared(ingestrun.FieldFinishedAt) {
		fields = append(fields, ingestrun.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngestRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngestRunMutation) ClearField(name string) error {
	switch name {
	case ingestrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case ingestrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown IngestRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngestRunMutation) ResetField(name string) error {
	switch name {
	case ingestrun.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case ingestrun.FieldImageRef:
		m.ResetImageRef()
		return nil
	case ingestrun.FieldStatus:
		m.ResetStatus()
		return nil
	case ingestrun.FieldItemCount:
		m.ResetItemCount()
		return nil
	case ingestrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case ingestrun.FieldModelName:
		m.ResetModelName()
		return nil
	case ingestrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case ingestrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown IngestRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngestRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngestRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngestRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngestRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngestRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngestRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngestRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IngestRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngestRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IngestRun edge %s", name)
}

// WardrobeItemMutation represents an operation that mutates the WardrobeItem nodes in the graph.
type WardrobeItemMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	owner_id               *string
	name                   *string
	category               *string
	subcategory            *string
	color_name             *string
	color_hex              *string
	secondary_colors       *[]string
	appendsecondary_colors []string
	pattern                *string
	material_family        *string
	fit                    *string
	length                 *string
	rise                   *string
	sleeve                 *string
	neckline               *string
	dominant_finish        *string
	brand_text             *string
	notes                  *string
	confidence             *float64
	addconfidence          *float64
	legacy                 *entity.LegacyView
	image_ref              *string
	source_id              *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*WardrobeItem, error)
	predicates             []predicate.WardrobeItem
}

var _ ent.Mutation = (*WardrobeItemMutation)(nil)

// wardrobeitemOption allows management of the mutation configuration using functional options.
type wardrobeitemOption func(*WardrobeItemMutation)

// newWardrobeItemMutation creates new mutation for the WardrobeItem entity.
func newWardrobeItemMutation(c config, op Op, opts ...wardrobeitemOption) *WardrobeItemMutation {
	m := &WardrobeItemMutation{
		config:        c,
		op:            op,
		typ:           TypeWardrobeItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWardrobeItemID sets the ID field of the mutation.
func withWardrobeItemID(id uuid.UUID) wardrobeitemOption {
	return func(m *WardrobeItemMutation) {
		var (
			err   error
			once  sync.Once
			value *WardrobeItem
		)
		m.oldValue = func(ctx context.Context) (*WardrobeItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WardrobeItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWardrobeItem sets the old WardrobeItem of the mutation.
func withWardrobeItem(node *WardrobeItem) wardrobeitemOption {
	return func(m *WardrobeItemMutation) {
		m.oldValue = func(context.Context) (*WardrobeItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WardrobeItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WardrobeItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WardrobeItem entities.
func (m *WardrobeItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WardrobeItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WardrobeItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WardrobeItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *WardrobeItemMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *WardrobeItemMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *WardrobeItemMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetName sets the "name" field.
func (m *WardrobeItemMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WardrobeItemMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WardrobeItemMutation) ResetName() {
	m.name = nil
}

// SetCategory sets the "category" field.
func (m *WardrobeItemMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *WardrobeItemMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *WardrobeItemMutation) ResetCategory() {
	m.category = nil
}

// SetSubcategory sets the "subcategory" field.
func (m *WardrobeItemMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *WardrobeItemMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldSubcategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *WardrobeItemMutation) ResetSubcategory() {
	m.subcategory = nil
}

// SetColorName sets the "color_name" field.
func (m *WardrobeItemMutation) SetColorName(s string) {
	m.color_name = &s
}

// ColorName returns the value of the "color_name" field in the mutation.
func (m *WardrobeItemMutation) ColorName() (r string, exists bool) {
	v := m.color_name
	if v == nil {
		return
	}
	return *v, true
}

// OldColorName returns the old "color_name" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldColorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColorName: %w", err)
	}
	return oldValue.ColorName, nil
}

// ResetColorName resets all changes to the "color_name" field.
func (m *WardrobeItemMutation) ResetColorName() {
	m.color_name = nil
}

// SetColorHex sets the "color_hex" field.
func (m *WardrobeItemMutation) SetColorHex(s string) {
	m.color_hex = &s
}

// ColorHex returns the value of the "color_hex" field in the mutation.
func (m *WardrobeItemMutation) ColorHex() (r string, exists bool) {
	v := m.color_hex
	if v == nil {
		return
	}
	return *v, true
}

// OldColorHex returns the old "color_hex" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldColorHex(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColorHex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColorHex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColorHex: %w", err)
	}
	return oldValue.ColorHex, nil
}

// ResetColorHex resets all changes to the "color_hex" field.
func (m *WardrobeItemMutation) ResetColorHex() {
	m.color_hex = nil
}

// SetSecondaryColors sets the "secondary_colors" field.
func (m *WardrobeItemMutation) SetSecondaryColors(s []string) {
	m.secondary_colors = &s
	m.appendsecondary_colors = nil
}

// SecondaryColors returns the value of the "secondary_colors" field in the mutation.
func (m *WardrobeItemMutation) SecondaryColors() (r []string, exists bool) {
	v := m.secondary_colors
	if v == nil {
		return
	}
	return *v, true
}

// OldSecondaryColors returns the old "secondary_colors" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldSecondaryColors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecondaryColors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecondaryColors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecondaryColors: %w", err)
	}
	return oldValue.SecondaryColors, nil
}

// AppendSecondaryColors adds s to the "secondary_colors" field.
func (m *WardrobeItemMutation) AppendSecondaryColors(s []string) {
	m.appendsecondary_colors = append(m.appendsecondary_colors, s...)
}

// AppendedSecondaryColors returns the list of values that were appended to the "secondary_colors" field in this mutation.
func (m *WardrobeItemMutation) AppendedSecondaryColors() ([]string, bool) {
	if len(m.appendsecondary_colors) == 0 {
		return nil, false
	}
	return m.appendsecondary_colors, true
}

// ClearSecondaryColors clears the value of the "secondary_colors" field.
func (m *WardrobeItemMutation) ClearSecondaryColors() {
	m.secondary_colors = nil
	m.appendsecondary_colors = nil
	m.clearedFields[wardrobeitem.FieldSecondaryColors] = struct{}{}
}

// SecondaryColorsCleared returns if the "secondary_colors" field was cleared in this mutation.
func (m *WardrobeItemMutation) SecondaryColorsCleared() bool {
	_, ok := m.clearedFields[wardrobeitem.FieldSecondaryColors]
	return ok
}

// ResetSecondaryColors resets all changes to the "secondary_colors" field.
func (m *WardrobeItemMutation) ResetSecondaryColors() {
	m.secondary_colors = nil
	m.appendsecondary_colors = nil
	delete(m.clearedFields, wardrobeitem.FieldSecondaryColors)
}

// SetPattern sets the "pattern" field.
func (m *WardrobeItemMutation) SetPattern(s string) {
	m.pattern = &s
}

// Pattern returns the value of the "pattern" field in the mutation.
func (m *WardrobeItemMutation) Pattern() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPattern returns the old "pattern" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPattern: %w", err)
	}
	return oldValue.Pattern, nil
}

// ResetPattern resets all changes to the "pattern" field.
func (m *WardrobeItemMutation) ResetPattern() {
	m.pattern = nil
}

// SetMaterialFamily sets the "material_family" field.
func (m *WardrobeItemMutation) SetMaterialFamily(s string) {
	m.material_family = &s
}

// MaterialFamily returns the value of the "material_family" field in the mutation.
func (m *WardrobeItemMutation) MaterialFamily() (r string, exists bool) {
	v := m.material_family
	if v == nil {
		return
	}
	return *v, true
}

// OldMaterialFamily returns the old "material_family" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldMaterialFamily(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaterialFamily is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaterialFamily requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaterialFamily: %w", err)
	}
	return oldValue.MaterialFamily, nil
}

// ResetMaterialFamily resets all changes to the "material_family" field.
func (m *WardrobeItemMutation) ResetMaterialFamily() {
	m.material_family = nil
}

// SetFit sets the "fit" field.
func (m *WardrobeItemMutation) SetFit(s string) {
	m.fit = &s
}

// Fit returns the value of the "fit" field in the mutation.
func (m *WardrobeItemMutation) Fit() (r string, exists bool) {
	v := m.fit
	if v == nil {
		return
	}
	return *v, true
}

// OldFit returns the old "fit" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldFit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFit: %w", err)
	}
	return oldValue.Fit, nil
}

// ResetFit resets all changes to the "fit" field.
func (m *WardrobeItemMutation) ResetFit() {
	m.fit = nil
}

// SetLength sets the "length" field.
func (m *WardrobeItemMutation) SetLength(s string) {
	m.length = &s
}

// Length returns the value of the "length" field in the mutation.
func (m *WardrobeItemMutation) Length() (r string, exists bool) {
	v := m.length
	if v == nil {
		return
	}
	return *v, true
}

// OldLength returns the old "length" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldLength(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLength: %w", err)
	}
	return oldValue.Length, nil
}

// ResetLength resets all changes to the "length" field.
func (m *WardrobeItemMutation) ResetLength() {
	m.length = nil
}

// SetRise sets the "rise" field.
func (m *WardrobeItemMutation) SetRise(s string) {
	m.rise = &s
}

// Rise returns the value of the "rise" field in the mutation.
func (m *WardrobeItemMutation) Rise() (r string, exists bool) {
	v := m.rise
	if v == nil {
		return
	}
	return *v, true
}

// OldRise returns the old "rise" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldRise(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRise is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRise requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRise: %w", err)
	}
	return oldValue.Rise, nil
}

// ResetRise resets all changes to the "rise" field.
func (m *WardrobeItemMutation) ResetRise() {
	m.rise = nil
}

// SetSleeve sets the "sleeve" field.
func (m *WardrobeItemMutation) SetSleeve(s string) {
	m.sleeve = &s
}

// Sleeve returns the value of the "sleeve" field in the mutation.
func (m *WardrobeItemMutation) Sleeve() (r string, exists bool) {
	v := m.sleeve
	if v == nil {
		return
	}
	return *v, true
}

// OldSleeve returns the old "sleeve" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldSleeve(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSleeve is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSleeve requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSleeve: %w", err)
	}
	return oldValue.Sleeve, nil
}

// ResetSleeve resets all changes to the "sleeve" field.
func (m *WardrobeItemMutation) ResetSleeve() {
	m.sleeve = nil
}

// SetNeckline sets the "neckline" field.
func (m *WardrobeItemMutation) SetNeckline(s string) {
	m.neckline = &s
}

// Neckline returns the value of the "neckline" field in the mutation.
func (m *WardrobeItemMutation) Neckline() (r string, exists bool) {
	v := m.neckline
	if v == nil {
		return
	}
	return *v, true
}

// OldNeckline returns the old "neckline" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldNeckline(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeckline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeckline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeckline: %w", err)
	}
	return oldValue.Neckline, nil
}

// ResetNeckline resets all changes to the "neckline" field.
func (m *WardrobeItemMutation) ResetNeckline() {
	m.neckline = nil
}

// SetDominantFinish sets the "dominant_finish" field.
func (m *WardrobeItemMutation) SetDominantFinish(s string) {
	m.dominant_finish = &s
}

// DominantFinish returns the value of the "dominant_finish" field in the mutation.
func (m *WardrobeItemMutation) DominantFinish() (r string, exists bool) {
	v := m.dominant_finish
	if v == nil {
		return
	}
	return *v, true
}

// OldDominantFinish returns the old "dominant_finish" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldDominantFinish(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDominantFinish is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDominantFinish requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDominantFinish: %w", err)
	}
	return oldValue.DominantFinish, nil
}

// ResetDominantFinish resets all changes to the "dominant_finish" field.
func (m *WardrobeItemMutation) ResetDominantFinish() {
	m.dominant_finish = nil
}

// SetBrandText sets the "brand_text" field.
func (m *WardrobeItemMutation) SetBrandText(s string) {
	m.brand_text = &s
}

// BrandText returns the value of the "brand_text" field in the mutation.
func (m *WardrobeItemMutation) BrandText() (r string, exists bool) {
	v := m.brand_text
	if v == nil {
		return
	}
	return *v, true
}

// OldBrandText returns the old "brand_text" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldBrandText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrandText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrandText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrandText: %w", err)
	}
	return oldValue.BrandText, nil
}

// ResetBrandText resets all changes to the "brand_text" field.
func (m *WardrobeItemMutation) ResetBrandText() {
	m.brand_text = nil
}

// SetNotes sets the "notes" field.
func (m *WardrobeItemMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *WardrobeItemMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ResetNotes resets all changes to the "notes" field.
func (m *WardrobeItemMutation) ResetNotes() {
	m.notes = nil
}

// SetConfidence sets the "confidence" field.
func (m *WardrobeItemMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *WardrobeItemMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *WardrobeItemMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *WardrobeItemMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *WardrobeItemMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetLegacy sets the "legacy" field.
func (m *WardrobeItemMutation) SetLegacy(ev entity.LegacyView) {
	m.legacy = &ev
}

// Legacy returns the value of the "legacy" field in the mutation.
func (m *WardrobeItemMutation) Legacy() (r entity.LegacyView, exists bool) {
	v := m.legacy
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacy returns the old "legacy" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldLegacy(ctx context.Context) (v entity.LegacyView, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacy: %w", err)
	}
	return oldValue.Legacy, nil
}

// ResetLegacy resets all changes to the "legacy" field.
func (m *WardrobeItemMutation) ResetLegacy() {
	m.legacy = nil
}

// SetImageRef sets the "image_ref" field.
func (m *WardrobeItemMutation) SetImageRef(s string) {
	m.image_ref = &s
}

// ImageRef returns the value of the "image_ref" field in the mutation.
func (m *WardrobeItemMutation) ImageRef() (r string, exists bool) {
	v := m.image_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldImageRef returns the old "image_ref" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldImageRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageRef: %w", err)
	}
	return oldValue.ImageRef, nil
}

// ResetImageRef resets all changes to the "image_ref" field.
func (m *WardrobeItemMutation) ResetImageRef() {
	m.image_ref = nil
}

// SetSourceID sets the "source_id" field.
func (m *WardrobeItemMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *WardrobeItemMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *WardrobeItemMutation) ResetSourceID() {
	m.source_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WardrobeItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WardrobeItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WardrobeItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WardrobeItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WardrobeItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WardrobeItem entity.
// If the WardrobeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WardrobeItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WardrobeItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WardrobeItemMutation builder.
func (m *WardrobeItemMutation) Where(ps ...predicate.WardrobeItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WardrobeItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WardrobeItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WardrobeItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WardrobeItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WardrobeItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WardrobeItem).
func (m *WardrobeItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WardrobeItemMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.owner_id != nil {
		fields = append(fields, wardrobeitem.FieldOwnerID)
	}
	if m.name != nil {
		fields = append(fields, wardrobeitem.FieldName)
	}
	if m.category != nil {
		fields = append(fields, wardrobeitem.FieldCategory)
	}
	if m.subcategory != nil {
		fields = append(fields, wardrobeitem.FieldSubcategory)
	}
	if m.color_name != nil {
		fields = append(fields, wardrobeitem.FieldColorName)
	}
	if m.color_hex != nil {
		fields = append(fields, wardrobeitem.FieldColorHex)
	}
	if m.secondary_colors != nil {
		fields = append(fields, wardrobeitem.FieldSecondaryColors)
	}
	if m.pattern != nil {
		fields = append(fields, wardrobeitem.FieldPattern)
	}
	if m.material_family != nil {
		fields = append(fields, wardrobeitem.FieldMaterialFamily)
	}
	if m.fit != nil {
		fields = append(fields, wardrobeitem.FieldFit)
	}
	if m.length != nil {
		fields = append(fields, wardrobeitem.FieldLength)
	}
	if m.rise != nil {
		fields = append(fields, wardrobeitem.FieldRise)
	}
	if m.sleeve != nil {
		fields = append(fields, wardrobeitem.FieldSleeve)
	}
	if m.neckline != nil {
		fields = append(fields, wardrobeitem.FieldNeckline)
	}
	if m.dominant_finish != nil {
		fields = append(fields, wardrobeitem.FieldDominantFinish)
	}
	if m.brand_text != nil {
		fields = append(fields, wardrobeitem.FieldBrandText)
	}
	if m.notes != nil {
		fields = append(fields, wardrobeitem.FieldNotes)
	}
	if m.confidence != nil {
		fields = append(fields, wardrobeitem.FieldConfidence)
	}
	if m.legacy != nil {
		fields = append(fields, wardrobeitem.FieldLegacy)
	}
	if m.image_ref != nil {
		fields = append(fields, wardrobeitem.FieldImageRef)
	}
	if m.source_id != nil {
		fields = append(fields, wardrobeitem.FieldSourceID)
	}
	if m.created_at != nil {
		fields = append(fields, wardrobeitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, wardrobeitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WardrobeItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case wardrobeitem.FieldOwnerID:
		return m.OwnerID()
	case wardrobeitem.FieldName:
		return m.Name()
	case wardrobeitem.FieldCategory:
		return m.Category()
	case wardrobeitem.FieldSubcategory:
		return m.Subcategory()
	case wardrobeitem.FieldColorName:
		return m.ColorName()
	case wardrobeitem.FieldColorHex:
		return m.ColorHex()
	case wardrobeitem.FieldSecondaryColors:
		return m.SecondaryColors()
	case wardrobeitem.FieldPattern:
		return m.Pattern()
	case wardrobeitem.FieldMaterialFamily:
		return m.MaterialFamily()
	case wardrobeitem.FieldFit:
		return m.Fit()
	case wardrobeitem.FieldLength:
		return m.Length()
	case wardrobeitem.FieldRise:
		return m.Rise()
	case wardrobeitem.FieldSleeve:
		return m.Sleeve()
	case wardrobeitem.FieldNeckline:
		return m.Neckline()
	case wardrobeitem.FieldDominantFinish:
		return m.DominantFinish()
	case wardrobeitem.FieldBrandText:
		return m.BrandText()
	case wardrobeitem.FieldNotes:
		return m.Notes()
	case wardrobeitem.FieldConfidence:
		return m.Confidence()
	case wardrobeitem.FieldLegacy:
		return m.Legacy()
	case wardrobeitem.FieldImageRef:
		return m.ImageRef()
	case wardrobeitem.FieldSourceID:
		return m.SourceID()
	case wardrobeitem.FieldCreatedAt:
		return m.CreatedAt()
	case wardrobeitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WardrobeItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case wardrobeitem.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case wardrobeitem.FieldName:
		return m.OldName(ctx)
	case wardrobeitem.FieldCategory:
		return m.OldCategory(ctx)
	case wardrobeitem.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case wardrobeitem.FieldColorName:
		return m.OldColorName(ctx)
	case wardrobeitem.FieldColorHex:
		return m.OldColorHex(ctx)
	case wardrobeitem.FieldSecondaryColors:
		return m.OldSecondaryColors(ctx)
	case wardrobeitem.FieldPattern:
		return m.OldPattern(ctx)
	case wardrobeitem.FieldMaterialFamily:
		return m.OldMaterialFamily(ctx)
	case wardrobeitem.FieldFit:
		return m.OldFit(ctx)
	case wardrobeitem.FieldLength:
		return m.OldLength(ctx)
	case wardrobeitem.FieldRise:
		return m.OldRise(ctx)
	case wardrobeitem.FieldSleeve:
		return m.OldSleeve(ctx)
	case wardrobeitem.FieldNeckline:
		return m.OldNeckline(ctx)
	case wardrobeitem.FieldDominantFinish:
		return m.OldDominantFinish(ctx)
	case wardrobeitem.FieldBrandText:
		return m.OldBrandText(ctx)
	case wardrobeitem.FieldNotes:
		return m.OldNotes(ctx)
	case wardrobeitem.FieldConfidence:
		return m.OldConfidence(ctx)
	case wardrobeitem.FieldLegacy:
		return m.OldLegacy(ctx)
	case wardrobeitem.FieldImageRef:
		return m.OldImageRef(ctx)
	case wardrobeitem.FieldSourceID:
		return m.OldSourceID(ctx)
	case wardrobeitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case wardrobeitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WardrobeItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WardrobeItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case wardrobeitem.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case wardrobeitem.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case wardrobeitem.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case wardrobeitem.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case wardrobeitem.FieldColorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColorName(v)
		return nil
	case wardrobeitem.FieldColorHex:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColorHex(v)
		return nil
	case wardrobeitem.FieldSecondaryColors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecondaryColors(v)
		return nil
	case wardrobeitem.FieldPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPattern(v)
		return nil
	case wardrobeitem.FieldMaterialFamily:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaterialFamily(v)
		return nil
	case wardrobeitem.FieldFit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFit(v)
		return nil
	case wardrobeitem.FieldLength:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLength(v)
		return nil
	case wardrobeitem.FieldRise:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRise(v)
		return nil
	case wardrobeitem.FieldSleeve:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSleeve(v)
		return nil
	case wardrobeitem.FieldNeckline:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeckline(v)
		return nil
	case wardrobeitem.FieldDominantFinish:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDominantFinish(v)
		return nil
	case wardrobeitem.FieldBrandText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrandText(v)
		return nil
	case wardrobeitem.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case wardrobeitem.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case wardrobeitem.FieldLegacy:
		v, ok := value.(entity.LegacyView)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacy(v)
		return nil
	case wardrobeitem.FieldImageRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageRef(v)
		return nil
	case wardrobeitem.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case wardrobeitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case wardrobeitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WardrobeItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WardrobeItemMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, wardrobeitem.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WardrobeItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case wardrobeitem.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WardrobeItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case wardrobeitem.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown WardrobeItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WardrobeItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(wardrobeitem.FieldSecondaryColors) {
		fields = append(fields, wardrobeitem.FieldSecondaryColors)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WardrobeItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WardrobeItemMutation) ClearField(name string) error {
	switch name {
	case wardrobeitem.FieldSecondaryColors:
		m.ClearSecondaryColors()
		return nil
	}
	return fmt.Errorf("unknown WardrobeItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WardrobeItemMutation) ResetField(name string) error {
	switch name {
	case wardrobeitem.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case wardrobeitem.FieldName:
		m.ResetName()
		return nil
	case wardrobeitem.FieldCategory:
		m.ResetCategory()
		return nil
	case wardrobeitem.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case wardrobeitem.FieldColorName:
		m.ResetColorName()
		return nil
	case wardrobeitem.FieldColorHex:
		m.ResetColorHex()
		return nil
	case wardrobeitem.FieldSecondaryColors:
		m.ResetSecondaryColors()
		return nil
	case wardrobeitem.FieldPattern:
		m.ResetPattern()
		return nil
	case wardrobeitem.FieldMaterialFamily:
		m.ResetMaterialFamily()
		return nil
	case wardrobeitem.FieldFit:
		m.ResetFit()
		return nil
	case wardrobeitem.FieldLength:
		m.ResetLength()
		return nil
	case wardrobeitem.FieldRise:
		m.ResetRise()
		return nil
	case wardrobeitem.FieldSleeve:
		m.ResetSleeve()
		return nil
	case wardrobeitem.FieldNeckline:
		m.ResetNeckline()
		return nil
	case wardrobeitem.FieldDominantFinish:
		m.ResetDominantFinish()
		return nil
	case wardrobeitem.FieldBrandText:
		m.ResetBrandText()
		return nil
	case wardrobeitem.FieldNotes:
		m.ResetNotes()
		return nil
	case wardrobeitem.FieldConfidence:
		m.ResetConfidence()
		return nil
	case wardrobeitem.FieldLegacy:
		m.ResetLegacy()
		return nil
	case wardrobeitem.FieldImageRef:
		m.ResetImageRef()
		return nil
	case wardrobeitem.FieldSourceID:
		m.ResetSourceID()
		return nil
	case wardrobeitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case wardrobeitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WardrobeItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WardrobeItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WardrobeItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WardrobeItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WardrobeItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WardrobeItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WardrobeItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WardrobeItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WardrobeItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WardrobeItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WardrobeItem edge %s", name)
}
