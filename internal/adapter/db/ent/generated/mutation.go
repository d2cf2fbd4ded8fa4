// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/activitylog"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/calendarday"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/instructor"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lessonpayment"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/order"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/payout"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/processedevent"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
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
	TypeActivityLog    = "ActivityLog"
	TypeCalendarDay    = "CalendarDay"
	TypeInstructor     = "Instructor"
	TypeLesson         = "Lesson"
	TypeLessonPayment  = "LessonPayment"
	TypeOrder          = "Order"
	TypePayout         = "Payout"
	TypeProcessedEvent = "ProcessedEvent"
	TypeTimeSlot       = "TimeSlot"
)

// ActivityLogMutation represents an operation that mutates the ActivityLog nodes in the graph.
type ActivityLogMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	actor_kind    *string
	actor_id      *uuid.UUID
	category      *string
	message       *string
	meta          *map[string]string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ActivityLog, error)
	predicates    []predicate.ActivityLog
}

var _ ent.Mutation = (*ActivityLogMutation)(nil)

// activitylogOption allows management of the mutation configuration using functional options.
type activitylogOption func(*ActivityLogMutation)

// newActivityLogMutation creates new mutation for the ActivityLog entity.
func newActivityLogMutation(c config, op Op, opts ...activitylogOption) *ActivityLogMutation {
	m := &ActivityLogMutation{
		config:        c,
		op:            op,
		typ:           TypeActivityLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityLogID sets the ID field of the mutation.
func withActivityLogID(id uuid.UUID) activitylogOption {
	return func(m *ActivityLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ActivityLog
		)
		m.oldValue = func(ctx context.Context) (*ActivityLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActivityLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivityLog sets the old ActivityLog of the mutation.
func withActivityLog(node *ActivityLog) activitylogOption {
	return func(m *ActivityLogMutation) {
		m.oldValue = func(context.Context) (*ActivityLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActivityLog entities.
func (m *ActivityLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActivityLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActorKind sets the "actor_kind" field.
func (m *ActivityLogMutation) SetActorKind(s string) {
	m.actor_kind = &s
}

// ActorKind returns the value of the "actor_kind" field in the mutation.
func (m *ActivityLogMutation) ActorKind() (r string, exists bool) {
	v := m.actor_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldActorKind returns the old "actor_kind" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldActorKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorKind: %w", err)
	}
	return oldValue.ActorKind, nil
}

// ResetActorKind resets all changes to the "actor_kind" field.
func (m *ActivityLogMutation) ResetActorKind() {
	m.actor_kind = nil
}

// SetActorID sets the "actor_id" field.
func (m *ActivityLogMutation) SetActorID(u uuid.UUID) {
	m.actor_id = &u
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *ActivityLogMutation) ActorID() (r uuid.UUID, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldActorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *ActivityLogMutation) ResetActorID() {
	m.actor_id = nil
}

// SetCategory sets the "category" field.
func (m *ActivityLogMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ActivityLogMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldCategory(ctx context.Context) (v string, err error) {
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
func (m *ActivityLogMutation) ResetCategory() {
	m.category = nil
}

// SetMessage sets the "message" field.
func (m *ActivityLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ActivityLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ActivityLogMutation) ResetMessage() {
	m.message = nil
}

// SetMeta sets the "meta" field.
func (m *ActivityLogMutation) SetMeta(value map[string]string) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *ActivityLogMutation) Meta() (r map[string]string, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldMeta(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *ActivityLogMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[activitylog.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *ActivityLogMutation) MetaCleared() bool {
	_, ok := m.clearedFields[activitylog.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *ActivityLogMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, activitylog.FieldMeta)
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivityLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivityLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ActivityLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ActivityLogMutation builder.
func (m *ActivityLogMutation) Where(ps ...predicate.ActivityLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActivityLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActivityLog).
func (m *ActivityLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.actor_kind != nil {
		fields = append(fields, activitylog.FieldActorKind)
	}
	if m.actor_id != nil {
		fields = append(fields, activitylog.FieldActorID)
	}
	if m.category != nil {
		fields = append(fields, activitylog.FieldCategory)
	}
	if m.message != nil {
		fields = append(fields, activitylog.FieldMessage)
	}
	if m.meta != nil {
		fields = append(fields, activitylog.FieldMeta)
	}
	if m.created_at != nil {
		fields = append(fields, activitylog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activitylog.FieldActorKind:
		return m.ActorKind()
	case activitylog.FieldActorID:
		return m.ActorID()
	case activitylog.FieldCategory:
		return m.Category()
	case activitylog.FieldMessage:
		return m.Message()
	case activitylog.FieldMeta:
		return m.Meta()
	case activitylog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activitylog.FieldActorKind:
		return m.OldActorKind(ctx)
	case activitylog.FieldActorID:
		return m.OldActorID(ctx)
	case activitylog.FieldCategory:
		return m.OldCategory(ctx)
	case activitylog.FieldMessage:
		return m.OldMessage(ctx)
	case activitylog.FieldMeta:
		return m.OldMeta(ctx)
	case activitylog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActivityLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activitylog.FieldActorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorKind(v)
		return nil
	case activitylog.FieldActorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case activitylog.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case activitylog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case activitylog.FieldMeta:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case activitylog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ActivityLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activitylog.FieldMeta) {
		fields = append(fields, activitylog.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityLogMutation) ClearField(name string) error {
	switch name {
	case activitylog.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown ActivityLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityLogMutation) ResetField(name string) error {
	switch name {
	case activitylog.FieldActorKind:
		m.ResetActorKind()
		return nil
	case activitylog.FieldActorID:
		m.ResetActorID()
		return nil
	case activitylog.FieldCategory:
		m.ResetCategory()
		return nil
	case activitylog.FieldMessage:
		m.ResetMessage()
		return nil
	case activitylog.FieldMeta:
		m.ResetMeta()
		return nil
	case activitylog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ActivityLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActivityLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActivityLog edge %s", name)
}

// CalendarDayMutation represents an operation that mutates the CalendarDay nodes in the graph.
type CalendarDayMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	instructor_id *uuid.UUID
	date          *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	slots         map[uuid.UUID]struct{}
	removedslots  map[uuid.UUID]struct{}
	clearedslots  bool
	done          bool
	oldValue      func(context.Context) (*CalendarDay, error)
	predicates    []predicate.CalendarDay
}

var _ ent.Mutation = (*CalendarDayMutation)(nil)

// calendardayOption allows management of the mutation configuration using functional options.
type calendardayOption func(*CalendarDayMutation)

// newCalendarDayMutation creates new mutation for the CalendarDay entity.
func newCalendarDayMutation(c config, op Op, opts ...calendardayOption) *CalendarDayMutation {
	m := &CalendarDayMutation{
		config:        c,
		op:            op,
		typ:           TypeCalendarDay,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalendarDayID sets the ID field of the mutation.
func withCalendarDayID(id uuid.UUID) calendardayOption {
	return func(m *CalendarDayMutation) {
		var (
			err   error
			once  sync.Once
			value *CalendarDay
		)
		m.oldValue = func(ctx context.Context) (*CalendarDay, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalendarDay.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalendarDay sets the old CalendarDay of the mutation.
func withCalendarDay(node *CalendarDay) calendardayOption {
	return func(m *CalendarDayMutation) {
		m.oldValue = func(context.Context) (*CalendarDay, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalendarDayMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalendarDayMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CalendarDay entities.
func (m *CalendarDayMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalendarDayMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalendarDayMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalendarDay.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInstructorID sets the "instructor_id" field.
func (m *CalendarDayMutation) SetInstructorID(u uuid.UUID) {
	m.instructor_id = &u
}

// InstructorID returns the value of the "instructor_id" field in the mutation.
func (m *CalendarDayMutation) InstructorID() (r uuid.UUID, exists bool) {
	v := m.instructor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructorID returns the old "instructor_id" field's value of the CalendarDay entity.
// If the CalendarDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarDayMutation) OldInstructorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructorID: %w", err)
	}
	return oldValue.InstructorID, nil
}

// ResetInstructorID resets all changes to the "instructor_id" field.
func (m *CalendarDayMutation) ResetInstructorID() {
	m.instructor_id = nil
}

// SetDate sets the "date" field.
func (m *CalendarDayMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *CalendarDayMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the CalendarDay entity.
// If the CalendarDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarDayMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *CalendarDayMutation) ResetDate() {
	m.date = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CalendarDayMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CalendarDayMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CalendarDay entity.
// If the CalendarDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarDayMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CalendarDayMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSlotIDs adds the "slots" edge to the TimeSlot entity by ids.
func (m *CalendarDayMutation) AddSlotIDs(ids ...uuid.UUID) {
	if m.slots == nil {
		m.slots = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.slots[ids[i]] = struct{}{}
	}
}

// ClearSlots clears the "slots" edge to the TimeSlot entity.
func (m *CalendarDayMutation) ClearSlots() {
	m.clearedslots = true
}

// SlotsCleared reports if the "slots" edge to the TimeSlot entity was cleared.
func (m *CalendarDayMutation) SlotsCleared() bool {
	return m.clearedslots
}

// RemoveSlotIDs removes the "slots" edge to the TimeSlot entity by IDs.
func (m *CalendarDayMutation) RemoveSlotIDs(ids ...uuid.UUID) {
	if m.removedslots == nil {
		m.removedslots = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.slots, ids[i])
		m.removedslots[ids[i]] = struct{}{}
	}
}

// RemovedSlots returns the removed IDs of the "slots" edge to the TimeSlot entity.
func (m *CalendarDayMutation) RemovedSlotsIDs() (ids []uuid.UUID) {
	for id := range m.removedslots {
		ids = append(ids, id)
	}
	return
}

// SlotsIDs returns the "slots" edge IDs in the mutation.
func (m *CalendarDayMutation) SlotsIDs() (ids []uuid.UUID) {
	for id := range m.slots {
		ids = append(ids, id)
	}
	return
}

// ResetSlots resets all changes to the "slots" edge.
func (m *CalendarDayMutation) ResetSlots() {
	m.slots = nil
	m.clearedslots = false
	m.removedslots = nil
}

// Where appends a list predicates to the CalendarDayMutation builder.
func (m *CalendarDayMutation) Where(ps ...predicate.CalendarDay) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalendarDayMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalendarDayMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalendarDay, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalendarDayMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalendarDayMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalendarDay).
func (m *CalendarDayMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalendarDayMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.instructor_id != nil {
		fields = append(fields, calendarday.FieldInstructorID)
	}
	if m.date != nil {
		fields = append(fields, calendarday.FieldDate)
	}
	if m.created_at != nil {
		fields = append(fields, calendarday.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalendarDayMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calendarday.FieldInstructorID:
		return m.InstructorID()
	case calendarday.FieldDate:
		return m.Date()
	case calendarday.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalendarDayMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calendarday.FieldInstructorID:
		return m.OldInstructorID(ctx)
	case calendarday.FieldDate:
		return m.OldDate(ctx)
	case calendarday.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CalendarDay field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarDayMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calendarday.FieldInstructorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructorID(v)
		return nil
	case calendarday.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case calendarday.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarDay field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalendarDayMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalendarDayMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarDayMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CalendarDay numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalendarDayMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalendarDayMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalendarDayMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CalendarDay nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalendarDayMutation) ResetField(name string) error {
	switch name {
	case calendarday.FieldInstructorID:
		m.ResetInstructorID()
		return nil
	case calendarday.FieldDate:
		m.ResetDate()
		return nil
	case calendarday.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CalendarDay field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalendarDayMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.slots != nil {
		edges = append(edges, calendarday.EdgeSlots)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalendarDayMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case calendarday.EdgeSlots:
		ids := make([]ent.Value, 0, len(m.slots))
		for id := range m.slots {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalendarDayMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedslots != nil {
		edges = append(edges, calendarday.EdgeSlots)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalendarDayMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case calendarday.EdgeSlots:
		ids := make([]ent.Value, 0, len(m.removedslots))
		for id := range m.removedslots {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalendarDayMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedslots {
		edges = append(edges, calendarday.EdgeSlots)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalendarDayMutation) EdgeCleared(name string) bool {
	switch name {
	case calendarday.EdgeSlots:
		return m.clearedslots
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalendarDayMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CalendarDay unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalendarDayMutation) ResetEdge(name string) error {
	switch name {
	case calendarday.EdgeSlots:
		m.ResetSlots()
		return nil
	}
	return fmt.Errorf("unknown CalendarDay edge %s", name)
}

// InstructorMutation represents an operation that mutates the Instructor nodes in the graph.
type InstructorMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	name                *string
	email               *string
	account_ref         *string
	onboarding_complete *bool
	charges_enabled     *bool
	payouts_enabled     *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Instructor, error)
	predicates          []predicate.Instructor
}

var _ ent.Mutation = (*InstructorMutation)(nil)

// instructorOption allows management of the mutation configuration using functional options.
type instructorOption func(*InstructorMutation)

// newInstructorMutation creates new mutation for the Instructor entity.
func newInstructorMutation(c config, op Op, opts ...instructorOption) *InstructorMutation {
	m := &InstructorMutation{
		config:        c,
		op:            op,
		typ:           TypeInstructor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInstructorID sets the ID field of the mutation.
func withInstructorID(id uuid.UUID) instructorOption {
	return func(m *InstructorMutation) {
		var (
			err   error
			once  sync.Once
			value *Instructor
		)
		m.oldValue = func(ctx context.Context) (*Instructor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Instructor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInstructor sets the old Instructor of the mutation.
func withInstructor(node *Instructor) instructorOption {
	return func(m *InstructorMutation) {
		m.oldValue = func(context.Context) (*Instructor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InstructorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InstructorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Instructor entities.
func (m *InstructorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InstructorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InstructorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Instructor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *InstructorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *InstructorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Instructor entity.
// If the Instructor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructorMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *InstructorMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *InstructorMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *InstructorMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Instructor entity.
// If the Instructor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructorMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *InstructorMutation) ResetEmail() {
	m.email = nil
}

// SetAccountRef sets the "account_ref" field.
func (m *InstructorMutation) SetAccountRef(s string) {
	m.account_ref = &s
}

// AccountRef returns the value of the "account_ref" field in the mutation.
func (m *InstructorMutation) AccountRef() (r string, exists bool) {
	v := m.account_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountRef returns the old "account_ref" field's value of the Instructor entity.
// If the Instructor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructorMutation) OldAccountRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountRef: %w", err)
	}
	return oldValue.AccountRef, nil
}

// ResetAccountRef resets all changes to the "account_ref" field.
func (m *InstructorMutation) ResetAccountRef() {
	m.account_ref = nil
}

// SetOnboardingComplete sets the "onboarding_complete" field.
func (m *InstructorMutation) SetOnboardingComplete(b bool) {
	m.onboarding_complete = &b
}

// OnboardingComplete returns the value of the "onboarding_complete" field in the mutation.
func (m *InstructorMutation) OnboardingComplete() (r bool, exists bool) {
	v := m.onboarding_complete
	if v == nil {
		return
	}
	return *v, true
}

// OldOnboardingComplete returns the old "onboarding_complete" field's value of the Instructor entity.
// If the Instructor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructorMutation) OldOnboardingComplete(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnboardingComplete is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnboardingComplete requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnboardingComplete: %w", err)
	}
	return oldValue.OnboardingComplete, nil
}

// ResetOnboardingComplete resets all changes to the "onboarding_complete" field.
func (m *InstructorMutation) ResetOnboardingComplete() {
	m.onboarding_complete = nil
}

// SetChargesEnabled sets the "charges_enabled" field.
func (m *InstructorMutation) SetChargesEnabled(b bool) {
	m.charges_enabled = &b
}

// ChargesEnabled returns the value of the "charges_enabled" field in the mutation.
func (m *InstructorMutation) ChargesEnabled() (r bool, exists bool) {
	v := m.charges_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldChargesEnabled returns the old "charges_enabled" field's value of the Instructor entity.
// If the Instructor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructorMutation) OldChargesEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChargesEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChargesEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChargesEnabled: %w", err)
	}
	return oldValue.ChargesEnabled, nil
}

// ResetChargesEnabled resets all changes to the "charges_enabled" field.
func (m *InstructorMutation) ResetChargesEnabled() {
	m.charges_enabled = nil
}

// SetPayoutsEnabled sets the "payouts_enabled" field.
func (m *InstructorMutation) SetPayoutsEnabled(b bool) {
	m.payouts_enabled = &b
}

// PayoutsEnabled returns the value of the "payouts_enabled" field in the mutation.
func (m *InstructorMutation) PayoutsEnabled() (r bool, exists bool) {
	v := m.payouts_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldPayoutsEnabled returns the old "payouts_enabled" field's value of the Instructor entity.
// If the Instructor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructorMutation) OldPayoutsEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayoutsEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayoutsEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayoutsEnabled: %w", err)
	}
	return oldValue.PayoutsEnabled, nil
}

// ResetPayoutsEnabled resets all changes to the "payouts_enabled" field.
func (m *InstructorMutation) ResetPayoutsEnabled() {
	m.payouts_enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InstructorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InstructorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Instructor entity.
// If the Instructor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InstructorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InstructorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InstructorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Instructor entity.
// If the Instructor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InstructorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the InstructorMutation builder.
func (m *InstructorMutation) Where(ps ...predicate.Instructor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InstructorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InstructorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Instructor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InstructorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InstructorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Instructor).
func (m *InstructorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InstructorMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, instructor.FieldName)
	}
	if m.email != nil {
		fields = append(fields, instructor.FieldEmail)
	}
	if m.account_ref != nil {
		fields = append(fields, instructor.FieldAccountRef)
	}
	if m.onboarding_complete != nil {
		fields = append(fields, instructor.FieldOnboardingComplete)
	}
	if m.charges_enabled != nil {
		fields = append(fields, instructor.FieldChargesEnabled)
	}
	if m.payouts_enabled != nil {
		fields = append(fields, instructor.FieldPayoutsEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, instructor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, instructor.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InstructorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case instructor.FieldName:
		return m.Name()
	case instructor.FieldEmail:
		return m.Email()
	case instructor.FieldAccountRef:
		return m.AccountRef()
	case instructor.FieldOnboardingComplete:
		return m.OnboardingComplete()
	case instructor.FieldChargesEnabled:
		return m.ChargesEnabled()
	case instructor.FieldPayoutsEnabled:
		return m.PayoutsEnabled()
	case instructor.FieldCreatedAt:
		return m.CreatedAt()
	case instructor.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InstructorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case instructor.FieldName:
		return m.OldName(ctx)
	case instructor.FieldEmail:
		return m.OldEmail(ctx)
	case instructor.FieldAccountRef:
		return m.OldAccountRef(ctx)
	case instructor.FieldOnboardingComplete:
		return m.OldOnboardingComplete(ctx)
	case instructor.FieldChargesEnabled:
		return m.OldChargesEnabled(ctx)
	case instructor.FieldPayoutsEnabled:
		return m.OldPayoutsEnabled(ctx)
	case instructor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case instructor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Instructor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstructorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case instructor.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case instructor.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case instructor.FieldAccountRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountRef(v)
		return nil
	case instructor.FieldOnboardingComplete:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnboardingComplete(v)
		return nil
	case instructor.FieldChargesEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChargesEnabled(v)
		return nil
	case instructor.FieldPayoutsEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayoutsEnabled(v)
		return nil
	case instructor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case instructor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Instructor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InstructorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InstructorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstructorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Instructor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InstructorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InstructorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InstructorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Instructor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InstructorMutation) ResetField(name string) error {
	switch name {
	case instructor.FieldName:
		m.ResetName()
		return nil
	case instructor.FieldEmail:
		m.ResetEmail()
		return nil
	case instructor.FieldAccountRef:
		m.ResetAccountRef()
		return nil
	case instructor.FieldOnboardingComplete:
		m.ResetOnboardingComplete()
		return nil
	case instructor.FieldChargesEnabled:
		m.ResetChargesEnabled()
		return nil
	case instructor.FieldPayoutsEnabled:
		m.ResetPayoutsEnabled()
		return nil
	case instructor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case instructor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Instructor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InstructorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InstructorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InstructorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InstructorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InstructorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InstructorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InstructorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Instructor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InstructorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Instructor edge %s", name)
}

// LessonMutation represents an operation that mutates the Lesson nodes in the graph.
type LessonMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	instructor_id   *uuid.UUID
	date            *time.Time
	start_time      *string
	end_time        *string
	amount_pence    *int64
	addamount_pence *int64
	status          *string
	completed_at    *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	_order          *uuid.UUID
	cleared_order   bool
	slot            *uuid.UUID
	clearedslot     bool
	payment         *uuid.UUID
	clearedpayment  bool
	payout          *uuid.UUID
	clearedpayout   bool
	done            bool
	oldValue        func(context.Context) (*Lesson, error)
	predicates      []predicate.Lesson
}

var _ ent.Mutation = (*LessonMutation)(nil)

// lessonOption allows management of the mutation configuration using functional options.
type lessonOption func(*LessonMutation)

// newLessonMutation creates new mutation for the Lesson entity.
func newLessonMutation(c config, op Op, opts ...lessonOption) *LessonMutation {
	m := &LessonMutation{
		config:        c,
		op:            op,
		typ:           TypeLesson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonID sets the ID field of the mutation.
func withLessonID(id uuid.UUID) lessonOption {
	return func(m *LessonMutation) {
		var (
			err   error
			once  sync.Once
			value *Lesson
		)
		m.oldValue = func(ctx context.Context) (*Lesson, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lesson.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLesson sets the old Lesson of the mutation.
func withLesson(node *Lesson) lessonOption {
	return func(m *LessonMutation) {
		m.oldValue = func(context.Context) (*Lesson, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lesson entities.
func (m *LessonMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lesson.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrderID sets the "order_id" field.
func (m *LessonMutation) SetOrderID(u uuid.UUID) {
	m._order = &u
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *LessonMutation) OrderID() (r uuid.UUID, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldOrderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *LessonMutation) ResetOrderID() {
	m._order = nil
}

// SetInstructorID sets the "instructor_id" field.
func (m *LessonMutation) SetInstructorID(u uuid.UUID) {
	m.instructor_id = &u
}

// InstructorID returns the value of the "instructor_id" field in the mutation.
func (m *LessonMutation) InstructorID() (r uuid.UUID, exists bool) {
	v := m.instructor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructorID returns the old "instructor_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldInstructorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructorID: %w", err)
	}
	return oldValue.InstructorID, nil
}

// ResetInstructorID resets all changes to the "instructor_id" field.
func (m *LessonMutation) ResetInstructorID() {
	m.instructor_id = nil
}

// SetSlotID sets the "slot_id" field.
func (m *LessonMutation) SetSlotID(u uuid.UUID) {
	m.slot = &u
}

// SlotID returns the value of the "slot_id" field in the mutation.
func (m *LessonMutation) SlotID() (r uuid.UUID, exists bool) {
	v := m.slot
	if v == nil {
		return
	}
	return *v, true
}

// OldSlotID returns the old "slot_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldSlotID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlotID: %w", err)
	}
	return oldValue.SlotID, nil
}

// ClearSlotID clears the value of the "slot_id" field.
func (m *LessonMutation) ClearSlotID() {
	m.slot = nil
	m.clearedFields[lesson.FieldSlotID] = struct{}{}
}

// SlotIDCleared returns if the "slot_id" field was cleared in this mutation.
func (m *LessonMutation) SlotIDCleared() bool {
	_, ok := m.clearedFields[lesson.FieldSlotID]
	return ok
}

// ResetSlotID resets all changes to the "slot_id" field.
func (m *LessonMutation) ResetSlotID() {
	m.slot = nil
	delete(m.clearedFields, lesson.FieldSlotID)
}

// SetDate sets the "date" field.
func (m *LessonMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *LessonMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *LessonMutation) ResetDate() {
	m.date = nil
}

// SetStartTime sets the "start_time" field.
func (m *LessonMutation) SetStartTime(s string) {
	m.start_time = &s
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *LessonMutation) StartTime() (r string, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldStartTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *LessonMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *LessonMutation) SetEndTime(s string) {
	m.end_time = &s
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *LessonMutation) EndTime() (r string, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldEndTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *LessonMutation) ResetEndTime() {
	m.end_time = nil
}

// SetAmountPence sets the "amount_pence" field.
func (m *LessonMutation) SetAmountPence(i int64) {
	m.amount_pence = &i
	m.addamount_pence = nil
}

// AmountPence returns the value of the "amount_pence" field in the mutation.
func (m *LessonMutation) AmountPence() (r int64, exists bool) {
	v := m.amount_pence
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountPence returns the old "amount_pence" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldAmountPence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountPence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountPence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountPence: %w", err)
	}
	return oldValue.AmountPence, nil
}

// AddAmountPence adds i to the "amount_pence" field.
func (m *LessonMutation) AddAmountPence(i int64) {
	if m.addamount_pence != nil {
		*m.addamount_pence += i
	} else {
		m.addamount_pence = &i
	}
}

// AddedAmountPence returns the value that was added to the "amount_pence" field in this mutation.
func (m *LessonMutation) AddedAmountPence() (r int64, exists bool) {
	v := m.addamount_pence
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountPence resets all changes to the "amount_pence" field.
func (m *LessonMutation) ResetAmountPence() {
	m.amount_pence = nil
	m.addamount_pence = nil
}

// SetStatus sets the "status" field.
func (m *LessonMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *LessonMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *LessonMutation) ResetStatus() {
	m.status = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *LessonMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *LessonMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *LessonMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[lesson.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *LessonMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[lesson.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *LessonMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, lesson.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *LessonMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LessonMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *LessonMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LessonMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LessonMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *LessonMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearOrder clears the "order" edge to the Order entity.
func (m *LessonMutation) ClearOrder() {
	m.cleared_order = true
	m.clearedFields[lesson.FieldOrderID] = struct{}{}
}

// OrderCleared reports if the "order" edge to the Order entity was cleared.
func (m *LessonMutation) OrderCleared() bool {
	return m.cleared_order
}

// OrderIDs returns the "order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrderID instead. It exists only for internal usage by the builders.
func (m *LessonMutation) OrderIDs() (ids []uuid.UUID) {
	if id := m._order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrder resets all changes to the "order" edge.
func (m *LessonMutation) ResetOrder() {
	m._order = nil
	m.cleared_order = false
}

// ClearSlot clears the "slot" edge to the TimeSlot entity.
func (m *LessonMutation) ClearSlot() {
	m.clearedslot = true
	m.clearedFields[lesson.FieldSlotID] = struct{}{}
}

// SlotCleared reports if the "slot" edge to the TimeSlot entity was cleared.
func (m *LessonMutation) SlotCleared() bool {
	return m.SlotIDCleared() || m.clearedslot
}

// SlotIDs returns the "slot" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SlotID instead. It exists only for internal usage by the builders.
func (m *LessonMutation) SlotIDs() (ids []uuid.UUID) {
	if id := m.slot; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSlot resets all changes to the "slot" edge.
func (m *LessonMutation) ResetSlot() {
	m.slot = nil
	m.clearedslot = false
}

// SetPaymentID sets the "payment" edge to the LessonPayment entity by id.
func (m *LessonMutation) SetPaymentID(id uuid.UUID) {
	m.payment = &id
}

// ClearPayment clears the "payment" edge to the LessonPayment entity.
func (m *LessonMutation) ClearPayment() {
	m.clearedpayment = true
}

// PaymentCleared reports if the "payment" edge to the LessonPayment entity was cleared.
func (m *LessonMutation) PaymentCleared() bool {
	return m.clearedpayment
}

// PaymentID returns the "payment" edge ID in the mutation.
func (m *LessonMutation) PaymentID() (id uuid.UUID, exists bool) {
	if m.payment != nil {
		return *m.payment, true
	}
	return
}

// PaymentIDs returns the "payment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PaymentID instead. It exists only for internal usage by the builders.
func (m *LessonMutation) PaymentIDs() (ids []uuid.UUID) {
	if id := m.payment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPayment resets all changes to the "payment" edge.
func (m *LessonMutation) ResetPayment() {
	m.payment = nil
	m.clearedpayment = false
}

// SetPayoutID sets the "payout" edge to the Payout entity by id.
func (m *LessonMutation) SetPayoutID(id uuid.UUID) {
	m.payout = &id
}

// ClearPayout clears the "payout" edge to the Payout entity.
func (m *LessonMutation) ClearPayout() {
	m.clearedpayout = true
}

// PayoutCleared reports if the "payout" edge to the Payout entity was cleared.
func (m *LessonMutation) PayoutCleared() bool {
	return m.clearedpayout
}

// PayoutID returns the "payout" edge ID in the mutation.
func (m *LessonMutation) PayoutID() (id uuid.UUID, exists bool) {
	if m.payout != nil {
		return *m.payout, true
	}
	return
}

// PayoutIDs returns the "payout" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PayoutID instead. It exists only for internal usage by the builders.
func (m *LessonMutation) PayoutIDs() (ids []uuid.UUID) {
	if id := m.payout; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPayout resets all changes to the "payout" edge.
func (m *LessonMutation) ResetPayout() {
	m.payout = nil
	m.clearedpayout = false
}

// Where appends a list predicates to the LessonMutation builder.
func (m *LessonMutation) Where(ps ...predicate.Lesson) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lesson, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lesson).
func (m *LessonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m._order != nil {
		fields = append(fields, lesson.FieldOrderID)
	}
	if m.instructor_id != nil {
		fields = append(fields, lesson.FieldInstructorID)
	}
	if m.slot != nil {
		fields = append(fields, lesson.FieldSlotID)
	}
	if m.date != nil {
		fields = append(fields, lesson.FieldDate)
	}
	if m.start_time != nil {
		fields = append(fields, lesson.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, lesson.FieldEndTime)
	}
	if m.amount_pence != nil {
		fields = append(fields, lesson.FieldAmountPence)
	}
	if m.status != nil {
		fields = append(fields, lesson.FieldStatus)
	}
	if m.completed_at != nil {
		fields = append(fields, lesson.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, lesson.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lesson.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldOrderID:
		return m.OrderID()
	case lesson.FieldInstructorID:
		return m.InstructorID()
	case lesson.FieldSlotID:
		return m.SlotID()
	case lesson.FieldDate:
		return m.Date()
	case lesson.FieldStartTime:
		return m.StartTime()
	case lesson.FieldEndTime:
		return m.EndTime()
	case lesson.FieldAmountPence:
		return m.AmountPence()
	case lesson.FieldStatus:
		return m.Status()
	case lesson.FieldCompletedAt:
		return m.CompletedAt()
	case lesson.FieldCreatedAt:
		return m.CreatedAt()
	case lesson.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lesson.FieldOrderID:
		return m.OldOrderID(ctx)
	case lesson.FieldInstructorID:
		return m.OldInstructorID(ctx)
	case lesson.FieldSlotID:
		return m.OldSlotID(ctx)
	case lesson.FieldDate:
		return m.OldDate(ctx)
	case lesson.FieldStartTime:
		return m.OldStartTime(ctx)
	case lesson.FieldEndTime:
		return m.OldEndTime(ctx)
	case lesson.FieldAmountPence:
		return m.OldAmountPence(ctx)
	case lesson.FieldStatus:
		return m.OldStatus(ctx)
	case lesson.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case lesson.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lesson.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lesson field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case lesson.FieldInstructorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructorID(v)
		return nil
	case lesson.FieldSlotID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlotID(v)
		return nil
	case lesson.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case lesson.FieldStartTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case lesson.FieldEndTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case lesson.FieldAmountPence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountPence(v)
		return nil
	case lesson.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lesson.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case lesson.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lesson.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonMutation) AddedFields() []string {
	var fields []string
	if m.addamount_pence != nil {
		fields = append(fields, lesson.FieldAmountPence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldAmountPence:
		return m.AddedAmountPence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldAmountPence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountPence(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lesson.FieldSlotID) {
		fields = append(fields, lesson.FieldSlotID)
	}
	if m.FieldCleared(lesson.FieldCompletedAt) {
		fields = append(fields, lesson.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonMutation) ClearField(name string) error {
	switch name {
	case lesson.FieldSlotID:
		m.ClearSlotID()
		return nil
	case lesson.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Lesson nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonMutation) ResetField(name string) error {
	switch name {
	case lesson.FieldOrderID:
		m.ResetOrderID()
		return nil
	case lesson.FieldInstructorID:
		m.ResetInstructorID()
		return nil
	case lesson.FieldSlotID:
		m.ResetSlotID()
		return nil
	case lesson.FieldDate:
		m.ResetDate()
		return nil
	case lesson.FieldStartTime:
		m.ResetStartTime()
		return nil
	case lesson.FieldEndTime:
		m.ResetEndTime()
		return nil
	case lesson.FieldAmountPence:
		m.ResetAmountPence()
		return nil
	case lesson.FieldStatus:
		m.ResetStatus()
		return nil
	case lesson.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case lesson.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lesson.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m._order != nil {
		edges = append(edges, lesson.EdgeOrder)
	}
	if m.slot != nil {
		edges = append(edges, lesson.EdgeSlot)
	}
	if m.payment != nil {
		edges = append(edges, lesson.EdgePayment)
	}
	if m.payout != nil {
		edges = append(edges, lesson.EdgePayout)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lesson.EdgeOrder:
		if id := m._order; id != nil {
			return []ent.Value{*id}
		}
	case lesson.EdgeSlot:
		if id := m.slot; id != nil {
			return []ent.Value{*id}
		}
	case lesson.EdgePayment:
		if id := m.payment; id != nil {
			return []ent.Value{*id}
		}
	case lesson.EdgePayout:
		if id := m.payout; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleared_order {
		edges = append(edges, lesson.EdgeOrder)
	}
	if m.clearedslot {
		edges = append(edges, lesson.EdgeSlot)
	}
	if m.clearedpayment {
		edges = append(edges, lesson.EdgePayment)
	}
	if m.clearedpayout {
		edges = append(edges, lesson.EdgePayout)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonMutation) EdgeCleared(name string) bool {
	switch name {
	case lesson.EdgeOrder:
		return m.cleared_order
	case lesson.EdgeSlot:
		return m.clearedslot
	case lesson.EdgePayment:
		return m.clearedpayment
	case lesson.EdgePayout:
		return m.clearedpayout
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonMutation) ClearEdge(name string) error {
	switch name {
	case lesson.EdgeOrder:
		m.ClearOrder()
		return nil
	case lesson.EdgeSlot:
		m.ClearSlot()
		return nil
	case lesson.EdgePayment:
		m.ClearPayment()
		return nil
	case lesson.EdgePayout:
		m.ClearPayout()
		return nil
	}
	return fmt.Errorf("unknown Lesson unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonMutation) ResetEdge(name string) error {
	switch name {
	case lesson.EdgeOrder:
		m.ResetOrder()
		return nil
	case lesson.EdgeSlot:
		m.ResetSlot()
		return nil
	case lesson.EdgePayment:
		m.ResetPayment()
		return nil
	case lesson.EdgePayout:
		m.ResetPayout()
		return nil
	}
	return fmt.Errorf("unknown Lesson edge %s", name)
}

// LessonPaymentMutation represents an operation that mutates the LessonPayment nodes in the graph.
type LessonPaymentMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	amount_pence    *int64
	addamount_pence *int64
	status          *string
	due_date        *time.Time
	invoice_ref     *string
	paid_at         *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	lesson          *uuid.UUID
	clearedlesson   bool
	done            bool
	oldValue        func(context.Context) (*LessonPayment, error)
	predicates      []predicate.LessonPayment
}

var _ ent.Mutation = (*LessonPaymentMutation)(nil)

// lessonpaymentOption allows management of the mutation configuration using functional options.
type lessonpaymentOption func(*LessonPaymentMutation)

// newLessonPaymentMutation creates new mutation for the LessonPayment entity.
func newLessonPaymentMutation(c config, op Op, opts ...lessonpaymentOption) *LessonPaymentMutation {
	m := &LessonPaymentMutation{
		config:        c,
		op:            op,
		typ:           TypeLessonPayment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonPaymentID sets the ID field of the mutation.
func withLessonPaymentID(id uuid.UUID) lessonpaymentOption {
	return func(m *LessonPaymentMutation) {
		var (
			err   error
			once  sync.Once
			value *LessonPayment
		)
		m.oldValue = func(ctx context.Context) (*LessonPayment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LessonPayment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLessonPayment sets the old LessonPayment of the mutation.
func withLessonPayment(node *LessonPayment) lessonpaymentOption {
	return func(m *LessonPaymentMutation) {
		m.oldValue = func(context.Context) (*LessonPayment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonPaymentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonPaymentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LessonPayment entities.
func (m *LessonPaymentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonPaymentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonPaymentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LessonPayment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLessonID sets the "lesson_id" field.
func (m *LessonPaymentMutation) SetLessonID(u uuid.UUID) {
	m.lesson = &u
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *LessonPaymentMutation) LessonID() (r uuid.UUID, exists bool) {
	v := m.lesson
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the LessonPayment entity.
// If the LessonPayment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPaymentMutation) OldLessonID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *LessonPaymentMutation) ResetLessonID() {
	m.lesson = nil
}

// SetAmountPence sets the "amount_pence" field.
func (m *LessonPaymentMutation) SetAmountPence(i int64) {
	m.amount_pence = &i
	m.addamount_pence = nil
}

// AmountPence returns the value of the "amount_pence" field in the mutation.
func (m *LessonPaymentMutation) AmountPence() (r int64, exists bool) {
	v := m.amount_pence
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountPence returns the old "amount_pence" field's value of the LessonPayment entity.
// If the LessonPayment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPaymentMutation) OldAmountPence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountPence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountPence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountPence: %w", err)
	}
	return oldValue.AmountPence, nil
}

// AddAmountPence adds i to the "amount_pence" field.
func (m *LessonPaymentMutation) AddAmountPence(i int64) {
	if m.addamount_pence != nil {
		*m.addamount_pence += i
	} else {
		m.addamount_pence = &i
	}
}

// AddedAmountPence returns the value that was added to the "amount_pence" field in this mutation.
func (m *LessonPaymentMutation) AddedAmountPence() (r int64, exists bool) {
	v := m.addamount_pence
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountPence resets all changes to the "amount_pence" field.
func (m *LessonPaymentMutation) ResetAmountPence() {
	m.amount_pence = nil
	m.addamount_pence = nil
}

// SetStatus sets the "status" field.
func (m *LessonPaymentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *LessonPaymentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LessonPayment entity.
// If the LessonPayment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPaymentMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *LessonPaymentMutation) ResetStatus() {
	m.status = nil
}

// SetDueDate sets the "due_date" field.
func (m *LessonPaymentMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *LessonPaymentMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the LessonPayment entity.
// If the LessonPayment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPaymentMutation) OldDueDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *LessonPaymentMutation) ResetDueDate() {
	m.due_date = nil
}

// SetInvoiceRef sets the "invoice_ref" field.
func (m *LessonPaymentMutation) SetInvoiceRef(s string) {
	m.invoice_ref = &s
}

// InvoiceRef returns the value of the "invoice_ref" field in the mutation.
func (m *LessonPaymentMutation) InvoiceRef() (r string, exists bool) {
	v := m.invoice_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceRef returns the old "invoice_ref" field's value of the LessonPayment entity.
// If the LessonPayment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPaymentMutation) OldInvoiceRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceRef: %w", err)
	}
	return oldValue.InvoiceRef, nil
}

// ResetInvoiceRef resets all changes to the "invoice_ref" field.
func (m *LessonPaymentMutation) ResetInvoiceRef() {
	m.invoice_ref = nil
}

// SetPaidAt sets the "paid_at" field.
func (m *LessonPaymentMutation) SetPaidAt(t time.Time) {
	m.paid_at = &t
}

// PaidAt returns the value of the "paid_at" field in the mutation.
func (m *LessonPaymentMutation) PaidAt() (r time.Time, exists bool) {
	v := m.paid_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidAt returns the old "paid_at" field's value of the LessonPayment entity.
// If the LessonPayment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPaymentMutation) OldPaidAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidAt: %w", err)
	}
	return oldValue.PaidAt, nil
}

// ClearPaidAt clears the value of the "paid_at" field.
func (m *LessonPaymentMutation) ClearPaidAt() {
	m.paid_at = nil
	m.clearedFields[lessonpayment.FieldPaidAt] = struct{}{}
}

// PaidAtCleared returns if the "paid_at" field was cleared in this mutation.
func (m *LessonPaymentMutation) PaidAtCleared() bool {
	_, ok := m.clearedFields[lessonpayment.FieldPaidAt]
	return ok
}

// ResetPaidAt resets all changes to the "paid_at" field.
func (m *LessonPaymentMutation) ResetPaidAt() {
	m.paid_at = nil
	delete(m.clearedFields, lessonpayment.FieldPaidAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *LessonPaymentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LessonPaymentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LessonPayment entity.
// If the LessonPayment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonPaymentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *LessonPaymentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (m *LessonPaymentMutation) ClearLesson() {
	m.clearedlesson = true
	m.clearedFields[lessonpayment.FieldLessonID] = struct{}{}
}

// LessonCleared reports if the "lesson" edge to the Lesson entity was cleared.
func (m *LessonPaymentMutation) LessonCleared() bool {
	return m.clearedlesson
}

// LessonIDs returns the "lesson" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LessonID instead. It exists only for internal usage by the builders.
func (m *LessonPaymentMutation) LessonIDs() (ids []uuid.UUID) {
	if id := m.lesson; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLesson resets all changes to the "lesson" edge.
func (m *LessonPaymentMutation) ResetLesson() {
	m.lesson = nil
	m.clearedlesson = false
}

// Where appends a list predicates to the LessonPaymentMutation builder.
func (m *LessonPaymentMutation) Where(ps ...predicate.LessonPayment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonPaymentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonPaymentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LessonPayment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonPaymentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonPaymentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LessonPayment).
func (m *LessonPaymentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonPaymentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.lesson != nil {
		fields = append(fields, lessonpayment.FieldLessonID)
	}
	if m.amount_pence != nil {
		fields = append(fields, lessonpayment.FieldAmountPence)
	}
	if m.status != nil {
		fields = append(fields, lessonpayment.FieldStatus)
	}
	if m.due_date != nil {
		fields = append(fields, lessonpayment.FieldDueDate)
	}
	if m.invoice_ref != nil {
		fields = append(fields, lessonpayment.FieldInvoiceRef)
	}
	if m.paid_at != nil {
		fields = append(fields, lessonpayment.FieldPaidAt)
	}
	if m.created_at != nil {
		fields = append(fields, lessonpayment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonPaymentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lessonpayment.FieldLessonID:
		return m.LessonID()
	case lessonpayment.FieldAmountPence:
		return m.AmountPence()
	case lessonpayment.FieldStatus:
		return m.Status()
	case lessonpayment.FieldDueDate:
		return m.DueDate()
	case lessonpayment.FieldInvoiceRef:
		return m.InvoiceRef()
	case lessonpayment.FieldPaidAt:
		return m.PaidAt()
	case lessonpayment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonPaymentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lessonpayment.FieldLessonID:
		return m.OldLessonID(ctx)
	case lessonpayment.FieldAmountPence:
		return m.OldAmountPence(ctx)
	case lessonpayment.FieldStatus:
		return m.OldStatus(ctx)
	case lessonpayment.FieldDueDate:
		return m.OldDueDate(ctx)
	case lessonpayment.FieldInvoiceRef:
		return m.OldInvoiceRef(ctx)
	case lessonpayment.FieldPaidAt:
		return m.OldPaidAt(ctx)
	case lessonpayment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LessonPayment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonPaymentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lessonpayment.FieldLessonID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case lessonpayment.FieldAmountPence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountPence(v)
		return nil
	case lessonpayment.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lessonpayment.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case lessonpayment.FieldInvoiceRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceRef(v)
		return nil
	case lessonpayment.FieldPaidAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidAt(v)
		return nil
	case lessonpayment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LessonPayment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonPaymentMutation) AddedFields() []string {
	var fields []string
	if m.addamount_pence != nil {
		fields = append(fields, lessonpayment.FieldAmountPence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonPaymentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lessonpayment.FieldAmountPence:
		return m.AddedAmountPence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonPaymentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lessonpayment.FieldAmountPence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountPence(v)
		return nil
	}
	return fmt.Errorf("unknown LessonPayment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonPaymentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lessonpayment.FieldPaidAt) {
		fields = append(fields, lessonpayment.FieldPaidAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonPaymentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonPaymentMutation) ClearField(name string) error {
	switch name {
	case lessonpayment.FieldPaidAt:
		m.ClearPaidAt()
		return nil
	}
	return fmt.Errorf("unknown LessonPayment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonPaymentMutation) ResetField(name string) error {
	switch name {
	case lessonpayment.FieldLessonID:
		m.ResetLessonID()
		return nil
	case lessonpayment.FieldAmountPence:
		m.ResetAmountPence()
		return nil
	case lessonpayment.FieldStatus:
		m.ResetStatus()
		return nil
	case lessonpayment.FieldDueDate:
		m.ResetDueDate()
		return nil
	case lessonpayment.FieldInvoiceRef:
		m.ResetInvoiceRef()
		return nil
	case lessonpayment.FieldPaidAt:
		m.ResetPaidAt()
		return nil
	case lessonpayment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LessonPayment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonPaymentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.lesson != nil {
		edges = append(edges, lessonpayment.EdgeLesson)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonPaymentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lessonpayment.EdgeLesson:
		if id := m.lesson; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonPaymentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonPaymentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonPaymentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlesson {
		edges = append(edges, lessonpayment.EdgeLesson)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonPaymentMutation) EdgeCleared(name string) bool {
	switch name {
	case lessonpayment.EdgeLesson:
		return m.clearedlesson
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonPaymentMutation) ClearEdge(name string) error {
	switch name {
	case lessonpayment.EdgeLesson:
		m.ClearLesson()
		return nil
	}
	return fmt.Errorf("unknown LessonPayment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonPaymentMutation) ResetEdge(name string) error {
	switch name {
	case lessonpayment.EdgeLesson:
		m.ResetLesson()
		return nil
	}
	return fmt.Errorf("unknown LessonPayment edge %s", name)
}

// OrderMutation represents an operation that mutates the Order nodes in the graph.
type OrderMutation struct {
	config
	op                            Op
	typ                           string
	id                            *uuid.UUID
	student_id                    *uuid.UUID
	instructor_id                 *uuid.UUID
	package_name                  *string
	package_total_price_pence     *int64
	addpackage_total_price_pence  *int64
	package_lesson_price_pence    *int64
	addpackage_lesson_price_pence *int64
	package_lesson_count          *int
	addpackage_lesson_count       *int
	payment_mode                  *string
	status                        *string
	customer_ref                  *string
	checkout_session_ref          *string
	payment_ref                   *string
	created_at                    *time.Time
	updated_at                    *time.Time
	clearedFields                 map[string]struct{}
	lessons                       map[uuid.UUID]struct{}
	removedlessons                map[uuid.UUID]struct{}
	clearedlessons                bool
	done                          bool
	oldValue                      func(context.Context) (*Order, error)
	predicates                    []predicate.Order
}

var _ ent.Mutation = (*OrderMutation)(nil)

// orderOption allows management of the mutation configuration using functional options.
type orderOption func(*OrderMutation)

// newOrderMutation creates new mutation for the Order entity.
func newOrderMutation(c config, op Op, opts ...orderOption) *OrderMutation {
	m := &OrderMutation{
		config:        c,
		op:            op,
		typ:           TypeOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderID sets the ID field of the mutation.
func withOrderID(id uuid.UUID) orderOption {
	return func(m *OrderMutation) {
		var (
			err   error
			once  sync.Once
			value *Order
		)
		m.oldValue = func(ctx context.Context) (*Order, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Order.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrder sets the old Order of the mutation.
func withOrder(node *Order) orderOption {
	return func(m *OrderMutation) {
		m.oldValue = func(context.Context) (*Order, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Order entities.
func (m *OrderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Order.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *OrderMutation) SetStudentID(u uuid.UUID) {
	m.student_id = &u
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *OrderMutation) StudentID() (r uuid.UUID, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldStudentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *OrderMutation) ResetStudentID() {
	m.student_id = nil
}

// SetInstructorID sets the "instructor_id" field.
func (m *OrderMutation) SetInstructorID(u uuid.UUID) {
	m.instructor_id = &u
}

// InstructorID returns the value of the "instructor_id" field in the mutation.
func (m *OrderMutation) InstructorID() (r uuid.UUID, exists bool) {
	v := m.instructor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructorID returns the old "instructor_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldInstructorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructorID: %w", err)
	}
	return oldValue.InstructorID, nil
}

// ResetInstructorID resets all changes to the "instructor_id" field.
func (m *OrderMutation) ResetInstructorID() {
	m.instructor_id = nil
}

// SetPackageName sets the "package_name" field.
func (m *OrderMutation) SetPackageName(s string) {
	m.package_name = &s
}

// PackageName returns the value of the "package_name" field in the mutation.
func (m *OrderMutation) PackageName() (r string, exists bool) {
	v := m.package_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageName returns the old "package_name" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldPackageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageName: %w", err)
	}
	return oldValue.PackageName, nil
}

// ResetPackageName resets all changes to the "package_name" field.
func (m *OrderMutation) ResetPackageName() {
	m.package_name = nil
}

// SetPackageTotalPricePence sets the "package_total_price_pence" field.
func (m *OrderMutation) SetPackageTotalPricePence(i int64) {
	m.package_total_price_pence = &i
	m.addpackage_total_price_pence = nil
}

// PackageTotalPricePence returns the value of the "package_total_price_pence" field in the mutation.
func (m *OrderMutation) PackageTotalPricePence() (r int64, exists bool) {
	v := m.package_total_price_pence
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageTotalPricePence returns the old "package_total_price_pence" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldPackageTotalPricePence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageTotalPricePence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageTotalPricePence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageTotalPricePence: %w", err)
	}
	return oldValue.PackageTotalPricePence, nil
}

// AddPackageTotalPricePence adds i to the "package_total_price_pence" field.
func (m *OrderMutation) AddPackageTotalPricePence(i int64) {
	if m.addpackage_total_price_pence != nil {
		*m.addpackage_total_price_pence += i
	} else {
		m.addpackage_total_price_pence = &i
	}
}

// AddedPackageTotalPricePence returns the value that was added to the "package_total_price_pence" field in this mutation.
func (m *OrderMutation) AddedPackageTotalPricePence() (r int64, exists bool) {
	v := m.addpackage_total_price_pence
	if v == nil {
		return
	}
	return *v, true
}

// ResetPackageTotalPricePence resets all changes to the "package_total_price_pence" field.
func (m *OrderMutation) ResetPackageTotalPricePence() {
	m.package_total_price_pence = nil
	m.addpackage_total_price_pence = nil
}

// SetPackageLessonPricePence sets the "package_lesson_price_pence" field.
func (m *OrderMutation) SetPackageLessonPricePence(i int64) {
	m.package_lesson_price_pence = &i
	m.addpackage_lesson_price_pence = nil
}

// PackageLessonPricePence returns the value of the "package_lesson_price_pence" field in the mutation.
func (m *OrderMutation) PackageLessonPricePence() (r int64, exists bool) {
	v := m.package_lesson_price_pence
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageLessonPricePence returns the old "package_lesson_price_pence" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldPackageLessonPricePence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageLessonPricePence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageLessonPricePence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageLessonPricePence: %w", err)
	}
	return oldValue.PackageLessonPricePence, nil
}

// AddPackageLessonPricePence adds i to the "package_lesson_price_pence" field.
func (m *OrderMutation) AddPackageLessonPricePence(i int64) {
	if m.addpackage_lesson_price_pence != nil {
		*m.addpackage_lesson_price_pence += i
	} else {
		m.addpackage_lesson_price_pence = &i
	}
}

// AddedPackageLessonPricePence returns the value that was added to the "package_lesson_price_pence" field in this mutation.
func (m *OrderMutation) AddedPackageLessonPricePence() (r int64, exists bool) {
	v := m.addpackage_lesson_price_pence
	if v == nil {
		return
	}
	return *v, true
}

// ResetPackageLessonPricePence resets all changes to the "package_lesson_price_pence" field.
func (m *OrderMutation) ResetPackageLessonPricePence() {
	m.package_lesson_price_pence = nil
	m.addpackage_lesson_price_pence = nil
}

// SetPackageLessonCount sets the "package_lesson_count" field.
func (m *OrderMutation) SetPackageLessonCount(i int) {
	m.package_lesson_count = &i
	m.addpackage_lesson_count = nil
}

// PackageLessonCount returns the value of the "package_lesson_count" field in the mutation.
func (m *OrderMutation) PackageLessonCount() (r int, exists bool) {
	v := m.package_lesson_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageLessonCount returns the old "package_lesson_count" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldPackageLessonCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageLessonCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageLessonCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageLessonCount: %w", err)
	}
	return oldValue.PackageLessonCount, nil
}

// AddPackageLessonCount adds i to the "package_lesson_count" field.
func (m *OrderMutation) AddPackageLessonCount(i int) {
	if m.addpackage_lesson_count != nil {
		*m.addpackage_lesson_count += i
	} else {
		m.addpackage_lesson_count = &i
	}
}

// AddedPackageLessonCount returns the value that was added to the "package_lesson_count" field in this mutation.
func (m *OrderMutation) AddedPackageLessonCount() (r int, exists bool) {
	v := m.addpackage_lesson_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPackageLessonCount resets all changes to the "package_lesson_count" field.
func (m *OrderMutation) ResetPackageLessonCount() {
	m.package_lesson_count = nil
	m.addpackage_lesson_count = nil
}

// SetPaymentMode sets the "payment_mode" field.
func (m *OrderMutation) SetPaymentMode(s string) {
	m.payment_mode = &s
}

// PaymentMode returns the value of the "payment_mode" field in the mutation.
func (m *OrderMutation) PaymentMode() (r string, exists bool) {
	v := m.payment_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMode returns the old "payment_mode" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldPaymentMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMode: %w", err)
	}
	return oldValue.PaymentMode, nil
}

// ResetPaymentMode resets all changes to the "payment_mode" field.
func (m *OrderMutation) ResetPaymentMode() {
	m.payment_mode = nil
}

// SetStatus sets the "status" field.
func (m *OrderMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *OrderMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *OrderMutation) ResetStatus() {
	m.status = nil
}

// SetCustomerRef sets the "customer_ref" field.
func (m *OrderMutation) SetCustomerRef(s string) {
	m.customer_ref = &s
}

// CustomerRef returns the value of the "customer_ref" field in the mutation.
func (m *OrderMutation) CustomerRef() (r string, exists bool) {
	v := m.customer_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerRef returns the old "customer_ref" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCustomerRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerRef: %w", err)
	}
	return oldValue.CustomerRef, nil
}

// ResetCustomerRef resets all changes to the "customer_ref" field.
func (m *OrderMutation) ResetCustomerRef() {
	m.customer_ref = nil
}

// SetCheckoutSessionRef sets the "checkout_session_ref" field.
func (m *OrderMutation) SetCheckoutSessionRef(s string) {
	m.checkout_session_ref = &s
}

// CheckoutSessionRef returns the value of the "checkout_session_ref" field in the mutation.
func (m *OrderMutation) CheckoutSessionRef() (r string, exists bool) {
	v := m.checkout_session_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckoutSessionRef returns the old "checkout_session_ref" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCheckoutSessionRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckoutSessionRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckoutSessionRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckoutSessionRef: %w", err)
	}
	return oldValue.CheckoutSessionRef, nil
}

// ResetCheckoutSessionRef resets all changes to the "checkout_session_ref" field.
func (m *OrderMutation) ResetCheckoutSessionRef() {
	m.checkout_session_ref = nil
}

// SetPaymentRef sets the "payment_ref" field.
func (m *OrderMutation) SetPaymentRef(s string) {
	m.payment_ref = &s
}

// PaymentRef returns the value of the "payment_ref" field in the mutation.
func (m *OrderMutation) PaymentRef() (r string, exists bool) {
	v := m.payment_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentRef returns the old "payment_ref" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldPaymentRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentRef: %w", err)
	}
	return oldValue.PaymentRef, nil
}

// ResetPaymentRef resets all changes to the "payment_ref" field.
func (m *OrderMutation) ResetPaymentRef() {
	m.payment_ref = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OrderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by ids.
func (m *OrderMutation) AddLessonIDs(ids ...uuid.UUID) {
	if m.lessons == nil {
		m.lessons = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.lessons[ids[i]] = struct{}{}
	}
}

// ClearLessons clears the "lessons" edge to the Lesson entity.
func (m *OrderMutation) ClearLessons() {
	m.clearedlessons = true
}

// LessonsCleared reports if the "lessons" edge to the Lesson entity was cleared.
func (m *OrderMutation) LessonsCleared() bool {
	return m.clearedlessons
}

// RemoveLessonIDs removes the "lessons" edge to the Lesson entity by IDs.
func (m *OrderMutation) RemoveLessonIDs(ids ...uuid.UUID) {
	if m.removedlessons == nil {
		m.removedlessons = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.lessons, ids[i])
		m.removedlessons[ids[i]] = struct{}{}
	}
}

// RemovedLessons returns the removed IDs of the "lessons" edge to the Lesson entity.
func (m *OrderMutation) RemovedLessonsIDs() (ids []uuid.UUID) {
	for id := range m.removedlessons {
		ids = append(ids, id)
	}
	return
}

// LessonsIDs returns the "lessons" edge IDs in the mutation.
func (m *OrderMutation) LessonsIDs() (ids []uuid.UUID) {
	for id := range m.lessons {
		ids = append(ids, id)
	}
	return
}

// ResetLessons resets all changes to the "lessons" edge.
func (m *OrderMutation) ResetLessons() {
	m.lessons = nil
	m.clearedlessons = false
	m.removedlessons = nil
}

// Where appends a list predicates to the OrderMutation builder.
func (m *OrderMutation) Where(ps ...predicate.Order) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Order, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Order).
func (m *OrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.student_id != nil {
		fields = append(fields, order.FieldStudentID)
	}
	if m.instructor_id != nil {
		fields = append(fields, order.FieldInstructorID)
	}
	if m.package_name != nil {
		fields = append(fields, order.FieldPackageName)
	}
	if m.package_total_price_pence != nil {
		fields = append(fields, order.FieldPackageTotalPricePence)
	}
	if m.package_lesson_price_pence != nil {
		fields = append(fields, order.FieldPackageLessonPricePence)
	}
	if m.package_lesson_count != nil {
		fields = append(fields, order.FieldPackageLessonCount)
	}
	if m.payment_mode != nil {
		fields = append(fields, order.FieldPaymentMode)
	}
	if m.status != nil {
		fields = append(fields, order.FieldStatus)
	}
	if m.customer_ref != nil {
		fields = append(fields, order.FieldCustomerRef)
	}
	if m.checkout_session_ref != nil {
		fields = append(fields, order.FieldCheckoutSessionRef)
	}
	if m.payment_ref != nil {
		fields = append(fields, order.FieldPaymentRef)
	}
	if m.created_at != nil {
		fields = append(fields, order.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, order.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case order.FieldStudentID:
		return m.StudentID()
	case order.FieldInstructorID:
		return m.InstructorID()
	case order.FieldPackageName:
		return m.PackageName()
	case order.FieldPackageTotalPricePence:
		return m.PackageTotalPricePence()
	case order.FieldPackageLessonPricePence:
		return m.PackageLessonPricePence()
	case order.FieldPackageLessonCount:
		return m.PackageLessonCount()
	case order.FieldPaymentMode:
		return m.PaymentMode()
	case order.FieldStatus:
		return m.Status()
	case order.FieldCustomerRef:
		return m.CustomerRef()
	case order.FieldCheckoutSessionRef:
		return m.CheckoutSessionRef()
	case order.FieldPaymentRef:
		return m.PaymentRef()
	case order.FieldCreatedAt:
		return m.CreatedAt()
	case order.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case order.FieldStudentID:
		return m.OldStudentID(ctx)
	case order.FieldInstructorID:
		return m.OldInstructorID(ctx)
	case order.FieldPackageName:
		return m.OldPackageName(ctx)
	case order.FieldPackageTotalPricePence:
		return m.OldPackageTotalPricePence(ctx)
	case order.FieldPackageLessonPricePence:
		return m.OldPackageLessonPricePence(ctx)
	case order.FieldPackageLessonCount:
		return m.OldPackageLessonCount(ctx)
	case order.FieldPaymentMode:
		return m.OldPaymentMode(ctx)
	case order.FieldStatus:
		return m.OldStatus(ctx)
	case order.FieldCustomerRef:
		return m.OldCustomerRef(ctx)
	case order.FieldCheckoutSessionRef:
		return m.OldCheckoutSessionRef(ctx)
	case order.FieldPaymentRef:
		return m.OldPaymentRef(ctx)
	case order.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case order.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Order field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case order.FieldStudentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case order.FieldInstructorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructorID(v)
		return nil
	case order.FieldPackageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageName(v)
		return nil
	case order.FieldPackageTotalPricePence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageTotalPricePence(v)
		return nil
	case order.FieldPackageLessonPricePence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageLessonPricePence(v)
		return nil
	case order.FieldPackageLessonCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageLessonCount(v)
		return nil
	case order.FieldPaymentMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMode(v)
		return nil
	case order.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case order.FieldCustomerRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerRef(v)
		return nil
	case order.FieldCheckoutSessionRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckoutSessionRef(v)
		return nil
	case order.FieldPaymentRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentRef(v)
		return nil
	case order.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case order.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderMutation) AddedFields() []string {
	var fields []string
	if m.addpackage_total_price_pence != nil {
		fields = append(fields, order.FieldPackageTotalPricePence)
	}
	if m.addpackage_lesson_price_pence != nil {
		fields = append(fields, order.FieldPackageLessonPricePence)
	}
	if m.addpackage_lesson_count != nil {
		fields = append(fields, order.FieldPackageLessonCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case order.FieldPackageTotalPricePence:
		return m.AddedPackageTotalPricePence()
	case order.FieldPackageLessonPricePence:
		return m.AddedPackageLessonPricePence()
	case order.FieldPackageLessonCount:
		return m.AddedPackageLessonCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case order.FieldPackageTotalPricePence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPackageTotalPricePence(v)
		return nil
	case order.FieldPackageLessonPricePence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPackageLessonPricePence(v)
		return nil
	case order.FieldPackageLessonCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPackageLessonCount(v)
		return nil
	}
	return fmt.Errorf("unknown Order numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Order nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderMutation) ResetField(name string) error {
	switch name {
	case order.FieldStudentID:
		m.ResetStudentID()
		return nil
	case order.FieldInstructorID:
		m.ResetInstructorID()
		return nil
	case order.FieldPackageName:
		m.ResetPackageName()
		return nil
	case order.FieldPackageTotalPricePence:
		m.ResetPackageTotalPricePence()
		return nil
	case order.FieldPackageLessonPricePence:
		m.ResetPackageLessonPricePence()
		return nil
	case order.FieldPackageLessonCount:
		m.ResetPackageLessonCount()
		return nil
	case order.FieldPaymentMode:
		m.ResetPaymentMode()
		return nil
	case order.FieldStatus:
		m.ResetStatus()
		return nil
	case order.FieldCustomerRef:
		m.ResetCustomerRef()
		return nil
	case order.FieldCheckoutSessionRef:
		m.ResetCheckoutSessionRef()
		return nil
	case order.FieldPaymentRef:
		m.ResetPaymentRef()
		return nil
	case order.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case order.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.lessons != nil {
		edges = append(edges, order.EdgeLessons)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeLessons:
		ids := make([]ent.Value, 0, len(m.lessons))
		for id := range m.lessons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedlessons != nil {
		edges = append(edges, order.EdgeLessons)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeLessons:
		ids := make([]ent.Value, 0, len(m.removedlessons))
		for id := range m.removedlessons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlessons {
		edges = append(edges, order.EdgeLessons)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderMutation) EdgeCleared(name string) bool {
	switch name {
	case order.EdgeLessons:
		return m.clearedlessons
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Order unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderMutation) ResetEdge(name string) error {
	switch name {
	case order.EdgeLessons:
		m.ResetLessons()
		return nil
	}
	return fmt.Errorf("unknown Order edge %s", name)
}

// PayoutMutation represents an operation that mutates the Payout nodes in the graph.
type PayoutMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	instructor_id   *uuid.UUID
	amount_pence    *int64
	addamount_pence *int64
	status          *string
	transfer_ref    *string
	paid_at         *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	lesson          *uuid.UUID
	clearedlesson   bool
	done            bool
	oldValue        func(context.Context) (*Payout, error)
	predicates      []predicate.Payout
}

var _ ent.Mutation = (*PayoutMutation)(nil)

// payoutOption allows management of the mutation configuration using functional options.
type payoutOption func(*PayoutMutation)

// newPayoutMutation creates new mutation for the Payout entity.
func newPayoutMutation(c config, op Op, opts ...payoutOption) *PayoutMutation {
	m := &PayoutMutation{
		config:        c,
		op:            op,
		typ:           TypePayout,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPayoutID sets the ID field of the mutation.
func withPayoutID(id uuid.UUID) payoutOption {
	return func(m *PayoutMutation) {
		var (
			err   error
			once  sync.Once
			value *Payout
		)
		m.oldValue = func(ctx context.Context) (*Payout, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Payout.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPayout sets the old Payout of the mutation.
func withPayout(node *Payout) payoutOption {
	return func(m *PayoutMutation) {
		m.oldValue = func(context.Context) (*Payout, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PayoutMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PayoutMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Payout entities.
func (m *PayoutMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PayoutMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PayoutMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Payout.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLessonID sets the "lesson_id" field.
func (m *PayoutMutation) SetLessonID(u uuid.UUID) {
	m.lesson = &u
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *PayoutMutation) LessonID() (r uuid.UUID, exists bool) {
	v := m.lesson
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the Payout entity.
// If the Payout object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutMutation) OldLessonID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *PayoutMutation) ResetLessonID() {
	m.lesson = nil
}

// SetInstructorID sets the "instructor_id" field.
func (m *PayoutMutation) SetInstructorID(u uuid.UUID) {
	m.instructor_id = &u
}

// InstructorID returns the value of the "instructor_id" field in the mutation.
func (m *PayoutMutation) InstructorID() (r uuid.UUID, exists bool) {
	v := m.instructor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructorID returns the old "instructor_id" field's value of the Payout entity.
// If the Payout object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutMutation) OldInstructorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructorID: %w", err)
	}
	return oldValue.InstructorID, nil
}

// ResetInstructorID resets all changes to the "instructor_id" field.
func (m *PayoutMutation) ResetInstructorID() {
	m.instructor_id = nil
}

// SetAmountPence sets the "amount_pence" field.
func (m *PayoutMutation) SetAmountPence(i int64) {
	m.amount_pence = &i
	m.addamount_pence = nil
}

// AmountPence returns the value of the "amount_pence" field in the mutation.
func (m *PayoutMutation) AmountPence() (r int64, exists bool) {
	v := m.amount_pence
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountPence returns the old "amount_pence" field's value of the Payout entity.
// If the Payout object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutMutation) OldAmountPence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountPence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountPence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountPence: %w", err)
	}
	return oldValue.AmountPence, nil
}

// AddAmountPence adds i to the "amount_pence" field.
func (m *PayoutMutation) AddAmountPence(i int64) {
	if m.addamount_pence != nil {
		*m.addamount_pence += i
	} else {
		m.addamount_pence = &i
	}
}

// AddedAmountPence returns the value that was added to the "amount_pence" field in this mutation.
func (m *PayoutMutation) AddedAmountPence() (r int64, exists bool) {
	v := m.addamount_pence
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountPence resets all changes to the "amount_pence" field.
func (m *PayoutMutation) ResetAmountPence() {
	m.amount_pence = nil
	m.addamount_pence = nil
}

// SetStatus sets the "status" field.
func (m *PayoutMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PayoutMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Payout entity.
// If the Payout object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *PayoutMutation) ResetStatus() {
	m.status = nil
}

// SetTransferRef sets the "transfer_ref" field.
func (m *PayoutMutation) SetTransferRef(s string) {
	m.transfer_ref = &s
}

// TransferRef returns the value of the "transfer_ref" field in the mutation.
func (m *PayoutMutation) TransferRef() (r string, exists bool) {
	v := m.transfer_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldTransferRef returns the old "transfer_ref" field's value of the Payout entity.
// If the Payout object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutMutation) OldTransferRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransferRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransferRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransferRef: %w", err)
	}
	return oldValue.TransferRef, nil
}

// ResetTransferRef resets all changes to the "transfer_ref" field.
func (m *PayoutMutation) ResetTransferRef() {
	m.transfer_ref = nil
}

// SetPaidAt sets the "paid_at" field.
func (m *PayoutMutation) SetPaidAt(t time.Time) {
	m.paid_at = &t
}

// PaidAt returns the value of the "paid_at" field in the mutation.
func (m *PayoutMutation) PaidAt() (r time.Time, exists bool) {
	v := m.paid_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidAt returns the old "paid_at" field's value of the Payout entity.
// If the Payout object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutMutation) OldPaidAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidAt: %w", err)
	}
	return oldValue.PaidAt, nil
}

// ClearPaidAt clears the value of the "paid_at" field.
func (m *PayoutMutation) ClearPaidAt() {
	m.paid_at = nil
	m.clearedFields[payout.FieldPaidAt] = struct{}{}
}

// PaidAtCleared returns if the "paid_at" field was cleared in this mutation.
func (m *PayoutMutation) PaidAtCleared() bool {
	_, ok := m.clearedFields[payout.FieldPaidAt]
	return ok
}

// ResetPaidAt resets all changes to the "paid_at" field.
func (m *PayoutMutation) ResetPaidAt() {
	m.paid_at = nil
	delete(m.clearedFields, payout.FieldPaidAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *PayoutMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PayoutMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Payout entity.
// If the Payout object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PayoutMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (m *PayoutMutation) ClearLesson() {
	m.clearedlesson = true
	m.clearedFields[payout.FieldLessonID] = struct{}{}
}

// LessonCleared reports if the "lesson" edge to the Lesson entity was cleared.
func (m *PayoutMutation) LessonCleared() bool {
	return m.clearedlesson
}

// LessonIDs returns the "lesson" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LessonID instead. It exists only for internal usage by the builders.
func (m *PayoutMutation) LessonIDs() (ids []uuid.UUID) {
	if id := m.lesson; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLesson resets all changes to the "lesson" edge.
func (m *PayoutMutation) ResetLesson() {
	m.lesson = nil
	m.clearedlesson = false
}

// Where appends a list predicates to the PayoutMutation builder.
func (m *PayoutMutation) Where(ps ...predicate.Payout) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PayoutMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PayoutMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Payout, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PayoutMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PayoutMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Payout).
func (m *PayoutMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PayoutMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.lesson != nil {
		fields = append(fields, payout.FieldLessonID)
	}
	if m.instructor_id != nil {
		fields = append(fields, payout.FieldInstructorID)
	}
	if m.amount_pence != nil {
		fields = append(fields, payout.FieldAmountPence)
	}
	if m.status != nil {
		fields = append(fields, payout.FieldStatus)
	}
	if m.transfer_ref != nil {
		fields = append(fields, payout.FieldTransferRef)
	}
	if m.paid_at != nil {
		fields = append(fields, payout.FieldPaidAt)
	}
	if m.created_at != nil {
		fields = append(fields, payout.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PayoutMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case payout.FieldLessonID:
		return m.LessonID()
	case payout.FieldInstructorID:
		return m.InstructorID()
	case payout.FieldAmountPence:
		return m.AmountPence()
	case payout.FieldStatus:
		return m.Status()
	case payout.FieldTransferRef:
		return m.TransferRef()
	case payout.FieldPaidAt:
		return m.PaidAt()
	case payout.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PayoutMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case payout.FieldLessonID:
		return m.OldLessonID(ctx)
	case payout.FieldInstructorID:
		return m.OldInstructorID(ctx)
	case payout.FieldAmountPence:
		return m.OldAmountPence(ctx)
	case payout.FieldStatus:
		return m.OldStatus(ctx)
	case payout.FieldTransferRef:
		return m.OldTransferRef(ctx)
	case payout.FieldPaidAt:
		return m.OldPaidAt(ctx)
	case payout.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Payout field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PayoutMutation) SetField(name string, value ent.Value) error {
	switch name {
	case payout.FieldLessonID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case payout.FieldInstructorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructorID(v)
		return nil
	case payout.FieldAmountPence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountPence(v)
		return nil
	case payout.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case payout.FieldTransferRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransferRef(v)
		return nil
	case payout.FieldPaidAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidAt(v)
		return nil
	case payout.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Payout field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PayoutMutation) AddedFields() []string {
	var fields []string
	if m.addamount_pence != nil {
		fields = append(fields, payout.FieldAmountPence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PayoutMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case payout.FieldAmountPence:
		return m.AddedAmountPence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PayoutMutation) AddField(name string, value ent.Value) error {
	switch name {
	case payout.FieldAmountPence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountPence(v)
		return nil
	}
	return fmt.Errorf("unknown Payout numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PayoutMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(payout.FieldPaidAt) {
		fields = append(fields, payout.FieldPaidAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PayoutMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PayoutMutation) ClearField(name string) error {
	switch name {
	case payout.FieldPaidAt:
		m.ClearPaidAt()
		return nil
	}
	return fmt.Errorf("unknown Payout nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PayoutMutation) ResetField(name string) error {
	switch name {
	case payout.FieldLessonID:
		m.ResetLessonID()
		return nil
	case payout.FieldInstructorID:
		m.ResetInstructorID()
		return nil
	case payout.FieldAmountPence:
		m.ResetAmountPence()
		return nil
	case payout.FieldStatus:
		m.ResetStatus()
		return nil
	case payout.FieldTransferRef:
		m.ResetTransferRef()
		return nil
	case payout.FieldPaidAt:
		m.ResetPaidAt()
		return nil
	case payout.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Payout field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PayoutMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.lesson != nil {
		edges = append(edges, payout.EdgeLesson)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PayoutMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case payout.EdgeLesson:
		if id := m.lesson; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PayoutMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PayoutMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PayoutMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlesson {
		edges = append(edges, payout.EdgeLesson)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PayoutMutation) EdgeCleared(name string) bool {
	switch name {
	case payout.EdgeLesson:
		return m.clearedlesson
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PayoutMutation) ClearEdge(name string) error {
	switch name {
	case payout.EdgeLesson:
		m.ClearLesson()
		return nil
	}
	return fmt.Errorf("unknown Payout unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PayoutMutation) ResetEdge(name string) error {
	switch name {
	case payout.EdgeLesson:
		m.ResetLesson()
		return nil
	}
	return fmt.Errorf("unknown Payout edge %s", name)
}

// ProcessedEventMutation represents an operation that mutates the ProcessedEvent nodes in the graph.
type ProcessedEventMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	event_id      *string
	event_type    *string
	payload       *[]byte
	received_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProcessedEvent, error)
	predicates    []predicate.ProcessedEvent
}

var _ ent.Mutation = (*ProcessedEventMutation)(nil)

// processedeventOption allows management of the mutation configuration using functional options.
type processedeventOption func(*ProcessedEventMutation)

// newProcessedEventMutation creates new mutation for the ProcessedEvent entity.
func newProcessedEventMutation(c config, op Op, opts ...processedeventOption) *ProcessedEventMutation {
	m := &ProcessedEventMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessedEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessedEventID sets the ID field of the mutation.
func withProcessedEventID(id uuid.UUID) processedeventOption {
	return func(m *ProcessedEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessedEvent
		)
		m.oldValue = func(ctx context.Context) (*ProcessedEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessedEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessedEvent sets the old ProcessedEvent of the mutation.
func withProcessedEvent(node *ProcessedEvent) processedeventOption {
	return func(m *ProcessedEventMutation) {
		m.oldValue = func(context.Context) (*ProcessedEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessedEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessedEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessedEvent entities.
func (m *ProcessedEventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessedEventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessedEventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessedEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *ProcessedEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *ProcessedEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the ProcessedEvent entity.
// If the ProcessedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *ProcessedEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetEventType sets the "event_type" field.
func (m *ProcessedEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *ProcessedEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the ProcessedEvent entity.
// If the ProcessedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *ProcessedEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *ProcessedEventMutation) SetPayload(b []byte) {
	m.payload = &b
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ProcessedEventMutation) Payload() (r []byte, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ProcessedEvent entity.
// If the ProcessedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEventMutation) OldPayload(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *ProcessedEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[processedevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *ProcessedEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[processedevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *ProcessedEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, processedevent.FieldPayload)
}

// SetReceivedAt sets the "received_at" field.
func (m *ProcessedEventMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *ProcessedEventMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the ProcessedEvent entity.
// If the ProcessedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEventMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *ProcessedEventMutation) ResetReceivedAt() {
	m.received_at = nil
}

// Where appends a list predicates to the ProcessedEventMutation builder.
func (m *ProcessedEventMutation) Where(ps ...predicate.ProcessedEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessedEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessedEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessedEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessedEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessedEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessedEvent).
func (m *ProcessedEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessedEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.event_id != nil {
		fields = append(fields, processedevent.FieldEventID)
	}
	if m.event_type != nil {
		fields = append(fields, processedevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, processedevent.FieldPayload)
	}
	if m.received_at != nil {
		fields = append(fields, processedevent.FieldReceivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessedEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processedevent.FieldEventID:
		return m.EventID()
	case processedevent.FieldEventType:
		return m.EventType()
	case processedevent.FieldPayload:
		return m.Payload()
	case processedevent.FieldReceivedAt:
		return m.ReceivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessedEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processedevent.FieldEventID:
		return m.OldEventID(ctx)
	case processedevent.FieldEventType:
		return m.OldEventType(ctx)
	case processedevent.FieldPayload:
		return m.OldPayload(ctx)
	case processedevent.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessedEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processedevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case processedevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case processedevent.FieldPayload:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case processedevent.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessedEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessedEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessedEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProcessedEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessedEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processedevent.FieldPayload) {
		fields = append(fields, processedevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessedEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessedEventMutation) ClearField(name string) error {
	switch name {
	case processedevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown ProcessedEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessedEventMutation) ResetField(name string) error {
	switch name {
	case processedevent.FieldEventID:
		m.ResetEventID()
		return nil
	case processedevent.FieldEventType:
		m.ResetEventType()
		return nil
	case processedevent.FieldPayload:
		m.ResetPayload()
		return nil
	case processedevent.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessedEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessedEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessedEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessedEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessedEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessedEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessedEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessedEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessedEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessedEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessedEvent edge %s", name)
}

// TimeSlotMutation represents an operation that mutates the TimeSlot nodes in the graph.
type TimeSlotMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	instructor_id  *uuid.UUID
	date           *time.Time
	start_time     *string
	end_time       *string
	is_available   *bool
	status         *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	day            *uuid.UUID
	clearedday     bool
	lessons        map[uuid.UUID]struct{}
	removedlessons map[uuid.UUID]struct{}
	clearedlessons bool
	done           bool
	oldValue       func(context.Context) (*TimeSlot, error)
	predicates     []predicate.TimeSlot
}

var _ ent.Mutation = (*TimeSlotMutation)(nil)

// timeslotOption allows management of the mutation configuration using functional options.
type timeslotOption func(*TimeSlotMutation)

// newTimeSlotMutation creates new mutation for the TimeSlot entity.
func newTimeSlotMutation(c config, op Op, opts ...timeslotOption) *TimeSlotMutation {
	m := &TimeSlotMutation{
		config:        c,
		op:            op,
		typ:           TypeTimeSlot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTimeSlotID sets the ID field of the mutation.
func withTimeSlotID(id uuid.UUID) timeslotOption {
	return func(m *TimeSlotMutation) {
		var (
			err   error
			once  sync.Once
			value *TimeSlot
		)
		m.oldValue = func(ctx context.Context) (*TimeSlot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TimeSlot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTimeSlot sets the old TimeSlot of the mutation.
func withTimeSlot(node *TimeSlot) timeslotOption {
	return func(m *TimeSlotMutation) {
		m.oldValue = func(context.Context) (*TimeSlot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TimeSlotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TimeSlotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TimeSlot entities.
func (m *TimeSlotMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TimeSlotMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TimeSlotMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TimeSlot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDayID sets the "day_id" field.
func (m *TimeSlotMutation) SetDayID(u uuid.UUID) {
	m.day = &u
}

// DayID returns the value of the "day_id" field in the mutation.
func (m *TimeSlotMutation) DayID() (r uuid.UUID, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDayID returns the old "day_id" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldDayID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayID: %w", err)
	}
	return oldValue.DayID, nil
}

// ResetDayID resets all changes to the "day_id" field.
func (m *TimeSlotMutation) ResetDayID() {
	m.day = nil
}

// SetInstructorID sets the "instructor_id" field.
func (m *TimeSlotMutation) SetInstructorID(u uuid.UUID) {
	m.instructor_id = &u
}

// InstructorID returns the value of the "instructor_id" field in the mutation.
func (m *TimeSlotMutation) InstructorID() (r uuid.UUID, exists bool) {
	v := m.instructor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructorID returns the old "instructor_id" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldInstructorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructorID: %w", err)
	}
	return oldValue.InstructorID, nil
}

// ResetInstructorID resets all changes to the "instructor_id" field.
func (m *TimeSlotMutation) ResetInstructorID() {
	m.instructor_id = nil
}

// SetDate sets the "date" field.
func (m *TimeSlotMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *TimeSlotMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *TimeSlotMutation) ResetDate() {
	m.date = nil
}

// SetStartTime sets the "start_time" field.
func (m *TimeSlotMutation) SetStartTime(s string) {
	m.start_time = &s
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *TimeSlotMutation) StartTime() (r string, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldStartTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *TimeSlotMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *TimeSlotMutation) SetEndTime(s string) {
	m.end_time = &s
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *TimeSlotMutation) EndTime() (r string, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldEndTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *TimeSlotMutation) ResetEndTime() {
	m.end_time = nil
}

// SetIsAvailable sets the "is_available" field.
func (m *TimeSlotMutation) SetIsAvailable(b bool) {
	m.is_available = &b
}

// IsAvailable returns the value of the "is_available" field in the mutation.
func (m *TimeSlotMutation) IsAvailable() (r bool, exists bool) {
	v := m.is_available
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAvailable returns the old "is_available" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldIsAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAvailable: %w", err)
	}
	return oldValue.IsAvailable, nil
}

// ResetIsAvailable resets all changes to the "is_available" field.
func (m *TimeSlotMutation) ResetIsAvailable() {
	m.is_available = nil
}

// SetStatus sets the "status" field.
func (m *TimeSlotMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TimeSlotMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *TimeSlotMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TimeSlotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TimeSlotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TimeSlotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TimeSlotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TimeSlotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TimeSlotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDay clears the "day" edge to the CalendarDay entity.
func (m *TimeSlotMutation) ClearDay() {
	m.clearedday = true
	m.clearedFields[timeslot.FieldDayID] = struct{}{}
}

// DayCleared reports if the "day" edge to the CalendarDay entity was cleared.
func (m *TimeSlotMutation) DayCleared() bool {
	return m.clearedday
}

// DayIDs returns the "day" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DayID instead. It exists only for internal usage by the builders.
func (m *TimeSlotMutation) DayIDs() (ids []uuid.UUID) {
	if id := m.day; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDay resets all changes to the "day" edge.
func (m *TimeSlotMutation) ResetDay() {
	m.day = nil
	m.clearedday = false
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by ids.
func (m *TimeSlotMutation) AddLessonIDs(ids ...uuid.UUID) {
	if m.lessons == nil {
		m.lessons = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.lessons[ids[i]] = struct{}{}
	}
}

// ClearLessons clears the "lessons" edge to the Lesson entity.
func (m *TimeSlotMutation) ClearLessons() {
	m.clearedlessons = true
}

// LessonsCleared reports if the "lessons" edge to the Lesson entity was cleared.
func (m *TimeSlotMutation) LessonsCleared() bool {
	return m.clearedlessons
}

// RemoveLessonIDs removes the "lessons" edge to the Lesson entity by IDs.
func (m *TimeSlotMutation) RemoveLessonIDs(ids ...uuid.UUID) {
	if m.removedlessons == nil {
		m.removedlessons = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.lessons, ids[i])
		m.removedlessons[ids[i]] = struct{}{}
	}
}

// RemovedLessons returns the removed IDs of the "lessons" edge to the Lesson entity.
func (m *TimeSlotMutation) RemovedLessonsIDs() (ids []uuid.UUID) {
	for id := range m.removedlessons {
		ids = append(ids, id)
	}
	return
}

// LessonsIDs returns the "lessons" edge IDs in the mutation.
func (m *TimeSlotMutation) LessonsIDs() (ids []uuid.UUID) {
	for id := range m.lessons {
		ids = append(ids, id)
	}
	return
}

// ResetLessons resets all changes to the "lessons" edge.
func (m *TimeSlotMutation) ResetLessons() {
	m.lessons = nil
	m.clearedlessons = false
	m.removedlessons = nil
}

// Where appends a list predicates to the TimeSlotMutation builder.
func (m *TimeSlotMutation) Where(ps ...predicate.TimeSlot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TimeSlotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TimeSlotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TimeSlot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TimeSlotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TimeSlotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TimeSlot).
func (m *TimeSlotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TimeSlotMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.day != nil {
		fields = append(fields, timeslot.FieldDayID)
	}
	if m.instructor_id != nil {
		fields = append(fields, timeslot.FieldInstructorID)
	}
	if m.date != nil {
		fields = append(fields, timeslot.FieldDate)
	}
	if m.start_time != nil {
		fields = append(fields, timeslot.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, timeslot.FieldEndTime)
	}
	if m.is_available != nil {
		fields = append(fields, timeslot.FieldIsAvailable)
	}
	if m.status != nil {
		fields = append(fields, timeslot.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, timeslot.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, timeslot.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TimeSlotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case timeslot.FieldDayID:
		return m.DayID()
	case timeslot.FieldInstructorID:
		return m.InstructorID()
	case timeslot.FieldDate:
		return m.Date()
	case timeslot.FieldStartTime:
		return m.StartTime()
	case timeslot.FieldEndTime:
		return m.EndTime()
	case timeslot.FieldIsAvailable:
		return m.IsAvailable()
	case timeslot.FieldStatus:
		return m.Status()
	case timeslot.FieldCreatedAt:
		return m.CreatedAt()
	case timeslot.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TimeSlotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case timeslot.FieldDayID:
		return m.OldDayID(ctx)
	case timeslot.FieldInstructorID:
		return m.OldInstructorID(ctx)
	case timeslot.FieldDate:
		return m.OldDate(ctx)
	case timeslot.FieldStartTime:
		return m.OldStartTime(ctx)
	case timeslot.FieldEndTime:
		return m.OldEndTime(ctx)
	case timeslot.FieldIsAvailable:
		return m.OldIsAvailable(ctx)
	case timeslot.FieldStatus:
		return m.OldStatus(ctx)
	case timeslot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case timeslot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TimeSlot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimeSlotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case timeslot.FieldDayID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayID(v)
		return nil
	case timeslot.FieldInstructorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructorID(v)
		return nil
	case timeslot.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case timeslot.FieldStartTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case timeslot.FieldEndTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case timeslot.FieldIsAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAvailable(v)
		return nil
	case timeslot.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case timeslot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case timeslot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TimeSlot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TimeSlotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TimeSlotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimeSlotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TimeSlot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TimeSlotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TimeSlotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TimeSlotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TimeSlot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TimeSlotMutation) ResetField(name string) error {
	switch name {
	case timeslot.FieldDayID:
		m.ResetDayID()
		return nil
	case timeslot.FieldInstructorID:
		m.ResetInstructorID()
		return nil
	case timeslot.FieldDate:
		m.ResetDate()
		return nil
	case timeslot.FieldStartTime:
		m.ResetStartTime()
		return nil
	case timeslot.FieldEndTime:
		m.ResetEndTime()
		return nil
	case timeslot.FieldIsAvailable:
		m.ResetIsAvailable()
		return nil
	case timeslot.FieldStatus:
		m.ResetStatus()
		return nil
	case timeslot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case timeslot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TimeSlot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TimeSlotMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.day != nil {
		edges = append(edges, timeslot.EdgeDay)
	}
	if m.lessons != nil {
		edges = append(edges, timeslot.EdgeLessons)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TimeSlotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case timeslot.EdgeDay:
		if id := m.day; id != nil {
			return []ent.Value{*id}
		}
	case timeslot.EdgeLessons:
		ids := make([]ent.Value, 0, len(m.lessons))
		for id := range m.lessons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TimeSlotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlessons != nil {
		edges = append(edges, timeslot.EdgeLessons)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TimeSlotMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case timeslot.EdgeLessons:
		ids := make([]ent.Value, 0, len(m.removedlessons))
		for id := range m.removedlessons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TimeSlotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedday {
		edges = append(edges, timeslot.EdgeDay)
	}
	if m.clearedlessons {
		edges = append(edges, timeslot.EdgeLessons)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TimeSlotMutation) EdgeCleared(name string) bool {
	switch name {
	case timeslot.EdgeDay:
		return m.clearedday
	case timeslot.EdgeLessons:
		return m.clearedlessons
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TimeSlotMutation) ClearEdge(name string) error {
	switch name {
	case timeslot.EdgeDay:
		m.ClearDay()
		return nil
	}
	return fmt.Errorf("unknown TimeSlot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TimeSlotMutation) ResetEdge(name string) error {
	switch name {
	case timeslot.EdgeDay:
		m.ResetDay()
		return nil
	case timeslot.EdgeLessons:
		m.ResetLessons()
		return nil
	}
	return fmt.Errorf("unknown TimeSlot edge %s", name)
}
