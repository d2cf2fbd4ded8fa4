// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/activitylog"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/calendarday"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/instructor"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lessonpayment"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/order"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/payout"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/processedevent"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActivityLog is the client for interacting with the ActivityLog builders.
	ActivityLog *ActivityLogClient
	// CalendarDay is the client for interacting with the CalendarDay builders.
	CalendarDay *CalendarDayClient
	// Instructor is the client for interacting with the Instructor builders.
	Instructor *InstructorClient
	// Lesson is the client for interacting with the Lesson builders.
	Lesson *LessonClient
	// LessonPayment is the client for interacting with the LessonPayment builders.
	LessonPayment *LessonPaymentClient
	// Order is the client for interacting with the Order builders.
	Order *OrderClient
	// Payout is the client for interacting with the Payout builders.
	Payout *PayoutClient
	// ProcessedEvent is the client for interacting with the ProcessedEvent builders.
	ProcessedEvent *ProcessedEventClient
	// TimeSlot is the client for interacting with the TimeSlot builders.
	TimeSlot *TimeSlotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActivityLog = NewActivityLogClient(c.config)
	c.CalendarDay = NewCalendarDayClient(c.config)
	c.Instructor = NewInstructorClient(c.config)
	c.Lesson = NewLessonClient(c.config)
	c.LessonPayment = NewLessonPaymentClient(c.config)
	c.Order = NewOrderClient(c.config)
	c.Payout = NewPayoutClient(c.config)
	c.ProcessedEvent = NewProcessedEventClient(c.config)
	c.TimeSlot = NewTimeSlotClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("generated: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("generated: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		ActivityLog:    NewActivityLogClient(cfg),
		CalendarDay:    NewCalendarDayClient(cfg),
		Instructor:     NewInstructorClient(cfg),
		Lesson:         NewLessonClient(cfg),
		LessonPayment:  NewLessonPaymentClient(cfg),
		Order:          NewOrderClient(cfg),
		Payout:         NewPayoutClient(cfg),
		ProcessedEvent: NewProcessedEventClient(cfg),
		TimeSlot:       NewTimeSlotClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		ActivityLog:    NewActivityLogClient(cfg),
		CalendarDay:    NewCalendarDayClient(cfg),
		Instructor:     NewInstructorClient(cfg),
		Lesson:         NewLessonClient(cfg),
		LessonPayment:  NewLessonPaymentClient(cfg),
		Order:          NewOrderClient(cfg),
		Payout:         NewPayoutClient(cfg),
		ProcessedEvent: NewProcessedEventClient(cfg),
		TimeSlot:       NewTimeSlotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActivityLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ActivityLog, c.CalendarDay, c.Instructor, c.Lesson, c.LessonPayment, c.Order,
		c.Payout, c.ProcessedEvent, c.TimeSlot,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActivityLog, c.CalendarDay, c.Instructor, c.Lesson, c.LessonPayment, c.Order,
		c.Payout, c.ProcessedEvent, c.TimeSlot,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActivityLogMutation:
		return c.ActivityLog.mutate(ctx, m)
	case *CalendarDayMutation:
		return c.CalendarDay.mutate(ctx, m)
	case *InstructorMutation:
		return c.Instructor.mutate(ctx, m)
	case *LessonMutation:
		return c.Lesson.mutate(ctx, m)
	case *LessonPaymentMutation:
		return c.LessonPayment.mutate(ctx, m)
	case *OrderMutation:
		return c.Order.mutate(ctx, m)
	case *PayoutMutation:
		return c.Payout.mutate(ctx, m)
	case *ProcessedEventMutation:
		return c.ProcessedEvent.mutate(ctx, m)
	case *TimeSlotMutation:
		return c.TimeSlot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("generated: unknown mutation type %T", m)
	}
}

// ActivityLogClient is a client for the ActivityLog schema.
type ActivityLogClient struct {
	config
}

// NewActivityLogClient returns a client for the ActivityLog from the given config.
func NewActivityLogClient(c config) *ActivityLogClient {
	return &ActivityLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activitylog.Hooks(f(g(h())))`.
func (c *ActivityLogClient) Use(hooks ...Hook) {
	c.hooks.ActivityLog = append(c.hooks.ActivityLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activitylog.Intercept(f(g(h())))`.
func (c *ActivityLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivityLog = append(c.inters.ActivityLog, interceptors...)
}

// Create returns a builder for creating a ActivityLog entity.
func (c *ActivityLogClient) Create() *ActivityLogCreate {
	mutation := newActivityLogMutation(c.config, OpCreate)
	return &ActivityLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivityLog entities.
func (c *ActivityLogClient) CreateBulk(builders ...*ActivityLogCreate) *ActivityLogCreateBulk {
	return &ActivityLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityLogClient) MapCreateBulk(slice any, setFunc func(*ActivityLogCreate, int)) *ActivityLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityLogCreateBulk{err: fmt.Errorf("calling to ActivityLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivityLog.
func (c *ActivityLogClient) Update() *ActivityLogUpdate {
	mutation := newActivityLogMutation(c.config, OpUpdate)
	return &ActivityLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityLogClient) UpdateOne(al *ActivityLog) *ActivityLogUpdateOne {
	mutation := newActivityLogMutation(c.config, OpUpdateOne, withActivityLog(al))
	return &ActivityLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityLogClient) UpdateOneID(id uuid.UUID) *ActivityLogUpdateOne {
	mutation := newActivityLogMutation(c.config, OpUpdateOne, withActivityLogID(id))
	return &ActivityLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivityLog.
func (c *ActivityLogClient) Delete() *ActivityLogDelete {
	mutation := newActivityLogMutation(c.config, OpDelete)
	return &ActivityLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityLogClient) DeleteOne(al *ActivityLog) *ActivityLogDeleteOne {
	return c.DeleteOneID(al.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityLogClient) DeleteOneID(id uuid.UUID) *ActivityLogDeleteOne {
	builder := c.Delete().Where(activitylog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityLogDeleteOne{builder}
}

// Query returns a query builder for ActivityLog.
func (c *ActivityLogClient) Query() *ActivityLogQuery {
	return &ActivityLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivityLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivityLog entity by its id.
func (c *ActivityLogClient) Get(ctx context.Context, id uuid.UUID) (*ActivityLog, error) {
	return c.Query().Where(activitylog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityLogClient) GetX(ctx context.Context, id uuid.UUID) *ActivityLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActivityLogClient) Hooks() []Hook {
	return c.hooks.ActivityLog
}

// Interceptors returns the client interceptors.
func (c *ActivityLogClient) Interceptors() []Interceptor {
	return c.inters.ActivityLog
}

func (c *ActivityLogClient) mutate(ctx context.Context, m *ActivityLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown ActivityLog mutation op: %q", m.Op())
	}
}

// CalendarDayClient is a client for the CalendarDay schema.
type CalendarDayClient struct {
	config
}

// NewCalendarDayClient returns a client for the CalendarDay from the given config.
func NewCalendarDayClient(c config) *CalendarDayClient {
	return &CalendarDayClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calendarday.Hooks(f(g(h())))`.
func (c *CalendarDayClient) Use(hooks ...Hook) {
	c.hooks.CalendarDay = append(c.hooks.CalendarDay, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calendarday.Intercept(f(g(h())))`.
func (c *CalendarDayClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalendarDay = append(c.inters.CalendarDay, interceptors...)
}

// Create returns a builder for creating a CalendarDay entity.
func (c *CalendarDayClient) Create() *CalendarDayCreate {
	mutation := newCalendarDayMutation(c.config, OpCreate)
	return &CalendarDayCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalendarDay entities.
func (c *CalendarDayClient) CreateBulk(builders ...*CalendarDayCreate) *CalendarDayCreateBulk {
	return &CalendarDayCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalendarDayClient) MapCreateBulk(slice any, setFunc func(*CalendarDayCreate, int)) *CalendarDayCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalendarDayCreateBulk{err: fmt.Errorf("calling to CalendarDayClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalendarDayCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalendarDayCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalendarDay.
func (c *CalendarDayClient) Update() *CalendarDayUpdate {
	mutation := newCalendarDayMutation(c.config, OpUpdate)
	return &CalendarDayUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalendarDayClient) UpdateOne(cd *CalendarDay) *CalendarDayUpdateOne {
	mutation := newCalendarDayMutation(c.config, OpUpdateOne, withCalendarDay(cd))
	return &CalendarDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalendarDayClient) UpdateOneID(id uuid.UUID) *CalendarDayUpdateOne {
	mutation := newCalendarDayMutation(c.config, OpUpdateOne, withCalendarDayID(id))
	return &CalendarDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalendarDay.
func (c *CalendarDayClient) Delete() *CalendarDayDelete {
	mutation := newCalendarDayMutation(c.config, OpDelete)
	return &CalendarDayDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalendarDayClient) DeleteOne(cd *CalendarDay) *CalendarDayDeleteOne {
	return c.DeleteOneID(cd.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalendarDayClient) DeleteOneID(id uuid.UUID) *CalendarDayDeleteOne {
	builder := c.Delete().Where(calendarday.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalendarDayDeleteOne{builder}
}

// Query returns a query builder for CalendarDay.
func (c *CalendarDayClient) Query() *CalendarDayQuery {
	return &CalendarDayQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalendarDay},
		inters: c.Interceptors(),
	}
}

// Get returns a CalendarDay entity by its id.
func (c *CalendarDayClient) Get(ctx context.Context, id uuid.UUID) (*CalendarDay, error) {
	return c.Query().Where(calendarday.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalendarDayClient) GetX(ctx context.Context, id uuid.UUID) *CalendarDay {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySlots queries the slots edge of a CalendarDay.
func (c *CalendarDayClient) QuerySlots(cd *CalendarDay) *TimeSlotQuery {
	query := (&TimeSlotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cd.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(calendarday.Table, calendarday.FieldID, id),
			sqlgraph.To(timeslot.Table, timeslot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, calendarday.SlotsTable, calendarday.SlotsColumn),
		)
		fromV = sqlgraph.Neighbors(cd.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CalendarDayClient) Hooks() []Hook {
	return c.hooks.CalendarDay
}

// Interceptors returns the client interceptors.
func (c *CalendarDayClient) Interceptors() []Interceptor {
	return c.inters.CalendarDay
}

func (c *CalendarDayClient) mutate(ctx context.Context, m *CalendarDayMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalendarDayCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalendarDayUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalendarDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalendarDayDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown CalendarDay mutation op: %q", m.Op())
	}
}

// InstructorClient is a client for the Instructor schema.
type InstructorClient struct {
	config
}

// NewInstructorClient returns a client for the Instructor from the given config.
func NewInstructorClient(c config) *InstructorClient {
	return &InstructorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `instructor.Hooks(f(g(h())))`.
func (c *InstructorClient) Use(hooks ...Hook) {
	c.hooks.Instructor = append(c.hooks.Instructor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `instructor.Intercept(f(g(h())))`.
func (c *InstructorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Instructor = append(c.inters.Instructor, interceptors...)
}

// Create returns a builder for creating a Instructor entity.
func (c *InstructorClient) Create() *InstructorCreate {
	mutation := newInstructorMutation(c.config, OpCreate)
	return &InstructorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Instructor entities.
func (c *InstructorClient) CreateBulk(builders ...*InstructorCreate) *InstructorCreateBulk {
	return &InstructorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InstructorClient) MapCreateBulk(slice any, setFunc func(*InstructorCreate, int)) *InstructorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InstructorCreateBulk{err: fmt.Errorf("calling to InstructorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InstructorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InstructorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Instructor.
func (c *InstructorClient) Update() *InstructorUpdate {
	mutation := newInstructorMutation(c.config, OpUpdate)
	return &InstructorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InstructorClient) UpdateOne(i *Instructor) *InstructorUpdateOne {
	mutation := newInstructorMutation(c.config, OpUpdateOne, withInstructor(i))
	return &InstructorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InstructorClient) UpdateOneID(id uuid.UUID) *InstructorUpdateOne {
	mutation := newInstructorMutation(c.config, OpUpdateOne, withInstructorID(id))
	return &InstructorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Instructor.
func (c *InstructorClient) Delete() *InstructorDelete {
	mutation := newInstructorMutation(c.config, OpDelete)
	return &InstructorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InstructorClient) DeleteOne(i *Instructor) *InstructorDeleteOne {
	return c.DeleteOneID(i.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InstructorClient) DeleteOneID(id uuid.UUID) *InstructorDeleteOne {
	builder := c.Delete().Where(instructor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InstructorDeleteOne{builder}
}

// Query returns a query builder for Instructor.
func (c *InstructorClient) Query() *InstructorQuery {
	return &InstructorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInstructor},
		inters: c.Interceptors(),
	}
}

// Get returns a Instructor entity by its id.
func (c *InstructorClient) Get(ctx context.Context, id uuid.UUID) (*Instructor, error) {
	return c.Query().Where(instructor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InstructorClient) GetX(ctx context.Context, id uuid.UUID) *Instructor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InstructorClient) Hooks() []Hook {
	return c.hooks.Instructor
}

// Interceptors returns the client interceptors.
func (c *InstructorClient) Interceptors() []Interceptor {
	return c.inters.Instructor
}

func (c *InstructorClient) mutate(ctx context.Context, m *InstructorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InstructorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InstructorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InstructorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InstructorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown Instructor mutation op: %q", m.Op())
	}
}

// LessonClient is a client for the Lesson schema.
type LessonClient struct {
	config
}

// NewLessonClient returns a client for the Lesson from the given config.
func NewLessonClient(c config) *LessonClient {
	return &LessonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lesson.Hooks(f(g(h())))`.
func (c *LessonClient) Use(hooks ...Hook) {
	c.hooks.Lesson = append(c.hooks.Lesson, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lesson.Intercept(f(g(h())))`.
func (c *LessonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lesson = append(c.inters.Lesson, interceptors...)
}

// Create returns a builder for creating a Lesson entity.
func (c *LessonClient) Create() *LessonCreate {
	mutation := newLessonMutation(c.config, OpCreate)
	return &LessonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lesson entities.
func (c *LessonClient) CreateBulk(builders ...*LessonCreate) *LessonCreateBulk {
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonClient) MapCreateBulk(slice any, setFunc func(*LessonCreate, int)) *LessonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonCreateBulk{err: fmt.Errorf("calling to LessonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lesson.
func (c *LessonClient) Update() *LessonUpdate {
	mutation := newLessonMutation(c.config, OpUpdate)
	return &LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonClient) UpdateOne(l *Lesson) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLesson(l))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonClient) UpdateOneID(id uuid.UUID) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLessonID(id))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lesson.
func (c *LessonClient) Delete() *LessonDelete {
	mutation := newLessonMutation(c.config, OpDelete)
	return &LessonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonClient) DeleteOne(l *Lesson) *LessonDeleteOne {
	return c.DeleteOneID(l.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonClient) DeleteOneID(id uuid.UUID) *LessonDeleteOne {
	builder := c.Delete().Where(lesson.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonDeleteOne{builder}
}

// Query returns a query builder for Lesson.
func (c *LessonClient) Query() *LessonQuery {
	return &LessonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLesson},
		inters: c.Interceptors(),
	}
}

// Get returns a Lesson entity by its id.
func (c *LessonClient) Get(ctx context.Context, id uuid.UUID) (*Lesson, error) {
	return c.Query().Where(lesson.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonClient) GetX(ctx context.Context, id uuid.UUID) *Lesson {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrder queries the order edge of a Lesson.
func (c *LessonClient) QueryOrder(l *Lesson) *OrderQuery {
	query := (&OrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := l.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, id),
			sqlgraph.To(order.Table, order.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, lesson.OrderTable, lesson.OrderColumn),
		)
		fromV = sqlgraph.Neighbors(l.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySlot queries the slot edge of a Lesson.
func (c *LessonClient) QuerySlot(l *Lesson) *TimeSlotQuery {
	query := (&TimeSlotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := l.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, id),
			sqlgraph.To(timeslot.Table, timeslot.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, lesson.SlotTable, lesson.SlotColumn),
		)
		fromV = sqlgraph.Neighbors(l.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPayment queries the payment edge of a Lesson.
func (c *LessonClient) QueryPayment(l *Lesson) *LessonPaymentQuery {
	query := (&LessonPaymentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := l.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, id),
			sqlgraph.To(lessonpayment.Table, lessonpayment.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, lesson.PaymentTable, lesson.PaymentColumn),
		)
		fromV = sqlgraph.Neighbors(l.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPayout queries the payout edge of a Lesson.
func (c *LessonClient) QueryPayout(l *Lesson) *PayoutQuery {
	query := (&PayoutClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := l.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, id),
			sqlgraph.To(payout.Table, payout.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, lesson.PayoutTable, lesson.PayoutColumn),
		)
		fromV = sqlgraph.Neighbors(l.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LessonClient) Hooks() []Hook {
	return c.hooks.Lesson
}

// Interceptors returns the client interceptors.
func (c *LessonClient) Interceptors() []Interceptor {
	return c.inters.Lesson
}

func (c *LessonClient) mutate(ctx context.Context, m *LessonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown Lesson mutation op: %q", m.Op())
	}
}

// LessonPaymentClient is a client for the LessonPayment schema.
type LessonPaymentClient struct {
	config
}

// NewLessonPaymentClient returns a client for the LessonPayment from the given config.
func NewLessonPaymentClient(c config) *LessonPaymentClient {
	return &LessonPaymentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonpayment.Hooks(f(g(h())))`.
func (c *LessonPaymentClient) Use(hooks ...Hook) {
	c.hooks.LessonPayment = append(c.hooks.LessonPayment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonpayment.Intercept(f(g(h())))`.
func (c *LessonPaymentClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonPayment = append(c.inters.LessonPayment, interceptors...)
}

// Create returns a builder for creating a LessonPayment entity.
func (c *LessonPaymentClient) Create() *LessonPaymentCreate {
	mutation := newLessonPaymentMutation(c.config, OpCreate)
	return &LessonPaymentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonPayment entities.
func (c *LessonPaymentClient) CreateBulk(builders ...*LessonPaymentCreate) *LessonPaymentCreateBulk {
	return &LessonPaymentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonPaymentClient) MapCreateBulk(slice any, setFunc func(*LessonPaymentCreate, int)) *LessonPaymentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonPaymentCreateBulk{err: fmt.Errorf("calling to LessonPaymentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonPaymentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonPaymentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonPayment.
func (c *LessonPaymentClient) Update() *LessonPaymentUpdate {
	mutation := newLessonPaymentMutation(c.config, OpUpdate)
	return &LessonPaymentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonPaymentClient) UpdateOne(lp *LessonPayment) *LessonPaymentUpdateOne {
	mutation := newLessonPaymentMutation(c.config, OpUpdateOne, withLessonPayment(lp))
	return &LessonPaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonPaymentClient) UpdateOneID(id uuid.UUID) *LessonPaymentUpdateOne {
	mutation := newLessonPaymentMutation(c.config, OpUpdateOne, withLessonPaymentID(id))
	return &LessonPaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonPayment.
func (c *LessonPaymentClient) Delete() *LessonPaymentDelete {
	mutation := newLessonPaymentMutation(c.config, OpDelete)
	return &LessonPaymentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonPaymentClient) DeleteOne(lp *LessonPayment) *LessonPaymentDeleteOne {
	return c.DeleteOneID(lp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonPaymentClient) DeleteOneID(id uuid.UUID) *LessonPaymentDeleteOne {
	builder := c.Delete().Where(lessonpayment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonPaymentDeleteOne{builder}
}

// Query returns a query builder for LessonPayment.
func (c *LessonPaymentClient) Query() *LessonPaymentQuery {
	return &LessonPaymentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonPayment},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonPayment entity by its id.
func (c *LessonPaymentClient) Get(ctx context.Context, id uuid.UUID) (*LessonPayment, error) {
	return c.Query().Where(lessonpayment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonPaymentClient) GetX(ctx context.Context, id uuid.UUID) *LessonPayment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLesson queries the lesson edge of a LessonPayment.
func (c *LessonPaymentClient) QueryLesson(lp *LessonPayment) *LessonQuery {
	query := (&LessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := lp.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lessonpayment.Table, lessonpayment.FieldID, id),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, lessonpayment.LessonTable, lessonpayment.LessonColumn),
		)
		fromV = sqlgraph.Neighbors(lp.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LessonPaymentClient) Hooks() []Hook {
	return c.hooks.LessonPayment
}

// Interceptors returns the client interceptors.
func (c *LessonPaymentClient) Interceptors() []Interceptor {
	return c.inters.LessonPayment
}

func (c *LessonPaymentClient) mutate(ctx context.Context, m *LessonPaymentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonPaymentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonPaymentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonPaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonPaymentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown LessonPayment mutation op: %q", m.Op())
	}
}

// OrderClient is a client for the Order schema.
type OrderClient struct {
	config
}

// NewOrderClient returns a client for the Order from the given config.
func NewOrderClient(c config) *OrderClient {
	return &OrderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `order.Hooks(f(g(h())))`.
func (c *OrderClient) Use(hooks ...Hook) {
	c.hooks.Order = append(c.hooks.Order, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `order.Intercept(f(g(h())))`.
func (c *OrderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Order = append(c.inters.Order, interceptors...)
}

// Create returns a builder for creating a Order entity.
func (c *OrderClient) Create() *OrderCreate {
	mutation := newOrderMutation(c.config, OpCreate)
	return &OrderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Order entities.
func (c *OrderClient) CreateBulk(builders ...*OrderCreate) *OrderCreateBulk {
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderClient) MapCreateBulk(slice any, setFunc func(*OrderCreate, int)) *OrderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderCreateBulk{err: fmt.Errorf("calling to OrderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Order.
func (c *OrderClient) Update() *OrderUpdate {
	mutation := newOrderMutation(c.config, OpUpdate)
	return &OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderClient) UpdateOne(o *Order) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrder(o))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderClient) UpdateOneID(id uuid.UUID) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrderID(id))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Order.
func (c *OrderClient) Delete() *OrderDelete {
	mutation := newOrderMutation(c.config, OpDelete)
	return &OrderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderClient) DeleteOne(o *Order) *OrderDeleteOne {
	return c.DeleteOneID(o.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderClient) DeleteOneID(id uuid.UUID) *OrderDeleteOne {
	builder := c.Delete().Where(order.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderDeleteOne{builder}
}

// Query returns a query builder for Order.
func (c *OrderClient) Query() *OrderQuery {
	return &OrderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrder},
		inters: c.Interceptors(),
	}
}

// Get returns a Order entity by its id.
func (c *OrderClient) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	return c.Query().Where(order.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderClient) GetX(ctx context.Context, id uuid.UUID) *Order {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLessons queries the lessons edge of a Order.
func (c *OrderClient) QueryLessons(o *Order) *LessonQuery {
	query := (&LessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := o.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(order.Table, order.FieldID, id),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, order.LessonsTable, order.LessonsColumn),
		)
		fromV = sqlgraph.Neighbors(o.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderClient) Hooks() []Hook {
	return c.hooks.Order
}

// Interceptors returns the client interceptors.
func (c *OrderClient) Interceptors() []Interceptor {
	return c.inters.Order
}

func (c *OrderClient) mutate(ctx context.Context, m *OrderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown Order mutation op: %q", m.Op())
	}
}

// PayoutClient is a client for the Payout schema.
type PayoutClient struct {
	config
}

// NewPayoutClient returns a client for the Payout from the given config.
func NewPayoutClient(c config) *PayoutClient {
	return &PayoutClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `payout.Hooks(f(g(h())))`.
func (c *PayoutClient) Use(hooks ...Hook) {
	c.hooks.Payout = append(c.hooks.Payout, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `payout.Intercept(f(g(h())))`.
func (c *PayoutClient) Intercept(interceptors ...Interceptor) {
	c.inters.Payout = append(c.inters.Payout, interceptors...)
}

// Create returns a builder for creating a Payout entity.
func (c *PayoutClient) Create() *PayoutCreate {
	mutation := newPayoutMutation(c.config, OpCreate)
	return &PayoutCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Payout entities.
func (c *PayoutClient) CreateBulk(builders ...*PayoutCreate) *PayoutCreateBulk {
	return &PayoutCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PayoutClient) MapCreateBulk(slice any, setFunc func(*PayoutCreate, int)) *PayoutCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PayoutCreateBulk{err: fmt.Errorf("calling to PayoutClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PayoutCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PayoutCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Payout.
func (c *PayoutClient) Update() *PayoutUpdate {
	mutation := newPayoutMutation(c.config, OpUpdate)
	return &PayoutUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PayoutClient) UpdateOne(pa *Payout) *PayoutUpdateOne {
	mutation := newPayoutMutation(c.config, OpUpdateOne, withPayout(pa))
	return &PayoutUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PayoutClient) UpdateOneID(id uuid.UUID) *PayoutUpdateOne {
	mutation := newPayoutMutation(c.config, OpUpdateOne, withPayoutID(id))
	return &PayoutUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Payout.
func (c *PayoutClient) Delete() *PayoutDelete {
	mutation := newPayoutMutation(c.config, OpDelete)
	return &PayoutDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PayoutClient) DeleteOne(pa *Payout) *PayoutDeleteOne {
	return c.DeleteOneID(pa.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PayoutClient) DeleteOneID(id uuid.UUID) *PayoutDeleteOne {
	builder := c.Delete().Where(payout.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PayoutDeleteOne{builder}
}

// Query returns a query builder for Payout.
func (c *PayoutClient) Query() *PayoutQuery {
	return &PayoutQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePayout},
		inters: c.Interceptors(),
	}
}

// Get returns a Payout entity by its id.
func (c *PayoutClient) Get(ctx context.Context, id uuid.UUID) (*Payout, error) {
	return c.Query().Where(payout.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PayoutClient) GetX(ctx context.Context, id uuid.UUID) *Payout {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLesson queries the lesson edge of a Payout.
func (c *PayoutClient) QueryLesson(pa *Payout) *LessonQuery {
	query := (&LessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pa.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(payout.Table, payout.FieldID, id),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, payout.LessonTable, payout.LessonColumn),
		)
		fromV = sqlgraph.Neighbors(pa.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PayoutClient) Hooks() []Hook {
	return c.hooks.Payout
}

// Interceptors returns the client interceptors.
func (c *PayoutClient) Interceptors() []Interceptor {
	return c.inters.Payout
}

func (c *PayoutClient) mutate(ctx context.Context, m *PayoutMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PayoutCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PayoutUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PayoutUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PayoutDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown Payout mutation op: %q", m.Op())
	}
}

// ProcessedEventClient is a client for the ProcessedEvent schema.
type ProcessedEventClient struct {
	config
}

// NewProcessedEventClient returns a client for the ProcessedEvent from the given config.
func NewProcessedEventClient(c config) *ProcessedEventClient {
	return &ProcessedEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processedevent.Hooks(f(g(h())))`.
func (c *ProcessedEventClient) Use(hooks ...Hook) {
	c.hooks.ProcessedEvent = append(c.hooks.ProcessedEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processedevent.Intercept(f(g(h())))`.
func (c *ProcessedEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessedEvent = append(c.inters.ProcessedEvent, interceptors...)
}

// Create returns a builder for creating a ProcessedEvent entity.
func (c *ProcessedEventClient) Create() *ProcessedEventCreate {
	mutation := newProcessedEventMutation(c.config, OpCreate)
	return &ProcessedEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessedEvent entities.
func (c *ProcessedEventClient) CreateBulk(builders ...*ProcessedEventCreate) *ProcessedEventCreateBulk {
	return &ProcessedEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessedEventClient) MapCreateBulk(slice any, setFunc func(*ProcessedEventCreate, int)) *ProcessedEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessedEventCreateBulk{err: fmt.Errorf("calling to ProcessedEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessedEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessedEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessedEvent.
func (c *ProcessedEventClient) Update() *ProcessedEventUpdate {
	mutation := newProcessedEventMutation(c.config, OpUpdate)
	return &ProcessedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessedEventClient) UpdateOne(pe *ProcessedEvent) *ProcessedEventUpdateOne {
	mutation := newProcessedEventMutation(c.config, OpUpdateOne, withProcessedEvent(pe))
	return &ProcessedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessedEventClient) UpdateOneID(id uuid.UUID) *ProcessedEventUpdateOne {
	mutation := newProcessedEventMutation(c.config, OpUpdateOne, withProcessedEventID(id))
	return &ProcessedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessedEvent.
func (c *ProcessedEventClient) Delete() *ProcessedEventDelete {
	mutation := newProcessedEventMutation(c.config, OpDelete)
	return &ProcessedEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessedEventClient) DeleteOne(pe *ProcessedEvent) *ProcessedEventDeleteOne {
	return c.DeleteOneID(pe.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessedEventClient) DeleteOneID(id uuid.UUID) *ProcessedEventDeleteOne {
	builder := c.Delete().Where(processedevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessedEventDeleteOne{builder}
}

// Query returns a query builder for ProcessedEvent.
func (c *ProcessedEventClient) Query() *ProcessedEventQuery {
	return &ProcessedEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessedEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessedEvent entity by its id.
func (c *ProcessedEventClient) Get(ctx context.Context, id uuid.UUID) (*ProcessedEvent, error) {
	return c.Query().Where(processedevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessedEventClient) GetX(ctx context.Context, id uuid.UUID) *ProcessedEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessedEventClient) Hooks() []Hook {
	return c.hooks.ProcessedEvent
}

// Interceptors returns the client interceptors.
func (c *ProcessedEventClient) Interceptors() []Interceptor {
	return c.inters.ProcessedEvent
}

func (c *ProcessedEventClient) mutate(ctx context.Context, m *ProcessedEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessedEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessedEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown ProcessedEvent mutation op: %q", m.Op())
	}
}

// TimeSlotClient is a client for the TimeSlot schema.
type TimeSlotClient struct {
	config
}

// NewTimeSlotClient returns a client for the TimeSlot from the given config.
func NewTimeSlotClient(c config) *TimeSlotClient {
	return &TimeSlotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `timeslot.Hooks(f(g(h())))`.
func (c *TimeSlotClient) Use(hooks ...Hook) {
	c.hooks.TimeSlot = append(c.hooks.TimeSlot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `timeslot.Intercept(f(g(h())))`.
func (c *TimeSlotClient) Intercept(interceptors ...Interceptor) {
	c.inters.TimeSlot = append(c.inters.TimeSlot, interceptors...)
}

// Create returns a builder for creating a TimeSlot entity.
func (c *TimeSlotClient) Create() *TimeSlotCreate {
	mutation := newTimeSlotMutation(c.config, OpCreate)
	return &TimeSlotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TimeSlot entities.
func (c *TimeSlotClient) CreateBulk(builders ...*TimeSlotCreate) *TimeSlotCreateBulk {
	return &TimeSlotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TimeSlotClient) MapCreateBulk(slice any, setFunc func(*TimeSlotCreate, int)) *TimeSlotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TimeSlotCreateBulk{err: fmt.Errorf("calling to TimeSlotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TimeSlotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TimeSlotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TimeSlot.
func (c *TimeSlotClient) Update() *TimeSlotUpdate {
	mutation := newTimeSlotMutation(c.config, OpUpdate)
	return &TimeSlotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TimeSlotClient) UpdateOne(ts *TimeSlot) *TimeSlotUpdateOne {
	mutation := newTimeSlotMutation(c.config, OpUpdateOne, withTimeSlot(ts))
	return &TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TimeSlotClient) UpdateOneID(id uuid.UUID) *TimeSlotUpdateOne {
	mutation := newTimeSlotMutation(c.config, OpUpdateOne, withTimeSlotID(id))
	return &TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TimeSlot.
func (c *TimeSlotClient) Delete() *TimeSlotDelete {
	mutation := newTimeSlotMutation(c.config, OpDelete)
	return &TimeSlotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TimeSlotClient) DeleteOne(ts *TimeSlot) *TimeSlotDeleteOne {
	return c.DeleteOneID(ts.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TimeSlotClient) DeleteOneID(id uuid.UUID) *TimeSlotDeleteOne {
	builder := c.Delete().Where(timeslot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TimeSlotDeleteOne{builder}
}

// Query returns a query builder for TimeSlot.
func (c *TimeSlotClient) Query() *TimeSlotQuery {
	return &TimeSlotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTimeSlot},
		inters: c.Interceptors(),
	}
}

// Get returns a TimeSlot entity by its id.
func (c *TimeSlotClient) Get(ctx context.Context, id uuid.UUID) (*TimeSlot, error) {
	return c.Query().Where(timeslot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TimeSlotClient) GetX(ctx context.Context, id uuid.UUID) *TimeSlot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDay queries the day edge of a TimeSlot.
func (c *TimeSlotClient) QueryDay(ts *TimeSlot) *CalendarDayQuery {
	query := (&CalendarDayClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ts.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(timeslot.Table, timeslot.FieldID, id),
			sqlgraph.To(calendarday.Table, calendarday.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timeslot.DayTable, timeslot.DayColumn),
		)
		fromV = sqlgraph.Neighbors(ts.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLessons queries the lessons edge of a TimeSlot.
func (c *TimeSlotClient) QueryLessons(ts *TimeSlot) *LessonQuery {
	query := (&LessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ts.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(timeslot.Table, timeslot.FieldID, id),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, timeslot.LessonsTable, timeslot.LessonsColumn),
		)
		fromV = sqlgraph.Neighbors(ts.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TimeSlotClient) Hooks() []Hook {
	return c.hooks.TimeSlot
}

// Interceptors returns the client interceptors.
func (c *TimeSlotClient) Interceptors() []Interceptor {
	return c.inters.TimeSlot
}

func (c *TimeSlotClient) mutate(ctx context.Context, m *TimeSlotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TimeSlotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TimeSlotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TimeSlotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown TimeSlot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActivityLog, CalendarDay, Instructor, Lesson, LessonPayment, Order, Payout,
		ProcessedEvent, TimeSlot []ent.Hook
	}
	inters struct {
		ActivityLog, CalendarDay, Instructor, Lesson, LessonPayment, Order, Payout,
		ProcessedEvent, TimeSlot []ent.Interceptor
	}
)
