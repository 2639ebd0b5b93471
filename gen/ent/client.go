// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/gestir-app/wardrobe-tracker/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/ingestrun"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/wardrobeitem"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// IngestRun is the client for interacting with the IngestRun builders.
	IngestRun *IngestRunClient
	// WardrobeItem is the client for interacting with the WardrobeItem builders.
	WardrobeItem *WardrobeItemClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.IngestRun = NewIngestRunClient(c.config)
	c.WardrobeItem = NewWardrobeItemClient(c.config)
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
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		IngestRun:    NewIngestRunClient(cfg),
		WardrobeItem: NewWardrobeItemClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		IngestRun:    NewIngestRunClient(cfg),
		WardrobeItem: NewWardrobeItemClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		IngestRun.
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
	c.IngestRun.Use(hooks...)
	c.WardrobeItem.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.IngestRun.Intercept(interceptors...)
	c.WardrobeItem.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *IngestRunMutation:
		return c.IngestRun.mutate(ctx, m)
	case *WardrobeItemMutation:
		return c.WardrobeItem.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// IngestRunClient is a client for the IngestRun schema.
type IngestRunClient struct {
	config
}

// NewIngestRunClient returns a client for the IngestRun from the given config.
func NewIngestRunClient(c config) *IngestRunClient {
	return &IngestRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ingestrun.Hooks(f(g(h())))`.
func (c *IngestRunClient) Use(hooks ...Hook) {
	c.hooks.IngestRun = append(c.hooks.IngestRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ingestrun.Intercept(f(g(h())))`.
func (c *IngestRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.IngestRun = append(c.inters.IngestRun, interceptors...)
}

// Create returns a builder for creating a IngestRun entity.
func (c *IngestRunClient) Create() *IngestRunCreate {
	mutation := newIngestRunMutation(c.config, OpCreate)
	return &IngestRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IngestRun entities.
func (c *IngestRunClient) CreateBulk(builders ...*IngestRunCreate) *IngestRunCreateBulk {
	return &IngestRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IngestRunClient) MapCreateBulk(slice any, setFunc func(*IngestRunCreate, int)) *IngestRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IngestRunCreateBulk{err: fmt.Errorf("calling to IngestRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IngestRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IngestRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IngestRun.
func (c *IngestRunClient) Update() *IngestRunUpdate {
	mutation := newIngestRunMutation(c.config, OpUpdate)
	return &IngestRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IngestRunClient) UpdateOne(_m *IngestRun) *IngestRunUpdateOne {
	mutation := newIngestRunMutation(c.config, OpUpdateOne, withIngestRun(_m))
	return &IngestRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IngestRunClient) UpdateOneID(id uuid.UUID) *IngestRunUpdateOne {
	mutation := newIngestRunMutation(c.config, OpUpdateOne, withIngestRunID(id))
	return &IngestRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IngestRun.
func (c *IngestRunClient) Delete() *IngestRunDelete {
	mutation := newIngestRunMutation(c.config, OpDelete)
	return &IngestRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IngestRunClient) DeleteOne(_m *IngestRun) *IngestRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IngestRunClient) DeleteOneID(id uuid.UUID) *IngestRunDeleteOne {
	builder := c.Delete().Where(ingestrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IngestRunDeleteOne{builder}
}

// Query returns a query builder for IngestRun.
func (c *IngestRunClient) Query() *IngestRunQuery {
	return &IngestRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIngestRun},
		inters: c.Interceptors(),
	}
}

// Get returns a IngestRun entity by its id.
func (c *IngestRunClient) Get(ctx context.Context, id uuid.UUID) (*IngestRun, error) {
	return c.Query().Where(ingestrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IngestRunClient) GetX(ctx context.Context, id uuid.UUID) *IngestRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IngestRunClient) Hooks() []Hook {
	return c.hooks.IngestRun
}

// Interceptors returns the client interceptors.
func (c *IngestRunClient) Interceptors() []Interceptor {
	return c.inters.IngestRun
}

func (c *IngestRunClient) mutate(ctx context.Context, m *IngestRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IngestRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IngestRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IngestRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IngestRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IngestRun mutation op: %q", m.Op())
	}
}

// WardrobeItemClient is a client for the WardrobeItem schema.
type WardrobeItemClient struct {
	config
}

// NewWardrobeItemClient returns a client for the WardrobeItem from the given config.
func NewWardrobeItemClient(c config) *WardrobeItemClient {
	return &WardrobeItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `wardrobeitem.Hooks(f(g(h())))`.
func (c *WardrobeItemClient) Use(hooks ...Hook) {
	c.hooks.WardrobeItem = append(c.hooks.WardrobeItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `wardrobeitem.Intercept(f(g(h())))`.
func (c *WardrobeItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.WardrobeItem = append(c.inters.WardrobeItem, interceptors...)
}

// Create returns a builder for creating a WardrobeItem entity.
func (c *WardrobeItemClient) Create() *WardrobeItemCreate {
	mutation := newWardrobeItemMutation(c.config, OpCreate)
	return &WardrobeItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WardrobeItem entities.
func (c *WardrobeItemClient) CreateBulk(builders ...*WardrobeItemCreate) *WardrobeItemCreateBulk {
	return &WardrobeItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WardrobeItemClient) MapCreateBulk(slice any, setFunc func(*WardrobeItemCreate, int)) *WardrobeItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WardrobeItemCreateBulk{err: fmt.Errorf("calling to WardrobeItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WardrobeItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WardrobeItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WardrobeItem.
func (c *WardrobeItemClient) Update() *WardrobeItemUpdate {
	mutation := newWardrobeItemMutation(c.config, OpUpdate)
	return &WardrobeItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WardrobeItemClient) UpdateOne(_m *WardrobeItem) *WardrobeItemUpdateOne {
	mutation := newWardrobeItemMutation(c.config, OpUpdateOne, withWardrobeItem(_m))
	return &WardrobeItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WardrobeItemClient) UpdateOneID(id uuid.UUID) *WardrobeItemUpdateOne {
	mutation := newWardrobeItemMutation(c.config, OpUpdateOne, withWardrobeItemID(id))
	return &WardrobeItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WardrobeItem.
func (c *WardrobeItemClient) Delete() *WardrobeItemDelete {
	mutation := newWardrobeItemMutation(c.config, OpDelete)
	return &WardrobeItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WardrobeItemClient) DeleteOne(_m *WardrobeItem) *WardrobeItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WardrobeItemClient) DeleteOneID(id uuid.UUID) *WardrobeItemDeleteOne {
	builder := c.Delete().Where(wardrobeitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WardrobeItemDeleteOne{builder}
}

// Query returns a query builder for WardrobeItem.
func (c *WardrobeItemClient) Query() *WardrobeItemQuery {
	return &WardrobeItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWardrobeItem},
		inters: c.Interceptors(),
	}
}

// Get returns a WardrobeItem entity by its id.
func (c *WardrobeItemClient) Get(ctx context.Context, id uuid.UUID) (*WardrobeItem, error) {
	return c.Query().Where(wardrobeitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WardrobeItemClient) GetX(ctx context.Context, id uuid.UUID) *WardrobeItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WardrobeItemClient) Hooks() []Hook {
	return c.hooks.WardrobeItem
}

// Interceptors returns the client interceptors.
func (c *WardrobeItemClient) Interceptors() []Interceptor {
	return c.inters.WardrobeItem
}

func (c *WardrobeItemClient) mutate(ctx context.Context, m *WardrobeItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WardrobeItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WardrobeItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WardrobeItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WardrobeItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WardrobeItem mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		IngestRun, WardrobeItem []ent.Hook
	}
	inters struct {
		IngestRun, WardrobeItem []ent.Interceptor
	}
)
