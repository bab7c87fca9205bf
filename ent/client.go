// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/kunalarora/studypath/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/kunalarora/studypath/ent/concept"
	"github.com/kunalarora/studypath/ent/dependencyedge"
	"github.com/kunalarora/studypath/ent/snapshot"
	"github.com/kunalarora/studypath/ent/understandingrecord"
	"github.com/kunalarora/studypath/ent/weightoverride"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Concept is the client for interacting with the Concept builders.
	Concept *ConceptClient
	// DependencyEdge is the client for interacting with the DependencyEdge builders.
	DependencyEdge *DependencyEdgeClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
	// UnderstandingRecord is the client for interacting with the UnderstandingRecord builders.
	UnderstandingRecord *UnderstandingRecordClient
	// WeightOverride is the client for interacting with the WeightOverride builders.
	WeightOverride *WeightOverrideClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Concept = NewConceptClient(c.config)
	c.DependencyEdge = NewDependencyEdgeClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
	c.UnderstandingRecord = NewUnderstandingRecordClient(c.config)
	c.WeightOverride = NewWeightOverrideClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		Concept:             NewConceptClient(cfg),
		DependencyEdge:      NewDependencyEdgeClient(cfg),
		Snapshot:            NewSnapshotClient(cfg),
		UnderstandingRecord: NewUnderstandingRecordClient(cfg),
		WeightOverride:      NewWeightOverrideClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		Concept:             NewConceptClient(cfg),
		DependencyEdge:      NewDependencyEdgeClient(cfg),
		Snapshot:            NewSnapshotClient(cfg),
		UnderstandingRecord: NewUnderstandingRecordClient(cfg),
		WeightOverride:      NewWeightOverrideClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Concept.
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
	c.Concept.Use(hooks...)
	c.DependencyEdge.Use(hooks...)
	c.Snapshot.Use(hooks...)
	c.UnderstandingRecord.Use(hooks...)
	c.WeightOverride.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Concept.Intercept(interceptors...)
	c.DependencyEdge.Intercept(interceptors...)
	c.Snapshot.Intercept(interceptors...)
	c.UnderstandingRecord.Intercept(interceptors...)
	c.WeightOverride.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConceptMutation:
		return c.Concept.mutate(ctx, m)
	case *DependencyEdgeMutation:
		return c.DependencyEdge.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	case *UnderstandingRecordMutation:
		return c.UnderstandingRecord.mutate(ctx, m)
	case *WeightOverrideMutation:
		return c.WeightOverride.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ConceptClient is a client for the Concept schema.
type ConceptClient struct {
	config
}

// NewConceptClient returns a client for the Concept from the given config.
func NewConceptClient(c config) *ConceptClient {
	return &ConceptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `concept.Hooks(f(g(h())))`.
func (c *ConceptClient) Use(hooks ...Hook) {
	c.hooks.Concept = append(c.hooks.Concept, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `concept.Intercept(f(g(h())))`.
func (c *ConceptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Concept = append(c.inters.Concept, interceptors...)
}

// Create returns a builder for creating a Concept entity.
func (c *ConceptClient) Create() *ConceptCreate {
	mutation := newConceptMutation(c.config, OpCreate)
	return &ConceptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Concept entities.
func (c *ConceptClient) CreateBulk(builders ...*ConceptCreate) *ConceptCreateBulk {
	return &ConceptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConceptClient) MapCreateBulk(slice any, setFunc func(*ConceptCreate, int)) *ConceptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConceptCreateBulk{err: fmt.Errorf("calling to ConceptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConceptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConceptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Concept.
func (c *ConceptClient) Update() *ConceptUpdate {
	mutation := newConceptMutation(c.config, OpUpdate)
	return &ConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConceptClient) UpdateOne(co *Concept) *ConceptUpdateOne {
	mutation := newConceptMutation(c.config, OpUpdateOne, withConcept(co))
	return &ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConceptClient) UpdateOneID(id int) *ConceptUpdateOne {
	mutation := newConceptMutation(c.config, OpUpdateOne, withConceptID(id))
	return &ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Concept.
func (c *ConceptClient) Delete() *ConceptDelete {
	mutation := newConceptMutation(c.config, OpDelete)
	return &ConceptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConceptClient) DeleteOne(co *Concept) *ConceptDeleteOne {
	return c.DeleteOneID(co.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConceptClient) DeleteOneID(id int) *ConceptDeleteOne {
	builder := c.Delete().Where(concept.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConceptDeleteOne{builder}
}

// Query returns a query builder for Concept.
func (c *ConceptClient) Query() *ConceptQuery {
	return &ConceptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConcept},
		inters: c.Interceptors(),
	}
}

// Get returns a Concept entity by its id.
func (c *ConceptClient) Get(ctx context.Context, id int) (*Concept, error) {
	return c.Query().Where(concept.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConceptClient) GetX(ctx context.Context, id int) *Concept {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConceptClient) Hooks() []Hook {
	return c.hooks.Concept
}

// Interceptors returns the client interceptors.
func (c *ConceptClient) Interceptors() []Interceptor {
	return c.inters.Concept
}

func (c *ConceptClient) mutate(ctx context.Context, m *ConceptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConceptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConceptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Concept mutation op: %q", m.Op())
	}
}

// DependencyEdgeClient is a client for the DependencyEdge schema.
type DependencyEdgeClient struct {
	config
}

// NewDependencyEdgeClient returns a client for the DependencyEdge from the given config.
func NewDependencyEdgeClient(c config) *DependencyEdgeClient {
	return &DependencyEdgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dependencyedge.Hooks(f(g(h())))`.
func (c *DependencyEdgeClient) Use(hooks ...Hook) {
	c.hooks.DependencyEdge = append(c.hooks.DependencyEdge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dependencyedge.Intercept(f(g(h())))`.
func (c *DependencyEdgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.DependencyEdge = append(c.inters.DependencyEdge, interceptors...)
}

// Create returns a builder for creating a DependencyEdge entity.
func (c *DependencyEdgeClient) Create() *DependencyEdgeCreate {
	mutation := newDependencyEdgeMutation(c.config, OpCreate)
	return &DependencyEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DependencyEdge entities.
func (c *DependencyEdgeClient) CreateBulk(builders ...*DependencyEdgeCreate) *DependencyEdgeCreateBulk {
	return &DependencyEdgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DependencyEdgeClient) MapCreateBulk(slice any, setFunc func(*DependencyEdgeCreate, int)) *DependencyEdgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DependencyEdgeCreateBulk{err: fmt.Errorf("calling to DependencyEdgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DependencyEdgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DependencyEdgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DependencyEdge.
func (c *DependencyEdgeClient) Update() *DependencyEdgeUpdate {
	mutation := newDependencyEdgeMutation(c.config, OpUpdate)
	return &DependencyEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DependencyEdgeClient) UpdateOne(de *DependencyEdge) *DependencyEdgeUpdateOne {
	mutation := newDependencyEdgeMutation(c.config, OpUpdateOne, withDependencyEdge(de))
	return &DependencyEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DependencyEdgeClient) UpdateOneID(id int) *DependencyEdgeUpdateOne {
	mutation := newDependencyEdgeMutation(c.config, OpUpdateOne, withDependencyEdgeID(id))
	return &DependencyEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DependencyEdge.
func (c *DependencyEdgeClient) Delete() *DependencyEdgeDelete {
	mutation := newDependencyEdgeMutation(c.config, OpDelete)
	return &DependencyEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DependencyEdgeClient) DeleteOne(de *DependencyEdge) *DependencyEdgeDeleteOne {
	return c.DeleteOneID(de.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DependencyEdgeClient) DeleteOneID(id int) *DependencyEdgeDeleteOne {
	builder := c.Delete().Where(dependencyedge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DependencyEdgeDeleteOne{builder}
}

// Query returns a query builder for DependencyEdge.
func (c *DependencyEdgeClient) Query() *DependencyEdgeQuery {
	return &DependencyEdgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDependencyEdge},
		inters: c.Interceptors(),
	}
}

// Get returns a DependencyEdge entity by its id.
func (c *DependencyEdgeClient) Get(ctx context.Context, id int) (*DependencyEdge, error) {
	return c.Query().Where(dependencyedge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DependencyEdgeClient) GetX(ctx context.Context, id int) *DependencyEdge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DependencyEdgeClient) Hooks() []Hook {
	return c.hooks.DependencyEdge
}

// Interceptors returns the client interceptors.
func (c *DependencyEdgeClient) Interceptors() []Interceptor {
	return c.inters.DependencyEdge
}

func (c *DependencyEdgeClient) mutate(ctx context.Context, m *DependencyEdgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DependencyEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DependencyEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DependencyEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DependencyEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DependencyEdge mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(s *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(s))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(s *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(s.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// UnderstandingRecordClient is a client for the UnderstandingRecord schema.
type UnderstandingRecordClient struct {
	config
}

// NewUnderstandingRecordClient returns a client for the UnderstandingRecord from the given config.
func NewUnderstandingRecordClient(c config) *UnderstandingRecordClient {
	return &UnderstandingRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `understandingrecord.Hooks(f(g(h())))`.
func (c *UnderstandingRecordClient) Use(hooks ...Hook) {
	c.hooks.UnderstandingRecord = append(c.hooks.UnderstandingRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `understandingrecord.Intercept(f(g(h())))`.
func (c *UnderstandingRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.UnderstandingRecord = append(c.inters.UnderstandingRecord, interceptors...)
}

// Create returns a builder for creating a UnderstandingRecord entity.
func (c *UnderstandingRecordClient) Create() *UnderstandingRecordCreate {
	mutation := newUnderstandingRecordMutation(c.config, OpCreate)
	return &UnderstandingRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UnderstandingRecord entities.
func (c *UnderstandingRecordClient) CreateBulk(builders ...*UnderstandingRecordCreate) *UnderstandingRecordCreateBulk {
	return &UnderstandingRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UnderstandingRecordClient) MapCreateBulk(slice any, setFunc func(*UnderstandingRecordCreate, int)) *UnderstandingRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UnderstandingRecordCreateBulk{err: fmt.Errorf("calling to UnderstandingRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UnderstandingRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UnderstandingRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UnderstandingRecord.
func (c *UnderstandingRecordClient) Update() *UnderstandingRecordUpdate {
	mutation := newUnderstandingRecordMutation(c.config, OpUpdate)
	return &UnderstandingRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UnderstandingRecordClient) UpdateOne(ur *UnderstandingRecord) *UnderstandingRecordUpdateOne {
	mutation := newUnderstandingRecordMutation(c.config, OpUpdateOne, withUnderstandingRecord(ur))
	return &UnderstandingRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UnderstandingRecordClient) UpdateOneID(id int) *UnderstandingRecordUpdateOne {
	mutation := newUnderstandingRecordMutation(c.config, OpUpdateOne, withUnderstandingRecordID(id))
	return &UnderstandingRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UnderstandingRecord.
func (c *UnderstandingRecordClient) Delete() *UnderstandingRecordDelete {
	mutation := newUnderstandingRecordMutation(c.config, OpDelete)
	return &UnderstandingRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UnderstandingRecordClient) DeleteOne(ur *UnderstandingRecord) *UnderstandingRecordDeleteOne {
	return c.DeleteOneID(ur.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UnderstandingRecordClient) DeleteOneID(id int) *UnderstandingRecordDeleteOne {
	builder := c.Delete().Where(understandingrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UnderstandingRecordDeleteOne{builder}
}

// Query returns a query builder for UnderstandingRecord.
func (c *UnderstandingRecordClient) Query() *UnderstandingRecordQuery {
	return &UnderstandingRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUnderstandingRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a UnderstandingRecord entity by its id.
func (c *UnderstandingRecordClient) Get(ctx context.Context, id int) (*UnderstandingRecord, error) {
	return c.Query().Where(understandingrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UnderstandingRecordClient) GetX(ctx context.Context, id int) *UnderstandingRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UnderstandingRecordClient) Hooks() []Hook {
	return c.hooks.UnderstandingRecord
}

// Interceptors returns the client interceptors.
func (c *UnderstandingRecordClient) Interceptors() []Interceptor {
	return c.inters.UnderstandingRecord
}

func (c *UnderstandingRecordClient) mutate(ctx context.Context, m *UnderstandingRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UnderstandingRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UnderstandingRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UnderstandingRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UnderstandingRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UnderstandingRecord mutation op: %q", m.Op())
	}
}

// WeightOverrideClient is a client for the WeightOverride schema.
type WeightOverrideClient struct {
	config
}

// NewWeightOverrideClient returns a client for the WeightOverride from the given config.
func NewWeightOverrideClient(c config) *WeightOverrideClient {
	return &WeightOverrideClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `weightoverride.Hooks(f(g(h())))`.
func (c *WeightOverrideClient) Use(hooks ...Hook) {
	c.hooks.WeightOverride = append(c.hooks.WeightOverride, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `weightoverride.Intercept(f(g(h())))`.
func (c *WeightOverrideClient) Intercept(interceptors ...Interceptor) {
	c.inters.WeightOverride = append(c.inters.WeightOverride, interceptors...)
}

// Create returns a builder for creating a WeightOverride entity.
func (c *WeightOverrideClient) Create() *WeightOverrideCreate {
	mutation := newWeightOverrideMutation(c.config, OpCreate)
	return &WeightOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WeightOverride entities.
func (c *WeightOverrideClient) CreateBulk(builders ...*WeightOverrideCreate) *WeightOverrideCreateBulk {
	return &WeightOverrideCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WeightOverrideClient) MapCreateBulk(slice any, setFunc func(*WeightOverrideCreate, int)) *WeightOverrideCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WeightOverrideCreateBulk{err: fmt.Errorf("calling to WeightOverrideClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WeightOverrideCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WeightOverrideCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WeightOverride.
func (c *WeightOverrideClient) Update() *WeightOverrideUpdate {
	mutation := newWeightOverrideMutation(c.config, OpUpdate)
	return &WeightOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WeightOverrideClient) UpdateOne(wo *WeightOverride) *WeightOverrideUpdateOne {
	mutation := newWeightOverrideMutation(c.config, OpUpdateOne, withWeightOverride(wo))
	return &WeightOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WeightOverrideClient) UpdateOneID(id int) *WeightOverrideUpdateOne {
	mutation := newWeightOverrideMutation(c.config, OpUpdateOne, withWeightOverrideID(id))
	return &WeightOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WeightOverride.
func (c *WeightOverrideClient) Delete() *WeightOverrideDelete {
	mutation := newWeightOverrideMutation(c.config, OpDelete)
	return &WeightOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WeightOverrideClient) DeleteOne(wo *WeightOverride) *WeightOverrideDeleteOne {
	return c.DeleteOneID(wo.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WeightOverrideClient) DeleteOneID(id int) *WeightOverrideDeleteOne {
	builder := c.Delete().Where(weightoverride.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WeightOverrideDeleteOne{builder}
}

// Query returns a query builder for WeightOverride.
func (c *WeightOverrideClient) Query() *WeightOverrideQuery {
	return &WeightOverrideQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWeightOverride},
		inters: c.Interceptors(),
	}
}

// Get returns a WeightOverride entity by its id.
func (c *WeightOverrideClient) Get(ctx context.Context, id int) (*WeightOverride, error) {
	return c.Query().Where(weightoverride.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WeightOverrideClient) GetX(ctx context.Context, id int) *WeightOverride {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WeightOverrideClient) Hooks() []Hook {
	return c.hooks.WeightOverride
}

// Interceptors returns the client interceptors.
func (c *WeightOverrideClient) Interceptors() []Interceptor {
	return c.inters.WeightOverride
}

func (c *WeightOverrideClient) mutate(ctx context.Context, m *WeightOverrideMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WeightOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WeightOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WeightOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WeightOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WeightOverride mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Concept, DependencyEdge, Snapshot, UnderstandingRecord,
		WeightOverride []ent.Hook
	}
	inters struct {
		Concept, DependencyEdge, Snapshot, UnderstandingRecord,
		WeightOverride []ent.Interceptor
	}
)
