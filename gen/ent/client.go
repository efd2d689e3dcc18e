// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/docuvault/docintel/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docuvault/docintel/gen/ent/document"
	"github.com/docuvault/docintel/gen/ent/documenttemplate"
	"github.com/docuvault/docintel/gen/ent/filingrule"
	"github.com/docuvault/docintel/gen/ent/processjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// DocumentTemplate is the client for interacting with the DocumentTemplate builders.
	DocumentTemplate *DocumentTemplateClient
	// FilingRule is the client for interacting with the FilingRule builders.
	FilingRule *FilingRuleClient
	// ProcessJob is the client for interacting with the ProcessJob builders.
	ProcessJob *ProcessJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Document = NewDocumentClient(c.config)
	c.DocumentTemplate = NewDocumentTemplateClient(c.config)
	c.FilingRule = NewFilingRuleClient(c.config)
	c.ProcessJob = NewProcessJobClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Document:         NewDocumentClient(cfg),
		DocumentTemplate: NewDocumentTemplateClient(cfg),
		FilingRule:       NewFilingRuleClient(cfg),
		ProcessJob:       NewProcessJobClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Document:         NewDocumentClient(cfg),
		DocumentTemplate: NewDocumentTemplateClient(cfg),
		FilingRule:       NewFilingRuleClient(cfg),
		ProcessJob:       NewProcessJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Document.
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
	c.Document.Use(hooks...)
	c.DocumentTemplate.Use(hooks...)
	c.FilingRule.Use(hooks...)
	c.ProcessJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Document.Intercept(interceptors...)
	c.DocumentTemplate.Intercept(interceptors...)
	c.FilingRule.Intercept(interceptors...)
	c.ProcessJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *DocumentTemplateMutation:
		return c.DocumentTemplate.mutate(ctx, m)
	case *FilingRuleMutation:
		return c.FilingRule.mutate(ctx, m)
	case *ProcessJobMutation:
		return c.ProcessJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a Document.
func (c *DocumentClient) QueryJobs(_m *Document) *ProcessJobQuery {
	query := (&ProcessJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(processjob.Table, processjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.JobsTable, document.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// DocumentTemplateClient is a client for the DocumentTemplate schema.
type DocumentTemplateClient struct {
	config
}

// NewDocumentTemplateClient returns a client for the DocumentTemplate from the given config.
func NewDocumentTemplateClient(c config) *DocumentTemplateClient {
	return &DocumentTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documenttemplate.Hooks(f(g(h())))`.
func (c *DocumentTemplateClient) Use(hooks ...Hook) {
	c.hooks.DocumentTemplate = append(c.hooks.DocumentTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documenttemplate.Intercept(f(g(h())))`.
func (c *DocumentTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentTemplate = append(c.inters.DocumentTemplate, interceptors...)
}

// Create returns a builder for creating a DocumentTemplate entity.
func (c *DocumentTemplateClient) Create() *DocumentTemplateCreate {
	mutation := newDocumentTemplateMutation(c.config, OpCreate)
	return &DocumentTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentTemplate entities.
func (c *DocumentTemplateClient) CreateBulk(builders ...*DocumentTemplateCreate) *DocumentTemplateCreateBulk {
	return &DocumentTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentTemplateClient) MapCreateBulk(slice any, setFunc func(*DocumentTemplateCreate, int)) *DocumentTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentTemplateCreateBulk{err: fmt.Errorf("calling to DocumentTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentTemplate.
func (c *DocumentTemplateClient) Update() *DocumentTemplateUpdate {
	mutation := newDocumentTemplateMutation(c.config, OpUpdate)
	return &DocumentTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentTemplateClient) UpdateOne(_m *DocumentTemplate) *DocumentTemplateUpdateOne {
	mutation := newDocumentTemplateMutation(c.config, OpUpdateOne, withDocumentTemplate(_m))
	return &DocumentTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentTemplateClient) UpdateOneID(id uuid.UUID) *DocumentTemplateUpdateOne {
	mutation := newDocumentTemplateMutation(c.config, OpUpdateOne, withDocumentTemplateID(id))
	return &DocumentTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentTemplate.
func (c *DocumentTemplateClient) Delete() *DocumentTemplateDelete {
	mutation := newDocumentTemplateMutation(c.config, OpDelete)
	return &DocumentTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentTemplateClient) DeleteOne(_m *DocumentTemplate) *DocumentTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentTemplateClient) DeleteOneID(id uuid.UUID) *DocumentTemplateDeleteOne {
	builder := c.Delete().Where(documenttemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentTemplateDeleteOne{builder}
}

// Query returns a query builder for DocumentTemplate.
func (c *DocumentTemplateClient) Query() *DocumentTemplateQuery {
	return &DocumentTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentTemplate entity by its id.
func (c *DocumentTemplateClient) Get(ctx context.Context, id uuid.UUID) (*DocumentTemplate, error) {
	return c.Query().Where(documenttemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentTemplateClient) GetX(ctx context.Context, id uuid.UUID) *DocumentTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DocumentTemplateClient) Hooks() []Hook {
	return c.hooks.DocumentTemplate
}

// Interceptors returns the client interceptors.
func (c *DocumentTemplateClient) Interceptors() []Interceptor {
	return c.inters.DocumentTemplate
}

func (c *DocumentTemplateClient) mutate(ctx context.Context, m *DocumentTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentTemplate mutation op: %q", m.Op())
	}
}

// FilingRuleClient is a client for the FilingRule schema.
type FilingRuleClient struct {
	config
}

// NewFilingRuleClient returns a client for the FilingRule from the given config.
func NewFilingRuleClient(c config) *FilingRuleClient {
	return &FilingRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `filingrule.Hooks(f(g(h())))`.
func (c *FilingRuleClient) Use(hooks ...Hook) {
	c.hooks.FilingRule = append(c.hooks.FilingRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `filingrule.Intercept(f(g(h())))`.
func (c *FilingRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.FilingRule = append(c.inters.FilingRule, interceptors...)
}

// Create returns a builder for creating a FilingRule entity.
func (c *FilingRuleClient) Create() *FilingRuleCreate {
	mutation := newFilingRuleMutation(c.config, OpCreate)
	return &FilingRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FilingRule entities.
func (c *FilingRuleClient) CreateBulk(builders ...*FilingRuleCreate) *FilingRuleCreateBulk {
	return &FilingRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FilingRuleClient) MapCreateBulk(slice any, setFunc func(*FilingRuleCreate, int)) *FilingRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FilingRuleCreateBulk{err: fmt.Errorf("calling to FilingRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FilingRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FilingRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FilingRule.
func (c *FilingRuleClient) Update() *FilingRuleUpdate {
	mutation := newFilingRuleMutation(c.config, OpUpdate)
	return &FilingRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FilingRuleClient) UpdateOne(_m *FilingRule) *FilingRuleUpdateOne {
	mutation := newFilingRuleMutation(c.config, OpUpdateOne, withFilingRule(_m))
	return &FilingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FilingRuleClient) UpdateOneID(id uuid.UUID) *FilingRuleUpdateOne {
	mutation := newFilingRuleMutation(c.config, OpUpdateOne, withFilingRuleID(id))
	return &FilingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FilingRule.
func (c *FilingRuleClient) Delete() *FilingRuleDelete {
	mutation := newFilingRuleMutation(c.config, OpDelete)
	return &FilingRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FilingRuleClient) DeleteOne(_m *FilingRule) *FilingRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FilingRuleClient) DeleteOneID(id uuid.UUID) *FilingRuleDeleteOne {
	builder := c.Delete().Where(filingrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FilingRuleDeleteOne{builder}
}

// Query returns a query builder for FilingRule.
func (c *FilingRuleClient) Query() *FilingRuleQuery {
	return &FilingRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFilingRule},
		inters: c.Interceptors(),
	}
}

// Get returns a FilingRule entity by its id.
func (c *FilingRuleClient) Get(ctx context.Context, id uuid.UUID) (*FilingRule, error) {
	return c.Query().Where(filingrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FilingRuleClient) GetX(ctx context.Context, id uuid.UUID) *FilingRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FilingRuleClient) Hooks() []Hook {
	return c.hooks.FilingRule
}

// Interceptors returns the client interceptors.
func (c *FilingRuleClient) Interceptors() []Interceptor {
	return c.inters.FilingRule
}

func (c *FilingRuleClient) mutate(ctx context.Context, m *FilingRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FilingRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FilingRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FilingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FilingRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FilingRule mutation op: %q", m.Op())
	}
}

// ProcessJobClient is a client for the ProcessJob schema.
type ProcessJobClient struct {
	config
}

// NewProcessJobClient returns a client for the ProcessJob from the given config.
func NewProcessJobClient(c config) *ProcessJobClient {
	return &ProcessJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processjob.Hooks(f(g(h())))`.
func (c *ProcessJobClient) Use(hooks ...Hook) {
	c.hooks.ProcessJob = append(c.hooks.ProcessJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processjob.Intercept(f(g(h())))`.
func (c *ProcessJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessJob = append(c.inters.ProcessJob, interceptors...)
}

// Create returns a builder for creating a ProcessJob entity.
func (c *ProcessJobClient) Create() *ProcessJobCreate {
	mutation := newProcessJobMutation(c.config, OpCreate)
	return &ProcessJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessJob entities.
func (c *ProcessJobClient) CreateBulk(builders ...*ProcessJobCreate) *ProcessJobCreateBulk {
	return &ProcessJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessJobClient) MapCreateBulk(slice any, setFunc func(*ProcessJobCreate, int)) *ProcessJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessJobCreateBulk{err: fmt.Errorf("calling to ProcessJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessJob.
func (c *ProcessJobClient) Update() *ProcessJobUpdate {
	mutation := newProcessJobMutation(c.config, OpUpdate)
	return &ProcessJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessJobClient) UpdateOne(_m *ProcessJob) *ProcessJobUpdateOne {
	mutation := newProcessJobMutation(c.config, OpUpdateOne, withProcessJob(_m))
	return &ProcessJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessJobClient) UpdateOneID(id uuid.UUID) *ProcessJobUpdateOne {
	mutation := newProcessJobMutation(c.config, OpUpdateOne, withProcessJobID(id))
	return &ProcessJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessJob.
func (c *ProcessJobClient) Delete() *ProcessJobDelete {
	mutation := newProcessJobMutation(c.config, OpDelete)
	return &ProcessJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessJobClient) DeleteOne(_m *ProcessJob) *ProcessJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessJobClient) DeleteOneID(id uuid.UUID) *ProcessJobDeleteOne {
	builder := c.Delete().Where(processjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessJobDeleteOne{builder}
}

// Query returns a query builder for ProcessJob.
func (c *ProcessJobClient) Query() *ProcessJobQuery {
	return &ProcessJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessJob entity by its id.
func (c *ProcessJobClient) Get(ctx context.Context, id uuid.UUID) (*ProcessJob, error) {
	return c.Query().Where(processjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessJobClient) GetX(ctx context.Context, id uuid.UUID) *ProcessJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ProcessJob.
func (c *ProcessJobClient) QueryDocument(_m *ProcessJob) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processjob.Table, processjob.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processjob.DocumentTable, processjob.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessJobClient) Hooks() []Hook {
	return c.hooks.ProcessJob
}

// Interceptors returns the client interceptors.
func (c *ProcessJobClient) Interceptors() []Interceptor {
	return c.inters.ProcessJob
}

func (c *ProcessJobClient) mutate(ctx context.Context, m *ProcessJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Document, DocumentTemplate, FilingRule, ProcessJob []ent.Hook
	}
	inters struct {
		Document, DocumentTemplate, FilingRule, ProcessJob []ent.Interceptor
	}
)
