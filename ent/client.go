// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/priyam/studytrail/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/priyam/studytrail/ent/certificate"
	"github.com/priyam/studytrail/ent/coursesnapshot"
	"github.com/priyam/studytrail/ent/progressrecord"
	"github.com/priyam/studytrail/ent/quizattemptevent"
	"github.com/priyam/studytrail/ent/setting"
	"github.com/priyam/studytrail/ent/syncevent"
	"github.com/priyam/studytrail/ent/syncitem"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Certificate is the client for interacting with the Certificate builders.
	Certificate *CertificateClient
	// CourseSnapshot is the client for interacting with the CourseSnapshot builders.
	CourseSnapshot *CourseSnapshotClient
	// ProgressRecord is the client for interacting with the ProgressRecord builders.
	ProgressRecord *ProgressRecordClient
	// QuizAttemptEvent is the client for interacting with the QuizAttemptEvent builders.
	QuizAttemptEvent *QuizAttemptEventClient
	// Setting is the client for interacting with the Setting builders.
	Setting *SettingClient
	// SyncEvent is the client for interacting with the SyncEvent builders.
	SyncEvent *SyncEventClient
	// SyncItem is the client for interacting with the SyncItem builders.
	SyncItem *SyncItemClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Certificate = NewCertificateClient(c.config)
	c.CourseSnapshot = NewCourseSnapshotClient(c.config)
	c.ProgressRecord = NewProgressRecordClient(c.config)
	c.QuizAttemptEvent = NewQuizAttemptEventClient(c.config)
	c.Setting = NewSettingClient(c.config)
	c.SyncEvent = NewSyncEventClient(c.config)
	c.SyncItem = NewSyncItemClient(c.config)
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
		Certificate:      NewCertificateClient(cfg),
		CourseSnapshot:   NewCourseSnapshotClient(cfg),
		ProgressRecord:   NewProgressRecordClient(cfg),
		QuizAttemptEvent: NewQuizAttemptEventClient(cfg),
		Setting:          NewSettingClient(cfg),
		SyncEvent:        NewSyncEventClient(cfg),
		SyncItem:         NewSyncItemClient(cfg),
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
		Certificate:      NewCertificateClient(cfg),
		CourseSnapshot:   NewCourseSnapshotClient(cfg),
		ProgressRecord:   NewProgressRecordClient(cfg),
		QuizAttemptEvent: NewQuizAttemptEventClient(cfg),
		Setting:          NewSettingClient(cfg),
		SyncEvent:        NewSyncEventClient(cfg),
		SyncItem:         NewSyncItemClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Certificate.
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
		c.Certificate, c.CourseSnapshot, c.ProgressRecord, c.QuizAttemptEvent,
		c.Setting, c.SyncEvent, c.SyncItem,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Certificate, c.CourseSnapshot, c.ProgressRecord, c.QuizAttemptEvent,
		c.Setting, c.SyncEvent, c.SyncItem,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CertificateMutation:
		return c.Certificate.mutate(ctx, m)
	case *CourseSnapshotMutation:
		return c.CourseSnapshot.mutate(ctx, m)
	case *ProgressRecordMutation:
		return c.ProgressRecord.mutate(ctx, m)
	case *QuizAttemptEventMutation:
		return c.QuizAttemptEvent.mutate(ctx, m)
	case *SettingMutation:
		return c.Setting.mutate(ctx, m)
	case *SyncEventMutation:
		return c.SyncEvent.mutate(ctx, m)
	case *SyncItemMutation:
		return c.SyncItem.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CertificateClient is a client for the Certificate schema.
type CertificateClient struct {
	config
}

// NewCertificateClient returns a client for the Certificate from the given config.
func NewCertificateClient(c config) *CertificateClient {
	return &CertificateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `certificate.Hooks(f(g(h())))`.
func (c *CertificateClient) Use(hooks ...Hook) {
	c.hooks.Certificate = append(c.hooks.Certificate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `certificate.Intercept(f(g(h())))`.
func (c *CertificateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Certificate = append(c.inters.Certificate, interceptors...)
}

// Create returns a builder for creating a Certificate entity.
func (c *CertificateClient) Create() *CertificateCreate {
	mutation := newCertificateMutation(c.config, OpCreate)
	return &CertificateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Certificate entities.
func (c *CertificateClient) CreateBulk(builders ...*CertificateCreate) *CertificateCreateBulk {
	return &CertificateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CertificateClient) MapCreateBulk(slice any, setFunc func(*CertificateCreate, int)) *CertificateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CertificateCreateBulk{err: fmt.Errorf("calling to CertificateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CertificateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CertificateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Certificate.
func (c *CertificateClient) Update() *CertificateUpdate {
	mutation := newCertificateMutation(c.config, OpUpdate)
	return &CertificateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CertificateClient) UpdateOne(ce *Certificate) *CertificateUpdateOne {
	mutation := newCertificateMutation(c.config, OpUpdateOne, withCertificate(ce))
	return &CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CertificateClient) UpdateOneID(id int) *CertificateUpdateOne {
	mutation := newCertificateMutation(c.config, OpUpdateOne, withCertificateID(id))
	return &CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Certificate.
func (c *CertificateClient) Delete() *CertificateDelete {
	mutation := newCertificateMutation(c.config, OpDelete)
	return &CertificateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CertificateClient) DeleteOne(ce *Certificate) *CertificateDeleteOne {
	return c.DeleteOneID(ce.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CertificateClient) DeleteOneID(id int) *CertificateDeleteOne {
	builder := c.Delete().Where(certificate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CertificateDeleteOne{builder}
}

// Query returns a query builder for Certificate.
func (c *CertificateClient) Query() *CertificateQuery {
	return &CertificateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCertificate},
		inters: c.Interceptors(),
	}
}

// Get returns a Certificate entity by its id.
func (c *CertificateClient) Get(ctx context.Context, id int) (*Certificate, error) {
	return c.Query().Where(certificate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CertificateClient) GetX(ctx context.Context, id int) *Certificate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CertificateClient) Hooks() []Hook {
	return c.hooks.Certificate
}

// Interceptors returns the client interceptors.
func (c *CertificateClient) Interceptors() []Interceptor {
	return c.inters.Certificate
}

func (c *CertificateClient) mutate(ctx context.Context, m *CertificateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CertificateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CertificateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CertificateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Certificate mutation op: %q", m.Op())
	}
}

// CourseSnapshotClient is a client for the CourseSnapshot schema.
type CourseSnapshotClient struct {
	config
}

// NewCourseSnapshotClient returns a client for the CourseSnapshot from the given config.
func NewCourseSnapshotClient(c config) *CourseSnapshotClient {
	return &CourseSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `coursesnapshot.Hooks(f(g(h())))`.
func (c *CourseSnapshotClient) Use(hooks ...Hook) {
	c.hooks.CourseSnapshot = append(c.hooks.CourseSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `coursesnapshot.Intercept(f(g(h())))`.
func (c *CourseSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.CourseSnapshot = append(c.inters.CourseSnapshot, interceptors...)
}

// Create returns a builder for creating a CourseSnapshot entity.
func (c *CourseSnapshotClient) Create() *CourseSnapshotCreate {
	mutation := newCourseSnapshotMutation(c.config, OpCreate)
	return &CourseSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CourseSnapshot entities.
func (c *CourseSnapshotClient) CreateBulk(builders ...*CourseSnapshotCreate) *CourseSnapshotCreateBulk {
	return &CourseSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseSnapshotClient) MapCreateBulk(slice any, setFunc func(*CourseSnapshotCreate, int)) *CourseSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseSnapshotCreateBulk{err: fmt.Errorf("calling to CourseSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CourseSnapshot.
func (c *CourseSnapshotClient) Update() *CourseSnapshotUpdate {
	mutation := newCourseSnapshotMutation(c.config, OpUpdate)
	return &CourseSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseSnapshotClient) UpdateOne(cs *CourseSnapshot) *CourseSnapshotUpdateOne {
	mutation := newCourseSnapshotMutation(c.config, OpUpdateOne, withCourseSnapshot(cs))
	return &CourseSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseSnapshotClient) UpdateOneID(id int) *CourseSnapshotUpdateOne {
	mutation := newCourseSnapshotMutation(c.config, OpUpdateOne, withCourseSnapshotID(id))
	return &CourseSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CourseSnapshot.
func (c *CourseSnapshotClient) Delete() *CourseSnapshotDelete {
	mutation := newCourseSnapshotMutation(c.config, OpDelete)
	return &CourseSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseSnapshotClient) DeleteOne(cs *CourseSnapshot) *CourseSnapshotDeleteOne {
	return c.DeleteOneID(cs.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseSnapshotClient) DeleteOneID(id int) *CourseSnapshotDeleteOne {
	builder := c.Delete().Where(coursesnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseSnapshotDeleteOne{builder}
}

// Query returns a query builder for CourseSnapshot.
func (c *CourseSnapshotClient) Query() *CourseSnapshotQuery {
	return &CourseSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourseSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a CourseSnapshot entity by its id.
func (c *CourseSnapshotClient) Get(ctx context.Context, id int) (*CourseSnapshot, error) {
	return c.Query().Where(coursesnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseSnapshotClient) GetX(ctx context.Context, id int) *CourseSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CourseSnapshotClient) Hooks() []Hook {
	return c.hooks.CourseSnapshot
}

// Interceptors returns the client interceptors.
func (c *CourseSnapshotClient) Interceptors() []Interceptor {
	return c.inters.CourseSnapshot
}

func (c *CourseSnapshotClient) mutate(ctx context.Context, m *CourseSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CourseSnapshot mutation op: %q", m.Op())
	}
}

// ProgressRecordClient is a client for the ProgressRecord schema.
type ProgressRecordClient struct {
	config
}

// NewProgressRecordClient returns a client for the ProgressRecord from the given config.
func NewProgressRecordClient(c config) *ProgressRecordClient {
	return &ProgressRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progressrecord.Hooks(f(g(h())))`.
func (c *ProgressRecordClient) Use(hooks ...Hook) {
	c.hooks.ProgressRecord = append(c.hooks.ProgressRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progressrecord.Intercept(f(g(h())))`.
func (c *ProgressRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProgressRecord = append(c.inters.ProgressRecord, interceptors...)
}

// Create returns a builder for creating a ProgressRecord entity.
func (c *ProgressRecordClient) Create() *ProgressRecordCreate {
	mutation := newProgressRecordMutation(c.config, OpCreate)
	return &ProgressRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProgressRecord entities.
func (c *ProgressRecordClient) CreateBulk(builders ...*ProgressRecordCreate) *ProgressRecordCreateBulk {
	return &ProgressRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressRecordClient) MapCreateBulk(slice any, setFunc func(*ProgressRecordCreate, int)) *ProgressRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressRecordCreateBulk{err: fmt.Errorf("calling to ProgressRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProgressRecord.
func (c *ProgressRecordClient) Update() *ProgressRecordUpdate {
	mutation := newProgressRecordMutation(c.config, OpUpdate)
	return &ProgressRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressRecordClient) UpdateOne(pr *ProgressRecord) *ProgressRecordUpdateOne {
	mutation := newProgressRecordMutation(c.config, OpUpdateOne, withProgressRecord(pr))
	return &ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressRecordClient) UpdateOneID(id int) *ProgressRecordUpdateOne {
	mutation := newProgressRecordMutation(c.config, OpUpdateOne, withProgressRecordID(id))
	return &ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProgressRecord.
func (c *ProgressRecordClient) Delete() *ProgressRecordDelete {
	mutation := newProgressRecordMutation(c.config, OpDelete)
	return &ProgressRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressRecordClient) DeleteOne(pr *ProgressRecord) *ProgressRecordDeleteOne {
	return c.DeleteOneID(pr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressRecordClient) DeleteOneID(id int) *ProgressRecordDeleteOne {
	builder := c.Delete().Where(progressrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressRecordDeleteOne{builder}
}

// Query returns a query builder for ProgressRecord.
func (c *ProgressRecordClient) Query() *ProgressRecordQuery {
	return &ProgressRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgressRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ProgressRecord entity by its id.
func (c *ProgressRecordClient) Get(ctx context.Context, id int) (*ProgressRecord, error) {
	return c.Query().Where(progressrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressRecordClient) GetX(ctx context.Context, id int) *ProgressRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressRecordClient) Hooks() []Hook {
	return c.hooks.ProgressRecord
}

// Interceptors returns the client interceptors.
func (c *ProgressRecordClient) Interceptors() []Interceptor {
	return c.inters.ProgressRecord
}

func (c *ProgressRecordClient) mutate(ctx context.Context, m *ProgressRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProgressRecord mutation op: %q", m.Op())
	}
}

// QuizAttemptEventClient is a client for the QuizAttemptEvent schema.
type QuizAttemptEventClient struct {
	config
}

// NewQuizAttemptEventClient returns a client for the QuizAttemptEvent from the given config.
func NewQuizAttemptEventClient(c config) *QuizAttemptEventClient {
	return &QuizAttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizattemptevent.Hooks(f(g(h())))`.
func (c *QuizAttemptEventClient) Use(hooks ...Hook) {
	c.hooks.QuizAttemptEvent = append(c.hooks.QuizAttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizattemptevent.Intercept(f(g(h())))`.
func (c *QuizAttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizAttemptEvent = append(c.inters.QuizAttemptEvent, interceptors...)
}

// Create returns a builder for creating a QuizAttemptEvent entity.
func (c *QuizAttemptEventClient) Create() *QuizAttemptEventCreate {
	mutation := newQuizAttemptEventMutation(c.config, OpCreate)
	return &QuizAttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizAttemptEvent entities.
func (c *QuizAttemptEventClient) CreateBulk(builders ...*QuizAttemptEventCreate) *QuizAttemptEventCreateBulk {
	return &QuizAttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizAttemptEventClient) MapCreateBulk(slice any, setFunc func(*QuizAttemptEventCreate, int)) *QuizAttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizAttemptEventCreateBulk{err: fmt.Errorf("calling to QuizAttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizAttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizAttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizAttemptEvent.
func (c *QuizAttemptEventClient) Update() *QuizAttemptEventUpdate {
	mutation := newQuizAttemptEventMutation(c.config, OpUpdate)
	return &QuizAttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizAttemptEventClient) UpdateOne(qae *QuizAttemptEvent) *QuizAttemptEventUpdateOne {
	mutation := newQuizAttemptEventMutation(c.config, OpUpdateOne, withQuizAttemptEvent(qae))
	return &QuizAttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizAttemptEventClient) UpdateOneID(id int) *QuizAttemptEventUpdateOne {
	mutation := newQuizAttemptEventMutation(c.config, OpUpdateOne, withQuizAttemptEventID(id))
	return &QuizAttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizAttemptEvent.
func (c *QuizAttemptEventClient) Delete() *QuizAttemptEventDelete {
	mutation := newQuizAttemptEventMutation(c.config, OpDelete)
	return &QuizAttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizAttemptEventClient) DeleteOne(qae *QuizAttemptEvent) *QuizAttemptEventDeleteOne {
	return c.DeleteOneID(qae.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizAttemptEventClient) DeleteOneID(id int) *QuizAttemptEventDeleteOne {
	builder := c.Delete().Where(quizattemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizAttemptEventDeleteOne{builder}
}

// Query returns a query builder for QuizAttemptEvent.
func (c *QuizAttemptEventClient) Query() *QuizAttemptEventQuery {
	return &QuizAttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizAttemptEvent entity by its id.
func (c *QuizAttemptEventClient) Get(ctx context.Context, id int) (*QuizAttemptEvent, error) {
	return c.Query().Where(quizattemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizAttemptEventClient) GetX(ctx context.Context, id int) *QuizAttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizAttemptEventClient) Hooks() []Hook {
	return c.hooks.QuizAttemptEvent
}

// Interceptors returns the client interceptors.
func (c *QuizAttemptEventClient) Interceptors() []Interceptor {
	return c.inters.QuizAttemptEvent
}

func (c *QuizAttemptEventClient) mutate(ctx context.Context, m *QuizAttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizAttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizAttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizAttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizAttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizAttemptEvent mutation op: %q", m.Op())
	}
}

// SettingClient is a client for the Setting schema.
type SettingClient struct {
	config
}

// NewSettingClient returns a client for the Setting from the given config.
func NewSettingClient(c config) *SettingClient {
	return &SettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `setting.Hooks(f(g(h())))`.
func (c *SettingClient) Use(hooks ...Hook) {
	c.hooks.Setting = append(c.hooks.Setting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `setting.Intercept(f(g(h())))`.
func (c *SettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Setting = append(c.inters.Setting, interceptors...)
}

// Create returns a builder for creating a Setting entity.
func (c *SettingClient) Create() *SettingCreate {
	mutation := newSettingMutation(c.config, OpCreate)
	return &SettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Setting entities.
func (c *SettingClient) CreateBulk(builders ...*SettingCreate) *SettingCreateBulk {
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettingClient) MapCreateBulk(slice any, setFunc func(*SettingCreate, int)) *SettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettingCreateBulk{err: fmt.Errorf("calling to SettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Setting.
func (c *SettingClient) Update() *SettingUpdate {
	mutation := newSettingMutation(c.config, OpUpdate)
	return &SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettingClient) UpdateOne(s *Setting) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSetting(s))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettingClient) UpdateOneID(id int) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSettingID(id))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Setting.
func (c *SettingClient) Delete() *SettingDelete {
	mutation := newSettingMutation(c.config, OpDelete)
	return &SettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettingClient) DeleteOne(s *Setting) *SettingDeleteOne {
	return c.DeleteOneID(s.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettingClient) DeleteOneID(id int) *SettingDeleteOne {
	builder := c.Delete().Where(setting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettingDeleteOne{builder}
}

// Query returns a query builder for Setting.
func (c *SettingClient) Query() *SettingQuery {
	return &SettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a Setting entity by its id.
func (c *SettingClient) Get(ctx context.Context, id int) (*Setting, error) {
	return c.Query().Where(setting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettingClient) GetX(ctx context.Context, id int) *Setting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SettingClient) Hooks() []Hook {
	return c.hooks.Setting
}

// Interceptors returns the client interceptors.
func (c *SettingClient) Interceptors() []Interceptor {
	return c.inters.Setting
}

func (c *SettingClient) mutate(ctx context.Context, m *SettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Setting mutation op: %q", m.Op())
	}
}

// SyncEventClient is a client for the SyncEvent schema.
type SyncEventClient struct {
	config
}

// NewSyncEventClient returns a client for the SyncEvent from the given config.
func NewSyncEventClient(c config) *SyncEventClient {
	return &SyncEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `syncevent.Hooks(f(g(h())))`.
func (c *SyncEventClient) Use(hooks ...Hook) {
	c.hooks.SyncEvent = append(c.hooks.SyncEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `syncevent.Intercept(f(g(h())))`.
func (c *SyncEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SyncEvent = append(c.inters.SyncEvent, interceptors...)
}

// Create returns a builder for creating a SyncEvent entity.
func (c *SyncEventClient) Create() *SyncEventCreate {
	mutation := newSyncEventMutation(c.config, OpCreate)
	return &SyncEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SyncEvent entities.
func (c *SyncEventClient) CreateBulk(builders ...*SyncEventCreate) *SyncEventCreateBulk {
	return &SyncEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SyncEventClient) MapCreateBulk(slice any, setFunc func(*SyncEventCreate, int)) *SyncEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SyncEventCreateBulk{err: fmt.Errorf("calling to SyncEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SyncEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SyncEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SyncEvent.
func (c *SyncEventClient) Update() *SyncEventUpdate {
	mutation := newSyncEventMutation(c.config, OpUpdate)
	return &SyncEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SyncEventClient) UpdateOne(se *SyncEvent) *SyncEventUpdateOne {
	mutation := newSyncEventMutation(c.config, OpUpdateOne, withSyncEvent(se))
	return &SyncEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SyncEventClient) UpdateOneID(id int) *SyncEventUpdateOne {
	mutation := newSyncEventMutation(c.config, OpUpdateOne, withSyncEventID(id))
	return &SyncEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SyncEvent.
func (c *SyncEventClient) Delete() *SyncEventDelete {
	mutation := newSyncEventMutation(c.config, OpDelete)
	return &SyncEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SyncEventClient) DeleteOne(se *SyncEvent) *SyncEventDeleteOne {
	return c.DeleteOneID(se.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SyncEventClient) DeleteOneID(id int) *SyncEventDeleteOne {
	builder := c.Delete().Where(syncevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SyncEventDeleteOne{builder}
}

// Query returns a query builder for SyncEvent.
func (c *SyncEventClient) Query() *SyncEventQuery {
	return &SyncEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSyncEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SyncEvent entity by its id.
func (c *SyncEventClient) Get(ctx context.Context, id int) (*SyncEvent, error) {
	return c.Query().Where(syncevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SyncEventClient) GetX(ctx context.Context, id int) *SyncEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SyncEventClient) Hooks() []Hook {
	return c.hooks.SyncEvent
}

// Interceptors returns the client interceptors.
func (c *SyncEventClient) Interceptors() []Interceptor {
	return c.inters.SyncEvent
}

func (c *SyncEventClient) mutate(ctx context.Context, m *SyncEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SyncEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SyncEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SyncEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SyncEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SyncEvent mutation op: %q", m.Op())
	}
}

// SyncItemClient is a client for the SyncItem schema.
type SyncItemClient struct {
	config
}

// NewSyncItemClient returns a client for the SyncItem from the given config.
func NewSyncItemClient(c config) *SyncItemClient {
	return &SyncItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `syncitem.Hooks(f(g(h())))`.
func (c *SyncItemClient) Use(hooks ...Hook) {
	c.hooks.SyncItem = append(c.hooks.SyncItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `syncitem.Intercept(f(g(h())))`.
func (c *SyncItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.SyncItem = append(c.inters.SyncItem, interceptors...)
}

// Create returns a builder for creating a SyncItem entity.
func (c *SyncItemClient) Create() *SyncItemCreate {
	mutation := newSyncItemMutation(c.config, OpCreate)
	return &SyncItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SyncItem entities.
func (c *SyncItemClient) CreateBulk(builders ...*SyncItemCreate) *SyncItemCreateBulk {
	return &SyncItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SyncItemClient) MapCreateBulk(slice any, setFunc func(*SyncItemCreate, int)) *SyncItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SyncItemCreateBulk{err: fmt.Errorf("calling to SyncItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SyncItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SyncItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SyncItem.
func (c *SyncItemClient) Update() *SyncItemUpdate {
	mutation := newSyncItemMutation(c.config, OpUpdate)
	return &SyncItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SyncItemClient) UpdateOne(si *SyncItem) *SyncItemUpdateOne {
	mutation := newSyncItemMutation(c.config, OpUpdateOne, withSyncItem(si))
	return &SyncItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SyncItemClient) UpdateOneID(id int) *SyncItemUpdateOne {
	mutation := newSyncItemMutation(c.config, OpUpdateOne, withSyncItemID(id))
	return &SyncItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SyncItem.
func (c *SyncItemClient) Delete() *SyncItemDelete {
	mutation := newSyncItemMutation(c.config, OpDelete)
	return &SyncItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SyncItemClient) DeleteOne(si *SyncItem) *SyncItemDeleteOne {
	return c.DeleteOneID(si.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SyncItemClient) DeleteOneID(id int) *SyncItemDeleteOne {
	builder := c.Delete().Where(syncitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SyncItemDeleteOne{builder}
}

// Query returns a query builder for SyncItem.
func (c *SyncItemClient) Query() *SyncItemQuery {
	return &SyncItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSyncItem},
		inters: c.Interceptors(),
	}
}

// Get returns a SyncItem entity by its id.
func (c *SyncItemClient) Get(ctx context.Context, id int) (*SyncItem, error) {
	return c.Query().Where(syncitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SyncItemClient) GetX(ctx context.Context, id int) *SyncItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SyncItemClient) Hooks() []Hook {
	return c.hooks.SyncItem
}

// Interceptors returns the client interceptors.
func (c *SyncItemClient) Interceptors() []Interceptor {
	return c.inters.SyncItem
}

func (c *SyncItemClient) mutate(ctx context.Context, m *SyncItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SyncItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SyncItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SyncItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SyncItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SyncItem mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Certificate, CourseSnapshot, ProgressRecord, QuizAttemptEvent, Setting,
		SyncEvent, SyncItem []ent.Hook
	}
	inters struct {
		Certificate, CourseSnapshot, ProgressRecord, QuizAttemptEvent, Setting,
		SyncEvent, SyncItem []ent.Interceptor
	}
)
