package mongokit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/writeconcern"

	"github.com/dmitrymomot/mongokit/pkg/logger"
)

// CollectionSpec describes a collection to create: the set of indexes it
// must carry. Consumed during CreateCollection, not retained.
type CollectionSpec struct {
	Indexes []mongo.IndexModel
}

// Manager owns a single logical MongoDB connection and exposes lifecycle and
// schema operations over it. The client options and database name are built
// exactly once at construction and reused for the manager's entire lifetime;
// Open and Close only toggle the underlying transport state.
//
// A per-instance mutex serializes all operations, so concurrent schema
// operations on one Manager cannot race each other's open/close bracket.
type Manager struct {
	cfg        Config
	clientOpts *options.ClientOptions
	database   string
	ops        driverOps
	log        *slog.Logger

	mu     sync.Mutex
	client *mongo.Client
}

// Option customizes a Manager at construction.
type Option func(*Manager)

// WithLogger attaches a structured logger. Without it the manager is silent.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// New validates cfg and builds a Manager. Construction performs no network
// I/O: it only assembles the driver client options (URI, write concern,
// document decoding mode, pool limits) that every subsequent Open reuses.
func New(cfg Config, opts ...Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientOpts := options.Client().
		ApplyURI(buildURI(cfg)).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime)

	if cfg.Safe {
		clientOpts.SetWriteConcern(writeconcern.W1())
	} else {
		clientOpts.SetWriteConcern(writeconcern.Unacknowledged())
	}

	if !cfg.NativeParser {
		clientOpts.SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	}

	m := &Manager{
		cfg:        cfg,
		clientOpts: clientOpts,
		database:   cfg.Database,
		ops:        defaultDriverOps(),
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	return m, nil
}

// Open establishes the connection and authenticates. It retries the
// transport step up to RetryAttempts times with RetryInterval between
// attempts; credential rejections are not retried. Calling Open on an
// already open manager is a no-op. After Close, Open reconnects using the
// options built at construction.
func (m *Manager) Open(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.openLocked(ctx)
}

func (m *Manager) openLocked(ctx context.Context) error {
	if m.client != nil {
		return nil
	}

	opID := uuid.NewString()

	attempts := m.cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errors.Join(ErrFailedToConnect, ctx.Err())
			case <-time.After(m.cfg.RetryInterval):
			}
		}

		client, err := m.ops.connect(ctx, m.clientOpts)
		if err != nil {
			lastErr = errors.Join(ErrFailedToConnect, err)
			m.log.WarnContext(ctx, "mongo connect attempt failed",
				slog.String("op_id", opID), slog.Int("attempt", attempt+1), logger.Error(err))

			continue
		}

		if err := m.ops.ping(ctx, client); err != nil {
			if derr := m.ops.disconnect(ctx, client); derr != nil {
				m.log.WarnContext(ctx, "failed to disconnect after ping failure",
					slog.String("op_id", opID), logger.Error(derr))
			}

			lastErr = errors.Join(ErrPingFailed, err)
			m.log.WarnContext(ctx, "mongo ping attempt failed",
				slog.String("op_id", opID), slog.Int("attempt", attempt+1), logger.Error(err))

			continue
		}

		m.client = client

		break
	}

	if m.client == nil {
		return lastErr
	}

	if err := m.authenticateLocked(ctx); err != nil {
		return err
	}

	m.log.DebugContext(ctx, "mongo connection opened",
		slog.String("op_id", opID), slog.String("database", m.database))

	return nil
}

// Authenticate verifies the configured credentials against the server. With
// no user and no password configured it succeeds immediately without any
// driver call. On rejection the connection is force-closed before the error
// is returned, with the driver's error joined to ErrAuthenticationFailed.
func (m *Manager) Authenticate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.authenticateLocked(ctx)
}

func (m *Manager) authenticateLocked(ctx context.Context) error {
	if !m.cfg.hasCredentials() {
		return nil
	}

	if m.client == nil {
		return ErrNotConnected
	}

	if err := m.ops.authenticate(ctx, m.client, m.database); err != nil {
		m.log.WarnContext(ctx, "mongo authentication failed",
			slog.String("database", m.database), logger.Error(err))
		m.teardownLocked(ctx)

		return errors.Join(ErrAuthenticationFailed, err)
	}

	return nil
}

// Close releases the connection. It is idempotent: closing an already closed
// manager returns nil. The client reference is cleared even when the driver
// reports a disconnect error, so the manager never retries operations on a
// half-closed client.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.closeLocked(ctx)
}

func (m *Manager) closeLocked(ctx context.Context) error {
	if m.client == nil {
		return nil
	}

	err := m.ops.disconnect(ctx, m.client)
	m.client = nil

	if err != nil {
		return errors.Join(ErrDisconnect, err)
	}

	m.log.DebugContext(ctx, "mongo connection closed", slog.String("database", m.database))

	return nil
}

// teardownLocked closes the connection after a failed operation. The close
// error, if any, is logged rather than returned so it never masks the
// original failure.
func (m *Manager) teardownLocked(ctx context.Context) {
	if err := m.closeLocked(ctx); err != nil {
		m.log.WarnContext(ctx, "failed to close mongo connection after error", logger.Error(err))
	}
}

// CreateCollection opens the connection if needed, creates the named
// collection unless it already exists, and ensures every index in spec.
// If any step fails the connection is closed before the error is returned:
// no operation that opens the connection leaves it open after reporting
// failure. On success the collection handle is returned.
func (m *Manager) CreateCollection(ctx context.Context, name string, spec CollectionSpec) (*mongo.Collection, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyCollectionName
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.openLocked(ctx); err != nil {
		return nil, err
	}

	opID := uuid.NewString()
	m.log.DebugContext(ctx, "creating mongo collection",
		slog.String("op_id", opID), slog.String("collection", name))

	exists, err := m.hasCollectionLocked(ctx, name)
	if err != nil {
		m.teardownLocked(ctx)

		return nil, errors.Join(ErrCreateCollection, err)
	}

	if !exists {
		if err := m.ops.createCollection(ctx, m.client, m.database, name); err != nil {
			m.teardownLocked(ctx)

			return nil, errors.Join(ErrCreateCollection, err)
		}
	}

	if err := m.ensureIndexesLocked(ctx, name, spec.Indexes); err != nil {
		m.teardownLocked(ctx)

		return nil, err
	}

	return m.client.Database(m.database).Collection(name), nil
}

// DropCollection opens the connection if needed and drops the named
// collection. Success resolves cleanly; on a driver error the connection is
// closed before the error is returned.
func (m *Manager) DropCollection(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyCollectionName
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.openLocked(ctx); err != nil {
		return err
	}

	opID := uuid.NewString()
	m.log.DebugContext(ctx, "dropping mongo collection",
		slog.String("op_id", opID), slog.String("collection", name))

	if err := m.ops.dropCollection(ctx, m.client, m.database, name); err != nil {
		m.teardownLocked(ctx)

		return errors.Join(ErrDropCollection, err)
	}

	return nil
}

// EnsureIndexes applies each index to the collection in order, failing fast:
// the first error aborts the remaining indexes and is returned; indexes
// already created are not undone. Requires an open connection.
func (m *Manager) EnsureIndexes(ctx context.Context, collection string, indexes ...mongo.IndexModel) error {
	if strings.TrimSpace(collection) == "" {
		return ErrEmptyCollectionName
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return ErrNotConnected
	}

	return m.ensureIndexesLocked(ctx, collection, indexes)
}

func (m *Manager) ensureIndexesLocked(ctx context.Context, collection string, indexes []mongo.IndexModel) error {
	for _, index := range indexes {
		if err := ctx.Err(); err != nil {
			return errors.Join(ErrCreateIndex, err)
		}

		name, err := m.ops.createIndex(ctx, m.client, m.database, collection, index)
		if err != nil {
			return errors.Join(ErrCreateIndex, err)
		}

		m.log.DebugContext(ctx, "ensured mongo index",
			slog.String("collection", collection), slog.String("index", name))
	}

	return nil
}

// HasCollection reports whether the named collection exists, opening the
// connection if needed.
func (m *Manager) HasCollection(ctx context.Context, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, ErrEmptyCollectionName
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.openLocked(ctx); err != nil {
		return false, err
	}

	return m.hasCollectionLocked(ctx, name)
}

func (m *Manager) hasCollectionLocked(ctx context.Context, name string) (bool, error) {
	names, err := m.ops.listCollectionNames(ctx, m.client, m.database, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return false, err
	}

	return len(names) > 0, nil
}

// Ping checks availability of the open connection.
func (m *Manager) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return ErrNotConnected
	}

	if err := m.ops.ping(ctx, m.client); err != nil {
		return errors.Join(ErrPingFailed, err)
	}

	return nil
}

// IsOpen reports whether the manager currently holds an open connection.
func (m *Manager) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.client != nil
}

// Client returns the underlying driver client, or ErrNotConnected when the
// manager is closed.
func (m *Manager) Client() (*mongo.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil, ErrNotConnected
	}

	return m.client, nil
}

// Database returns the database handle bound to the open connection, or
// ErrNotConnected when the manager is closed.
func (m *Manager) Database() (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil, ErrNotConnected
	}

	return m.client.Database(m.database), nil
}
