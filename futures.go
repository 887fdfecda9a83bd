package mongokit

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/mongokit/pkg/async"
)

// The *Async variants run their synchronous counterparts in a goroutine and
// return a Future for the outcome. Optional completion callbacks are invoked
// with the operation error (and result, where one exists) once the
// operation finishes. The core stays synchronous; this file is only an
// adapter layer.

// goErr adapts an error-only operation to a Future with error callbacks.
func goErr(ctx context.Context, op func(context.Context) error, callbacks []func(error)) *async.Future[struct{}] {
	f := async.Go(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (struct{}, error) {
		return struct{}{}, op(ctx)
	})

	for _, cb := range callbacks {
		if cb == nil {
			continue
		}

		f.Then(func(_ struct{}, err error) { cb(err) })
	}

	return f
}

// OpenAsync opens the connection and authenticates in the background.
func (m *Manager) OpenAsync(ctx context.Context, callbacks ...func(error)) *async.Future[struct{}] {
	return goErr(ctx, m.Open, callbacks)
}

// CloseAsync releases the connection in the background.
func (m *Manager) CloseAsync(ctx context.Context, callbacks ...func(error)) *async.Future[struct{}] {
	return goErr(ctx, m.Close, callbacks)
}

// AuthenticateAsync verifies credentials in the background.
func (m *Manager) AuthenticateAsync(ctx context.Context, callbacks ...func(error)) *async.Future[struct{}] {
	return goErr(ctx, m.Authenticate, callbacks)
}

// DropCollectionAsync drops the named collection in the background.
func (m *Manager) DropCollectionAsync(ctx context.Context, name string, callbacks ...func(error)) *async.Future[struct{}] {
	return goErr(ctx, func(ctx context.Context) error {
		return m.DropCollection(ctx, name)
	}, callbacks)
}

// EnsureIndexesAsync applies the indexes in the background.
func (m *Manager) EnsureIndexesAsync(ctx context.Context, collection string, indexes []mongo.IndexModel, callbacks ...func(error)) *async.Future[struct{}] {
	return goErr(ctx, func(ctx context.Context) error {
		return m.EnsureIndexes(ctx, collection, indexes...)
	}, callbacks)
}

// CreateCollectionAsync creates the collection and its indexes in the
// background. Callbacks receive the collection handle on success.
func (m *Manager) CreateCollectionAsync(ctx context.Context, name string, spec CollectionSpec, callbacks ...func(*mongo.Collection, error)) *async.Future[*mongo.Collection] {
	f := async.Go(ctx, name, func(ctx context.Context, name string) (*mongo.Collection, error) {
		return m.CreateCollection(ctx, name, spec)
	})

	for _, cb := range callbacks {
		if cb != nil {
			f.Then(cb)
		}
	}

	return f
}
