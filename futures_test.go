package mongokit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestOpenAsync_ResolvesAndNotifiesCallback(t *testing.T) {
	t.Parallel()

	fake := &fakeOps{}
	m := newTestManager(t, baseConfig(), fake)

	notified := make(chan error, 1)
	future := m.OpenAsync(context.Background(), func(err error) {
		notified <- err
	})

	_, err := future.Await()
	require.NoError(t, err)
	assert.True(t, m.IsOpen())

	select {
	case cbErr := <-notified:
		assert.NoError(t, cbErr)
	case <-time.After(time.Second):
		t.Fatal("completion callback was not invoked")
	}
}

func TestCreateCollectionAsync_DeliversHandle(t *testing.T) {
	t.Parallel()

	fake := &fakeOps{}
	m := newTestManager(t, baseConfig(), fake)

	type outcome struct {
		coll *mongo.Collection
		err  error
	}
	notified := make(chan outcome, 1)

	future := m.CreateCollectionAsync(context.Background(), "users", CollectionSpec{
		Indexes: sampleIndexes(1),
	}, func(coll *mongo.Collection, err error) {
		notified <- outcome{coll: coll, err: err}
	})

	coll, err := future.Await()
	require.NoError(t, err)
	require.NotNil(t, coll)
	assert.Equal(t, "users", coll.Name())

	got := <-notified
	require.NoError(t, got.err)
	assert.Equal(t, "users", got.coll.Name())
}

func TestDropCollectionAsync_PropagatesFailure(t *testing.T) {
	t.Parallel()

	driverErr := errors.New("ns not found")
	fake := &fakeOps{dropErr: driverErr}
	m := newTestManager(t, baseConfig(), fake)

	notified := make(chan error, 1)
	future := m.DropCollectionAsync(context.Background(), "users", func(err error) {
		notified <- err
	})

	_, err := future.Await()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDropCollection)

	cbErr := <-notified
	assert.ErrorIs(t, cbErr, driverErr)
	assert.False(t, m.IsOpen())
}

func TestEnsureIndexesAsync_FailFast(t *testing.T) {
	t.Parallel()

	fake := &fakeOps{indexErrAt: 2, indexErr: errors.New("index build failed")}
	m := newTestManager(t, baseConfig(), fake)
	require.NoError(t, m.Open(context.Background()))

	future := m.EnsureIndexesAsync(context.Background(), "users", sampleIndexes(3))

	_, err := future.Await()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCreateIndex)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, 2, fake.indexCalls)
}

func TestCloseAsync_AndAuthenticateAsync(t *testing.T) {
	t.Parallel()

	fake := &fakeOps{}
	m := newTestManager(t, baseConfig(), fake)
	require.NoError(t, m.Open(context.Background()))

	_, err := m.AuthenticateAsync(context.Background()).Await()
	require.NoError(t, err)

	_, err = m.CloseAsync(context.Background()).Await()
	require.NoError(t, err)
	assert.False(t, m.IsOpen())
}
