package mongokit

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// driverOps is the set of driver calls the Manager performs. It exists as a
// seam so every lifecycle path can be exercised in tests without a running
// server.
type driverOps struct {
	connect             func(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error)
	ping                func(ctx context.Context, client *mongo.Client) error
	disconnect          func(ctx context.Context, client *mongo.Client) error
	authenticate        func(ctx context.Context, client *mongo.Client, database string) error
	createCollection    func(ctx context.Context, client *mongo.Client, database, name string) error
	dropCollection      func(ctx context.Context, client *mongo.Client, database, name string) error
	createIndex         func(ctx context.Context, client *mongo.Client, database, collection string, model mongo.IndexModel) (string, error)
	listCollectionNames func(ctx context.Context, client *mongo.Client, database string, filter any) ([]string, error)
}

func defaultDriverOps() driverOps {
	return driverOps{
		connect: func(_ context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
			return mongo.Connect(opts)
		},
		ping: func(ctx context.Context, client *mongo.Client) error {
			return client.Ping(ctx, readpref.Primary())
		},
		disconnect: func(ctx context.Context, client *mongo.Client) error {
			return client.Disconnect(ctx)
		},
		// Credentials travel in the connection URI; running a command against
		// the target database forces the handshake that rejects bad ones.
		authenticate: func(ctx context.Context, client *mongo.Client, database string) error {
			return client.Database(database).RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
		},
		createCollection: func(ctx context.Context, client *mongo.Client, database, name string) error {
			return client.Database(database).CreateCollection(ctx, name)
		},
		dropCollection: func(ctx context.Context, client *mongo.Client, database, name string) error {
			return client.Database(database).Collection(name).Drop(ctx)
		},
		createIndex: func(ctx context.Context, client *mongo.Client, database, collection string, model mongo.IndexModel) (string, error) {
			return client.Database(database).Collection(collection).Indexes().CreateOne(ctx, model)
		},
		listCollectionNames: func(ctx context.Context, client *mongo.Client, database string, filter any) ([]string, error) {
			return client.Database(database).ListCollectionNames(ctx, filter)
		},
	}
}
