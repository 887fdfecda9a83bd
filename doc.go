// Package mongokit manages the lifecycle of a single logical MongoDB
// connection: open, authenticate, close, collection creation and dropping,
// and index creation, as a thin adapter over the official driver.
//
// A Manager is constructed from an environment-driven Config without
// performing any network I/O; the driver client options and database binding
// are built once and reused across reconnects. Operations open the
// connection on demand and follow a teardown-on-failure contract: no
// operation that opens the connection leaves it open after reporting
// failure. All wire-protocol, authentication, and indexing mechanics belong
// to the wrapped driver.
//
// Key behaviors:
//   - Construction is pure object setup; Open dials, pings, and
//     authenticates, with a configurable retry loop on the transport step
//   - Close is idempotent and always safe to call
//   - Anonymous access (no user, no password) skips authentication entirely
//   - CreateCollection ensures the collection and its indexes, closing the
//     connection before surfacing any failure
//   - Index application is fail-fast: the first failing index aborts the
//     rest of the batch, with no rollback of indexes already created
//   - A per-instance mutex serializes operations, so concurrent schema
//     calls on one Manager cannot interleave open/close brackets
//
// # Usage
//
//	import (
//	    "context"
//	    "log"
//
//	    "go.mongodb.org/mongo-driver/v2/bson"
//	    "go.mongodb.org/mongo-driver/v2/mongo"
//	    "go.mongodb.org/mongo-driver/v2/mongo/options"
//
//	    "github.com/dmitrymomot/mongokit"
//	    "github.com/dmitrymomot/mongokit/pkg/config"
//	)
//
//	func main() {
//	    ctx := context.Background()
//
//	    manager, err := mongokit.New(config.MustLoad[mongokit.Config]())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer manager.Close(ctx)
//
//	    users, err := manager.CreateCollection(ctx, "users", mongokit.CollectionSpec{
//	        Indexes: []mongo.IndexModel{{
//	            Keys:    bson.D{{Key: "email", Value: 1}},
//	            Options: options.Index().SetUnique(true),
//	        }},
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = users
//	}
//
// For deferred results with optional completion callbacks, every operation
// has an *Async variant returning a Future:
//
//	manager.DropCollectionAsync(ctx, "sessions", func(err error) {
//	    if err != nil {
//	        log.Println("drop failed:", err)
//	    }
//	})
package mongokit
