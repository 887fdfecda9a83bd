// Package async provides a small generic Future primitive used to expose
// blocking database operations through a deferred-result interface with
// optional completion callbacks.
//
// Go starts the supplied function in its own goroutine and immediately
// returns a *Future. Callers can block with Await, bound the wait with
// AwaitWithTimeout, poll with IsComplete, or register completion callbacks
// with Then. WaitAll coordinates several futures of the same result type.
//
// If the provided context is cancelled before the function starts, the
// Future completes with the context error and the function is never run.
//
// # Usage
//
//	import (
//	    "context"
//	    "github.com/dmitrymomot/mongokit/pkg/async"
//	)
//
//	func main() {
//	    future := async.Go(context.Background(), "events", func(ctx context.Context, name string) (struct{}, error) {
//	        return struct{}{}, dropCollection(ctx, name)
//	    })
//
//	    future.Then(func(_ struct{}, err error) {
//	        if err != nil {
//	            log.Println("drop failed:", err)
//	        }
//	    })
//
//	    // ... or block until finished:
//	    if _, err := future.Await(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package async
