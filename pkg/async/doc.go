// Package async provides a small generic Future type used to bridge asynchronous
// computations into blocking call sites.
//
// Go starts a function in its own goroutine and returns a *Future immediately.
// The caller waits with Await, or with AwaitContext when it must stop waiting once
// a context is done. Resolved and Rejected build futures that are already complete,
// which is handy when a function sometimes has its answer at hand and sometimes has
// to go and fetch it.
//
// # Usage
//
//	f := async.Go(ctx, func(ctx context.Context) (bool, error) {
//	    return store.EmailTaken(ctx, email)
//	})
//	taken, err := f.AwaitContext(ctx)
//
// # Error Handling
//
// The future carries the error returned by the computation. A panic inside the
// computation is recovered and reported as ErrPanicked, so a misbehaving callback
// never takes the process down with it.
package async
