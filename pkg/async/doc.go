// Package async provides a minimal Future for dispatching CPU-bound work
// off the calling goroutine.
//
// Its wired consumer is the token decode pipeline: signature verification
// is the only CPU-bound step of a parse, and running it through Async
// keeps it off the request-serving goroutine under cooperative load.
//
//	fut := async.Async(ctx, header, decodeFn)
//	decoded, err := fut.Await()
//
// Work started through Async is not cancellable mid-flight; a caller that
// stops waiting simply discards the result. A context that is already
// done short-circuits before the work function runs.
package async
