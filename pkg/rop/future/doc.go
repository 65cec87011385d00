// Package future provides the single-resolution pending value used by the
// chain package: a Future[T] wrapping an eventual rop.Result[T].
//
// Highlights:
// - New/Of/Go: create a live, settled, or goroutine-backed future
// - Settle: resolve once, first call wins
// - Await/AwaitWithTimeout/TryResult/Done: read the eventual result
// - All/Any/Race: fan-in over several futures
//
// A future is one producer, many readers. There is no cancellation: once the
// producing work starts it runs to completion, readers can only ignore it.
package future
