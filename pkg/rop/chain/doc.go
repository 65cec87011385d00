// Package chain provides a fluent, immutable Chain[T] that sequences
// transformations, side effects and recovery over a Result[T] with one
// uniform API, whether each step settles immediately or through a pending
// future.
//
// A chain is in exactly one of three states: immediate success, immediate
// failure, or pending. Any step whose outcome is pending moves the chain to
// pending for the rest of the sequence; success and failure keep flipping per
// step as usual. Every operation builds a callback over the previous full
// result and delegates to one shared fold primitive, so the rules are the
// same everywhere:
//
//   - Map/To/Try/Then skip their function on a prior failure and propagate
//     any error or panic as the chain's own failure
//   - Effect keeps the original value but propagates the effect's error
//   - Watch observes both outcomes and never alters the chain
//   - Catch/Recover run only on failure; their error becomes the new failure
//
// Only Unwrap surfaces a failure as an error; IsOk and OrElse never do. For
// pending chains the terminals block until the future settles.
//
// Construction: Start, FromValue, FromFunc (eager, panic-safe), FromFuture,
// Go (async thunk), Empty. Type-changing steps are package-level functions
// (Map, Then, To, Try, EffectAsync, Recover, Finally).
package chain
