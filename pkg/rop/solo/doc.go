// Package solo contains single-value, synchronous combinators over
// Result[T]. The chain package builds every operation from these.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map: transform the successful value
// - Try: call a function (Out, error) and convert error to failure
// - Tee/Observe: side-effect helpers (Observe swallows consumer panics)
// - FailOnError: effect that may veto the value with an error
// - Recover: turn a failure back into a value via a handler
// - Finally: reduce to a concrete value via success/failure handlers
package solo
