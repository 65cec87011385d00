// Package rop defines the Result[T] container shared by every package in this
// module: a tagged success/failure value with a stable id and creation time.
//
// Key pieces:
// - Success/Fail: construct Result[T]
// - FailFrom: carry a failure across a value-type change
// - Normalize: coerce any raised (panic) value into one error shape
// - IsNil/GetErrors: small error utilities used by validation helpers
//
// A failure always carries a non-nil error; Normalize never panics, falling
// back to the raw payload when serialization is impossible.
package rop
