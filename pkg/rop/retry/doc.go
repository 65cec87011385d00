// Package retry wraps fallible steps into self-retrying ones that still look
// like plain (U, error) functions to the chain. Retry timing lives entirely
// here; the chain treats the wrapped step like any other.
package retry
