// Package observe builds Watch consumers: Branch routes a result snapshot to
// success/failure handlers, Logged emits slog records for both outcomes.
// Consumers only observe; the chain package guarantees they cannot alter the
// result.
package observe
