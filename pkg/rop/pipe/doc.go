// Package pipe composes unary steps into single functions by folding them
// through a chain. It adds no control flow of its own: Steps reduces
// same-typed steps, Two and Three compose across type changes.
package pipe
