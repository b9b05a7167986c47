// Package chain provides a fluent wrapper around apply.Result[T]
// for writing apply steps one after another on a single value.
//
// Key operations:
// - Of/Start: begin a chain from a value or an apply.Result[T]
// - Apply/WithParam/WithParams/WithSeq: mutate the value in place
// - Try/TryWithParam/TryWithParams: mutate with a function that may fail;
//   after the first failure the remaining steps are skipped
// - Pipe/Map: replace the value with a transformed one
// - Unwrap/Finally: leave the chain with a value (and error)
package chain
