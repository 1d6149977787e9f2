// Package outcome provides Outcome[T], an immutable container for the result
// of a fallible or optionally-empty computation.
//
// An Outcome is exactly one of three variants:
//   - Value: the computation produced a usable, non-nil payload
//   - Empty: the computation completed but produced nothing
//   - Failure: the computation failed or a predicate rejected the payload
//
// Besides the payload every outcome carries a human-readable message and, for
// failures caused by an error or a panic, that cause. Combinators (Map,
// FlatMap, Test, ThenAccept, ...) never mutate their receiver and never let a
// panic from user code escape: it is captured as a Failure instead.
//
// Typical use:
//
//	port := outcome.OfTry(func() (int, error) { return strconv.Atoi(raw) }).
//		TestWith(func(p int) bool { return p > 0 && p < 65536 }, "port %q out of range", raw)
//	addr := outcome.Map(port, func(p int) string { return net.JoinHostPort(host, strconv.Itoa(p)) })
//	addr.LogFailure(ctx, logger, outcome.LevelWarn, "resolving listen address")
//
// Contract violations (a nil function argument, a nil payload passed to Value,
// a type mismatch while flattening) panic with an error wrapping one of the
// sentinel errors of this package.
package outcome
