// Package chain provides a fluent, context-carrying Chain[T] over
// outcome.Outcome values.
//
// Outcome methods cannot change the payload type, so type-changing steps
// (Then, ThenTry, Map) are package functions taking the chain first, while
// type-preserving steps (Test, Ensure, Or) are methods:
//
//	c := chain.FromValue(ctx, raw).WithLogger(logging.New(slog.Default()))
//	port := chain.ThenTry(c, parsePort).Test(inRange)
//	addr := chain.Map(port, func(ctx context.Context, p int) string { ... })
//
// A step whose context is already done is skipped and the chain turns into a
// Failure caused by ctx.Err(). Steps that turn a Value into a Failure are
// logged at Warn through the chain's logger, if one is set.
package chain
