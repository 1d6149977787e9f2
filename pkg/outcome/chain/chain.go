package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps an outcome.Outcome with a context and an optional logger.
type Chain[T any] struct {
	ctx    context.Context
	logger outcome.Logger
	result outcome.Outcome[T]
}

// Start creates a new chain from an outcome.
func Start[T any](ctx context.Context, result outcome.Outcome[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from outcome.Of(value).
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, outcome.Of(value))
}

// WithLogger returns a copy of the chain that logs failing steps to logger.
func (c *Chain[T]) WithLogger(logger outcome.Logger) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		logger: logger,
		result: c.result,
	}
}

// Result returns the underlying outcome.
func (c *Chain[T]) Result() outcome.Outcome[T] {
	return c.result
}

// Context returns the chain's context.
func (c *Chain[T]) Context() context.Context {
	return c.ctx
}

// Then chains a function returning an outcome.
func Then[T, U any](c *Chain[T], onValue func(context.Context, T) outcome.Outcome[U]) *Chain[U] {
	if onValue == nil {
		panic(nilArgument("onValue"))
	}
	if res, done := cancelled[T, U](c, "Then"); done {
		return res
	}
	return next(c, "Then", outcome.FlatMap(c.result, func(v T) outcome.Outcome[U] {
		return onValue(c.ctx, v)
	}))
}

// ThenTry chains a function returning (U, error).
func ThenTry[T, U any](c *Chain[T], tryOnValue func(context.Context, T) (U, error)) *Chain[U] {
	if tryOnValue == nil {
		panic(nilArgument("tryOnValue"))
	}
	if res, done := cancelled[T, U](c, "ThenTry"); done {
		return res
	}
	return next(c, "ThenTry", outcome.TryMap(c.result, func(v T) (U, error) {
		return tryOnValue(c.ctx, v)
	}))
}

// Map chains a pure transformation.
func Map[T, U any](c *Chain[T], onValue func(context.Context, T) U) *Chain[U] {
	if onValue == nil {
		panic(nilArgument("onValue"))
	}
	if res, done := cancelled[T, U](c, "Map"); done {
		return res
	}
	return next(c, "Map", outcome.Map(c.result, func(v T) U {
		return onValue(c.ctx, v)
	}))
}

// Test keeps the value when predicate accepts it.
func (c *Chain[T]) Test(predicate func(T) bool) *Chain[T] {
	if predicate == nil {
		panic(nilArgument("predicate"))
	}
	if res, done := cancelled[T, T](c, "Test"); done {
		return res
	}
	return next(c, "Test", c.result.Test(predicate))
}

// TestWith is Test with a custom failure message.
func (c *Chain[T]) TestWith(predicate func(T) bool, msg string, args ...any) *Chain[T] {
	if predicate == nil {
		panic(nilArgument("predicate"))
	}
	if res, done := cancelled[T, T](c, "Test"); done {
		return res
	}
	return next(c, "Test", c.result.TestWith(predicate, msg, args...))
}

// Ensure performs a side effect on the value without changing the result.
func (c *Chain[T]) Ensure(onValue func(context.Context, T)) *Chain[T] {
	if onValue == nil {
		panic(nilArgument("onValue"))
	}
	if res, done := cancelled[T, T](c, "Ensure"); done {
		return res
	}
	return next(c, "Ensure", c.result.ThenAccept(func(v T) {
		onValue(c.ctx, v)
	}))
}

// Or falls back to alternative when the chain holds no value.
func (c *Chain[T]) Or(alternative *Chain[T]) *Chain[T] {
	if alternative == nil {
		panic(nilArgument("alternative"))
	}
	if c.result.HasValue() {
		return c
	}
	return alternative
}

// Finally collapses the chain using outcome.Fold.
func Finally[T, U any](c *Chain[T],
	onValue func(context.Context, T) U,
	onEmpty func(context.Context, string) U,
	onFailure func(context.Context, error, string) U) U {

	if onValue == nil || onEmpty == nil || onFailure == nil {
		panic(nilArgument("handler"))
	}
	return outcome.Fold(c.result,
		func(v T) U { return onValue(c.ctx, v) },
		func(msg string) U { return onEmpty(c.ctx, msg) },
		func(cause error, msg string) U { return onFailure(c.ctx, cause, msg) },
	)
}

// IsCancellation reports whether err stems from a cancelled or expired context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func nilArgument(name string) error {
	return fmt.Errorf("%w: %s cannot be nil", outcome.ErrNilArgument, name)
}

func cancelled[T, U any](c *Chain[T], step string) (*Chain[U], bool) {
	if !c.result.HasValue() || c.ctx == nil {
		return nil, false
	}
	err := c.ctx.Err()
	if err == nil {
		return nil, false
	}
	return next(c, step, outcome.FailureOf[U](err, "%s skipped: %v", step, err)), true
}

func next[T, U any](c *Chain[T], step string, res outcome.Outcome[U]) *Chain[U] {
	if c.result.HasValue() && res.IsFailure() {
		res.LogFailure(c.ctx, c.logger, outcome.LevelWarn, "chain step %s failed", step)
	}
	return &Chain[U]{
		ctx:    c.ctx,
		logger: c.logger,
		result: res,
	}
}
