package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropchain/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Value()); isValid {
			return input
		} else {
			return rop.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Value()))
	}
	return rop.FailFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return rop.Fail[Out](err)
		}

		return rop.Success(out)
	}
	return rop.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

// Observe hands the full result to consumer on both outcomes. Whatever the
// consumer panics with is discarded; the input passes through unchanged.
func Observe[T any](ctx context.Context,
	input rop.Result[T],
	consumer func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	func() {
		defer func() {
			_ = recover()
		}()
		consumer(ctx, input)
	}()

	return input
}

// FailOnError runs maybeErr for its effect on a successful input; a non-nil
// error turns the result into a failure, otherwise the input is kept as is.
func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Value())
		if err != nil {
			return rop.Fail[T](err)
		}
		return input
	}
	return input
}

// Recover invokes handler only on a failed input. The handler's value
// becomes a fresh success; its error becomes the new failure.
func Recover[T any](ctx context.Context, input rop.Result[T],
	handler func(ctx context.Context, err error) (T, error)) rop.Result[T] {

	if input.IsSuccess() {
		return input
	}

	out, err := handler(ctx, input.Err())
	if err != nil {
		return rop.Fail[T](err)
	}
	return rop.Success(out)
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Err())
}
