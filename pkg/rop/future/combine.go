package future

import (
	"errors"

	"github.com/ib-77/ropchain/pkg/rop"
)

// All waits for every future and collects the values in argument order.
// The first failure wins and the remaining values are dropped.
func All[T any](futures ...*Future[T]) *Future[[]T] {
	return Go(func() rop.Result[[]T] {
		values := make([]T, len(futures))
		for i, f := range futures {
			res := f.Await()
			if res.IsFailure() {
				return rop.FailFrom[T, []T](res)
			}
			values[i] = res.Value()
		}
		return rop.Success(values)
	})
}

// Any resolves with the first future to settle successfully. When all of
// them fail, the failures are joined into one error.
func Any[T any](futures ...*Future[T]) *Future[T] {
	return Go(func() rop.Result[T] {
		settled := make(chan rop.Result[T], len(futures))
		for _, f := range futures {
			f := f
			go func() {
				settled <- f.Await()
			}()
		}

		errs := make([]error, 0, len(futures))
		for range futures {
			res := <-settled
			if res.IsSuccess() {
				return res
			}
			errs = append(errs, res.Err())
		}
		return rop.Fail[T](errors.Join(errs...))
	})
}

// Race resolves with the first future to settle, success or failure.
func Race[T any](futures ...*Future[T]) *Future[T] {
	return Go(func() rop.Result[T] {
		settled := make(chan rop.Result[T], len(futures))
		for _, f := range futures {
			f := f
			go func() {
				settled <- f.Await()
			}()
		}
		return <-settled
	})
}
