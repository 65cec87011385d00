package observe

import (
	"context"
	"log/slog"

	"github.com/ib-77/ropchain/pkg/rop"
)

// Branch builds a Watch consumer that routes the snapshot to the matching
// handler. Either handler may be nil.
func Branch[T any](onSuccess func(ctx context.Context, v T),
	onFailure func(ctx context.Context, err error)) func(ctx context.Context, r rop.Result[T]) {

	return func(ctx context.Context, r rop.Result[T]) {
		if r.IsSuccess() {
			if onSuccess != nil {
				onSuccess(ctx, r.Value())
			}
			return
		}
		if onFailure != nil {
			onFailure(ctx, r.Err())
		}
	}
}

// Logged builds a Watch consumer that logs both outcomes of the named
// operation, tagging records with the result id.
func Logged[T any](log *slog.Logger, op string) func(ctx context.Context, r rop.Result[T]) {
	return func(ctx context.Context, r rop.Result[T]) {
		if r.IsSuccess() {
			log.InfoContext(ctx, "step succeeded",
				slog.String("op", op),
				slog.String("result_id", r.Id().String()),
				slog.Any("value", r.Value()))
			return
		}
		log.ErrorContext(ctx, "step failed",
			slog.String("op", op),
			slog.String("result_id", r.Id().String()),
			slog.Any("error", r.Err()))
	}
}
