package chain

import (
	"context"

	"github.com/ib-77/ropchain/pkg/rop"
	"github.com/ib-77/ropchain/pkg/rop/future"
)

// update is the one fold primitive behind every chain operation. It hands the
// previous full result to cb and folds cb's outcome back into a Chain,
// whatever its timing:
//
//   - immediate input: cb runs synchronously inside a guarded scope, so a
//     panic becomes an immediate failure;
//   - pending input: a continuation awaits the input, runs cb guarded, then
//     awaits cb's own outcome before settling a fresh future. The chain stays
//     pending for the rest of the sequence, and pendingness never nests.
func update[In, Out any](c Chain[In], cb func(ctx context.Context, in rop.Result[In]) Chain[Out]) Chain[Out] {
	if c.fut == nil {
		return guard(c.ctx, c.res, cb)
	}

	f := future.New[Out]()
	go func() {
		in := c.fut.Await()
		out := guard(c.ctx, in, cb)
		f.Settle(out.await())
	}()
	return pendingChain(c.ctx, f)
}

// guard invokes cb over in, converting a panic into a failed chain carrying
// the normalized payload.
func guard[In, Out any](ctx context.Context, in rop.Result[In],
	cb func(ctx context.Context, in rop.Result[In]) Chain[Out]) (out Chain[Out]) {

	defer func() {
		if r := recover(); r != nil {
			out = immediateChain(ctx, rop.Fail[Out](rop.Normalize(r)))
		}
	}()

	return cb(ctx, in)
}

// await collapses the chain to its result, blocking on a pending chain until
// it settles. Together with update this is the only place that asks whether
// the chain is pending.
func (c Chain[T]) await() rop.Result[T] {
	if c.fut != nil {
		return c.fut.Await()
	}
	return c.res
}

func immediateChain[T any](ctx context.Context, r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func pendingChain[T any](ctx context.Context, f *future.Future[T]) Chain[T] {
	return Chain[T]{ctx: ctx, fut: f}
}
