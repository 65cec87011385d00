package tests

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropchain/pkg/rop"
	"github.com/ib-77/ropchain/pkg/rop/chain"
	"github.com/ib-77/ropchain/pkg/rop/observe"
	"github.com/ib-77/ropchain/pkg/rop/retry"
	"github.com/ib-77/ropchain/pkg/rop/valid"
)

// TestOrderProcessingPipeline drives the full surface end to end: parse,
// validate, retry a flaky lookup, observe both outcomes and recover.
func TestOrderProcessingPipeline(t *testing.T) {
	ctx := context.Background()

	inputs := []string{"10", "4", "bad", "", "-2"}

	flakyCalls := 0
	lookupDiscount := retry.Wrap(3, time.Millisecond, func(ctx context.Context, amount int) (int, error) {
		flakyCalls++
		if flakyCalls%2 == 1 {
			return 0, errors.New("discount service hiccup")
		}
		return amount - 1, nil
	})

	var watchedFailures []error
	watcher := observe.Branch[int](nil, func(ctx context.Context, err error) {
		watchedFailures = append(watchedFailures, err)
	})

	results := make([]string, 0, len(inputs))
	for _, raw := range inputs {
		out := chain.Finally(
			chain.Try(
				chain.FromValue(ctx, raw),
				func(ctx context.Context, s string) (int, error) {
					return strconv.Atoi(strings.TrimSpace(s))
				}).
				Try(valid.All(true,
					valid.Check(func(ctx context.Context, n int) (bool, string) {
						return n > 0, "not positive"
					}),
					valid.Check(func(ctx context.Context, n int) (bool, string) {
						return n%2 == 0, "odd amount"
					}))).
				Try(lookupDiscount).
				Watch(watcher),
			func(ctx context.Context, n int) string { return "total:" + strconv.Itoa(n) },
			func(ctx context.Context, err error) string { return "rejected" },
		)
		results = append(results, out)
	}

	assert.Equal(t, []string{"total:9", "total:3", "rejected", "rejected", "rejected"}, results)
	assert.Len(t, watchedFailures, 3)
}

// TestAsyncPipeline mixes immediate and pending steps in one sequence.
func TestAsyncPipeline(t *testing.T) {
	ctx := context.Background()

	c := chain.FromValue(ctx, 3).
		Then(func(ctx context.Context, n int) chain.Chain[int] {
			return chain.Go(ctx, func(ctx context.Context) (int, error) {
				time.Sleep(5 * time.Millisecond)
				return n * n, nil
			})
		}).
		Map(func(ctx context.Context, n int) int { return n + 1 })

	assert.False(t, c.Settled())

	v, err := c.Unwrap()
	assert.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.True(t, c.IsOk())
}

// TestAsyncRecovery checks that a rejected async step recovers like an
// immediate failure would.
func TestAsyncRecovery(t *testing.T) {
	ctx := context.Background()

	v, err := chain.Go(ctx, func(ctx context.Context) (string, error) {
		return "", errors.New("upstream timeout")
	}).
		Catch(func(ctx context.Context, err error) (string, error) {
			return "cached", nil
		}).
		Unwrap()

	assert.NoError(t, err)
	assert.Equal(t, "cached", v)
}

// TestWatchNeverChangesOutcome runs a panicking watcher over both a failing
// and a succeeding chain.
func TestWatchNeverChangesOutcome(t *testing.T) {
	ctx := context.Background()

	bomb := func(ctx context.Context, r rop.Result[int]) { panic("boom") }

	ok := chain.FromValue(ctx, 1).Watch(bomb)
	v, err := ok.Unwrap()
	assert.NoError(t, err)
	assert.Equal(t, 1, v)

	failed := chain.Start(ctx, rop.Fail[int](errors.New("origin"))).Watch(bomb)
	_, err = failed.Unwrap()
	assert.EqualError(t, err, "origin")
	assert.Equal(t, 100, failed.OrElse(100))
}
