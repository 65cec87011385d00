package pipe

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestSteps_ComposesInOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	double := func(ctx context.Context, in int) (int, error) { return in * 2, nil }
	addThree := func(ctx context.Context, in int) (int, error) { return in + 3, nil }

	out, err := Steps(double, addThree)(ctx, 5)
	if err != nil || out != 13 {
		t.Fatalf("expected 13, got: val=%v, err=%v", out, err)
	}
}

func TestSteps_ShortCircuits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	secondRan := false
	failing := func(ctx context.Context, in int) (int, error) { return 0, errors.New("broken") }
	after := func(ctx context.Context, in int) (int, error) {
		secondRan = true
		return in, nil
	}

	_, err := Steps(failing, after)(ctx, 1)
	if err == nil || err.Error() != "broken" {
		t.Fatalf("expected 'broken', got %v", err)
	}
	if secondRan {
		t.Fatalf("steps after a failure must not run")
	}
}

func TestSteps_Empty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out, err := Steps[int]()(ctx, 9)
	if err != nil || out != 9 {
		t.Fatalf("expected identity for empty pipe, got: val=%v, err=%v", out, err)
	}
}

func TestTwo_AcrossTypes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parse := func(ctx context.Context, in string) (int, error) { return strconv.Atoi(strings.TrimSpace(in)) }
	describe := func(ctx context.Context, in int) (string, error) { return strconv.Itoa(in * 10), nil }

	out, err := Two(parse, describe)(ctx, " 4 ")
	if err != nil || out != "40" {
		t.Fatalf("expected '40', got: val=%v, err=%v", out, err)
	}
}

func TestThree_PropagatesMiddleFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	thirdRan := false
	first := func(ctx context.Context, in string) (int, error) { return len(in), nil }
	second := func(ctx context.Context, in int) (int, error) { return 0, errors.New("mid") }
	third := func(ctx context.Context, in int) (string, error) {
		thirdRan = true
		return "", nil
	}

	_, err := Three(first, second, third)(ctx, "abc")
	if err == nil || err.Error() != "mid" {
		t.Fatalf("expected 'mid', got %v", err)
	}
	if thirdRan {
		t.Fatalf("third step must not run after the middle failure")
	}
}
