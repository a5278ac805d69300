package deepgl

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestForEachNode_ClaimsEveryIDExactlyOnce: the cursor contract — each node
// id in [0, n) is claimed by exactly one worker.
func TestForEachNode_ClaimsEveryIDExactlyOnce(t *testing.T) {
	const n = 1000
	var claims [n]atomic.Int32

	err := forEachNode(context.Background(), 8, n, func(node int) error {
		claims[node].Add(1)

		return nil
	})
	require.NoError(t, err)

	for node := range claims {
		assert.Equal(t, int32(1), claims[node].Load(), "node %d claim count", node)
	}
}

// TestForEachNode_ZeroAndSmallN: degenerate sizes must not deadlock, and a
// worker surplus is trimmed to n.
func TestForEachNode_ZeroAndSmallN(t *testing.T) {
	require.NoError(t, forEachNode(context.Background(), 4, 0, func(int) error {
		t.Fatal("fn must not run for n=0")

		return nil
	}))

	var count atomic.Int32
	require.NoError(t, forEachNode(context.Background(), 16, 2, func(int) error {
		count.Add(1)

		return nil
	}))
	assert.Equal(t, int32(2), count.Load())
}

// TestForEachNode_FirstErrorWins: a failing node aborts the phase; siblings
// stop at their next claim and the original error surfaces.
func TestForEachNode_FirstErrorWins(t *testing.T) {
	boom := errors.New("malformed property")
	var ran atomic.Int32

	err := forEachNode(context.Background(), 4, 10_000, func(node int) error {
		ran.Add(1)
		if node == 17 {
			return boom
		}

		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Less(t, ran.Load(), int32(10_000), "cancellation must cut the drain short")
}

// TestForEachNode_ContextCancelled: a pre-cancelled context stops workers at
// the first claimed-id boundary.
func TestForEachNode_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := forEachNode(ctx, 4, 100, func(int) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}
