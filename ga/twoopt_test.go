package ga_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotour/ga"
)

func TestTwoOpt_UncrossesRing(t *testing.T) {
	ctx := context.Background()
	locs := ring(10)
	// zig-zag through the ring, full of crossings
	start := ga.Tour{0, 5, 1, 6, 2, 7, 3, 8, 4, 9}
	before, err := ga.Evaluate(ctx, start, locs, planar)
	require.NoError(t, err)

	got, err := ga.TwoOpt(ctx, start, locs, planar, 0)
	require.NoError(t, err)
	requireTour(t, got, len(locs))
	assert.Equal(t, ga.Tour{0, 5, 1, 6, 2, 7, 3, 8, 4, 9}, start, "input modified")

	after, err := ga.Evaluate(ctx, got, locs, planar)
	require.NoError(t, err)
	assert.Less(t, after, before)

	inOrder := got.Equal(ga.Tour{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}) ||
		got.Equal(ga.Tour{0, 9, 8, 7, 6, 5, 4, 3, 2, 1})
	assert.True(t, inOrder, "got %v", got)
}

func TestTwoOpt_MaxIters(t *testing.T) {
	ctx := context.Background()
	locs := ring(10)
	start := ga.Tour{0, 5, 1, 6, 2, 7, 3, 8, 4, 9}

	one, err := ga.TwoOpt(ctx, start, locs, planar, 1)
	require.NoError(t, err)
	full, err := ga.TwoOpt(ctx, start, locs, planar, 0)
	require.NoError(t, err)

	f1, err := ga.Evaluate(ctx, one, locs, planar)
	require.NoError(t, err)
	ff, err := ga.Evaluate(ctx, full, locs, planar)
	require.NoError(t, err)
	assert.Greater(t, f1, ff)
}

func TestTwoOpt_SmallAndInvalid(t *testing.T) {
	ctx := context.Background()
	locs := ring(3)

	got, err := ga.TwoOpt(ctx, ga.Tour{0, 2, 1}, locs, planar, 0)
	require.NoError(t, err)
	assert.Equal(t, ga.Tour{0, 2, 1}, got)

	_, err = ga.TwoOpt(ctx, ga.Tour{1, 0, 2}, locs, planar, 0)
	require.ErrorIs(t, err, ga.ErrNotOrigin)

	_, err = ga.TwoOpt(ctx, ga.Tour{0, 1, 2}, locs, nil, 0)
	require.ErrorIs(t, err, ga.ErrNilDistancer)
}
