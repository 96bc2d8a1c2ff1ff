package twopointer_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/twopointer"
)

func TestMaxArea_Reference(t *testing.T) {
	got, err := twopointer.MaxArea([]int{1, 8, 6, 2, 5, 4, 8, 3, 7})
	require.NoError(t, err)
	assert.Equal(t, 49, got)
}

func TestMaxArea_Small(t *testing.T) {
	cases := []struct {
		name    string
		heights []int
		want    int
	}{
		{"nil", nil, 0},
		{"empty", []int{}, 0},
		{"single", []int{5}, 0},
		{"pair", []int{1, 1}, 1},
		{"pair uneven", []int{3, 9}, 3},
		{"zeros", []int{0, 0, 0, 0}, 0},
		{"equal heights", []int{4, 4, 4, 4}, 12},
		{"ascending", []int{1, 2, 3, 4, 5}, 6},
		{"descending", []int{5, 4, 3, 2, 1}, 6},
		{"tall inner pair", []int{1, 100, 100, 1}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := twopointer.MaxArea(tc.heights)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			oracle, err := twopointer.MaxAreaBruteForce(tc.heights)
			require.NoError(t, err)
			assert.Equal(t, oracle, got)
		})
	}
}

func TestMaxArea_NegativeHeight(t *testing.T) {
	_, err := twopointer.MaxArea([]int{1, -2, 3})
	assert.ErrorIs(t, err, twopointer.ErrNegativeHeight)
	assert.Contains(t, err.Error(), "heights[1]")

	_, err = twopointer.MaxAreaBruteForce([]int{-1})
	assert.ErrorIs(t, err, twopointer.ErrNegativeHeight)

	c, err := twopointer.Widest([]int{-1, 2})
	assert.ErrorIs(t, err, twopointer.ErrNegativeHeight)
	assert.Equal(t, -1, c.Left)
}

func TestWidest(t *testing.T) {
	h := []int{1, 8, 6, 2, 5, 4, 8, 3, 7}
	c, err := twopointer.Widest(h)
	require.NoError(t, err)
	assert.Equal(t, twopointer.Container{Left: 1, Right: 8, Area: 49}, c)
	assert.Equal(t, c.Area, twopointer.Area(h, c.Left, c.Right))

	c, err = twopointer.Widest([]int{7})
	require.NoError(t, err)
	assert.Equal(t, twopointer.Container{Left: -1, Right: -1, Area: 0}, c)

	// all-zero input still names a pair
	c, err = twopointer.Widest([]int{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, twopointer.Container{Left: 0, Right: 2, Area: 0}, c)
}

// TestMaxArea_MatchesBruteForce is the oracle property: lengths 0..200,
// values 0..10^4, 1000 seeded trials.
func TestMaxArea_MatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for trial := 0; trial < 1000; trial++ {
		n := rnd.Intn(201)
		h := make([]int, n)
		for i := range h {
			h[i] = rnd.Intn(10001)
		}

		want, err := twopointer.MaxAreaBruteForce(h)
		require.NoError(t, err)
		got, err := twopointer.MaxArea(h)
		require.NoError(t, err)
		require.Equal(t, want, got, "trial %d heights %v", trial, h)

		c, err := twopointer.Widest(h)
		require.NoError(t, err)
		require.Equal(t, got, c.Area)
		if n >= 2 {
			require.Less(t, c.Left, c.Right)
			require.Equal(t, got, twopointer.Area(h, c.Left, c.Right))
		}
	}
}

// TestMaxArea_DoesNotMutate guards the read-only contract on the input.
func TestMaxArea_DoesNotMutate(t *testing.T) {
	h := []int{3, 1, 4, 1, 5, 9, 2, 6}
	cp := append([]int(nil), h...)
	_, err := twopointer.MaxArea(h)
	require.NoError(t, err)
	assert.Equal(t, cp, h)
}
