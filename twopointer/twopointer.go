package twopointer

import (
	"errors"
	"fmt"
)

// ErrNegativeHeight indicates a negative magnitude in the input.
var ErrNegativeHeight = errors.New("twopointer: heights must be non-negative")

// Container is the best pair found by Widest.
// Left and Right are -1 when fewer than two heights were given.
type Container struct {
	Left  int
	Right int
	Area  int
}

// MaxArea returns max over 0 ≤ i < j < n of (j-i)·min(heights[i], heights[j]),
// or 0 when n < 2, in O(n) time and O(1) memory.
//
// Example:
//
//	area, err := MaxArea([]int{1, 8, 6, 2, 5, 4, 8, 3, 7}) // 49
func MaxArea(heights []int) (int, error) {
	c, err := Widest(heights)
	if err != nil {
		return 0, err
	}

	return c.Area, nil
}

// Widest runs the two-pointer scan and reports the first index pair that
// reaches the maximum area along with the area itself. Callers should rely on
// Area only; which of several optimal pairs is reported follows the scan order.
//
// Algorithm:
//  1. left = 0, right = n-1, best = 0.
//  2. While left < right:
//     area = (right-left) · min(h[left], h[right]); keep the larger.
//     If h[left] <= h[right], left++; else right--.
//
// Moving the taller side inward can never help: the width shrinks by one and
// the limiting height is still bounded by the shorter side, which stays. So
// every pair that still holds the shorter side is no better than the current
// one and can be discarded by moving that side instead.
func Widest(heights []int) (Container, error) {
	if err := validate(heights); err != nil {
		return Container{Left: -1, Right: -1}, err
	}
	best := Container{Left: -1, Right: -1}
	if len(heights) < 2 {
		return best, nil
	}

	left, right := 0, len(heights)-1
	var area int
	for left < right {
		area = Area(heights, left, right)
		if best.Left < 0 || area > best.Area {
			best = Container{Left: left, Right: right, Area: area}
		}
		// ties advance the left pointer
		if heights[left] <= heights[right] {
			left++
		} else {
			right--
		}
	}

	return best, nil
}

// MaxAreaBruteForce checks every pair in O(n²). It is the reference oracle
// for MaxArea and is not meant for large inputs.
func MaxAreaBruteForce(heights []int) (int, error) {
	if err := validate(heights); err != nil {
		return 0, err
	}
	best := 0
	for i := 0; i < len(heights); i++ {
		for j := i + 1; j < len(heights); j++ {
			best = max(best, Area(heights, i, j))
		}
	}

	return best, nil
}

// Area returns (j-i)·min(heights[i], heights[j]) for i ≤ j.
// It panics if i or j is out of range.
func Area(heights []int, i, j int) int {
	return (j - i) * min(heights[i], heights[j])
}

// validate rejects negative heights.
func validate(heights []int) error {
	for i, h := range heights {
		if h < 0 {
			return fmt.Errorf("%w: heights[%d] = %d", ErrNegativeHeight, i, h)
		}
	}

	return nil
}
