// Package twopointer solves "container with most water": given the heights of
// n vertical lines at unit spacing, find the two lines that hold the most water
// between them.
//
// Description:
//
//	For a pair i < j the held area is (j-i)·min(h[i], h[j]). MaxArea finds
//	the maximum over all pairs with a two-pointer scan that narrows the window
//	from both ends, discarding one line per step.
//
// Why it is safe to discard the shorter side:
//
//	Let h[l] ≤ h[r]. Any other pair (l, k) with l < k < r has width k-l < r-l
//	and height min(h[l], h[k]) ≤ h[l] = min(h[l], h[r]). So no pair that
//	keeps l can beat (l, r), and l can be dropped. Symmetrically for r when
//	h[r] < h[l]. Each step rules out every remaining pair that uses the
//	dropped line, so the scan settles all n(n-1)/2 pairs in n-1 steps.
//	Moving the taller side instead could only shrink the width while the
//	limiting height stays capped by the shorter side.
//
//	h = [1 8 6 2 5 4 8 3 7]
//	best pair (1, 8): width 7, height min(8, 7) = 7, area 49
//
// Functions:
//
//   - MaxArea(h):            O(n) two-pointer scan, ties advance left.
//   - Widest(h):             same scan, also returns the winning pair.
//   - MaxAreaBruteForce(h):  O(n²) oracle used to verify MaxArea.
//   - Area(h, i, j):         area of one pair.
//
// Edge cases:
//
//   - n < 2 → 0 (no pair exists).
//   - all heights 0 → 0.
//
// Errors:
//
//   - ErrNegativeHeight if any height is negative.
package twopointer
