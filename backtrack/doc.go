// Package backtrack solves the combination-sum problem: given distinct positive
// candidates and a non-negative target, list every multiset of candidates
// (each reusable without limit) whose sum is exactly the target.
//
// What
//
//   - CombinationSum(candidates, target, opts...): pruned include/skip
//     backtracking; the production path.
//   - BruteForce(candidates, target): unpruned loop enumeration kept as a
//     cross-check oracle.
//   - Sum(comb): helper for verifying results.
//
// Uniqueness
//
//	The search keeps a start index that never decreases along a branch:
//	"include" recurses with the same index (reuse), "skip" advances it for
//	the rest of that branch. Every multiset therefore has exactly one path
//	from the root, so each combination is produced once, already in
//	non-decreasing order. No post-hoc deduplication is needed.
//
// Pruning
//
//	Candidates are sorted ascending before the search. Once cands[idx]
//	exceeds the remaining sum, every later candidate does too, and the whole
//	branch is dropped without being opened.
//
// Example
//
//	candidates [2,3,6,7], target 7   → [[2 2 3] [7]]
//	candidates [2,3,5],   target 8   → [[2 2 2 2] [2 3 3] [3 5]]
//	candidates [2],       target 1   → []
//	any candidates,       target 0   → [[]]
//
// Options
//
//   - WithContext(ctx):     cancellation, checked once per search step.
//   - WithIterative():      explicit-stack search, identical output.
//   - WithLimit(n):         stop after n combinations (n>0), 0 = unlimited.
//   - WithOnSolution(fn):   hook per combination; returning error aborts.
//
// Complexity
//
//	Time is output-sensitive and exponential in the worst case, bounded by
//	the number of search-tree nodes with sum ≤ target. Memory is O(target/min)
//	for the partial combination plus the size of the result.
//
// Errors
//
//   - ErrNegativeTarget        target < 0.
//   - ErrNonPositiveCandidate  a candidate ≤ 0 (would never terminate).
//   - ErrDuplicateCandidate    a candidate listed twice (would duplicate results).
//   - ErrOptionViolation       invalid Option (e.g. negative Limit).
//   - ctx.Err()                on cancellation; results found so far are returned.
//   - Wrapped OnSolution errors.
package backtrack
