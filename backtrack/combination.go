// Package backtrack enumerates every multiset of candidate values, each usable
// any number of times, that sums exactly to a target.
package backtrack

import (
	"errors"
	"fmt"
	"slices"
)

// errLimit stops the search once Options.Limit combinations are stored.
var errLimit = errors.New("backtrack: limit reached")

// searcher carries the mutable state of one CombinationSum call: the sorted
// candidates, the partial combination used as a stack, and the accumulator.
type searcher struct {
	opts   Options
	cands  []int
	target int
	comb   []int
	res    [][]int
}

// state is one pending branch of the explicit-stack search.
type state struct {
	idx  int // start index into cands; never decreases along a branch
	sum  int // sum of comb[:size]
	size int // length of the partial combination for this branch
}

// CombinationSum returns all combinations of candidates (with unlimited reuse)
// that sum to target.
//
// Each combination is in non-decreasing order and no two combinations are
// permutations of each other. The outer slice is in lexicographic order.
// A target of 0 yields exactly one combination, the empty one.
//
// Algorithm (include/skip backtracking over candidates sorted ascending):
//
//	search(idx, sum):
//	    sum == target        → record a copy of comb; stop
//	    idx == len(cands)    → stop
//	    cands[idx] > target-sum → stop (every later candidate is larger too)
//	    push cands[idx]; search(idx, sum+cands[idx]); pop   // reuse
//	    search(idx+1, sum)                                  // skip for good
//
// The include branch is only taken when it cannot overshoot the target, so a
// branch whose sum exceeds the target is never opened and sums never overflow.
//
// Errors: ErrNegativeTarget, ErrNonPositiveCandidate, ErrDuplicateCandidate,
// ErrOptionViolation, ctx.Err() on cancellation, or a wrapped OnSolution error.
func CombinationSum(candidates []int, target int, opts ...Option) ([][]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cands, err := prepare(candidates, target)
	if err != nil {
		return nil, err
	}

	s := &searcher{
		opts:   o,
		cands:  cands,
		target: target,
		comb:   make([]int, 0, 8),
		res:    [][]int{},
	}
	if o.Iterative {
		err = s.walkStack()
	} else {
		err = s.search(0, 0)
	}
	if err != nil && !errors.Is(err, errLimit) {
		return s.res, err
	}

	return s.res, nil
}

// prepare validates the inputs and returns an ascending copy of candidates.
func prepare(candidates []int, target int) ([]int, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTarget, target)
	}
	cands := slices.Clone(candidates)
	slices.Sort(cands)
	for i, c := range cands {
		if c <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrNonPositiveCandidate, c)
		}
		if i > 0 && cands[i-1] == c {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateCandidate, c)
		}
	}

	return cands, nil
}

// search is the recursive include/skip step.
func (s *searcher) search(idx, sum int) error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	if sum == s.target {
		return s.record()
	}
	if idx >= len(s.cands) || s.cands[idx] > s.target-sum {
		return nil
	}

	c := s.cands[idx]
	s.comb = append(s.comb, c)
	err := s.search(idx, sum+c)
	s.comb = s.comb[:len(s.comb)-1]
	if err != nil {
		return err
	}

	return s.search(idx+1, sum)
}

// walkStack runs the same search with an explicit stack of pending branches.
// The include branch is pushed last so it is explored first, matching the
// recursive order. A branch of size k only reads comb[:k], and every branch
// explored before it writes at positions >= k, so the shared buffer stays valid.
func (s *searcher) walkStack() error {
	stack := []state{{}}
	var st state
	var c int
	for len(stack) > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		st = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s.comb = s.comb[:st.size]

		if st.sum == s.target {
			if err := s.record(); err != nil {
				return err
			}
			continue
		}
		if st.idx >= len(s.cands) || s.cands[st.idx] > s.target-st.sum {
			continue
		}

		c = s.cands[st.idx]
		stack = append(stack, state{idx: st.idx + 1, sum: st.sum, size: st.size})
		s.comb = append(s.comb, c)
		stack = append(stack, state{idx: st.idx, sum: st.sum + c, size: st.size + 1})
	}

	return nil
}

// record stores a copy of the current partial combination.
func (s *searcher) record() error {
	comb := slices.Clone(s.comb)
	if comb == nil {
		comb = []int{}
	}
	if s.opts.OnSolution != nil {
		if err := s.opts.OnSolution(slices.Clone(comb)); err != nil {
			return fmt.Errorf("backtrack: OnSolution hook for %v: %w", comb, err)
		}
	}
	s.res = append(s.res, comb)
	if s.opts.Limit > 0 && len(s.res) >= s.opts.Limit {
		return errLimit
	}

	return nil
}

// Sum returns the sum of comb.
func Sum(comb []int) int {
	total := 0
	for _, v := range comb {
		total += v
	}

	return total
}
