// Package dfs implements depth-first traversal (preorder, inorder, postorder)
// of a binary tree, recursively or with an explicit stack.
//
// Key features:
//   - DFS(root, opts...): one entry point, order picked via WithOrder
//   - Preorder, Inorder, Postorder: plain value listings
//   - WithIterative: explicit-stack walk with identical output
//   - Hooks: OnVisit fires as each value is recorded; errors abort
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(n) for n nodes, plus hook cost.
//   - Memory: O(h) stack (recursion or explicit) for tree height h, plus O(n) node states.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/tree"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	opts  DFSOptions         // traversal options
	state map[*tree.Node]int // White/Gray/Black per reached node
	res   *DFSResult         // result collector
}

// DFS performs a depth-first traversal of the tree rooted at root.
// A nil root yields an empty result.
// Returns ErrOptionViolation for bad options, tree.ErrCycle if a node is
// reachable twice, ctx.Err() on cancellation, or a wrapped hook error.
func DFS(root *tree.Node, opts ...Option) (*DFSResult, error) {
	// 1. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 2. Initialize result
	res := &DFSResult{
		Order: []int{},
		Depth: []int{},
	}
	if root == nil {
		return res, nil
	}

	walker := &dfsWalker{opts: dopts, state: make(map[*tree.Node]int), res: res}

	// 3. Traverse
	var err error
	if dopts.Iterative {
		err = walker.walkStack(root)
	} else {
		err = walker.traverse(root, 0)
	}

	return res, err
}

// Preorder returns node values in root, left, right order.
func Preorder(root *tree.Node) ([]int, error) {
	return orderOf(root, PreOrder)
}

// Inorder returns node values in left, root, right order.
// For a binary search tree this is ascending order.
func Inorder(root *tree.Node) ([]int, error) {
	return orderOf(root, InOrder)
}

// Postorder returns node values in left, right, root order.
func Postorder(root *tree.Node) ([]int, error) {
	return orderOf(root, PostOrder)
}

func orderOf(root *tree.Node, o Order) ([]int, error) {
	res, err := DFS(root, WithOrder(o))
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// traverse visits n at the given depth, recursing into both children.
// It honors context cancellation, the selected order, hooks and colouring.
func (w *dfsWalker) traverse(n *tree.Node, depth int) error {
	if n == nil {
		return nil
	}

	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Colour check: Gray means we came back along a back edge
	switch w.state[n] {
	case Gray:
		return fmt.Errorf("%w: back edge to %d", tree.ErrCycle, n.Val)
	case Black:
		return fmt.Errorf("%w: shared subtree at %d", tree.ErrCycle, n.Val)
	}
	w.state[n] = Gray

	// 3. Pre-order record
	if w.opts.Order == PreOrder {
		if err := w.record(n, depth); err != nil {
			return err
		}
	}

	// 4. Left subtree
	if err := w.traverse(n.Left, depth+1); err != nil {
		return err
	}

	// 5. In-order record
	if w.opts.Order == InOrder {
		if err := w.record(n, depth); err != nil {
			return err
		}
	}

	// 6. Right subtree
	if err := w.traverse(n.Right, depth+1); err != nil {
		return err
	}

	// 7. Post-order record
	if w.opts.Order == PostOrder {
		if err := w.record(n, depth); err != nil {
			return err
		}
	}

	w.state[n] = Black

	return nil
}

// record appends n to the result and calls OnVisit.
func (w *dfsWalker) record(n *tree.Node, depth int) error {
	w.res.Order = append(w.res.Order, n.Val)
	w.res.Depth = append(w.res.Depth, depth)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n.Val, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", n.Val, err)
		}
	}

	return nil
}
