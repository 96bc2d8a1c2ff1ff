// Package dfs defines types and options for depth-first traversal of a
// binary tree, including visit order selection, an explicit-stack mode,
// cancellation, and visit hooks.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Node colouring used by the recursive walker to tell a back edge (cycle)
// from a subtree that is simply shared by two parents.
const (
	White = iota // White: the node has not been reached yet.
	Gray         // Gray: the node is on the current recursion path.
	Black        // Black: the node and all its descendants have been fully explored.
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("dfs: invalid option supplied")

// Order selects where a node's own value is recorded relative to its subtrees.
type Order int

const (
	// PreOrder records the node, then its left subtree, then its right subtree.
	PreOrder Order = iota
	// InOrder records the left subtree, then the node, then the right subtree.
	InOrder
	// PostOrder records the left subtree, then the right subtree, then the node.
	PostOrder
)

// String returns the lower-case name of o.
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Option configures optional behavior of DFS traversal.
// Use with DFS(root, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Order picks pre-, in- or post-order. Default is PreOrder.
	Order Order

	// Iterative, if true, walks with an explicit stack instead of recursion.
	// The emitted sequence is identical; only stack usage differs.
	Iterative bool

	// OnVisit, if non-nil, is invoked each time a value is recorded, in the
	// selected order. Returning an error aborts traversal with that error.
	OnVisit func(val, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - PreOrder
//   - recursive walking
//   - no visit hook
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:       context.Background(),
		Order:     PreOrder,
		Iterative: false,
		OnVisit:   nil,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOrder returns an Option that selects the visit order.
// An unknown Order is recorded and surfaced as ErrOptionViolation.
func WithOrder(order Order) Option {
	return func(o *DFSOptions) {
		switch order {
		case PreOrder, InOrder, PostOrder:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: unknown order %v", ErrOptionViolation, order)
		}
	}
}

// WithIterative returns an Option that replaces recursion with an explicit stack,
// bounding goroutine stack growth on very deep trees.
func WithIterative() Option {
	return func(o *DFSOptions) {
		o.Iterative = true
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(val, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records node values in the selected visit order.
	Order []int

	// Depth[i] is the depth (root = 0) of the node that produced Order[i].
	Depth []int
}
