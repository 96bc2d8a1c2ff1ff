// Package bfs provides breadth-first (level-order) traversal of a binary tree,
// returning visit order, per-visit depth, and values grouped by level.
//
// BFS emits nodes in non-decreasing depth, left before right within a level,
// with optional hooks and depth limiting.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvwalk/tree"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  *tree.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[*tree.Node]struct{}
	res     *BFSResult
}

// BFS runs a level-order traversal of the tree rooted at root,
// applying any number of functional Options.
// A nil root yields an empty result.
// Returns ErrOptionViolation for bad options, tree.ErrCycle if a node is
// reachable twice, ctx.Err() on cancellation, or any user-supplied hook error.
func BFS(root *tree.Node, opts ...Option) (*BFSResult, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[*tree.Node]struct{}),
		res: &BFSResult{
			Order:  []int{},
			Depth:  []int{},
			Levels: [][]int{},
		},
	}
	if root == nil {
		return w.res, nil
	}

	// Seed queue with the root
	w.enqueue(root, 0)
	// Main loop
	return w.res, w.loop()
}

// LevelOrder returns node values in breadth-first order.
// It is BFS(root).Order without options.
func LevelOrder(root *tree.Node) ([]int, error) {
	res, err := BFS(root)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// enqueue marks n visited, calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(n *tree.Node, d int) {
	w.visited[n] = struct{}{}
	w.opts.OnEnqueue(n.Val, d)
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueChildren(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the node in Order, Depth and Levels, then calls OnVisit.
func (w *walker) visit(item queueItem) error {
	v := item.node.Val
	w.res.Order = append(w.res.Order, v)
	w.res.Depth = append(w.res.Depth, item.depth)
	if item.depth == len(w.res.Levels) {
		w.res.Levels = append(w.res.Levels, nil)
	}
	w.res.Levels[item.depth] = append(w.res.Levels[item.depth], v)
	if err := w.opts.OnVisit(v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}
	return nil
}

// enqueueChildren enqueues the left child, then the right child, honoring
// MaxDepth. Returns tree.ErrCycle if a child was already seen.
func (w *walker) enqueueChildren(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, child := range [2]*tree.Node{item.node.Left, item.node.Right} {
		if child == nil {
			continue
		}
		if _, seen := w.visited[child]; seen {
			return fmt.Errorf("%w: value %d below %d", tree.ErrCycle, child.Val, item.node.Val)
		}
		w.enqueue(child, nextDepth)
	}
	return nil
}
