// Package bfs provides breadth-first (level-order) traversal over a binary
// tree.Node, returning visit order, per-visit depth, and per-level grouping.
//
// What
//
//   - Visit nodes in non-decreasing depth from the root, left before right
//     within a level.
//   - Returns a BFSResult containing:
//   - Order: visit sequence of node values
//   - Depth: depth of each visited node, parallel to Order
//   - Levels: values grouped by depth
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a node enters the queue)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Level-order listing, level grouping (zig-zag, right-side view, widths).
//   - Minimum depth queries stop naturally at the first leaf.
//
// Algorithm
//
//	queue ← [root]
//	while queue not empty:
//	    n ← pop front
//	    record n.Val
//	    push n.Left (if present), then n.Right (if present)
//
// Determinism
//
//	The queue is FIFO and children are enqueued left then right, so the
//	visit sequence is fully reproducible. The tree is never mutated.
//
// Complexity
//
//   - Time:   O(n) for n nodes, plus hook cost.
//   - Memory: O(w) for the queue (w = widest level) plus O(n) for the seen-set.
//
// Usage
//
//	// Plain level order:
//	vals, err := bfs.LevelOrder(root)
//
//	// With functional options:
//	res, err := bfs.BFS(
//	    root,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	    bfs.WithOnVisit(func(val, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - tree.ErrCycle       if a node is reachable twice; BFS never loops.
//   - ctx.Err()           on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
