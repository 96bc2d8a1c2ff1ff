package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/tree"
)

// frame is one entry of the explicit stack. An expand frame opens a node and
// schedules its parts; an emit frame records the node's value.
type frame struct {
	node  *tree.Node
	depth int
	emit  bool
}

// walkStack is the explicit-stack rendition of traverse. Every order is
// expressed by pushing the three parts of a node in reverse of their visit
// sequence, so the frame popped next is always the next part to handle:
//
//	PreOrder:  push right, left, emit(n)
//	InOrder:   push right, emit(n), left
//	PostOrder: push emit(n), right, left
//
// Stack size is bounded by O(h) frames for tree height h.
func (w *dfsWalker) walkStack(root *tree.Node) error {
	stack := []frame{{node: root}}
	var f frame
	for len(stack) > 0 {
		// cancellation check (once per frame)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.emit {
			if err := w.record(f.node, f.depth); err != nil {
				return err
			}
			continue
		}

		if w.state[f.node] != White {
			return fmt.Errorf("%w: value %d reached twice", tree.ErrCycle, f.node.Val)
		}
		w.state[f.node] = Black

		self := frame{node: f.node, depth: f.depth, emit: true}
		left := f.node.Left
		right := f.node.Right
		switch w.opts.Order {
		case PreOrder:
			stack = pushChild(stack, right, f.depth+1)
			stack = pushChild(stack, left, f.depth+1)
			stack = append(stack, self)
		case InOrder:
			stack = pushChild(stack, right, f.depth+1)
			stack = append(stack, self)
			stack = pushChild(stack, left, f.depth+1)
		case PostOrder:
			stack = append(stack, self)
			stack = pushChild(stack, right, f.depth+1)
			stack = pushChild(stack, left, f.depth+1)
		}
	}

	return nil
}

// pushChild pushes an expand frame for n unless n is absent.
func pushChild(stack []frame, n *tree.Node, depth int) []frame {
	if n == nil {
		return stack
	}

	return append(stack, frame{node: n, depth: depth})
}
