package tree

import "fmt"

// Validate walks the tree rooted at root and returns ErrCycle when any node
// is reached twice. A nil root is a valid (empty) tree.
//
// Complexity: O(n) time, O(n) memory for the seen-set and explicit stack.
func Validate(root *Node) error {
	if root == nil {
		return nil
	}
	seen := make(map[*Node]struct{})
	stack := []*Node{root}
	var n *Node
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: value %d", ErrCycle, n.Val)
		}
		seen[n] = struct{}{}
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}

	return nil
}

// Size returns the number of nodes in a well-formed tree.
func Size(root *Node) int {
	if root == nil {
		return 0
	}

	return 1 + Size(root.Left) + Size(root.Right)
}

// Height returns the number of nodes on the longest root-to-leaf path.
// The empty tree has height 0, a single node has height 1.
func Height(root *Node) int {
	if root == nil {
		return 0
	}

	return 1 + max(Height(root.Left), Height(root.Right))
}
