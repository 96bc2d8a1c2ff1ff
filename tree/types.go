package tree

import "errors"

// Sentinel errors for tree construction and validation.
var (
	// ErrCycle indicates that a node is reachable along more than one path.
	ErrCycle = errors.New("tree: node reachable twice (cycle or shared subtree)")

	// ErrMalformedLiteral indicates an invalid level-order literal.
	ErrMalformedLiteral = errors.New("tree: malformed level-order literal")
)

// Node is one vertex of a binary tree.
// Left and Right are nil when the child is absent.
type Node struct {
	Val   int
	Left  *Node
	Right *Node
}

// New returns a node holding val with the given children.
func New(val int, left, right *Node) *Node {
	return &Node{Val: val, Left: left, Right: right}
}

// Leaf returns a childless node holding val.
func Leaf(val int) *Node {
	return &Node{Val: val}
}

// IsLeaf reports whether n has no children. A nil node is not a leaf.
func (n *Node) IsLeaf() bool {
	return n != nil && n.Left == nil && n.Right == nil
}
