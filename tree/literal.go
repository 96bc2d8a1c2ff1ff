package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// Ptr returns a pointer to v, for building FromLevelOrder inputs inline.
func Ptr(v int) *int {
	return &v
}

// FromLevelOrder builds a tree from a level-order slice where nil marks an
// absent child. Slots are filled left child first, then right child, for each
// present node in the order it was created.
//
// Trailing nil entries are ignored. A value that would attach below a missing
// parent yields ErrMalformedLiteral.
//
// Complexity: O(len(values)).
func FromLevelOrder(values []*int) (*Node, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if values[0] == nil {
		if i, ok := firstValue(values[1:]); ok {
			return nil, fmt.Errorf("%w: value at index %d under empty root", ErrMalformedLiteral, i+1)
		}
		return nil, nil
	}

	root := Leaf(*values[0])
	queue := []*Node{root}
	i := 1
	var parent *Node
	for i < len(values) {
		if len(queue) == 0 {
			if j, ok := firstValue(values[i:]); ok {
				return nil, fmt.Errorf("%w: value at index %d has no parent", ErrMalformedLiteral, i+j)
			}
			break
		}
		parent = queue[0]
		queue = queue[1:]

		// left slot
		if values[i] != nil {
			parent.Left = Leaf(*values[i])
			queue = append(queue, parent.Left)
		}
		i++

		// right slot
		if i < len(values) && values[i] != nil {
			parent.Right = Leaf(*values[i])
			queue = append(queue, parent.Right)
		}
		i++
	}

	return root, nil
}

// firstValue returns the index of the first non-nil entry of vs.
func firstValue(vs []*int) (int, bool) {
	for i, v := range vs {
		if v != nil {
			return i, true
		}
	}

	return -1, false
}

// ParseLevelOrder parses a textual level-order literal such as
// "[1,2,3,null,4]" and builds the tree with FromLevelOrder.
// Brackets and surrounding spaces are optional; "null", "nil" and "#" all
// mark an absent child. An empty literal yields the empty tree.
func ParseLevelOrder(s string) (*Node, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	tokens := strings.Split(s, ",")
	values := make([]*int, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		switch strings.ToLower(tok) {
		case "null", "nil", "#":
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q", ErrMalformedLiteral, i, tok)
		}
		values[i] = Ptr(v)
	}

	return FromLevelOrder(values)
}

// String renders root as a level-order literal, e.g. "[1,2,3,null,4]".
// Trailing gaps are trimmed; the empty tree renders as "[]".
// The tree must be well-formed (see Validate).
func String(root *Node) string {
	if root == nil {
		return "[]"
	}

	var tokens []string
	queue := []*Node{root}
	var n *Node
	for len(queue) > 0 {
		n = queue[0]
		queue = queue[1:]
		if n == nil {
			tokens = append(tokens, "null")
			continue
		}
		tokens = append(tokens, strconv.Itoa(n.Val))
		queue = append(queue, n.Left, n.Right)
	}

	// trim trailing gaps
	end := len(tokens)
	for end > 0 && tokens[end-1] == "null" {
		end--
	}

	return "[" + strings.Join(tokens[:end], ",") + "]"
}
