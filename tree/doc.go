// Package tree provides the binary tree model shared by the traversal engines.
//
// What
//
//   - Node: an int-valued vertex that exclusively owns its Left and Right children.
//   - Constructors: New, Leaf, FromLevelOrder, ParseLevelOrder.
//   - Inspection: Size, Height, Validate, String.
//
// Ownership
//
//	A well-formed tree is acyclic and every node is reachable from exactly one
//	parent. Nothing in this module mutates a tree after it is built; the
//	traversal packages (bfs, dfs) only read Val, Left and Right.
//
// Level-order literals
//
//	FromLevelOrder and ParseLevelOrder accept the familiar "LeetCode" layout,
//	where children are listed level by level and an absent child is written
//	as null:
//
//	      1
//	     / \
//	    2   3        "[1,2,3,4,5,null,6]"
//	   / \   \
//	  4   5   6
//
//	String renders a tree back into the same layout with trailing gaps trimmed.
//
// Errors
//
//   - ErrMalformedLiteral  if a literal token is not an int or gap marker,
//     or a value has no parent slot to occupy.
//   - ErrCycle             if Validate reaches a node twice (cycle or shared subtree).
package tree
