// Package dfs implements depth‑first traversal of a binary tree.Node in
// preorder, inorder and postorder, recursively or with an explicit stack.
//
// What:
//
//   - DFS (Depth‑First Search): descends as far as possible along the left
//     branch before backtracking. Supports:
//   - Three visit orders (PreOrder, InOrder, PostOrder)
//   - Explicit-stack mode (WithIterative) with identical output
//   - Visit hook (WithOnVisit) that may abort the walk
//   - Cancellation via context.Context
//   - Preorder / Inorder / Postorder: convenience listings of node values.
//
// Why:
//   - Preorder copies or serializes a tree (prefix notation).
//   - Inorder lists a binary search tree in ascending order.
//   - Postorder frees or evaluates a tree bottom-up (postfix notation).
//
// Example on the tree [1,2,3,4,5,null,6]:
//
//	    1
//	   / \        Preorder:  1 2 4 5 3 6
//	  2   3       Inorder:   4 2 5 1 3 6
//	 / \   \      Postorder: 4 5 2 6 3 1
//	4   5   6
//
// Key Types & Constants:
//
//   - Order: PreOrder, InOrder, PostOrder
//   - White, Gray, Black: node colouring used to report cycles
//   - Option / DFSOptions: functional options
//   - DFSResult: emitted values and their depths
//
// Complexity:
//
//   - Time:   O(n)
//   - Memory: O(h) stack for tree height h, plus O(n) node colouring
//
// Errors:
//
//   - ErrOptionViolation      unknown Order passed to WithOrder
//   - tree.ErrCycle           a node is reachable twice (back edge or shared subtree)
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated (wrapped) from OnVisit
package dfs
