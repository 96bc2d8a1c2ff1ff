// Package lvwalk is a small collection of classic tree-walking and search
// algorithms over plain Go values, each with a reference oracle and a
// command-line front end.
//
// What is inside?
//
//	tree/        binary tree Node, level-order literals ("[1,2,null,3]"), Size, Height, Validate
//	bfs/         level-order traversal with depths, levels, hooks and MaxDepth
//	dfs/         preorder, inorder and postorder, recursive or explicit-stack
//	backtrack/   combination sum with pruning, limits and a brute-force oracle
//	twopointer/  container with most water in O(n), plus the O(n²) oracle
//	cmd/lvwalk   CLI running every engine on flags or a TOML case file
//
// Every engine follows the same conventions:
//
//   - Inputs are never mutated; results are fresh slices owned by the caller.
//   - Invalid input is reported with a package sentinel error wrapped with context.
//   - Long walks accept a context.Context and optional OnVisit-style hooks.
//
// Quick example:
//
//	root, _ := tree.ParseLevelOrder("[1,2,3,4,5,null,6]")
//	lvl, _ := bfs.LevelOrder(root)  // [1 2 3 4 5 6]
//	post, _ := dfs.Postorder(root)  // [4 5 2 6 3 1]
//
//	        1
//	       / \
//	      2   3
//	     / \   \
//	    4   5   6
//
//	go install github.com/katalvlaran/lvwalk/cmd/lvwalk@latest
package lvwalk
