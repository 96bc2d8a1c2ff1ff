package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/dfs"
	"github.com/katalvlaran/lvwalk/tree"
)

// ExampleDFS lists the three depth-first orders of the six-node tree.
//
//	    1
//	   / \
//	  2   3
//	 / \   \
//	4   5   6
func ExampleDFS() {
	root, _ := tree.ParseLevelOrder("[1,2,3,4,5,null,6]")
	for _, o := range []dfs.Order{dfs.InOrder, dfs.PreOrder, dfs.PostOrder} {
		res, err := dfs.DFS(root, dfs.WithOrder(o))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%-9s %v\n", o, res.Order)
	}
	// Output:
	// inorder   [4 2 5 1 3 6]
	// preorder  [1 2 4 5 3 6]
	// postorder [4 5 2 6 3 1]
}

// ExampleDFS_iterative walks with an explicit stack; output matches recursion.
func ExampleDFS_iterative() {
	root, _ := tree.ParseLevelOrder("[1,2,3,4,5,null,6]")
	res, _ := dfs.DFS(root, dfs.WithOrder(dfs.PostOrder), dfs.WithIterative())
	fmt.Println(res.Order, res.Depth)
	// Output:
	// [4 5 2 6 3 1] [2 2 1 2 1 0]
}
