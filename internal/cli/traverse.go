package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/bfs"
	"github.com/katalvlaran/lvwalk/dfs"
	"github.com/katalvlaran/lvwalk/tree"
)

// traverseOpts holds the flags of the traverse command.
type traverseOpts struct {
	tree      string
	order     string
	iterative bool
}

// traverseCommand creates the traverse command for walking a tree literal.
func (c *CLI) traverseCommand() *cobra.Command {
	var opts traverseOpts

	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Walk a binary tree in level, pre, in or post order",
		Long: `Traverse builds a binary tree from a level-order literal such as
"[1,2,3,4,5,null,6]" and prints the requested visiting orders.`,
		Example: `  lvwalk traverse --tree "[1,2,3,4,5,null,6]"
  lvwalk traverse --tree "[4,2,6,1,3,5,7]" --order in --iterative`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := tree.ParseLevelOrder(opts.tree)
			if err != nil {
				return err
			}
			return runTraverse(cmd.Context(), cmd.OutOrStdout(), root, opts.order, opts.iterative)
		},
	}

	cmd.Flags().StringVarP(&opts.tree, "tree", "t", "[1,2,3,4,5,null,6]", "level-order tree literal, null marks a gap")
	cmd.Flags().StringVarP(&opts.order, "order", "o", "all", "order to print: all, level, pre, in, post")
	cmd.Flags().BoolVar(&opts.iterative, "iterative", false, "use the explicit-stack depth-first walk")

	return cmd
}

// depthOrders maps the --order flag values to depth-first orders.
var depthOrders = map[string]dfs.Order{
	"pre":  dfs.PreOrder,
	"in":   dfs.InOrder,
	"post": dfs.PostOrder,
}

// runTraverse prints the selected orders of root to w.
func runTraverse(ctx context.Context, w io.Writer, root *tree.Node, order string, iterative bool) error {
	logger := loggerFromContext(ctx)

	var orders []string
	switch order {
	case "all":
		orders = []string{"level", "pre", "in", "post"}
	case "level", "pre", "in", "post":
		orders = []string{order}
	default:
		return fmt.Errorf("unknown order %q (want all, level, pre, in or post)", order)
	}

	logger.Debug("Traversing tree", "nodes", tree.Size(root), "height", tree.Height(root), "iterative", iterative)
	prog := newProgress(logger)

	printTitle(w, "Tree %s", tree.String(root))
	for _, name := range orders {
		vals, err := walk(ctx, root, name, iterative)
		if err != nil {
			return fmt.Errorf("%s order: %w", name, err)
		}
		printKeyValue(w, name, vals)
	}

	prog.done("Traversal complete", "orders", len(orders))
	return nil
}

// walk runs a single named order.
func walk(ctx context.Context, root *tree.Node, name string, iterative bool) ([]int, error) {
	if name == "level" {
		res, err := bfs.BFS(root, bfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		return res.Order, nil
	}

	opts := []dfs.Option{dfs.WithContext(ctx), dfs.WithOrder(depthOrders[name])}
	if iterative {
		opts = append(opts, dfs.WithIterative())
	}
	res, err := dfs.DFS(root, opts...)
	if err != nil {
		return nil, err
	}
	return res.Order, nil
}
