package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/backtrack"
)

// combosOpts holds the flags of the combos command.
type combosOpts struct {
	candidates string
	target     int
	limit      int
	iterative  bool
	brute      bool
}

// combosCommand creates the combos command for the combination-sum search.
func (c *CLI) combosCommand() *cobra.Command {
	var opts combosOpts

	cmd := &cobra.Command{
		Use:   "combos",
		Short: "List every multiset of candidates that sums to a target",
		Long: `Combos enumerates every combination of the distinct positive candidates,
each usable any number of times, whose sum equals the target. Combinations
are printed in ascending order.`,
		Example: `  lvwalk combos --candidates 2,3,6,7 --target 7
  lvwalk combos --candidates 2,3,5 --target 8 --limit 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cands, err := parseInts(opts.candidates)
			if err != nil {
				return err
			}
			return runCombos(cmd.Context(), cmd.OutOrStdout(), cands, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.candidates, "candidates", "c", "2,3,6,7", "distinct positive candidates")
	cmd.Flags().IntVarP(&opts.target, "target", "n", 7, "target sum")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "stop after this many combinations (0 = all)")
	cmd.Flags().BoolVar(&opts.iterative, "iterative", false, "use the explicit-stack search")
	cmd.Flags().BoolVar(&opts.brute, "brute", false, "also run the unpruned enumeration and compare")

	return cmd
}

// runCombos prints the combinations of cands summing to opts.target.
func runCombos(ctx context.Context, w io.Writer, cands []int, opts combosOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debug("Searching combinations", "candidates", cands, "target", opts.target, "limit", opts.limit)
	prog := newProgress(logger)

	bopts := []backtrack.Option{backtrack.WithContext(ctx), backtrack.WithLimit(opts.limit)}
	if opts.iterative {
		bopts = append(bopts, backtrack.WithIterative())
	}
	combs, err := backtrack.CombinationSum(cands, opts.target, bopts...)
	if err != nil {
		return err
	}
	prog.done("Search complete", "found", len(combs))

	printTitle(w, "Combinations of %v summing to %d", cands, opts.target)
	for _, comb := range combs {
		printDetail(w, "%v", comb)
	}
	printKeyValue(w, "found", len(combs))

	if opts.brute {
		ref, err := backtrack.BruteForce(cands, opts.target)
		if err != nil {
			return err
		}
		if opts.limit == 0 && len(ref) != len(combs) {
			logger.Warn("Enumerations disagree", "pruned", len(combs), "brute", len(ref))
		}
		printKeyValue(w, "brute", len(ref))
	}

	printSuccess(w, "Search finished")
	return nil
}
