package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/twopointer"
)

// waterOpts holds the flags of the water command.
type waterOpts struct {
	heights string
	brute   bool
}

// waterCommand creates the water command for the container-with-most-water scan.
func (c *CLI) waterCommand() *cobra.Command {
	var opts waterOpts

	cmd := &cobra.Command{
		Use:   "water",
		Short: "Find the two lines that hold the most water",
		Long: `Water scans a list of non-negative line heights with two pointers and
reports the pair of lines whose container has the largest area.`,
		Example: `  lvwalk water --heights 1,8,6,2,5,4,8,3,7
  lvwalk water --heights 1,8,6,2,5,4,8,3,7 --brute`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := parseInts(opts.heights)
			if err != nil {
				return err
			}
			return runWater(cmd.Context(), cmd.OutOrStdout(), h, opts.brute)
		},
	}

	cmd.Flags().StringVarP(&opts.heights, "heights", "H", "1,8,6,2,5,4,8,3,7", "non-negative line heights")
	cmd.Flags().BoolVar(&opts.brute, "brute", false, "cross-check against the quadratic scan")

	return cmd
}

// runWater prints the best container over h.
func runWater(ctx context.Context, w io.Writer, h []int, brute bool) error {
	logger := loggerFromContext(ctx)
	logger.Debug("Scanning heights", "n", len(h))
	prog := newProgress(logger)

	best, err := twopointer.Widest(h)
	if err != nil {
		return err
	}
	prog.done("Scan complete", "area", best.Area)

	printTitle(w, "Heights %v", h)
	printKeyValue(w, "area", best.Area)
	if best.Left >= 0 {
		printDetail(w, "lines %d and %d", best.Left, best.Right)
	}

	if brute {
		ref, err := twopointer.MaxAreaBruteForce(h)
		if err != nil {
			return err
		}
		if ref != best.Area {
			return fmt.Errorf("two-pointer area %d differs from exhaustive area %d", best.Area, ref)
		}
		printKeyValue(w, "brute", ref)
	}

	printSuccess(w, "Scan finished")
	return nil
}
