package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/tree"
)

// Cases is a batch of inputs for the demo command, decoded from TOML:
//
//	[[traverse]]
//	name = "sample"
//	tree = "[1,2,3,4,5,null,6]"
//
//	[[combos]]
//	candidates = [2, 3, 6, 7]
//	target = 7
//
//	[[water]]
//	heights = [1, 8, 6, 2, 5, 4, 8, 3, 7]
type Cases struct {
	Traverse []TraverseCase `toml:"traverse"`
	Combos   []CombosCase   `toml:"combos"`
	Water    []WaterCase    `toml:"water"`
}

// TraverseCase names a tree literal to walk in every order.
type TraverseCase struct {
	Name string `toml:"name"`
	Tree string `toml:"tree"`
}

// CombosCase is one combination-sum query.
type CombosCase struct {
	Candidates []int `toml:"candidates"`
	Target     int   `toml:"target"`
}

// WaterCase is one container-with-most-water query.
type WaterCase struct {
	Heights []int `toml:"heights"`
}

// DefaultCases returns the reference inputs used when no file is given.
func DefaultCases() Cases {
	return Cases{
		Traverse: []TraverseCase{
			{Name: "sample", Tree: "[1,2,3,4,5,null,6]"},
		},
		Combos: []CombosCase{
			{Candidates: []int{2, 3, 6, 7}, Target: 7},
			{Candidates: []int{2, 3, 5}, Target: 8},
			{Candidates: []int{2}, Target: 1},
		},
		Water: []WaterCase{
			{Heights: []int{1, 8, 6, 2, 5, 4, 8, 3, 7}},
		},
	}
}

// LoadCases decodes a case file. Unknown keys are rejected so that a
// misspelled table does not silently run nothing.
func LoadCases(path string) (Cases, error) {
	var cases Cases
	md, err := toml.DecodeFile(path, &cases)
	if err != nil {
		return Cases{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Cases{}, fmt.Errorf("decode %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cases, nil
}

// demoCommand creates the demo command that runs a batch of cases.
func (c *CLI) demoCommand() *cobra.Command {
	var config string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run every engine on a batch of cases",
		Long: `Demo runs the traversals, the combination search and the container scan
on every case of a TOML file, or on the built-in reference cases.`,
		Example: `  lvwalk demo
  lvwalk demo --config cases.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cases := DefaultCases()
			if config != "" {
				var err error
				if cases, err = LoadCases(config); err != nil {
					return err
				}
			}
			return runDemo(cmd.Context(), cmd.OutOrStdout(), cases)
		},
	}

	cmd.Flags().StringVarP(&config, "config", "f", "", "TOML case file (default: built-in cases)")

	return cmd
}

// runDemo runs each case in file order: traversals, then combinations, then water.
func runDemo(ctx context.Context, w io.Writer, cases Cases) error {
	logger := loggerFromContext(ctx)
	logger.Info("Running demo", "traverse", len(cases.Traverse), "combos", len(cases.Combos), "water", len(cases.Water))

	for _, tc := range cases.Traverse {
		root, err := tree.ParseLevelOrder(tc.Tree)
		if err != nil {
			return fmt.Errorf("traverse case %q: %w", tc.Name, err)
		}
		if err := runTraverse(ctx, w, root, "all", false); err != nil {
			return fmt.Errorf("traverse case %q: %w", tc.Name, err)
		}
	}
	for i, cc := range cases.Combos {
		if err := runCombos(ctx, w, cc.Candidates, combosOpts{target: cc.Target}); err != nil {
			return fmt.Errorf("combos case %d: %w", i, err)
		}
	}
	for i, wc := range cases.Water {
		if err := runWater(ctx, w, wc.Heights, false); err != nil {
			return fmt.Errorf("water case %d: %w", i, err)
		}
	}
	return nil
}
