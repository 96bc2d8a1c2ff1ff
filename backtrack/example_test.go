package backtrack_test

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/backtrack"
)

// ExampleCombinationSum reproduces the three reference cases.
func ExampleCombinationSum() {
	cases := []struct {
		cands  []int
		target int
	}{
		{[]int{2, 3, 6, 7}, 7},
		{[]int{2, 3, 5}, 8},
		{[]int{2}, 1},
	}
	for _, c := range cases {
		res, err := backtrack.CombinationSum(c.cands, c.target)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%v → %v\n", c.cands, res)
	}
	// Output:
	// [2 3 6 7] → [[2 2 3] [7]]
	// [2 3 5] → [[2 2 2 2] [2 3 3] [3 5]]
	// [2] → []
}

// ExampleBruteForce shows the oracle agreeing with the pruned search.
func ExampleBruteForce() {
	fast, _ := backtrack.CombinationSum([]int{2, 3, 5}, 8)
	slow, _ := backtrack.BruteForce([]int{2, 3, 5}, 8)
	fmt.Println(fmt.Sprint(fast) == fmt.Sprint(slow))
	// Output:
	// true
}
