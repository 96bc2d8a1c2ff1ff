package backtrack

// BruteForce enumerates the same combinations as CombinationSum by looping
// over every candidate at each level and only rejecting a branch after its
// remaining sum has gone negative. It does no pruning and takes no options;
// it exists as an oracle for testing CombinationSum, not as a production path.
//
// Output order and validation match CombinationSum.
func BruteForce(candidates []int, target int) ([][]int, error) {
	cands, err := prepare(candidates, target)
	if err != nil {
		return nil, err
	}

	res := [][]int{}
	var comb []int
	var generate func(start, remaining int)
	generate = func(start, remaining int) {
		if remaining == 0 {
			res = append(res, append([]int{}, comb...))
			return
		}
		if remaining < 0 {
			return
		}
		for i := start; i < len(cands); i++ {
			comb = append(comb, cands[i])
			generate(i, remaining-cands[i])
			comb = comb[:len(comb)-1]
		}
	}
	generate(0, target)

	return res, nil
}
