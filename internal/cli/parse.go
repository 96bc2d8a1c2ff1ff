package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseInts parses a comma- or space-separated integer list such as
// "2,3,6,7" or "[1 8 6]". An empty string yields an empty slice.
func parseInts(s string) ([]int, error) {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse %q: not an integer", f)
		}
		out = append(out, v)
	}
	return out, nil
}
