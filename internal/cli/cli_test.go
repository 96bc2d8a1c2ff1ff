package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"traverse", "combos", "water", "demo"} {
		assert.Contains(t, names, want)
	}
}

func TestTraverse_AllOrders(t *testing.T) {
	out, err := execute(t, "traverse", "--tree", "[1,2,3,4,5,null,6]")
	require.NoError(t, err)
	assert.Contains(t, out, "[1,2,3,4,5,null,6]")
	assert.Contains(t, out, "[1 2 3 4 5 6]")
	assert.Contains(t, out, "[1 2 4 5 3 6]")
	assert.Contains(t, out, "[4 2 5 1 3 6]")
	assert.Contains(t, out, "[4 5 2 6 3 1]")
}

func TestTraverse_SingleOrderIterative(t *testing.T) {
	out, err := execute(t, "traverse", "--tree", "[4,2,6,1,3,5,7]", "--order", "in", "--iterative")
	require.NoError(t, err)
	assert.Contains(t, out, "[1 2 3 4 5 6 7]")
	assert.NotContains(t, out, "level")
}

func TestTraverse_Errors(t *testing.T) {
	_, err := execute(t, "traverse", "--order", "zigzag")
	assert.Error(t, err)

	_, err = execute(t, "traverse", "--tree", "[1,x]")
	assert.Error(t, err)
}

func TestCombos(t *testing.T) {
	out, err := execute(t, "combos", "--candidates", "2,3,5", "--target", "8", "--brute")
	require.NoError(t, err)
	assert.Contains(t, out, "[2 2 2 2]")
	assert.Contains(t, out, "[2 3 3]")
	assert.Contains(t, out, "[3 5]")
}

func TestCombos_Limit(t *testing.T) {
	out, err := execute(t, "combos", "--candidates", "2,3,5", "--target", "8", "--limit", "1", "--iterative")
	require.NoError(t, err)
	assert.Contains(t, out, "[2 2 2 2]")
	assert.NotContains(t, out, "[3 5]")
}

func TestCombos_InvalidInput(t *testing.T) {
	_, err := execute(t, "combos", "--candidates", "2,2", "--target", "4")
	assert.Error(t, err)

	_, err = execute(t, "combos", "--candidates", "2,a")
	assert.Error(t, err)
}

func TestWater(t *testing.T) {
	out, err := execute(t, "water", "--heights", "1,8,6,2,5,4,8,3,7", "--brute")
	require.NoError(t, err)
	assert.Contains(t, out, "49")
	assert.Contains(t, out, "lines 1 and 8")
}

func TestWater_NegativeHeight(t *testing.T) {
	_, err := execute(t, "water", "--heights", "1,-2,3")
	assert.Error(t, err)
}

func TestDemo_Default(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "[4 5 2 6 3 1]")
	assert.Contains(t, out, "[2 2 3]")
	assert.Contains(t, out, "49")
}

func TestLoadCases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.toml")
	data := `
[[traverse]]
name = "bst"
tree = "[4,2,6]"

[[combos]]
candidates = [2, 3, 6, 7]
target = 7

[[water]]
heights = [1, 1]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cases, err := LoadCases(path)
	require.NoError(t, err)
	require.Len(t, cases.Traverse, 1)
	assert.Equal(t, "bst", cases.Traverse[0].Name)
	assert.Equal(t, []int{2, 3, 6, 7}, cases.Combos[0].Candidates)
	assert.Equal(t, 7, cases.Combos[0].Target)
	assert.Equal(t, []int{1, 1}, cases.Water[0].Heights)

	out, err := execute(t, "demo", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "[2 4 6]")
	assert.Contains(t, out, "[7]")
}

func TestLoadCases_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[combo]]\ntarget = 3\n"), 0o644))

	_, err := LoadCases(path)
	assert.ErrorContains(t, err, "unknown keys")
}

func TestLoadCases_Missing(t *testing.T) {
	_, err := LoadCases(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestParseInts(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"", []int{}},
		{"2,3,6,7", []int{2, 3, 6, 7}},
		{"[1 8 6]", []int{1, 8, 6}},
		{" 4, -5 ", []int{4, -5}},
	}
	for _, tt := range tests {
		got, err := parseInts(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseInts("1,two")
	assert.Error(t, err)
}

func TestLoggerFromContext(t *testing.T) {
	c := New(io.Discard, LogDebug)
	ctx := withLogger(context.Background(), c.Logger)
	assert.Same(t, c.Logger, loggerFromContext(ctx))
	assert.NotNil(t, loggerFromContext(context.Background()))
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	assert.Empty(t, buf.String())

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
