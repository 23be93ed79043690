package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Canx/algos/dijkstra"
)

// execute runs the root command with args and an empty config path, so a
// user's own config file never leaks into the tests.
func execute(t *testing.T, args ...string) (out, logs string, err error) {
	t.Helper()
	var stdout, logBuf bytes.Buffer
	c := New(&logBuf, LogDebug)
	root := c.RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stdout)
	root.SetArgs(append([]string{"--config", ""}, args...))

	err = root.Execute()
	return stdout.String(), logBuf.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRoute_Classic(t *testing.T) {
	out, logs, err := execute(t, "route")
	require.NoError(t, err)

	assert.Equal(t, "Shortest Distance from 0 to 4 is 21\nPath is 4 <--- 5 <--- 6 <--- 7 <--- 0\n", out)
	assert.Contains(t, logs, "run stats")
	assert.Contains(t, logs, "Settled")
}

func TestRoute_LinearFrontier(t *testing.T) {
	out, _, err := execute(t, "route", "--frontier", "linear", "--target", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Shortest Distance from 0 to 8 is 14\n")
}

func TestRoute_Unreachable(t *testing.T) {
	out, _, err := execute(t, "route", "--graph", "random", "--n", "3", "--p", "0", "--target", "2")
	require.NoError(t, err)
	assert.Equal(t, "Shortest Distance from 0 to 2 is unreachable\n", out)
}

func TestRoute_MaxDistance(t *testing.T) {
	out, _, err := execute(t, "route", "--max-distance", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "is unreachable")

	out, _, err = execute(t, "route", "--max-distance", "21")
	require.NoError(t, err)
	assert.Contains(t, out, "is 21")
}

func TestRoute_Grid(t *testing.T) {
	out, _, err := execute(t, "route", "--graph", "grid", "--n", "3",
		"--min-weight", "1", "--max-weight", "1", "--target", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Shortest Distance from 0 to 8 is 4\n")
	assert.Contains(t, out, "Path is 8 <--- ")
}

func TestRoute_All(t *testing.T) {
	out, _, err := execute(t, "route", "--all")
	require.NoError(t, err)

	assert.Contains(t, out, "Distance")
	assert.Contains(t, out, "4 <--- 5 <--- 6 <--- 7 <--- 0")
	assert.Contains(t, out, "8 <--- 2 <--- 1 <--- 0")
	assert.NotContains(t, out, "unreachable")
}

func TestRoute_Errors(t *testing.T) {
	_, _, err := execute(t, "route", "--source", "9")
	assert.ErrorIs(t, err, dijkstra.ErrInvalidVertex)

	_, _, err = execute(t, "route", "--target", "-3")
	assert.ErrorIs(t, err, dijkstra.ErrInvalidVertex)

	_, _, err = execute(t, "route", "--graph", "hexagon")
	assert.ErrorContains(t, err, "unknown graph")

	_, _, err = execute(t, "route", "--frontier", "fibonacci")
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	_, _, err = execute(t, "route", "--graph", "grid", "--min-weight", "5", "--max-weight", "2")
	assert.ErrorContains(t, err, "invalid weight range")

	_, _, err = execute(t, "route", "extra")
	assert.Error(t, err)
}

func TestRoute_WritesDOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.dot")
	out, logs, err := execute(t, "route", "--dot", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is 21")
	assert.Contains(t, logs, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "graph G {"))
	assert.Contains(t, string(data), "color=red")
}

func TestRoute_ConfigFile(t *testing.T) {
	path := writeConfig(t, "target = 8\nfrontier = \"linear\"\n")

	var stdout, logBuf bytes.Buffer
	root := New(&logBuf, LogInfo).RootCommand()
	root.SetOut(&stdout)
	root.SetArgs([]string{"--config", path, "route"})
	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "Shortest Distance from 0 to 8 is 14\n")

	// Flags win over the file.
	stdout.Reset()
	root = New(&logBuf, LogInfo).RootCommand()
	root.SetOut(&stdout)
	root.SetArgs([]string{"--config", path, "route", "--target", "3"})
	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "Shortest Distance from 0 to 3 is 19\n")
}

func TestRoute_ConfigFileErrors(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.toml"), "route"})
	assert.Error(t, root.Execute(), "explicit config must exist")

	root = New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", writeConfig(t, "target = \"four\""), "route"})
	assert.ErrorContains(t, root.Execute(), "parse config")
}

func TestSearch_DefaultKeys(t *testing.T) {
	out, _, err := execute(t, "search")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"1-> found at index : 0",
		"35-> found at index : 2",
		"112-> found at index : 3",
		"324-> found at index : 5",
		"67-> not found",
	}, "\n")+"\n", out)
}

func TestSearch_CustomArray(t *testing.T) {
	out, _, err := execute(t, "search", "--in", "2,4,6,8", "8", "3")
	require.NoError(t, err)
	assert.Equal(t, "8-> found at index : 3\n3-> not found\n", out)
}

func TestSearch_Errors(t *testing.T) {
	_, _, err := execute(t, "search", "--in", "5,1", "1")
	assert.ErrorContains(t, err, "sorted")

	_, _, err = execute(t, "search", "x")
	assert.ErrorContains(t, err, `key "x"`)
}
