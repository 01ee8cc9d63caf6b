package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamlet/claims"
	"github.com/katalvlaran/hamlet/hampath"
)

// execute runs the CLI with the given arguments and returns captured stdout,
// stderr and the command error. Logging defaults to the error level so
// passing runs stay quiet.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd(Options{Level: LogError, NoColor: true})
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

// writeSuite drops a TOML claim file into a temp dir and returns its path.
func writeSuite(t *testing.T, toml string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "suite.toml")
	require.NoError(t, os.WriteFile(path, []byte(toml), 0o644))

	return path
}

// TestPathsCmd checks the unbounded paths query on both sides of the
// smallest point count that admits an edge-disjoint pair.
func TestPathsCmd(t *testing.T) {
	out, _, err := execute(t, "paths", "6")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, _, err = execute(t, "paths", "5")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

// TestPathsCmd_Bounded checks that the bound flag tightens the query: six
// points have a disjoint pair, but none with combined cost under 16(n-1)/5.
func TestPathsCmd_Bounded(t *testing.T) {
	out, _, err := execute(t, "paths", "6", "--bound", "16*(n-1)/5")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, _, err = execute(t, "paths", "6", "--bound", "4*(n-1)")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

// TestPathsCmd_Errors checks argument and flag validation.
func TestPathsCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "paths", "six")
	assert.ErrorContains(t, err, "not an integer")

	_, _, err = execute(t, "paths", "1")
	assert.ErrorIs(t, err, hampath.ErrTooShort)

	_, _, err = execute(t, "paths")
	assert.Error(t, err)

	_, _, err = execute(t, "paths", "6", "--bound", "nope")
	assert.ErrorIs(t, err, claims.ErrBadFormula)
}

// TestCyclesCmd checks the unbounded cycles query on both sides of the
// smallest point count that admits an edge-disjoint pair of tours.
func TestCyclesCmd(t *testing.T) {
	out, _, err := execute(t, "cycles", "5")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, _, err = execute(t, "cycles", "4")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

// TestCyclesCmd_Bounded checks the odd-depth restricted bounded query. Five
// points admit a disjoint pair of tours, yet no odd-depth pair at any cost,
// so even the loose bound answers false there.
func TestCyclesCmd_Bounded(t *testing.T) {
	out, _, err := execute(t, "cycles", "5", "--bound", "4*n")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, _, err = execute(t, "cycles", "6", "--bound", "4*n")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, _, err = execute(t, "cycles", "6", "--bound", "16*n/5")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

// TestVerboseFlag checks that -v lowers the level to debug and that the
// bound evaluation lands on stderr, keeping stdout clean.
func TestVerboseFlag(t *testing.T) {
	out, errOut, err := execute(t, "-v", "cycles", "5", "--bound", "4*n")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
	assert.Contains(t, errOut, "evaluates to 20")
}

// TestVerifyCmd runs a small suite from a file.
func TestVerifyCmd(t *testing.T) {
	path := writeSuite(t, `
[[group]]
name = "Smoke"

[[group.claim]]
name = "paths n=6"
statement = "six points admit an edge-disjoint pair of paths"
kind = "paths"
n = 6
want = true

[[group.claim]]
name = "cycles n=4"
statement = "four points admit no edge-disjoint pair of tours"
kind = "cycles"
n = 4
want = false
`)

	_, _, err := execute(t, "verify", path)
	assert.NoError(t, err)
}

// TestVerifyCmd_FailedClaim checks that a claim settling against its
// expectation turns into a non-nil command error.
func TestVerifyCmd_FailedClaim(t *testing.T) {
	path := writeSuite(t, `
[[group]]
name = "Broken"

[[group.claim]]
name = "paths n=5"
statement = "five points admit an edge-disjoint pair of paths"
kind = "paths"
n = 5
want = true
`)

	_, errOut, err := execute(t, "verify", path)
	assert.ErrorContains(t, err, "1 claim(s) failed verification")
	assert.Contains(t, errOut, "paths n=5")
}

// TestVerifyCmd_MissingFile checks that an unreadable suite aborts cleanly.
func TestVerifyCmd_MissingFile(t *testing.T) {
	_, _, err := execute(t, "verify", filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

// TestProveCmd runs the full built-in suite end to end. This is the slowest
// test in the package; it exercises every claim the binary ships with.
func TestProveCmd(t *testing.T) {
	if testing.Short() {
		t.Skip("full Price of Diversity suite")
	}

	_, _, err := execute(t, "prove")
	assert.NoError(t, err)
}

// TestLoggerFallback checks that commands run without a logger in context
// still get a usable default.
func TestLoggerFallback(t *testing.T) {
	l := loggerFromContext(context.Background())
	require.NotNil(t, l)
}

// TestParseLevel covers the level mapping, including the info fallback.
func TestParseLevel(t *testing.T) {
	assert.Equal(t, LogDebug, ParseLevel("debug"))
	assert.Equal(t, LogInfo, ParseLevel("info"))
	assert.Equal(t, LogWarn, ParseLevel("warn"))
	assert.Equal(t, LogError, ParseLevel("error"))
	assert.Equal(t, LogInfo, ParseLevel("anything-else"))
}
