package claims_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamlet/claims"
)

const suiteTOML = `
[[group]]
name = "paths frontier"

  [[group.claim]]
  name      = "no pair on 5"
  statement = "no two Hamiltonian paths on 5 points are edge-disjoint"
  kind      = "paths"
  n         = 5
  want      = false

  [[group.claim]]
  name  = "pair on 6 under loose bound"
  kind  = "paths"
  n     = 6
  bound = "4*(n-1)"
  want  = true

[[group]]
name = "cycles frontier"

  [[group.claim]]
  name = "pair on 5"
  kind = "cycles"
  n    = 5
  want = true
`

// TestLoad_OK decodes a two-group suite and checks kinds, bounds and
// statements came through.
func TestLoad_OK(t *testing.T) {
	groups, err := claims.Load(strings.NewReader(suiteTOML))
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "paths frontier", groups[0].Name)
	require.Len(t, groups[0].Claims, 2)

	first := groups[0].Claims[0]
	assert.Equal(t, "no pair on 5", first.Name)
	assert.Equal(t, claims.KindPaths, first.Kind)
	assert.Equal(t, 5, first.N)
	assert.False(t, first.Want)
	assert.Nil(t, first.Bound, "omitted bound means the unbounded search")
	assert.NotEmpty(t, first.Statement)

	second := groups[0].Claims[1]
	require.NotNil(t, second.Bound)
	assert.Equal(t, "4*(n-1)", second.Bound.String())
	assert.Equal(t, 20.0, second.Bound.Eval(6))

	assert.Equal(t, "cycles frontier", groups[1].Name)
	require.Len(t, groups[1].Claims, 1)
	assert.Equal(t, claims.KindCycles, groups[1].Claims[0].Kind)
}

// TestLoad_Sentinels covers each rejection: unknown kind, undersized n,
// malformed formula, duplicate names across groups and empty suites.
func TestLoad_Sentinels(t *testing.T) {
	_, err := claims.Load(strings.NewReader(`
[[group]]
name = "g"
  [[group.claim]]
  name = "c"
  kind = "tours"
  n    = 5
`))
	assert.ErrorIs(t, err, claims.ErrBadKind)

	_, err = claims.Load(strings.NewReader(`
[[group]]
name = "g"
  [[group.claim]]
  name = "c"
  kind = "paths"
  n    = 2
`))
	assert.ErrorIs(t, err, claims.ErrBadN)

	_, err = claims.Load(strings.NewReader(`
[[group]]
name = "g"
  [[group.claim]]
  name  = "c"
  kind  = "paths"
  n     = 6
  bound = "n*n"
`))
	assert.ErrorIs(t, err, claims.ErrBadFormula)

	_, err = claims.Load(strings.NewReader(`
[[group]]
name = "g1"
  [[group.claim]]
  name = "same"
  kind = "paths"
  n    = 6

[[group]]
name = "g2"
  [[group.claim]]
  name = "same"
  kind = "cycles"
  n    = 6
`))
	assert.ErrorIs(t, err, claims.ErrDuplicateName)

	_, err = claims.Load(strings.NewReader(""))
	assert.ErrorIs(t, err, claims.ErrNoClaims)

	_, err = claims.Load(strings.NewReader("[[group]]\nname = \"hollow\"\n"))
	assert.ErrorIs(t, err, claims.ErrNoClaims)
}

// TestLoad_DecodeError surfaces TOML syntax problems.
func TestLoad_DecodeError(t *testing.T) {
	_, err := claims.Load(strings.NewReader("[[group"))
	assert.Error(t, err)
}

// TestLoadFile round-trips the suite through a real file and reports a
// missing path.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.toml")
	require.NoError(t, os.WriteFile(path, []byte(suiteTOML), 0o644))

	groups, err := claims.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	_, err = claims.LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
