package claims

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// claimFile mirrors the TOML claim file layout:
//
//	[[group]]
//	name = "Claim 3.1"
//
//	  [[group.claim]]
//	  name      = "3.1(i) n=3"
//	  statement = "no two Hamiltonian paths on 3 points are edge-disjoint"
//	  kind      = "paths"
//	  n         = 3
//	  want      = false
//
//	  [[group.claim]]
//	  name  = "3.1(ii) n=6 tight"
//	  kind  = "paths"
//	  n     = 6
//	  bound = "16*(n-1)/5"
//	  want  = false
type claimFile struct {
	Groups []rawGroup `toml:"group"`
}

type rawGroup struct {
	Name   string     `toml:"name"`
	Claims []rawClaim `toml:"claim"`
}

type rawClaim struct {
	Name      string `toml:"name"`
	Statement string `toml:"statement"`
	Kind      string `toml:"kind"`
	N         int    `toml:"n"`
	Bound     string `toml:"bound"`
	Want      bool   `toml:"want"`
}

// Load reads a TOML claim suite from r. Claim names must be unique across
// the whole file; an omitted bound means the unbounded search. A file with
// no claims at all yields ErrNoClaims.
func Load(r io.Reader) ([]Group, error) {
	var file claimFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("claims: decode: %w", err)
	}

	return convert(file)
}

// LoadFile reads a TOML claim suite from path.
func LoadFile(path string) ([]Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("claims: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// convert checks every raw claim and assembles the verified groups.
func convert(file claimFile) ([]Group, error) {
	var (
		groups = make([]Group, 0, len(file.Groups))
		seen   = make(map[string]struct{})
		total  int
	)

	for _, rg := range file.Groups {
		g := Group{Name: rg.Name, Claims: make([]Claim, 0, len(rg.Claims))}

		for _, rc := range rg.Claims {
			c, err := rc.toClaim()
			if err != nil {
				return nil, err
			}
			if _, dup := seen[c.Name]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateName, c.Name)
			}
			seen[c.Name] = struct{}{}

			g.Claims = append(g.Claims, c)
			total++
		}

		groups = append(groups, g)
	}

	if total == 0 {
		return nil, ErrNoClaims
	}

	return groups, nil
}

// toClaim validates one raw entry: known kind, point count of at least
// three, and a parsable bound when one is given.
func (rc rawClaim) toClaim() (Claim, error) {
	kind := Kind(rc.Kind)
	if kind != KindPaths && kind != KindCycles {
		return Claim{}, fmt.Errorf("%w: %q", ErrBadKind, rc.Kind)
	}
	if rc.N < 3 {
		return Claim{}, fmt.Errorf("%w: got %d", ErrBadN, rc.N)
	}

	c := Claim{
		Name:      rc.Name,
		Statement: rc.Statement,
		Kind:      kind,
		N:         rc.N,
		Want:      rc.Want,
	}
	if rc.Bound != "" {
		b, err := ParseBound(rc.Bound)
		if err != nil {
			return Claim{}, err
		}
		c.Bound = b
	}

	return c, nil
}
