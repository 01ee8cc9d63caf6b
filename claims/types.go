package claims

import (
	"errors"
	"time"
)

// Kind selects which family of tours a claim quantifies over.
type Kind string

const (
	// KindPaths quantifies over canonical Hamiltonian paths on a line.
	KindPaths Kind = "paths"

	// KindCycles quantifies over canonical Hamiltonian cycles on a circle.
	KindCycles Kind = "cycles"
)

var (
	// ErrNoClaims is returned when a claim file holds nothing to verify.
	ErrNoClaims = errors.New("claims: no claims to verify")

	// ErrBadKind is returned for a kind other than "paths" or "cycles".
	ErrBadKind = errors.New(`claims: kind must be "paths" or "cycles"`)

	// ErrBadN is returned for a point count below three.
	ErrBadN = errors.New("claims: point count must be at least three")

	// ErrBadFormula is returned when a bound formula does not parse or has
	// a non-positive divisor.
	ErrBadFormula = errors.New("claims: malformed bound formula")

	// ErrDuplicateName is returned when two claims in one file share a name.
	ErrDuplicateName = errors.New("claims: duplicate claim name")
)

// Claim is one falsifiable statement about an exhaustive search.
type Claim struct {
	// Name uniquely identifies the claim within a suite.
	Name string

	// Statement is the sentence being verified, for narration.
	Statement string

	// Kind selects the search family.
	Kind Kind

	// N is the point count handed to the search.
	N int

	// Bound, when non-nil, restricts the search to pairs whose combined
	// cost is strictly below Bound.Eval(N). Bounded cycle searches are
	// additionally restricted to odd-depth tours.
	Bound *Bound

	// Want is the expected existence answer.
	Want bool
}

// Result is the outcome of verifying one claim.
type Result struct {
	// Claim is the verified claim, echoed for reporting.
	Claim Claim

	// Got is the answer the exhaustive search produced.
	Got bool

	// Holds reports Got == Claim.Want.
	Holds bool

	// Elapsed is the wall-clock search time.
	Elapsed time.Duration
}

// Group is a named set of claims verified together.
type Group struct {
	Name   string
	Claims []Claim
}
