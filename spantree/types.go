// Package spantree defines the Edge value type, build options, result and
// sentinel errors of this package.
package spantree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dungen/grid"
)

// Sentinel errors for spanning-tree construction.
var (
	// ErrNilRand indicates Build was called without an RNG.
	ErrNilRand = errors.New("spantree: rand source must not be nil")
	// ErrVertexRange indicates a candidate edge endpoint outside [0, len(centers)).
	ErrVertexRange = errors.New("spantree: edge endpoint out of vertex range")
	// ErrSelfLoop indicates a candidate edge connecting a vertex to itself.
	ErrSelfLoop = errors.New("spantree: edge endpoints must differ")
	// ErrProbabilityRange indicates an extra-edge probability outside [0, 1].
	ErrProbabilityRange = errors.New("spantree: extra-edge probability must be within [0, 1]")
)

// Edge connects two rooms identified by their indices in the placement
// order. Endpoints are kept in canonical A < B order, so two edges over the
// same unordered pair compare equal with ==, whichever way they were built.
type Edge struct {
	A      int     `json:"a"`
	B      int     `json:"b"`
	Weight float64 `json:"weight"`
}

// NewEdge builds an Edge over the unordered pair {u, v}, canonicalizing the
// endpoint order.
func NewEdge(u, v int, weight float64) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{A: u, B: v, Weight: weight}
}

// Touches reports whether v is one of the edge's endpoints.
func (e Edge) Touches(v int) bool { return e.A == v || e.B == v }

// Other returns the endpoint opposite v. The caller ensures Touches(v).
func (e Edge) Other(v int) int {
	if e.A == v {
		return e.B
	}

	return e.A
}

// String renders the edge as "A-B (weight)".
func (e Edge) String() string { return fmt.Sprintf("%d-%d (%.2f)", e.A, e.B, e.Weight) }

// CandidateFunc produces the candidate edge set for a list of room centers.
// Implementations must be deterministic: the returned order is the tie-break
// order of Build.
type CandidateFunc func(centers []grid.Vec) []Edge

// Result holds the selected connections of one build, split by origin.
type Result struct {
	// Tree lists the spanning-tree edges in Prim pick order.
	Tree []Edge `json:"tree"`
	// Repaired lists the synthetic edges added for vertices the candidate
	// graph could not reach, in ascending vertex order.
	Repaired []Edge `json:"repaired,omitempty"`
	// Extras lists the probabilistically re-injected cycle edges in
	// candidate order.
	Extras []Edge `json:"extras,omitempty"`
}

// Selected returns all chosen edges in carve order: tree, then repaired,
// then extras.
func (r Result) Selected() []Edge {
	out := make([]Edge, 0, len(r.Tree)+len(r.Repaired)+len(r.Extras))
	out = append(out, r.Tree...)
	out = append(out, r.Repaired...)
	out = append(out, r.Extras...)

	return out
}

// DefaultExtraEdgeProbability is the default Bernoulli probability for
// re-injecting a non-tree candidate as a cycle edge.
const DefaultExtraEdgeProbability = 0.125

// Options holds the tunable parameters of Build.
type Options struct {
	// ExtraEdgeProbability is the independent inclusion probability for each
	// non-tree candidate edge.
	ExtraEdgeProbability float64
}

// DefaultOptions returns the Build defaults.
func DefaultOptions() Options {
	return Options{ExtraEdgeProbability: DefaultExtraEdgeProbability}
}

// Option mutates Options before validation.
type Option func(*Options)

// WithExtraEdgeProbability sets the cycle-edge inclusion probability.
func WithExtraEdgeProbability(p float64) Option {
	return func(o *Options) { o.ExtraEdgeProbability = p }
}

// validate reports the first violated constraint, if any.
func (o Options) validate() error {
	if o.ExtraEdgeProbability < 0 || o.ExtraEdgeProbability > 1 {
		return fmt.Errorf("%w: got %v", ErrProbabilityRange, o.ExtraEdgeProbability)
	}

	return nil
}
