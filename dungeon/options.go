package dungeon

import (
	"github.com/katalvlaran/dungen/grid"
	"github.com/katalvlaran/dungen/pathfind"
	"github.com/katalvlaran/dungen/rooms"
	"github.com/katalvlaran/dungen/spantree"
)

// DefaultExtents is the reference single-level domain.
var DefaultExtents = grid.Vec{X: 20, Y: 1, Z: 20}

// Options holds every tunable of Generate. Zero values are not meaningful;
// start from DefaultOptions via the functional options.
type Options struct {
	// Extents are the domain dimensions. Y is the vertical axis; a Y extent
	// of 1 produces a flat, single-level dungeon.
	Extents grid.Vec
	// Seed drives the single RNG stream of the run.
	Seed int64

	// Room placement tunables, forwarded to rooms.Place.
	RoomCount   int
	MaxAttempts int
	MinRoomSize grid.Vec
	MaxRoomSize grid.Vec
	Margin      grid.Vec

	// Candidates builds the candidate connection set over the room centers.
	Candidates spantree.CandidateFunc
	// ExtraEdgeProbability re-injects non-tree candidates as cycles.
	ExtraEdgeProbability float64

	// Weights price the carving moves; Pathfinding tunes the search itself.
	Weights     CostWeights
	Pathfinding []pathfind.Option

	// Hooks observe soft failures as they happen. Nil hooks are skipped.
	OnRoomShortfall func(placed, requested int)
	OnRepair        func(spantree.Edge)
	OnPathNotFound  func(spantree.Edge)
}

// DefaultOptions returns the reference configuration: a 20×1×20 domain,
// eight rooms of 3..5 cells per horizontal axis one cell apart, complete
// candidate graph, and the default carving weights.
func DefaultOptions() Options {
	pl := rooms.DefaultPlaceOptions()

	return Options{
		Extents:              DefaultExtents,
		Seed:                 0,
		RoomCount:            pl.Count,
		MaxAttempts:          pl.MaxAttempts,
		MinRoomSize:          pl.MinSize,
		MaxRoomSize:          pl.MaxSize,
		Margin:               pl.Margin,
		Candidates:           spantree.CompleteGraph,
		ExtraEdgeProbability: spantree.DefaultExtraEdgeProbability,
		Weights:              DefaultCostWeights(),
	}
}

// Option mutates Options before validation.
type Option func(*Options)

// WithExtents sets the domain dimensions.
func WithExtents(v grid.Vec) Option {
	return func(o *Options) { o.Extents = v }
}

// WithSeed sets the RNG seed of the run.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRoomCount sets the target room count.
func WithRoomCount(n int) Option {
	return func(o *Options) { o.RoomCount = n }
}

// WithMaxAttempts sets the placement sampling budget.
func WithMaxAttempts(n int) Option {
	return func(o *Options) { o.MaxAttempts = n }
}

// WithRoomSize sets the inclusive per-axis room extent bounds.
func WithRoomSize(min, max grid.Vec) Option {
	return func(o *Options) {
		o.MinRoomSize = min
		o.MaxRoomSize = max
	}
}

// WithMargin sets the per-axis placement buffer.
func WithMargin(m grid.Vec) Option {
	return func(o *Options) { o.Margin = m }
}

// WithCandidateGraph swaps the candidate connection builder, for example
// spantree.GabrielGraph.
func WithCandidateGraph(f spantree.CandidateFunc) Option {
	return func(o *Options) { o.Candidates = f }
}

// WithExtraEdgeProbability sets the cycle re-injection probability.
func WithExtraEdgeProbability(p float64) Option {
	return func(o *Options) { o.ExtraEdgeProbability = p }
}

// WithCostWeights overrides the carving move prices.
func WithCostWeights(w CostWeights) Option {
	return func(o *Options) { o.Weights = w }
}

// WithPathfinding forwards tunables to the corridor search.
func WithPathfinding(opts ...pathfind.Option) Option {
	return func(o *Options) { o.Pathfinding = opts }
}

// WithRoomShortfallHook reports placements that fell short of the target.
func WithRoomShortfallHook(f func(placed, requested int)) Option {
	return func(o *Options) { o.OnRoomShortfall = f }
}

// WithRepairHook reports each synthetic connection added during repair.
func WithRepairHook(f func(spantree.Edge)) Option {
	return func(o *Options) { o.OnRepair = f }
}

// WithPathNotFoundHook reports each connection no corridor was carved for.
func WithPathNotFoundHook(f func(spantree.Edge)) Option {
	return func(o *Options) { o.OnPathNotFound = f }
}

// validate checks the dungeon-owned constraints; the remaining options are
// validated by the phase packages they are forwarded to.
func (o Options) validate() error {
	if o.Candidates == nil {
		return ErrNilCandidates
	}

	return o.Weights.validate()
}
