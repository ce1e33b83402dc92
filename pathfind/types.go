package pathfind

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dungen/grid"
)

var (
	// ErrNilGrid is returned by New when the grid is nil.
	ErrNilGrid = errors.New("pathfind: grid must not be nil")
	// ErrNilPolicy is returned by FindPath when no cost policy is supplied.
	ErrNilPolicy = errors.New("pathfind: cost policy must not be nil")
	// ErrOutOfBounds is returned by FindPath when start or goal lies outside
	// the grid.
	ErrOutOfBounds = errors.New("pathfind: endpoint outside the domain")
	// ErrBadTuning is returned by New when an option value is outside its
	// documented range.
	ErrBadTuning = errors.New("pathfind: tuning value out of range")
)

// Default tuning values. They favor short stair runs over long flat
// detours on typical dungeon extents.
const (
	DefaultVerticalWeight     = 2.0
	DefaultPendingStairWeight = 1.25
	DefaultStairUrgencyRadius = 6.0
	DefaultStairUrgencyBoost  = 1.0
)

// Cost is a policy verdict for one candidate move.
type Cost struct {
	// Traversable reports whether the move may be taken at all.
	Traversable bool
	// Cost is the non-negative price of the move. Ignored when not
	// traversable.
	Cost float64
	// Stairs marks the move as a vertical transition.
	Stairs bool
}

// CostPolicy judges a single move between two cells. Implementations must
// be pure: same arguments and same grid contents, same verdict. The
// pathfinder never mutates the grid during a search, so a policy may read
// it freely.
type CostPolicy func(from, to grid.Vec) Cost

// Options tunes the heuristic and the neighbor ordering.
type Options struct {
	// VerticalWeight scales the Y component of the distance estimate.
	// Must be at least 1: climbing is never estimated cheaper than
	// walking.
	VerticalWeight float64
	// PendingStairWeight multiplies the whole estimate while start and
	// goal are on different levels. Must be at least 1.
	PendingStairWeight float64
	// StairUrgencyRadius is the horizontal distance under which staircase
	// moves toward the goal level jump the expansion order. Must be
	// non-negative.
	StairUrgencyRadius float64
	// StairUrgencyBoost is the ordering score added to those moves. Must
	// be non-negative.
	StairUrgencyBoost float64
}

// DefaultOptions returns the tuning used by the dungeon assembler.
func DefaultOptions() Options {
	return Options{
		VerticalWeight:     DefaultVerticalWeight,
		PendingStairWeight: DefaultPendingStairWeight,
		StairUrgencyRadius: DefaultStairUrgencyRadius,
		StairUrgencyBoost:  DefaultStairUrgencyBoost,
	}
}

// Option mutates Options before validation.
type Option func(*Options)

// WithVerticalWeight overrides the vertical distance scale.
func WithVerticalWeight(w float64) Option {
	return func(o *Options) { o.VerticalWeight = w }
}

// WithPendingStairWeight overrides the pending-transition multiplier.
func WithPendingStairWeight(w float64) Option {
	return func(o *Options) { o.PendingStairWeight = w }
}

// WithStairUrgency overrides both urgency knobs at once.
func WithStairUrgency(radius, boost float64) Option {
	return func(o *Options) {
		o.StairUrgencyRadius = radius
		o.StairUrgencyBoost = boost
	}
}

// validate rejects out-of-range tunables.
func (o Options) validate() error {
	if o.VerticalWeight < 1 {
		return fmt.Errorf("%w: vertical weight %v < 1", ErrBadTuning, o.VerticalWeight)
	}
	if o.PendingStairWeight < 1 {
		return fmt.Errorf("%w: pending stair weight %v < 1", ErrBadTuning, o.PendingStairWeight)
	}
	if o.StairUrgencyRadius < 0 {
		return fmt.Errorf("%w: stair urgency radius %v < 0", ErrBadTuning, o.StairUrgencyRadius)
	}
	if o.StairUrgencyBoost < 0 {
		return fmt.Errorf("%w: stair urgency boost %v < 0", ErrBadTuning, o.StairUrgencyBoost)
	}

	return nil
}
