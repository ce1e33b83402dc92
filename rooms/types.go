// Package rooms defines the Room value type, placement options and the
// sentinel errors of this package.
package rooms

import (
	"errors"

	"github.com/katalvlaran/dungen/grid"
)

// Sentinel errors for room placement.
var (
	// ErrNilGrid indicates Place was called without a grid.
	ErrNilGrid = errors.New("rooms: grid must not be nil")
	// ErrNilRand indicates Place was called without an RNG.
	ErrNilRand = errors.New("rooms: rand source must not be nil")
	// ErrBadCount indicates a negative target room count.
	ErrBadCount = errors.New("rooms: room count must not be negative")
	// ErrBadAttempts indicates a placement attempt budget below 1.
	ErrBadAttempts = errors.New("rooms: max attempts must be at least 1")
	// ErrSizeRange indicates min/max room sizes that are not 1 ≤ min ≤ max
	// on every axis.
	ErrSizeRange = errors.New("rooms: room sizes must satisfy 1 <= min <= max on every axis")
	// ErrBadMargin indicates a negative buffer margin on some axis.
	ErrBadMargin = errors.New("rooms: buffer margin must not be negative")
)

// Entrance marks one room cell that opens onto a corridor or stair, with the
// direction it opens toward.
type Entrance struct {
	Cell grid.Vec       `json:"cell"`
	Dir  grid.Direction `json:"dir"`
}

// Room is a placed axis-aligned box. Cells span the half-open ranges
// [Origin, Origin+Extent) per axis. Entrances stays empty until corridor
// carving confirms openings.
type Room struct {
	Origin    grid.Vec   `json:"origin"`
	Extent    grid.Vec   `json:"extent"`
	Entrances []Entrance `json:"entrances,omitempty"`
}

// Center returns the integer center cell of the room.
func (r Room) Center() grid.Vec {
	return grid.Vec{
		X: r.Origin.X + r.Extent.X/2,
		Y: r.Origin.Y + r.Extent.Y/2,
		Z: r.Origin.Z + r.Extent.Z/2,
	}
}

// Max returns the exclusive upper corner, Origin + Extent.
func (r Room) Max() grid.Vec { return r.Origin.Add(r.Extent) }

// Contains reports whether v lies inside the room box.
// Complexity: O(1).
func (r Room) Contains(v grid.Vec) bool {
	max := r.Max()

	return v.X >= r.Origin.X && v.X < max.X &&
		v.Y >= r.Origin.Y && v.Y < max.Y &&
		v.Z >= r.Origin.Z && v.Z < max.Z
}

// Inflate returns the room grown by margin cells on both sides of every
// axis, the buffer box used for placement collision tests.
func (r Room) Inflate(margin grid.Vec) Room {
	return Room{
		Origin: r.Origin.Sub(margin),
		Extent: r.Extent.Add(margin.Scale(2)),
	}
}

// Intersects reports whether two boxes share at least one cell. Boxes
// intersect exactly when they overlap on every axis simultaneously.
// Complexity: O(1).
func (r Room) Intersects(o Room) bool {
	rMax, oMax := r.Max(), o.Max()

	return r.Origin.X < oMax.X && o.Origin.X < rMax.X &&
		r.Origin.Y < oMax.Y && o.Origin.Y < rMax.Y &&
		r.Origin.Z < oMax.Z && o.Origin.Z < rMax.Z
}

// ClosestCellTo returns the room cell nearest to target, clamping target
// into the box per axis. For a target outside the room this lands on the
// boundary facing it, which is what corridor portals want.
func (r Room) ClosestCellTo(target grid.Vec) grid.Vec {
	max := r.Max()
	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}

		return v
	}

	return grid.Vec{
		X: clamp(target.X, r.Origin.X, max.X-1),
		Y: clamp(target.Y, r.Origin.Y, max.Y-1),
		Z: clamp(target.Z, r.Origin.Z, max.Z-1),
	}
}

// PlaceOptions holds the tunable parameters of room placement.
type PlaceOptions struct {
	// Count is the target number of rooms.
	Count int
	// MaxAttempts bounds how many candidate boxes are sampled in total.
	MaxAttempts int
	// MinSize and MaxSize bound the sampled extent per axis, inclusive.
	MinSize, MaxSize grid.Vec
	// Margin inflates every candidate box for the collision test, keeping
	// accepted rooms at least Margin cells apart on inflated axes.
	Margin grid.Vec
}

// Default placement tunables.
const (
	// DefaultCount is the default target room count.
	DefaultCount = 8
	// DefaultMaxAttempts is the default sampling budget.
	DefaultMaxAttempts = 1000
)

// DefaultPlaceOptions returns placement defaults: 8 rooms, 1000 attempts,
// planar-friendly sizes 3..5 on X/Z with a single level on Y, and a one-cell
// horizontal margin.
func DefaultPlaceOptions() PlaceOptions {
	return PlaceOptions{
		Count:       DefaultCount,
		MaxAttempts: DefaultMaxAttempts,
		MinSize:     grid.Vec{X: 3, Y: 1, Z: 3},
		MaxSize:     grid.Vec{X: 5, Y: 1, Z: 5},
		Margin:      grid.Vec{X: 1, Y: 0, Z: 1},
	}
}

// Option mutates PlaceOptions before validation.
type Option func(*PlaceOptions)

// WithCount sets the target room count.
func WithCount(n int) Option {
	return func(o *PlaceOptions) { o.Count = n }
}

// WithMaxAttempts sets the sampling budget.
func WithMaxAttempts(n int) Option {
	return func(o *PlaceOptions) { o.MaxAttempts = n }
}

// WithSizeRange sets the inclusive per-axis extent bounds.
func WithSizeRange(min, max grid.Vec) Option {
	return func(o *PlaceOptions) {
		o.MinSize = min
		o.MaxSize = max
	}
}

// WithMargin sets the per-axis buffer margin.
func WithMargin(m grid.Vec) Option {
	return func(o *PlaceOptions) { o.Margin = m }
}

// validate reports the first violated constraint, if any.
func (o PlaceOptions) validate() error {
	if o.Count < 0 {
		return ErrBadCount
	}
	if o.MaxAttempts < 1 {
		return ErrBadAttempts
	}
	if o.MinSize.X < 1 || o.MinSize.Y < 1 || o.MinSize.Z < 1 ||
		o.MinSize.X > o.MaxSize.X || o.MinSize.Y > o.MaxSize.Y || o.MinSize.Z > o.MaxSize.Z {
		return ErrSizeRange
	}
	if o.Margin.X < 0 || o.Margin.Y < 0 || o.Margin.Z < 0 {
		return ErrBadMargin
	}

	return nil
}
