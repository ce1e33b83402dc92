// Package grid defines the coordinate, cell-state and direction types shared
// by all dungen packages, plus the sentinel errors of this package.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrBadExtent indicates a domain extent smaller than 1 on some axis.
	ErrBadExtent = errors.New("grid: extents must be at least 1 on every axis")
	// ErrPayloadSize indicates a decoded cell payload whose length does not
	// match the declared extents.
	ErrPayloadSize = errors.New("grid: cell payload does not match extents")
)

// CellState is the occupancy of a single grid coordinate. A coordinate is in
// exactly one state at a time; Stair cells are never retroactively turned
// into Room or Corridor cells.
type CellState uint8

const (
	// Empty marks an unclaimed cell.
	Empty CellState = iota
	// Room marks a cell inside a placed room box.
	Room
	// Corridor marks a carved corridor cell, including staircase endpoints.
	Corridor
	// Stair marks one of the four interior cells of a staircase footprint.
	Stair
)

// String returns a short human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Room:
		return "Room"
	case Corridor:
		return "Corridor"
	case Stair:
		return "Stair"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Vec is an integer point or displacement in the dungeon domain.
// X and Z span the horizontal plane; Y is the vertical axis.
type Vec struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Add returns v + o componentwise.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o componentwise.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v with every component multiplied by k.
func (v Vec) Scale(k int) Vec { return Vec{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the integer dot product of v and o.
func (v Vec) Dot(o Vec) int { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(float64(v.Dot(v)))
}

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Norm() }

// HorizontalDist returns the Euclidean distance between v and o projected
// onto the XZ plane, ignoring the vertical axis.
func (v Vec) HorizontalDist(o Vec) float64 {
	dx, dz := float64(v.X-o.X), float64(v.Z-o.Z)

	return math.Sqrt(dx*dx + dz*dz)
}

// String renders v as "(x,y,z)".
func (v Vec) String() string { return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z) }
