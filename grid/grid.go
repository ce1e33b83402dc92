package grid

import (
	"encoding/json"
	"fmt"
)

// Grid is a dense cell-state array over a fixed box domain. It is sized once
// at construction and never resized; one generation run owns its Grid
// exclusively, and no method is safe for concurrent use.
type Grid struct {
	size  Vec
	cells []CellState
}

// New constructs a Grid of the given extents with every cell Empty.
// Returns ErrBadExtent if any extent is smaller than 1.
// Complexity: O(cells) time and memory.
func New(size Vec) (*Grid, error) {
	if size.X < 1 || size.Y < 1 || size.Z < 1 {
		return nil, fmt.Errorf("%w: got %s", ErrBadExtent, size)
	}

	return &Grid{
		size:  size,
		cells: make([]CellState, size.X*size.Y*size.Z),
	}, nil
}

// Size returns the domain extents.
func (g *Grid) Size() Vec { return g.size }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether v lies inside the domain.
// Complexity: O(1).
func (g *Grid) InBounds(v Vec) bool {
	return v.X >= 0 && v.X < g.size.X &&
		v.Y >= 0 && v.Y < g.size.Y &&
		v.Z >= 0 && v.Z < g.size.Z
}

// Index maps v to its flat-array position: x + sizeX·y + sizeX·sizeY·z.
// The result is meaningful only for in-bounds v; callers check InBounds
// first. Complexity: O(1).
func (g *Grid) Index(v Vec) int {
	return v.X + g.size.X*v.Y + g.size.X*g.size.Y*v.Z
}

// Coord converts a flat-array position back to a coordinate, inverting
// Index. Complexity: O(1).
func (g *Grid) Coord(idx int) Vec {
	plane := g.size.X * g.size.Y

	return Vec{
		X: idx % g.size.X,
		Y: (idx % plane) / g.size.X,
		Z: idx / plane,
	}
}

// Get returns the state at v. The caller ensures InBounds(v) beforehand;
// Get does not re-check. Complexity: O(1).
func (g *Grid) Get(v Vec) CellState { return g.cells[g.Index(v)] }

// Set assigns the state at v. The caller ensures InBounds(v) beforehand;
// Set does not re-check. Complexity: O(1).
func (g *Grid) Set(v Vec, s CellState) { g.cells[g.Index(v)] = s }

// Count returns how many cells currently hold state s.
// Complexity: O(cells).
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}

	return n
}

// gridJSON is the serialized form of a Grid.
type gridJSON struct {
	Size  Vec         `json:"size"`
	Cells []CellState `json:"cells"`
}

// MarshalJSON encodes the grid as {"size": ..., "cells": [...]}.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(gridJSON{Size: g.size, Cells: g.cells})
}

// UnmarshalJSON decodes a grid previously produced by MarshalJSON.
// Returns ErrBadExtent or ErrPayloadSize on malformed payloads.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var raw gridJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("grid: decode: %w", err)
	}
	if raw.Size.X < 1 || raw.Size.Y < 1 || raw.Size.Z < 1 {
		return fmt.Errorf("%w: got %s", ErrBadExtent, raw.Size)
	}
	if len(raw.Cells) != raw.Size.X*raw.Size.Y*raw.Size.Z {
		return fmt.Errorf("%w: %d cells for %s", ErrPayloadSize, len(raw.Cells), raw.Size)
	}
	g.size = raw.Size
	g.cells = raw.Cells

	return nil
}
