// Package grid provides the dense cell lattice every other dungen package
// builds on: integer coordinates, cell occupancy states, and direction
// bookkeeping.
//
// What:
//
//   - Vec is a 3-axis integer coordinate (Y is the vertical axis); a planar
//     dungeon is simply a domain whose Y extent is 1.
//   - Grid stores one CellState per coordinate of a fixed box domain, laid
//     out as a flat array addressed by x + sizeX·y + sizeX·sizeY·z.
//   - CellState records occupancy: Empty, Room, Corridor or Stair.
//   - Direction and DirectionSet model the open sides of a cell, used for
//     entrance detection after corridors are carved.
//
// Why:
//
//   - Placement, spanning-tree repair and pathfinding all address the same
//     coordinates; one shared value type avoids per-package conversions.
//   - A flat array beats nested slices for the tight inner loops of the
//     pathfinder and keeps cloning/serialization trivial.
//
// Complexity:
//
//   - Index/Coord/InBounds/Get/Set: O(1).
//   - Count: O(cells).
//
// Errors:
//
//   - ErrBadExtent: a domain extent is smaller than 1.
//   - ErrPayloadSize: decoded cell payload does not match the extents.
package grid
