// Package rooms places non-overlapping box rooms into a dungeon grid by
// rejection sampling.
//
// What:
//
//   - Room is an axis-aligned box (origin + per-axis extent) with the
//     entrance metadata filled in after corridors are carved.
//   - Place samples candidate boxes from a seeded RNG and accepts a
//     candidate only when its buffer-inflated box stays clear of every
//     previously accepted room and inside the domain on all axes.
//   - Accepted rooms are stamped into the grid as Room cells.
//
// Why:
//
//   - Rejection sampling keeps placement trivially deterministic for a
//     fixed seed: the RNG consumption order (origin X,Y,Z then extent
//     X,Y,Z per attempt) is part of the contract.
//   - The buffer margin guarantees corridors always have at least one
//     free cell between neighboring rooms to route through.
//
// Placing fewer rooms than requested is not an error; the caller compares
// len(result) against the requested count and reports a configuration
// warning. Generation proceeds with the rooms that fit.
//
// Complexity: O(maxAttempts × placed) intersection tests plus O(room cells)
// stamping.
package rooms
