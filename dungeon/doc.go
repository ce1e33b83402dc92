// Package dungeon assembles complete multi-level layouts: rooms scattered
// over a discrete 3D domain, a corridor network connecting every one of
// them, and staircases wherever the network changes level.
//
// What:
//
//   - Generate runs the full pipeline on a fresh grid and returns a Dungeon
//     artifact. The pipeline has four phases:
//     1. Place rooms by rejection sampling (package rooms).
//     2. Select connections: candidate edges over the room centers, a
//     spanning tree with repair, plus probabilistic cycle edges
//     (package spantree).
//     3. Carve each connection with constrained A* (package pathfind),
//     entering rooms through the boundary cells facing each other and
//     truncating the route at the first cell inside the destination.
//     4. Sweep room boundaries for mutually confirmed openings and record
//     them as entrances.
//   - Cell states only ever harden: Empty cells become Corridor or Stair,
//     Room cells stay Room even when a corridor passes through, and the
//     four interior cells of a staircase are claimed atomically, verified
//     against an audit set.
//
// Determinism:
//
//   - One seed drives the entire run. Same extents, options and seed
//     reproduce the identical artifact, byte for byte. DeriveSeed expands a
//     master seed into independent per-dungeon seeds for batch generation.
//
// Soft failures and hooks:
//
//   - A placement shortfall, a repaired connection or an uncarvable one do
//     not abort the run. They are recorded in Diagnostics and, when the
//     caller registered the matching hook (WithRoomShortfallHook,
//     WithRepairHook, WithPathNotFoundHook), reported as they happen.
//   - Errors are reserved for invalid configuration and for internal
//     invariant violations (ErrInvariant), which indicate a bug rather
//     than an unlucky seed.
//
// Complexity: placement O(attempts × rooms); connection O(rooms² ×
// candidates); carving O(edges × cells × moves × path length).
package dungeon
