// Package pathfind carves corridors: a constrained A* search over the
// dungeon grid whose moves can reserve several cells at once and whose
// paths never cross themselves.
//
// What:
//
//   - Pathfinder runs repeated searches over one grid. A search expands the
//     four cardinal XZ moves and, in domains more than one level tall, eight
//     staircase moves (one per compass direction, up and down). A staircase
//     move is a single edge spanning a 3-cell horizontal and 1-cell vertical
//     displacement that reserves six cells: the origin, two intermediates at
//     the origin level, the two cells above or below those intermediates,
//     and the destination.
//   - The pathfinder enforces legality itself: the destination must be in
//     bounds, must not appear in the path's visited-set, and for staircase
//     moves none of the six reserved cells may appear there either.
//     Everything else (may this cell be carved, what does the move cost) is
//     delegated to an injected CostPolicy, a pure function of the grid
//     snapshot it reads.
//   - Success returns the coordinate path from start to goal. Exhausting
//     the queue is an ordinary outcome, reported as found=false; the caller
//     simply omits that corridor.
//
// How the search stays fast and reusable:
//
//   - Per-coordinate records live in a flat arena indexed by the grid
//     linearization, tagged with a per-search generation, so starting the
//     next search is O(1) instead of reallocating.
//   - Visited-sets are persistent cons lists: each move extends its parent's
//     set by pushing the parent coordinate (plus the four interior stair
//     cells for staircase moves) without copying the tail, which sibling
//     nodes share.
//   - The open set is an indexed priority queue with true decrease-key
//     (package pqueue); relaxation updates cost, predecessor, visited-set
//     and queue priority together.
//
// Ordering and heuristic:
//
//   - Before expansion, candidate moves sort by descending alignment with
//     the direction to the goal (dot product of normalized vectors). While
//     the goal is on another level and the horizontal residual is inside
//     StairUrgencyRadius, staircase moves toward that level get a score
//     boost so the search tries them first. Ordering only picks among
//     equal-cost discoveries, never changes reachability.
//   - The heuristic is a weighted Euclidean distance with the vertical axis
//     scaled by VerticalWeight (about 2×) and the whole estimate scaled by
//     PendingStairWeight while a height difference remains. It is tuned for
//     dungeon layouts, not proven admissible, so returned paths may be
//     slightly suboptimal; for a fixed grid, options and policy they are
//     always the same paths.
//
// Errors:
//
//   - ErrNilGrid, ErrNilPolicy, ErrOutOfBounds: contract violations of
//     New/FindPath.
//   - ErrBadTuning: heuristic or ordering tunables outside their ranges.
//   - Queue errors surfacing from a search are programming errors and abort
//     it; "no path" is not an error.
//
// Complexity: O(cells × moves × path length) in the worst case; the path
// length factor comes from visited-set membership walks.
package pathfind
