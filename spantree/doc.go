// Package spantree selects the room connections a dungeon will carve: a
// spanning tree over candidate edges, a mandatory connectivity repair, and
// probabilistic cycle edges for loops.
//
// What:
//
//   - Edge is a value type keyed by two room indices in canonical (A < B)
//     order, so unordered pairs compare equal with plain ==.
//   - CandidateFunc is the collaborator contract "vertex set in → edge set
//     out"; CompleteGraph and GabrielGraph are the built-in deterministic
//     builders.
//   - Build runs Prim's algorithm from vertex 0, repairs any vertices the
//     candidate graph left unreachable, then re-injects non-tree candidates
//     as cycle edges via independent Bernoulli draws.
//
// Why:
//
//   - A spanning tree guarantees every room is reachable; the extra cycle
//     edges keep layouts from degenerating into pure trees.
//   - Ties between equal-weight edges break by first-encountered order in
//     the candidate list. Build therefore scans the list instead of using a
//     heap: the tie-break is part of the contract, and dungeon-scale edge
//     counts keep the scan cheap.
//   - Repair is a hard guarantee, not best effort: a disconnected candidate
//     graph yields synthetic nearest-neighbor edges until nothing is left
//     unreached, and the caller sees them in Result.Repaired.
//
// Determinism: for a fixed candidate list, RNG and probability, Build
// returns identical Results. One Bernoulli draw is consumed per non-tree
// candidate in input order even when p is 0, so the RNG stream position
// stays independent of the probability value.
//
// Complexity: Build is O(V·E) for the scans plus O(V²) for repair;
// CompleteGraph is O(V²), GabrielGraph O(V³).
package spantree
