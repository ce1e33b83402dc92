// Package dungen is your deterministic playground for synthesizing,
// inspecting, and serving dungeon topologies — connected networks of
// rooms, corridors and staircases on a discrete 3D grid.
//
// 🚀 What is dungen?
//
//	A seeded, reproducible generation library that brings together:
//		• Grid domain: a dense 3-axis cell lattice with monotone state stamping
//		• Room placement: rejection-sampled boxes with collision margins
//		• Connectivity: minimum spanning tree over candidate graphs + cycle re-injection
//		• Carving: constrained A* with staircase moves spanning vertical levels
//		• Rendering: per-level ASCII maps with ANSI styling and a legend
//		• Persistence: filesystem and Postgres artifact stores
//
// ✨ Why choose dungen?
//
//   - Deterministic – one seed reproduces the whole topology, bit for bit
//   - Honest diagnostics – shortfalls and unreached connections are reported, never papered over
//   - Tunable – functional options on every phase, hooks on every soft failure
//   - Composable – each phase is its own package with a narrow contract
//
// Under the hood, everything is organized under focused subpackages:
//
//	grid/     — cells, coordinates, direction sets & the dense 3D domain
//	rooms/    — seeded rectangular room placement
//	spantree/ — candidate graphs, spanning tree selection & repair
//	pathfind/ — constrained A* over the grid with staircase templates
//	pqueue/   — the priority queue backing the search
//	dungeon/  — the assembly pipeline producing the final artifact
//	render/   — ASCII presentation of an artifact
//	store/    — saving, loading and listing artifacts
//
// Quick ASCII example:
//
//	██···
//	█+░░+
//	····█
//
//	two rooms joined by a corridor through their confirmed entrances.
//
// The cmd/dungen CLI renders dungeons straight to your terminal; the
// cmd/dungend daemon serves them as JSON and pushes fresh ones over a
// websocket stream.
//
//	go get github.com/katalvlaran/dungen
package dungen
