// Package store persists generated dungeons under stable names.
//
// What:
//
//   - Store is the persistence contract: Save overwrites, Load returns
//     ErrNotFound for unknown names, List enumerates saved names in
//     lexicographic order, Close releases whatever the backend holds.
//   - FSStore keeps one pretty-printed JSON file per dungeon inside a
//     directory, created on first save.
//   - PostgresStore keeps one row per dungeon with the artifact as a JSONB
//     payload, upserting on name. The schema is created on connect.
//
// Both backends serialize the whole dungeon.Dungeon artifact, so a load
// reproduces exactly what was saved, including diagnostics and direction
// marks.
//
// Errors:
//
//   - ErrBadName: empty names or names that would escape the backend
//     namespace.
//   - ErrNilDungeon: saving nothing.
//   - ErrNotFound: loading a name that was never saved.
package store
