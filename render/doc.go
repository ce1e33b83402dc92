// Package render turns a generated dungeon into terminal text, one block of
// rows per vertical level.
//
// What:
//
//   - Renderer.Render prints every level bottom-up; Renderer.Level prints a
//     single one. Within a block, rows follow Z top to bottom and columns
//     follow X left to right, so a flat 20×1×20 dungeon prints as a plain
//     20×20 map.
//   - Each cell state has a glyph and a color style; confirmed room
//     entrances overlay their cell with the door glyph. Styling uses ANSI
//     escapes and can be turned off wholesale for logs and golden files.
//   - An optional legend names every glyph in use.
//
// Errors:
//
//   - ErrNilDungeon: the artifact (or its grid) is missing.
//   - ErrLevelRange: Level was asked for a Y outside the domain.
//
// Complexity: O(cells) per call.
package render
