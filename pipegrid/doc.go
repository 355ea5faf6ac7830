// Package pipegrid models a rectangular grid of pipe connector tiles as a flat
// arena, the shared data model for loop tracing and interior classification.
//
// What:
//
//   - Kind is the closed connector vocabulary: | - L J 7 F . S.
//   - Grid stores cells row-major; neighbours are found by coordinate
//     arithmetic, never by stored links, so the cyclic loop structure never
//     turns into an ownership cycle.
//   - Connects is the whole adjacency rule as one table: a step from one
//     kind to another toward a direction is legal iff both connectors face
//     each other. Start opens every way until ResolveEntry fixes its shape.
//   - Parse turns tile text into a Grid.
//
// Complexity:
//
//   - NewGrid / Parse:      O(W×H) time and memory.
//   - At, Neighbor, Connects: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMalformedGrid:  unknown tile rune (returned as *TileError).
//   - ErrNoEntry, ErrEntryResolved, ErrNotConnector: misuse of ResolveEntry.
package pipegrid
