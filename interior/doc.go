// Package interior decides which cells of a traced pipegrid.Grid lie inside
// its loop, using one horizontal scanline parity test per row.
//
// What
//
//   - Classify marks enclosed off-loop cells Interior and returns their count.
//   - Crossings are counted from each cell to the row's east edge. Vertical
//     pipes cross; a horizontal stretch of loop crosses once only when its two
//     end corners turn to opposite sides (L…7 or F…J). L…J and F…7 merely
//     graze the scanline and count nothing.
//   - Cells west of a row's first loop cell, and rows without loop cells, are
//     exterior.
//
// Precondition
//
//	looptrace.Trace must have run: the entry is resolved and every Visited
//	cell is joined to Visited neighbours on both ends. Anything else returns
//	ErrNotTraced before any mark is written.
//
// Concurrency
//
//	Rows are independent. WithWorkers(n) scans up to n rows at once; the
//	result does not depend on n.
//
// Complexity
//
//   - Time:   O(W×H)
//   - Memory: O(H)
package interior
