// Package looptrace discovers the single closed loop of connected pipes that
// runs through the entry cell of a pipegrid.Grid.
//
// What:
//
//   - Trace marks every loop cell Visited and returns a Loop holding the
//     walking order, the entry position and the inferred entry connector.
//   - The entry's shape is never guessed up front: its neighbours are tested
//     against every shape it could stand for, and the two that connect fix
//     its kind once the walk closes.
//   - Loop.Farthest is the distance, along the loop, of the cell farthest from
//     the entry (half the loop length).
//
// Why:
//
//   - The walk is inherently sequential: each step depends on the marks left
//     by the previous one. There is nothing to parallelise.
//
// Complexity:
//
//   - Trace: Time O(L), Memory O(L)   (L = loop length).
//
// Errors:
//
//   - ErrGridNil          grid pointer is nil
//   - ErrMissingEntry     no Start cell
//   - ErrMultipleEntries  more than one Start cell
//   - ErrAlreadyTraced    entry already resolved by an earlier Trace
//   - ErrBrokenLoop       zero or several legal continuations at some step
//   - hook errors         propagated from OnStep
package looptrace
