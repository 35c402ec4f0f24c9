// Package geo provides the 2-D integer lattice primitives every gridwalk
// solver walks on: compass headings, relative turns and lattice points.
//
// What:
//
//   - Direction: one of four compass headings with a fixed unit vector
//     (N=(0,1), E=(1,0), S=(0,-1), W=(-1,0)).
//   - Turn: Left or Right, relative to the current heading.
//   - Position: an (X, Y) lattice point that can walk along a heading and
//     report its Manhattan distance from the origin.
//   - PositionSet: a visited set of positions.
//
// Parsing:
//
//	Turns and directions use two overlapping vocabularies. ParseTurn accepts
//	only "R" and "L". ParseDirection accepts compass letters N/E/S/W and the
//	keypad aliases U/R/D/L. "R" and "L" therefore mean different things to the
//	two parsers; callers pick the parser that matches their input format.
//
// Complexity:
//
//   - All Direction, Turn and Position operations: O(1).
//   - PositionSet.Add / Contains: O(1) amortized.
//
// Positions are never bounds-checked: any int pair is a valid point.
package geo
