// Package walker follows a sequence of turn-and-walk instructions across the
// integer lattice, starting at the origin facing North.
//
// What:
//
//   - Step is one instruction: a Turn followed by a signed distance, written
//     as a token such as "R10" or "L-15".
//   - Displacement applies every step in one move per instruction and returns
//     the Manhattan distance of the end point from the origin.
//   - FirstIntersection walks the same route one unit cell at a time and
//     returns the distance of the first cell visited twice.
//
// Self-intersection:
//
//	The origin counts as visited before the first instruction. Each
//	instruction contributes |distance| unit steps along the rotated heading,
//	so a negative distance changes how far the walker goes, never which way
//	a unit step points. A route that never revisits a cell yields
//	ErrNoIntersection.
//
// Complexity:
//
//   - Displacement:       O(n) time, O(1) memory (n = number of steps).
//   - FirstIntersection:  O(Σ|distance|) time and memory.
package walker
