// Package keypad walks a cursor across a keypad one key at a time and reads
// off the key it ends on.
//
// What:
//
//   - Layout is an immutable map from lattice positions to key symbols plus
//     the position the cursor starts on. It is described as a rectangular
//     grid of rows (top to bottom) where "" marks a hole in the pad.
//   - Keypad holds the active position for one Layout and applies
//     single-step moves: a move that would leave the pad is ignored.
//   - EnterCode applies one line of moves per code symbol and concatenates
//     the keys reached at the end of each line.
//
// Layouts:
//
//	Square (3×3, lattice (0,0) is "7", starts on "5"):
//
//	    1 2 3
//	    4 5 6
//	    7 8 9
//
//	Diamond (Manhattan radius 2 around "7", starts on "5"):
//
//	        1
//	      2 3 4
//	    5 6 7 8 9
//	      A B C
//	        D
//
// Invariant:
//
//	The active position of a Keypad always resolves to a key. Key reports
//	ErrUnreachableState if that ever fails to hold.
//
// Complexity:
//
//   - NewLayout: O(W×H) time and memory.
//   - Move, Key: O(1).
//   - EnterCode: O(total moves).
package keypad
