// Package gridwalk solves small grid-navigation puzzles on the 2-D integer
// lattice.
//
// What is gridwalk?
//
//	A handful of focused packages:
//		• geo      – Direction, Turn and Position primitives plus a visited set
//		• walker   – turn-and-walk routes: final displacement, first self-crossing
//		• keypad   – a cursor walking single steps over a pluggable keypad Layout
//		• triangle – side-length triples checked against the triangle inequality
//		• puzzle   – the Part selector and Solver contract shared by every day
//		• days     – the day → Solver registry used by the aoc command
//
// Every solver is a pure function from input text to answer text. Nothing is
// shared between calls and nothing blocks.
//
// Quick ASCII example (walker, "R2, L3"):
//
//	      ┌ (2,3)
//	      │
//	      │
//	  ·───┘
//	(0,0)
//
//	ends 5 blocks from the origin.
//
//	go install github.com/katalvlaran/gridwalk/cmd/aoc@latest
package gridwalk
