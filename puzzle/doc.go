// Package puzzle defines the contract shared by every day solver in gridwalk.
//
// What:
//
//   - Part selects which half of a day's puzzle runs (One or Two).
//   - Solver turns a raw puzzle input into a displayable answer.
//   - ErrParse is the umbrella sentinel every input-parsing failure wraps.
//
// Why:
//
//   - Callers (the aoc CLI, tests, benchmarks) dispatch on day and part without
//     knowing anything about the underlying geometry.
//   - errors.Is(err, puzzle.ErrParse) separates bad input from logic failures
//     such as walker.ErrNoIntersection.
package puzzle
