// Package commands defines the aoc CLI.
//
// Commands
//
//   - aoc --day N [--part P] --input FILE   Solve one part of one day
//   - aoc days                               List the days that have solvers
//
// # Implementation
//
// The root command loads the optional YAML config and builds a zap logger
// before any command runs. Solving reads the whole input file, looks the day
// up in the days registry and prints the answer with the time it took.
package commands
