package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridwalk/days"
	"github.com/katalvlaran/gridwalk/puzzle"
)

type solveOptions struct {
	day          int
	part         string
	input        string
	resetPerLine bool
}

func bindSolveFlags(cmd *cobra.Command, opts *solveOptions, defaultPart string) {
	cmd.Flags().IntVar(&opts.day, "day", 0, "which day's problem to solve (1-25)")
	cmd.Flags().StringVar(&opts.part, "part", defaultPart, "which part of the problem to solve, 1 or 2")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "problem input file")
	cmd.Flags().BoolVar(&opts.resetPerLine, "reset-per-line", false, "day 2: start every line from the initial key")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("input")
}

func runSolve(cmd *cobra.Command, st *state, opts *solveOptions) error {
	partStr := opts.part
	if !cmd.Flags().Changed("part") {
		partStr = st.cfg.Defaults.Part
	}
	part, err := puzzle.ParsePart(partStr)
	if err != nil {
		st.logger.Error("Unable to parse arguments", zap.Error(err))
		return err
	}
	settings := days.Settings{KeypadResetPerLine: st.cfg.Defaults.ResetPerLine}
	if cmd.Flags().Changed("reset-per-line") {
		settings.KeypadResetPerLine = opts.resetPerLine
	}
	solver, err := days.LookupWith(opts.day, settings)
	if err != nil {
		st.logger.Error("Error with problem solver", zap.Int("day", opts.day), zap.Error(err))
		return err
	}
	data, err := os.ReadFile(opts.input)
	if err != nil {
		st.logger.Error("Unable to read input", zap.String("path", opts.input), zap.Error(err))
		return fmt.Errorf("unable to read input from %s: %w", opts.input, err)
	}
	st.logger.Debug("Solving",
		zap.Int("day", opts.day),
		zap.Stringer("part", part),
		zap.String("input", opts.input),
		zap.Int("bytes", len(data)))

	start := time.Now()
	solution, err := solver.Solve(part, string(data))
	elapsed := time.Since(start)
	if err != nil {
		st.logger.Error("Unable to solve problem",
			zap.Int("day", opts.day), zap.Stringer("part", part), zap.Error(err))
		return fmt.Errorf("unable to solve problem %d.%s: %w", opts.day, part, err)
	}
	st.logger.Info("Solved",
		zap.Int("day", opts.day), zap.Stringer("part", part), zap.Duration("elapsed", elapsed))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Solution: %s\n", solution)
	fmt.Fprintf(out, "Time to solve: %d us\n", elapsed.Microseconds())
	return nil
}
