package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/days"
)

func daysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the days that have solvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range days.Registered() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", e.Day, e.Title)
			}
			return nil
		},
	}
}
