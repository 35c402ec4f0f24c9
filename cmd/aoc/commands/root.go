package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridwalk/internal/config"
	"github.com/katalvlaran/gridwalk/internal/logging"
)

// state is shared by the root command and its subcommands.
type state struct {
	cfg    *config.Config
	logger *zap.Logger

	configPath string
	logLevel   string
}

// Execute runs the aoc CLI with the process arguments.
func Execute() error {
	return NewRootCmd(config.Default()).Execute()
}

// NewRootCmd builds the command tree. meta supplies the help and version
// text; a --config file may override everything else.
func NewRootCmd(meta *config.Config) *cobra.Command {
	st := &state{cfg: meta}
	opts := &solveOptions{}

	root := &cobra.Command{
		Use:          "aoc",
		Short:        meta.App.About,
		Long:         meta.App.Name + " by " + meta.App.Author,
		Version:      meta.App.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(st.configPath)
			if err != nil {
				return err
			}
			if st.logLevel != "" {
				cfg.Logging.Level = st.logLevel
			}
			logger, err := logging.New(cfg.Logging.Level)
			if err != nil {
				return err
			}
			st.cfg = cfg
			st.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if st.logger != nil {
				_ = st.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, st, opts)
		},
	}

	root.PersistentFlags().StringVar(&st.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&st.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	bindSolveFlags(root, opts, meta.Defaults.Part)

	root.AddCommand(daysCmd())
	return root
}
