package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vinhtrinh326/cpusched/internal/config"
)

// options collects the flags shared by all commands. Flags that were set on
// the command line override the config file.
type options struct {
	configPath string
	logLevel   string
	policy     string
	quantum    int64
	noGantt    bool
	addr       string
}

// NewRootCmd builds the cpusched command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "cpusched",
		Short:        "Single-CPU process scheduling simulator (FCFS, SRT, Round-Robin)",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	root.AddCommand(newRunCmd(opts), newServeCmd(opts))
	return root
}

// Execute runs the CLI root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// resolve loads the config file, applies flag overrides and sets up logging.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("policy") {
		cfg.Policy = o.policy
	}
	if flags.Changed("quantum") {
		cfg.Quantum = o.quantum
	}
	if flags.Changed("no-gantt") {
		cfg.ShowGantt = !o.noGantt
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = o.addr
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, err
	}
	logrus.SetLevel(level)
	logrus.Debugf("resolved config: %+v", cfg)
	return cfg, nil
}
