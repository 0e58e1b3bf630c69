package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vinhtrinh326/cpusched/internal/process"
	"github.com/vinhtrinh326/cpusched/internal/report"
	"github.com/vinhtrinh326/cpusched/internal/scheduler"
)

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Simulate the processes in FILE and print their schedule",
		Long: `Simulate the processes in FILE and print their schedule.

FILE holds one "arrival burst" pair per line, ordered by arrival time.
Processes are numbered from 1 in file order. Without --policy (or a policy in
the config file) a menu asks which algorithm to run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			ps, err := process.LoadFile(args[0])
			if err != nil {
				return err
			}
			logrus.Infof("loaded %d processes from %s", len(ps), args[0])

			policies, err := cfg.Policies()
			if err != nil {
				return err
			}
			quantum := cfg.Quantum
			if len(policies) == 0 {
				p, q, err := promptPolicy(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Quantum)
				if err != nil {
					return err
				}
				policies, quantum = []scheduler.Policy{p}, q
			}

			results, err := scheduler.Compare(ps, quantum, policies...)
			if err != nil {
				return err
			}
			for _, r := range results {
				if err := report.Write(cmd.OutOrStdout(), r.Policy.Title(), r.Processes, r.Trace, cfg.ShowGantt); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.policy, "policy", "", "Scheduling policy: fcfs, srt, rr or all")
	cmd.Flags().Int64Var(&opts.quantum, "quantum", 2, "Round-robin time quantum")
	cmd.Flags().BoolVar(&opts.noGantt, "no-gantt", false, "Do not print the Gantt chart")
	return cmd
}
