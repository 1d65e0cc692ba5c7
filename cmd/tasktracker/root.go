package main

import (
	"context"
	"fmt"
	"os"

	"github.com/metalagman/tasktracker/internal/config"
	"github.com/metalagman/tasktracker/internal/logging"
	"github.com/metalagman/tasktracker/internal/task"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	debug   bool
	cfg     config.Config
	tracker task.Tracker
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd, err := newRootCmd()
	if err != nil {
		return err
	}
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() (*cobra.Command, error) {
	a := &app{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:           "tasktracker",
		Short:         "tasktracker keeps a list of tasks in a local JSON file",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          usageArgs(noSubcommandArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logging.Init(a.debug)
			return a.loadConfig()
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().String("file", task.DefaultFile, "tasks file path")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	if err := a.v.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file")); err != nil {
		return nil, fmt.Errorf("bind file flag: %w", err)
	}

	rootCmd.AddCommand(a.initCmd())
	rootCmd.AddCommand(a.addCmd())
	rootCmd.AddCommand(a.updateCmd())
	rootCmd.AddCommand(a.deleteCmd())
	rootCmd.AddCommand(a.markCmd("mark-in-progress", task.StatusInProgress))
	rootCmd.AddCommand(a.markCmd("mark-done", task.StatusDone))
	rootCmd.AddCommand(a.listCmd())
	rootCmd.AddCommand(a.showCmd())
	return rootCmd, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
}
