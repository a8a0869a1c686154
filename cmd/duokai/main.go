package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/duokai-tools/duokai/pkg/commands"
	_ "github.com/duokai-tools/duokai/pkg/commands/run"
	_ "github.com/duokai-tools/duokai/pkg/commands/shortcut"
	_ "github.com/duokai-tools/duokai/pkg/commands/tile"
	_ "github.com/duokai-tools/duokai/pkg/commands/windows"
	"github.com/duokai-tools/duokai/pkg/config"
)

const version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "duokai",
		Short:        "Desktop launcher and window tiling tools for the window manager GUI",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newInitCommand(), newVersionCommand())
	root.AddCommand(commands.List()...)

	return root
}

func setupLogging(verbose bool) {
	level := config.Get().Log.Level
	if verbose {
		level = "debug"
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the user config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitUserConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config initialized at: %s\n", config.GetUserConfigPath())
			fmt.Fprintln(cmd.OutOrStdout(), "Edit the file to customize duokai.")
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "duokai version %s\n", version)
		},
	}
}
