// Package commands provides a registry for duokai subcommands.
// Command packages register themselves on initialization and are
// attached to the root command at startup.
package commands

import (
	"sort"

	"github.com/spf13/cobra"
)

var registry = make(map[string]*cobra.Command)

// Register registers a subcommand under its name.
func Register(cmd *cobra.Command) {
	registry[cmd.Name()] = cmd
}

// List returns all registered subcommands, sorted by name.
func List() []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range registry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}
