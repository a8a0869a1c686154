// Package windows provides the command that lists the tileable top-level
// windows, useful for checking what the tiler will touch.
package windows

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duokai-tools/duokai/pkg/commands"
	"github.com/duokai-tools/duokai/pkg/winman"
)

func init() {
	commands.Register(newCommand())
}

func newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "windows",
		Short: "List the tileable top-level windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := winman.ListWindows()
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tileable windows found.")
				return nil
			}
			for i, w := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "[%d] 0x%08X %s\n", i+1, w.Handle, w.Title)
			}
			return nil
		},
	}
}
