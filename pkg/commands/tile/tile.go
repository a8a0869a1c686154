// Package tile provides the command that arranges top-level windows into
// a grid on the primary display.
package tile

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"

	"github.com/duokai-tools/duokai/pkg/commands"
	"github.com/duokai-tools/duokai/pkg/config"
	"github.com/duokai-tools/duokai/pkg/tiler"
	"github.com/duokai-tools/duokai/pkg/winman"
)

func init() {
	commands.Register(newCommand())
}

func newCommand() *cobra.Command {
	var (
		columns    int
		rows       int
		count      int
		fullScreen bool
		resolution []int
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "tile",
		Short: "Tile the desktop's windows into a grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			opts := tiler.Options{
				Columns:     cfg.Columns,
				Rows:        cfg.Rows,
				Count:       cfg.Count,
				UseWorkArea: cfg.UseWorkArea,
				DryRun:      dryRun,
			}

			if cmd.Flags().Changed("columns") {
				opts.Columns = columns
			}
			if cmd.Flags().Changed("rows") {
				opts.Rows = rows
			}
			if cmd.Flags().Changed("count") {
				opts.Count = count
			}
			if fullScreen {
				opts.UseWorkArea = false
			}
			if cmd.Flags().Changed("resolution") {
				if len(resolution) != 2 {
					return fmt.Errorf("--resolution expects exactly two values: width,height")
				}
				opts.Resolution = &winman.Screen{W: resolution[0], H: resolution[1]}
			}

			if opts.Columns < 1 || opts.Rows < 1 || opts.Count < 1 {
				return fmt.Errorf("columns, rows and count must all be at least 1")
			}

			return tiler.New().Tile(opts)
		},
	}

	cmd.Flags().IntVar(&columns, "columns", 3, "number of grid columns")
	cmd.Flags().IntVar(&rows, "rows", 2, "number of grid rows")
	cmd.Flags().IntVar(&count, "count", 6, "maximum number of windows to tile")
	cmd.Flags().BoolVar(&fullScreen, "full-screen", false, "use the full screen instead of the work area")
	cmd.Flags().IntSliceVar(&resolution, "resolution", nil, "force a layout area, e.g. --resolution 2560,1440")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the layout without moving windows")

	return cmd
}

func loadConfig() Config {
	cfg := DefaultConfig()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return DefaultConfig()
	}
	if err := decoder.Decode(config.Get().GetTileConfig()); err != nil {
		return DefaultConfig()
	}
	return cfg
}
