// Package shortcut provides the command that writes the desktop launcher
// script for the window manager GUI.
package shortcut

import (
	"github.com/fatih/color"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"

	"github.com/duokai-tools/duokai/internal/utils"
	"github.com/duokai-tools/duokai/pkg/commands"
	"github.com/duokai-tools/duokai/pkg/config"
	"github.com/duokai-tools/duokai/pkg/launcher"
)

func init() {
	commands.Register(newCommand())
}

func newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shortcut [silent|debug]",
		Short: "Write a desktop script that launches the window manager GUI",
		Long: `Writes a standalone launcher script to the user's desktop. The script
re-resolves the install directory when it runs, picks the first available
interpreter (py before python) and starts the GUI program.

The silent variant launches quietly; the debug variant keeps the console
window open with unbuffered UTF-8 output so errors stay visible.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	variant := launcher.VariantSilent
	if len(args) == 1 {
		v, err := launcher.ParseVariant(args[0])
		if err != nil {
			return err
		}
		variant = v
	}

	cfg := loadConfig()

	baseDir, err := utils.BaseDir()
	if err != nil {
		return err
	}

	gen := launcher.NewGenerator(baseDir)
	gen.Program = cfg.Program
	if len(cfg.Interpreters) > 0 {
		gen.Interpreters = cfg.Interpreters
	}

	path, err := gen.Generate(variant)
	if err != nil {
		color.Red("Failed to create the launcher script - check that your desktop folder exists and is writable.")
		return err
	}

	color.Green("Launcher script created: %s", path)
	return nil
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
	if err := decoder.Decode(config.Get().GetShortcutConfig()); err != nil {
		return DefaultConfig()
	}
	return cfg
}
