// Package run provides the command that launches the window manager GUI
// directly, using the same interpreter preference the generated desktop
// scripts embed.
package run

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/duokai-tools/duokai/internal/utils"
	"github.com/duokai-tools/duokai/pkg/commands"
	"github.com/duokai-tools/duokai/pkg/config"
	"github.com/duokai-tools/duokai/pkg/interp"
)

func init() {
	commands.Register(newCommand())
}

// Config represents run module configuration; it shares the shortcut
// section so the native runner and the generated scripts stay in sync.
type Config struct {
	Program      string   `mapstructure:"program"`
	Interpreters []string `mapstructure:"interpreters"`
}

func newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Launch the window manager GUI",
		RunE:  run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	baseDir, err := utils.BaseDir()
	if err != nil {
		return err
	}

	it, err := interp.NewResolver(cfg.Interpreters).Detect()
	if err != nil {
		return err
	}

	program := filepath.Join(baseDir, cfg.Program)
	if !utils.FileExists(program) {
		return fmt.Errorf("program not found: %s", program)
	}

	logrus.WithFields(logrus.Fields{
		"interpreter": it.Path,
		"program":     program,
	}).Debug("launching GUI")

	c := exec.Command(it.Path, program)
	c.Dir = baseDir
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

func defaultConfig() Config {
	return Config{
		Program:      "window_manager_gui.py",
		Interpreters: []string{"py", "python"},
	}
}

func loadConfig() Config {
	cfg := defaultConfig()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return defaultConfig()
	}
	if err := decoder.Decode(config.Get().GetShortcutConfig()); err != nil {
		return defaultConfig()
	}
	return cfg
}
