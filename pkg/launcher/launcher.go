// Package launcher generates the standalone desktop scripts that start
// the window manager GUI. The generated script re-resolves the install
// directory at its own run time, probes for an available interpreter and
// launches the GUI program, so it works from any location on the target
// machine without duokai being present.
package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/duokai-tools/duokai/internal/utils"
)

// Variant selects which launcher script is generated.
type Variant string

const (
	// VariantSilent launches the GUI without keeping a console around.
	VariantSilent Variant = "silent"
	// VariantDebug keeps the console window open with unbuffered UTF-8
	// output so startup problems stay visible.
	VariantDebug Variant = "debug"
)

// Fixed output filenames, one per variant.
const (
	silentFileName = "DuoKai-启动.bat"
	debugFileName  = "DuoKai-启动(黑框).bat"
)

var (
	// ErrUnknownVariant is returned for variant names other than
	// "silent" and "debug".
	ErrUnknownVariant = errors.New("unknown launcher variant")

	// ErrNotWritten is returned when the output file is missing after
	// the write reported success.
	ErrNotWritten = errors.New("launcher script was not written")
)

// ParseVariant converts a user-supplied name into a Variant.
func ParseVariant(name string) (Variant, error) {
	switch Variant(name) {
	case VariantSilent:
		return VariantSilent, nil
	case VariantDebug:
		return VariantDebug, nil
	default:
		return "", fmt.Errorf("%w: %q (expected silent or debug)", ErrUnknownVariant, name)
	}
}

// Generator writes a launcher script to the user's desktop. BaseDir must
// already be absolute; HomeDir is injectable so tests run against a
// throwaway desktop directory.
type Generator struct {
	BaseDir      string
	Program      string
	Interpreters []string
	HomeDir      func() (string, error)
}

// NewGenerator returns a Generator with the default program name,
// interpreter order and home directory lookup.
func NewGenerator(baseDir string) *Generator {
	return &Generator{
		BaseDir:      baseDir,
		Program:      "window_manager_gui.py",
		Interpreters: []string{"py", "python"},
		HomeDir:      os.UserHomeDir,
	}
}

// FileName returns the fixed output filename for a variant.
func FileName(variant Variant) (string, error) {
	switch variant {
	case VariantSilent:
		return silentFileName, nil
	case VariantDebug:
		return debugFileName, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}

// DesktopDir resolves the current user's desktop directory.
func (g *Generator) DesktopDir() (string, error) {
	home, err := g.HomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, "Desktop"), nil
}

// Generate renders the script for a variant and writes it to the desktop,
// overwriting any previous file. The whole content goes out in a single
// buffered write so a partially written script is never left behind.
// It returns the path of the written file.
func (g *Generator) Generate(variant Variant) (string, error) {
	name, err := FileName(variant)
	if err != nil {
		return "", err
	}

	desktop, err := g.DesktopDir()
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(desktop, name)
	content := Render(scriptLines(variant, g.Interpreters), g.BaseDir, g.Program)

	logrus.WithFields(logrus.Fields{
		"variant": variant,
		"path":    outPath,
	}).Debug("writing launcher script")

	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write launcher script: %w", err)
	}

	if !utils.FileExists(outPath) {
		return "", fmt.Errorf("%w: %s", ErrNotWritten, outPath)
	}

	return outPath, nil
}
