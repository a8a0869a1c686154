package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `C:\Tools\DuoKai`, `C:\Tools\DuoKai`},
		{"spaces", `C:\Program Files\DuoKai`, `C:\Program Files\DuoKai`},
		{"percent", `C:\100%done`, `C:\100%%done`},
		{"caret stays literal inside quotes", `C:\a^b`, `C:\a^b`},
		{"newline stripped", "C:\\a\r\nb", `C:\ab`},
		{"non-ascii", `C:\工具\多开`, `C:\工具\多开`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, batchEscape(tt.in))
		})
	}
}

func TestRenderSubstitutesSlots(t *testing.T) {
	lines := []string{
		`set "DUOKAI_DIR={baseDir}"`,
		`start "" "%DUOKAI_DIR%\{program}"`,
	}

	got := Render(lines, `C:\Tools`, "gui.py")
	assert.Equal(t, "set \"DUOKAI_DIR=C:\\Tools\"\r\nstart \"\" \"%DUOKAI_DIR%\\gui.py\"\r\n", got)
}

func TestScriptLinesVariants(t *testing.T) {
	silent := scriptLines(VariantSilent, []string{"py", "python"})
	debug := scriptLines(VariantDebug, []string{"py", "python"})

	assert.Equal(t, "@echo off", silent[0])
	assert.NotContains(t, silent, "pause")
	assert.Contains(t, debug, "pause")
	assert.Contains(t, debug, "chcp 65001 >nul")
}

func TestScriptLinesSingleInterpreter(t *testing.T) {
	lines := scriptLines(VariantSilent, []string{"python3"})

	assert.Contains(t, lines, `set "DUOKAI_PY=python3"`)
	for _, line := range lines {
		assert.NotContains(t, line, "where ")
	}
}
