package launcher

import "strings"

// Slots substituted into the line templates below.
const (
	slotBaseDir = "{baseDir}"
	slotProgram = "{program}"
)

// scriptLines returns the ordered line templates for a variant. The
// interpreter probe runs when the generated script runs, not now: the
// last candidate is the unconditional fallback and earlier candidates
// override it when `where` finds them on PATH, so the first listed
// interpreter always wins.
func scriptLines(variant Variant, interpreters []string) []string {
	lines := []string{"@echo off"}

	if variant == VariantDebug {
		lines = append(lines, "chcp 65001 >nul")
	}

	lines = append(lines,
		`set "DUOKAI_DIR={baseDir}"`,
		`cd /d "%DUOKAI_DIR%"`,
	)

	if len(interpreters) > 0 {
		last := interpreters[len(interpreters)-1]
		lines = append(lines, `set "DUOKAI_PY=`+last+`"`)
		for i := len(interpreters) - 2; i >= 0; i-- {
			name := interpreters[i]
			lines = append(lines, `where `+name+` >nul 2>nul && set "DUOKAI_PY=`+name+`"`)
		}
	}

	if variant == VariantDebug {
		lines = append(lines, `%DUOKAI_PY% -u "%DUOKAI_DIR%\{program}"`, "pause")
	} else {
		lines = append(lines, `%DUOKAI_PY% "%DUOKAI_DIR%\{program}"`)
	}

	return lines
}

// Render substitutes the named slots into the line templates and joins
// them with CRLF, the line ending cmd.exe expects.
func Render(lines []string, baseDir, program string) string {
	replacer := strings.NewReplacer(
		slotBaseDir, batchEscape(baseDir),
		slotProgram, batchEscape(program),
	)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(replacer.Replace(line))
		b.WriteString("\r\n")
	}
	return b.String()
}

// batchEscape prepares a path for interpolation inside a double-quoted
// batch string. The script never enables delayed expansion, so inside
// quotes only % stays special and doubles to survive variable expansion.
// Line breaks cannot appear in a batch value and are stripped.
func batchEscape(text string) string {
	text = strings.ReplaceAll(text, "%", "%%")
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\n", "")
	return text
}
